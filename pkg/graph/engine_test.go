package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector-oviedo/open-research/pkg/models"
)

func TestEngine_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("linear execution", func(t *testing.T) {
		engine := NewEngine(nil)
		var order []string
		engine.AddNode("a", func(_ context.Context, _ *models.ResearchState) error {
			order = append(order, "a")
			return nil
		})
		engine.AddNode("b", func(_ context.Context, _ *models.ResearchState) error {
			order = append(order, "b")
			return nil
		})
		engine.SetEntryPoint("a")
		engine.AddEdge("a", "b")
		engine.AddEdge("b", End)

		require.NoError(t, engine.Run(ctx, &models.ResearchState{}))
		assert.Equal(t, []string{"a", "b"}, order)
	})

	t.Run("conditional routing loops until the router says stop", func(t *testing.T) {
		engine := NewEngine(nil)
		engine.AddNode("step", func(_ context.Context, state *models.ResearchState) error {
			state.Iteration++
			return nil
		})
		engine.SetEntryPoint("step")
		engine.AddConditionalEdges("step", func(state *models.ResearchState) string {
			if state.Iteration < 3 {
				return "again"
			}
			return "finish"
		}, map[string]string{"again": "step", "finish": End})

		state := &models.ResearchState{}
		require.NoError(t, engine.Run(ctx, state))
		assert.Equal(t, 3, state.Iteration)
	})

	t.Run("node error aborts with node name", func(t *testing.T) {
		engine := NewEngine(nil)
		engine.AddNode("boom", func(_ context.Context, _ *models.ResearchState) error {
			return errors.New("exploded")
		})
		engine.SetEntryPoint("boom")
		engine.AddEdge("boom", End)

		err := engine.Run(ctx, &models.ResearchState{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "node boom")
	})

	t.Run("cancellation stops between nodes", func(t *testing.T) {
		runCtx, cancel := context.WithCancel(ctx)
		engine := NewEngine(nil)
		engine.AddNode("first", func(_ context.Context, _ *models.ResearchState) error {
			cancel()
			return nil
		})
		engine.AddNode("second", func(_ context.Context, _ *models.ResearchState) error {
			t.Fatal("second node must not run after cancellation")
			return nil
		})
		engine.SetEntryPoint("first")
		engine.AddEdge("first", "second")
		engine.AddEdge("second", End)

		err := engine.Run(runCtx, &models.ResearchState{})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("checkpointer saves after every node", func(t *testing.T) {
		saved := 0
		engine := NewEngine(CheckpointerFunc(func(_ context.Context, _ *models.ResearchState) error {
			saved++
			return nil
		}))
		engine.AddNode("a", func(_ context.Context, _ *models.ResearchState) error { return nil })
		engine.AddNode("b", func(_ context.Context, _ *models.ResearchState) error { return nil })
		engine.SetEntryPoint("a")
		engine.AddEdge("a", "b")
		engine.AddEdge("b", End)

		require.NoError(t, engine.Run(ctx, &models.ResearchState{}))
		assert.Equal(t, 2, saved)
	})

	t.Run("missing entry point fails", func(t *testing.T) {
		engine := NewEngine(nil)
		assert.Error(t, engine.Run(ctx, &models.ResearchState{}))
	})
}
