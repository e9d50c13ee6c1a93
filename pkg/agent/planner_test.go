package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector-oviedo/open-research/pkg/llm"
	"github.com/hector-oviedo/open-research/pkg/models"
)

func TestPlanner_Plan(t *testing.T) {
	ctx := context.Background()
	opts := models.DefaultOptions()

	t.Run("parses sub-questions", func(t *testing.T) {
		caller := respond(`{"sub_questions": [
			{"id": "sq-001", "question": "What is X?"},
			{"id": "sq-002", "question": "How does X work?"}
		]}`)
		planner := NewPlanner(caller)

		plan, err := planner.Plan(ctx, "Tell me about X", nil, opts)
		require.NoError(t, err)
		require.Len(t, plan, 2)
		assert.Equal(t, "sq-001", plan[0].ID)
		assert.Equal(t, "How does X work?", plan[1].Question)
		assert.Equal(t, models.SubQuestionPending, plan[0].Status)
	})

	t.Run("fills missing ids", func(t *testing.T) {
		caller := respond(`{"sub_questions": [{"question": "A?"}, {"question": "B?"}]}`)
		planner := NewPlanner(caller)

		plan, err := planner.Plan(ctx, "query", nil, opts)
		require.NoError(t, err)
		require.Len(t, plan, 2)
		assert.Equal(t, "sq-001", plan[0].ID)
		assert.Equal(t, "sq-002", plan[1].ID)
	})

	t.Run("unparseable output falls back to single question", func(t *testing.T) {
		caller := respond("I will research this thoroughly.")
		planner := NewPlanner(caller)

		plan, err := planner.Plan(ctx, "quantum error correction", nil, opts)
		require.NoError(t, err)
		require.Len(t, plan, 1)
		assert.Equal(t, "sq-001", plan[0].ID)
		assert.Equal(t, "quantum error correction", plan[0].Question)
	})

	t.Run("llm failure surfaces", func(t *testing.T) {
		caller := &scriptedCaller{errs: []error{errors.New("connection refused")}}
		planner := NewPlanner(caller)

		_, err := planner.Plan(ctx, "query", nil, opts)
		assert.Error(t, err)
	})

	t.Run("memory context reaches the prompt", func(t *testing.T) {
		caller := respond(`{"sub_questions": [{"id": "sq-001", "question": "Q?"}]}`)
		planner := NewPlanner(caller)

		memory := []models.MemoryItem{{
			Query:            "prior query",
			Title:            "Prior Report",
			ExecutiveSummary: "Earlier findings about the topic.",
			SourcesCount:     4,
		}}
		_, err := planner.Plan(ctx, "query", memory, opts)
		require.NoError(t, err)
		require.Len(t, caller.calls, 1)
		prompt := caller.calls[0].Messages[1].Content
		assert.Contains(t, prompt, "prior query")
		assert.Contains(t, prompt, "Prior Report")
	})
}

func TestBuildMemoryContext(t *testing.T) {
	assert.Equal(t, "Prior session memory: none", buildMemoryContext(nil))

	long := strings.Repeat("x", 400)
	out := buildMemoryContext([]models.MemoryItem{{Query: "q", Title: "t", ExecutiveSummary: long}})
	assert.Contains(t, out, strings.Repeat("x", 350)+"...")
	assert.NotContains(t, out, strings.Repeat("x", 351))
}

var _ llm.Caller = (*scriptedCaller)(nil)
