// Package graph runs the research workflow: a small fixed-topology state
// graph whose nodes are the agents and whose routers drive the iteration
// and retry loops.
package graph

import (
	"context"
	"fmt"

	"github.com/hector-oviedo/open-research/pkg/models"
)

// End is the terminal pseudo-node.
const End = "__end__"

// NodeFunc is one workflow step. It mutates the state in place.
type NodeFunc func(ctx context.Context, state *models.ResearchState) error

// RouterFunc picks the label of the next edge after a node.
type RouterFunc func(state *models.ResearchState) string

// Checkpointer persists state snapshots between nodes so a crashed run
// leaves its last completed step behind.
type Checkpointer interface {
	Save(ctx context.Context, state *models.ResearchState) error
}

// NopCheckpointer discards snapshots.
type NopCheckpointer struct{}

func (NopCheckpointer) Save(context.Context, *models.ResearchState) error { return nil }

// CheckpointerFunc adapts a function to the Checkpointer interface.
type CheckpointerFunc func(ctx context.Context, state *models.ResearchState) error

func (f CheckpointerFunc) Save(ctx context.Context, state *models.ResearchState) error {
	return f(ctx, state)
}

type conditionalEdge struct {
	router  RouterFunc
	targets map[string]string
}

// Engine executes a node graph from an entry point until End.
type Engine struct {
	entry        string
	nodes        map[string]NodeFunc
	edges        map[string]string
	conditionals map[string]conditionalEdge
	checkpointer Checkpointer
}

// NewEngine creates an empty engine with the given checkpointer. A nil
// checkpointer disables snapshots.
func NewEngine(checkpointer Checkpointer) *Engine {
	if checkpointer == nil {
		checkpointer = NopCheckpointer{}
	}
	return &Engine{
		nodes:        map[string]NodeFunc{},
		edges:        map[string]string{},
		conditionals: map[string]conditionalEdge{},
		checkpointer: checkpointer,
	}
}

// AddNode registers a named node.
func (e *Engine) AddNode(name string, fn NodeFunc) {
	e.nodes[name] = fn
}

// SetEntryPoint sets the node execution starts from.
func (e *Engine) SetEntryPoint(name string) {
	e.entry = name
}

// AddEdge wires an unconditional transition.
func (e *Engine) AddEdge(from, to string) {
	e.edges[from] = to
}

// AddConditionalEdges wires a router: after from runs, router(state) picks a
// label and targets maps it to the next node.
func (e *Engine) AddConditionalEdges(from string, router RouterFunc, targets map[string]string) {
	e.conditionals[from] = conditionalEdge{router: router, targets: targets}
}

// Run executes the graph until End, checkpointing after every node. The
// context cancels the run between and inside nodes.
func (e *Engine) Run(ctx context.Context, state *models.ResearchState) error {
	if e.entry == "" {
		return fmt.Errorf("graph has no entry point")
	}

	current := e.entry
	for current != End {
		if err := ctx.Err(); err != nil {
			return err
		}

		node, ok := e.nodes[current]
		if !ok {
			return fmt.Errorf("unknown node %q", current)
		}
		if err := node(ctx, state); err != nil {
			return fmt.Errorf("node %s: %w", current, err)
		}

		if err := e.checkpointer.Save(ctx, state); err != nil {
			return fmt.Errorf("checkpoint after %s: %w", current, err)
		}

		next, err := e.next(current, state)
		if err != nil {
			return err
		}
		current = next
	}
	return nil
}

func (e *Engine) next(current string, state *models.ResearchState) (string, error) {
	if cond, ok := e.conditionals[current]; ok {
		label := cond.router(state)
		target, ok := cond.targets[label]
		if !ok {
			return "", fmt.Errorf("node %s: router returned unknown label %q", current, label)
		}
		return target, nil
	}
	if target, ok := e.edges[current]; ok {
		return target, nil
	}
	return "", fmt.Errorf("node %s has no outgoing edge", current)
}
