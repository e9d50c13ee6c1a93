package graph

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector-oviedo/open-research/pkg/llm"
	"github.com/hector-oviedo/open-research/pkg/models"
	"github.com/hector-oviedo/open-research/pkg/search"
)

// fakeLLM routes requests to canned agent responses by prompt shape.
type fakeLLM struct {
	planner    string
	finder     string
	summarizer string
	reviewer   string
	writer     string
	calls      []llm.Request
}

func (f *fakeLLM) ChatCompletion(_ context.Context, req llm.Request) (llm.Response, error) {
	f.calls = append(f.calls, req)
	user := req.Messages[len(req.Messages)-1].Content
	switch {
	case req.Format == "json":
		return llm.Response{Content: f.writer}, nil
	case strings.Contains(user, "Research Query:"):
		return llm.Response{Content: f.planner}, nil
	case strings.Contains(user, "Generate search queries"):
		return llm.Response{Content: f.finder}, nil
	case strings.Contains(user, "Content to summarize:"):
		return llm.Response{Content: f.summarizer}, nil
	case strings.Contains(user, "Identify gaps"):
		return llm.Response{Content: f.reviewer}, nil
	}
	return llm.Response{}, errors.New("unrecognized prompt")
}

func (f *fakeLLM) userPrompts(marker string) []string {
	var prompts []string
	for _, call := range f.calls {
		user := call.Messages[len(call.Messages)-1].Content
		if strings.Contains(user, marker) {
			prompts = append(prompts, user)
		}
	}
	return prompts
}

type staticSearcher struct {
	results []search.Result
}

func (s *staticSearcher) Search(_ context.Context, _ string, _ int) ([]search.Result, error) {
	return s.results, nil
}

type staticFetcher struct {
	content string
	err     error
}

func (f *staticFetcher) FetchContent(_ context.Context, _ string) (string, error) {
	return f.content, f.err
}

func defaultFakeLLM() *fakeLLM {
	return &fakeLLM{
		planner: `{"sub_questions": [
			{"id": "sq-001", "question": "What is the state of the art?"},
			{"id": "sq-002", "question": "What are open problems?"}
		]}`,
		finder: `{"search_queries": [{"query": "q1", "priority": 1}]}`,
		summarizer: `{"summary": "Relevant facts.", "key_facts": ["fact"],
			"relevance_score": 0.8, "compression_ratio": 0.3,
			"word_count": {"original": 500, "summary": 50}}`,
		reviewer: `{"assessment": "good", "has_gaps": false, "gaps": [],
			"recommendations": [], "confidence": 0.9}`,
		writer: `{"title": "Topic Report",
			"executive_summary": "Summary citing [🔗 Alpha](https://a.com/1).",
			"sections": [{"heading": "Overview", "content": "Details."}],
			"confidence_assessment": "Solid.", "word_count": 150}`,
	}
}

func defaultResults() []search.Result {
	return []search.Result{
		{Title: "Alpha", URL: "https://a.com/1", Snippet: "s1"},
		{Title: "Beta", URL: "https://b.com/2", Snippet: "s2"},
		{Title: "Gamma", URL: "https://c.edu/3", Snippet: "s3"},
	}
}

func newTestResearch(caller *fakeLLM, events *[]models.Event) *Research {
	return NewResearch(Deps{
		LLM:      caller,
		Searcher: &staticSearcher{results: defaultResults()},
		Fetcher:  &staticFetcher{content: "page content about the topic"},
		Emitter: func(_ context.Context, event models.Event) {
			*events = append(*events, event)
		},
	})
}

func eventTypes(events []models.Event) []string {
	types := make([]string, len(events))
	for i, event := range events {
		types[i] = event.Type
	}
	return types
}

func TestResearch_Run_HappyPath(t *testing.T) {
	caller := defaultFakeLLM()
	var events []models.Event
	research := newTestResearch(caller, &events)

	state := models.NewInitialState("AI in medicine", "sess-happy")
	state.Options = models.DefaultOptions()

	require.NoError(t, research.Run(context.Background(), state, time.Minute))

	assert.Equal(t, models.StatusCompleted, state.Status)
	assert.Equal(t, 1, state.Iteration)
	require.NotNil(t, state.FinalReport)
	assert.Equal(t, "Topic Report", state.FinalReport.Title)
	assert.Contains(t, state.FinalReport.ExecutiveSummary, "https://a.com/1")

	// Duplicate URLs across sub-questions collapse to one source each.
	require.Len(t, state.Sources, 3)
	seen := map[string]bool{}
	for _, source := range state.Sources {
		assert.False(t, seen[source.URL])
		seen[source.URL] = true
	}
	assert.Len(t, state.Findings, 3)

	types := eventTypes(events)
	assert.Equal(t, models.EventPlannerRunning, types[0])
	assert.Contains(t, types, models.EventPlannerComplete)
	assert.Contains(t, types, models.EventFinderComplete)
	assert.Contains(t, types, models.EventSummarizerComplete)
	assert.Contains(t, types, models.EventReviewerComplete)
	assert.Equal(t, models.EventWriterComplete, types[len(types)-1])
	assert.NotContains(t, types, models.EventSummarizerRetry)
}

func TestResearch_Run_IterationLoop(t *testing.T) {
	caller := defaultFakeLLM()
	caller.reviewer = `{"assessment": "thin", "has_gaps": true,
		"gaps": ["missing recent work"],
		"recommendations": ["cover 2024 results", "add benchmarks"],
		"confidence": 0.4}`
	var events []models.Event
	research := newTestResearch(caller, &events)

	state := models.NewInitialState("AI in medicine", "sess-loop")
	state.Options = models.DefaultOptions()
	state.Options.MaxIterations = 2

	require.NoError(t, research.Run(context.Background(), state, time.Minute))

	assert.Equal(t, 2, state.Iteration)
	assert.Equal(t, models.StatusCompleted, state.Status)
	require.NotNil(t, state.FinalReport)

	plannerPrompts := caller.userPrompts("Research Query:")
	require.Len(t, plannerPrompts, 2)
	assert.NotContains(t, plannerPrompts[0], "Additional focus")
	assert.Contains(t, plannerPrompts[1], "Additional focus: cover 2024 results add benchmarks")

	// Findings from both iterations accumulate.
	assert.Len(t, state.Findings, 6)
}

func TestResearch_Run_FinderRetry(t *testing.T) {
	caller := defaultFakeLLM()
	caller.summarizer = `{"summary": "vague", "key_facts": [],
		"relevance_score": 0.2, "compression_ratio": 1.0}`
	var events []models.Event
	research := newTestResearch(caller, &events)

	state := models.NewInitialState("AI in medicine", "sess-retry")
	state.Options = models.DefaultOptions()

	require.NoError(t, research.Run(context.Background(), state, time.Minute))

	assert.Equal(t, 2, state.FinderRetryCount)
	require.NotNil(t, state.FinalReport)

	retries := 0
	finderRuns := 0
	for _, event := range events {
		switch event.Type {
		case models.EventSummarizerRetry:
			retries++
			assert.Equal(t, "zero_key_facts", event.Extra["retry_reason"])
		case models.EventFinderRunning:
			finderRuns++
		}
	}
	assert.Equal(t, 3, retries)
	assert.Equal(t, 3, finderRuns)
}

func TestResearch_Run_Timeout(t *testing.T) {
	caller := defaultFakeLLM()
	var events []models.Event
	research := newTestResearch(caller, &events)

	state := models.NewInitialState("AI in medicine", "sess-timeout")
	state.Options = models.DefaultOptions()

	err := research.Run(context.Background(), state, time.Nanosecond)
	require.Error(t, err)
	assert.Equal(t, models.StatusError, state.Status)
	assert.Contains(t, state.Error, "timed out")
}

func TestResearch_Run_ExternalCancel(t *testing.T) {
	caller := defaultFakeLLM()
	var events []models.Event
	research := newTestResearch(caller, &events)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state := models.NewInitialState("AI in medicine", "sess-cancel")
	state.Options = models.DefaultOptions()

	err := research.Run(ctx, state, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotEqual(t, models.StatusError, state.Status)
	assert.Empty(t, state.Error)
}
