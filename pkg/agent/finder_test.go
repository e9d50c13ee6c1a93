package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector-oviedo/open-research/pkg/models"
	"github.com/hector-oviedo/open-research/pkg/search"
)

type fakeSearcher struct {
	results map[string][]search.Result
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, query string, _ int) ([]search.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query], nil
}

func TestFinder_FindSources(t *testing.T) {
	ctx := context.Background()

	t.Run("diversity caps sources per domain", func(t *testing.T) {
		caller := respond(`{"search_queries": [{"query": "q1", "priority": 1}]}`)
		searcher := &fakeSearcher{results: map[string][]search.Result{
			"q1": {
				{Title: "A", URL: "https://blog.example.com/a"},
				{Title: "B", URL: "https://blog.example.com/b"},
				{Title: "C", URL: "https://blog.example.com/c"},
				{Title: "D", URL: "https://other.org/d"},
			},
		}}
		finder := NewFinder(caller, searcher)

		sources, err := finder.FindSources(ctx, "question", "sq-001", FindOptions{
			ResultsPerQuery:  5,
			MaxSources:       10,
			EnforceDiversity: true,
		})
		require.NoError(t, err)
		require.Len(t, sources, 3)

		perDomain := map[string]int{}
		for _, source := range sources {
			perDomain[source.Domain]++
		}
		assert.Equal(t, 2, perDomain["blog.example.com"])
		assert.Equal(t, 1, perDomain["other.org"])
	})

	t.Run("respects max sources", func(t *testing.T) {
		caller := respond(`{"search_queries": [{"query": "q1"}]}`)
		searcher := &fakeSearcher{results: map[string][]search.Result{
			"q1": {
				{Title: "A", URL: "https://a.com/1"},
				{Title: "B", URL: "https://b.com/2"},
				{Title: "C", URL: "https://c.com/3"},
			},
		}}
		finder := NewFinder(caller, searcher)

		sources, err := finder.FindSources(ctx, "question", "sq-001", FindOptions{
			ResultsPerQuery: 5,
			MaxSources:      2,
		})
		require.NoError(t, err)
		assert.Len(t, sources, 2)
	})

	t.Run("unparseable query plan falls back to the question", func(t *testing.T) {
		caller := respond("no structured output here")
		searcher := &fakeSearcher{results: map[string][]search.Result{
			"the question": {{Title: "A", URL: "https://a.com/1"}},
		}}
		finder := NewFinder(caller, searcher)

		sources, err := finder.FindSources(ctx, "the question", "sq-001", FindOptions{
			ResultsPerQuery: 5,
			MaxSources:      5,
		})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, "A", sources[0].Title)
	})
}

func TestNewSource(t *testing.T) {
	result := search.Result{Title: "Paper", URL: "https://arxiv.org/abs/1234", Snippet: "snippet"}
	first := newSource(result, "sq-002")
	second := newSource(result, "sq-002")

	assert.Equal(t, first.ID, second.ID)
	assert.Contains(t, first.ID, "src-sq-002-")
	assert.Equal(t, "arxiv.org", first.Domain)
	assert.Equal(t, models.ReliabilityHigh, first.Reliability)
	assert.Equal(t, "snippet", first.Content)

	untitled := newSource(search.Result{URL: "https://a.com/x"}, "sq-001")
	assert.Equal(t, "Untitled", untitled.Title)
}

func TestClassifyDomain(t *testing.T) {
	tests := []struct {
		domain      string
		reliability string
		confidence  float64
	}{
		{"www.nasa.gov", models.ReliabilityHigh, 0.8},
		{"cs.stanford.edu", models.ReliabilityHigh, 0.8},
		{"arxiv.org", models.ReliabilityHigh, 0.8},
		{"pubmed.ncbi.nlm.nih.gov", models.ReliabilityHigh, 0.8},
		{"medium.com", models.ReliabilityMedium, 0.65},
		{"localhost", models.ReliabilityLow, 0.5},
		{"", models.ReliabilityLow, 0.5},
	}
	for _, tt := range tests {
		reliability, confidence := classifyDomain(tt.domain)
		assert.Equal(t, tt.reliability, reliability, tt.domain)
		assert.Equal(t, tt.confidence, confidence, tt.domain)
	}
}
