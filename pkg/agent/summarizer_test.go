package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizer_Summarize(t *testing.T) {
	ctx := context.Background()

	t.Run("parses structured output", func(t *testing.T) {
		caller := respond(`{
			"summary": "Key developments in the field.",
			"key_facts": ["fact one", "fact two"],
			"relevance_score": 0.9,
			"compression_ratio": 0.2,
			"word_count": {"original": 1000, "summary": 200}
		}`)
		summarizer := NewSummarizer(caller)

		finding, err := summarizer.Summarize(ctx, "long content", "question", "Title", "https://a.com")
		require.NoError(t, err)
		assert.Equal(t, "Key developments in the field.", finding.Summary)
		assert.Equal(t, []string{"fact one", "fact two"}, finding.KeyFacts)
		assert.Equal(t, 0.9, finding.RelevanceScore)
		assert.Equal(t, 1000, finding.WordCount.Original)
	})

	t.Run("unparseable output degrades to truncated raw text", func(t *testing.T) {
		raw := strings.Repeat("prose ", 200)
		caller := respond(raw)
		summarizer := NewSummarizer(caller)

		finding, err := summarizer.Summarize(ctx, "content", "question", "Title", "https://a.com")
		require.NoError(t, err)
		assert.Equal(t, raw[:500], finding.Summary)
		assert.Equal(t, []string{}, finding.KeyFacts)
		assert.Equal(t, 0.5, finding.RelevanceScore)
		assert.Equal(t, 1.0, finding.CompressionRatio)
	})

	t.Run("missing key facts become empty slice", func(t *testing.T) {
		caller := respond(`{"summary": "s", "relevance_score": 0.7}`)
		summarizer := NewSummarizer(caller)

		finding, err := summarizer.Summarize(ctx, "content", "question", "Title", "https://a.com")
		require.NoError(t, err)
		assert.NotNil(t, finding.KeyFacts)
		assert.Empty(t, finding.KeyFacts)
	})
}

func TestCleanContent(t *testing.T) {
	t.Run("strips tags and collapses whitespace", func(t *testing.T) {
		out := CleanContent("Hello   <b>world</b>\n\n\ttext")
		assert.Equal(t, "Hello  world  text", out)
	})

	t.Run("replaces urls", func(t *testing.T) {
		out := CleanContent("see https://example.com/page for details")
		assert.Equal(t, "see [link] for details", out)
	})

	t.Run("trims", func(t *testing.T) {
		assert.Equal(t, "a", CleanContent("   a   "))
	})
}
