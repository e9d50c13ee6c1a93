package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/hector-oviedo/open-research/pkg/llm"
	"github.com/hector-oviedo/open-research/pkg/models"
)

// Content handed to the summarizer prompt is capped at this many characters.
const summarizerContentCap = 8000

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	urlRe        = regexp.MustCompile(`https?://\S+`)
)

// Summarizer compresses source content into an attributed finding.
type Summarizer struct {
	llm llm.Caller
}

// NewSummarizer creates a summarizer over the given chat client.
func NewSummarizer(caller llm.Caller) *Summarizer {
	return &Summarizer{llm: caller}
}

type summarizerOutput struct {
	Summary          string           `json:"summary"`
	KeyFacts         []string         `json:"key_facts"`
	RelevanceScore   float64          `json:"relevance_score"`
	CompressionRatio float64          `json:"compression_ratio"`
	WordCount        models.WordCount `json:"word_count"`
}

// Summarize compresses content relevant to the sub-question into a Finding.
// Source attribution and the sub-question link are filled in by the caller.
func (s *Summarizer) Summarize(ctx context.Context, content, subQuestion, sourceTitle, sourceURL string) (models.Finding, error) {
	cleaned := CleanContent(content)
	if len(cleaned) > summarizerContentCap {
		cleaned = cleaned[:summarizerContentCap] + "..."
	}

	userMessage := fmt.Sprintf(
		"Sub-question: %s\n\n"+
			"Source Title: %s\n"+
			"Source URL: %s\n\n"+
			"Content to summarize:\n---\n%s\n---\n\n"+
			"Provide a compressed summary focusing only on information relevant to the sub-question.",
		subQuestion, sourceTitle, sourceURL, cleaned,
	)

	resp, err := s.llm.ChatCompletion(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: summarizerSystemPrompt},
			{Role: llm.RoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return models.Finding{}, fmt.Errorf("summarizer LLM call failed: %w", err)
	}

	var out summarizerOutput
	if err := ExtractJSON(resp.Content, &out); err != nil {
		out = summarizerDefault(resp.Content)
	}
	if out.KeyFacts == nil {
		out.KeyFacts = []string{}
	}

	return models.Finding{
		Summary:          out.Summary,
		KeyFacts:         out.KeyFacts,
		RelevanceScore:   out.RelevanceScore,
		CompressionRatio: out.CompressionRatio,
		WordCount:        out.WordCount,
	}, nil
}

// summarizerDefault is the typed fallback for unparseable output: the raw
// response truncated, with neutral scores and no key facts.
func summarizerDefault(raw string) summarizerOutput {
	summary := raw
	if len(summary) > 500 {
		summary = summary[:500]
	}
	if summary == "" {
		summary = "No summary generated"
	}
	return summarizerOutput{
		Summary:          summary,
		KeyFacts:         []string{},
		RelevanceScore:   0.5,
		CompressionRatio: 1.0,
	}
}

// CleanContent normalizes raw page text before prompting: whitespace runs
// collapse to single spaces, leftover HTML tags are stripped, and URLs are
// replaced with a [link] marker.
func CleanContent(content string) string {
	cleaned := whitespaceRe.ReplaceAllString(content, " ")
	cleaned = htmlTagRe.ReplaceAllString(cleaned, " ")
	cleaned = urlRe.ReplaceAllString(cleaned, "[link]")
	return strings.TrimSpace(cleaned)
}
