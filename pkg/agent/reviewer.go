package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/hector-oviedo/open-research/pkg/llm"
	"github.com/hector-oviedo/open-research/pkg/models"
)

// Reviewer checks plan coverage against findings and reports gaps.
type Reviewer struct {
	llm llm.Caller
}

// NewReviewer creates a reviewer over the given chat client.
func NewReviewer(caller llm.Caller) *Reviewer {
	return &Reviewer{llm: caller}
}

type reviewerOutput struct {
	Assessment      string   `json:"assessment"`
	HasGaps         bool     `json:"has_gaps"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
	Confidence      float64  `json:"confidence"`
}

// Review assesses coverage and depth of the accumulated findings. The typed
// default on unparseable output reports no gaps with zero confidence, which
// routes the run forward rather than looping on a broken model.
func (r *Reviewer) Review(ctx context.Context, plan []models.SubQuestion, findings []models.Finding, iteration, maxIterations int) (models.GapReport, error) {
	resp, err := r.llm.ChatCompletion(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: reviewerSystemPrompt},
			{Role: llm.RoleUser, Content: buildReviewContext(plan, findings, iteration, maxIterations)},
		},
		EnableThinking: true,
	})
	if err != nil {
		return models.GapReport{}, fmt.Errorf("reviewer LLM call failed: %w", err)
	}

	var out reviewerOutput
	if err := ExtractJSON(resp.Content, &out); err != nil {
		out = reviewerOutput{Confidence: 0}
	}
	if out.Gaps == nil {
		out.Gaps = []string{}
	}
	if out.Recommendations == nil {
		out.Recommendations = []string{}
	}

	return models.GapReport{
		HasGaps:         out.HasGaps,
		Gaps:            out.Gaps,
		Recommendations: out.Recommendations,
		Confidence:      out.Confidence,
	}, nil
}

func buildReviewContext(plan []models.SubQuestion, findings []models.Finding, iteration, maxIterations int) string {
	var parts []string
	parts = append(parts,
		fmt.Sprintf("Iteration: %d/%d", iteration, maxIterations),
		"",
		"## Research Plan (Sub-Questions):",
	)
	for _, sq := range plan {
		parts = append(parts, fmt.Sprintf("- %s: %s", sq.ID, sq.Question))
	}

	parts = append(parts, "", "## Accumulated Findings:")
	for _, finding := range findings {
		summary := finding.Summary
		if len(summary) > 200 {
			summary = summary[:200]
		}
		parts = append(parts, fmt.Sprintf("- %s: %s...", finding.SubQuestionID, summary))
	}

	parts = append(parts, "", "Analyze coverage, depth, and quality. Identify gaps.")
	return strings.Join(parts, "\n")
}
