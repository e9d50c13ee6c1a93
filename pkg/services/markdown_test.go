package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hector-oviedo/open-research/pkg/models"
)

func TestReportToMarkdown(t *testing.T) {
	t.Run("full report", func(t *testing.T) {
		report := &models.Report{
			Title:            "AI in Medicine",
			ExecutiveSummary: "A short overview.",
			Sections: []models.ReportSection{
				{Heading: "Diagnostics", Content: "Details."},
			},
			SourcesUsed: []models.ReportSource{
				{Title: "Alpha", URL: "https://a.com", Reliability: "high"},
				{Title: "Beta", Reliability: "medium"},
			},
			ConfidenceAssessment: "Strong.",
			WordCount:            42,
		}

		want := "# AI in Medicine\n\n" +
			"## Executive Summary\n" +
			"A short overview.\n\n" +
			"## Sections\n" +
			"### Diagnostics\nDetails.\n\n" +
			"## Confidence Assessment\n" +
			"Strong.\n\n" +
			"## Sources\n" +
			"1. [Alpha](https://a.com) (high)\n" +
			"2. Beta (medium)\n" +
			"\n" +
			"_Word count: 42_"
		assert.Equal(t, want, ReportToMarkdown(report))
	})

	t.Run("empty report uses placeholders", func(t *testing.T) {
		out := ReportToMarkdown(&models.Report{})
		assert.Contains(t, out, "# Research Report\n")
		assert.Contains(t, out, "No executive summary generated.")
		assert.Contains(t, out, "No sections generated.")
		assert.Contains(t, out, "No confidence assessment provided.")
		assert.Contains(t, out, "No sources captured.")
		assert.Contains(t, out, "_Word count: 0_")
	})

	t.Run("missing section heading and source title", func(t *testing.T) {
		report := &models.Report{
			Sections:    []models.ReportSection{{Content: "orphan content"}},
			SourcesUsed: []models.ReportSource{{URL: "https://x.com"}},
		}
		out := ReportToMarkdown(report)
		assert.Contains(t, out, "### Untitled Section\norphan content")
		assert.Contains(t, out, "1. [Untitled Source](https://x.com) (unknown)")
	})
}
