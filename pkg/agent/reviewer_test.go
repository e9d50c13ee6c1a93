package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector-oviedo/open-research/pkg/models"
)

func TestReviewer_Review(t *testing.T) {
	ctx := context.Background()
	plan := []models.SubQuestion{{ID: "sq-001", Question: "Q?"}}
	findings := []models.Finding{{SubQuestionID: "sq-001", Summary: "found things"}}

	t.Run("parses gap report", func(t *testing.T) {
		caller := respond(`{
			"assessment": "coverage is thin",
			"has_gaps": true,
			"gaps": ["no recent data"],
			"recommendations": ["search 2024 publications"],
			"confidence": 0.4
		}`)
		reviewer := NewReviewer(caller)

		report, err := reviewer.Review(ctx, plan, findings, 1, 3)
		require.NoError(t, err)
		assert.True(t, report.HasGaps)
		assert.Equal(t, []string{"no recent data"}, report.Gaps)
		assert.Equal(t, []string{"search 2024 publications"}, report.Recommendations)
		assert.Equal(t, 0.4, report.Confidence)
	})

	t.Run("unparseable output reports no gaps", func(t *testing.T) {
		caller := respond("cannot assess")
		reviewer := NewReviewer(caller)

		report, err := reviewer.Review(ctx, plan, findings, 2, 3)
		require.NoError(t, err)
		assert.False(t, report.HasGaps)
		assert.Empty(t, report.Gaps)
		assert.Zero(t, report.Confidence)
	})

	t.Run("context includes iteration and findings", func(t *testing.T) {
		out := buildReviewContext(plan, findings, 2, 3)
		assert.Contains(t, out, "Iteration: 2/3")
		assert.Contains(t, out, "- sq-001: Q?")
		assert.Contains(t, out, "found things")
	})
}
