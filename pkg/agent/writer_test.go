package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector-oviedo/open-research/pkg/models"
)

func writerState(findings ...models.Finding) *models.ResearchState {
	state := models.NewInitialState("test query", "sess-1")
	state.Options = models.DefaultOptions()
	state.Findings = findings
	return state
}

func someFindings() []models.Finding {
	return []models.Finding{
		{
			SubQuestionID: "sq-001",
			SourceInfo:    models.SourceInfo{URL: "https://a.com/1", Title: "Alpha", Reliability: models.ReliabilityHigh},
			Summary:       "first summary",
		},
		{
			SubQuestionID: "sq-001",
			SourceInfo:    models.SourceInfo{URL: "https://b.com/2", Title: "Beta", Reliability: models.ReliabilityMedium},
			Summary:       "second summary",
		},
	}
}

func TestWriter_WriteReport(t *testing.T) {
	ctx := context.Background()

	t.Run("parses valid report", func(t *testing.T) {
		caller := respond(`{
			"title": "Findings on X",
			"executive_summary": "Summary with [🔗 Alpha](https://a.com/1).",
			"sections": [{"heading": "Background", "content": "Content."}],
			"confidence_assessment": "High confidence.",
			"word_count": 200
		}`)
		writer := NewWriter(caller)

		report := writer.WriteReport(ctx, writerState(someFindings()...))
		require.NotNil(t, report)
		assert.Equal(t, "Findings on X", report.Title)
		assert.Contains(t, report.ExecutiveSummary, "[🔗 Alpha](https://a.com/1)")
		assert.Equal(t, 200, report.WordCount)
		assert.Empty(t, report.Error)
	})

	t.Run("no findings yields error report", func(t *testing.T) {
		writer := NewWriter(&scriptedCaller{})

		report := writer.WriteReport(ctx, writerState())
		require.NotNil(t, report)
		assert.Equal(t, "Research Report (Error)", report.Title)
		assert.NotEmpty(t, report.Error)
	})

	t.Run("llm failure yields error report", func(t *testing.T) {
		caller := &scriptedCaller{errs: []error{errors.New("boom")}}
		writer := NewWriter(caller)

		report := writer.WriteReport(ctx, writerState(someFindings()...))
		require.NotNil(t, report)
		assert.Equal(t, "boom", report.Error)
	})

	t.Run("malformed output is repaired", func(t *testing.T) {
		caller := respond(
			"Here is the report in prose form, no JSON at all.",
			`{"title": "Repaired", "executive_summary": "Fixed.", "sections": []}`,
		)
		writer := NewWriter(caller)

		report := writer.WriteReport(ctx, writerState(someFindings()...))
		require.NotNil(t, report)
		assert.Equal(t, "Repaired", report.Title)
		require.Len(t, caller.calls, 2)
		assert.Equal(t, "json", caller.calls[1].Format)
	})

	t.Run("repair failure falls back to raw text", func(t *testing.T) {
		caller := respond(
			"Completely unstructured essay about the topic.",
			"still not json",
		)
		writer := NewWriter(caller)

		report := writer.WriteReport(ctx, writerState(someFindings()...))
		require.NotNil(t, report)
		assert.Equal(t, "Research Report", report.Title)
		assert.Contains(t, report.ExecutiveSummary, "Completely unstructured essay")
		require.Len(t, report.Sections, 1)
		assert.Equal(t, "Findings", report.Sections[0].Heading)
		assert.Len(t, report.SourcesUsed, 2)
	})
}

func TestValidateCitations(t *testing.T) {
	findings := someFindings()

	t.Run("numeric citations become links", func(t *testing.T) {
		report := &models.Report{
			ExecutiveSummary: "Evidence [1] and [2].",
			Sections:         []models.ReportSection{},
		}
		validateCitations(report, findings)
		assert.Contains(t, report.ExecutiveSummary, "[🔗 Alpha](https://a.com/1)")
		assert.Contains(t, report.ExecutiveSummary, "[🔗 Beta](https://b.com/2)")
	})

	t.Run("out of range numeric citations are dropped", func(t *testing.T) {
		report := &models.Report{ExecutiveSummary: "See [9]."}
		validateCitations(report, findings)
		assert.Equal(t, "See .", report.ExecutiveSummary)
	})

	t.Run("unknown link citations are dropped", func(t *testing.T) {
		report := &models.Report{
			Sections: []models.ReportSection{
				{Heading: "H", Content: "Good [🔗 Alpha](https://a.com/1) bad [🔗 Evil](https://evil.com/x)."},
			},
		}
		validateCitations(report, findings)
		assert.Contains(t, report.Sections[0].Content, "https://a.com/1")
		assert.NotContains(t, report.Sections[0].Content, "evil.com")
	})

	t.Run("sources_used recomputed from findings", func(t *testing.T) {
		report := &models.Report{
			SourcesUsed: []models.ReportSource{{URL: "https://stale.com"}},
		}
		validateCitations(report, findings)
		require.Len(t, report.SourcesUsed, 2)
		assert.Equal(t, "source-001", report.SourcesUsed[0].ID)
		assert.Equal(t, "https://a.com/1", report.SourcesUsed[0].URL)
		assert.Equal(t, "a.com", report.SourcesUsed[0].Domain)
	})

	t.Run("no findings leaves report untouched", func(t *testing.T) {
		report := &models.Report{ExecutiveSummary: "See [1]."}
		validateCitations(report, nil)
		assert.Equal(t, "See [1].", report.ExecutiveSummary)
	})
}

func TestTargetWordCount(t *testing.T) {
	assert.Equal(t, 900, targetWordCount(models.ReportLengthShort))
	assert.Equal(t, 1500, targetWordCount(models.ReportLengthMedium))
	assert.Equal(t, 2000, targetWordCount(models.ReportLengthLong))
	assert.Equal(t, 1500, targetWordCount("unknown"))
}

func TestSourcesFromFindings(t *testing.T) {
	findings := append(someFindings(), models.Finding{
		SourceInfo: models.SourceInfo{URL: "https://a.com/1", Title: "Duplicate"},
	})
	sources := sourcesFromFindings(findings)
	require.Len(t, sources, 2)
	assert.Equal(t, "Alpha", sources[0].Title)
	assert.Equal(t, 0.8, sources[0].Confidence)
}
