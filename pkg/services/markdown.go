package services

import (
	"fmt"
	"strings"

	"github.com/hector-oviedo/open-research/pkg/models"
)

// ReportToMarkdown renders a structured report into the markdown document
// persisted alongside the JSON report. The rendering is deterministic: the
// same report always produces the same bytes.
func ReportToMarkdown(report *models.Report) string {
	title := report.Title
	if title == "" {
		title = "Research Report"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	b.WriteString("## Executive Summary\n")
	if report.ExecutiveSummary != "" {
		b.WriteString(report.ExecutiveSummary)
	} else {
		b.WriteString("No executive summary generated.")
	}
	b.WriteString("\n\n")

	b.WriteString("## Sections\n")
	if len(report.Sections) > 0 {
		for _, section := range report.Sections {
			heading := section.Heading
			if heading == "" {
				heading = "Untitled Section"
			}
			fmt.Fprintf(&b, "### %s\n%s\n\n", heading, section.Content)
		}
	} else {
		b.WriteString("No sections generated.\n\n")
	}

	b.WriteString("## Confidence Assessment\n")
	if report.ConfidenceAssessment != "" {
		b.WriteString(report.ConfidenceAssessment)
	} else {
		b.WriteString("No confidence assessment provided.")
	}
	b.WriteString("\n\n")

	b.WriteString("## Sources\n")
	if len(report.SourcesUsed) > 0 {
		for i, source := range report.SourcesUsed {
			title := source.Title
			if title == "" {
				title = "Untitled Source"
			}
			reliability := source.Reliability
			if reliability == "" {
				reliability = "unknown"
			}
			if source.URL != "" {
				fmt.Fprintf(&b, "%d. [%s](%s) (%s)\n", i+1, title, source.URL, reliability)
			} else {
				fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, title, reliability)
			}
		}
	} else {
		b.WriteString("No sources captured.\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "_Word count: %d_", report.WordCount)
	return b.String()
}
