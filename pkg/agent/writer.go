package agent

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/hector-oviedo/open-research/pkg/llm"
	"github.com/hector-oviedo/open-research/pkg/models"
)

// Hard upper bound on report length in words, regardless of preset.
const maxReportWords = 2000

// Repair-pass input is truncated to this many characters.
const repairInputCap = 12000

var (
	linkCitationRe    = regexp.MustCompile(`\[🔗[^\]]*\]\(([^)]+)\)`)
	numericCitationRe = regexp.MustCompile(`\[(\d+)\]`)
)

// Writer synthesizes the final report. It demands strict JSON from the
// model, runs one repair pass on malformed output, and falls back to a
// minimal report built from the raw text when even that fails.
type Writer struct {
	llm llm.Caller
}

// NewWriter creates a writer over the given chat client.
func NewWriter(caller llm.Caller) *Writer {
	return &Writer{llm: caller}
}

// WriteReport synthesizes findings into a report. Never returns an error
// report-free: LLM and parse failures produce an error report instead.
func (w *Writer) WriteReport(ctx context.Context, state *models.ResearchState) *models.Report {
	if len(state.Findings) == 0 {
		return errorReport("No research findings available to synthesize.")
	}

	prompt := w.buildContext(state)

	resp, err := w.llm.ChatCompletion(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: writerSystemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		Format: "json",
	})
	if err != nil {
		return errorReport(err.Error())
	}

	content := strings.TrimSpace(resp.Content)
	report := w.parseReport(content, state.Findings)
	if report == nil {
		repaired := w.repairOutput(ctx, content)
		report = w.parseReport(repaired, state.Findings)
	}
	if report == nil {
		report = fallbackReport(content, state.Findings)
	}
	return report
}

// buildContext renders the full research state into the writer prompt:
// constraints, plan, per-finding source blocks, and the gap analysis.
func (w *Writer) buildContext(state *models.ResearchState) string {
	var parts []string
	targetWords := targetWordCount(state.Options.ReportLength)

	parts = append(parts,
		fmt.Sprintf("# Original Research Query\n%s\n", state.Query),
		"## Runtime Constraints",
		fmt.Sprintf("- Target report length: %s", state.Options.ReportLength),
		fmt.Sprintf("- Approximate max words: %d", targetWords),
		"",
		"## Research Plan (Sub-Questions)",
	)
	for i, sq := range state.Plan {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, sq.Question))
	}
	parts = append(parts, "")

	parts = append(parts,
		fmt.Sprintf("## Research Findings (%d sources)\n", len(state.Findings)),
		"**CITATION FORMAT (CRITICAL - USE MARKDOWN LINKS):**",
		"Format: [🔗 Source Title](Source URL)",
		"",
		"**Available Sources:**",
	)
	for i, finding := range state.Findings {
		parts = append(parts, fmt.Sprintf("  Source %d: [%s](%s)", i+1, finding.SourceInfo.Title, finding.SourceInfo.URL))
	}
	parts = append(parts, "", "---", "")

	for i, finding := range state.Findings {
		parts = append(parts,
			fmt.Sprintf("### Finding %d", i+1),
			fmt.Sprintf("**Source URL**: %s", finding.SourceInfo.URL),
			fmt.Sprintf("**Source Title**: %s", finding.SourceInfo.Title),
			fmt.Sprintf("**Citation to use**: [🔗 %s](%s)", finding.SourceInfo.Title, finding.SourceInfo.URL),
			fmt.Sprintf("**Reliability**: %s", finding.SourceInfo.Reliability),
			fmt.Sprintf("\n**Summary**: %s", finding.Summary),
		)
		if len(finding.KeyFacts) > 0 {
			parts = append(parts, "\n**Key Facts**:")
			for _, fact := range finding.KeyFacts {
				parts = append(parts, fmt.Sprintf("- %s", fact))
			}
		}
		parts = append(parts, fmt.Sprintf("\n*Relevance: %.2f*", finding.RelevanceScore), "")
	}

	if state.Gaps != nil {
		parts = append(parts,
			"## Gap Analysis",
			fmt.Sprintf("**Confidence**: %.2f", state.Gaps.Confidence),
		)
		if len(state.Gaps.Gaps) > 0 {
			parts = append(parts, fmt.Sprintf("\n**Identified Gaps (%d)**:", len(state.Gaps.Gaps)))
			for _, gap := range state.Gaps.Gaps {
				parts = append(parts, fmt.Sprintf("- %s", gap))
			}
		}
		if len(state.Gaps.Recommendations) > 0 {
			parts = append(parts, "\n**Recommendations**:")
			for _, rec := range state.Gaps.Recommendations {
				parts = append(parts, fmt.Sprintf("- %s", rec))
			}
		}
	}

	return strings.Join(parts, "\n")
}

type rawSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

type rawSource struct {
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Reliability string  `json:"reliability"`
	Domain      string  `json:"domain"`
	Confidence  float64 `json:"confidence"`
}

type rawReport struct {
	Title                string       `json:"title"`
	ExecutiveSummary     string       `json:"executive_summary"`
	Sections             []rawSection `json:"sections"`
	SourcesUsed          []rawSource  `json:"sources_used"`
	ConfidenceAssessment string       `json:"confidence_assessment"`
	WordCount            int          `json:"word_count"`
}

// parseReport parses model output into a normalized report, or nil when the
// output holds no usable JSON.
func (w *Writer) parseReport(content string, findings []models.Finding) *models.Report {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	var raw rawReport
	if err := ExtractJSON(content, &raw); err != nil {
		return nil
	}

	report := &models.Report{
		Title:                raw.Title,
		ExecutiveSummary:     raw.ExecutiveSummary,
		ConfidenceAssessment: raw.ConfidenceAssessment,
		WordCount:            raw.WordCount,
		Sections:             []models.ReportSection{},
	}
	if report.Title == "" {
		report.Title = "Research Report"
	}
	if report.ExecutiveSummary == "" {
		report.ExecutiveSummary = "No executive summary generated."
	}
	if report.ConfidenceAssessment == "" {
		report.ConfidenceAssessment = "Confidence not assessed."
	}
	for _, section := range raw.Sections {
		heading := section.Heading
		if heading == "" {
			heading = "Untitled Section"
		}
		report.Sections = append(report.Sections, models.ReportSection{
			Heading: heading,
			Content: section.Content,
		})
	}

	validateCitations(report, findings)

	if report.WordCount == 0 {
		total := report.ExecutiveSummary
		for _, section := range report.Sections {
			total += " " + section.Content
		}
		report.WordCount = len(strings.Fields(total))
	}
	return report
}

// repairOutput requests a strict JSON rewrite of malformed first-pass output.
func (w *Writer) repairOutput(ctx context.Context, content string) string {
	if content == "" {
		return ""
	}
	if len(content) > repairInputCap {
		content = content[:repairInputCap]
	}

	resp, err := w.llm.ChatCompletion(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "Return valid JSON only. No markdown fences, no commentary. Match the target schema exactly."},
			{Role: llm.RoleUser, Content: "Rewrite the following report text into strict JSON with fields: " +
				"title, executive_summary, sections[{heading,content}], " +
				"sources_used[{url,title,reliability}], confidence_assessment, word_count.\n\n" +
				"INPUT:\n" + content},
		},
		Format: "json",
	})
	if err != nil {
		return ""
	}
	return strings.TrimSpace(resp.Content)
}

// fallbackReport builds a usable report from raw freeform text.
func fallbackReport(content string, findings []models.Finding) *models.Report {
	summary := content
	if len(summary) > 500 {
		summary = summary[:500]
	}
	return &models.Report{
		Title:                "Research Report",
		ExecutiveSummary:     summary,
		Sections:             []models.ReportSection{{Heading: "Findings", Content: content}},
		SourcesUsed:          sourcesFromFindings(findings),
		ConfidenceAssessment: "Confidence reduced because model returned malformed structured output.",
		WordCount:            len(strings.Fields(content)),
	}
}

// errorReport is the minimal report shape for runs that produced nothing.
func errorReport(message string) *models.Report {
	return &models.Report{
		Title:                "Research Report (Error)",
		ExecutiveSummary:     fmt.Sprintf("Unable to generate complete report: %s", message),
		Sections:             []models.ReportSection{},
		SourcesUsed:          []models.ReportSource{},
		ConfidenceAssessment: "Failed - insufficient data",
		WordCount:            0,
		Error:                message,
	}
}

// validateCitations fixes citations in the executive summary and every
// section: markdown-link citations survive only when their URL belongs to a
// finding, and numeric [N] citations are converted to link form when N maps
// to a finding. sources_used is always recomputed from findings so it stays
// a subset of what was actually researched.
func validateCitations(report *models.Report, findings []models.Finding) {
	if len(findings) == 0 {
		return
	}

	validURLs := map[string]bool{}
	for _, finding := range findings {
		if finding.SourceInfo.URL != "" {
			validURLs[finding.SourceInfo.URL] = true
		}
	}

	fix := func(text string) string {
		text = numericCitationRe.ReplaceAllStringFunc(text, func(match string) string {
			n := 0
			fmt.Sscanf(match, "[%d]", &n)
			if n >= 1 && n <= len(findings) {
				info := findings[n-1].SourceInfo
				if info.URL != "" {
					title := info.Title
					if title == "" {
						title = fmt.Sprintf("Source %d", n)
					}
					return fmt.Sprintf("[🔗 %s](%s)", title, info.URL)
				}
			}
			return ""
		})
		return linkCitationRe.ReplaceAllStringFunc(text, func(match string) string {
			m := linkCitationRe.FindStringSubmatch(match)
			if m != nil && validURLs[m[1]] {
				return match
			}
			return ""
		})
	}

	report.ExecutiveSummary = fix(report.ExecutiveSummary)
	for i := range report.Sections {
		report.Sections[i].Content = fix(report.Sections[i].Content)
	}

	report.SourcesUsed = sourcesFromFindings(findings)
}

// sourcesFromFindings derives the canonical sources_used list: unique URLs
// in finding order with full metadata.
func sourcesFromFindings(findings []models.Finding) []models.ReportSource {
	sources := []models.ReportSource{}
	seen := map[string]bool{}
	for i, finding := range findings {
		info := finding.SourceInfo
		if info.URL == "" || seen[info.URL] {
			continue
		}
		seen[info.URL] = true
		title := info.Title
		if title == "" {
			title = "Unknown"
		}
		reliability := info.Reliability
		if reliability == "" {
			reliability = models.ReliabilityMedium
		}
		sources = append(sources, models.ReportSource{
			ID:          fmt.Sprintf("source-%03d", i+1),
			URL:         info.URL,
			Title:       title,
			Domain:      domainOf(info.URL),
			Reliability: reliability,
			Confidence:  0.8,
		})
	}
	return sources
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// targetWordCount translates a length preset to a word target, bounded by
// the global maximum.
func targetWordCount(reportLength string) int {
	presets := map[string]int{
		models.ReportLengthShort:  900,
		models.ReportLengthMedium: 1500,
		models.ReportLengthLong:   2300,
	}
	target, ok := presets[reportLength]
	if !ok {
		target = 1500
	}
	if target > maxReportWords {
		target = maxReportWords
	}
	return target
}
