package models

// ReportSection is one titled body section of the final report.
type ReportSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// ReportSource is a source cited by the final report.
type ReportSource struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Domain      string  `json:"domain"`
	Reliability string  `json:"reliability"`
	Confidence  float64 `json:"confidence"`
}

// Report is the writer's structured final output.
type Report struct {
	Title                string          `json:"title"`
	ExecutiveSummary     string          `json:"executive_summary"`
	Sections             []ReportSection `json:"sections"`
	SourcesUsed          []ReportSource  `json:"sources_used"`
	ConfidenceAssessment string          `json:"confidence_assessment"`
	WordCount            int             `json:"word_count"`
	Error                string          `json:"error,omitempty"`
}

// IsEmpty reports whether the report carries no usable content.
func (r *Report) IsEmpty() bool {
	return r == nil || (r.Title == "" && r.ExecutiveSummary == "" && len(r.Sections) == 0)
}
