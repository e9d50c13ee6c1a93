// Package models defines the data types threaded through the research
// pipeline: the graph state, agent outputs, runtime options, the final
// report, and the event envelope streamed to clients.
package models

import "time"

// Session status values.
const (
	StatusIdle      = "idle"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusStopped   = "stopped"
	StatusError     = "error"
)

// Sub-question status values.
const (
	SubQuestionPending     = "pending"
	SubQuestionResearching = "researching"
	SubQuestionCompleted   = "completed"
	SubQuestionFailed      = "failed"
)

// Source reliability buckets derived from the source domain.
const (
	ReliabilityHigh   = "high"
	ReliabilityMedium = "medium"
	ReliabilityLow    = "low"
)

// TimestampLayout is ISO-8601 UTC without a zone suffix, matching the
// persisted storage format.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// NowTimestamp returns the current UTC time in the storage timestamp format.
func NowTimestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}

// SubQuestion is one atomic question the planner derives from the user query.
type SubQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Status   string `json:"status"`
}

// Source is a discovered source with metadata for diversity tracking and
// reliability scoring.
type Source struct {
	ID            string  `json:"id"`
	URL           string  `json:"url"`
	Title         string  `json:"title"`
	Content       string  `json:"content,omitempty"`
	Domain        string  `json:"domain"`
	Confidence    float64 `json:"confidence"`
	Reliability   string  `json:"reliability"`
	Timestamp     string  `json:"timestamp"`
	SubQuestionID string  `json:"sub_question_id"`
}

// SourceInfo is the attribution attached to a finding.
type SourceInfo struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Reliability string `json:"reliability"`
}

// WordCount tracks compression of one summarized source.
type WordCount struct {
	Original int `json:"original"`
	Summary  int `json:"summary"`
}

// Finding is a compressed, attributed extract produced by the summarizer for
// one (source, sub-question) pair.
type Finding struct {
	SubQuestionID    string     `json:"sub_question_id"`
	SourceInfo       SourceInfo `json:"source_info"`
	Summary          string     `json:"summary"`
	KeyFacts         []string   `json:"key_facts"`
	RelevanceScore   float64    `json:"relevance_score"`
	CompressionRatio float64    `json:"compression_ratio"`
	WordCount        WordCount  `json:"word_count"`
}

// GapReport is the reviewer's assessment of research coverage.
type GapReport struct {
	HasGaps         bool     `json:"has_gaps"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
	Confidence      float64  `json:"confidence"`
}

// ResearchState is the single record threaded through the graph. The graph
// executor owns it during a run; the manager persists snapshots of it.
type ResearchState struct {
	Query            string        `json:"query"`
	SessionID        string        `json:"session_id"`
	Status           string        `json:"status"`
	Options          Options       `json:"options"`
	Plan             []SubQuestion `json:"plan"`
	Sources          []Source      `json:"sources"`
	Findings         []Finding     `json:"findings"`
	Gaps             *GapReport    `json:"gaps,omitempty"`
	Iteration        int           `json:"iteration"`
	NeedsFinderRetry bool          `json:"needs_finder_retry"`
	FinderRetryCount int           `json:"finder_retry_count"`
	SessionMemory    []MemoryItem  `json:"session_memory,omitempty"`
	FinalReport      *Report       `json:"final_report,omitempty"`
	Error            string        `json:"error,omitempty"`
	StartedAt        string        `json:"started_at"`
}

// MemoryItem is a compact summary of a prior completed session injected into
// the planner prompt.
type MemoryItem struct {
	SessionID        string `json:"session_id"`
	Query            string `json:"query"`
	Title            string `json:"title"`
	ExecutiveSummary string `json:"executive_summary"`
	SourcesCount     int    `json:"sources_count"`
	UpdatedAt        string `json:"updated_at"`
}

// NewInitialState creates a fresh state for a new research session.
func NewInitialState(query, sessionID string) *ResearchState {
	return &ResearchState{
		Query:     query,
		SessionID: sessionID,
		Status:    StatusIdle,
		Plan:      []SubQuestion{},
		Sources:   []Source{},
		Findings:  []Finding{},
		StartedAt: NowTimestamp(),
	}
}
