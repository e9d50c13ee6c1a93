package models

// Report length presets.
const (
	ReportLengthShort  = "short"
	ReportLengthMedium = "medium"
	ReportLengthLong   = "long"
)

// Options are the per-session research tuning knobs. Zero values are filled
// with defaults and out-of-range values are clamped by Normalize.
type Options struct {
	MaxIterations         int    `json:"max_iterations,omitempty"`
	MaxSources            int    `json:"max_sources,omitempty"`
	MaxSourcesPerQuestion int    `json:"max_sources_per_question,omitempty"`
	SearchResultsPerQuery int    `json:"search_results_per_query,omitempty"`
	SourceDiversity       *bool  `json:"source_diversity,omitempty"`
	ReportLength          string `json:"report_length,omitempty"`
	IncludeSessionMemory  *bool  `json:"include_session_memory,omitempty"`
	SessionMemoryLimit    *int   `json:"session_memory_limit,omitempty"`
	SummarizerSourceLimit int    `json:"summarizer_source_limit,omitempty"`
}

// DefaultOptions returns a fully normalized Options with every default filled.
func DefaultOptions() Options {
	var o Options
	o.Normalize()
	return o
}

// Normalize fills defaults for zero values and clamps everything to its
// documented range. Safe to call more than once.
func (o *Options) Normalize() {
	o.MaxIterations = clampDefault(o.MaxIterations, 1, 10, 3)
	o.MaxSources = clampDefault(o.MaxSources, 3, 40, 12)
	o.MaxSourcesPerQuestion = clampDefault(o.MaxSourcesPerQuestion, 1, 12, 4)
	o.SearchResultsPerQuery = clampDefault(o.SearchResultsPerQuery, 1, 15, 5)
	o.SummarizerSourceLimit = clampDefault(o.SummarizerSourceLimit, 1, 20, 6)

	if o.SourceDiversity == nil {
		o.SourceDiversity = boolPtr(true)
	}
	if o.IncludeSessionMemory == nil {
		o.IncludeSessionMemory = boolPtr(true)
	}
	if o.SessionMemoryLimit == nil {
		o.SessionMemoryLimit = intPtr(3)
	} else if *o.SessionMemoryLimit < 0 {
		o.SessionMemoryLimit = intPtr(0)
	} else if *o.SessionMemoryLimit > 8 {
		o.SessionMemoryLimit = intPtr(8)
	}

	switch o.ReportLength {
	case ReportLengthShort, ReportLengthMedium, ReportLengthLong:
	default:
		o.ReportLength = ReportLengthMedium
	}
}

// DiversityEnabled reports whether per-domain source caps apply.
func (o *Options) DiversityEnabled() bool {
	return o.SourceDiversity == nil || *o.SourceDiversity
}

// MemoryEnabled reports whether prior-session context is injected.
func (o *Options) MemoryEnabled() bool {
	return o.IncludeSessionMemory == nil || *o.IncludeSessionMemory
}

// MemoryLimit returns how many prior sessions to load as memory context.
func (o *Options) MemoryLimit() int {
	if o.SessionMemoryLimit == nil {
		return 3
	}
	return *o.SessionMemoryLimit
}

func clampDefault(v, min, max, def int) int {
	if v == 0 {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }
