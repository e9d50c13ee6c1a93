package agent

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/url"
	"strings"

	"github.com/hector-oviedo/open-research/pkg/llm"
	"github.com/hector-oviedo/open-research/pkg/models"
	"github.com/hector-oviedo/open-research/pkg/search"
)

// At most this many sources per domain when diversity is enforced.
const perDomainCap = 2

// Finder discovers sources for one sub-question: it asks the LLM for search
// queries, runs them, and normalizes the hits into Source records.
type Finder struct {
	llm      llm.Caller
	searcher search.Searcher
}

// NewFinder creates a finder over the given chat client and searcher.
func NewFinder(caller llm.Caller, searcher search.Searcher) *Finder {
	return &Finder{llm: caller, searcher: searcher}
}

// FindOptions are the per-call caps handed down from session options.
type FindOptions struct {
	ResultsPerQuery  int
	MaxSources       int
	EnforceDiversity bool
}

type searchPlan struct {
	SearchQueries []struct {
		Query    string `json:"query"`
		Priority int    `json:"priority"`
	} `json:"search_queries"`
}

// FindSources returns up to opts.MaxSources sources for the sub-question.
// Search failures on individual queries are skipped, not fatal.
func (f *Finder) FindSources(ctx context.Context, subQuestion, subQuestionID string, opts FindOptions) ([]models.Source, error) {
	queries, err := f.generateQueries(ctx, subQuestion)
	if err != nil {
		return nil, err
	}

	var sources []models.Source
	domainCounts := map[string]int{}

	for _, query := range queries {
		results, err := f.searcher.Search(ctx, query, opts.ResultsPerQuery)
		if err != nil {
			continue
		}
		for _, result := range results {
			source := newSource(result, subQuestionID)
			if opts.EnforceDiversity && domainCounts[source.Domain] >= perDomainCap {
				continue
			}
			sources = append(sources, source)
			domainCounts[source.Domain]++
			if len(sources) >= opts.MaxSources {
				return sources, nil
			}
		}
	}
	return sources, nil
}

// generateQueries asks the LLM for search queries. Unparseable output
// degrades to searching the sub-question text directly.
func (f *Finder) generateQueries(ctx context.Context, subQuestion string) ([]string, error) {
	userMessage := fmt.Sprintf(
		"Sub-question: %s\n\nGenerate search queries to find diverse, authoritative sources for this research question.",
		subQuestion,
	)

	resp, err := f.llm.ChatCompletion(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: finderSystemPrompt},
			{Role: llm.RoleUser, Content: userMessage},
		},
		EnableThinking: true,
	})
	if err != nil {
		return nil, fmt.Errorf("finder LLM call failed: %w", err)
	}

	var plan searchPlan
	if err := ExtractJSON(resp.Content, &plan); err != nil || len(plan.SearchQueries) == 0 {
		fallback := subQuestion
		if len(fallback) > 100 {
			fallback = fallback[:100]
		}
		return []string{fallback}, nil
	}

	queries := make([]string, 0, len(plan.SearchQueries))
	for _, q := range plan.SearchQueries {
		if q.Query != "" {
			queries = append(queries, q.Query)
		}
	}
	if len(queries) == 0 {
		queries = append(queries, subQuestion)
	}
	return queries, nil
}

// newSource converts one search hit into a Source with a deterministic ID
// and a domain-derived reliability score.
func newSource(result search.Result, subQuestionID string) models.Source {
	domain := hostOf(result.URL)
	reliability, confidence := classifyDomain(domain)
	title := result.Title
	if title == "" {
		title = "Untitled"
	}
	return models.Source{
		ID:            fmt.Sprintf("src-%s-%04d", subQuestionID, urlHash(result.URL)),
		URL:           result.URL,
		Title:         title,
		Content:       result.Snippet,
		Domain:        domain,
		Confidence:    confidence,
		Reliability:   reliability,
		Timestamp:     models.NowTimestamp(),
		SubQuestionID: subQuestionID,
	}
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

func urlHash(rawURL string) int {
	h := fnv.New32a()
	h.Write([]byte(rawURL))
	return int(h.Sum32() % 10000)
}

// Hosts treated as high-reliability scientific publishers.
var scientificHosts = map[string]bool{
	"arxiv.org":               true,
	"nature.com":              true,
	"science.org":             true,
	"sciencedirect.com":       true,
	"springer.com":            true,
	"link.springer.com":       true,
	"ieee.org":                true,
	"ieeexplore.ieee.org":     true,
	"acm.org":                 true,
	"dl.acm.org":              true,
	"pubmed.ncbi.nlm.nih.gov": true,
	"ncbi.nlm.nih.gov":        true,
	"who.int":                 true,
}

// classifyDomain maps a host to a reliability bucket and base confidence.
func classifyDomain(domain string) (string, float64) {
	host := strings.TrimPrefix(strings.ToLower(domain), "www.")
	switch {
	case strings.HasSuffix(host, ".gov"), strings.HasSuffix(host, ".edu"), scientificHosts[host]:
		return models.ReliabilityHigh, 0.8
	case strings.Contains(host, "."):
		return models.ReliabilityMedium, 0.65
	default:
		return models.ReliabilityLow, 0.5
	}
}
