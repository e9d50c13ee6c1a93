package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hector-oviedo/open-research/pkg/agent"
	"github.com/hector-oviedo/open-research/pkg/fetch"
	"github.com/hector-oviedo/open-research/pkg/llm"
	"github.com/hector-oviedo/open-research/pkg/models"
	"github.com/hector-oviedo/open-research/pkg/search"
)

// Node names.
const (
	nodePlanner    = "planner"
	nodeFinder     = "finder"
	nodeSummarizer = "summarizer"
	nodeReviewer   = "reviewer"
	nodeWriter     = "writer"
)

// Finder retries triggered by a zero-key-facts summarizer pass are capped
// independently of the iteration budget.
const maxFinderRetries = 2

// Emitter receives progress events as the graph advances. Emission must not
// block the run; the session manager fans these out to stream and log.
type Emitter func(ctx context.Context, event models.Event)

// Deps bundles everything a research run needs.
type Deps struct {
	LLM          llm.Caller
	Searcher     search.Searcher
	Fetcher      fetch.Fetcher
	Emitter      Emitter
	Checkpointer Checkpointer
	Logger       *slog.Logger
}

// Research wires the five agents into the workflow:
//
//	planner → finder → summarizer → (retry_finder | reviewer)
//	reviewer → (planner | writer), writer → end
type Research struct {
	planner    *agent.Planner
	finder     *agent.Finder
	summarizer *agent.Summarizer
	reviewer   *agent.Reviewer
	writer     *agent.Writer
	fetcher    fetch.Fetcher
	emit       Emitter
	engine     *Engine
	log        *slog.Logger
}

// NewResearch builds the research graph from its dependencies.
func NewResearch(deps Deps) *Research {
	emit := deps.Emitter
	if emit == nil {
		emit = func(context.Context, models.Event) {}
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	r := &Research{
		planner:    agent.NewPlanner(deps.LLM),
		finder:     agent.NewFinder(deps.LLM, deps.Searcher),
		summarizer: agent.NewSummarizer(deps.LLM),
		reviewer:   agent.NewReviewer(deps.LLM),
		writer:     agent.NewWriter(deps.LLM),
		fetcher:    deps.Fetcher,
		emit:       emit,
		log:        log,
	}

	engine := NewEngine(deps.Checkpointer)
	engine.AddNode(nodePlanner, r.plannerNode)
	engine.AddNode(nodeFinder, r.finderNode)
	engine.AddNode(nodeSummarizer, r.summarizerNode)
	engine.AddNode(nodeReviewer, r.reviewerNode)
	engine.AddNode(nodeWriter, r.writerNode)

	engine.SetEntryPoint(nodePlanner)
	engine.AddEdge(nodePlanner, nodeFinder)
	engine.AddEdge(nodeFinder, nodeSummarizer)
	engine.AddConditionalEdges(nodeSummarizer, summarizerRouter, map[string]string{
		"retry_finder": nodeFinder,
		"continue":     nodeReviewer,
	})
	engine.AddConditionalEdges(nodeReviewer, reviewerRouter, map[string]string{
		"continue": nodePlanner,
		"finish":   nodeWriter,
	})
	engine.AddEdge(nodeWriter, End)
	r.engine = engine

	return r
}

// Run executes a full research session within the timeout. The state is
// mutated in place; on timeout or failure its status becomes "error" with
// the cause recorded. Context cancellation (stop) is passed back to the
// caller to classify.
func (r *Research) Run(ctx context.Context, state *models.ResearchState, timeout time.Duration) error {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	state.Status = models.StatusRunning
	r.log.Info("starting research run",
		"session_id", state.SessionID,
		"max_iterations", state.Options.MaxIterations)

	err := r.engine.Run(runCtx, state)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		// Stopped from outside; the manager records the stop.
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		state.Status = models.StatusError
		state.Error = fmt.Sprintf("Research timed out after %.1fs", timeout.Seconds())
		return err
	}
	state.Status = models.StatusError
	state.Error = err.Error()
	return err
}

func (r *Research) plannerNode(ctx context.Context, state *models.ResearchState) error {
	r.emitEvent(ctx, state, models.EventPlannerRunning, "Analyzing query and generating research plan...", nil)

	state.Iteration++
	query := state.Query
	if state.Iteration > 1 && state.Gaps != nil && len(state.Gaps.Recommendations) > 0 {
		recs := state.Gaps.Recommendations
		if len(recs) > 3 {
			recs = recs[:3]
		}
		query = fmt.Sprintf("%s (Additional focus: %s)", state.Query, strings.Join(recs, " "))
		r.emitEvent(ctx, state, models.EventPlannerRunning,
			fmt.Sprintf("Iteration %d: Refining research based on gaps...", state.Iteration), nil)
	}

	plan, err := r.planner.Plan(ctx, query, state.SessionMemory, state.Options)
	if err != nil {
		return err
	}
	state.Plan = plan

	questions := make([]string, len(plan))
	for i, sq := range plan {
		questions[i] = sq.Question
	}
	r.emitEvent(ctx, state, models.EventPlannerComplete,
		fmt.Sprintf("Generated %d sub-questions to research", len(plan)),
		map[string]any{
			"sub_questions_count": len(plan),
			"questions":           questions,
		})
	return nil
}

func (r *Research) finderNode(ctx context.Context, state *models.ResearchState) error {
	r.emitEvent(ctx, state, models.EventFinderRunning,
		"Searching the web for diverse sources across domains...", nil)

	opts := state.Options
	seen := map[string]bool{}
	var unique []models.Source
	domains := map[string]bool{}

	for _, sq := range state.Plan {
		found, err := r.finder.FindSources(ctx, sq.Question, sq.ID, agent.FindOptions{
			ResultsPerQuery:  opts.SearchResultsPerQuery,
			MaxSources:       opts.MaxSourcesPerQuestion,
			EnforceDiversity: opts.DiversityEnabled(),
		})
		if err != nil {
			return err
		}

		for _, source := range found {
			if source.URL == "" || seen[source.URL] {
				continue
			}
			seen[source.URL] = true
			unique = append(unique, source)
			if source.Domain != "" {
				domains[source.Domain] = true
			}

			r.emitEvent(ctx, state, models.EventFinderSource,
				fmt.Sprintf("Found source: %s...", truncate(source.Title, 50)),
				map[string]any{
					"source_title":   source.Title,
					"source_url":     source.URL,
					"source_domain":  source.Domain,
					"sources_so_far": len(unique),
				})
		}
		if len(unique) >= opts.MaxSources {
			break
		}
	}
	if len(unique) > opts.MaxSources {
		unique = unique[:opts.MaxSources]
	}
	state.Sources = unique

	sampleURLs := make([]string, 0, 5)
	for _, s := range unique {
		if len(sampleURLs) == 5 {
			break
		}
		sampleURLs = append(sampleURLs, s.URL)
	}
	r.emitEvent(ctx, state, models.EventFinderComplete,
		fmt.Sprintf("Discovered %d unique sources from %d different domains", len(unique), len(domains)),
		map[string]any{
			"sources_count": len(unique),
			"domains_count": len(domains),
			"urls":          sampleURLs,
		})
	return nil
}

func (r *Research) summarizerNode(ctx context.Context, state *models.ResearchState) error {
	r.emitEvent(ctx, state, models.EventSummarizerRunning,
		"Fetching and analyzing source content...", nil)

	sqMap := map[string]string{}
	for _, sq := range state.Plan {
		sqMap[sq.ID] = sq.Question
	}

	sources := state.Sources
	if limit := state.Options.SummarizerSourceLimit; len(sources) > limit {
		sources = sources[:limit]
	}

	var findings []models.Finding
	totalKeyFacts := 0
	fetched := 0
	failed := 0

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := r.fetcher.FetchContent(ctx, source.URL)
		if err == nil && content != "" {
			fetched++
			r.emitEvent(ctx, state, models.EventSummarizerFetch,
				fmt.Sprintf("Fetched %d chars from %s...", len(content), truncate(source.Title, 50)),
				map[string]any{
					"source_url":     source.URL,
					"content_length": len(content),
				})
		} else {
			failed++
			content = fmt.Sprintf(
				"Source: %s\nURL: %s\n\n[Content could not be fetched - using title and metadata only]",
				source.Title, source.URL)
		}

		finding, err := r.summarizer.Summarize(ctx, content, sqMap[source.SubQuestionID], source.Title, source.URL)
		if err != nil {
			failed++
			r.log.Warn("failed to summarize source", "url", source.URL, "error", err)
			continue
		}

		finding.SourceInfo = models.SourceInfo{
			URL:         source.URL,
			Title:       source.Title,
			Reliability: source.Reliability,
		}
		finding.SubQuestionID = source.SubQuestionID
		findings = append(findings, finding)
		totalKeyFacts += len(finding.KeyFacts)
	}

	// Findings accumulate across iterations.
	state.Findings = append(state.Findings, findings...)

	if totalKeyFacts == 0 && len(state.Sources) > 0 {
		state.NeedsFinderRetry = true
		r.emitEvent(ctx, state, models.EventSummarizerRetry,
			fmt.Sprintf("No key facts extracted (%d fetched, %d failed). Extending search...", fetched, failed),
			map[string]any{
				"retry_reason":  "zero_key_facts",
				"fetched_count": fetched,
				"failed_count":  failed,
			})
	} else {
		state.NeedsFinderRetry = false
		r.emitEvent(ctx, state, models.EventSummarizerComplete,
			fmt.Sprintf("Extracted %d key facts from %d sources (%d fetched, %d failed)",
				totalKeyFacts, len(findings), fetched, failed),
			map[string]any{
				"findings_count":  len(findings),
				"key_facts_count": totalKeyFacts,
				"fetched_count":   fetched,
				"failed_count":    failed,
			})
	}
	return nil
}

func (r *Research) reviewerNode(ctx context.Context, state *models.ResearchState) error {
	r.emitEvent(ctx, state, models.EventReviewerRunning,
		"Analyzing findings for coverage gaps and depth issues...", nil)

	report, err := r.reviewer.Review(ctx, state.Plan, state.Findings, state.Iteration, state.Options.MaxIterations)
	if err != nil {
		return err
	}
	state.Gaps = &report

	gapsCount := len(report.Gaps)
	if report.HasGaps && state.Iteration < state.Options.MaxIterations {
		r.emitEvent(ctx, state, models.EventReviewerComplete,
			fmt.Sprintf("Found %d gaps (confidence: %.0f%%). Starting iteration %d...",
				gapsCount, report.Confidence*100, state.Iteration+1),
			map[string]any{
				"gaps_found":  gapsCount,
				"next_action": "iterate",
			})
	} else {
		r.emitEvent(ctx, state, models.EventReviewerComplete,
			fmt.Sprintf("Review complete. %d gaps found, confidence: %.0f%%. Proceeding to write report...",
				gapsCount, report.Confidence*100),
			map[string]any{
				"gaps_found":  gapsCount,
				"next_action": "finish",
			})
	}
	return nil
}

func (r *Research) writerNode(ctx context.Context, state *models.ResearchState) error {
	r.emitEvent(ctx, state, models.EventWriterRunning,
		fmt.Sprintf("Synthesizing %d findings into professional report with citations...", len(state.Findings)), nil)

	report := r.writer.WriteReport(ctx, state)
	state.FinalReport = report
	state.Status = models.StatusCompleted

	r.emitEvent(ctx, state, models.EventWriterComplete,
		fmt.Sprintf("Report complete: %d words, %d sources cited", report.WordCount, len(report.SourcesUsed)),
		map[string]any{
			"word_count":    report.WordCount,
			"sources_cited": len(report.SourcesUsed),
		})
	return nil
}

// summarizerRouter loops back to the finder when a pass produced zero key
// facts, at most maxFinderRetries times.
func summarizerRouter(state *models.ResearchState) string {
	if state.NeedsFinderRetry && state.FinderRetryCount < maxFinderRetries {
		state.FinderRetryCount++
		return "retry_finder"
	}
	return "continue"
}

// reviewerRouter finishes at the iteration cap or when coverage is
// adequate, otherwise loops back to the planner.
func reviewerRouter(state *models.ResearchState) string {
	if state.Iteration >= state.Options.MaxIterations {
		return "finish"
	}
	if state.Gaps == nil || !state.Gaps.HasGaps {
		return "finish"
	}
	return "continue"
}

func (r *Research) emitEvent(ctx context.Context, state *models.ResearchState, eventType, message string, extra map[string]any) {
	event := models.NewEvent(eventType, state.SessionID, message)
	if len(extra) > 0 {
		event.Extra = extra
	}
	r.emit(ctx, event)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
