package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/hector-oviedo/open-research/pkg/llm"
	"github.com/hector-oviedo/open-research/pkg/models"
)

// Planner decomposes a research query into sub-questions.
type Planner struct {
	llm llm.Caller
}

// NewPlanner creates a planner over the given chat client.
func NewPlanner(caller llm.Caller) *Planner {
	return &Planner{llm: caller}
}

type plannerOutput struct {
	SubQuestions []struct {
		ID       string `json:"id"`
		Question string `json:"question"`
	} `json:"sub_questions"`
}

// Plan generates 3-7 sub-questions for the query. Prior-session memory and
// runtime options are folded into the prompt. A response that cannot be
// parsed falls back to a single sub-question carrying the query itself.
func (p *Planner) Plan(ctx context.Context, query string, memory []models.MemoryItem, opts models.Options) ([]models.SubQuestion, error) {
	userMessage := fmt.Sprintf(
		"Research Query: %s\n\n"+
			"Runtime constraints:\n"+
			"- max_iterations: %d\n"+
			"- max_sources_total: %d\n"+
			"- source_diversity: %t\n"+
			"- report_length_target: %s\n"+
			"\n%s\n"+
			"Generate a research plan with sub-questions.",
		query,
		opts.MaxIterations,
		opts.MaxSources,
		opts.DiversityEnabled(),
		opts.ReportLength,
		buildMemoryContext(memory),
	)

	resp, err := p.llm.ChatCompletion(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: plannerSystemPrompt},
			{Role: llm.RoleUser, Content: userMessage},
		},
		EnableThinking: true,
	})
	if err != nil {
		return nil, fmt.Errorf("planner LLM call failed: %w", err)
	}

	var out plannerOutput
	if err := ExtractJSON(resp.Content, &out); err != nil || len(out.SubQuestions) == 0 {
		return []models.SubQuestion{
			{ID: "sq-001", Question: query, Status: models.SubQuestionPending},
		}, nil
	}

	plan := make([]models.SubQuestion, 0, len(out.SubQuestions))
	for _, sq := range out.SubQuestions {
		if sq.Question == "" {
			continue
		}
		id := sq.ID
		if id == "" {
			id = fmt.Sprintf("sq-%03d", len(plan)+1)
		}
		plan = append(plan, models.SubQuestion{
			ID:       id,
			Question: sq.Question,
			Status:   models.SubQuestionPending,
		})
	}
	if len(plan) == 0 {
		plan = append(plan, models.SubQuestion{ID: "sq-001", Question: query, Status: models.SubQuestionPending})
	}
	return plan, nil
}

// buildMemoryContext renders prior completed sessions into a compact block
// the planner can draw on.
func buildMemoryContext(memory []models.MemoryItem) string {
	if len(memory) == 0 {
		return "Prior session memory: none"
	}

	lines := []string{"Prior session memory (reuse useful lines of inquiry, avoid duplicates):"}
	for i, item := range memory {
		summary := strings.ReplaceAll(strings.TrimSpace(item.ExecutiveSummary), "\n", " ")
		if len(summary) > 350 {
			summary = summary[:350] + "..."
		}
		lines = append(lines, fmt.Sprintf(
			"%d. Query: %s\n   Report: %s\n   Sources: %d\n   Summary: %s",
			i+1, strings.TrimSpace(item.Query), strings.TrimSpace(item.Title), item.SourcesCount, summary,
		))
	}
	return strings.Join(lines, "\n")
}
