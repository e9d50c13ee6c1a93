package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector-oviedo/open-research/ent/researchsession"
	"github.com/hector-oviedo/open-research/pkg/models"
	testdb "github.com/hector-oviedo/open-research/test/database"
)

func newTestService(t *testing.T) *SessionService {
	return NewSessionService(testdb.NewTestClient(t))
}

func newRunningState(sessionID string) *models.ResearchState {
	state := models.NewInitialState("test query", sessionID)
	state.Status = models.StatusRunning
	state.Options = models.DefaultOptions()
	return state
}

func TestSessionService_UpsertSession(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	t.Run("creates then updates one row", func(t *testing.T) {
		state := newRunningState("sess-upsert")
		require.NoError(t, service.UpsertSession(ctx, state))

		state.Iteration = 2
		state.Status = models.StatusCompleted
		require.NoError(t, service.UpsertSession(ctx, state))

		rows, err := service.ListSessions(ctx, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, researchsession.StatusCompleted, rows[0].Status)
		assert.Equal(t, 0, rows[0].EventsCount)

		restored, err := StateFromRow(rows[0])
		require.NoError(t, err)
		assert.Equal(t, 2, restored.Iteration)
		assert.Equal(t, "test query", restored.Query)
	})

	t.Run("stopped status sets is_stopped", func(t *testing.T) {
		state := newRunningState("sess-stopped")
		state.Status = models.StatusStopped
		require.NoError(t, service.UpsertSession(ctx, state))

		row, err := service.GetSession(ctx, "sess-stopped")
		require.NoError(t, err)
		assert.True(t, row.IsStopped)
	})

	t.Run("missing session id is rejected", func(t *testing.T) {
		state := newRunningState("")
		err := service.UpsertSession(ctx, state)
		assert.True(t, IsValidationError(err))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSessionService_AppendEvent(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.UpsertSession(ctx, newRunningState("sess-events")))

	t.Run("indices are contiguous from zero", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			event := models.NewEvent(models.EventHeartbeat, "sess-events", "").
				With("tick", i)
			index, err := service.AppendEvent(ctx, event)
			require.NoError(t, err)
			assert.Equal(t, i, index)
		}

		events, err := service.ListEvents(ctx, "sess-events", -1)
		require.NoError(t, err)
		require.Len(t, events, 5)
		for i, stored := range events {
			assert.Equal(t, i, stored.Index)
		}

		row, err := service.GetSession(ctx, "sess-events")
		require.NoError(t, err)
		assert.Equal(t, 5, row.EventsCount)
	})

	t.Run("afterIndex filters replayed events", func(t *testing.T) {
		events, err := service.ListEvents(ctx, "sess-events", 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, 3, events[0].Index)
		assert.Equal(t, 4, events[1].Index)
	})

	t.Run("payload round-trips through the log", func(t *testing.T) {
		event := models.NewEvent(models.EventFinderSource, "sess-events", "Found").
			With("source_url", "https://a.com").
			With("sources_so_far", 7)
		_, err := service.AppendEvent(ctx, event)
		require.NoError(t, err)

		events, err := service.ListEvents(ctx, "sess-events", 4)
		require.NoError(t, err)
		require.Len(t, events, 1)
		got := events[0].Event
		assert.Equal(t, models.EventFinderSource, got.Type)
		assert.Equal(t, "Found", got.Message)
		assert.Equal(t, "https://a.com", got.Extra["source_url"])
	})

	t.Run("unknown session fails", func(t *testing.T) {
		_, err := service.AppendEvent(ctx, models.NewEvent(models.EventHeartbeat, "nope", ""))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_SaveFinalReport(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	report := &models.Report{
		Title:            "Findings",
		ExecutiveSummary: "Summary.",
		Sections:         []models.ReportSection{{Heading: "H", Content: "C"}},
		SourcesUsed: []models.ReportSource{
			{ID: "source-001", URL: "https://a.com", Title: "A", Reliability: models.ReliabilityHigh},
		},
		ConfidenceAssessment: "High.",
		WordCount:            321,
	}

	require.NoError(t, service.UpsertSession(ctx, newRunningState("sess-report")))
	require.NoError(t, service.SaveFinalReport(ctx, "sess-report", report, "# Findings"))

	t.Run("marks session completed", func(t *testing.T) {
		row, err := service.GetSession(ctx, "sess-report")
		require.NoError(t, err)
		assert.Equal(t, researchsession.StatusCompleted, row.Status)
		assert.False(t, row.IsStopped)
	})

	t.Run("stores json and markdown documents", func(t *testing.T) {
		docs, err := service.ListDocuments(ctx, "sess-report")
		require.NoError(t, err)
		require.Len(t, docs, 2)

		jsonDoc, err := service.GetDocument(ctx, "sess-report-json")
		require.NoError(t, err)
		assert.Equal(t, DocTypeJSON, jsonDoc.DocType)
		assert.Equal(t, 321, int(jsonDoc.Metadata["word_count"].(float64)))

		mdDoc, err := service.GetDocument(ctx, "sess-report-markdown")
		require.NoError(t, err)
		assert.Equal(t, "# Findings", mdDoc.Content)
	})

	t.Run("report round-trips", func(t *testing.T) {
		got, err := service.GetReport(ctx, "sess-report")
		require.NoError(t, err)
		assert.Equal(t, report.Title, got.Title)
		assert.Equal(t, report.WordCount, got.WordCount)
		require.Len(t, got.SourcesUsed, 1)
		assert.Equal(t, "https://a.com", got.SourcesUsed[0].URL)
	})

	t.Run("rerun replaces the document pair", func(t *testing.T) {
		updated := *report
		updated.WordCount = 999
		require.NoError(t, service.SaveFinalReport(ctx, "sess-report", &updated, "# v2"))

		docs, err := service.ListDocuments(ctx, "sess-report")
		require.NoError(t, err)
		assert.Len(t, docs, 2)

		got, err := service.GetReport(ctx, "sess-report")
		require.NoError(t, err)
		assert.Equal(t, 999, got.WordCount)
	})

	t.Run("missing session fails", func(t *testing.T) {
		err := service.SaveFinalReport(ctx, "nope", report, "md")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_DeleteSession(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.UpsertSession(ctx, newRunningState("sess-del")))
	_, err := service.AppendEvent(ctx, models.NewEvent(models.EventHeartbeat, "sess-del", ""))
	require.NoError(t, err)

	require.NoError(t, service.DeleteSession(ctx, "sess-del"))

	_, err = service.GetSession(ctx, "sess-del")
	assert.ErrorIs(t, err, ErrNotFound)

	events, err := service.ListEvents(ctx, "sess-del", -1)
	require.NoError(t, err)
	assert.Empty(t, events)

	assert.ErrorIs(t, service.DeleteSession(ctx, "sess-del"), ErrNotFound)
}

func TestSessionService_RecentCompletedReports(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("sess-mem-%d", i)
		state := newRunningState(id)
		state.Query = fmt.Sprintf("query %d", i)
		require.NoError(t, service.UpsertSession(ctx, state))
		require.NoError(t, service.SaveFinalReport(ctx, id, &models.Report{
			Title:            fmt.Sprintf("Report %d", i),
			ExecutiveSummary: "Summary.",
			SourcesUsed:      []models.ReportSource{{URL: "https://a.com"}},
			WordCount:        100,
		}, "# md"))
	}

	// Completed session without a report document is skipped.
	noReport := newRunningState("sess-mem-none")
	noReport.Status = models.StatusCompleted
	require.NoError(t, service.UpsertSession(ctx, noReport))

	items, err := service.RecentCompletedReports(ctx, 10, "sess-mem-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.NotEqual(t, "sess-mem-1", item.SessionID)
		assert.NotEmpty(t, item.Title)
		assert.Equal(t, 1, item.SourcesCount)
	}

	items, err = service.RecentCompletedReports(ctx, 0, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}
