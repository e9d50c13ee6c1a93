package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector-oviedo/open-research/pkg/config"
	"github.com/hector-oviedo/open-research/pkg/graph"
	"github.com/hector-oviedo/open-research/pkg/models"
	"github.com/hector-oviedo/open-research/pkg/services"
	"github.com/hector-oviedo/open-research/pkg/session"
	"github.com/hector-oviedo/open-research/test/database"
)

type stubRunner struct {
	run func(ctx context.Context, state *models.ResearchState) error
}

func (r stubRunner) Run(ctx context.Context, state *models.ResearchState, _ time.Duration) error {
	return r.run(ctx, state)
}

func factoryFor(run func(ctx context.Context, state *models.ResearchState) error) session.RunnerFactory {
	return func(_ graph.Emitter, _ graph.Checkpointer) session.Runner {
		return stubRunner{run: run}
	}
}

func completeRun(_ context.Context, state *models.ResearchState) error {
	state.Iteration = 1
	state.FinalReport = &models.Report{
		Title:            "Fusion Energy Outlook",
		ExecutiveSummary: "An overview.",
		WordCount:        120,
	}
	state.Status = models.StatusCompleted
	return nil
}

func blockRun(ctx context.Context, _ *models.ResearchState) error {
	<-ctx.Done()
	return ctx.Err()
}

func newTestServer(t *testing.T, factory session.RunnerFactory) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := services.NewSessionService(database.NewTestClient(t))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := session.NewManager(store, factory, time.Minute, logger)
	cfg := &config.Config{OllamaModel: "qwen3:8b"}

	srv := NewServer(manager, store, cfg, logger)
	return srv.Router(), manager
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func waitIdle(t *testing.T, manager *session.Manager, sessionID string) {
	t.Helper()
	require.Eventually(t, func() bool {
		sess, ok := manager.GetSession(context.Background(), sessionID)
		return ok && !sess.IsRunning()
	}, 5*time.Second, 10*time.Millisecond)
}

func startSession(t *testing.T, router *gin.Engine, query string) string {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/api/research/start", gin.H{"query": query})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	id, _ := body["session_id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestHealth(t *testing.T) {
	router, _ := newTestServer(t, factoryFor(completeRun))

	rec := doRequest(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "0.1.0", body["version"])
	cfg := body["config"].(map[string]any)
	assert.Equal(t, "qwen3:8b", cfg["ollama_model"])
}

func TestStartResearch_Validation(t *testing.T) {
	router, _ := newTestServer(t, factoryFor(completeRun))

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/research/start", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("query too short", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/research/start", gin.H{"query": "  ab  "})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["error"], "between 3 and 2000")
	})

	t.Run("query too long", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/research/start",
			gin.H{"query": strings.Repeat("q", maxQueryLength+1)})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestStartResearch_ReturnsURLs(t *testing.T) {
	router, manager := newTestServer(t, factoryFor(completeRun))

	rec := doRequest(t, router, http.MethodPost, "/api/research/start",
		gin.H{"query": "How do tokamaks confine plasma?", "options": gin.H{"max_iterations": 2}})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "started", body["status"])
	assert.Equal(t, "How do tokamaks confine plasma?", body["query"])

	id := body["session_id"].(string)
	assert.Equal(t, "/api/research/"+id+"/events", body["stream_url"])
	assert.Equal(t, "/api/research/"+id+"/stop", body["stop_url"])
	assert.Equal(t, "/api/research/"+id+"/status", body["status_url"])

	opts := body["options"].(map[string]any)
	assert.Equal(t, float64(2), opts["max_iterations"])
	assert.Equal(t, float64(12), opts["max_sources"])

	waitIdle(t, manager, id)
}

func TestResearchLifecycle(t *testing.T) {
	router, manager := newTestServer(t, factoryFor(completeRun))

	id := startSession(t, router, "How do tokamaks confine plasma?")
	waitIdle(t, manager, id)

	t.Run("status", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/research/"+id+"/status", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, models.StatusCompleted, body["status"])
		assert.Equal(t, false, body["is_running"])
		progress := body["progress"].(map[string]any)
		assert.Equal(t, float64(1), progress["iteration"])
		result := body["result"].(map[string]any)
		assert.Equal(t, "Fusion Energy Outlook", result["title"])
		assert.Equal(t, float64(120), result["word_count"])
	})

	t.Run("sessions list", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/research/sessions", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(1), body["count"])
		item := body["sessions"].([]any)[0].(map[string]any)
		assert.Equal(t, id, item["session_id"])
		assert.Equal(t, true, item["has_report"])
	})

	t.Run("report", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/research/sessions/"+id+"/report", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		report := decodeBody(t, rec)["report"].(map[string]any)
		assert.Equal(t, "Fusion Energy Outlook", report["title"])
	})

	t.Run("documents", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/research/sessions/"+id+"/documents", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		docs := decodeBody(t, rec)["documents"].([]any)
		require.Len(t, docs, 2)

		docID := docs[0].(map[string]any)["document_id"].(string)
		rec = doRequest(t, router, http.MethodGet, "/api/research/sessions/"+id+"/documents/"+docID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, id, body["session_id"])
		assert.NotEmpty(t, body["content"])
	})

	t.Run("document under wrong session", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet,
			"/api/research/sessions/other-session/documents/"+id+"-json", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodDelete, "/api/research/sessions/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "deleted", decodeBody(t, rec)["status"])

		rec = doRequest(t, router, http.MethodDelete, "/api/research/sessions/"+id, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStopResearch(t *testing.T) {
	router, manager := newTestServer(t, factoryFor(blockRun))

	id := startSession(t, router, "A long running question?")

	rec := doRequest(t, router, http.MethodPost, "/api/research/"+id+"/stop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "stopped", decodeBody(t, rec)["status"])
	waitIdle(t, manager, id)

	rec = doRequest(t, router, http.MethodPost, "/api/research/"+id+"/stop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "not_found_or_completed", decodeBody(t, rec)["status"])
}

func TestDeleteSession_RunningConflict(t *testing.T) {
	router, manager := newTestServer(t, factoryFor(blockRun))

	id := startSession(t, router, "A long running question?")

	rec := doRequest(t, router, http.MethodDelete, "/api/research/sessions/"+id, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "running", decodeBody(t, rec)["status"])

	_, err := manager.Stop(context.Background(), id)
	require.NoError(t, err)
}

func TestGetStatus_NotFound(t *testing.T) {
	router, _ := newTestServer(t, factoryFor(completeRun))

	rec := doRequest(t, router, http.MethodGet, "/api/research/unknown/status", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetReport_NotFound(t *testing.T) {
	router, _ := newTestServer(t, factoryFor(completeRun))

	rec := doRequest(t, router, http.MethodGet, "/api/research/sessions/unknown/report", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No report for this session", decodeBody(t, rec)["error"])
}

func TestStreamEvents_UnknownSession(t *testing.T) {
	router, _ := newTestServer(t, factoryFor(completeRun))

	rec := doRequest(t, router, http.MethodGet, "/api/research/unknown/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "data: ")
	assert.Contains(t, body, "Session unknown not found")
	assert.Contains(t, body, `"type":"done"`)
}

func TestStreamEvents_FinishedSessionReplay(t *testing.T) {
	router, manager := newTestServer(t, factoryFor(completeRun))

	id := startSession(t, router, "How do tokamaks confine plasma?")
	waitIdle(t, manager, id)

	rec := doRequest(t, router, http.MethodGet, "/api/research/"+id+"/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"type":"connected"`)
	assert.Contains(t, body, `"type":"research_started"`)
	assert.Contains(t, body, `"type":"research_completed"`)
	assert.Contains(t, body, `"type":"done"`)

	frames := strings.Split(strings.TrimSpace(body), "\n\n")
	last := strings.TrimPrefix(frames[len(frames)-1], "data: ")
	var done models.Event
	require.NoError(t, json.Unmarshal([]byte(last), &done))
	assert.Equal(t, models.EventDone, done.Type)
	assert.Equal(t, id, done.SessionID)
}
