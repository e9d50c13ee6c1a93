package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector-oviedo/open-research/ent"
	"github.com/hector-oviedo/open-research/ent/researchsession"
	"github.com/hector-oviedo/open-research/pkg/graph"
	"github.com/hector-oviedo/open-research/pkg/models"
	"github.com/hector-oviedo/open-research/pkg/services"
)

type fakeStore struct {
	mu        sync.Mutex
	rows      []*ent.ResearchSession
	states    map[string]*models.ResearchState
	events    map[string][]services.StoredEvent
	reports   map[string]*models.Report
	markdowns map[string]string
	memory    []models.MemoryItem
	upsertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		states:    make(map[string]*models.ResearchState),
		events:    make(map[string][]services.StoredEvent),
		reports:   make(map[string]*models.Report),
		markdowns: make(map[string]string),
	}
}

func (f *fakeStore) UpsertSession(_ context.Context, state *models.ResearchState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.states[state.SessionID] = cloneState(state)
	return nil
}

func (f *fakeStore) AppendEvent(_ context.Context, event models.Event) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	index := len(f.events[event.SessionID])
	f.events[event.SessionID] = append(f.events[event.SessionID],
		services.StoredEvent{Index: index, Event: event})
	return index, nil
}

func (f *fakeStore) SaveFinalReport(_ context.Context, sessionID string, report *models.Report, markdown string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports[sessionID] = report
	f.markdowns[sessionID] = markdown
	return nil
}

func (f *fakeStore) ListSessions(_ context.Context, _ int) ([]*ent.ResearchSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows, nil
}

func (f *fakeStore) ListEvents(_ context.Context, sessionID string, afterIndex int) ([]services.StoredEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []services.StoredEvent
	for _, stored := range f.events[sessionID] {
		if stored.Index > afterIndex {
			out = append(out, stored)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteSession(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.states[sessionID]; !ok {
		return services.ErrNotFound
	}
	delete(f.states, sessionID)
	delete(f.events, sessionID)
	delete(f.reports, sessionID)
	return nil
}

func (f *fakeStore) RecentCompletedReports(_ context.Context, _ int, _ string) ([]models.MemoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.memory, nil
}

func (f *fakeStore) eventTypes(sessionID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, 0, len(f.events[sessionID]))
	for _, stored := range f.events[sessionID] {
		types = append(types, stored.Event.Type)
	}
	return types
}

func (f *fakeStore) lastEvent(sessionID string) models.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := f.events[sessionID]
	return stored[len(stored)-1].Event
}

func (f *fakeStore) persistedState(sessionID string) *models.ResearchState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.states[sessionID]
}

type fakeRunner struct {
	emit       graph.Emitter
	checkpoint graph.Checkpointer
	run        func(ctx context.Context, state *models.ResearchState, emit graph.Emitter, checkpoint graph.Checkpointer) error
}

func (r *fakeRunner) Run(ctx context.Context, state *models.ResearchState, _ time.Duration) error {
	return r.run(ctx, state, r.emit, r.checkpoint)
}

func factoryFor(run func(ctx context.Context, state *models.ResearchState, emit graph.Emitter, checkpoint graph.Checkpointer) error) RunnerFactory {
	return func(emit graph.Emitter, checkpoint graph.Checkpointer) Runner {
		return &fakeRunner{emit: emit, checkpoint: checkpoint, run: run}
	}
}

func completingRun(ctx context.Context, state *models.ResearchState, emit graph.Emitter, checkpoint graph.Checkpointer) error {
	emit(ctx, models.NewEvent(models.EventPlannerRunning, state.SessionID, "planning"))
	state.Iteration = 1
	if err := checkpoint.Save(ctx, state); err != nil {
		return err
	}
	state.FinalReport = &models.Report{
		Title:            "Quantum Basics",
		ExecutiveSummary: "Short summary.",
		WordCount:        42,
	}
	state.Status = models.StatusCompleted
	return nil
}

func blockingRun(ctx context.Context, _ *models.ResearchState, _ graph.Emitter, _ graph.Checkpointer) error {
	<-ctx.Done()
	return ctx.Err()
}

func waitIdle(t *testing.T, m *Manager, sessionID string) {
	t.Helper()
	require.Eventually(t, func() bool {
		sess, ok := m.GetSession(context.Background(), sessionID)
		return ok && !sess.IsRunning()
	}, 5*time.Second, 10*time.Millisecond)
}

func stateMap(t *testing.T, state *models.ResearchState) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(state)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func newRow(t *testing.T, id, status, updatedAt string) *ent.ResearchSession {
	t.Helper()
	state := models.NewInitialState("persisted query", id)
	state.Status = status
	state.Options = models.DefaultOptions()
	return &ent.ResearchSession{
		ID:        id,
		Query:     "persisted query",
		Status:    researchsession.Status(status),
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
		State:     stateMap(t, state),
	}
}

func TestManager_Start_Completes(t *testing.T) {
	store := newFakeStore()
	store.memory = []models.MemoryItem{{SessionID: "prior", Title: "Prior Report"}}
	m := NewManager(store, factoryFor(completingRun), time.Minute, nil)

	require.NoError(t, m.Start(context.Background(), "What is quantum computing?", "sess-ok", models.Options{}))
	waitIdle(t, m, "sess-ok")

	types := store.eventTypes("sess-ok")
	require.NotEmpty(t, types)
	assert.Equal(t, models.EventResearchStarted, types[0])
	assert.Contains(t, types, models.EventPlannerRunning)
	assert.Equal(t, models.EventResearchCompleted, types[len(types)-1])

	completed := store.lastEvent("sess-ok")
	assert.Equal(t, "Quantum Basics", completed.Extra["title"])
	assert.Equal(t, 42, completed.Extra["word_count"])
	assert.Equal(t, 1, completed.Extra["iterations"])

	persisted := store.persistedState("sess-ok")
	require.NotNil(t, persisted)
	assert.Equal(t, models.StatusCompleted, persisted.Status)
	assert.Len(t, persisted.SessionMemory, 1)

	require.NotNil(t, store.reports["sess-ok"])
	assert.Equal(t, "Quantum Basics", store.reports["sess-ok"].Title)
	assert.Contains(t, store.markdowns["sess-ok"], "# Quantum Basics")

	sess, ok := m.GetSession(context.Background(), "sess-ok")
	require.True(t, ok)
	assert.Equal(t, models.StatusCompleted, sess.Snapshot().Status)
}

func TestManager_Start_StartedEventCarriesQuery(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store, factoryFor(completingRun), time.Minute, nil)

	require.NoError(t, m.Start(context.Background(), "What is quantum computing?", "sess-q", models.Options{}))
	waitIdle(t, m, "sess-q")

	store.mu.Lock()
	started := store.events["sess-q"][0].Event
	store.mu.Unlock()
	assert.Equal(t, "Starting research on: What is quantum computing?", started.Message)
	assert.Equal(t, "What is quantum computing?", started.Extra["query"])
	require.NotNil(t, started.Extra["options"])
}

func TestManager_Start_PersistFailure(t *testing.T) {
	store := newFakeStore()
	store.upsertErr = errors.New("disk full")
	m := NewManager(store, factoryFor(completingRun), time.Minute, nil)

	err := m.Start(context.Background(), "query", "sess-fail", models.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist session")

	sess, ok := m.GetSession(context.Background(), "sess-fail")
	require.True(t, ok)
	assert.False(t, sess.IsRunning())
}

func TestManager_Run_NoReportBecomesError(t *testing.T) {
	store := newFakeStore()
	run := func(_ context.Context, state *models.ResearchState, _ graph.Emitter, _ graph.Checkpointer) error {
		state.Status = models.StatusCompleted
		return nil
	}
	m := NewManager(store, factoryFor(run), time.Minute, nil)

	require.NoError(t, m.Start(context.Background(), "query", "sess-empty", models.Options{}))
	waitIdle(t, m, "sess-empty")

	last := store.lastEvent("sess-empty")
	assert.Equal(t, models.EventResearchError, last.Type)
	assert.Equal(t, "Research run finished without a valid final report.", last.Extra["error"])
	assert.Equal(t, models.StatusError, store.persistedState("sess-empty").Status)
}

func TestManager_Run_ReportSaveFailure(t *testing.T) {
	store := newFakeStore()
	saveErr := errors.New("documents table locked")
	m := NewManager(&failingSaveStore{fakeStore: store, err: saveErr}, factoryFor(completingRun), time.Minute, nil)

	require.NoError(t, m.Start(context.Background(), "query", "sess-doc", models.Options{}))
	waitIdle(t, m, "sess-doc")

	last := store.lastEvent("sess-doc")
	assert.Equal(t, models.EventResearchError, last.Type)
	assert.Equal(t, fmt.Sprintf("Failed to save final report: %v", saveErr), last.Extra["error"])
}

type failingSaveStore struct {
	*fakeStore
	err error
}

func (f *failingSaveStore) SaveFinalReport(context.Context, string, *models.Report, string) error {
	return f.err
}

func TestManager_Stop(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store, factoryFor(blockingRun), time.Minute, nil)

	require.NoError(t, m.Start(context.Background(), "query", "sess-stop", models.Options{}))

	wasRunning, err := m.Stop(context.Background(), "sess-stop")
	require.NoError(t, err)
	assert.True(t, wasRunning)

	sess, ok := m.GetSession(context.Background(), "sess-stop")
	require.True(t, ok)
	assert.False(t, sess.IsRunning())
	assert.True(t, sess.IsStopped())
	assert.Equal(t, models.StatusStopped, sess.Snapshot().Status)
	assert.Equal(t, models.EventResearchStopped, store.lastEvent("sess-stop").Type)

	wasRunning, err = m.Stop(context.Background(), "sess-stop")
	require.NoError(t, err)
	assert.False(t, wasRunning)
}

func TestManager_Stop_UnknownSession(t *testing.T) {
	m := NewManager(newFakeStore(), factoryFor(completingRun), time.Minute, nil)
	wasRunning, err := m.Stop(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, wasRunning)
}

func TestManager_EnsureInitialized_RehydratesRunningAsStopped(t *testing.T) {
	store := newFakeStore()
	now := models.NowTimestamp()
	store.rows = []*ent.ResearchSession{
		newRow(t, "sess-was-running", "running", now),
		newRow(t, "sess-done", "completed", now),
	}
	m := NewManager(store, factoryFor(completingRun), time.Minute, nil)
	require.NoError(t, m.EnsureInitialized(context.Background()))

	sess, ok := m.GetSession(context.Background(), "sess-was-running")
	require.True(t, ok)
	assert.False(t, sess.IsRunning())
	assert.True(t, sess.IsStopped())
	assert.Equal(t, models.StatusStopped, sess.Snapshot().Status)

	done, ok := m.GetSession(context.Background(), "sess-done")
	require.True(t, ok)
	assert.False(t, done.IsStopped())
	assert.Equal(t, models.StatusCompleted, done.Snapshot().Status)
}

func TestManager_EnsureInitialized_SkipsUnreadableSnapshot(t *testing.T) {
	store := newFakeStore()
	store.rows = []*ent.ResearchSession{
		{ID: "sess-broken", Query: "q", Status: "error"},
	}
	m := NewManager(store, factoryFor(completingRun), time.Minute, nil)
	require.NoError(t, m.EnsureInitialized(context.Background()))

	_, ok := m.GetSession(context.Background(), "sess-broken")
	assert.False(t, ok)
}

func TestManager_Delete(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store, factoryFor(blockingRun), time.Minute, nil)

	require.NoError(t, m.Start(context.Background(), "query", "sess-del", models.Options{}))
	outcome, err := m.Delete(context.Background(), "sess-del")
	require.NoError(t, err)
	assert.Equal(t, DeleteOutcomeRunning, outcome)

	_, err = m.Stop(context.Background(), "sess-del")
	require.NoError(t, err)

	outcome, err = m.Delete(context.Background(), "sess-del")
	require.NoError(t, err)
	assert.Equal(t, DeleteOutcomeDeleted, outcome)
	_, ok := m.GetSession(context.Background(), "sess-del")
	assert.False(t, ok)

	outcome, err = m.Delete(context.Background(), "sess-del")
	require.NoError(t, err)
	assert.Equal(t, DeleteOutcomeNotFound, outcome)
}

func collectStream(t *testing.T, m *Manager, sessionID string, timeout time.Duration) []models.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	var events []models.Event
	for event := range m.StreamEvents(ctx, sessionID) {
		events = append(events, event)
	}
	return events
}

func TestManager_StreamEvents_ReplaysFinishedSession(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store, factoryFor(completingRun), time.Minute, nil)

	require.NoError(t, m.Start(context.Background(), "query", "sess-replay", models.Options{}))
	waitIdle(t, m, "sess-replay")

	events := collectStream(t, m, "sess-replay", 3*time.Second)
	require.NotEmpty(t, events)
	assert.Equal(t, models.EventConnected, events[0].Type)
	assert.Equal(t, models.StatusCompleted, events[0].Extra["status"])
	assert.Equal(t, models.EventResearchStarted, events[1].Type)
	assert.Equal(t, models.EventResearchCompleted, events[len(events)-1].Type)

	// The terminal event came from the log, not synthesis, so it appears once.
	terminals := 0
	for _, event := range events {
		if models.IsTerminalEvent(event.Type) {
			terminals++
		}
	}
	assert.Equal(t, 1, terminals)
}

func TestManager_StreamEvents_SynthesizesTerminal(t *testing.T) {
	store := newFakeStore()
	store.rows = []*ent.ResearchSession{
		newRow(t, "sess-silent", "stopped", models.NowTimestamp()),
	}
	m := NewManager(store, factoryFor(completingRun), time.Minute, nil)

	events := collectStream(t, m, "sess-silent", 3*time.Second)
	require.Len(t, events, 2)
	assert.Equal(t, models.EventConnected, events[0].Type)
	assert.Equal(t, models.StatusStopped, events[0].Extra["status"])
	assert.Equal(t, models.EventResearchStopped, events[1].Type)
}

func TestManager_StreamEvents_UnknownSession(t *testing.T) {
	m := NewManager(newFakeStore(), factoryFor(completingRun), time.Minute, nil)

	events := collectStream(t, m, "nope", 3*time.Second)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventResearchError, events[0].Type)
	assert.Equal(t, "Session nope not found", events[0].Extra["error"])
}

func TestManager_StreamEvents_LiveRun(t *testing.T) {
	store := newFakeStore()
	release := make(chan struct{})
	run := func(ctx context.Context, state *models.ResearchState, emit graph.Emitter, _ graph.Checkpointer) error {
		emit(ctx, models.NewEvent(models.EventPlannerRunning, state.SessionID, "planning"))
		<-release
		state.FinalReport = &models.Report{Title: "Live", ExecutiveSummary: "s", WordCount: 10}
		state.Status = models.StatusCompleted
		return nil
	}
	m := NewManager(store, factoryFor(run), time.Minute, nil)

	require.NoError(t, m.Start(context.Background(), "query", "sess-live", models.Options{}))

	done := make(chan []models.Event, 1)
	go func() {
		done <- collectStream(t, m, "sess-live", 10*time.Second)
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)

	select {
	case events := <-done:
		require.NotEmpty(t, events)
		assert.Equal(t, models.EventConnected, events[0].Type)
		assert.Equal(t, models.EventResearchCompleted, events[len(events)-1].Type)
	case <-time.After(10 * time.Second):
		t.Fatal("stream did not terminate")
	}
}

func TestManager_CleanupOldSessions(t *testing.T) {
	store := newFakeStore()
	old := time.Now().UTC().Add(-48 * time.Hour).Format(models.TimestampLayout)
	store.rows = []*ent.ResearchSession{
		newRow(t, "sess-old", "completed", old),
		newRow(t, "sess-fresh", "completed", models.NowTimestamp()),
	}
	m := NewManager(store, factoryFor(completingRun), time.Minute, nil)

	removed, err := m.CleanupOldSessions(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, ok := m.GetSession(context.Background(), "sess-old")
	assert.False(t, ok)
	_, ok = m.GetSession(context.Background(), "sess-fresh")
	assert.True(t, ok)

	// Persisted rows are untouched.
	store.mu.Lock()
	assert.Len(t, store.rows, 2)
	store.mu.Unlock()
}

func TestManager_ListSessions_SortedByRecency(t *testing.T) {
	store := newFakeStore()
	store.rows = []*ent.ResearchSession{
		newRow(t, "sess-a", "completed", "2026-08-01T10:00:00.000000"),
		newRow(t, "sess-b", "completed", "2026-08-02T10:00:00.000000"),
		newRow(t, "sess-c", "completed", "2026-08-01T12:00:00.000000"),
	}
	m := NewManager(store, factoryFor(completingRun), time.Minute, nil)

	sessions, err := m.ListSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "sess-b", sessions[0].ID)
	assert.Equal(t, "sess-c", sessions[1].ID)
	assert.Equal(t, "sess-a", sessions[2].ID)
}
