// Package session manages the lifecycle of research sessions: starting graph
// runs, streaming their events, stopping and deleting them, and rehydrating
// the in-memory cache from persisted snapshots on startup.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/hector-oviedo/open-research/ent"
	"github.com/hector-oviedo/open-research/pkg/graph"
	"github.com/hector-oviedo/open-research/pkg/models"
	"github.com/hector-oviedo/open-research/pkg/services"
)

// Delete outcomes.
const (
	DeleteOutcomeDeleted  = "deleted"
	DeleteOutcomeNotFound = "not_found"
	DeleteOutcomeRunning  = "running"
)

// streamPollInterval is how often the event stream checks the durable log
// for events appended by the run goroutine.
const streamPollInterval = time.Second

// rehydrateLimit caps how many persisted sessions are loaded into the
// memory cache on startup.
const rehydrateLimit = 200

// Store is the persistence surface the manager needs. *services.SessionService
// implements it.
type Store interface {
	UpsertSession(ctx context.Context, state *models.ResearchState) error
	AppendEvent(ctx context.Context, event models.Event) (int, error)
	SaveFinalReport(ctx context.Context, sessionID string, report *models.Report, markdown string) error
	ListSessions(ctx context.Context, limit int) ([]*ent.ResearchSession, error)
	ListEvents(ctx context.Context, sessionID string, afterIndex int) ([]services.StoredEvent, error)
	DeleteSession(ctx context.Context, sessionID string) error
	RecentCompletedReports(ctx context.Context, limit int, excludeSessionID string) ([]models.MemoryItem, error)
}

// Runner executes one research run against a state. *graph.Research
// implements it.
type Runner interface {
	Run(ctx context.Context, state *models.ResearchState, timeout time.Duration) error
}

// RunnerFactory builds a Runner whose progress events flow through the given
// emitter and whose node snapshots are saved through the checkpointer. A
// fresh runner is built per session so both are bound to that session.
type RunnerFactory func(emit graph.Emitter, checkpoint graph.Checkpointer) Runner

// Session is the in-memory runtime record for one research session.
type Session struct {
	ID        string
	Options   models.Options
	CreatedAt string

	mu        sync.RWMutex
	state     *models.ResearchState
	updatedAt string
	running   bool
	stopFlag  bool

	cancel context.CancelFunc
	done   chan struct{}
}

// IsRunning reports whether the session's run goroutine is still active.
func (s *Session) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// IsStopped reports whether the session was stopped by request or ended in
// the stopped state.
func (s *Session) IsStopped() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stopFlag || s.state.Status == models.StatusStopped
}

// UpdatedAt returns the timestamp of the session's last activity.
func (s *Session) UpdatedAt() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// Snapshot returns an isolated copy of the session state, safe to read while
// the run goroutine keeps mutating the live state.
func (s *Session) Snapshot() *models.ResearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

func (s *Session) setSnapshot(state *models.ResearchState) {
	copied := cloneState(state)
	s.mu.Lock()
	s.state = copied
	s.updatedAt = models.NowTimestamp()
	s.mu.Unlock()
}

// cloneState copies a state through JSON so the copy shares no slices or
// pointers with the original.
func cloneState(state *models.ResearchState) *models.ResearchState {
	raw, err := json.Marshal(state)
	if err != nil {
		copied := *state
		return &copied
	}
	var out models.ResearchState
	if err := json.Unmarshal(raw, &out); err != nil {
		copied := *state
		return &copied
	}
	return &out
}

// Manager owns the session cache and drives graph runs. Sessions are loaded
// from persistence once on first use so streams and status queries keep
// working across restarts.
type Manager struct {
	store      Store
	newRunner  RunnerFactory
	maxRunTime time.Duration
	logger     *slog.Logger

	mu          sync.Mutex
	sessions    map[string]*Session
	initialized bool
}

// NewManager creates a session manager. maxRunTime bounds each graph run and
// is floored at one minute.
func NewManager(store Store, factory RunnerFactory, maxRunTime time.Duration, logger *slog.Logger) *Manager {
	if maxRunTime < time.Minute {
		maxRunTime = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:      store,
		newRunner:  factory,
		maxRunTime: maxRunTime,
		logger:     logger,
		sessions:   make(map[string]*Session),
	}
}

// EnsureInitialized loads persisted sessions into the memory cache once.
// Sessions that were running when the process died are rehydrated as stopped.
func (m *Manager) EnsureInitialized(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return nil
	}

	rows, err := m.store.ListSessions(ctx, rehydrateLimit)
	if err != nil {
		return fmt.Errorf("failed to load persisted sessions: %w", err)
	}
	for _, row := range rows {
		state, err := services.StateFromRow(row)
		if err != nil {
			m.logger.Warn("skipping session with unreadable snapshot",
				"session_id", row.ID, "error", err)
			continue
		}
		state.Query = row.Query
		state.SessionID = row.ID
		state.Status = string(row.Status)
		if row.Status == "running" {
			state.Status = models.StatusStopped
		}

		sess := &Session{
			ID:        row.ID,
			Options:   state.Options,
			CreatedAt: row.CreatedAt,
			state:     state,
			updatedAt: row.UpdatedAt,
			done:      make(chan struct{}),
		}
		close(sess.done)
		if row.IsStopped || state.Status == models.StatusStopped {
			sess.stopFlag = true
		}
		m.sessions[row.ID] = sess
	}

	m.initialized = true
	m.logger.Info("loaded persisted sessions", "count", len(m.sessions))
	return nil
}

// Start creates a session and launches its research run in the background.
// The run outlives the calling request; use Stop to cancel it.
func (m *Manager) Start(ctx context.Context, query, sessionID string, opts models.Options) error {
	if err := m.EnsureInitialized(ctx); err != nil {
		return err
	}

	opts.Normalize()
	state := models.NewInitialState(query, sessionID)
	state.Status = models.StatusRunning
	state.Options = opts

	runCtx, cancel := context.WithCancel(context.Background())
	sess := &Session{
		ID:        sessionID,
		Options:   opts,
		CreatedAt: models.NowTimestamp(),
		state:     cloneState(state),
		updatedAt: models.NowTimestamp(),
		running:   true,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	m.mu.Lock()
	m.sessions[sessionID] = sess
	m.mu.Unlock()

	if err := m.store.UpsertSession(ctx, state); err != nil {
		cancel()
		close(sess.done)
		sess.mu.Lock()
		sess.running = false
		sess.mu.Unlock()
		return fmt.Errorf("failed to persist session: %w", err)
	}

	go m.runGraph(runCtx, sess, state)
	m.logger.Info("started research session", "session_id", sessionID)
	return nil
}

// runGraph executes one session's research run and records its outcome. It
// runs on its own goroutine with a context detached from the HTTP request.
func (m *Manager) runGraph(ctx context.Context, sess *Session, state *models.ResearchState) {
	defer func() {
		sess.mu.Lock()
		sess.running = false
		sess.mu.Unlock()
		close(sess.done)
	}()

	emit := func(_ context.Context, event models.Event) {
		m.emitEvent(sess, event)
	}
	checkpoint := graph.CheckpointerFunc(func(ctx context.Context, state *models.ResearchState) error {
		sess.setSnapshot(state)
		return m.store.UpsertSession(ctx, state)
	})

	if sess.Options.MemoryEnabled() && sess.Options.MemoryLimit() > 0 {
		memory, err := m.store.RecentCompletedReports(ctx, sess.Options.MemoryLimit(), sess.ID)
		if err != nil {
			m.logger.Warn("failed to load session memory", "session_id", sess.ID, "error", err)
		} else {
			state.SessionMemory = memory
		}
	}

	started := models.NewEvent(models.EventResearchStarted, sess.ID,
		fmt.Sprintf("Starting research on: %s", truncateQuery(state.Query, 120))).
		With("query", state.Query).
		With("options", sess.Options)
	m.emitEvent(sess, started)

	runner := m.newRunner(emit, checkpoint)
	runErr := runner.Run(ctx, state, m.maxRunTime)
	sess.setSnapshot(state)

	if sess.IsStopped() || (runErr != nil && errors.Is(ctx.Err(), context.Canceled)) {
		m.finishStopped(sess, state)
		return
	}

	report := state.FinalReport
	if state.Status == models.StatusError || report == nil || report.IsEmpty() {
		message := state.Error
		if message == "" {
			message = "Research run finished without a valid final report."
		}
		m.finishError(sess, state, message)
		return
	}

	state.Status = models.StatusCompleted
	sess.setSnapshot(state)
	persistCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := m.store.UpsertSession(persistCtx, state); err != nil {
		m.logger.Error("failed to persist completed snapshot", "session_id", sess.ID, "error", err)
	}

	markdown := services.ReportToMarkdown(report)
	if err := m.store.SaveFinalReport(persistCtx, sess.ID, report, markdown); err != nil {
		m.logger.Error("failed to save final report", "session_id", sess.ID, "error", err)
		m.finishError(sess, state, fmt.Sprintf("Failed to save final report: %v", err))
		return
	}

	completed := models.NewEvent(models.EventResearchCompleted, sess.ID, "").
		With("title", report.Title).
		With("word_count", report.WordCount).
		With("iterations", state.Iteration).
		With("final_report", report)
	m.emitEvent(sess, completed)
	m.logger.Info("research completed",
		"session_id", sess.ID,
		"iterations", state.Iteration,
		"word_count", report.WordCount)
}

func (m *Manager) finishStopped(sess *Session, state *models.ResearchState) {
	state.Status = models.StatusStopped
	sess.mu.Lock()
	sess.stopFlag = true
	sess.mu.Unlock()
	sess.setSnapshot(state)
	m.persistSnapshot(sess, state)
	m.emitEvent(sess, models.NewEvent(models.EventResearchStopped, sess.ID, ""))
	m.logger.Info("research stopped", "session_id", sess.ID)
}

func (m *Manager) finishError(sess *Session, state *models.ResearchState, message string) {
	state.Status = models.StatusError
	state.Error = message
	sess.setSnapshot(state)
	m.persistSnapshot(sess, state)
	m.emitEvent(sess, models.NewEvent(models.EventResearchError, sess.ID, "").
		With("error", message))
	m.logger.Error("research failed", "session_id", sess.ID, "error", message)
}

// persistSnapshot writes the terminal snapshot with a fresh context so it
// succeeds even after the run context was cancelled.
func (m *Manager) persistSnapshot(sess *Session, state *models.ResearchState) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := m.store.UpsertSession(ctx, state); err != nil {
		m.logger.Error("failed to persist snapshot", "session_id", sess.ID, "error", err)
	}
}

// emitEvent durably appends one event to the session log. Streams pick it up
// from there. Uses a fresh context so terminal events survive cancellation.
func (m *Manager) emitEvent(sess *Session, event models.Event) {
	if event.SessionID == "" {
		event.SessionID = sess.ID
	}
	if event.Timestamp == "" {
		event.Timestamp = models.NowTimestamp()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := m.store.AppendEvent(ctx, event); err != nil {
		m.logger.Error("failed to append event",
			"session_id", sess.ID, "event_type", event.Type, "error", err)
		return
	}
	sess.mu.Lock()
	sess.updatedAt = event.Timestamp
	sess.mu.Unlock()
}

// StreamEvents returns a channel of events for one session: a connected
// marker, the replayed persisted log, then live events polled from the log
// until a terminal event or context cancellation. The channel is closed when
// the stream ends.
func (m *Manager) StreamEvents(ctx context.Context, sessionID string) <-chan models.Event {
	out := make(chan models.Event)
	go func() {
		defer close(out)
		m.streamEvents(ctx, sessionID, out)
	}()
	return out
}

func (m *Manager) streamEvents(ctx context.Context, sessionID string, out chan<- models.Event) {
	send := func(event models.Event) bool {
		select {
		case out <- event:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if err := m.EnsureInitialized(ctx); err != nil {
		send(models.NewEvent(models.EventResearchError, sessionID, "").
			With("error", err.Error()))
		return
	}
	sess, ok := m.lookup(sessionID)
	if !ok {
		send(models.NewEvent(models.EventResearchError, sessionID, "").
			With("error", fmt.Sprintf("Session %s not found", sessionID)))
		return
	}

	status := models.StatusRunning
	if !sess.IsRunning() {
		status = sess.Snapshot().Status
		if status == "" {
			status = models.StatusCompleted
		}
	}
	if !send(models.NewEvent(models.EventConnected, sessionID, "").With("status", status)) {
		return
	}

	lastIndex := -1
	terminalSeen := false
	events, err := m.store.ListEvents(ctx, sessionID, lastIndex)
	if err != nil {
		send(models.NewEvent(models.EventResearchError, sessionID, "").
			With("error", err.Error()))
		return
	}
	for _, stored := range events {
		if !send(stored.Event) {
			return
		}
		lastIndex = stored.Index
		if models.IsTerminalEvent(stored.Event.Type) {
			terminalSeen = true
		}
	}

	if !sess.IsRunning() {
		if !terminalSeen {
			send(m.terminalEventFor(sess))
		}
		return
	}

	ticker := time.NewTicker(streamPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		events, err := m.store.ListEvents(ctx, sessionID, lastIndex)
		if err != nil {
			send(models.NewEvent(models.EventResearchError, sessionID, "").
				With("error", err.Error()))
			return
		}
		if len(events) > 0 {
			for _, stored := range events {
				if !send(stored.Event) {
					return
				}
				lastIndex = stored.Index
				if models.IsTerminalEvent(stored.Event.Type) {
					return
				}
			}
			continue
		}

		if !sess.IsRunning() {
			send(m.terminalEventFor(sess))
			return
		}

		if !send(models.NewEvent(models.EventHeartbeat, sessionID, "")) {
			return
		}
	}
}

// terminalEventFor synthesizes the terminal event for a finished session
// whose log did not record one, from its last snapshot.
func (m *Manager) terminalEventFor(sess *Session) models.Event {
	state := sess.Snapshot()
	switch {
	case state.Status == models.StatusError:
		message := state.Error
		if message == "" {
			message = "Unknown error"
		}
		return models.NewEvent(models.EventResearchError, sess.ID, "").
			With("error", message)
	case sess.IsStopped() || state.Status == models.StatusStopped:
		return models.NewEvent(models.EventResearchStopped, sess.ID, "")
	case state.FinalReport != nil && !state.FinalReport.IsEmpty():
		report := state.FinalReport
		return models.NewEvent(models.EventResearchCompleted, sess.ID, "").
			With("title", report.Title).
			With("word_count", report.WordCount).
			With("iterations", state.Iteration).
			With("final_report", report)
	default:
		return models.NewEvent(models.EventResearchStopped, sess.ID, "")
	}
}

// Stop cancels one running session and waits for its run goroutine to finish
// recording the stop. Returns true only if the session was running.
func (m *Manager) Stop(ctx context.Context, sessionID string) (bool, error) {
	if err := m.EnsureInitialized(ctx); err != nil {
		return false, err
	}
	sess, ok := m.lookup(sessionID)
	if !ok {
		m.logger.Warn("stop requested for unknown session", "session_id", sessionID)
		return false, nil
	}
	if !sess.IsRunning() {
		m.logger.Info("stop requested for idle session", "session_id", sessionID)
		return false, nil
	}

	sess.mu.Lock()
	sess.stopFlag = true
	cancel := sess.cancel
	sess.mu.Unlock()
	if cancel != nil {
		cancel()
	}

	select {
	case <-sess.done:
	case <-ctx.Done():
		return true, ctx.Err()
	}
	m.logger.Info("stopped research", "session_id", sessionID)
	return true, nil
}

// GetSession returns one session from the memory cache.
func (m *Manager) GetSession(ctx context.Context, sessionID string) (*Session, bool) {
	if err := m.EnsureInitialized(ctx); err != nil {
		m.logger.Error("session cache initialization failed", "error", err)
		return nil, false
	}
	return m.lookup(sessionID)
}

// ListSessions returns all cached sessions, most recently updated first.
func (m *Manager) ListSessions(ctx context.Context) ([]*Session, error) {
	if err := m.EnsureInitialized(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		sessions = append(sessions, sess)
	}
	m.mu.Unlock()

	sortSessionsByUpdatedAt(sessions)
	return sessions, nil
}

// Delete removes a session from memory and persistence. Running sessions are
// refused.
func (m *Manager) Delete(ctx context.Context, sessionID string) (string, error) {
	if err := m.EnsureInitialized(ctx); err != nil {
		return "", err
	}
	if sess, ok := m.lookup(sessionID); ok && sess.IsRunning() {
		return DeleteOutcomeRunning, nil
	}

	if err := m.store.DeleteSession(ctx, sessionID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return DeleteOutcomeNotFound, nil
		}
		return "", err
	}

	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	return DeleteOutcomeDeleted, nil
}

// CleanupOldSessions drops finished sessions older than maxAge from the
// memory cache. Persisted rows are kept.
func (m *Manager) CleanupOldSessions(ctx context.Context, maxAge time.Duration) (int, error) {
	if err := m.EnsureInitialized(ctx); err != nil {
		return 0, err
	}
	cutoff := time.Now().UTC().Add(-maxAge)

	m.mu.Lock()
	defer m.mu.Unlock()
	var removed []string
	for id, sess := range m.sessions {
		if sess.IsRunning() {
			continue
		}
		updated, err := time.Parse(models.TimestampLayout, sess.UpdatedAt())
		if err != nil {
			continue
		}
		if updated.Before(cutoff) {
			removed = append(removed, id)
		}
	}
	for _, id := range removed {
		delete(m.sessions, id)
	}
	if len(removed) > 0 {
		m.logger.Info("cleaned up old sessions from memory cache", "count", len(removed))
	}
	return len(removed), nil
}

func (m *Manager) lookup(sessionID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	return sess, ok
}

func sortSessionsByUpdatedAt(sessions []*Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt() > sessions[j].UpdatedAt()
	})
}

func truncateQuery(query string, limit int) string {
	if len(query) <= limit {
		return query
	}
	return query[:limit] + "..."
}
