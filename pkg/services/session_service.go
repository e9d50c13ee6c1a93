// Package services implements the persistence layer over the Ent client:
// session snapshots, the append-only event log, and report documents.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hector-oviedo/open-research/ent"
	"github.com/hector-oviedo/open-research/ent/researchsession"
	"github.com/hector-oviedo/open-research/ent/sessiondocument"
	"github.com/hector-oviedo/open-research/ent/sessionevent"
	"github.com/hector-oviedo/open-research/pkg/models"
)

// Document type markers for the per-session report pair.
const (
	DocTypeJSON     = "json"
	DocTypeMarkdown = "markdown"
)

// StoredEvent is a persisted event with its position in the session log.
type StoredEvent struct {
	Index int
	Event models.Event
}

// SessionService manages research session persistence. All writes are
// serialized through a single mutex so that snapshot upserts and event
// appends never interleave.
type SessionService struct {
	client *ent.Client
	mu     sync.Mutex
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// UpsertSession persists a full state snapshot, creating the session row on
// first save and refreshing it afterwards. The events counter and creation
// timestamp are never touched here.
func (s *SessionService) UpsertSession(ctx context.Context, state *models.ResearchState) error {
	if state.SessionID == "" {
		return NewValidationError("session_id", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stateMap, err := toMap(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	optionsMap, err := toMap(state.Options)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}

	now := models.NowTimestamp()
	isStopped := state.Status == models.StatusStopped

	existing, err := s.client.ResearchSession.Query().
		Where(researchsession.IDEQ(state.SessionID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query session: %w", err)
		}
		_, err = s.client.ResearchSession.Create().
			SetID(state.SessionID).
			SetQuery(state.Query).
			SetStatus(researchsession.Status(state.Status)).
			SetIsStopped(isStopped).
			SetOptions(optionsMap).
			SetState(stateMap).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetQuery(state.Query).
		SetStatus(researchsession.Status(state.Status)).
		SetIsStopped(isStopped).
		SetOptions(optionsMap).
		SetState(stateMap).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

// AppendEvent durably appends one event to the session log and returns its
// index. The next index is max(event_index)+1, the events counter is bumped,
// and the session's updated_at is set to the event timestamp, all in one
// transaction.
func (s *SessionService) AppendEvent(ctx context.Context, event models.Event) (int, error) {
	if event.SessionID == "" {
		return 0, NewValidationError("session_id", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := toMap(event)
	if err != nil {
		return 0, fmt.Errorf("failed to encode event: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	nextIndex := 0
	last, err := tx.SessionEvent.Query().
		Where(sessionevent.SessionIDEQ(event.SessionID)).
		Order(ent.Desc(sessionevent.FieldEventIndex)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return 0, fmt.Errorf("failed to query last event: %w", err)
		}
	} else {
		nextIndex = last.EventIndex + 1
	}

	_, err = tx.SessionEvent.Create().
		SetSessionID(event.SessionID).
		SetEventIndex(nextIndex).
		SetEventType(event.Type).
		SetPayload(payload).
		SetTimestamp(event.Timestamp).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to append event: %w", err)
	}

	_, err = tx.ResearchSession.UpdateOneID(event.SessionID).
		AddEventsCount(1).
		SetUpdatedAt(event.Timestamp).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to bump events count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nextIndex, nil
}

// SaveFinalReport marks the session completed and stores the report document
// pair: the structured report as JSON and its markdown rendering, under
// deterministic doc IDs.
func (s *SessionService) SaveFinalReport(ctx context.Context, sessionID string, report *models.Report, markdown string) error {
	if report == nil {
		return NewValidationError("report", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	now := models.NowTimestamp()
	metadata := map[string]interface{}{
		"word_count":    report.WordCount,
		"sources_count": len(report.SourcesUsed),
		"generated_by":  "writer_agent",
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ResearchSession.UpdateOneID(sessionID).
		SetStatus(researchsession.StatusCompleted).
		SetIsStopped(false).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete session: %w", err)
	}

	docs := []struct {
		id      string
		docType string
		content string
	}{
		{sessionID + "-" + DocTypeJSON, DocTypeJSON, string(reportJSON)},
		{sessionID + "-" + DocTypeMarkdown, DocTypeMarkdown, markdown},
	}
	for _, d := range docs {
		// A rerun after crash recovery may regenerate an existing pair.
		if _, err := tx.SessionDocument.Delete().
			Where(sessiondocument.IDEQ(d.id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to replace document %s: %w", d.id, err)
		}
		_, err = tx.SessionDocument.Create().
			SetID(d.id).
			SetSessionID(sessionID).
			SetDocType(d.docType).
			SetContent(d.content).
			SetMetadata(metadata).
			SetCreatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to save document %s: %w", d.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.ResearchSession, error) {
	row, err := s.client.ResearchSession.Query().
		Where(researchsession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return row, nil
}

// ListSessions returns the most recently updated sessions.
func (s *SessionService) ListSessions(ctx context.Context, limit int) ([]*ent.ResearchSession, error) {
	q := s.client.ResearchSession.Query().
		Order(ent.Desc(researchsession.FieldUpdatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return rows, nil
}

// DeleteSession removes a session and, via cascade, its events and documents.
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.client.ResearchSession.DeleteOneID(sessionID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ListEvents returns the persisted events for a session with index greater
// than afterIndex, in log order. Pass -1 to read from the start.
func (s *SessionService) ListEvents(ctx context.Context, sessionID string, afterIndex int) ([]StoredEvent, error) {
	rows, err := s.client.SessionEvent.Query().
		Where(
			sessionevent.SessionIDEQ(sessionID),
			sessionevent.EventIndexGT(afterIndex),
		).
		Order(ent.Asc(sessionevent.FieldEventIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]StoredEvent, 0, len(rows))
	for _, row := range rows {
		ev, err := decodeEvent(row.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode event %d: %w", row.EventIndex, err)
		}
		events = append(events, StoredEvent{Index: row.EventIndex, Event: ev})
	}
	return events, nil
}

// ListDocuments returns the documents stored for a session.
func (s *SessionService) ListDocuments(ctx context.Context, sessionID string) ([]*ent.SessionDocument, error) {
	rows, err := s.client.SessionDocument.Query().
		Where(sessiondocument.SessionIDEQ(sessionID)).
		Order(ent.Asc(sessiondocument.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return rows, nil
}

// GetDocument retrieves one document by its ID.
func (s *SessionService) GetDocument(ctx context.Context, docID string) (*ent.SessionDocument, error) {
	row, err := s.client.SessionDocument.Query().
		Where(sessiondocument.IDEQ(docID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return row, nil
}

// GetReport returns the structured report of a completed session, or
// ErrNotFound when none has been saved.
func (s *SessionService) GetReport(ctx context.Context, sessionID string) (*models.Report, error) {
	doc, err := s.GetDocument(ctx, sessionID+"-"+DocTypeJSON)
	if err != nil {
		return nil, err
	}
	var report models.Report
	if err := json.Unmarshal([]byte(doc.Content), &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &report, nil
}

// RecentCompletedReports builds memory context from the most recently
// completed sessions, excluding the given session. Sessions without a stored
// report are skipped.
func (s *SessionService) RecentCompletedReports(ctx context.Context, limit int, excludeSessionID string) ([]models.MemoryItem, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.client.ResearchSession.Query().
		Where(
			researchsession.StatusEQ(researchsession.StatusCompleted),
			researchsession.IDNEQ(excludeSessionID),
		).
		Order(ent.Desc(researchsession.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed sessions: %w", err)
	}

	items := make([]models.MemoryItem, 0, len(rows))
	for _, row := range rows {
		report, err := s.GetReport(ctx, row.ID)
		if err != nil {
			if err == ErrNotFound {
				continue
			}
			return nil, err
		}
		items = append(items, models.MemoryItem{
			SessionID:        row.ID,
			Query:            row.Query,
			Title:            report.Title,
			ExecutiveSummary: report.ExecutiveSummary,
			SourcesCount:     len(report.SourcesUsed),
			UpdatedAt:        row.UpdatedAt,
		})
	}
	return items, nil
}

// StateFromRow decodes the state snapshot stored on a session row.
func StateFromRow(row *ent.ResearchSession) (*models.ResearchState, error) {
	if row.State == nil {
		return nil, fmt.Errorf("session %s has no state snapshot", row.ID)
	}
	raw, err := json.Marshal(row.State)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state snapshot: %w", err)
	}
	var state models.ResearchState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode state snapshot: %w", err)
	}
	return &state, nil
}

func toMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeEvent(payload map[string]interface{}) (models.Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return models.Event{}, err
	}
	var ev models.Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return models.Event{}, err
	}
	return ev, nil
}
