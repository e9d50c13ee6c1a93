package models

import "encoding/json"

// Lifecycle event types.
const (
	EventConnected         = "connected"
	EventResearchStarted   = "research_started"
	EventHeartbeat         = "heartbeat"
	EventResearchCompleted = "research_completed"
	EventResearchStopped   = "research_stopped"
	EventResearchError     = "research_error"
	EventDone              = "done"
)

// Node progress event types, emitted as the graph advances.
const (
	EventPlannerRunning     = "planner_running"
	EventPlannerComplete    = "planner_complete"
	EventFinderRunning      = "finder_running"
	EventFinderSource       = "finder_source"
	EventFinderComplete     = "finder_complete"
	EventSummarizerRunning  = "summarizer_running"
	EventSummarizerFetch    = "summarizer_fetch"
	EventSummarizerRetry    = "summarizer_retry"
	EventSummarizerComplete = "summarizer_complete"
	EventReviewerRunning    = "reviewer_running"
	EventReviewerComplete   = "reviewer_complete"
	EventWriterRunning      = "writer_running"
	EventWriterComplete     = "writer_complete"
)

// IsTerminalEvent reports whether an event type ends a session's stream.
func IsTerminalEvent(eventType string) bool {
	switch eventType {
	case EventResearchCompleted, EventResearchStopped, EventResearchError:
		return true
	}
	return false
}

// Event is the envelope streamed to SSE clients and persisted per session.
// Extra fields are flattened into the top-level JSON object alongside the
// envelope fields.
type Event struct {
	Type      string
	SessionID string
	Timestamp string
	Message   string
	Extra     map[string]any
}

// NewEvent creates an event stamped with the current time.
func NewEvent(eventType, sessionID, message string) Event {
	return Event{
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: NowTimestamp(),
		Message:   message,
	}
}

// With returns a copy of the event with one extra field set.
func (e Event) With(key string, value any) Event {
	extra := make(map[string]any, len(e.Extra)+1)
	for k, v := range e.Extra {
		extra[k] = v
	}
	extra[key] = value
	e.Extra = extra
	return e
}

// MarshalJSON flattens Extra into the envelope object. Message is omitted
// when empty.
func (e Event) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Extra)+4)
	for k, v := range e.Extra {
		out[k] = v
	}
	out["type"] = e.Type
	out["session_id"] = e.SessionID
	out["timestamp"] = e.Timestamp
	if e.Message != "" {
		out["message"] = e.Message
	}
	return json.Marshal(out)
}

// UnmarshalJSON extracts the envelope fields and keeps the remainder as
// Extra.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Type = stringField(raw, "type")
	e.SessionID = stringField(raw, "session_id")
	e.Timestamp = stringField(raw, "timestamp")
	e.Message = stringField(raw, "message")
	delete(raw, "type")
	delete(raw, "session_id")
	delete(raw, "timestamp")
	delete(raw, "message")
	if len(raw) > 0 {
		e.Extra = raw
	} else {
		e.Extra = nil
	}
	return nil
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
