package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMarshalFlattensExtra(t *testing.T) {
	event := NewEvent(EventFinderSource, "sess-1", "Found source").
		With("source_title", "Alpha").
		With("sources_so_far", 3)

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "finder_source", decoded["type"])
	assert.Equal(t, "sess-1", decoded["session_id"])
	assert.Equal(t, "Found source", decoded["message"])
	assert.Equal(t, "Alpha", decoded["source_title"])
	assert.Equal(t, float64(3), decoded["sources_so_far"])
	assert.NotEmpty(t, decoded["timestamp"])
}

func TestEventMarshalOmitsEmptyMessage(t *testing.T) {
	raw, err := json.Marshal(NewEvent(EventHeartbeat, "sess-1", ""))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	_, hasMessage := decoded["message"]
	assert.False(t, hasMessage)
}

func TestEventUnmarshalRoundTrip(t *testing.T) {
	original := NewEvent(EventPlannerComplete, "sess-2", "Plan ready").
		With("sub_questions_count", 4)

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, original.Type, decoded.Type)
	assert.Equal(t, original.SessionID, decoded.SessionID)
	assert.Equal(t, original.Message, decoded.Message)
	assert.Equal(t, float64(4), decoded.Extra["sub_questions_count"])
}

func TestEventWithDoesNotMutateOriginal(t *testing.T) {
	base := NewEvent(EventConnected, "sess-3", "")
	derived := base.With("status", "running")

	assert.Nil(t, base.Extra)
	assert.Equal(t, "running", derived.Extra["status"])
}

func TestIsTerminalEvent(t *testing.T) {
	assert.True(t, IsTerminalEvent(EventResearchCompleted))
	assert.True(t, IsTerminalEvent(EventResearchStopped))
	assert.True(t, IsTerminalEvent(EventResearchError))
	assert.False(t, IsTerminalEvent(EventHeartbeat))
	assert.False(t, IsTerminalEvent(EventWriterComplete))
}
