// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hector-oviedo/open-research/ent/researchsession"
)

// ResearchSession is the model entity for the ResearchSession schema.
type ResearchSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Original user query
	Query string `json:"query,omitempty"`
	// Status holds the value of the "status" field.
	Status researchsession.Status `json:"status,omitempty"`
	// Stop flag snapshot, distinct from status for crash recovery
	IsStopped bool `json:"is_stopped,omitempty"`
	// Normalized research options as submitted
	Options map[string]interface{} `json:"options,omitempty"`
	// Latest full state snapshot
	State map[string]interface{} `json:"state,omitempty"`
	// EventsCount holds the value of the "events_count" field.
	EventsCount int `json:"events_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt string `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt string `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchSessionQuery when eager-loading is set.
	Edges        ResearchSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchSessionEdges holds the relations/edges for other nodes in the graph.
type ResearchSessionEdges struct {
	// Events holds the value of the events edge.
	Events []*SessionEvent `json:"events,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*SessionDocument `json:"documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchSessionEdges) EventsOrErr() ([]*SessionEvent, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchSessionEdges) DocumentsOrErr() ([]*SessionDocument, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchsession.FieldOptions, researchsession.FieldState:
			values[i] = new([]byte)
		case researchsession.FieldIsStopped:
			values[i] = new(sql.NullBool)
		case researchsession.FieldEventsCount:
			values[i] = new(sql.NullInt64)
		case researchsession.FieldID, researchsession.FieldQuery, researchsession.FieldStatus, researchsession.FieldCreatedAt, researchsession.FieldUpdatedAt:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchSession fields.
func (_m *ResearchSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case researchsession.FieldQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query", values[i])
			} else if value.Valid {
				_m.Query = value.String
			}
		case researchsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = researchsession.Status(value.String)
			}
		case researchsession.FieldIsStopped:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_stopped", values[i])
			} else if value.Valid {
				_m.IsStopped = value.Bool
			}
		case researchsession.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case researchsession.FieldState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.State); err != nil {
					return fmt.Errorf("unmarshal field state: %w", err)
				}
			}
		case researchsession.FieldEventsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field events_count", values[i])
			} else if value.Valid {
				_m.EventsCount = int(value.Int64)
			}
		case researchsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.String
			}
		case researchsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchSession.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the ResearchSession entity.
func (_m *ResearchSession) QueryEvents() *SessionEventQuery {
	return NewResearchSessionClient(_m.config).QueryEvents(_m)
}

// QueryDocuments queries the "documents" edge of the ResearchSession entity.
func (_m *ResearchSession) QueryDocuments() *SessionDocumentQuery {
	return NewResearchSessionClient(_m.config).QueryDocuments(_m)
}

// Update returns a builder for updating this ResearchSession.
// Note that you need to call ResearchSession.Unwrap() before calling this method if this ResearchSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchSession) Update() *ResearchSessionUpdateOne {
	return NewResearchSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchSession) Unwrap() *ResearchSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchSession) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("query=")
	builder.WriteString(_m.Query)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("is_stopped=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsStopped))
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("events_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventsCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt)
	builder.WriteByte(')')
	return builder.String()
}

// ResearchSessions is a parsable slice of ResearchSession.
type ResearchSessions []*ResearchSession
