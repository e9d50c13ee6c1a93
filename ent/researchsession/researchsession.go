// Code generated by ent, DO NOT EDIT.

package researchsession

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the researchsession type in the database.
	Label = "research_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldQuery holds the string denoting the query field in the database.
	FieldQuery = "query"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIsStopped holds the string denoting the is_stopped field in the database.
	FieldIsStopped = "is_stopped"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldEventsCount holds the string denoting the events_count field in the database.
	FieldEventsCount = "events_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// SessionEventFieldID holds the string denoting the ID field of the SessionEvent.
	SessionEventFieldID = "id"
	// SessionDocumentFieldID holds the string denoting the ID field of the SessionDocument.
	SessionDocumentFieldID = "doc_id"
	// Table holds the table name of the researchsession in the database.
	Table = "research_sessions"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "session_events"
	// EventsInverseTable is the table name for the SessionEvent entity.
	// It exists in this package in order to avoid circular dependency with the "sessionevent" package.
	EventsInverseTable = "session_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "session_id"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "session_documents"
	// DocumentsInverseTable is the table name for the SessionDocument entity.
	// It exists in this package in order to avoid circular dependency with the "sessiondocument" package.
	DocumentsInverseTable = "session_documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "session_id"
)

// Columns holds all SQL columns for researchsession fields.
var Columns = []string{
	FieldID,
	FieldQuery,
	FieldStatus,
	FieldIsStopped,
	FieldOptions,
	FieldState,
	FieldEventsCount,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsStopped holds the default value on creation for the "is_stopped" field.
	DefaultIsStopped bool
	// DefaultEventsCount holds the default value on creation for the "events_count" field.
	DefaultEventsCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusIdle is the default value of the Status enum.
const DefaultStatus = StatusIdle

// Status values.
const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusStopped   Status = "stopped"
	StatusError     Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdle, StatusRunning, StatusCompleted, StatusStopped, StatusError:
		return nil
	default:
		return fmt.Errorf("researchsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ResearchSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuery orders the results by the query field.
func ByQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuery, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIsStopped orders the results by the is_stopped field.
func ByIsStopped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsStopped, opts...).ToFunc()
}

// ByEventsCountField orders the results by the events_count field.
func ByEventsCountField(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventsCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, SessionEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, SessionDocumentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
