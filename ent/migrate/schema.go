// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ResearchSessionsColumns holds the columns for the "research_sessions" table.
	ResearchSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "running", "completed", "stopped", "error"}, Default: "idle"},
		{Name: "is_stopped", Type: field.TypeBool, Default: false},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "state", Type: field.TypeJSON, Nullable: true},
		{Name: "events_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeString},
	}
	// ResearchSessionsTable holds the schema information for the "research_sessions" table.
	ResearchSessionsTable = &schema.Table{
		Name:       "research_sessions",
		Columns:    ResearchSessionsColumns,
		PrimaryKey: []*schema.Column{ResearchSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "researchsession_status",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[2]},
			},
			{
				Name:    "researchsession_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[2], ResearchSessionsColumns[8]},
			},
			{
				Name:    "researchsession_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[8]},
			},
		},
	}
	// SessionDocumentsColumns holds the columns for the "session_documents" table.
	SessionDocumentsColumns = []*schema.Column{
		{Name: "doc_id", Type: field.TypeString, Unique: true},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// SessionDocumentsTable holds the schema information for the "session_documents" table.
	SessionDocumentsTable = &schema.Table{
		Name:       "session_documents",
		Columns:    SessionDocumentsColumns,
		PrimaryKey: []*schema.Column{SessionDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_documents_research_sessions_documents",
				Columns:    []*schema.Column{SessionDocumentsColumns[5]},
				RefColumns: []*schema.Column{ResearchSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessiondocument_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionDocumentsColumns[5]},
			},
			{
				Name:    "sessiondocument_session_id_doc_type",
				Unique:  false,
				Columns: []*schema.Column{SessionDocumentsColumns[5], SessionDocumentsColumns[1]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_index", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_events_research_sessions_events",
				Columns:    []*schema.Column{SessionEventsColumns[5]},
				RefColumns: []*schema.Column{ResearchSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_session_id_event_index",
				Unique:  true,
				Columns: []*schema.Column{SessionEventsColumns[5], SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ResearchSessionsTable,
		SessionDocumentsTable,
		SessionEventsTable,
	}
)

func init() {
	SessionDocumentsTable.ForeignKeys[0].RefTable = ResearchSessionsTable
	SessionEventsTable.ForeignKeys[0].RefTable = ResearchSessionsTable
}
