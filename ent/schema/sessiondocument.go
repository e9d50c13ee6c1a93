package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionDocument holds the schema definition for the SessionDocument entity.
// A completed session gets a JSON report document and a markdown rendering,
// keyed by deterministic IDs derived from the session ID.
type SessionDocument struct {
	ent.Schema
}

// Fields of the SessionDocument.
func (SessionDocument) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("doc_id").
			Unique().
			Immutable().
			Comment("<session_id>-json or <session_id>-markdown"),
		field.String("session_id").
			Immutable(),
		field.String("doc_type").
			Immutable().
			Comment("json or markdown"),
		field.Text("content"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("word_count, sources_count, generated_by"),
		field.String("created_at").
			Immutable(),
	}
}

// Edges of the SessionDocument.
func (SessionDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ResearchSession.Type).
			Ref("documents").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SessionDocument.
func (SessionDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "doc_type"),
	}
}
