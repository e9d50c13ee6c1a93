package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResearchSession holds the schema definition for the ResearchSession entity.
type ResearchSession struct {
	ent.Schema
}

// Fields of the ResearchSession.
func (ResearchSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Text("query").
			Comment("Original user query"),
		field.Enum("status").
			Values("idle", "running", "completed", "stopped", "error").
			Default("idle"),
		field.Bool("is_stopped").
			Default(false).
			Comment("Stop flag snapshot, distinct from status for crash recovery"),
		field.JSON("options", map[string]interface{}{}).
			Optional().
			Comment("Normalized research options as submitted"),
		field.JSON("state", map[string]interface{}{}).
			Optional().
			Comment("Latest full state snapshot"),
		field.Int("events_count").
			Default(0),
		// Timestamps are stored as ISO-8601 UTC strings without a zone
		// suffix so that persisted values round-trip byte-identical
		// through event replay.
		field.String("created_at").
			Immutable(),
		field.String("updated_at"),
	}
}

// Edges of the ResearchSession.
func (ResearchSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", SessionEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("documents", SessionDocument.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ResearchSession.
func (ResearchSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "updated_at"),
		index.Fields("updated_at"),
	}
}
