// Code generated by ent, DO NOT EDIT.

package researchsession

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hector-oviedo/open-research/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldID, id))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldQuery, v))
}

// IsStopped applies equality check predicate on the "is_stopped" field. It's identical to IsStoppedEQ.
func IsStopped(v bool) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldIsStopped, v))
}

// EventsCount applies equality check predicate on the "events_count" field. It's identical to EventsCountEQ.
func EventsCount(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldEventsCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldQuery, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldStatus, vs...))
}

// IsStoppedEQ applies the EQ predicate on the "is_stopped" field.
func IsStoppedEQ(v bool) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldIsStopped, v))
}

// IsStoppedNEQ applies the NEQ predicate on the "is_stopped" field.
func IsStoppedNEQ(v bool) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldIsStopped, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldOptions))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldState))
}

// EventsCountEQ applies the EQ predicate on the "events_count" field.
func EventsCountEQ(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldEventsCount, v))
}

// EventsCountNEQ applies the NEQ predicate on the "events_count" field.
func EventsCountNEQ(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldEventsCount, v))
}

// EventsCountIn applies the In predicate on the "events_count" field.
func EventsCountIn(vs ...int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldEventsCount, vs...))
}

// EventsCountNotIn applies the NotIn predicate on the "events_count" field.
func EventsCountNotIn(vs ...int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldEventsCount, vs...))
}

// EventsCountGT applies the GT predicate on the "events_count" field.
func EventsCountGT(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldEventsCount, v))
}

// EventsCountGTE applies the GTE predicate on the "events_count" field.
func EventsCountGTE(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldEventsCount, v))
}

// EventsCountLT applies the LT predicate on the "events_count" field.
func EventsCountLT(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldEventsCount, v))
}

// EventsCountLTE applies the LTE predicate on the "events_count" field.
func EventsCountLTE(v int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldEventsCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldCreatedAt, v))
}

// CreatedAtContains applies the Contains predicate on the "created_at" field.
func CreatedAtContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldCreatedAt, v))
}

// CreatedAtHasPrefix applies the HasPrefix predicate on the "created_at" field.
func CreatedAtHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldCreatedAt, v))
}

// CreatedAtHasSuffix applies the HasSuffix predicate on the "created_at" field.
func CreatedAtHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldCreatedAt, v))
}

// CreatedAtEqualFold applies the EqualFold predicate on the "created_at" field.
func CreatedAtEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldCreatedAt, v))
}

// CreatedAtContainsFold applies the ContainsFold predicate on the "created_at" field.
func CreatedAtContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// UpdatedAtContains applies the Contains predicate on the "updated_at" field.
func UpdatedAtContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldUpdatedAt, v))
}

// UpdatedAtHasPrefix applies the HasPrefix predicate on the "updated_at" field.
func UpdatedAtHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldUpdatedAt, v))
}

// UpdatedAtHasSuffix applies the HasSuffix predicate on the "updated_at" field.
func UpdatedAtHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldUpdatedAt, v))
}

// UpdatedAtEqualFold applies the EqualFold predicate on the "updated_at" field.
func UpdatedAtEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldUpdatedAt, v))
}

// UpdatedAtContainsFold applies the ContainsFold predicate on the "updated_at" field.
func UpdatedAtContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldUpdatedAt, v))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.SessionEvent) predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.SessionDocument) predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.NotPredicates(p))
}
