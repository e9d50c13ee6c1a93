// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hector-oviedo/open-research/ent/predicate"
	"github.com/hector-oviedo/open-research/ent/researchsession"
	"github.com/hector-oviedo/open-research/ent/sessiondocument"
	"github.com/hector-oviedo/open-research/ent/sessionevent"
)

// ResearchSessionUpdate is the builder for updating ResearchSession entities.
type ResearchSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// Where appends a list predicates to the ResearchSessionUpdate builder.
func (_u *ResearchSessionUpdate) Where(ps ...predicate.ResearchSession) *ResearchSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuery sets the "query" field.
func (_u *ResearchSessionUpdate) SetQuery(v string) *ResearchSessionUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableQuery(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchSessionUpdate) SetStatus(v researchsession.Status) *ResearchSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableStatus(v *researchsession.Status) *ResearchSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsStopped sets the "is_stopped" field.
func (_u *ResearchSessionUpdate) SetIsStopped(v bool) *ResearchSessionUpdate {
	_u.mutation.SetIsStopped(v)
	return _u
}

// SetNillableIsStopped sets the "is_stopped" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableIsStopped(v *bool) *ResearchSessionUpdate {
	if v != nil {
		_u.SetIsStopped(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ResearchSessionUpdate) SetOptions(v map[string]interface{}) *ResearchSessionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ResearchSessionUpdate) ClearOptions() *ResearchSessionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetState sets the "state" field.
func (_u *ResearchSessionUpdate) SetState(v map[string]interface{}) *ResearchSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ResearchSessionUpdate) ClearState() *ResearchSessionUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetEventsCount sets the "events_count" field.
func (_u *ResearchSessionUpdate) SetEventsCount(v int) *ResearchSessionUpdate {
	_u.mutation.ResetEventsCount()
	_u.mutation.SetEventsCount(v)
	return _u
}

// SetNillableEventsCount sets the "events_count" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableEventsCount(v *int) *ResearchSessionUpdate {
	if v != nil {
		_u.SetEventsCount(*v)
	}
	return _u
}

// AddEventsCount adds value to the "events_count" field.
func (_u *ResearchSessionUpdate) AddEventsCount(v int) *ResearchSessionUpdate {
	_u.mutation.AddEventsCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResearchSessionUpdate) SetUpdatedAt(v string) *ResearchSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableUpdatedAt(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_u *ResearchSessionUpdate) AddEventIDs(ids ...int) *ResearchSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_u *ResearchSessionUpdate) AddEvents(v ...*SessionEvent) *ResearchSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the SessionDocument entity by IDs.
func (_u *ResearchSessionUpdate) AddDocumentIDs(ids ...string) *ResearchSessionUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the SessionDocument entity.
func (_u *ResearchSessionUpdate) AddDocuments(v ...*SessionDocument) *ResearchSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_u *ResearchSessionUpdate) Mutation() *ResearchSessionMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the SessionEvent entity.
func (_u *ResearchSessionUpdate) ClearEvents() *ResearchSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to SessionEvent entities by IDs.
func (_u *ResearchSessionUpdate) RemoveEventIDs(ids ...int) *ResearchSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to SessionEvent entities.
func (_u *ResearchSessionUpdate) RemoveEvents(v ...*SessionEvent) *ResearchSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the SessionDocument entity.
func (_u *ResearchSessionUpdate) ClearDocuments() *ResearchSessionUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to SessionDocument entities by IDs.
func (_u *ResearchSessionUpdate) RemoveDocumentIDs(ids ...string) *ResearchSessionUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to SessionDocument entities.
func (_u *ResearchSessionUpdate) RemoveDocuments(v ...*SessionDocument) *ResearchSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := researchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(researchsession.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsStopped(); ok {
		_spec.SetField(researchsession.FieldIsStopped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(researchsession.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(researchsession.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(researchsession.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(researchsession.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.EventsCount(); ok {
		_spec.SetField(researchsession.FieldEventsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventsCount(); ok {
		_spec.AddField(researchsession.FieldEventsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(researchsession.FieldUpdatedAt, field.TypeString, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.EventsTable,
			Columns: []string{researchsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.EventsTable,
			Columns: []string{researchsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.EventsTable,
			Columns: []string{researchsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.DocumentsTable,
			Columns: []string{researchsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.DocumentsTable,
			Columns: []string{researchsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.DocumentsTable,
			Columns: []string{researchsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchSessionUpdateOne is the builder for updating a single ResearchSession entity.
type ResearchSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// SetQuery sets the "query" field.
func (_u *ResearchSessionUpdateOne) SetQuery(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableQuery(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchSessionUpdateOne) SetStatus(v researchsession.Status) *ResearchSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableStatus(v *researchsession.Status) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsStopped sets the "is_stopped" field.
func (_u *ResearchSessionUpdateOne) SetIsStopped(v bool) *ResearchSessionUpdateOne {
	_u.mutation.SetIsStopped(v)
	return _u
}

// SetNillableIsStopped sets the "is_stopped" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableIsStopped(v *bool) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetIsStopped(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ResearchSessionUpdateOne) SetOptions(v map[string]interface{}) *ResearchSessionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ResearchSessionUpdateOne) ClearOptions() *ResearchSessionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetState sets the "state" field.
func (_u *ResearchSessionUpdateOne) SetState(v map[string]interface{}) *ResearchSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ResearchSessionUpdateOne) ClearState() *ResearchSessionUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetEventsCount sets the "events_count" field.
func (_u *ResearchSessionUpdateOne) SetEventsCount(v int) *ResearchSessionUpdateOne {
	_u.mutation.ResetEventsCount()
	_u.mutation.SetEventsCount(v)
	return _u
}

// SetNillableEventsCount sets the "events_count" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableEventsCount(v *int) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetEventsCount(*v)
	}
	return _u
}

// AddEventsCount adds value to the "events_count" field.
func (_u *ResearchSessionUpdateOne) AddEventsCount(v int) *ResearchSessionUpdateOne {
	_u.mutation.AddEventsCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResearchSessionUpdateOne) SetUpdatedAt(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableUpdatedAt(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_u *ResearchSessionUpdateOne) AddEventIDs(ids ...int) *ResearchSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_u *ResearchSessionUpdateOne) AddEvents(v ...*SessionEvent) *ResearchSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the SessionDocument entity by IDs.
func (_u *ResearchSessionUpdateOne) AddDocumentIDs(ids ...string) *ResearchSessionUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the SessionDocument entity.
func (_u *ResearchSessionUpdateOne) AddDocuments(v ...*SessionDocument) *ResearchSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_u *ResearchSessionUpdateOne) Mutation() *ResearchSessionMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the SessionEvent entity.
func (_u *ResearchSessionUpdateOne) ClearEvents() *ResearchSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to SessionEvent entities by IDs.
func (_u *ResearchSessionUpdateOne) RemoveEventIDs(ids ...int) *ResearchSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to SessionEvent entities.
func (_u *ResearchSessionUpdateOne) RemoveEvents(v ...*SessionEvent) *ResearchSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the SessionDocument entity.
func (_u *ResearchSessionUpdateOne) ClearDocuments() *ResearchSessionUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to SessionDocument entities by IDs.
func (_u *ResearchSessionUpdateOne) RemoveDocumentIDs(ids ...string) *ResearchSessionUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to SessionDocument entities.
func (_u *ResearchSessionUpdateOne) RemoveDocuments(v ...*SessionDocument) *ResearchSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the ResearchSessionUpdate builder.
func (_u *ResearchSessionUpdateOne) Where(ps ...predicate.ResearchSession) *ResearchSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchSessionUpdateOne) Select(field string, fields ...string) *ResearchSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchSession entity.
func (_u *ResearchSessionUpdateOne) Save(ctx context.Context) (*ResearchSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchSessionUpdateOne) SaveX(ctx context.Context) *ResearchSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := researchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchSessionUpdateOne) sqlSave(ctx context.Context) (_node *ResearchSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchsession.FieldID)
		for _, f := range fields {
			if !researchsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(researchsession.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsStopped(); ok {
		_spec.SetField(researchsession.FieldIsStopped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(researchsession.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(researchsession.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(researchsession.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(researchsession.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.EventsCount(); ok {
		_spec.SetField(researchsession.FieldEventsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventsCount(); ok {
		_spec.AddField(researchsession.FieldEventsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(researchsession.FieldUpdatedAt, field.TypeString, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.EventsTable,
			Columns: []string{researchsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.EventsTable,
			Columns: []string{researchsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.EventsTable,
			Columns: []string{researchsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.DocumentsTable,
			Columns: []string{researchsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.DocumentsTable,
			Columns: []string{researchsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.DocumentsTable,
			Columns: []string{researchsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ResearchSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
