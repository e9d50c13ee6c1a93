// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hector-oviedo/open-research/ent/researchsession"
	"github.com/hector-oviedo/open-research/ent/sessiondocument"
	"github.com/hector-oviedo/open-research/ent/sessionevent"
)

// ResearchSessionCreate is the builder for creating a ResearchSession entity.
type ResearchSessionCreate struct {
	config
	mutation *ResearchSessionMutation
	hooks    []Hook
}

// SetQuery sets the "query" field.
func (_c *ResearchSessionCreate) SetQuery(v string) *ResearchSessionCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ResearchSessionCreate) SetStatus(v researchsession.Status) *ResearchSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableStatus(v *researchsession.Status) *ResearchSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIsStopped sets the "is_stopped" field.
func (_c *ResearchSessionCreate) SetIsStopped(v bool) *ResearchSessionCreate {
	_c.mutation.SetIsStopped(v)
	return _c
}

// SetNillableIsStopped sets the "is_stopped" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableIsStopped(v *bool) *ResearchSessionCreate {
	if v != nil {
		_c.SetIsStopped(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *ResearchSessionCreate) SetOptions(v map[string]interface{}) *ResearchSessionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ResearchSessionCreate) SetState(v map[string]interface{}) *ResearchSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetEventsCount sets the "events_count" field.
func (_c *ResearchSessionCreate) SetEventsCount(v int) *ResearchSessionCreate {
	_c.mutation.SetEventsCount(v)
	return _c
}

// SetNillableEventsCount sets the "events_count" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableEventsCount(v *int) *ResearchSessionCreate {
	if v != nil {
		_c.SetEventsCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchSessionCreate) SetCreatedAt(v string) *ResearchSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResearchSessionCreate) SetUpdatedAt(v string) *ResearchSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ResearchSessionCreate) SetID(v string) *ResearchSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_c *ResearchSessionCreate) AddEventIDs(ids ...int) *ResearchSessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_c *ResearchSessionCreate) AddEvents(v ...*SessionEvent) *ResearchSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the SessionDocument entity by IDs.
func (_c *ResearchSessionCreate) AddDocumentIDs(ids ...string) *ResearchSessionCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the SessionDocument entity.
func (_c *ResearchSessionCreate) AddDocuments(v ...*SessionDocument) *ResearchSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_c *ResearchSessionCreate) Mutation() *ResearchSessionMutation {
	return _c.mutation
}

// Save creates the ResearchSession in the database.
func (_c *ResearchSessionCreate) Save(ctx context.Context) (*ResearchSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchSessionCreate) SaveX(ctx context.Context) *ResearchSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := researchsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsStopped(); !ok {
		v := researchsession.DefaultIsStopped
		_c.mutation.SetIsStopped(v)
	}
	if _, ok := _c.mutation.EventsCount(); !ok {
		v := researchsession.DefaultEventsCount
		_c.mutation.SetEventsCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchSessionCreate) check() error {
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "ResearchSession.query"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ResearchSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := researchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsStopped(); !ok {
		return &ValidationError{Name: "is_stopped", err: errors.New(`ent: missing required field "ResearchSession.is_stopped"`)}
	}
	if _, ok := _c.mutation.EventsCount(); !ok {
		return &ValidationError{Name: "events_count", err: errors.New(`ent: missing required field "ResearchSession.events_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ResearchSession.updated_at"`)}
	}
	return nil
}

func (_c *ResearchSessionCreate) sqlSave(ctx context.Context) (*ResearchSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ResearchSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchSessionCreate) createSpec() (*ResearchSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchsession.Table, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(researchsession.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(researchsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IsStopped(); ok {
		_spec.SetField(researchsession.FieldIsStopped, field.TypeBool, value)
		_node.IsStopped = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(researchsession.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(researchsession.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.EventsCount(); ok {
		_spec.SetField(researchsession.FieldEventsCount, field.TypeInt, value)
		_node.EventsCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchsession.FieldCreatedAt, field.TypeString, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(researchsession.FieldUpdatedAt, field.TypeString, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResearchSessionCreateBulk is the builder for creating many ResearchSession entities in bulk.
type ResearchSessionCreateBulk struct {
	config
	err      error
	builders []*ResearchSessionCreate
}

// Save creates the ResearchSession entities in the database.
func (_c *ResearchSessionCreateBulk) Save(ctx context.Context) ([]*ResearchSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResearchSessionCreateBulk) SaveX(ctx context.Context) []*ResearchSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
