// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfleet/agentfleet/ent/runsummary"
	"github.com/agentfleet/agentfleet/ent/runtelemetry"
)

// RunTelemetryCreate is the builder for creating a RunTelemetry entity.
type RunTelemetryCreate struct {
	config
	mutation *RunTelemetryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *RunTelemetryCreate) SetRunID(v string) *RunTelemetryCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSpanID sets the "span_id" field.
func (_c *RunTelemetryCreate) SetSpanID(v string) *RunTelemetryCreate {
	_c.mutation.SetSpanID(v)
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *RunTelemetryCreate) SetTraceID(v string) *RunTelemetryCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetParentSpanID sets the "parent_span_id" field.
func (_c *RunTelemetryCreate) SetParentSpanID(v string) *RunTelemetryCreate {
	_c.mutation.SetParentSpanID(v)
	return _c
}

// SetNillableParentSpanID sets the "parent_span_id" field if the given value is not nil.
func (_c *RunTelemetryCreate) SetNillableParentSpanID(v *string) *RunTelemetryCreate {
	if v != nil {
		_c.SetParentSpanID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *RunTelemetryCreate) SetName(v string) *RunTelemetryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *RunTelemetryCreate) SetStatusCode(v string) *RunTelemetryCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_c *RunTelemetryCreate) SetNillableStatusCode(v *string) *RunTelemetryCreate {
	if v != nil {
		_c.SetStatusCode(*v)
	}
	return _c
}

// SetStatusMessage sets the "status_message" field.
func (_c *RunTelemetryCreate) SetStatusMessage(v string) *RunTelemetryCreate {
	_c.mutation.SetStatusMessage(v)
	return _c
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_c *RunTelemetryCreate) SetNillableStatusMessage(v *string) *RunTelemetryCreate {
	if v != nil {
		_c.SetStatusMessage(*v)
	}
	return _c
}

// SetAttributes sets the "attributes" field.
func (_c *RunTelemetryCreate) SetAttributes(v map[string]interface{}) *RunTelemetryCreate {
	_c.mutation.SetAttributes(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunTelemetryCreate) SetStartedAt(v time.Time) *RunTelemetryCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *RunTelemetryCreate) SetEndedAt(v time.Time) *RunTelemetryCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *RunTelemetryCreate) SetNillableEndedAt(v *time.Time) *RunTelemetryCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunTelemetryCreate) SetCreatedAt(v time.Time) *RunTelemetryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunTelemetryCreate) SetNillableCreatedAt(v *time.Time) *RunTelemetryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the RunSummary entity.
func (_c *RunTelemetryCreate) SetRun(v *RunSummary) *RunTelemetryCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunTelemetryMutation object of the builder.
func (_c *RunTelemetryCreate) Mutation() *RunTelemetryMutation {
	return _c.mutation
}

// Save creates the RunTelemetry in the database.
func (_c *RunTelemetryCreate) Save(ctx context.Context) (*RunTelemetry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunTelemetryCreate) SaveX(ctx context.Context) *RunTelemetry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunTelemetryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunTelemetryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunTelemetryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runtelemetry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunTelemetryCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunTelemetry.run_id"`)}
	}
	if _, ok := _c.mutation.SpanID(); !ok {
		return &ValidationError{Name: "span_id", err: errors.New(`ent: missing required field "RunTelemetry.span_id"`)}
	}
	if _, ok := _c.mutation.TraceID(); !ok {
		return &ValidationError{Name: "trace_id", err: errors.New(`ent: missing required field "RunTelemetry.trace_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "RunTelemetry.name"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "RunTelemetry.started_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunTelemetry.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunTelemetry.run"`)}
	}
	return nil
}

func (_c *RunTelemetryCreate) sqlSave(ctx context.Context) (*RunTelemetry, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunTelemetryCreate) createSpec() (*RunTelemetry, *sqlgraph.CreateSpec) {
	var (
		_node = &RunTelemetry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runtelemetry.Table, sqlgraph.NewFieldSpec(runtelemetry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SpanID(); ok {
		_spec.SetField(runtelemetry.FieldSpanID, field.TypeString, value)
		_node.SpanID = value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(runtelemetry.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.ParentSpanID(); ok {
		_spec.SetField(runtelemetry.FieldParentSpanID, field.TypeString, value)
		_node.ParentSpanID = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(runtelemetry.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(runtelemetry.FieldStatusCode, field.TypeString, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.StatusMessage(); ok {
		_spec.SetField(runtelemetry.FieldStatusMessage, field.TypeString, value)
		_node.StatusMessage = &value
	}
	if value, ok := _c.mutation.Attributes(); ok {
		_spec.SetField(runtelemetry.FieldAttributes, field.TypeJSON, value)
		_node.Attributes = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(runtelemetry.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(runtelemetry.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runtelemetry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runtelemetry.RunTable,
			Columns: []string{runtelemetry.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runsummary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunTelemetry.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunTelemetryUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunTelemetryCreate) OnConflict(opts ...sql.ConflictOption) *RunTelemetryUpsertOne {
	_c.conflict = opts
	return &RunTelemetryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunTelemetry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunTelemetryCreate) OnConflictColumns(columns ...string) *RunTelemetryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunTelemetryUpsertOne{
		create: _c,
	}
}

type (
	// RunTelemetryUpsertOne is the builder for "upsert"-ing
	//  one RunTelemetry node.
	RunTelemetryUpsertOne struct {
		create *RunTelemetryCreate
	}

	// RunTelemetryUpsert is the "OnConflict" setter.
	RunTelemetryUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatusCode sets the "status_code" field.
func (u *RunTelemetryUpsert) SetStatusCode(v string) *RunTelemetryUpsert {
	u.Set(runtelemetry.FieldStatusCode, v)
	return u
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *RunTelemetryUpsert) UpdateStatusCode() *RunTelemetryUpsert {
	u.SetExcluded(runtelemetry.FieldStatusCode)
	return u
}

// ClearStatusCode clears the value of the "status_code" field.
func (u *RunTelemetryUpsert) ClearStatusCode() *RunTelemetryUpsert {
	u.SetNull(runtelemetry.FieldStatusCode)
	return u
}

// SetStatusMessage sets the "status_message" field.
func (u *RunTelemetryUpsert) SetStatusMessage(v string) *RunTelemetryUpsert {
	u.Set(runtelemetry.FieldStatusMessage, v)
	return u
}

// UpdateStatusMessage sets the "status_message" field to the value that was provided on create.
func (u *RunTelemetryUpsert) UpdateStatusMessage() *RunTelemetryUpsert {
	u.SetExcluded(runtelemetry.FieldStatusMessage)
	return u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (u *RunTelemetryUpsert) ClearStatusMessage() *RunTelemetryUpsert {
	u.SetNull(runtelemetry.FieldStatusMessage)
	return u
}

// SetAttributes sets the "attributes" field.
func (u *RunTelemetryUpsert) SetAttributes(v map[string]interface{}) *RunTelemetryUpsert {
	u.Set(runtelemetry.FieldAttributes, v)
	return u
}

// UpdateAttributes sets the "attributes" field to the value that was provided on create.
func (u *RunTelemetryUpsert) UpdateAttributes() *RunTelemetryUpsert {
	u.SetExcluded(runtelemetry.FieldAttributes)
	return u
}

// ClearAttributes clears the value of the "attributes" field.
func (u *RunTelemetryUpsert) ClearAttributes() *RunTelemetryUpsert {
	u.SetNull(runtelemetry.FieldAttributes)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *RunTelemetryUpsert) SetEndedAt(v time.Time) *RunTelemetryUpsert {
	u.Set(runtelemetry.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *RunTelemetryUpsert) UpdateEndedAt() *RunTelemetryUpsert {
	u.SetExcluded(runtelemetry.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *RunTelemetryUpsert) ClearEndedAt() *RunTelemetryUpsert {
	u.SetNull(runtelemetry.FieldEndedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RunTelemetry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RunTelemetryUpsertOne) UpdateNewValues() *RunTelemetryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(runtelemetry.FieldRunID)
		}
		if _, exists := u.create.mutation.SpanID(); exists {
			s.SetIgnore(runtelemetry.FieldSpanID)
		}
		if _, exists := u.create.mutation.TraceID(); exists {
			s.SetIgnore(runtelemetry.FieldTraceID)
		}
		if _, exists := u.create.mutation.ParentSpanID(); exists {
			s.SetIgnore(runtelemetry.FieldParentSpanID)
		}
		if _, exists := u.create.mutation.Name(); exists {
			s.SetIgnore(runtelemetry.FieldName)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(runtelemetry.FieldStartedAt)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(runtelemetry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunTelemetry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunTelemetryUpsertOne) Ignore() *RunTelemetryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunTelemetryUpsertOne) DoNothing() *RunTelemetryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunTelemetryCreate.OnConflict
// documentation for more info.
func (u *RunTelemetryUpsertOne) Update(set func(*RunTelemetryUpsert)) *RunTelemetryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunTelemetryUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatusCode sets the "status_code" field.
func (u *RunTelemetryUpsertOne) SetStatusCode(v string) *RunTelemetryUpsertOne {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.SetStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *RunTelemetryUpsertOne) UpdateStatusCode() *RunTelemetryUpsertOne {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.UpdateStatusCode()
	})
}

// ClearStatusCode clears the value of the "status_code" field.
func (u *RunTelemetryUpsertOne) ClearStatusCode() *RunTelemetryUpsertOne {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.ClearStatusCode()
	})
}

// SetStatusMessage sets the "status_message" field.
func (u *RunTelemetryUpsertOne) SetStatusMessage(v string) *RunTelemetryUpsertOne {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.SetStatusMessage(v)
	})
}

// UpdateStatusMessage sets the "status_message" field to the value that was provided on create.
func (u *RunTelemetryUpsertOne) UpdateStatusMessage() *RunTelemetryUpsertOne {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.UpdateStatusMessage()
	})
}

// ClearStatusMessage clears the value of the "status_message" field.
func (u *RunTelemetryUpsertOne) ClearStatusMessage() *RunTelemetryUpsertOne {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.ClearStatusMessage()
	})
}

// SetAttributes sets the "attributes" field.
func (u *RunTelemetryUpsertOne) SetAttributes(v map[string]interface{}) *RunTelemetryUpsertOne {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.SetAttributes(v)
	})
}

// UpdateAttributes sets the "attributes" field to the value that was provided on create.
func (u *RunTelemetryUpsertOne) UpdateAttributes() *RunTelemetryUpsertOne {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.UpdateAttributes()
	})
}

// ClearAttributes clears the value of the "attributes" field.
func (u *RunTelemetryUpsertOne) ClearAttributes() *RunTelemetryUpsertOne {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.ClearAttributes()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *RunTelemetryUpsertOne) SetEndedAt(v time.Time) *RunTelemetryUpsertOne {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *RunTelemetryUpsertOne) UpdateEndedAt() *RunTelemetryUpsertOne {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *RunTelemetryUpsertOne) ClearEndedAt() *RunTelemetryUpsertOne {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.ClearEndedAt()
	})
}

// Exec executes the query.
func (u *RunTelemetryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunTelemetryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunTelemetryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunTelemetryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunTelemetryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunTelemetryCreateBulk is the builder for creating many RunTelemetry entities in bulk.
type RunTelemetryCreateBulk struct {
	config
	err      error
	builders []*RunTelemetryCreate
	conflict []sql.ConflictOption
}

// Save creates the RunTelemetry entities in the database.
func (_c *RunTelemetryCreateBulk) Save(ctx context.Context) ([]*RunTelemetry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunTelemetry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunTelemetryMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *RunTelemetryCreateBulk) SaveX(ctx context.Context) []*RunTelemetry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunTelemetryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunTelemetryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunTelemetry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunTelemetryUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunTelemetryCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunTelemetryUpsertBulk {
	_c.conflict = opts
	return &RunTelemetryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunTelemetry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunTelemetryCreateBulk) OnConflictColumns(columns ...string) *RunTelemetryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunTelemetryUpsertBulk{
		create: _c,
	}
}

// RunTelemetryUpsertBulk is the builder for "upsert"-ing
// a bulk of RunTelemetry nodes.
type RunTelemetryUpsertBulk struct {
	create *RunTelemetryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RunTelemetry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RunTelemetryUpsertBulk) UpdateNewValues() *RunTelemetryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(runtelemetry.FieldRunID)
			}
			if _, exists := b.mutation.SpanID(); exists {
				s.SetIgnore(runtelemetry.FieldSpanID)
			}
			if _, exists := b.mutation.TraceID(); exists {
				s.SetIgnore(runtelemetry.FieldTraceID)
			}
			if _, exists := b.mutation.ParentSpanID(); exists {
				s.SetIgnore(runtelemetry.FieldParentSpanID)
			}
			if _, exists := b.mutation.Name(); exists {
				s.SetIgnore(runtelemetry.FieldName)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(runtelemetry.FieldStartedAt)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(runtelemetry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunTelemetry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunTelemetryUpsertBulk) Ignore() *RunTelemetryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunTelemetryUpsertBulk) DoNothing() *RunTelemetryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunTelemetryCreateBulk.OnConflict
// documentation for more info.
func (u *RunTelemetryUpsertBulk) Update(set func(*RunTelemetryUpsert)) *RunTelemetryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunTelemetryUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatusCode sets the "status_code" field.
func (u *RunTelemetryUpsertBulk) SetStatusCode(v string) *RunTelemetryUpsertBulk {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.SetStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *RunTelemetryUpsertBulk) UpdateStatusCode() *RunTelemetryUpsertBulk {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.UpdateStatusCode()
	})
}

// ClearStatusCode clears the value of the "status_code" field.
func (u *RunTelemetryUpsertBulk) ClearStatusCode() *RunTelemetryUpsertBulk {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.ClearStatusCode()
	})
}

// SetStatusMessage sets the "status_message" field.
func (u *RunTelemetryUpsertBulk) SetStatusMessage(v string) *RunTelemetryUpsertBulk {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.SetStatusMessage(v)
	})
}

// UpdateStatusMessage sets the "status_message" field to the value that was provided on create.
func (u *RunTelemetryUpsertBulk) UpdateStatusMessage() *RunTelemetryUpsertBulk {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.UpdateStatusMessage()
	})
}

// ClearStatusMessage clears the value of the "status_message" field.
func (u *RunTelemetryUpsertBulk) ClearStatusMessage() *RunTelemetryUpsertBulk {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.ClearStatusMessage()
	})
}

// SetAttributes sets the "attributes" field.
func (u *RunTelemetryUpsertBulk) SetAttributes(v map[string]interface{}) *RunTelemetryUpsertBulk {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.SetAttributes(v)
	})
}

// UpdateAttributes sets the "attributes" field to the value that was provided on create.
func (u *RunTelemetryUpsertBulk) UpdateAttributes() *RunTelemetryUpsertBulk {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.UpdateAttributes()
	})
}

// ClearAttributes clears the value of the "attributes" field.
func (u *RunTelemetryUpsertBulk) ClearAttributes() *RunTelemetryUpsertBulk {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.ClearAttributes()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *RunTelemetryUpsertBulk) SetEndedAt(v time.Time) *RunTelemetryUpsertBulk {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *RunTelemetryUpsertBulk) UpdateEndedAt() *RunTelemetryUpsertBulk {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *RunTelemetryUpsertBulk) ClearEndedAt() *RunTelemetryUpsertBulk {
	return u.Update(func(s *RunTelemetryUpsert) {
		s.ClearEndedAt()
	})
}

// Exec executes the query.
func (u *RunTelemetryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunTelemetryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunTelemetryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunTelemetryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
