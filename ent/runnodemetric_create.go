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
	"github.com/agentfleet/agentfleet/ent/runnodemetric"
	"github.com/agentfleet/agentfleet/ent/runsummary"
)

// RunNodeMetricCreate is the builder for creating a RunNodeMetric entity.
type RunNodeMetricCreate struct {
	config
	mutation *RunNodeMetricMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *RunNodeMetricCreate) SetRunID(v string) *RunNodeMetricCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *RunNodeMetricCreate) SetNodeID(v string) *RunNodeMetricCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunNodeMetricCreate) SetStatus(v string) *RunNodeMetricCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunNodeMetricCreate) SetNillableStatus(v *string) *RunNodeMetricCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *RunNodeMetricCreate) SetInputTokens(v int) *RunNodeMetricCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *RunNodeMetricCreate) SetNillableInputTokens(v *int) *RunNodeMetricCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *RunNodeMetricCreate) SetOutputTokens(v int) *RunNodeMetricCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *RunNodeMetricCreate) SetNillableOutputTokens(v *int) *RunNodeMetricCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *RunNodeMetricCreate) SetTotalTokens(v int) *RunNodeMetricCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *RunNodeMetricCreate) SetNillableTotalTokens(v *int) *RunNodeMetricCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetExecutionCount sets the "execution_count" field.
func (_c *RunNodeMetricCreate) SetExecutionCount(v int) *RunNodeMetricCreate {
	_c.mutation.SetExecutionCount(v)
	return _c
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_c *RunNodeMetricCreate) SetNillableExecutionCount(v *int) *RunNodeMetricCreate {
	if v != nil {
		_c.SetExecutionCount(*v)
	}
	return _c
}

// SetStreamEventCount sets the "stream_event_count" field.
func (_c *RunNodeMetricCreate) SetStreamEventCount(v int) *RunNodeMetricCreate {
	_c.mutation.SetStreamEventCount(v)
	return _c
}

// SetNillableStreamEventCount sets the "stream_event_count" field if the given value is not nil.
func (_c *RunNodeMetricCreate) SetNillableStreamEventCount(v *int) *RunNodeMetricCreate {
	if v != nil {
		_c.SetStreamEventCount(*v)
	}
	return _c
}

// SetCaptureCapped sets the "capture_capped" field.
func (_c *RunNodeMetricCreate) SetCaptureCapped(v bool) *RunNodeMetricCreate {
	_c.mutation.SetCaptureCapped(v)
	return _c
}

// SetNillableCaptureCapped sets the "capture_capped" field if the given value is not nil.
func (_c *RunNodeMetricCreate) SetNillableCaptureCapped(v *bool) *RunNodeMetricCreate {
	if v != nil {
		_c.SetCaptureCapped(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *RunNodeMetricCreate) SetDurationMs(v int64) *RunNodeMetricCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *RunNodeMetricCreate) SetNillableDurationMs(v *int64) *RunNodeMetricCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunNodeMetricCreate) SetCreatedAt(v time.Time) *RunNodeMetricCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunNodeMetricCreate) SetNillableCreatedAt(v *time.Time) *RunNodeMetricCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the RunSummary entity.
func (_c *RunNodeMetricCreate) SetRun(v *RunSummary) *RunNodeMetricCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunNodeMetricMutation object of the builder.
func (_c *RunNodeMetricCreate) Mutation() *RunNodeMetricMutation {
	return _c.mutation
}

// Save creates the RunNodeMetric in the database.
func (_c *RunNodeMetricCreate) Save(ctx context.Context) (*RunNodeMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunNodeMetricCreate) SaveX(ctx context.Context) *RunNodeMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunNodeMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunNodeMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunNodeMetricCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := runnodemetric.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := runnodemetric.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := runnodemetric.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.ExecutionCount(); !ok {
		v := runnodemetric.DefaultExecutionCount
		_c.mutation.SetExecutionCount(v)
	}
	if _, ok := _c.mutation.StreamEventCount(); !ok {
		v := runnodemetric.DefaultStreamEventCount
		_c.mutation.SetStreamEventCount(v)
	}
	if _, ok := _c.mutation.CaptureCapped(); !ok {
		v := runnodemetric.DefaultCaptureCapped
		_c.mutation.SetCaptureCapped(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := runnodemetric.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runnodemetric.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunNodeMetricCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunNodeMetric.run_id"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "RunNodeMetric.node_id"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "RunNodeMetric.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "RunNodeMetric.output_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "RunNodeMetric.total_tokens"`)}
	}
	if _, ok := _c.mutation.ExecutionCount(); !ok {
		return &ValidationError{Name: "execution_count", err: errors.New(`ent: missing required field "RunNodeMetric.execution_count"`)}
	}
	if _, ok := _c.mutation.StreamEventCount(); !ok {
		return &ValidationError{Name: "stream_event_count", err: errors.New(`ent: missing required field "RunNodeMetric.stream_event_count"`)}
	}
	if _, ok := _c.mutation.CaptureCapped(); !ok {
		return &ValidationError{Name: "capture_capped", err: errors.New(`ent: missing required field "RunNodeMetric.capture_capped"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "RunNodeMetric.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunNodeMetric.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunNodeMetric.run"`)}
	}
	return nil
}

func (_c *RunNodeMetricCreate) sqlSave(ctx context.Context) (*RunNodeMetric, error) {
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

func (_c *RunNodeMetricCreate) createSpec() (*RunNodeMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &RunNodeMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runnodemetric.Table, sqlgraph.NewFieldSpec(runnodemetric.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(runnodemetric.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(runnodemetric.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(runnodemetric.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(runnodemetric.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(runnodemetric.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.ExecutionCount(); ok {
		_spec.SetField(runnodemetric.FieldExecutionCount, field.TypeInt, value)
		_node.ExecutionCount = value
	}
	if value, ok := _c.mutation.StreamEventCount(); ok {
		_spec.SetField(runnodemetric.FieldStreamEventCount, field.TypeInt, value)
		_node.StreamEventCount = value
	}
	if value, ok := _c.mutation.CaptureCapped(); ok {
		_spec.SetField(runnodemetric.FieldCaptureCapped, field.TypeBool, value)
		_node.CaptureCapped = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(runnodemetric.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runnodemetric.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runnodemetric.RunTable,
			Columns: []string{runnodemetric.RunColumn},
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
//	client.RunNodeMetric.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunNodeMetricUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunNodeMetricCreate) OnConflict(opts ...sql.ConflictOption) *RunNodeMetricUpsertOne {
	_c.conflict = opts
	return &RunNodeMetricUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunNodeMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunNodeMetricCreate) OnConflictColumns(columns ...string) *RunNodeMetricUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunNodeMetricUpsertOne{
		create: _c,
	}
}

type (
	// RunNodeMetricUpsertOne is the builder for "upsert"-ing
	//  one RunNodeMetric node.
	RunNodeMetricUpsertOne struct {
		create *RunNodeMetricCreate
	}

	// RunNodeMetricUpsert is the "OnConflict" setter.
	RunNodeMetricUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *RunNodeMetricUpsert) SetStatus(v string) *RunNodeMetricUpsert {
	u.Set(runnodemetric.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunNodeMetricUpsert) UpdateStatus() *RunNodeMetricUpsert {
	u.SetExcluded(runnodemetric.FieldStatus)
	return u
}

// ClearStatus clears the value of the "status" field.
func (u *RunNodeMetricUpsert) ClearStatus() *RunNodeMetricUpsert {
	u.SetNull(runnodemetric.FieldStatus)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *RunNodeMetricUpsert) SetInputTokens(v int) *RunNodeMetricUpsert {
	u.Set(runnodemetric.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *RunNodeMetricUpsert) UpdateInputTokens() *RunNodeMetricUpsert {
	u.SetExcluded(runnodemetric.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *RunNodeMetricUpsert) AddInputTokens(v int) *RunNodeMetricUpsert {
	u.Add(runnodemetric.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *RunNodeMetricUpsert) SetOutputTokens(v int) *RunNodeMetricUpsert {
	u.Set(runnodemetric.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *RunNodeMetricUpsert) UpdateOutputTokens() *RunNodeMetricUpsert {
	u.SetExcluded(runnodemetric.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *RunNodeMetricUpsert) AddOutputTokens(v int) *RunNodeMetricUpsert {
	u.Add(runnodemetric.FieldOutputTokens, v)
	return u
}

// SetTotalTokens sets the "total_tokens" field.
func (u *RunNodeMetricUpsert) SetTotalTokens(v int) *RunNodeMetricUpsert {
	u.Set(runnodemetric.FieldTotalTokens, v)
	return u
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *RunNodeMetricUpsert) UpdateTotalTokens() *RunNodeMetricUpsert {
	u.SetExcluded(runnodemetric.FieldTotalTokens)
	return u
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *RunNodeMetricUpsert) AddTotalTokens(v int) *RunNodeMetricUpsert {
	u.Add(runnodemetric.FieldTotalTokens, v)
	return u
}

// SetExecutionCount sets the "execution_count" field.
func (u *RunNodeMetricUpsert) SetExecutionCount(v int) *RunNodeMetricUpsert {
	u.Set(runnodemetric.FieldExecutionCount, v)
	return u
}

// UpdateExecutionCount sets the "execution_count" field to the value that was provided on create.
func (u *RunNodeMetricUpsert) UpdateExecutionCount() *RunNodeMetricUpsert {
	u.SetExcluded(runnodemetric.FieldExecutionCount)
	return u
}

// AddExecutionCount adds v to the "execution_count" field.
func (u *RunNodeMetricUpsert) AddExecutionCount(v int) *RunNodeMetricUpsert {
	u.Add(runnodemetric.FieldExecutionCount, v)
	return u
}

// SetStreamEventCount sets the "stream_event_count" field.
func (u *RunNodeMetricUpsert) SetStreamEventCount(v int) *RunNodeMetricUpsert {
	u.Set(runnodemetric.FieldStreamEventCount, v)
	return u
}

// UpdateStreamEventCount sets the "stream_event_count" field to the value that was provided on create.
func (u *RunNodeMetricUpsert) UpdateStreamEventCount() *RunNodeMetricUpsert {
	u.SetExcluded(runnodemetric.FieldStreamEventCount)
	return u
}

// AddStreamEventCount adds v to the "stream_event_count" field.
func (u *RunNodeMetricUpsert) AddStreamEventCount(v int) *RunNodeMetricUpsert {
	u.Add(runnodemetric.FieldStreamEventCount, v)
	return u
}

// SetCaptureCapped sets the "capture_capped" field.
func (u *RunNodeMetricUpsert) SetCaptureCapped(v bool) *RunNodeMetricUpsert {
	u.Set(runnodemetric.FieldCaptureCapped, v)
	return u
}

// UpdateCaptureCapped sets the "capture_capped" field to the value that was provided on create.
func (u *RunNodeMetricUpsert) UpdateCaptureCapped() *RunNodeMetricUpsert {
	u.SetExcluded(runnodemetric.FieldCaptureCapped)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *RunNodeMetricUpsert) SetDurationMs(v int64) *RunNodeMetricUpsert {
	u.Set(runnodemetric.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *RunNodeMetricUpsert) UpdateDurationMs() *RunNodeMetricUpsert {
	u.SetExcluded(runnodemetric.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *RunNodeMetricUpsert) AddDurationMs(v int64) *RunNodeMetricUpsert {
	u.Add(runnodemetric.FieldDurationMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RunNodeMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RunNodeMetricUpsertOne) UpdateNewValues() *RunNodeMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(runnodemetric.FieldRunID)
		}
		if _, exists := u.create.mutation.NodeID(); exists {
			s.SetIgnore(runnodemetric.FieldNodeID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(runnodemetric.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunNodeMetric.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunNodeMetricUpsertOne) Ignore() *RunNodeMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunNodeMetricUpsertOne) DoNothing() *RunNodeMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunNodeMetricCreate.OnConflict
// documentation for more info.
func (u *RunNodeMetricUpsertOne) Update(set func(*RunNodeMetricUpsert)) *RunNodeMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunNodeMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *RunNodeMetricUpsertOne) SetStatus(v string) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunNodeMetricUpsertOne) UpdateStatus() *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *RunNodeMetricUpsertOne) ClearStatus() *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.ClearStatus()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *RunNodeMetricUpsertOne) SetInputTokens(v int) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *RunNodeMetricUpsertOne) AddInputTokens(v int) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *RunNodeMetricUpsertOne) UpdateInputTokens() *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *RunNodeMetricUpsertOne) SetOutputTokens(v int) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *RunNodeMetricUpsertOne) AddOutputTokens(v int) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *RunNodeMetricUpsertOne) UpdateOutputTokens() *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *RunNodeMetricUpsertOne) SetTotalTokens(v int) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *RunNodeMetricUpsertOne) AddTotalTokens(v int) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *RunNodeMetricUpsertOne) UpdateTotalTokens() *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetExecutionCount sets the "execution_count" field.
func (u *RunNodeMetricUpsertOne) SetExecutionCount(v int) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetExecutionCount(v)
	})
}

// AddExecutionCount adds v to the "execution_count" field.
func (u *RunNodeMetricUpsertOne) AddExecutionCount(v int) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.AddExecutionCount(v)
	})
}

// UpdateExecutionCount sets the "execution_count" field to the value that was provided on create.
func (u *RunNodeMetricUpsertOne) UpdateExecutionCount() *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateExecutionCount()
	})
}

// SetStreamEventCount sets the "stream_event_count" field.
func (u *RunNodeMetricUpsertOne) SetStreamEventCount(v int) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetStreamEventCount(v)
	})
}

// AddStreamEventCount adds v to the "stream_event_count" field.
func (u *RunNodeMetricUpsertOne) AddStreamEventCount(v int) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.AddStreamEventCount(v)
	})
}

// UpdateStreamEventCount sets the "stream_event_count" field to the value that was provided on create.
func (u *RunNodeMetricUpsertOne) UpdateStreamEventCount() *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateStreamEventCount()
	})
}

// SetCaptureCapped sets the "capture_capped" field.
func (u *RunNodeMetricUpsertOne) SetCaptureCapped(v bool) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetCaptureCapped(v)
	})
}

// UpdateCaptureCapped sets the "capture_capped" field to the value that was provided on create.
func (u *RunNodeMetricUpsertOne) UpdateCaptureCapped() *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateCaptureCapped()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *RunNodeMetricUpsertOne) SetDurationMs(v int64) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *RunNodeMetricUpsertOne) AddDurationMs(v int64) *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *RunNodeMetricUpsertOne) UpdateDurationMs() *RunNodeMetricUpsertOne {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *RunNodeMetricUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunNodeMetricCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunNodeMetricUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunNodeMetricUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunNodeMetricUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunNodeMetricCreateBulk is the builder for creating many RunNodeMetric entities in bulk.
type RunNodeMetricCreateBulk struct {
	config
	err      error
	builders []*RunNodeMetricCreate
	conflict []sql.ConflictOption
}

// Save creates the RunNodeMetric entities in the database.
func (_c *RunNodeMetricCreateBulk) Save(ctx context.Context) ([]*RunNodeMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunNodeMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunNodeMetricMutation)
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
func (_c *RunNodeMetricCreateBulk) SaveX(ctx context.Context) []*RunNodeMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunNodeMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunNodeMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunNodeMetric.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunNodeMetricUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunNodeMetricCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunNodeMetricUpsertBulk {
	_c.conflict = opts
	return &RunNodeMetricUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunNodeMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunNodeMetricCreateBulk) OnConflictColumns(columns ...string) *RunNodeMetricUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunNodeMetricUpsertBulk{
		create: _c,
	}
}

// RunNodeMetricUpsertBulk is the builder for "upsert"-ing
// a bulk of RunNodeMetric nodes.
type RunNodeMetricUpsertBulk struct {
	create *RunNodeMetricCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RunNodeMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RunNodeMetricUpsertBulk) UpdateNewValues() *RunNodeMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(runnodemetric.FieldRunID)
			}
			if _, exists := b.mutation.NodeID(); exists {
				s.SetIgnore(runnodemetric.FieldNodeID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(runnodemetric.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunNodeMetric.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunNodeMetricUpsertBulk) Ignore() *RunNodeMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunNodeMetricUpsertBulk) DoNothing() *RunNodeMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunNodeMetricCreateBulk.OnConflict
// documentation for more info.
func (u *RunNodeMetricUpsertBulk) Update(set func(*RunNodeMetricUpsert)) *RunNodeMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunNodeMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *RunNodeMetricUpsertBulk) SetStatus(v string) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunNodeMetricUpsertBulk) UpdateStatus() *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *RunNodeMetricUpsertBulk) ClearStatus() *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.ClearStatus()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *RunNodeMetricUpsertBulk) SetInputTokens(v int) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *RunNodeMetricUpsertBulk) AddInputTokens(v int) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *RunNodeMetricUpsertBulk) UpdateInputTokens() *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *RunNodeMetricUpsertBulk) SetOutputTokens(v int) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *RunNodeMetricUpsertBulk) AddOutputTokens(v int) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *RunNodeMetricUpsertBulk) UpdateOutputTokens() *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *RunNodeMetricUpsertBulk) SetTotalTokens(v int) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *RunNodeMetricUpsertBulk) AddTotalTokens(v int) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *RunNodeMetricUpsertBulk) UpdateTotalTokens() *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetExecutionCount sets the "execution_count" field.
func (u *RunNodeMetricUpsertBulk) SetExecutionCount(v int) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetExecutionCount(v)
	})
}

// AddExecutionCount adds v to the "execution_count" field.
func (u *RunNodeMetricUpsertBulk) AddExecutionCount(v int) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.AddExecutionCount(v)
	})
}

// UpdateExecutionCount sets the "execution_count" field to the value that was provided on create.
func (u *RunNodeMetricUpsertBulk) UpdateExecutionCount() *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateExecutionCount()
	})
}

// SetStreamEventCount sets the "stream_event_count" field.
func (u *RunNodeMetricUpsertBulk) SetStreamEventCount(v int) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetStreamEventCount(v)
	})
}

// AddStreamEventCount adds v to the "stream_event_count" field.
func (u *RunNodeMetricUpsertBulk) AddStreamEventCount(v int) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.AddStreamEventCount(v)
	})
}

// UpdateStreamEventCount sets the "stream_event_count" field to the value that was provided on create.
func (u *RunNodeMetricUpsertBulk) UpdateStreamEventCount() *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateStreamEventCount()
	})
}

// SetCaptureCapped sets the "capture_capped" field.
func (u *RunNodeMetricUpsertBulk) SetCaptureCapped(v bool) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetCaptureCapped(v)
	})
}

// UpdateCaptureCapped sets the "capture_capped" field to the value that was provided on create.
func (u *RunNodeMetricUpsertBulk) UpdateCaptureCapped() *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateCaptureCapped()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *RunNodeMetricUpsertBulk) SetDurationMs(v int64) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *RunNodeMetricUpsertBulk) AddDurationMs(v int64) *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *RunNodeMetricUpsertBulk) UpdateDurationMs() *RunNodeMetricUpsertBulk {
	return u.Update(func(s *RunNodeMetricUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *RunNodeMetricUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunNodeMetricCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunNodeMetricCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunNodeMetricUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
