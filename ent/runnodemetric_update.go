// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfleet/agentfleet/ent/predicate"
	"github.com/agentfleet/agentfleet/ent/runnodemetric"
)

// RunNodeMetricUpdate is the builder for updating RunNodeMetric entities.
type RunNodeMetricUpdate struct {
	config
	hooks    []Hook
	mutation *RunNodeMetricMutation
}

// Where appends a list predicates to the RunNodeMetricUpdate builder.
func (_u *RunNodeMetricUpdate) Where(ps ...predicate.RunNodeMetric) *RunNodeMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunNodeMetricUpdate) SetStatus(v string) *RunNodeMetricUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunNodeMetricUpdate) SetNillableStatus(v *string) *RunNodeMetricUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *RunNodeMetricUpdate) ClearStatus() *RunNodeMetricUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *RunNodeMetricUpdate) SetInputTokens(v int) *RunNodeMetricUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *RunNodeMetricUpdate) SetNillableInputTokens(v *int) *RunNodeMetricUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *RunNodeMetricUpdate) AddInputTokens(v int) *RunNodeMetricUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *RunNodeMetricUpdate) SetOutputTokens(v int) *RunNodeMetricUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *RunNodeMetricUpdate) SetNillableOutputTokens(v *int) *RunNodeMetricUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *RunNodeMetricUpdate) AddOutputTokens(v int) *RunNodeMetricUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *RunNodeMetricUpdate) SetTotalTokens(v int) *RunNodeMetricUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *RunNodeMetricUpdate) SetNillableTotalTokens(v *int) *RunNodeMetricUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *RunNodeMetricUpdate) AddTotalTokens(v int) *RunNodeMetricUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetExecutionCount sets the "execution_count" field.
func (_u *RunNodeMetricUpdate) SetExecutionCount(v int) *RunNodeMetricUpdate {
	_u.mutation.ResetExecutionCount()
	_u.mutation.SetExecutionCount(v)
	return _u
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_u *RunNodeMetricUpdate) SetNillableExecutionCount(v *int) *RunNodeMetricUpdate {
	if v != nil {
		_u.SetExecutionCount(*v)
	}
	return _u
}

// AddExecutionCount adds value to the "execution_count" field.
func (_u *RunNodeMetricUpdate) AddExecutionCount(v int) *RunNodeMetricUpdate {
	_u.mutation.AddExecutionCount(v)
	return _u
}

// SetStreamEventCount sets the "stream_event_count" field.
func (_u *RunNodeMetricUpdate) SetStreamEventCount(v int) *RunNodeMetricUpdate {
	_u.mutation.ResetStreamEventCount()
	_u.mutation.SetStreamEventCount(v)
	return _u
}

// SetNillableStreamEventCount sets the "stream_event_count" field if the given value is not nil.
func (_u *RunNodeMetricUpdate) SetNillableStreamEventCount(v *int) *RunNodeMetricUpdate {
	if v != nil {
		_u.SetStreamEventCount(*v)
	}
	return _u
}

// AddStreamEventCount adds value to the "stream_event_count" field.
func (_u *RunNodeMetricUpdate) AddStreamEventCount(v int) *RunNodeMetricUpdate {
	_u.mutation.AddStreamEventCount(v)
	return _u
}

// SetCaptureCapped sets the "capture_capped" field.
func (_u *RunNodeMetricUpdate) SetCaptureCapped(v bool) *RunNodeMetricUpdate {
	_u.mutation.SetCaptureCapped(v)
	return _u
}

// SetNillableCaptureCapped sets the "capture_capped" field if the given value is not nil.
func (_u *RunNodeMetricUpdate) SetNillableCaptureCapped(v *bool) *RunNodeMetricUpdate {
	if v != nil {
		_u.SetCaptureCapped(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *RunNodeMetricUpdate) SetDurationMs(v int64) *RunNodeMetricUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *RunNodeMetricUpdate) SetNillableDurationMs(v *int64) *RunNodeMetricUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *RunNodeMetricUpdate) AddDurationMs(v int64) *RunNodeMetricUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the RunNodeMetricMutation object of the builder.
func (_u *RunNodeMetricUpdate) Mutation() *RunNodeMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunNodeMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunNodeMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunNodeMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunNodeMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunNodeMetricUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunNodeMetric.run"`)
	}
	return nil
}

func (_u *RunNodeMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runnodemetric.Table, runnodemetric.Columns, sqlgraph.NewFieldSpec(runnodemetric.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runnodemetric.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(runnodemetric.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(runnodemetric.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(runnodemetric.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(runnodemetric.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(runnodemetric.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(runnodemetric.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(runnodemetric.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecutionCount(); ok {
		_spec.SetField(runnodemetric.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionCount(); ok {
		_spec.AddField(runnodemetric.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreamEventCount(); ok {
		_spec.SetField(runnodemetric.FieldStreamEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreamEventCount(); ok {
		_spec.AddField(runnodemetric.FieldStreamEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CaptureCapped(); ok {
		_spec.SetField(runnodemetric.FieldCaptureCapped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(runnodemetric.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(runnodemetric.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runnodemetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunNodeMetricUpdateOne is the builder for updating a single RunNodeMetric entity.
type RunNodeMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunNodeMetricMutation
}

// SetStatus sets the "status" field.
func (_u *RunNodeMetricUpdateOne) SetStatus(v string) *RunNodeMetricUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunNodeMetricUpdateOne) SetNillableStatus(v *string) *RunNodeMetricUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *RunNodeMetricUpdateOne) ClearStatus() *RunNodeMetricUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *RunNodeMetricUpdateOne) SetInputTokens(v int) *RunNodeMetricUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *RunNodeMetricUpdateOne) SetNillableInputTokens(v *int) *RunNodeMetricUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *RunNodeMetricUpdateOne) AddInputTokens(v int) *RunNodeMetricUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *RunNodeMetricUpdateOne) SetOutputTokens(v int) *RunNodeMetricUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *RunNodeMetricUpdateOne) SetNillableOutputTokens(v *int) *RunNodeMetricUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *RunNodeMetricUpdateOne) AddOutputTokens(v int) *RunNodeMetricUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *RunNodeMetricUpdateOne) SetTotalTokens(v int) *RunNodeMetricUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *RunNodeMetricUpdateOne) SetNillableTotalTokens(v *int) *RunNodeMetricUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *RunNodeMetricUpdateOne) AddTotalTokens(v int) *RunNodeMetricUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetExecutionCount sets the "execution_count" field.
func (_u *RunNodeMetricUpdateOne) SetExecutionCount(v int) *RunNodeMetricUpdateOne {
	_u.mutation.ResetExecutionCount()
	_u.mutation.SetExecutionCount(v)
	return _u
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_u *RunNodeMetricUpdateOne) SetNillableExecutionCount(v *int) *RunNodeMetricUpdateOne {
	if v != nil {
		_u.SetExecutionCount(*v)
	}
	return _u
}

// AddExecutionCount adds value to the "execution_count" field.
func (_u *RunNodeMetricUpdateOne) AddExecutionCount(v int) *RunNodeMetricUpdateOne {
	_u.mutation.AddExecutionCount(v)
	return _u
}

// SetStreamEventCount sets the "stream_event_count" field.
func (_u *RunNodeMetricUpdateOne) SetStreamEventCount(v int) *RunNodeMetricUpdateOne {
	_u.mutation.ResetStreamEventCount()
	_u.mutation.SetStreamEventCount(v)
	return _u
}

// SetNillableStreamEventCount sets the "stream_event_count" field if the given value is not nil.
func (_u *RunNodeMetricUpdateOne) SetNillableStreamEventCount(v *int) *RunNodeMetricUpdateOne {
	if v != nil {
		_u.SetStreamEventCount(*v)
	}
	return _u
}

// AddStreamEventCount adds value to the "stream_event_count" field.
func (_u *RunNodeMetricUpdateOne) AddStreamEventCount(v int) *RunNodeMetricUpdateOne {
	_u.mutation.AddStreamEventCount(v)
	return _u
}

// SetCaptureCapped sets the "capture_capped" field.
func (_u *RunNodeMetricUpdateOne) SetCaptureCapped(v bool) *RunNodeMetricUpdateOne {
	_u.mutation.SetCaptureCapped(v)
	return _u
}

// SetNillableCaptureCapped sets the "capture_capped" field if the given value is not nil.
func (_u *RunNodeMetricUpdateOne) SetNillableCaptureCapped(v *bool) *RunNodeMetricUpdateOne {
	if v != nil {
		_u.SetCaptureCapped(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *RunNodeMetricUpdateOne) SetDurationMs(v int64) *RunNodeMetricUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *RunNodeMetricUpdateOne) SetNillableDurationMs(v *int64) *RunNodeMetricUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *RunNodeMetricUpdateOne) AddDurationMs(v int64) *RunNodeMetricUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the RunNodeMetricMutation object of the builder.
func (_u *RunNodeMetricUpdateOne) Mutation() *RunNodeMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunNodeMetricUpdate builder.
func (_u *RunNodeMetricUpdateOne) Where(ps ...predicate.RunNodeMetric) *RunNodeMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunNodeMetricUpdateOne) Select(field string, fields ...string) *RunNodeMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunNodeMetric entity.
func (_u *RunNodeMetricUpdateOne) Save(ctx context.Context) (*RunNodeMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunNodeMetricUpdateOne) SaveX(ctx context.Context) *RunNodeMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunNodeMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunNodeMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunNodeMetricUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunNodeMetric.run"`)
	}
	return nil
}

func (_u *RunNodeMetricUpdateOne) sqlSave(ctx context.Context) (_node *RunNodeMetric, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runnodemetric.Table, runnodemetric.Columns, sqlgraph.NewFieldSpec(runnodemetric.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunNodeMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runnodemetric.FieldID)
		for _, f := range fields {
			if !runnodemetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runnodemetric.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runnodemetric.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(runnodemetric.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(runnodemetric.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(runnodemetric.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(runnodemetric.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(runnodemetric.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(runnodemetric.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(runnodemetric.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecutionCount(); ok {
		_spec.SetField(runnodemetric.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionCount(); ok {
		_spec.AddField(runnodemetric.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreamEventCount(); ok {
		_spec.SetField(runnodemetric.FieldStreamEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreamEventCount(); ok {
		_spec.AddField(runnodemetric.FieldStreamEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CaptureCapped(); ok {
		_spec.SetField(runnodemetric.FieldCaptureCapped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(runnodemetric.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(runnodemetric.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &RunNodeMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runnodemetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
