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
	"github.com/agentfleet/agentfleet/ent/predicate"
	"github.com/agentfleet/agentfleet/ent/runtelemetry"
)

// RunTelemetryUpdate is the builder for updating RunTelemetry entities.
type RunTelemetryUpdate struct {
	config
	hooks    []Hook
	mutation *RunTelemetryMutation
}

// Where appends a list predicates to the RunTelemetryUpdate builder.
func (_u *RunTelemetryUpdate) Where(ps ...predicate.RunTelemetry) *RunTelemetryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *RunTelemetryUpdate) SetStatusCode(v string) *RunTelemetryUpdate {
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *RunTelemetryUpdate) SetNillableStatusCode(v *string) *RunTelemetryUpdate {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// ClearStatusCode clears the value of the "status_code" field.
func (_u *RunTelemetryUpdate) ClearStatusCode() *RunTelemetryUpdate {
	_u.mutation.ClearStatusCode()
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *RunTelemetryUpdate) SetStatusMessage(v string) *RunTelemetryUpdate {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *RunTelemetryUpdate) SetNillableStatusMessage(v *string) *RunTelemetryUpdate {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *RunTelemetryUpdate) ClearStatusMessage() *RunTelemetryUpdate {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *RunTelemetryUpdate) SetAttributes(v map[string]interface{}) *RunTelemetryUpdate {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *RunTelemetryUpdate) ClearAttributes() *RunTelemetryUpdate {
	_u.mutation.ClearAttributes()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *RunTelemetryUpdate) SetEndedAt(v time.Time) *RunTelemetryUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *RunTelemetryUpdate) SetNillableEndedAt(v *time.Time) *RunTelemetryUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *RunTelemetryUpdate) ClearEndedAt() *RunTelemetryUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the RunTelemetryMutation object of the builder.
func (_u *RunTelemetryUpdate) Mutation() *RunTelemetryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunTelemetryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunTelemetryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunTelemetryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunTelemetryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunTelemetryUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunTelemetry.run"`)
	}
	return nil
}

func (_u *RunTelemetryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runtelemetry.Table, runtelemetry.Columns, sqlgraph.NewFieldSpec(runtelemetry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParentSpanIDCleared() {
		_spec.ClearField(runtelemetry.FieldParentSpanID, field.TypeString)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(runtelemetry.FieldStatusCode, field.TypeString, value)
	}
	if _u.mutation.StatusCodeCleared() {
		_spec.ClearField(runtelemetry.FieldStatusCode, field.TypeString)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(runtelemetry.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(runtelemetry.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(runtelemetry.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(runtelemetry.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(runtelemetry.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(runtelemetry.FieldEndedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runtelemetry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunTelemetryUpdateOne is the builder for updating a single RunTelemetry entity.
type RunTelemetryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunTelemetryMutation
}

// SetStatusCode sets the "status_code" field.
func (_u *RunTelemetryUpdateOne) SetStatusCode(v string) *RunTelemetryUpdateOne {
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *RunTelemetryUpdateOne) SetNillableStatusCode(v *string) *RunTelemetryUpdateOne {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// ClearStatusCode clears the value of the "status_code" field.
func (_u *RunTelemetryUpdateOne) ClearStatusCode() *RunTelemetryUpdateOne {
	_u.mutation.ClearStatusCode()
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *RunTelemetryUpdateOne) SetStatusMessage(v string) *RunTelemetryUpdateOne {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *RunTelemetryUpdateOne) SetNillableStatusMessage(v *string) *RunTelemetryUpdateOne {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *RunTelemetryUpdateOne) ClearStatusMessage() *RunTelemetryUpdateOne {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *RunTelemetryUpdateOne) SetAttributes(v map[string]interface{}) *RunTelemetryUpdateOne {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *RunTelemetryUpdateOne) ClearAttributes() *RunTelemetryUpdateOne {
	_u.mutation.ClearAttributes()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *RunTelemetryUpdateOne) SetEndedAt(v time.Time) *RunTelemetryUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *RunTelemetryUpdateOne) SetNillableEndedAt(v *time.Time) *RunTelemetryUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *RunTelemetryUpdateOne) ClearEndedAt() *RunTelemetryUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the RunTelemetryMutation object of the builder.
func (_u *RunTelemetryUpdateOne) Mutation() *RunTelemetryMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunTelemetryUpdate builder.
func (_u *RunTelemetryUpdateOne) Where(ps ...predicate.RunTelemetry) *RunTelemetryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunTelemetryUpdateOne) Select(field string, fields ...string) *RunTelemetryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunTelemetry entity.
func (_u *RunTelemetryUpdateOne) Save(ctx context.Context) (*RunTelemetry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunTelemetryUpdateOne) SaveX(ctx context.Context) *RunTelemetry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunTelemetryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunTelemetryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunTelemetryUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunTelemetry.run"`)
	}
	return nil
}

func (_u *RunTelemetryUpdateOne) sqlSave(ctx context.Context) (_node *RunTelemetry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runtelemetry.Table, runtelemetry.Columns, sqlgraph.NewFieldSpec(runtelemetry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunTelemetry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runtelemetry.FieldID)
		for _, f := range fields {
			if !runtelemetry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runtelemetry.FieldID {
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
	if _u.mutation.ParentSpanIDCleared() {
		_spec.ClearField(runtelemetry.FieldParentSpanID, field.TypeString)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(runtelemetry.FieldStatusCode, field.TypeString, value)
	}
	if _u.mutation.StatusCodeCleared() {
		_spec.ClearField(runtelemetry.FieldStatusCode, field.TypeString)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(runtelemetry.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(runtelemetry.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(runtelemetry.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(runtelemetry.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(runtelemetry.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(runtelemetry.FieldEndedAt, field.TypeTime)
	}
	_node = &RunTelemetry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runtelemetry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
