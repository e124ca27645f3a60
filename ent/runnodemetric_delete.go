// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfleet/agentfleet/ent/predicate"
	"github.com/agentfleet/agentfleet/ent/runnodemetric"
)

// RunNodeMetricDelete is the builder for deleting a RunNodeMetric entity.
type RunNodeMetricDelete struct {
	config
	hooks    []Hook
	mutation *RunNodeMetricMutation
}

// Where appends a list predicates to the RunNodeMetricDelete builder.
func (_d *RunNodeMetricDelete) Where(ps ...predicate.RunNodeMetric) *RunNodeMetricDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RunNodeMetricDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RunNodeMetricDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RunNodeMetricDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(runnodemetric.Table, sqlgraph.NewFieldSpec(runnodemetric.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// RunNodeMetricDeleteOne is the builder for deleting a single RunNodeMetric entity.
type RunNodeMetricDeleteOne struct {
	_d *RunNodeMetricDelete
}

// Where appends a list predicates to the RunNodeMetricDelete builder.
func (_d *RunNodeMetricDeleteOne) Where(ps ...predicate.RunNodeMetric) *RunNodeMetricDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RunNodeMetricDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{runnodemetric.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RunNodeMetricDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
