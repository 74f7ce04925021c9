// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/healthtrack-labs/healthtrack/gen/ent/adherenceentry"
	"github.com/healthtrack-labs/healthtrack/gen/ent/predicate"
)

// AdherenceEntryDelete is the builder for deleting a AdherenceEntry entity.
type AdherenceEntryDelete struct {
	config
	hooks    []Hook
	mutation *AdherenceEntryMutation
}

// Where appends a list predicates to the AdherenceEntryDelete builder.
func (_d *AdherenceEntryDelete) Where(ps ...predicate.AdherenceEntry) *AdherenceEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdherenceEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdherenceEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdherenceEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(adherenceentry.Table, sqlgraph.NewFieldSpec(adherenceentry.FieldID, field.TypeUUID))
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

// AdherenceEntryDeleteOne is the builder for deleting a single AdherenceEntry entity.
type AdherenceEntryDeleteOne struct {
	_d *AdherenceEntryDelete
}

// Where appends a list predicates to the AdherenceEntryDelete builder.
func (_d *AdherenceEntryDeleteOne) Where(ps ...predicate.AdherenceEntry) *AdherenceEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdherenceEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{adherenceentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdherenceEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
