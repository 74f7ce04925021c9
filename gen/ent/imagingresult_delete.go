// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/healthtrack-labs/healthtrack/gen/ent/imagingresult"
	"github.com/healthtrack-labs/healthtrack/gen/ent/predicate"
)

// ImagingResultDelete is the builder for deleting a ImagingResult entity.
type ImagingResultDelete struct {
	config
	hooks    []Hook
	mutation *ImagingResultMutation
}

// Where appends a list predicates to the ImagingResultDelete builder.
func (_d *ImagingResultDelete) Where(ps ...predicate.ImagingResult) *ImagingResultDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ImagingResultDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ImagingResultDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ImagingResultDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(imagingresult.Table, sqlgraph.NewFieldSpec(imagingresult.FieldID, field.TypeUUID))
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

// ImagingResultDeleteOne is the builder for deleting a single ImagingResult entity.
type ImagingResultDeleteOne struct {
	_d *ImagingResultDelete
}

// Where appends a list predicates to the ImagingResultDelete builder.
func (_d *ImagingResultDeleteOne) Where(ps ...predicate.ImagingResult) *ImagingResultDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ImagingResultDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{imagingresult.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ImagingResultDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
