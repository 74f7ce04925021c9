// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/healthtrack-labs/healthtrack/gen/ent/imagingresult"
)

// ImagingResultCreate is the builder for creating a ImagingResult entity.
type ImagingResultCreate struct {
	config
	mutation *ImagingResultMutation
	hooks    []Hook
}

// SetPatientID sets the "patient_id" field.
func (_c *ImagingResultCreate) SetPatientID(v uuid.UUID) *ImagingResultCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetTestDate sets the "test_date" field.
func (_c *ImagingResultCreate) SetTestDate(v time.Time) *ImagingResultCreate {
	_c.mutation.SetTestDate(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ImagingResultCreate) SetTitle(v string) *ImagingResultCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetObservations sets the "observations" field.
func (_c *ImagingResultCreate) SetObservations(v string) *ImagingResultCreate {
	_c.mutation.SetObservations(v)
	return _c
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_c *ImagingResultCreate) SetNillableObservations(v *string) *ImagingResultCreate {
	if v != nil {
		_c.SetObservations(*v)
	}
	return _c
}

// SetDoctorName sets the "doctor_name" field.
func (_c *ImagingResultCreate) SetDoctorName(v string) *ImagingResultCreate {
	_c.mutation.SetDoctorName(v)
	return _c
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_c *ImagingResultCreate) SetNillableDoctorName(v *string) *ImagingResultCreate {
	if v != nil {
		_c.SetDoctorName(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *ImagingResultCreate) SetSourceURL(v string) *ImagingResultCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ImagingResultCreate) SetCreatedAt(v time.Time) *ImagingResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ImagingResultCreate) SetNillableCreatedAt(v *time.Time) *ImagingResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImagingResultCreate) SetID(v uuid.UUID) *ImagingResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImagingResultCreate) SetNillableID(v *uuid.UUID) *ImagingResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ImagingResultMutation object of the builder.
func (_c *ImagingResultCreate) Mutation() *ImagingResultMutation {
	return _c.mutation
}

// Save creates the ImagingResult in the database.
func (_c *ImagingResultCreate) Save(ctx context.Context) (*ImagingResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImagingResultCreate) SaveX(ctx context.Context) *ImagingResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImagingResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImagingResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImagingResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := imagingresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := imagingresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImagingResultCreate) check() error {
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "ImagingResult.patient_id"`)}
	}
	if _, ok := _c.mutation.TestDate(); !ok {
		return &ValidationError{Name: "test_date", err: errors.New(`ent: missing required field "ImagingResult.test_date"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ImagingResult.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := imagingresult.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ImagingResult.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "ImagingResult.source_url"`)}
	}
	if v, ok := _c.mutation.SourceURL(); ok {
		if err := imagingresult.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "ImagingResult.source_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImagingResult.created_at"`)}
	}
	return nil
}

func (_c *ImagingResultCreate) sqlSave(ctx context.Context) (*ImagingResult, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImagingResultCreate) createSpec() (*ImagingResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ImagingResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(imagingresult.Table, sqlgraph.NewFieldSpec(imagingresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(imagingresult.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.TestDate(); ok {
		_spec.SetField(imagingresult.FieldTestDate, field.TypeTime, value)
		_node.TestDate = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(imagingresult.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Observations(); ok {
		_spec.SetField(imagingresult.FieldObservations, field.TypeString, value)
		_node.Observations = value
	}
	if value, ok := _c.mutation.DoctorName(); ok {
		_spec.SetField(imagingresult.FieldDoctorName, field.TypeString, value)
		_node.DoctorName = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(imagingresult.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(imagingresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ImagingResultCreateBulk is the builder for creating many ImagingResult entities in bulk.
type ImagingResultCreateBulk struct {
	config
	err      error
	builders []*ImagingResultCreate
}

// Save creates the ImagingResult entities in the database.
func (_c *ImagingResultCreateBulk) Save(ctx context.Context) ([]*ImagingResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImagingResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImagingResultMutation)
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
func (_c *ImagingResultCreateBulk) SaveX(ctx context.Context) []*ImagingResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImagingResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImagingResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
