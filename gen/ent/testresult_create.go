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
	"github.com/healthtrack-labs/healthtrack/gen/ent/testresult"
)

// TestResultCreate is the builder for creating a TestResult entity.
type TestResultCreate struct {
	config
	mutation *TestResultMutation
	hooks    []Hook
}

// SetTestID sets the "test_id" field.
func (_c *TestResultCreate) SetTestID(v uuid.UUID) *TestResultCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *TestResultCreate) SetPatientID(v uuid.UUID) *TestResultCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetTestDate sets the "test_date" field.
func (_c *TestResultCreate) SetTestDate(v time.Time) *TestResultCreate {
	_c.mutation.SetTestDate(v)
	return _c
}

// SetComponentName sets the "component_name" field.
func (_c *TestResultCreate) SetComponentName(v string) *TestResultCreate {
	_c.mutation.SetComponentName(v)
	return _c
}

// SetValueNum sets the "value_num" field.
func (_c *TestResultCreate) SetValueNum(v float64) *TestResultCreate {
	_c.mutation.SetValueNum(v)
	return _c
}

// SetNillableValueNum sets the "value_num" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableValueNum(v *float64) *TestResultCreate {
	if v != nil {
		_c.SetValueNum(*v)
	}
	return _c
}

// SetValueText sets the "value_text" field.
func (_c *TestResultCreate) SetValueText(v string) *TestResultCreate {
	_c.mutation.SetValueText(v)
	return _c
}

// SetNillableValueText sets the "value_text" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableValueText(v *string) *TestResultCreate {
	if v != nil {
		_c.SetValueText(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *TestResultCreate) SetUnit(v string) *TestResultCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableUnit(v *string) *TestResultCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetNormalMin sets the "normal_min" field.
func (_c *TestResultCreate) SetNormalMin(v float64) *TestResultCreate {
	_c.mutation.SetNormalMin(v)
	return _c
}

// SetNillableNormalMin sets the "normal_min" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableNormalMin(v *float64) *TestResultCreate {
	if v != nil {
		_c.SetNormalMin(*v)
	}
	return _c
}

// SetNormalMax sets the "normal_max" field.
func (_c *TestResultCreate) SetNormalMax(v float64) *TestResultCreate {
	_c.mutation.SetNormalMax(v)
	return _c
}

// SetNillableNormalMax sets the "normal_max" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableNormalMax(v *float64) *TestResultCreate {
	if v != nil {
		_c.SetNormalMax(*v)
	}
	return _c
}

// SetNormalText sets the "normal_text" field.
func (_c *TestResultCreate) SetNormalText(v string) *TestResultCreate {
	_c.mutation.SetNormalText(v)
	return _c
}

// SetNillableNormalText sets the "normal_text" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableNormalText(v *string) *TestResultCreate {
	if v != nil {
		_c.SetNormalText(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *TestResultCreate) SetSourceURL(v string) *TestResultCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestResultCreate) SetCreatedAt(v time.Time) *TestResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableCreatedAt(v *time.Time) *TestResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestResultCreate) SetID(v uuid.UUID) *TestResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableID(v *uuid.UUID) *TestResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TestResultMutation object of the builder.
func (_c *TestResultCreate) Mutation() *TestResultMutation {
	return _c.mutation
}

// Save creates the TestResult in the database.
func (_c *TestResultCreate) Save(ctx context.Context) (*TestResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestResultCreate) SaveX(ctx context.Context) *TestResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := testresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestResultCreate) check() error {
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`ent: missing required field "TestResult.test_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "TestResult.patient_id"`)}
	}
	if _, ok := _c.mutation.TestDate(); !ok {
		return &ValidationError{Name: "test_date", err: errors.New(`ent: missing required field "TestResult.test_date"`)}
	}
	if _, ok := _c.mutation.ComponentName(); !ok {
		return &ValidationError{Name: "component_name", err: errors.New(`ent: missing required field "TestResult.component_name"`)}
	}
	if v, ok := _c.mutation.ComponentName(); ok {
		if err := testresult.ComponentNameValidator(v); err != nil {
			return &ValidationError{Name: "component_name", err: fmt.Errorf(`ent: validator failed for field "TestResult.component_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "TestResult.source_url"`)}
	}
	if v, ok := _c.mutation.SourceURL(); ok {
		if err := testresult.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "TestResult.source_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestResult.created_at"`)}
	}
	return nil
}

func (_c *TestResultCreate) sqlSave(ctx context.Context) (*TestResult, error) {
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

func (_c *TestResultCreate) createSpec() (*TestResult, *sqlgraph.CreateSpec) {
	var (
		_node = &TestResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testresult.Table, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TestID(); ok {
		_spec.SetField(testresult.FieldTestID, field.TypeUUID, value)
		_node.TestID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(testresult.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.TestDate(); ok {
		_spec.SetField(testresult.FieldTestDate, field.TypeTime, value)
		_node.TestDate = value
	}
	if value, ok := _c.mutation.ComponentName(); ok {
		_spec.SetField(testresult.FieldComponentName, field.TypeString, value)
		_node.ComponentName = value
	}
	if value, ok := _c.mutation.ValueNum(); ok {
		_spec.SetField(testresult.FieldValueNum, field.TypeFloat64, value)
		_node.ValueNum = &value
	}
	if value, ok := _c.mutation.ValueText(); ok {
		_spec.SetField(testresult.FieldValueText, field.TypeString, value)
		_node.ValueText = &value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(testresult.FieldUnit, field.TypeString, value)
		_node.Unit = &value
	}
	if value, ok := _c.mutation.NormalMin(); ok {
		_spec.SetField(testresult.FieldNormalMin, field.TypeFloat64, value)
		_node.NormalMin = &value
	}
	if value, ok := _c.mutation.NormalMax(); ok {
		_spec.SetField(testresult.FieldNormalMax, field.TypeFloat64, value)
		_node.NormalMax = &value
	}
	if value, ok := _c.mutation.NormalText(); ok {
		_spec.SetField(testresult.FieldNormalText, field.TypeString, value)
		_node.NormalText = &value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(testresult.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TestResultCreateBulk is the builder for creating many TestResult entities in bulk.
type TestResultCreateBulk struct {
	config
	err      error
	builders []*TestResultCreate
}

// Save creates the TestResult entities in the database.
func (_c *TestResultCreateBulk) Save(ctx context.Context) ([]*TestResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestResultMutation)
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
func (_c *TestResultCreateBulk) SaveX(ctx context.Context) []*TestResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
