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
	"github.com/google/uuid"
	"github.com/healthtrack-labs/healthtrack/gen/ent/predicate"
	"github.com/healthtrack-labs/healthtrack/gen/ent/testresult"
)

// TestResultUpdate is the builder for updating TestResult entities.
type TestResultUpdate struct {
	config
	hooks    []Hook
	mutation *TestResultMutation
}

// Where appends a list predicates to the TestResultUpdate builder.
func (_u *TestResultUpdate) Where(ps ...predicate.TestResult) *TestResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *TestResultUpdate) SetTestID(v uuid.UUID) *TestResultUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableTestID(v *uuid.UUID) *TestResultUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *TestResultUpdate) SetPatientID(v uuid.UUID) *TestResultUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillablePatientID(v *uuid.UUID) *TestResultUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTestDate sets the "test_date" field.
func (_u *TestResultUpdate) SetTestDate(v time.Time) *TestResultUpdate {
	_u.mutation.SetTestDate(v)
	return _u
}

// SetNillableTestDate sets the "test_date" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableTestDate(v *time.Time) *TestResultUpdate {
	if v != nil {
		_u.SetTestDate(*v)
	}
	return _u
}

// SetComponentName sets the "component_name" field.
func (_u *TestResultUpdate) SetComponentName(v string) *TestResultUpdate {
	_u.mutation.SetComponentName(v)
	return _u
}

// SetNillableComponentName sets the "component_name" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableComponentName(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetComponentName(*v)
	}
	return _u
}

// SetValueNum sets the "value_num" field.
func (_u *TestResultUpdate) SetValueNum(v float64) *TestResultUpdate {
	_u.mutation.ResetValueNum()
	_u.mutation.SetValueNum(v)
	return _u
}

// SetNillableValueNum sets the "value_num" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableValueNum(v *float64) *TestResultUpdate {
	if v != nil {
		_u.SetValueNum(*v)
	}
	return _u
}

// AddValueNum adds value to the "value_num" field.
func (_u *TestResultUpdate) AddValueNum(v float64) *TestResultUpdate {
	_u.mutation.AddValueNum(v)
	return _u
}

// ClearValueNum clears the value of the "value_num" field.
func (_u *TestResultUpdate) ClearValueNum() *TestResultUpdate {
	_u.mutation.ClearValueNum()
	return _u
}

// SetValueText sets the "value_text" field.
func (_u *TestResultUpdate) SetValueText(v string) *TestResultUpdate {
	_u.mutation.SetValueText(v)
	return _u
}

// SetNillableValueText sets the "value_text" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableValueText(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetValueText(*v)
	}
	return _u
}

// ClearValueText clears the value of the "value_text" field.
func (_u *TestResultUpdate) ClearValueText() *TestResultUpdate {
	_u.mutation.ClearValueText()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *TestResultUpdate) SetUnit(v string) *TestResultUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableUnit(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *TestResultUpdate) ClearUnit() *TestResultUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetNormalMin sets the "normal_min" field.
func (_u *TestResultUpdate) SetNormalMin(v float64) *TestResultUpdate {
	_u.mutation.ResetNormalMin()
	_u.mutation.SetNormalMin(v)
	return _u
}

// SetNillableNormalMin sets the "normal_min" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableNormalMin(v *float64) *TestResultUpdate {
	if v != nil {
		_u.SetNormalMin(*v)
	}
	return _u
}

// AddNormalMin adds value to the "normal_min" field.
func (_u *TestResultUpdate) AddNormalMin(v float64) *TestResultUpdate {
	_u.mutation.AddNormalMin(v)
	return _u
}

// ClearNormalMin clears the value of the "normal_min" field.
func (_u *TestResultUpdate) ClearNormalMin() *TestResultUpdate {
	_u.mutation.ClearNormalMin()
	return _u
}

// SetNormalMax sets the "normal_max" field.
func (_u *TestResultUpdate) SetNormalMax(v float64) *TestResultUpdate {
	_u.mutation.ResetNormalMax()
	_u.mutation.SetNormalMax(v)
	return _u
}

// SetNillableNormalMax sets the "normal_max" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableNormalMax(v *float64) *TestResultUpdate {
	if v != nil {
		_u.SetNormalMax(*v)
	}
	return _u
}

// AddNormalMax adds value to the "normal_max" field.
func (_u *TestResultUpdate) AddNormalMax(v float64) *TestResultUpdate {
	_u.mutation.AddNormalMax(v)
	return _u
}

// ClearNormalMax clears the value of the "normal_max" field.
func (_u *TestResultUpdate) ClearNormalMax() *TestResultUpdate {
	_u.mutation.ClearNormalMax()
	return _u
}

// SetNormalText sets the "normal_text" field.
func (_u *TestResultUpdate) SetNormalText(v string) *TestResultUpdate {
	_u.mutation.SetNormalText(v)
	return _u
}

// SetNillableNormalText sets the "normal_text" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableNormalText(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetNormalText(*v)
	}
	return _u
}

// ClearNormalText clears the value of the "normal_text" field.
func (_u *TestResultUpdate) ClearNormalText() *TestResultUpdate {
	_u.mutation.ClearNormalText()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *TestResultUpdate) SetSourceURL(v string) *TestResultUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableSourceURL(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TestResultUpdate) SetCreatedAt(v time.Time) *TestResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableCreatedAt(v *time.Time) *TestResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TestResultMutation object of the builder.
func (_u *TestResultUpdate) Mutation() *TestResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestResultUpdate) check() error {
	if v, ok := _u.mutation.ComponentName(); ok {
		if err := testresult.ComponentNameValidator(v); err != nil {
			return &ValidationError{Name: "component_name", err: fmt.Errorf(`ent: validator failed for field "TestResult.component_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := testresult.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "TestResult.source_url": %w`, err)}
		}
	}
	return nil
}

func (_u *TestResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testresult.Table, testresult.Columns, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(testresult.FieldTestID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(testresult.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TestDate(); ok {
		_spec.SetField(testresult.FieldTestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ComponentName(); ok {
		_spec.SetField(testresult.FieldComponentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValueNum(); ok {
		_spec.SetField(testresult.FieldValueNum, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValueNum(); ok {
		_spec.AddField(testresult.FieldValueNum, field.TypeFloat64, value)
	}
	if _u.mutation.ValueNumCleared() {
		_spec.ClearField(testresult.FieldValueNum, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ValueText(); ok {
		_spec.SetField(testresult.FieldValueText, field.TypeString, value)
	}
	if _u.mutation.ValueTextCleared() {
		_spec.ClearField(testresult.FieldValueText, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(testresult.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(testresult.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.NormalMin(); ok {
		_spec.SetField(testresult.FieldNormalMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNormalMin(); ok {
		_spec.AddField(testresult.FieldNormalMin, field.TypeFloat64, value)
	}
	if _u.mutation.NormalMinCleared() {
		_spec.ClearField(testresult.FieldNormalMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NormalMax(); ok {
		_spec.SetField(testresult.FieldNormalMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNormalMax(); ok {
		_spec.AddField(testresult.FieldNormalMax, field.TypeFloat64, value)
	}
	if _u.mutation.NormalMaxCleared() {
		_spec.ClearField(testresult.FieldNormalMax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NormalText(); ok {
		_spec.SetField(testresult.FieldNormalText, field.TypeString, value)
	}
	if _u.mutation.NormalTextCleared() {
		_spec.ClearField(testresult.FieldNormalText, field.TypeString)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(testresult.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(testresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestResultUpdateOne is the builder for updating a single TestResult entity.
type TestResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestResultMutation
}

// SetTestID sets the "test_id" field.
func (_u *TestResultUpdateOne) SetTestID(v uuid.UUID) *TestResultUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableTestID(v *uuid.UUID) *TestResultUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *TestResultUpdateOne) SetPatientID(v uuid.UUID) *TestResultUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillablePatientID(v *uuid.UUID) *TestResultUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTestDate sets the "test_date" field.
func (_u *TestResultUpdateOne) SetTestDate(v time.Time) *TestResultUpdateOne {
	_u.mutation.SetTestDate(v)
	return _u
}

// SetNillableTestDate sets the "test_date" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableTestDate(v *time.Time) *TestResultUpdateOne {
	if v != nil {
		_u.SetTestDate(*v)
	}
	return _u
}

// SetComponentName sets the "component_name" field.
func (_u *TestResultUpdateOne) SetComponentName(v string) *TestResultUpdateOne {
	_u.mutation.SetComponentName(v)
	return _u
}

// SetNillableComponentName sets the "component_name" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableComponentName(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetComponentName(*v)
	}
	return _u
}

// SetValueNum sets the "value_num" field.
func (_u *TestResultUpdateOne) SetValueNum(v float64) *TestResultUpdateOne {
	_u.mutation.ResetValueNum()
	_u.mutation.SetValueNum(v)
	return _u
}

// SetNillableValueNum sets the "value_num" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableValueNum(v *float64) *TestResultUpdateOne {
	if v != nil {
		_u.SetValueNum(*v)
	}
	return _u
}

// AddValueNum adds value to the "value_num" field.
func (_u *TestResultUpdateOne) AddValueNum(v float64) *TestResultUpdateOne {
	_u.mutation.AddValueNum(v)
	return _u
}

// ClearValueNum clears the value of the "value_num" field.
func (_u *TestResultUpdateOne) ClearValueNum() *TestResultUpdateOne {
	_u.mutation.ClearValueNum()
	return _u
}

// SetValueText sets the "value_text" field.
func (_u *TestResultUpdateOne) SetValueText(v string) *TestResultUpdateOne {
	_u.mutation.SetValueText(v)
	return _u
}

// SetNillableValueText sets the "value_text" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableValueText(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetValueText(*v)
	}
	return _u
}

// ClearValueText clears the value of the "value_text" field.
func (_u *TestResultUpdateOne) ClearValueText() *TestResultUpdateOne {
	_u.mutation.ClearValueText()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *TestResultUpdateOne) SetUnit(v string) *TestResultUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableUnit(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *TestResultUpdateOne) ClearUnit() *TestResultUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetNormalMin sets the "normal_min" field.
func (_u *TestResultUpdateOne) SetNormalMin(v float64) *TestResultUpdateOne {
	_u.mutation.ResetNormalMin()
	_u.mutation.SetNormalMin(v)
	return _u
}

// SetNillableNormalMin sets the "normal_min" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableNormalMin(v *float64) *TestResultUpdateOne {
	if v != nil {
		_u.SetNormalMin(*v)
	}
	return _u
}

// AddNormalMin adds value to the "normal_min" field.
func (_u *TestResultUpdateOne) AddNormalMin(v float64) *TestResultUpdateOne {
	_u.mutation.AddNormalMin(v)
	return _u
}

// ClearNormalMin clears the value of the "normal_min" field.
func (_u *TestResultUpdateOne) ClearNormalMin() *TestResultUpdateOne {
	_u.mutation.ClearNormalMin()
	return _u
}

// SetNormalMax sets the "normal_max" field.
func (_u *TestResultUpdateOne) SetNormalMax(v float64) *TestResultUpdateOne {
	_u.mutation.ResetNormalMax()
	_u.mutation.SetNormalMax(v)
	return _u
}

// SetNillableNormalMax sets the "normal_max" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableNormalMax(v *float64) *TestResultUpdateOne {
	if v != nil {
		_u.SetNormalMax(*v)
	}
	return _u
}

// AddNormalMax adds value to the "normal_max" field.
func (_u *TestResultUpdateOne) AddNormalMax(v float64) *TestResultUpdateOne {
	_u.mutation.AddNormalMax(v)
	return _u
}

// ClearNormalMax clears the value of the "normal_max" field.
func (_u *TestResultUpdateOne) ClearNormalMax() *TestResultUpdateOne {
	_u.mutation.ClearNormalMax()
	return _u
}

// SetNormalText sets the "normal_text" field.
func (_u *TestResultUpdateOne) SetNormalText(v string) *TestResultUpdateOne {
	_u.mutation.SetNormalText(v)
	return _u
}

// SetNillableNormalText sets the "normal_text" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableNormalText(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetNormalText(*v)
	}
	return _u
}

// ClearNormalText clears the value of the "normal_text" field.
func (_u *TestResultUpdateOne) ClearNormalText() *TestResultUpdateOne {
	_u.mutation.ClearNormalText()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *TestResultUpdateOne) SetSourceURL(v string) *TestResultUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableSourceURL(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TestResultUpdateOne) SetCreatedAt(v time.Time) *TestResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableCreatedAt(v *time.Time) *TestResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TestResultMutation object of the builder.
func (_u *TestResultUpdateOne) Mutation() *TestResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestResultUpdate builder.
func (_u *TestResultUpdateOne) Where(ps ...predicate.TestResult) *TestResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestResultUpdateOne) Select(field string, fields ...string) *TestResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestResult entity.
func (_u *TestResultUpdateOne) Save(ctx context.Context) (*TestResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestResultUpdateOne) SaveX(ctx context.Context) *TestResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestResultUpdateOne) check() error {
	if v, ok := _u.mutation.ComponentName(); ok {
		if err := testresult.ComponentNameValidator(v); err != nil {
			return &ValidationError{Name: "component_name", err: fmt.Errorf(`ent: validator failed for field "TestResult.component_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := testresult.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "TestResult.source_url": %w`, err)}
		}
	}
	return nil
}

func (_u *TestResultUpdateOne) sqlSave(ctx context.Context) (_node *TestResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testresult.Table, testresult.Columns, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testresult.FieldID)
		for _, f := range fields {
			if !testresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testresult.FieldID {
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
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(testresult.FieldTestID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(testresult.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TestDate(); ok {
		_spec.SetField(testresult.FieldTestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ComponentName(); ok {
		_spec.SetField(testresult.FieldComponentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValueNum(); ok {
		_spec.SetField(testresult.FieldValueNum, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValueNum(); ok {
		_spec.AddField(testresult.FieldValueNum, field.TypeFloat64, value)
	}
	if _u.mutation.ValueNumCleared() {
		_spec.ClearField(testresult.FieldValueNum, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ValueText(); ok {
		_spec.SetField(testresult.FieldValueText, field.TypeString, value)
	}
	if _u.mutation.ValueTextCleared() {
		_spec.ClearField(testresult.FieldValueText, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(testresult.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(testresult.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.NormalMin(); ok {
		_spec.SetField(testresult.FieldNormalMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNormalMin(); ok {
		_spec.AddField(testresult.FieldNormalMin, field.TypeFloat64, value)
	}
	if _u.mutation.NormalMinCleared() {
		_spec.ClearField(testresult.FieldNormalMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NormalMax(); ok {
		_spec.SetField(testresult.FieldNormalMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNormalMax(); ok {
		_spec.AddField(testresult.FieldNormalMax, field.TypeFloat64, value)
	}
	if _u.mutation.NormalMaxCleared() {
		_spec.ClearField(testresult.FieldNormalMax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NormalText(); ok {
		_spec.SetField(testresult.FieldNormalText, field.TypeString, value)
	}
	if _u.mutation.NormalTextCleared() {
		_spec.ClearField(testresult.FieldNormalText, field.TypeString)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(testresult.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(testresult.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &TestResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
