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
	"github.com/healthtrack-labs/healthtrack/gen/ent/imagingresult"
	"github.com/healthtrack-labs/healthtrack/gen/ent/predicate"
)

// ImagingResultUpdate is the builder for updating ImagingResult entities.
type ImagingResultUpdate struct {
	config
	hooks    []Hook
	mutation *ImagingResultMutation
}

// Where appends a list predicates to the ImagingResultUpdate builder.
func (_u *ImagingResultUpdate) Where(ps ...predicate.ImagingResult) *ImagingResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *ImagingResultUpdate) SetPatientID(v uuid.UUID) *ImagingResultUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ImagingResultUpdate) SetNillablePatientID(v *uuid.UUID) *ImagingResultUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTestDate sets the "test_date" field.
func (_u *ImagingResultUpdate) SetTestDate(v time.Time) *ImagingResultUpdate {
	_u.mutation.SetTestDate(v)
	return _u
}

// SetNillableTestDate sets the "test_date" field if the given value is not nil.
func (_u *ImagingResultUpdate) SetNillableTestDate(v *time.Time) *ImagingResultUpdate {
	if v != nil {
		_u.SetTestDate(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ImagingResultUpdate) SetTitle(v string) *ImagingResultUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ImagingResultUpdate) SetNillableTitle(v *string) *ImagingResultUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetObservations sets the "observations" field.
func (_u *ImagingResultUpdate) SetObservations(v string) *ImagingResultUpdate {
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *ImagingResultUpdate) SetNillableObservations(v *string) *ImagingResultUpdate {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// ClearObservations clears the value of the "observations" field.
func (_u *ImagingResultUpdate) ClearObservations() *ImagingResultUpdate {
	_u.mutation.ClearObservations()
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *ImagingResultUpdate) SetDoctorName(v string) *ImagingResultUpdate {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *ImagingResultUpdate) SetNillableDoctorName(v *string) *ImagingResultUpdate {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// ClearDoctorName clears the value of the "doctor_name" field.
func (_u *ImagingResultUpdate) ClearDoctorName() *ImagingResultUpdate {
	_u.mutation.ClearDoctorName()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *ImagingResultUpdate) SetSourceURL(v string) *ImagingResultUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *ImagingResultUpdate) SetNillableSourceURL(v *string) *ImagingResultUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImagingResultUpdate) SetCreatedAt(v time.Time) *ImagingResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImagingResultUpdate) SetNillableCreatedAt(v *time.Time) *ImagingResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ImagingResultMutation object of the builder.
func (_u *ImagingResultUpdate) Mutation() *ImagingResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImagingResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImagingResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImagingResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImagingResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImagingResultUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := imagingresult.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ImagingResult.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := imagingresult.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "ImagingResult.source_url": %w`, err)}
		}
	}
	return nil
}

func (_u *ImagingResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(imagingresult.Table, imagingresult.Columns, sqlgraph.NewFieldSpec(imagingresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(imagingresult.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TestDate(); ok {
		_spec.SetField(imagingresult.FieldTestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(imagingresult.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(imagingresult.FieldObservations, field.TypeString, value)
	}
	if _u.mutation.ObservationsCleared() {
		_spec.ClearField(imagingresult.FieldObservations, field.TypeString)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(imagingresult.FieldDoctorName, field.TypeString, value)
	}
	if _u.mutation.DoctorNameCleared() {
		_spec.ClearField(imagingresult.FieldDoctorName, field.TypeString)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(imagingresult.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(imagingresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{imagingresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImagingResultUpdateOne is the builder for updating a single ImagingResult entity.
type ImagingResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImagingResultMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *ImagingResultUpdateOne) SetPatientID(v uuid.UUID) *ImagingResultUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ImagingResultUpdateOne) SetNillablePatientID(v *uuid.UUID) *ImagingResultUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTestDate sets the "test_date" field.
func (_u *ImagingResultUpdateOne) SetTestDate(v time.Time) *ImagingResultUpdateOne {
	_u.mutation.SetTestDate(v)
	return _u
}

// SetNillableTestDate sets the "test_date" field if the given value is not nil.
func (_u *ImagingResultUpdateOne) SetNillableTestDate(v *time.Time) *ImagingResultUpdateOne {
	if v != nil {
		_u.SetTestDate(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ImagingResultUpdateOne) SetTitle(v string) *ImagingResultUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ImagingResultUpdateOne) SetNillableTitle(v *string) *ImagingResultUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetObservations sets the "observations" field.
func (_u *ImagingResultUpdateOne) SetObservations(v string) *ImagingResultUpdateOne {
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *ImagingResultUpdateOne) SetNillableObservations(v *string) *ImagingResultUpdateOne {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// ClearObservations clears the value of the "observations" field.
func (_u *ImagingResultUpdateOne) ClearObservations() *ImagingResultUpdateOne {
	_u.mutation.ClearObservations()
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *ImagingResultUpdateOne) SetDoctorName(v string) *ImagingResultUpdateOne {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *ImagingResultUpdateOne) SetNillableDoctorName(v *string) *ImagingResultUpdateOne {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// ClearDoctorName clears the value of the "doctor_name" field.
func (_u *ImagingResultUpdateOne) ClearDoctorName() *ImagingResultUpdateOne {
	_u.mutation.ClearDoctorName()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *ImagingResultUpdateOne) SetSourceURL(v string) *ImagingResultUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *ImagingResultUpdateOne) SetNillableSourceURL(v *string) *ImagingResultUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImagingResultUpdateOne) SetCreatedAt(v time.Time) *ImagingResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImagingResultUpdateOne) SetNillableCreatedAt(v *time.Time) *ImagingResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ImagingResultMutation object of the builder.
func (_u *ImagingResultUpdateOne) Mutation() *ImagingResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImagingResultUpdate builder.
func (_u *ImagingResultUpdateOne) Where(ps ...predicate.ImagingResult) *ImagingResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImagingResultUpdateOne) Select(field string, fields ...string) *ImagingResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImagingResult entity.
func (_u *ImagingResultUpdateOne) Save(ctx context.Context) (*ImagingResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImagingResultUpdateOne) SaveX(ctx context.Context) *ImagingResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImagingResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImagingResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImagingResultUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := imagingresult.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ImagingResult.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := imagingresult.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "ImagingResult.source_url": %w`, err)}
		}
	}
	return nil
}

func (_u *ImagingResultUpdateOne) sqlSave(ctx context.Context) (_node *ImagingResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(imagingresult.Table, imagingresult.Columns, sqlgraph.NewFieldSpec(imagingresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImagingResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, imagingresult.FieldID)
		for _, f := range fields {
			if !imagingresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != imagingresult.FieldID {
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
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(imagingresult.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TestDate(); ok {
		_spec.SetField(imagingresult.FieldTestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(imagingresult.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(imagingresult.FieldObservations, field.TypeString, value)
	}
	if _u.mutation.ObservationsCleared() {
		_spec.ClearField(imagingresult.FieldObservations, field.TypeString)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(imagingresult.FieldDoctorName, field.TypeString, value)
	}
	if _u.mutation.DoctorNameCleared() {
		_spec.ClearField(imagingresult.FieldDoctorName, field.TypeString)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(imagingresult.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(imagingresult.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ImagingResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{imagingresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
