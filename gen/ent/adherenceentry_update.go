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
	"github.com/healthtrack-labs/healthtrack/gen/ent/adherenceentry"
	"github.com/healthtrack-labs/healthtrack/gen/ent/predicate"
	"github.com/healthtrack-labs/healthtrack/gen/ent/prescription"
)

// AdherenceEntryUpdate is the builder for updating AdherenceEntry entities.
type AdherenceEntryUpdate struct {
	config
	hooks    []Hook
	mutation *AdherenceEntryMutation
}

// Where appends a list predicates to the AdherenceEntryUpdate builder.
func (_u *AdherenceEntryUpdate) Where(ps ...predicate.AdherenceEntry) *AdherenceEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPrescriptionID sets the "prescription_id" field.
func (_u *AdherenceEntryUpdate) SetPrescriptionID(v uuid.UUID) *AdherenceEntryUpdate {
	_u.mutation.SetPrescriptionID(v)
	return _u
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_u *AdherenceEntryUpdate) SetNillablePrescriptionID(v *uuid.UUID) *AdherenceEntryUpdate {
	if v != nil {
		_u.SetPrescriptionID(*v)
	}
	return _u
}

// SetMedicineName sets the "medicine_name" field.
func (_u *AdherenceEntryUpdate) SetMedicineName(v string) *AdherenceEntryUpdate {
	_u.mutation.SetMedicineName(v)
	return _u
}

// SetNillableMedicineName sets the "medicine_name" field if the given value is not nil.
func (_u *AdherenceEntryUpdate) SetNillableMedicineName(v *string) *AdherenceEntryUpdate {
	if v != nil {
		_u.SetMedicineName(*v)
	}
	return _u
}

// SetEntryDate sets the "entry_date" field.
func (_u *AdherenceEntryUpdate) SetEntryDate(v time.Time) *AdherenceEntryUpdate {
	_u.mutation.SetEntryDate(v)
	return _u
}

// SetNillableEntryDate sets the "entry_date" field if the given value is not nil.
func (_u *AdherenceEntryUpdate) SetNillableEntryDate(v *time.Time) *AdherenceEntryUpdate {
	if v != nil {
		_u.SetEntryDate(*v)
	}
	return _u
}

// SetMorning sets the "morning" field.
func (_u *AdherenceEntryUpdate) SetMorning(v bool) *AdherenceEntryUpdate {
	_u.mutation.SetMorning(v)
	return _u
}

// SetNillableMorning sets the "morning" field if the given value is not nil.
func (_u *AdherenceEntryUpdate) SetNillableMorning(v *bool) *AdherenceEntryUpdate {
	if v != nil {
		_u.SetMorning(*v)
	}
	return _u
}

// ClearMorning clears the value of the "morning" field.
func (_u *AdherenceEntryUpdate) ClearMorning() *AdherenceEntryUpdate {
	_u.mutation.ClearMorning()
	return _u
}

// SetAfternoon sets the "afternoon" field.
func (_u *AdherenceEntryUpdate) SetAfternoon(v bool) *AdherenceEntryUpdate {
	_u.mutation.SetAfternoon(v)
	return _u
}

// SetNillableAfternoon sets the "afternoon" field if the given value is not nil.
func (_u *AdherenceEntryUpdate) SetNillableAfternoon(v *bool) *AdherenceEntryUpdate {
	if v != nil {
		_u.SetAfternoon(*v)
	}
	return _u
}

// ClearAfternoon clears the value of the "afternoon" field.
func (_u *AdherenceEntryUpdate) ClearAfternoon() *AdherenceEntryUpdate {
	_u.mutation.ClearAfternoon()
	return _u
}

// SetEvening sets the "evening" field.
func (_u *AdherenceEntryUpdate) SetEvening(v bool) *AdherenceEntryUpdate {
	_u.mutation.SetEvening(v)
	return _u
}

// SetNillableEvening sets the "evening" field if the given value is not nil.
func (_u *AdherenceEntryUpdate) SetNillableEvening(v *bool) *AdherenceEntryUpdate {
	if v != nil {
		_u.SetEvening(*v)
	}
	return _u
}

// ClearEvening clears the value of the "evening" field.
func (_u *AdherenceEntryUpdate) ClearEvening() *AdherenceEntryUpdate {
	_u.mutation.ClearEvening()
	return _u
}

// SetNight sets the "night" field.
func (_u *AdherenceEntryUpdate) SetNight(v bool) *AdherenceEntryUpdate {
	_u.mutation.SetNight(v)
	return _u
}

// SetNillableNight sets the "night" field if the given value is not nil.
func (_u *AdherenceEntryUpdate) SetNillableNight(v *bool) *AdherenceEntryUpdate {
	if v != nil {
		_u.SetNight(*v)
	}
	return _u
}

// ClearNight clears the value of the "night" field.
func (_u *AdherenceEntryUpdate) ClearNight() *AdherenceEntryUpdate {
	_u.mutation.ClearNight()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AdherenceEntryUpdate) SetCreatedAt(v time.Time) *AdherenceEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AdherenceEntryUpdate) SetNillableCreatedAt(v *time.Time) *AdherenceEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdherenceEntryUpdate) SetUpdatedAt(v time.Time) *AdherenceEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPrescription sets the "prescription" edge to the Prescription entity.
func (_u *AdherenceEntryUpdate) SetPrescription(v *Prescription) *AdherenceEntryUpdate {
	return _u.SetPrescriptionID(v.ID)
}

// Mutation returns the AdherenceEntryMutation object of the builder.
func (_u *AdherenceEntryUpdate) Mutation() *AdherenceEntryMutation {
	return _u.mutation
}

// ClearPrescription clears the "prescription" edge to the Prescription entity.
func (_u *AdherenceEntryUpdate) ClearPrescription() *AdherenceEntryUpdate {
	_u.mutation.ClearPrescription()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdherenceEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdherenceEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdherenceEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdherenceEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdherenceEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := adherenceentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdherenceEntryUpdate) check() error {
	if v, ok := _u.mutation.MedicineName(); ok {
		if err := adherenceentry.MedicineNameValidator(v); err != nil {
			return &ValidationError{Name: "medicine_name", err: fmt.Errorf(`ent: validator failed for field "AdherenceEntry.medicine_name": %w`, err)}
		}
	}
	if _u.mutation.PrescriptionCleared() && len(_u.mutation.PrescriptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AdherenceEntry.prescription"`)
	}
	return nil
}

func (_u *AdherenceEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adherenceentry.Table, adherenceentry.Columns, sqlgraph.NewFieldSpec(adherenceentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MedicineName(); ok {
		_spec.SetField(adherenceentry.FieldMedicineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntryDate(); ok {
		_spec.SetField(adherenceentry.FieldEntryDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Morning(); ok {
		_spec.SetField(adherenceentry.FieldMorning, field.TypeBool, value)
	}
	if _u.mutation.MorningCleared() {
		_spec.ClearField(adherenceentry.FieldMorning, field.TypeBool)
	}
	if value, ok := _u.mutation.Afternoon(); ok {
		_spec.SetField(adherenceentry.FieldAfternoon, field.TypeBool, value)
	}
	if _u.mutation.AfternoonCleared() {
		_spec.ClearField(adherenceentry.FieldAfternoon, field.TypeBool)
	}
	if value, ok := _u.mutation.Evening(); ok {
		_spec.SetField(adherenceentry.FieldEvening, field.TypeBool, value)
	}
	if _u.mutation.EveningCleared() {
		_spec.ClearField(adherenceentry.FieldEvening, field.TypeBool)
	}
	if value, ok := _u.mutation.Night(); ok {
		_spec.SetField(adherenceentry.FieldNight, field.TypeBool, value)
	}
	if _u.mutation.NightCleared() {
		_spec.ClearField(adherenceentry.FieldNight, field.TypeBool)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(adherenceentry.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(adherenceentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PrescriptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   adherenceentry.PrescriptionTable,
			Columns: []string{adherenceentry.PrescriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrescriptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   adherenceentry.PrescriptionTable,
			Columns: []string{adherenceentry.PrescriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adherenceentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdherenceEntryUpdateOne is the builder for updating a single AdherenceEntry entity.
type AdherenceEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdherenceEntryMutation
}

// SetPrescriptionID sets the "prescription_id" field.
func (_u *AdherenceEntryUpdateOne) SetPrescriptionID(v uuid.UUID) *AdherenceEntryUpdateOne {
	_u.mutation.SetPrescriptionID(v)
	return _u
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_u *AdherenceEntryUpdateOne) SetNillablePrescriptionID(v *uuid.UUID) *AdherenceEntryUpdateOne {
	if v != nil {
		_u.SetPrescriptionID(*v)
	}
	return _u
}

// SetMedicineName sets the "medicine_name" field.
func (_u *AdherenceEntryUpdateOne) SetMedicineName(v string) *AdherenceEntryUpdateOne {
	_u.mutation.SetMedicineName(v)
	return _u
}

// SetNillableMedicineName sets the "medicine_name" field if the given value is not nil.
func (_u *AdherenceEntryUpdateOne) SetNillableMedicineName(v *string) *AdherenceEntryUpdateOne {
	if v != nil {
		_u.SetMedicineName(*v)
	}
	return _u
}

// SetEntryDate sets the "entry_date" field.
func (_u *AdherenceEntryUpdateOne) SetEntryDate(v time.Time) *AdherenceEntryUpdateOne {
	_u.mutation.SetEntryDate(v)
	return _u
}

// SetNillableEntryDate sets the "entry_date" field if the given value is not nil.
func (_u *AdherenceEntryUpdateOne) SetNillableEntryDate(v *time.Time) *AdherenceEntryUpdateOne {
	if v != nil {
		_u.SetEntryDate(*v)
	}
	return _u
}

// SetMorning sets the "morning" field.
func (_u *AdherenceEntryUpdateOne) SetMorning(v bool) *AdherenceEntryUpdateOne {
	_u.mutation.SetMorning(v)
	return _u
}

// SetNillableMorning sets the "morning" field if the given value is not nil.
func (_u *AdherenceEntryUpdateOne) SetNillableMorning(v *bool) *AdherenceEntryUpdateOne {
	if v != nil {
		_u.SetMorning(*v)
	}
	return _u
}

// ClearMorning clears the value of the "morning" field.
func (_u *AdherenceEntryUpdateOne) ClearMorning() *AdherenceEntryUpdateOne {
	_u.mutation.ClearMorning()
	return _u
}

// SetAfternoon sets the "afternoon" field.
func (_u *AdherenceEntryUpdateOne) SetAfternoon(v bool) *AdherenceEntryUpdateOne {
	_u.mutation.SetAfternoon(v)
	return _u
}

// SetNillableAfternoon sets the "afternoon" field if the given value is not nil.
func (_u *AdherenceEntryUpdateOne) SetNillableAfternoon(v *bool) *AdherenceEntryUpdateOne {
	if v != nil {
		_u.SetAfternoon(*v)
	}
	return _u
}

// ClearAfternoon clears the value of the "afternoon" field.
func (_u *AdherenceEntryUpdateOne) ClearAfternoon() *AdherenceEntryUpdateOne {
	_u.mutation.ClearAfternoon()
	return _u
}

// SetEvening sets the "evening" field.
func (_u *AdherenceEntryUpdateOne) SetEvening(v bool) *AdherenceEntryUpdateOne {
	_u.mutation.SetEvening(v)
	return _u
}

// SetNillableEvening sets the "evening" field if the given value is not nil.
func (_u *AdherenceEntryUpdateOne) SetNillableEvening(v *bool) *AdherenceEntryUpdateOne {
	if v != nil {
		_u.SetEvening(*v)
	}
	return _u
}

// ClearEvening clears the value of the "evening" field.
func (_u *AdherenceEntryUpdateOne) ClearEvening() *AdherenceEntryUpdateOne {
	_u.mutation.ClearEvening()
	return _u
}

// SetNight sets the "night" field.
func (_u *AdherenceEntryUpdateOne) SetNight(v bool) *AdherenceEntryUpdateOne {
	_u.mutation.SetNight(v)
	return _u
}

// SetNillableNight sets the "night" field if the given value is not nil.
func (_u *AdherenceEntryUpdateOne) SetNillableNight(v *bool) *AdherenceEntryUpdateOne {
	if v != nil {
		_u.SetNight(*v)
	}
	return _u
}

// ClearNight clears the value of the "night" field.
func (_u *AdherenceEntryUpdateOne) ClearNight() *AdherenceEntryUpdateOne {
	_u.mutation.ClearNight()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AdherenceEntryUpdateOne) SetCreatedAt(v time.Time) *AdherenceEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AdherenceEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *AdherenceEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdherenceEntryUpdateOne) SetUpdatedAt(v time.Time) *AdherenceEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPrescription sets the "prescription" edge to the Prescription entity.
func (_u *AdherenceEntryUpdateOne) SetPrescription(v *Prescription) *AdherenceEntryUpdateOne {
	return _u.SetPrescriptionID(v.ID)
}

// Mutation returns the AdherenceEntryMutation object of the builder.
func (_u *AdherenceEntryUpdateOne) Mutation() *AdherenceEntryMutation {
	return _u.mutation
}

// ClearPrescription clears the "prescription" edge to the Prescription entity.
func (_u *AdherenceEntryUpdateOne) ClearPrescription() *AdherenceEntryUpdateOne {
	_u.mutation.ClearPrescription()
	return _u
}

// Where appends a list predicates to the AdherenceEntryUpdate builder.
func (_u *AdherenceEntryUpdateOne) Where(ps ...predicate.AdherenceEntry) *AdherenceEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdherenceEntryUpdateOne) Select(field string, fields ...string) *AdherenceEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdherenceEntry entity.
func (_u *AdherenceEntryUpdateOne) Save(ctx context.Context) (*AdherenceEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdherenceEntryUpdateOne) SaveX(ctx context.Context) *AdherenceEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdherenceEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdherenceEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdherenceEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := adherenceentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdherenceEntryUpdateOne) check() error {
	if v, ok := _u.mutation.MedicineName(); ok {
		if err := adherenceentry.MedicineNameValidator(v); err != nil {
			return &ValidationError{Name: "medicine_name", err: fmt.Errorf(`ent: validator failed for field "AdherenceEntry.medicine_name": %w`, err)}
		}
	}
	if _u.mutation.PrescriptionCleared() && len(_u.mutation.PrescriptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AdherenceEntry.prescription"`)
	}
	return nil
}

func (_u *AdherenceEntryUpdateOne) sqlSave(ctx context.Context) (_node *AdherenceEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adherenceentry.Table, adherenceentry.Columns, sqlgraph.NewFieldSpec(adherenceentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdherenceEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adherenceentry.FieldID)
		for _, f := range fields {
			if !adherenceentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adherenceentry.FieldID {
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
	if value, ok := _u.mutation.MedicineName(); ok {
		_spec.SetField(adherenceentry.FieldMedicineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntryDate(); ok {
		_spec.SetField(adherenceentry.FieldEntryDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Morning(); ok {
		_spec.SetField(adherenceentry.FieldMorning, field.TypeBool, value)
	}
	if _u.mutation.MorningCleared() {
		_spec.ClearField(adherenceentry.FieldMorning, field.TypeBool)
	}
	if value, ok := _u.mutation.Afternoon(); ok {
		_spec.SetField(adherenceentry.FieldAfternoon, field.TypeBool, value)
	}
	if _u.mutation.AfternoonCleared() {
		_spec.ClearField(adherenceentry.FieldAfternoon, field.TypeBool)
	}
	if value, ok := _u.mutation.Evening(); ok {
		_spec.SetField(adherenceentry.FieldEvening, field.TypeBool, value)
	}
	if _u.mutation.EveningCleared() {
		_spec.ClearField(adherenceentry.FieldEvening, field.TypeBool)
	}
	if value, ok := _u.mutation.Night(); ok {
		_spec.SetField(adherenceentry.FieldNight, field.TypeBool, value)
	}
	if _u.mutation.NightCleared() {
		_spec.ClearField(adherenceentry.FieldNight, field.TypeBool)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(adherenceentry.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(adherenceentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PrescriptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   adherenceentry.PrescriptionTable,
			Columns: []string{adherenceentry.PrescriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrescriptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   adherenceentry.PrescriptionTable,
			Columns: []string{adherenceentry.PrescriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AdherenceEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adherenceentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
