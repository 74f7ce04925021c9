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

// PrescriptionUpdate is the builder for updating Prescription entities.
type PrescriptionUpdate struct {
	config
	hooks    []Hook
	mutation *PrescriptionMutation
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdate) Where(ps ...predicate.Prescription) *PrescriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *PrescriptionUpdate) SetGroupID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableGroupID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdate) SetPatientID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetMedicineName sets the "medicine_name" field.
func (_u *PrescriptionUpdate) SetMedicineName(v string) *PrescriptionUpdate {
	_u.mutation.SetMedicineName(v)
	return _u
}

// SetNillableMedicineName sets the "medicine_name" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableMedicineName(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetMedicineName(*v)
	}
	return _u
}

// SetFoodInstruction sets the "food_instruction" field.
func (_u *PrescriptionUpdate) SetFoodInstruction(v string) *PrescriptionUpdate {
	_u.mutation.SetFoodInstruction(v)
	return _u
}

// SetNillableFoodInstruction sets the "food_instruction" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableFoodInstruction(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetFoodInstruction(*v)
	}
	return _u
}

// ClearFoodInstruction clears the value of the "food_instruction" field.
func (_u *PrescriptionUpdate) ClearFoodInstruction() *PrescriptionUpdate {
	_u.mutation.ClearFoodInstruction()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *PrescriptionUpdate) SetStartDate(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableStartDate(v *time.Time) *PrescriptionUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *PrescriptionUpdate) SetEndDate(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableEndDate(v *time.Time) *PrescriptionUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PrescriptionUpdate) SetNotes(v string) *PrescriptionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableNotes(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PrescriptionUpdate) ClearNotes() *PrescriptionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetMorning sets the "morning" field.
func (_u *PrescriptionUpdate) SetMorning(v bool) *PrescriptionUpdate {
	_u.mutation.SetMorning(v)
	return _u
}

// SetNillableMorning sets the "morning" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableMorning(v *bool) *PrescriptionUpdate {
	if v != nil {
		_u.SetMorning(*v)
	}
	return _u
}

// SetAfternoon sets the "afternoon" field.
func (_u *PrescriptionUpdate) SetAfternoon(v bool) *PrescriptionUpdate {
	_u.mutation.SetAfternoon(v)
	return _u
}

// SetNillableAfternoon sets the "afternoon" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableAfternoon(v *bool) *PrescriptionUpdate {
	if v != nil {
		_u.SetAfternoon(*v)
	}
	return _u
}

// SetEvening sets the "evening" field.
func (_u *PrescriptionUpdate) SetEvening(v bool) *PrescriptionUpdate {
	_u.mutation.SetEvening(v)
	return _u
}

// SetNillableEvening sets the "evening" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableEvening(v *bool) *PrescriptionUpdate {
	if v != nil {
		_u.SetEvening(*v)
	}
	return _u
}

// SetNight sets the "night" field.
func (_u *PrescriptionUpdate) SetNight(v bool) *PrescriptionUpdate {
	_u.mutation.SetNight(v)
	return _u
}

// SetNillableNight sets the "night" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableNight(v *bool) *PrescriptionUpdate {
	if v != nil {
		_u.SetNight(*v)
	}
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *PrescriptionUpdate) SetDoctorName(v string) *PrescriptionUpdate {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDoctorName(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// ClearDoctorName clears the value of the "doctor_name" field.
func (_u *PrescriptionUpdate) ClearDoctorName() *PrescriptionUpdate {
	_u.mutation.ClearDoctorName()
	return _u
}

// SetPrescribedOn sets the "prescribed_on" field.
func (_u *PrescriptionUpdate) SetPrescribedOn(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetPrescribedOn(v)
	return _u
}

// SetNillablePrescribedOn sets the "prescribed_on" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePrescribedOn(v *time.Time) *PrescriptionUpdate {
	if v != nil {
		_u.SetPrescribedOn(*v)
	}
	return _u
}

// ClearPrescribedOn clears the value of the "prescribed_on" field.
func (_u *PrescriptionUpdate) ClearPrescribedOn() *PrescriptionUpdate {
	_u.mutation.ClearPrescribedOn()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *PrescriptionUpdate) SetSourceURL(v string) *PrescriptionUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableSourceURL(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PrescriptionUpdate) SetCreatedAt(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableCreatedAt(v *time.Time) *PrescriptionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddAdherenceEntryIDs adds the "adherence_entries" edge to the AdherenceEntry entity by IDs.
func (_u *PrescriptionUpdate) AddAdherenceEntryIDs(ids ...uuid.UUID) *PrescriptionUpdate {
	_u.mutation.AddAdherenceEntryIDs(ids...)
	return _u
}

// AddAdherenceEntries adds the "adherence_entries" edges to the AdherenceEntry entity.
func (_u *PrescriptionUpdate) AddAdherenceEntries(v ...*AdherenceEntry) *PrescriptionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAdherenceEntryIDs(ids...)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdate) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// ClearAdherenceEntries clears all "adherence_entries" edges to the AdherenceEntry entity.
func (_u *PrescriptionUpdate) ClearAdherenceEntries() *PrescriptionUpdate {
	_u.mutation.ClearAdherenceEntries()
	return _u
}

// RemoveAdherenceEntryIDs removes the "adherence_entries" edge to AdherenceEntry entities by IDs.
func (_u *PrescriptionUpdate) RemoveAdherenceEntryIDs(ids ...uuid.UUID) *PrescriptionUpdate {
	_u.mutation.RemoveAdherenceEntryIDs(ids...)
	return _u
}

// RemoveAdherenceEntries removes "adherence_entries" edges to AdherenceEntry entities.
func (_u *PrescriptionUpdate) RemoveAdherenceEntries(v ...*AdherenceEntry) *PrescriptionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAdherenceEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrescriptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrescriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdate) check() error {
	if v, ok := _u.mutation.MedicineName(); ok {
		if err := prescription.MedicineNameValidator(v); err != nil {
			return &ValidationError{Name: "medicine_name", err: fmt.Errorf(`ent: validator failed for field "Prescription.medicine_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := prescription.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Prescription.source_url": %w`, err)}
		}
	}
	return nil
}

func (_u *PrescriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(prescription.FieldGroupID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(prescription.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MedicineName(); ok {
		_spec.SetField(prescription.FieldMedicineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FoodInstruction(); ok {
		_spec.SetField(prescription.FieldFoodInstruction, field.TypeString, value)
	}
	if _u.mutation.FoodInstructionCleared() {
		_spec.ClearField(prescription.FieldFoodInstruction, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(prescription.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(prescription.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(prescription.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(prescription.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Morning(); ok {
		_spec.SetField(prescription.FieldMorning, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Afternoon(); ok {
		_spec.SetField(prescription.FieldAfternoon, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Evening(); ok {
		_spec.SetField(prescription.FieldEvening, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Night(); ok {
		_spec.SetField(prescription.FieldNight, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(prescription.FieldDoctorName, field.TypeString, value)
	}
	if _u.mutation.DoctorNameCleared() {
		_spec.ClearField(prescription.FieldDoctorName, field.TypeString)
	}
	if value, ok := _u.mutation.PrescribedOn(); ok {
		_spec.SetField(prescription.FieldPrescribedOn, field.TypeTime, value)
	}
	if _u.mutation.PrescribedOnCleared() {
		_spec.ClearField(prescription.FieldPrescribedOn, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(prescription.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(prescription.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AdherenceEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prescription.AdherenceEntriesTable,
			Columns: []string{prescription.AdherenceEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(adherenceentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAdherenceEntriesIDs(); len(nodes) > 0 && !_u.mutation.AdherenceEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prescription.AdherenceEntriesTable,
			Columns: []string{prescription.AdherenceEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(adherenceentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdherenceEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prescription.AdherenceEntriesTable,
			Columns: []string{prescription.AdherenceEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(adherenceentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrescriptionUpdateOne is the builder for updating a single Prescription entity.
type PrescriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrescriptionMutation
}

// SetGroupID sets the "group_id" field.
func (_u *PrescriptionUpdateOne) SetGroupID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableGroupID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdateOne) SetPatientID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetMedicineName sets the "medicine_name" field.
func (_u *PrescriptionUpdateOne) SetMedicineName(v string) *PrescriptionUpdateOne {
	_u.mutation.SetMedicineName(v)
	return _u
}

// SetNillableMedicineName sets the "medicine_name" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableMedicineName(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetMedicineName(*v)
	}
	return _u
}

// SetFoodInstruction sets the "food_instruction" field.
func (_u *PrescriptionUpdateOne) SetFoodInstruction(v string) *PrescriptionUpdateOne {
	_u.mutation.SetFoodInstruction(v)
	return _u
}

// SetNillableFoodInstruction sets the "food_instruction" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableFoodInstruction(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetFoodInstruction(*v)
	}
	return _u
}

// ClearFoodInstruction clears the value of the "food_instruction" field.
func (_u *PrescriptionUpdateOne) ClearFoodInstruction() *PrescriptionUpdateOne {
	_u.mutation.ClearFoodInstruction()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *PrescriptionUpdateOne) SetStartDate(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableStartDate(v *time.Time) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *PrescriptionUpdateOne) SetEndDate(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableEndDate(v *time.Time) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PrescriptionUpdateOne) SetNotes(v string) *PrescriptionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableNotes(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PrescriptionUpdateOne) ClearNotes() *PrescriptionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetMorning sets the "morning" field.
func (_u *PrescriptionUpdateOne) SetMorning(v bool) *PrescriptionUpdateOne {
	_u.mutation.SetMorning(v)
	return _u
}

// SetNillableMorning sets the "morning" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableMorning(v *bool) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetMorning(*v)
	}
	return _u
}

// SetAfternoon sets the "afternoon" field.
func (_u *PrescriptionUpdateOne) SetAfternoon(v bool) *PrescriptionUpdateOne {
	_u.mutation.SetAfternoon(v)
	return _u
}

// SetNillableAfternoon sets the "afternoon" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableAfternoon(v *bool) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetAfternoon(*v)
	}
	return _u
}

// SetEvening sets the "evening" field.
func (_u *PrescriptionUpdateOne) SetEvening(v bool) *PrescriptionUpdateOne {
	_u.mutation.SetEvening(v)
	return _u
}

// SetNillableEvening sets the "evening" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableEvening(v *bool) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetEvening(*v)
	}
	return _u
}

// SetNight sets the "night" field.
func (_u *PrescriptionUpdateOne) SetNight(v bool) *PrescriptionUpdateOne {
	_u.mutation.SetNight(v)
	return _u
}

// SetNillableNight sets the "night" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableNight(v *bool) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetNight(*v)
	}
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *PrescriptionUpdateOne) SetDoctorName(v string) *PrescriptionUpdateOne {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDoctorName(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// ClearDoctorName clears the value of the "doctor_name" field.
func (_u *PrescriptionUpdateOne) ClearDoctorName() *PrescriptionUpdateOne {
	_u.mutation.ClearDoctorName()
	return _u
}

// SetPrescribedOn sets the "prescribed_on" field.
func (_u *PrescriptionUpdateOne) SetPrescribedOn(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetPrescribedOn(v)
	return _u
}

// SetNillablePrescribedOn sets the "prescribed_on" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePrescribedOn(v *time.Time) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPrescribedOn(*v)
	}
	return _u
}

// ClearPrescribedOn clears the value of the "prescribed_on" field.
func (_u *PrescriptionUpdateOne) ClearPrescribedOn() *PrescriptionUpdateOne {
	_u.mutation.ClearPrescribedOn()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *PrescriptionUpdateOne) SetSourceURL(v string) *PrescriptionUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableSourceURL(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PrescriptionUpdateOne) SetCreatedAt(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableCreatedAt(v *time.Time) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddAdherenceEntryIDs adds the "adherence_entries" edge to the AdherenceEntry entity by IDs.
func (_u *PrescriptionUpdateOne) AddAdherenceEntryIDs(ids ...uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.AddAdherenceEntryIDs(ids...)
	return _u
}

// AddAdherenceEntries adds the "adherence_entries" edges to the AdherenceEntry entity.
func (_u *PrescriptionUpdateOne) AddAdherenceEntries(v ...*AdherenceEntry) *PrescriptionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAdherenceEntryIDs(ids...)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdateOne) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// ClearAdherenceEntries clears all "adherence_entries" edges to the AdherenceEntry entity.
func (_u *PrescriptionUpdateOne) ClearAdherenceEntries() *PrescriptionUpdateOne {
	_u.mutation.ClearAdherenceEntries()
	return _u
}

// RemoveAdherenceEntryIDs removes the "adherence_entries" edge to AdherenceEntry entities by IDs.
func (_u *PrescriptionUpdateOne) RemoveAdherenceEntryIDs(ids ...uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.RemoveAdherenceEntryIDs(ids...)
	return _u
}

// RemoveAdherenceEntries removes "adherence_entries" edges to AdherenceEntry entities.
func (_u *PrescriptionUpdateOne) RemoveAdherenceEntries(v ...*AdherenceEntry) *PrescriptionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAdherenceEntryIDs(ids...)
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdateOne) Where(ps ...predicate.Prescription) *PrescriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrescriptionUpdateOne) Select(field string, fields ...string) *PrescriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prescription entity.
func (_u *PrescriptionUpdateOne) Save(ctx context.Context) (*Prescription, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) SaveX(ctx context.Context) *Prescription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrescriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdateOne) check() error {
	if v, ok := _u.mutation.MedicineName(); ok {
		if err := prescription.MedicineNameValidator(v); err != nil {
			return &ValidationError{Name: "medicine_name", err: fmt.Errorf(`ent: validator failed for field "Prescription.medicine_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := prescription.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Prescription.source_url": %w`, err)}
		}
	}
	return nil
}

func (_u *PrescriptionUpdateOne) sqlSave(ctx context.Context) (_node *Prescription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Prescription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prescription.FieldID)
		for _, f := range fields {
			if !prescription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prescription.FieldID {
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
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(prescription.FieldGroupID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(prescription.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MedicineName(); ok {
		_spec.SetField(prescription.FieldMedicineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FoodInstruction(); ok {
		_spec.SetField(prescription.FieldFoodInstruction, field.TypeString, value)
	}
	if _u.mutation.FoodInstructionCleared() {
		_spec.ClearField(prescription.FieldFoodInstruction, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(prescription.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(prescription.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(prescription.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(prescription.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Morning(); ok {
		_spec.SetField(prescription.FieldMorning, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Afternoon(); ok {
		_spec.SetField(prescription.FieldAfternoon, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Evening(); ok {
		_spec.SetField(prescription.FieldEvening, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Night(); ok {
		_spec.SetField(prescription.FieldNight, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(prescription.FieldDoctorName, field.TypeString, value)
	}
	if _u.mutation.DoctorNameCleared() {
		_spec.ClearField(prescription.FieldDoctorName, field.TypeString)
	}
	if value, ok := _u.mutation.PrescribedOn(); ok {
		_spec.SetField(prescription.FieldPrescribedOn, field.TypeTime, value)
	}
	if _u.mutation.PrescribedOnCleared() {
		_spec.ClearField(prescription.FieldPrescribedOn, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(prescription.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(prescription.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AdherenceEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prescription.AdherenceEntriesTable,
			Columns: []string{prescription.AdherenceEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(adherenceentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAdherenceEntriesIDs(); len(nodes) > 0 && !_u.mutation.AdherenceEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prescription.AdherenceEntriesTable,
			Columns: []string{prescription.AdherenceEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(adherenceentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdherenceEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prescription.AdherenceEntriesTable,
			Columns: []string{prescription.AdherenceEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(adherenceentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Prescription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
