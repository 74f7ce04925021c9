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
	"github.com/healthtrack-labs/healthtrack/gen/ent/adherenceentry"
	"github.com/healthtrack-labs/healthtrack/gen/ent/prescription"
)

// PrescriptionCreate is the builder for creating a Prescription entity.
type PrescriptionCreate struct {
	config
	mutation *PrescriptionMutation
	hooks    []Hook
}

// SetGroupID sets the "group_id" field.
func (_c *PrescriptionCreate) SetGroupID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PrescriptionCreate) SetPatientID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetMedicineName sets the "medicine_name" field.
func (_c *PrescriptionCreate) SetMedicineName(v string) *PrescriptionCreate {
	_c.mutation.SetMedicineName(v)
	return _c
}

// SetFoodInstruction sets the "food_instruction" field.
func (_c *PrescriptionCreate) SetFoodInstruction(v string) *PrescriptionCreate {
	_c.mutation.SetFoodInstruction(v)
	return _c
}

// SetNillableFoodInstruction sets the "food_instruction" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableFoodInstruction(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetFoodInstruction(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *PrescriptionCreate) SetStartDate(v time.Time) *PrescriptionCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *PrescriptionCreate) SetEndDate(v time.Time) *PrescriptionCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PrescriptionCreate) SetNotes(v string) *PrescriptionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableNotes(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetMorning sets the "morning" field.
func (_c *PrescriptionCreate) SetMorning(v bool) *PrescriptionCreate {
	_c.mutation.SetMorning(v)
	return _c
}

// SetNillableMorning sets the "morning" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableMorning(v *bool) *PrescriptionCreate {
	if v != nil {
		_c.SetMorning(*v)
	}
	return _c
}

// SetAfternoon sets the "afternoon" field.
func (_c *PrescriptionCreate) SetAfternoon(v bool) *PrescriptionCreate {
	_c.mutation.SetAfternoon(v)
	return _c
}

// SetNillableAfternoon sets the "afternoon" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableAfternoon(v *bool) *PrescriptionCreate {
	if v != nil {
		_c.SetAfternoon(*v)
	}
	return _c
}

// SetEvening sets the "evening" field.
func (_c *PrescriptionCreate) SetEvening(v bool) *PrescriptionCreate {
	_c.mutation.SetEvening(v)
	return _c
}

// SetNillableEvening sets the "evening" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableEvening(v *bool) *PrescriptionCreate {
	if v != nil {
		_c.SetEvening(*v)
	}
	return _c
}

// SetNight sets the "night" field.
func (_c *PrescriptionCreate) SetNight(v bool) *PrescriptionCreate {
	_c.mutation.SetNight(v)
	return _c
}

// SetNillableNight sets the "night" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableNight(v *bool) *PrescriptionCreate {
	if v != nil {
		_c.SetNight(*v)
	}
	return _c
}

// SetDoctorName sets the "doctor_name" field.
func (_c *PrescriptionCreate) SetDoctorName(v string) *PrescriptionCreate {
	_c.mutation.SetDoctorName(v)
	return _c
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableDoctorName(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetDoctorName(*v)
	}
	return _c
}

// SetPrescribedOn sets the "prescribed_on" field.
func (_c *PrescriptionCreate) SetPrescribedOn(v time.Time) *PrescriptionCreate {
	_c.mutation.SetPrescribedOn(v)
	return _c
}

// SetNillablePrescribedOn sets the "prescribed_on" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillablePrescribedOn(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetPrescribedOn(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *PrescriptionCreate) SetSourceURL(v string) *PrescriptionCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PrescriptionCreate) SetCreatedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableCreatedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PrescriptionCreate) SetID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableID(v *uuid.UUID) *PrescriptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddAdherenceEntryIDs adds the "adherence_entries" edge to the AdherenceEntry entity by IDs.
func (_c *PrescriptionCreate) AddAdherenceEntryIDs(ids ...uuid.UUID) *PrescriptionCreate {
	_c.mutation.AddAdherenceEntryIDs(ids...)
	return _c
}

// AddAdherenceEntries adds the "adherence_entries" edges to the AdherenceEntry entity.
func (_c *PrescriptionCreate) AddAdherenceEntries(v ...*AdherenceEntry) *PrescriptionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAdherenceEntryIDs(ids...)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_c *PrescriptionCreate) Mutation() *PrescriptionMutation {
	return _c.mutation
}

// Save creates the Prescription in the database.
func (_c *PrescriptionCreate) Save(ctx context.Context) (*Prescription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrescriptionCreate) SaveX(ctx context.Context) *Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PrescriptionCreate) defaults() {
	if _, ok := _c.mutation.Morning(); !ok {
		v := prescription.DefaultMorning
		_c.mutation.SetMorning(v)
	}
	if _, ok := _c.mutation.Afternoon(); !ok {
		v := prescription.DefaultAfternoon
		_c.mutation.SetAfternoon(v)
	}
	if _, ok := _c.mutation.Evening(); !ok {
		v := prescription.DefaultEvening
		_c.mutation.SetEvening(v)
	}
	if _, ok := _c.mutation.Night(); !ok {
		v := prescription.DefaultNight
		_c.mutation.SetNight(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prescription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prescription.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrescriptionCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "Prescription.group_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "Prescription.patient_id"`)}
	}
	if _, ok := _c.mutation.MedicineName(); !ok {
		return &ValidationError{Name: "medicine_name", err: errors.New(`ent: missing required field "Prescription.medicine_name"`)}
	}
	if v, ok := _c.mutation.MedicineName(); ok {
		if err := prescription.MedicineNameValidator(v); err != nil {
			return &ValidationError{Name: "medicine_name", err: fmt.Errorf(`ent: validator failed for field "Prescription.medicine_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "Prescription.start_date"`)}
	}
	if _, ok := _c.mutation.EndDate(); !ok {
		return &ValidationError{Name: "end_date", err: errors.New(`ent: missing required field "Prescription.end_date"`)}
	}
	if _, ok := _c.mutation.Morning(); !ok {
		return &ValidationError{Name: "morning", err: errors.New(`ent: missing required field "Prescription.morning"`)}
	}
	if _, ok := _c.mutation.Afternoon(); !ok {
		return &ValidationError{Name: "afternoon", err: errors.New(`ent: missing required field "Prescription.afternoon"`)}
	}
	if _, ok := _c.mutation.Evening(); !ok {
		return &ValidationError{Name: "evening", err: errors.New(`ent: missing required field "Prescription.evening"`)}
	}
	if _, ok := _c.mutation.Night(); !ok {
		return &ValidationError{Name: "night", err: errors.New(`ent: missing required field "Prescription.night"`)}
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "Prescription.source_url"`)}
	}
	if v, ok := _c.mutation.SourceURL(); ok {
		if err := prescription.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Prescription.source_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Prescription.created_at"`)}
	}
	return nil
}

func (_c *PrescriptionCreate) sqlSave(ctx context.Context) (*Prescription, error) {
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

func (_c *PrescriptionCreate) createSpec() (*Prescription, *sqlgraph.CreateSpec) {
	var (
		_node = &Prescription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prescription.Table, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(prescription.FieldGroupID, field.TypeUUID, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(prescription.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.MedicineName(); ok {
		_spec.SetField(prescription.FieldMedicineName, field.TypeString, value)
		_node.MedicineName = value
	}
	if value, ok := _c.mutation.FoodInstruction(); ok {
		_spec.SetField(prescription.FieldFoodInstruction, field.TypeString, value)
		_node.FoodInstruction = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(prescription.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(prescription.FieldEndDate, field.TypeTime, value)
		_node.EndDate = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(prescription.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Morning(); ok {
		_spec.SetField(prescription.FieldMorning, field.TypeBool, value)
		_node.Morning = value
	}
	if value, ok := _c.mutation.Afternoon(); ok {
		_spec.SetField(prescription.FieldAfternoon, field.TypeBool, value)
		_node.Afternoon = value
	}
	if value, ok := _c.mutation.Evening(); ok {
		_spec.SetField(prescription.FieldEvening, field.TypeBool, value)
		_node.Evening = value
	}
	if value, ok := _c.mutation.Night(); ok {
		_spec.SetField(prescription.FieldNight, field.TypeBool, value)
		_node.Night = value
	}
	if value, ok := _c.mutation.DoctorName(); ok {
		_spec.SetField(prescription.FieldDoctorName, field.TypeString, value)
		_node.DoctorName = value
	}
	if value, ok := _c.mutation.PrescribedOn(); ok {
		_spec.SetField(prescription.FieldPrescribedOn, field.TypeTime, value)
		_node.PrescribedOn = &value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(prescription.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prescription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AdherenceEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PrescriptionCreateBulk is the builder for creating many Prescription entities in bulk.
type PrescriptionCreateBulk struct {
	config
	err      error
	builders []*PrescriptionCreate
}

// Save creates the Prescription entities in the database.
func (_c *PrescriptionCreateBulk) Save(ctx context.Context) ([]*Prescription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prescription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrescriptionMutation)
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
func (_c *PrescriptionCreateBulk) SaveX(ctx context.Context) []*Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
