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

// AdherenceEntryCreate is the builder for creating a AdherenceEntry entity.
type AdherenceEntryCreate struct {
	config
	mutation *AdherenceEntryMutation
	hooks    []Hook
}

// SetPrescriptionID sets the "prescription_id" field.
func (_c *AdherenceEntryCreate) SetPrescriptionID(v uuid.UUID) *AdherenceEntryCreate {
	_c.mutation.SetPrescriptionID(v)
	return _c
}

// SetMedicineName sets the "medicine_name" field.
func (_c *AdherenceEntryCreate) SetMedicineName(v string) *AdherenceEntryCreate {
	_c.mutation.SetMedicineName(v)
	return _c
}

// SetEntryDate sets the "entry_date" field.
func (_c *AdherenceEntryCreate) SetEntryDate(v time.Time) *AdherenceEntryCreate {
	_c.mutation.SetEntryDate(v)
	return _c
}

// SetMorning sets the "morning" field.
func (_c *AdherenceEntryCreate) SetMorning(v bool) *AdherenceEntryCreate {
	_c.mutation.SetMorning(v)
	return _c
}

// SetNillableMorning sets the "morning" field if the given value is not nil.
func (_c *AdherenceEntryCreate) SetNillableMorning(v *bool) *AdherenceEntryCreate {
	if v != nil {
		_c.SetMorning(*v)
	}
	return _c
}

// SetAfternoon sets the "afternoon" field.
func (_c *AdherenceEntryCreate) SetAfternoon(v bool) *AdherenceEntryCreate {
	_c.mutation.SetAfternoon(v)
	return _c
}

// SetNillableAfternoon sets the "afternoon" field if the given value is not nil.
func (_c *AdherenceEntryCreate) SetNillableAfternoon(v *bool) *AdherenceEntryCreate {
	if v != nil {
		_c.SetAfternoon(*v)
	}
	return _c
}

// SetEvening sets the "evening" field.
func (_c *AdherenceEntryCreate) SetEvening(v bool) *AdherenceEntryCreate {
	_c.mutation.SetEvening(v)
	return _c
}

// SetNillableEvening sets the "evening" field if the given value is not nil.
func (_c *AdherenceEntryCreate) SetNillableEvening(v *bool) *AdherenceEntryCreate {
	if v != nil {
		_c.SetEvening(*v)
	}
	return _c
}

// SetNight sets the "night" field.
func (_c *AdherenceEntryCreate) SetNight(v bool) *AdherenceEntryCreate {
	_c.mutation.SetNight(v)
	return _c
}

// SetNillableNight sets the "night" field if the given value is not nil.
func (_c *AdherenceEntryCreate) SetNillableNight(v *bool) *AdherenceEntryCreate {
	if v != nil {
		_c.SetNight(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AdherenceEntryCreate) SetCreatedAt(v time.Time) *AdherenceEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AdherenceEntryCreate) SetNillableCreatedAt(v *time.Time) *AdherenceEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AdherenceEntryCreate) SetUpdatedAt(v time.Time) *AdherenceEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AdherenceEntryCreate) SetNillableUpdatedAt(v *time.Time) *AdherenceEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AdherenceEntryCreate) SetID(v uuid.UUID) *AdherenceEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AdherenceEntryCreate) SetNillableID(v *uuid.UUID) *AdherenceEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPrescription sets the "prescription" edge to the Prescription entity.
func (_c *AdherenceEntryCreate) SetPrescription(v *Prescription) *AdherenceEntryCreate {
	return _c.SetPrescriptionID(v.ID)
}

// Mutation returns the AdherenceEntryMutation object of the builder.
func (_c *AdherenceEntryCreate) Mutation() *AdherenceEntryMutation {
	return _c.mutation
}

// Save creates the AdherenceEntry in the database.
func (_c *AdherenceEntryCreate) Save(ctx context.Context) (*AdherenceEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdherenceEntryCreate) SaveX(ctx context.Context) *AdherenceEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdherenceEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdherenceEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdherenceEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := adherenceentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := adherenceentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := adherenceentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdherenceEntryCreate) check() error {
	if _, ok := _c.mutation.PrescriptionID(); !ok {
		return &ValidationError{Name: "prescription_id", err: errors.New(`ent: missing required field "AdherenceEntry.prescription_id"`)}
	}
	if _, ok := _c.mutation.MedicineName(); !ok {
		return &ValidationError{Name: "medicine_name", err: errors.New(`ent: missing required field "AdherenceEntry.medicine_name"`)}
	}
	if v, ok := _c.mutation.MedicineName(); ok {
		if err := adherenceentry.MedicineNameValidator(v); err != nil {
			return &ValidationError{Name: "medicine_name", err: fmt.Errorf(`ent: validator failed for field "AdherenceEntry.medicine_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntryDate(); !ok {
		return &ValidationError{Name: "entry_date", err: errors.New(`ent: missing required field "AdherenceEntry.entry_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AdherenceEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AdherenceEntry.updated_at"`)}
	}
	if len(_c.mutation.PrescriptionIDs()) == 0 {
		return &ValidationError{Name: "prescription", err: errors.New(`ent: missing required edge "AdherenceEntry.prescription"`)}
	}
	return nil
}

func (_c *AdherenceEntryCreate) sqlSave(ctx context.Context) (*AdherenceEntry, error) {
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

func (_c *AdherenceEntryCreate) createSpec() (*AdherenceEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AdherenceEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adherenceentry.Table, sqlgraph.NewFieldSpec(adherenceentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MedicineName(); ok {
		_spec.SetField(adherenceentry.FieldMedicineName, field.TypeString, value)
		_node.MedicineName = value
	}
	if value, ok := _c.mutation.EntryDate(); ok {
		_spec.SetField(adherenceentry.FieldEntryDate, field.TypeTime, value)
		_node.EntryDate = value
	}
	if value, ok := _c.mutation.Morning(); ok {
		_spec.SetField(adherenceentry.FieldMorning, field.TypeBool, value)
		_node.Morning = &value
	}
	if value, ok := _c.mutation.Afternoon(); ok {
		_spec.SetField(adherenceentry.FieldAfternoon, field.TypeBool, value)
		_node.Afternoon = &value
	}
	if value, ok := _c.mutation.Evening(); ok {
		_spec.SetField(adherenceentry.FieldEvening, field.TypeBool, value)
		_node.Evening = &value
	}
	if value, ok := _c.mutation.Night(); ok {
		_spec.SetField(adherenceentry.FieldNight, field.TypeBool, value)
		_node.Night = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(adherenceentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(adherenceentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PrescriptionIDs(); len(nodes) > 0 {
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
		_node.PrescriptionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AdherenceEntryCreateBulk is the builder for creating many AdherenceEntry entities in bulk.
type AdherenceEntryCreateBulk struct {
	config
	err      error
	builders []*AdherenceEntryCreate
}

// Save creates the AdherenceEntry entities in the database.
func (_c *AdherenceEntryCreateBulk) Save(ctx context.Context) ([]*AdherenceEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdherenceEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdherenceEntryMutation)
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
func (_c *AdherenceEntryCreateBulk) SaveX(ctx context.Context) []*AdherenceEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdherenceEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdherenceEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
