// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/healthtrack-labs/healthtrack/gen/ent/adherenceentry"
	"github.com/healthtrack-labs/healthtrack/gen/ent/imagingresult"
	"github.com/healthtrack-labs/healthtrack/gen/ent/predicate"
	"github.com/healthtrack-labs/healthtrack/gen/ent/prescription"
	"github.com/healthtrack-labs/healthtrack/gen/ent/testresult"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdherenceEntry = "AdherenceEntry"
	TypeImagingResult  = "ImagingResult"
	TypePrescription   = "Prescription"
	TypeTestResult     = "TestResult"
)

// AdherenceEntryMutation represents an operation that mutates the AdherenceEntry nodes in the graph.
type AdherenceEntryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	medicine_name       *string
	entry_date          *time.Time
	morning             *bool
	afternoon           *bool
	evening             *bool
	night               *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	prescription        *uuid.UUID
	clearedprescription bool
	done                bool
	oldValue            func(context.Context) (*AdherenceEntry, error)
	predicates          []predicate.AdherenceEntry
}

var _ ent.Mutation = (*AdherenceEntryMutation)(nil)

// adherenceentryOption allows management of the mutation configuration using functional options.
type adherenceentryOption func(*AdherenceEntryMutation)

// newAdherenceEntryMutation creates new mutation for the AdherenceEntry entity.
func newAdherenceEntryMutation(c config, op Op, opts ...adherenceentryOption) *AdherenceEntryMutation {
	m := &AdherenceEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAdherenceEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdherenceEntryID sets the ID field of the mutation.
func withAdherenceEntryID(id uuid.UUID) adherenceentryOption {
	return func(m *AdherenceEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AdherenceEntry
		)
		m.oldValue = func(ctx context.Context) (*AdherenceEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdherenceEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdherenceEntry sets the old AdherenceEntry of the mutation.
func withAdherenceEntry(node *AdherenceEntry) adherenceentryOption {
	return func(m *AdherenceEntryMutation) {
		m.oldValue = func(context.Context) (*AdherenceEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdherenceEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdherenceEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdherenceEntry entities.
func (m *AdherenceEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdherenceEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdherenceEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdherenceEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPrescriptionID sets the "prescription_id" field.
func (m *AdherenceEntryMutation) SetPrescriptionID(u uuid.UUID) {
	m.prescription = &u
}

// PrescriptionID returns the value of the "prescription_id" field in the mutation.
func (m *AdherenceEntryMutation) PrescriptionID() (r uuid.UUID, exists bool) {
	v := m.prescription
	if v == nil {
		return
	}
	return *v, true
}

// OldPrescriptionID returns the old "prescription_id" field's value of the AdherenceEntry entity.
// If the AdherenceEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceEntryMutation) OldPrescriptionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrescriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrescriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrescriptionID: %w", err)
	}
	return oldValue.PrescriptionID, nil
}

// ResetPrescriptionID resets all changes to the "prescription_id" field.
func (m *AdherenceEntryMutation) ResetPrescriptionID() {
	m.prescription = nil
}

// SetMedicineName sets the "medicine_name" field.
func (m *AdherenceEntryMutation) SetMedicineName(s string) {
	m.medicine_name = &s
}

// MedicineName returns the value of the "medicine_name" field in the mutation.
func (m *AdherenceEntryMutation) MedicineName() (r string, exists bool) {
	v := m.medicine_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicineName returns the old "medicine_name" field's value of the AdherenceEntry entity.
// If the AdherenceEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceEntryMutation) OldMedicineName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicineName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicineName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicineName: %w", err)
	}
	return oldValue.MedicineName, nil
}

// ResetMedicineName resets all changes to the "medicine_name" field.
func (m *AdherenceEntryMutation) ResetMedicineName() {
	m.medicine_name = nil
}

// SetEntryDate sets the "entry_date" field.
func (m *AdherenceEntryMutation) SetEntryDate(t time.Time) {
	m.entry_date = &t
}

// EntryDate returns the value of the "entry_date" field in the mutation.
func (m *AdherenceEntryMutation) EntryDate() (r time.Time, exists bool) {
	v := m.entry_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryDate returns the old "entry_date" field's value of the AdherenceEntry entity.
// If the AdherenceEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceEntryMutation) OldEntryDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryDate: %w", err)
	}
	return oldValue.EntryDate, nil
}

// ResetEntryDate resets all changes to the "entry_date" field.
func (m *AdherenceEntryMutation) ResetEntryDate() {
	m.entry_date = nil
}

// SetMorning sets the "morning" field.
func (m *AdherenceEntryMutation) SetMorning(b bool) {
	m.morning = &b
}

// Morning returns the value of the "morning" field in the mutation.
func (m *AdherenceEntryMutation) Morning() (r bool, exists bool) {
	v := m.morning
	if v == nil {
		return
	}
	return *v, true
}

// OldMorning returns the old "morning" field's value of the AdherenceEntry entity.
// If the AdherenceEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceEntryMutation) OldMorning(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMorning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMorning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMorning: %w", err)
	}
	return oldValue.Morning, nil
}

// ClearMorning clears the value of the "morning" field.
func (m *AdherenceEntryMutation) ClearMorning() {
	m.morning = nil
	m.clearedFields[adherenceentry.FieldMorning] = struct{}{}
}

// MorningCleared returns if the "morning" field was cleared in this mutation.
func (m *AdherenceEntryMutation) MorningCleared() bool {
	_, ok := m.clearedFields[adherenceentry.FieldMorning]
	return ok
}

// ResetMorning resets all changes to the "morning" field.
func (m *AdherenceEntryMutation) ResetMorning() {
	m.morning = nil
	delete(m.clearedFields, adherenceentry.FieldMorning)
}

// SetAfternoon sets the "afternoon" field.
func (m *AdherenceEntryMutation) SetAfternoon(b bool) {
	m.afternoon = &b
}

// Afternoon returns the value of the "afternoon" field in the mutation.
func (m *AdherenceEntryMutation) Afternoon() (r bool, exists bool) {
	v := m.afternoon
	if v == nil {
		return
	}
	return *v, true
}

// OldAfternoon returns the old "afternoon" field's value of the AdherenceEntry entity.
// If the AdherenceEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceEntryMutation) OldAfternoon(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfternoon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfternoon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfternoon: %w", err)
	}
	return oldValue.Afternoon, nil
}

// ClearAfternoon clears the value of the "afternoon" field.
func (m *AdherenceEntryMutation) ClearAfternoon() {
	m.afternoon = nil
	m.clearedFields[adherenceentry.FieldAfternoon] = struct{}{}
}

// AfternoonCleared returns if the "afternoon" field was cleared in this mutation.
func (m *AdherenceEntryMutation) AfternoonCleared() bool {
	_, ok := m.clearedFields[adherenceentry.FieldAfternoon]
	return ok
}

// ResetAfternoon resets all changes to the "afternoon" field.
func (m *AdherenceEntryMutation) ResetAfternoon() {
	m.afternoon = nil
	delete(m.clearedFields, adherenceentry.FieldAfternoon)
}

// SetEvening sets the "evening" field.
func (m *AdherenceEntryMutation) SetEvening(b bool) {
	m.evening = &b
}

// Evening returns the value of the "evening" field in the mutation.
func (m *AdherenceEntryMutation) Evening() (r bool, exists bool) {
	v := m.evening
	if v == nil {
		return
	}
	return *v, true
}

// OldEvening returns the old "evening" field's value of the AdherenceEntry entity.
// If the AdherenceEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceEntryMutation) OldEvening(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvening is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvening requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvening: %w", err)
	}
	return oldValue.Evening, nil
}

// ClearEvening clears the value of the "evening" field.
func (m *AdherenceEntryMutation) ClearEvening() {
	m.evening = nil
	m.clearedFields[adherenceentry.FieldEvening] = struct{}{}
}

// EveningCleared returns if the "evening" field was cleared in this mutation.
func (m *AdherenceEntryMutation) EveningCleared() bool {
	_, ok := m.clearedFields[adherenceentry.FieldEvening]
	return ok
}

// ResetEvening resets all changes to the "evening" field.
func (m *AdherenceEntryMutation) ResetEvening() {
	m.evening = nil
	delete(m.clearedFields, adherenceentry.FieldEvening)
}

// SetNight sets the "night" field.
func (m *AdherenceEntryMutation) SetNight(b bool) {
	m.night = &b
}

// Night returns the value of the "night" field in the mutation.
func (m *AdherenceEntryMutation) Night() (r bool, exists bool) {
	v := m.night
	if v == nil {
		return
	}
	return *v, true
}

// OldNight returns the old "night" field's value of the AdherenceEntry entity.
// If the AdherenceEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceEntryMutation) OldNight(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNight: %w", err)
	}
	return oldValue.Night, nil
}

// ClearNight clears the value of the "night" field.
func (m *AdherenceEntryMutation) ClearNight() {
	m.night = nil
	m.clearedFields[adherenceentry.FieldNight] = struct{}{}
}

// NightCleared returns if the "night" field was cleared in this mutation.
func (m *AdherenceEntryMutation) NightCleared() bool {
	_, ok := m.clearedFields[adherenceentry.FieldNight]
	return ok
}

// ResetNight resets all changes to the "night" field.
func (m *AdherenceEntryMutation) ResetNight() {
	m.night = nil
	delete(m.clearedFields, adherenceentry.FieldNight)
}

// SetCreatedAt sets the "created_at" field.
func (m *AdherenceEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdherenceEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdherenceEntry entity.
// If the AdherenceEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdherenceEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AdherenceEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AdherenceEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AdherenceEntry entity.
// If the AdherenceEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdherenceEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AdherenceEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearPrescription clears the "prescription" edge to the Prescription entity.
func (m *AdherenceEntryMutation) ClearPrescription() {
	m.clearedprescription = true
	m.clearedFields[adherenceentry.FieldPrescriptionID] = struct{}{}
}

// PrescriptionCleared reports if the "prescription" edge to the Prescription entity was cleared.
func (m *AdherenceEntryMutation) PrescriptionCleared() bool {
	return m.clearedprescription
}

// PrescriptionIDs returns the "prescription" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PrescriptionID instead. It exists only for internal usage by the builders.
func (m *AdherenceEntryMutation) PrescriptionIDs() (ids []uuid.UUID) {
	if id := m.prescription; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPrescription resets all changes to the "prescription" edge.
func (m *AdherenceEntryMutation) ResetPrescription() {
	m.prescription = nil
	m.clearedprescription = false
}

// Where appends a list predicates to the AdherenceEntryMutation builder.
func (m *AdherenceEntryMutation) Where(ps ...predicate.AdherenceEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdherenceEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdherenceEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdherenceEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdherenceEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdherenceEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdherenceEntry).
func (m *AdherenceEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdherenceEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.prescription != nil {
		fields = append(fields, adherenceentry.FieldPrescriptionID)
	}
	if m.medicine_name != nil {
		fields = append(fields, adherenceentry.FieldMedicineName)
	}
	if m.entry_date != nil {
		fields = append(fields, adherenceentry.FieldEntryDate)
	}
	if m.morning != nil {
		fields = append(fields, adherenceentry.FieldMorning)
	}
	if m.afternoon != nil {
		fields = append(fields, adherenceentry.FieldAfternoon)
	}
	if m.evening != nil {
		fields = append(fields, adherenceentry.FieldEvening)
	}
	if m.night != nil {
		fields = append(fields, adherenceentry.FieldNight)
	}
	if m.created_at != nil {
		fields = append(fields, adherenceentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, adherenceentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdherenceEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adherenceentry.FieldPrescriptionID:
		return m.PrescriptionID()
	case adherenceentry.FieldMedicineName:
		return m.MedicineName()
	case adherenceentry.FieldEntryDate:
		return m.EntryDate()
	case adherenceentry.FieldMorning:
		return m.Morning()
	case adherenceentry.FieldAfternoon:
		return m.Afternoon()
	case adherenceentry.FieldEvening:
		return m.Evening()
	case adherenceentry.FieldNight:
		return m.Night()
	case adherenceentry.FieldCreatedAt:
		return m.CreatedAt()
	case adherenceentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdherenceEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adherenceentry.FieldPrescriptionID:
		return m.OldPrescriptionID(ctx)
	case adherenceentry.FieldMedicineName:
		return m.OldMedicineName(ctx)
	case adherenceentry.FieldEntryDate:
		return m.OldEntryDate(ctx)
	case adherenceentry.FieldMorning:
		return m.OldMorning(ctx)
	case adherenceentry.FieldAfternoon:
		return m.OldAfternoon(ctx)
	case adherenceentry.FieldEvening:
		return m.OldEvening(ctx)
	case adherenceentry.FieldNight:
		return m.OldNight(ctx)
	case adherenceentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case adherenceentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AdherenceEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdherenceEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adherenceentry.FieldPrescriptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrescriptionID(v)
		return nil
	case adherenceentry.FieldMedicineName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicineName(v)
		return nil
	case adherenceentry.FieldEntryDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryDate(v)
		return nil
	case adherenceentry.FieldMorning:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMorning(v)
		return nil
	case adherenceentry.FieldAfternoon:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfternoon(v)
		return nil
	case adherenceentry.FieldEvening:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvening(v)
		return nil
	case adherenceentry.FieldNight:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNight(v)
		return nil
	case adherenceentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case adherenceentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AdherenceEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdherenceEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdherenceEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdherenceEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AdherenceEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdherenceEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(adherenceentry.FieldMorning) {
		fields = append(fields, adherenceentry.FieldMorning)
	}
	if m.FieldCleared(adherenceentry.FieldAfternoon) {
		fields = append(fields, adherenceentry.FieldAfternoon)
	}
	if m.FieldCleared(adherenceentry.FieldEvening) {
		fields = append(fields, adherenceentry.FieldEvening)
	}
	if m.FieldCleared(adherenceentry.FieldNight) {
		fields = append(fields, adherenceentry.FieldNight)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdherenceEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdherenceEntryMutation) ClearField(name string) error {
	switch name {
	case adherenceentry.FieldMorning:
		m.ClearMorning()
		return nil
	case adherenceentry.FieldAfternoon:
		m.ClearAfternoon()
		return nil
	case adherenceentry.FieldEvening:
		m.ClearEvening()
		return nil
	case adherenceentry.FieldNight:
		m.ClearNight()
		return nil
	}
	return fmt.Errorf("unknown AdherenceEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdherenceEntryMutation) ResetField(name string) error {
	switch name {
	case adherenceentry.FieldPrescriptionID:
		m.ResetPrescriptionID()
		return nil
	case adherenceentry.FieldMedicineName:
		m.ResetMedicineName()
		return nil
	case adherenceentry.FieldEntryDate:
		m.ResetEntryDate()
		return nil
	case adherenceentry.FieldMorning:
		m.ResetMorning()
		return nil
	case adherenceentry.FieldAfternoon:
		m.ResetAfternoon()
		return nil
	case adherenceentry.FieldEvening:
		m.ResetEvening()
		return nil
	case adherenceentry.FieldNight:
		m.ResetNight()
		return nil
	case adherenceentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case adherenceentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AdherenceEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdherenceEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.prescription != nil {
		edges = append(edges, adherenceentry.EdgePrescription)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdherenceEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case adherenceentry.EdgePrescription:
		if id := m.prescription; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdherenceEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdherenceEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdherenceEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprescription {
		edges = append(edges, adherenceentry.EdgePrescription)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdherenceEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case adherenceentry.EdgePrescription:
		return m.clearedprescription
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdherenceEntryMutation) ClearEdge(name string) error {
	switch name {
	case adherenceentry.EdgePrescription:
		m.ClearPrescription()
		return nil
	}
	return fmt.Errorf("unknown AdherenceEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdherenceEntryMutation) ResetEdge(name string) error {
	switch name {
	case adherenceentry.EdgePrescription:
		m.ResetPrescription()
		return nil
	}
	return fmt.Errorf("unknown AdherenceEntry edge %s", name)
}

// ImagingResultMutation represents an operation that mutates the ImagingResult nodes in the graph.
type ImagingResultMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	patient_id    *uuid.UUID
	test_date     *time.Time
	title         *string
	observations  *string
	doctor_name   *string
	source_url    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ImagingResult, error)
	predicates    []predicate.ImagingResult
}

var _ ent.Mutation = (*ImagingResultMutation)(nil)

// imagingresultOption allows management of the mutation configuration using functional options.
type imagingresultOption func(*ImagingResultMutation)

// newImagingResultMutation creates new mutation for the ImagingResult entity.
func newImagingResultMutation(c config, op Op, opts ...imagingresultOption) *ImagingResultMutation {
	m := &ImagingResultMutation{
		config:        c,
		op:            op,
		typ:           TypeImagingResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImagingResultID sets the ID field of the mutation.
func withImagingResultID(id uuid.UUID) imagingresultOption {
	return func(m *ImagingResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ImagingResult
		)
		m.oldValue = func(ctx context.Context) (*ImagingResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImagingResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImagingResult sets the old ImagingResult of the mutation.
func withImagingResult(node *ImagingResult) imagingresultOption {
	return func(m *ImagingResultMutation) {
		m.oldValue = func(context.Context) (*ImagingResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImagingResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImagingResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImagingResult entities.
func (m *ImagingResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImagingResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImagingResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImagingResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatientID sets the "patient_id" field.
func (m *ImagingResultMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *ImagingResultMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the ImagingResult entity.
// If the ImagingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImagingResultMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *ImagingResultMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetTestDate sets the "test_date" field.
func (m *ImagingResultMutation) SetTestDate(t time.Time) {
	m.test_date = &t
}

// TestDate returns the value of the "test_date" field in the mutation.
func (m *ImagingResultMutation) TestDate() (r time.Time, exists bool) {
	v := m.test_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTestDate returns the old "test_date" field's value of the ImagingResult entity.
// If the ImagingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImagingResultMutation) OldTestDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestDate: %w", err)
	}
	return oldValue.TestDate, nil
}

// ResetTestDate resets all changes to the "test_date" field.
func (m *ImagingResultMutation) ResetTestDate() {
	m.test_date = nil
}

// SetTitle sets the "title" field.
func (m *ImagingResultMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ImagingResultMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ImagingResult entity.
// If the ImagingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImagingResultMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ImagingResultMutation) ResetTitle() {
	m.title = nil
}

// SetObservations sets the "observations" field.
func (m *ImagingResultMutation) SetObservations(s string) {
	m.observations = &s
}

// Observations returns the value of the "observations" field in the mutation.
func (m *ImagingResultMutation) Observations() (r string, exists bool) {
	v := m.observations
	if v == nil {
		return
	}
	return *v, true
}

// OldObservations returns the old "observations" field's value of the ImagingResult entity.
// If the ImagingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImagingResultMutation) OldObservations(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservations: %w", err)
	}
	return oldValue.Observations, nil
}

// ClearObservations clears the value of the "observations" field.
func (m *ImagingResultMutation) ClearObservations() {
	m.observations = nil
	m.clearedFields[imagingresult.FieldObservations] = struct{}{}
}

// ObservationsCleared returns if the "observations" field was cleared in this mutation.
func (m *ImagingResultMutation) ObservationsCleared() bool {
	_, ok := m.clearedFields[imagingresult.FieldObservations]
	return ok
}

// ResetObservations resets all changes to the "observations" field.
func (m *ImagingResultMutation) ResetObservations() {
	m.observations = nil
	delete(m.clearedFields, imagingresult.FieldObservations)
}

// SetDoctorName sets the "doctor_name" field.
func (m *ImagingResultMutation) SetDoctorName(s string) {
	m.doctor_name = &s
}

// DoctorName returns the value of the "doctor_name" field in the mutation.
func (m *ImagingResultMutation) DoctorName() (r string, exists bool) {
	v := m.doctor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorName returns the old "doctor_name" field's value of the ImagingResult entity.
// If the ImagingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImagingResultMutation) OldDoctorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorName: %w", err)
	}
	return oldValue.DoctorName, nil
}

// ClearDoctorName clears the value of the "doctor_name" field.
func (m *ImagingResultMutation) ClearDoctorName() {
	m.doctor_name = nil
	m.clearedFields[imagingresult.FieldDoctorName] = struct{}{}
}

// DoctorNameCleared returns if the "doctor_name" field was cleared in this mutation.
func (m *ImagingResultMutation) DoctorNameCleared() bool {
	_, ok := m.clearedFields[imagingresult.FieldDoctorName]
	return ok
}

// ResetDoctorName resets all changes to the "doctor_name" field.
func (m *ImagingResultMutation) ResetDoctorName() {
	m.doctor_name = nil
	delete(m.clearedFields, imagingresult.FieldDoctorName)
}

// SetSourceURL sets the "source_url" field.
func (m *ImagingResultMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *ImagingResultMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the ImagingResult entity.
// If the ImagingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImagingResultMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *ImagingResultMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ImagingResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImagingResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ImagingResult entity.
// If the ImagingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImagingResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImagingResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ImagingResultMutation builder.
func (m *ImagingResultMutation) Where(ps ...predicate.ImagingResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImagingResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImagingResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImagingResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImagingResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImagingResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImagingResult).
func (m *ImagingResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImagingResultMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.patient_id != nil {
		fields = append(fields, imagingresult.FieldPatientID)
	}
	if m.test_date != nil {
		fields = append(fields, imagingresult.FieldTestDate)
	}
	if m.title != nil {
		fields = append(fields, imagingresult.FieldTitle)
	}
	if m.observations != nil {
		fields = append(fields, imagingresult.FieldObservations)
	}
	if m.doctor_name != nil {
		fields = append(fields, imagingresult.FieldDoctorName)
	}
	if m.source_url != nil {
		fields = append(fields, imagingresult.FieldSourceURL)
	}
	if m.created_at != nil {
		fields = append(fields, imagingresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImagingResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case imagingresult.FieldPatientID:
		return m.PatientID()
	case imagingresult.FieldTestDate:
		return m.TestDate()
	case imagingresult.FieldTitle:
		return m.Title()
	case imagingresult.FieldObservations:
		return m.Observations()
	case imagingresult.FieldDoctorName:
		return m.DoctorName()
	case imagingresult.FieldSourceURL:
		return m.SourceURL()
	case imagingresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImagingResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case imagingresult.FieldPatientID:
		return m.OldPatientID(ctx)
	case imagingresult.FieldTestDate:
		return m.OldTestDate(ctx)
	case imagingresult.FieldTitle:
		return m.OldTitle(ctx)
	case imagingresult.FieldObservations:
		return m.OldObservations(ctx)
	case imagingresult.FieldDoctorName:
		return m.OldDoctorName(ctx)
	case imagingresult.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case imagingresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ImagingResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImagingResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case imagingresult.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case imagingresult.FieldTestDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestDate(v)
		return nil
	case imagingresult.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case imagingresult.FieldObservations:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservations(v)
		return nil
	case imagingresult.FieldDoctorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorName(v)
		return nil
	case imagingresult.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case imagingresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ImagingResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImagingResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImagingResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImagingResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ImagingResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImagingResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(imagingresult.FieldObservations) {
		fields = append(fields, imagingresult.FieldObservations)
	}
	if m.FieldCleared(imagingresult.FieldDoctorName) {
		fields = append(fields, imagingresult.FieldDoctorName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImagingResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImagingResultMutation) ClearField(name string) error {
	switch name {
	case imagingresult.FieldObservations:
		m.ClearObservations()
		return nil
	case imagingresult.FieldDoctorName:
		m.ClearDoctorName()
		return nil
	}
	return fmt.Errorf("unknown ImagingResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImagingResultMutation) ResetField(name string) error {
	switch name {
	case imagingresult.FieldPatientID:
		m.ResetPatientID()
		return nil
	case imagingresult.FieldTestDate:
		m.ResetTestDate()
		return nil
	case imagingresult.FieldTitle:
		m.ResetTitle()
		return nil
	case imagingresult.FieldObservations:
		m.ResetObservations()
		return nil
	case imagingresult.FieldDoctorName:
		m.ResetDoctorName()
		return nil
	case imagingresult.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case imagingresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ImagingResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImagingResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImagingResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImagingResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImagingResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImagingResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImagingResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImagingResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ImagingResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImagingResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ImagingResult edge %s", name)
}

// PrescriptionMutation represents an operation that mutates the Prescription nodes in the graph.
type PrescriptionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	group_id                 *uuid.UUID
	patient_id               *uuid.UUID
	medicine_name            *string
	food_instruction         *string
	start_date               *time.Time
	end_date                 *time.Time
	notes                    *string
	morning                  *bool
	afternoon                *bool
	evening                  *bool
	night                    *bool
	doctor_name              *string
	prescribed_on            *time.Time
	source_url               *string
	created_at               *time.Time
	clearedFields            map[string]struct{}
	adherence_entries        map[uuid.UUID]struct{}
	removedadherence_entries map[uuid.UUID]struct{}
	clearedadherence_entries bool
	done                     bool
	oldValue                 func(context.Context) (*Prescription, error)
	predicates               []predicate.Prescription
}

var _ ent.Mutation = (*PrescriptionMutation)(nil)

// prescriptionOption allows management of the mutation configuration using functional options.
type prescriptionOption func(*PrescriptionMutation)

// newPrescriptionMutation creates new mutation for the Prescription entity.
func newPrescriptionMutation(c config, op Op, opts ...prescriptionOption) *PrescriptionMutation {
	m := &PrescriptionMutation{
		config:        c,
		op:            op,
		typ:           TypePrescription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPrescriptionID sets the ID field of the mutation.
func withPrescriptionID(id uuid.UUID) prescriptionOption {
	return func(m *PrescriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *Prescription
		)
		m.oldValue = func(ctx context.Context) (*Prescription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prescription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrescription sets the old Prescription of the mutation.
func withPrescription(node *Prescription) prescriptionOption {
	return func(m *PrescriptionMutation) {
		m.oldValue = func(context.Context) (*Prescription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PrescriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PrescriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prescription entities.
func (m *PrescriptionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PrescriptionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PrescriptionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prescription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *PrescriptionMutation) SetGroupID(u uuid.UUID) {
	m.group_id = &u
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *PrescriptionMutation) GroupID() (r uuid.UUID, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldGroupID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *PrescriptionMutation) ResetGroupID() {
	m.group_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *PrescriptionMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PrescriptionMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PrescriptionMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetMedicineName sets the "medicine_name" field.
func (m *PrescriptionMutation) SetMedicineName(s string) {
	m.medicine_name = &s
}

// MedicineName returns the value of the "medicine_name" field in the mutation.
func (m *PrescriptionMutation) MedicineName() (r string, exists bool) {
	v := m.medicine_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicineName returns the old "medicine_name" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldMedicineName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicineName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicineName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicineName: %w", err)
	}
	return oldValue.MedicineName, nil
}

// ResetMedicineName resets all changes to the "medicine_name" field.
func (m *PrescriptionMutation) ResetMedicineName() {
	m.medicine_name = nil
}

// SetFoodInstruction sets the "food_instruction" field.
func (m *PrescriptionMutation) SetFoodInstruction(s string) {
	m.food_instruction = &s
}

// FoodInstruction returns the value of the "food_instruction" field in the mutation.
func (m *PrescriptionMutation) FoodInstruction() (r string, exists bool) {
	v := m.food_instruction
	if v == nil {
		return
	}
	return *v, true
}

// OldFoodInstruction returns the old "food_instruction" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldFoodInstruction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFoodInstruction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFoodInstruction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFoodInstruction: %w", err)
	}
	return oldValue.FoodInstruction, nil
}

// ClearFoodInstruction clears the value of the "food_instruction" field.
func (m *PrescriptionMutation) ClearFoodInstruction() {
	m.food_instruction = nil
	m.clearedFields[prescription.FieldFoodInstruction] = struct{}{}
}

// FoodInstructionCleared returns if the "food_instruction" field was cleared in this mutation.
func (m *PrescriptionMutation) FoodInstructionCleared() bool {
	_, ok := m.clearedFields[prescription.FieldFoodInstruction]
	return ok
}

// ResetFoodInstruction resets all changes to the "food_instruction" field.
func (m *PrescriptionMutation) ResetFoodInstruction() {
	m.food_instruction = nil
	delete(m.clearedFields, prescription.FieldFoodInstruction)
}

// SetStartDate sets the "start_date" field.
func (m *PrescriptionMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *PrescriptionMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *PrescriptionMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *PrescriptionMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *PrescriptionMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldEndDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *PrescriptionMutation) ResetEndDate() {
	m.end_date = nil
}

// SetNotes sets the "notes" field.
func (m *PrescriptionMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *PrescriptionMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *PrescriptionMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[prescription.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *PrescriptionMutation) NotesCleared() bool {
	_, ok := m.clearedFields[prescription.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *PrescriptionMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, prescription.FieldNotes)
}

// SetMorning sets the "morning" field.
func (m *PrescriptionMutation) SetMorning(b bool) {
	m.morning = &b
}

// Morning returns the value of the "morning" field in the mutation.
func (m *PrescriptionMutation) Morning() (r bool, exists bool) {
	v := m.morning
	if v == nil {
		return
	}
	return *v, true
}

// OldMorning returns the old "morning" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldMorning(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMorning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMorning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMorning: %w", err)
	}
	return oldValue.Morning, nil
}

// ResetMorning resets all changes to the "morning" field.
func (m *PrescriptionMutation) ResetMorning() {
	m.morning = nil
}

// SetAfternoon sets the "afternoon" field.
func (m *PrescriptionMutation) SetAfternoon(b bool) {
	m.afternoon = &b
}

// Afternoon returns the value of the "afternoon" field in the mutation.
func (m *PrescriptionMutation) Afternoon() (r bool, exists bool) {
	v := m.afternoon
	if v == nil {
		return
	}
	return *v, true
}

// OldAfternoon returns the old "afternoon" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldAfternoon(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfternoon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfternoon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfternoon: %w", err)
	}
	return oldValue.Afternoon, nil
}

// ResetAfternoon resets all changes to the "afternoon" field.
func (m *PrescriptionMutation) ResetAfternoon() {
	m.afternoon = nil
}

// SetEvening sets the "evening" field.
func (m *PrescriptionMutation) SetEvening(b bool) {
	m.evening = &b
}

// Evening returns the value of the "evening" field in the mutation.
func (m *PrescriptionMutation) Evening() (r bool, exists bool) {
	v := m.evening
	if v == nil {
		return
	}
	return *v, true
}

// OldEvening returns the old "evening" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldEvening(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvening is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvening requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvening: %w", err)
	}
	return oldValue.Evening, nil
}

// ResetEvening resets all changes to the "evening" field.
func (m *PrescriptionMutation) ResetEvening() {
	m.evening = nil
}

// SetNight sets the "night" field.
func (m *PrescriptionMutation) SetNight(b bool) {
	m.night = &b
}

// Night returns the value of the "night" field in the mutation.
func (m *PrescriptionMutation) Night() (r bool, exists bool) {
	v := m.night
	if v == nil {
		return
	}
	return *v, true
}

// OldNight returns the old "night" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldNight(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNight: %w", err)
	}
	return oldValue.Night, nil
}

// ResetNight resets all changes to the "night" field.
func (m *PrescriptionMutation) ResetNight() {
	m.night = nil
}

// SetDoctorName sets the "doctor_name" field.
func (m *PrescriptionMutation) SetDoctorName(s string) {
	m.doctor_name = &s
}

// DoctorName returns the value of the "doctor_name" field in the mutation.
func (m *PrescriptionMutation) DoctorName() (r string, exists bool) {
	v := m.doctor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorName returns the old "doctor_name" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldDoctorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorName: %w", err)
	}
	return oldValue.DoctorName, nil
}

// ClearDoctorName clears the value of the "doctor_name" field.
func (m *PrescriptionMutation) ClearDoctorName() {
	m.doctor_name = nil
	m.clearedFields[prescription.FieldDoctorName] = struct{}{}
}

// DoctorNameCleared returns if the "doctor_name" field was cleared in this mutation.
func (m *PrescriptionMutation) DoctorNameCleared() bool {
	_, ok := m.clearedFields[prescription.FieldDoctorName]
	return ok
}

// ResetDoctorName resets all changes to the "doctor_name" field.
func (m *PrescriptionMutation) ResetDoctorName() {
	m.doctor_name = nil
	delete(m.clearedFields, prescription.FieldDoctorName)
}

// SetPrescribedOn sets the "prescribed_on" field.
func (m *PrescriptionMutation) SetPrescribedOn(t time.Time) {
	m.prescribed_on = &t
}

// PrescribedOn returns the value of the "prescribed_on" field in the mutation.
func (m *PrescriptionMutation) PrescribedOn() (r time.Time, exists bool) {
	v := m.prescribed_on
	if v == nil {
		return
	}
	return *v, true
}

// OldPrescribedOn returns the old "prescribed_on" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldPrescribedOn(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrescribedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrescribedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrescribedOn: %w", err)
	}
	return oldValue.PrescribedOn, nil
}

// ClearPrescribedOn clears the value of the "prescribed_on" field.
func (m *PrescriptionMutation) ClearPrescribedOn() {
	m.prescribed_on = nil
	m.clearedFields[prescription.FieldPrescribedOn] = struct{}{}
}

// PrescribedOnCleared returns if the "prescribed_on" field was cleared in this mutation.
func (m *PrescriptionMutation) PrescribedOnCleared() bool {
	_, ok := m.clearedFields[prescription.FieldPrescribedOn]
	return ok
}

// ResetPrescribedOn resets all changes to the "prescribed_on" field.
func (m *PrescriptionMutation) ResetPrescribedOn() {
	m.prescribed_on = nil
	delete(m.clearedFields, prescription.FieldPrescribedOn)
}

// SetSourceURL sets the "source_url" field.
func (m *PrescriptionMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *PrescriptionMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *PrescriptionMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PrescriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PrescriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PrescriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAdherenceEntryIDs adds the "adherence_entries" edge to the AdherenceEntry entity by ids.
func (m *PrescriptionMutation) AddAdherenceEntryIDs(ids ...uuid.UUID) {
	if m.adherence_entries == nil {
		m.adherence_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.adherence_entries[ids[i]] = struct{}{}
	}
}

// ClearAdherenceEntries clears the "adherence_entries" edge to the AdherenceEntry entity.
func (m *PrescriptionMutation) ClearAdherenceEntries() {
	m.clearedadherence_entries = true
}

// AdherenceEntriesCleared reports if the "adherence_entries" edge to the AdherenceEntry entity was cleared.
func (m *PrescriptionMutation) AdherenceEntriesCleared() bool {
	return m.clearedadherence_entries
}

// RemoveAdherenceEntryIDs removes the "adherence_entries" edge to the AdherenceEntry entity by IDs.
func (m *PrescriptionMutation) RemoveAdherenceEntryIDs(ids ...uuid.UUID) {
	if m.removedadherence_entries == nil {
		m.removedadherence_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.adherence_entries, ids[i])
		m.removedadherence_entries[ids[i]] = struct{}{}
	}
}

// RemovedAdherenceEntries returns the removed IDs of the "adherence_entries" edge to the AdherenceEntry entity.
func (m *PrescriptionMutation) RemovedAdherenceEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedadherence_entries {
		ids = append(ids, id)
	}
	return
}

// AdherenceEntriesIDs returns the "adherence_entries" edge IDs in the mutation.
func (m *PrescriptionMutation) AdherenceEntriesIDs() (ids []uuid.UUID) {
	for id := range m.adherence_entries {
		ids = append(ids, id)
	}
	return
}

// ResetAdherenceEntries resets all changes to the "adherence_entries" edge.
func (m *PrescriptionMutation) ResetAdherenceEntries() {
	m.adherence_entries = nil
	m.clearedadherence_entries = false
	m.removedadherence_entries = nil
}

// Where appends a list predicates to the PrescriptionMutation builder.
func (m *PrescriptionMutation) Where(ps ...predicate.Prescription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PrescriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PrescriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prescription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PrescriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PrescriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prescription).
func (m *PrescriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PrescriptionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.group_id != nil {
		fields = append(fields, prescription.FieldGroupID)
	}
	if m.patient_id != nil {
		fields = append(fields, prescription.FieldPatientID)
	}
	if m.medicine_name != nil {
		fields = append(fields, prescription.FieldMedicineName)
	}
	if m.food_instruction != nil {
		fields = append(fields, prescription.FieldFoodInstruction)
	}
	if m.start_date != nil {
		fields = append(fields, prescription.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, prescription.FieldEndDate)
	}
	if m.notes != nil {
		fields = append(fields, prescription.FieldNotes)
	}
	if m.morning != nil {
		fields = append(fields, prescription.FieldMorning)
	}
	if m.afternoon != nil {
		fields = append(fields, prescription.FieldAfternoon)
	}
	if m.evening != nil {
		fields = append(fields, prescription.FieldEvening)
	}
	if m.night != nil {
		fields = append(fields, prescription.FieldNight)
	}
	if m.doctor_name != nil {
		fields = append(fields, prescription.FieldDoctorName)
	}
	if m.prescribed_on != nil {
		fields = append(fields, prescription.FieldPrescribedOn)
	}
	if m.source_url != nil {
		fields = append(fields, prescription.FieldSourceURL)
	}
	if m.created_at != nil {
		fields = append(fields, prescription.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PrescriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prescription.FieldGroupID:
		return m.GroupID()
	case prescription.FieldPatientID:
		return m.PatientID()
	case prescription.FieldMedicineName:
		return m.MedicineName()
	case prescription.FieldFoodInstruction:
		return m.FoodInstruction()
	case prescription.FieldStartDate:
		return m.StartDate()
	case prescription.FieldEndDate:
		return m.EndDate()
	case prescription.FieldNotes:
		return m.Notes()
	case prescription.FieldMorning:
		return m.Morning()
	case prescription.FieldAfternoon:
		return m.Afternoon()
	case prescription.FieldEvening:
		return m.Evening()
	case prescription.FieldNight:
		return m.Night()
	case prescription.FieldDoctorName:
		return m.DoctorName()
	case prescription.FieldPrescribedOn:
		return m.PrescribedOn()
	case prescription.FieldSourceURL:
		return m.SourceURL()
	case prescription.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PrescriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prescription.FieldGroupID:
		return m.OldGroupID(ctx)
	case prescription.FieldPatientID:
		return m.OldPatientID(ctx)
	case prescription.FieldMedicineName:
		return m.OldMedicineName(ctx)
	case prescription.FieldFoodInstruction:
		return m.OldFoodInstruction(ctx)
	case prescription.FieldStartDate:
		return m.OldStartDate(ctx)
	case prescription.FieldEndDate:
		return m.OldEndDate(ctx)
	case prescription.FieldNotes:
		return m.OldNotes(ctx)
	case prescription.FieldMorning:
		return m.OldMorning(ctx)
	case prescription.FieldAfternoon:
		return m.OldAfternoon(ctx)
	case prescription.FieldEvening:
		return m.OldEvening(ctx)
	case prescription.FieldNight:
		return m.OldNight(ctx)
	case prescription.FieldDoctorName:
		return m.OldDoctorName(ctx)
	case prescription.FieldPrescribedOn:
		return m.OldPrescribedOn(ctx)
	case prescription.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case prescription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prescription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PrescriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prescription.FieldGroupID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case prescription.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case prescription.FieldMedicineName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicineName(v)
		return nil
	case prescription.FieldFoodInstruction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFoodInstruction(v)
		return nil
	case prescription.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case prescription.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case prescription.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case prescription.FieldMorning:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMorning(v)
		return nil
	case prescription.FieldAfternoon:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfternoon(v)
		return nil
	case prescription.FieldEvening:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvening(v)
		return nil
	case prescription.FieldNight:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNight(v)
		return nil
	case prescription.FieldDoctorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorName(v)
		return nil
	case prescription.FieldPrescribedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrescribedOn(v)
		return nil
	case prescription.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case prescription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prescription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PrescriptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PrescriptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PrescriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Prescription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PrescriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prescription.FieldFoodInstruction) {
		fields = append(fields, prescription.FieldFoodInstruction)
	}
	if m.FieldCleared(prescription.FieldNotes) {
		fields = append(fields, prescription.FieldNotes)
	}
	if m.FieldCleared(prescription.FieldDoctorName) {
		fields = append(fields, prescription.FieldDoctorName)
	}
	if m.FieldCleared(prescription.FieldPrescribedOn) {
		fields = append(fields, prescription.FieldPrescribedOn)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PrescriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PrescriptionMutation) ClearField(name string) error {
	switch name {
	case prescription.FieldFoodInstruction:
		m.ClearFoodInstruction()
		return nil
	case prescription.FieldNotes:
		m.ClearNotes()
		return nil
	case prescription.FieldDoctorName:
		m.ClearDoctorName()
		return nil
	case prescription.FieldPrescribedOn:
		m.ClearPrescribedOn()
		return nil
	}
	return fmt.Errorf("unknown Prescription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PrescriptionMutation) ResetField(name string) error {
	switch name {
	case prescription.FieldGroupID:
		m.ResetGroupID()
		return nil
	case prescription.FieldPatientID:
		m.ResetPatientID()
		return nil
	case prescription.FieldMedicineName:
		m.ResetMedicineName()
		return nil
	case prescription.FieldFoodInstruction:
		m.ResetFoodInstruction()
		return nil
	case prescription.FieldStartDate:
		m.ResetStartDate()
		return nil
	case prescription.FieldEndDate:
		m.ResetEndDate()
		return nil
	case prescription.FieldNotes:
		m.ResetNotes()
		return nil
	case prescription.FieldMorning:
		m.ResetMorning()
		return nil
	case prescription.FieldAfternoon:
		m.ResetAfternoon()
		return nil
	case prescription.FieldEvening:
		m.ResetEvening()
		return nil
	case prescription.FieldNight:
		m.ResetNight()
		return nil
	case prescription.FieldDoctorName:
		m.ResetDoctorName()
		return nil
	case prescription.FieldPrescribedOn:
		m.ResetPrescribedOn()
		return nil
	case prescription.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case prescription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prescription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PrescriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.adherence_entries != nil {
		edges = append(edges, prescription.EdgeAdherenceEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PrescriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case prescription.EdgeAdherenceEntries:
		ids := make([]ent.Value, 0, len(m.adherence_entries))
		for id := range m.adherence_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PrescriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedadherence_entries != nil {
		edges = append(edges, prescription.EdgeAdherenceEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PrescriptionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case prescription.EdgeAdherenceEntries:
		ids := make([]ent.Value, 0, len(m.removedadherence_entries))
		for id := range m.removedadherence_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PrescriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedadherence_entries {
		edges = append(edges, prescription.EdgeAdherenceEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PrescriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case prescription.EdgeAdherenceEntries:
		return m.clearedadherence_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PrescriptionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Prescription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PrescriptionMutation) ResetEdge(name string) error {
	switch name {
	case prescription.EdgeAdherenceEntries:
		m.ResetAdherenceEntries()
		return nil
	}
	return fmt.Errorf("unknown Prescription edge %s", name)
}

// TestResultMutation represents an operation that mutates the TestResult nodes in the graph.
type TestResultMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	test_id        *uuid.UUID
	patient_id     *uuid.UUID
	test_date      *time.Time
	component_name *string
	value_num      *float64
	addvalue_num   *float64
	value_text     *string
	unit           *string
	normal_min     *float64
	addnormal_min  *float64
	normal_max     *float64
	addnormal_max  *float64
	normal_text    *string
	source_url     *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TestResult, error)
	predicates     []predicate.TestResult
}

var _ ent.Mutation = (*TestResultMutation)(nil)

// testresultOption allows management of the mutation configuration using functional options.
type testresultOption func(*TestResultMutation)

// newTestResultMutation creates new mutation for the TestResult entity.
func newTestResultMutation(c config, op Op, opts ...testresultOption) *TestResultMutation {
	m := &TestResultMutation{
		config:        c,
		op:            op,
		typ:           TypeTestResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestResultID sets the ID field of the mutation.
func withTestResultID(id uuid.UUID) testresultOption {
	return func(m *TestResultMutation) {
		var (
			err   error
			once  sync.Once
			value *TestResult
		)
		m.oldValue = func(ctx context.Context) (*TestResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestResult sets the old TestResult of the mutation.
func withTestResult(node *TestResult) testresultOption {
	return func(m *TestResultMutation) {
		m.oldValue = func(context.Context) (*TestResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TestResult entities.
func (m *TestResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTestID sets the "test_id" field.
func (m *TestResultMutation) SetTestID(u uuid.UUID) {
	m.test_id = &u
}

// TestID returns the value of the "test_id" field in the mutation.
func (m *TestResultMutation) TestID() (r uuid.UUID, exists bool) {
	v := m.test_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTestID returns the old "test_id" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldTestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestID: %w", err)
	}
	return oldValue.TestID, nil
}

// ResetTestID resets all changes to the "test_id" field.
func (m *TestResultMutation) ResetTestID() {
	m.test_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *TestResultMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *TestResultMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *TestResultMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetTestDate sets the "test_date" field.
func (m *TestResultMutation) SetTestDate(t time.Time) {
	m.test_date = &t
}

// TestDate returns the value of the "test_date" field in the mutation.
func (m *TestResultMutation) TestDate() (r time.Time, exists bool) {
	v := m.test_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTestDate returns the old "test_date" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldTestDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestDate: %w", err)
	}
	return oldValue.TestDate, nil
}

// ResetTestDate resets all changes to the "test_date" field.
func (m *TestResultMutation) ResetTestDate() {
	m.test_date = nil
}

// SetComponentName sets the "component_name" field.
func (m *TestResultMutation) SetComponentName(s string) {
	m.component_name = &s
}

// ComponentName returns the value of the "component_name" field in the mutation.
func (m *TestResultMutation) ComponentName() (r string, exists bool) {
	v := m.component_name
	if v == nil {
		return
	}
	return *v, true
}

// OldComponentName returns the old "component_name" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldComponentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComponentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComponentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComponentName: %w", err)
	}
	return oldValue.ComponentName, nil
}

// ResetComponentName resets all changes to the "component_name" field.
func (m *TestResultMutation) ResetComponentName() {
	m.component_name = nil
}

// SetValueNum sets the "value_num" field.
func (m *TestResultMutation) SetValueNum(f float64) {
	m.value_num = &f
	m.addvalue_num = nil
}

// ValueNum returns the value of the "value_num" field in the mutation.
func (m *TestResultMutation) ValueNum() (r float64, exists bool) {
	v := m.value_num
	if v == nil {
		return
	}
	return *v, true
}

// OldValueNum returns the old "value_num" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldValueNum(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueNum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueNum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueNum: %w", err)
	}
	return oldValue.ValueNum, nil
}

// AddValueNum adds f to the "value_num" field.
func (m *TestResultMutation) AddValueNum(f float64) {
	if m.addvalue_num != nil {
		*m.addvalue_num += f
	} else {
		m.addvalue_num = &f
	}
}

// AddedValueNum returns the value that was added to the "value_num" field in this mutation.
func (m *TestResultMutation) AddedValueNum() (r float64, exists bool) {
	v := m.addvalue_num
	if v == nil {
		return
	}
	return *v, true
}

// ClearValueNum clears the value of the "value_num" field.
func (m *TestResultMutation) ClearValueNum() {
	m.value_num = nil
	m.addvalue_num = nil
	m.clearedFields[testresult.FieldValueNum] = struct{}{}
}

// ValueNumCleared returns if the "value_num" field was cleared in this mutation.
func (m *TestResultMutation) ValueNumCleared() bool {
	_, ok := m.clearedFields[testresult.FieldValueNum]
	return ok
}

// ResetValueNum resets all changes to the "value_num" field.
func (m *TestResultMutation) ResetValueNum() {
	m.value_num = nil
	m.addvalue_num = nil
	delete(m.clearedFields, testresult.FieldValueNum)
}

// SetValueText sets the "value_text" field.
func (m *TestResultMutation) SetValueText(s string) {
	m.value_text = &s
}

// ValueText returns the value of the "value_text" field in the mutation.
func (m *TestResultMutation) ValueText() (r string, exists bool) {
	v := m.value_text
	if v == nil {
		return
	}
	return *v, true
}

// OldValueText returns the old "value_text" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldValueText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueText: %w", err)
	}
	return oldValue.ValueText, nil
}

// ClearValueText clears the value of the "value_text" field.
func (m *TestResultMutation) ClearValueText() {
	m.value_text = nil
	m.clearedFields[testresult.FieldValueText] = struct{}{}
}

// ValueTextCleared returns if the "value_text" field was cleared in this mutation.
func (m *TestResultMutation) ValueTextCleared() bool {
	_, ok := m.clearedFields[testresult.FieldValueText]
	return ok
}

// ResetValueText resets all changes to the "value_text" field.
func (m *TestResultMutation) ResetValueText() {
	m.value_text = nil
	delete(m.clearedFields, testresult.FieldValueText)
}

// SetUnit sets the "unit" field.
func (m *TestResultMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *TestResultMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *TestResultMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[testresult.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *TestResultMutation) UnitCleared() bool {
	_, ok := m.clearedFields[testresult.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *TestResultMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, testresult.FieldUnit)
}

// SetNormalMin sets the "normal_min" field.
func (m *TestResultMutation) SetNormalMin(f float64) {
	m.normal_min = &f
	m.addnormal_min = nil
}

// NormalMin returns the value of the "normal_min" field in the mutation.
func (m *TestResultMutation) NormalMin() (r float64, exists bool) {
	v := m.normal_min
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalMin returns the old "normal_min" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldNormalMin(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalMin: %w", err)
	}
	return oldValue.NormalMin, nil
}

// AddNormalMin adds f to the "normal_min" field.
func (m *TestResultMutation) AddNormalMin(f float64) {
	if m.addnormal_min != nil {
		*m.addnormal_min += f
	} else {
		m.addnormal_min = &f
	}
}

// AddedNormalMin returns the value that was added to the "normal_min" field in this mutation.
func (m *TestResultMutation) AddedNormalMin() (r float64, exists bool) {
	v := m.addnormal_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearNormalMin clears the value of the "normal_min" field.
func (m *TestResultMutation) ClearNormalMin() {
	m.normal_min = nil
	m.addnormal_min = nil
	m.clearedFields[testresult.FieldNormalMin] = struct{}{}
}

// NormalMinCleared returns if the "normal_min" field was cleared in this mutation.
func (m *TestResultMutation) NormalMinCleared() bool {
	_, ok := m.clearedFields[testresult.FieldNormalMin]
	return ok
}

// ResetNormalMin resets all changes to the "normal_min" field.
func (m *TestResultMutation) ResetNormalMin() {
	m.normal_min = nil
	m.addnormal_min = nil
	delete(m.clearedFields, testresult.FieldNormalMin)
}

// SetNormalMax sets the "normal_max" field.
func (m *TestResultMutation) SetNormalMax(f float64) {
	m.normal_max = &f
	m.addnormal_max = nil
}

// NormalMax returns the value of the "normal_max" field in the mutation.
func (m *TestResultMutation) NormalMax() (r float64, exists bool) {
	v := m.normal_max
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalMax returns the old "normal_max" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldNormalMax(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalMax: %w", err)
	}
	return oldValue.NormalMax, nil
}

// AddNormalMax adds f to the "normal_max" field.
func (m *TestResultMutation) AddNormalMax(f float64) {
	if m.addnormal_max != nil {
		*m.addnormal_max += f
	} else {
		m.addnormal_max = &f
	}
}

// AddedNormalMax returns the value that was added to the "normal_max" field in this mutation.
func (m *TestResultMutation) AddedNormalMax() (r float64, exists bool) {
	v := m.addnormal_max
	if v == nil {
		return
	}
	return *v, true
}

// ClearNormalMax clears the value of the "normal_max" field.
func (m *TestResultMutation) ClearNormalMax() {
	m.normal_max = nil
	m.addnormal_max = nil
	m.clearedFields[testresult.FieldNormalMax] = struct{}{}
}

// NormalMaxCleared returns if the "normal_max" field was cleared in this mutation.
func (m *TestResultMutation) NormalMaxCleared() bool {
	_, ok := m.clearedFields[testresult.FieldNormalMax]
	return ok
}

// ResetNormalMax resets all changes to the "normal_max" field.
func (m *TestResultMutation) ResetNormalMax() {
	m.normal_max = nil
	m.addnormal_max = nil
	delete(m.clearedFields, testresult.FieldNormalMax)
}

// SetNormalText sets the "normal_text" field.
func (m *TestResultMutation) SetNormalText(s string) {
	m.normal_text = &s
}

// NormalText returns the value of the "normal_text" field in the mutation.
func (m *TestResultMutation) NormalText() (r string, exists bool) {
	v := m.normal_text
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalText returns the old "normal_text" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldNormalText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalText: %w", err)
	}
	return oldValue.NormalText, nil
}

// ClearNormalText clears the value of the "normal_text" field.
func (m *TestResultMutation) ClearNormalText() {
	m.normal_text = nil
	m.clearedFields[testresult.FieldNormalText] = struct{}{}
}

// NormalTextCleared returns if the "normal_text" field was cleared in this mutation.
func (m *TestResultMutation) NormalTextCleared() bool {
	_, ok := m.clearedFields[testresult.FieldNormalText]
	return ok
}

// ResetNormalText resets all changes to the "normal_text" field.
func (m *TestResultMutation) ResetNormalText() {
	m.normal_text = nil
	delete(m.clearedFields, testresult.FieldNormalText)
}

// SetSourceURL sets the "source_url" field.
func (m *TestResultMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *TestResultMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *TestResultMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TestResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TestResultMutation builder.
func (m *TestResultMutation) Where(ps ...predicate.TestResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestResult).
func (m *TestResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestResultMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.test_id != nil {
		fields = append(fields, testresult.FieldTestID)
	}
	if m.patient_id != nil {
		fields = append(fields, testresult.FieldPatientID)
	}
	if m.test_date != nil {
		fields = append(fields, testresult.FieldTestDate)
	}
	if m.component_name != nil {
		fields = append(fields, testresult.FieldComponentName)
	}
	if m.value_num != nil {
		fields = append(fields, testresult.FieldValueNum)
	}
	if m.value_text != nil {
		fields = append(fields, testresult.FieldValueText)
	}
	if m.unit != nil {
		fields = append(fields, testresult.FieldUnit)
	}
	if m.normal_min != nil {
		fields = append(fields, testresult.FieldNormalMin)
	}
	if m.normal_max != nil {
		fields = append(fields, testresult.FieldNormalMax)
	}
	if m.normal_text != nil {
		fields = append(fields, testresult.FieldNormalText)
	}
	if m.source_url != nil {
		fields = append(fields, testresult.FieldSourceURL)
	}
	if m.created_at != nil {
		fields = append(fields, testresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testresult.FieldTestID:
		return m.TestID()
	case testresult.FieldPatientID:
		return m.PatientID()
	case testresult.FieldTestDate:
		return m.TestDate()
	case testresult.FieldComponentName:
		return m.ComponentName()
	case testresult.FieldValueNum:
		return m.ValueNum()
	case testresult.FieldValueText:
		return m.ValueText()
	case testresult.FieldUnit:
		return m.Unit()
	case testresult.FieldNormalMin:
		return m.NormalMin()
	case testresult.FieldNormalMax:
		return m.NormalMax()
	case testresult.FieldNormalText:
		return m.NormalText()
	case testresult.FieldSourceURL:
		return m.SourceURL()
	case testresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testresult.FieldTestID:
		return m.OldTestID(ctx)
	case testresult.FieldPatientID:
		return m.OldPatientID(ctx)
	case testresult.FieldTestDate:
		return m.OldTestDate(ctx)
	case testresult.FieldComponentName:
		return m.OldComponentName(ctx)
	case testresult.FieldValueNum:
		return m.OldValueNum(ctx)
	case testresult.FieldValueText:
		return m.OldValueText(ctx)
	case testresult.FieldUnit:
		return m.OldUnit(ctx)
	case testresult.FieldNormalMin:
		return m.OldNormalMin(ctx)
	case testresult.FieldNormalMax:
		return m.OldNormalMax(ctx)
	case testresult.FieldNormalText:
		return m.OldNormalText(ctx)
	case testresult.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case testresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TestResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testresult.FieldTestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestID(v)
		return nil
	case testresult.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case testresult.FieldTestDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestDate(v)
		return nil
	case testresult.FieldComponentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComponentName(v)
		return nil
	case testresult.FieldValueNum:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueNum(v)
		return nil
	case testresult.FieldValueText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueText(v)
		return nil
	case testresult.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case testresult.FieldNormalMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalMin(v)
		return nil
	case testresult.FieldNormalMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalMax(v)
		return nil
	case testresult.FieldNormalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalText(v)
		return nil
	case testresult.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case testresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TestResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestResultMutation) AddedFields() []string {
	var fields []string
	if m.addvalue_num != nil {
		fields = append(fields, testresult.FieldValueNum)
	}
	if m.addnormal_min != nil {
		fields = append(fields, testresult.FieldNormalMin)
	}
	if m.addnormal_max != nil {
		fields = append(fields, testresult.FieldNormalMax)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testresult.FieldValueNum:
		return m.AddedValueNum()
	case testresult.FieldNormalMin:
		return m.AddedNormalMin()
	case testresult.FieldNormalMax:
		return m.AddedNormalMax()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testresult.FieldValueNum:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValueNum(v)
		return nil
	case testresult.FieldNormalMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNormalMin(v)
		return nil
	case testresult.FieldNormalMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNormalMax(v)
		return nil
	}
	return fmt.Errorf("unknown TestResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testresult.FieldValueNum) {
		fields = append(fields, testresult.FieldValueNum)
	}
	if m.FieldCleared(testresult.FieldValueText) {
		fields = append(fields, testresult.FieldValueText)
	}
	if m.FieldCleared(testresult.FieldUnit) {
		fields = append(fields, testresult.FieldUnit)
	}
	if m.FieldCleared(testresult.FieldNormalMin) {
		fields = append(fields, testresult.FieldNormalMin)
	}
	if m.FieldCleared(testresult.FieldNormalMax) {
		fields = append(fields, testresult.FieldNormalMax)
	}
	if m.FieldCleared(testresult.FieldNormalText) {
		fields = append(fields, testresult.FieldNormalText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestResultMutation) ClearField(name string) error {
	switch name {
	case testresult.FieldValueNum:
		m.ClearValueNum()
		return nil
	case testresult.FieldValueText:
		m.ClearValueText()
		return nil
	case testresult.FieldUnit:
		m.ClearUnit()
		return nil
	case testresult.FieldNormalMin:
		m.ClearNormalMin()
		return nil
	case testresult.FieldNormalMax:
		m.ClearNormalMax()
		return nil
	case testresult.FieldNormalText:
		m.ClearNormalText()
		return nil
	}
	return fmt.Errorf("unknown TestResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestResultMutation) ResetField(name string) error {
	switch name {
	case testresult.FieldTestID:
		m.ResetTestID()
		return nil
	case testresult.FieldPatientID:
		m.ResetPatientID()
		return nil
	case testresult.FieldTestDate:
		m.ResetTestDate()
		return nil
	case testresult.FieldComponentName:
		m.ResetComponentName()
		return nil
	case testresult.FieldValueNum:
		m.ResetValueNum()
		return nil
	case testresult.FieldValueText:
		m.ResetValueText()
		return nil
	case testresult.FieldUnit:
		m.ResetUnit()
		return nil
	case testresult.FieldNormalMin:
		m.ResetNormalMin()
		return nil
	case testresult.FieldNormalMax:
		m.ResetNormalMax()
		return nil
	case testresult.FieldNormalText:
		m.ResetNormalText()
		return nil
	case testresult.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case testresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TestResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TestResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TestResult edge %s", name)
}
