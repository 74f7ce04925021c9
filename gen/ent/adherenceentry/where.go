// Code generated by ent, DO NOT EDIT.

package adherenceentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/healthtrack-labs/healthtrack/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldLTE(FieldID, id))
}

// PrescriptionID applies equality check predicate on the "prescription_id" field. It's identical to PrescriptionIDEQ.
func PrescriptionID(v uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldPrescriptionID, v))
}

// MedicineName applies equality check predicate on the "medicine_name" field. It's identical to MedicineNameEQ.
func MedicineName(v string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldMedicineName, v))
}

// EntryDate applies equality check predicate on the "entry_date" field. It's identical to EntryDateEQ.
func EntryDate(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldEntryDate, v))
}

// Morning applies equality check predicate on the "morning" field. It's identical to MorningEQ.
func Morning(v bool) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldMorning, v))
}

// Afternoon applies equality check predicate on the "afternoon" field. It's identical to AfternoonEQ.
func Afternoon(v bool) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldAfternoon, v))
}

// Evening applies equality check predicate on the "evening" field. It's identical to EveningEQ.
func Evening(v bool) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldEvening, v))
}

// Night applies equality check predicate on the "night" field. It's identical to NightEQ.
func Night(v bool) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldNight, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// PrescriptionIDEQ applies the EQ predicate on the "prescription_id" field.
func PrescriptionIDEQ(v uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldPrescriptionID, v))
}

// PrescriptionIDNEQ applies the NEQ predicate on the "prescription_id" field.
func PrescriptionIDNEQ(v uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNEQ(FieldPrescriptionID, v))
}

// PrescriptionIDIn applies the In predicate on the "prescription_id" field.
func PrescriptionIDIn(vs ...uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldIn(FieldPrescriptionID, vs...))
}

// PrescriptionIDNotIn applies the NotIn predicate on the "prescription_id" field.
func PrescriptionIDNotIn(vs ...uuid.UUID) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNotIn(FieldPrescriptionID, vs...))
}

// MedicineNameEQ applies the EQ predicate on the "medicine_name" field.
func MedicineNameEQ(v string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldMedicineName, v))
}

// MedicineNameNEQ applies the NEQ predicate on the "medicine_name" field.
func MedicineNameNEQ(v string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNEQ(FieldMedicineName, v))
}

// MedicineNameIn applies the In predicate on the "medicine_name" field.
func MedicineNameIn(vs ...string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldIn(FieldMedicineName, vs...))
}

// MedicineNameNotIn applies the NotIn predicate on the "medicine_name" field.
func MedicineNameNotIn(vs ...string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNotIn(FieldMedicineName, vs...))
}

// MedicineNameGT applies the GT predicate on the "medicine_name" field.
func MedicineNameGT(v string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldGT(FieldMedicineName, v))
}

// MedicineNameGTE applies the GTE predicate on the "medicine_name" field.
func MedicineNameGTE(v string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldGTE(FieldMedicineName, v))
}

// MedicineNameLT applies the LT predicate on the "medicine_name" field.
func MedicineNameLT(v string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldLT(FieldMedicineName, v))
}

// MedicineNameLTE applies the LTE predicate on the "medicine_name" field.
func MedicineNameLTE(v string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldLTE(FieldMedicineName, v))
}

// MedicineNameContains applies the Contains predicate on the "medicine_name" field.
func MedicineNameContains(v string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldContains(FieldMedicineName, v))
}

// MedicineNameHasPrefix applies the HasPrefix predicate on the "medicine_name" field.
func MedicineNameHasPrefix(v string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldHasPrefix(FieldMedicineName, v))
}

// MedicineNameHasSuffix applies the HasSuffix predicate on the "medicine_name" field.
func MedicineNameHasSuffix(v string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldHasSuffix(FieldMedicineName, v))
}

// MedicineNameEqualFold applies the EqualFold predicate on the "medicine_name" field.
func MedicineNameEqualFold(v string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEqualFold(FieldMedicineName, v))
}

// MedicineNameContainsFold applies the ContainsFold predicate on the "medicine_name" field.
func MedicineNameContainsFold(v string) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldContainsFold(FieldMedicineName, v))
}

// EntryDateEQ applies the EQ predicate on the "entry_date" field.
func EntryDateEQ(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldEntryDate, v))
}

// EntryDateNEQ applies the NEQ predicate on the "entry_date" field.
func EntryDateNEQ(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNEQ(FieldEntryDate, v))
}

// EntryDateIn applies the In predicate on the "entry_date" field.
func EntryDateIn(vs ...time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldIn(FieldEntryDate, vs...))
}

// EntryDateNotIn applies the NotIn predicate on the "entry_date" field.
func EntryDateNotIn(vs ...time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNotIn(FieldEntryDate, vs...))
}

// EntryDateGT applies the GT predicate on the "entry_date" field.
func EntryDateGT(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldGT(FieldEntryDate, v))
}

// EntryDateGTE applies the GTE predicate on the "entry_date" field.
func EntryDateGTE(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldGTE(FieldEntryDate, v))
}

// EntryDateLT applies the LT predicate on the "entry_date" field.
func EntryDateLT(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldLT(FieldEntryDate, v))
}

// EntryDateLTE applies the LTE predicate on the "entry_date" field.
func EntryDateLTE(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldLTE(FieldEntryDate, v))
}

// MorningEQ applies the EQ predicate on the "morning" field.
func MorningEQ(v bool) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldMorning, v))
}

// MorningNEQ applies the NEQ predicate on the "morning" field.
func MorningNEQ(v bool) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNEQ(FieldMorning, v))
}

// MorningIsNil applies the IsNil predicate on the "morning" field.
func MorningIsNil() predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldIsNull(FieldMorning))
}

// MorningNotNil applies the NotNil predicate on the "morning" field.
func MorningNotNil() predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNotNull(FieldMorning))
}

// AfternoonEQ applies the EQ predicate on the "afternoon" field.
func AfternoonEQ(v bool) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldAfternoon, v))
}

// AfternoonNEQ applies the NEQ predicate on the "afternoon" field.
func AfternoonNEQ(v bool) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNEQ(FieldAfternoon, v))
}

// AfternoonIsNil applies the IsNil predicate on the "afternoon" field.
func AfternoonIsNil() predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldIsNull(FieldAfternoon))
}

// AfternoonNotNil applies the NotNil predicate on the "afternoon" field.
func AfternoonNotNil() predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNotNull(FieldAfternoon))
}

// EveningEQ applies the EQ predicate on the "evening" field.
func EveningEQ(v bool) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldEvening, v))
}

// EveningNEQ applies the NEQ predicate on the "evening" field.
func EveningNEQ(v bool) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNEQ(FieldEvening, v))
}

// EveningIsNil applies the IsNil predicate on the "evening" field.
func EveningIsNil() predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldIsNull(FieldEvening))
}

// EveningNotNil applies the NotNil predicate on the "evening" field.
func EveningNotNil() predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNotNull(FieldEvening))
}

// NightEQ applies the EQ predicate on the "night" field.
func NightEQ(v bool) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldNight, v))
}

// NightNEQ applies the NEQ predicate on the "night" field.
func NightNEQ(v bool) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNEQ(FieldNight, v))
}

// NightIsNil applies the IsNil predicate on the "night" field.
func NightIsNil() predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldIsNull(FieldNight))
}

// NightNotNil applies the NotNil predicate on the "night" field.
func NightNotNil() predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNotNull(FieldNight))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPrescription applies the HasEdge predicate on the "prescription" edge.
func HasPrescription() predicate.AdherenceEntry {
	return predicate.AdherenceEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PrescriptionTable, PrescriptionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPrescriptionWith applies the HasEdge predicate on the "prescription" edge with a given conditions (other predicates).
func HasPrescriptionWith(preds ...predicate.Prescription) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(func(s *sql.Selector) {
		step := newPrescriptionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdherenceEntry) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdherenceEntry) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdherenceEntry) predicate.AdherenceEntry {
	return predicate.AdherenceEntry(sql.NotPredicates(p))
}
