// Code generated by ent, DO NOT EDIT.

package prescription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/healthtrack-labs/healthtrack/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldID, id))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldGroupID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPatientID, v))
}

// MedicineName applies equality check predicate on the "medicine_name" field. It's identical to MedicineNameEQ.
func MedicineName(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldMedicineName, v))
}

// FoodInstruction applies equality check predicate on the "food_instruction" field. It's identical to FoodInstructionEQ.
func FoodInstruction(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldFoodInstruction, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldEndDate, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldNotes, v))
}

// Morning applies equality check predicate on the "morning" field. It's identical to MorningEQ.
func Morning(v bool) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldMorning, v))
}

// Afternoon applies equality check predicate on the "afternoon" field. It's identical to AfternoonEQ.
func Afternoon(v bool) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldAfternoon, v))
}

// Evening applies equality check predicate on the "evening" field. It's identical to EveningEQ.
func Evening(v bool) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldEvening, v))
}

// Night applies equality check predicate on the "night" field. It's identical to NightEQ.
func Night(v bool) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldNight, v))
}

// DoctorName applies equality check predicate on the "doctor_name" field. It's identical to DoctorNameEQ.
func DoctorName(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDoctorName, v))
}

// PrescribedOn applies equality check predicate on the "prescribed_on" field. It's identical to PrescribedOnEQ.
func PrescribedOn(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPrescribedOn, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldSourceURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldCreatedAt, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldGroupID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldPatientID, v))
}

// MedicineNameEQ applies the EQ predicate on the "medicine_name" field.
func MedicineNameEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldMedicineName, v))
}

// MedicineNameNEQ applies the NEQ predicate on the "medicine_name" field.
func MedicineNameNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldMedicineName, v))
}

// MedicineNameIn applies the In predicate on the "medicine_name" field.
func MedicineNameIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldMedicineName, vs...))
}

// MedicineNameNotIn applies the NotIn predicate on the "medicine_name" field.
func MedicineNameNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldMedicineName, vs...))
}

// MedicineNameGT applies the GT predicate on the "medicine_name" field.
func MedicineNameGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldMedicineName, v))
}

// MedicineNameGTE applies the GTE predicate on the "medicine_name" field.
func MedicineNameGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldMedicineName, v))
}

// MedicineNameLT applies the LT predicate on the "medicine_name" field.
func MedicineNameLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldMedicineName, v))
}

// MedicineNameLTE applies the LTE predicate on the "medicine_name" field.
func MedicineNameLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldMedicineName, v))
}

// MedicineNameContains applies the Contains predicate on the "medicine_name" field.
func MedicineNameContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldMedicineName, v))
}

// MedicineNameHasPrefix applies the HasPrefix predicate on the "medicine_name" field.
func MedicineNameHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldMedicineName, v))
}

// MedicineNameHasSuffix applies the HasSuffix predicate on the "medicine_name" field.
func MedicineNameHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldMedicineName, v))
}

// MedicineNameEqualFold applies the EqualFold predicate on the "medicine_name" field.
func MedicineNameEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldMedicineName, v))
}

// MedicineNameContainsFold applies the ContainsFold predicate on the "medicine_name" field.
func MedicineNameContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldMedicineName, v))
}

// FoodInstructionEQ applies the EQ predicate on the "food_instruction" field.
func FoodInstructionEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldFoodInstruction, v))
}

// FoodInstructionNEQ applies the NEQ predicate on the "food_instruction" field.
func FoodInstructionNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldFoodInstruction, v))
}

// FoodInstructionIn applies the In predicate on the "food_instruction" field.
func FoodInstructionIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldFoodInstruction, vs...))
}

// FoodInstructionNotIn applies the NotIn predicate on the "food_instruction" field.
func FoodInstructionNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldFoodInstruction, vs...))
}

// FoodInstructionGT applies the GT predicate on the "food_instruction" field.
func FoodInstructionGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldFoodInstruction, v))
}

// FoodInstructionGTE applies the GTE predicate on the "food_instruction" field.
func FoodInstructionGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldFoodInstruction, v))
}

// FoodInstructionLT applies the LT predicate on the "food_instruction" field.
func FoodInstructionLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldFoodInstruction, v))
}

// FoodInstructionLTE applies the LTE predicate on the "food_instruction" field.
func FoodInstructionLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldFoodInstruction, v))
}

// FoodInstructionContains applies the Contains predicate on the "food_instruction" field.
func FoodInstructionContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldFoodInstruction, v))
}

// FoodInstructionHasPrefix applies the HasPrefix predicate on the "food_instruction" field.
func FoodInstructionHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldFoodInstruction, v))
}

// FoodInstructionHasSuffix applies the HasSuffix predicate on the "food_instruction" field.
func FoodInstructionHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldFoodInstruction, v))
}

// FoodInstructionIsNil applies the IsNil predicate on the "food_instruction" field.
func FoodInstructionIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldFoodInstruction))
}

// FoodInstructionNotNil applies the NotNil predicate on the "food_instruction" field.
func FoodInstructionNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldFoodInstruction))
}

// FoodInstructionEqualFold applies the EqualFold predicate on the "food_instruction" field.
func FoodInstructionEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldFoodInstruction, v))
}

// FoodInstructionContainsFold applies the ContainsFold predicate on the "food_instruction" field.
func FoodInstructionContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldFoodInstruction, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldStartDate, v))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldEndDate, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldNotes, v))
}

// MorningEQ applies the EQ predicate on the "morning" field.
func MorningEQ(v bool) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldMorning, v))
}

// MorningNEQ applies the NEQ predicate on the "morning" field.
func MorningNEQ(v bool) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldMorning, v))
}

// AfternoonEQ applies the EQ predicate on the "afternoon" field.
func AfternoonEQ(v bool) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldAfternoon, v))
}

// AfternoonNEQ applies the NEQ predicate on the "afternoon" field.
func AfternoonNEQ(v bool) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldAfternoon, v))
}

// EveningEQ applies the EQ predicate on the "evening" field.
func EveningEQ(v bool) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldEvening, v))
}

// EveningNEQ applies the NEQ predicate on the "evening" field.
func EveningNEQ(v bool) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldEvening, v))
}

// NightEQ applies the EQ predicate on the "night" field.
func NightEQ(v bool) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldNight, v))
}

// NightNEQ applies the NEQ predicate on the "night" field.
func NightNEQ(v bool) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldNight, v))
}

// DoctorNameEQ applies the EQ predicate on the "doctor_name" field.
func DoctorNameEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDoctorName, v))
}

// DoctorNameNEQ applies the NEQ predicate on the "doctor_name" field.
func DoctorNameNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldDoctorName, v))
}

// DoctorNameIn applies the In predicate on the "doctor_name" field.
func DoctorNameIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldDoctorName, vs...))
}

// DoctorNameNotIn applies the NotIn predicate on the "doctor_name" field.
func DoctorNameNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldDoctorName, vs...))
}

// DoctorNameGT applies the GT predicate on the "doctor_name" field.
func DoctorNameGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldDoctorName, v))
}

// DoctorNameGTE applies the GTE predicate on the "doctor_name" field.
func DoctorNameGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldDoctorName, v))
}

// DoctorNameLT applies the LT predicate on the "doctor_name" field.
func DoctorNameLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldDoctorName, v))
}

// DoctorNameLTE applies the LTE predicate on the "doctor_name" field.
func DoctorNameLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldDoctorName, v))
}

// DoctorNameContains applies the Contains predicate on the "doctor_name" field.
func DoctorNameContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldDoctorName, v))
}

// DoctorNameHasPrefix applies the HasPrefix predicate on the "doctor_name" field.
func DoctorNameHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldDoctorName, v))
}

// DoctorNameHasSuffix applies the HasSuffix predicate on the "doctor_name" field.
func DoctorNameHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldDoctorName, v))
}

// DoctorNameIsNil applies the IsNil predicate on the "doctor_name" field.
func DoctorNameIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldDoctorName))
}

// DoctorNameNotNil applies the NotNil predicate on the "doctor_name" field.
func DoctorNameNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldDoctorName))
}

// DoctorNameEqualFold applies the EqualFold predicate on the "doctor_name" field.
func DoctorNameEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldDoctorName, v))
}

// DoctorNameContainsFold applies the ContainsFold predicate on the "doctor_name" field.
func DoctorNameContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldDoctorName, v))
}

// PrescribedOnEQ applies the EQ predicate on the "prescribed_on" field.
func PrescribedOnEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPrescribedOn, v))
}

// PrescribedOnNEQ applies the NEQ predicate on the "prescribed_on" field.
func PrescribedOnNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldPrescribedOn, v))
}

// PrescribedOnIn applies the In predicate on the "prescribed_on" field.
func PrescribedOnIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldPrescribedOn, vs...))
}

// PrescribedOnNotIn applies the NotIn predicate on the "prescribed_on" field.
func PrescribedOnNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldPrescribedOn, vs...))
}

// PrescribedOnGT applies the GT predicate on the "prescribed_on" field.
func PrescribedOnGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldPrescribedOn, v))
}

// PrescribedOnGTE applies the GTE predicate on the "prescribed_on" field.
func PrescribedOnGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldPrescribedOn, v))
}

// PrescribedOnLT applies the LT predicate on the "prescribed_on" field.
func PrescribedOnLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldPrescribedOn, v))
}

// PrescribedOnLTE applies the LTE predicate on the "prescribed_on" field.
func PrescribedOnLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldPrescribedOn, v))
}

// PrescribedOnIsNil applies the IsNil predicate on the "prescribed_on" field.
func PrescribedOnIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldPrescribedOn))
}

// PrescribedOnNotNil applies the NotNil predicate on the "prescribed_on" field.
func PrescribedOnNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldPrescribedOn))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldSourceURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAdherenceEntries applies the HasEdge predicate on the "adherence_entries" edge.
func HasAdherenceEntries() predicate.Prescription {
	return predicate.Prescription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AdherenceEntriesTable, AdherenceEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAdherenceEntriesWith applies the HasEdge predicate on the "adherence_entries" edge with a given conditions (other predicates).
func HasAdherenceEntriesWith(preds ...predicate.AdherenceEntry) predicate.Prescription {
	return predicate.Prescription(func(s *sql.Selector) {
		step := newAdherenceEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Prescription) predicate.Prescription {
	return predicate.Prescription(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Prescription) predicate.Prescription {
	return predicate.Prescription(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Prescription) predicate.Prescription {
	return predicate.Prescription(sql.NotPredicates(p))
}
