// Code generated by ent, DO NOT EDIT.

package imagingresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/healthtrack-labs/healthtrack/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLTE(FieldID, id))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldPatientID, v))
}

// TestDate applies equality check predicate on the "test_date" field. It's identical to TestDateEQ.
func TestDate(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldTestDate, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldTitle, v))
}

// Observations applies equality check predicate on the "observations" field. It's identical to ObservationsEQ.
func Observations(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldObservations, v))
}

// DoctorName applies equality check predicate on the "doctor_name" field. It's identical to DoctorNameEQ.
func DoctorName(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldDoctorName, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldSourceURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLTE(FieldPatientID, v))
}

// TestDateEQ applies the EQ predicate on the "test_date" field.
func TestDateEQ(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldTestDate, v))
}

// TestDateNEQ applies the NEQ predicate on the "test_date" field.
func TestDateNEQ(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNEQ(FieldTestDate, v))
}

// TestDateIn applies the In predicate on the "test_date" field.
func TestDateIn(vs ...time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldIn(FieldTestDate, vs...))
}

// TestDateNotIn applies the NotIn predicate on the "test_date" field.
func TestDateNotIn(vs ...time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNotIn(FieldTestDate, vs...))
}

// TestDateGT applies the GT predicate on the "test_date" field.
func TestDateGT(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGT(FieldTestDate, v))
}

// TestDateGTE applies the GTE predicate on the "test_date" field.
func TestDateGTE(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGTE(FieldTestDate, v))
}

// TestDateLT applies the LT predicate on the "test_date" field.
func TestDateLT(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLT(FieldTestDate, v))
}

// TestDateLTE applies the LTE predicate on the "test_date" field.
func TestDateLTE(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLTE(FieldTestDate, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldContainsFold(FieldTitle, v))
}

// ObservationsEQ applies the EQ predicate on the "observations" field.
func ObservationsEQ(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldObservations, v))
}

// ObservationsNEQ applies the NEQ predicate on the "observations" field.
func ObservationsNEQ(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNEQ(FieldObservations, v))
}

// ObservationsIn applies the In predicate on the "observations" field.
func ObservationsIn(vs ...string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldIn(FieldObservations, vs...))
}

// ObservationsNotIn applies the NotIn predicate on the "observations" field.
func ObservationsNotIn(vs ...string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNotIn(FieldObservations, vs...))
}

// ObservationsGT applies the GT predicate on the "observations" field.
func ObservationsGT(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGT(FieldObservations, v))
}

// ObservationsGTE applies the GTE predicate on the "observations" field.
func ObservationsGTE(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGTE(FieldObservations, v))
}

// ObservationsLT applies the LT predicate on the "observations" field.
func ObservationsLT(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLT(FieldObservations, v))
}

// ObservationsLTE applies the LTE predicate on the "observations" field.
func ObservationsLTE(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLTE(FieldObservations, v))
}

// ObservationsContains applies the Contains predicate on the "observations" field.
func ObservationsContains(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldContains(FieldObservations, v))
}

// ObservationsHasPrefix applies the HasPrefix predicate on the "observations" field.
func ObservationsHasPrefix(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldHasPrefix(FieldObservations, v))
}

// ObservationsHasSuffix applies the HasSuffix predicate on the "observations" field.
func ObservationsHasSuffix(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldHasSuffix(FieldObservations, v))
}

// ObservationsIsNil applies the IsNil predicate on the "observations" field.
func ObservationsIsNil() predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldIsNull(FieldObservations))
}

// ObservationsNotNil applies the NotNil predicate on the "observations" field.
func ObservationsNotNil() predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNotNull(FieldObservations))
}

// ObservationsEqualFold applies the EqualFold predicate on the "observations" field.
func ObservationsEqualFold(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEqualFold(FieldObservations, v))
}

// ObservationsContainsFold applies the ContainsFold predicate on the "observations" field.
func ObservationsContainsFold(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldContainsFold(FieldObservations, v))
}

// DoctorNameEQ applies the EQ predicate on the "doctor_name" field.
func DoctorNameEQ(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldDoctorName, v))
}

// DoctorNameNEQ applies the NEQ predicate on the "doctor_name" field.
func DoctorNameNEQ(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNEQ(FieldDoctorName, v))
}

// DoctorNameIn applies the In predicate on the "doctor_name" field.
func DoctorNameIn(vs ...string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldIn(FieldDoctorName, vs...))
}

// DoctorNameNotIn applies the NotIn predicate on the "doctor_name" field.
func DoctorNameNotIn(vs ...string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNotIn(FieldDoctorName, vs...))
}

// DoctorNameGT applies the GT predicate on the "doctor_name" field.
func DoctorNameGT(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGT(FieldDoctorName, v))
}

// DoctorNameGTE applies the GTE predicate on the "doctor_name" field.
func DoctorNameGTE(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGTE(FieldDoctorName, v))
}

// DoctorNameLT applies the LT predicate on the "doctor_name" field.
func DoctorNameLT(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLT(FieldDoctorName, v))
}

// DoctorNameLTE applies the LTE predicate on the "doctor_name" field.
func DoctorNameLTE(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLTE(FieldDoctorName, v))
}

// DoctorNameContains applies the Contains predicate on the "doctor_name" field.
func DoctorNameContains(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldContains(FieldDoctorName, v))
}

// DoctorNameHasPrefix applies the HasPrefix predicate on the "doctor_name" field.
func DoctorNameHasPrefix(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldHasPrefix(FieldDoctorName, v))
}

// DoctorNameHasSuffix applies the HasSuffix predicate on the "doctor_name" field.
func DoctorNameHasSuffix(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldHasSuffix(FieldDoctorName, v))
}

// DoctorNameIsNil applies the IsNil predicate on the "doctor_name" field.
func DoctorNameIsNil() predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldIsNull(FieldDoctorName))
}

// DoctorNameNotNil applies the NotNil predicate on the "doctor_name" field.
func DoctorNameNotNil() predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNotNull(FieldDoctorName))
}

// DoctorNameEqualFold applies the EqualFold predicate on the "doctor_name" field.
func DoctorNameEqualFold(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEqualFold(FieldDoctorName, v))
}

// DoctorNameContainsFold applies the ContainsFold predicate on the "doctor_name" field.
func DoctorNameContainsFold(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldContainsFold(FieldDoctorName, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldContainsFold(FieldSourceURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ImagingResult {
	return predicate.ImagingResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImagingResult) predicate.ImagingResult {
	return predicate.ImagingResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImagingResult) predicate.ImagingResult {
	return predicate.ImagingResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImagingResult) predicate.ImagingResult {
	return predicate.ImagingResult(sql.NotPredicates(p))
}
