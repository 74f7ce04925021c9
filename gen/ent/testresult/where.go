// Code generated by ent, DO NOT EDIT.

package testresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/healthtrack-labs/healthtrack/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldID, id))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTestID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldPatientID, v))
}

// TestDate applies equality check predicate on the "test_date" field. It's identical to TestDateEQ.
func TestDate(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTestDate, v))
}

// ComponentName applies equality check predicate on the "component_name" field. It's identical to ComponentNameEQ.
func ComponentName(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldComponentName, v))
}

// ValueNum applies equality check predicate on the "value_num" field. It's identical to ValueNumEQ.
func ValueNum(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldValueNum, v))
}

// ValueText applies equality check predicate on the "value_text" field. It's identical to ValueTextEQ.
func ValueText(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldValueText, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldUnit, v))
}

// NormalMin applies equality check predicate on the "normal_min" field. It's identical to NormalMinEQ.
func NormalMin(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldNormalMin, v))
}

// NormalMax applies equality check predicate on the "normal_max" field. It's identical to NormalMaxEQ.
func NormalMax(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldNormalMax, v))
}

// NormalText applies equality check predicate on the "normal_text" field. It's identical to NormalTextEQ.
func NormalText(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldNormalText, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldSourceURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldCreatedAt, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldTestID, vs...))
}

// TestIDGT applies the GT predicate on the "test_id" field.
func TestIDGT(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldTestID, v))
}

// TestIDGTE applies the GTE predicate on the "test_id" field.
func TestIDGTE(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldTestID, v))
}

// TestIDLT applies the LT predicate on the "test_id" field.
func TestIDLT(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldTestID, v))
}

// TestIDLTE applies the LTE predicate on the "test_id" field.
func TestIDLTE(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldTestID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldPatientID, v))
}

// TestDateEQ applies the EQ predicate on the "test_date" field.
func TestDateEQ(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTestDate, v))
}

// TestDateNEQ applies the NEQ predicate on the "test_date" field.
func TestDateNEQ(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldTestDate, v))
}

// TestDateIn applies the In predicate on the "test_date" field.
func TestDateIn(vs ...time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldTestDate, vs...))
}

// TestDateNotIn applies the NotIn predicate on the "test_date" field.
func TestDateNotIn(vs ...time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldTestDate, vs...))
}

// TestDateGT applies the GT predicate on the "test_date" field.
func TestDateGT(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldTestDate, v))
}

// TestDateGTE applies the GTE predicate on the "test_date" field.
func TestDateGTE(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldTestDate, v))
}

// TestDateLT applies the LT predicate on the "test_date" field.
func TestDateLT(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldTestDate, v))
}

// TestDateLTE applies the LTE predicate on the "test_date" field.
func TestDateLTE(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldTestDate, v))
}

// ComponentNameEQ applies the EQ predicate on the "component_name" field.
func ComponentNameEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldComponentName, v))
}

// ComponentNameNEQ applies the NEQ predicate on the "component_name" field.
func ComponentNameNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldComponentName, v))
}

// ComponentNameIn applies the In predicate on the "component_name" field.
func ComponentNameIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldComponentName, vs...))
}

// ComponentNameNotIn applies the NotIn predicate on the "component_name" field.
func ComponentNameNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldComponentName, vs...))
}

// ComponentNameGT applies the GT predicate on the "component_name" field.
func ComponentNameGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldComponentName, v))
}

// ComponentNameGTE applies the GTE predicate on the "component_name" field.
func ComponentNameGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldComponentName, v))
}

// ComponentNameLT applies the LT predicate on the "component_name" field.
func ComponentNameLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldComponentName, v))
}

// ComponentNameLTE applies the LTE predicate on the "component_name" field.
func ComponentNameLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldComponentName, v))
}

// ComponentNameContains applies the Contains predicate on the "component_name" field.
func ComponentNameContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldComponentName, v))
}

// ComponentNameHasPrefix applies the HasPrefix predicate on the "component_name" field.
func ComponentNameHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldComponentName, v))
}

// ComponentNameHasSuffix applies the HasSuffix predicate on the "component_name" field.
func ComponentNameHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldComponentName, v))
}

// ComponentNameEqualFold applies the EqualFold predicate on the "component_name" field.
func ComponentNameEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldComponentName, v))
}

// ComponentNameContainsFold applies the ContainsFold predicate on the "component_name" field.
func ComponentNameContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldComponentName, v))
}

// ValueNumEQ applies the EQ predicate on the "value_num" field.
func ValueNumEQ(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldValueNum, v))
}

// ValueNumNEQ applies the NEQ predicate on the "value_num" field.
func ValueNumNEQ(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldValueNum, v))
}

// ValueNumIn applies the In predicate on the "value_num" field.
func ValueNumIn(vs ...float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldValueNum, vs...))
}

// ValueNumNotIn applies the NotIn predicate on the "value_num" field.
func ValueNumNotIn(vs ...float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldValueNum, vs...))
}

// ValueNumGT applies the GT predicate on the "value_num" field.
func ValueNumGT(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldValueNum, v))
}

// ValueNumGTE applies the GTE predicate on the "value_num" field.
func ValueNumGTE(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldValueNum, v))
}

// ValueNumLT applies the LT predicate on the "value_num" field.
func ValueNumLT(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldValueNum, v))
}

// ValueNumLTE applies the LTE predicate on the "value_num" field.
func ValueNumLTE(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldValueNum, v))
}

// ValueNumIsNil applies the IsNil predicate on the "value_num" field.
func ValueNumIsNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldIsNull(FieldValueNum))
}

// ValueNumNotNil applies the NotNil predicate on the "value_num" field.
func ValueNumNotNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldNotNull(FieldValueNum))
}

// ValueTextEQ applies the EQ predicate on the "value_text" field.
func ValueTextEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldValueText, v))
}

// ValueTextNEQ applies the NEQ predicate on the "value_text" field.
func ValueTextNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldValueText, v))
}

// ValueTextIn applies the In predicate on the "value_text" field.
func ValueTextIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldValueText, vs...))
}

// ValueTextNotIn applies the NotIn predicate on the "value_text" field.
func ValueTextNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldValueText, vs...))
}

// ValueTextGT applies the GT predicate on the "value_text" field.
func ValueTextGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldValueText, v))
}

// ValueTextGTE applies the GTE predicate on the "value_text" field.
func ValueTextGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldValueText, v))
}

// ValueTextLT applies the LT predicate on the "value_text" field.
func ValueTextLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldValueText, v))
}

// ValueTextLTE applies the LTE predicate on the "value_text" field.
func ValueTextLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldValueText, v))
}

// ValueTextContains applies the Contains predicate on the "value_text" field.
func ValueTextContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldValueText, v))
}

// ValueTextHasPrefix applies the HasPrefix predicate on the "value_text" field.
func ValueTextHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldValueText, v))
}

// ValueTextHasSuffix applies the HasSuffix predicate on the "value_text" field.
func ValueTextHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldValueText, v))
}

// ValueTextIsNil applies the IsNil predicate on the "value_text" field.
func ValueTextIsNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldIsNull(FieldValueText))
}

// ValueTextNotNil applies the NotNil predicate on the "value_text" field.
func ValueTextNotNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldNotNull(FieldValueText))
}

// ValueTextEqualFold applies the EqualFold predicate on the "value_text" field.
func ValueTextEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldValueText, v))
}

// ValueTextContainsFold applies the ContainsFold predicate on the "value_text" field.
func ValueTextContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldValueText, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldUnit, v))
}

// NormalMinEQ applies the EQ predicate on the "normal_min" field.
func NormalMinEQ(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldNormalMin, v))
}

// NormalMinNEQ applies the NEQ predicate on the "normal_min" field.
func NormalMinNEQ(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldNormalMin, v))
}

// NormalMinIn applies the In predicate on the "normal_min" field.
func NormalMinIn(vs ...float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldNormalMin, vs...))
}

// NormalMinNotIn applies the NotIn predicate on the "normal_min" field.
func NormalMinNotIn(vs ...float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldNormalMin, vs...))
}

// NormalMinGT applies the GT predicate on the "normal_min" field.
func NormalMinGT(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldNormalMin, v))
}

// NormalMinGTE applies the GTE predicate on the "normal_min" field.
func NormalMinGTE(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldNormalMin, v))
}

// NormalMinLT applies the LT predicate on the "normal_min" field.
func NormalMinLT(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldNormalMin, v))
}

// NormalMinLTE applies the LTE predicate on the "normal_min" field.
func NormalMinLTE(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldNormalMin, v))
}

// NormalMinIsNil applies the IsNil predicate on the "normal_min" field.
func NormalMinIsNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldIsNull(FieldNormalMin))
}

// NormalMinNotNil applies the NotNil predicate on the "normal_min" field.
func NormalMinNotNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldNotNull(FieldNormalMin))
}

// NormalMaxEQ applies the EQ predicate on the "normal_max" field.
func NormalMaxEQ(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldNormalMax, v))
}

// NormalMaxNEQ applies the NEQ predicate on the "normal_max" field.
func NormalMaxNEQ(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldNormalMax, v))
}

// NormalMaxIn applies the In predicate on the "normal_max" field.
func NormalMaxIn(vs ...float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldNormalMax, vs...))
}

// NormalMaxNotIn applies the NotIn predicate on the "normal_max" field.
func NormalMaxNotIn(vs ...float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldNormalMax, vs...))
}

// NormalMaxGT applies the GT predicate on the "normal_max" field.
func NormalMaxGT(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldNormalMax, v))
}

// NormalMaxGTE applies the GTE predicate on the "normal_max" field.
func NormalMaxGTE(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldNormalMax, v))
}

// NormalMaxLT applies the LT predicate on the "normal_max" field.
func NormalMaxLT(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldNormalMax, v))
}

// NormalMaxLTE applies the LTE predicate on the "normal_max" field.
func NormalMaxLTE(v float64) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldNormalMax, v))
}

// NormalMaxIsNil applies the IsNil predicate on the "normal_max" field.
func NormalMaxIsNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldIsNull(FieldNormalMax))
}

// NormalMaxNotNil applies the NotNil predicate on the "normal_max" field.
func NormalMaxNotNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldNotNull(FieldNormalMax))
}

// NormalTextEQ applies the EQ predicate on the "normal_text" field.
func NormalTextEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldNormalText, v))
}

// NormalTextNEQ applies the NEQ predicate on the "normal_text" field.
func NormalTextNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldNormalText, v))
}

// NormalTextIn applies the In predicate on the "normal_text" field.
func NormalTextIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldNormalText, vs...))
}

// NormalTextNotIn applies the NotIn predicate on the "normal_text" field.
func NormalTextNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldNormalText, vs...))
}

// NormalTextGT applies the GT predicate on the "normal_text" field.
func NormalTextGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldNormalText, v))
}

// NormalTextGTE applies the GTE predicate on the "normal_text" field.
func NormalTextGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldNormalText, v))
}

// NormalTextLT applies the LT predicate on the "normal_text" field.
func NormalTextLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldNormalText, v))
}

// NormalTextLTE applies the LTE predicate on the "normal_text" field.
func NormalTextLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldNormalText, v))
}

// NormalTextContains applies the Contains predicate on the "normal_text" field.
func NormalTextContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldNormalText, v))
}

// NormalTextHasPrefix applies the HasPrefix predicate on the "normal_text" field.
func NormalTextHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldNormalText, v))
}

// NormalTextHasSuffix applies the HasSuffix predicate on the "normal_text" field.
func NormalTextHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldNormalText, v))
}

// NormalTextIsNil applies the IsNil predicate on the "normal_text" field.
func NormalTextIsNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldIsNull(FieldNormalText))
}

// NormalTextNotNil applies the NotNil predicate on the "normal_text" field.
func NormalTextNotNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldNotNull(FieldNormalText))
}

// NormalTextEqualFold applies the EqualFold predicate on the "normal_text" field.
func NormalTextEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldNormalText, v))
}

// NormalTextContainsFold applies the ContainsFold predicate on the "normal_text" field.
func NormalTextContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldNormalText, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldSourceURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestResult) predicate.TestResult {
	return predicate.TestResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestResult) predicate.TestResult {
	return predicate.TestResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestResult) predicate.TestResult {
	return predicate.TestResult(sql.NotPredicates(p))
}
