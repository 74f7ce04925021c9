package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-labs/healthtrack/constants"
)

func TestHealthRecordSchemaValidation(t *testing.T) {
	good := `{
		"test_date": "2024-06-01",
		"components": [
			{"component_name": "Hemoglobin", "value": 13.5, "unit": "g/dL", "normal_range_min": 12, "normal_range_max": 16},
			{"component_name": "Urine Protein", "value": "Negative", "normal_range_text": "Negative"}
		]
	}`
	require.NoError(t, ValidateRecord(constants.KindHealthRecord, []byte(good)))

	bad := []string{
		`{"components": []}`,
		`{"test_date": "June 1st", "components": []}`,
		`{"test_date": "2024-06-01", "components": [{"value": 1}]}`,
		`{"test_date": "2024-06-01", "components": [{"component_name": "Hb", "value": true}]}`,
	}
	for _, raw := range bad {
		assert.Error(t, ValidateRecord(constants.KindHealthRecord, []byte(raw)), "raw %s", raw)
	}
}

func TestImagingSchemaAllowsNotVisibleDate(t *testing.T) {
	require.NoError(t, ValidateRecord(constants.KindImagingResult,
		[]byte(`{"test_date": "NOT_VISIBLE", "test_title": "Chest X-Ray"}`)))
	require.NoError(t, ValidateRecord(constants.KindImagingResult,
		[]byte(`{"test_date": "2024-06-01", "test_title": "MRI Brain", "observations": "unremarkable", "doctor_name": "Dr. Rao"}`)))

	assert.Error(t, ValidateRecord(constants.KindImagingResult,
		[]byte(`{"test_date": "unknown", "test_title": "Chest X-Ray"}`)))
	assert.Error(t, ValidateRecord(constants.KindImagingResult,
		[]byte(`{"test_date": "2024-06-01"}`)))
}

func TestPrescriptionSchemaFlagsAreStrings(t *testing.T) {
	good := `{
		"prescription_date": "2024-06-01",
		"doctor_name": "Dr. Rao",
		"medicines": [{
			"medicine_name": "Amoxicillin 500mg",
			"food_instruction": "after_food",
			"morning": "true", "afternoon": "false", "evening": "false", "night": "true"
		}]
	}`
	require.NoError(t, ValidateRecord(constants.KindPrescription, []byte(good)))

	// Boolean flags must be the strings "true"/"false", not JSON booleans.
	bad := `{
		"medicines": [{
			"medicine_name": "Amoxicillin 500mg",
			"morning": true, "afternoon": false, "evening": false, "night": true
		}]
	}`
	assert.Error(t, ValidateRecord(constants.KindPrescription, []byte(bad)))
}

func TestValidateRecordUnknownKind(t *testing.T) {
	assert.Error(t, ValidateRecord(constants.DocumentKind("receipt"), []byte(`{}`)))
}

func TestClassificationSchemaClosedTaxonomy(t *testing.T) {
	for _, kind := range constants.DocumentKinds {
		require.NoError(t, ValidateClassification(
			[]byte(`{"document_kind": "`+string(kind)+`"}`)))
	}
	assert.Error(t, ValidateClassification([]byte(`{"document_kind": "receipt"}`)))
	assert.Error(t, ValidateClassification([]byte(`{}`)))
}
