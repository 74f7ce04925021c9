package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurementTaggedVariant(t *testing.T) {
	var comp HealthComponent
	require.NoError(t, json.Unmarshal([]byte(`{"component_name":"Hemoglobin","value":13.5,"unit":"g/dL"}`), &comp))
	require.True(t, comp.Value.IsNumeric())
	assert.Equal(t, 13.5, *comp.Value.Num)
	assert.Nil(t, comp.Value.Text)

	require.NoError(t, json.Unmarshal([]byte(`{"component_name":"Urine Color","value":"pale yellow"}`), &comp))
	require.False(t, comp.Value.IsNumeric())
	assert.Equal(t, "pale yellow", *comp.Value.Text)
	assert.Nil(t, comp.Value.Num)
}

func TestMeasurementRejectsOtherTypes(t *testing.T) {
	var m Measurement
	assert.Error(t, json.Unmarshal([]byte(`{"nested":true}`), &m))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &m))
}

func TestFlagBool(t *testing.T) {
	tests := []struct {
		raw  Flag
		want bool
	}{
		{raw: "true", want: true},
		{raw: "True", want: true},
		{raw: " yes ", want: true},
		{raw: "1", want: true},
		{raw: "false", want: false},
		{raw: "", want: false},
		{raw: "maybe", want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.raw.Bool(), "flag %q", tt.raw)
	}
}

func TestMedicineFieldsDecode(t *testing.T) {
	raw := `{
		"medicine_name": "Amoxicillin 500mg",
		"food_instruction": "after_food",
		"start_date": "2024-06-01",
		"end_date": "2024-06-07",
		"morning": "true",
		"afternoon": "false",
		"evening": "false",
		"night": "true"
	}`
	var med MedicineFields
	require.NoError(t, json.Unmarshal([]byte(raw), &med))
	assert.Equal(t, "Amoxicillin 500mg", med.Name)
	assert.True(t, med.Morning.Bool())
	assert.False(t, med.Afternoon.Bool())
	assert.True(t, med.Night.Bool())
}
