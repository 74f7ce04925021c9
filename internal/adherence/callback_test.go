package adherence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/common"
)

func TestEncodeCallback(t *testing.T) {
	id := EncodeCallback("yes", "42", "Amoxicillin", "2024-06-01", constants.Morning)
	assert.Equal(t, "yes||taken||42||Amoxicillin||2024-06-01||morning", id)
}

func TestEncodeCallbackMultiWordMedicine(t *testing.T) {
	id := EncodeCallback("no", "42", "Vitamin D 1000IU", "2024-06-01", constants.Night)
	assert.Equal(t, "no||taken||42||Vitamin_D_1000IU||2024-06-01||night", id)
}

func TestParseCallback(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		taken    bool
		medicine string
		date     string
		timing   constants.TimeOfDay
	}{
		{
			name:     "taken",
			id:       "yes||taken||42||Amoxicillin||2024-06-01||morning",
			taken:    true,
			medicine: "Amoxicillin",
			date:     "2024-06-01",
			timing:   constants.Morning,
		},
		{
			name:     "not taken",
			id:       "no||taken||42||Amoxicillin||2024-06-01||evening",
			taken:    false,
			medicine: "Amoxicillin",
			date:     "2024-06-01",
			timing:   constants.Evening,
		},
		{
			name:     "underscored multi-word name restored",
			id:       "yes||taken||42||Vitamin_D_1000IU||2024-06-01||night",
			taken:    true,
			medicine: "Vitamin D 1000IU",
			date:     "2024-06-01",
			timing:   constants.Night,
		},
		{
			name:     "action case-insensitive",
			id:       "YES||taken||42||Amoxicillin||2024-06-01||afternoon",
			taken:    true,
			medicine: "Amoxicillin",
			date:     "2024-06-01",
			timing:   constants.Afternoon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, err := ParseCallback(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.taken, cb.Taken)
			assert.Equal(t, "42", cb.PrescriptionID)
			assert.Equal(t, tt.medicine, cb.Medicine)
			assert.Equal(t, tt.date, cb.Date)
			assert.Equal(t, tt.timing, cb.Timing)
		})
	}
}

func TestParseCallbackRejectsMalformed(t *testing.T) {
	for _, id := range []string{
		"",
		"yes||taken||42",
		"yes||taken||42||Amoxicillin||2024-06-01||brunch",
	} {
		_, err := ParseCallback(id)
		require.Error(t, err, "id %q", id)
		assert.ErrorIs(t, err, common.ErrValidation)
	}
}

func TestCallbackRoundTrip(t *testing.T) {
	id := EncodeCallback("yes", "b2c9a1f0-0000-0000-0000-000000000001", "Metformin SR 500", "2024-12-31", constants.Afternoon)
	cb, err := ParseCallback(id)
	require.NoError(t, err)
	assert.True(t, cb.Taken)
	assert.Equal(t, "b2c9a1f0-0000-0000-0000-000000000001", cb.PrescriptionID)
	assert.Equal(t, "Metformin SR 500", cb.Medicine)
	assert.Equal(t, "2024-12-31", cb.Date)
	assert.Equal(t, constants.Afternoon, cb.Timing)
}
