package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCourseDates(t *testing.T) {
	prescribed := date(2024, 6, 1)

	tests := []struct {
		name      string
		med       llm.MedicineFields
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "explicit start and end",
			med:       llm.MedicineFields{StartDate: "2024-06-02", EndDate: "2024-06-10"},
			wantStart: date(2024, 6, 2),
			wantEnd:   date(2024, 6, 10),
		},
		{
			name:      "missing end assumes default course",
			med:       llm.MedicineFields{StartDate: "2024-06-02"},
			wantStart: date(2024, 6, 2),
			wantEnd:   date(2024, 6, 9),
		},
		{
			name:      "missing start falls back to prescription date",
			med:       llm.MedicineFields{EndDate: "2024-06-10"},
			wantStart: date(2024, 6, 1),
			wantEnd:   date(2024, 6, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := courseDates(tt.med, &prescribed)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestCourseDatesNoAnchorUsesToday(t *testing.T) {
	start, end, err := courseDates(llm.MedicineFields{}, nil)
	require.NoError(t, err)

	now := time.Now().UTC()
	today := date(now.Year(), now.Month(), now.Day())
	assert.Equal(t, today, start)
	assert.Equal(t, today.AddDate(0, 0, DefaultCourseDays), end)
}

func TestCourseDatesRejectsBadDates(t *testing.T) {
	_, _, err := courseDates(llm.MedicineFields{StartDate: "06/02/2024"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, _, err = courseDates(llm.MedicineFields{StartDate: "2024-06-02", EndDate: "soon"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
}
