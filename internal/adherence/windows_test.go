package adherence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-labs/healthtrack/constants"
)

func localTime(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2024, 6, 15, hour, min, 0, 0, ReminderLocation)
}

func TestCurrentTimeOfDay(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		min    int
		want   constants.TimeOfDay
		active bool
	}{
		{name: "morning lower bound", hour: 5, min: 0, want: constants.Morning, active: true},
		{name: "late morning", hour: 10, min: 59, want: constants.Morning, active: true},
		{name: "afternoon lower bound", hour: 11, min: 0, want: constants.Afternoon, active: true},
		{name: "mid afternoon", hour: 13, min: 30, want: constants.Afternoon, active: true},
		{name: "evening lower bound", hour: 16, min: 0, want: constants.Evening, active: true},
		{name: "late evening", hour: 20, min: 59, want: constants.Evening, active: true},
		{name: "night lower bound", hour: 21, min: 0, want: constants.Night, active: true},
		{name: "before midnight", hour: 23, min: 0, want: constants.Night, active: true},
		{name: "small hours", hour: 2, min: 0, want: constants.Night, active: true},
		{name: "night upper bound excluded", hour: 4, min: 0, active: false},
		{name: "gap before morning", hour: 4, min: 59, active: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CurrentTimeOfDay(localTime(t, tt.hour, tt.min))
			assert.Equal(t, tt.active, ok)
			if tt.active {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCurrentTimeOfDayConvertsZone(t *testing.T) {
	// 03:30 UTC is 09:00 at the reminder offset.
	got, ok := CurrentTimeOfDay(time.Date(2024, 6, 15, 3, 30, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, constants.Morning, got)
}

func TestToday(t *testing.T) {
	// 20:00 UTC is already the next calendar day at the reminder offset.
	now := time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC)
	got := Today(now)
	assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), got)
}
