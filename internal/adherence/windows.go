package adherence

import (
	"time"

	"github.com/healthtrack-labs/healthtrack/constants"
)

// ReminderLocation is the fixed UTC+5:30 offset all reminder windows are
// evaluated in, regardless of server timezone.
var ReminderLocation = time.FixedZone("UTC+05:30", 5*3600+30*60)

// Window boundaries in minutes since local midnight.
const (
	morningStart   = 5 * 60
	afternoonStart = 11 * 60
	eveningStart   = 16 * 60
	nightStart     = 21 * 60
	nightEnd       = 4 * 60
)

// CurrentTimeOfDay maps a wall-clock instant onto one of the four
// reminder windows: morning [05:00,11:00), afternoon [11:00,16:00),
// evening [16:00,21:00), night [21:00,24:00) and [00:00,04:00).
// Between 04:00 and 05:00 there is no current window and no reminders
// fire.
func CurrentTimeOfDay(now time.Time) (constants.TimeOfDay, bool) {
	local := now.In(ReminderLocation)
	mins := local.Hour()*60 + local.Minute()
	switch {
	case mins >= morningStart && mins < afternoonStart:
		return constants.Morning, true
	case mins >= afternoonStart && mins < eveningStart:
		return constants.Afternoon, true
	case mins >= eveningStart && mins < nightStart:
		return constants.Evening, true
	case mins >= nightStart || mins < nightEnd:
		return constants.Night, true
	}
	return "", false
}

// Today returns the reminder-local calendar date of the instant,
// truncated to midnight UTC for date-column comparisons.
func Today(now time.Time) time.Time {
	local := now.In(ReminderLocation)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
