package constants

// TimeOfDay is one of the four medication timing slots.
type TimeOfDay string

// Stable values (used in callback IDs and streak columns).
const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// TimesOfDay lists the slots in calendar order.
var TimesOfDay = []TimeOfDay{Morning, Afternoon, Evening, Night}

// ParseTimeOfDay validates a raw timing token.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	switch TimeOfDay(s) {
	case Morning:
		return Morning, true
	case Afternoon:
		return Afternoon, true
	case Evening:
		return Evening, true
	case Night:
		return Night, true
	}
	return "", false
}
