package adherence

import (
	"fmt"
	"strings"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/common"
)

// Callback is the decoded identity of a reminder button reply.
type Callback struct {
	Action         string
	Taken          bool
	PrescriptionID string
	Medicine       string
	Date           string // YYYY-MM-DD
	Timing         constants.TimeOfDay
}

const callbackSep = "||"

// EncodeCallback builds the button id sent with a reminder:
// action||taken||prescriptionId||medicineName||date||timing, with any
// whitespace in the medicine name replaced by underscores so the id
// stays a single token.
func EncodeCallback(action, prescriptionID, medicine string, date string, timing constants.TimeOfDay) string {
	name := strings.Join(strings.Fields(medicine), "_")
	return strings.Join([]string{action, "taken", prescriptionID, name, date, string(timing)}, callbackSep)
}

// ParseCallback decodes a reply's button id. The medicine name may span
// several middle components; they are re-joined with spaces and any
// encoded underscores are restored to spaces as well.
func ParseCallback(id string) (*Callback, error) {
	parts := strings.Split(id, callbackSep)
	if len(parts) < 6 {
		return nil, fmt.Errorf("malformed callback id %q: %w", id, common.ErrValidation)
	}
	timing, ok := constants.ParseTimeOfDay(parts[len(parts)-1])
	if !ok {
		return nil, fmt.Errorf("unknown timing %q in callback id: %w", parts[len(parts)-1], common.ErrValidation)
	}

	medicine := strings.Join(parts[3:len(parts)-2], " ")
	medicine = strings.ReplaceAll(medicine, "_", " ")

	action := parts[0]
	return &Callback{
		Action:         action,
		Taken:          strings.EqualFold(action, "yes"),
		PrescriptionID: parts[2],
		Medicine:       medicine,
		Date:           parts[len(parts)-2],
		Timing:         timing,
	}, nil
}
