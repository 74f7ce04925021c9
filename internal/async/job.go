package async

import (
	"time"

	"github.com/google/uuid"
)

// DocumentJob is one inbound document waiting for pipeline processing.
// ReplyTo, when set, is the chat address that receives the outcome
// message once the job finishes.
type DocumentJob struct {
	MessageID   string
	PatientID   uuid.UUID
	Filename    string
	MIMEType    string
	Data        []byte
	ReplyTo     string
	SubmittedAt time.Time
}
