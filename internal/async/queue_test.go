package async

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/pipeline"
)

func TestOutcomeMessagePerKind(t *testing.T) {
	tests := []struct {
		kind constants.DocumentKind
		want string
	}{
		{kind: constants.KindHealthRecord, want: "trends"},
		{kind: constants.KindImagingResult, want: "imaging"},
		{kind: constants.KindPrescription, want: "reminders"},
	}
	for _, tt := range tests {
		msg := outcomeMessage(&pipeline.ProcessResult{
			Extracted: &pipeline.Extraction{Kind: tt.kind},
		})
		assert.Contains(t, msg, tt.want, "kind %s", tt.kind)
	}
}

func TestEnqueueAfterShutdownIsDropped(t *testing.T) {
	q := NewDocumentQueue(nil, nil, nil, WithWorkers(1), WithQueueSize(1))
	q.Shutdown(context.Background())

	// Must not panic or block on the closed channel.
	err := q.Enqueue(context.Background(), DocumentJob{MessageID: "late"})
	assert.NoError(t, err)
}

func TestShutdownIsIdempotent(t *testing.T) {
	q := NewDocumentQueue(nil, nil, nil, WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}
