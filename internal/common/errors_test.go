package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpstreamErrorUnwraps(t *testing.T) {
	err := NewUpstreamError("extraction service", 503, "overloaded")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamService)
	assert.Contains(t, err.Error(), "extraction service")
	assert.Contains(t, err.Error(), "503")

	wrapped := fmt.Errorf("calling model: %w", err)
	assert.ErrorIs(t, wrapped, ErrUpstreamService)

	var ue *UpstreamError
	require.True(t, errors.As(wrapped, &ue))
	assert.Equal(t, 503, ue.Status)
}

func TestUserMessageNeverLeaksInternals(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "mismatch", err: fmt.Errorf("x: %w", ErrMedicationMismatch), want: "healthcare provider"},
		{name: "conversion", err: ErrConversionFailed, want: "clearer copy"},
		{name: "classification", err: ErrClassificationFailed, want: "kind of medical document"},
		{name: "extraction", err: ErrExtractionFailed, want: "extract"},
		{name: "storage", err: ErrStorageFailed, want: "save"},
		{name: "validation", err: ErrValidation, want: "understand"},
		{name: "unknown", err: errors.New("pq: connection refused"), want: "Something went wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := UserMessage(tt.err)
			assert.Contains(t, msg, tt.want)
			assert.NotContains(t, msg, "pq:")
		})
	}
}

func TestAppErrorFormatting(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "CONFIG_ERROR")
	assert.Contains(t, err.Error(), "DB_URL is required")
}
