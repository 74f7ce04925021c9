package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/healthtrack-labs/healthtrack/internal/common"
)

func TestRespondPipelineErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: fmt.Errorf("prescription: %w", common.ErrNotFound), want: http.StatusNotFound},
		{name: "validation", err: common.ErrValidation, want: http.StatusBadRequest},
		{name: "conversion", err: common.ErrConversionFailed, want: http.StatusUnprocessableEntity},
		{name: "classification", err: common.ErrClassificationFailed, want: http.StatusUnprocessableEntity},
		{name: "extraction", err: common.ErrExtractionFailed, want: http.StatusUnprocessableEntity},
		{name: "upstream", err: common.NewUpstreamError("extraction service", 503, "busy"), want: http.StatusBadGateway},
		{
			// A rasterizer outage carries both sentinels; the dependency
			// failure decides the status.
			name: "upstream-caused conversion failure",
			err: fmt.Errorf("rasterize pdf: %w: %w",
				common.NewUpstreamError("rasterization service", 503, "overloaded"),
				common.ErrConversionFailed),
			want: http.StatusBadGateway,
		},
		{name: "unknown", err: errors.New("pq: connection refused"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondPipelineError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
