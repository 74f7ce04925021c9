package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthtrack-labs/healthtrack/internal/common"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, message, details string) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// respondPipelineError maps the error taxonomy onto HTTP statuses.
// Upstream dependencies surface as 502, unusable documents as 422,
// caller mistakes as 400. The upstream check runs before the document
// group: a pipeline error caused by a failing dependency is still a
// gateway problem, not a document problem.
func respondPipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, common.ErrValidation):
		respondError(c, http.StatusBadRequest, "invalid request", err.Error())
	case errors.Is(err, common.ErrUpstreamService):
		respondError(c, http.StatusBadGateway, "upstream service failed", err.Error())
	case errors.Is(err, common.ErrConversionFailed),
		errors.Is(err, common.ErrClassificationFailed),
		errors.Is(err, common.ErrExtractionFailed),
		errors.Is(err, common.ErrMedicationMismatch):
		respondError(c, http.StatusUnprocessableEntity, "document could not be processed", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal server error", "")
	}
}

func parseUUIDParam(c *gin.Context, param string) (uuid.UUID, bool) {
	raw := c.Param(param)
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid "+param, "must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// parseDateQuery reads an optional YYYY-MM-DD query value.
func parseDateQuery(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid "+key, "must be YYYY-MM-DD")
		return nil, false
	}
	return &d, true
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := uuid.NewString()
		c.Set("req_id", reqID)
		c.Next()
		s.logger.Info("http.request",
			"req_id", reqID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}
