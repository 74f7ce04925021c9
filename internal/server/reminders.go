package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleDispatchReminders runs one reminder scan for the current
// time-of-day window. An external scheduler (cron, cloud timer) calls
// this often enough to hit every window.
func (s *Server) handleDispatchReminders(c *gin.Context) {
	sent, err := s.engine.DispatchReminders(c.Request.Context())
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dispatched": sent})
}
