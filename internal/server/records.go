package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/adherence"
)

// handleListResults returns the patient's test rows grouped by component
// for the trends dashboard.
func (s *Server) handleListResults(c *gin.Context) {
	groups, err := s.results.ListByComponent(c.Request.Context(), s.cfg.Patient.ID)
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"components": groups})
}

// handleExportResults streams the patient's test rows as an XLSX
// workbook, optionally bounded by from/to dates.
func (s *Server) handleExportResults(c *gin.Context) {
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	data, err := s.exporter.ExportTestResultsXLSX(c.Request.Context(), s.cfg.Patient.ID, from, to)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	filename := fmt.Sprintf("test-results-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (s *Server) handleListImaging(c *gin.Context) {
	rows, err := s.imaging.List(c.Request.Context(), s.cfg.Patient.ID)
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imaging": rows})
}

// handleListPrescriptions splits the patient's prescriptions into
// current and past courses, selected by ?status=.
func (s *Server) handleListPrescriptions(c *gin.Context) {
	status := c.DefaultQuery("status", "current")
	if status != "current" && status != "past" {
		respondError(c, http.StatusBadRequest, "invalid status", "must be 'current' or 'past'")
		return
	}

	today := adherence.Today(time.Now())
	rows, err := s.prescriptions.List(c.Request.Context(), s.cfg.Patient.ID, status == "current", today)
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "prescriptions": rows})
}

// handleAdherenceCalendar returns one prescription's streak entries for
// a calendar month (?month=YYYY-MM, defaulting to the current month).
func (s *Server) handleAdherenceCalendar(c *gin.Context) {
	prescriptionID, ok := parseUUIDParam(c, "prescriptionID")
	if !ok {
		return
	}

	month := c.Query("month")
	var first time.Time
	if month == "" {
		now := adherence.Today(time.Now())
		first = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		m, err := time.Parse("2006-01", month)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid month", "must be YYYY-MM")
			return
		}
		first = time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	last := first.AddDate(0, 1, -1)

	ctx := c.Request.Context()
	p, err := s.prescriptions.GetByID(ctx, prescriptionID)
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	entries, err := s.adherenceRepo.ListForPrescription(ctx, prescriptionID, first, last)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	taken := 0
	for _, e := range entries {
		for _, slot := range []*bool{e.Morning, e.Afternoon, e.Evening, e.Night} {
			if slot != nil && *slot {
				taken++
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"prescription": p,
		"month":        first.Format("2006-01"),
		"entries":      entries,
		"doses_taken":  taken,
	})
}

type recordAdherenceRequest struct {
	PrescriptionID uuid.UUID `json:"prescription_id" binding:"required"`
	Date           string    `json:"date" binding:"required"`
	Timing         string    `json:"timing" binding:"required"`
	Taken          *bool     `json:"taken" binding:"required"`
}

// handleRecordAdherence is the web UI's direct path onto the same
// per-day, per-slot upsert the reminder replies use.
func (s *Server) handleRecordAdherence(c *gin.Context) {
	var req recordAdherenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date", "must be YYYY-MM-DD")
		return
	}
	timing, ok := constants.ParseTimeOfDay(req.Timing)
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid timing", "must be morning, afternoon, evening or night")
		return
	}

	if err := s.engine.RecordAdherence(c.Request.Context(), req.PrescriptionID, date, timing, *req.Taken); err != nil {
		respondPipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recorded": true})
}
