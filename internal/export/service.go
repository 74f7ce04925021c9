package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/healthtrack-labs/healthtrack/internal/repository"
)

// Service is a tiny façade over the results repository that produces
// XLSX bytes for exports.
type Service struct {
	results repository.TestResultRepository
	logger  *slog.Logger
}

func NewService(results repository.TestResultRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{results: results, logger: logger}
}

// ExportTestResultsXLSX returns an XLSX workbook (as bytes) with one row
// per stored test component for the given patient and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all results for the patient.
func (s *Service) ExportTestResultsXLSX(ctx context.Context, patientID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	rows, err := s.results.ListRows(ctx, patientID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query test results: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Test Results"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Test Date",
		"Component",
		"Value",
		"Unit",
		"Normal Range",
		"Source Document",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if !r.TestDate.IsZero() {
			write(1, r.TestDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, r.ComponentName)

		// Numeric and textual measurements live in different columns;
		// the matching normal-range form follows the same split.
		if r.ValueNum != nil {
			write(3, *r.ValueNum)
			write(5, formatRange(r.NormalMin, r.NormalMax))
		} else if r.ValueText != nil {
			write(3, *r.ValueText)
			if r.NormalText != nil {
				write(5, *r.NormalText)
			}
		}

		if r.Unit != nil {
			write(4, *r.Unit)
		}
		write(6, r.SourceURL)
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 28) // component
	_ = f.SetColWidth(sheet, "C", "C", 16) // value
	_ = f.SetColWidth(sheet, "D", "D", 12) // unit
	_ = f.SetColWidth(sheet, "E", "E", 18) // range
	_ = f.SetColWidth(sheet, "F", "F", 60) // source

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"patient_id", patientID.String(),
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func formatRange(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("%v - %v", *min, *max)
	case min != nil:
		return fmt.Sprintf("> %v", *min)
	case max != nil:
		return fmt.Sprintf("< %v", *max)
	default:
		return ""
	}
}
