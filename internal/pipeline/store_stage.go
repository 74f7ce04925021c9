package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/repository"
)

// StoredRecord is one persisted result, as surfaced to API callers.
type StoredRecord struct {
	Kind constants.DocumentKind `json:"kind"`
	ID   uuid.UUID              `json:"id"`
	Rows int                    `json:"rows"`
}

// StoreStage hands merged extractions to the kind-specific repositories.
// Results are stored one at a time, in extraction order; storage calls
// are not idempotent, so re-running a document duplicates its rows.
type StoreStage struct {
	Logger        *slog.Logger
	Results       repository.TestResultRepository
	Imaging       repository.ImagingResultRepository
	Prescriptions repository.PrescriptionRepository
}

func NewStoreStage(
	results repository.TestResultRepository,
	imaging repository.ImagingResultRepository,
	prescriptions repository.PrescriptionRepository,
	logger *slog.Logger,
) *StoreStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &StoreStage{
		Logger:        logger,
		Results:       results,
		Imaging:       imaging,
		Prescriptions: prescriptions,
	}
}

// Run persists one extraction. Any row failure surfaces as
// common.ErrStorageFailed; results stored before the failing one are not
// rolled back across repository calls.
func (s *StoreStage) Run(ctx context.Context, patientID uuid.UUID, extraction *Extraction, sourceURL string) ([]StoredRecord, error) {
	var stored []StoredRecord
	switch extraction.Kind {
	case constants.KindHealthRecord:
		for _, fields := range extraction.HealthRecords {
			testID, rows, err := s.Results.InsertResult(ctx, patientID, fields, sourceURL)
			if err != nil {
				return stored, err
			}
			stored = append(stored, StoredRecord{Kind: extraction.Kind, ID: testID, Rows: len(rows)})
		}

	case constants.KindImagingResult:
		for _, fields := range extraction.Imaging {
			row, err := s.Imaging.Insert(ctx, patientID, fields, sourceURL)
			if err != nil {
				return stored, err
			}
			stored = append(stored, StoredRecord{Kind: extraction.Kind, ID: row.ID, Rows: 1})
		}

	case constants.KindPrescription:
		groupID, rows, err := s.Prescriptions.InsertGroup(ctx, patientID, *extraction.Prescription, sourceURL)
		if err != nil {
			return stored, err
		}
		stored = append(stored, StoredRecord{Kind: extraction.Kind, ID: groupID, Rows: len(rows)})

	default:
		return nil, fmt.Errorf("unknown document kind %q: %w", extraction.Kind, common.ErrValidation)
	}

	s.Logger.Info("pipeline.store.ok", "kind", extraction.Kind, "records", len(stored))
	return stored, nil
}
