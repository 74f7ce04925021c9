package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack-labs/healthtrack/gen/ent"
	"github.com/healthtrack-labs/healthtrack/gen/ent/imagingresult"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
)

type ImagingResultRepository interface {
	// Insert stores one imaging report. The caller has already rewritten
	// the NOT_VISIBLE sentinel to a concrete date.
	Insert(ctx context.Context, patientID uuid.UUID, fields llm.ImagingFields, sourceURL string) (*ent.ImagingResult, error)

	// List returns a patient's imaging reports, newest first, for the gallery.
	List(ctx context.Context, patientID uuid.UUID) ([]*ent.ImagingResult, error)
}

type imagingResultRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewImagingResultRepository(client *ent.Client, logger *slog.Logger) ImagingResultRepository {
	return &imagingResultRepository{client: client, logger: logger}
}

func (r *imagingResultRepository) Insert(ctx context.Context, patientID uuid.UUID, fields llm.ImagingFields, sourceURL string) (*ent.ImagingResult, error) {
	testDate, err := time.Parse("2006-01-02", fields.TestDate)
	if err != nil {
		return nil, fmt.Errorf("parse imaging date %q: %v: %w", fields.TestDate, err, common.ErrValidation)
	}

	row, err := r.client.ImagingResult.Create().
		SetPatientID(patientID).
		SetTestDate(testDate).
		SetTitle(fields.Title).
		SetObservations(fields.Observations).
		SetDoctorName(fields.DoctorName).
		SetSourceURL(sourceURL).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert imaging result", "patient_id", patientID, "error", err)
		return nil, fmt.Errorf("insert imaging result: %v: %w", err, common.ErrStorageFailed)
	}

	r.logger.Info("stored imaging result", "imaging_id", row.ID, "title", fields.Title)
	return row, nil
}

func (r *imagingResultRepository) List(ctx context.Context, patientID uuid.UUID) ([]*ent.ImagingResult, error) {
	rows, err := r.client.ImagingResult.Query().
		Where(imagingresult.PatientID(patientID)).
		Order(ent.Desc(imagingresult.FieldTestDate)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list imaging results", "patient_id", patientID, "error", err)
		return nil, fmt.Errorf("list imaging results: %v: %w", err, common.ErrStorageFailed)
	}
	return rows, nil
}
