package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/gen/ent"
	"github.com/healthtrack-labs/healthtrack/gen/ent/adherenceentry"
	"github.com/healthtrack-labs/healthtrack/internal/common"
)

type AdherenceRepository interface {
	// Upsert records a taken/not-taken answer for one timing slot.
	// At most one row exists per (prescription, date): a first answer
	// creates the row, later answers mutate it in place. Last write
	// wins; there is no history of earlier answers.
	Upsert(ctx context.Context, prescriptionID uuid.UUID, medicineName string, date time.Time, timing constants.TimeOfDay, taken bool) (*ent.AdherenceEntry, error)

	// ListForPrescription returns the streak rows inside a date window,
	// oldest first, for the calendar view.
	ListForPrescription(ctx context.Context, prescriptionID uuid.UUID, from, to time.Time) ([]*ent.AdherenceEntry, error)
}

type adherenceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAdherenceRepository(client *ent.Client, logger *slog.Logger) AdherenceRepository {
	return &adherenceRepository{client: client, logger: logger}
}

func (r *adherenceRepository) Upsert(ctx context.Context, prescriptionID uuid.UUID, medicineName string, date time.Time, timing constants.TimeOfDay, taken bool) (*ent.AdherenceEntry, error) {
	existing, err := r.client.AdherenceEntry.Query().
		Where(
			adherenceentry.PrescriptionID(prescriptionID),
			adherenceentry.EntryDate(date),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("load streak entry: %v: %w", err, common.ErrStorageFailed)
	}

	if existing == nil {
		b := r.client.AdherenceEntry.Create().
			SetPrescriptionID(prescriptionID).
			SetMedicineName(medicineName).
			SetEntryDate(date)
		setSlotCreate(b, timing, taken)
		row, err := b.Save(ctx)
		if err != nil {
			r.logger.Error("failed to create streak entry", "prescription_id", prescriptionID, "error", err)
			return nil, fmt.Errorf("create streak entry: %v: %w", err, common.ErrStorageFailed)
		}
		r.logger.Info("created streak entry",
			"prescription_id", prescriptionID, "date", date.Format("2006-01-02"),
			"timing", timing, "taken", taken)
		return row, nil
	}

	u := existing.Update()
	setSlotUpdate(u, timing, taken)
	row, err := u.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update streak entry", "entry_id", existing.ID, "error", err)
		return nil, fmt.Errorf("update streak entry: %v: %w", err, common.ErrStorageFailed)
	}
	r.logger.Info("updated streak entry",
		"prescription_id", prescriptionID, "date", date.Format("2006-01-02"),
		"timing", timing, "taken", taken)
	return row, nil
}

func setSlotCreate(b *ent.AdherenceEntryCreate, timing constants.TimeOfDay, taken bool) {
	switch timing {
	case constants.Morning:
		b.SetMorning(taken)
	case constants.Afternoon:
		b.SetAfternoon(taken)
	case constants.Evening:
		b.SetEvening(taken)
	case constants.Night:
		b.SetNight(taken)
	}
}

func setSlotUpdate(u *ent.AdherenceEntryUpdateOne, timing constants.TimeOfDay, taken bool) {
	switch timing {
	case constants.Morning:
		u.SetMorning(taken)
	case constants.Afternoon:
		u.SetAfternoon(taken)
	case constants.Evening:
		u.SetEvening(taken)
	case constants.Night:
		u.SetNight(taken)
	}
}

func (r *adherenceRepository) ListForPrescription(ctx context.Context, prescriptionID uuid.UUID, from, to time.Time) ([]*ent.AdherenceEntry, error) {
	rows, err := r.client.AdherenceEntry.Query().
		Where(
			adherenceentry.PrescriptionID(prescriptionID),
			adherenceentry.EntryDateGTE(from),
			adherenceentry.EntryDateLTE(to),
		).
		Order(adherenceentry.ByEntryDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list streak entries", "prescription_id", prescriptionID, "error", err)
		return nil, fmt.Errorf("list streak entries: %v: %w", err, common.ErrStorageFailed)
	}
	return rows, nil
}
