package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/gen/ent"
	"github.com/healthtrack-labs/healthtrack/gen/ent/prescription"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
)

// DefaultCourseDays is the assumed course length when the extractor could
// not read an end date off the document.
const DefaultCourseDays = 7

type PrescriptionRepository interface {
	// InsertGroup stores every medicine of one prescription document as
	// its own row, all sharing a freshly generated group id.
	// All-or-nothing per call.
	InsertGroup(ctx context.Context, patientID uuid.UUID, fields llm.PrescriptionFields, sourceURL string) (uuid.UUID, []*ent.Prescription, error)

	GetByID(ctx context.Context, id uuid.UUID) (*ent.Prescription, error)

	// List returns current (start <= today <= end) or past (end < today)
	// prescriptions for a patient.
	List(ctx context.Context, patientID uuid.UUID, current bool, today time.Time) ([]*ent.Prescription, error)

	// ActiveForTiming returns every prescription, across all patients,
	// that is active today and flagged for the given time of day.
	ActiveForTiming(ctx context.Context, timing constants.TimeOfDay, today time.Time) ([]*ent.Prescription, error)
}

type prescriptionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPrescriptionRepository(client *ent.Client, logger *slog.Logger) PrescriptionRepository {
	return &prescriptionRepository{client: client, logger: logger}
}

func (r *prescriptionRepository) InsertGroup(ctx context.Context, patientID uuid.UUID, fields llm.PrescriptionFields, sourceURL string) (uuid.UUID, []*ent.Prescription, error) {
	groupID := uuid.New()

	var prescribedOn *time.Time
	if fields.PrescribedOn != "" {
		d, err := time.Parse("2006-01-02", fields.PrescribedOn)
		if err != nil {
			return uuid.Nil, nil, fmt.Errorf("parse prescription date %q: %v: %w", fields.PrescribedOn, err, common.ErrValidation)
		}
		prescribedOn = &d
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("begin tx: %v: %w", err, common.ErrStorageFailed)
	}

	builders := make([]*ent.PrescriptionCreate, 0, len(fields.Medicines))
	for _, med := range fields.Medicines {
		start, end, err := courseDates(med, prescribedOn)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.logger.Warn("prescription rollback failed", "error", rbErr)
			}
			return uuid.Nil, nil, err
		}
		b := tx.Prescription.Create().
			SetGroupID(groupID).
			SetPatientID(patientID).
			SetMedicineName(med.Name).
			SetFoodInstruction(med.FoodInstruction).
			SetStartDate(start).
			SetEndDate(end).
			SetNotes(med.Notes).
			SetMorning(med.Morning.Bool()).
			SetAfternoon(med.Afternoon.Bool()).
			SetEvening(med.Evening.Bool()).
			SetNight(med.Night.Bool()).
			SetDoctorName(fields.DoctorName).
			SetSourceURL(sourceURL)
		if prescribedOn != nil {
			b.SetPrescribedOn(*prescribedOn)
		}
		builders = append(builders, b)
	}

	rows, err := tx.Prescription.CreateBulk(builders...).Save(ctx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.logger.Warn("prescription rollback failed", "error", rbErr)
		}
		r.logger.Error("failed to insert prescription group", "patient_id", patientID, "error", err)
		return uuid.Nil, nil, fmt.Errorf("insert medicines: %v: %w", err, common.ErrStorageFailed)
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, nil, fmt.Errorf("commit: %v: %w", err, common.ErrStorageFailed)
	}

	r.logger.Info("stored prescription group", "group_id", groupID, "medicines", len(rows))
	return groupID, rows, nil
}

// courseDates resolves the medicine's active window. Missing start falls
// back to the prescription date (or today); missing end assumes a
// DefaultCourseDays course.
func courseDates(med llm.MedicineFields, prescribedOn *time.Time) (time.Time, time.Time, error) {
	var start time.Time
	switch {
	case med.StartDate != "":
		d, err := time.Parse("2006-01-02", med.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse start date %q: %v: %w", med.StartDate, err, common.ErrValidation)
		}
		start = d
	case prescribedOn != nil:
		start = *prescribedOn
	default:
		now := time.Now().UTC()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	var end time.Time
	if med.EndDate != "" {
		d, err := time.Parse("2006-01-02", med.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse end date %q: %v: %w", med.EndDate, err, common.ErrValidation)
		}
		end = d
	} else {
		end = start.AddDate(0, 0, DefaultCourseDays)
	}
	return start, end, nil
}

func (r *prescriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Prescription, error) {
	row, err := r.client.Prescription.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("prescription %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("get prescription: %v: %w", err, common.ErrStorageFailed)
	}
	return row, nil
}

func (r *prescriptionRepository) List(ctx context.Context, patientID uuid.UUID, current bool, today time.Time) ([]*ent.Prescription, error) {
	q := r.client.Prescription.Query().Where(prescription.PatientID(patientID))
	if current {
		q = q.Where(prescription.StartDateLTE(today), prescription.EndDateGTE(today))
	} else {
		q = q.Where(prescription.EndDateLT(today))
	}
	rows, err := q.Order(ent.Desc(prescription.FieldStartDate)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list prescriptions", "patient_id", patientID, "error", err)
		return nil, fmt.Errorf("list prescriptions: %v: %w", err, common.ErrStorageFailed)
	}
	return rows, nil
}

func (r *prescriptionRepository) ActiveForTiming(ctx context.Context, timing constants.TimeOfDay, today time.Time) ([]*ent.Prescription, error) {
	q := r.client.Prescription.Query().Where(
		prescription.StartDateLTE(today),
		prescription.EndDateGTE(today),
	)
	switch timing {
	case constants.Morning:
		q = q.Where(prescription.Morning(true))
	case constants.Afternoon:
		q = q.Where(prescription.Afternoon(true))
	case constants.Evening:
		q = q.Where(prescription.Evening(true))
	case constants.Night:
		q = q.Where(prescription.Night(true))
	default:
		return nil, fmt.Errorf("unknown time of day %q: %w", timing, common.ErrValidation)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to query active prescriptions", "timing", timing, "error", err)
		return nil, fmt.Errorf("active prescriptions: %v: %w", err, common.ErrStorageFailed)
	}
	return rows, nil
}
