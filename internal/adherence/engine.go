package adherence

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/repository"
)

// Messenger is the outbound messaging surface the engine depends on.
type Messenger interface {
	SendText(ctx context.Context, to, body string) error
	SendReminder(ctx context.Context, to, medicine string, timing constants.TimeOfDay, yesID, noID string) error
}

// PhoneResolver maps a patient to their messaging address.
type PhoneResolver func(patientID uuid.UUID) (string, bool)

// Engine dispatches medication reminders for the currently active
// time-of-day window and records button replies as streak entries. It
// performs no scheduling of its own; an external timer calls
// DispatchReminders often enough to hit every window.
type Engine struct {
	Logger        *slog.Logger
	Prescriptions repository.PrescriptionRepository
	Adherence     repository.AdherenceRepository
	Messenger     Messenger
	ResolvePhone  PhoneResolver
	Now           func() time.Time
}

func NewEngine(
	prescriptions repository.PrescriptionRepository,
	adherence repository.AdherenceRepository,
	messenger Messenger,
	resolvePhone PhoneResolver,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		Logger:        logger,
		Prescriptions: prescriptions,
		Adherence:     adherence,
		Messenger:     messenger,
		ResolvePhone:  resolvePhone,
		Now:           time.Now,
	}
}

// DispatchReminders sends one reminder per active prescription flagged
// for the current time-of-day window and returns how many went out.
// Outside every window it does nothing.
func (e *Engine) DispatchReminders(ctx context.Context) (int, error) {
	now := e.Now()
	timing, ok := CurrentTimeOfDay(now)
	if !ok {
		e.Logger.Info("adherence.dispatch.no_window")
		return 0, nil
	}
	today := Today(now)

	rows, err := e.Prescriptions.ActiveForTiming(ctx, timing, today)
	if err != nil {
		return 0, err
	}

	date := today.Format("2006-01-02")
	sent := 0
	for _, p := range rows {
		phone, ok := e.ResolvePhone(p.PatientID)
		if !ok {
			e.Logger.Warn("adherence.dispatch.no_phone", "patient_id", p.PatientID)
			continue
		}
		yesID := EncodeCallback("yes", p.ID.String(), p.MedicineName, date, timing)
		noID := EncodeCallback("no", p.ID.String(), p.MedicineName, date, timing)
		if err := e.Messenger.SendReminder(ctx, phone, p.MedicineName, timing, yesID, noID); err != nil {
			e.Logger.Error("adherence.dispatch.send_failed",
				"prescription_id", p.ID, "medicine", p.MedicineName, "error", err)
			continue
		}
		sent++
	}

	e.Logger.Info("adherence.dispatch.ok", "timing", timing, "sent", sent, "candidates", len(rows))
	return sent, nil
}

// HandleReply records a reminder button reply and returns the
// confirmation text to send back to the sender. On error the returned
// text still describes the failure in plain language; the webhook layer
// always sends it.
func (e *Engine) HandleReply(ctx context.Context, callbackID string) (string, error) {
	cb, err := ParseCallback(callbackID)
	if err != nil {
		return "Sorry, I couldn't understand that reply.", err
	}

	prescriptionID, err := uuid.Parse(cb.PrescriptionID)
	if err != nil {
		return "Sorry, I couldn't match that reply to a prescription.",
			fmt.Errorf("parse prescription id %q: %v: %w", cb.PrescriptionID, err, common.ErrValidation)
	}

	p, err := e.Prescriptions.GetByID(ctx, prescriptionID)
	if err != nil {
		return "Sorry, I couldn't find that prescription anymore.", err
	}

	today := Today(e.Now())
	if p.StartDate.After(today) || p.EndDate.Before(today) {
		return fmt.Sprintf("The course of %s is not active today, so nothing was recorded.", p.MedicineName),
			fmt.Errorf("prescription %s not active on %s: %w", p.ID, today.Format("2006-01-02"), common.ErrValidation)
	}
	if !strings.EqualFold(p.MedicineName, cb.Medicine) {
		return "That medicine doesn't match your current prescription. Please check with your healthcare provider.",
			fmt.Errorf("reply names %q but prescription %s is %q: %w",
				cb.Medicine, p.ID, p.MedicineName, common.ErrMedicationMismatch)
	}

	date, err := time.Parse("2006-01-02", cb.Date)
	if err != nil {
		return "Sorry, that reminder has an invalid date.",
			fmt.Errorf("parse reminder date %q: %v: %w", cb.Date, err, common.ErrValidation)
	}

	if _, err := e.Adherence.Upsert(ctx, p.ID, p.MedicineName, date, cb.Timing, cb.Taken); err != nil {
		return "Sorry, I couldn't record that right now. Please try again later.", err
	}

	if cb.Taken {
		return fmt.Sprintf("Recorded %s as taken for the %s dose. Keep it up!", p.MedicineName, cb.Timing), nil
	}
	return fmt.Sprintf("Recorded %s as not taken for the %s dose.", p.MedicineName, cb.Timing), nil
}

// RecordAdherence is the direct update path used by the web API; it
// drives the same per-day, per-slot upsert the reply handler uses.
func (e *Engine) RecordAdherence(ctx context.Context, prescriptionID uuid.UUID, date time.Time, timing constants.TimeOfDay, taken bool) error {
	p, err := e.Prescriptions.GetByID(ctx, prescriptionID)
	if err != nil {
		return err
	}
	_, err = e.Adherence.Upsert(ctx, p.ID, p.MedicineName, date, timing, taken)
	return err
}
