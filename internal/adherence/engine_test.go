package adherence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/gen/ent"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
	"github.com/healthtrack-labs/healthtrack/internal/repository"
)

type mockPrescriptions struct {
	getByID         func(ctx context.Context, id uuid.UUID) (*ent.Prescription, error)
	activeForTiming func(ctx context.Context, timing constants.TimeOfDay, today time.Time) ([]*ent.Prescription, error)
}

func (m *mockPrescriptions) InsertGroup(context.Context, uuid.UUID, llm.PrescriptionFields, string) (uuid.UUID, []*ent.Prescription, error) {
	panic("not used")
}
func (m *mockPrescriptions) GetByID(ctx context.Context, id uuid.UUID) (*ent.Prescription, error) {
	return m.getByID(ctx, id)
}
func (m *mockPrescriptions) List(context.Context, uuid.UUID, bool, time.Time) ([]*ent.Prescription, error) {
	panic("not used")
}
func (m *mockPrescriptions) ActiveForTiming(ctx context.Context, timing constants.TimeOfDay, today time.Time) ([]*ent.Prescription, error) {
	return m.activeForTiming(ctx, timing, today)
}

type upsertCall struct {
	prescriptionID uuid.UUID
	medicine       string
	date           time.Time
	timing         constants.TimeOfDay
	taken          bool
}

type mockAdherence struct {
	calls []upsertCall
	err   error
}

func (m *mockAdherence) Upsert(_ context.Context, prescriptionID uuid.UUID, medicine string, date time.Time, timing constants.TimeOfDay, taken bool) (*ent.AdherenceEntry, error) {
	m.calls = append(m.calls, upsertCall{prescriptionID, medicine, date, timing, taken})
	if m.err != nil {
		return nil, m.err
	}
	return &ent.AdherenceEntry{}, nil
}
func (m *mockAdherence) ListForPrescription(context.Context, uuid.UUID, time.Time, time.Time) ([]*ent.AdherenceEntry, error) {
	panic("not used")
}

type sentReminder struct {
	to, medicine string
	timing       constants.TimeOfDay
	yesID, noID  string
}

type mockMessenger struct {
	texts     []string
	reminders []sentReminder
	sendErr   error
}

func (m *mockMessenger) SendText(_ context.Context, to, body string) error {
	m.texts = append(m.texts, body)
	return nil
}
func (m *mockMessenger) SendReminder(_ context.Context, to, medicine string, timing constants.TimeOfDay, yesID, noID string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.reminders = append(m.reminders, sentReminder{to, medicine, timing, yesID, noID})
	return nil
}

var _ repository.PrescriptionRepository = (*mockPrescriptions)(nil)
var _ repository.AdherenceRepository = (*mockAdherence)(nil)
var _ Messenger = (*mockMessenger)(nil)

func fixedNow() time.Time {
	// 09:00 at the reminder offset, a morning-window instant.
	return time.Date(2024, 6, 15, 9, 0, 0, 0, ReminderLocation)
}

func activePrescription(id, patientID uuid.UUID, medicine string) *ent.Prescription {
	return &ent.Prescription{
		ID:           id,
		PatientID:    patientID,
		MedicineName: medicine,
		StartDate:    time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		Morning:      true,
	}
}

func newTestEngine(p *mockPrescriptions, a *mockAdherence, m *mockMessenger, phone string) *Engine {
	e := NewEngine(p, a, m, func(uuid.UUID) (string, bool) {
		return phone, phone != ""
	}, nil)
	e.Now = fixedNow
	return e
}

func TestDispatchReminders(t *testing.T) {
	patientID := uuid.New()
	p1 := activePrescription(uuid.New(), patientID, "Amoxicillin")
	p2 := activePrescription(uuid.New(), patientID, "Vitamin D")

	prescriptions := &mockPrescriptions{
		activeForTiming: func(_ context.Context, timing constants.TimeOfDay, today time.Time) ([]*ent.Prescription, error) {
			assert.Equal(t, constants.Morning, timing)
			assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), today)
			return []*ent.Prescription{p1, p2}, nil
		},
	}
	messenger := &mockMessenger{}
	engine := newTestEngine(prescriptions, &mockAdherence{}, messenger, "911234567890")

	sent, err := engine.DispatchReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	require.Len(t, messenger.reminders, 2)

	first := messenger.reminders[0]
	assert.Equal(t, "911234567890", first.to)
	assert.Equal(t, "Amoxicillin", first.medicine)
	assert.Equal(t, EncodeCallback("yes", p1.ID.String(), "Amoxicillin", "2024-06-15", constants.Morning), first.yesID)
	assert.Equal(t, EncodeCallback("no", p1.ID.String(), "Amoxicillin", "2024-06-15", constants.Morning), first.noID)
}

func TestDispatchRemindersOutsideWindow(t *testing.T) {
	engine := newTestEngine(&mockPrescriptions{}, &mockAdherence{}, &mockMessenger{}, "911234567890")
	engine.Now = func() time.Time {
		return time.Date(2024, 6, 15, 4, 30, 0, 0, ReminderLocation)
	}

	sent, err := engine.DispatchReminders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestDispatchRemindersSendFailureSkipsRow(t *testing.T) {
	patientID := uuid.New()
	prescriptions := &mockPrescriptions{
		activeForTiming: func(context.Context, constants.TimeOfDay, time.Time) ([]*ent.Prescription, error) {
			return []*ent.Prescription{activePrescription(uuid.New(), patientID, "Amoxicillin")}, nil
		},
	}
	messenger := &mockMessenger{sendErr: errors.New("network down")}
	engine := newTestEngine(prescriptions, &mockAdherence{}, messenger, "911234567890")

	sent, err := engine.DispatchReminders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestHandleReplyRecordsTaken(t *testing.T) {
	prescriptionID := uuid.New()
	p := activePrescription(prescriptionID, uuid.New(), "Amoxicillin")
	prescriptions := &mockPrescriptions{
		getByID: func(_ context.Context, id uuid.UUID) (*ent.Prescription, error) {
			assert.Equal(t, prescriptionID, id)
			return p, nil
		},
	}
	adherenceRepo := &mockAdherence{}
	engine := newTestEngine(prescriptions, adherenceRepo, &mockMessenger{}, "911234567890")

	id := EncodeCallback("yes", prescriptionID.String(), "Amoxicillin", "2024-06-15", constants.Morning)
	reply, err := engine.HandleReply(context.Background(), id)
	require.NoError(t, err)
	assert.Contains(t, reply, "taken")

	require.Len(t, adherenceRepo.calls, 1)
	call := adherenceRepo.calls[0]
	assert.Equal(t, prescriptionID, call.prescriptionID)
	assert.Equal(t, "Amoxicillin", call.medicine)
	assert.Equal(t, constants.Morning, call.timing)
	assert.True(t, call.taken)
}

func TestHandleReplyRecordsNotTaken(t *testing.T) {
	prescriptionID := uuid.New()
	p := activePrescription(prescriptionID, uuid.New(), "Amoxicillin")
	prescriptions := &mockPrescriptions{
		getByID: func(context.Context, uuid.UUID) (*ent.Prescription, error) { return p, nil },
	}
	adherenceRepo := &mockAdherence{}
	engine := newTestEngine(prescriptions, adherenceRepo, &mockMessenger{}, "911234567890")

	id := EncodeCallback("no", prescriptionID.String(), "Amoxicillin", "2024-06-15", constants.Morning)
	reply, err := engine.HandleReply(context.Background(), id)
	require.NoError(t, err)
	assert.Contains(t, reply, "not taken")
	require.Len(t, adherenceRepo.calls, 1)
	assert.False(t, adherenceRepo.calls[0].taken)
}

func TestHandleReplyMedicineMismatch(t *testing.T) {
	prescriptionID := uuid.New()
	p := activePrescription(prescriptionID, uuid.New(), "Metformin")
	prescriptions := &mockPrescriptions{
		getByID: func(context.Context, uuid.UUID) (*ent.Prescription, error) { return p, nil },
	}
	adherenceRepo := &mockAdherence{}
	engine := newTestEngine(prescriptions, adherenceRepo, &mockMessenger{}, "911234567890")

	id := EncodeCallback("yes", prescriptionID.String(), "Amoxicillin", "2024-06-15", constants.Morning)
	reply, err := engine.HandleReply(context.Background(), id)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMedicationMismatch)
	assert.Contains(t, reply, "healthcare provider")
	assert.Empty(t, adherenceRepo.calls)
}

func TestHandleReplyInactiveCourse(t *testing.T) {
	prescriptionID := uuid.New()
	p := activePrescription(prescriptionID, uuid.New(), "Amoxicillin")
	p.EndDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	prescriptions := &mockPrescriptions{
		getByID: func(context.Context, uuid.UUID) (*ent.Prescription, error) { return p, nil },
	}
	adherenceRepo := &mockAdherence{}
	engine := newTestEngine(prescriptions, adherenceRepo, &mockMessenger{}, "911234567890")

	id := EncodeCallback("yes", prescriptionID.String(), "Amoxicillin", "2024-06-15", constants.Morning)
	reply, err := engine.HandleReply(context.Background(), id)
	require.Error(t, err)
	assert.NotEmpty(t, reply)
	assert.Empty(t, adherenceRepo.calls)
}

func TestHandleReplyAlwaysReturnsText(t *testing.T) {
	engine := newTestEngine(&mockPrescriptions{}, &mockAdherence{}, &mockMessenger{}, "911234567890")

	reply, err := engine.HandleReply(context.Background(), "not-a-callback")
	require.Error(t, err)
	assert.NotEmpty(t, reply)
}

func TestRecordAdherenceDirect(t *testing.T) {
	prescriptionID := uuid.New()
	p := activePrescription(prescriptionID, uuid.New(), "Amoxicillin")
	prescriptions := &mockPrescriptions{
		getByID: func(context.Context, uuid.UUID) (*ent.Prescription, error) { return p, nil },
	}
	adherenceRepo := &mockAdherence{}
	engine := newTestEngine(prescriptions, adherenceRepo, &mockMessenger{}, "911234567890")

	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	err := engine.RecordAdherence(context.Background(), prescriptionID, date, constants.Evening, true)
	require.NoError(t, err)
	require.Len(t, adherenceRepo.calls, 1)
	assert.Equal(t, constants.Evening, adherenceRepo.calls[0].timing)
	assert.True(t, adherenceRepo.calls[0].taken)
}
