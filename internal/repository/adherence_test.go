package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
)

func seedPrescription(t *testing.T, repo PrescriptionRepository) uuid.UUID {
	t.Helper()
	fields := llm.PrescriptionFields{
		PrescribedOn: "2024-06-01",
		DoctorName:   "Dr. Rao",
		Medicines: []llm.MedicineFields{{
			Name:      "Amoxicillin 500mg",
			StartDate: "2024-06-01",
			EndDate:   "2024-06-10",
			Morning:   "true",
			Night:     "true",
		}},
	}
	_, rows, err := repo.InsertGroup(context.Background(), uuid.New(), fields, "https://media.example.com/rx.pdf")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	return rows[0].ID
}

func TestAdherenceUpsertMutatesOneRowPerDate(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	prescriptions := NewPrescriptionRepository(client, testLogger())
	adherence := NewAdherenceRepository(client, testLogger())

	prescriptionID := seedPrescription(t, prescriptions)
	day := date(2024, 6, 15)

	first, err := adherence.Upsert(ctx, prescriptionID, "Amoxicillin 500mg", day, constants.Morning, true)
	require.NoError(t, err)
	require.NotNil(t, first.Morning)
	assert.True(t, *first.Morning)
	assert.Nil(t, first.Afternoon)
	assert.Nil(t, first.Evening)
	assert.Nil(t, first.Night)

	// A second answer for another slot lands on the same row.
	second, err := adherence.Upsert(ctx, prescriptionID, "Amoxicillin 500mg", day, constants.Night, false)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.Morning)
	assert.True(t, *second.Morning)
	require.NotNil(t, second.Night)
	assert.False(t, *second.Night)
	assert.Nil(t, second.Afternoon)
	assert.Nil(t, second.Evening)

	count, err := client.AdherenceEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAdherenceUpsertLastWriteWins(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	prescriptions := NewPrescriptionRepository(client, testLogger())
	adherence := NewAdherenceRepository(client, testLogger())

	prescriptionID := seedPrescription(t, prescriptions)
	day := date(2024, 6, 15)

	_, err := adherence.Upsert(ctx, prescriptionID, "Amoxicillin 500mg", day, constants.Morning, false)
	require.NoError(t, err)

	row, err := adherence.Upsert(ctx, prescriptionID, "Amoxicillin 500mg", day, constants.Morning, true)
	require.NoError(t, err)
	require.NotNil(t, row.Morning)
	assert.True(t, *row.Morning)

	count, err := client.AdherenceEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAdherenceDifferentDatesGetSeparateRows(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	prescriptions := NewPrescriptionRepository(client, testLogger())
	adherence := NewAdherenceRepository(client, testLogger())

	prescriptionID := seedPrescription(t, prescriptions)

	_, err := adherence.Upsert(ctx, prescriptionID, "Amoxicillin 500mg", date(2024, 6, 15), constants.Morning, true)
	require.NoError(t, err)
	_, err = adherence.Upsert(ctx, prescriptionID, "Amoxicillin 500mg", date(2024, 6, 16), constants.Morning, true)
	require.NoError(t, err)

	rows, err := adherence.ListForPrescription(ctx, prescriptionID, date(2024, 6, 1), date(2024, 6, 30))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].EntryDate.Equal(date(2024, 6, 15)))
	assert.True(t, rows[1].EntryDate.Equal(date(2024, 6, 16)))
}
