package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
)

func numPtr(f float64) *float64 { return &f }
func strPtr(s string) *string   { return &s }

func TestInsertResultSplitsValueColumns(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	repo := NewTestResultRepository(client, testLogger())

	fields := llm.HealthRecordFields{
		TestDate: "2024-06-01",
		Components: []llm.HealthComponent{
			{
				Name:      "Hemoglobin",
				Value:     llm.Measurement{Num: numPtr(13.5)},
				Unit:      "g/dL",
				NormalMin: numPtr(12),
				NormalMax: numPtr(16),
			},
			{
				Name:       "Urine Protein",
				Value:      llm.Measurement{Text: strPtr("Negative")},
				NormalText: "Negative",
			},
		},
	}

	testID, rows, err := repo.InsertResult(ctx, uuid.New(), fields, "https://media.example.com/lab.pdf")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Every component row of one document shares the generated test id.
	for _, row := range rows {
		assert.Equal(t, testID, row.TestID)
	}

	numeric := rows[0]
	require.NotNil(t, numeric.ValueNum)
	assert.Equal(t, 13.5, *numeric.ValueNum)
	assert.Nil(t, numeric.ValueText)
	require.NotNil(t, numeric.NormalMin)
	assert.Equal(t, 12.0, *numeric.NormalMin)
	require.NotNil(t, numeric.NormalMax)
	assert.Equal(t, 16.0, *numeric.NormalMax)
	assert.Nil(t, numeric.NormalText)

	textual := rows[1]
	require.NotNil(t, textual.ValueText)
	assert.Equal(t, "Negative", *textual.ValueText)
	assert.Nil(t, textual.ValueNum)
	assert.Nil(t, textual.NormalMin)
	assert.Nil(t, textual.NormalMax)
	require.NotNil(t, textual.NormalText)
	assert.Equal(t, "Negative", *textual.NormalText)
}

func TestInsertResultSeparateDocumentsGetSeparateTestIDs(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	repo := NewTestResultRepository(client, testLogger())
	patientID := uuid.New()

	fields := llm.HealthRecordFields{
		TestDate: "2024-06-01",
		Components: []llm.HealthComponent{
			{Name: "Hemoglobin", Value: llm.Measurement{Num: numPtr(13.5)}},
		},
	}

	firstID, _, err := repo.InsertResult(ctx, patientID, fields, "https://media.example.com/a.pdf")
	require.NoError(t, err)
	secondID, _, err := repo.InsertResult(ctx, patientID, fields, "https://media.example.com/b.pdf")
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)
}

func TestInsertResultRejectsBadDate(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	repo := NewTestResultRepository(client, testLogger())

	fields := llm.HealthRecordFields{
		TestDate: "June 1st",
		Components: []llm.HealthComponent{
			{Name: "Hemoglobin", Value: llm.Measurement{Num: numPtr(13.5)}},
		},
	}

	_, _, err := repo.InsertResult(ctx, uuid.New(), fields, "https://media.example.com/lab.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
}
