package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
)

type fakeExtractor struct {
	batches [][]llm.PageImage
	extract func(call int, pages []llm.PageImage) ([]json.RawMessage, error)
}

func (f *fakeExtractor) Classify(context.Context, llm.PageImage) (constants.DocumentKind, error) {
	panic("not used")
}

func (f *fakeExtractor) ExtractBatch(_ context.Context, _ constants.DocumentKind, pages []llm.PageImage) ([]json.RawMessage, error) {
	call := len(f.batches)
	f.batches = append(f.batches, pages)
	return f.extract(call, pages)
}

func makePages(n int) []llm.PageImage {
	pages := make([]llm.PageImage, n)
	for i := range pages {
		pages[i] = llm.PageImage{Base64: fmt.Sprintf("page-%d", i+1), MIMEType: "image/png", Ordinal: i + 1}
	}
	return pages
}

func TestSplitBatches(t *testing.T) {
	tests := []struct {
		pages int
		sizes []int
	}{
		{pages: 1, sizes: []int{1}},
		{pages: 3, sizes: []int{3}},
		{pages: 4, sizes: []int{3, 1}},
		{pages: 7, sizes: []int{3, 3, 1}},
		{pages: 9, sizes: []int{3, 3, 3}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d pages", tt.pages), func(t *testing.T) {
			batches := SplitBatches(makePages(tt.pages), constants.ExtractionBatchSize)
			require.Len(t, batches, len(tt.sizes))
			ordinal := 1
			for i, batch := range batches {
				assert.Len(t, batch, tt.sizes[i])
				for _, p := range batch {
					assert.Equal(t, ordinal, p.Ordinal)
					ordinal++
				}
			}
		})
	}
}

func TestRunConcatenatesInSubmissionOrder(t *testing.T) {
	extractor := &fakeExtractor{
		extract: func(call int, _ []llm.PageImage) ([]json.RawMessage, error) {
			rec := fmt.Sprintf(`{"test_date":"2024-06-0%d","components":[{"component_name":"Hb","value":%d}]}`, call+1, call+1)
			return []json.RawMessage{json.RawMessage(rec)}, nil
		},
	}
	stage := NewExtractStage(extractor, nil)

	out, err := stage.Run(context.Background(), constants.KindHealthRecord, makePages(7))
	require.NoError(t, err)
	require.Len(t, extractor.batches, 3)
	require.Len(t, out.HealthRecords, 3)
	assert.Equal(t, "2024-06-01", out.HealthRecords[0].TestDate)
	assert.Equal(t, "2024-06-02", out.HealthRecords[1].TestDate)
	assert.Equal(t, "2024-06-03", out.HealthRecords[2].TestDate)
}

func TestRunBatchFailureAborts(t *testing.T) {
	extractor := &fakeExtractor{
		extract: func(call int, _ []llm.PageImage) ([]json.RawMessage, error) {
			if call == 1 {
				return nil, fmt.Errorf("model refused: %w", common.ErrExtractionFailed)
			}
			return []json.RawMessage{json.RawMessage(`{"test_date":"2024-06-01","components":[]}`)}, nil
		},
	}
	stage := NewExtractStage(extractor, nil)

	_, err := stage.Run(context.Background(), constants.KindHealthRecord, makePages(7))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
	assert.Contains(t, err.Error(), "batch 2/3")
	// The third batch was never submitted.
	assert.Len(t, extractor.batches, 2)
}

func TestRunZeroRecordsFails(t *testing.T) {
	extractor := &fakeExtractor{
		extract: func(int, []llm.PageImage) ([]json.RawMessage, error) { return nil, nil },
	}
	stage := NewExtractStage(extractor, nil)

	_, err := stage.Run(context.Background(), constants.KindHealthRecord, makePages(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestRunRewritesNotVisibleImagingDate(t *testing.T) {
	extractor := &fakeExtractor{
		extract: func(int, []llm.PageImage) ([]json.RawMessage, error) {
			return []json.RawMessage{
				json.RawMessage(`{"test_date":"NOT_VISIBLE","test_title":"Chest X-Ray"}`),
				json.RawMessage(`{"test_date":"2024-05-01","test_title":"MRI Brain"}`),
			}, nil
		},
	}
	stage := NewExtractStage(extractor, nil)
	stage.Now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }

	out, err := stage.Run(context.Background(), constants.KindImagingResult, makePages(1))
	require.NoError(t, err)
	require.Len(t, out.Imaging, 2)
	assert.Equal(t, "2024-06-15", out.Imaging[0].TestDate)
	assert.Equal(t, "2024-05-01", out.Imaging[1].TestDate)
}

func TestRunPrescriptionKeepsFirstRecordOnly(t *testing.T) {
	extractor := &fakeExtractor{
		extract: func(int, []llm.PageImage) ([]json.RawMessage, error) {
			return []json.RawMessage{
				json.RawMessage(`{"doctor_name":"Dr. Rao","medicines":[{"medicine_name":"Amoxicillin","morning":"true","afternoon":"false","evening":"false","night":"true"}]}`),
				json.RawMessage(`{"doctor_name":"Dr. Other","medicines":[]}`),
			}, nil
		},
	}
	stage := NewExtractStage(extractor, nil)

	out, err := stage.Run(context.Background(), constants.KindPrescription, makePages(1))
	require.NoError(t, err)
	require.NotNil(t, out.Prescription)
	assert.Equal(t, "Dr. Rao", out.Prescription.DoctorName)
	require.Len(t, out.Prescription.Medicines, 1)
	assert.Equal(t, "Amoxicillin", out.Prescription.Medicines[0].Name)
}

func TestRunUnknownKind(t *testing.T) {
	extractor := &fakeExtractor{
		extract: func(int, []llm.PageImage) ([]json.RawMessage, error) {
			return []json.RawMessage{json.RawMessage(`{}`)}, nil
		},
	}
	stage := NewExtractStage(extractor, nil)

	_, err := stage.Run(context.Background(), constants.DocumentKind("receipt"), makePages(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
}
