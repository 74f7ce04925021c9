package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/gen/ent"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/convert"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
	"github.com/healthtrack-labs/healthtrack/internal/repository"
	"github.com/healthtrack-labs/healthtrack/internal/storage"
)

type mockMedia struct {
	uploads []string
	deletes []string
	asset   *storage.MediaAsset
}

func (m *mockMedia) Upload(_ context.Context, filename, contentType string, data []byte) (*storage.MediaAsset, error) {
	m.uploads = append(m.uploads, filename)
	if m.asset != nil {
		return m.asset, nil
	}
	return &storage.MediaAsset{
		Key:       "media/" + filename,
		MIMEType:  contentType,
		PublicURL: "https://media.example.com/" + filename,
		Bytes:     data,
	}, nil
}

func (m *mockMedia) Delete(_ context.Context, key string) error {
	m.deletes = append(m.deletes, key)
	return nil
}

type stubExtractor struct {
	classify func(page llm.PageImage) (constants.DocumentKind, error)
	extract  func(kind constants.DocumentKind, pages []llm.PageImage) ([]json.RawMessage, error)
}

func (s *stubExtractor) Classify(_ context.Context, page llm.PageImage) (constants.DocumentKind, error) {
	return s.classify(page)
}

func (s *stubExtractor) ExtractBatch(_ context.Context, kind constants.DocumentKind, pages []llm.PageImage) ([]json.RawMessage, error) {
	return s.extract(kind, pages)
}

type stubRasterizer struct {
	urlCalls  []string
	byteCalls int
	pages     []string
	rasterErr error
}

func (s *stubRasterizer) RasterizeBytes(context.Context, []byte) ([]string, error) {
	s.byteCalls++
	return s.pages, s.rasterErr
}

func (s *stubRasterizer) RasterizeURL(_ context.Context, url string) ([]string, error) {
	s.urlCalls = append(s.urlCalls, url)
	return s.pages, s.rasterErr
}

type stubImagingRepo struct {
	insert func(fields llm.ImagingFields, sourceURL string) (*ent.ImagingResult, error)
}

func (s *stubImagingRepo) Insert(_ context.Context, _ uuid.UUID, fields llm.ImagingFields, sourceURL string) (*ent.ImagingResult, error) {
	return s.insert(fields, sourceURL)
}

func (s *stubImagingRepo) List(context.Context, uuid.UUID) ([]*ent.ImagingResult, error) {
	return nil, nil
}

type stubResultsRepo struct {
	insert func(fields llm.HealthRecordFields, sourceURL string) (uuid.UUID, []*ent.TestResult, error)
}

func (s *stubResultsRepo) InsertResult(_ context.Context, _ uuid.UUID, fields llm.HealthRecordFields, sourceURL string) (uuid.UUID, []*ent.TestResult, error) {
	return s.insert(fields, sourceURL)
}

func (s *stubResultsRepo) ListByComponent(context.Context, uuid.UUID) ([]repository.ComponentGroup, error) {
	return nil, nil
}

func (s *stubResultsRepo) ListRows(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*ent.TestResult, error) {
	return nil, nil
}

type stubPrescriptionsRepo struct{}

func (stubPrescriptionsRepo) InsertGroup(context.Context, uuid.UUID, llm.PrescriptionFields, string) (uuid.UUID, []*ent.Prescription, error) {
	return uuid.Nil, nil, errors.New("unexpected prescription insert")
}

func (stubPrescriptionsRepo) GetByID(context.Context, uuid.UUID) (*ent.Prescription, error) {
	return nil, common.ErrNotFound
}

func (stubPrescriptionsRepo) List(context.Context, uuid.UUID, bool, time.Time) ([]*ent.Prescription, error) {
	return nil, nil
}

func (stubPrescriptionsRepo) ActiveForTiming(context.Context, constants.TimeOfDay, time.Time) ([]*ent.Prescription, error) {
	return nil, nil
}

func newTestProcessor(media *mockMedia, raster *stubRasterizer, extractor *stubExtractor, imaging *stubImagingRepo, results *stubResultsRepo) *Processor {
	return NewProcessor(
		media,
		convert.NewNormalizer(raster, nil),
		extractor,
		NewExtractStage(extractor, nil),
		NewStoreStage(results, imaging, stubPrescriptionsRepo{}, nil),
		nil,
	)
}

func TestProcessUploadImageKeepsMedia(t *testing.T) {
	media := &mockMedia{}
	raster := &stubRasterizer{}
	extractor := &stubExtractor{
		classify: func(llm.PageImage) (constants.DocumentKind, error) {
			return constants.KindImagingResult, nil
		},
		extract: func(_ constants.DocumentKind, _ []llm.PageImage) ([]json.RawMessage, error) {
			return []json.RawMessage{json.RawMessage(`{"test_date":"2024-06-01","test_title":"Chest X-Ray"}`)}, nil
		},
	}
	imaging := &stubImagingRepo{
		insert: func(fields llm.ImagingFields, sourceURL string) (*ent.ImagingResult, error) {
			assert.Equal(t, "https://media.example.com/scan.jpg", sourceURL)
			return &ent.ImagingResult{ID: uuid.New(), Title: fields.Title}, nil
		},
	}
	p := newTestProcessor(media, raster, extractor, imaging, &stubResultsRepo{})

	res, err := p.ProcessUpload(context.Background(), uuid.New(), "scan.jpg", "image/jpeg", []byte{0xFF, 0xD8})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "https://media.example.com/scan.jpg", res.PublicURL)
	assert.Empty(t, media.deletes)
	assert.Zero(t, raster.byteCalls)
	assert.Empty(t, raster.urlCalls)
}

func TestProcessUploadPDFRasterizesFromStoredURL(t *testing.T) {
	media := &mockMedia{}
	raster := &stubRasterizer{pages: []string{"cGFnZTE="}}
	extractor := &stubExtractor{
		classify: func(llm.PageImage) (constants.DocumentKind, error) {
			return constants.KindImagingResult, nil
		},
		extract: func(_ constants.DocumentKind, _ []llm.PageImage) ([]json.RawMessage, error) {
			return []json.RawMessage{json.RawMessage(`{"test_date":"2024-06-01","test_title":"MRI Brain"}`)}, nil
		},
	}
	imaging := &stubImagingRepo{
		insert: func(fields llm.ImagingFields, _ string) (*ent.ImagingResult, error) {
			return &ent.ImagingResult{ID: uuid.New(), Title: fields.Title}, nil
		},
	}
	p := newTestProcessor(media, raster, extractor, imaging, &stubResultsRepo{})

	_, err := p.ProcessUpload(context.Background(), uuid.New(), "report.pdf", "application/pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)
	require.Len(t, raster.urlCalls, 1)
	assert.Equal(t, "https://media.example.com/report.pdf", raster.urlCalls[0])
	assert.Zero(t, raster.byteCalls)
}

func TestProcessUploadClassifyFailureDiscardsMedia(t *testing.T) {
	media := &mockMedia{}
	extractor := &stubExtractor{
		classify: func(llm.PageImage) (constants.DocumentKind, error) {
			return "", common.ErrClassificationFailed
		},
	}
	p := newTestProcessor(media, &stubRasterizer{}, extractor, &stubImagingRepo{}, &stubResultsRepo{})

	_, err := p.ProcessUpload(context.Background(), uuid.New(), "scan.jpg", "image/jpeg", []byte{0xFF, 0xD8})
	require.ErrorIs(t, err, common.ErrClassificationFailed)
	require.Len(t, media.deletes, 1)
	assert.Equal(t, "media/scan.jpg", media.deletes[0])
}

func TestProcessUploadRasterizerFailureDiscardsMedia(t *testing.T) {
	media := &mockMedia{}
	raster := &stubRasterizer{rasterErr: common.NewUpstreamError("rasterization service", 503, "overloaded")}
	p := newTestProcessor(media, raster, &stubExtractor{}, &stubImagingRepo{}, &stubResultsRepo{})

	_, err := p.ProcessUpload(context.Background(), uuid.New(), "report.pdf", "application/pdf", []byte("%PDF-1.7"))
	require.ErrorIs(t, err, common.ErrConversionFailed)
	require.Len(t, media.deletes, 1)
}

func TestProcessUploadStoreFailureWithoutRecordsDiscardsMedia(t *testing.T) {
	media := &mockMedia{}
	extractor := &stubExtractor{
		classify: func(llm.PageImage) (constants.DocumentKind, error) {
			return constants.KindImagingResult, nil
		},
		extract: func(_ constants.DocumentKind, _ []llm.PageImage) ([]json.RawMessage, error) {
			return []json.RawMessage{json.RawMessage(`{"test_date":"2024-06-01","test_title":"CT Abdomen"}`)}, nil
		},
	}
	imaging := &stubImagingRepo{
		insert: func(llm.ImagingFields, string) (*ent.ImagingResult, error) {
			return nil, common.ErrStorageFailed
		},
	}
	p := newTestProcessor(media, &stubRasterizer{}, extractor, imaging, &stubResultsRepo{})

	_, err := p.ProcessUpload(context.Background(), uuid.New(), "scan.jpg", "image/jpeg", []byte{0xFF, 0xD8})
	require.ErrorIs(t, err, common.ErrStorageFailed)
	require.Len(t, media.deletes, 1)
}

func TestProcessUploadPartialStoreKeepsMedia(t *testing.T) {
	media := &mockMedia{}
	calls := 0
	extractor := &stubExtractor{
		classify: func(llm.PageImage) (constants.DocumentKind, error) {
			return constants.KindImagingResult, nil
		},
		extract: func(_ constants.DocumentKind, _ []llm.PageImage) ([]json.RawMessage, error) {
			return []json.RawMessage{
				json.RawMessage(`{"test_date":"2024-06-01","test_title":"X-Ray Left"}`),
				json.RawMessage(`{"test_date":"2024-06-01","test_title":"X-Ray Right"}`),
			}, nil
		},
	}
	imaging := &stubImagingRepo{
		insert: func(fields llm.ImagingFields, _ string) (*ent.ImagingResult, error) {
			calls++
			if calls > 1 {
				return nil, common.ErrStorageFailed
			}
			return &ent.ImagingResult{ID: uuid.New(), Title: fields.Title}, nil
		},
	}
	p := newTestProcessor(media, &stubRasterizer{}, extractor, imaging, &stubResultsRepo{})

	_, err := p.ProcessUpload(context.Background(), uuid.New(), "scan.jpg", "image/jpeg", []byte{0xFF, 0xD8})
	require.ErrorIs(t, err, common.ErrStorageFailed)
	// The first report was stored and references the asset's URL.
	assert.Empty(t, media.deletes)
}
