package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
)

// Extraction is the merged output of all batches of one document.
type Extraction struct {
	Kind          constants.DocumentKind
	HealthRecords []llm.HealthRecordFields
	Imaging       []llm.ImagingFields
	Prescription  *llm.PrescriptionFields
}

// ExtractStage submits page batches to the extraction service and merges
// the per-batch records into one ordered result list.
type ExtractStage struct {
	Logger    *slog.Logger
	Extractor llm.DocumentExtractor

	// Now is injectable for the NOT_VISIBLE date rewrite.
	Now func() time.Time
}

func NewExtractStage(extractor llm.DocumentExtractor, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{Logger: logger, Extractor: extractor, Now: time.Now}
}

// SplitBatches groups pages into fixed-size batches preserving order.
func SplitBatches(pages []llm.PageImage, size int) [][]llm.PageImage {
	if size <= 0 {
		size = constants.ExtractionBatchSize
	}
	var batches [][]llm.PageImage
	for i := 0; i < len(pages); i += size {
		end := i + size
		if end > len(pages) {
			end = len(pages)
		}
		batches = append(batches, pages[i:end])
	}
	return batches
}

// Run processes every batch strictly in sequence and concatenates results
// in submission order. A single failed batch aborts the whole document;
// records from earlier batches are discarded by the caller.
func (s *ExtractStage) Run(ctx context.Context, kind constants.DocumentKind, pages []llm.PageImage) (*Extraction, error) {
	batches := SplitBatches(pages, constants.ExtractionBatchSize)
	s.Logger.Info("pipeline.extract.start", "kind", kind, "pages", len(pages), "batches", len(batches))

	var records []json.RawMessage
	for i, batch := range batches {
		batchRecords, err := s.Extractor.ExtractBatch(ctx, kind, batch)
		if err != nil {
			s.Logger.Error("pipeline.extract.batch_failed", "kind", kind, "batch", i+1, "error", err)
			return nil, fmt.Errorf("batch %d/%d: %w", i+1, len(batches), err)
		}
		records = append(records, batchRecords...)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records extracted: %w", common.ErrExtractionFailed)
	}

	out, err := s.merge(kind, records)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("pipeline.extract.ok", "kind", kind, "records", len(records))
	return out, nil
}

func (s *ExtractStage) merge(kind constants.DocumentKind, records []json.RawMessage) (*Extraction, error) {
	out := &Extraction{Kind: kind}
	switch kind {
	case constants.KindHealthRecord:
		for i, rec := range records {
			var fields llm.HealthRecordFields
			if err := json.Unmarshal(rec, &fields); err != nil {
				return nil, fmt.Errorf("decode health record %d: %v: %w", i, err, common.ErrExtractionFailed)
			}
			out.HealthRecords = append(out.HealthRecords, fields)
		}

	case constants.KindImagingResult:
		for i, rec := range records {
			var fields llm.ImagingFields
			if err := json.Unmarshal(rec, &fields); err != nil {
				return nil, fmt.Errorf("decode imaging result %d: %v: %w", i, err, common.ErrExtractionFailed)
			}
			// A scan without a readable date is dated today, at pipeline
			// level, before it ever reaches storage.
			if fields.TestDate == constants.DateNotVisible {
				fields.TestDate = s.Now().UTC().Format("2006-01-02")
			}
			out.Imaging = append(out.Imaging, fields)
		}

	case constants.KindPrescription:
		// Only the first record is stored when the service returns
		// several. Known limitation of the prescription path.
		var fields llm.PrescriptionFields
		if err := json.Unmarshal(records[0], &fields); err != nil {
			return nil, fmt.Errorf("decode prescription: %v: %w", err, common.ErrExtractionFailed)
		}
		if len(records) > 1 {
			s.Logger.Warn("pipeline.extract.extra_prescription_records_dropped", "dropped", len(records)-1)
		}
		out.Prescription = &fields

	default:
		return nil, fmt.Errorf("unknown document kind %q: %w", kind, common.ErrValidation)
	}
	return out, nil
}
