package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack-labs/healthtrack/internal/convert"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
	"github.com/healthtrack-labs/healthtrack/internal/storage"
)

// Processor coordinates intake, normalization, classification, extraction
// and storage for one document. Every step is a sequential suspend point
// on an external service; there is no parallelism inside one run.
type Processor struct {
	Logger     *slog.Logger
	Media      storage.MediaStore
	Normalizer *convert.Normalizer
	Extractor  llm.DocumentExtractor
	Extract    *ExtractStage
	Store      *StoreStage
}

func NewProcessor(
	media storage.MediaStore,
	normalizer *convert.Normalizer,
	extractor llm.DocumentExtractor,
	extract *ExtractStage,
	store *StoreStage,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:     logger,
		Media:      media,
		Normalizer: normalizer,
		Extractor:  extractor,
		Extract:    extract,
		Store:      store,
	}
}

// ProcessResult is the pipeline's answer for one uploaded document.
type ProcessResult struct {
	PublicURL string
	Records   []StoredRecord
	Extracted *Extraction
}

// ProcessUpload runs the full pipeline for freshly uploaded bytes:
// upload to object storage, normalize to pages, classify from the first
// page, extract in batches, persist. A failure at any step is terminal
// for the document; nothing extracted-but-unstored survives, and the
// uploaded media of a document that stored nothing is discarded again.
func (p *Processor) ProcessUpload(ctx context.Context, patientID uuid.UUID, filename, mimeType string, data []byte) (*ProcessResult, error) {
	start := time.Now()

	asset, err := p.Media.Upload(ctx, filename, mimeType, data)
	if err != nil {
		p.Logger.Error("pipeline.intake.failed", "filename", filename, "error", err)
		return nil, err
	}

	// PDFs are rasterized from their stored URL so the conversion
	// service never receives the payload twice.
	pages, pagesMIME, err := p.Normalizer.NormalizeURL(ctx, asset.PublicURL, mimeType, data)
	if err != nil {
		p.Logger.Error("pipeline.normalize.failed", "url", asset.PublicURL, "error", err)
		p.discard(ctx, asset)
		return nil, err
	}

	kind, err := p.Extractor.Classify(ctx, pages[0])
	if err != nil {
		p.Logger.Error("pipeline.classify.failed", "url", asset.PublicURL, "error", err)
		p.discard(ctx, asset)
		return nil, err
	}
	p.Logger.Info("pipeline.classify.ok", "kind", kind, "pages", len(pages), "pages_mime", pagesMIME)

	extraction, err := p.Extract.Run(ctx, kind, pages)
	if err != nil {
		p.Logger.Error("pipeline.extract.failed", "url", asset.PublicURL, "kind", kind, "error", err)
		p.discard(ctx, asset)
		return nil, err
	}

	records, err := p.Store.Run(ctx, patientID, extraction, asset.PublicURL)
	if err != nil {
		p.Logger.Error("pipeline.store.failed", "url", asset.PublicURL, "kind", kind, "error", err)
		// Rows stored before the failure reference the asset's URL;
		// only a fully empty document gives its media back.
		if len(records) == 0 {
			p.discard(ctx, asset)
		}
		return nil, err
	}

	p.Logger.Info("pipeline.ok",
		"url", asset.PublicURL,
		"kind", kind,
		"records", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &ProcessResult{
		PublicURL: asset.PublicURL,
		Records:   records,
		Extracted: extraction,
	}, nil
}

// discard removes media that no stored record references. A failed
// delete only leaves an orphaned object behind, so it is logged and
// swallowed.
func (p *Processor) discard(ctx context.Context, asset *storage.MediaAsset) {
	if err := p.Media.Delete(ctx, asset.Key); err != nil {
		p.Logger.Warn("pipeline.media.discard_failed", "key", asset.Key, "error", err)
	}
}
