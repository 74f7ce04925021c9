package convert

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
)

const (
	mimePDF = "application/pdf"
	mimePNG = "image/png"
)

// Normalizer turns one uploaded file into an ordered page-image sequence
// with a single MIME type. PDFs go through the rasterization service and
// always come back as PNG; anything else passes through as one page with
// its own declared MIME type.
type Normalizer struct {
	rasterizer Rasterizer
	logger     *slog.Logger
}

func NewNormalizer(rasterizer Rasterizer, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{rasterizer: rasterizer, logger: logger}
}

// Normalize produces the page sequence for raw file bytes.
func (n *Normalizer) Normalize(ctx context.Context, data []byte, mimeType string) ([]llm.PageImage, string, error) {
	if mimeType != mimePDF {
		page := llm.PageImage{
			Base64:   base64.StdEncoding.EncodeToString(data),
			MIMEType: mimeType,
			Ordinal:  1,
		}
		return []llm.PageImage{page}, mimeType, nil
	}

	pages, err := n.rasterizer.RasterizeBytes(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("rasterize pdf: %w: %w", err, common.ErrConversionFailed)
	}
	return n.toPages(pages)
}

// NormalizeURL is the entry-point variant that hands the conversion
// service the document's public URL instead of raw bytes.
func (n *Normalizer) NormalizeURL(ctx context.Context, url, mimeType string, data []byte) ([]llm.PageImage, string, error) {
	if mimeType != mimePDF {
		return n.Normalize(ctx, data, mimeType)
	}
	pages, err := n.rasterizer.RasterizeURL(ctx, url)
	if err != nil {
		return nil, "", fmt.Errorf("rasterize pdf: %w: %w", err, common.ErrConversionFailed)
	}
	return n.toPages(pages)
}

func (n *Normalizer) toPages(encoded []string) ([]llm.PageImage, string, error) {
	if len(encoded) == 0 {
		return nil, "", fmt.Errorf("conversion service returned zero pages: %w", common.ErrConversionFailed)
	}
	pages := make([]llm.PageImage, 0, len(encoded))
	for i, b64 := range encoded {
		pages = append(pages, llm.PageImage{
			Base64:   b64,
			MIMEType: mimePNG,
			Ordinal:  i + 1,
		})
	}
	n.logger.Info("convert.normalize.ok", "pages", len(pages), "mime_type", mimePNG)
	return pages, mimePNG, nil
}
