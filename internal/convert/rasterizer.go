package convert

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/healthtrack-labs/healthtrack/internal/common"
)

// Rasterizer converts a PDF into an ordered list of base64 PNG pages.
// Both call patterns of the conversion service are supported: raw bytes
// or the document's public URL.
type Rasterizer interface {
	RasterizeBytes(ctx context.Context, pdf []byte) ([]string, error)
	RasterizeURL(ctx context.Context, url string) ([]string, error)
}

// HTTPRasterizer calls an external PDF conversion API.
type HTTPRasterizer struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

func NewHTTPRasterizer(baseURL, apiKey string, logger *slog.Logger) *HTTPRasterizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPRasterizer{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 90 * time.Second},
		logger:  logger,
	}
}

func (r *HTTPRasterizer) RasterizeBytes(ctx context.Context, pdf []byte) ([]string, error) {
	return r.post(ctx, map[string]any{
		"file":   base64.StdEncoding.EncodeToString(pdf),
		"format": "png",
	})
}

func (r *HTTPRasterizer) RasterizeURL(ctx context.Context, url string) ([]string, error) {
	return r.post(ctx, map[string]any{
		"url":    url,
		"format": "png",
	})
}

func (r *HTTPRasterizer) post(ctx context.Context, body map[string]any) ([]string, error) {
	start := time.Now()

	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/convert", bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("convert.rasterize.send_error", "error", err)
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			r.logger.Warn("convert.rasterize.body_close_error", "error", err)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	r.logger.Info("convert.rasterize.response",
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if resp.StatusCode/100 != 2 {
		return nil, common.NewUpstreamError("rasterization service", resp.StatusCode, string(raw))
	}

	var out struct {
		Pages []string `json:"pages"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode conversion response: %w", err)
	}
	return out.Pages, nil
}
