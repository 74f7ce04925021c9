package convert

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-labs/healthtrack/internal/common"
)

type fakeRasterizer struct {
	bytesFn func(ctx context.Context, data []byte) ([]string, error)
	urlFn   func(ctx context.Context, url string) ([]string, error)
}

func (f *fakeRasterizer) RasterizeBytes(ctx context.Context, data []byte) ([]string, error) {
	return f.bytesFn(ctx, data)
}
func (f *fakeRasterizer) RasterizeURL(ctx context.Context, url string) ([]string, error) {
	return f.urlFn(ctx, url)
}

func TestNormalizeImagePassthrough(t *testing.T) {
	n := NewNormalizer(&fakeRasterizer{}, nil)
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	pages, mime, err := n.Normalize(context.Background(), data, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
	require.Len(t, pages, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), pages[0].Base64)
	assert.Equal(t, "image/jpeg", pages[0].MIMEType)
	assert.Equal(t, 1, pages[0].Ordinal)
}

func TestNormalizePDFRasterizes(t *testing.T) {
	raster := &fakeRasterizer{
		bytesFn: func(_ context.Context, _ []byte) ([]string, error) {
			return []string{"cGFnZTE=", "cGFnZTI=", "cGFnZTM="}, nil
		},
	}
	n := NewNormalizer(raster, nil)

	pages, mime, err := n.Normalize(context.Background(), []byte("%PDF-1.7"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	require.Len(t, pages, 3)
	for i, p := range pages {
		assert.Equal(t, i+1, p.Ordinal)
		assert.Equal(t, "image/png", p.MIMEType)
	}
	assert.Equal(t, "cGFnZTE=", pages[0].Base64)
	assert.Equal(t, "cGFnZTM=", pages[2].Base64)
}

func TestNormalizePDFZeroPagesFails(t *testing.T) {
	raster := &fakeRasterizer{
		bytesFn: func(context.Context, []byte) ([]string, error) { return nil, nil },
	}
	n := NewNormalizer(raster, nil)

	_, _, err := n.Normalize(context.Background(), []byte("%PDF-1.7"), "application/pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConversionFailed)
}

func TestNormalizePDFRasterizerErrorIsConversionFailure(t *testing.T) {
	raster := &fakeRasterizer{
		bytesFn: func(context.Context, []byte) ([]string, error) {
			return nil, errors.New("service unavailable")
		},
	}
	n := NewNormalizer(raster, nil)

	_, _, err := n.Normalize(context.Background(), []byte("%PDF-1.7"), "application/pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConversionFailed)
}

func TestNormalizePDFKeepsUpstreamSentinel(t *testing.T) {
	raster := &fakeRasterizer{
		bytesFn: func(context.Context, []byte) ([]string, error) {
			return nil, common.NewUpstreamError("rasterization service", 503, "overloaded")
		},
	}
	n := NewNormalizer(raster, nil)

	_, _, err := n.Normalize(context.Background(), []byte("%PDF-1.7"), "application/pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConversionFailed)
	assert.ErrorIs(t, err, common.ErrUpstreamService)
}

func TestNormalizeURLRasterizesPDFByURL(t *testing.T) {
	var gotURL string
	raster := &fakeRasterizer{
		urlFn: func(_ context.Context, url string) ([]string, error) {
			gotURL = url
			return []string{"cGFnZTE="}, nil
		},
	}
	n := NewNormalizer(raster, nil)

	pages, mime, err := n.NormalizeURL(context.Background(), "https://media.example.com/doc.pdf", "application/pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/doc.pdf", gotURL)
	assert.Equal(t, "image/png", mime)
	require.Len(t, pages, 1)
	assert.Equal(t, "cGFnZTE=", pages[0].Base64)
}

func TestNormalizeURLDelegatesForNonPDF(t *testing.T) {
	n := NewNormalizer(&fakeRasterizer{}, nil)
	data := []byte("png bytes")

	pages, mime, err := n.NormalizeURL(context.Background(), "https://example.com/scan.png", "image/png", data)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	require.Len(t, pages, 1)
}
