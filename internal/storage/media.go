package storage

import "context"

// MediaAsset is an uploaded blob with its stable public URL.
type MediaAsset struct {
	Key       string
	MIMEType  string
	PublicURL string
	Bytes     []byte
}

// MediaStore persists uploaded documents and hands back a public URL.
// Assets are immutable once written; an asset is only deleted when the
// document behind it ends up storing no records at all.
type MediaStore interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (*MediaAsset, error)
	Delete(ctx context.Context, key string) error
}
