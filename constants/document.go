package constants

import "strings"

// DocumentKind is the canonical classification for an uploaded medical document.
type DocumentKind string

// Stable values (store these exact strings in DB and prompts).
const (
	KindImagingResult DocumentKind = "imaging_result"
	KindHealthRecord  DocumentKind = "health_record"
	KindPrescription  DocumentKind = "prescription"
)

// DocumentKinds is the closed taxonomy offered to the classifier.
var DocumentKinds = []DocumentKind{KindImagingResult, KindHealthRecord, KindPrescription}

// ParseDocumentKind maps a raw classifier label onto the taxonomy.
func ParseDocumentKind(s string) (DocumentKind, bool) {
	switch DocumentKind(strings.TrimSpace(strings.ToLower(s))) {
	case KindImagingResult:
		return KindImagingResult, true
	case KindHealthRecord:
		return KindHealthRecord, true
	case KindPrescription:
		return KindPrescription, true
	}
	return "", false
}

// DateNotVisible is the sentinel the extractor returns when a document
// carries no readable date. The pipeline rewrites it to today's date.
const DateNotVisible = "NOT_VISIBLE"

// ExtractionBatchSize is the number of page images submitted per
// extraction call, for every document kind.
const ExtractionBatchSize = 3

// AllowedExtensions holds the default allowed file extensions for document uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
