package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/healthtrack-labs/healthtrack/constants"
)

// PageImage is one base64-encoded raster page of a document.
type PageImage struct {
	Base64   string
	MIMEType string
	Ordinal  int // 1-based
}

// Measurement is a tagged variant: a lab value is either numeric or
// textual, never both. The tag is decided by the JSON type the
// extraction service returned.
type Measurement struct {
	Num  *float64
	Text *string
}

func (m *Measurement) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		m.Num = &f
		m.Text = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	m.Text = &s
	m.Num = nil
	return nil
}

func (m Measurement) MarshalJSON() ([]byte, error) {
	if m.Num != nil {
		return json.Marshal(*m.Num)
	}
	if m.Text != nil {
		return json.Marshal(*m.Text)
	}
	return []byte("null"), nil
}

// IsNumeric reports whether the measurement carries a number.
func (m Measurement) IsNumeric() bool { return m.Num != nil }

// IsZero reports whether no value was extracted at all.
func (m Measurement) IsZero() bool { return m.Num == nil && m.Text == nil }

// Flag is a boolean-as-string timing flag as returned by the extractor.
type Flag string

func (f Flag) Bool() bool {
	switch strings.ToLower(strings.TrimSpace(string(f))) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// HealthComponent is one extracted lab-test component.
type HealthComponent struct {
	Name       string      `json:"component_name"`
	Value      Measurement `json:"value"`
	Unit       string      `json:"unit,omitempty"`
	NormalMin  *float64    `json:"normal_range_min,omitempty"`
	NormalMax  *float64    `json:"normal_range_max,omitempty"`
	NormalText string      `json:"normal_range_text,omitempty"`
}

// HealthRecordFields is the normalized shape we want for a lab report.
type HealthRecordFields struct {
	TestDate   string            `json:"test_date"` // YYYY-MM-DD
	Components []HealthComponent `json:"components"`
}

// ImagingFields is the normalized shape we want for an imaging report.
// TestDate may be the NOT_VISIBLE sentinel; the pipeline rewrites it.
type ImagingFields struct {
	TestDate     string `json:"test_date"`
	Title        string `json:"test_title"`
	Observations string `json:"observations,omitempty"`
	DoctorName   string `json:"doctor_name,omitempty"`
}

// MedicineFields is one medicine of a prescription document.
type MedicineFields struct {
	Name            string `json:"medicine_name"`
	FoodInstruction string `json:"food_instruction,omitempty"` // before_food | after_food
	StartDate       string `json:"start_date,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Morning         Flag   `json:"morning"`
	Afternoon       Flag   `json:"afternoon"`
	Evening         Flag   `json:"evening"`
	Night           Flag   `json:"night"`
}

// PrescriptionFields is the normalized shape we want for a prescription.
type PrescriptionFields struct {
	PrescribedOn string           `json:"prescription_date,omitempty"`
	DoctorName   string           `json:"doctor_name,omitempty"`
	Medicines    []MedicineFields `json:"medicines"`
}

// DocumentExtractor is the interface the pipeline depends on.
type DocumentExtractor interface {
	// Classify decides the document kind from its first page. The
	// service is forced into a structured selection; free-text answers
	// are a classification failure.
	Classify(ctx context.Context, page PageImage) (constants.DocumentKind, error)

	// ExtractBatch submits one batch of pages and returns the raw
	// records the service produced, normalized to an array and
	// validated against the kind's schema.
	ExtractBatch(ctx context.Context, kind constants.DocumentKind, pages []PageImage) ([]json.RawMessage, error)
}
