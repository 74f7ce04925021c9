package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NormalizeRecords accepts either a single JSON object or a JSON array of
// objects and always returns an array. The extraction service is free to
// answer in either shape per batch; downstream code only deals with one.
func NormalizeRecords(raw []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty extraction payload")
	}
	if trimmed[0] == '[' {
		var records []json.RawMessage
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode record array: %w", err)
		}
		return records, nil
	}
	var record json.RawMessage
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return []json.RawMessage{record}, nil
}
