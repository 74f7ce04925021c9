package llm

import "github.com/healthtrack-labs/healthtrack/constants"

const datePattern = `^\d{4}-\d{2}-\d{2}$`

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset) for one
// extracted record of the given kind, as a generic map. We pass it to the
// extraction service as a tool parameter schema and also use it locally to
// validate what comes back.
func BuildRecordJSONSchema(kind constants.DocumentKind) map[string]any {
	switch kind {
	case constants.KindHealthRecord:
		return healthRecordSchema()
	case constants.KindImagingResult:
		return imagingSchema()
	case constants.KindPrescription:
		return prescriptionSchema()
	}
	return map[string]any{"type": "object"}
}

func healthRecordSchema() map[string]any {
	component := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"component_name": map[string]any{"type": "string", "minLength": 1},
			// number when the report prints a measurement, string for
			// qualitative results ("Negative", "Trace").
			"value":             map[string]any{"type": []string{"number", "string"}},
			"unit":              map[string]any{"type": "string"},
			"normal_range_min":  map[string]any{"type": "number"},
			"normal_range_max":  map[string]any{"type": "number"},
			"normal_range_text": map[string]any{"type": "string"},
		},
		"required": []string{"component_name", "value"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"test_date":  map[string]any{"type": "string", "pattern": datePattern},
			"components": map[string]any{"type": "array", "items": component},
		},
		"required": []string{"test_date", "components"},
	}
}

func imagingSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			// literal NOT_VISIBLE when no date can be read off the scan
			"test_date": map[string]any{
				"type":    "string",
				"pattern": `^(\d{4}-\d{2}-\d{2}|` + constants.DateNotVisible + `)$`,
			},
			"test_title":   map[string]any{"type": "string", "minLength": 1},
			"observations": map[string]any{"type": "string"},
			"doctor_name":  map[string]any{"type": "string"},
		},
		"required": []string{"test_date", "test_title"},
	}
}

func prescriptionSchema() map[string]any {
	flag := map[string]any{"type": "string", "enum": []string{"true", "false"}}
	medicine := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"medicine_name":    map[string]any{"type": "string", "minLength": 1},
			"food_instruction": map[string]any{"type": "string", "enum": []string{"before_food", "after_food"}},
			"start_date":       map[string]any{"type": "string", "pattern": datePattern},
			"end_date":         map[string]any{"type": "string", "pattern": datePattern},
			"notes":            map[string]any{"type": "string"},
			"morning":          flag,
			"afternoon":        flag,
			"evening":          flag,
			"night":            flag,
		},
		"required": []string{"medicine_name", "morning", "afternoon", "evening", "night"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"prescription_date": map[string]any{"type": "string", "pattern": datePattern},
			"doctor_name":       map[string]any{"type": "string"},
			"medicines":         map[string]any{"type": "array", "items": medicine},
		},
		"required": []string{"medicines"},
	}
}

// BuildClassificationJSONSchema constrains the classifier tool call to the
// closed document-kind taxonomy.
func BuildClassificationJSONSchema() map[string]any {
	kinds := make([]string, 0, len(constants.DocumentKinds))
	for _, k := range constants.DocumentKinds {
		kinds = append(kinds, string(k))
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"document_kind": map[string]any{"type": "string", "enum": kinds},
		},
		"required": []string{"document_kind"},
	}
}
