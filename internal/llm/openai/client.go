package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
)

const (
	classifyToolName = "classify_document"
	extractToolName  = "extract_records"
)

// Classify implements llm.DocumentExtractor. The model is forced to answer
// through the classification tool; a response without a structured selection
// is a classification failure, never silently defaulted.
func (c *Client) Classify(ctx context.Context, page llm.PageImage) (constants.DocumentKind, error) {
	return c.classify(ctx, pageContent("Classify this medical document.", []llm.PageImage{page}), page.MIMEType)
}

// ClassifyText classifies a free-text report instead of a page image.
func (c *Client) ClassifyText(ctx context.Context, text string) (constants.DocumentKind, error) {
	return c.classify(ctx, "Classify this medical document:\n\n"+text, "text/plain")
}

func (c *Client) classify(ctx context.Context, userContent any, mimeType string) (constants.DocumentKind, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.classify.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"mime_type", mimeType,
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": classifySystemPrompt()},
			{"role": "user", "content": userContent},
		},
		"tools": []map[string]any{{
			"type": "function",
			"function": map[string]any{
				"name":        classifyToolName,
				"description": "Select the kind of medical document shown.",
				"parameters":  llm.BuildClassificationJSONSchema(),
			},
		}},
		"tool_choice": map[string]any{
			"type":     "function",
			"function": map[string]any{"name": classifyToolName},
		},
	}

	args, err := c.callTool(ctx, body)
	if err != nil {
		c.log.Error("llm.classify.http_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}
	if args == nil {
		c.log.Error("llm.classify.no_tool_call", "req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("no structured classification returned: %w", common.ErrClassificationFailed)
	}
	if err := llm.ValidateClassification(args); err != nil {
		return "", fmt.Errorf("classification arguments: %v: %w", err, common.ErrClassificationFailed)
	}

	var selection struct {
		DocumentKind string `json:"document_kind"`
	}
	if err := json.Unmarshal(args, &selection); err != nil {
		return "", fmt.Errorf("decode classification: %v: %w", err, common.ErrClassificationFailed)
	}
	kind, ok := constants.ParseDocumentKind(selection.DocumentKind)
	if !ok {
		return "", fmt.Errorf("unknown document kind %q: %w", selection.DocumentKind, common.ErrClassificationFailed)
	}

	c.log.Info("llm.classify.ok",
		"req_id", rid,
		"kind", kind,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return kind, nil
}

// ExtractBatch implements llm.DocumentExtractor. One call carries all schema
// fields for the kind; the model may answer with a single record or an array,
// both are normalized to an array and validated per record.
func (c *Client) ExtractBatch(ctx context.Context, kind constants.DocumentKind, pages []llm.PageImage) ([]json.RawMessage, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"kind", kind,
		"pages", len(pages),
	)

	recordSchema := llm.BuildRecordJSONSchema(kind)
	// The tool accepts one record or several; the model picks.
	params := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"records": map[string]any{
				"oneOf": []map[string]any{
					recordSchema,
					{"type": "array", "items": recordSchema},
				},
			},
		},
		"required": []string{"records"},
	}

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": extractSystemPrompt(kind)},
			{"role": "user", "content": pageContent(extractUserPrompt(kind, len(pages)), pages)},
		},
		"tools": []map[string]any{{
			"type": "function",
			"function": map[string]any{
				"name":        extractToolName,
				"description": "Report the structured records extracted from the pages.",
				"parameters":  params,
			},
		}},
		"tool_choice": map[string]any{
			"type":     "function",
			"function": map[string]any{"name": extractToolName},
		},
	}

	args, err := c.callTool(ctx, body)
	if err != nil {
		c.log.Error("llm.extract.http_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	if args == nil {
		c.log.Error("llm.extract.no_tool_call", "req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("no structured extraction returned: %w", common.ErrExtractionFailed)
	}

	var wrapper struct {
		Records json.RawMessage `json:"records"`
	}
	if err := json.Unmarshal(args, &wrapper); err != nil {
		return nil, fmt.Errorf("decode extraction arguments: %v: %w", err, common.ErrExtractionFailed)
	}
	payload := wrapper.Records
	if len(payload) == 0 {
		// some models inline the record at the top level instead of
		// wrapping it under "records"
		payload = args
	}

	records, err := llm.NormalizeRecords(payload)
	if err != nil {
		return nil, fmt.Errorf("normalize extraction records: %v: %w", err, common.ErrExtractionFailed)
	}
	for i, rec := range records {
		if err := llm.ValidateRecord(kind, rec); err != nil {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "record", i, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds())
			return nil, fmt.Errorf("record %d schema validation: %v: %w", i, err, common.ErrExtractionFailed)
		}
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"kind", kind,
		"records", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return records, nil
}

// callTool posts a chat/completions body and returns the arguments of the
// first tool call, or nil when the model answered without one.
func (c *Client) callTool(ctx context.Context, body map[string]any) (json.RawMessage, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, _, err := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if err != nil {
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				ToolCalls []struct {
					Function struct {
						Name      string `json:"name"`
						Arguments string `json:"arguments"`
					} `json:"function"`
				} `json:"tool_calls"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode completion response: %w", err)
	}
	if len(cc.Choices) == 0 || len(cc.Choices[0].Message.ToolCalls) == 0 {
		return nil, nil
	}
	return json.RawMessage(cc.Choices[0].Message.ToolCalls[0].Function.Arguments), nil
}

// pageContent builds the mixed text+image user content for a set of pages.
func pageContent(prompt string, pages []llm.PageImage) []map[string]any {
	content := []map[string]any{{"type": "text", "text": prompt}}
	for _, p := range pages {
		if p.MIMEType == "text/plain" {
			continue
		}
		content = append(content, map[string]any{
			"type": "image_url",
			"image_url": map[string]any{
				"url": "data:" + p.MIMEType + ";base64," + p.Base64,
			},
		})
	}
	return content
}

func classifySystemPrompt() string {
	return strings.Join([]string{
		"You are a medical document classifier.",
		"Decide whether the document is an imaging result (x-ray, MRI, CT, ultrasound report),",
		"a health record (lab report with test components and values),",
		"or a prescription (list of medicines with dosage timings).",
		"Always answer through the classification tool; never answer in free text.",
	}, " ")
}

func extractSystemPrompt(kind constants.DocumentKind) string {
	parts := []string{
		"You are a medical records extractor. Report results ONLY through the extraction tool.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Never output null. If a field is not present, omit it.",
	}
	switch kind {
	case constants.KindHealthRecord:
		parts = append(parts,
			"Extract every test component with its value, unit and normal range.",
			"Numeric measurements get numeric values and numeric range bounds;",
			"qualitative results keep their text and the textual range.",
			"Prefix every component belonging to a urine panel with 'Urine Test'.",
		)
	case constants.KindImagingResult:
		parts = append(parts,
			"Extract the scan date, a short test title, the observations text and the doctor's name.",
			"If the date is not visible anywhere, use the literal string "+constants.DateNotVisible+".",
		)
	case constants.KindPrescription:
		parts = append(parts,
			"Extract the prescription date, the doctor's name, and every medicine with its",
			"before/after food instruction, start and end dates, notes, and the four timing",
			"flags morning/afternoon/evening/night as the strings \"true\" or \"false\".",
		)
	}
	return strings.Join(parts, " ")
}

func extractUserPrompt(kind constants.DocumentKind, pages int) string {
	return fmt.Sprintf("These are %d page(s) of a %s document. Extract the structured records.", pages, kind)
}
