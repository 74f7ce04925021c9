package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/healthtrack-labs/healthtrack/constants"
)

// The record schemas double as tool parameter schemas and as local
// validators for what the service sends back. They never change at
// runtime, so each kind is compiled exactly once here.
var (
	recordValidators     map[constants.DocumentKind]*jsonschema.Schema
	classificationSchema *jsonschema.Schema
)

func init() {
	recordValidators = make(map[constants.DocumentKind]*jsonschema.Schema, len(constants.DocumentKinds))
	for _, kind := range constants.DocumentKinds {
		recordValidators[kind] = mustCompile(string(kind)+".json", BuildRecordJSONSchema(kind))
	}
	classificationSchema = mustCompile("classification.json", BuildClassificationJSONSchema())
}

func mustCompile(name string, schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal schema %s: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return schema
}

// ValidateRecord checks one extracted record against its kind's schema.
func ValidateRecord(kind constants.DocumentKind, data []byte) error {
	schema, ok := recordValidators[kind]
	if !ok {
		return fmt.Errorf("no record schema for kind %q", kind)
	}
	return validate(schema, data)
}

// ValidateClassification checks a classifier tool call against the
// closed document-kind taxonomy.
func ValidateClassification(data []byte) error {
	return validate(classificationSchema, data)
}

func validate(schema *jsonschema.Schema, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
