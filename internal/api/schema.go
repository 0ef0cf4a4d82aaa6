package api

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const problemsSchemaURL = "schema://problems.json"

// problemsSchema describes the GET /problems payload.
var problemsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "title"},
		"properties": map[string]any{
			"id":          map[string]any{"type": "integer"},
			"title":       map[string]any{"type": "string"},
			"difficulty":  map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"template":    map[string]any{"type": "string"},
			"test_case":   map[string]any{"type": "string"},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func problemsValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(problemsSchemaURL, problemsSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(problemsSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateProblems checks a raw catalog payload against problemsSchema.
func validateProblems(raw []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := problemsValidator()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
