package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// catalogSchema constrains catalog files before field-level validation runs.
// Kept as a generic map and marshaled for the compiler, same as the shapes we
// validate elsewhere.
func catalogSchema() map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []string{"name", "prompt", "shape"},
			"properties": map[string]any{
				"name":   map[string]any{"type": "string", "minLength": 1},
				"prompt": map[string]any{"type": "string", "minLength": 1},
				"shape":  map[string]any{"enum": []string{string(Scalar), string(FlatList), string(StructuredList)}},
			},
		},
	}
}

// Load reads a catalog variant from a JSON file: an array of
// {name, prompt, shape} objects. The file is validated against a JSON Schema
// first so that a malformed catalog fails loudly at startup, not mid-run.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	if err := validateAgainstSchema(data); err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}

	var fields []Field
	if err := json.Unmarshal(data, &fields); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	if err := validate(fields); err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Catalog{Name: name, Fields: fields}, nil
}

// Select resolves the -catalog flag value: empty or a built-in variant name
// picks that variant, anything else is treated as a file path.
func Select(value string) (Catalog, error) {
	switch value {
	case "", SOCV1:
		return Default(), nil
	case SOCV2:
		return Bulleted(), nil
	default:
		return Load(value)
	}
}

func validateAgainstSchema(data []byte) error {
	b, err := json.Marshal(catalogSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("catalog.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("catalog.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("does not match catalog schema: %w", err)
	}
	return nil
}
