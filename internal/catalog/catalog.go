// Package catalog holds the prompt catalogs: the fixed mapping from field
// name to extraction instruction and expected value shape. Catalogs are
// versioned configuration data, built once per run and read-only thereafter.
package catalog

import "fmt"

// Shape is the expected structural category of a field's value. It is fixed
// per field at catalog-definition time and never inferred from model output.
type Shape string

const (
	// Scalar fields normalize to a single string.
	Scalar Shape = "scalar"
	// FlatList fields normalize to an ordered []string split on
	// newline/bullet delimiters.
	FlatList Shape = "flat_list"
	// StructuredList fields normalize to a parsed JSON value, falling back
	// to the raw string when the model output is not valid JSON.
	StructuredList Shape = "structured_list"
)

// ValidShape reports whether s is one of the known shapes.
func ValidShape(s Shape) bool {
	switch s {
	case Scalar, FlatList, StructuredList:
		return true
	}
	return false
}

// FileNameKey is reserved for the document identifier in every record and may
// not be used as a catalog field name.
const FileNameKey = "file_name"

// Field pairs a field name with its extraction prompt and expected shape.
type Field struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
	Shape  Shape  `json:"shape"`
}

// Catalog is an ordered set of fields. Iteration order is definition order,
// which fixes the per-document extraction order.
type Catalog struct {
	Name   string
	Fields []Field
}

// Len returns the number of fields in the catalog.
func (c Catalog) Len() int { return len(c.Fields) }

// validate enforces the catalog invariants shared by built-in variants and
// file-loaded catalogs.
func validate(fields []Field) error {
	if len(fields) == 0 {
		return fmt.Errorf("catalog has no fields")
	}
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("field %d: name is required", i)
		}
		if f.Name == FileNameKey {
			return fmt.Errorf("field %q: name is reserved", FileNameKey)
		}
		if f.Prompt == "" {
			return fmt.Errorf("field %q: prompt is required", f.Name)
		}
		if !ValidShape(f.Shape) {
			return fmt.Errorf("field %q: unknown shape %q", f.Name, f.Shape)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("field %q: duplicate name", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}
