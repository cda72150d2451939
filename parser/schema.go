package parser

import (
	"fmt"
	"slices"

	"go.yaml.in/yaml/v4"
)

// Schema is the subset of a JSON Schema object that drives parameter generation.
type Schema struct {
	// Ref is populated if this schema is a reference to a component schema
	Ref         string              `yaml:"$ref,omitempty"`
	Type        SchemaType          `yaml:"type,omitempty"`
	Format      string              `yaml:"format,omitempty"`
	Description string              `yaml:"description,omitempty"`
	Properties  OrderedMap[*Schema] `yaml:"properties,omitempty"`
	Required    []string            `yaml:"required,omitempty"`
	Items       *Schema             `yaml:"items,omitempty"`
	Enum        []any               `yaml:"enum,omitempty"`
	Nullable    bool                `yaml:"nullable,omitempty"`
	Default     any                 `yaml:"default,omitempty"`
	Example     any                 `yaml:"example,omitempty"`
}

// IsRequired reports whether the named property is listed in required.
func (s *Schema) IsRequired(name string) bool {
	return s != nil && slices.Contains(s.Required, name)
}

// PrimaryType returns the schema's type, ignoring "null" in OAS 3.1 type arrays.
// A nil schema has no type.
func (s *Schema) PrimaryType() string {
	if s == nil {
		return ""
	}
	return s.Type.Primary()
}

// SchemaType holds the "type" keyword, which is a string in OAS 3.0 and may be
// an array of strings in OAS 3.1.
type SchemaType []string

// Primary returns the first non-null type, or "" if none is declared.
func (t SchemaType) Primary() string {
	for _, typ := range t {
		if typ != "null" {
			return typ
		}
	}
	return ""
}

// IncludesNull reports whether an OAS 3.1 type array allows null.
func (t SchemaType) IncludesNull() bool {
	return slices.Contains(t, "null")
}

// UnmarshalYAML accepts either a single type name or a list of type names.
func (t *SchemaType) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	switch {
	case isNull(node):
		*t = nil
		return nil
	case node.Kind == yaml.ScalarNode:
		*t = SchemaType{node.Value}
		return nil
	case node.Kind == yaml.SequenceNode:
		var types []string
		if err := node.Decode(&types); err != nil {
			return err
		}
		*t = types
		return nil
	default:
		return fmt.Errorf("parser: line %d: schema type must be a string or a list, got %s", node.Line, kindName(node.Kind))
	}
}
