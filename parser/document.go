package parser

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/namabar/namabar-go/internal/httputil"
)

// Document is a parsed OpenAPI 3.x description.
// Callers should treat it as read-only.
type Document struct {
	// OpenAPI is the declared specification version (e.g., "3.0.1")
	OpenAPI string `yaml:"openapi"`
	// Info carries the API title, version and description
	Info *Info `yaml:"info,omitempty"`
	// Servers lists the base URLs the API is served from
	Servers []*Server `yaml:"servers,omitempty"`
	// Paths maps URL templates to path items in document order
	Paths OrderedMap[*PathItem] `yaml:"paths"`
	// Components holds reusable definitions targeted by $ref
	Components *Components `yaml:"components,omitempty"`
}

// Info is the API metadata object.
type Info struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Version     string `yaml:"version"`
}

// Server is a base URL the API is served from.
type Server struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description,omitempty"`
}

// Components holds the reusable definitions the generator can resolve.
type Components struct {
	Schemas       OrderedMap[*Schema]      `yaml:"schemas,omitempty"`
	Parameters    OrderedMap[*Parameter]   `yaml:"parameters,omitempty"`
	RequestBodies OrderedMap[*RequestBody] `yaml:"requestBodies,omitempty"`
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	// Ref is set when the path item is itself a reference; such items are not expanded
	Ref         string
	Summary     string
	Description string
	// Parameters apply to every operation under this path
	Parameters []*Parameter
	// Operations holds the HTTP operations in document order
	Operations []PathOperation
}

// PathOperation pairs an operation with its lower-case HTTP method.
type PathOperation struct {
	Method    string
	Operation *Operation
}

// Operation returns the operation for method, or nil.
func (p *PathItem) Operation(method string) *Operation {
	for _, po := range p.Operations {
		if po.Method == method {
			return po.Operation
		}
	}
	return nil
}

// UnmarshalYAML decodes a path item, collecting HTTP methods in document order.
// Keys that are not HTTP methods (extensions, servers) are ignored.
func (p *PathItem) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("parser: line %d: path item must be a mapping, got %s", node.Line, kindName(node.Kind))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		var err error
		switch {
		case key == "$ref":
			err = value.Decode(&p.Ref)
		case key == "summary":
			err = value.Decode(&p.Summary)
		case key == "description":
			err = value.Decode(&p.Description)
		case key == "parameters":
			err = value.Decode(&p.Parameters)
		case httputil.IsHTTPMethod(key):
			var op Operation
			if err = value.Decode(&op); err == nil {
				p.Operations = append(p.Operations, PathOperation{Method: key, Operation: &op})
			}
		}
		if err != nil {
			return fmt.Errorf("parser: decoding path item %q: %w", key, err)
		}
	}
	return nil
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID string       `yaml:"operationId,omitempty"`
	Summary     string       `yaml:"summary,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Tags        []string     `yaml:"tags,omitempty"`
	Deprecated  bool         `yaml:"deprecated,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty"`
	RequestBody *RequestBody `yaml:"requestBody,omitempty"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Ref         string  `yaml:"$ref,omitempty"`
	Name        string  `yaml:"name,omitempty"`
	In          string  `yaml:"in,omitempty"`
	Description string  `yaml:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty"`
	Deprecated  bool    `yaml:"deprecated,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty"`
}

// RequestBody describes the payload of an operation.
type RequestBody struct {
	Ref         string                 `yaml:"$ref,omitempty"`
	Description string                 `yaml:"description,omitempty"`
	Required    bool                   `yaml:"required,omitempty"`
	Content     OrderedMap[*MediaType] `yaml:"content,omitempty"`
}

// MediaType holds the schema for one content type of a request body.
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty"`
}
