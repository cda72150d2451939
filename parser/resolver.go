package parser

import (
	"strings"

	"github.com/namabar/namabar-go/oaserrors"
)

// ResolveSchemaRef returns the schema stored under components.schemas for a
// reference of the form "#/components/schemas/Name". The returned pointer is
// the stored schema itself, not a copy.
func (d *Document) ResolveSchemaRef(ref string) (*Schema, error) {
	name, err := componentName(ref, SchemaRefPrefix)
	if err != nil {
		return nil, err
	}
	if d.Components != nil {
		if schema, ok := d.Components.Schemas.Get(name); ok && schema != nil {
			return schema, nil
		}
	}
	return nil, &oaserrors.ReferenceError{Ref: ref, Message: "schema not found in components.schemas"}
}

// ResolveParameterRef returns the parameter stored under components.parameters.
func (d *Document) ResolveParameterRef(ref string) (*Parameter, error) {
	name, err := componentName(ref, ParameterRefPrefix)
	if err != nil {
		return nil, err
	}
	if d.Components != nil {
		if param, ok := d.Components.Parameters.Get(name); ok && param != nil {
			return param, nil
		}
	}
	return nil, &oaserrors.ReferenceError{Ref: ref, Message: "parameter not found in components.parameters"}
}

// ResolveRequestBodyRef returns the request body stored under components.requestBodies.
func (d *Document) ResolveRequestBodyRef(ref string) (*RequestBody, error) {
	name, err := componentName(ref, RequestBodyRefPrefix)
	if err != nil {
		return nil, err
	}
	if d.Components != nil {
		if body, ok := d.Components.RequestBodies.Get(name); ok && body != nil {
			return body, nil
		}
	}
	return nil, &oaserrors.ReferenceError{Ref: ref, Message: "request body not found in components.requestBodies"}
}

// ResolveSchema follows a single level of $ref. Schemas without a reference
// are returned unchanged; nested references inside the result are left alone.
func (d *Document) ResolveSchema(schema *Schema) (*Schema, error) {
	if schema == nil || schema.Ref == "" {
		return schema, nil
	}
	return d.ResolveSchemaRef(schema.Ref)
}

// componentName extracts and unescapes the component key from a local reference.
func componentName(ref, prefix string) (string, error) {
	if !strings.HasPrefix(ref, "#/") {
		return "", &oaserrors.ReferenceError{Ref: ref, Message: "only local references are supported"}
	}
	if !strings.HasPrefix(ref, prefix) {
		return "", &oaserrors.ReferenceError{Ref: ref, Message: "expected a reference under " + strings.TrimSuffix(prefix, "/")}
	}
	name := strings.TrimPrefix(ref, prefix)
	if name == "" || strings.Contains(name, "/") {
		return "", &oaserrors.ReferenceError{Ref: ref, Message: "reference must name a single component"}
	}
	// JSON Pointer escapes: ~1 is "/", ~0 is "~" (decoded in that order)
	name = strings.ReplaceAll(name, "~1", "/")
	name = strings.ReplaceAll(name, "~0", "~")
	return name, nil
}
