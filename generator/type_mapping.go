package generator

// Go types produced by the fixed OpenAPI type table.
const (
	goTypeInt64  = "int64"
	goTypeFloat  = "float64"
	goTypeBool   = "bool"
	goTypeSlice  = "[]any"
	goTypeMap    = "map[string]any"
	goTypeString = "string"
)

// TypeRef is the Go type of a generated parameter.
type TypeRef struct {
	// Base is the Go type from the OpenAPI type table
	Base string `json:"base" yaml:"base"`
	// Optional marks parameters that may be omitted by the caller
	Optional bool `json:"optional" yaml:"optional"`
}

// String returns the Go type used in method signatures. Optional scalars are
// pointers; slices and maps are already nil-able and keep their type.
func (t TypeRef) String() string {
	if t.Optional && !t.Nilable() {
		return "*" + t.Base
	}
	return t.Base
}

// Nilable reports whether the base type has a nil value of its own.
func (t TypeRef) Nilable() bool {
	return t.Base == goTypeSlice || t.Base == goTypeMap
}

// IsPointer reports whether the signature type is a pointer.
func (t TypeRef) IsPointer() bool {
	return t.Optional && !t.Nilable()
}

// goBaseType maps an OpenAPI type name to a Go type. Unknown and missing
// types map to string.
func goBaseType(openAPIType string) string {
	switch openAPIType {
	case "integer":
		return goTypeInt64
	case "number":
		return goTypeFloat
	case "boolean":
		return goTypeBool
	case "array":
		return goTypeSlice
	case "object":
		return goTypeMap
	default:
		return goTypeString
	}
}

// newTypeRef builds the TypeRef for a parameter.
func newTypeRef(openAPIType string, required bool) TypeRef {
	return TypeRef{Base: goBaseType(openAPIType), Optional: !required}
}
