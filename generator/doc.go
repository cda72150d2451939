// Package generator derives client methods from an OpenAPI 3.x description
// and renders them as Go source.
//
// Each operation becomes one method on the SDK client type. The method takes
// a context, then the required parameters in document order, then the
// optional ones. Parameters come from the path item, the operation and the
// properties of the application/json request body schema. Types follow a
// fixed table:
//
//	integer -> int64
//	number  -> float64
//	boolean -> bool
//	array   -> []any
//	object  -> map[string]any
//	other   -> string
//
// Optional scalars are passed as pointers; nil values are left out of the
// request.
//
// Two files are produced: the methods file (endpoints.go by default) and the
// interface file (endpoints_iface.go) that declares every method signature and
// asserts the client implements it. Nothing is written until both render.
//
// # Quick Start
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("https://api.namabar.krd/openapi/v1.json"),
//	    generator.WithPackageName("namabar"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := result.WriteFiles("."); err != nil {
//	    log.Fatal(err)
//	}
package generator
