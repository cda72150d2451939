// Package parser reads OpenAPI 3.x descriptions into a typed, read-only model.
//
// Documents may be JSON or YAML and are loaded from a URL, a file, a reader or
// a byte slice. Key order from the source is kept for paths, operations and
// schema properties so that anything generated from a document follows the
// order its authors wrote.
//
// Parsing fails unless the document root is a mapping that contains the
// openapi, paths and components keys. The returned error is an
// [oaserrors.ValidationError] naming every missing key.
//
// # Quick Start
//
//	p := parser.New()
//	result, err := p.Parse("https://api.namabar.krd/openapi/v1.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, path := range result.Document.Paths.Keys() {
//		item, _ := result.Document.Paths.Get(path)
//		for _, op := range item.Operations {
//			fmt.Println(op.Method, path, op.Operation.OperationID)
//		}
//	}
//
// # References
//
// Only local component references are resolved, one level at a time:
//
//	schema, err := result.Document.ResolveSchemaRef("#/components/schemas/SendMessageRequest")
package parser
