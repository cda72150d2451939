// Package naming provides case conversion utilities shared by the generator
// and the CLI.
//
// ToSnakeCase mirrors the underscore inflection used for documenting
// parameter names, so generated comments read "external_id" for the wire
// name "externalId".
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
