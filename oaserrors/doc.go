// Package oaserrors provides structured error types for namabar-go.
//
// Import path: github.com/namabar/namabar-go/oaserrors
//
// # Error Types
//
//   - [FetchError]: the specification URL or file could not be read
//   - [ParseError]: YAML/JSON decoding failures
//   - [ValidationError]: required top-level keys are missing
//   - [ReferenceError]: a $ref does not point at a known component
//   - [ConfigError]: invalid options
//
// Each type has a sentinel ([ErrFetch], [ErrParse], [ErrValidation],
// [ErrReference], [ErrConfig]) matched through errors.Is.
package oaserrors
