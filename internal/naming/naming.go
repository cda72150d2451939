// Package naming provides shared string case conversion utilities.
package naming

import (
	"regexp"
	"strings"
)

var (
	acronymBoundary = regexp.MustCompile(`([A-Z\d]+)([A-Z][a-z])`)
	wordBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// ToSnakeCase converts a wire name to snake_case.
// Acronyms stay together, and hyphens, dots, slashes and spaces become underscores.
// Example: "externalId" -> "external_id"
// Example: "APIKey" -> "api_key"
// Example: "X-Request-ID" -> "x_request_id"
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}")
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	s = strings.Map(func(r rune) rune {
		switch r {
		case '-', '.', '/', ' ':
			return '_'
		}
		return r
	}, s)

	return strings.ToLower(s)
}
