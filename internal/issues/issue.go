// Package issues provides the issue type reported by the endpoint generator.
package issues

import (
	"fmt"

	"github.com/namabar/namabar-go/internal/severity"
)

// Issue represents a single problem or notable decision made during generation.
type Issue struct {
	// Path is the JSON path to the affected element (e.g., "paths./messages.post")
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Operation is the derived method name the issue relates to, if any
	Operation string `json:"operation,omitempty" yaml:"operation,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	path := i.Path
	if i.Operation != "" {
		path = fmt.Sprintf("%s (%s)", i.Path, i.Operation)
	}
	return fmt.Sprintf("%s %s: %s", symbol, path, i.Message)
}

// Count tallies issues per severity.
func Count(list []Issue) (info, warning, critical int) {
	for _, issue := range list {
		switch issue.Severity {
		case severity.SeverityInfo:
			info++
		case severity.SeverityWarning:
			warning++
		case severity.SeverityCritical:
			critical++
		}
	}
	return info, warning, critical
}
