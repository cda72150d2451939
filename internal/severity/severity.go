// Package severity provides severity level constants for issues reported
// while generating endpoint code.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Critical
package severity

// Severity indicates the severity level of a generation issue.
type Severity int

const (
	// SeverityInfo indicates informational messages about generation choices.
	SeverityInfo Severity = iota

	// SeverityWarning indicates output was altered to stay compilable
	// (renamed method, dropped duplicate parameter).
	SeverityWarning

	// SeverityCritical indicates an operation that could not be generated.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name so JSON and YAML reports stay readable.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
