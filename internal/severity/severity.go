// Package severity provides the severity levels attached to issues reported
// while post-processing models and operations.
//
// Levels are ordered from least to most severe: Info < Warning < Error.
package severity

import "fmt"

// Severity indicates how much attention an issue needs.
type Severity int

const (
	// SeverityInfo records a fallback the generator applied silently, such as
	// escaping a reserved word or using the default API name.
	SeverityInfo Severity = iota

	// SeverityWarning indicates output that is valid but probably not what the
	// author intended, such as a property type that fell back to any.
	SeverityWarning

	// SeverityError indicates an element that could not be processed.
	SeverityError
)

// String returns the lowercase name of the level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AtLeast reports whether s is as severe as min or more.
func (s Severity) AtLeast(min Severity) bool {
	return s >= min
}

// Parse returns the level named by str and false if str names none.
func Parse(str string) (Severity, bool) {
	switch str {
	case "info":
		return SeverityInfo, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	default:
		return SeverityInfo, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("severity: unknown level %q", text)
	}
	*s = parsed
	return nil
}
