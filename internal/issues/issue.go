// Package issues provides the issue record reported by model and operation
// post-processing.
package issues

import (
	"fmt"

	"github.com/erraggy/tscodegen/internal/severity"
)

// Issue describes one fallback or problem observed while processing a model
// or an operation group.
type Issue struct {
	// Path locates the element, e.g. "models.Pet.properties.tags" or
	// "operations.PetController.getPet".
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description of the issue.
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue.
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Value is the input that triggered the issue (optional).
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	// Result is what the generator produced instead (optional).
	Result string `json:"result,omitempty" yaml:"result,omitempty"`
}

// String returns a formatted line for the issue, prefixed with a symbol for
// its severity.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Value != "" || i.Result != "" {
		result += fmt.Sprintf(" (%q -> %q)", i.Value, i.Result)
	}
	return result
}

// Count returns the number of issues at or above min.
func Count(list []Issue, min severity.Severity) int {
	n := 0
	for _, issue := range list {
		if issue.Severity.AtLeast(min) {
			n++
		}
	}
	return n
}
