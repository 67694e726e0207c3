// Package tserrors provides structured error types for tscodegen.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing hosts to tell a bad configuration apart from a
// malformed path template or an unusable schema node.
//
// # Error Categories
//
//   - ConfigError: invalid configuration options or configuration files
//   - SchemaError: schema nodes the type resolver cannot work with (nil nodes, unknown kinds)
//   - PathTemplateError: unbalanced or nested braces in an operation path
//   - ResourceLimitError: schema nesting deeper than the configured limit
//
// # Usage with errors.As
//
//	path, err := pathtemplate.Rewrite(op.Path, n.ToVarName, cfg.SkipPathPrefix())
//	if err != nil {
//	    var tplErr *tserrors.PathTemplateError
//	    if errors.As(err, &tplErr) {
//	        log.Printf("bad path %q at offset %d", tplErr.Path, tplErr.Offset)
//	    }
//	}
package tserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrSchema indicates a schema node could not be resolved.
	ErrSchema = errors.New("schema error")

	// ErrPathTemplate indicates a malformed operation path template.
	ErrPathTemplate = errors.New("path template error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// ConfigError represents an invalid configuration or input.
// This includes invalid options, unreadable configuration files, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// SchemaError represents a schema node that cannot be turned into a type.
type SchemaError struct {
	// Path locates the node (e.g., "components.schemas.Pet.properties.tags.items")
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// PathTemplateError represents an operation path whose braces do not pair up.
type PathTemplateError struct {
	// Path is the raw operation path
	Path string
	// Offset is the byte offset of the offending character
	Offset int
	// Message describes what was wrong at Offset
	Message string
}

// Error returns a human-readable error message.
func (e *PathTemplateError) Error() string {
	msg := "path template error"
	if e.Path != "" {
		msg += fmt.Sprintf(" in %q at offset %d", e.Path, e.Offset)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PathTemplateError) Is(target error) bool {
	return target == ErrPathTemplate
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded (e.g., "schema_depth")
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
