package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrorType classifies failures that abort a strmap run
type ErrorType string

const (
	// ErrorTypeInvalidArgument represents unusable command-line arguments
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
	// ErrorTypeConfigParsing represents configuration parsing failures
	ErrorTypeConfigParsing ErrorType = "config_parsing_failed"
	// ErrorTypeLogFileOpen represents log file opening failures
	ErrorTypeLogFileOpen ErrorType = "log_file_open_failed"
	// ErrorTypeInputRead represents failures reading input lines
	ErrorTypeInputRead ErrorType = "input_read_failed"
	// ErrorTypeInteractiveInput represents a refusal to read from a terminal
	ErrorTypeInteractiveInput ErrorType = "interactive_input"
	// ErrorTypeMappingFailed represents lines that could not be decoded
	ErrorTypeMappingFailed ErrorType = "mapping_failed"
	// ErrorTypeUserInterrupted represents user interruption
	ErrorTypeUserInterrupted ErrorType = "user_interrupted"
)

// RunError represents an error that ends a strmap run
type RunError struct {
	Type      ErrorType
	Message   string
	Component string
	RunID     string
	Err       error
}

// Error implements the error interface
func (e *RunError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v (component: %s, run_id: %s)", e.Type, e.Message, e.Err, e.Component, e.RunID)
	}
	return fmt.Sprintf("%s: %s (component: %s, run_id: %s)", e.Type, e.Message, e.Component, e.RunID)
}

// Is reports whether target is a *RunError, so errors.Is matches any run error.
func (e *RunError) Is(target error) bool {
	_, ok := target.(*RunError)
	return ok
}

// Unwrap implements error wrapping for errors.Unwrap
func (e *RunError) Unwrap() error {
	return e.Err
}

// HandleRunError writes a human-readable report of e to w and logs it
// through the default slog logger.
func HandleRunError(w io.Writer, e *RunError) {
	// Build the report first so concurrent writers cannot interleave it
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", e.Type)
	if e.Component != "" {
		fmt.Fprintf(&b, "  Component: %s\n", e.Component)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, "  Details: %s: %v\n", e.Message, e.Err)
	} else {
		fmt.Fprintf(&b, "  Details: %s\n", e.Message)
	}
	if e.RunID != "" {
		fmt.Fprintf(&b, "  Run ID: %s\n", e.RunID)
	}
	fmt.Fprint(w, b.String())

	attrs := []any{
		"error_type", string(e.Type),
		"error_message", e.Message,
		"component", e.Component,
		"run_id", e.RunID,
	}
	if e.Err != nil {
		attrs = append(attrs, "error", e.Err.Error())
	}
	slog.Error("Run aborted", attrs...)
}
