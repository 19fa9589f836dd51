package stringmapper

import "errors"

// DefaultIncompleteMessage is used by CheckLength when no message is supplied.
const DefaultIncompleteMessage = "Incomplete escape sequence"

// ErrInvalidArgument is the single error kind reported by the mappers and the
// codecs built on them. Failures differ only by their message.
var ErrInvalidArgument = errors.New("invalid argument")

// SequenceError reports malformed or truncated input at a recognized escape
// introducer.
type SequenceError struct {
	Message string // e.g. "Illegal JSON escape sequence"
	Index   int    // Index of the escape introducer in the input
}

func (e *SequenceError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is(err, ErrInvalidArgument).
func (e *SequenceError) Unwrap() error {
	return ErrInvalidArgument
}

// HexDigitError is returned by FromHexDigit for a unit outside 0-9, A-F, a-f.
type HexDigitError struct {
	Unit uint16
}

func (e *HexDigitError) Error() string {
	return "Illegal hexadecimal digit"
}

// Unwrap allows errors.Is(err, ErrInvalidArgument).
func (e *HexDigitError) Unwrap() error {
	return ErrInvalidArgument
}

// NewSequenceError creates a SequenceError for the escape starting at index.
func NewSequenceError(message string, index int) *SequenceError {
	return &SequenceError{Message: message, Index: index}
}
