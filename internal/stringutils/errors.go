package stringutils

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedNumber is wrapped by ParseError when the text is not a
	// decimal floating-point literal.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrOutOfRange is wrapped by ParseError when the literal is well formed
	// but its magnitude does not fit in a float64.
	ErrOutOfRange = errors.New("number out of range")
)

// ParseError describes a failed ToDouble conversion.
type ParseError struct {
	// Input is the text that was being parsed, before whitespace trimming.
	Input string

	// Err is ErrMalformedNumber or ErrOutOfRange.
	Err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}
