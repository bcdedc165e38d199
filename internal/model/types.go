package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Delimiter is the single character that separates tokens in a
// delimited string.
type Delimiter rune

// DefaultDelimiter is used when neither a flag nor the config file
// names one.
const DefaultDelimiter Delimiter = ':'

// ErrInvalidDelimiter is returned by ParseDelimiter for anything that is
// not exactly one character (or one of the recognised names).
var ErrInvalidDelimiter = errors.New("delimiter must be exactly one character")

// delimiterNames maps spelled-out names and escapes to their characters.
// Names make shell quoting of whitespace delimiters unnecessary.
var delimiterNames = map[string]Delimiter{
	"tab":       '\t',
	`\t`:        '\t',
	`\n`:        '\n',
	"space":     ' ',
	"comma":     ',',
	"colon":     ':',
	"semicolon": ';',
	"pipe":      '|',
}

// Rune returns the delimiter as a rune for use with the stringutils package.
func (d Delimiter) Rune() rune {
	return rune(d)
}

// String returns the delimiter character itself.
func (d Delimiter) String() string {
	return string(rune(d))
}

// ParseDelimiter converts user input into a Delimiter.
//
// Accepted forms:
//   - a single Unicode character: ":", ",", "→"
//   - the escapes `\t` and `\n`
//   - the names tab, space, comma, colon, semicolon, pipe (case-insensitive)
func ParseDelimiter(s string) (Delimiter, error) {
	if d, ok := delimiterNames[strings.ToLower(s)]; ok {
		return d, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: %w", s, ErrInvalidDelimiter)
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return 0, fmt.Errorf("invalid delimiter %q: %w", s, ErrInvalidDelimiter)
	}
	return Delimiter(r), nil
}

// OutputFormat selects how command results are printed.
type OutputFormat string

const (
	// OutputText prints scalars as-is and arrays one token per line.
	OutputText OutputFormat = "text"

	// OutputJSON prints an indented JSON document.
	OutputJSON OutputFormat = "json"

	// OutputYAML prints a YAML document.
	OutputYAML OutputFormat = "yaml"
)

// String returns the string representation of OutputFormat.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks whether the OutputFormat is one of the predefined formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputText, OutputJSON, OutputYAML:
		return true
	default:
		return false
	}
}

// IsStructured reports whether the format is a machine-readable document
// (JSON or YAML) rather than plain text.
func (f OutputFormat) IsStructured() bool {
	return f == OutputJSON || f == OutputYAML
}

// ParseOutputFormat converts a string to an OutputFormat.
// Returns an error if the string does not match any valid format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: text, json, yaml)", s)
	}
	return format, nil
}

// ExitCode defines the process exit codes of the strutil CLI.
// Scripts can branch on these without parsing stderr.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidArgument indicates a malformed flag or argument,
	// such as a multi-character delimiter.
	ExitInvalidArgument ExitCode = 2

	// ExitParseError indicates numeric text could not be parsed.
	ExitParseError ExitCode = 3

	// ExitConfigError indicates the config file could not be read or
	// contained invalid values.
	ExitConfigError ExitCode = 4

	// ExitNotEmpty is returned by "empty --check" when the input holds
	// non-whitespace characters.
	ExitNotEmpty ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
