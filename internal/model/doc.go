// Package model defines the shared value types for the strutil CLI.
//
// This package contains pure data structures with no external dependencies:
// the Delimiter and OutputFormat values parsed from flags and config, the
// process exit codes (ExitCode), and a custom error type (CLIError) that
// carries an exit code for proper OS process exit handling.
package model
