// Package cli — number.go implements "strutil format" and "strutil parse",
// the canonical float64 <-> string conversions.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/strutil/internal/model"
	"github.com/shinji-kodama/strutil/internal/stringutils"
)

// NewFormatCommand creates the "format" cobra command.
func NewFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <number>",
		Short: "Print a number in canonical decimal form",
		Long: `Print the shortest fixed-notation decimal string for a number.

The result never uses an exponent, digit grouping, or trailing zeros.
NaN and the infinities print as NaN, Infinity and -Infinity.

Examples:
  strutil format 3.140
  strutil format 1e21
  strutil format -- -0.50`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args[0])
		},
	}
}

// runFormat parses the argument and re-renders it with FromDouble.
func runFormat(cmd *cobra.Command, text string) error {
	value, err := stringutils.ParseDouble(text)
	if err != nil {
		return parseFailure(err)
	}

	formatted := stringutils.FromDouble(value)
	return printResult(cmd.OutOrStdout(), resultDocument{
		Command: "format",
		Input:   text,
		Result:  formatted,
	}, []string{formatted})
}

// parseFlags holds the flag values for the parse command.
type parseFlags struct {
	// null selects the absent input instead of a positional argument.
	null bool
}

// NewParseCommand creates the "parse" cobra command.
func NewParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse <string>",
		Short: "Parse a decimal number",
		Long: `Parse text as a decimal floating-point literal.

Sign, fraction, and exponent are accepted; surrounding whitespace is ignored.
An absent input parses to NaN. Malformed text exits with status 3.

Structured output carries the value in canonical string form so that
NaN and the infinities stay representable in JSON.

Examples:
  strutil parse 3.1415
  strutil parse " 2.5E-2 "
  strutil parse --null`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.null, "null", false, "Use the absent value as input")

	return cmd
}

// runParse applies ToDouble to the resolved input.
func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	input, err := resolveInput(args, flags.null)
	if err != nil {
		return err
	}

	value, err := stringutils.ToDouble(input)
	if err != nil {
		return parseFailure(err)
	}
	VerboseLog("Parsed %s as %v", input, value)

	formatted := stringutils.FromDouble(value)
	return printResult(cmd.OutOrStdout(), resultDocument{
		Command: "parse",
		Input:   input,
		Result:  formatted,
	}, []string{formatted})
}

// parseFailure maps a stringutils parse error to an ExitParseError CLIError.
func parseFailure(err error) error {
	var parseErr *stringutils.ParseError
	if errors.As(err, &parseErr) {
		return model.WrapCLIError(model.ExitParseError,
			fmt.Sprintf("cannot parse %q as a number", parseErr.Input), parseErr.Err)
	}
	return model.WrapCLIError(model.ExitParseError, "cannot parse number", err)
}
