// Package cli — roundtrip.go implements "strutil roundtrip", which checks
// that joining the split tokens reproduces the original input.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/strutil/internal/model"
	"github.com/shinji-kodama/strutil/internal/optional"
	"github.com/shinji-kodama/strutil/internal/stringutils"
)

// roundTripFlags holds the flag values for the roundtrip command.
type roundTripFlags struct {
	delimiter string
	null      bool
}

// roundTripResult is the structured result of a round-trip check.
type roundTripResult struct {
	Tokens optional.Value[[]string] `json:"tokens" yaml:"tokens"`
	Joined optional.Value[string]   `json:"joined" yaml:"joined"`
	Count  int                      `json:"count" yaml:"count"`
	OK     bool                     `json:"ok" yaml:"ok"`
}

// NewRoundTripCommand creates the "roundtrip" cobra command.
func NewRoundTripCommand() *cobra.Command {
	flags := &roundTripFlags{}

	cmd := &cobra.Command{
		Use:   "roundtrip <string>",
		Short: "Verify that split followed by join reproduces the input",
		Long: `Split the input on the delimiter, join the tokens back with the same
delimiter, and compare the result with the input.

Examples:
  strutil roundtrip "a::b:"
  strutil roundtrip -d tab -o json "$(printf 'a\tb')"`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundTrip(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.delimiter, "delimiter", "d", "",
		"Single-character delimiter, or tab/space/comma/colon/semicolon/pipe (default from config, else ':')")
	cmd.Flags().BoolVar(&flags.null, "null", false, "Use the absent value as input")

	return cmd
}

func runRoundTrip(cmd *cobra.Command, args []string, flags *roundTripFlags) error {
	delimiter, err := resolveDelimiter(flags.delimiter)
	if err != nil {
		return err
	}
	input, err := resolveInput(args, flags.null)
	if err != nil {
		return err
	}

	result := checkRoundTrip(input, delimiter)

	summary := fmt.Sprintf("ok: %d tokens", result.Count)
	if input.IsNone() {
		summary = "ok: absent input stays absent"
	}
	if !result.OK {
		summary = fmt.Sprintf("mismatch: joined %q", textOrNull(result.Joined))
	}

	if err := printResult(cmd.OutOrStdout(), resultDocument{
		Command: "roundtrip",
		Input:   input,
		Result:  result,
	}, []string{summary}); err != nil {
		return err
	}

	if !result.OK {
		return model.NewCLIError(model.ExitGeneralError, "split/join round trip did not reproduce the input")
	}
	return nil
}

// checkRoundTrip runs ToArray then JoinArray and compares the output with
// the input. An absent input must come back absent.
func checkRoundTrip(input optional.Value[string], delimiter model.Delimiter) roundTripResult {
	tokens := stringutils.ToArray(input, delimiter.Rune())
	joined := stringutils.JoinArray(tokens, delimiter.Rune())

	result := roundTripResult{Tokens: tokens, Joined: joined}
	if v, ok := tokens.Get(); ok {
		result.Count = len(v)
	}

	in, inOK := input.Get()
	out, outOK := joined.Get()
	result.OK = inOK == outOK && in == out
	return result
}
