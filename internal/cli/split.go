// Package cli — split.go implements the "strutil split" and "strutil join"
// commands, the two inverse halves of delimiter-based tokenising.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/strutil/internal/model"
	"github.com/shinji-kodama/strutil/internal/optional"
	"github.com/shinji-kodama/strutil/internal/stringutils"
)

// splitFlags holds the flag values for the split command.
type splitFlags struct {
	// delimiter overrides the configured delimiter.
	delimiter string

	// null selects the absent input instead of a positional argument.
	null bool
}

// NewSplitCommand creates the "split" cobra command.
func NewSplitCommand() *cobra.Command {
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "split <string>",
		Short: "Split a delimited string into tokens",
		Long: `Split a string on every occurrence of a single-character delimiter.

Empty tokens are kept, so "a::b" yields three tokens. A string without the
delimiter yields itself as the only token. An absent input stays absent.

Examples:
  strutil split T:E:S:T
  strutil split -d comma "a,,b"
  strutil split --null -o json`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.delimiter, "delimiter", "d", "",
		"Single-character delimiter, or tab/space/comma/colon/semicolon/pipe (default from config, else ':')")
	cmd.Flags().BoolVar(&flags.null, "null", false, "Use the absent value as input")

	return cmd
}

// runSplit resolves the input and delimiter, applies ToArray, and prints
// one token per line in text mode.
func runSplit(cmd *cobra.Command, args []string, flags *splitFlags) error {
	delimiter, err := resolveDelimiter(flags.delimiter)
	if err != nil {
		return err
	}
	input, err := resolveInput(args, flags.null)
	if err != nil {
		return err
	}

	tokens := stringutils.ToArray(input, delimiter.Rune())
	VerboseLog("Split %s on %q", input, delimiter.String())

	lines := []string{settings.NullToken}
	if v, ok := tokens.Get(); ok {
		lines = v
	}

	return printResult(cmd.OutOrStdout(), resultDocument{
		Command: "split",
		Input:   input,
		Result:  tokens,
	}, lines)
}

// joinFlags holds the flag values for the join command.
type joinFlags struct {
	// delimiter overrides the configured delimiter.
	delimiter string

	// none joins the absent array instead of the positional tokens.
	none bool
}

// NewJoinCommand creates the "join" cobra command.
func NewJoinCommand() *cobra.Command {
	flags := &joinFlags{}

	cmd := &cobra.Command{
		Use:   "join [token...]",
		Short: "Join tokens into a delimited string",
		Long: `Join the given tokens in order, inserting the delimiter between each pair.

No tokens join to the empty string and a single token joins to itself.
--none joins the absent array, which stays absent.

Examples:
  strutil join T E S T
  strutil join -d comma a "" b
  strutil join --none`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runJoin(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.delimiter, "delimiter", "d", "",
		"Single-character delimiter, or tab/space/comma/colon/semicolon/pipe (default from config, else ':')")
	cmd.Flags().BoolVar(&flags.none, "none", false, "Join the absent array")

	return cmd
}

// runJoin applies JoinArray to the positional tokens.
func runJoin(cmd *cobra.Command, args []string, flags *joinFlags) error {
	delimiter, err := resolveDelimiter(flags.delimiter)
	if err != nil {
		return err
	}

	input := optional.None[[]string]()
	if flags.none {
		if len(args) > 0 {
			return model.NewCLIError(model.ExitInvalidArgument,
				"--none cannot be combined with tokens")
		}
	} else {
		// A non-nil slice keeps "no tokens" distinct from the absent array.
		tokens := make([]string, 0, len(args))
		input = optional.Of(append(tokens, args...))
	}
	VerboseLog("Joining %s with %q", input, delimiter.String())

	joined := stringutils.JoinArray(input, delimiter.Rune())

	return printResult(cmd.OutOrStdout(), resultDocument{
		Command: "join",
		Input:   input,
		Result:  joined,
	}, []string{textOrNull(joined)})
}
