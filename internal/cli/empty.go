// Package cli — empty.go implements "strutil empty", the whitespace-aware
// emptiness check with an optional exit-status mode.
package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/strutil/internal/model"
	"github.com/shinji-kodama/strutil/internal/stringutils"
)

// emptyFlags holds the flag values for the empty command.
type emptyFlags struct {
	// null selects the absent input instead of a positional argument.
	null bool

	// check turns a non-empty result into a non-zero exit status.
	check bool
}

// NewEmptyCommand creates the "empty" cobra command.
func NewEmptyCommand() *cobra.Command {
	flags := &emptyFlags{}

	cmd := &cobra.Command{
		Use:   "empty <string>",
		Short: "Report whether a string is absent, empty, or whitespace only",
		Long: `Print true when the input is absent, has zero length, or contains only
whitespace (spaces, tabs, newlines, and other Unicode spaces); false otherwise.

With --check the command also exits with status 5 for non-empty input,
for use in shell conditionals.

Examples:
  strutil empty "   "
  strutil empty --check "$VALUE"`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmpty(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.null, "null", false, "Use the absent value as input")
	cmd.Flags().BoolVar(&flags.check, "check", false, "Exit with status 5 when the input is not empty")

	return cmd
}

func runEmpty(cmd *cobra.Command, args []string, flags *emptyFlags) error {
	input, err := resolveInput(args, flags.null)
	if err != nil {
		return err
	}

	empty := stringutils.IsEmpty(input)
	if err := printResult(cmd.OutOrStdout(), resultDocument{
		Command: "empty",
		Input:   input,
		Result:  empty,
	}, []string{strconv.FormatBool(empty)}); err != nil {
		return err
	}

	if flags.check && !empty {
		return model.NewCLIError(model.ExitNotEmpty, "input is not empty")
	}
	return nil
}
