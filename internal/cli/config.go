// Package cli — config.go implements "strutil config", which prints the
// settings resolved from the config file and global flags.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/strutil/internal/model"
)

// NewConfigCommand creates the "config" cobra command, which prints the
// settings the other commands would run with.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the delimiter, output format, and null token after applying the
config file and command-line overrides, along with the file they came from.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd)
		},
	}
}

func runConfig(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()

	source := settings.Source
	if source == "" {
		source = "(defaults)"
	}

	if settings.Output == model.OutputJSON {
		data, err := json.MarshalIndent(map[string]string{
			"source":    source,
			"delimiter": settings.Delimiter.String(),
			"output":    settings.Output.String(),
			"nullToken": settings.NullToken,
		}, "", "  ")
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to encode JSON output", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	data, err := settings.Marshal()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode YAML output", err)
	}
	fmt.Fprintf(w, "# source: %s\n", source)
	fmt.Fprint(w, string(data))
	return nil
}
