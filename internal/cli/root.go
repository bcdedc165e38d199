// Package cli implements the cobra-based CLI commands for strutil.
//
// Each subcommand (split, join, format, parse, empty, roundtrip, config)
// is defined in its own file within this package. This file defines the
// root command that serves as the parent for all subcommands and handles
// global flags and config loading.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/strutil/internal/config"
	"github.com/shinji-kodama/strutil/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// outputFlag is the raw --output value. Empty means "use the config
	// file or the built-in default".
	outputFlag string

	// configPath is the raw --config value.
	configPath string

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool
)

// settings holds the resolved defaults for the running command. It is
// populated by the root command's PersistentPreRunE before any subcommand
// body executes.
var settings = config.Defaults()

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action. It provides help
// text, global flags, and config loading; the string operations live in
// the subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "strutil",
		Short: "Split, join, and convert delimited strings and numbers",
		Long: `strutil exposes a small set of pure string operations on the command line:
splitting a delimited string into tokens, joining tokens back together,
canonical number formatting and parsing, and whitespace-aware emptiness checks.

An absent value is written as the null token ("<null>" by default) or
selected with --null, and propagates through every operation instead of
failing.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --output).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadSettings()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "",
		"Output format: text, json, yaml (default from config, else text)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a config file (default: $"+config.EnvConfigPath+" or ./.strutil.{yaml,yml,json})")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewSplitCommand())
	rootCmd.AddCommand(NewJoinCommand())
	rootCmd.AddCommand(NewFormatCommand())
	rootCmd.AddCommand(NewParseCommand())
	rootCmd.AddCommand(NewEmptyCommand())
	rootCmd.AddCommand(NewRoundTripCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// loadSettings reads the config file and applies the --output override.
func loadSettings() error {
	wd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "cannot determine working directory", err)
	}

	loaded, err := config.Load(configPath, wd)
	if err != nil {
		return err
	}
	if loaded.Source != "" {
		VerboseLog("Loaded config from %s", loaded.Source)
	} else {
		VerboseLog("No config file found, using defaults")
	}

	if outputFlag != "" {
		format, err := model.ParseOutputFormat(outputFlag)
		if err != nil {
			return model.WrapCLIError(model.ExitInvalidArgument, "invalid --output", err)
		}
		loaded.Output = format
	}

	settings = loaded
	return nil
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	printError(rootCmd.ErrOrStderr(), err)
	os.Exit(int(ExitCodeFor(err)))
}

// ExitCodeFor maps an error returned by a command to a process exit code.
// CLIError types carry their own exit codes; other errors default to
// ExitGeneralError.
func ExitCodeFor(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError outputs an error in the appropriate format (JSON or text)
// based on the resolved output format.
func printError(w io.Writer, err error) {
	message := err.Error()
	var detail error
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		message = cliErr.Message
		detail = cliErr.Err
	}

	if IsJSONOutput() {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if detail != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = detail.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if detail != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, detail)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether results are printed as JSON.
// The raw flag is checked as well so that errors raised before settings
// were resolved still honour --output json.
func IsJSONOutput() bool {
	if outputFlag != "" {
		return strings.EqualFold(outputFlag, string(model.OutputJSON))
	}
	return settings.Output == model.OutputJSON
}
