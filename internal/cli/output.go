// output.go holds the result rendering shared by every subcommand and the
// argument helpers that turn flags into model values.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/strutil/internal/model"
	"github.com/shinji-kodama/strutil/internal/optional"
)

// resultDocument is the JSON/YAML envelope for a command result.
// Absent inputs and results are rendered as null.
type resultDocument struct {
	Command string      `json:"command" yaml:"command"`
	Input   interface{} `json:"input" yaml:"input"`
	Result  interface{} `json:"result" yaml:"result"`
}

// printResult writes a command result in the resolved output format.
// textLines is what text mode prints, one entry per line.
func printResult(w io.Writer, doc resultDocument, textLines []string) error {
	if !settings.Output.IsStructured() {
		for _, line := range textLines {
			fmt.Fprintln(w, line)
		}
		return nil
	}

	if settings.Output == model.OutputJSON {
		// MarshalIndent produces human-readable JSON with 2-space indentation.
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to encode JSON output", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode YAML output", err)
	}
	fmt.Fprint(w, string(data))
	return nil
}

// resolveDelimiter returns the --delimiter flag value when set, else the
// configured default.
func resolveDelimiter(flag string) (model.Delimiter, error) {
	if flag == "" {
		return settings.Delimiter, nil
	}
	d, err := model.ParseDelimiter(flag)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitInvalidArgument, "invalid --delimiter", err)
	}
	return d, nil
}

// resolveInput turns the positional argument into an optional value.
// The input is absent when --null is given or the argument equals the
// configured null token.
func resolveInput(args []string, null bool) (optional.Value[string], error) {
	if null {
		if len(args) > 0 {
			return optional.None[string](), model.NewCLIError(model.ExitInvalidArgument,
				"--null cannot be combined with a positional argument")
		}
		return optional.None[string](), nil
	}
	if len(args) != 1 {
		return optional.None[string](), model.NewCLIError(model.ExitInvalidArgument,
			fmt.Sprintf("expected exactly one argument (or --null), got %d", len(args)))
	}
	if args[0] == settings.NullToken {
		return optional.None[string](), nil
	}
	return optional.Of(args[0]), nil
}

// textOrNull renders an optional string for text output, using the null
// token for an absent value.
func textOrNull(v optional.Value[string]) string {
	return v.OrElse(settings.NullToken)
}
