// Package cli — cli_test.go runs the cobra command tree end to end with
// captured output. No config file exists in the package directory, so the
// built-in defaults apply unless a test passes --config.
package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/strutil/internal/config"
	"github.com/shinji-kodama/strutil/internal/model"
	"github.com/shinji-kodama/strutil/internal/optional"
)

// runCommand executes the root command with args and returns stdout and
// the error returned by cobra.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")

	rootCmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

// requireExitCode asserts that err maps to the expected exit code.
func requireExitCode(t *testing.T, err error, code model.ExitCode) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, ExitCodeFor(err))
}

// writeConfig writes a YAML config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strutil.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default delimiter", []string{"split", "T:E:S:T"}, "T\nE\nS\nT\n"},
		{"empty tokens kept", []string{"split", "a::b"}, "a\n\nb\n"},
		{"empty input yields one empty token", []string{"split", ""}, "\n"},
		{"named delimiter", []string{"split", "-d", "comma", "x,y"}, "x\ny\n"},
		{"null flag", []string{"split", "--null"}, "<null>\n"},
		{"null token argument", []string{"split", "<null>"}, "<null>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSplitCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "split", "-o", "json", "T:E:S:T")
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"split","input":"T:E:S:T","result":["T","E","S","T"]}`, out)

	out, err = runCommand(t, "split", "--output", "json", "--null")
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"split","input":null,"result":null}`, out)
}

func TestSplitCommand_YAML(t *testing.T) {
	out, err := runCommand(t, "split", "-o", "yaml", "-d", "|", "a|b")
	require.NoError(t, err)

	var doc struct {
		Command string   `yaml:"command"`
		Input   string   `yaml:"input"`
		Result  []string `yaml:"result"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "split", doc.Command)
	assert.Equal(t, "a|b", doc.Input)
	assert.Equal(t, []string{"a", "b"}, doc.Result)
}

func TestSplitCommand_Errors(t *testing.T) {
	_, err := runCommand(t, "split", "-d", "::", "a::b")
	requireExitCode(t, err, model.ExitInvalidArgument)
	assert.ErrorIs(t, err, model.ErrInvalidDelimiter)

	_, err = runCommand(t, "split", "--null", "a")
	requireExitCode(t, err, model.ExitInvalidArgument)

	_, err = runCommand(t, "split")
	requireExitCode(t, err, model.ExitInvalidArgument)

	_, err = runCommand(t, "split", "-o", "xml", "a")
	requireExitCode(t, err, model.ExitInvalidArgument)
}

func TestJoinCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"ordered tokens", []string{"join", "T", "E", "S", "T"}, "T:E:S:T\n"},
		{"single token", []string{"join", "only"}, "only\n"},
		{"no tokens", []string{"join"}, "\n"},
		{"empty tokens", []string{"join", "-d", ",", "a", "", "b"}, "a,,b\n"},
		{"absent array", []string{"join", "--none"}, "<null>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestJoinCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "join", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"join","input":[],"result":""}`, out)

	out, err = runCommand(t, "join", "-o", "json", "--none")
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"join","input":null,"result":null}`, out)
}

func TestJoinCommand_NoneWithTokens(t *testing.T) {
	_, err := runCommand(t, "join", "--none", "a")
	requireExitCode(t, err, model.ExitInvalidArgument)
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"trailing zero dropped", []string{"format", "3.140"}, "3.14\n"},
		{"exponent expanded", []string{"format", "1e21"}, "1000000000000000000000\n"},
		{"negative after separator", []string{"format", "--", "-0.50"}, "-0.5\n"},
		{"infinity token", []string{"format", "inf"}, "Infinity\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	_, err := runCommand(t, "format", "3,14")
	requireExitCode(t, err, model.ExitParseError)
}

func TestParseCommand(t *testing.T) {
	out, err := runCommand(t, "parse", "3.1415")
	require.NoError(t, err)
	assert.Equal(t, "3.1415\n", out)

	out, err = runCommand(t, "parse", " 2.5E-2 ")
	require.NoError(t, err)
	assert.Equal(t, "0.025\n", out)

	out, err = runCommand(t, "parse", "--null")
	require.NoError(t, err)
	assert.Equal(t, "NaN\n", out)

	out, err = runCommand(t, "parse", "-o", "json", "--null")
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"parse","input":null,"result":"NaN"}`, out)
}

func TestParseCommand_Malformed(t *testing.T) {
	_, err := runCommand(t, "parse", "abc")
	requireExitCode(t, err, model.ExitParseError)
	assert.Contains(t, err.Error(), `"abc"`)

	_, err = runCommand(t, "parse", "1e400")
	requireExitCode(t, err, model.ExitParseError)

	_, err = runCommand(t, "parse", "1_000")
	requireExitCode(t, err, model.ExitParseError)

	_, err = runCommand(t, "format", "3.141_5")
	requireExitCode(t, err, model.ExitParseError)
}

func TestEmptyCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"empty string", []string{"empty", ""}, "true\n"},
		{"single space", []string{"empty", " "}, "true\n"},
		{"whitespace mix", []string{"empty", "\t \n"}, "true\n"},
		{"word", []string{"empty", "test"}, "false\n"},
		{"absent", []string{"empty", "--null"}, "true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEmptyCommand_Check(t *testing.T) {
	out, err := runCommand(t, "empty", "--check", "test")
	requireExitCode(t, err, model.ExitNotEmpty)
	assert.Equal(t, "false\n", out, "result is printed before the exit status is set")

	out, err = runCommand(t, "empty", "--check", "   ")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestRoundTripCommand(t *testing.T) {
	out, err := runCommand(t, "roundtrip", "a::b:")
	require.NoError(t, err)
	assert.Equal(t, "ok: 4 tokens\n", out)

	out, err = runCommand(t, "roundtrip", "--null")
	require.NoError(t, err)
	assert.Equal(t, "ok: absent input stays absent\n", out)

	out, err = runCommand(t, "roundtrip", "-o", "json", "T:E:S:T")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"command": "roundtrip",
		"input": "T:E:S:T",
		"result": {
			"tokens": ["T", "E", "S", "T"],
			"joined": "T:E:S:T",
			"count": 4,
			"ok": true
		}
	}`, out)
}

// TestConfigFile_Defaults verifies that config values become the flag
// defaults and that explicit flags still win.
func TestConfigFile_Defaults(t *testing.T) {
	path := writeConfig(t, "delimiter: comma\nnullToken: NIL\n")

	out, err := runCommand(t, "--config", path, "split", "a,b")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	out, err = runCommand(t, "--config", path, "split", "-d", ":", "a,b:c")
	require.NoError(t, err)
	assert.Equal(t, "a,b\nc\n", out)

	out, err = runCommand(t, "--config", path, "split", "NIL")
	require.NoError(t, err)
	assert.Equal(t, "NIL\n", out)
}

func TestConfigFile_Invalid(t *testing.T) {
	path := writeConfig(t, "delimiter: '::'\n")

	_, err := runCommand(t, "--config", path, "split", "a")
	requireExitCode(t, err, model.ExitConfigError)
}

func TestConfigCommand(t *testing.T) {
	out, err := runCommand(t, "config")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# source: (defaults)\n"))

	var file config.File
	require.NoError(t, yaml.Unmarshal([]byte(out), &file))
	assert.Equal(t, ":", file.Delimiter)
	assert.Equal(t, "text", file.Output)
	assert.Equal(t, config.DefaultNullToken, file.NullToken)

	path := writeConfig(t, "output: yaml\n")
	out, err = runCommand(t, "--config", path, "-o", "json", "config")
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"`+path+`","delimiter":":","output":"json","nullToken":"<null>"}`, out)
}

func TestPrintResult(t *testing.T) {
	saved := settings
	t.Cleanup(func() { settings = saved })

	doc := resultDocument{Command: "empty", Input: optional.None[string](), Result: true}

	tests := []struct {
		format model.OutputFormat
		want   string
	}{
		{model.OutputText, "true\n"},
		{model.OutputJSON, "{\n  \"command\": \"empty\",\n  \"input\": null,\n  \"result\": true\n}\n"},
		{model.OutputYAML, "command: empty\ninput: null\nresult: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			settings.Output = tt.format
			var buf bytes.Buffer
			require.NoError(t, printResult(&buf, doc, []string{"true"}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, model.ExitSuccess, ExitCodeFor(nil))
	assert.Equal(t, model.ExitGeneralError, ExitCodeFor(errors.New("boom")))
	assert.Equal(t, model.ExitParseError,
		ExitCodeFor(model.NewCLIError(model.ExitParseError, "bad number")))
}

func TestPrintError(t *testing.T) {
	t.Cleanup(func() { outputFlag = "" })
	err := model.WrapCLIError(model.ExitParseError, "cannot parse \"x\" as a number", errors.New("malformed number"))

	t.Run("text", func(t *testing.T) {
		outputFlag = "text"
		var buf bytes.Buffer
		printError(&buf, err)
		assert.Equal(t, "Error: cannot parse \"x\" as a number: malformed number\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		outputFlag = "json"
		var buf bytes.Buffer
		printError(&buf, err)
		assert.JSONEq(t, `{"error":{"message":"cannot parse \"x\" as a number","detail":"malformed number"}}`, buf.String())
	})

	t.Run("plain error", func(t *testing.T) {
		outputFlag = "text"
		var buf bytes.Buffer
		printError(&buf, errors.New("boom"))
		assert.Equal(t, "Error: boom\n", buf.String())
	})
}
