package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/strutil/internal/model"
)

// EnvConfigPath names an explicit config file. When set it takes
// precedence over the working-directory search.
const EnvConfigPath = "STRUTIL_CONFIG"

// DefaultNullToken is the command-line spelling of an absent value.
const DefaultNullToken = "<null>"

// candidateNames are searched in order inside the working directory.
var candidateNames = []string{
	".strutil.yaml",
	".strutil.yml",
	".strutil.json",
}

// File is the raw, unvalidated content of a config file.
// Fields left out of the file keep their zero value and fall back to
// the built-in defaults in Resolve.
type File struct {
	// Delimiter is the default token separator, in any form accepted by
	// model.ParseDelimiter ("," or "tab" or `\t`).
	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`

	// Output is the default output format: text, json or yaml.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// NullToken is the argument spelling that stands for an absent value.
	NullToken string `json:"nullToken,omitempty" yaml:"nullToken,omitempty"`
}

// Settings are the validated defaults the CLI runs with.
type Settings struct {
	Delimiter model.Delimiter
	Output    model.OutputFormat
	NullToken string

	// Source is the file the settings were read from, or "" for built-in
	// defaults.
	Source string
}

// Defaults returns the built-in settings used when no config file exists.
func Defaults() Settings {
	return Settings{
		Delimiter: model.DefaultDelimiter,
		Output:    model.OutputText,
		NullToken: DefaultNullToken,
	}
}

// Load locates and reads the config file.
//
// The search order is:
//  1. the explicit path argument, if non-empty (from --config)
//  2. $STRUTIL_CONFIG
//  3. .strutil.yaml, .strutil.yml, .strutil.json in dir
//
// No file anywhere yields Defaults. An explicit path that does not
// exist is an error. Any read, parse, or validation failure is a CLIError
// with ExitConfigError.
func Load(explicit, dir string) (Settings, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path == "" {
		found, ok := Find(dir)
		if !ok {
			return Defaults(), nil
		}
		path = found
	}

	raw, err := LoadFile(path)
	if err != nil {
		return Settings{}, err
	}

	settings, err := raw.Resolve()
	if err != nil {
		return Settings{}, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("invalid config file %s", path), err)
	}
	settings.Source = path
	return settings, nil
}

// Find returns the first candidate config file present in dir.
func Find(dir string) (string, bool) {
	for _, name := range candidateNames {
		path := filepath.Join(dir, name)
		// os.Stat checks existence without reading the file.
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// LoadFile reads a single config file, choosing the decoder from its
// extension. .json files may contain comments and trailing commas.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	var raw *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".jsonc":
		raw, err = decodeJSONC(data)
	case ".yaml", ".yml":
		raw, err = decodeYAML(data)
	default:
		return nil, model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("unsupported config file extension %q (valid: .yaml, .yml, .json, .jsonc)", ext))
	}
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}
	return raw, nil
}

// decodeJSONC strips comments with tidwall/jsonc and decodes strictly.
func decodeJSONC(data []byte) (*File, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()

	var raw File
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return &raw, nil
		}
		return nil, err
	}
	return &raw, nil
}

// decodeYAML decodes with yaml.v3, rejecting unknown keys so typos such
// as "delimeter" surface instead of being silently ignored.
func decodeYAML(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw File
	if err := dec.Decode(&raw); err != nil {
		// An empty document is a valid, empty config.
		if errors.Is(err, io.EOF) {
			return &raw, nil
		}
		return nil, err
	}
	return &raw, nil
}

// Resolve validates the raw fields and fills in defaults for missing ones.
func (f *File) Resolve() (Settings, error) {
	settings := Defaults()

	if f.Delimiter != "" {
		d, err := model.ParseDelimiter(f.Delimiter)
		if err != nil {
			return Settings{}, fmt.Errorf("delimiter: %w", err)
		}
		settings.Delimiter = d
	}

	if f.Output != "" {
		format, err := model.ParseOutputFormat(f.Output)
		if err != nil {
			return Settings{}, fmt.Errorf("output: %w", err)
		}
		settings.Output = format
	}

	if f.NullToken != "" {
		settings.NullToken = f.NullToken
	}

	return settings, nil
}

// Marshal renders settings back to YAML, for "strutil config" output.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(File{
		Delimiter: s.Delimiter.String(),
		Output:    s.Output.String(),
		NullToken: s.NullToken,
	})
}
