// Package config loads the optional strutil config file that supplies
// default flag values (delimiter, output format, null token).
//
// YAML files are decoded with gopkg.in/yaml.v3. JSON files may contain
// comments and trailing commas, so this package uses
// github.com/tidwall/jsonc to strip them before parsing with the standard
// encoding/json library.
package config
