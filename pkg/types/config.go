// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

const (
	// DefaultYAMLIndent is the YAML indentation used when none is configured.
	DefaultYAMLIndent = 2

	minYAMLIndent = 2
	maxYAMLIndent = 9
)

// TranscodeConfig holds the emitter settings applied to converted output.
// Values come from the config file, TRANSCODE_* environment variables, or
// command-line flags.
type TranscodeConfig struct {
	// JSONIndent is the number of spaces per indent level in JSON output.
	// Zero produces compact single-line JSON.
	JSONIndent int `json:"json_indent" yaml:"json_indent"`

	// YAMLIndent is the number of spaces per indent level in YAML output (2-9).
	YAMLIndent int `json:"yaml_indent" yaml:"yaml_indent"`

	// TOMLIndentTables indents nested TOML tables under their parent.
	TOMLIndentTables bool `json:"toml_indent_tables" yaml:"toml_indent_tables"`

	// TOMLMultilineArrays writes each TOML array element on its own line.
	TOMLMultilineArrays bool `json:"toml_multiline_arrays" yaml:"toml_multiline_arrays"`
}

// DefaultTranscodeConfig returns the settings used when nothing is configured.
func DefaultTranscodeConfig() TranscodeConfig {
	return TranscodeConfig{YAMLIndent: DefaultYAMLIndent}
}

// Validate reports the first out-of-range setting.
func (c TranscodeConfig) Validate() error {
	if c.JSONIndent < 0 {
		return fmt.Errorf("json_indent must not be negative, got %d", c.JSONIndent)
	}
	if c.YAMLIndent < minYAMLIndent || c.YAMLIndent > maxYAMLIndent {
		return fmt.Errorf("yaml_indent must be between %d and %d, got %d", minYAMLIndent, maxYAMLIndent, c.YAMLIndent)
	}
	return nil
}
