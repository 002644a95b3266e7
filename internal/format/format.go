// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format resolves the serialization format of input and output paths.
// Extension matching is case-sensitive: "data.JSON" is not recognized.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/transcode/pkg/types"
)

// ErrNoOutput is returned when neither an output path nor a format override
// is available to decide where the result goes.
var ErrNoOutput = errors.New("an OUTPUT path or --format is required")

// Names lists the values accepted by Parse, in help-text order.
var Names = []string{"json", "yaml", "yml", "toml"}

// Parse converts a --format flag value into a FileFormat.
func Parse(name string) (types.FileFormat, error) {
	switch name {
	case "json":
		return types.FormatJSON, nil
	case "yaml", "yml":
		return types.FormatYAML, nil
	case "toml":
		return types.FormatTOML, nil
	}
	return "", fmt.Errorf("invalid format %q: must be one of %s", name, strings.Join(Names, ", "))
}

// FromPath returns the format implied by the extension of path, or
// FormatUnknown when there is no extension or it is not recognized.
func FromPath(path string) types.FileFormat {
	switch extension(path) {
	case "json":
		return types.FormatJSON
	case "yaml", "yml":
		return types.FormatYAML
	case "toml":
		return types.FormatTOML
	}
	return types.FormatUnknown
}

// Resolve returns override when it is set, otherwise the format implied by
// the extension of path.
func Resolve(path string, override types.FileFormat) types.FileFormat {
	if override != "" {
		return override
	}
	return FromPath(path)
}

// Extension returns the canonical file extension for f, without the dot.
func Extension(f types.FileFormat) string {
	switch f {
	case types.FormatJSON:
		return "json"
	case types.FormatYAML:
		return "yml"
	case types.FormatTOML:
		return "toml"
	}
	return "txt"
}

// OutputPath derives an output path from input by replacing its extension
// (or appending one, if it has none) with the canonical extension of f.
func OutputPath(input string, f types.FileFormat) string {
	stem := input
	base := filepath.Base(input)
	if i := strings.LastIndexByte(base, '.'); i > 0 && strings.HasSuffix(input, base) {
		stem = input[:len(input)-len(base)+i]
	}
	return stem + "." + Extension(f)
}

// Refs builds the input and output refs for one invocation. The input format
// always comes from its extension. When output is empty its path is derived
// from input and override.
func Refs(input, output string, override types.FileFormat) (in, out types.FormatRef, err error) {
	if output == "" {
		if override == "" {
			return in, out, ErrNoOutput
		}
		output = OutputPath(input, override)
	}
	in = types.NewFormatRef(types.RoleInput, input, FromPath(input))
	out = types.NewFormatRef(types.RoleOutput, output, Resolve(output, override))
	return in, out, nil
}

// extension returns the text after the last dot of the final path element.
// A leading dot does not start an extension, so ".json" has none.
func extension(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i+1:]
}
