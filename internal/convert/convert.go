// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert transcodes structured-data files between JSON, YAML and TOML.
//
// Each conversion parses the source text straight into the value model of
// the destination format rather than a shared intermediate type: JSON output
// is built from a generic tree with sorted keys, YAML output from a node tree
// (which keeps JSON key order), and TOML output from a table-rooted map with
// int64/float64 numbers. Values the destination cannot hold are rejected.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/transcode/pkg/types"
)

// transcoder turns the full source text into output text.
type transcoder func(data []byte, cfg types.TranscodeConfig) (string, error)

type pair struct {
	in, out types.FileFormat
}

var transcoders = map[pair]transcoder{
	{types.FormatJSON, types.FormatYAML}: jsonToYAML,
	{types.FormatJSON, types.FormatTOML}: jsonToTOML,
	{types.FormatYAML, types.FormatJSON}: yamlToJSON,
	{types.FormatYAML, types.FormatTOML}: yamlToTOML,
	{types.FormatTOML, types.FormatJSON}: tomlToJSON,
	{types.FormatTOML, types.FormatYAML}: tomlToYAML,
}

// lookup picks the transcoder for a format pair. The input-unknown check
// runs before the output-unknown check.
func lookup(in, out types.FileFormat) (transcoder, error) {
	switch {
	case in == out && in != types.FormatUnknown:
		return nil, ErrIdenticalFormats
	case in == types.FormatUnknown:
		return nil, ErrUnknownInputFormat
	case out == types.FormatUnknown:
		return nil, ErrUnknownOutputFormat
	}
	fn, ok := transcoders[pair{in, out}]
	if !ok {
		return nil, fmt.Errorf("no conversion from %q to %q", in, out)
	}
	return fn, nil
}

// Convert reads the file named by in and returns its contents re-serialized
// in the format of out. Format errors are reported before the file is read.
func Convert(in, out types.Ref, cfg types.TranscodeConfig) (string, error) {
	fn, err := lookup(in.Format(), out.Format())
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(in.Path())
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", in.Path(), err)
	}

	text, err := fn(data, cfg)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = in.Path()
		}
		return "", err
	}
	return text, nil
}

// Run converts in to out, writes the result to out's path and prints a
// confirmation line to w. Nothing is read or written when both sides share
// a format, including when both are unknown.
func Run(in, out types.Ref, cfg types.TranscodeConfig, w io.Writer) error {
	if in.Format() == out.Format() {
		return ErrIdenticalFormats
	}

	content, err := Convert(in, out, cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out.Path(), []byte(content), 0o644); err != nil {
		return &WriteError{Path: out.Path(), Err: err}
	}

	fmt.Fprintf(w, "Wrote %s to %s\n", in.Path(), out.Path())
	return nil
}

func jsonToYAML(data []byte, cfg types.TranscodeConfig) (string, error) {
	node, err := decodeJSONNode(data)
	if err != nil {
		return "", err
	}
	return emitYAML(node, cfg)
}

func jsonToTOML(data []byte, cfg types.TranscodeConfig) (string, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return "", err
	}
	doc, err := tomlDocument(v)
	if err != nil {
		return "", err
	}
	return emitTOML(doc, cfg)
}

func yamlToJSON(data []byte, cfg types.TranscodeConfig) (string, error) {
	v, err := decodeYAML(data)
	if err != nil {
		return "", err
	}
	jv, err := jsonValue(v, "")
	if err != nil {
		return "", err
	}
	return emitJSON(jv, cfg)
}

func yamlToTOML(data []byte, cfg types.TranscodeConfig) (string, error) {
	v, err := decodeYAML(data)
	if err != nil {
		return "", err
	}
	doc, err := tomlDocument(v)
	if err != nil {
		return "", err
	}
	return emitTOML(doc, cfg)
}

func tomlToJSON(data []byte, cfg types.TranscodeConfig) (string, error) {
	doc, err := decodeTOML(data)
	if err != nil {
		return "", err
	}
	jv, err := jsonValue(doc, "")
	if err != nil {
		return "", err
	}
	return emitJSON(jv, cfg)
}

func tomlToYAML(data []byte, cfg types.TranscodeConfig) (string, error) {
	doc, err := decodeTOML(data)
	if err != nil {
		return "", err
	}
	node, err := yamlNode(doc, "")
	if err != nil {
		return "", err
	}
	return emitYAML(node, cfg)
}
