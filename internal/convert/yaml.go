// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/transcode/pkg/types"
)

const (
	tagStr       = "!!str"
	tagInt       = "!!int"
	tagFloat     = "!!float"
	tagBool      = "!!bool"
	tagNull      = "!!null"
	tagTimestamp = "!!timestamp"
	tagMap       = "!!map"
	tagSeq       = "!!seq"
)

var errMultipleDocuments = errors.New("multiple YAML documents are not supported")

// decodeYAML parses a single YAML document into a generic tree. An empty
// document decodes to nil. Untagged timestamps stay strings.
func decodeYAML(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, &ParseError{Format: types.FormatYAML, Err: err}
	}
	var next yaml.Node
	switch err := dec.Decode(&next); {
	case err == nil:
		return nil, &ParseError{Format: types.FormatYAML, Err: errMultipleDocuments}
	case err != io.EOF:
		return nil, &ParseError{Format: types.FormatYAML, Err: err}
	}

	untagTimestamps(&doc)

	var v any
	if err := doc.Decode(&v); err != nil {
		return nil, &ParseError{Format: types.FormatYAML, Err: err}
	}
	return v, nil
}

// untagTimestamps retags plain timestamp scalars as strings so dates keep
// their source text. An explicit !!timestamp tag is left alone.
func untagTimestamps(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == tagTimestamp && n.Style&yaml.TaggedStyle == 0 {
		n.Tag = tagStr
		return
	}
	if n.Kind == yaml.AliasNode {
		return
	}
	for _, c := range n.Content {
		untagTimestamps(c)
	}
}

// decodeJSONNode parses JSON text into a YAML node tree. Object keys keep
// their source order; a repeated key keeps its first position and its last
// value. Number literals that fit a 64-bit int or float are carried over
// verbatim.
func decodeJSONNode(data []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := jsonNode(dec)
	if err != nil {
		return nil, jsonParseError(err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, jsonParseError(err)
	}
	return node, nil
}

func jsonNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := nextToken(dec)
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonMappingNode(dec)
		case '[':
			return jsonSequenceNode(dec)
		}
		return nil, fmt.Errorf("unexpected %q", t)
	case string:
		return scalarNode(tagStr, t), nil
	case json.Number:
		return numberNode(t)
	case bool:
		return scalarNode(tagBool, strconv.FormatBool(t)), nil
	case nil:
		return scalarNode(tagNull, "null"), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func jsonMappingNode(dec *json.Decoder) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: tagMap}
	seen := make(map[string]int)
	for dec.More() {
		tok, err := nextToken(dec)
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}
		val, err := jsonNode(dec)
		if err != nil {
			return nil, err
		}
		if i, dup := seen[key]; dup {
			node.Content[i+1] = val
			continue
		}
		seen[key] = len(node.Content)
		node.Content = append(node.Content, scalarNode(tagStr, key), val)
	}
	if _, err := nextToken(dec); err != nil {
		return nil, err
	}
	return node, nil
}

func jsonSequenceNode(dec *json.Decoder) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: tagSeq}
	for dec.More() {
		item, err := jsonNode(dec)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, item)
	}
	if _, err := nextToken(dec); err != nil {
		return nil, err
	}
	return node, nil
}

// nextToken is dec.Token with end of input inside a value reported as truncation.
func nextToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

// numberNode tags a JSON number literal as an int or float. Integers past
// the 64-bit range are written as floats; floats out of range are rejected.
func numberNode(n json.Number) (*yaml.Node, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			return scalarNode(tagInt, s), nil
		}
		if _, err := strconv.ParseUint(s, 10, 64); err == nil {
			return scalarNode(tagInt, s), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("number %s out of range", s)
	}
	if strings.ContainsAny(s, ".eE") {
		return scalarNode(tagFloat, s), nil
	}
	return scalarNode(tagFloat, formatYAMLFloat(f)), nil
}

// scalarNode builds a plain scalar. The encoder quotes a !!str value whose
// text would otherwise read back as another type.
func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// yamlNode converts a decoded TOML tree into a YAML node tree with keys in
// sorted order.
func yamlNode(v any, path string) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return scalarNode(tagNull, "null"), nil
	case string:
		return scalarNode(tagStr, t), nil
	case bool:
		return scalarNode(tagBool, strconv.FormatBool(t)), nil
	case int64:
		return scalarNode(tagInt, strconv.FormatInt(t, 10)), nil
	case int:
		return scalarNode(tagInt, strconv.Itoa(t)), nil
	case uint64:
		return scalarNode(tagInt, strconv.FormatUint(t, 10)), nil
	case float64:
		return scalarNode(tagFloat, formatYAMLFloat(t)), nil
	case time.Time:
		return scalarNode(tagTimestamp, t.Format(time.RFC3339Nano)), nil
	case toml.LocalDate:
		return scalarNode(tagTimestamp, t.String()), nil
	case toml.LocalDateTime:
		return scalarNode(tagStr, t.String()), nil
	case toml.LocalTime:
		return scalarNode(tagStr, t.String()), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		node := &yaml.Node{Kind: yaml.MappingNode, Tag: tagMap}
		for _, k := range keys {
			val, err := yamlNode(t[k], childPath(path, k))
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode(tagStr, k), val)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: tagSeq}
		for i, item := range t {
			val, err := yamlNode(item, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, val)
		}
		return node, nil
	}
	return nil, unsupported(path, "value of type %T", v)
}

// formatYAMLFloat renders f so it reads back as a float, keeping a decimal
// point on integral values (3 becomes "3.0").
func formatYAMLFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func emitYAML(node *yaml.Node, cfg types.TranscodeConfig) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(cfg.YAMLIndent)
	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding YAML: %w", err)
	}
	return buf.String(), nil
}
