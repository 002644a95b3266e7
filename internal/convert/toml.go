// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/pdiddy/transcode/pkg/types"
)

// decodeTOML parses a TOML document. Offset date-times decode to time.Time;
// local dates and times decode to the toml.Local* types.
func decodeTOML(data []byte) (map[string]any, error) {
	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Format: types.FormatTOML, Err: err}
	}
	return doc, nil
}

// tomlDocument converts a decoded tree into a TOML document, which must be a
// table at the root.
func tomlDocument(v any) (map[string]any, error) {
	switch v.(type) {
	case map[string]any, map[any]any:
	default:
		return nil, unsupported("", "TOML documents must be a table, got %T", v)
	}
	tv, err := tomlValue(v, "")
	if err != nil {
		return nil, err
	}
	return tv.(map[string]any), nil
}

// tomlValue narrows a decoded tree to the TOML value model: string-keyed
// tables, int64 and float64 numbers, no nulls.
func tomlValue(v any, path string) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, unsupported(path, "TOML has no null value")
	case string, bool, int64, float64, time.Time:
		return t, nil
	case int:
		return int64(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, unsupported(path, "integer %d overflows a TOML integer", t)
		}
		return int64(t), nil
	case json.Number:
		return tomlNumber(t, path)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			tv, err := tomlValue(val, childPath(path, k))
			if err != nil {
				return nil, err
			}
			out[k] = tv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, err := mapKey(k, path)
			if err != nil {
				return nil, err
			}
			tv, err := tomlValue(val, childPath(path, key))
			if err != nil {
				return nil, err
			}
			out[key] = tv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			tv, err := tomlValue(val, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = tv
		}
		return out, nil
	}
	return nil, unsupported(path, "value of type %T", v)
}

// tomlNumber maps a JSON number literal to int64 when it is written as an
// integer and to float64 otherwise.
func tomlNumber(n json.Number, path string) (any, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		i, err := n.Int64()
		if err != nil {
			return nil, unsupported(path, "integer %s overflows a TOML integer", n)
		}
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, unsupported(path, "number %s out of range", n)
	}
	return f, nil
}

func emitTOML(doc map[string]any, cfg types.TranscodeConfig) (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(cfg.TOMLIndentTables)
	enc.SetArraysMultiline(cfg.TOMLMultilineArrays)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encoding TOML: %w", err)
	}
	return buf.String(), nil
}
