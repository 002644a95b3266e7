// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/pdiddy/transcode/pkg/types"
)

var errTrailingData = errors.New("invalid data after top-level value")

// decodeJSON parses a single JSON value. Numbers stay json.Number so the
// destination decides between integer and float.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, jsonParseError(err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, jsonParseError(err)
	}
	return v, nil
}

// expectEOF fails if anything but whitespace follows the top-level value.
func expectEOF(dec *json.Decoder) error {
	_, err := dec.Token()
	switch {
	case err == io.EOF:
		return nil
	case err != nil:
		return err
	}
	return errTrailingData
}

func jsonParseError(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return &ParseError{Format: types.FormatJSON, Err: err}
}

// jsonValue converts a decoded tree into values encoding/json emits as the
// matching JSON types. Non-finite floats become null; dates and times become
// RFC 3339 strings.
func jsonValue(v any, path string) (any, error) {
	switch t := v.(type) {
	case nil, bool, string, json.Number, int, int64, uint64:
		return t, nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, nil
		}
		return t, nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	case toml.LocalDate:
		return t.String(), nil
	case toml.LocalTime:
		return t.String(), nil
	case toml.LocalDateTime:
		return t.String(), nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			jv, err := jsonValue(val, childPath(path, k))
			if err != nil {
				return nil, err
			}
			out[k] = jv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, err := mapKey(k, path)
			if err != nil {
				return nil, err
			}
			jv, err := jsonValue(val, childPath(path, key))
			if err != nil {
				return nil, err
			}
			out[key] = jv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			jv, err := jsonValue(val, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = jv
		}
		return out, nil
	}
	return nil, unsupported(path, "value of type %T", v)
}

// emitJSON serializes v. With no indent configured the output is a single
// line without a trailing newline.
func emitJSON(v any, cfg types.TranscodeConfig) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if cfg.JSONIndent > 0 {
		enc.SetIndent("", strings.Repeat(" ", cfg.JSONIndent))
	}
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding JSON: %w", err)
	}
	if cfg.JSONIndent > 0 {
		return buf.String(), nil
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
