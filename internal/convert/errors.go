// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"

	"github.com/pdiddy/transcode/pkg/types"
)

var (
	// ErrIdenticalFormats is returned when input and output share a format.
	ErrIdenticalFormats = errors.New("input format is the same as output format")

	// ErrUnknownInputFormat is returned when the input format could not be determined.
	ErrUnknownInputFormat = errors.New("input format is unknown")

	// ErrUnknownOutputFormat is returned when the output format could not be determined.
	ErrUnknownOutputFormat = errors.New("output format is unknown")

	// ErrUnsupportedValue is returned when the parsed document holds a value
	// the destination format cannot represent (e.g. null in TOML).
	ErrUnsupportedValue = errors.New("value cannot be represented in output format")
)

// ParseError reports malformed source text. Err is the parser's own error.
type ParseError struct {
	Format types.FileFormat
	Path   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s as %s: %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports that the converted output could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// unsupported wraps ErrUnsupportedValue with the location of the offending value.
func unsupported(path, format string, args ...any) error {
	if path == "" {
		path = "document root"
	}
	return fmt.Errorf("%w: %s: %s", ErrUnsupportedValue, path, fmt.Sprintf(format, args...))
}
