// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FileFormat identifies a textual serialization syntax.
type FileFormat string

const (
	FormatJSON    FileFormat = "json"
	FormatYAML    FileFormat = "yaml"
	FormatTOML    FileFormat = "toml"
	FormatUnknown FileFormat = "unknown"
)

// String returns the display name of the format (e.g. "JSON").
func (f FileFormat) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatYAML:
		return "YAML"
	case FormatTOML:
		return "TOML"
	default:
		return "unknown"
	}
}

// Role says which side of a conversion a FormatRef is bound to.
type Role string

const (
	RoleInput  Role = "input"
	RoleOutput Role = "output"
)

// Ref is anything that names a file and the format it is written in.
type Ref interface {
	Path() string
	Format() FileFormat
}

// FormatRef binds a path to its resolved format for one side of a
// conversion. The zero value is not useful; use NewFormatRef.
type FormatRef struct {
	role   Role
	path   string
	format FileFormat
}

// NewFormatRef returns a FormatRef. An empty format is stored as FormatUnknown.
func NewFormatRef(role Role, path string, format FileFormat) FormatRef {
	if format == "" {
		format = FormatUnknown
	}
	return FormatRef{role: role, path: path, format: format}
}

// Role returns the side of the conversion the ref is bound to.
func (r FormatRef) Role() Role { return r.role }

// Path returns the filesystem path.
func (r FormatRef) Path() string { return r.path }

// Format returns the resolved format.
func (r FormatRef) Format() FileFormat { return r.format }
