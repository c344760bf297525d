package vanisher

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNoPath is returned by Save when the store has no backing file.
	ErrNoPath = errors.New("vanisher: store has no backing file path")

	// ErrInvalidImport is returned by ImportData for unsupported input types.
	ErrInvalidImport = errors.New("vanisher: import expects a map or JSON text")
)

// ParseError reports malformed input while loading or importing data.
type ParseError struct {
	Path string // Source file, empty for in-memory input
	Err  error
}

// Error formats the parse failure with its source when known.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("vanisher: parse config data: %v", e.Err)
	}
	return fmt.Sprintf("vanisher: parse config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EncodeError reports a store that cannot be represented in the
// requested export format (e.g. nil values under TOML).
type EncodeError struct {
	Format string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("vanisher: encode store as %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// UnknownFormatError reports a format name no codec could ever serve.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("vanisher: unsupported format %q (supported: %s)", e.Format, knownFormatList())
}

// NoCodecError reports a known format whose codec has not been
// registered. Package names the import that provides it.
type NoCodecError struct {
	Format  string
	Package string
}

func (e *NoCodecError) Error() string {
	return fmt.Sprintf("vanisher: no codec registered for %q (import %s)", e.Format, e.Package)
}
