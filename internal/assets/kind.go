package assets

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for asset operations.
var (
	ErrNotFound    = errors.New("asset not found")
	ErrInvalidName = errors.New("invalid asset name")
	ErrInvalidDir  = errors.New("invalid asset directory")
	ErrRead        = errors.New("failed to read asset")

	// ErrOutsideDir reports a file that resolves outside the asset directory.
	ErrOutsideDir = errors.New("asset path escapes directory")
)

// Kind is a family of assets sharing a directory and a file extension.
type Kind struct {
	name string
	dir  string
	ext  string
}

// Asset kinds.
var (
	Preamble = Kind{name: "preamble", dir: "preambles", ext: ".tex"}
	Style    = Kind{name: "style", dir: "styles", ext: ".css"}
)

// DefaultName is the asset used when none is configured, for every kind.
const DefaultName = "default"

func (k Kind) String() string { return k.name }

// path returns the slash-separated location of name relative to an asset root.
func (k Kind) path(name string) string {
	return k.dir + "/" + name + k.ext
}

func (k Kind) notFound(name string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, k.name, name)
}

// maxNameLen bounds asset names; they become file names on disk.
const maxNameLen = 64

// ValidateName rejects names that are empty, too long, or could select a
// different file: path separators, dots and NUL.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	case len(name) > maxNameLen:
		return fmt.Errorf("%w: name longer than %d bytes", ErrInvalidName, maxNameLen)
	case strings.ContainsAny(name, "/\\.\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
