package assets

import (
	"embed"
	"errors"
	"io/fs"
	"sort"
	"strings"
)

// Loader returns the content of a named asset.
type Loader interface {
	// Load returns ErrNotFound when kind has no asset called name, and
	// ErrInvalidName when name is not a bare asset name.
	Load(kind Kind, name string) (string, error)
}

//go:embed preambles/*.tex styles/*.css
var builtin embed.FS

type embedded struct{}

// Embedded serves the built-in assets.
var Embedded Loader = embedded{}

func (embedded) Load(kind Kind, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	content, err := builtin.ReadFile(kind.path(name))
	if err != nil {
		return "", kind.notFound(name)
	}
	return string(content), nil
}

// Names lists the built-in assets of kind, sorted.
func Names(kind Kind) []string {
	entries, err := fs.ReadDir(builtin, kind.dir)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), kind.ext); ok && !e.IsDir() {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Resolver loads from a custom directory first and falls back to the
// embedded assets when the directory lacks the asset. Other errors
// (invalid name, unreadable file) are returned as is.
type Resolver struct {
	dir *Dir // nil: embedded only
}

// NewResolver creates a Resolver over dir. An empty dir resolves embedded
// assets only.
func NewResolver(dir string) (*Resolver, error) {
	if dir == "" {
		return &Resolver{}, nil
	}
	d, err := OpenDir(dir)
	if err != nil {
		return nil, err
	}
	return &Resolver{dir: d}, nil
}

func (r *Resolver) Load(kind Kind, name string) (string, error) {
	if r.dir != nil {
		content, err := r.dir.Load(kind, name)
		if !errors.Is(err, ErrNotFound) {
			return content, err
		}
	}
	return Embedded.Load(kind, name)
}

// Compile-time interface checks.
var (
	_ Loader = embedded{}
	_ Loader = (*Resolver)(nil)
)
