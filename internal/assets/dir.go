package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir loads assets from a directory on disk.
type Dir struct {
	root string // absolute, symlinks resolved
}

// OpenDir checks that path is a readable directory and returns a Dir
// rooted there. Failures wrap ErrInvalidDir.
func OpenDir(path string) (*Dir, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidDir)
	}

	root, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDir, err)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	info, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidDir, root)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidDir, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidDir, root)
	}
	if _, err := os.ReadDir(root); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidDir, err)
	}

	return &Dir{root: root}, nil
}

// Load reads {root}/{kind dir}/{name}{kind ext}.
func (d *Dir) Load(kind Kind, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	path, err := d.within(filepath.Join(d.root, filepath.FromSlash(kind.path(name))))
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- name validated, path contained in root
	if err != nil {
		if os.IsNotExist(err) {
			return "", kind.notFound(name)
		}
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	return string(content), nil
}

// within resolves symlinks in path and checks the result stays under root.
// A missing file keeps its lexical path and fails later on read.
func (d *Dir) within(path string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	// The separator suffix rejects siblings such as /assets-evil for /assets.
	if !strings.HasPrefix(path, d.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideDir, path)
	}
	return path, nil
}

var _ Loader = (*Dir)(nil)
