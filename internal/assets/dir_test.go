package assets

// Notes:
// - Symlink tests are skipped on Windows, where creating links needs
//   elevated rights.
// - The unreadable directory branch of OpenDir is not tested: root ignores
//   permission bits.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// ---------------------------------------------------------------------------
// TestOpenDir - Directory checks
// ---------------------------------------------------------------------------

func TestOpenDir(t *testing.T) {
	t.Parallel()

	file := writeAsset(t, t.TempDir(), "not-a-dir", "x")

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "existing directory", path: t.TempDir()},
		{name: "relative path", path: "."},
		{name: "empty", path: "", wantErr: ErrInvalidDir},
		{name: "missing", path: filepath.Join(t.TempDir(), "missing"), wantErr: ErrInvalidDir},
		{name: "file", path: file, wantErr: ErrInvalidDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := OpenDir(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("OpenDir(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr == nil && !filepath.IsAbs(d.root) {
				t.Errorf("root %q is not absolute", d.root)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDir_Load - Reading assets from disk
// ---------------------------------------------------------------------------

func TestDir_Load(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeAsset(t, root, "preambles/letter.tex", `\documentclass{letter}`)
	writeAsset(t, root, "styles/print.css", "body{}")
	if err := os.MkdirAll(filepath.Join(root, "preambles", "folder.tex"), 0o755); err != nil {
		t.Fatal(err)
	}

	d, err := OpenDir(root)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		kind    Kind
		asset   string
		want    string
		wantErr error
	}{
		{name: "preamble", kind: Preamble, asset: "letter", want: `\documentclass{letter}`},
		{name: "style", kind: Style, asset: "print", want: "body{}"},
		{name: "wrong kind", kind: Style, asset: "letter", wantErr: ErrNotFound},
		{name: "missing", kind: Preamble, asset: "default", wantErr: ErrNotFound},
		{name: "directory instead of file", kind: Preamble, asset: "folder", wantErr: ErrRead},
		{name: "invalid name", kind: Preamble, asset: "../letter", wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := d.Load(tt.kind, tt.asset)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Load() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDir_SymlinkOutsideRoot(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated rights on Windows")
	}

	outside := writeAsset(t, t.TempDir(), "secret.tex", "secret")
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "preambles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(outside, filepath.Join(root, "preambles", "leak.tex")); err != nil {
		t.Fatal(err)
	}
	inside := writeAsset(t, root, "shared/base.tex", "shared")
	if err := os.Symlink(inside, filepath.Join(root, "preambles", "base.tex")); err != nil {
		t.Fatal(err)
	}

	d, err := OpenDir(root)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := d.Load(Preamble, "leak"); !errors.Is(err, ErrOutsideDir) {
		t.Errorf("Load(leak) error = %v, want ErrOutsideDir", err)
	}
	if got, err := d.Load(Preamble, "base"); err != nil || got != "shared" {
		t.Errorf("Load(base) = %q, %v, want link inside root to resolve", got, err)
	}
}

func TestDir_SymlinkedRoot(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated rights on Windows")
	}

	target := t.TempDir()
	writeAsset(t, target, "styles/print.css", "body{}")
	link := filepath.Join(t.TempDir(), "assets")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	d, err := OpenDir(link)
	if err != nil {
		t.Fatalf("OpenDir() error = %v", err)
	}
	if _, err := d.Load(Style, "print"); err != nil {
		t.Errorf("Load() through symlinked root error = %v", err)
	}
}
