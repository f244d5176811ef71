// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "resume-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// WriteFileAtomic writes data to path through a temp file in the same
// directory followed by a rename, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return WriteFilesAtomic(perm, File{Path: path, Data: data})
}

// File is one payload for WriteFilesAtomic.
type File struct {
	Path string
	Data []byte
}

// staged tracks one file through WriteFilesAtomic.
type staged struct {
	File
	tmp       string
	backup    string // empty when the target did not exist
	committed bool
}

// WriteFilesAtomic writes every file or none of them. All payloads are
// staged as temp files next to their targets first; targets are replaced
// only once every stage succeeded. If a replacement fails, targets already
// replaced are restored from backups and no temp file is left behind.
func WriteFilesAtomic(perm os.FileMode, files ...File) error {
	stages := make([]*staged, 0, len(files))
	cleanup := func() {
		for _, st := range stages {
			_ = os.Remove(st.tmp)
		}
	}

	for _, f := range files {
		tmp, err := stage(f, perm)
		if err != nil {
			cleanup()
			return err
		}
		stages = append(stages, &staged{File: f, tmp: tmp})
	}

	for _, st := range stages {
		if info, err := os.Lstat(st.Path); err == nil && info.IsDir() {
			cleanup()
			return fmt.Errorf("replacing %s: target is a directory", st.Path)
		}
	}

	for _, st := range stages {
		if err := commit(st); err != nil {
			rollback(stages)
			return err
		}
	}

	for _, st := range stages {
		if st.backup != "" {
			_ = os.Remove(st.backup)
		}
	}
	return nil
}

func stage(f File, perm os.FileMode) (string, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(f.Path), "."+filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(f.Data); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("setting permissions: %w", err)
	}
	return tmpPath, nil
}

func commit(st *staged) error {
	if _, err := os.Lstat(st.Path); err == nil {
		backup := st.tmp + ".bak"
		if err := os.Rename(st.Path, backup); err != nil {
			return fmt.Errorf("backing up %s: %w", st.Path, err)
		}
		st.backup = backup
	}
	if err := os.Rename(st.tmp, st.Path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	st.committed = true
	return nil
}

// rollback puts every target back the way it was before WriteFilesAtomic.
func rollback(stages []*staged) {
	for _, st := range stages {
		if st.committed {
			_ = os.Remove(st.Path)
		} else {
			_ = os.Remove(st.tmp)
		}
		if st.backup != "" {
			_ = os.Rename(st.backup, st.Path)
		}
	}
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// ReplaceExt returns the base name of path with its extension swapped for ext
// (ext includes the leading dot). When dir is non-empty the result is placed
// in dir, otherwise next to path.
//
// Examples:
//   - ReplaceExt("cv/resume.yaml", ".tex", "") -> "cv/resume.tex"
//   - ReplaceExt("resume.yml", ".pdf", "out") -> "out/resume.pdf"
func ReplaceExt(path, ext, dir string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if dir == "" {
		dir = filepath.Dir(path)
	}
	return filepath.Join(dir, base+ext)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./custom.tex" -> true (relative path)
//   - "/absolute/style.css" -> true (absolute)
//   - "C:\windows\path.css" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
