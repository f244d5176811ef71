package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `contact:
  name: Ada Lovelace
  email: ada@example.com
  github: ada
experience:
  - position: Analyst
    company: Babbage & Co
    begin: "1842"
    end: "1843"
    description:
      - Wrote the first program
`

// testEnv returns an Environment writing into buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// writeFile writes content to dir/name and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
