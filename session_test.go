package resume

// Notes:
// - Partial-write failures (disk full mid-rename) are not simulated; the
//   atomic write itself is covered in internal/fileutil.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestSessionBuild - One-shot builds
// ---------------------------------------------------------------------------

func TestSessionBuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "resume.yaml", sampleYAML)

	s := &Session{Source: src, Converter: newTestConverter(t, &fakeEngine{pdf: []byte("%PDF-1.7 x")})}
	res, err := s.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if res.MarkupPath != filepath.Join(dir, "resume.tex") {
		t.Errorf("MarkupPath = %q", res.MarkupPath)
	}
	if res.PDFPath != filepath.Join(dir, "resume.pdf") {
		t.Errorf("PDFPath = %q", res.PDFPath)
	}

	tex, err := os.ReadFile(res.MarkupPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(tex), `Babbage \& Co`) {
		t.Errorf("markup not written:\n%s", tex)
	}
	pdf, err := os.ReadFile(res.PDFPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(pdf) != "%PDF-1.7 x" {
		t.Errorf("pdf = %q", pdf)
	}
}

func TestSessionBuild_MarkupOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "cv.yml", sampleYAML)

	eng := &fakeEngine{}
	s := &Session{Source: src, MarkupOnly: true, Converter: newTestConverter(t, eng, WithFormat(FormatHTML))}
	res, err := s.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if res.MarkupPath != filepath.Join(dir, "cv.html") {
		t.Errorf("MarkupPath = %q", res.MarkupPath)
	}
	if res.PDFPath != "" {
		t.Errorf("PDFPath = %q, want empty", res.PDFPath)
	}
	if fileExists(filepath.Join(dir, "cv.pdf")) {
		t.Error("PDF written in markup-only mode")
	}
	if eng.callCount() != 0 {
		t.Error("engine called in markup-only mode")
	}
}

func TestSessionBuild_OutputDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "resume.yaml", sampleYAML)
	out := filepath.Join(dir, "build", "nested")

	s := &Session{Source: src, OutputDir: out, Converter: newTestConverter(t, &fakeEngine{})}
	res, err := s.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if res.PDFPath != filepath.Join(out, "resume.pdf") || !fileExists(res.PDFPath) {
		t.Errorf("PDFPath = %q, want file in %s", res.PDFPath, out)
	}
	if fileExists(filepath.Join(dir, "resume.tex")) {
		t.Error("markup written next to source despite OutputDir")
	}
}

func TestSessionBuild_Duration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "resume.yaml", sampleYAML)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := 0
	s := &Session{
		Source:    src,
		Converter: newTestConverter(t, &fakeEngine{}),
		Now: func() time.Time {
			ticks++
			return base.Add(time.Duration(ticks) * time.Second)
		},
	}

	res, err := s.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Duration != time.Second {
		t.Errorf("Duration = %v, want 1s", res.Duration)
	}
}

func TestSessionBuild_DefaultSource(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, DefaultSource, sampleYAML)
	t.Chdir(dir)

	s := &Session{Converter: newTestConverter(t, &fakeEngine{}), MarkupOnly: true}
	res, err := s.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if res.Source != DefaultSource || res.MarkupPath != "resume.tex" {
		t.Errorf("result = %+v", res)
	}
}

func TestSessionBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string // created with content when non-empty
		content string
		source  string // overrides the created path
		engine  *fakeEngine
		wantErr error
	}{
		{name: "wrong extension", file: "resume.json", content: sampleYAML, wantErr: ErrInvalidExtension},
		{name: "missing source", source: "missing.yaml", wantErr: ErrReadSource},
		{name: "empty source", file: "resume.yaml", content: "", wantErr: ErrEmptySource},
		{name: "schema error", file: "resume.yaml", content: "contact:\n  name: A\n", wantErr: ErrSchema},
		{name: "compilation error", file: "resume.yaml", content: sampleYAML, engine: &fakeEngine{err: ErrCompilation}, wantErr: ErrCompilation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			src := filepath.Join(dir, tt.source)
			if tt.file != "" {
				src = writeSource(t, dir, tt.file, tt.content)
			}
			eng := tt.engine
			if eng == nil {
				eng = &fakeEngine{}
			}

			s := &Session{Source: src, Converter: newTestConverter(t, eng)}
			res, err := s.Build(context.Background())
			if res != nil {
				t.Errorf("Build() result = %+v, want nil", res)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}

			// A failed build writes nothing.
			entries, _ := os.ReadDir(dir)
			for _, e := range entries {
				if e.Name() != tt.file {
					t.Errorf("unexpected file %q after failed build", e.Name())
				}
			}
		})
	}
}

func TestSessionBuild_FailureKeepsPreviousOutputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "resume.yaml", sampleYAML)
	eng := &fakeEngine{pdf: []byte("%PDF good")}
	s := &Session{Source: src, Converter: newTestConverter(t, eng)}

	if _, err := s.Build(context.Background()); err != nil {
		t.Fatal(err)
	}

	writeSource(t, dir, "resume.yaml", "contact: {}\n")
	if _, err := s.Build(context.Background()); !errors.Is(err, ErrSchema) {
		t.Fatalf("Build() error = %v, want ErrSchema", err)
	}

	pdf, _ := os.ReadFile(filepath.Join(dir, "resume.pdf"))
	if string(pdf) != "%PDF good" {
		t.Errorf("previous PDF clobbered: %q", pdf)
	}
}

func TestSessionBuild_PDFWriteFailureKeepsMarkup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "resume.yaml", sampleYAML)
	texPath := writeSource(t, dir, "resume.tex", "OLD")
	if err := os.Mkdir(filepath.Join(dir, "resume.pdf"), 0o750); err != nil {
		t.Fatal(err)
	}

	s := &Session{Source: src, Converter: newTestConverter(t, &fakeEngine{pdf: []byte("%PDF new")})}
	if _, err := s.Build(context.Background()); !errors.Is(err, ErrWriteOutput) {
		t.Fatalf("Build() error = %v, want ErrWriteOutput", err)
	}

	tex, err := os.ReadFile(texPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(tex) != "OLD" {
		t.Errorf("resume.tex replaced by failed build: %q", tex)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory entries = %v, want only resume.yaml, resume.tex and resume.pdf", names)
	}
}

func TestSessionBuild_UnwritableOutput(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions are not enforced on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := t.TempDir()
	src := writeSource(t, dir, "resume.yaml", sampleYAML)
	out := filepath.Join(dir, "ro")
	if err := os.Mkdir(out, 0o500); err != nil {
		t.Fatal(err)
	}

	s := &Session{Source: src, OutputDir: out, Converter: newTestConverter(t, &fakeEngine{})}
	if _, err := s.Build(context.Background()); !errors.Is(err, ErrWriteOutput) {
		t.Errorf("Build() error = %v, want ErrWriteOutput", err)
	}
}

func TestSessionBuild_OutputDirIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "resume.yaml", sampleYAML)
	blocker := writeSource(t, dir, "out", "not a directory")

	s := &Session{Source: src, OutputDir: blocker, Converter: newTestConverter(t, &fakeEngine{})}
	if _, err := s.Build(context.Background()); !errors.Is(err, ErrWriteOutput) {
		t.Errorf("Build() error = %v, want ErrWriteOutput", err)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
