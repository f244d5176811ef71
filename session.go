package resume

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-resume/internal/fileutil"
)

// DefaultSource is the source file used when none is given.
const DefaultSource = "resume.yaml"

// defaultSettleDelay coalesces the burst of events an editor save produces.
const defaultSettleDelay = 100 * time.Millisecond

// Reporter receives session progress. All methods are called from the
// goroutine running Build or Watch.
type Reporter interface {
	Watching(source string)
	Rebuilding(source string)
	Built(res *BuildResult)
	Failed(err error)
}

// BuildResult describes the files written by one build.
type BuildResult struct {
	Source     string
	MarkupPath string
	PDFPath    string // empty when markup only
	Duration   time.Duration
}

// Session binds a source file to its outputs.
type Session struct {
	Source     string // .yaml or .yml file; DefaultSource when empty
	OutputDir  string // empty = next to the source
	MarkupOnly bool
	Converter  *Converter
	Now        func() time.Time // time.Now when nil
	Reporter   Reporter         // optional

	// SettleDelay is how long Watch waits after the last change before
	// rebuilding. Defaults to 100ms.
	SettleDelay time.Duration
}

func (s *Session) source() string {
	if s.Source == "" {
		return DefaultSource
	}
	return s.Source
}

func (s *Session) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Build reads, parses, renders and (unless MarkupOnly) compiles the source,
// then writes <base><ext> and <base>.pdf. Outputs are written only after
// every earlier step succeeded, and either all of them are replaced or none.
func (s *Session) Build(ctx context.Context) (*BuildResult, error) {
	start := s.now()
	src := s.source()

	if err := validateSourceExt(src); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(src) // #nosec G304 -- user-provided source
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, err
	}

	res, err := s.Converter.Convert(ctx, Input{Resume: r, MarkupOnly: s.MarkupOnly})
	if err != nil {
		return nil, err
	}

	if s.OutputDir != "" {
		if err := os.MkdirAll(s.OutputDir, 0o750); err != nil {
			return nil, fmt.Errorf("%w: creating output directory: %v", ErrWriteOutput, err)
		}
	}

	out := &BuildResult{
		Source:     src,
		MarkupPath: fileutil.ReplaceExt(src, res.Format.Ext(), s.OutputDir),
	}

	files := []fileutil.File{{Path: out.MarkupPath, Data: []byte(res.Markup)}}
	if res.PDF != nil {
		out.PDFPath = fileutil.ReplaceExt(src, ".pdf", s.OutputDir)
		files = append(files, fileutil.File{Path: out.PDFPath, Data: res.PDF})
	}

	// #nosec G306 -- output files are intended to be readable
	if err := fileutil.WriteFilesAtomic(0o644, files...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	out.Duration = s.now().Sub(start)
	return out, nil
}

func validateSourceExt(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidExtension, path)
	}
}
