package resume

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-resume/internal/process"
)

// jobName is the base name of the files inside the build directory.
const jobName = "resume"

// logTailLines bounds the engine output quoted in compilation errors.
const logTailLines = 20

// lookPath is exec.LookPath, replaced in tests.
var lookPath = exec.LookPath

// FindLaTeXEngine resolves an engine binary. With an empty name the first
// installed engine of LaTeXEngines wins. Returns the engine name and its path.
func FindLaTeXEngine(name string) (string, string, error) {
	candidates := LaTeXEngines
	if name != "" {
		candidates = []string{name}
	}

	for _, c := range candidates {
		if p, err := lookPath(c); err == nil {
			return c, p, nil
		}
	}

	return "", "", fmt.Errorf("%w: looked for %s", ErrEngineNotFound, strings.Join(candidates, ", "))
}

// latexEngine runs an installed LaTeX engine in a private temp directory.
// The binary is resolved on first use so markup-only builds never need it.
type latexEngine struct {
	name string // requested engine, empty = auto

	mu   sync.Mutex
	bin  string
	used string // resolved engine name
}

func newLaTeXEngine(name string) *latexEngine {
	return &latexEngine{name: name}
}

func (e *latexEngine) resolve() (string, string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.bin != "" {
		return e.used, e.bin, nil
	}
	used, bin, err := FindLaTeXEngine(e.name)
	if err != nil {
		return "", "", err
	}
	e.used, e.bin = used, bin
	return used, bin, nil
}

// Compile writes markup to <tmp>/resume.tex, runs the engine there and
// returns resume.pdf. The engine runs in its own process group, which is
// killed as a whole when ctx is done.
func (e *latexEngine) Compile(ctx context.Context, markup string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, bin, err := e.resolve()
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "resume-latex-*")
	if err != nil {
		return nil, fmt.Errorf("%w: creating build directory: %v", ErrCompilation, err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	texFile := jobName + ".tex"
	// #nosec G306 -- private temp directory
	if err := os.WriteFile(filepath.Join(dir, texFile), []byte(markup), 0o600); err != nil {
		return nil, fmt.Errorf("%w: writing %s: %v", ErrCompilation, texFile, err)
	}

	// #nosec G204 -- bin comes from a fixed list of engine names resolved via PATH
	cmd := exec.CommandContext(ctx, bin, engineArgs(name, texFile)...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	process.SetProcessGroup(cmd)
	cmd.Cancel = func() error {
		process.KillProcessGroup(cmd.Process.Pid)
		return nil
	}
	cmd.WaitDelay = 2 * time.Second

	runErr := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCompilation, name, ctxErr)
	}
	if runErr != nil {
		return nil, fmt.Errorf("%w: %s: %v\n%s", ErrCompilation, name, runErr, tail(out.String(), logTailLines))
	}

	pdf, err := os.ReadFile(filepath.Join(dir, jobName+".pdf")) // #nosec G304 -- fixed name in our temp dir
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s produced no PDF\n%s", ErrCompilation, name, tail(out.String(), logTailLines))
		}
		return nil, fmt.Errorf("%w: reading PDF: %v", ErrCompilation, err)
	}
	return pdf, nil
}

// Close is a no-op; each compilation cleans up after itself.
func (e *latexEngine) Close() error {
	return nil
}

// engineArgs returns the command line for a non-interactive run that stops
// at the first error.
func engineArgs(name, texFile string) []string {
	if name == EngineTectonic {
		return []string{"--chatter", "minimal", "--outdir", ".", texFile}
	}
	return []string{"-interaction=nonstopmode", "-halt-on-error", "-output-directory=.", texFile}
}

// tail returns the last n non-empty lines of s.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	kept := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return strings.Join(kept, "\n")
}

var _ Engine = (*latexEngine)(nil)
