package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	resume "github.com/alnah/go-resume"
	"github.com/alnah/go-resume/internal/yamlutil"
)

// styles holds lipgloss styles for status output.
type styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Dim     lipgloss.Style
	Path    lipgloss.Style
}

// printer writes human-readable status lines. Errors always go to stderr;
// everything else to stdout unless quiet.
// It implements resume.Reporter for watch mode.
type printer struct {
	w       io.Writer
	errW    io.Writer
	now     func() time.Time
	quiet   bool
	verbose bool
	color   bool
	styles  styles

	// hints for errors reported through Failed.
	settings *settings
}

var _ resume.Reporter = (*printer)(nil)

func newPrinter(env *Environment, quiet, verbose bool) *printer {
	color := isTTY(env.Stderr)
	st := styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Path:    lipgloss.NewStyle().Bold(true),
	}
	if !color {
		st = styles{
			Error:   lipgloss.NewStyle(),
			Success: lipgloss.NewStyle(),
			Warning: lipgloss.NewStyle(),
			Dim:     lipgloss.NewStyle(),
			Path:    lipgloss.NewStyle(),
		}
	}

	now := env.Now
	if now == nil {
		now = time.Now
	}

	return &printer{
		w:       env.Stdout,
		errW:    env.Stderr,
		now:     now,
		quiet:   quiet,
		verbose: verbose,
		color:   color,
		styles:  st,
	}
}

// isTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func isTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (p *printer) info(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.w, format, args...)
}

// Error prints err with its hint, and the offending YAML lines when the
// decoder rejected the input.
func (p *printer) Error(err error, hint string) {
	fmt.Fprintf(p.errW, "%s: %v%s\n", p.styles.Error.Render("Error"), err, hint)
	if pretty := yamlutil.Pretty(err, p.color); pretty != "" {
		fmt.Fprintln(p.errW, pretty)
	}
}

// Settings prints the effective configuration (verbose only).
func (p *printer) Settings(s *settings) {
	engine := s.cfg.Engine
	if engine == "" {
		engine = "auto"
	}
	timeout := s.cfg.Timeout
	if timeout == "" {
		timeout = "none"
	}
	p.info("%s\n", p.styles.Dim.Render(fmt.Sprintf(
		"source=%s format=%s engine=%s markdown=%t timeout=%s",
		s.source, strings.ToLower(s.cfg.Format), engine, s.cfg.Markdown, timeout)))
}

func (p *printer) Watching(source string) {
	p.info("Watching for changes in: %s\n", p.styles.Path.Render(source))
}

func (p *printer) Rebuilding(string) {
	p.info("%s File modified. Rebuilding...\n", p.stamp())
}

func (p *printer) Built(res *resume.BuildResult) {
	written := []string{res.MarkupPath}
	if res.PDFPath != "" {
		written = append(written, res.PDFPath)
	}
	line := p.styles.Success.Render("Created") + " " + strings.Join(written, ", ")
	if p.verbose {
		line += " " + p.styles.Dim.Render(fmt.Sprintf("(%v)", res.Duration.Round(time.Millisecond)))
	}
	p.info("%s\n", line)
}

// Failed reports a watch-mode build failure; the loop keeps running.
func (p *printer) Failed(err error) {
	p.Error(err, hintFor(err, p.settings))
}

func (p *printer) stamp() string {
	return p.styles.Dim.Render("[" + p.now().Format("15:04:05") + "]")
}
