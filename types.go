package resume

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-resume/internal/pipeline"
)

// Resume is the canonical résumé schema. Values are not modified by
// rendering.
type Resume struct {
	Contact    Contact      `yaml:"contact"`
	Education  []Education  `yaml:"education"`
	Experience []Experience `yaml:"experience"`
	Projects   []Project    `yaml:"projects"`
	Skills     []Skill      `yaml:"skills"`
}

// Contact is the header of the résumé. GitHub is a handle, rendered as
// github.com/<handle>.
type Contact struct {
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	GitHub string `yaml:"github"`
}

// Education is one degree or program.
type Education struct {
	Program     string   `yaml:"program"`
	Institution string   `yaml:"institution"`
	Graduation  string   `yaml:"graduation"`
	Description []string `yaml:"description"`
}

// Experience is one position.
type Experience struct {
	Position    string   `yaml:"position"`
	Company     string   `yaml:"company"`
	Begin       string   `yaml:"begin"`
	End         string   `yaml:"end"`
	Description []string `yaml:"description"`
}

// Project is one project.
type Project struct {
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	GitHub      string   `yaml:"github"`
	Description []string `yaml:"description"`
}

// Skill is one line of the skills section.
type Skill struct {
	Area        string `yaml:"area"`
	Description string `yaml:"description"`
}

// Format selects the generated markup.
type Format string

// Supported formats.
const (
	FormatLaTeX Format = "latex"
	FormatHTML  Format = "html"
)

// ParseFormat parses a format name, case-insensitively. Empty means LaTeX.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatLaTeX:
		return FormatLaTeX, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q (must be latex or html)", ErrInvalidFormat, s)
	}
}

// Ext returns the file extension of markup in this format, with the dot.
func (f Format) Ext() string {
	return f.dialect().Ext()
}

func (f Format) dialect() pipeline.Dialect {
	if f == FormatHTML {
		return pipeline.HTML{}
	}
	return pipeline.LaTeX{}
}

// Input contains per-conversion data.
type Input struct {
	Resume     *Resume // required
	MarkupOnly bool    // skip PDF compilation
}

// Result holds the outputs of a conversion.
type Result struct {
	Format Format
	Markup string
	PDF    []byte // nil when MarkupOnly
}

// Option configures a Converter.
type Option func(*Converter)

type converterConfig struct {
	format       Format
	engineName   string
	markdown     bool
	timeout      time.Duration // 0 = no limit
	assetPath    string
	preambleName string
	styleName    string
}

// WithFormat selects the generated markup. Defaults to FormatLaTeX.
func WithFormat(f Format) Option {
	return func(c *Converter) {
		c.cfg.format = f
	}
}

// WithEngine selects the compiler by name: tectonic, xelatex or lualatex
// for LaTeX, chrome for HTML. Empty picks the first installed LaTeX engine.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engineName = strings.ToLower(strings.TrimSpace(name))
	}
}

// WithCompiler sets the Engine directly, bypassing engine selection.
// The Converter takes ownership and closes it.
func WithCompiler(e Engine) Option {
	return func(c *Converter) {
		c.engine = e
	}
}

// WithMarkdown enables inline Markdown in description lines.
func WithMarkdown(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.markdown = enabled
	}
}

// WithTimeout bounds a single compilation. There is no limit by default.
// Panics if d < 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("resume: WithTimeout duration must not be negative")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithAssetPath adds a directory searched for preambles and styles before
// the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithPreamble selects the LaTeX preamble by name, or by file path when
// the value contains a path separator.
func WithPreamble(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.preambleName = nameOrPath
	}
}

// WithStyle selects the HTML stylesheet by name, or by file path when the
// value contains a path separator.
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.styleName = nameOrPath
	}
}
