package resume

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-resume/internal/assets"
	"github.com/alnah/go-resume/internal/fileutil"
	"github.com/alnah/go-resume/internal/pipeline"
)

// Converter renders résumés and compiles them to PDF.
// Create with NewConverter(), use Convert() for conversion, and Close() when done.
type Converter struct {
	cfg      converterConfig
	dialect  pipeline.Dialect
	inline   *pipeline.InlineRenderer // nil unless WithMarkdown(true)
	preamble string                   // LaTeX preamble
	style    string                   // HTML stylesheet
	engine   Engine
}

// NewConverter creates a Converter with default configuration: LaTeX
// output, the default preamble, and the first installed LaTeX engine.
// Engines are not started until the first compilation.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			format:       FormatLaTeX,
			preambleName: assets.DefaultName,
			styleName:    assets.DefaultName,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	format, err := ParseFormat(string(c.cfg.format))
	if err != nil {
		return nil, err
	}
	c.cfg.format = format
	c.dialect = format.dialect()

	if c.cfg.markdown {
		c.inline = pipeline.NewInlineRenderer()
	}

	loader, err := assets.NewResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	switch format {
	case FormatHTML:
		c.style, err = loadAsset(loader, assets.Style, c.cfg.styleName, ErrStyleNotFound)
	default:
		c.preamble, err = loadAsset(loader, assets.Preamble, c.cfg.preambleName, ErrPreambleNotFound)
	}
	if err != nil {
		return nil, err
	}

	// Injected engines (WithCompiler) skip selection.
	if c.engine == nil {
		c.engine, err = newEngine(format, c.cfg.engineName)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

// loadAsset reads a file when nameOrPath looks like a path, otherwise asks
// the loader. Not-found and invalid names map to notFound.
func loadAsset(loader assets.Loader, kind assets.Kind, nameOrPath string, notFound error) (string, error) {
	if fileutil.IsFilePath(nameOrPath) {
		content, err := os.ReadFile(nameOrPath) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", notFound, err)
		}
		return string(content), nil
	}

	content, err := loader.Load(kind, nameOrPath)
	if err != nil {
		if errors.Is(err, assets.ErrRead) || errors.Is(err, assets.ErrOutsideDir) {
			return "", fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		return "", fmt.Errorf("%w: %v", notFound, err)
	}
	return content, nil
}

// Format returns the markup format of the converter.
func (c *Converter) Format() Format {
	return c.cfg.format
}

// Render escapes and assembles r into markup without compiling it.
func (c *Converter) Render(r *Resume) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: nil resume", ErrSchema)
	}
	if err := r.Validate(); err != nil {
		return "", err
	}

	doc := toDocument(r)
	if c.cfg.format == FormatHTML {
		doc.Preamble = pipeline.HTMLPreamble(r.Contact.Name, c.style)
	} else {
		doc.Preamble = c.preamble
	}

	return pipeline.Assemble(doc, c.dialect, c.inline), nil
}

// Convert renders the résumé and, unless input.MarkupOnly is set, compiles
// it with the engine. The context is used for cancellation; WithTimeout
// adds a deadline to the compilation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	markup, err := c.Render(input.Resume)
	if err != nil {
		return nil, err
	}

	res := &Result{Format: c.cfg.format, Markup: markup}
	if input.MarkupOnly {
		return res, nil
	}

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	pdf, err := c.engine.Compile(ctx, markup)
	if err != nil {
		return nil, err
	}

	res.PDF = pdf
	return res, nil
}

// Close releases engine resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.engine != nil {
		return c.engine.Close()
	}
	return nil
}

// toDocument maps the schema onto the three-field entries of the template.
func toDocument(r *Resume) *pipeline.Document {
	doc := &pipeline.Document{
		Contact: pipeline.Contact{
			Name:   r.Contact.Name,
			Email:  r.Contact.Email,
			GitHub: r.Contact.GitHub,
		},
		Education:  make([]pipeline.Entry, 0, len(r.Education)),
		Experience: make([]pipeline.Entry, 0, len(r.Experience)),
		Projects:   make([]pipeline.Entry, 0, len(r.Projects)),
		Skills:     make([]pipeline.Skill, 0, len(r.Skills)),
	}

	for _, e := range r.Education {
		doc.Education = append(doc.Education, pipeline.Entry{
			Title:       e.Program,
			Subtitle:    e.Institution,
			Trailer:     e.Graduation,
			Description: e.Description,
		})
	}
	for _, e := range r.Experience {
		doc.Experience = append(doc.Experience, pipeline.Entry{
			Title:       e.Position,
			Subtitle:    e.Company,
			Trailer:     e.Begin,
			TrailerEnd:  e.End,
			Description: e.Description,
		})
	}
	for _, p := range r.Projects {
		doc.Projects = append(doc.Projects, pipeline.Entry{
			Title:       p.Title,
			Subtitle:    p.Category,
			Trailer:     p.GitHub,
			Description: p.Description,
		})
	}
	for _, s := range r.Skills {
		doc.Skills = append(doc.Skills, pipeline.Skill(s))
	}

	return doc
}
