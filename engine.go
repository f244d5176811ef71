package resume

import (
	"context"
	"fmt"
)

// Engine compiles markup into PDF bytes.
type Engine interface {
	Compile(ctx context.Context, markup string) ([]byte, error)
	Close() error
}

// Engine names accepted by WithEngine.
const (
	EngineTectonic = "tectonic"
	EngineXeLaTeX  = "xelatex"
	EngineLuaLaTeX = "lualatex"
	EngineChrome   = "chrome"
)

// LaTeXEngines lists the LaTeX engines in auto-detection order.
// pdflatex is absent: the preamble needs fontspec.
var LaTeXEngines = []string{EngineTectonic, EngineXeLaTeX, EngineLuaLaTeX}

// newEngine picks the Engine for format. name is already lower-cased;
// empty selects the default of the format.
func newEngine(format Format, name string) (Engine, error) {
	switch format {
	case FormatHTML:
		if name != "" && name != EngineChrome {
			return nil, fmt.Errorf("%w: %q cannot compile html (use chrome)", ErrInvalidEngine, name)
		}
		return newChromeEngine(), nil

	default:
		if name == "" {
			return newLaTeXEngine(""), nil
		}
		for _, e := range LaTeXEngines {
			if e == name {
				return newLaTeXEngine(name), nil
			}
		}
		if name == EngineChrome {
			return nil, fmt.Errorf("%w: chrome compiles the html format only", ErrInvalidEngine)
		}
		return nil, fmt.Errorf("%w: %q (must be tectonic, xelatex, lualatex or chrome)", ErrInvalidEngine, name)
	}
}
