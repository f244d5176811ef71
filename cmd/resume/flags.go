package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks command-line errors (unknown flag, extra arguments).
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// assetFlags holds preamble and stylesheet selection.
type assetFlags struct {
	assetPath string // custom asset directory
	preamble  string // name or path of the LaTeX preamble
	style     string // name or path of the HTML stylesheet
}

// buildFlags holds all flags for the build and watch commands.
type buildFlags struct {
	common   commonFlags
	output   string
	format   string
	engine   string
	timeout  string
	markdown bool
	noPDF    bool
	assets   assetFlags

	// markdownSet distinguishes --markdown=false from an absent flag.
	markdownSet bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.preamble, "preamble", "", "LaTeX preamble name or file path")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path (html format)")
}

// newBuildFlagSet registers the build flags into f.
func newBuildFlagSet(name string, f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: next to the source)")
	fs.StringVarP(&f.format, "format", "f", "", "markup format: latex, html")
	fs.StringVarP(&f.engine, "engine", "e", "", "engine: tectonic, xelatex, lualatex, chrome")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "compilation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.markdown, "markdown", false, "render inline Markdown in descriptions")
	fs.BoolVar(&f.noPDF, "no-pdf", false, "write the markup only, skip PDF compilation")

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)

	return fs
}

// parseBuildFlags parses build or watch flags and returns the source path,
// empty when none was given. Help requested with -h is printed to out.
func parseBuildFlags(name string, args []string, usage func(io.Writer), out io.Writer) (*buildFlags, string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(name, f)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(out)
			return nil, "", err
		}
		return nil, "", fmt.Errorf("%w: %v", ErrUsage, err)
	}
	f.markdownSet = fs.Changed("markdown")

	positional := fs.Args()
	switch len(positional) {
	case 0:
		return f, "", nil
	case 1:
		return f, positional[0], nil
	default:
		return nil, "", fmt.Errorf("%w: expected at most one source, got %d", ErrUsage, len(positional))
	}
}
