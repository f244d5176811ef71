// Package assets provides the LaTeX preambles and CSS styles a résumé is
// rendered with.
//
// Assets come in two kinds, Preamble and Style. Built-in assets are embedded
// in the binary (preambles "default" and "compact", style "default"). A
// custom directory can override or add assets by name:
//
//	{dir}/
//	├── preambles/{name}.tex   # class, packages, \begin{document} and setup
//	└── styles/{name}.css      # stylesheet for the HTML format
//
// A Resolver looks in the custom directory first and falls back to the
// embedded copy when the asset is missing there, so one asset can be
// overridden while the others stay built-in.
//
// Names are validated before they reach the filesystem, and files resolved
// through symlinks must stay inside the custom directory.
package assets
