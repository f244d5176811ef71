// Package pipeline turns a résumé document into markup.
//
// The stages are:
//   - Escaping of untrusted text for the target markup (EscapeLaTeX, EscapeHTML)
//   - Optional inline Markdown in description lines, via goldmark (InlineRenderer)
//   - Assembly of fixed template fragments into a full document (Assemble)
//
// A Dialect supplies the fragments for one markup language. LaTeX is the
// primary dialect; HTML exists so the résumé can be printed by headless
// Chrome when no TeX installation is available.
//
// Compiling markup to PDF is handled by the root resume package. This
// package is pure string work and never touches the filesystem.
package pipeline
