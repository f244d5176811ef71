package pipeline

import (
	"html"
	"strings"
)

// latexReplacer maps every LaTeX control character in one pass, so the
// braces emitted for glyph macros are never escaped a second time.
// Glyph macros end in {} so a following letter cannot extend the macro name.
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
	`#`, `\#`,
	`%`, `\%`,
	`&`, `\&`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
)

// urlReplacer prepares a URL for \href. hyperref reads the argument almost
// verbatim: only # and % need a backslash, and characters that TeX would
// still interpret are percent-encoded.
var urlReplacer = strings.NewReplacer(
	`#`, `\#`,
	`%`, `\%`,
	`\`, `%5C`,
	`{`, `%7B`,
	`}`, `%7D`,
	`^`, `%5E`,
)

// EscapeLaTeX makes s safe to embed in LaTeX body text and trims
// surrounding whitespace.
//
// Text that already contains escape sequences is escaped again:
// EscapeLaTeX(`\%`) is `\textbackslash{}\%`.
func EscapeLaTeX(s string) string {
	return strings.TrimSpace(latexReplacer.Replace(s))
}

// EscapeHTML makes s safe to embed in HTML text or a quoted attribute and
// trims surrounding whitespace.
func EscapeHTML(s string) string {
	return strings.TrimSpace(html.EscapeString(s))
}

// EscapeURL makes s safe as the first argument of \href.
func EscapeURL(s string) string {
	return strings.TrimSpace(urlReplacer.Replace(s))
}
