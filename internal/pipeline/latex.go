package pipeline

import "strings"

// LaTeXPostamble closes the document opened by the preamble.
const LaTeXPostamble = `\end{document}`

// LaTeX is the Dialect for LaTeX source.
type LaTeX struct{}

func (LaTeX) Name() string { return "latex" }
func (LaTeX) Ext() string  { return ".tex" }

func (LaTeX) Escape(s string) string { return EscapeLaTeX(s) }

func (LaTeX) EscapeFragment(s string) string { return latexReplacer.Replace(s) }

// Itemize renders an enumitem list. An empty list renders nothing: LaTeX
// rejects an itemize environment without items.
func (LaTeX) Itemize(items []string, layout ListLayout) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`\begin{itemize}[leftmargin=` + layout.LeftMargin +
		`, topsep=-2em, itemsep=` + layout.ItemSep +
		`, label=` + layout.Label + "]\n")
	for _, item := range items {
		b.WriteString(`\item ` + item + "\n")
	}
	b.WriteString(`\end{itemize}`)
	return b.String()
}

func (d LaTeX) Role(title, subtitle, trailer string, items []string) string {
	return `\textbf{` + title + `}, ` + subtitle + ` \hfill ` + trailer + "\n" +
		d.Itemize(items, RoleLayout)
}

func (d LaTeX) Section(name string, blocks []string) string {
	return "\n" + `\section{` + d.Escape(name) + "}\n" +
		d.Itemize(blocks, SectionLayout)
}

func (LaTeX) Contact(name, email, github string) string {
	return `\begin{center}` + "\n" +
		`{\Huge\textbf{` + name + `}} \\[.8em]` + "\n" +
		email + ` \hspace{2em} github.com/` + github + "\n" +
		`\end{center}`
}

func (LaTeX) Skill(area, description string) string {
	return `\textbf{` + area + `}:\ {` + description + `}`
}

func (LaTeX) Range(from, to string) string { return from + " -- " + to }

func (LaTeX) Strong(s string) string   { return `\textbf{` + s + `}` }
func (LaTeX) Emphasis(s string) string { return `\emph{` + s + `}` }
func (LaTeX) Code(s string) string     { return `\texttt{` + s + `}` }

// Link expects url unescaped; it is escaped for \href here.
func (LaTeX) Link(url, text string) string {
	return `\href{` + EscapeURL(url) + `}{` + text + `}`
}

func (LaTeX) Document(preamble, body string) string {
	return strings.TrimRight(preamble, "\n") + "\n" + body + "\n" + LaTeXPostamble + "\n"
}

var _ Dialect = LaTeX{}
