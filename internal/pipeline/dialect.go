package pipeline

// ListLayout controls how an itemized block is typeset. Values are template
// text and are emitted verbatim, never escaped.
type ListLayout struct {
	LeftMargin string // LaTeX leftmargin
	ItemSep    string // LaTeX itemsep
	Label      string // LaTeX item label
	Class      string // HTML class of the list element
}

// Layouts used by the résumé template.
var (
	// RoleLayout lists the description lines under one entry.
	RoleLayout = ListLayout{LeftMargin: "*", ItemSep: "-0.7em", Label: `\textbullet`, Class: "role"}

	// SectionLayout lists the entries of one section.
	SectionLayout = ListLayout{LeftMargin: "0cm", ItemSep: "-0.0em", Label: "{}", Class: "section"}
)

// Dialect produces the template fragments of one markup language.
//
// Every method except Escape, EscapeFragment and Section expects its text
// arguments to be escaped already. Section escapes its heading itself.
type Dialect interface {
	// Name identifies the dialect ("latex", "html").
	Name() string

	// Ext is the file extension of generated markup, with the dot.
	Ext() string

	// Escape escapes s for body text and trims it.
	Escape(s string) string

	// EscapeFragment escapes s without trimming, for pieces of a larger line.
	EscapeFragment(s string) string

	Itemize(items []string, layout ListLayout) string
	Role(title, subtitle, trailer string, items []string) string
	Section(name string, blocks []string) string
	Contact(name, email, github string) string
	Skill(area, description string) string

	// Range joins the two ends of a period (begin, end).
	Range(from, to string) string

	Strong(s string) string
	Emphasis(s string) string
	Code(s string) string
	Link(url, text string) string

	// Document wraps body with the preamble and the closing text.
	Document(preamble, body string) string
}
