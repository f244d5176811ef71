package pipeline

import (
	"html"
	"strings"
)

// HTMLPostamble closes the document opened by HTMLPreamble.
const HTMLPostamble = "</body>\n</html>"

// HTML is the Dialect for a standalone HTML page meant for print.
type HTML struct{}

func (HTML) Name() string { return "html" }
func (HTML) Ext() string  { return ".html" }

func (HTML) Escape(s string) string { return EscapeHTML(s) }

func (HTML) EscapeFragment(s string) string { return html.EscapeString(s) }

func (HTML) Itemize(items []string, layout ListLayout) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<ul class="` + layout.Class + "\">\n")
	for _, item := range items {
		b.WriteString("<li>" + item + "</li>\n")
	}
	b.WriteString("</ul>")
	return b.String()
}

func (d HTML) Role(title, subtitle, trailer string, items []string) string {
	return `<div class="entry"><strong>` + title + `</strong>, ` + subtitle +
		` <span class="trailer">` + trailer + "</span></div>\n" +
		d.Itemize(items, RoleLayout)
}

func (d HTML) Section(name string, blocks []string) string {
	return "\n<h2>" + d.Escape(name) + "</h2>\n" + d.Itemize(blocks, SectionLayout)
}

func (HTML) Contact(name, email, github string) string {
	return `<header class="contact">` + "\n" +
		"<h1>" + name + "</h1>\n" +
		`<div class="links"><span>` + email + `</span><span>github.com/` + github + "</span></div>\n" +
		"</header>"
}

func (HTML) Skill(area, description string) string {
	return "<strong>" + area + "</strong>: " + description
}

func (HTML) Range(from, to string) string { return from + " &ndash; " + to }

func (HTML) Strong(s string) string   { return "<strong>" + s + "</strong>" }
func (HTML) Emphasis(s string) string { return "<em>" + s + "</em>" }
func (HTML) Code(s string) string     { return "<code>" + s + "</code>" }

func (HTML) Link(url, text string) string {
	return `<a href="` + EscapeHTML(url) + `">` + text + "</a>"
}

func (HTML) Document(preamble, body string) string {
	return strings.TrimRight(preamble, "\n") + "\n" + body + "\n" + HTMLPostamble + "\n"
}

// HTMLPreamble opens an HTML document titled title with css inlined in
// <head>. Both arguments are raw; they are escaped here.
func HTMLPreamble(title, css string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + EscapeHTML(title) + "</title>\n")
	if css != "" {
		b.WriteString("<style>" + sanitizeCSS(css) + "</style>\n")
	}
	b.WriteString("</head>\n<body>\n")
	return b.String()
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

var _ Dialect = HTML{}
