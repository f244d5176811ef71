package pipeline

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Link schemes rendered as links. Anything else keeps only its label.
var linkSchemes = []string{"http://", "https://", "mailto:"}

// InlineRenderer renders one line of inline Markdown (strong, emphasis,
// code spans, links and bare URLs) with the fragments of a Dialect.
// Entity references (&amp;, &#233;) resolve to their characters outside code
// spans. Text leaves are escaped exactly once. Lines that parse as anything but a
// single paragraph (headings, lists, quotes) are rendered as plain text.
type InlineRenderer struct {
	md goldmark.Markdown
}

// NewInlineRenderer creates an InlineRenderer with goldmark and the Linkify
// extension. It is safe for concurrent use.
func NewInlineRenderer() *InlineRenderer {
	return &InlineRenderer{
		md: goldmark.New(goldmark.WithExtensions(extension.Linkify)),
	}
}

// Render converts the Markdown line s to d markup.
func (r *InlineRenderer) Render(d Dialect, s string) string {
	s = strings.TrimSpace(crlfOrCR.ReplaceAllString(s, "\n"))
	if s == "" {
		return ""
	}

	src := []byte(s)
	doc := r.md.Parser().Parse(text.NewReader(src))

	para, ok := doc.FirstChild().(*ast.Paragraph)
	if !ok || doc.ChildCount() != 1 {
		return d.Escape(s)
	}

	var b strings.Builder
	renderChildren(&b, para, d, src)
	return strings.TrimSpace(b.String())
}

func renderChildren(b *strings.Builder, n ast.Node, d Dialect, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		renderNode(b, c, d, src)
	}
}

func renderNode(b *strings.Builder, n ast.Node, d Dialect, src []byte) {
	switch n := n.(type) {
	case *ast.Text:
		value := n.Segment.Value(src)
		if !n.IsRaw() {
			value = util.UnescapePunctuations(value)
			value = util.ResolveNumericReferences(value)
			value = util.ResolveEntityNames(value)
		}
		b.WriteString(d.EscapeFragment(string(value)))
		if n.SoftLineBreak() || n.HardLineBreak() {
			b.WriteByte(' ')
		}

	case *ast.String:
		b.WriteString(d.EscapeFragment(string(n.Value)))

	case *ast.Emphasis:
		var inner strings.Builder
		renderChildren(&inner, n, d, src)
		if n.Level >= 2 {
			b.WriteString(d.Strong(inner.String()))
		} else {
			b.WriteString(d.Emphasis(inner.String()))
		}

	case *ast.CodeSpan:
		var raw strings.Builder
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				raw.Write(t.Segment.Value(src))
			case *ast.String:
				raw.Write(t.Value)
			}
		}
		b.WriteString(d.Code(d.EscapeFragment(raw.String())))

	case *ast.Link:
		var label strings.Builder
		renderChildren(&label, n, d, src)
		writeLink(b, d, string(n.Destination), label.String())

	case *ast.AutoLink:
		label := d.EscapeFragment(string(n.Label(src)))
		writeLink(b, d, string(n.URL(src)), label)

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.WriteString(d.EscapeFragment(string(seg.Value(src))))
		}

	default:
		// Images and other inline nodes keep their text content.
		renderChildren(b, n, d, src)
	}
}

func writeLink(b *strings.Builder, d Dialect, url, label string) {
	if !allowedLink(url) {
		b.WriteString(label)
		return
	}
	b.WriteString(d.Link(url, label))
}

func allowedLink(url string) bool {
	lower := strings.ToLower(url)
	for _, scheme := range linkSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}
