package pipeline

import "strings"

// Section headings, in document order.
const (
	SectionEducation  = "Education"
	SectionExperience = "Experience"
	SectionProjects   = "Projects"
	SectionSkills     = "Skills"
)

// Document is the raw, unescaped content of a résumé, already mapped onto
// the three-field entry shape shared by every section.
type Document struct {
	Preamble   string // dialect-specific head, emitted verbatim
	Contact    Contact
	Education  []Entry
	Experience []Entry
	Projects   []Entry
	Skills     []Skill
}

// Contact is the header block.
type Contact struct {
	Name   string
	Email  string
	GitHub string
}

// Entry is one education, experience or project item. When TrailerEnd is
// set the trailer renders as a range from Trailer to TrailerEnd.
type Entry struct {
	Title       string
	Subtitle    string
	Trailer     string
	TrailerEnd  string
	Description []string
}

// Skill is one line of the skills section.
type Skill struct {
	Area        string
	Description string
}

// Assemble renders doc with d. Free text is escaped exactly once here.
// Description lines go through inline when it is non-nil, otherwise they
// are escaped as plain text.
//
// Sections appear in fixed order, each exactly once, even when empty.
func Assemble(doc *Document, d Dialect, inline *InlineRenderer) string {
	text := func(s string) string {
		if inline != nil {
			return inline.Render(d, s)
		}
		return d.Escape(s)
	}

	parts := []string{
		d.Contact(d.Escape(doc.Contact.Name), d.Escape(doc.Contact.Email), d.Escape(doc.Contact.GitHub)),
		d.Section(SectionEducation, entries(doc.Education, d, text)),
		d.Section(SectionExperience, entries(doc.Experience, d, text)),
		d.Section(SectionProjects, entries(doc.Projects, d, text)),
		d.Section(SectionSkills, skills(doc.Skills, d, text)),
	}

	return d.Document(doc.Preamble, strings.Join(parts, "\n"))
}

func entries(list []Entry, d Dialect, text func(string) string) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		trailer := d.Escape(e.Trailer)
		if e.TrailerEnd != "" {
			trailer = d.Range(trailer, d.Escape(e.TrailerEnd))
		}

		items := make([]string, 0, len(e.Description))
		for _, line := range e.Description {
			items = append(items, text(line))
		}

		out = append(out, d.Role(d.Escape(e.Title), d.Escape(e.Subtitle), trailer, items))
	}
	return out
}

func skills(list []Skill, d Dialect, text func(string) string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, d.Skill(d.Escape(s.Area), text(s.Description)))
	}
	return out
}
