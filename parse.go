package resume

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alnah/go-resume/internal/yamlutil"
)

// Parse decodes a YAML résumé and validates it. Unknown keys, wrong types
// and missing required fields are reported as ErrSchema. A partial résumé
// is never returned.
func Parse(data []byte) (*Resume, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrSchema, ErrEmptySource)
	}

	var r Resume
	if err := yamlutil.UnmarshalStrict(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// Validate reports every missing or blank required field, by path
// (e.g. "experience[1].company").
func (r *Resume) Validate() error {
	v := &validator{}

	v.require("contact.name", r.Contact.Name)
	v.require("contact.email", r.Contact.Email)
	v.require("contact.github", r.Contact.GitHub)

	for i, e := range r.Education {
		p := fmt.Sprintf("education[%d]", i)
		v.require(p+".program", e.Program)
		v.require(p+".institution", e.Institution)
		v.require(p+".graduation", e.Graduation)
	}

	for i, e := range r.Experience {
		p := fmt.Sprintf("experience[%d]", i)
		v.require(p+".position", e.Position)
		v.require(p+".company", e.Company)
		v.require(p+".begin", e.Begin)
		v.require(p+".end", e.End)
	}

	for i, e := range r.Projects {
		p := fmt.Sprintf("projects[%d]", i)
		v.require(p+".title", e.Title)
		v.require(p+".category", e.Category)
		v.require(p+".github", e.GitHub)
	}

	for i, s := range r.Skills {
		p := fmt.Sprintf("skills[%d]", i)
		v.require(p+".area", s.Area)
		v.require(p+".description", s.Description)
	}

	return v.err()
}

type validator struct {
	missing []string
}

func (v *validator) require(path, value string) {
	if strings.TrimSpace(value) == "" {
		v.missing = append(v.missing, path)
	}
}

func (v *validator) err() error {
	if len(v.missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: missing required field(s): %s", ErrSchema, strings.Join(v.missing, ", "))
}
