// Package resume renders a YAML résumé as LaTeX (or HTML) and compiles it
// to PDF.
//
// # Quick Start
//
// Parse a source, convert it, and close the converter when done:
//
//	r, err := resume.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conv, err := resume.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, resume.Input{Resume: r})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("resume.pdf", result.PDF, 0644)
//
// The result holds both the generated markup (result.Markup) and the PDF.
// Set Input.MarkupOnly to skip compilation.
//
// # Source Format
//
//	contact:
//	  name: Jane Doe
//	  email: jane@example.com
//	  github: jane
//	education:
//	  - program: BSc Computer Science
//	    institution: MIT
//	    graduation: "2019"
//	    description: [Thesis on compilers]
//	experience:
//	  - position: Engineer
//	    company: Acme
//	    begin: "2020"
//	    end: "2022"
//	    description: [Did X, Did Y]
//	projects:
//	  - title: resume
//	    category: CLI
//	    github: github.com/jane/resume
//	skills:
//	  - area: Languages
//	    description: Go, C++
//
// Unknown keys are rejected. Sections are optional; every field of a
// present entry is required.
//
// # Conversion Pipeline
//
//  1. Strict YAML decoding and validation (Parse)
//  2. Escaping of every free-text field for the target markup
//  3. Assembly of the fixed template: contact, Education, Experience,
//     Projects, Skills
//  4. Compilation by an Engine: a LaTeX binary (tectonic, xelatex,
//     lualatex) or headless Chrome for the HTML format
//
// # Configuration
//
//	conv, err := resume.NewConverter(
//	    resume.WithEngine("xelatex"),
//	    resume.WithMarkdown(true),
//	    resume.WithTimeout(2 * time.Minute),
//	    resume.WithAssetPath("/path/to/assets"),
//	)
//
// # Sessions
//
// Session ties a source file to its outputs. Build runs once; Watch rebuilds
// whenever the source changes until its context is cancelled.
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go and can be checked with errors.Is:
//
//	if errors.Is(err, resume.ErrSchema) {
//	    // source does not match the schema
//	}
package resume
