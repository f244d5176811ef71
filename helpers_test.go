package resume

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// sampleYAML is a complete résumé exercising every section.
const sampleYAML = `contact:
  name: Ada Lovelace
  email: ada@example.com
  github: ada
education:
  - program: BSc Mathematics
    institution: University of London
    graduation: "1835"
    description:
      - Notes on the Analytical Engine
experience:
  - position: Analyst
    company: Babbage & Co
    begin: "1842"
    end: "1843"
    description:
      - Wrote the first program
      - Reached 100% of goals
projects:
  - title: Bernoulli numbers
    category: Algorithm
    github: ada/bernoulli
    description:
      - Computed B_8
skills:
  - area: Languages
    description: English, French
`

func sampleResume() *Resume {
	return &Resume{
		Contact: Contact{Name: "Ada Lovelace", Email: "ada@example.com", GitHub: "ada"},
		Experience: []Experience{{
			Position:    "Analyst",
			Company:     "Babbage & Co",
			Begin:       "1842",
			End:         "1843",
			Description: []string{"Reached 100% of goals"},
		}},
		Skills: []Skill{{Area: "Languages", Description: "English, French"}},
	}
}

// fakeEngine implements Engine for testing.
type fakeEngine struct {
	mu       sync.Mutex
	pdf      []byte
	err      error
	block    bool // wait for ctx.Done before returning
	panicMsg string
	calls    int
	markup   string
	closed   bool
}

func (f *fakeEngine) Compile(ctx context.Context, markup string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.markup = markup
	f.mu.Unlock()

	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.block {
		<-ctx.Done()
		return nil, errors.Join(ErrCompilation, ctx.Err())
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.pdf == nil {
		return []byte("%PDF-1.7 fake"), nil
	}
	return f.pdf, nil
}

func (f *fakeEngine) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeEngine) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

var _ Engine = (*fakeEngine)(nil)

// newTestConverter returns a Converter backed by a fakeEngine.
func newTestConverter(t *testing.T, eng *fakeEngine, opts ...Option) *Converter {
	t.Helper()
	opts = append(opts, WithCompiler(eng))
	c, err := NewConverter(opts...)
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// writeSource writes content to dir/name and returns its path.
func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing source: %v", err)
	}
	return path
}
