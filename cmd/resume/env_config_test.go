package main

// Notes:
// - loadEnvConfig/warnUnknownEnvVars: tests use t.Setenv() which prevents
//   t.Parallel().
// - resolveSettings precedence is covered end to end: defaults, config
//   file, environment, flags.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-resume/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("RESUME_CONFIG", "/path/to/config.yaml")
	t.Setenv("RESUME_FORMAT", "html")
	t.Setenv("RESUME_ENGINE", "chrome")
	t.Setenv("RESUME_LATEX_ENGINE", "xelatex")
	t.Setenv("RESUME_TIMEOUT", "2m")
	t.Setenv("RESUME_OUTPUT_DIR", "/output")
	t.Setenv("RESUME_ASSET_PATH", "/assets")

	got := *loadEnvConfig()
	want := envConfig{
		ConfigPath:  "/path/to/config.yaml",
		Format:      "html",
		Engine:      "chrome",
		LaTeXEngine: "xelatex",
		Timeout:     "2m",
		OutputDir:   "/output",
		AssetPath:   "/assets",
	}
	if got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("RESUME_FROMAT", "html")
	t.Setenv("RESUME_ENGNE", "tectonic")
	t.Setenv("RESUME_FORMAT", "latex")
	t.Setenv("RESUME_CONTAINER", "1")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"warning: unknown environment variable RESUME_ENGNE (typo?)",
		"warning: unknown environment variable RESUME_FROMAT (typo?)",
	}
	if len(lines) != len(want) {
		t.Fatalf("warnings = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

// ---------------------------------------------------------------------------
// TestApplyLaTeXEngine - Engine fallback for the latex format only
// ---------------------------------------------------------------------------

func TestApplyLaTeXEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		engine string
		envVal string
		want   string
	}{
		{name: "fills unset engine", format: "latex", envVal: "lualatex", want: "lualatex"},
		{name: "uppercase format", format: "LaTeX", envVal: "lualatex", want: "lualatex"},
		{name: "explicit engine wins", format: "latex", engine: "tectonic", envVal: "lualatex", want: "tectonic"},
		{name: "ignored for html", format: "html", envVal: "lualatex", want: ""},
		{name: "unset variable", format: "latex", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Format = tt.format
			cfg.Engine = tt.engine
			applyLaTeXEngine(&envConfig{LaTeXEngine: tt.envVal}, cfg)
			if cfg.Engine != tt.want {
				t.Errorf("Engine = %q, want %q", cfg.Engine, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveSettings_Precedence - flags > env > config file > defaults
// ---------------------------------------------------------------------------

func TestResolveSettings_Precedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "work.yaml", "format: html\nengine: chrome\ntimeout: 10s\nmarkdown: true\noutput:\n  dir: from-config\n")

	tests := []struct {
		name        string
		flags       buildFlags
		env         envConfig
		wantFormat  string
		wantEngine  string
		wantTimeout string
		wantDir     string
		wantMD      bool
	}{
		{
			name:        "defaults",
			wantFormat:  config.FormatLaTeX,
			wantEngine:  "",
			wantTimeout: "",
		},
		{
			name:        "config file",
			flags:       buildFlags{common: commonFlags{config: cfgPath}},
			wantFormat:  "html",
			wantEngine:  "chrome",
			wantTimeout: "10s",
			wantDir:     "from-config",
			wantMD:      true,
		},
		{
			name:        "config from environment",
			env:         envConfig{ConfigPath: cfgPath},
			wantFormat:  "html",
			wantEngine:  "chrome",
			wantTimeout: "10s",
			wantDir:     "from-config",
			wantMD:      true,
		},
		{
			name:        "environment overrides config file",
			flags:       buildFlags{common: commonFlags{config: cfgPath}},
			env:         envConfig{Format: "latex", Engine: "xelatex", Timeout: "1m", OutputDir: "from-env"},
			wantFormat:  "latex",
			wantEngine:  "xelatex",
			wantTimeout: "1m",
			wantDir:     "from-env",
			wantMD:      true,
		},
		{
			name: "flags override environment",
			flags: buildFlags{
				common:      commonFlags{config: cfgPath},
				format:      "latex",
				engine:      "lualatex",
				timeout:     "5s",
				output:      "from-flag",
				markdownSet: true,
			},
			env:         envConfig{Format: "html", Engine: "chrome", Timeout: "1m", OutputDir: "from-env"},
			wantFormat:  "latex",
			wantEngine:  "lualatex",
			wantTimeout: "5s",
			wantDir:     "from-flag",
			wantMD:      false,
		},
		{
			name:        "latex engine variable applies after flags",
			flags:       buildFlags{format: "latex"},
			env:         envConfig{Format: "html", LaTeXEngine: "tectonic"},
			wantFormat:  "latex",
			wantEngine:  "tectonic",
			wantTimeout: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := tt.flags
			env := tt.env
			s, err := resolveSettings(&flags, "", &env)
			if err != nil {
				t.Fatalf("resolveSettings() error = %v", err)
			}
			if s.cfg.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", s.cfg.Format, tt.wantFormat)
			}
			if s.cfg.Engine != tt.wantEngine {
				t.Errorf("Engine = %q, want %q", s.cfg.Engine, tt.wantEngine)
			}
			if s.cfg.Timeout != tt.wantTimeout {
				t.Errorf("Timeout = %q, want %q", s.cfg.Timeout, tt.wantTimeout)
			}
			if s.cfg.Output.Dir != tt.wantDir {
				t.Errorf("Output.Dir = %q, want %q", s.cfg.Output.Dir, tt.wantDir)
			}
			if s.cfg.Markdown != tt.wantMD {
				t.Errorf("Markdown = %v, want %v", s.cfg.Markdown, tt.wantMD)
			}
		})
	}
}

func TestResolveSettings_Source(t *testing.T) {
	t.Parallel()

	s, err := resolveSettings(&buildFlags{}, "", &envConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if s.source != "resume.yaml" || !s.defaulted {
		t.Errorf("source = %q, defaulted = %v, want resume.yaml, true", s.source, s.defaulted)
	}

	s, err = resolveSettings(&buildFlags{}, filepath.Join("cv", "me.yml"), &envConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if s.source != filepath.Join("cv", "me.yml") || s.defaulted {
		t.Errorf("source = %q, defaulted = %v", s.source, s.defaulted)
	}
}

func TestResolveSettings_Errors(t *testing.T) {
	t.Parallel()

	badCfg := writeFile(t, t.TempDir(), "bad.yaml", "colour: red\n")

	tests := []struct {
		name    string
		flags   buildFlags
		env     envConfig
		wantErr error
	}{
		{name: "missing config", flags: buildFlags{common: commonFlags{config: "./nope.yaml"}}, wantErr: config.ErrConfigNotFound},
		{name: "unknown config key", flags: buildFlags{common: commonFlags{config: badCfg}}, wantErr: config.ErrConfigParse},
		{name: "invalid env timeout", env: envConfig{Timeout: "soon"}, wantErr: config.ErrInvalidValue},
		{name: "invalid flag format", flags: buildFlags{format: "docx"}, wantErr: config.ErrInvalidValue},
		{name: "invalid env engine", env: envConfig{Engine: "pdflatex"}, wantErr: config.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := tt.flags
			env := tt.env
			s, err := resolveSettings(&flags, "", &env)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if s == nil {
				t.Fatal("settings should be returned alongside the error")
			}
		})
	}
}
