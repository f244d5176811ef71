package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alnah/go-resume/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // RESUME_CONFIG: config file name or path
	Format      string // RESUME_FORMAT: latex or html
	Engine      string // RESUME_ENGINE: any engine
	LaTeXEngine string // RESUME_LATEX_ENGINE: engine for the latex format only
	Timeout     string // RESUME_TIMEOUT: compilation timeout
	OutputDir   string // RESUME_OUTPUT_DIR: output directory
	AssetPath   string // RESUME_ASSET_PATH: custom asset directory
}

// knownEnvVars lists valid RESUME_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"RESUME_CONFIG":       true,
	"RESUME_FORMAT":       true,
	"RESUME_ENGINE":       true,
	"RESUME_LATEX_ENGINE": true,
	"RESUME_TIMEOUT":      true,
	"RESUME_OUTPUT_DIR":   true,
	"RESUME_ASSET_PATH":   true,
	"RESUME_CONTAINER":    true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath:  os.Getenv("RESUME_CONFIG"),
		Format:      os.Getenv("RESUME_FORMAT"),
		Engine:      os.Getenv("RESUME_ENGINE"),
		LaTeXEngine: os.Getenv("RESUME_LATEX_ENGINE"),
		Timeout:     os.Getenv("RESUME_TIMEOUT"),
		OutputDir:   os.Getenv("RESUME_OUTPUT_DIR"),
		AssetPath:   os.Getenv("RESUME_ASSET_PATH"),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized RESUME_* variable,
// in sorted order.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "RESUME_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				unknown = append(unknown, name)
			}
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overrides config file values with environment values.
// Flags are merged afterwards (mergeFlags), giving
// flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" {
		cfg.Format = env.Format
	}
	if env.Engine != "" {
		cfg.Engine = env.Engine
	}
	if env.Timeout != "" {
		cfg.Timeout = env.Timeout
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
}

// applyLaTeXEngine fills an unset engine from RESUME_LATEX_ENGINE once the
// final format is known, so the variable never leaks into html builds.
func applyLaTeXEngine(env *envConfig, cfg *config.Config) {
	if env.LaTeXEngine != "" && cfg.Engine == "" && !strings.EqualFold(cfg.Format, config.FormatHTML) {
		cfg.Engine = env.LaTeXEngine
	}
}
