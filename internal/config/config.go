// Package config loads the optional YAML configuration of the resume tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-resume/internal/fileutil"
	"github.com/alnah/go-resume/internal/yamlutil"
)

// Sentinel errors for configuration operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxAssetNameLength = 64
	MaxDurationLength  = 32 // "1h30m", "90s"
)

// Accepted values for Config.Format.
const (
	FormatLaTeX = "latex"
	FormatHTML  = "html"
)

// Accepted values for Config.Engine. Empty selects automatically.
var engines = []string{"tectonic", "xelatex", "lualatex", "chrome"}

// Config holds the tool settings that are not part of the résumé itself.
type Config struct {
	Format   string       `yaml:"format"`   // "latex" (default) or "html"
	Engine   string       `yaml:"engine"`   // empty = auto-detect
	Markdown bool         `yaml:"markdown"` // inline Markdown in descriptions
	Timeout  string       `yaml:"timeout"`  // Go duration, empty = no limit
	Output   OutputConfig `yaml:"output"`
	Assets   AssetsConfig `yaml:"assets"`
}

// OutputConfig controls where and what is written.
type OutputConfig struct {
	Dir        string `yaml:"dir"`        // empty = next to the source
	MarkupOnly bool   `yaml:"markupOnly"` // skip PDF compilation
}

// AssetsConfig selects the preamble and stylesheet.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
	Preamble string `yaml:"preamble"` // LaTeX preamble name
	Style    string `yaml:"style"`    // CSS style name (html format)
}

// Validate checks enum fields, durations and field lengths.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", FormatLaTeX, FormatHTML:
	default:
		return fmt.Errorf("%w: format %q (must be latex or html)", ErrInvalidValue, c.Format)
	}

	if c.Engine != "" && !contains(engines, strings.ToLower(c.Engine)) {
		return fmt.Errorf("%w: engine %q (must be one of %s)", ErrInvalidValue, c.Engine, strings.Join(engines, ", "))
	}

	if err := validateFieldLength("timeout", c.Timeout, MaxDurationLength); err != nil {
		return err
	}
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout %q: %v", ErrInvalidValue, c.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("%w: timeout %q is negative", ErrInvalidValue, c.Timeout)
		}
	}

	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.preamble", c.Assets.Preamble, MaxAssetNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.style", c.Assets.Style, MaxAssetNameLength); err != nil {
		return err
	}

	return nil
}

// TimeoutDuration returns the parsed timeout, zero when unset.
// Call after Validate.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Format: FormatLaTeX,
		Assets: AssetsConfig{
			Preamble: "default",
			Style:    "default",
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// current directory, then the user config directory, each with .yaml and .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-resume", name+ext))
		}
	}

	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
