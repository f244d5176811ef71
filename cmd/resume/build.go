package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	resume "github.com/alnah/go-resume"
	"github.com/alnah/go-resume/internal/config"
)

// settings is the resolved configuration of one build or watch run.
type settings struct {
	cfg        *config.Config
	configName string // as given, for hints
	source     string
	defaulted  bool // source not given on the command line
	quiet      bool
	verbose    bool
}

// resolveSettings loads the config file and applies env and flags on top.
func resolveSettings(flags *buildFlags, source string, env *envConfig) (*settings, error) {
	s := &settings{
		source:  source,
		quiet:   flags.common.quiet,
		verbose: flags.common.verbose,
	}
	if s.source == "" {
		s.source = resume.DefaultSource
		s.defaulted = true
	}

	s.configName = flags.common.config
	if s.configName == "" {
		s.configName = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if s.configName != "" {
		var err error
		cfg, err = config.LoadConfig(s.configName)
		if err != nil {
			return s, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)
	applyLaTeXEngine(env, cfg)

	if err := cfg.Validate(); err != nil {
		return s, err
	}

	s.cfg = cfg
	return s, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if flags.engine != "" {
		cfg.Engine = flags.engine
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
	if flags.markdownSet {
		cfg.Markdown = flags.markdown
	}
	if flags.noPDF {
		cfg.Output.MarkupOnly = true
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.assets.preamble != "" {
		cfg.Assets.Preamble = flags.assets.preamble
	}
	if flags.assets.style != "" {
		cfg.Assets.Style = flags.assets.style
	}
}

// converterOptions translates the config into library options.
func converterOptions(cfg *config.Config) []resume.Option {
	opts := []resume.Option{
		resume.WithFormat(resume.Format(strings.ToLower(cfg.Format))),
		resume.WithEngine(cfg.Engine),
		resume.WithMarkdown(cfg.Markdown),
		resume.WithTimeout(cfg.TimeoutDuration()),
		resume.WithAssetPath(cfg.Assets.BasePath),
	}
	if cfg.Assets.Preamble != "" {
		opts = append(opts, resume.WithPreamble(cfg.Assets.Preamble))
	}
	if cfg.Assets.Style != "" {
		opts = append(opts, resume.WithStyle(cfg.Assets.Style))
	}
	return opts
}

// newSession resolves flags into a ready Session. The caller closes
// s.Converter.
func newSession(name string, args []string, env *Environment, usage func(io.Writer)) (*resume.Session, *settings, error) {
	flags, source, err := parseBuildFlags(name, args, usage, env.Stdout)
	if err != nil {
		return nil, nil, err
	}

	warnUnknownEnvVars(env.Stderr)

	s, err := resolveSettings(flags, source, loadEnvConfig())
	if err != nil {
		return nil, s, withHint(err, s)
	}

	conv, err := resume.NewConverter(converterOptions(s.cfg)...)
	if err != nil {
		return nil, s, withHint(err, s)
	}

	return &resume.Session{
		Source:     s.source,
		OutputDir:  s.cfg.Output.Dir,
		MarkupOnly: s.cfg.Output.MarkupOnly,
		Converter:  conv,
		Now:        env.Now,
	}, s, nil
}

// runBuild executes the build command.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	session, s, err := newSession("build", args, env, printBuildUsage)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	defer func() { _ = session.Converter.Close() }()

	p := newPrinter(env, s.quiet, s.verbose)
	if s.verbose {
		p.Settings(s)
	}

	res, err := session.Build(ctx)
	if err != nil {
		return withHint(err, s)
	}

	p.Built(res)
	return nil
}
