package main

import (
	"context"
	"errors"

	resume "github.com/alnah/go-resume"
	"github.com/alnah/go-resume/internal/assets"
	"github.com/alnah/go-resume/internal/config"
	"github.com/alnah/go-resume/internal/hints"
)

// hintedError carries an actionable hint alongside err.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() }
func (e *hintedError) Unwrap() error { return e.err }

// withHint attaches the hint for err, if there is one.
func withHint(err error, s *settings) error {
	if err == nil {
		return nil
	}
	h := hintFor(err, s)
	if h == "" {
		return err
	}
	return &hintedError{err: err, hint: h}
}

// hintFor returns the formatted hint for err, "" when none applies.
// s may be nil.
func hintFor(err error, s *settings) string {
	switch {
	case errors.Is(err, resume.ErrEngineNotFound):
		return hints.ForEngineNotFound(resume.LaTeXEngines)
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, resume.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, resume.ErrCompilation):
		return hints.ForCompilation()
	case errors.Is(err, config.ErrConfigNotFound):
		if s == nil || s.configName == "" {
			return ""
		}
		return hints.ForConfigNotFound(config.SearchPaths(s.configName))
	case errors.Is(err, resume.ErrSchema):
		return hints.ForSchema()
	case errors.Is(err, resume.ErrReadSource):
		if s == nil || !s.defaulted {
			return ""
		}
		return hints.ForSourceNotFound("path/to/resume.yaml")
	case errors.Is(err, resume.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, resume.ErrPreambleNotFound):
		return hints.ForAssetNotFound(assets.Names(assets.Preamble))
	case errors.Is(err, resume.ErrStyleNotFound):
		return hints.ForAssetNotFound(assets.Names(assets.Style))
	default:
		return ""
	}
}
