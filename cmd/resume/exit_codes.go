package main

import (
	"errors"
	"os"

	resume "github.com/alnah/go-resume"
	"github.com/alnah/go-resume/internal/config"
)

// Exit codes for the resume CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess     = 0 // Successful build
	ExitGeneral     = 1 // General/unexpected error
	ExitUsage       = 2 // Invalid flags, config, or résumé
	ExitIO          = 3 // File not found, permission denied
	ExitCompilation = 4 // LaTeX engine or browser errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Compilation errors (exit 4)
	if errors.Is(err, resume.ErrCompilation) ||
		errors.Is(err, resume.ErrEngineNotFound) ||
		errors.Is(err, resume.ErrBrowserConnect) {
		return ExitCompilation
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, resume.ErrSchema) ||
		errors.Is(err, resume.ErrInvalidExtension) ||
		errors.Is(err, resume.ErrInvalidFormat) ||
		errors.Is(err, resume.ErrInvalidEngine) ||
		errors.Is(err, resume.ErrPreambleNotFound) ||
		errors.Is(err, resume.ErrStyleNotFound) ||
		errors.Is(err, resume.ErrInvalidAssetPath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, resume.ErrReadSource) ||
		errors.Is(err, resume.ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
