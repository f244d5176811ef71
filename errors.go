package resume

import "errors"

// Sentinel errors for library operations.
var (
	// Source errors.
	ErrReadSource       = errors.New("failed to read resume source")
	ErrInvalidExtension = errors.New("resume source must be a .yaml or .yml file")
	ErrSchema           = errors.New("invalid resume")
	ErrEmptySource      = errors.New("resume source is empty")

	// Compilation errors.
	ErrCompilation    = errors.New("PDF compilation failed")
	ErrEngineNotFound = errors.New("no LaTeX engine found")
	ErrBrowserConnect = errors.New("failed to connect to browser")

	// Output errors.
	ErrWriteOutput = errors.New("failed to write output")

	// Configuration errors.
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidEngine    = errors.New("invalid engine")
	ErrPreambleNotFound = errors.New("preamble not found")
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
