// Package yamlutil wraps YAML parsing to isolate the external dependency.
// Résumé sources and tool configuration both go through here.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return &DecodeError{err: err}
	}
	return nil
}

// DecodeError is returned when the YAML decoder rejects the input
// (syntax error, type mismatch, unknown field in strict mode).
type DecodeError struct {
	err error
}

func (e *DecodeError) Error() string {
	return "yamlutil: " + yaml.FormatError(e.err, false, false)
}

func (e *DecodeError) Unwrap() error {
	return e.err
}

// Pretty renders the decoder error with the offending source lines,
// for terminal output. colored enables ANSI highlighting.
func (e *DecodeError) Pretty(colored bool) string {
	return yaml.FormatError(e.err, colored, true)
}

// Pretty returns the source-annotated form of err when it is (or wraps) a
// DecodeError, and "" otherwise.
func Pretty(err error, colored bool) string {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Pretty(colored)
	}
	return ""
}
