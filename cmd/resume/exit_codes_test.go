package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	resume "github.com/alnah/go-resume"
	"github.com/alnah/go-resume/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "compilation", err: resume.ErrCompilation, want: ExitCompilation},
		{name: "engine not found", err: fmt.Errorf("wrap: %w", resume.ErrEngineNotFound), want: ExitCompilation},
		{name: "browser connect", err: resume.ErrBrowserConnect, want: ExitCompilation},
		{name: "usage", err: fmt.Errorf("%w: unknown flag", ErrUsage), want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "config value", err: config.ErrInvalidValue, want: ExitUsage},
		{name: "schema", err: resume.ErrSchema, want: ExitUsage},
		{name: "extension", err: resume.ErrInvalidExtension, want: ExitUsage},
		{name: "format", err: resume.ErrInvalidFormat, want: ExitUsage},
		{name: "engine", err: resume.ErrInvalidEngine, want: ExitUsage},
		{name: "preamble", err: resume.ErrPreambleNotFound, want: ExitUsage},
		{name: "style", err: resume.ErrStyleNotFound, want: ExitUsage},
		{name: "asset path", err: resume.ErrInvalidAssetPath, want: ExitUsage},
		{name: "read source", err: fmt.Errorf("%w: %v", resume.ErrReadSource, os.ErrNotExist), want: ExitIO},
		{name: "write output", err: resume.ErrWriteOutput, want: ExitIO},
		{name: "permission", err: os.ErrPermission, want: ExitIO},
		{name: "hinted error unwraps", err: &hintedError{err: resume.ErrSchema, hint: "x"}, want: ExitUsage},
		{name: "compilation wins over IO", err: errors.Join(resume.ErrCompilation, os.ErrNotExist), want: ExitCompilation},
		{name: "timeout", err: errors.Join(resume.ErrCompilation, context.DeadlineExceeded), want: ExitCompilation},
		{name: "unknown", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
