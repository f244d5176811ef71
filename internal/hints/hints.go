// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-resume/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForEngineNotFound returns hints when no LaTeX engine binary is installed.
func ForEngineNotFound(tried []string) string {
	hints := []string{"install tectonic (https://tectonic-typesetting.github.io) or a TeX distribution"}
	if len(tried) > 0 {
		hints = append(hints, "looked for: "+strings.Join(tried, ", "))
	}
	hints = append(hints, "use --no-pdf to write the .tex only")
	return formatHints(hints)
}

// ForCompilation returns a hint for engine failures on generated markup.
func ForCompilation() string {
	return format("rerun with --no-pdf and compile the .tex by hand to see the full log")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing the compile timeout.
func ForTimeout() string {
	return format("raise or drop the limit with --timeout")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(slashPath(p), "go-resume/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForSchema returns a hint pointing at the expected source layout.
func ForSchema() string {
	return format("top-level keys are contact, education, experience, projects, skills")
}

// ForSourceNotFound returns a hint when the résumé source cannot be read.
func ForSourceNotFound(path string) string {
	if path == "" {
		return ""
	}
	return format("pass the source explicitly, e.g. resume build " + path)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAssetNotFound returns hints for preamble or style not found errors.
func ForAssetNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// slashPath normalizes separators so lookups match on every OS.
func slashPath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
