package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	resume "github.com/alnah/go-resume"
	"github.com/alnah/go-resume/internal/fileutil"
)

// Lookups replaced in tests.
var (
	findLaTeXEngine = resume.FindLaTeXEngine
	lookChrome      = launcher.LookPath
	binaryVersion   = func(path string) (string, error) {
		out, err := exec.Command(path, "--version").Output() // #nosec G204 -- path comes from PATH lookup
		if err != nil {
			return "", err
		}
		first, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
		return first, nil
	}
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	LaTeX    []engineInfo `json:"latex"`
	Chrome   chromeInfo   `json:"chrome"`
	Env      envInfo      `json:"environment"`
	System   systemInfo   `json:"system"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// engineInfo holds the detection result of one LaTeX engine.
type engineInfo struct {
	Name    string `json:"name"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Default bool   `json:"default"` // picked when no engine is configured
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code:
// 0 when a build can run (warnings included), 1 on errors, 2 on bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	jsonOutput := fs.Bool("json", false, "output as JSON")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printDoctorUsage(env.Stdout)
			return ExitSuccess
		}
		return reportErr(env, fmt.Errorf("%w: %v", ErrUsage, err))
	}

	result := runDoctor()

	if *jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// runDoctor probes the host and derives the overall status.
func runDoctor() *doctorResult {
	r := &doctorResult{
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	r.probeLaTeX()
	r.probeChrome()
	r.probeHost()

	if !r.anyLaTeX() && !r.Chrome.Found {
		r.fail("No PDF engine found. Install tectonic or a TeX distribution, or Chrome for --format html")
	}

	switch {
	case len(r.Errors) > 0:
		r.Status = statusErrors
	case len(r.Warnings) > 0:
		r.Status = statusWarnings
	default:
		r.Status = statusReady
	}
	return r
}

func (r *doctorResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *doctorResult) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *doctorResult) anyLaTeX() bool {
	for _, e := range r.LaTeX {
		if e.Found {
			return true
		}
	}
	return false
}

// probeLaTeX looks up every supported engine and marks the one a build
// without --engine would use.
func (r *doctorResult) probeLaTeX() {
	picked, _, _ := findLaTeXEngine("")

	for _, name := range resume.LaTeXEngines {
		info := engineInfo{Name: name}
		if _, path, err := findLaTeXEngine(name); err == nil {
			info.Found, info.Path, info.Default = true, path, name == picked
			info.Version, _ = binaryVersion(path)
		}
		r.LaTeX = append(r.LaTeX, info)
	}

	if !r.anyLaTeX() {
		r.warn("No LaTeX engine found; the latex format can only write .tex (--no-pdf)")
	}
}

// probeChrome finds the browser the html format prints with. ROD_BROWSER_BIN
// wins over rod's own lookup.
func (r *doctorResult) probeChrome() {
	path := r.Env.BrowserBin
	if path == "" {
		var ok bool
		if path, ok = lookChrome(); !ok {
			r.warn("Chrome/Chromium not found; --format html downloads Chromium on first use (or set ROD_BROWSER_BIN)")
			return
		}
	}
	if _, err := os.Stat(path); err != nil {
		r.warn("Chrome not found at %s", path)
		return
	}

	r.Chrome = chromeInfo{Found: true, Path: path, Sandbox: r.Env.NoSandbox != "1"}
	version, err := binaryVersion(path)
	if err != nil {
		r.warn("Could not get Chrome version: %v", err)
		return
	}
	r.Chrome.Version = version
}

// containerSignals are checked in order; the first match is reported.
var containerSignals = []func() (hint string, ok bool){
	func() (string, bool) { return "RESUME_CONTAINER=1", os.Getenv("RESUME_CONTAINER") == "1" },
	func() (string, bool) { return "/.dockerenv", fileutil.FileExists("/.dockerenv") },
	func() (string, bool) {
		v := os.Getenv("container") // podman, systemd-nspawn
		return "container=" + v, v != ""
	},
	func() (string, bool) { return "KUBERNETES_SERVICE_HOST", os.Getenv("KUBERNETES_SERVICE_HOST") != "" },
}

var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// probeHost detects containers and CI, and checks the temp directory the
// engines compile in.
func (r *doctorResult) probeHost() {
	for _, detect := range containerSignals {
		if hint, ok := detect(); ok {
			r.Env.Container, r.Env.ContainerHint = true, hint
			break
		}
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			r.Env.CI = true
			break
		}
	}

	// Chrome's sandbox does not start in most containers.
	if r.Chrome.Found && r.Chrome.Sandbox && (r.Env.Container || r.Env.CI) {
		r.warn("Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}

	_, cleanup, err := fileutil.WriteTempFile("doctor", "tmp")
	if err != nil {
		r.fail("Temp directory not writable: %s", os.TempDir())
		return
	}
	cleanup()
	r.System.TempWritable = true
}

// printDoctorResult writes the human-readable report.
func printDoctorResult(w io.Writer, r *doctorResult) {
	line := func(mark, format string, args ...any) {
		fmt.Fprintf(w, "  [%s] %s\n", mark, fmt.Sprintf(format, args...))
	}

	fmt.Fprint(w, "resume doctor\n\nLaTeX engines\n")
	for _, e := range r.LaTeX {
		if !e.Found {
			line("--", "%s: not found", e.Name)
			continue
		}
		text := e.Name + ": " + e.Path
		if e.Version != "" {
			text += " (" + e.Version + ")"
		}
		if e.Default {
			text += " [default]"
		}
		line("OK", "%s", text)
	}

	fmt.Fprint(w, "\nChrome/Chromium\n")
	switch {
	case !r.Chrome.Found:
		line("--", "Not found")
	default:
		line("OK", "Found at %s", r.Chrome.Path)
		if r.Chrome.Version != "" {
			line("OK", "Version: %s", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			line("OK", "Sandbox: enabled")
		} else {
			line("OK", "Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	}

	fmt.Fprint(w, "\nEnvironment\n")
	line("OK", "Platform: %s/%s", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		line("OK", "Container: detected (%s)", r.Env.ContainerHint)
	}
	if r.Env.CI {
		line("OK", "CI: detected")
	}

	fmt.Fprint(w, "\nSystem\n")
	if r.System.TempWritable {
		line("OK", "Temp directory: writable")
	} else {
		line("ERROR", "Temp directory: not writable")
	}

	for _, group := range []struct {
		title, mark string
		items       []string
	}{
		{"Warnings:", "WARN", r.Warnings},
		{"Errors:", "ERROR", r.Errors},
	} {
		if len(group.items) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", group.title)
		for _, item := range group.items {
			line(group.mark, "%s", item)
		}
	}

	fmt.Fprintln(w)
	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to build")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
