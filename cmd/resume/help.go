package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resume <command> [flags] [source]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the résumé once (default)")
	fmt.Fprintln(w, "  watch      Rebuild the résumé whenever the source changes")
	fmt.Fprintln(w, "  doctor     Check LaTeX engines and Chrome")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'resume help <command>' for details on a specific command.")
}

// printBuildFlags prints the flags shared by build and watch.
func printBuildFlags(w io.Writer) {
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source    .yaml or .yml résumé (default: resume.yaml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: next to the source)")
	fmt.Fprintln(w, "  -f, --format <s>          Markup format: latex, html (default: latex)")
	fmt.Fprintln(w, "      --no-pdf              Write the markup only, skip PDF compilation")
	fmt.Fprintln(w, "      --markdown            Render inline Markdown in descriptions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compilation:")
	fmt.Fprintln(w, "  -e, --engine <s>          tectonic, xelatex, lualatex (latex); chrome (html)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Compilation timeout (e.g., 30s, 2m; default: none)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --preamble <name>     LaTeX preamble name or file path")
	fmt.Fprintln(w, "      --style <name>        CSS style name or file path (html)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show settings and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RESUME_CONFIG, RESUME_FORMAT, RESUME_ENGINE, RESUME_LATEX_ENGINE,")
	fmt.Fprintln(w, "  RESUME_TIMEOUT, RESUME_OUTPUT_DIR, RESUME_ASSET_PATH")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resume build [flags] [source]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write <source>.tex (or .html) and <source>.pdf.")
	fmt.Fprintln(w)
	printBuildFlags(w)
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resume watch [flags] [source]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build once, then rebuild whenever the source changes. Stop with Ctrl+C.")
	fmt.Fprintln(w)
	printBuildFlags(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resume doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report the LaTeX engines and Chrome found on this system.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json    Output as JSON")
}

// printCompletionUsage prints usage for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resume completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a completion script for bash, zsh or fish.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w, "  bash  eval \"$(resume completion bash)\"       # ~/.bashrc")
	fmt.Fprintln(w, "  zsh   eval \"$(resume completion zsh)\"        # ~/.zshrc, after compinit")
	fmt.Fprintln(w, "  fish  resume completion fish > ~/.config/fish/completions/resume.fish")
}

// runHelp prints help for a command and returns an exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: resume version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: resume help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
