package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// With no command, or when the first argument is a flag or a source file,
// build runs.
func runMain(ctx context.Context, args []string, env *Environment) int {
	var cmd string
	var rest []string
	if len(args) > 1 {
		cmd, rest = args[1], args[2:]
	}

	switch {
	case cmd == "" || isFlag(cmd) || looksLikeSource(cmd):
		return reportErr(env, runBuild(ctx, args[min(1, len(args)):], env))
	case cmd == "build":
		return reportErr(env, runBuild(ctx, rest, env))
	case cmd == "watch":
		return reportErr(env, runWatch(ctx, rest, env))
	case cmd == "doctor":
		return runDoctorCmd(rest, env)
	case cmd == "completion":
		return reportErr(env, runCompletion(rest, env))
	case cmd == "version":
		fmt.Fprintf(env.Stdout, "go-resume %s\n", Version)
		return ExitSuccess
	case cmd == "help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// reportErr prints err with its hint and maps it to an exit code.
func reportErr(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	var hint string
	var herr *hintedError
	if errors.As(err, &herr) {
		hint = herr.hint
	}
	newPrinter(env, false, false).Error(err, hint)
	return exitCodeFor(err)
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// hasVerboseFlag scans args before parsing, for GOMAXPROCS logging.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// looksLikeSource reports whether arg names a résumé file, so that
// "resume cv.yaml" works without the build command.
func looksLikeSource(arg string) bool {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
