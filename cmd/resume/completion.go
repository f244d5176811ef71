package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell is a shell that completion scripts can be generated for.
type Shell string

// Supported shells.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

var shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("%w: unsupported shell", ErrUsage)

type flagType int

const (
	flagString flagType = iota
	flagBool
	flagEnum
	flagFile
	flagDir
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string // flagEnum
	FileGlob string   // flagFile, comma-separated ("*.yaml,*.yml")
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed positional words
	FilePattern string   // positional files, same form as FileGlob
}

// completionMeta holds the hints a FlagSet cannot express.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

var flagCompletionMeta = map[string]completionMeta{
	"format":     {Values: []string{"latex", "html"}},
	"engine":     {Values: []string{"tectonic", "xelatex", "lualatex", "chrome"}},
	"config":     {FileGlob: "*.yaml,*.yml"},
	"preamble":   {FileGlob: "*.tex"},
	"style":      {FileGlob: "*.css"},
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlags turns a FlagSet into flag definitions, enriched with
// flagCompletionMeta.
func extractFlags(fs *flag.FlagSet) []flagDef {
	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type, fd.Values = flagEnum, meta.Values
			case meta.FileGlob != "":
				fd.Type, fd.FileGlob = flagFile, meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}
		flags = append(flags, fd)
	})
	return flags
}

// getCommands returns the command registry. Build and watch flags come
// from newBuildFlagSet so completion cannot drift from parsing.
func getCommands() []commandDef {
	flags := extractFlags(newBuildFlagSet("build", &buildFlags{}))
	names := []string{"build", "watch", "doctor", "version", "help", "completion"}
	shellNames := make([]string, len(shells))
	for i, s := range shells {
		shellNames[i] = string(s)
	}

	return []commandDef{
		{Name: "build", Desc: "Build the résumé once", Flags: flags, FilePattern: "*.yaml,*.yml"},
		{Name: "watch", Desc: "Rebuild the résumé whenever the source changes", Flags: flags, FilePattern: "*.yaml,*.yml"},
		{Name: "doctor", Desc: "Check LaTeX engines and Chrome", Flags: []flagDef{{Long: "json", Type: flagBool, Desc: "output as JSON"}}},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command", Args: names},
		{Name: "completion", Desc: "Generate shell completion script", Args: shellNames},
	}
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(getCommands())
	case ShellZsh:
		script = zshScript(getCommands())
	case ShellFish:
		script = fishScript(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

func runCompletion(args []string, env *Environment) error {
	switch {
	case len(args) == 0:
		printCompletionUsage(env.Stdout)
		return nil
	case len(args) > 1:
		return fmt.Errorf("%w: expected one shell, got %d", ErrUsage, len(args))
	case args[0] == "-h" || args[0] == "--help":
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// globExts returns the extensions of a comma-separated glob list:
// "*.yaml,*.yml" -> [yaml yml].
func globExts(glob string) []string {
	var exts []string
	for _, g := range strings.Split(glob, ",") {
		if ext := strings.TrimPrefix(strings.TrimSpace(g), "*."); ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// ---------------------------------------------------------------------------
// bash
// ---------------------------------------------------------------------------

func bashFiles(glob string) string {
	return fmt.Sprintf(`$(compgen -f -X '!*.@(%s)' -- "$cur") $(compgen -d -- "$cur")`,
		strings.Join(globExts(glob), "|"))
}

func bashScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# bash completion for resume\n")
	b.WriteString("_resume() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ $COMP_CWORD -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\") %s)\n", commandNames(cmds), bashFiles("*.yaml,*.yml"))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)

		var all []string
		var values strings.Builder
		for _, f := range c.Flags {
			pattern := "--" + f.Long
			all = append(all, "--"+f.Long)
			if f.Short != "" {
				pattern = "-" + f.Short + "|" + pattern
				all = append(all, "-"+f.Short)
			}
			var reply string
			switch f.Type {
			case flagBool:
				continue
			case flagEnum:
				reply = fmt.Sprintf(`$(compgen -W "%s" -- "$cur")`, strings.Join(f.Values, " "))
			case flagFile:
				reply = bashFiles(f.FileGlob)
			case flagDir:
				reply = `$(compgen -d -- "$cur")`
			}
			fmt.Fprintf(&values, "            %s) COMPREPLY=(%s); return ;;\n", pattern, reply)
		}
		if values.Len() > 0 {
			b.WriteString("        case \"$prev\" in\n")
			b.WriteString(values.String())
			b.WriteString("        esac\n")
		}
		if len(all) > 0 {
			b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(all, " "))
			b.WriteString("            return\n")
			b.WriteString("        fi\n")
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(c.Args, " "))
		case c.FilePattern != "":
			fmt.Fprintf(&b, "        COMPREPLY=(%s)\n", bashFiles(c.FilePattern))
		default:
			b.WriteString("        COMPREPLY=()\n")
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -o filenames -F _resume resume\n")
	return b.String()
}

// ---------------------------------------------------------------------------
// zsh
// ---------------------------------------------------------------------------

var zshDescEscaper = strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`)

func zshFiles(glob string) string {
	return fmt.Sprintf(`_files -g "*.(%s)"`, strings.Join(globExts(glob), "|"))
}

func zshFlagSpecs(f flagDef) []string {
	desc := zshDescEscaper.Replace(f.Desc)
	var action string
	switch f.Type {
	case flagBool:
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = ":file:" + zshFiles(f.FileGlob)
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":" + f.Long + ":"
	}

	long := "--" + f.Long
	if f.Type != flagBool {
		long += "="
	}
	specs := []string{fmt.Sprintf("'%s[%s]%s'", long, desc, action)}
	if f.Short != "" {
		specs = append(specs, fmt.Sprintf("'-%s[%s]%s'", f.Short, desc, action))
	}
	return specs
}

func zshScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("#compdef resume\n\n")
	b.WriteString("_resume() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshDescEscaper.Replace(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe -t commands 'resume command' commands\n")
	fmt.Fprintf(&b, "        %s\n", zshFiles("*.yaml,*.yml"))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=${words[2]}\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case $cmd in\n")

	for _, c := range cmds {
		var specs []string
		for _, f := range c.Flags {
			specs = append(specs, zshFlagSpecs(f)...)
		}
		switch {
		case len(c.Args) > 0:
			specs = append(specs, fmt.Sprintf("'1:%s:(%s)'", c.Name, strings.Join(c.Args, " ")))
		case c.FilePattern != "":
			specs = append(specs, fmt.Sprintf("'*:source:%s'", zshFiles(c.FilePattern)))
		}

		fmt.Fprintf(&b, "    %s)\n", c.Name)
		if len(specs) == 0 {
			b.WriteString("        ;;\n")
			continue
		}
		b.WriteString("        _arguments -s \\\n")
		for i, s := range specs {
			b.WriteString("            " + s)
			if i < len(specs)-1 {
				b.WriteString(" \\")
			}
			b.WriteString("\n")
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _resume resume\n")
	return b.String()
}

// ---------------------------------------------------------------------------
// fish
// ---------------------------------------------------------------------------

var fishEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func fishScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# fish completion for resume\n")
	b.WriteString("complete -c resume -f\n\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c resume -n __fish_use_subcommand -a %s -d '%s'\n", c.Name, fishEscaper.Replace(c.Desc))
	}
	b.WriteString("complete -c resume -n __fish_use_subcommand -a '(__fish_complete_suffix .yaml) (__fish_complete_suffix .yml)'\n")

	for _, c := range cmds {
		b.WriteString("\n")
		cond := fmt.Sprintf("-n '__fish_seen_subcommand_from %s'", c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c resume %s -l %s", cond, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			fmt.Fprintf(&b, " -d '%s'", fishEscaper.Replace(f.Desc))
			switch f.Type {
			case flagBool:
			case flagEnum:
				fmt.Fprintf(&b, " -r -f -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				b.WriteString(" -r -F")
			case flagDir:
				b.WriteString(" -r -f -a '(__fish_complete_directories)'")
			default:
				b.WriteString(" -r -f")
			}
			b.WriteString("\n")
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "complete -c resume %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		case c.FilePattern != "":
			var sources []string
			for _, ext := range globExts(c.FilePattern) {
				sources = append(sources, "(__fish_complete_suffix ."+ext+")")
			}
			fmt.Fprintf(&b, "complete -c resume %s -a '%s'\n", cond, strings.Join(sources, " "))
		}
	}
	return b.String()
}
