package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: readmedocs <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render READMEs to standalone HTML pages")
	fmt.Fprintln(w, "  outline    Print the heading outline of a README")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'readmedocs help <command>' for details on a specific command.")
}

// printTargets describes the accepted target forms.
func printTargets(w io.Writer) {
	fmt.Fprintln(w, "Targets:")
	fmt.Fprintln(w, "  owner/repo                        README of a GitHub repository")
	fmt.Fprintln(w, "  https://github.com/owner/repo     Same, as a URL (.git suffix allowed)")
	fmt.Fprintln(w, "  ./README.md                       Local markdown file")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: readmedocs render <target>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render each target into <owner-repo>.html with a navigation sidebar.")
	fmt.Fprintln(w)
	printTargets(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory, or - for stdout (single target)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --token <s>           GitHub token (default: $GITHUB_TOKEN)")
	fmt.Fprintln(w, "      --print-config        Print the effective config and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <name>       Engine: rules (default), goldmark")
	fmt.Fprintln(w, "      --highlight           Highlight fenced code (goldmark only)")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style name (default: github)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Per-document timeout (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --style <name|path>   CSS style name or .css file")
	fmt.Fprintln(w, "      --template <name>     Page template name")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --title-suffix <s>    Text appended to the page title")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  readmedocs render spf13/pflag")
	fmt.Fprintln(w, "  readmedocs render -o site/ yuin/goldmark alecthomas/chroma")
	fmt.Fprintln(w, "  readmedocs render --engine goldmark --highlight ./README.md")
}

// printOutlineUsage prints usage for the outline command.
func printOutlineUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: readmedocs outline <target> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the heading tree of a README with the anchor of each heading.")
	fmt.Fprintln(w)
	printTargets(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Print the outline as JSON")
	fmt.Fprintln(w, "  -e, --engine <name>       Engine: rules (default), goldmark")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --token <s>           GitHub token (default: $GITHUB_TOKEN)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "outline":
		printOutlineUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: readmedocs version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: readmedocs help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
