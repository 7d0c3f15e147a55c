package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// engineFlags holds conversion engine flags.
type engineFlags struct {
	engine         string
	highlight      bool
	highlightStyle string
	timeout        string
}

// sourceFlags holds retrieval flags.
type sourceFlags struct {
	token string
}

// pageFlags holds HTML page flags.
type pageFlags struct {
	style       string
	template    string
	assetPath   string
	titleSuffix string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common      commonFlags
	output      string
	workers     int
	printConfig bool
	engine      engineFlags
	source      sourceFlags
	page        pageFlags
}

// outlineFlags holds all flags for the outline command.
type outlineFlags struct {
	common commonFlags
	json   bool
	engine engineFlags
	source sourceFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addEngineFlags adds engine flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "render engine: rules, goldmark")
	fs.BoolVar(&f.highlight, "highlight", false, "highlight fenced code (goldmark only)")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style name (default: github)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-document timeout (e.g., 30s, 2m)")
}

// addSourceFlags adds retrieval flags to a FlagSet.
func addSourceFlags(fs *flag.FlagSet, f *sourceFlags) {
	fs.StringVar(&f.token, "token", "", "GitHub token (default: $GITHUB_TOKEN)")
}

// addPageFlags adds HTML page flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.template, "template", "", "page template name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.titleSuffix, "title-suffix", "", "text appended to the page title")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory, or - for stdout")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config and exit")

	addCommonFlags(fs, &f.common)
	addEngineFlags(fs, &f.engine)
	addSourceFlags(fs, &f.source)
	addPageFlags(fs, &f.page)

	fs.Usage = func() { printRenderUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseOutlineFlags parses outline command flags and returns positional args.
func parseOutlineFlags(args []string) (*outlineFlags, []string, error) {
	fs := flag.NewFlagSet("outline", flag.ContinueOnError)
	f := &outlineFlags{}

	fs.BoolVar(&f.json, "json", false, "print the outline as JSON")

	addCommonFlags(fs, &f.common)
	addEngineFlags(fs, &f.engine)
	addSourceFlags(fs, &f.source)

	fs.Usage = func() { printOutlineUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
