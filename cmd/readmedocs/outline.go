package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	readmedocs "github.com/alnah/go-readmedocs"
)

// runOutline implements the outline command.
func runOutline(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseOutlineFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeEngineFlags(&flags.engine, cfg)
	mergeSourceFlags(&flags.source, cfg)
	if err := validateMerged(cfg); err != nil {
		return err
	}

	switch len(positional) {
	case 0:
		return ErrNoTarget
	case 1:
	default:
		return fmt.Errorf("%w: outline takes one target, got %d", ErrInvalidFlags, len(positional))
	}

	t, err := parseTarget(positional[0])
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, logLevel(flags.common.quiet, flags.common.verbose))
	renderer, err := newRenderer(cfg, logger)
	if err != nil {
		return err
	}

	doc, err := t.load(ctx, newFetcher(cfg, env, logger))
	if err != nil {
		return err
	}
	res, err := renderer.Render(ctx, readmedocs.Input{Markdown: doc.Markdown, Base: doc.Base})
	if err != nil {
		return err
	}

	if flags.json {
		return writeOutlineJSON(env.Stdout, res.Outline)
	}
	writeOutlineText(env.Stdout, res.Outline)
	return nil
}

// writeOutlineJSON prints the forest as indented JSON. An empty outline
// prints [] rather than null.
func writeOutlineJSON(w io.Writer, forest []*readmedocs.OutlineNode) error {
	if forest == nil {
		forest = []*readmedocs.OutlineNode{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(forest); err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	return nil
}

// writeOutlineText prints one line per heading, indented by depth, with
// the anchor after the text.
func writeOutlineText(w io.Writer, forest []*readmedocs.OutlineNode) {
	readmedocs.WalkOutline(forest, func(n *readmedocs.OutlineNode, depth int) bool {
		fmt.Fprintf(w, "%s%s  #%s\n", strings.Repeat("  ", depth), n.Text, n.Slug)
		return true
	})
}
