// Package readmedocs renders README documents into anchored HTML plus a
// navigation outline.
//
// # Quick Start
//
// Create a renderer and render markdown:
//
//	r, err := readmedocs.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := r.Render(ctx, readmedocs.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Base:     readmedocs.Base{Namespace: "org", Collection: "repo"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// result.HTML is the article fragment. result.Outline is the heading
// forest for building a sidebar; every node's Slug is the id of its
// heading element in result.HTML.
//
// # Rendering Pipeline
//
// The rendering process follows these stages:
//
//  1. Markdown preprocessing (line normalization, front matter)
//  2. Outline extraction from the raw source
//  3. HTML conversion and heading id assignment (engine specific)
//  4. Relative link resolution against Base
//  5. Outline tree building and anchor audit
//
// # Engines
//
// EngineRules (default) converts with an ordered chain of regex rewrites
// and then matches extracted headings to rendered heading tags by
// normalized text. EngineGoldmark parses with goldmark and assigns ids on
// the syntax tree, which needs no matching and supports the full GFM
// dialect plus syntax highlighting:
//
//	r, err := readmedocs.NewRenderer(
//	    readmedocs.WithEngine(readmedocs.EngineGoldmark),
//	    readmedocs.WithHighlighting("github"),
//	)
//
// Both engines derive slugs with Slugify. Slugs are not deduplicated:
// two headings with the same text share an id, and Result.Duplicates
// lists such slugs.
//
// # Concurrency
//
// A Renderer is immutable after construction and safe for concurrent use.
// ResolveWorkers helps size a batch.
package readmedocs
