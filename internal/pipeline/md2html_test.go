package pipeline

// Notes:
// - Goldmark HTML is checked by substring; exact whitespace is goldmark's business
// - Both engines must produce the same outline for the same source

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRulesEngine
// ---------------------------------------------------------------------------

func TestRulesEngine_Render(t *testing.T) {
	t.Parallel()

	r, err := NewRulesEngine().Render(context.Background(), "# Title\nSome *text* with `code`.\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		`<h1 id="title">Title</h1>`,
		`<p>Some <em>text</em> with <code>code</code>.</p>`,
	} {
		if !strings.Contains(r.HTML, want) {
			t.Errorf("HTML missing %q\n%s", want, r.HTML)
		}
	}
	if want := []Heading{{Level: 1, Text: "Title", Slug: "title"}}; !reflect.DeepEqual(r.Headings, want) {
		t.Errorf("Headings = %v, want %v", r.Headings, want)
	}
}

func TestRulesEngine_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewRulesEngine().Render(ctx, "# x"); !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkEngine
// ---------------------------------------------------------------------------

func TestGoldmarkEngine_Render(t *testing.T) {
	t.Parallel()

	src := "# Title\n\n## The `run` **command**\n\n```sh\n# not a heading\n```\n\n### What's new?\n"
	r, err := NewGoldmarkEngine().Render(context.Background(), src)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		`<h1 id="title">Title</h1>`,
		`<h2 id="the-run-command">The <code>run</code> <strong>command</strong></h2>`,
		`<h3 id="whats-new">`,
	} {
		if !strings.Contains(r.HTML, want) {
			t.Errorf("HTML missing %q\n%s", want, r.HTML)
		}
	}

	want := []Heading{
		{Level: 1, Text: "Title", Slug: "title"},
		{Level: 2, Text: "The run command", Slug: "the-run-command"},
		{Level: 3, Text: "What's new?", Slug: "whats-new"},
	}
	if !reflect.DeepEqual(r.Headings, want) {
		t.Errorf("Headings = %v, want %v", r.Headings, want)
	}
}

func TestGoldmarkEngine_NoHeadings(t *testing.T) {
	t.Parallel()

	r, err := NewGoldmarkEngine().Render(context.Background(), "just text")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if r.Headings == nil || len(r.Headings) != 0 {
		t.Errorf("Headings = %#v, want empty non-nil", r.Headings)
	}
}

func TestGoldmarkEngine_Highlighting(t *testing.T) {
	t.Parallel()

	r, err := NewGoldmarkEngine(WithHighlighting("github")).Render(context.Background(), "```go\npackage main\n```\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(r.HTML, `class="chroma"`) {
		t.Errorf("expected chroma classes, got %s", r.HTML)
	}
}

func TestGoldmarkEngine_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewGoldmarkEngine().Render(ctx, "# x"); !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestEngines - Outline Agreement
// ---------------------------------------------------------------------------

func TestEngines_SameOutline(t *testing.T) {
	t.Parallel()

	src := "# Project\n\nIntro.\n\n## Install\n\n- step\n\n## Usage `cli`\n\n### Flags [ref](#flags)\n\n```bash\n# comment\n```\n"
	ctx := context.Background()

	rules, err := NewRulesEngine().Render(ctx, src)
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	gm, err := NewGoldmarkEngine().Render(ctx, src)
	if err != nil {
		t.Fatalf("goldmark: %v", err)
	}
	if !reflect.DeepEqual(rules.Headings, gm.Headings) {
		t.Errorf("outlines differ\nrules:    %v\ngoldmark: %v", rules.Headings, gm.Headings)
	}
}
