package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Rendition is an engine's output: a fragment whose heading elements carry
// outline slugs, plus the outline those slugs came from.
type Rendition struct {
	HTML     string
	Headings []Heading
}

// Engine converts preprocessed Markdown into a Rendition.
type Engine interface {
	Render(ctx context.Context, markdown string) (*Rendition, error)
}

// Compile-time interface checks.
var (
	_ Engine = (*RulesEngine)(nil)
	_ Engine = (*GoldmarkEngine)(nil)
)

// RulesEngine chains outline extraction, the rule-based Converter and
// identifier reconciliation.
type RulesEngine struct{}

// NewRulesEngine creates a RulesEngine.
func NewRulesEngine() *RulesEngine {
	return &RulesEngine{}
}

// Render extracts the outline from the raw source, converts it, then
// stamps slugs onto the heading elements by text matching.
func (e *RulesEngine) Render(ctx context.Context, markdown string) (*Rendition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	headings := ExtractHeadings(markdown)

	fragment := Convert(markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Rendition{
		HTML:     AssignIDs(fragment, headings),
		Headings: headings,
	}, nil
}

// headingsKey stores the outline collected during a goldmark parse.
var headingsKey = parser.NewContextKey()

// goldmarkSettings holds GoldmarkEngine construction options.
type goldmarkSettings struct {
	highlight bool
	style     string
}

// GoldmarkOption configures a GoldmarkEngine.
type GoldmarkOption func(*goldmarkSettings)

// WithHighlighting enables chroma syntax highlighting of fenced code.
// Output uses CSS classes; style only matters for inline fallbacks.
func WithHighlighting(style string) GoldmarkOption {
	return func(s *goldmarkSettings) {
		s.highlight = true
		s.style = style
	}
}

// GoldmarkEngine renders through goldmark. Heading ids are assigned on the
// AST while parsing, so every heading gets its anchor with no text
// matching involved.
type GoldmarkEngine struct {
	md goldmark.Markdown
}

// NewGoldmarkEngine creates a GoldmarkEngine with GFM extensions.
func NewGoldmarkEngine(opts ...GoldmarkOption) *GoldmarkEngine {
	var s goldmarkSettings
	for _, opt := range opts {
		opt(&s)
	}

	extensions := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if s.highlight {
		hlOpts := []highlighting.Option{
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // CSS classes, page stylesheet controls colors
			),
		}
		if s.style != "" {
			hlOpts = append(hlOpts, highlighting.WithStyle(s.style))
		}
		extensions = append(extensions, highlighting.NewHighlighting(hlOpts...))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(util.Prioritized(headingAnchors{}, 100)),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			html.WithUnsafe(), // READMEs embed raw HTML (badges, <details>, centered logos)
		),
	)
	return &GoldmarkEngine{md: md}
}

// Render converts markdown and returns the outline collected on the way.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (e *GoldmarkEngine) Render(ctx context.Context, markdown string) (*Rendition, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		r   *Rendition
		err error
	}

	done := make(chan result, 1)

	go func() {
		pc := parser.NewContext()
		var buf bytes.Buffer
		if err := e.md.Convert([]byte(markdown), &buf, parser.WithContext(pc)); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		headings, _ := pc.Get(headingsKey).([]Heading)
		if headings == nil {
			headings = []Heading{}
		}
		done <- result{r: &Rendition{HTML: buf.String(), Headings: headings}}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.r, r.err
	}
}

// headingAnchors sets each heading's id from its source text using the
// same cleaning and slug rules as ExtractHeadings, and records the outline
// in the parser context.
type headingAnchors struct{}

func (headingAnchors) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	headings := []Heading{}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		label := CleanHeadingText(headingSource(h, source))
		slug := Slugify(label)
		h.SetAttributeString("id", []byte(slug))
		headings = append(headings, Heading{Level: h.Level, Text: label, Slug: slug})
		return ast.WalkSkipChildren, nil
	})

	pc.Set(headingsKey, headings)
}

// headingSource joins the raw source lines of a heading.
func headingSource(h *ast.Heading, source []byte) string {
	lines := h.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		parts = append(parts, string(seg.Value(source)))
	}
	return strings.Join(parts, " ")
}
