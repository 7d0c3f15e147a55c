package readmedocs

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-readmedocs/internal/pipeline"
)

// Engine names.
const (
	// EngineRules is the regex rule chain followed by heading reconciliation.
	EngineRules = "rules"

	// EngineGoldmark parses with goldmark and assigns heading ids on the AST.
	EngineGoldmark = "goldmark"
)

// DefaultEngine is used when no engine is specified.
const DefaultEngine = EngineRules

// Engines lists every accepted engine name.
var Engines = []string{EngineRules, EngineGoldmark}

// IsValidEngine reports whether name is a known engine.
func IsValidEngine(name string) bool {
	for _, e := range Engines {
		if e == name {
			return true
		}
	}
	return false
}

// Heading is one ATX heading of the source, in source order.
type Heading = pipeline.Heading

// OutlineNode is one entry of the navigation tree.
type OutlineNode = pipeline.OutlineNode

// Base identifies the repository revision relative links resolve against.
type Base = pipeline.Base

// FrontMatter is the metadata block a README may open with.
type FrontMatter = pipeline.FrontMatter

// Slugify derives the anchor identifier for a heading label.
// Links elsewhere that target a heading must use the same function.
func Slugify(text string) string {
	return pipeline.Slugify(text)
}

// BuildOutline folds headings in source order into a navigation forest.
// A heading nests under the nearest preceding heading of lower level.
func BuildOutline(headings []Heading) []*OutlineNode {
	return pipeline.BuildTree(headings)
}

// WalkOutline visits every node of forest depth-first in document order.
// depth is 0 for roots. Returning false from fn skips the node's children.
func WalkOutline(forest []*OutlineNode, fn func(node *OutlineNode, depth int) bool) {
	pipeline.Walk(forest, fn)
}

// Input is one document to render.
type Input struct {
	Markdown string // README source
	Base     Base   // zero value leaves relative links as they are
}

// Result holds everything produced for one document.
type Result struct {
	HTML     string         // article fragment, heading ids set, links resolved
	Outline  []*OutlineNode // navigation forest, never nil
	Headings []Heading      // flat outline in source order
	Title    string         // front matter title, else the first level-1 heading
	Meta     FrontMatter

	// Headings whose anchor is missing from HTML. Navigation links to
	// them lead nowhere.
	Unmatched []Heading

	// Slugs carried by more than one heading.
	Duplicates []string
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	engine         string
	highlight      bool
	highlightStyle string
	timeout        time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithEngine selects the rendering engine by name.
// NewRenderer returns ErrUnknownEngine for names not in Engines.
func WithEngine(name string) Option {
	return func(r *Renderer) {
		r.cfg.engine = name
	}
}

// WithHighlighting enables chroma syntax highlighting of fenced code.
// Only the goldmark engine highlights; the rules engine ignores it.
func WithHighlighting(style string) Option {
	return func(r *Renderer) {
		r.cfg.highlight = true
		r.cfg.highlightStyle = style
	}
}

// WithTimeout bounds a single Render call.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("readmedocs: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithLogger sets the logger used for stage timings and anchor warnings.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}
