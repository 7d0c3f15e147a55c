package readmedocs

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/alnah/go-readmedocs/internal/pipeline"
)

// Renderer turns README source into an article fragment and its outline.
// Create with NewRenderer. A Renderer is immutable and safe for concurrent use.
type Renderer struct {
	cfg          rendererConfig
	preprocessor pipeline.MarkdownPreprocessor
	engine       pipeline.Engine
	logger       *log.Logger
}

// NewRenderer creates a Renderer with the rules engine unless told otherwise.
// Returns ErrUnknownEngine if WithEngine named an engine that doesn't exist.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg:          rendererConfig{engine: DefaultEngine, timeout: defaultTimeout},
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		logger:       log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(r)
	}

	// Create engine if not injected (e.g., by tests)
	if r.engine == nil {
		engine, err := newEngine(r.cfg)
		if err != nil {
			return nil, err
		}
		r.engine = engine
	}

	return r, nil
}

func newEngine(cfg rendererConfig) (pipeline.Engine, error) {
	switch cfg.engine {
	case EngineRules:
		return pipeline.NewRulesEngine(), nil
	case EngineGoldmark:
		var opts []pipeline.GoldmarkOption
		if cfg.highlight {
			opts = append(opts, pipeline.WithHighlighting(cfg.highlightStyle))
		}
		return pipeline.NewGoldmarkEngine(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownEngine, cfg.engine, Engines)
	}
}

// Engine returns the name of the engine in use.
func (r *Renderer) Engine() string {
	return r.cfg.engine
}

// Render runs the full pipeline on one document.
// The context is used for cancellation; the renderer's timeout applies on top.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.timeout)
	defer cancel()

	start := time.Now()

	// Preprocess markdown
	body, meta := r.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert with anchors
	rendition, err := r.engine.Render(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent := pipeline.ResolveURLs(rendition.HTML, input.Base)

	res := &Result{
		HTML:       htmlContent,
		Outline:    pipeline.BuildTree(rendition.Headings),
		Headings:   rendition.Headings,
		Title:      documentTitle(meta, rendition.Headings),
		Meta:       meta,
		Duplicates: pipeline.DuplicateSlugs(rendition.Headings),
	}

	res.Unmatched, err = pipeline.MissingAnchors(htmlContent, rendition.Headings)
	if err != nil {
		// The audit only informs; the article itself is fine
		r.logger.Warn("anchor audit skipped", "err", err)
	}

	for _, h := range res.Unmatched {
		r.logger.Warn("heading has no anchor", "level", h.Level, "text", h.Text, "slug", h.Slug)
	}
	for _, slug := range res.Duplicates {
		r.logger.Warn("duplicate heading slug", "slug", slug)
	}

	r.logger.Debug("rendered",
		"engine", r.cfg.engine,
		"size", humanize.Bytes(uint64(len(input.Markdown))),
		"headings", len(res.Headings),
		"elapsed", time.Since(start),
	)

	return res, nil
}

// validateInput checks that required fields are present and valid.
func validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if err := input.Base.Validate(); err != nil {
		return fmt.Errorf("%w: %+v", err, input.Base)
	}
	return nil
}

// documentTitle prefers the front matter title over the first level-1 heading.
func documentTitle(meta FrontMatter, headings []Heading) string {
	if meta.Title != "" {
		return meta.Title
	}
	for _, h := range headings {
		if h.Level == 1 {
			return h.Text
		}
	}
	return ""
}
