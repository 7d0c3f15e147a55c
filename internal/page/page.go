package page

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/alnah/go-readmedocs/internal/assets"
	"github.com/alnah/go-readmedocs/internal/fileutil"
	"github.com/alnah/go-readmedocs/internal/pipeline"
)

// DefaultTitleSuffix follows the document name in the page title.
const DefaultTitleSuffix = "readme.docs"

// Sentinel errors for page building.
var (
	ErrStyleLoad    = errors.New("loading style failed")
	ErrTemplateLoad = errors.New("loading page template failed")
	ErrPageRender   = errors.New("page rendering failed")
)

// Data is everything a page shows.
type Data struct {
	Namespace   string // repository owner, empty for local files
	Collection  string // repository name, empty for local files
	Title       string // document title (front matter or first h1)
	Description string
	Article     string // rendered fragment, trusted
	Outline     []*pipeline.OutlineNode
}

// view is what the template sees.
type view struct {
	Lang        string
	Title       string
	Heading     string
	Description string
	Namespace   string
	Collection  string
	RepoURL     string
	Style       template.CSS
	Article     template.HTML
	Outline     []*pipeline.OutlineNode
}

// Builder renders pages. It is immutable after construction and safe for
// concurrent use.
type Builder struct {
	tmpl        *template.Template
	css         string
	titleSuffix string
	lang        string
}

type builderConfig struct {
	style       string
	template    string
	titleSuffix string
	lang        string
}

// Option configures a Builder.
type Option func(*builderConfig)

// WithStyle selects a style by name ("default", "minimal", or one from the
// custom asset directory) or by path to a .css file. An empty value
// disables styling.
func WithStyle(style string) Option {
	return func(c *builderConfig) { c.style = style }
}

// WithTemplate selects the page template by name.
func WithTemplate(name string) Option {
	return func(c *builderConfig) { c.template = name }
}

// WithTitleSuffix replaces DefaultTitleSuffix. An empty suffix drops it.
func WithTitleSuffix(suffix string) Option {
	return func(c *builderConfig) { c.titleSuffix = suffix }
}

// WithLang sets the html lang attribute.
func WithLang(lang string) Option {
	return func(c *builderConfig) { c.lang = lang }
}

// NewBuilder loads the template and stylesheet through loader.
func NewBuilder(loader assets.AssetLoader, opts ...Option) (*Builder, error) {
	cfg := builderConfig{
		style:       assets.DefaultStyleName,
		template:    assets.DefaultTemplateName,
		titleSuffix: DefaultTitleSuffix,
		lang:        "en",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	src, err := loader.LoadTemplate(cfg.template)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateLoad, err)
	}
	tmpl, err := template.New(cfg.template).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", ErrTemplateLoad, cfg.template, err)
	}

	css, err := resolveStyle(loader, cfg.style)
	if err != nil {
		return nil, err
	}

	return &Builder{
		tmpl:        tmpl,
		css:         sanitizeCSS(css),
		titleSuffix: cfg.titleSuffix,
		lang:        cfg.lang,
	}, nil
}

// resolveStyle reads a .css path from disk or a named style from loader.
func resolveStyle(loader assets.AssetLoader, style string) (string, error) {
	if style == "" {
		return "", nil
	}

	if fileutil.IsFilePath(style) || fileutil.IsCSS(style) {
		content, err := os.ReadFile(style) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStyleLoad, err)
		}
		return string(content), nil
	}

	css, err := loader.LoadStyle(style)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStyleLoad, err)
	}
	return css, nil
}

// Build renders the full HTML document for d.
func (b *Builder) Build(ctx context.Context, d Data) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	outline := d.Outline
	if outline == nil {
		outline = []*pipeline.OutlineNode{}
	}

	v := view{
		Lang:        b.lang,
		Title:       b.Title(d),
		Heading:     heading(d),
		Description: d.Description,
		Namespace:   d.Namespace,
		Collection:  d.Collection,
		Style:       template.CSS(b.css),      // #nosec G203 -- stylesheet is sanitized, from embedded assets or the user
		Article:     template.HTML(d.Article), // #nosec G203 -- fragment produced by the renderer
		Outline:     outline,
	}
	if d.Namespace != "" && d.Collection != "" {
		v.RepoURL = "https://github.com/" + d.Namespace + "/" + d.Collection
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// Title returns the <title> text: "org/repo - readme.docs" for
// repositories, the document title or "README" otherwise.
func (b *Builder) Title(d Data) string {
	name := heading(d)
	if b.titleSuffix == "" {
		return name
	}
	return name + " - " + b.titleSuffix
}

// heading names the document in the sidebar and title.
func heading(d Data) string {
	switch {
	case d.Namespace != "" && d.Collection != "":
		return d.Namespace + "/" + d.Collection
	case strings.TrimSpace(d.Title) != "":
		return strings.TrimSpace(d.Title)
	default:
		return "README"
	}
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
