package pipeline

import (
	"context"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

// Precompiled regex patterns for preprocessing.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Front matter must open on the very first line and be closed
	frontMatterBlock = regexp.MustCompile(`^(?:---\n[\s\S]*?\n---|\+\+\+\n[\s\S]*?\n\+\+\+)(?:\n|$)`)
)

// FrontMatter holds the metadata block some READMEs open with.
type FrontMatter struct {
	Title       string   `yaml:"title" toml:"title" json:"title"`
	Description string   `yaml:"description" toml:"description" json:"description"`
	Tags        []string `yaml:"tags" toml:"tags" json:"tags"`
}

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) (string, FrontMatter)
}

// CommonMarkPreprocessor prepares README source for either engine.
type CommonMarkPreprocessor struct{}

// Compile-time interface check.
var _ MarkdownPreprocessor = (*CommonMarkPreprocessor)(nil)

// PreprocessMarkdown normalizes line endings and strips a leading front
// matter block, returning its metadata. Malformed front matter is left in
// place and rendered as ordinary text.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) (string, FrontMatter) {
	var meta FrontMatter

	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content, meta
	}

	content = normalizeLineEndings(content)
	return stripFrontMatter(content, &meta), meta
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// stripFrontMatter removes a YAML (---) or TOML (+++) block at the top of
// content and decodes it into meta.
func stripFrontMatter(content string, meta *FrontMatter) string {
	if !frontMatterBlock.MatchString(content) {
		return content
	}

	var decoded FrontMatter
	rest, err := frontmatter.Parse(strings.NewReader(content), &decoded)
	if err != nil {
		return content
	}

	*meta = decoded
	return strings.TrimLeft(string(rest), "\n")
}
