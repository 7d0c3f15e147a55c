package pipeline

import (
	"regexp"
	"strings"
)

// Heading is one ATX heading found in the raw Markdown source.
type Heading struct {
	Level int    `json:"level"` // 1-6
	Text  string `json:"text"`  // plain label, markup and links stripped
	Slug  string `json:"slug"`  // anchor identifier derived from Text
}

// Precompiled regex patterns for outline extraction.
var (
	// Any fenced span, with or without a language tag
	fencedSpan = regexp.MustCompile("```[\\s\\S]*?```")

	// Line-anchored ATX heading: 1=hashes, 2=text
	atxHeading = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.+)$`)

	// Inline link, keeps the label
	inlineLink = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)

	// Emphasis, code and strikethrough delimiters
	inlineDelimiters = regexp.MustCompile("[*_`~]")

	// Slug rules
	nonSlugChars   = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	hyphenRuns     = regexp.MustCompile(`-+`)
)

// ExtractHeadings returns the ATX headings of raw in source order.
// Fenced code is removed first so commented shell prompts are never taken
// for headings. Slugs are not deduplicated.
func ExtractHeadings(raw string) []Heading {
	cleaned := fencedSpan.ReplaceAllString(raw, "")

	matches := atxHeading.FindAllStringSubmatch(cleaned, -1)
	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		text := CleanHeadingText(m[2])
		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  text,
			Slug:  Slugify(text),
		})
	}
	return headings
}

// CleanHeadingText reduces heading source to its plain label: links keep
// their label, emphasis/code/strikethrough delimiters are dropped.
func CleanHeadingText(s string) string {
	s = inlineLink.ReplaceAllString(s, "$1")
	s = inlineDelimiters.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Slugify derives the anchor identifier for a heading label.
// Anyone predicting an anchor from heading text must apply the same rules:
// lower-case, drop anything but word characters, whitespace and hyphens,
// then collapse whitespace and hyphen runs into a single hyphen.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	return hyphenRuns.ReplaceAllString(s, "-")
}

// DuplicateSlugs returns every slug carried by more than one heading, in
// order of first repetition. Duplicates are kept as is; the first element
// with a given id wins in the browser.
func DuplicateSlugs(headings []Heading) []string {
	seen := make(map[string]int, len(headings))
	var dups []string
	for _, h := range headings {
		seen[h.Slug]++
		if seen[h.Slug] == 2 {
			dups = append(dups, h.Slug)
		}
	}
	return dups
}
