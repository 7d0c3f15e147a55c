package pipeline

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultOrigin serves raw repository files.
const DefaultOrigin = "https://raw.githubusercontent.com"

// DefaultRevision is used when a Base names no revision.
const DefaultRevision = "main"

// ErrInvalidBase indicates a Base whose parts cannot form a URL prefix.
var ErrInvalidBase = errors.New("invalid resolution base")

// Precompiled regex patterns for URL resolution.
var (
	// 1=leading whitespace, 2=attribute name, 3=value
	urlAttr = regexp.MustCompile(`(\s)(src|href)="([^"]*)"`)

	// Regions whose text must not be rewritten
	codeRegion = regexp.MustCompile(`(?is)<pre\b.*?</pre>|<code\b.*?</code>`)

	// RFC 3986 scheme: http:, mailto:, data:, ...
	uriScheme = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
)

// Base identifies the repository revision relative paths resolve against.
type Base struct {
	Namespace  string // account or organization
	Collection string // repository name
	Revision   string // branch, tag or commit; DefaultRevision when empty
	Origin     string // scheme and host; DefaultOrigin when empty
}

// IsZero reports whether b names no repository. A zero Base disables resolution.
func (b Base) IsZero() bool {
	return b.Namespace == "" && b.Collection == ""
}

// Validate checks that b is either zero or names a single repository.
func (b Base) Validate() error {
	if b.IsZero() {
		return nil
	}
	if b.Namespace == "" || b.Collection == "" {
		return ErrInvalidBase
	}
	for _, part := range []string{b.Namespace, b.Collection, b.Revision} {
		if strings.ContainsAny(part, "/ \t\n\"") {
			return ErrInvalidBase
		}
	}
	if b.Origin != "" && !uriScheme.MatchString(b.Origin) {
		return ErrInvalidBase
	}
	return nil
}

// URL returns the prefix every relative path is joined to, without a
// trailing slash.
func (b Base) URL() string {
	origin := strings.TrimRight(b.Origin, "/")
	if origin == "" {
		origin = DefaultOrigin
	}
	rev := b.Revision
	if rev == "" {
		rev = DefaultRevision
	}
	return origin + "/" + b.Namespace + "/" + b.Collection + "/" + rev
}

// ResolveURLs rewrites relative src and href attribute values in html into
// absolute URLs under base. Anchors, protocol-relative URLs and anything
// carrying a scheme are left alone, as is text inside code regions.
// A zero base returns html unchanged.
func ResolveURLs(html string, base Base) string {
	if base.IsZero() {
		return html
	}
	prefix := base.URL()

	var buf strings.Builder
	buf.Grow(len(html))
	last := 0
	for _, loc := range codeRegion.FindAllStringIndex(html, -1) {
		buf.WriteString(rewriteURLAttrs(html[last:loc[0]], prefix))
		buf.WriteString(html[loc[0]:loc[1]])
		last = loc[1]
	}
	buf.WriteString(rewriteURLAttrs(html[last:], prefix))
	return buf.String()
}

func rewriteURLAttrs(s, prefix string) string {
	return urlAttr.ReplaceAllStringFunc(s, func(m string) string {
		sub := urlAttr.FindStringSubmatch(m)
		if !isRelativeURL(sub[3]) {
			return m
		}
		return sub[1] + sub[2] + `="` + joinURL(prefix, sub[3]) + `"`
	})
}

// isRelativeURL returns true if the value should be rewritten.
func isRelativeURL(v string) bool {
	if v == "" {
		return false
	}

	// Anchors and protocol-relative URLs
	if strings.HasPrefix(v, "#") || strings.HasPrefix(v, "//") {
		return false
	}

	return !uriScheme.MatchString(v)
}

// joinURL strips "./" and leading slashes so repository-root paths and
// document-relative paths land in the same place.
func joinURL(prefix, path string) string {
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	return prefix + "/" + strings.TrimLeft(path, "/")
}
