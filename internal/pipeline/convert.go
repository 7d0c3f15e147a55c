package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Code block placeholders use Private Use Area characters so no later
// rewrite rule can match them. The index sits between the two markers.
const (
	codeBlockStart = "\uE002"
	codeBlockEnd   = "\uE003"
)

// Precompiled rewrite rules, in pipeline order.
var (
	// Fenced block: 1=language, 2=body. Anything after the language tag on
	// the opening line (titles, attributes) is ignored.
	fencedBlock = regexp.MustCompile("```([\\w+#.-]*)[^\\n]*\\n([\\s\\S]*?)```")

	inlineCodeSpan = regexp.MustCompile("`([^`]+)`")
	imageRef       = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkRef        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// Levels 6 down to 1 so "##" is never read as "#" plus text
	headingRules = [...]struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`(?m)^######[ \t]+(.+)$`), "<h6>${1}</h6>"},
		{regexp.MustCompile(`(?m)^#####[ \t]+(.+)$`), "<h5>${1}</h5>"},
		{regexp.MustCompile(`(?m)^####[ \t]+(.+)$`), "<h4>${1}</h4>"},
		{regexp.MustCompile(`(?m)^###[ \t]+(.+)$`), "<h3>${1}</h3>"},
		{regexp.MustCompile(`(?m)^##[ \t]+(.+)$`), "<h2>${1}</h2>"},
		{regexp.MustCompile(`(?m)^#[ \t]+(.+)$`), "<h1>${1}</h1>"},
	}

	boldItalic    = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	bold          = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italic        = regexp.MustCompile(`\*([^\s*](?:.*?[^\s*])?)\*`)
	strikethrough = regexp.MustCompile(`~~(.+?)~~`)

	thematicBreak = regexp.MustCompile(`(?m)^(?:-{3,}|\*{3,}|_{3,})$`)

	blockquoteLine  = regexp.MustCompile(`(?m)^>[ \t]+(.+)$`)
	blockquoteSeam  = regexp.MustCompile(`</blockquote>\n<blockquote>`)
	tableBlock      = regexp.MustCompile(`(?m)^(\|.+\|)\n(\|[-| :]+\|)\n((?:\|.+\|\n?)*)`)
	unorderedItem   = regexp.MustCompile(`(?m)^[\t ]*[-*+][ \t]+(.+)$`)
	unorderedGroup  = regexp.MustCompile(`(?m)^<li>.*</li>(?:\n<li>.*</li>)*`)
	orderedItem     = regexp.MustCompile(`(?m)^[\t ]*\d+\.[ \t]+(.+)$`)
	orderedGroup    = regexp.MustCompile(`(?m)^<oli>.*</oli>(?:\n<oli>.*</oli>)*`)
	markupPrefix    = regexp.MustCompile(`^<[a-zA-Z/!]`)
	emptyParagraph  = regexp.MustCompile(`<p>\s*</p>`)
	codeEscaper     = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	orderedItemTags = strings.NewReplacer("<oli>", "<li>", "</oli>", "</li>")
)

// Convert renders Markdown into an HTML fragment by applying an ordered
// chain of whole-text rewrites. Each rule runs on the output of the one
// before it; the order is load-bearing. Convert never fails: constructs
// that do not match a rule are left literal or end up in a paragraph.
func Convert(raw string) string {
	html, blocks := extractFences(raw)

	html = inlineCodeSpan.ReplaceAllString(html, "<code>${1}</code>")
	html = imageRef.ReplaceAllString(html, `<img src="${2}" alt="${1}" loading="lazy" />`)
	html = linkRef.ReplaceAllString(html, `<a href="${2}" target="_blank" rel="noopener">${1}</a>`)

	for _, rule := range headingRules {
		html = rule.re.ReplaceAllString(html, rule.repl)
	}

	html = boldItalic.ReplaceAllString(html, "<strong><em>${1}</em></strong>")
	html = bold.ReplaceAllString(html, "<strong>${1}</strong>")
	html = italic.ReplaceAllString(html, "<em>${1}</em>")
	html = strikethrough.ReplaceAllString(html, "<del>${1}</del>")

	html = thematicBreak.ReplaceAllString(html, "<hr />")

	html = blockquoteLine.ReplaceAllString(html, "<blockquote>${1}</blockquote>")
	// A bare newline at the seam would be wrapped as a paragraph below
	html = blockquoteSeam.ReplaceAllString(html, "<br />")

	html = tableBlock.ReplaceAllStringFunc(html, renderTable)

	html = unorderedItem.ReplaceAllString(html, "<li>${1}</li>")
	html = unorderedGroup.ReplaceAllString(html, "<ul>${0}</ul>")
	html = orderedItem.ReplaceAllString(html, "<oli>${1}</oli>")
	html = orderedGroup.ReplaceAllStringFunc(html, func(m string) string {
		return "<ol>" + orderedItemTags.Replace(m) + "</ol>"
	})

	html = wrapParagraphs(html)

	return restoreFences(html, blocks)
}

// extractFences swaps every fenced block for a placeholder and returns the
// rendered <pre> markup for each, in placeholder order.
func extractFences(raw string) (string, []string) {
	var blocks []string
	out := fencedBlock.ReplaceAllStringFunc(raw, func(m string) string {
		sub := fencedBlock.FindStringSubmatch(m)
		lang := sub[1]
		if lang == "" {
			lang = "text"
		}
		code := strings.TrimRightFunc(codeEscaper.Replace(sub[2]), unicode.IsSpace)
		blocks = append(blocks, `<pre><code class="language-`+lang+`">`+code+`</code></pre>`)
		return codeBlockPlaceholder(len(blocks) - 1)
	})
	return out, blocks
}

// restoreFences puts the rendered blocks back, unwrapping any placeholder
// that the paragraph pass wrapped in <p>.
func restoreFences(html string, blocks []string) string {
	for i, block := range blocks {
		ph := codeBlockPlaceholder(i)
		html = strings.Replace(html, "<p>"+ph+"</p>", block, 1)
		html = strings.Replace(html, ph, block, 1)
	}
	return html
}

func codeBlockPlaceholder(i int) string {
	return codeBlockStart + strconv.Itoa(i) + codeBlockEnd
}

// renderTable turns one matched pipe table into a <table> element.
func renderTable(m string) string {
	sub := tableBlock.FindStringSubmatch(m)
	if sub == nil {
		return m
	}

	var buf strings.Builder
	buf.WriteString("<table><thead><tr>")
	for _, cell := range splitTableRow(sub[1]) {
		buf.WriteString("<th>" + cell + "</th>")
	}
	buf.WriteString("</tr></thead><tbody>")

	for _, row := range strings.Split(strings.TrimSpace(sub[3]), "\n") {
		if strings.TrimSpace(row) == "" {
			continue
		}
		buf.WriteString("<tr>")
		for _, cell := range splitTableRow(row) {
			buf.WriteString("<td>" + cell + "</td>")
		}
		buf.WriteString("</tr>")
	}
	buf.WriteString("</tbody></table>")

	// Keep the line break the body rows consumed so the next line stays separate
	if strings.HasSuffix(m, "\n") {
		buf.WriteString("\n")
	}
	return buf.String()
}

// splitTableRow splits a pipe-delimited row into trimmed cells. Only the
// empty edge cells produced by leading and trailing pipes are dropped.
func splitTableRow(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")

	cells := strings.Split(row, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// wrapParagraphs wraps every non-blank line in <p> unless it already opens
// with a tag, closing tag or comment, or is a code placeholder. Lines led by
// inline markup such as <strong> or <a> are left bare too.
func wrapParagraphs(html string) string {
	lines := strings.Split(html, "\n")
	for i, line := range lines {
		t := strings.TrimSpace(line)
		switch {
		case t == "":
			lines[i] = ""
		case markupPrefix.MatchString(t), strings.HasPrefix(t, codeBlockStart):
			lines[i] = t
		default:
			lines[i] = "<p>" + t + "</p>"
		}
	}
	return emptyParagraph.ReplaceAllString(strings.Join(lines, "\n"), "")
}
