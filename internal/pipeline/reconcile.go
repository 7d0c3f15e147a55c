package pipeline

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Precompiled regex patterns for heading reconciliation.
var (
	// Bare heading tags by level; index 0 is unused. Tags that already carry
	// attributes are never candidates.
	headingTags = [7]*regexp.Regexp{
		nil,
		regexp.MustCompile(`<h1>([\s\S]*?)</h1>`),
		regexp.MustCompile(`<h2>([\s\S]*?)</h2>`),
		regexp.MustCompile(`<h3>([\s\S]*?)</h3>`),
		regexp.MustCompile(`<h4>([\s\S]*?)</h4>`),
		regexp.MustCompile(`<h5>([\s\S]*?)</h5>`),
		regexp.MustCompile(`<h6>([\s\S]*?)</h6>`),
	}

	htmlTag = regexp.MustCompile(`<[^>]+>`)

	// Punctuation and underscores vanish before comparison
	nonWordRuns = regexp.MustCompile(`[^\w\s]|_`)
)

// headingTag is one bare heading element located in the HTML fragment.
type headingTag struct {
	level      int
	start, end int // whole element
	innerStart int  // first byte after the opening tag
	text       string
	heading    Heading
	consumed   bool
}

// AssignIDs stamps each heading's slug onto the HTML heading element it
// was rendered as. See AssignIDsReport.
func AssignIDs(html string, headings []Heading) string {
	out, _ := AssignIDsReport(html, headings)
	return out
}

// AssignIDsReport matches headings to bare <hN> elements and adds an id
// attribute to each matched element. For every heading the search starts
// from the top of the fragment and takes the first unconsumed element of
// the same level whose normalized text contains, or is contained in, the
// heading's normalized text. Headings that end up without an id, because
// they match nothing or their element sits inside another matched one, are
// returned.
func AssignIDsReport(html string, headings []Heading) (string, []Heading) {
	var candidates [7][]*headingTag
	for level := 1; level <= 6; level++ {
		for _, loc := range headingTags[level].FindAllStringSubmatchIndex(html, -1) {
			candidates[level] = append(candidates[level], &headingTag{
				level:      level,
				start:      loc[0],
				end:        loc[1],
				innerStart: loc[2],
				text:       normalizeHeadingText(htmlTag.ReplaceAllString(html[loc[2]:loc[3]], "")),
			})
		}
	}

	var assigned []*headingTag
	var unmatched []Heading
	for _, h := range headings {
		if h.Level < 1 || h.Level > 6 {
			unmatched = append(unmatched, h)
			continue
		}
		tag := firstMatchingTag(candidates[h.Level], normalizeHeadingText(h.Text))
		if tag == nil {
			unmatched = append(unmatched, h)
			continue
		}
		tag.consumed = true
		tag.heading = h
		assigned = append(assigned, tag)
	}

	if len(assigned) == 0 {
		return html, unmatched
	}

	sort.Slice(assigned, func(i, j int) bool { return assigned[i].start < assigned[j].start })

	var buf strings.Builder
	buf.Grow(len(html) + len(assigned)*16)
	last := 0
	for _, tag := range assigned {
		// Nested heading elements cannot both be rewritten; the inner one
		// keeps no id and is reported
		if tag.start < last {
			unmatched = append(unmatched, tag.heading)
			continue
		}
		buf.WriteString(html[last:tag.start])
		buf.WriteString(`<h` + strconv.Itoa(tag.level) + ` id="` + tag.heading.Slug + `">`)
		buf.WriteString(html[tag.innerStart:tag.end])
		last = tag.end
	}
	buf.WriteString(html[last:])
	return buf.String(), unmatched
}

func firstMatchingTag(tags []*headingTag, text string) *headingTag {
	for _, tag := range tags {
		if tag.consumed {
			continue
		}
		if strings.Contains(tag.text, text) || strings.Contains(text, tag.text) {
			return tag
		}
	}
	return nil
}

// normalizeHeadingText keeps only word characters and single spaces so
// markup residue on either side does not defeat the comparison.
func normalizeHeadingText(s string) string {
	s = nonWordRuns.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
