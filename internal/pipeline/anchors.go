package pipeline

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MissingAnchors reports the headings whose slug is not the id of any
// element in fragment, in input order. Navigation links to those
// headings would not scroll anywhere.
func MissingAnchors(fragment string, headings []Heading) ([]Heading, error) {
	if len(headings) == 0 {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}

	ids := make(map[string]struct{})
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok {
			ids[id] = struct{}{}
		}
	})

	var missing []Heading
	for _, h := range headings {
		if _, ok := ids[h.Slug]; !ok {
			missing = append(missing, h)
		}
	}
	return missing, nil
}
