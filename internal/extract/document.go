// Package extract turns KomikCast HTML documents into the records served by
// the API. Every function here is a pure function of its input selection:
// nothing is fetched and no state is kept between calls. Unexpected markup
// yields empty fields, never an error.
package extract

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parse builds a queryable document from a raw HTML body.
func Parse(body []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

// firstText returns the trimmed text of the first selector that matches
// something with non-blank text.
func firstText(s *goquery.Selection, selectors ...string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(s.Find(selector).Text()); text != "" {
			return text
		}
	}
	return ""
}
