package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// imageAttrs lists image source attributes by precedence. Lazy-loaded images
// keep a placeholder in src and the real URL in data-src.
var imageAttrs = []string{"data-src", "src"}

// ImageURL resolves the URL of the first node in img. A blank data-src falls
// through to src. It returns "" when neither attribute holds a value.
func ImageURL(img *goquery.Selection) string {
	for _, attr := range imageAttrs {
		if v := strings.TrimSpace(img.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	return ""
}
