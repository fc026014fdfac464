package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/vrsandeep/komik-api/internal/models"
)

const listingItemSelector = "div.list-update_item"

// Summary maps one catalog listing node to a MangaSummary. It does not
// validate the result; see Summaries.
func Summary(item *goquery.Selection) models.MangaSummary {
	return models.MangaSummary{
		Title:         firstText(item, "h3.title", ".title"),
		Link:          strings.TrimSpace(item.Find("a").First().AttrOr("href", "")),
		Thumbnail:     ImageURL(item.Find("img").First()),
		LatestChapter: firstText(item, ".chapter", ".latest"),
	}
}

// Summaries extracts every listing item of a catalog page, dropping those
// without a title.
func Summaries(doc *goquery.Document) []models.MangaSummary {
	list := []models.MangaSummary{}
	doc.Find(listingItemSelector).Each(func(_ int, s *goquery.Selection) {
		manga := Summary(s)
		if manga.Title == "" {
			return
		}
		list = append(list, manga)
	})
	return list
}
