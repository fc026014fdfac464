package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/vrsandeep/komik-api/internal/models"
)

// imageStrategy locates the page images of a chapter for one markup layout.
type imageStrategy struct {
	name     string
	selector string
}

// readerStrategies are tried in order; the first one that finds an image
// wins. The later entries cover layouts the site used before redesigns.
var readerStrategies = []imageStrategy{
	{name: "reading-area", selector: "div#chapter_body .main-reading-area img"},
	{name: "legacy-containers", selector: ".main-reading-area img, .reading-content img, #chapter_body img"},
}

// ChapterImages extracts the ordered, de-duplicated page images of a chapter.
func ChapterImages(doc *goquery.Document) []models.ChapterImage {
	for _, strategy := range readerStrategies {
		if images := strategy.collect(doc); len(images) > 0 {
			return images
		}
	}
	return []models.ChapterImage{}
}

// collect resolves every matched image in document order, skipping blank and
// repeated URLs. Index is the position in the returned slice.
func (st imageStrategy) collect(doc *goquery.Document) []models.ChapterImage {
	images := []models.ChapterImage{}
	seen := make(map[string]bool)
	doc.Find(st.selector).Each(func(_ int, img *goquery.Selection) {
		url := ImageURL(img)
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		images = append(images, models.ChapterImage{Index: len(images), URL: url})
	})
	return images
}
