package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/vrsandeep/komik-api/internal/models"
	"github.com/vrsandeep/komik-api/internal/util"
)

const (
	infoSelector        = "div.komik_info"
	infoRowSelector     = ".komik_info-content-info"
	chapterItemSelector = "div.komik_info-chapters li"
)

var (
	languageNote = regexp.MustCompile(`(?i)\s*bahasa\s+indonesia`)
	wordStart    = regexp.MustCompile(`\b\w`)
)

// Detail maps a series page to a MangaDetail. Series fields are read from the
// info block only; when the page has none they stay empty. The chapter list
// is read from the whole page.
func Detail(doc *goquery.Document) models.MangaDetail {
	detail := models.MangaDetail{
		Genres:   []string{},
		Chapters: Chapters(doc),
	}

	info := doc.Find(infoSelector).First()
	if info.Length() == 0 {
		return detail
	}

	detail.Title = cleanTitle(info.Find("h1.komik_info-content-body-title").Text())
	detail.AlternativeTitle = strings.TrimSpace(info.Find(".komik_info-content-native").Text())
	detail.Author = infoValue(info, "Author")
	detail.Artist = infoValue(info, "Artist")
	detail.Type = infoValue(info, "Type")
	detail.Status = stripLabel(infoRow(info, "Status").Text(), "Status")
	detail.ThumbnailURL = ImageURL(info.Find(".komik_info-content-thumbnail img").First())

	var paragraphs []string
	info.Find(".komik_info-description-sinopsis").Each(func(_ int, p *goquery.Selection) {
		paragraphs = append(paragraphs, strings.TrimSpace(p.Text()))
	})
	detail.Description = strings.TrimSpace(strings.Join(paragraphs, "\n"))

	var genres []string
	info.Find(".komik_info-content-genre a").Each(func(_ int, a *goquery.Selection) {
		if g := strings.TrimSpace(a.Text()); g != "" {
			genres = append(genres, g)
		}
	})
	if detail.Type != "" {
		genres = append(genres, detail.Type)
	}
	detail.Genres = TitleCaseAll(genres)

	return detail
}

// Chapters extracts the chapter list of a series page in site order, which
// is usually newest first. Rows without a name or a link are dropped.
func Chapters(doc *goquery.Document) []models.ChapterEntry {
	chapters := []models.ChapterEntry{}
	doc.Find(chapterItemSelector).Each(func(_ int, li *goquery.Selection) {
		name := strings.TrimSpace(li.Find(".chapter-link-item").Text())
		link := strings.TrimSpace(li.Find("a").First().AttrOr("href", ""))
		if name == "" || link == "" {
			return
		}
		chapters = append(chapters, models.ChapterEntry{
			Name:       name,
			URL:        link,
			DateUpload: util.ParseChapterDate(li.Find(".chapter-link-time").Text()),
		})
	})
	return chapters
}

// TitleCaseAll lower-cases every genre and upper-cases the first letter of
// each word. Applying it twice gives the same result.
func TitleCaseAll(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		out = append(out, wordStart.ReplaceAllStringFunc(strings.ToLower(g), strings.ToUpper))
	}
	return out
}

func cleanTitle(raw string) string {
	return strings.TrimSpace(languageNote.ReplaceAllString(raw, ""))
}

// infoRow returns the first info row whose text mentions label.
func infoRow(info *goquery.Selection, label string) *goquery.Selection {
	return info.Find(infoRowSelector).FilterFunction(func(_ int, row *goquery.Selection) bool {
		return strings.Contains(row.Text(), label)
	}).First()
}

// infoValue reads the value span of the row labelled label. Rows that carry
// the value as bare text are read with the label stripped instead.
func infoValue(info *goquery.Selection, label string) string {
	row := infoRow(info, label)
	if row.Length() == 0 {
		return ""
	}
	if v := strings.TrimSpace(row.Find("span").Text()); v != "" {
		return v
	}
	return stripLabel(row.Text(), label)
}

func stripLabel(text, label string) string {
	text = strings.Replace(text, label, "", 1)
	return strings.TrimSpace(strings.Replace(text, ":", "", 1))
}
