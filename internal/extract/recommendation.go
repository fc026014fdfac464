package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/vrsandeep/komik-api/internal/models"
)

const recommendationSlideSelector = ".swiper-wrapper .swiper-slide.splide-slide"

var ratingWidth = regexp.MustCompile(`width\s*:\s*(\d+)\s*%`)

// Recommendation maps one carousel slide to a RecommendationCard.
func Recommendation(slide *goquery.Selection) models.RecommendationCard {
	anchor := slide.Find("a").First()

	title := strings.TrimSpace(anchor.AttrOr("title", ""))
	if title == "" {
		title = strings.TrimSpace(slide.Find(".title").Text())
	}

	return models.RecommendationCard{
		Title:     title,
		Link:      strings.TrimSpace(anchor.AttrOr("href", "")),
		Thumbnail: ImageURL(slide.Find("img").First()),
		Type:      strings.TrimSpace(slide.Find(".type").Text()),
		Chapter:   strings.TrimSpace(slide.Find(".chapter").Text()),
		Rating:    strings.TrimSpace(slide.Find(".numscore").Text()),
		Score:     ratingScore(slide.Find(".rating-bintang span").First()),
	}
}

// ratingScore reads the percentage width of the star indicator. It returns
// nil when there is no usable width declaration.
func ratingScore(stars *goquery.Selection) *int {
	style, ok := stars.Attr("style")
	if !ok {
		return nil
	}
	m := ratingWidth.FindStringSubmatch(style)
	if m == nil {
		return nil
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	score = min(score, 100)
	return &score
}

// Recommendations extracts every carousel slide of the home page, dropping
// cards without a title or a link.
func Recommendations(doc *goquery.Document) []models.RecommendationCard {
	cards := []models.RecommendationCard{}
	doc.Find(recommendationSlideSelector).Each(func(_ int, s *goquery.Selection) {
		card := Recommendation(s)
		if card.Title == "" || card.Link == "" {
			return
		}
		cards = append(cards, card)
	})
	return cards
}
