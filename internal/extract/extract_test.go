package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrsandeep/komik-api/internal/testutil/pages"
)

func mustParse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := Parse([]byte(html))
	require.NoError(t, err)
	return doc
}

func TestImageURL(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		expected string
	}{
		{"lazy attribute wins", `<img data-src="real.jpg" src="placeholder.gif">`, "real.jpg"},
		{"plain source", `<img src="plain.jpg">`, "plain.jpg"},
		{"empty lazy attribute falls through", `<img data-src="" src="plain.jpg">`, "plain.jpg"},
		{"blank lazy attribute falls through", `<img data-src="   " src="plain.jpg">`, "plain.jpg"},
		{"lazy attribute only", `<img data-src="real.jpg">`, "real.jpg"},
		{"no attributes", `<img alt="nothing">`, ""},
		{"both empty", `<img data-src="" src="">`, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, tc.html)
			assert.Equal(t, tc.expected, ImageURL(doc.Find("img")))
		})
	}

	t.Run("empty selection", func(t *testing.T) {
		doc := mustParse(t, `<p>no image</p>`)
		assert.Equal(t, "", ImageURL(doc.Find("img")))
	})
}

func TestSummaries(t *testing.T) {
	doc := mustParse(t, pages.Listing)
	list := Summaries(doc)

	require.Len(t, list, 2, "the untitled item must be dropped")

	assert.Equal(t, "One Piece", list[0].Title)
	assert.Equal(t, "https://komikcast.li/manga/one-piece/", list[0].Link)
	assert.Equal(t, "https://cdn.komikcast.li/one-piece.jpg", list[0].Thumbnail)
	assert.Equal(t, "Ch.1100", list[0].LatestChapter)

	assert.Equal(t, "Solo Leveling", list[1].Title, "falls back to .title")
	assert.Equal(t, "https://cdn.komikcast.li/solo-leveling.jpg", list[1].Thumbnail)
	assert.Equal(t, "Ch.200", list[1].LatestChapter, "falls back to .latest")
}

func TestSummary_KeepsInvalidRecords(t *testing.T) {
	doc := mustParse(t, `<div class="list-update_item"><span>nothing useful</span></div>`)
	manga := Summary(doc.Find("div.list-update_item"))
	assert.Equal(t, "", manga.Title)
	assert.Equal(t, "", manga.Link)
	assert.Equal(t, "", manga.Thumbnail)
	assert.Equal(t, "", manga.LatestChapter)
}

func TestRecommendations(t *testing.T) {
	doc := mustParse(t, pages.Home)
	cards := Recommendations(doc)

	require.Len(t, cards, 3, "the slide without a link must be dropped")

	blueLock := cards[0]
	assert.Equal(t, "Blue Lock", blueLock.Title, "anchor title attribute wins")
	assert.Equal(t, "https://komikcast.li/manga/blue-lock/", blueLock.Link)
	assert.Equal(t, "https://cdn.komikcast.li/blue-lock.jpg", blueLock.Thumbnail)
	assert.Equal(t, "Manga", blueLock.Type)
	assert.Equal(t, "Chapter 280", blueLock.Chapter)
	assert.Equal(t, "8.00", blueLock.Rating)
	require.NotNil(t, blueLock.Score)
	assert.Equal(t, 80, *blueLock.Score)

	tbate := cards[1]
	assert.Equal(t, "The Beginning After The End", tbate.Title)
	assert.Equal(t, "9.10", tbate.Rating)
	assert.Nil(t, tbate.Score, "no indicator means no score")

	unrated := cards[2]
	require.NotNil(t, unrated.Score, "a zero width is a real score")
	assert.Equal(t, 0, *unrated.Score)
	assert.Equal(t, "", unrated.Thumbnail)
}

func TestRatingScore(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		expected *int
	}{
		{"no style", `<span></span>`, nil},
		{"other declaration", `<span style="color:red"></span>`, nil},
		{"non numeric width", `<span style="width:auto"></span>`, nil},
		{"pixel width", `<span style="width:80px"></span>`, nil},
		{"percentage", `<span style="width:65%"></span>`, intPtr(65)},
		{"among declarations", `<span style="display:block; width:42%;"></span>`, intPtr(42)},
		{"clamped", `<span style="width:150%"></span>`, intPtr(100)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, tc.html)
			assert.Equal(t, tc.expected, ratingScore(doc.Find("span")))
		})
	}
}

func intPtr(v int) *int { return &v }

func TestDetail(t *testing.T) {
	doc := mustParse(t, pages.Detail)
	detail := Detail(doc)

	assert.Equal(t, "One Piece", detail.Title)
	assert.Equal(t, "ワンピース", detail.AlternativeTitle)
	assert.Equal(t, "Eiichiro Oda", detail.Author)
	assert.Equal(t, "Eiichiro Oda", detail.Artist)
	assert.Equal(t, "Ongoing", detail.Status)
	assert.Equal(t, "manga", detail.Type)
	assert.Equal(t, "https://cdn.komikcast.li/one-piece-cover.jpg", detail.ThumbnailURL)
	assert.Equal(t, "Gol D. Roger was known as the Pirate King.\nHis last words sent the world to sea.", detail.Description)
	assert.Equal(t, []string{"Action", "Adventure", "Sci-Fi", "Manga"}, detail.Genres)

	require.Len(t, detail.Chapters, 2, "the row without a link must be dropped")
	assert.Equal(t, "Chapter 1100", detail.Chapters[0].Name, "site order is kept")
	assert.Equal(t, "https://komikcast.li/chapter/one-piece-chapter-1100/", detail.Chapters[0].URL)
	assert.Greater(t, detail.Chapters[0].DateUpload, int64(0))
	assert.Equal(t, "Chapter 1099", detail.Chapters[1].Name)
	assert.Equal(t, int64(1696636800000), detail.Chapters[1].DateUpload)
}

func TestDetail_WithoutInfoBlock(t *testing.T) {
	doc := mustParse(t, pages.Empty)
	detail := Detail(doc)

	assert.Equal(t, "", detail.Title)
	assert.Equal(t, "", detail.Author)
	assert.Equal(t, "", detail.Status)
	assert.NotNil(t, detail.Genres)
	assert.Empty(t, detail.Genres)
	assert.NotNil(t, detail.Chapters)
	assert.Empty(t, detail.Chapters)
}

func TestDetail_MissingRows(t *testing.T) {
	doc := mustParse(t, `<div class="komik_info"><h1 class="komik_info-content-body-title">Naruto</h1></div>`)
	detail := Detail(doc)

	assert.Equal(t, "Naruto", detail.Title)
	assert.Equal(t, "", detail.Author)
	assert.Equal(t, "", detail.Artist)
	assert.Equal(t, "", detail.Type)
	assert.Equal(t, "", detail.Status)
	assert.Empty(t, detail.Genres, "no type label means nothing is appended")
}

func TestCleanTitle(t *testing.T) {
	testCases := []struct {
		raw, expected string
	}{
		{"One Piece Bahasa Indonesia", "One Piece"},
		{"  Naruto BAHASA INDONESIA  ", "Naruto"},
		{"Komik Bahasa Indonesia Terbaru", "Komik Terbaru"},
		{"Re:Zero  Kara Bahasa Indonesia", "Re:Zero  Kara"},
		{"Bahasa Indonesia Berserk", "Berserk"},
		{"Berserk", "Berserk"},
		{"", ""},
	}
	for _, tc := range testCases {
		if got := cleanTitle(tc.raw); got != tc.expected {
			t.Errorf("cleanTitle(%q) = %q; want %q", tc.raw, got, tc.expected)
		}
	}
}

func TestStripLabel(t *testing.T) {
	assert.Equal(t, "Ongoing", stripLabel("Status : Ongoing", "Status"))
	assert.Equal(t, "Completed", stripLabel("Status:Completed", "Status"))
	assert.Equal(t, "", stripLabel("Status:", "Status"))
	assert.Equal(t, "On: going", stripLabel("Status: On: going", "Status"))
}

func TestTitleCaseAll(t *testing.T) {
	in := []string{"action", "ADVENTURE", "slice of life", "sci-fi", "4-koma", "girls' love", "Action"}
	expected := []string{"Action", "Adventure", "Slice Of Life", "Sci-Fi", "4-Koma", "Girls' Love", "Action"}

	got := TitleCaseAll(in)
	assert.Equal(t, expected, got, "duplicates are kept")
	assert.Equal(t, got, TitleCaseAll(got), "normalizing twice changes nothing")
	assert.Empty(t, TitleCaseAll(nil))
}

func TestChapterImages(t *testing.T) {
	t.Run("primary layout with duplicates", func(t *testing.T) {
		doc := mustParse(t, pages.ChapterReader)
		images := ChapterImages(doc)

		require.Len(t, images, 3)
		for i, img := range images {
			assert.Equal(t, i, img.Index)
		}
		assert.Equal(t, "https://cdn.komikcast.li/ch1/01.jpg", images[0].URL)
		assert.Equal(t, "https://cdn.komikcast.li/ch1/02.jpg", images[1].URL)
		assert.Equal(t, "https://cdn.komikcast.li/ch1/03.jpg", images[2].URL)
	})

	t.Run("same url three times", func(t *testing.T) {
		html := `<div id="chapter_body"><div class="main-reading-area">` +
			strings.Repeat(`<img src="https://cdn.komikcast.li/same.jpg">`, 3) +
			`</div></div>`
		images := ChapterImages(mustParse(t, html))

		require.Len(t, images, 1)
		assert.Equal(t, 0, images[0].Index)
	})

	t.Run("fallback containers", func(t *testing.T) {
		images := ChapterImages(mustParse(t, pages.ChapterLegacy))

		require.Len(t, images, 2)
		assert.Equal(t, "https://cdn.komikcast.li/old/01.jpg", images[0].URL)
		assert.Equal(t, 1, images[1].Index)
	})

	t.Run("fallback only runs when primary is empty", func(t *testing.T) {
		html := `<div id="chapter_body"><div class="main-reading-area"><img src="a.jpg"></div></div>
			<div class="reading-content"><img src="b.jpg"></div>`
		images := ChapterImages(mustParse(t, html))

		require.Len(t, images, 1)
		assert.Equal(t, "a.jpg", images[0].URL)
	})

	t.Run("primary matches only blank images", func(t *testing.T) {
		html := `<div id="chapter_body"><div class="main-reading-area"><img src=""></div>
			<img src="outside.jpg"></div>`
		images := ChapterImages(mustParse(t, html))

		require.Len(t, images, 1)
		assert.Equal(t, "outside.jpg", images[0].URL)
	})

	t.Run("nothing found", func(t *testing.T) {
		images := ChapterImages(mustParse(t, pages.Empty))
		assert.NotNil(t, images)
		assert.Empty(t, images)
	})
}

func TestReaderStrategies_AreIndependent(t *testing.T) {
	doc := mustParse(t, pages.ChapterLegacy)
	for _, strategy := range readerStrategies {
		t.Run(strategy.name, func(t *testing.T) {
			images := strategy.collect(doc)
			assert.NotNil(t, images)
		})
	}
	assert.Empty(t, readerStrategies[0].collect(doc))
	assert.Len(t, readerStrategies[1].collect(doc), 2)
}
