package models

// MangaSummary is one entry of a catalog listing (popular, latest, search, filter).
type MangaSummary struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	Thumbnail     string `json:"thumbnail"`
	LatestChapter string `json:"latestChapter"`
}

// RecommendationCard is one slide of the home page carousel.
type RecommendationCard struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail"`
	Type      string `json:"type"`
	Chapter   string `json:"chapter"`
	Rating    string `json:"rating"`
	// Score is nil when the page carries no star-rating width. A zero score
	// is a real rating.
	Score *int `json:"score"`
}

// MangaDetail is the full record of a single series page.
type MangaDetail struct {
	Title            string         `json:"title"`
	AlternativeTitle string         `json:"alternative_title"`
	Author           string         `json:"author"`
	Artist           string         `json:"artist"`
	Description      string         `json:"description"`
	Genres           []string       `json:"genre"`
	Status           string         `json:"status"`
	Type             string         `json:"type"`
	ThumbnailURL     string         `json:"thumbnail_url"`
	Chapters         []ChapterEntry `json:"chapters"`
}

// ChapterEntry is one row of a series chapter list.
type ChapterEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	// DateUpload is milliseconds since the Unix epoch, 0 when unknown.
	DateUpload int64 `json:"date_upload"`
}

// ChapterImage is one page image of a chapter.
type ChapterImage struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
}
