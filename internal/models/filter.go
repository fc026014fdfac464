package models

// FilterRequest describes a filtered catalog listing.
type FilterRequest struct {
	Page    int      `json:"-"`
	Status  string   `json:"status"`
	Type    string   `json:"type"`
	OrderBy string   `json:"orderby"`
	Genres  []string `json:"genres"` // a leading "-" excludes the genre
	Project bool     `json:"project"`
}
