// Package filters builds upstream catalog URLs for filtered listings and
// serves the static filter taxonomy.
package filters

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vrsandeep/komik-api/internal/models"
)

const (
	// CatalogPath is the default catalog listing.
	CatalogPath = "/daftar-komik/"
	// ProjectPath lists only the site's own translation projects.
	ProjectPath = "/project-list/"

	excludePrefix = "-"
)

// PagePath appends the pagination segment to base. Page 1 is the canonical
// listing and gets no segment.
func PagePath(base string, page int) string {
	if page > 1 {
		return fmt.Sprintf("%spage/%d/", base, page)
	}
	return base
}

// BuildPath converts a filter request into the upstream path and query,
// relative to the site root. Parameters keep a fixed order: status, type,
// orderby, then one genre[] per genre token.
func BuildPath(req models.FilterRequest) string {
	base := CatalogPath
	if req.Project {
		base = ProjectPath
	}
	path := PagePath(base, req.Page)

	var params []string
	for _, p := range []struct{ key, value string }{
		{"status", req.Status},
		{"type", req.Type},
		{"orderby", req.OrderBy},
	} {
		if p.value != "" {
			params = append(params, p.key+"="+url.QueryEscape(p.value))
		}
	}
	for _, genre := range req.Genres {
		if param := genreParam(genre); param != "" {
			params = append(params, param)
		}
	}

	if len(params) == 0 {
		return path
	}
	return path + "?" + strings.Join(params, "&")
}

// genreParam renders one genre token. An excluded genre keeps its prefix in
// front of the escaped name so the site sees genre[]=-action.
func genreParam(token string) string {
	token = strings.TrimSpace(token)
	prefix := ""
	if strings.HasPrefix(token, excludePrefix) {
		prefix = excludePrefix
		token = strings.TrimPrefix(token, excludePrefix)
	}
	if token == "" {
		return ""
	}
	return "genre[]=" + prefix + url.QueryEscape(token)
}

// ParseGenres splits the comma-separated genres query value, dropping blank
// entries.
func ParseGenres(raw string) []string {
	genres := []string{}
	for token := range strings.SplitSeq(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			genres = append(genres, token)
		}
	}
	return genres
}
