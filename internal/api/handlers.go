package api

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vrsandeep/komik-api/internal/filters"
	"github.com/vrsandeep/komik-api/internal/models"
	"github.com/vrsandeep/komik-api/internal/source/komikcast"
)

// getPage reads the page query parameter. Anything that is not a positive
// integer means the first page.
func getPage(r *http.Request) int {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	return page
}

func (s *Server) handlePopular(w http.ResponseWriter, r *http.Request) {
	page := getPage(r)
	list, err := s.app.Source.Popular(r.Context(), page)
	if err != nil {
		respondUpstreamError(w, "Failed to fetch popular manga", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, Envelope{Success: true, Page: page, Data: list, Total: total(len(list))})
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	page := getPage(r)
	list, err := s.app.Source.Latest(r.Context(), page)
	if err != nil {
		respondUpstreamError(w, "Failed to fetch latest updates", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, Envelope{Success: true, Page: page, Data: list, Total: total(len(list))})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		RespondWithError(w, http.StatusBadRequest, `Query parameter "q" is required for search.`)
		return
	}
	page := getPage(r)

	list, err := s.app.Source.Search(r.Context(), query, page)
	if err != nil {
		respondUpstreamError(w, "Failed to perform search", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, Envelope{Success: true, Query: query, Page: page, Data: list, Total: total(len(list))})
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := models.FilterRequest{
		Page:    getPage(r),
		Status:  q.Get("status"),
		Type:    q.Get("type"),
		OrderBy: q.Get("orderby"),
		Genres:  filters.ParseGenres(q.Get("genres")),
		Project: q.Get("project") == "true",
	}
	for _, genre := range req.Genres {
		if !s.taxonomy.HasGenre(genre) {
			log.Printf("Filter request uses unknown genre %q, passing it through", genre)
		}
	}

	list, err := s.app.Source.Filter(r.Context(), req)
	if err != nil {
		respondUpstreamError(w, "Failed to fetch filtered manga", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Page:    req.Page,
		Filters: req,
		Data:    list,
		Total:   total(len(list)),
	})
}

func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	cards, err := s.app.Source.Recommendations(r.Context())
	if err != nil {
		respondUpstreamError(w, "Failed to fetch recommendations", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, Envelope{Success: true, Data: cards, Total: total(len(cards))})
}

func (s *Server) handleMangaDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	detail, err := s.app.Source.Detail(r.Context(), slug)
	if err != nil {
		respondUpstreamError(w, "Failed to fetch manga details", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, Envelope{Success: true, Data: detail})
}

func (s *Server) handleChapterImages(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	number := chi.URLParam(r, "chapterNumber")
	images, err := s.app.Source.Chapter(r.Context(), slug, number)
	if err != nil {
		respondUpstreamError(w, "Failed to fetch chapter images", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Chapter: komikcast.ChapterID(slug, number),
		Data:    images,
		Total:   total(len(images)),
	})
}
