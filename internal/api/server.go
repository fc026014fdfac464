// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/vrsandeep/komik-api/internal/core"
	"github.com/vrsandeep/komik-api/internal/filters"
)

// Server holds the dependencies for our API.
type Server struct {
	app      *core.App
	taxonomy *filters.Taxonomy
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) (*Server, error) {
	taxonomy, err := filters.Default()
	if err != nil {
		return nil, err
	}
	return &Server{app: app, taxonomy: taxonomy}, nil
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	requestTimeout := s.app.Config.Server.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger) // Logs requests to the console
	r.Use(Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.Timeout(requestTimeout))

	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleMethodNotAllowed)

	r.Get("/", s.handleIndex)
	r.Get("/filters", s.handleGetFilters)
	r.Get("/health", s.handleHealth)

	// Catalog
	r.Get("/popular", s.handlePopular)
	r.Get("/latest", s.handleLatest)
	r.Get("/search", s.handleSearch)
	r.Get("/filter", s.handleFilter)
	r.Get("/recommendation", s.handleRecommendation)
	r.Get("/manga/{slug}", s.handleMangaDetail)
	r.Get("/chapter/{slug}/{chapterNumber}", s.handleChapterImages)

	// Image proxy (the CDN rejects requests without the site Referer)
	r.Get("/proxy/image", s.handleProxyImage)

	return r
}
