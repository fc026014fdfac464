package api

import (
	"net/http"
)

var endpointExamples = map[string]string{
	"popular":        "/popular?page=1",
	"latest":         "/latest?page=1",
	"search":         "/search?q=naruto&page=1",
	"manga_detail":   "/manga/:slug",
	"chapter_images": "/chapter/:slug/:chapterNumber",
	"filter":         "/filter?status=ongoing&type=manga&orderby=popular&page=1",
	"filters":        "/filters",
	"recommendation": "/recommendation",
	"health":         "/health",
	"image_proxy":    "/proxy/image?url=",
}

type indexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, indexResponse{
		Message:   "KomikCast API",
		Version:   s.app.Version,
		Endpoints: endpointExamples,
	})
}

func (s *Server) handleGetFilters(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "Available filter options for KomikCast API",
		Data:    s.taxonomy,
		Usage:   s.taxonomy.Usage,
	})
}

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Upstream any    `json:"upstream"`
}

// handleHealth reports liveness. The upstream block is the last scheduled
// probe result and never triggers a fetch itself.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data: healthResponse{
			Status:   "ok",
			Version:  s.app.Version,
			Upstream: s.app.Monitor.Status(),
		},
	})
}
