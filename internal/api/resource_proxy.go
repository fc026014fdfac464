package api

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vrsandeep/komik-api/internal/fetch"
)

// handleProxyImage streams a chapter or cover image through the service.
// The image host refuses hotlinked requests, so the upstream call carries the
// site Referer and the browser headers of every other fetch.
//
// Only the upstream host and the configured image domains are proxied.
//
// Query parameters:
//   - url: (required) The absolute http(s) image URL
func (s *Server) handleProxyImage(w http.ResponseWriter, r *http.Request) {
	imageURL := r.URL.Query().Get("url")
	if imageURL == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing 'url' parameter")
		return
	}

	parsedURL, err := url.Parse(imageURL)
	if err != nil || parsedURL.Host == "" {
		RespondWithError(w, http.StatusBadRequest, "Invalid URL")
		return
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		RespondWithError(w, http.StatusBadRequest, "Only http and https URLs are allowed")
		return
	}
	if !s.allowedImageHost(parsedURL.Hostname()) {
		log.Printf("Refusing to proxy image from %s", parsedURL.Host)
		RespondWithError(w, http.StatusForbidden, "Host not allowed")
		return
	}

	timeout := s.app.Config.Upstream.DetailTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	resp, err := s.app.Fetcher.Open(ctx, fetch.Request{URL: imageURL, Referer: s.app.Source.Referer()})
	if err != nil {
		log.Printf("Error fetching proxied image: %v", err)
		RespondWithFailure(w, http.StatusBadGateway, "Failed to fetch image", err.Error())
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	// Trim any charset or other parameters
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = inferContentType(imageURL)
	}
	if !strings.HasPrefix(contentType, "image/") {
		log.Printf("Proxied resource %s is %q, not an image", imageURL, contentType)
		RespondWithError(w, http.StatusBadGateway, "Upstream resource is not an image")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400") // 1 day
	if resp.ContentLength > 0 {
		w.Header().Set("Content-Length", resp.Header.Get("Content-Length"))
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		// Response already started, can't send error
		log.Printf("Error copying proxied image data: %v", err)
	}
}

// allowedImageHost reports whether host is the upstream site itself or falls
// under one of the configured image domains.
func (s *Server) allowedImageHost(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" {
		return false
	}

	domains := []string{}
	if base, err := url.Parse(s.app.Source.BaseURL()); err == nil {
		domains = append(domains, base.Hostname())
	}
	domains = append(domains, s.app.Config.Upstream.ImageHosts...)

	for _, domain := range domains {
		domain = strings.ToLower(strings.Trim(strings.TrimSpace(domain), "."))
		if domain == "" {
			continue
		}
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// inferContentType guesses an image type from the URL extension.
func inferContentType(rawURL string) string {
	path := strings.ToLower(rawURL)
	if u, err := url.Parse(rawURL); err == nil {
		path = strings.ToLower(u.Path)
	}
	switch {
	case strings.HasSuffix(path, ".jpg") || strings.HasSuffix(path, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".gif"):
		return "image/gif"
	case strings.HasSuffix(path, ".webp"):
		return "image/webp"
	case strings.HasSuffix(path, ".avif"):
		return "image/avif"
	case strings.HasSuffix(path, ".svg"):
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
