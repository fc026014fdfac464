// Shared test server setup utilities, which simplify all API tests.

package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/vrsandeep/komik-api/internal/api"
	"github.com/vrsandeep/komik-api/internal/config"
	"github.com/vrsandeep/komik-api/internal/core"
	"github.com/vrsandeep/komik-api/internal/testutil/pages"
)

// Upstream is a fake catalog site serving the fixtures in package pages.
type Upstream struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// Requests returns a copy of every request the fake site received.
func (u *Upstream) Requests() []*http.Request {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]*http.Request(nil), u.requests...)
}

// LastRequest returns the most recent request, or nil.
func (u *Upstream) LastRequest() *http.Request {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.requests) == 0 {
		return nil
	}
	return u.requests[len(u.requests)-1]
}

// NewUpstream starts a fake catalog site. Listing paths answer with
// pages.Listing, /manga/one-piece/ with pages.Detail, the 1100 chapter with
// pages.ChapterReader, the root with pages.Home and /images/ with a tiny
// JPEG that requires a Referer. /broken/ always fails with 503.
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()
	u := &Upstream{}

	html := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=UTF-8")
			fmt.Fprint(w, body)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/daftar-komik/", html(pages.Listing))
	mux.HandleFunc("/project-list/", html(pages.Listing))
	mux.HandleFunc("/page/", html(pages.Listing))
	mux.HandleFunc("/manga/one-piece/", html(pages.Detail))
	mux.HandleFunc("/chapter/one-piece-chapter-1100/", html(pages.ChapterReader))
	mux.HandleFunc("/images/", func(w http.ResponseWriter, r *http.Request) {
		if r.Referer() == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte{0xff, 0xd8, 0xff, 0xe0})
	})
	mux.HandleFunc("/broken/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/{$}", html(pages.Home))

	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.requests = append(u.requests, r.Clone(r.Context()))
		u.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(u.Close)
	return u
}

// TestConfig returns a configuration pointing at baseURL with short
// timeouts and no Cloudflare transport.
func TestConfig(baseURL string) *config.Config {
	cfg := &config.Config{Port: 0}
	cfg.Upstream.BaseURL = baseURL
	cfg.Upstream.Timeout = 2 * time.Second
	cfg.Upstream.DetailTimeout = 2 * time.Second
	cfg.Upstream.UserAgent = "komik-test"
	cfg.Upstream.MaxBodyBytes = 1 << 20
	cfg.Server.RequestTimeout = 5 * time.Second
	return cfg
}

// SetupTestApp wires a core.App against the given upstream URL.
func SetupTestApp(t *testing.T, baseURL string) *core.App {
	t.Helper()
	app := core.NewWithConfig(TestConfig(baseURL))
	app.Version = "test"
	return app
}

// SetupTestServer starts a fake upstream and an api.Server in front of it.
func SetupTestServer(t *testing.T) (*api.Server, *core.App, *Upstream) {
	t.Helper()
	upstream := NewUpstream(t)
	app := SetupTestApp(t, upstream.URL)
	server, err := api.NewServer(app)
	if err != nil {
		t.Fatalf("Failed to create API server: %v", err)
	}
	return server, app, upstream
}
