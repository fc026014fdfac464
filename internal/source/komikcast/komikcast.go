// Package komikcast implements the catalog operations against the KomikCast
// site: it builds page URLs, fetches them and runs the matching extractor.
package komikcast

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/vrsandeep/komik-api/internal/extract"
	"github.com/vrsandeep/komik-api/internal/fetch"
	"github.com/vrsandeep/komik-api/internal/filters"
	"github.com/vrsandeep/komik-api/internal/models"
)

const DefaultBaseURL = "https://komikcast.li"

// Options configures a Source. Zero values fall back to defaults.
type Options struct {
	BaseURL       string
	ListTimeout   time.Duration
	DetailTimeout time.Duration
}

// Source serves catalog operations for one upstream site.
type Source struct {
	fetcher       fetch.Fetcher
	baseURL       string
	listTimeout   time.Duration
	detailTimeout time.Duration
}

func New(fetcher fetch.Fetcher, opts Options) *Source {
	s := &Source{
		fetcher:       fetcher,
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		listTimeout:   opts.ListTimeout,
		detailTimeout: opts.DetailTimeout,
	}
	if s.baseURL == "" {
		s.baseURL = DefaultBaseURL
	}
	if s.listTimeout <= 0 {
		s.listTimeout = 10 * time.Second
	}
	if s.detailTimeout <= 0 {
		s.detailTimeout = 15 * time.Second
	}
	return s
}

// BaseURL returns the site root without a trailing slash.
func (s *Source) BaseURL() string { return s.baseURL }

// Referer is the header value sent with chapter and image requests.
func (s *Source) Referer() string { return s.baseURL + "/" }

// Popular lists the catalog ordered by popularity.
func (s *Source) Popular(ctx context.Context, page int) ([]models.MangaSummary, error) {
	path := filters.PagePath(filters.CatalogPath, page) + "?orderby=popular"
	return s.listing(ctx, path)
}

// Latest lists the most recently updated titles.
func (s *Source) Latest(ctx context.Context, page int) ([]models.MangaSummary, error) {
	path := filters.PagePath(filters.CatalogPath, page) + "?sortby=update"
	return s.listing(ctx, path)
}

// Search runs a keyword search. The page segment is always present on the
// search path, page 1 included.
func (s *Source) Search(ctx context.Context, query string, page int) ([]models.MangaSummary, error) {
	if page < 1 {
		page = 1
	}
	path := fmt.Sprintf("/page/%d/?s=%s", page, url.QueryEscape(query))
	return s.listing(ctx, path)
}

// Filter lists the catalog narrowed by the given filter request.
func (s *Source) Filter(ctx context.Context, req models.FilterRequest) ([]models.MangaSummary, error) {
	return s.listing(ctx, filters.BuildPath(req))
}

// Detail fetches a manga page and its chapter list.
func (s *Source) Detail(ctx context.Context, slug string) (*models.MangaDetail, error) {
	doc, err := s.document(ctx, fetch.Request{
		URL:     s.baseURL + "/manga/" + url.PathEscape(slug) + "/",
		Timeout: s.detailTimeout,
	})
	if err != nil {
		return nil, err
	}
	detail := extract.Detail(doc)
	return &detail, nil
}

// ChapterID is the upstream identifier of a chapter page.
func ChapterID(slug, number string) string {
	return slug + "-" + number
}

// Chapter fetches the reader page of one chapter and returns its images.
func (s *Source) Chapter(ctx context.Context, slug, number string) ([]models.ChapterImage, error) {
	doc, err := s.document(ctx, fetch.Request{
		URL:     s.baseURL + "/chapter/" + url.PathEscape(ChapterID(slug, number)) + "/",
		Referer: s.Referer(),
		Timeout: s.detailTimeout,
	})
	if err != nil {
		return nil, err
	}
	return extract.ChapterImages(doc), nil
}

// Recommendations returns the home page carousel.
func (s *Source) Recommendations(ctx context.Context) ([]models.RecommendationCard, error) {
	doc, err := s.document(ctx, fetch.Request{URL: s.baseURL + "/", Timeout: s.listTimeout})
	if err != nil {
		return nil, err
	}
	return extract.Recommendations(doc), nil
}

// Ping fetches the site root and reports how long it took.
func (s *Source) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	_, err := s.fetcher.Fetch(ctx, fetch.Request{URL: s.baseURL + "/", Timeout: s.listTimeout})
	return time.Since(start), err
}

func (s *Source) listing(ctx context.Context, path string) ([]models.MangaSummary, error) {
	doc, err := s.document(ctx, fetch.Request{URL: s.baseURL + path, Timeout: s.listTimeout})
	if err != nil {
		return nil, err
	}
	return extract.Summaries(doc), nil
}

func (s *Source) document(ctx context.Context, req fetch.Request) (*goquery.Document, error) {
	log.Printf("Fetching %s", req.URL)
	body, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	doc, err := extract.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", req.URL, err)
	}
	return doc, nil
}
