// Package fetch retrieves upstream pages over HTTP with browser-like headers,
// per-request deadlines and coalescing of identical in-flight requests.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/sync/singleflight"
)

// DefaultMaxBodyBytes caps how much of an upstream page is read.
const DefaultMaxBodyBytes = 10 << 20

// ErrTimeout is returned when an upstream request exceeds its deadline.
var ErrTimeout = errors.New("upstream request timed out")

// HTTPError reports a non-2xx upstream response.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.URL, e.StatusCode)
}

// Request describes one upstream GET.
type Request struct {
	URL     string
	Referer string
	// Timeout overrides the client default when positive.
	Timeout time.Duration
}

// Fetcher retrieves the decoded body of an upstream page.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) ([]byte, error)
}

// Options configures a Client.
type Options struct {
	Timeout          time.Duration
	UserAgent        string
	CloudflareBypass bool
	MaxBodyBytes     int64
	// Transport replaces the default network transport, mostly for tests.
	Transport http.RoundTripper
}

// Client is the production Fetcher.
type Client struct {
	http         *http.Client
	timeout      time.Duration
	maxBodyBytes int64
	group        singleflight.Group
}

var _ Fetcher = (*Client)(nil)

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Client{
		http:         &http.Client{Transport: newTransport(opts)},
		timeout:      opts.Timeout,
		maxBodyBytes: opts.MaxBodyBytes,
	}
}

// Fetch performs a GET and returns the body converted to UTF-8. Concurrent
// calls for the same URL and referer share one upstream request; each caller
// still observes its own context.
func (c *Client) Fetch(ctx context.Context, req Request) ([]byte, error) {
	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}

	ch := c.group.DoChan(req.Referer+"\x00"+req.URL, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()
		return c.get(fetchCtx, req)
	})

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrTimeout, req.URL)
		}
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) get(ctx context.Context, req Request) ([]byte, error) {
	resp, err := c.Open(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err != nil {
		return nil, wrapErr(req.URL, err)
	}
	if len(raw) == 0 {
		return []byte{}, nil
	}

	reader, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", req.URL, err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", req.URL, err)
	}
	return body, nil
}

// Open performs a GET and hands back the live response for streaming. The
// caller must close the body. Non-2xx responses are returned as *HTTPError
// with the body already closed.
func (c *Client) Open(ctx context.Context, req Request) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream url %q: %w", req.URL, err)
	}
	if req.Referer != "" {
		httpReq.Header.Set("Referer", req.Referer)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, wrapErr(req.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: req.URL}
	}
	return resp, nil
}

func wrapErr(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, url)
	}
	return fmt.Errorf("failed to fetch %s: %w", url, err)
}
