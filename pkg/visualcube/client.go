package visualcube

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cubedeck/cubedeck/pkg/alg"
	"github.com/cubedeck/cubedeck/pkg/errors"
	"github.com/cubedeck/cubedeck/pkg/httputil"
)

// Client fetches rendered case icons from the visualcube service.
//
// Responses are cached on disk keyed by the full request URL, so a rerun
// with unchanged algorithms makes no network requests at all. Transient
// failures (timeouts, 5xx) are retried with backoff; a 404 means the
// service rejected the case string and is reported immediately.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *httputil.Cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the rendering endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a Client backed by the given cache.
// A nil cache disables caching entirely; every fetch hits the service.
func NewClient(cache *httputil.Cache, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		cache:   cache,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchIcon returns the SVG body for one algorithm's case icon.
// With refresh set, the cache is bypassed (but still updated on success).
func (c *Client) FetchIcon(ctx context.Context, a alg.Algorithm, refresh bool) ([]byte, error) {
	reqURL := IconURL(c.baseURL, a)

	if c.cache != nil && !refresh {
		data, ok, err := c.cache.Get(reqURL)
		if err != nil && !stderrors.Is(err, httputil.ErrExpired) {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading icon cache for %s", a.Name)
		}
		if ok {
			return data, nil
		}
	}

	var data []byte
	err := httputil.RetryWithBackoff(ctx, func() error {
		var fetchErr error
		data, fetchErr = c.get(ctx, reqURL)
		return fetchErr
	})
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetching icon for %s", a.Name)
	}

	if c.cache != nil {
		if err := c.cache.Set(reqURL, data); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "caching icon for %s", a.Name)
		}
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &httputil.RetryableError{Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &httputil.RetryableError{Err: err}
	}
	return body, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "renderer rejected request: %s", resp.Request.URL)
	case resp.StatusCode >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("server error: HTTP %d", resp.StatusCode)}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &httputil.RetryableError{Err: fmt.Errorf("rate limited: HTTP %d", resp.StatusCode)}
	default:
		return fmt.Errorf("unexpected status: HTTP %d", resp.StatusCode)
	}
}
