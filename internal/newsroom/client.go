package newsroom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// BaseURL is the fixed public origin, also used to resolve site-relative links.
	BaseURL = "https://www.hanwha.co.kr"

	mediaListPath = "/api/v1/news/media/list-ajax.do"

	CategoryPress  = "press"
	CategorySocial = "social"

	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 2 << 20 // 2MB
)

// TransportError is the fatal failure of a page fetch: a connection error,
// a timeout, a non-2xx status or an unreadable body. It aborts the whole
// collection, there is no retry.
type TransportError struct {
	URL        string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("newsroom: fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("newsroom: fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client fetches newsroom media pages.
type Client struct {
	httpClient *http.Client
	baseURL    string
	listURL    string
}

// NewClient returns a client for the given origin. An empty baseURL falls
// back to the public site; timeout <= 0 falls back to the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		listURL:    baseURL + mediaListPath,
	}
}

// BaseURL returns the origin relative links are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchMediaPage performs one GET for the given category and 1-indexed page.
func (c *Client) FetchMediaPage(ctx context.Context, category string, page int) (*PageResponse, error) {
	u := fmt.Sprintf("%s?category=%s&pageNum=%d", c.listURL, url.QueryEscape(category), page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("newsroom: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{URL: u, StatusCode: resp.StatusCode}
	}

	var payload PageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return nil, &TransportError{URL: u, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode page: %w", err)}
	}
	return &payload, nil
}
