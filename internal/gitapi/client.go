package gitapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// GistFetcher defines the interface for retrieving a user's public gists.
// This interface is implemented by *Client and can be used for testing.
type GistFetcher interface {
	FetchGists(ctx context.Context, username string, limit int, since string) ([]Gist, error)
}

// Ensure Client implements GistFetcher at compile time.
var _ GistFetcher = (*Client)(nil)

const (
	defaultBaseURL   = "https://api.github.com"
	defaultUserAgent = "gistwatch/0.1"

	// MaxPageSize is the server-side cap on per_page. Values above it are
	// truncated by GitHub, not by this client.
	MaxPageSize = 100
)

// Client talks to the GitHub REST API. Requests are unauthenticated and
// subject to the upstream anonymous rate limit.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client against the public GitHub API.
func NewClient() *Client {
	c, _ := NewClientWithBaseURL(defaultBaseURL)
	return c
}

// NewClientWithBaseURL builds a Client against an alternate API root,
// mainly for tests and GitHub Enterprise hosts.
func NewClientWithBaseURL(base string) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", base, err)
	}
	return &Client{
		baseURL: u,
		// No client-side timeout: the widget relies on the transport's
		// defaults and on context cancellation.
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}, nil
}

// BuildGistsURL constructs the gists list request URL for a user. per_page
// is always present; since is appended percent-encoded only when non-empty,
// asking the server to return gists updated at or after that instant.
// Limits above MaxPageSize are passed through untouched.
func BuildGistsURL(base *url.URL, username string, limit int, since string) string {
	values := url.Values{}
	values.Set("per_page", strconv.Itoa(limit))
	if since != "" {
		values.Set("since", since)
	}
	rel := &url.URL{
		Path:     "/users/" + username + "/gists",
		RawQuery: values.Encode(),
	}
	return base.ResolveReference(rel).String()
}

// StatusError reports a non-success HTTP response. It keeps the status
// code, status text, request URL, and response body so a failure can be
// diagnosed without replaying the request.
type StatusError struct {
	Code   int
	Status string
	URL    string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned %d %s: %s", e.URL, e.Code, e.Status, e.Body)
}

// FetchGists retrieves one page of a user's public gists. It issues exactly
// one request: no retries, no pagination follow-up.
func (c *Client) FetchGists(ctx context.Context, username string, limit int, since string) ([]Gist, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username required")
	}

	reqURL := BuildGistsURL(c.baseURL, username, limit, since)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{
			Code:   resp.StatusCode,
			Status: http.StatusText(resp.StatusCode),
			URL:    reqURL,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	var gists []Gist
	if err := json.NewDecoder(resp.Body).Decode(&gists); err != nil {
		return nil, fmt.Errorf("decode response from %s: %w", reqURL, err)
	}
	if gists == nil {
		gists = []Gist{}
	}
	return gists, nil
}
