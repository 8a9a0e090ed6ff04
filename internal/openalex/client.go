// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openalex is a rate-limited client for the OpenAlex REST API,
// covering the two endpoints the pipeline needs: source resolution and
// works listing with cursor pagination.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/journal-prevalence/internal/httputil"
	"github.com/pdiddy/journal-prevalence/pkg/types"
)

const (
	// DefaultBaseURL is the OpenAlex API root.
	DefaultBaseURL = "https://api.openalex.org"

	// DefaultRateLimit is 10 requests per second, the documented limit for
	// the polite pool.
	DefaultRateLimit = 10.0

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultPerPage is the works page size. OpenAlex caps per_page at 200.
	DefaultPerPage = 200
)

// Client calls the OpenAlex API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	email      string
	userAgent  string
	perPage    int
	maxRetries int
	log        io.Writer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for httptest substitution).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogWriter sets the destination for progress and retry messages.
func WithLogWriter(w io.Writer) Option {
	return func(c *Client) { c.log = w }
}

// NewClient creates an OpenAlex client from cfg. Zero config fields fall
// back to the package defaults.
func NewClient(cfg types.OpenAlexConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	perPage := cfg.PerPage
	if perPage <= 0 || perPage > DefaultPerPage {
		perPage = DefaultPerPage
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(limit), 1),
		baseURL:    DefaultBaseURL,
		email:      cfg.Email,
		userAgent:  cfg.UserAgent,
		perPage:    perPage,
		maxRetries: cfg.MaxRetries,
		log:        io.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON performs a rate-limited GET against path with params and decodes
// the JSON response into v.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, v interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if c.email != "" {
		params.Set("mailto", c.email)
	}
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries, c.log)
	if err != nil {
		return fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OpenAlex API returned HTTP %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing OpenAlex response: %w", err)
	}
	return nil
}
