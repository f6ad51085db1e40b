// Package omdb provides a client for the OMDb API.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tkarvinen/moviedeck/internal/errors"
	"github.com/tkarvinen/moviedeck/internal/ratelimit"
)

const (
	defaultBaseURL = "http://www.omdbapi.com"
	// OMDb free tier allows 1000 requests/day; 1 req/sec keeps bursts polite.
	defaultRatePerSecond = 1
)

// PlotLength selects how much plot text a detail lookup returns.
type PlotLength string

const (
	// PlotShort is used when enriching search summaries.
	PlotShort PlotLength = "short"
	// PlotFull is used for direct detail lookups.
	PlotFull PlotLength = "full"
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an OMDb API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	limiter    *ratelimit.Limiter
}

// NewClient creates a new OMDb API client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    ratelimit.New("OMDb", defaultRatePerSecond),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the OMDb API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithRateLimiter sets a custom rate limiter for the client.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.limiter = limiter
		}
	}
}

// Search runs a title search restricted to movies. A well-formed "no
// results" response returns a SearchResponse with an empty Search slice and
// a nil error; transport and API failures return an error.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchResponse, error) {
	if page < 1 {
		page = 1
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	slog.Debug("Searching OMDb", "query", query, "page", page)

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("type", "movie")

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if searchResp.Response == "False" {
		if isNotFound(searchResp.Error) {
			slog.Debug("No OMDb results", "query", query)
			searchResp.Search = nil
			return &searchResp, nil
		}
		return nil, fmt.Errorf("OMDb API error: %s", searchResp.Error)
	}

	return &searchResp, nil
}

// FetchByID retrieves a full movie record by IMDb id. A "not found"
// response returns (nil, nil); transport and API failures return an error.
func (c *Client) FetchByID(ctx context.Context, imdbID string, plot PlotLength) (*Detail, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	slog.Debug("Fetching OMDb detail", "imdb_id", imdbID, "plot", plot)

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", imdbID)
	params.Set("plot", string(plot))

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var detail Detail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if detail.Response == "False" {
		if isNotFound(detail.Error) {
			slog.Debug("Movie not found in OMDb", "imdb_id", imdbID)
			return nil, nil
		}
		return nil, fmt.Errorf("OMDb API error: %s", detail.Error)
	}

	if detail.ImdbID == "" || detail.Title == "" {
		return nil, fmt.Errorf("invalid or empty response from OMDb API for ID: %s", imdbID)
	}

	return &detail, nil
}

// get issues one request against the API and returns the response body.
func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp struct {
			Response string `json:"Response"`
			Error    string `json:"Error"`
		}
		if err := json.Unmarshal(body, &errorResp); err == nil {
			if errorResp.Error == "Request limit reached!" {
				return nil, errors.NewRateLimitError("OMDb API request limit reached")
			}
			if errorResp.Error != "" {
				slog.Warn("OMDb API error", "error", errorResp.Error)
			}
		}
		return nil, fmt.Errorf("OMDb API returned non-200 status code: %d", resp.StatusCode)
	}

	return body, nil
}

func isNotFound(apiError string) bool {
	return strings.Contains(apiError, "not found")
}
