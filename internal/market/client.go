// Package market fetches trending liquidity pools from the GeckoTerminal
// API. The response body is passed through to the caller unmodified.
package market

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client is an HTTP client for the trending-pools endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zerolog.Logger
}

// NewClient creates a trending-pools client targeting the given URL.
func NewClient(baseURL string, timeout time.Duration, logger *zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// TrendingPools fetches the first page of trending pools and returns the
// raw JSON body. Transport errors and upstream non-2xx statuses both come
// back as errors carrying the upstream detail.
func (c *Client) TrendingPools(ctx context.Context) ([]byte, error) {
	url := c.baseURL + "?page=1"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching trending pools: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", url).Msg("trending pools request failed")
		return nil, fmt.Errorf("error fetching trending pools: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error fetching trending pools: %w", err)
	}

	c.logger.Debug().
		Int("status_code", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("trending pools response")

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("error fetching trending pools: upstream returned %d: %s", resp.StatusCode, body)
	}

	return body, nil
}
