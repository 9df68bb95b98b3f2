// Package hrclient talks to the upstream HR system that owns the raw
// clock-machine events and the leave approvals. It hands stable,
// zone-normalized snapshots to the reconciliation engine; retries and
// timeouts stay on this side of the boundary.
package hrclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxRetries = 3

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	loc        *time.Location
	logger     *slog.Logger
}

func NewClient(baseURL, apiKey string, loc *time.Location, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if loc == nil {
		loc = time.Local
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		loc:    loc,
		logger: logger,
	}
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	var resp *http.Response
	start := time.Now()
	for attempt := 0; attempt <= maxRetries; attempt++ {
		resp, err = c.httpClient.Do(req)
		if err != nil {
			if attempt == maxRetries {
				c.logger.Error("HR API transport error", "path", path, "error", err, "elapsed", time.Since(start))
				return nil, fmt.Errorf("sending request: %w", err)
			}
			time.Sleep(backoff(attempt))
			continue
		}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			if attempt == maxRetries {
				c.logger.Error("HR API request failed after retries", "path", path, "status", resp.StatusCode, "attempts", maxRetries+1)
				return nil, fmt.Errorf("HR API returned status %d after %d retries", resp.StatusCode, maxRetries)
			}
			c.logger.Debug("HR API retryable error", "path", path, "status", resp.StatusCode, "attempt", attempt+1)
			time.Sleep(backoff(attempt))
			continue
		}
		break
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("HR API request failed", "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("HR API error (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	c.logger.Debug("HR API response", "path", path, "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start))
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding HR API response: %w", err)
	}
	return nil
}

func backoff(attempt int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt))) * time.Second
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
