package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"fund_backend/internal/feature/quotes/adapters/yahoo/dto"
	"fund_backend/internal/feature/quotes/usecase"
	platformhttp "fund_backend/internal/platform/http"
)

// Client fetches percent price changes from the chart API. It is the
// QuoteProvider implementation for the primary quote source.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements the usecase interface.
var _ usecase.QuoteProvider = (*Client)(nil)

// NewClient creates a new Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// PercentChange fetches the chart metadata for symbol and computes the
// same-day percent change as (current - previous) / previous * 100.
//
// Endpoint: GET {base}/v8/finance/chart/{symbol}
func (c *Client) PercentChange(ctx context.Context, symbol string) (float64, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s", c.cfg.BaseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	// Requests without a browser-like User-Agent get blocked upstream.
	req.Header.Set("User-Agent", platformhttp.BrowserUserAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return 0, fmt.Errorf("chart api http %d", res.StatusCode)
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.Chart.Error != nil {
		return 0, fmt.Errorf("chart api: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 {
		return 0, fmt.Errorf("chart api: no result for %q", symbol)
	}

	meta := body.Chart.Result[0].Meta
	current := meta.RegularMarketPrice
	previous := meta.PreviousClose
	if previous == nil {
		previous = meta.ChartPreviousClose
	}
	if current == nil || previous == nil || *previous == 0 {
		return 0, fmt.Errorf("chart api: missing price data for %q", symbol)
	}

	return (*current - *previous) / *previous * 100, nil
}
