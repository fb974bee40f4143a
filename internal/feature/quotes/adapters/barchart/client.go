package barchart

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"fund_backend/internal/feature/quotes/usecase"
	platformhttp "fund_backend/internal/platform/http"
)

// percentChangePattern matches the percentChange field of the JSON
// fragment embedded in a quotes page, e.g. `"percentChange":"-0.54%"`.
var percentChangePattern = regexp.MustCompile(`"percentChange"\s*:\s*"([+-]?[0-9.]+)%"`)

// Client scrapes percent price changes for futures root symbols. It is
// the QuoteProvider implementation for the alternate quote source.
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

// PercentChange fetches the quotes page for a futures root symbol and
// extracts the first percentChange value from the embedded JSON.
//
// Endpoint: GET {base}/futures/quotes/{root}/overview
func (c *Client) PercentChange(ctx context.Context, root string) (float64, error) {
	u := fmt.Sprintf("%s/futures/quotes/%s/overview", c.cfg.BaseURL, url.PathEscape(root))

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
		return 0, fmt.Errorf("quotes page http %d", res.StatusCode)
	}

	page, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, err
	}

	m := percentChangePattern.FindSubmatch(page)
	if m == nil {
		return 0, fmt.Errorf("quotes page: no percentChange field for %q", root)
	}

	pct, err := strconv.ParseFloat(string(m[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("quotes page: parse percentChange %q: %w", m[1], err)
	}
	return pct, nil
}
