// Package yahoo provides a client for the chart/quote JSON endpoint of
// the primary quote provider.
package yahoo

import (
	"os"
	"time"
)

// DefaultBaseURL is the production quote-chart endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Config holds configuration for the chart API client.
type Config struct {
	BaseURL string        // Base URL for the API, overridable for tests
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads client configuration from environment variables,
// falling back to production defaults.
func LoadConfig() Config {
	base := os.Getenv("YAHOO_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
