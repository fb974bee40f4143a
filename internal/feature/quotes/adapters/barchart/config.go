// Package barchart extracts percent price changes from the alternate
// provider's HTML quotes pages. The page embeds a JSON fragment, so
// this is a best-effort text extraction rather than a structured API.
package barchart

import (
	"os"
	"time"
)

// DefaultBaseURL is the production quotes site.
const DefaultBaseURL = "https://www.barchart.com"

// Config holds configuration for the quotes-page client.
type Config struct {
	BaseURL string        // Base URL for the site, overridable for tests
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads client configuration from environment variables,
// falling back to production defaults.
func LoadConfig() Config {
	base := os.Getenv("BARCHART_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
