// Package sheet fetches the fund's published holdings spreadsheet and
// exposes its cells as a raw grid.
package sheet

import (
	"os"
	"time"
)

// Config holds configuration for the holdings spreadsheet source.
type Config struct {
	URL     string        // Fixed URL of the published .xlsx holdings file
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads the spreadsheet source configuration from
// environment variables.
func LoadConfig() Config {
	return Config{
		URL:     os.Getenv("HOLDINGS_SHEET_URL"),
		Timeout: 15 * time.Second,
	}
}
