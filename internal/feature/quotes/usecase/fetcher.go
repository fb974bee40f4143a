package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"fund_backend/internal/feature/quotes/domain/entity"
	"fund_backend/internal/shared/ratelimiter"
)

const (
	// NotAvailable is the sentinel returned for any ticker whose quote
	// could not be fetched or parsed. Callers treat it as a zero change.
	NotAvailable = "N/A"

	// DefaultMaxConcurrent caps simultaneous outbound quote fetches.
	DefaultMaxConcurrent = 10
)

// QuoteProvider returns the same-day percent price change for a symbol
// in percent units (2.0 means +2%).
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type QuoteProvider interface {
	PercentChange(ctx context.Context, symbol string) (float64, error)
}

// QuoteFetcher resolves tickers and fans fetches out to the two quote
// providers under a fixed concurrency cap.
type QuoteFetcher struct {
	yahoo         QuoteProvider
	barchart      QuoteProvider
	rateLimiter   ratelimiter.RateLimiterInterface
	maxConcurrent int
}

// NewQuoteFetcher creates a QuoteFetcher. A nil rateLimiter disables
// rate capping; maxConcurrent <= 0 falls back to DefaultMaxConcurrent.
func NewQuoteFetcher(yahoo, barchart QuoteProvider, rateLimiter ratelimiter.RateLimiterInterface, maxConcurrent int) *QuoteFetcher {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &QuoteFetcher{
		yahoo:         yahoo,
		barchart:      barchart,
		rateLimiter:   rateLimiter,
		maxConcurrent: maxConcurrent,
	}
}

// FetchChanges fetches a formatted percent-change string for every
// ticker in order. The result slice is positional: result[i] belongs to
// tickers[i], so duplicate tickers are fetched independently and keep
// independent outcomes.
//
// At most maxConcurrent fetches run at once. Every per-symbol failure
// degrades to NotAvailable; FetchChanges itself never fails.
func (f *QuoteFetcher) FetchChanges(ctx context.Context, tickers []string) []string {
	results := make([]string, len(tickers))

	sem := make(chan struct{}, f.maxConcurrent)
	var wg sync.WaitGroup
	for i, ticker := range tickers {
		wg.Add(1)
		go func(i int, ticker string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = f.fetchOne(ctx, ticker)
		}(i, ticker)
	}
	wg.Wait()

	return results
}

// fetchOne resolves a single ticker, asks the matching provider, and
// formats the result. Any error is absorbed into NotAvailable.
func (f *QuoteFetcher) fetchOne(ctx context.Context, ticker string) string {
	if f.rateLimiter != nil {
		f.rateLimiter.WaitIfNeeded()
	}

	resolved := Resolve(ticker)

	var provider QuoteProvider
	switch resolved.Source {
	case entity.SourceBarchart:
		provider = f.barchart
	default:
		provider = f.yahoo
	}
	if provider == nil {
		return NotAvailable
	}

	pct, err := provider.PercentChange(ctx, resolved.Symbol)
	if err != nil {
		slog.Warn("quote fetch failed", "ticker", ticker, "source", resolved.Source, "symbol", resolved.Symbol, "error", err)
		return NotAvailable
	}
	return FormatPercentChange(pct)
}

// FormatPercentChange renders a percent value with an explicit sign,
// two decimal places, and a trailing percent sign ("+2.00%", "-0.54%").
func FormatPercentChange(pct float64) string {
	return fmt.Sprintf("%+.2f%%", pct)
}
