// Package usecase implements symbol resolution and quote fetching for
// fund holdings tickers.
package usecase

import (
	"regexp"

	"fund_backend/internal/feature/quotes/domain/entity"
)

// futuresTickerPattern splits a futures ticker into commodity-code
// prefix, single month-code letter, and year digits (e.g. "CLZ5" ->
// "CL" + "Z" + "5").
var futuresTickerPattern = regexp.MustCompile(`^([A-Za-z]+)([A-Za-z])([0-9]+)$`)

// leadingAlphaPattern is the fallback when a ticker has no month/year
// suffix: the longest leading alphabetic run.
var leadingAlphaPattern = regexp.MustCompile(`^[A-Za-z]+`)

// barchartRoots maps commodity-code prefixes to Barchart root symbols.
// The generic futures provider does not carry these two index-future
// roots, so they are routed to the alternate provider instead.
var barchartRoots = map[string]string{
	"MFS": "DI", // MSCI EAFE index futures
	"MES": "M0", // MSCI Emerging Markets index futures
}

// commodityPrefix extracts the commodity-code portion of a raw ticker.
func commodityPrefix(ticker string) string {
	if m := futuresTickerPattern.FindStringSubmatch(ticker); m != nil {
		return m[1]
	}
	if p := leadingAlphaPattern.FindString(ticker); p != "" {
		return p
	}
	return ticker
}

// Resolve maps a raw holding ticker to the quote source that carries it
// and the symbol that source expects. Resolve is a pure function with
// no I/O.
func Resolve(ticker string) entity.ResolvedSymbol {
	prefix := commodityPrefix(ticker)
	if root, ok := barchartRoots[prefix]; ok {
		return entity.ResolvedSymbol{Source: entity.SourceBarchart, Symbol: root}
	}
	// Generic futures continuation symbol on the primary provider.
	return entity.ResolvedSymbol{Source: entity.SourceYahoo, Symbol: prefix + "=F"}
}
