// Package entity defines the domain models for the quotes feature.
package entity

// QuoteSource identifies which remote service a symbol is quoted on.
type QuoteSource string

const (
	// SourceYahoo is the chart/quote JSON endpoint keyed by symbol.
	SourceYahoo QuoteSource = "yahoo"
	// SourceBarchart is the HTML quotes page keyed by futures root symbol.
	SourceBarchart QuoteSource = "barchart"
)

// ResolvedSymbol is the lookup identity of one ticker: the provider to
// ask and the symbol string that provider understands.
type ResolvedSymbol struct {
	Source QuoteSource
	Symbol string
}
