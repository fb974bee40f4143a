// Package entity defines the domain models for the holdings feature.
package entity

// HoldingRecord is one line item of the fund's disclosed portfolio,
// extracted from a single spreadsheet row. Records are immutable after
// extraction.
type HoldingRecord struct {
	Date        string   // Raw date cell, often an 8-digit value like "20240115"
	Cusip       string   // Security identifier
	Ticker      string   // Exchange ticker, non-empty for every extracted record
	Description string   // Human-readable contract description
	Shares      *float64 // Number of shares/contracts, nil when the cell is not numeric
	MarketValue *float64 // Base market value, nil when the cell is not numeric
	HoldingsPct float64  // Portfolio weight as a decimal fraction (0.0123 = 1.23%)
}

// EnrichedHolding pairs a HoldingRecord with its same-day price change
// and the resulting contribution to fund performance.
//
// Invariant: Contribution and PercentChangeDecimal are exactly 0 when
// PercentChangeText is the "N/A" sentinel or empty.
type EnrichedHolding struct {
	Holding              HoldingRecord
	PercentChangeText    string  // Display string like "+2.00%", or "N/A"
	PercentChangeDecimal float64 // Parsed change as a decimal fraction (0.02 = +2%)
	Contribution         float64 // HoldingsPct * PercentChangeDecimal
}

// FundReport is the fully computed result of one pipeline run:
// holdings sorted by contribution descending plus the fund-level total.
type FundReport struct {
	Holdings          []EnrichedHolding
	TotalContribution float64
}
