// Package usecase implements the holdings report pipeline: row
// extraction, contribution calculation, and ranking.
package usecase

import (
	"strconv"
	"strings"

	"fund_backend/internal/feature/holdings/domain/entity"
)

// HeaderRowIndex is the zero-based row of the column headers in the
// published spreadsheet. The rows above it are title and metadata;
// holdings data starts directly below.
const HeaderRowIndex = 5

// Fixed column layout of the holdings sheet:
// DATE, CUSIP, TICKER, DESCRIPTION, SHARES, BASE_MV, PCT_HOLDINGS.
const (
	colDate = iota
	colCusip
	colTicker
	colDescription
	colShares
	colMarketValue
	colHoldingsPct
)

// ExtractHoldings turns the raw spreadsheet grid into holding records.
// Every row below the header row is a candidate; a row is kept iff its
// trimmed TICKER cell is non-empty. Source order is preserved.
func ExtractHoldings(grid [][]string) []entity.HoldingRecord {
	holdings := []entity.HoldingRecord{}
	if len(grid) <= HeaderRowIndex+1 {
		return holdings
	}

	for _, row := range grid[HeaderRowIndex+1:] {
		ticker := strings.TrimSpace(cell(row, colTicker))
		if ticker == "" {
			continue
		}
		holdings = append(holdings, entity.HoldingRecord{
			Date:        strings.TrimSpace(cell(row, colDate)),
			Cusip:       strings.TrimSpace(cell(row, colCusip)),
			Ticker:      ticker,
			Description: strings.TrimSpace(cell(row, colDescription)),
			Shares:      parseNumber(cell(row, colShares)),
			MarketValue: parseNumber(cell(row, colMarketValue)),
			HoldingsPct: parseFraction(cell(row, colHoldingsPct)),
		})
	}
	return holdings
}

// cell returns the column value or "" when the row is too short.
// excelize drops trailing empty cells, so short rows are normal.
func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}

// parseNumber parses a numeric cell, tolerating thousands separators.
// Returns nil when the cell is empty or not numeric.
func parseNumber(s string) *float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseFraction parses the PCT_HOLDINGS cell, already a decimal
// fraction in the source. Non-numeric cells count as zero weight.
func parseFraction(s string) float64 {
	if v := parseNumber(s); v != nil {
		return *v
	}
	return 0
}
