// Package view renders a computed fund report into display strings for
// the HTML table.
package view

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"fund_backend/internal/feature/holdings/domain/entity"
	quotes "fund_backend/internal/feature/quotes/usecase"
)

// Sign classes used by the page CSS to color cells.
const (
	SignPositive = "positive"
	SignNegative = "negative"
	SignNeutral  = "neutral"
)

// numberPrinter groups large numbers with locale separators
// (1234567.89 -> "1,234,568").
var numberPrinter = message.NewPrinter(language.English)

// HoldingRow is one fully formatted table row.
type HoldingRow struct {
	Date          string
	Cusip         string
	Ticker        string
	Description   string
	Shares        string
	MarketValue   string
	HoldingsPct   string
	PercentChange string
	Contribution  string
	SignClass     string // CSS class for the change/contribution cells
}

// ReportView is the display model of one report: formatted rows in rank
// order plus the aggregate total row.
type ReportView struct {
	Rows           []HoldingRow
	Total          string
	TotalSignClass string
}

// NewReportView formats a computed report for rendering. The report's
// holdings are already ranked; ordering is preserved as-is.
func NewReportView(r entity.FundReport) ReportView {
	rows := make([]HoldingRow, 0, len(r.Holdings))
	for _, e := range r.Holdings {
		rows = append(rows, HoldingRow{
			Date:          FormatDate(e.Holding.Date),
			Cusip:         e.Holding.Cusip,
			Ticker:        e.Holding.Ticker,
			Description:   e.Holding.Description,
			Shares:        formatOptionalNumber(e.Holding.Shares),
			MarketValue:   formatOptionalNumber(e.Holding.MarketValue),
			HoldingsPct:   FormatPercent(e.Holding.HoldingsPct),
			PercentChange: e.PercentChangeText,
			Contribution:  FormatSignedPercent(e.Contribution),
			SignClass:     changeSignClass(e),
		})
	}
	return ReportView{
		Rows:           rows,
		Total:          FormatSignedPercent(r.TotalContribution),
		TotalSignClass: signClass(r.TotalContribution),
	}
}

// FormatDate renders an 8-digit numeric date as YYYY-MM-DD; any other
// value passes through unchanged.
func FormatDate(raw string) string {
	if len(raw) != 8 {
		return raw
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return raw
		}
	}
	return raw[0:4] + "-" + raw[4:6] + "-" + raw[6:8]
}

// FormatPercent renders a decimal fraction as an unsigned two-decimal
// percentage (0.0123 -> "1.23%").
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}

// FormatSignedPercent renders a decimal fraction as a signed
// two-decimal percentage (0.002 -> "+0.20%").
func FormatSignedPercent(fraction float64) string {
	return fmt.Sprintf("%+.2f%%", fraction*100)
}

// formatOptionalNumber renders a locale-grouped number, or an empty
// cell when the source cell was not numeric.
func formatOptionalNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return numberPrinter.Sprintf("%.0f", *v)
}

// changeSignClass colors a row by its contribution sign. Rows whose
// quote came back unavailable are always neutral.
func changeSignClass(e entity.EnrichedHolding) string {
	if e.PercentChangeText == quotes.NotAvailable {
		return SignNeutral
	}
	return signClass(e.Contribution)
}

func signClass(v float64) string {
	switch {
	case v > 0:
		return SignPositive
	case v < 0:
		return SignNegative
	default:
		return SignNeutral
	}
}
