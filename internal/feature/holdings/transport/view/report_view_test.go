package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fund_backend/internal/feature/holdings/domain/entity"
)

func f64(v float64) *float64 { return &v }

// TestFormatDate verifies the 8-digit date rendering and passthrough.
func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected string
	}{
		{"20240115", "2024-01-15"},
		{"19991231", "1999-12-31"},
		{"2024-01-15", "2024-01-15"}, // already formatted, passes through
		{"2024011", "2024011"},       // 7 digits
		{"202401155", "202401155"},   // 9 digits
		{"2024011x", "2024011x"},     // non-digit
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.raw); got != tt.expected {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

// TestFormatPercent verifies decimal-fraction to display rendering.
func TestFormatPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.23%", FormatPercent(0.0123))
	assert.Equal(t, "0.00%", FormatPercent(0))
	assert.Equal(t, "100.00%", FormatPercent(1))
}

// TestFormatSignedPercent verifies signed rendering for changes and
// contributions.
func TestFormatSignedPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+0.20%", FormatSignedPercent(0.002))
	assert.Equal(t, "-0.54%", FormatSignedPercent(-0.0054))
	assert.Equal(t, "+0.00%", FormatSignedPercent(0))
}

// TestNewReportView verifies row formatting, sign classes, and the
// total row.
func TestNewReportView(t *testing.T) {
	t.Parallel()

	report := entity.FundReport{
		Holdings: []entity.EnrichedHolding{
			{
				Holding: entity.HoldingRecord{
					Date:        "20240115",
					Cusip:       "91282CJL6",
					Ticker:      "CLZ5",
					Description: "WTI CRUDE OIL Dec25",
					Shares:      f64(1200),
					MarketValue: f64(1254300.75),
					HoldingsPct: 0.0123,
				},
				PercentChangeText:    "+2.00%",
				PercentChangeDecimal: 0.02,
				Contribution:         0.000246,
			},
			{
				Holding: entity.HoldingRecord{
					Date:        "20240115",
					Ticker:      "XYZ",
					HoldingsPct: 0.05,
				},
				PercentChangeText: "N/A",
			},
			{
				Holding: entity.HoldingRecord{
					Date:        "20240115",
					Ticker:      "GCG6",
					HoldingsPct: 0.10,
				},
				PercentChangeText:    "-0.54%",
				PercentChangeDecimal: -0.0054,
				Contribution:         -0.00054,
			},
		},
		TotalContribution: -0.000294,
	}

	v := NewReportView(report)

	require.Len(t, v.Rows, 3)

	first := v.Rows[0]
	assert.Equal(t, "2024-01-15", first.Date)
	assert.Equal(t, "CLZ5", first.Ticker)
	assert.Equal(t, "1,200", first.Shares)
	assert.Equal(t, "1,254,301", first.MarketValue, "market value is locale-grouped and rounded")
	assert.Equal(t, "1.23%", first.HoldingsPct)
	assert.Equal(t, "+2.00%", first.PercentChange)
	assert.Equal(t, "+0.02%", first.Contribution)
	assert.Equal(t, SignPositive, first.SignClass)

	second := v.Rows[1]
	assert.Equal(t, "N/A", second.PercentChange)
	assert.Equal(t, "+0.00%", second.Contribution)
	assert.Equal(t, SignNeutral, second.SignClass, "unavailable quotes are never colored")
	assert.Equal(t, "", second.Shares, "nil numeric cells render empty")
	assert.Equal(t, "", second.MarketValue)

	third := v.Rows[2]
	assert.Equal(t, SignNegative, third.SignClass)
	assert.Equal(t, "-0.05%", third.Contribution)

	assert.Equal(t, "-0.03%", v.Total)
	assert.Equal(t, SignNegative, v.TotalSignClass)
}

// TestNewReportView_Empty verifies the degenerate report.
func TestNewReportView_Empty(t *testing.T) {
	t.Parallel()

	v := NewReportView(entity.FundReport{})

	assert.Empty(t, v.Rows)
	assert.Equal(t, "+0.00%", v.Total)
	assert.Equal(t, SignNeutral, v.TotalSignClass)
}
