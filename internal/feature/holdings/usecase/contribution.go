package usecase

import (
	"sort"
	"strconv"
	"strings"

	"fund_backend/internal/feature/holdings/domain/entity"
	quotes "fund_backend/internal/feature/quotes/usecase"
)

// Enrich combines one holding with its percent-change display string.
// "N/A", empty, or unparseable change text yields a zero change and a
// zero contribution; the holding itself is always kept.
func Enrich(h entity.HoldingRecord, changeText string) entity.EnrichedHolding {
	e := entity.EnrichedHolding{
		Holding:           h,
		PercentChangeText: changeText,
	}
	if changeText == "" {
		e.PercentChangeText = quotes.NotAvailable
	}

	decimal, ok := parsePercentText(e.PercentChangeText)
	if !ok {
		return e
	}

	e.PercentChangeDecimal = decimal
	e.Contribution = h.HoldingsPct * decimal
	return e
}

// BuildReport enriches every holding with its change (changes is
// positional, aligned with holdings), sorts by contribution descending,
// and sums the fund-level total.
//
// The sort is stable: equal contributions keep their source order.
// Holdings with an unavailable change contribute exactly 0 but remain
// part of the report and the total.
func BuildReport(holdings []entity.HoldingRecord, changes []string) entity.FundReport {
	enriched := make([]entity.EnrichedHolding, 0, len(holdings))
	total := 0.0
	for i, h := range holdings {
		changeText := ""
		if i < len(changes) {
			changeText = changes[i]
		}
		e := Enrich(h, changeText)
		enriched = append(enriched, e)
		total += e.Contribution
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].Contribution > enriched[j].Contribution
	})

	return entity.FundReport{Holdings: enriched, TotalContribution: total}
}

// parsePercentText parses a display string like "+2.00%" into a decimal
// fraction (0.02). The second return is false for the N/A sentinel or
// any non-numeric text.
func parsePercentText(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" || s == quotes.NotAvailable {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v / 100, true
}
