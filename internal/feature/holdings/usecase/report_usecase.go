package usecase

import (
	"context"

	"fund_backend/internal/feature/holdings/domain/entity"
)

// SheetSource abstracts the holdings spreadsheet collaborator.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SheetSource interface {
	// FetchGrid returns the spreadsheet as rows of cell strings.
	FetchGrid(ctx context.Context) ([][]string, error)
}

// ChangeFetcher returns one percent-change display string per ticker,
// positionally aligned with its input. It never fails: unavailable
// quotes come back as the N/A sentinel.
type ChangeFetcher interface {
	FetchChanges(ctx context.Context, tickers []string) []string
}

// ReportUsecase runs the whole pipeline: extract holdings from the
// sheet, fetch a change per holding, compute contributions, and rank.
type ReportUsecase struct {
	source SheetSource
	quotes ChangeFetcher
}

// NewReportUsecase creates a ReportUsecase over the given collaborators.
func NewReportUsecase(source SheetSource, quotes ChangeFetcher) *ReportUsecase {
	return &ReportUsecase{source: source, quotes: quotes}
}

// BuildReport executes one pipeline run. Each stage takes explicit
// inputs and returns explicit outputs; no state is shared across
// requests. Only the sheet fetch can fail — every quote-level problem
// is absorbed into a zero-contribution holding.
func (u *ReportUsecase) BuildReport(ctx context.Context) (entity.FundReport, error) {
	grid, err := u.source.FetchGrid(ctx)
	if err != nil {
		return entity.FundReport{}, err
	}

	holdings := ExtractHoldings(grid)

	// One fetch per holding row: duplicate tickers are looked up
	// independently and keep independent outcomes.
	tickers := make([]string, len(holdings))
	for i, h := range holdings {
		tickers[i] = h.Ticker
	}
	changes := u.quotes.FetchChanges(ctx, tickers)

	return BuildReport(holdings, changes), nil
}
