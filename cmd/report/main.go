package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fund_backend/internal/feature/holdings/adapters/sheet"
	"fund_backend/internal/feature/holdings/transport/view"
	holdingsusecase "fund_backend/internal/feature/holdings/usecase"
	"fund_backend/internal/feature/quotes/adapters/barchart"
	"fund_backend/internal/feature/quotes/adapters/yahoo"
	quotesusecase "fund_backend/internal/feature/quotes/usecase"
	platformhttp "fund_backend/internal/platform/http"
)

// One-shot variant of the report pipeline: runs once and prints the
// ranked holdings to stdout. Useful for checking the feed without
// standing up the HTTP server.
func main() {
	sheetCfg := sheet.LoadConfig()
	if sheetCfg.URL == "" {
		log.Fatal("HOLDINGS_SHEET_URL is not set")
	}
	source := sheet.NewSource(sheetCfg, platformhttp.NewHTTPClient(sheetCfg.Timeout))

	yahooCfg := yahoo.LoadConfig()
	barchartCfg := barchart.LoadConfig()
	fetcher := quotesusecase.NewQuoteFetcher(
		yahoo.NewClient(yahooCfg, platformhttp.NewHTTPClient(yahooCfg.Timeout)),
		barchart.NewClient(barchartCfg, platformhttp.NewHTTPClient(barchartCfg.Timeout)),
		nil,
		quotesusecase.DefaultMaxConcurrent,
	)
	uc := holdingsusecase.NewReportUsecase(source, fetcher)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	report, err := uc.BuildReport(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for _, row := range view.NewReportView(report).Rows {
		fmt.Printf("%-8s %-28s %8s %10s %10s\n",
			row.Ticker, row.Description, row.HoldingsPct, row.PercentChange, row.Contribution)
	}
	fmt.Printf("total contribution: %s\n", view.FormatSignedPercent(report.TotalContribution))
}
