package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"fund_backend/internal/app/router"
	"fund_backend/internal/feature/holdings/adapters/sheet"
	holdingshandler "fund_backend/internal/feature/holdings/transport/handler"
	holdingsusecase "fund_backend/internal/feature/holdings/usecase"
	"fund_backend/internal/feature/quotes/adapters/barchart"
	"fund_backend/internal/feature/quotes/adapters/yahoo"
	quotesusecase "fund_backend/internal/feature/quotes/usecase"
	"fund_backend/internal/platform/cache"
	platformhttp "fund_backend/internal/platform/http"
	infraredis "fund_backend/internal/platform/redis"
	"fund_backend/internal/shared/ratelimiter"
)

func main() {
	// Redis (optional: the service runs without the page cache)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without page cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Spreadsheet source
	sheetCfg := sheet.LoadConfig()
	if sheetCfg.URL == "" {
		log.Println("[WARN] HOLDINGS_SHEET_URL is not set. The report endpoint will fail until it is configured.")
	}
	source := sheet.NewSource(sheetCfg, platformhttp.NewHTTPClient(sheetCfg.Timeout))

	// Quote providers
	yahooCfg := yahoo.LoadConfig()
	barchartCfg := barchart.LoadConfig()
	yahooClient := yahoo.NewClient(yahooCfg, platformhttp.NewHTTPClient(yahooCfg.Timeout))
	barchartClient := barchart.NewClient(barchartCfg, platformhttp.NewHTTPClient(barchartCfg.Timeout))

	// Quote fetcher: capped concurrency plus a coarse per-minute cap so
	// a large holdings file cannot hammer the providers.
	limiter := ratelimiter.NewRateLimiter(120, time.Minute)
	fetcher := quotesusecase.NewQuoteFetcher(yahooClient, barchartClient, limiter, quotesusecase.DefaultMaxConcurrent)

	// Usecase, wrapped with the Redis page cache
	reportUC := holdingsusecase.NewReportUsecase(source, fetcher)
	cachedUC := cache.NewCachingReportUsecase(rdb, 5*time.Minute, reportUC, "report")

	// Handler and router
	reportH := holdingshandler.NewReportHandler(cachedUC)
	r := router.NewRouter(reportH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
