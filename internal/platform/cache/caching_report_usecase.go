// Package cache provides caching decorators for usecase interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"fund_backend/internal/feature/holdings/domain/entity"
	"fund_backend/internal/feature/holdings/transport/handler"
)

// CachingReportUsecase decorates a ReportUsecase with Redis caching.
// One pipeline run costs a spreadsheet download plus one quote fetch
// per holding, so the computed report is held for a short TTL matching
// the page's Cache-Control horizon.
type CachingReportUsecase struct {
	inner     handler.ReportUsecase
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingReportUsecase decorates a ReportUsecase with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "report". A nil Redis client disables caching entirely.
func NewCachingReportUsecase(rdb *redis.Client, ttl time.Duration, inner handler.ReportUsecase, namespace string) *CachingReportUsecase {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "report"
	}
	return &CachingReportUsecase{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// BuildReport returns the cached report when present, otherwise runs
// the pipeline and stores the result. Cache writes are best effort: a
// Redis failure never fails the request.
func (c *CachingReportUsecase) BuildReport(ctx context.Context) (entity.FundReport, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.BuildReport(ctx)
	}

	key := c.cacheKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.FundReport
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the pipeline
	out, err := c.inner.BuildReport(ctx)
	if err != nil {
		return entity.FundReport{}, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey is constant per namespace: the report has no parameters.
func (c *CachingReportUsecase) cacheKey() string {
	return c.namespace + ":latest"
}
