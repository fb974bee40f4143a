package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fund_backend/internal/feature/holdings/domain/entity"
)

// mockReportUsecase is the inner pipeline mock.
type mockReportUsecase struct {
	buildReportFn func(ctx context.Context) (entity.FundReport, error)
	calls         int
}

func (m *mockReportUsecase) BuildReport(ctx context.Context) (entity.FundReport, error) {
	m.calls++
	if m.buildReportFn != nil {
		return m.buildReportFn(ctx)
	}
	return entity.FundReport{}, nil
}

func sampleReport() entity.FundReport {
	return entity.FundReport{
		Holdings: []entity.EnrichedHolding{
			{
				Holding:              entity.HoldingRecord{Ticker: "CLZ5", HoldingsPct: 0.10},
				PercentChangeText:    "+2.00%",
				PercentChangeDecimal: 0.02,
				Contribution:         0.002,
			},
		},
		TotalContribution: 0.002,
	}
}

// TestNewCachingReportUsecase_Defaults verifies the TTL and namespace
// fallbacks.
func TestNewCachingReportUsecase_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "report",
		},
		{
			name:              "custom values preserved",
			ttl:               time.Minute,
			namespace:         "custom",
			expectedTTL:       time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := NewCachingReportUsecase(nil, tt.ttl, &mockReportUsecase{}, tt.namespace)

			if uc.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, uc.ttl)
			}
			if uc.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, uc.namespace)
			}
		})
	}
}

// TestCachingReportUsecase_NilRedis verifies the cacheless passthrough.
func TestCachingReportUsecase_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockReportUsecase{
		buildReportFn: func(ctx context.Context) (entity.FundReport, error) { return sampleReport(), nil },
	}
	uc := NewCachingReportUsecase(nil, 5*time.Minute, inner, "report")

	report, err := uc.BuildReport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sampleReport(), report)
	assert.Equal(t, 1, inner.calls)
}

// TestCachingReportUsecase_CacheHit verifies that a cached report skips
// the pipeline entirely.
func TestCachingReportUsecase_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached, err := json.Marshal(sampleReport())
	require.NoError(t, err)
	mock.ExpectGet("report:latest").SetVal(string(cached))

	inner := &mockReportUsecase{}
	uc := NewCachingReportUsecase(rdb, 5*time.Minute, inner, "report")

	report, err := uc.BuildReport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sampleReport(), report)
	assert.Zero(t, inner.calls, "pipeline must not run on a cache hit")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingReportUsecase_CacheMiss verifies the run-then-store path.
func TestCachingReportUsecase_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected, err := json.Marshal(sampleReport())
	require.NoError(t, err)

	mock.ExpectGet("report:latest").RedisNil()
	mock.ExpectSet("report:latest", expected, 5*time.Minute).SetVal("OK")

	inner := &mockReportUsecase{
		buildReportFn: func(ctx context.Context) (entity.FundReport, error) { return sampleReport(), nil },
	}
	uc := NewCachingReportUsecase(rdb, 5*time.Minute, inner, "report")

	report, err := uc.BuildReport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sampleReport(), report)
	assert.Equal(t, 1, inner.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingReportUsecase_CorruptedEntry verifies that a broken cache
// entry is deleted and the pipeline recomputes.
func TestCachingReportUsecase_CorruptedEntry(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected, err := json.Marshal(sampleReport())
	require.NoError(t, err)

	mock.ExpectGet("report:latest").SetVal("{not json")
	mock.ExpectDel("report:latest").SetVal(1)
	mock.ExpectSet("report:latest", expected, 5*time.Minute).SetVal("OK")

	inner := &mockReportUsecase{
		buildReportFn: func(ctx context.Context) (entity.FundReport, error) { return sampleReport(), nil },
	}
	uc := NewCachingReportUsecase(rdb, 5*time.Minute, inner, "report")

	report, err := uc.BuildReport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sampleReport(), report)
	assert.Equal(t, 1, inner.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingReportUsecase_InnerError verifies that pipeline errors
// propagate and nothing is written to the cache.
func TestCachingReportUsecase_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("report:latest").RedisNil()

	errPipeline := errors.New("holdings sheet: upstream returned 404 Not Found")
	inner := &mockReportUsecase{
		buildReportFn: func(ctx context.Context) (entity.FundReport, error) {
			return entity.FundReport{}, errPipeline
		},
	}
	uc := NewCachingReportUsecase(rdb, 5*time.Minute, inner, "report")

	_, err := uc.BuildReport(context.Background())

	require.ErrorIs(t, err, errPipeline)
	assert.NoError(t, mock.ExpectationsWereMet())
}
