package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/config"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/provider"
)

func newTestDashboard(t *testing.T) *DashboardService {
	t.Helper()
	set := provider.NewMockSet(&config.Config{Env: "development"})
	svc := NewDashboardService(set, internal.NopLogger{})
	// Pin "today" just past the fixture window so both seven-day windows
	// contain fixture data.
	svc.now = func() time.Time {
		return time.Date(2023, 5, 11, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestDashboardSummary_AggregatesDomains(t *testing.T) {
	svc := newTestDashboard(t)

	out, err := svc.Summary(context.Background())
	assert.NoError(t, err)

	// Current window 2023-05-04..2023-05-11 holds seven sleep fixtures.
	assert.Equal(t, 7, out.Sleep.TotalRecords)
	assert.InDelta(t, (5.5+7.0+7.8+6.5+7.2+8.5+6.0)/7, out.Sleep.AverageDuration, 1e-9)
	// The previous window averages higher, so the trend points down.
	assert.Equal(t, "down", out.Sleep.Trend)

	assert.NotZero(t, out.Stress.TotalRecords)
	assert.Contains(t, []string{"up", "down", "stable"}, out.Stress.Trend)

	assert.NotZero(t, out.Work.TotalRecords)
	assert.Contains(t, []string{"up", "down", "stable"}, out.Work.Trend)

	// Mock burnout risk is always inside [30, 70).
	assert.GreaterOrEqual(t, out.BurnoutRisk.Current, 30)
	assert.Less(t, out.BurnoutRisk.Current, 70)
	assert.Contains(t, []string{"up", "down", "stable"}, out.BurnoutRisk.Trend)

	// Fixture assignments: 2 pending, 2 accepted, 3 completed.
	assert.Equal(t, 2, out.Recommendations.Pending)
	assert.Equal(t, 2, out.Recommendations.Accepted)
	assert.Equal(t, 3, out.Recommendations.Completed)
	assert.Len(t, out.Recommendations.Latest, 3)
}

func TestDashboardBurnoutStatistics_ValidatesRange(t *testing.T) {
	svc := newTestDashboard(t)
	ctx := context.Background()

	_, err := svc.BurnoutStatistics(ctx, "bogus", "2023-05-10")
	assert.Error(t, err)
	_, err = svc.BurnoutStatistics(ctx, "2023-05-10", "2023-05-01")
	assert.Error(t, err)

	stats, err := svc.BurnoutStatistics(ctx, "2023-05-01", "2023-05-07")
	assert.NoError(t, err)
	assert.Len(t, stats.Statistics, 7)
	assert.GreaterOrEqual(t, stats.AvgRisk, 30.0)
}

func TestTrendLabels(t *testing.T) {
	assert.Equal(t, "up", trend(7.5, 7.0))
	assert.Equal(t, "down", trend(6.5, 7.0))
	assert.Equal(t, "stable", trend(7.0, 7.0))
	assert.Equal(t, "stable", trend(7.01, 7.0))
}
