package service

import (
	"context"
	"time"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/provider"
)

// Narrow read-only views over the domain providers. The dashboard needs
// statistics and nothing else, so it depends on exactly that.
type sleepStats interface {
	Statistics(ctx context.Context, start, end string) (internal.SleepStatistics, error)
}

type stressStats interface {
	Statistics(ctx context.Context, start, end string) (internal.StressStatistics, error)
}

type workStats interface {
	Statistics(ctx context.Context, start, end string) (internal.WorkStatistics, error)
}

type recommendationReader interface {
	UserList(ctx context.Context, status string, page, pageSize int) (internal.Page[internal.UserRecommendation], error)
}

// DashboardService composes the per-domain statistics into the single
// summary the dashboard screen renders. It holds no state of its own.
type DashboardService struct {
	sleep   sleepStats
	stress  stressStats
	work    workStats
	recs    recommendationReader
	burnout provider.BurnoutProvider
	logger  internal.Logger
	now     func() time.Time
}

func NewDashboardService(set *provider.Set, logger internal.Logger) *DashboardService {
	return &DashboardService{
		sleep:   set.Sleep,
		stress:  set.Stress,
		work:    set.Work,
		recs:    set.Recommendations,
		burnout: set.Burnout,
		logger:  logger,
		now:     time.Now,
	}
}

const dashboardWindowDays = 7

// Summary aggregates the last seven days against the seven before them.
// A domain that fails to load degrades to its zero summary rather than
// failing the whole dashboard.
func (s *DashboardService) Summary(ctx context.Context) (internal.DashboardSummary, error) {
	end := s.now().UTC()
	start := end.AddDate(0, 0, -dashboardWindowDays)
	prevStart := start.AddDate(0, 0, -dashboardWindowDays)

	cur := window{start: isoDate(start), end: isoDate(end)}
	prev := window{start: isoDate(prevStart), end: isoDate(start.AddDate(0, 0, -1))}

	var out internal.DashboardSummary

	if sleep, prevSleep, err := s.sleepWindows(ctx, cur, prev); err != nil {
		s.logger.Warnf("dashboard: sleep summary unavailable: %v", err)
	} else {
		out.Sleep = internal.DashboardSleepSummary{
			AverageDuration: sleep.AvgDuration,
			AverageQuality:  sleep.AvgQuality,
			TotalRecords:    sleep.TotalRecords,
			Trend:           trend(sleep.AvgDuration, prevSleep.AvgDuration),
		}
	}

	if stress, prevStress, err := s.stressWindows(ctx, cur, prev); err != nil {
		s.logger.Warnf("dashboard: stress summary unavailable: %v", err)
	} else {
		out.Stress = internal.DashboardStressSummary{
			AverageLevel: stress.AvgLevel,
			TotalRecords: stress.TotalRecords,
			Trend:        trend(stress.AvgLevel, prevStress.AvgLevel),
		}
	}

	if work, prevWork, err := s.workWindows(ctx, cur, prev); err != nil {
		s.logger.Warnf("dashboard: work summary unavailable: %v", err)
	} else {
		out.Work = internal.DashboardWorkSummary{
			AverageDuration:     work.AvgDuration,
			AverageProductivity: work.AvgProductivity,
			TotalRecords:        work.TotalRecords,
			Trend:               trend(work.AvgProductivity, prevWork.AvgProductivity),
		}
	}

	if risk, err := s.burnoutSummary(ctx, cur, prev); err != nil {
		s.logger.Warnf("dashboard: burnout summary unavailable: %v", err)
	} else {
		out.BurnoutRisk = risk
	}

	if recs, err := s.recommendationSummary(ctx); err != nil {
		s.logger.Warnf("dashboard: recommendations unavailable: %v", err)
	} else {
		out.Recommendations = recs
	}

	return out, nil
}

type window struct {
	start, end string
}

func (s *DashboardService) sleepWindows(ctx context.Context, cur, prev window) (internal.SleepStatistics, internal.SleepStatistics, error) {
	current, err := s.sleep.Statistics(ctx, cur.start, cur.end)
	if err != nil {
		return internal.SleepStatistics{}, internal.SleepStatistics{}, err
	}
	previous, err := s.sleep.Statistics(ctx, prev.start, prev.end)
	if err != nil {
		return internal.SleepStatistics{}, internal.SleepStatistics{}, err
	}
	return current, previous, nil
}

func (s *DashboardService) stressWindows(ctx context.Context, cur, prev window) (internal.StressStatistics, internal.StressStatistics, error) {
	current, err := s.stress.Statistics(ctx, cur.start, cur.end)
	if err != nil {
		return internal.StressStatistics{}, internal.StressStatistics{}, err
	}
	previous, err := s.stress.Statistics(ctx, prev.start, prev.end)
	if err != nil {
		return internal.StressStatistics{}, internal.StressStatistics{}, err
	}
	return current, previous, nil
}

func (s *DashboardService) workWindows(ctx context.Context, cur, prev window) (internal.WorkStatistics, internal.WorkStatistics, error) {
	current, err := s.work.Statistics(ctx, cur.start, cur.end)
	if err != nil {
		return internal.WorkStatistics{}, internal.WorkStatistics{}, err
	}
	previous, err := s.work.Statistics(ctx, prev.start, prev.end)
	if err != nil {
		return internal.WorkStatistics{}, internal.WorkStatistics{}, err
	}
	return current, previous, nil
}

func (s *DashboardService) burnoutSummary(ctx context.Context, cur, prev window) (internal.DashboardBurnoutRisk, error) {
	current, err := s.burnout.Statistics(ctx, cur.start, cur.end)
	if err != nil {
		return internal.DashboardBurnoutRisk{}, err
	}
	previous, err := s.burnout.Statistics(ctx, prev.start, prev.end)
	if err != nil {
		return internal.DashboardBurnoutRisk{}, err
	}
	risk := internal.DashboardBurnoutRisk{
		Current:  int(current.AvgRisk + 0.5),
		Previous: int(previous.AvgRisk + 0.5),
	}
	risk.Trend = trend(float64(risk.Current), float64(risk.Previous))
	return risk, nil
}

const dashboardLatestRecommendations = 3

func (s *DashboardService) recommendationSummary(ctx context.Context) (internal.DashboardRecommendations, error) {
	page, err := s.recs.UserList(ctx, "", 1, 100)
	if err != nil {
		return internal.DashboardRecommendations{}, err
	}
	out := internal.DashboardRecommendations{
		Latest: []internal.DashboardRecommendation{},
	}
	for _, r := range page.Results {
		switch r.Status {
		case internal.StatusPending:
			out.Pending++
		case internal.StatusAccepted:
			out.Accepted++
		case internal.StatusCompleted:
			out.Completed++
		}
		if len(out.Latest) < dashboardLatestRecommendations {
			out.Latest = append(out.Latest, internal.DashboardRecommendation{
				ID:       r.ID,
				Title:    r.Recommendation.Title,
				Category: r.Recommendation.Category,
				Status:   r.Status,
			})
		}
	}
	return out, nil
}

// BurnoutStatistics exposes the raw per-day risk series for charting.
func (s *DashboardService) BurnoutStatistics(ctx context.Context, start, end string) (internal.BurnoutRiskStats, error) {
	if err := validateDateRange(start, end); err != nil {
		return internal.BurnoutRiskStats{}, err
	}
	return s.burnout.Statistics(ctx, start, end)
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// trend labels the direction of change, tolerating small noise around equal.
func trend(current, previous float64) string {
	const epsilon = 0.05
	switch {
	case current-previous > epsilon:
		return "up"
	case previous-current > epsilon:
		return "down"
	default:
		return "stable"
	}
}
