package mockdata

import (
	"context"
	"time"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

// BurnoutStore fabricates a per-day burnout-risk series for a date range.
// The real backend computes this from cross-domain data; the mock draws
// values in the 30-70 band.
type BurnoutStore struct {
	sim *Simulator
}

func NewBurnoutStore(sim *Simulator) *BurnoutStore {
	return &BurnoutStore{sim: sim}
}

func (s *BurnoutStore) Statistics(ctx context.Context, start, end string) (internal.BurnoutRiskStats, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.BurnoutRiskStats{}, err
	}

	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return internal.BurnoutRiskStats{}, err
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return internal.BurnoutRiskStats{}, err
	}

	var stats internal.BurnoutRiskStats
	sum := 0
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		risk := s.sim.Intn(40) + 30
		sum += risk
		stats.Statistics = append(stats.Statistics, internal.BurnoutRiskPoint{
			Date:      d.Format("2006-01-02"),
			RiskLevel: risk,
		})
	}
	if len(stats.Statistics) > 0 {
		stats.AvgRisk = float64(sum) / float64(len(stats.Statistics))
	}
	return stats, nil
}
