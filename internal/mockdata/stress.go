package mockdata

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

// StressStore holds stress-level fixtures. Stress entries are append-only:
// the backend exposes no update or delete for them.
type StressStore struct {
	sim *Simulator

	mu      sync.RWMutex
	records []internal.StressLevel
}

func NewStressStore(sim *Simulator) *StressStore {
	return &StressStore{sim: sim, records: seedStressLevels()}
}

func seedStressLevels() []internal.StressLevel {
	return []internal.StressLevel{
		{ID: 1, Level: 60, Notes: "Tough work day", CreatedAt: mustTime("2023-05-01T10:30:00Z")},
		{ID: 2, Level: 72, Notes: "Project deadline", CreatedAt: mustTime("2023-05-02T11:20:00Z")},
		{ID: 3, Level: 65, Notes: "Argument with a colleague", CreatedAt: mustTime("2023-05-03T09:45:00Z")},
		{ID: 4, Level: 58, Notes: "Difficult task", CreatedAt: mustTime("2023-05-04T14:15:00Z")},
		{ID: 5, Level: 50, Notes: "Ordinary day", CreatedAt: mustTime("2023-05-05T16:30:00Z")},
		{ID: 6, Level: 42, Notes: "Good rest", CreatedAt: mustTime("2023-05-06T13:00:00Z")},
		{ID: 7, Level: 48, Notes: "Too many meetings", CreatedAt: mustTime("2023-05-07T17:10:00Z")},
		{ID: 8, Level: 55, Notes: "Unexpected task", CreatedAt: mustTime("2023-05-08T12:35:00Z")},
		{ID: 9, Level: 63, Notes: "Slept badly", CreatedAt: mustTime("2023-05-09T08:20:00Z")},
		{ID: 10, Level: 45, Notes: "Pleasant atmosphere at work", CreatedAt: mustTime("2023-05-10T15:45:00Z")},
	}
}

func (s *StressStore) List(ctx context.Context, page, pageSize int) (internal.Page[internal.StressLevel], error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.Page[internal.StressLevel]{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.records, page, pageSize, "/stress/"), nil
}

func (s *StressStore) Get(ctx context.Context, id int) (internal.StressLevel, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.StressLevel{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return internal.StressLevel{}, &internal.NotFoundError{Resource: "stress level", ID: id}
}

func (s *StressStore) Create(ctx context.Context, rec internal.StressLevel) (internal.StressLevel, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.StressLevel{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = nextID(s.records, func(r internal.StressLevel) int { return r.ID })
	rec.CreatedAt = time.Now().UTC()
	s.records = append([]internal.StressLevel{rec}, s.records...)
	return rec, nil
}

// Statistics averages the level over entries whose created_at date lies in
// [start, end] inclusive, with a per-day breakdown.
func (s *StressStore) Statistics(ctx context.Context, start, end string) (internal.StressStatistics, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.StressStatistics{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	type daily struct {
		count int
		total int
	}
	days := make(map[string]*daily)
	sum := 0
	filtered := 0
	for _, rec := range s.records {
		date := rec.CreatedAt.Format("2006-01-02")
		if !inRange(date, start, end) {
			continue
		}
		filtered++
		sum += rec.Level
		if days[date] == nil {
			days[date] = &daily{}
		}
		days[date].count++
		days[date].total += rec.Level
	}

	stats := internal.StressStatistics{TotalRecords: filtered}
	if filtered > 0 {
		stats.AvgLevel = float64(sum) / float64(filtered)
	}
	for date, d := range days {
		stats.Statistics = append(stats.Statistics, internal.StressDailyStat{
			Date:     date,
			AvgLevel: float64(d.total) / float64(d.count),
			Count:    d.count,
		})
	}
	sort.Slice(stats.Statistics, func(i, j int) bool {
		return stats.Statistics[i].Date < stats.Statistics[j].Date
	})
	return stats, nil
}
