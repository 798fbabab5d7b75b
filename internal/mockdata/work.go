package mockdata

import (
	"context"
	"sync"
	"time"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

// WorkStore holds work-activity fixtures, newest first.
type WorkStore struct {
	sim *Simulator

	mu      sync.RWMutex
	records []internal.WorkActivity
}

func NewWorkStore(sim *Simulator) *WorkStore {
	return &WorkStore{sim: sim, records: seedWorkActivities()}
}

func seedWorkActivities() []internal.WorkActivity {
	return []internal.WorkActivity{
		{ID: 1, Date: "2023-05-01", DurationHours: 8.5, BreaksCount: 4, BreaksTotalMin: 45, Productivity: 85, Notes: "Productive day", CreatedAt: mustTime("2023-05-01T18:00:00Z")},
		{ID: 2, Date: "2023-05-02", DurationHours: 9.0, BreaksCount: 3, BreaksTotalMin: 30, Productivity: 80, Notes: "Lots of meetings", CreatedAt: mustTime("2023-05-02T19:10:00Z")},
		{ID: 3, Date: "2023-05-03", DurationHours: 8.0, BreaksCount: 5, BreaksTotalMin: 60, Productivity: 90, Notes: "Great focus", CreatedAt: mustTime("2023-05-03T18:30:00Z")},
		{ID: 4, Date: "2023-05-04", DurationHours: 10.5, BreaksCount: 2, BreaksTotalMin: 25, Productivity: 75, Notes: "Hard project, overtime", CreatedAt: mustTime("2023-05-04T20:45:00Z")},
		{ID: 5, Date: "2023-05-05", DurationHours: 7.5, BreaksCount: 4, BreaksTotalMin: 50, Productivity: 88, Notes: "Friday, shorter hours", CreatedAt: mustTime("2023-05-05T17:30:00Z")},
		{ID: 6, Date: "2023-05-08", DurationHours: 8.2, BreaksCount: 3, BreaksTotalMin: 35, Productivity: 82, Notes: "Monday, slow start", CreatedAt: mustTime("2023-05-08T18:15:00Z")},
		{ID: 7, Date: "2023-05-09", DurationHours: 9.5, BreaksCount: 4, BreaksTotalMin: 40, Productivity: 78, Notes: "Too many parallel tasks", CreatedAt: mustTime("2023-05-09T19:30:00Z")},
		{ID: 8, Date: "2023-05-10", DurationHours: 8.0, BreaksCount: 5, BreaksTotalMin: 55, Productivity: 85, Notes: "Normal work day", CreatedAt: mustTime("2023-05-10T18:00:00Z")},
	}
}

func (s *WorkStore) List(ctx context.Context, page, pageSize int) (internal.Page[internal.WorkActivity], error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.Page[internal.WorkActivity]{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.records, page, pageSize, "/work-activity/"), nil
}

func (s *WorkStore) Get(ctx context.Context, id int) (internal.WorkActivity, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.WorkActivity{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return internal.WorkActivity{}, &internal.NotFoundError{Resource: "work activity", ID: id}
}

func (s *WorkStore) Create(ctx context.Context, rec internal.WorkActivity) (internal.WorkActivity, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.WorkActivity{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = nextID(s.records, func(r internal.WorkActivity) int { return r.ID })
	rec.CreatedAt = time.Now().UTC()
	s.records = append([]internal.WorkActivity{rec}, s.records...)
	return rec, nil
}

func (s *WorkStore) Update(ctx context.Context, id int, patch internal.WorkActivityUpdate) (internal.WorkActivity, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.WorkActivity{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if patch.Date != nil {
			s.records[i].Date = *patch.Date
		}
		if patch.DurationHours != nil {
			s.records[i].DurationHours = *patch.DurationHours
		}
		if patch.BreaksCount != nil {
			s.records[i].BreaksCount = *patch.BreaksCount
		}
		if patch.BreaksTotalMin != nil {
			s.records[i].BreaksTotalMin = *patch.BreaksTotalMin
		}
		if patch.Productivity != nil {
			s.records[i].Productivity = *patch.Productivity
		}
		if patch.Notes != nil {
			s.records[i].Notes = *patch.Notes
		}
		return s.records[i], nil
	}
	return internal.WorkActivity{}, &internal.NotFoundError{Resource: "work activity", ID: id}
}

func (s *WorkStore) Delete(ctx context.Context, id int) error {
	if err := s.sim.Simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return &internal.NotFoundError{Resource: "work activity", ID: id}
}

func (s *WorkStore) Statistics(ctx context.Context, start, end string) (internal.WorkStatistics, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.WorkStatistics{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		points          []internal.WorkStatPoint
		sumDuration     float64
		sumProductivity float64
		sumBreaks       float64
		sumBreaksMin    float64
	)
	for _, rec := range s.records {
		if !inRange(rec.Date, start, end) {
			continue
		}
		sumDuration += rec.DurationHours
		sumProductivity += float64(rec.Productivity)
		sumBreaks += float64(rec.BreaksCount)
		sumBreaksMin += float64(rec.BreaksTotalMin)
		points = append(points, internal.WorkStatPoint{
			Date:          rec.Date,
			DurationHours: rec.DurationHours,
			Productivity:  rec.Productivity,
			BreaksCount:   rec.BreaksCount,
		})
	}

	stats := internal.WorkStatistics{
		TotalRecords: len(points),
		Statistics:   points,
	}
	if n := float64(len(points)); n > 0 {
		stats.AvgDuration = sumDuration / n
		stats.AvgProductivity = sumProductivity / n
		stats.AvgBreaksCount = sumBreaks / n
		stats.AvgBreaksMin = sumBreaksMin / n
	}
	return stats, nil
}
