package mockdata

import (
	"context"
	"sync"
	"time"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

// SleepStore holds the sleep-record fixtures, newest first.
type SleepStore struct {
	sim *Simulator

	mu      sync.RWMutex
	records []internal.SleepRecord
}

func NewSleepStore(sim *Simulator) *SleepStore {
	return &SleepStore{sim: sim, records: seedSleepRecords()}
}

func seedSleepRecords() []internal.SleepRecord {
	return []internal.SleepRecord{
		{ID: 1, Date: "2023-05-01", DurationHours: 7.5, Quality: 8, Notes: "Good sleep", CreatedAt: mustTime("2023-05-01T08:00:00Z")},
		{ID: 2, Date: "2023-05-02", DurationHours: 6.2, Quality: 6, Notes: "Hard to fall asleep", CreatedAt: mustTime("2023-05-02T07:50:00Z")},
		{ID: 3, Date: "2023-05-03", DurationHours: 8.0, Quality: 9, Notes: "Great deep sleep", CreatedAt: mustTime("2023-05-03T08:10:00Z")},
		{ID: 4, Date: "2023-05-04", DurationHours: 5.5, Quality: 4, Notes: "Woke up several times", CreatedAt: mustTime("2023-05-04T06:30:00Z")},
		{ID: 5, Date: "2023-05-05", DurationHours: 7.0, Quality: 7, Notes: "Normal sleep", CreatedAt: mustTime("2023-05-05T07:45:00Z")},
		{ID: 6, Date: "2023-05-06", DurationHours: 7.8, Quality: 8, Notes: "Quiet night", CreatedAt: mustTime("2023-05-06T08:15:00Z")},
		{ID: 7, Date: "2023-05-07", DurationHours: 6.5, Quality: 6, Notes: "Noisy neighbors", CreatedAt: mustTime("2023-05-07T07:20:00Z")},
		{ID: 8, Date: "2023-05-08", DurationHours: 7.2, Quality: 7, Notes: "Usual sleep", CreatedAt: mustTime("2023-05-08T07:50:00Z")},
		{ID: 9, Date: "2023-05-09", DurationHours: 8.5, Quality: 9, Notes: "Very good sleep", CreatedAt: mustTime("2023-05-09T08:30:00Z")},
		{ID: 10, Date: "2023-05-10", DurationHours: 6.0, Quality: 5, Notes: "Work stress got to me", CreatedAt: mustTime("2023-05-10T07:00:00Z")},
	}
}

func (s *SleepStore) List(ctx context.Context, page, pageSize int) (internal.Page[internal.SleepRecord], error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.Page[internal.SleepRecord]{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.records, page, pageSize, "/sleep-data/"), nil
}

func (s *SleepStore) Get(ctx context.Context, id int) (internal.SleepRecord, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.SleepRecord{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return internal.SleepRecord{}, &internal.NotFoundError{Resource: "sleep record", ID: id}
}

func (s *SleepStore) Create(ctx context.Context, rec internal.SleepRecord) (internal.SleepRecord, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.SleepRecord{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = nextID(s.records, func(r internal.SleepRecord) int { return r.ID })
	rec.CreatedAt = time.Now().UTC()
	s.records = append([]internal.SleepRecord{rec}, s.records...)
	return rec, nil
}

func (s *SleepStore) Update(ctx context.Context, id int, patch internal.SleepRecordUpdate) (internal.SleepRecord, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.SleepRecord{}, err
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
		if patch.Quality != nil {
			s.records[i].Quality = *patch.Quality
		}
		if patch.Notes != nil {
			s.records[i].Notes = *patch.Notes
		}
		return s.records[i], nil
	}
	return internal.SleepRecord{}, &internal.NotFoundError{Resource: "sleep record", ID: id}
}

func (s *SleepStore) Delete(ctx context.Context, id int) error {
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
	return &internal.NotFoundError{Resource: "sleep record", ID: id}
}

// Statistics averages duration and quality over the records whose date lies
// in [start, end] inclusive. An empty filtered set yields all-zero averages.
func (s *SleepStore) Statistics(ctx context.Context, start, end string) (internal.SleepStatistics, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.SleepStatistics{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		points      []internal.SleepStatPoint
		sumDuration float64
		sumQuality  float64
	)
	for _, rec := range s.records {
		if !inRange(rec.Date, start, end) {
			continue
		}
		sumDuration += rec.DurationHours
		sumQuality += float64(rec.Quality)
		points = append(points, internal.SleepStatPoint{
			Date:          rec.Date,
			DurationHours: rec.DurationHours,
			Quality:       rec.Quality,
		})
	}

	stats := internal.SleepStatistics{
		TotalRecords: len(points),
		Statistics:   points,
	}
	if len(points) > 0 {
		stats.AvgDuration = sumDuration / float64(len(points))
		stats.AvgQuality = sumQuality / float64(len(points))
	}
	return stats, nil
}
