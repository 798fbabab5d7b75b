package mockdata

import (
	"context"
	"sync"
	"time"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

// RecommendationStore holds the immutable recommendation catalog and the
// per-user assignments with their completion workflow.
type RecommendationStore struct {
	sim *Simulator

	mu       sync.RWMutex
	catalog  []internal.Recommendation
	userRecs []internal.UserRecommendation
}

func NewRecommendationStore(sim *Simulator) *RecommendationStore {
	catalog := seedCatalog()
	return &RecommendationStore{
		sim:      sim,
		catalog:  catalog,
		userRecs: seedUserRecommendations(catalog),
	}
}

var recommendationTypes = []internal.RecommendationType{
	{ID: 1, Name: "Physical activity", Icon: "fitness"},
	{ID: 2, Name: "Mental health", Icon: "mind"},
	{ID: 3, Name: "Sleep schedule", Icon: "sleep"},
	{ID: 4, Name: "Work habits", Icon: "work"},
	{ID: 5, Name: "Social activity", Icon: "social"},
}

func seedCatalog() []internal.Recommendation {
	return []internal.Recommendation{
		{ID: 1, Title: "Stand up and stretch", Description: "Spend 5 minutes on light exercises to loosen up after sitting for a long time.", Type: recommendationTypes[0], Category: internal.CategoryGeneral, DurationMinutes: 5, IsQuick: true},
		{ID: 2, Title: "Meditate before bed", Description: "Spend 10 minutes meditating before sleep to calm your mind and prepare for quality rest.", Type: recommendationTypes[1], Category: internal.CategoryStress, DurationMinutes: 10, IsQuick: true},
		{ID: 3, Title: "Set a sleep schedule", Description: "Go to bed and wake up at the same time, even on weekends, to stabilize your sleep rhythm.", Type: recommendationTypes[2], Category: internal.CategorySleep, DurationMinutes: 0, IsQuick: false},
		{ID: 4, Title: "Try the Pomodoro technique", Description: "Work for 25 minutes, rest for 5. After four cycles take a longer 15-30 minute break.", Type: recommendationTypes[3], Category: internal.CategoryWork, DurationMinutes: 30, IsQuick: false},
		{ID: 5, Title: "Lunch with colleagues", Description: "Plan a lunch with colleagues at least once a week to keep healthy social ties at work.", Type: recommendationTypes[4], Category: internal.CategoryGeneral, DurationMinutes: 60, IsQuick: false},
		{ID: 6, Title: "Take a short nap", Description: "If you feel tired mid-day, a short 15-20 minute nap restores energy.", Type: recommendationTypes[2], Category: internal.CategorySleep, DurationMinutes: 20, IsQuick: true},
		{ID: 7, Title: "Prioritize your tasks", Description: "Start each day by picking the 3-5 most important tasks to finish.", Type: recommendationTypes[3], Category: internal.CategoryWork, DurationMinutes: 10, IsQuick: true},
		{ID: 8, Title: "A minute of gratitude", Description: "Take a minute at the start or end of the day to write down three things you are grateful for.", Type: recommendationTypes[1], Category: internal.CategoryStress, DurationMinutes: 1, IsQuick: true},
		{ID: 9, Title: "Work-free weekends", Description: "Dedicate at least one day a week to rest without checking work email or messages.", Type: recommendationTypes[3], Category: internal.CategoryWork, DurationMinutes: 0, IsQuick: false},
		{ID: 10, Title: "Walk outside", Description: "Spend at least 30 minutes a day walking outdoors, whatever the weather.", Type: recommendationTypes[0], Category: internal.CategoryGeneral, DurationMinutes: 30, IsQuick: false},
	}
}

func seedUserRecommendations(catalog []internal.Recommendation) []internal.UserRecommendation {
	completed1 := mustTime("2023-05-01T15:30:00Z")
	completed5 := mustTime("2023-04-28T13:20:00Z")
	completed8 := mustTime("2023-05-05T20:10:00Z")
	return []internal.UserRecommendation{
		{ID: 1, User: 1, Recommendation: catalog[0], Status: internal.StatusCompleted, UserFeedback: "Helped me unwind", UserRating: 5, CreatedAt: mustTime("2023-05-01T10:00:00Z"), CompletedAt: &completed1},
		{ID: 2, User: 1, Recommendation: catalog[1], Status: internal.StatusAccepted, CreatedAt: mustTime("2023-05-02T09:00:00Z")},
		{ID: 3, User: 1, Recommendation: catalog[2], Status: internal.StatusPending, CreatedAt: mustTime("2023-05-03T11:15:00Z")},
		{ID: 4, User: 1, Recommendation: catalog[3], Status: internal.StatusRejected, Reason: "Too many urgent tasks", CreatedAt: mustTime("2023-05-04T08:45:00Z")},
		{ID: 5, User: 1, Recommendation: catalog[4], Status: internal.StatusCompleted, UserFeedback: "Nice chance to meet new colleagues", UserRating: 4, CreatedAt: mustTime("2023-04-25T10:30:00Z"), CompletedAt: &completed5},
		{ID: 6, User: 1, Recommendation: catalog[5], Status: internal.StatusPending, CreatedAt: mustTime("2023-05-05T14:00:00Z")},
		{ID: 7, User: 1, Recommendation: catalog[6], Status: internal.StatusAccepted, CreatedAt: mustTime("2023-05-06T08:30:00Z")},
		{ID: 8, User: 1, Recommendation: catalog[7], Status: internal.StatusCompleted, UserFeedback: "Simple but effective", UserRating: 5, CreatedAt: mustTime("2023-05-01T08:00:00Z"), CompletedAt: &completed8},
	}
}

// Catalog lists catalog entries, optionally filtered by category and the
// quick flag. The catalog endpoint is not paginated.
func (s *RecommendationStore) Catalog(ctx context.Context, category string, isQuick *bool) (internal.Page[internal.Recommendation], error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.Page[internal.Recommendation]{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []internal.Recommendation
	for _, rec := range s.catalog {
		if category != "" && rec.Category != category {
			continue
		}
		if isQuick != nil && rec.IsQuick != *isQuick {
			continue
		}
		filtered = append(filtered, rec)
	}
	return internal.Page[internal.Recommendation]{Count: len(filtered), Results: filtered}, nil
}

func (s *RecommendationStore) Categories(ctx context.Context) ([]internal.RecommendationType, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return nil, err
	}
	out := make([]internal.RecommendationType, len(recommendationTypes))
	copy(out, recommendationTypes)
	return out, nil
}

func (s *RecommendationStore) UserList(ctx context.Context, status string, page, pageSize int) (internal.Page[internal.UserRecommendation], error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.Page[internal.UserRecommendation]{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.userRecs
	if status != "" {
		filtered = nil
		for _, ur := range s.userRecs {
			if ur.Status == status {
				filtered = append(filtered, ur)
			}
		}
	}
	return paginate(filtered, page, pageSize, "/user-recommendations/"), nil
}

func (s *RecommendationStore) UserGet(ctx context.Context, id int) (internal.UserRecommendation, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.UserRecommendation{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ur := range s.userRecs {
		if ur.ID == id {
			return ur, nil
		}
	}
	return internal.UserRecommendation{}, &internal.NotFoundError{Resource: "user recommendation", ID: id}
}

// UpdateStatus changes the workflow status. completed_at is stamped exactly
// once, on a transition into completed from a non-completed status.
func (s *RecommendationStore) UpdateStatus(ctx context.Context, id int, status, feedback string, rating int) (internal.UserRecommendation, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.UserRecommendation{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.userRecs {
		if s.userRecs[i].ID != id {
			continue
		}
		if status == internal.StatusCompleted && s.userRecs[i].Status != internal.StatusCompleted {
			now := time.Now().UTC()
			s.userRecs[i].CompletedAt = &now
		}
		s.userRecs[i].Status = status
		if feedback != "" {
			s.userRecs[i].UserFeedback = feedback
		}
		if rating != 0 {
			s.userRecs[i].UserRating = rating
		}
		return s.userRecs[i], nil
	}
	return internal.UserRecommendation{}, &internal.NotFoundError{Resource: "user recommendation", ID: id}
}

// RequestNew assigns a random 1-3 catalog recommendations not yet held by
// the user, pending, with fresh sequential ids. Returns exactly the new
// entries; an empty slice when the catalog is exhausted.
func (s *RecommendationStore) RequestNew(ctx context.Context) ([]internal.UserRecommendation, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	assigned := make(map[int]bool, len(s.userRecs))
	for _, ur := range s.userRecs {
		assigned[ur.Recommendation.ID] = true
	}
	var available []internal.Recommendation
	for _, rec := range s.catalog {
		if !assigned[rec.ID] {
			available = append(available, rec)
		}
	}
	if len(available) == 0 {
		return []internal.UserRecommendation{}, nil
	}

	count := s.sim.Intn(3) + 1
	if count > len(available) {
		count = len(available)
	}
	// Partial Fisher-Yates shuffle for the selection.
	for i := 0; i < count; i++ {
		j := i + s.sim.Intn(len(available)-i)
		available[i], available[j] = available[j], available[i]
	}

	baseID := nextID(s.userRecs, func(ur internal.UserRecommendation) int { return ur.ID })
	created := make([]internal.UserRecommendation, 0, count)
	for i := 0; i < count; i++ {
		created = append(created, internal.UserRecommendation{
			ID:             baseID + i,
			User:           1,
			Recommendation: available[i],
			Status:         internal.StatusPending,
			CreatedAt:      time.Now().UTC(),
		})
	}
	s.userRecs = append(s.userRecs, created...)
	return created, nil
}
