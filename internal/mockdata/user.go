package mockdata

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

// UserStore holds the single fixture profile and its activity history.
type UserStore struct {
	sim *Simulator

	mu         sync.RWMutex
	profile    internal.UserProfile
	activities []internal.UserActivity
}

func NewUserStore(sim *Simulator) *UserStore {
	return &UserStore{
		sim:        sim,
		profile:    seedProfile(),
		activities: seedActivities(),
	}
}

func seedProfile() internal.UserProfile {
	return internal.UserProfile{
		ID:               1,
		Email:            "user@example.com",
		Name:             "Alex Morgan",
		Age:              32,
		Gender:           "male",
		Occupation:       "Software engineer",
		WorkHoursPerDay:  8,
		SleepHoursPerDay: 7,
		Avatar:           "https://randomuser.me/api/portraits/men/85.jpg",
		Phone:            "+1 (555) 012-3456",
		Address:          "10 Pushkin St, apt 5",
		RegisteredAt:     mustTime("2023-01-15T10:30:00Z"),
		LastLoginAt:      mustTime("2023-05-10T08:45:00Z"),
		Notifications: internal.NotificationSettings{
			Email:           true,
			Push:            true,
			Recommendations: true,
			WeeklyReport:    false,
		},
		PrivacySettings: internal.PrivacySettings{
			ShareAnalytics: true,
			PublicProfile:  false,
		},
	}
}

func seedActivities() []internal.UserActivity {
	return []internal.UserActivity{
		{ID: 1, UserID: 1, Action: "Logged in", IPAddress: "192.168.1.1", Device: "Chrome on macOS", Timestamp: mustTime("2023-05-10T08:45:00Z")},
		{ID: 2, UserID: 1, Action: "Updated profile", IPAddress: "192.168.1.1", Device: "Chrome on macOS", Timestamp: mustTime("2023-05-05T14:20:00Z")},
		{ID: 3, UserID: 1, Action: "Logged in", IPAddress: "192.168.1.100", Device: "Safari on iOS", Timestamp: mustTime("2023-05-03T18:30:00Z")},
		{ID: 4, UserID: 1, Action: "Changed password", IPAddress: "192.168.1.1", Device: "Chrome on macOS", Timestamp: mustTime("2023-04-20T11:15:00Z")},
		{ID: 5, UserID: 1, Action: "Logged in", IPAddress: "192.168.1.1", Device: "Chrome on macOS", Timestamp: mustTime("2023-04-20T11:10:00Z")},
	}
}

func (s *UserStore) Profile(ctx context.Context) (internal.UserProfile, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.UserProfile{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile, nil
}

// UpdateProfile merges the patch into the profile. ID and registeredAt are
// immutable and never touched.
func (s *UserStore) UpdateProfile(ctx context.Context, patch internal.UserProfileUpdate) (internal.UserProfile, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.UserProfile{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Email != nil {
		s.profile.Email = *patch.Email
	}
	if patch.Name != nil {
		s.profile.Name = *patch.Name
	}
	if patch.Age != nil {
		s.profile.Age = *patch.Age
	}
	if patch.Gender != nil {
		s.profile.Gender = *patch.Gender
	}
	if patch.Occupation != nil {
		s.profile.Occupation = *patch.Occupation
	}
	if patch.WorkHoursPerDay != nil {
		s.profile.WorkHoursPerDay = *patch.WorkHoursPerDay
	}
	if patch.SleepHoursPerDay != nil {
		s.profile.SleepHoursPerDay = *patch.SleepHoursPerDay
	}
	if patch.Phone != nil {
		s.profile.Phone = *patch.Phone
	}
	if patch.Address != nil {
		s.profile.Address = *patch.Address
	}
	return s.profile, nil
}

func (s *UserStore) Activity(ctx context.Context, page, pageSize int) (internal.Page[internal.UserActivity], error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.Page[internal.UserActivity]{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.activities, page, pageSize, "/users/me/activity/"), nil
}

func (s *UserStore) ChangePassword(ctx context.Context, current, next string) (internal.SuccessResponse, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.SuccessResponse{}, err
	}
	if current == "" || next == "" {
		return internal.SuccessResponse{}, internal.ErrInvalidCredentials
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append([]internal.UserActivity{{
		ID:        nextID(s.activities, func(a internal.UserActivity) int { return a.ID }),
		UserID:    s.profile.ID,
		Action:    "Changed password",
		IPAddress: "192.168.1.1",
		Device:    "Chrome on macOS",
		Timestamp: time.Now().UTC(),
	}}, s.activities...)
	return internal.SuccessResponse{Success: true}, nil
}

func (s *UserStore) UpdateNotifications(ctx context.Context, settings internal.NotificationSettings) (internal.NotificationSettings, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.NotificationSettings{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Notifications = settings
	return s.profile.Notifications, nil
}

func (s *UserStore) UpdatePrivacy(ctx context.Context, settings internal.PrivacySettings) (internal.PrivacySettings, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.PrivacySettings{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.PrivacySettings = settings
	return s.profile.PrivacySettings, nil
}

// UploadAvatar swaps the profile avatar for a randomly generated placeholder.
func (s *UserStore) UploadAvatar(ctx context.Context) (string, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Avatar = fmt.Sprintf("https://randomuser.me/api/portraits/men/%d.jpg", s.sim.Intn(100))
	return s.profile.Avatar, nil
}

func (s *UserStore) DeleteAccount(ctx context.Context, password string) (internal.SuccessResponse, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.SuccessResponse{}, err
	}
	return internal.SuccessResponse{Success: true}, nil
}
