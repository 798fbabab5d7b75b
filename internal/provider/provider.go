// Package provider defines the per-domain data-access capability interfaces
// and their two implementations: the in-memory mock stores and the HTTP
// backend. Services depend only on these interfaces; which implementation
// they get is decided at composition time.
package provider

import (
	"context"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

type SleepProvider interface {
	List(ctx context.Context, page, pageSize int) (internal.Page[internal.SleepRecord], error)
	Get(ctx context.Context, id int) (internal.SleepRecord, error)
	Create(ctx context.Context, rec internal.SleepRecord) (internal.SleepRecord, error)
	Update(ctx context.Context, id int, patch internal.SleepRecordUpdate) (internal.SleepRecord, error)
	Delete(ctx context.Context, id int) error
	Statistics(ctx context.Context, start, end string) (internal.SleepStatistics, error)
}

// StressProvider has no update or delete: stress entries are append-only.
type StressProvider interface {
	List(ctx context.Context, page, pageSize int) (internal.Page[internal.StressLevel], error)
	Get(ctx context.Context, id int) (internal.StressLevel, error)
	Create(ctx context.Context, rec internal.StressLevel) (internal.StressLevel, error)
	Statistics(ctx context.Context, start, end string) (internal.StressStatistics, error)
}

type WorkProvider interface {
	List(ctx context.Context, page, pageSize int) (internal.Page[internal.WorkActivity], error)
	Get(ctx context.Context, id int) (internal.WorkActivity, error)
	Create(ctx context.Context, rec internal.WorkActivity) (internal.WorkActivity, error)
	Update(ctx context.Context, id int, patch internal.WorkActivityUpdate) (internal.WorkActivity, error)
	Delete(ctx context.Context, id int) error
	Statistics(ctx context.Context, start, end string) (internal.WorkStatistics, error)
}

type RecommendationProvider interface {
	Catalog(ctx context.Context, category string, isQuick *bool) (internal.Page[internal.Recommendation], error)
	Categories(ctx context.Context) ([]internal.RecommendationType, error)
	UserList(ctx context.Context, status string, page, pageSize int) (internal.Page[internal.UserRecommendation], error)
	UserGet(ctx context.Context, id int) (internal.UserRecommendation, error)
	UpdateStatus(ctx context.Context, id int, status, feedback string, rating int) (internal.UserRecommendation, error)
	RequestNew(ctx context.Context) ([]internal.UserRecommendation, error)
}

type UserProvider interface {
	Profile(ctx context.Context) (internal.UserProfile, error)
	UpdateProfile(ctx context.Context, patch internal.UserProfileUpdate) (internal.UserProfile, error)
	Activity(ctx context.Context, page, pageSize int) (internal.Page[internal.UserActivity], error)
	ChangePassword(ctx context.Context, current, next string) (internal.SuccessResponse, error)
	UpdateNotifications(ctx context.Context, settings internal.NotificationSettings) (internal.NotificationSettings, error)
	UpdatePrivacy(ctx context.Context, settings internal.PrivacySettings) (internal.PrivacySettings, error)
	UploadAvatar(ctx context.Context) (string, error)
	DeleteAccount(ctx context.Context, password string) (internal.SuccessResponse, error)
}

type AuthProvider interface {
	Login(ctx context.Context, email, password string) (internal.AuthResponse, error)
	Refresh(ctx context.Context, refresh string) (internal.AuthResponse, error)
	Register(ctx context.Context, email, username, password, password2 string) (internal.RegisterResponse, error)
	CurrentUser(ctx context.Context) (internal.AuthUser, error)
	RequestPasswordReset(ctx context.Context, email string) (internal.SuccessResponse, error)
	ConfirmPasswordReset(ctx context.Context, uid, token, newPassword, newPassword2 string) (internal.SuccessResponse, error)
}

type BurnoutProvider interface {
	Statistics(ctx context.Context, start, end string) (internal.BurnoutRiskStats, error)
}

// Set bundles one provider per domain.
type Set struct {
	Auth            AuthProvider
	Sleep           SleepProvider
	Stress          StressProvider
	Work            WorkProvider
	Recommendations RecommendationProvider
	User            UserProvider
	Burnout         BurnoutProvider
}
