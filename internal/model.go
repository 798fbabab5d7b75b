package internal

import "time"

// Page is the cursor-style pagination envelope used by the backend for
// every list endpoint. Next/Previous are URLs, nil when no such page exists.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type SleepRecord struct {
	ID            int       `json:"id"`
	Date          string    `json:"date"` // YYYY-MM-DD
	DurationHours float64   `json:"duration_hours"`
	Quality       int       `json:"quality,omitempty"` // 1–10 scale, optional
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// SleepRecordUpdate is a partial update; nil fields are left untouched.
type SleepRecordUpdate struct {
	Date          *string  `json:"date,omitempty"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	Quality       *int     `json:"quality,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

type SleepStatPoint struct {
	Date          string  `json:"date"`
	DurationHours float64 `json:"duration_hours"`
	Quality       int     `json:"quality"`
}

type SleepStatistics struct {
	AvgDuration  float64          `json:"avg_duration"`
	AvgQuality   float64          `json:"avg_quality"`
	TotalRecords int              `json:"total_records"`
	Statistics   []SleepStatPoint `json:"statistics"`
}

type StressLevel struct {
	ID        int       `json:"id"`
	Level     int       `json:"level"` // 0–100
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type StressDailyStat struct {
	Date     string  `json:"date"`
	AvgLevel float64 `json:"avg_level"`
	Count    int     `json:"count"`
}

type StressStatistics struct {
	AvgLevel     float64           `json:"avg_level"`
	TotalRecords int               `json:"total_records"`
	Statistics   []StressDailyStat `json:"statistics"`
}

type WorkActivity struct {
	ID             int       `json:"id"`
	Date           string    `json:"date"` // YYYY-MM-DD
	DurationHours  float64   `json:"duration_hours"`
	BreaksCount    int       `json:"breaks_count"`
	BreaksTotalMin int       `json:"breaks_total_minutes"`
	Productivity   int       `json:"productivity"` // 0–100
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type WorkActivityUpdate struct {
	Date           *string  `json:"date,omitempty"`
	DurationHours  *float64 `json:"duration_hours,omitempty"`
	BreaksCount    *int     `json:"breaks_count,omitempty"`
	BreaksTotalMin *int     `json:"breaks_total_minutes,omitempty"`
	Productivity   *int     `json:"productivity,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

type WorkStatPoint struct {
	Date          string  `json:"date"`
	DurationHours float64 `json:"duration_hours"`
	Productivity  int     `json:"productivity"`
	BreaksCount   int     `json:"breaks_count"`
}

type WorkStatistics struct {
	AvgDuration     float64         `json:"avg_duration"`
	AvgProductivity float64         `json:"avg_productivity"`
	AvgBreaksCount  float64         `json:"avg_breaks_count"`
	AvgBreaksMin    float64         `json:"avg_breaks_minutes"`
	TotalRecords    int             `json:"total_records"`
	Statistics      []WorkStatPoint `json:"statistics"`
}

// Recommendation categories.
const (
	CategorySleep   = "sleep"
	CategoryStress  = "stress"
	CategoryWork    = "work"
	CategoryGeneral = "general"
)

// UserRecommendation statuses.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

type RecommendationType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Recommendation is an immutable catalog entry.
type Recommendation struct {
	ID              int                `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Type            RecommendationType `json:"type"`
	Category        string             `json:"category"`
	DurationMinutes int                `json:"duration_minutes"`
	IsQuick         bool               `json:"is_quick"`
}

type UserRecommendation struct {
	ID             int            `json:"id"`
	User           int            `json:"user"`
	Recommendation Recommendation `json:"recommendation"`
	Status         string         `json:"status"`
	Reason         string         `json:"reason,omitempty"`
	UserFeedback   string         `json:"user_feedback,omitempty"`
	UserRating     int            `json:"user_rating,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
}

type NotificationSettings struct {
	Email           bool `json:"email"`
	Push            bool `json:"push"`
	Recommendations bool `json:"recommendations"`
	WeeklyReport    bool `json:"weekly_report"`
}

type PrivacySettings struct {
	ShareAnalytics bool `json:"share_analytics"`
	PublicProfile  bool `json:"public_profile"`
}

// UserProfile mirrors the backend wire format, which uses camelCase for the
// profile-specific fields and snake_case inside the settings objects.
type UserProfile struct {
	ID               int                  `json:"id"`
	Email            string               `json:"email"`
	Name             string               `json:"name"`
	Age              int                  `json:"age,omitempty"`
	Gender           string               `json:"gender,omitempty"`
	Occupation       string               `json:"occupation,omitempty"`
	WorkHoursPerDay  float64              `json:"workHoursPerDay,omitempty"`
	SleepHoursPerDay float64              `json:"sleepHoursPerDay,omitempty"`
	Avatar           string               `json:"avatar,omitempty"`
	Phone            string               `json:"phone,omitempty"`
	Address          string               `json:"address,omitempty"`
	RegisteredAt     time.Time            `json:"registeredAt"`
	LastLoginAt      time.Time            `json:"lastLoginAt"`
	Notifications    NotificationSettings `json:"notifications"`
	PrivacySettings  PrivacySettings      `json:"privacySettings"`
}

type UserProfileUpdate struct {
	Email            *string  `json:"email,omitempty"`
	Name             *string  `json:"name,omitempty"`
	Age              *int     `json:"age,omitempty"`
	Gender           *string  `json:"gender,omitempty"`
	Occupation       *string  `json:"occupation,omitempty"`
	WorkHoursPerDay  *float64 `json:"workHoursPerDay,omitempty"`
	SleepHoursPerDay *float64 `json:"sleepHoursPerDay,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	Address          *string  `json:"address,omitempty"`
}

type UserActivity struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Action    string    `json:"action"`
	IPAddress string    `json:"ip_address,omitempty"`
	Device    string    `json:"device,omitempty"`
	Location  string    `json:"location,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type AuthUser struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// AuthResponse is the token pair returned by login and refresh.
type AuthResponse struct {
	Access  string   `json:"access"`
	Refresh string   `json:"refresh,omitempty"`
	User    AuthUser `json:"user,omitempty"`
}

type RegisterResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    AuthUser `json:"user"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type BurnoutRiskPoint struct {
	Date      string `json:"date"`
	RiskLevel int    `json:"risk_level"`
}

type BurnoutRiskStats struct {
	Statistics []BurnoutRiskPoint `json:"statistics"`
	AvgRisk    float64            `json:"avg_risk"`
}

type DashboardSleepSummary struct {
	AverageDuration float64 `json:"average_duration"`
	AverageQuality  float64 `json:"average_quality"`
	TotalRecords    int     `json:"total_records"`
	Trend           string  `json:"trend"`
}

type DashboardStressSummary struct {
	AverageLevel float64 `json:"average_level"`
	TotalRecords int     `json:"total_records"`
	Trend        string  `json:"trend"`
}

type DashboardWorkSummary struct {
	AverageDuration     float64 `json:"average_duration"`
	AverageProductivity float64 `json:"average_productivity"`
	TotalRecords        int     `json:"total_records"`
	Trend               string  `json:"trend"`
}

type DashboardBurnoutRisk struct {
	Current  int    `json:"current"`
	Previous int    `json:"previous"`
	Trend    string `json:"trend"`
}

type DashboardRecommendation struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

type DashboardRecommendations struct {
	Pending   int                       `json:"pending"`
	Accepted  int                       `json:"accepted"`
	Completed int                       `json:"completed"`
	Latest    []DashboardRecommendation `json:"latest"`
}

type DashboardSummary struct {
	Sleep           DashboardSleepSummary    `json:"sleep"`
	Stress          DashboardStressSummary   `json:"stress"`
	Work            DashboardWorkSummary     `json:"work"`
	BurnoutRisk     DashboardBurnoutRisk     `json:"burnout_risk"`
	Recommendations DashboardRecommendations `json:"recommendations"`
}
