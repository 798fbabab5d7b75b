package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/apiclient"
)

func listQuery(page, pageSize int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	return q
}

func rangeQuery(start, end string) url.Values {
	q := url.Values{}
	q.Set("start_date", start)
	q.Set("end_date", end)
	return q
}

// --- Sleep ---

type httpSleep struct {
	c *apiclient.Client
}

func (p *httpSleep) List(ctx context.Context, page, pageSize int) (internal.Page[internal.SleepRecord], error) {
	var out internal.Page[internal.SleepRecord]
	err := p.c.GetJSON(ctx, "/sleep-data/", listQuery(page, pageSize), &out)
	return out, err
}

func (p *httpSleep) Get(ctx context.Context, id int) (internal.SleepRecord, error) {
	var out internal.SleepRecord
	err := p.c.GetJSON(ctx, fmt.Sprintf("/sleep-data/%d/", id), nil, &out)
	return out, err
}

func (p *httpSleep) Create(ctx context.Context, rec internal.SleepRecord) (internal.SleepRecord, error) {
	var out internal.SleepRecord
	err := p.c.PostJSON(ctx, "/sleep-data/", rec, &out)
	return out, err
}

func (p *httpSleep) Update(ctx context.Context, id int, patch internal.SleepRecordUpdate) (internal.SleepRecord, error) {
	var out internal.SleepRecord
	err := p.c.PatchJSON(ctx, fmt.Sprintf("/sleep-data/%d/", id), patch, &out)
	return out, err
}

func (p *httpSleep) Delete(ctx context.Context, id int) error {
	return p.c.Delete(ctx, fmt.Sprintf("/sleep-data/%d/", id))
}

func (p *httpSleep) Statistics(ctx context.Context, start, end string) (internal.SleepStatistics, error) {
	var out internal.SleepStatistics
	err := p.c.GetJSON(ctx, "/sleep-data/statistics/", rangeQuery(start, end), &out)
	return out, err
}

// --- Stress ---

type httpStress struct {
	c *apiclient.Client
}

func (p *httpStress) List(ctx context.Context, page, pageSize int) (internal.Page[internal.StressLevel], error) {
	var out internal.Page[internal.StressLevel]
	err := p.c.GetJSON(ctx, "/stress/", listQuery(page, pageSize), &out)
	return out, err
}

func (p *httpStress) Get(ctx context.Context, id int) (internal.StressLevel, error) {
	var out internal.StressLevel
	err := p.c.GetJSON(ctx, fmt.Sprintf("/stress/%d/", id), nil, &out)
	return out, err
}

func (p *httpStress) Create(ctx context.Context, rec internal.StressLevel) (internal.StressLevel, error) {
	var out internal.StressLevel
	err := p.c.PostJSON(ctx, "/stress/", rec, &out)
	return out, err
}

func (p *httpStress) Statistics(ctx context.Context, start, end string) (internal.StressStatistics, error) {
	var out internal.StressStatistics
	err := p.c.GetJSON(ctx, "/stress/statistics/", rangeQuery(start, end), &out)
	return out, err
}

// --- Work ---

type httpWork struct {
	c *apiclient.Client
}

func (p *httpWork) List(ctx context.Context, page, pageSize int) (internal.Page[internal.WorkActivity], error) {
	var out internal.Page[internal.WorkActivity]
	err := p.c.GetJSON(ctx, "/work-activity/", listQuery(page, pageSize), &out)
	return out, err
}

func (p *httpWork) Get(ctx context.Context, id int) (internal.WorkActivity, error) {
	var out internal.WorkActivity
	err := p.c.GetJSON(ctx, fmt.Sprintf("/work-activity/%d/", id), nil, &out)
	return out, err
}

func (p *httpWork) Create(ctx context.Context, rec internal.WorkActivity) (internal.WorkActivity, error) {
	var out internal.WorkActivity
	err := p.c.PostJSON(ctx, "/work-activity/", rec, &out)
	return out, err
}

func (p *httpWork) Update(ctx context.Context, id int, patch internal.WorkActivityUpdate) (internal.WorkActivity, error) {
	var out internal.WorkActivity
	err := p.c.PatchJSON(ctx, fmt.Sprintf("/work-activity/%d/", id), patch, &out)
	return out, err
}

func (p *httpWork) Delete(ctx context.Context, id int) error {
	return p.c.Delete(ctx, fmt.Sprintf("/work-activity/%d/", id))
}

func (p *httpWork) Statistics(ctx context.Context, start, end string) (internal.WorkStatistics, error) {
	var out internal.WorkStatistics
	err := p.c.GetJSON(ctx, "/work-activity/statistics/", rangeQuery(start, end), &out)
	return out, err
}

// --- Recommendations ---

type httpRecommendations struct {
	c *apiclient.Client
}

func (p *httpRecommendations) Catalog(ctx context.Context, category string, isQuick *bool) (internal.Page[internal.Recommendation], error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if isQuick != nil {
		q.Set("is_quick", strconv.FormatBool(*isQuick))
	}
	var out internal.Page[internal.Recommendation]
	err := p.c.GetJSON(ctx, "/recommendations/", q, &out)
	return out, err
}

func (p *httpRecommendations) Categories(ctx context.Context) ([]internal.RecommendationType, error) {
	var out []internal.RecommendationType
	err := p.c.GetJSON(ctx, "/recommendations/categories/", nil, &out)
	return out, err
}

func (p *httpRecommendations) UserList(ctx context.Context, status string, page, pageSize int) (internal.Page[internal.UserRecommendation], error) {
	q := listQuery(page, pageSize)
	if status != "" {
		q.Set("status", status)
	}
	var out internal.Page[internal.UserRecommendation]
	err := p.c.GetJSON(ctx, "/user-recommendations/", q, &out)
	return out, err
}

func (p *httpRecommendations) UserGet(ctx context.Context, id int) (internal.UserRecommendation, error) {
	var out internal.UserRecommendation
	err := p.c.GetJSON(ctx, fmt.Sprintf("/user-recommendations/%d/", id), nil, &out)
	return out, err
}

func (p *httpRecommendations) UpdateStatus(ctx context.Context, id int, status, feedback string, rating int) (internal.UserRecommendation, error) {
	body := map[string]any{"status": status}
	if feedback != "" {
		body["user_feedback"] = feedback
	}
	if rating != 0 {
		body["user_rating"] = rating
	}
	var out internal.UserRecommendation
	err := p.c.PatchJSON(ctx, fmt.Sprintf("/user-recommendations/%d/", id), body, &out)
	return out, err
}

func (p *httpRecommendations) RequestNew(ctx context.Context) ([]internal.UserRecommendation, error) {
	var out []internal.UserRecommendation
	err := p.c.PostJSON(ctx, "/user-recommendations/generate/", nil, &out)
	return out, err
}

// --- User ---

type httpUser struct {
	c *apiclient.Client
}

func (p *httpUser) Profile(ctx context.Context) (internal.UserProfile, error) {
	var out internal.UserProfile
	err := p.c.GetJSON(ctx, "/users/me/", nil, &out)
	return out, err
}

func (p *httpUser) UpdateProfile(ctx context.Context, patch internal.UserProfileUpdate) (internal.UserProfile, error) {
	var out internal.UserProfile
	err := p.c.PatchJSON(ctx, "/users/me/", patch, &out)
	return out, err
}

func (p *httpUser) Activity(ctx context.Context, page, pageSize int) (internal.Page[internal.UserActivity], error) {
	var out internal.Page[internal.UserActivity]
	err := p.c.GetJSON(ctx, "/users/me/activity/", listQuery(page, pageSize), &out)
	return out, err
}

func (p *httpUser) ChangePassword(ctx context.Context, current, next string) (internal.SuccessResponse, error) {
	var out internal.SuccessResponse
	err := p.c.PostJSON(ctx, "/users/me/password/", map[string]string{
		"current_password": current,
		"new_password":     next,
	}, &out)
	return out, err
}

func (p *httpUser) UpdateNotifications(ctx context.Context, settings internal.NotificationSettings) (internal.NotificationSettings, error) {
	var out internal.NotificationSettings
	err := p.c.PatchJSON(ctx, "/users/me/notifications/", settings, &out)
	return out, err
}

func (p *httpUser) UpdatePrivacy(ctx context.Context, settings internal.PrivacySettings) (internal.PrivacySettings, error) {
	var out internal.PrivacySettings
	err := p.c.PatchJSON(ctx, "/users/me/privacy/", settings, &out)
	return out, err
}

func (p *httpUser) UploadAvatar(ctx context.Context) (string, error) {
	var out struct {
		AvatarURL string `json:"avatar_url"`
	}
	err := p.c.PostJSON(ctx, "/users/me/avatar/", nil, &out)
	return out.AvatarURL, err
}

func (p *httpUser) DeleteAccount(ctx context.Context, password string) (internal.SuccessResponse, error) {
	if _, err := p.c.Do(ctx, http.MethodDelete, "/users/me/", map[string]string{"password": password}, nil); err != nil {
		return internal.SuccessResponse{}, err
	}
	return internal.SuccessResponse{Success: true}, nil
}

// --- Auth ---

type httpAuth struct {
	c *apiclient.Client
}

func (p *httpAuth) Login(ctx context.Context, email, password string) (internal.AuthResponse, error) {
	var out internal.AuthResponse
	err := p.c.PostJSON(ctx, "/auth/token/", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

func (p *httpAuth) Refresh(ctx context.Context, refresh string) (internal.AuthResponse, error) {
	var out internal.AuthResponse
	err := p.c.PostJSON(ctx, apiclient.RefreshPath, map[string]string{"refresh": refresh}, &out)
	return out, err
}

func (p *httpAuth) Register(ctx context.Context, email, username, password, password2 string) (internal.RegisterResponse, error) {
	var out internal.RegisterResponse
	err := p.c.PostJSON(ctx, "/users/", map[string]string{
		"email":     email,
		"username":  username,
		"password":  password,
		"password2": password2,
	}, &out)
	return out, err
}

func (p *httpAuth) CurrentUser(ctx context.Context) (internal.AuthUser, error) {
	var out internal.AuthUser
	err := p.c.GetJSON(ctx, "/users/me/", nil, &out)
	return out, err
}

func (p *httpAuth) RequestPasswordReset(ctx context.Context, email string) (internal.SuccessResponse, error) {
	var out internal.SuccessResponse
	err := p.c.PostJSON(ctx, "/auth/password/reset/", map[string]string{"email": email}, &out)
	return out, err
}

func (p *httpAuth) ConfirmPasswordReset(ctx context.Context, uid, token, newPassword, newPassword2 string) (internal.SuccessResponse, error) {
	var out internal.SuccessResponse
	err := p.c.PostJSON(ctx, "/auth/password/reset/confirm/", map[string]string{
		"uid":           uid,
		"token":         token,
		"new_password":  newPassword,
		"new_password2": newPassword2,
	}, &out)
	return out, err
}

// --- Burnout ---

type httpBurnout struct {
	c *apiclient.Client
}

func (p *httpBurnout) Statistics(ctx context.Context, start, end string) (internal.BurnoutRiskStats, error) {
	var out internal.BurnoutRiskStats
	err := p.c.GetJSON(ctx, "/burnout-risks/statistics/", rangeQuery(start, end), &out)
	return out, err
}
