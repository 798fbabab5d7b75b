package mockdata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

func TestUserProfile_UpdateKeepsImmutableFields(t *testing.T) {
	store := NewUserStore(instantSim())
	ctx := context.Background()

	before, err := store.Profile(ctx)
	assert.NoError(t, err)

	name := "New Name"
	age := 30
	updated, err := store.UpdateProfile(ctx, internal.UserProfileUpdate{Name: &name, Age: &age})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, 30, updated.Age)
	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, before.RegisteredAt, updated.RegisteredAt)
}

func TestUserChangePassword(t *testing.T) {
	store := NewUserStore(instantSim())
	ctx := context.Background()

	_, err := store.ChangePassword(ctx, "", "new-password")
	assert.True(t, errors.Is(err, internal.ErrInvalidCredentials))

	resp, err := store.ChangePassword(ctx, "old-password", "new-password")
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	// A change shows up at the head of the activity feed.
	activity, err := store.Activity(ctx, 1, 1)
	assert.NoError(t, err)
	assert.Contains(t, activity.Results[0].Action, "password")
}

func TestUserSettings(t *testing.T) {
	store := NewUserStore(instantSim())
	ctx := context.Background()

	notif, err := store.UpdateNotifications(ctx, internal.NotificationSettings{Email: true, WeeklyReport: true})
	assert.NoError(t, err)
	assert.True(t, notif.Email)
	assert.True(t, notif.WeeklyReport)
	assert.False(t, notif.Push)

	privacy, err := store.UpdatePrivacy(ctx, internal.PrivacySettings{ShareAnalytics: true})
	assert.NoError(t, err)
	assert.True(t, privacy.ShareAnalytics)

	profile, err := store.Profile(ctx)
	assert.NoError(t, err)
	assert.True(t, profile.Notifications.Email)
	assert.True(t, profile.PrivacySettings.ShareAnalytics)
}

func TestUserAvatarAndDeletion(t *testing.T) {
	store := NewUserStore(instantSim())
	ctx := context.Background()

	url, err := store.UploadAvatar(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, url)

	profile, err := store.Profile(ctx)
	assert.NoError(t, err)
	assert.Equal(t, url, profile.Avatar)

	resp, err := store.DeleteAccount(ctx, "password")
	assert.NoError(t, err)
	assert.True(t, resp.Success)
}
