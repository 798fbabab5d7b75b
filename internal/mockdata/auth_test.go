package mockdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

func TestLogin_RequiresBothFieldsToMatch(t *testing.T) {
	store := NewAuthStore(instantSim())
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong email", "other@example.com", FixturePassword},
		{"wrong password", FixtureEmail, "nope"},
		{"both wrong", "other@example.com", "nope"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Login(ctx, tc.email, tc.password)
			assert.True(t, errors.Is(err, internal.ErrInvalidCredentials))
		})
	}

	resp, err := store.Login(ctx, FixtureEmail, FixturePassword)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Access)
	assert.NotEmpty(t, resp.Refresh)
	assert.Equal(t, FixtureEmail, resp.User.Email)
}

func TestRefresh_RotatesValidPair(t *testing.T) {
	store := NewAuthStore(instantSim())
	ctx := context.Background()

	login, err := store.Login(ctx, FixtureEmail, FixturePassword)
	assert.NoError(t, err)

	rotated, err := store.Refresh(ctx, login.Refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, rotated.Access)
	assert.NotEmpty(t, rotated.Refresh)
}

func TestRefresh_RejectsBadTokens(t *testing.T) {
	store := NewAuthStore(instantSim())
	ctx := context.Background()

	_, err := store.Refresh(ctx, "not-a-token")
	assert.True(t, errors.Is(err, internal.ErrUnauthorized))

	// An access token is not accepted in place of a refresh token.
	login, err := store.Login(ctx, FixtureEmail, FixturePassword)
	assert.NoError(t, err)
	_, err = store.Refresh(ctx, login.Access)
	assert.True(t, errors.Is(err, internal.ErrUnauthorized))
}

func TestTokenManager_ExpiredRefreshRejected(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute, -time.Minute)
	_, refresh, err := tm.Pair(1)
	assert.NoError(t, err)
	_, err = tm.ValidateRefresh(refresh)
	assert.True(t, errors.Is(err, internal.ErrUnauthorized))
}

func TestRegister(t *testing.T) {
	store := NewAuthStore(instantSim())
	ctx := context.Background()

	_, err := store.Register(ctx, "new@example.com", "newbie", "secret123", "different")
	assert.True(t, errors.Is(err, internal.ErrPasswordMismatch))

	resp, err := store.Register(ctx, "new@example.com", "newbie", "secret123", "secret123")
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "newbie", resp.User.Username)
}

func TestConfirmPasswordReset_Mismatch(t *testing.T) {
	store := NewAuthStore(instantSim())
	_, err := store.ConfirmPasswordReset(context.Background(), "uid", "token", "a-password", "b-password")
	assert.True(t, errors.Is(err, internal.ErrPasswordMismatch))
}
