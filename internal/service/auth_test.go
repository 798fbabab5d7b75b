package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/credentials"
)

type fakeAuthProvider struct {
	loginErr      error
	registerCalls int
}

func (f *fakeAuthProvider) Login(ctx context.Context, email, password string) (internal.AuthResponse, error) {
	if f.loginErr != nil {
		return internal.AuthResponse{}, f.loginErr
	}
	return internal.AuthResponse{Access: "access-token", Refresh: "refresh-token"}, nil
}

func (f *fakeAuthProvider) Refresh(ctx context.Context, refresh string) (internal.AuthResponse, error) {
	if refresh != "refresh-token" {
		return internal.AuthResponse{}, internal.ErrUnauthorized
	}
	return internal.AuthResponse{Access: "rotated-access", Refresh: "rotated-refresh"}, nil
}

func (f *fakeAuthProvider) Register(ctx context.Context, email, username, password, password2 string) (internal.RegisterResponse, error) {
	f.registerCalls++
	return internal.RegisterResponse{Success: true}, nil
}

func (f *fakeAuthProvider) CurrentUser(ctx context.Context) (internal.AuthUser, error) {
	return internal.AuthUser{ID: 1}, nil
}

func (f *fakeAuthProvider) RequestPasswordReset(ctx context.Context, email string) (internal.SuccessResponse, error) {
	return internal.SuccessResponse{Success: true}, nil
}

func (f *fakeAuthProvider) ConfirmPasswordReset(ctx context.Context, uid, token, newPassword, newPassword2 string) (internal.SuccessResponse, error) {
	return internal.SuccessResponse{Success: true}, nil
}

func TestAuthLogin_PersistsTokensOnSuccess(t *testing.T) {
	creds := credentials.NewMemStore()
	svc := NewAuthService(&fakeAuthProvider{}, creds, internal.NopLogger{})

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "user@example.com", Password: "password"})
	assert.NoError(t, err)
	assert.Equal(t, "access-token", resp.Access)
	assert.Equal(t, "access-token", creds.AccessToken())
	assert.Equal(t, "refresh-token", creds.RefreshToken())
	assert.True(t, svc.IsAuthenticated())
}

func TestAuthLogin_FailureLeavesStoreUntouched(t *testing.T) {
	creds := credentials.NewMemStore()
	assert.NoError(t, creds.SetTokens("existing-access", "existing-refresh"))
	svc := NewAuthService(&fakeAuthProvider{loginErr: internal.ErrInvalidCredentials}, creds, internal.NopLogger{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "user@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, internal.ErrInvalidCredentials))
	assert.Equal(t, "existing-access", creds.AccessToken())
	assert.Equal(t, "existing-refresh", creds.RefreshToken())
}

func TestAuthLogin_RejectsInvalidRequest(t *testing.T) {
	svc := NewAuthService(&fakeAuthProvider{}, credentials.NewMemStore(), internal.NopLogger{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)
	_, err = svc.Login(context.Background(), LoginRequest{Email: "user@example.com"})
	assert.Error(t, err)
}

func TestAuthLogout(t *testing.T) {
	creds := credentials.NewMemStore()
	assert.NoError(t, creds.SetTokens("a", "r"))
	svc := NewAuthService(&fakeAuthProvider{}, creds, internal.NopLogger{})

	assert.True(t, svc.IsAuthenticated())
	assert.NoError(t, svc.Logout())
	assert.False(t, svc.IsAuthenticated())
	assert.Empty(t, creds.RefreshToken())
}

func TestAuthRegister_PasswordMismatchShortCircuits(t *testing.T) {
	fake := &fakeAuthProvider{}
	svc := NewAuthService(fake, credentials.NewMemStore(), internal.NopLogger{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "new@example.com",
		Username:  "newbie",
		Password:  "secret123",
		Password2: "secret124",
	})
	assert.True(t, errors.Is(err, internal.ErrPasswordMismatch))
	assert.Zero(t, fake.registerCalls)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Email:     "new@example.com",
		Username:  "newbie",
		Password:  "secret123",
		Password2: "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, fake.registerCalls)
}

func TestAuthRefreshToken(t *testing.T) {
	creds := credentials.NewMemStore()
	svc := NewAuthService(&fakeAuthProvider{}, creds, internal.NopLogger{})

	// No stored refresh token.
	_, err := svc.RefreshToken(context.Background())
	assert.True(t, errors.Is(err, internal.ErrUnauthorized))

	assert.NoError(t, creds.SetTokens("stale", "refresh-token"))
	resp, err := svc.RefreshToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "rotated-access", resp.Access)
	assert.Equal(t, "rotated-access", creds.AccessToken())
	assert.Equal(t, "rotated-refresh", creds.RefreshToken())
}
