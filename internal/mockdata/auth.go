package mockdata

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

// Fixture credentials accepted by the mock login.
const (
	FixtureEmail    = "user@example.com"
	FixturePassword = "password"
)

type tokenType string

const (
	accessToken  tokenType = "access"
	refreshToken tokenType = "refresh"
)

type claims struct {
	UserID    int       `json:"user_id"`
	TokenType tokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager mints and validates the HS256 access/refresh pairs issued by
// the mock backend, so the client's refresh flow works offline exactly as it
// does against the real API.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		issuer:     "pacificapp-mock",
	}
}

func (tm *TokenManager) generate(userID int, kind tokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	c := &claims{
		UserID:    userID,
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tm.issuer,
			Subject:   fmt.Sprintf("%d", userID),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}
	return signed, nil
}

// Pair returns a fresh access+refresh token pair for the user.
func (tm *TokenManager) Pair(userID int) (access, refresh string, err error) {
	if access, err = tm.generate(userID, accessToken, tm.accessTTL); err != nil {
		return "", "", err
	}
	if refresh, err = tm.generate(userID, refreshToken, tm.refreshTTL); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ValidateRefresh parses a refresh token and returns the user it belongs to.
func (tm *TokenManager) ValidateRefresh(token string) (int, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", internal.ErrUnauthorized, err)
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.TokenType != refreshToken {
		return 0, internal.ErrUnauthorized
	}
	return c.UserID, nil
}

// AuthStore implements the mock side of the auth flows against a single
// fixture credential pair.
type AuthStore struct {
	sim    *Simulator
	tokens *TokenManager
	user   internal.AuthUser
}

func NewAuthStore(sim *Simulator) *AuthStore {
	return &AuthStore{
		sim:    sim,
		tokens: NewTokenManager("pacificapp-mock-secret", 30*time.Minute, 7*24*time.Hour),
		user:   internal.AuthUser{ID: 1, Email: FixtureEmail, Username: "testuser"},
	}
}

// Login succeeds only when both email and password match the fixture pair.
func (s *AuthStore) Login(ctx context.Context, email, password string) (internal.AuthResponse, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.AuthResponse{}, err
	}
	if email != FixtureEmail || password != FixturePassword {
		return internal.AuthResponse{}, internal.ErrInvalidCredentials
	}
	access, refresh, err := s.tokens.Pair(s.user.ID)
	if err != nil {
		return internal.AuthResponse{}, err
	}
	return internal.AuthResponse{Access: access, Refresh: refresh, User: s.user}, nil
}

// Refresh validates the refresh token and rotates the pair.
func (s *AuthStore) Refresh(ctx context.Context, refresh string) (internal.AuthResponse, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.AuthResponse{}, err
	}
	userID, err := s.tokens.ValidateRefresh(refresh)
	if err != nil {
		return internal.AuthResponse{}, err
	}
	access, newRefresh, err := s.tokens.Pair(userID)
	if err != nil {
		return internal.AuthResponse{}, err
	}
	return internal.AuthResponse{Access: access, Refresh: newRefresh, User: s.user}, nil
}

func (s *AuthStore) Register(ctx context.Context, email, username, password, password2 string) (internal.RegisterResponse, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.RegisterResponse{}, err
	}
	if password != password2 {
		return internal.RegisterResponse{}, internal.ErrPasswordMismatch
	}
	return internal.RegisterResponse{
		Success: true,
		Message: "Registration successful. You can now sign in.",
		User:    internal.AuthUser{ID: s.user.ID, Email: email, Username: username},
	}, nil
}

func (s *AuthStore) CurrentUser(ctx context.Context) (internal.AuthUser, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.AuthUser{}, err
	}
	return s.user, nil
}

func (s *AuthStore) RequestPasswordReset(ctx context.Context, email string) (internal.SuccessResponse, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.SuccessResponse{}, err
	}
	return internal.SuccessResponse{
		Success: true,
		Message: "Password reset instructions were sent to your email.",
	}, nil
}

func (s *AuthStore) ConfirmPasswordReset(ctx context.Context, uid, token, newPassword, newPassword2 string) (internal.SuccessResponse, error) {
	if err := s.sim.Simulate(ctx); err != nil {
		return internal.SuccessResponse{}, err
	}
	if newPassword != newPassword2 {
		return internal.SuccessResponse{}, internal.ErrPasswordMismatch
	}
	return internal.SuccessResponse{
		Success: true,
		Message: "Password changed. You can now sign in.",
	}, nil
}
