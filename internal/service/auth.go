package service

import (
	"context"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/credentials"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/provider"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=3"`
	Password  string `json:"password" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required"`
}

type PasswordResetConfirmRequest struct {
	UID          string `json:"uid" validate:"required"`
	Token        string `json:"token" validate:"required"`
	NewPassword  string `json:"new_password" validate:"required,min=8"`
	NewPassword2 string `json:"new_password2" validate:"required"`
}

// AuthService owns the session lifecycle: it is the only service that
// writes to the credential store. Tokens are persisted only after the
// provider reports success, so a failed login never clobbers an existing
// session.
type AuthService struct {
	p      provider.AuthProvider
	creds  credentials.Store
	logger internal.Logger
}

func NewAuthService(p provider.AuthProvider, creds credentials.Store, logger internal.Logger) *AuthService {
	return &AuthService{p: p, creds: creds, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (internal.AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return internal.AuthResponse{}, err
	}
	resp, err := s.p.Login(ctx, req.Email, req.Password)
	if err != nil {
		return internal.AuthResponse{}, err
	}
	if err := s.creds.SetTokens(resp.Access, resp.Refresh); err != nil {
		return internal.AuthResponse{}, err
	}
	s.logger.Infof("session established for %s", req.Email)
	return resp, nil
}

// Logout clears the stored session. It is local only, mirroring the
// backend's stateless JWT scheme.
func (s *AuthService) Logout() error {
	return s.creds.Clear()
}

func (s *AuthService) IsAuthenticated() bool {
	return s.creds.AccessToken() != ""
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (internal.RegisterResponse, error) {
	if err := validate.Struct(req); err != nil {
		return internal.RegisterResponse{}, err
	}
	if req.Password != req.Password2 {
		return internal.RegisterResponse{}, internal.ErrPasswordMismatch
	}
	return s.p.Register(ctx, req.Email, req.Username, req.Password, req.Password2)
}

func (s *AuthService) CurrentUser(ctx context.Context) (internal.AuthUser, error) {
	return s.p.CurrentUser(ctx)
}

// RefreshToken exchanges the stored refresh token for a new pair and
// persists it. Used by callers that refresh proactively rather than on 401.
func (s *AuthService) RefreshToken(ctx context.Context) (internal.AuthResponse, error) {
	refresh := s.creds.RefreshToken()
	if refresh == "" {
		return internal.AuthResponse{}, internal.ErrUnauthorized
	}
	resp, err := s.p.Refresh(ctx, refresh)
	if err != nil {
		return internal.AuthResponse{}, err
	}
	if err := s.creds.SetTokens(resp.Access, resp.Refresh); err != nil {
		return internal.AuthResponse{}, err
	}
	return resp, nil
}

func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (internal.SuccessResponse, error) {
	if err := validate.Var(email, "required,email"); err != nil {
		return internal.SuccessResponse{}, err
	}
	return s.p.RequestPasswordReset(ctx, email)
}

func (s *AuthService) ConfirmPasswordReset(ctx context.Context, req PasswordResetConfirmRequest) (internal.SuccessResponse, error) {
	if err := validate.Struct(req); err != nil {
		return internal.SuccessResponse{}, err
	}
	if req.NewPassword != req.NewPassword2 {
		return internal.SuccessResponse{}, internal.ErrPasswordMismatch
	}
	return s.p.ConfirmPasswordReset(ctx, req.UID, req.Token, req.NewPassword, req.NewPassword2)
}
