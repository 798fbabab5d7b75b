package service

import (
	"context"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/provider"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// UserService fronts the profile, settings and account operations.
type UserService struct {
	p      provider.UserProvider
	logger internal.Logger
}

func NewUserService(p provider.UserProvider, logger internal.Logger) *UserService {
	return &UserService{p: p, logger: logger}
}

func (s *UserService) Profile(ctx context.Context) (internal.UserProfile, error) {
	return s.p.Profile(ctx)
}

func (s *UserService) UpdateProfile(ctx context.Context, patch internal.UserProfileUpdate) (internal.UserProfile, error) {
	if patch.Email != nil {
		if err := validate.Var(*patch.Email, "email"); err != nil {
			return internal.UserProfile{}, err
		}
	}
	if patch.Age != nil {
		if err := validate.Var(*patch.Age, "gte=0,lte=150"); err != nil {
			return internal.UserProfile{}, err
		}
	}
	return s.p.UpdateProfile(ctx, patch)
}

func (s *UserService) Activity(ctx context.Context, page, pageSize int) (internal.Page[internal.UserActivity], error) {
	return s.p.Activity(ctx, page, pageSize)
}

func (s *UserService) ChangePassword(ctx context.Context, req ChangePasswordRequest) (internal.SuccessResponse, error) {
	if err := validate.Struct(req); err != nil {
		return internal.SuccessResponse{}, err
	}
	return s.p.ChangePassword(ctx, req.CurrentPassword, req.NewPassword)
}

func (s *UserService) UpdateNotifications(ctx context.Context, settings internal.NotificationSettings) (internal.NotificationSettings, error) {
	return s.p.UpdateNotifications(ctx, settings)
}

func (s *UserService) UpdatePrivacy(ctx context.Context, settings internal.PrivacySettings) (internal.PrivacySettings, error) {
	return s.p.UpdatePrivacy(ctx, settings)
}

func (s *UserService) UploadAvatar(ctx context.Context) (string, error) {
	return s.p.UploadAvatar(ctx)
}

func (s *UserService) DeleteAccount(ctx context.Context, password string) (internal.SuccessResponse, error) {
	if err := validate.Var(password, "required"); err != nil {
		return internal.SuccessResponse{}, err
	}
	return s.p.DeleteAccount(ctx, password)
}
