package service

import (
	"context"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/provider"
)

type UpdateStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=accepted completed rejected"`
	Feedback string `json:"user_feedback,omitempty"`
	Rating   int    `json:"user_rating,omitempty" validate:"omitempty,gte=1,lte=5"`
}

// RecommendationService fronts the recommendation catalog and the user's
// assigned recommendations.
type RecommendationService struct {
	p      provider.RecommendationProvider
	logger internal.Logger
}

func NewRecommendationService(p provider.RecommendationProvider, logger internal.Logger) *RecommendationService {
	return &RecommendationService{p: p, logger: logger}
}

func (s *RecommendationService) Catalog(ctx context.Context, category string, isQuick *bool) (internal.Page[internal.Recommendation], error) {
	if category != "" {
		if err := validate.Var(category, "oneof=sleep stress work general"); err != nil {
			return internal.Page[internal.Recommendation]{}, err
		}
	}
	return s.p.Catalog(ctx, category, isQuick)
}

func (s *RecommendationService) Categories(ctx context.Context) ([]internal.RecommendationType, error) {
	return s.p.Categories(ctx)
}

func (s *RecommendationService) UserList(ctx context.Context, status string, page, pageSize int) (internal.Page[internal.UserRecommendation], error) {
	if status != "" {
		if err := validate.Var(status, "oneof=pending accepted completed rejected"); err != nil {
			return internal.Page[internal.UserRecommendation]{}, err
		}
	}
	return s.p.UserList(ctx, status, page, pageSize)
}

func (s *RecommendationService) UserGet(ctx context.Context, id int) (internal.UserRecommendation, error) {
	return s.p.UserGet(ctx, id)
}

func (s *RecommendationService) UpdateStatus(ctx context.Context, id int, req UpdateStatusRequest) (internal.UserRecommendation, error) {
	if err := validate.Struct(req); err != nil {
		return internal.UserRecommendation{}, err
	}
	return s.p.UpdateStatus(ctx, id, req.Status, req.Feedback, req.Rating)
}

func (s *RecommendationService) RequestNew(ctx context.Context) ([]internal.UserRecommendation, error) {
	return s.p.RequestNew(ctx)
}
