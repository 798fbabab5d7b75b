package service

import (
	"context"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/provider"
)

type WorkActivityRequest struct {
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	DurationHours  float64 `json:"duration_hours" validate:"required,gt=0,lte=24"`
	BreaksCount    int     `json:"breaks_count" validate:"gte=0"`
	BreaksTotalMin int     `json:"breaks_total_minutes" validate:"gte=0"`
	Productivity   int     `json:"productivity" validate:"gte=0,lte=100"`
	Notes          string  `json:"notes,omitempty"`
}

// WorkService fronts the work-activity domain.
type WorkService struct {
	p      provider.WorkProvider
	logger internal.Logger
}

func NewWorkService(p provider.WorkProvider, logger internal.Logger) *WorkService {
	return &WorkService{p: p, logger: logger}
}

func (s *WorkService) List(ctx context.Context, page, pageSize int) (internal.Page[internal.WorkActivity], error) {
	return s.p.List(ctx, page, pageSize)
}

func (s *WorkService) Get(ctx context.Context, id int) (internal.WorkActivity, error) {
	return s.p.Get(ctx, id)
}

func (s *WorkService) Create(ctx context.Context, req WorkActivityRequest) (internal.WorkActivity, error) {
	if err := validate.Struct(req); err != nil {
		return internal.WorkActivity{}, err
	}
	return s.p.Create(ctx, internal.WorkActivity{
		Date:           req.Date,
		DurationHours:  req.DurationHours,
		BreaksCount:    req.BreaksCount,
		BreaksTotalMin: req.BreaksTotalMin,
		Productivity:   req.Productivity,
		Notes:          req.Notes,
	})
}

func (s *WorkService) Update(ctx context.Context, id int, patch internal.WorkActivityUpdate) (internal.WorkActivity, error) {
	if patch.DurationHours != nil {
		if err := validate.Var(*patch.DurationHours, "gt=0,lte=24"); err != nil {
			return internal.WorkActivity{}, err
		}
	}
	if patch.Productivity != nil {
		if err := validate.Var(*patch.Productivity, "gte=0,lte=100"); err != nil {
			return internal.WorkActivity{}, err
		}
	}
	return s.p.Update(ctx, id, patch)
}

func (s *WorkService) Delete(ctx context.Context, id int) error {
	return s.p.Delete(ctx, id)
}

func (s *WorkService) Statistics(ctx context.Context, start, end string) (internal.WorkStatistics, error) {
	if err := validateDateRange(start, end); err != nil {
		return internal.WorkStatistics{}, err
	}
	return s.p.Statistics(ctx, start, end)
}
