package service

import (
	"context"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/provider"
)

type SleepRecordRequest struct {
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	DurationHours float64 `json:"duration_hours" validate:"required,gt=0,lte=24"`
	Quality       int     `json:"quality,omitempty" validate:"omitempty,gte=1,lte=10"`
	Notes         string  `json:"notes,omitempty"`
}

// SleepService fronts the sleep-record domain. The provider hides whether
// data comes from the mock stores or the REST backend.
type SleepService struct {
	p      provider.SleepProvider
	logger internal.Logger
}

func NewSleepService(p provider.SleepProvider, logger internal.Logger) *SleepService {
	return &SleepService{p: p, logger: logger}
}

func (s *SleepService) List(ctx context.Context, page, pageSize int) (internal.Page[internal.SleepRecord], error) {
	return s.p.List(ctx, page, pageSize)
}

func (s *SleepService) Get(ctx context.Context, id int) (internal.SleepRecord, error) {
	return s.p.Get(ctx, id)
}

func (s *SleepService) Create(ctx context.Context, req SleepRecordRequest) (internal.SleepRecord, error) {
	if err := validate.Struct(req); err != nil {
		return internal.SleepRecord{}, err
	}
	return s.p.Create(ctx, internal.SleepRecord{
		Date:          req.Date,
		DurationHours: req.DurationHours,
		Quality:       req.Quality,
		Notes:         req.Notes,
	})
}

func (s *SleepService) Update(ctx context.Context, id int, patch internal.SleepRecordUpdate) (internal.SleepRecord, error) {
	if patch.Quality != nil {
		if err := validate.Var(*patch.Quality, "gte=1,lte=10"); err != nil {
			return internal.SleepRecord{}, err
		}
	}
	if patch.DurationHours != nil {
		if err := validate.Var(*patch.DurationHours, "gt=0,lte=24"); err != nil {
			return internal.SleepRecord{}, err
		}
	}
	return s.p.Update(ctx, id, patch)
}

func (s *SleepService) Delete(ctx context.Context, id int) error {
	return s.p.Delete(ctx, id)
}

func (s *SleepService) Statistics(ctx context.Context, start, end string) (internal.SleepStatistics, error) {
	if err := validateDateRange(start, end); err != nil {
		return internal.SleepStatistics{}, err
	}
	return s.p.Statistics(ctx, start, end)
}
