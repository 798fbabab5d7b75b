package service

import (
	"context"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/provider"
)

type StressLevelRequest struct {
	Level int    `json:"level" validate:"gte=0,lte=100"`
	Notes string `json:"notes,omitempty"`
}

// StressService fronts the stress domain. Entries are append-only.
type StressService struct {
	p      provider.StressProvider
	logger internal.Logger
}

func NewStressService(p provider.StressProvider, logger internal.Logger) *StressService {
	return &StressService{p: p, logger: logger}
}

func (s *StressService) List(ctx context.Context, page, pageSize int) (internal.Page[internal.StressLevel], error) {
	return s.p.List(ctx, page, pageSize)
}

func (s *StressService) Get(ctx context.Context, id int) (internal.StressLevel, error) {
	return s.p.Get(ctx, id)
}

func (s *StressService) Create(ctx context.Context, req StressLevelRequest) (internal.StressLevel, error) {
	if err := validate.Struct(req); err != nil {
		return internal.StressLevel{}, err
	}
	return s.p.Create(ctx, internal.StressLevel{Level: req.Level, Notes: req.Notes})
}

func (s *StressService) Statistics(ctx context.Context, start, end string) (internal.StressStatistics, error) {
	if err := validateDateRange(start, end); err != nil {
		return internal.StressStatistics{}, err
	}
	return s.p.Statistics(ctx, start, end)
}
