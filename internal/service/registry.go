package service

import (
	"sync"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/credentials"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/provider"
)

// Services bundles the domain facades built over a single provider set.
type Services struct {
	Auth            *AuthService
	Sleep           *SleepService
	Stress          *StressService
	Work            *WorkService
	Recommendations *RecommendationService
	User            *UserService
	Dashboard       *DashboardService
}

// NewServices wires every facade to the given provider set.
func NewServices(set *provider.Set, creds credentials.Store, logger internal.Logger) *Services {
	return &Services{
		Auth:            NewAuthService(set.Auth, creds, logger),
		Sleep:           NewSleepService(set.Sleep, logger),
		Stress:          NewStressService(set.Stress, logger),
		Work:            NewWorkService(set.Work, logger),
		Recommendations: NewRecommendationService(set.Recommendations, logger),
		User:            NewUserService(set.User, logger),
		Dashboard:       NewDashboardService(set, logger),
	}
}

// Registry holds both the mock-backed and HTTP-backed service bundles and
// exposes whichever one is active. The data source can be switched at
// runtime without rebuilding anything; callers always go through Active.
type Registry struct {
	mu        sync.RWMutex
	mock      *Services
	live      *Services
	active    *Services
	usingMock bool
	logger    internal.Logger
}

func NewRegistry(mockSet, liveSet *provider.Set, creds credentials.Store, useMock bool, logger internal.Logger) *Registry {
	r := &Registry{
		mock:   NewServices(mockSet, creds, logger),
		live:   NewServices(liveSet, creds, logger),
		logger: logger,
	}
	r.UseMockData(useMock)
	return r
}

// UseMockData switches the active bundle. In-flight calls finish against
// the bundle they started with.
func (r *Registry) UseMockData(mock bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.usingMock = mock
	if mock {
		r.active = r.mock
	} else {
		r.active = r.live
	}
	r.logger.Infof("data source switched, mock=%t", mock)
}

func (r *Registry) UsingMockData() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.usingMock
}

// Active returns the service bundle for the current data source.
func (r *Registry) Active() *Services {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}
