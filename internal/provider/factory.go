package provider

import (
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/apiclient"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/config"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/mockdata"
)

// NewMockSet builds the in-memory provider set with one shared latency/error
// simulator configured from cfg.
func NewMockSet(cfg *config.Config) *Set {
	sim := mockdata.NewSimulator(cfg.MockDelayMinMS, cfg.MockDelayMaxMS, cfg.MockErrorRate)
	return &Set{
		Auth:            mockdata.NewAuthStore(sim),
		Sleep:           mockdata.NewSleepStore(sim),
		Stress:          mockdata.NewStressStore(sim),
		Work:            mockdata.NewWorkStore(sim),
		Recommendations: mockdata.NewRecommendationStore(sim),
		User:            mockdata.NewUserStore(sim),
		Burnout:         mockdata.NewBurnoutStore(sim),
	}
}

// NewHTTPSet builds the provider set backed by the REST backend through the
// shared API client.
func NewHTTPSet(client *apiclient.Client) *Set {
	return &Set{
		Auth:            &httpAuth{c: client},
		Sleep:           &httpSleep{c: client},
		Stress:          &httpStress{c: client},
		Work:            &httpWork{c: client},
		Recommendations: &httpRecommendations{c: client},
		User:            &httpUser{c: client},
		Burnout:         &httpBurnout{c: client},
	}
}

// Compile-time interface checks for both implementations.
var (
	_ AuthProvider           = (*mockdata.AuthStore)(nil)
	_ SleepProvider          = (*mockdata.SleepStore)(nil)
	_ StressProvider         = (*mockdata.StressStore)(nil)
	_ WorkProvider           = (*mockdata.WorkStore)(nil)
	_ RecommendationProvider = (*mockdata.RecommendationStore)(nil)
	_ UserProvider           = (*mockdata.UserStore)(nil)
	_ BurnoutProvider        = (*mockdata.BurnoutStore)(nil)

	_ AuthProvider           = (*httpAuth)(nil)
	_ SleepProvider          = (*httpSleep)(nil)
	_ StressProvider         = (*httpStress)(nil)
	_ WorkProvider           = (*httpWork)(nil)
	_ RecommendationProvider = (*httpRecommendations)(nil)
	_ UserProvider           = (*httpUser)(nil)
	_ BurnoutProvider        = (*httpBurnout)(nil)
)
