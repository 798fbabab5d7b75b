// Package mockdata emulates the backend purely in memory: per-domain fixture
// stores with simulated latency and error injection, for development and
// tests without a live API. Mutations live only for the process lifetime.
package mockdata

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

// Simulator adds fake network behavior to every mock operation: a random
// delay inside [min, max] and a failure with probability errorRate.
type Simulator struct {
	min       time.Duration
	max       time.Duration
	errorRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulator(minMS, maxMS int, errorRate float64) *Simulator {
	if maxMS < minMS {
		maxMS = minMS
	}
	return &Simulator{
		min:       time.Duration(minMS) * time.Millisecond,
		max:       time.Duration(maxMS) * time.Millisecond,
		errorRate: errorRate,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Simulate waits out the latency window and then injects
// internal.ErrSimulatedNetwork with the configured probability.
func (s *Simulator) Simulate(ctx context.Context) error {
	delay := s.min
	if s.max > s.min {
		delay += time.Duration(s.randInt64(int64(s.max - s.min + 1)))
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.errorRate > 0 && s.randFloat() < s.errorRate {
		return internal.ErrSimulatedNetwork
	}
	return nil
}

func (s *Simulator) randInt64(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63n(n)
}

func (s *Simulator) randFloat() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Intn exposes the guarded rng for stores that need random selection.
func (s *Simulator) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("mockdata: bad fixture timestamp " + value)
	}
	return t
}
