package mockdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

func TestSimulator_AlwaysFailsAtRateOne(t *testing.T) {
	sim := NewSimulator(0, 0, 1.0)
	for i := 0; i < 20; i++ {
		err := sim.Simulate(context.Background())
		assert.True(t, errors.Is(err, internal.ErrSimulatedNetwork))
	}
}

func TestSimulator_NeverFailsAtRateZero(t *testing.T) {
	sim := NewSimulator(0, 0, 0)
	for i := 0; i < 20; i++ {
		assert.NoError(t, sim.Simulate(context.Background()))
	}
}

func TestSimulator_RespectsCancellation(t *testing.T) {
	sim := NewSimulator(5000, 5000, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := sim.Simulate(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSimulator_SwappedWindowIsNormalized(t *testing.T) {
	sim := NewSimulator(10, 5, 0)
	assert.NoError(t, sim.Simulate(context.Background()))
}
