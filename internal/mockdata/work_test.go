package mockdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

func isoToday() string {
	return time.Now().UTC().Format("2006-01-02")
}

func TestWorkCRUD(t *testing.T) {
	store := NewWorkStore(instantSim())
	ctx := context.Background()

	created, err := store.Create(ctx, internal.WorkActivity{
		Date:           "2023-05-11",
		DurationHours:  8.0,
		BreaksCount:    3,
		BreaksTotalMin: 45,
		Productivity:   75,
	})
	assert.NoError(t, err)
	assert.Equal(t, 9, created.ID)

	productivity := 90
	updated, err := store.Update(ctx, created.ID, internal.WorkActivityUpdate{Productivity: &productivity})
	assert.NoError(t, err)
	assert.Equal(t, 90, updated.Productivity)
	assert.Equal(t, 8.0, updated.DurationHours)

	assert.NoError(t, store.Delete(ctx, created.ID))
	_, err = store.Get(ctx, created.ID)
	assert.True(t, errors.Is(err, internal.ErrNotFound))
}

func TestWorkStatistics(t *testing.T) {
	store := NewWorkStore(instantSim())

	stats, err := store.Statistics(context.Background(), "2023-05-01", "2023-05-10")
	assert.NoError(t, err)
	assert.Equal(t, 8, stats.TotalRecords)
	assert.Greater(t, stats.AvgDuration, 0.0)
	assert.Greater(t, stats.AvgProductivity, 0.0)
	assert.Greater(t, stats.AvgBreaksCount, 0.0)
	assert.Greater(t, stats.AvgBreaksMin, 0.0)
	assert.Len(t, stats.Statistics, 8)

	empty, err := store.Statistics(context.Background(), "2024-01-01", "2024-01-02")
	assert.NoError(t, err)
	assert.Zero(t, empty.TotalRecords)
	assert.Zero(t, empty.AvgProductivity)
}
