package mockdata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

func TestStressCreate_PrependsWithNextID(t *testing.T) {
	store := NewStressStore(instantSim())
	ctx := context.Background()

	created, err := store.Create(ctx, internal.StressLevel{Level: 80, Notes: "Release day"})
	assert.NoError(t, err)
	assert.Equal(t, 11, created.ID)

	page, err := store.List(ctx, 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 11, page.Count)
	assert.Equal(t, 80, page.Results[0].Level)
}

func TestStressGet_NotFound(t *testing.T) {
	store := NewStressStore(instantSim())
	_, err := store.Get(context.Background(), 123)
	assert.True(t, errors.Is(err, internal.ErrNotFound))
}

func TestStressStatistics_GroupsPerDay(t *testing.T) {
	store := NewStressStore(instantSim())

	stats, err := store.Statistics(context.Background(), "2023-05-01", "2023-05-03")
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRecords)
	assert.InDelta(t, (60+72+65)/3.0, stats.AvgLevel, 1e-9)
	assert.Len(t, stats.Statistics, 3)
	// Daily breakdown is sorted by date.
	assert.Equal(t, "2023-05-01", stats.Statistics[0].Date)
	assert.Equal(t, "2023-05-03", stats.Statistics[2].Date)
	assert.Equal(t, 1, stats.Statistics[0].Count)
	assert.InDelta(t, 60.0, stats.Statistics[0].AvgLevel, 1e-9)
}

func TestStressStatistics_SameDayEntriesAggregate(t *testing.T) {
	store := NewStressStore(instantSim())
	ctx := context.Background()

	_, err := store.Create(ctx, internal.StressLevel{Level: 10})
	assert.NoError(t, err)
	_, err = store.Create(ctx, internal.StressLevel{Level: 30})
	assert.NoError(t, err)

	today := isoToday()
	stats, err := store.Statistics(ctx, today, today)
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRecords)
	assert.Len(t, stats.Statistics, 1)
	assert.Equal(t, 2, stats.Statistics[0].Count)
	assert.InDelta(t, 20.0, stats.Statistics[0].AvgLevel, 1e-9)
}
