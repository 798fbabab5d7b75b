package mockdata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

func instantSim() *Simulator {
	return NewSimulator(0, 0, 0)
}

func TestSleepList_Pagination(t *testing.T) {
	store := NewSleepStore(instantSim())
	ctx := context.Background()

	page, err := store.List(ctx, 1, 4)
	assert.NoError(t, err)
	assert.Equal(t, 10, page.Count)
	assert.Len(t, page.Results, 4)
	assert.Nil(t, page.Previous)
	assert.NotNil(t, page.Next)
	assert.Equal(t, "/sleep-data/?page=2&page_size=4", *page.Next)

	last, err := store.List(ctx, 3, 4)
	assert.NoError(t, err)
	assert.Len(t, last.Results, 2)
	assert.Nil(t, last.Next)
	assert.NotNil(t, last.Previous)

	// Zero values fall back to defaults.
	def, err := store.List(ctx, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, def.Results, 10)
}

func TestSleepGet_NotFound(t *testing.T) {
	store := NewSleepStore(instantSim())

	_, err := store.Get(context.Background(), 999)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, internal.ErrNotFound))

	var nf *internal.NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, 999, nf.ID)
}

func TestSleepCreate_AssignsNextIDAndPrepends(t *testing.T) {
	store := NewSleepStore(instantSim())
	ctx := context.Background()

	created, err := store.Create(ctx, internal.SleepRecord{Date: "2023-05-11", DurationHours: 7.0, Quality: 7})
	assert.NoError(t, err)
	assert.Equal(t, 11, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	page, err := store.List(ctx, 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 11, page.Results[0].ID)
	assert.Equal(t, 11, page.Count)

	// A second create keeps ids monotonic even after deletes.
	assert.NoError(t, store.Delete(ctx, 11))
	again, err := store.Create(ctx, internal.SleepRecord{Date: "2023-05-12", DurationHours: 6.0})
	assert.NoError(t, err)
	assert.Equal(t, 11, again.ID)
}

func TestSleepUpdate_PartialPatch(t *testing.T) {
	store := NewSleepStore(instantSim())
	ctx := context.Background()

	quality := 10
	updated, err := store.Update(ctx, 1, internal.SleepRecordUpdate{Quality: &quality})
	assert.NoError(t, err)
	assert.Equal(t, 10, updated.Quality)
	// Untouched fields survive the patch.
	assert.Equal(t, "2023-05-01", updated.Date)
	assert.Equal(t, 7.5, updated.DurationHours)

	_, err = store.Update(ctx, 404, internal.SleepRecordUpdate{Quality: &quality})
	assert.True(t, errors.Is(err, internal.ErrNotFound))
}

func TestSleepDelete(t *testing.T) {
	store := NewSleepStore(instantSim())
	ctx := context.Background()

	assert.NoError(t, store.Delete(ctx, 5))
	_, err := store.Get(ctx, 5)
	assert.True(t, errors.Is(err, internal.ErrNotFound))
	assert.True(t, errors.Is(store.Delete(ctx, 5), internal.ErrNotFound))
}

func TestSleepStatistics_InclusiveRange(t *testing.T) {
	store := NewSleepStore(instantSim())

	stats, err := store.Statistics(context.Background(), "2023-05-01", "2023-05-03")
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRecords)
	assert.InDelta(t, (7.5+6.2+8.0)/3, stats.AvgDuration, 1e-9)
	assert.InDelta(t, (8+6+9)/3.0, stats.AvgQuality, 1e-9)
	assert.Len(t, stats.Statistics, 3)
}

func TestSleepStatistics_EmptyRange(t *testing.T) {
	store := NewSleepStore(instantSim())

	stats, err := store.Statistics(context.Background(), "2024-01-01", "2024-01-31")
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalRecords)
	assert.Zero(t, stats.AvgDuration)
	assert.Zero(t, stats.AvgQuality)
	assert.Empty(t, stats.Statistics)
}
