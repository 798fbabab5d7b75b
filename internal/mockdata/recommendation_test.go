package mockdata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

func TestCatalog_Filters(t *testing.T) {
	store := NewRecommendationStore(instantSim())
	ctx := context.Background()

	all, err := store.Catalog(ctx, "", nil)
	assert.NoError(t, err)
	assert.Equal(t, 10, all.Count)

	sleepOnly, err := store.Catalog(ctx, internal.CategorySleep, nil)
	assert.NoError(t, err)
	for _, rec := range sleepOnly.Results {
		assert.Equal(t, internal.CategorySleep, rec.Category)
	}

	quick := true
	quickOnly, err := store.Catalog(ctx, "", &quick)
	assert.NoError(t, err)
	assert.NotEmpty(t, quickOnly.Results)
	for _, rec := range quickOnly.Results {
		assert.True(t, rec.IsQuick)
	}
}

func TestCategories(t *testing.T) {
	store := NewRecommendationStore(instantSim())
	types, err := store.Categories(context.Background())
	assert.NoError(t, err)
	assert.Len(t, types, 5)
}

func TestUserList_StatusFilter(t *testing.T) {
	store := NewRecommendationStore(instantSim())
	ctx := context.Background()

	completed, err := store.UserList(ctx, internal.StatusCompleted, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, completed.Count)
	for _, ur := range completed.Results {
		assert.Equal(t, internal.StatusCompleted, ur.Status)
		assert.NotNil(t, ur.CompletedAt)
	}

	pending, err := store.UserList(ctx, internal.StatusPending, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, pending.Count)
}

func TestUpdateStatus_StampsCompletedAtOnce(t *testing.T) {
	store := NewRecommendationStore(instantSim())
	ctx := context.Background()

	// id 3 is pending in the fixtures.
	done, err := store.UpdateStatus(ctx, 3, internal.StatusCompleted, "worked well", 4)
	assert.NoError(t, err)
	assert.Equal(t, internal.StatusCompleted, done.Status)
	assert.NotNil(t, done.CompletedAt)
	assert.Equal(t, "worked well", done.UserFeedback)
	assert.Equal(t, 4, done.UserRating)

	first := *done.CompletedAt
	again, err := store.UpdateStatus(ctx, 3, internal.StatusCompleted, "", 0)
	assert.NoError(t, err)
	assert.Equal(t, first, *again.CompletedAt)
	// Empty feedback/rating do not erase what was set before.
	assert.Equal(t, "worked well", again.UserFeedback)
	assert.Equal(t, 4, again.UserRating)

	_, err = store.UpdateStatus(ctx, 404, internal.StatusAccepted, "", 0)
	assert.True(t, errors.Is(err, internal.ErrNotFound))
}

func TestRequestNew_ExhaustsCatalog(t *testing.T) {
	store := NewRecommendationStore(instantSim())
	ctx := context.Background()

	// Fixtures assign 8 of 10 catalog entries, leaving 2 available.
	seen := map[int]bool{}
	total := 0
	for i := 0; i < 10 && total < 2; i++ {
		created, err := store.RequestNew(ctx)
		assert.NoError(t, err)
		for _, ur := range created {
			assert.Equal(t, internal.StatusPending, ur.Status)
			assert.False(t, seen[ur.Recommendation.ID], "catalog entry assigned twice")
			seen[ur.Recommendation.ID] = true
		}
		total += len(created)
	}
	assert.Equal(t, 2, total)

	// Exhausted: an empty slice, not an error, and nothing new appears.
	before, err := store.UserList(ctx, "", 0, 0)
	assert.NoError(t, err)
	empty, err := store.RequestNew(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	after, err := store.UserList(ctx, "", 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, before.Count, after.Count)
}

func TestRequestNew_SequentialIDs(t *testing.T) {
	store := NewRecommendationStore(instantSim())

	created, err := store.RequestNew(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, created)
	for i, ur := range created {
		assert.Equal(t, 9+i, ur.ID)
	}
}
