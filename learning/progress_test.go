package learning_test

import (
	"context"
	"testing"

	"LearningHubBackend/database/memstore"
	"LearningHubBackend/learning"
	"LearningHubBackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	cases := []struct {
		watched, total, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds away from zero
		{3, 3, 100},
		{5, 3, 100},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, learning.Percent(c.watched, c.total), "%d/%d", c.watched, c.total)
	}
}

func TestCalculateEmptyCourseIsZero(t *testing.T) {
	store := memstore.New()
	tracker := learning.NewProgressTracker(store)

	for _, email := range []string{"a@hub.test", "b@hub.test", ""} {
		p, err := tracker.Calculate(context.Background(), 42, email)
		require.NoError(t, err)
		assert.Zero(t, p)
	}
}

func TestCalculateCountsDistinctCourseVideos(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	tracker := learning.NewProgressTracker(store)

	var course []models.Video
	for i := 0; i < 3; i++ {
		course = append(course, store.AddVideo(models.Video{CourseID: 1, Title: "lesson"}))
	}
	other := store.AddVideo(models.Video{CourseID: 2, Title: "elsewhere"})

	require.NoError(t, tracker.MarkWatched(ctx, "amy@hub.test", course[0].ID))
	require.NoError(t, tracker.MarkWatched(ctx, "amy@hub.test", other.ID))
	require.NoError(t, tracker.MarkWatched(ctx, "bob@hub.test", course[1].ID))

	p, err := tracker.Calculate(ctx, 1, "amy@hub.test")
	require.NoError(t, err)
	assert.Equal(t, 33, p)

	require.NoError(t, tracker.MarkWatched(ctx, "amy@hub.test", course[2].ID))
	p, err = tracker.Calculate(ctx, 1, "amy@hub.test")
	require.NoError(t, err)
	assert.Equal(t, 67, p)
}

func TestMarkWatchedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	tracker := learning.NewProgressTracker(store)
	v := store.AddVideo(models.Video{CourseID: 7})
	store.AddVideo(models.Video{CourseID: 7})

	require.NoError(t, tracker.MarkWatched(ctx, "amy@hub.test", v.ID))
	require.NoError(t, tracker.MarkWatched(ctx, "amy@hub.test", v.ID))

	n, err := store.CountWatchedVideos(ctx, 7, "amy@hub.test")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	p, err := tracker.Calculate(ctx, 7, "amy@hub.test")
	require.NoError(t, err)
	assert.Equal(t, 50, p)
}

func TestCalculatePropagatesStoreErrors(t *testing.T) {
	store := memstore.New()
	store.Err = memstore.ErrBroken

	p, err := learning.NewProgressTracker(store).Calculate(context.Background(), 1, "amy@hub.test")
	assert.ErrorIs(t, err, memstore.ErrBroken)
	assert.Zero(t, p)
}

func TestMarkWatchedUnknownVideo(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	amy := store.AddUser(models.User{UserID: "STU-amy", Name: "Amy", Email: "amy@hub.test", Role: models.RoleStudent})
	tracker := learning.NewProgressTracker(store)

	for id := int64(9001); id <= 9005; id++ {
		assert.ErrorIs(t, tracker.MarkWatched(ctx, amy.Email, id), learning.ErrUnknownVideo)
	}

	top, err := learning.NewLeaderboard(store, learning.DefaultWeights).Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Zero(t, top[0].CompletedVideos)
	assert.Zero(t, top[0].Points)
}
