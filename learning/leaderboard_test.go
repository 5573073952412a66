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

func TestDefaultWeightsPoints(t *testing.T) {
	w := learning.DefaultWeights
	assert.Equal(t, 20, w.Points(models.EngagementCounts{CompletedVideos: 2}))
	assert.Equal(t, 4, w.Points(models.EngagementCounts{QuizScoreSum: 4}))
	assert.Equal(t, 5, w.Points(models.EngagementCounts{Posts: 1}))
	assert.Equal(t, 6, w.Points(models.EngagementCounts{Comments: 3}))

	c := models.EngagementCounts{CompletedVideos: 2, QuizScoreSum: 4, Posts: 1, Comments: 3}
	assert.Equal(t, 35, w.Points(c))
}

func TestCustomWeights(t *testing.T) {
	w := learning.Weights{VideoCompletion: 5, QuizPoint: 1, Post: 5, Comment: 2}
	c := models.EngagementCounts{CompletedVideos: 2, QuizScoreSum: 4, Posts: 1, Comments: 3}
	assert.Equal(t, 25, w.Points(c))
}

func TestLeaderboardFromStore(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	amy := store.AddUser(models.User{UserID: "STU-amy", Name: "Amy", Email: "amy@hub.test", Role: models.RoleStudent})
	bob := store.AddUser(models.User{UserID: "STU-bob", Name: "Bob", Email: "bob@hub.test", Role: models.RoleStudent})
	for _, staff := range []models.User{
		{UserID: "ADM-1", Email: "admin@hub.test", Role: models.RoleAdmin},
		{UserID: "INS-1", Email: "ins@hub.test", Role: models.RoleInstructor},
		{UserID: "CMP-1", Email: "cmp@hub.test", Role: models.RoleCompany},
	} {
		store.AddUser(staff)
		store.AddPost(models.Post{UserID: staff.UserID})
		store.AddPost(models.Post{UserID: staff.UserID})
	}

	v1 := store.AddVideo(models.Video{CourseID: 1})
	v2 := store.AddVideo(models.Video{CourseID: 1})
	require.NoError(t, store.MarkVideoWatched(ctx, amy.Email, v1.ID))
	require.NoError(t, store.MarkVideoWatched(ctx, amy.Email, v2.ID))
	_, err := store.InsertAttempt(ctx, amy.Email, 1, 4, 2)
	require.NoError(t, err)
	store.AddPost(models.Post{UserID: amy.UserID})
	for i := 0; i < 3; i++ {
		store.AddComment(models.Comment{UserID: amy.UserID})
	}
	store.AddComment(models.Comment{UserID: bob.UserID})

	top, err := learning.NewLeaderboard(store, learning.DefaultWeights).Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "STU-amy", top[0].UserID)
	assert.Equal(t, 35, top[0].Points)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, "STU-bob", top[1].UserID)
	assert.Equal(t, 2, top[1].Points)
}

func TestRankNeverIncludesStaff(t *testing.T) {
	counts := []models.EngagementCounts{
		{UserID: "ADM-1", Role: models.RoleAdmin, Posts: 100},
		{UserID: "CMP-1", Role: models.RoleCompany, Posts: 100},
		{UserID: "INS-1", Role: models.RoleInstructor, Posts: 100},
		{UserID: "STU-1", Role: models.RoleStudent},
	}
	top := learning.Rank(counts, learning.DefaultWeights, 10)
	require.Len(t, top, 1)
	assert.Equal(t, "STU-1", top[0].UserID)
}

func TestRankOrdersAndTruncates(t *testing.T) {
	var counts []models.EngagementCounts
	for _, id := range []string{"c", "a", "b", "d"} {
		counts = append(counts, models.EngagementCounts{UserID: id, Role: models.RoleStudent, Comments: 1})
	}
	counts = append(counts, models.EngagementCounts{UserID: "z", Role: models.RoleStudent, Posts: 1})

	top := learning.Rank(counts, learning.DefaultWeights, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"z", "a", "b"}, []string{top[0].UserID, top[1].UserID, top[2].UserID})
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Points, top[i].Points)
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, learning.DefaultLeaderboardLimit, learning.ClampLimit(0))
	assert.Equal(t, 5, learning.ClampLimit(5))
	assert.Equal(t, learning.MaxLeaderboardLimit, learning.ClampLimit(1000))
}
