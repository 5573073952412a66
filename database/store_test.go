//go:build testutil

package database_test

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"LearningHubBackend/database"
	"LearningHubBackend/database/testdb"
	"LearningHubBackend/learning"
	"LearningHubBackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var store *database.Store

func TestMain(m *testing.M) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		panic(err)
	}
	store = database.NewStore(h.DB)
	code := m.Run()
	h.Close()
	os.Exit(code)
}

func mustUser(t *testing.T, name, email string, role models.Role) *models.User {
	t.Helper()
	u, err := models.NewUser(name, email, "hash", role)
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(context.Background(), u))
	return u
}

func mustCourse(t *testing.T, owner *models.User) int64 {
	t.Helper()
	id, err := store.CreateActivity(context.Background(),
		models.ActivityInput{Title: "Go basics", Type: models.ActivityCourse}, "", owner.UserID)
	require.NoError(t, err)
	return id
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	mustUser(t, "Dup", "dup@hub.test", models.RoleStudent)
	u, _ := models.NewUser("Dup2", "DUP@hub.test", "hash", models.RoleStudent)
	assert.ErrorIs(t, store.CreateUser(context.Background(), u), database.ErrEmailTaken)
}

func TestProgressIsIdempotent(t *testing.T) {
	ctx := context.Background()
	owner := mustUser(t, "Owner", "owner-progress@hub.test", models.RoleInstructor)
	course := mustCourse(t, owner)
	tracker := learning.NewProgressTracker(store)

	p, err := tracker.Calculate(ctx, course, "amy@hub.test")
	require.NoError(t, err)
	assert.Zero(t, p)

	var ids []int64
	for i := 0; i < 3; i++ {
		v, err := store.CreateVideo(ctx, course, models.VideoInput{Title: "lesson", VideoLink: "https://videos.test/1"})
		require.NoError(t, err)
		ids = append(ids, v.ID)
	}

	require.NoError(t, tracker.MarkWatched(ctx, "amy@hub.test", ids[0]))
	require.NoError(t, tracker.MarkWatched(ctx, "AMY@hub.test", ids[0]))
	require.NoError(t, tracker.MarkWatched(ctx, "amy@hub.test", ids[1]))

	p, err = tracker.Calculate(ctx, course, "amy@hub.test")
	require.NoError(t, err)
	assert.Equal(t, 67, p)

	watched, err := store.WatchedVideoIDs(ctx, course, "amy@hub.test")
	require.NoError(t, err)
	assert.Equal(t, ids[:2], watched)
}

func mustQuiz(t *testing.T, courseID int64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := store.CreateQuestion(context.Background(), courseID, models.QuizQuestionInput{
			Question: "?", OptionA: "a", OptionB: "b", CorrectOption: "A",
		})
		require.NoError(t, err)
	}
}

func TestAttemptCapUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	course := mustCourse(t, mustUser(t, "Quiz", "quiz-race@hub.test", models.RoleInstructor))
	mustQuiz(t, course, 8)
	tracker := learning.NewQuizTracker(store, 2)

	var ok int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := tracker.Record(ctx, "race@hub.test", course, score); err == nil {
				atomic.AddInt32(&ok, 1)
			} else {
				assert.ErrorIs(t, err, learning.ErrAttemptLimit)
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 2, ok)
	status, err := tracker.Status(ctx, "race@hub.test", course)
	require.NoError(t, err)
	assert.Equal(t, 2, status.AttemptCount)
}

func TestBestScore(t *testing.T) {
	ctx := context.Background()
	course := mustCourse(t, mustUser(t, "Best", "quiz-best@hub.test", models.RoleInstructor))
	mustQuiz(t, course, 5)
	tracker := learning.NewQuizTracker(store, 3)
	for _, s := range []int{3, 5, 4} {
		_, err := tracker.Record(ctx, "best@hub.test", course, s)
		require.NoError(t, err)
	}
	status, err := tracker.Status(ctx, "best@hub.test", course)
	require.NoError(t, err)
	assert.Equal(t, 5, status.BestScore)
}

func TestRecordRejectsInflatedScore(t *testing.T) {
	ctx := context.Background()
	course := mustCourse(t, mustUser(t, "Cap", "quiz-cap@hub.test", models.RoleInstructor))
	mustQuiz(t, course, 2)
	tracker := learning.NewQuizTracker(store, 2)

	_, err := tracker.Record(ctx, "cap@hub.test", course, 1000000)
	assert.ErrorIs(t, err, learning.ErrInvalidScore)
	_, err = tracker.Record(ctx, "cap@hub.test", 987654, 1)
	assert.ErrorIs(t, err, learning.ErrNoQuestions)
}

func TestMarkWatchedUnknownVideo(t *testing.T) {
	ctx := context.Background()
	learner := mustUser(t, "Ghost", "ghost@hub.test", models.RoleStudent)

	for id := int64(900001); id <= 900005; id++ {
		assert.ErrorIs(t, store.MarkVideoWatched(ctx, learner.Email, id), learning.ErrUnknownVideo)
	}

	counts, err := store.EngagementCounts(ctx, learning.ExcludedRoles)
	require.NoError(t, err)
	for _, c := range counts {
		if c.UserID == learner.UserID {
			assert.Zero(t, c.CompletedVideos)
		}
	}
}

func TestRegistrationDedup(t *testing.T) {
	ctx := context.Background()
	gate := learning.NewSubscriptionGate(store)
	amy := models.User{UserID: "STU-reg", Name: "Amy", Email: "amy-reg@hub.test"}

	require.NoError(t, gate.Subscribe(ctx, 12, amy))
	require.NoError(t, gate.Subscribe(ctx, 12, amy))

	ok, err := gate.IsSubscribed(ctx, 12, amy.UserID)
	require.NoError(t, err)
	assert.True(t, ok)

	regs, err := store.ListRegistrations(ctx, 12)
	require.NoError(t, err)
	assert.Len(t, regs, 1)
}

func TestLeaderboardExcludesStaff(t *testing.T) {
	ctx := context.Background()
	learner := mustUser(t, "Lea", "lea@hub.test", models.RoleStudent)
	admin := mustUser(t, "Ada", "ada-lb@hub.test", models.RoleAdmin)
	course := mustCourse(t, admin)

	v, err := store.CreateVideo(ctx, course, models.VideoInput{Title: "x", VideoLink: "https://videos.test/x"})
	require.NoError(t, err)
	require.NoError(t, store.MarkVideoWatched(ctx, learner.Email, v.ID))
	post, err := store.CreatePost(ctx, learner.UserID, "hello", "")
	require.NoError(t, err)
	_, err = store.CreateComment(ctx, post.ID, learner.UserID, "first")
	require.NoError(t, err)
	_, err = store.CreatePost(ctx, admin.UserID, "admin news", "")
	require.NoError(t, err)

	top, err := learning.NewLeaderboard(store, learning.DefaultWeights).Top(ctx, 100)
	require.NoError(t, err)
	for _, e := range top {
		assert.NotEqual(t, admin.UserID, e.UserID)
		if e.UserID == learner.UserID {
			assert.Equal(t, 10+5+2, e.Points)
		}
	}
}

func TestToggleReaction(t *testing.T) {
	ctx := context.Background()
	owner := mustUser(t, "Poster", "poster@hub.test", models.RoleStudent)
	fan := mustUser(t, "Fan", "fan@hub.test", models.RoleStudent)
	post, err := store.CreatePost(ctx, owner.UserID, "look", "")
	require.NoError(t, err)

	out, err := store.ToggleReaction(ctx, post.ID, fan.UserID, "like")
	require.NoError(t, err)
	assert.Equal(t, models.ReactionAdded, out)

	out, err = store.ToggleReaction(ctx, post.ID, fan.UserID, "love")
	require.NoError(t, err)
	assert.Equal(t, models.ReactionUpdated, out)

	out, err = store.ToggleReaction(ctx, post.ID, fan.UserID, "love")
	require.NoError(t, err)
	assert.Equal(t, models.ReactionRemoved, out)
}

func TestNotificationsLifecycle(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, store.InsertNotification(ctx, models.Notification{
		RecipientID: "STU-note", SenderName: "Bob", Message: "Bob commented", Type: models.NotificationComment,
	}))

	notes, err := store.ListNotifications(ctx, "STU-note", 50)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.False(t, notes[0].IsRead)

	assert.ErrorIs(t, store.MarkNotificationRead(ctx, notes[0].ID, "STU-other"), database.ErrNotFound)
	require.NoError(t, store.MarkNotificationRead(ctx, notes[0].ID, "STU-note"))

	n, err := store.PruneReadNotifications(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))
}

func TestDeleteActivityCleansCourseContent(t *testing.T) {
	ctx := context.Background()
	owner := mustUser(t, "Del", "del@hub.test", models.RoleInstructor)
	course := mustCourse(t, owner)
	_, err := store.CreateVideo(ctx, course, models.VideoInput{Title: "v", VideoLink: "https://videos.test/v"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteActivity(ctx, course))
	n, err := store.CountCourseVideos(ctx, course)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.ErrorIs(t, store.DeleteActivity(ctx, course), database.ErrNotFound)
}
