package learning_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"LearningHubBackend/database/memstore"
	"LearningHubBackend/learning"
	"LearningHubBackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedQuiz(store *memstore.Store, courseID int64, correct ...string) []models.QuizQuestion {
	var qs []models.QuizQuestion
	for _, c := range correct {
		qs = append(qs, store.AddQuestion(models.QuizQuestion{
			CourseID: courseID, Question: "?", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectOption: c,
		}))
	}
	return qs
}

func TestScore(t *testing.T) {
	qs := []models.QuizQuestion{
		{ID: 1, CorrectOption: "A"},
		{ID: 2, CorrectOption: "C"},
		{ID: 3, CorrectOption: "D"},
	}
	assert.Equal(t, 2, learning.Score(qs, map[int64]string{1: "a", 2: " C ", 3: "B"}))
	assert.Equal(t, 0, learning.Score(qs, map[int64]string{99: "A"}))
	assert.Equal(t, 0, learning.Score(qs, nil))
}

func TestBestScoreIsMaximum(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seedQuiz(store, 9, "A", "B", "C", "D", "A")
	tracker := learning.NewQuizTracker(store, 3)

	for _, s := range []int{3, 5, 4} {
		_, err := tracker.Record(ctx, "amy@hub.test", 9, s)
		require.NoError(t, err)
	}

	status, err := tracker.Status(ctx, "amy@hub.test", 9)
	require.NoError(t, err)
	assert.Equal(t, models.QuizStatus{AttemptCount: 3, BestScore: 5, MaxAttempts: 3}, status)
}

func TestStatusWithoutAttempts(t *testing.T) {
	tracker := learning.NewQuizTracker(memstore.New(), 0)

	status, err := tracker.Status(context.Background(), "nobody@hub.test", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, status.AttemptCount)
	assert.Equal(t, 0, status.BestScore)
	assert.Equal(t, learning.DefaultMaxAttempts, status.MaxAttempts)
}

func TestSubmitCapsAttempts(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seedQuiz(store, 4, "A", "B")
	qs, _ := store.CourseQuestions(ctx, 4)
	tracker := learning.NewQuizTracker(store, learning.DefaultMaxAttempts)

	res, err := tracker.Submit(ctx, "amy@hub.test", 4, map[int64]string{qs[0].ID: "A"})
	require.NoError(t, err)
	assert.Equal(t, models.QuizResult{Score: 1, Total: 2, Attempt: 1}, res)

	res, err = tracker.Submit(ctx, "amy@hub.test", 4, map[int64]string{qs[0].ID: "A", qs[1].ID: "B"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Attempt)

	_, err = tracker.Submit(ctx, "amy@hub.test", 4, map[int64]string{qs[0].ID: "A"})
	assert.ErrorIs(t, err, learning.ErrAttemptLimit)

	status, err := tracker.Status(ctx, "amy@hub.test", 4)
	require.NoError(t, err)
	assert.Equal(t, 2, status.AttemptCount)
	assert.Equal(t, 2, status.BestScore)
}

func TestConcurrentAttemptsNeverExceedCap(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seedQuiz(store, 1, "A", "B", "C", "D", "A", "B", "C", "D", "A", "B")
	tracker := learning.NewQuizTracker(store, 2)

	var ok int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := tracker.Record(ctx, "amy@hub.test", 1, score); err == nil {
				atomic.AddInt32(&ok, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 2, ok)
	count, _, err := store.AttemptStats(ctx, "amy@hub.test", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSubmitWithoutQuestions(t *testing.T) {
	_, err := learning.NewQuizTracker(memstore.New(), 2).Submit(context.Background(), "amy@hub.test", 1, nil)
	assert.ErrorIs(t, err, learning.ErrNoQuestions)
}

func TestRecordRejectsNegativeScore(t *testing.T) {
	_, err := learning.NewQuizTracker(memstore.New(), 2).Record(context.Background(), "amy@hub.test", 1, -1)
	assert.ErrorIs(t, err, learning.ErrInvalidScore)
}

func TestRecordNeedsQuestions(t *testing.T) {
	_, err := learning.NewQuizTracker(memstore.New(), 2).Record(context.Background(), "amy@hub.test", 777, 1)
	assert.ErrorIs(t, err, learning.ErrNoQuestions)
}

func TestRecordRejectsScoreAboveQuestionCount(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seedQuiz(store, 3, "A", "B")
	tracker := learning.NewQuizTracker(store, 2)

	_, err := tracker.Record(ctx, "amy@hub.test", 3, 1000000)
	assert.ErrorIs(t, err, learning.ErrInvalidScore)

	n, err := tracker.Record(ctx, "amy@hub.test", 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	status, err := tracker.Status(ctx, "amy@hub.test", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, status.AttemptCount)
	assert.Equal(t, 2, status.BestScore)
}

func TestHideAnswers(t *testing.T) {
	qs := []models.QuizQuestion{{ID: 1, CorrectOption: "B"}}
	hidden := learning.HideAnswers(qs)
	assert.Empty(t, hidden[0].CorrectOption)
	assert.Equal(t, "B", qs[0].CorrectOption)
}
