package learning

import (
	"context"
	"errors"
	"strings"

	"LearningHubBackend/metrics"
	"LearningHubBackend/models"
)

const DefaultMaxAttempts = 2

type QuizStore interface {
	CourseQuestions(ctx context.Context, courseID int64) ([]models.QuizQuestion, error)
	// InsertAttempt stores the attempt only while the learner has fewer than
	// maxAttempts for the course, returning the new attempt number or
	// ErrAttemptLimit. The check and the insert must be atomic.
	InsertAttempt(ctx context.Context, email string, courseID int64, score, maxAttempts int) (int, error)
	AttemptStats(ctx context.Context, email string, courseID int64) (count int, best int, err error)
}

type QuizTracker struct {
	store       QuizStore
	maxAttempts int
}

func NewQuizTracker(store QuizStore, maxAttempts int) *QuizTracker {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &QuizTracker{store: store, maxAttempts: maxAttempts}
}

func (t *QuizTracker) MaxAttempts() int { return t.maxAttempts }

// Score counts answers whose letter matches the question's correct option.
func Score(questions []models.QuizQuestion, answers map[int64]string) int {
	score := 0
	for _, q := range questions {
		got, ok := answers[q.ID]
		if !ok {
			continue
		}
		if normalizeOption(got) != "" && normalizeOption(got) == normalizeOption(q.CorrectOption) {
			score++
		}
	}
	return score
}

func normalizeOption(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Submit grades the answers against the stored questions and records the
// attempt. The score is fixed before anything is written.
func (t *QuizTracker) Submit(ctx context.Context, email string, courseID int64, answers map[int64]string) (models.QuizResult, error) {
	questions, err := t.store.CourseQuestions(ctx, courseID)
	if err != nil {
		return models.QuizResult{}, err
	}
	if len(questions) == 0 {
		return models.QuizResult{}, ErrNoQuestions
	}
	score := Score(questions, answers)
	attempt, err := t.insert(ctx, email, courseID, score)
	if err != nil {
		return models.QuizResult{}, err
	}
	return models.QuizResult{Score: score, Total: len(questions), Attempt: attempt}, nil
}

// Record stores an already computed score, subject to the attempt cap. The
// score can not exceed the number of questions the course has.
func (t *QuizTracker) Record(ctx context.Context, email string, courseID int64, score int) (int, error) {
	if score < 0 {
		return 0, ErrInvalidScore
	}
	questions, err := t.store.CourseQuestions(ctx, courseID)
	if err != nil {
		return 0, err
	}
	if len(questions) == 0 {
		return 0, ErrNoQuestions
	}
	if score > len(questions) {
		return 0, ErrInvalidScore
	}
	return t.insert(ctx, email, courseID, score)
}

func (t *QuizTracker) insert(ctx context.Context, email string, courseID int64, score int) (int, error) {
	n, err := t.store.InsertAttempt(ctx, email, courseID, score, t.maxAttempts)
	if errors.Is(err, ErrAttemptLimit) {
		metrics.QuizAttemptsRejected.Inc()
	}
	return n, err
}

func (t *QuizTracker) Status(ctx context.Context, email string, courseID int64) (models.QuizStatus, error) {
	count, best, err := t.store.AttemptStats(ctx, email, courseID)
	if err != nil {
		return models.QuizStatus{MaxAttempts: t.maxAttempts}, err
	}
	return models.QuizStatus{AttemptCount: count, BestScore: best, MaxAttempts: t.maxAttempts}, nil
}

// HideAnswers strips the correct option for learner-facing listings.
func HideAnswers(questions []models.QuizQuestion) []models.QuizQuestion {
	out := make([]models.QuizQuestion, len(questions))
	for i, q := range questions {
		q.CorrectOption = ""
		out[i] = q
	}
	return out
}
