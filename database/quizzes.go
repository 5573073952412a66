package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"LearningHubBackend/learning"
	"LearningHubBackend/models"
)

func (s *Store) CreateQuestion(ctx context.Context, courseID int64, in models.QuizQuestionInput) (*models.QuizQuestion, error) {
	q := models.QuizQuestion{
		CourseID: courseID, Question: in.Question,
		OptionA: in.OptionA, OptionB: in.OptionB, OptionC: in.OptionC, OptionD: in.OptionD,
		CorrectOption: strings.ToUpper(strings.TrimSpace(in.CorrectOption)),
	}
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO quiz_questions (course_id, question, option_a, option_b, option_c, option_d, correct_option)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		courseID, q.Question, q.OptionA, q.OptionB, nullString(q.OptionC), nullString(q.OptionD), q.CorrectOption,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("CreateQuestion query failed: %w", err)
	}
	return &q, nil
}

func (s *Store) CourseQuestions(ctx context.Context, courseID int64) ([]models.QuizQuestion, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, course_id, question, option_a, option_b, COALESCE(option_c, ''), COALESCE(option_d, ''),
		       correct_option, created_at
		FROM quiz_questions
		WHERE course_id = $1
		ORDER BY id`, courseID)
	if err != nil {
		return nil, fmt.Errorf("CourseQuestions query failed: %w", err)
	}
	defer rows.Close()

	qs := []models.QuizQuestion{}
	for rows.Next() {
		var q models.QuizQuestion
		if err := rows.Scan(&q.ID, &q.CourseID, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD,
			&q.CorrectOption, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("CourseQuestions scan failed: %w", err)
		}
		qs = append(qs, q)
	}
	return qs, rows.Err()
}

func (s *Store) QuestionCourse(ctx context.Context, questionID int64) (int64, error) {
	var courseID int64
	err := s.DB.QueryRowContext(ctx, `SELECT course_id FROM quiz_questions WHERE id = $1`, questionID).Scan(&courseID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("QuestionCourse query failed: %w", err)
	}
	return courseID, nil
}

func (s *Store) DeleteQuestion(ctx context.Context, questionID int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM quiz_questions WHERE id = $1`, questionID)
	if err != nil {
		return fmt.Errorf("DeleteQuestion query failed: %w", err)
	}
	return expectOne(res)
}

// InsertAttempt numbers the attempt and checks the cap in one statement.
// Concurrent submissions that compute the same attempt_no collide on
// UNIQUE(user_email, course_id, attempt_no); the loser retries against the
// new count, so at most maxAttempts rows ever exist.
func (s *Store) InsertAttempt(ctx context.Context, email string, courseID int64, score, maxAttempts int) (int, error) {
	for try := 0; try <= maxAttempts; try++ {
		var attemptNo int
		err := s.DB.QueryRowContext(ctx, `
			INSERT INTO quiz_attempts (user_email, course_id, score, attempt_no)
			SELECT LOWER($1::text), $2::integer, $3::integer, COUNT(*) + 1
			FROM quiz_attempts
			WHERE user_email = LOWER($1::text) AND course_id = $2::integer
			HAVING COUNT(*) < $4::integer
			RETURNING attempt_no`,
			email, courseID, score, maxAttempts,
		).Scan(&attemptNo)
		switch {
		case err == nil:
			return attemptNo, nil
		case errors.Is(err, sql.ErrNoRows):
			return 0, learning.ErrAttemptLimit
		case isUniqueViolation(err):
			continue
		default:
			return 0, fmt.Errorf("InsertAttempt query failed: %w", err)
		}
	}
	return 0, learning.ErrAttemptLimit
}

func (s *Store) AttemptStats(ctx context.Context, email string, courseID int64) (int, int, error) {
	var count, best int
	err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(MAX(score), 0)
		FROM quiz_attempts
		WHERE user_email = LOWER($1) AND course_id = $2`, email, courseID,
	).Scan(&count, &best)
	if err != nil {
		return 0, 0, fmt.Errorf("AttemptStats query failed: %w", err)
	}
	return count, best, nil
}
