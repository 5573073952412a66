package models

import "time"

type QuizQuestion struct {
	ID            int64     `json:"id"`
	CourseID      int64     `json:"course_id"`
	Question      string    `json:"question"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectOption string    `json:"correct_option,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type QuizQuestionInput struct {
	Question      string `json:"question" validate:"required"`
	OptionA       string `json:"option_a" validate:"required"`
	OptionB       string `json:"option_b" validate:"required"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option" validate:"required,oneof=A B C D a b c d"`
}

type QuizAttempt struct {
	ID        int64     `json:"id"`
	UserEmail string    `json:"user_email"`
	CourseID  int64     `json:"course_id"`
	Score     int       `json:"score"`
	AttemptNo int       `json:"attempt_no"`
	CreatedAt time.Time `json:"created_at"`
}

// QuizSubmission maps question ids to the chosen option letter.
type QuizSubmission struct {
	Answers map[int64]string `json:"answers" validate:"required"`
}

type AttemptRecord struct {
	CourseID int64 `json:"course_id" validate:"required,gt=0,lte=2147483647"`
	Score    int   `json:"score" validate:"gte=0"`
}

type QuizResult struct {
	Score   int `json:"score"`
	Total   int `json:"total"`
	Attempt int `json:"attempt"`
}

type QuizStatus struct {
	AttemptCount int `json:"attemptCount"`
	BestScore    int `json:"bestScore"`
	MaxAttempts  int `json:"maxAttempts"`
}
