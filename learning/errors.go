package learning

import "errors"

var (
	ErrAttemptLimit = errors.New("quiz attempt limit reached")
	ErrNoQuestions  = errors.New("course has no quiz questions")
	ErrInvalidScore = errors.New("score must be between 0 and the number of questions")
	ErrUnknownVideo = errors.New("video does not exist")
)
