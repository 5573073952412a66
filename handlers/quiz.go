package handlers

import (
	"errors"
	"net/http"

	"LearningHubBackend/learning"
	"LearningHubBackend/models"

	"github.com/gorilla/mux"
)

// GetCourseQuiz - GET /api/activities/{id}/quiz
func (h *Handler) GetCourseQuiz(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}
	if !h.requireSubscription(w, r, courseID) {
		return
	}
	questions, err := h.Store.CourseQuestions(r.Context(), courseID)
	if err != nil {
		h.serverError(w, r, "course quiz", err)
		return
	}
	if !caller(r).Role.Staff() {
		questions = learning.HideAnswers(questions)
	}
	respondWithJSON(w, http.StatusOK, questions)
}

// AddQuizQuestion - POST /api/activities/{id}/quiz
func (h *Handler) AddQuizQuestion(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}
	if !h.requireManager(w, r, courseID) {
		return
	}
	var in models.QuizQuestionInput
	if !h.decode(w, r, &in) {
		return
	}
	q, err := h.Store.CreateQuestion(r.Context(), courseID, in)
	if err != nil {
		h.serverError(w, r, "add question", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, q)
}

// DeleteQuizQuestion - DELETE /api/quiz/questions/{id}
func (h *Handler) DeleteQuizQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid question id")
		return
	}
	courseID, err := h.Store.QuestionCourse(r.Context(), id)
	if err != nil {
		notFoundOr(h, w, r, "question course", "Question", err)
		return
	}
	if !h.requireManager(w, r, courseID) {
		return
	}
	if err := h.Store.DeleteQuestion(r.Context(), id); err != nil {
		notFoundOr(h, w, r, "delete question", "Question", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Question deleted successfully"})
}

func (h *Handler) quizError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, learning.ErrAttemptLimit):
		respondWithError(w, http.StatusForbidden, "Maximum attempts reached for this quiz")
	case errors.Is(err, learning.ErrNoQuestions):
		respondWithError(w, http.StatusNotFound, "This course has no quiz")
	case errors.Is(err, learning.ErrInvalidScore):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.serverError(w, r, "quiz attempt", err)
	}
}

// SubmitQuiz - POST /api/quiz/submit/{courseId}
func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "courseId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}
	var sub models.QuizSubmission
	if !h.decode(w, r, &sub) {
		return
	}
	if !h.requireSubscription(w, r, courseID) {
		return
	}
	res, err := h.Quizzes.Submit(r.Context(), caller(r).Email, courseID, sub.Answers)
	if err != nil {
		h.quizError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, res)
}

// RecordAttempt - POST /api/quiz/attempts
func (h *Handler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	var rec models.AttemptRecord
	if !h.decode(w, r, &rec) {
		return
	}
	if !h.requireSubscription(w, r, rec.CourseID) {
		return
	}
	n, err := h.Quizzes.Record(r.Context(), caller(r).Email, rec.CourseID, rec.Score)
	if err != nil {
		h.quizError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Attempt recorded",
		"attempt": n,
	})
}

// GetQuizStatus - GET /api/quiz/status/{courseId}/{email}
// Storage failures are answered with an empty status.
func (h *Handler) GetQuizStatus(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "courseId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}
	email := mux.Vars(r)["email"]
	if !canViewLearner(r, email) {
		respondWithError(w, http.StatusForbidden, "You can only view your own attempts")
		return
	}
	status, err := h.Quizzes.Status(r.Context(), email, courseID)
	if err != nil {
		h.degraded(r, "quiz_status", err)
		status = models.QuizStatus{MaxAttempts: h.Quizzes.MaxAttempts()}
	}
	respondWithJSON(w, http.StatusOK, status)
}
