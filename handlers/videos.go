package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"LearningHubBackend/learning"
	"LearningHubBackend/models"

	"github.com/gorilla/mux"
)

// GetCourseVideos - GET /api/activities/{id}/videos
func (h *Handler) GetCourseVideos(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}
	if !h.requireSubscription(w, r, courseID) {
		return
	}
	videos, err := h.Videos.CourseVideos(r.Context(), courseID)
	if err != nil {
		h.serverError(w, r, "course videos", err)
		return
	}
	respondWithJSON(w, http.StatusOK, learning.VisibleVideos(videos, caller(r).Role, time.Now()))
}

// AddCourseVideo - POST /api/activities/{id}/videos
func (h *Handler) AddCourseVideo(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}
	if !h.requireManager(w, r, courseID) {
		return
	}
	var in models.VideoInput
	if !h.decode(w, r, &in) {
		return
	}
	v, err := h.Store.CreateVideo(r.Context(), courseID, in)
	if err != nil {
		h.serverError(w, r, "add video", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, v)
}

// DeleteCourseVideo - DELETE /api/videos/{id}
func (h *Handler) DeleteCourseVideo(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid video id")
		return
	}
	courseID, err := h.Store.VideoCourse(r.Context(), videoID)
	if err != nil {
		notFoundOr(h, w, r, "video course", "Video", err)
		return
	}
	if !h.requireManager(w, r, courseID) {
		return
	}
	if err := h.Store.DeleteVideo(r.Context(), videoID); err != nil {
		notFoundOr(h, w, r, "delete video", "Video", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Video deleted successfully"})
}

// MarkWatched - POST /api/progress/watch
func (h *Handler) MarkWatched(w http.ResponseWriter, r *http.Request) {
	var req models.WatchRequest
	if !h.decode(w, r, &req) {
		return
	}
	err := h.Progress.MarkWatched(r.Context(), caller(r).Email, req.VideoID)
	if errors.Is(err, learning.ErrUnknownVideo) {
		respondWithError(w, http.StatusNotFound, "Video not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "mark watched", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true, "video_id": req.VideoID})
}

// GetWatchedVideos - GET /api/progress/watched/{courseId}
func (h *Handler) GetWatchedVideos(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "courseId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}
	ids, err := h.Videos.WatchedVideoIDs(r.Context(), courseID, caller(r).Email)
	if err != nil {
		h.degraded(r, "watched_videos", err)
		ids = []int64{}
	}
	respondWithJSON(w, http.StatusOK, ids)
}

// CalculateProgress - GET /api/progress/calculate/{courseId}/{email}
// Storage failures are answered with percent 0.
func (h *Handler) CalculateProgress(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "courseId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}
	email := mux.Vars(r)["email"]
	if !canViewLearner(r, email) {
		respondWithError(w, http.StatusForbidden, "You can only view your own progress")
		return
	}

	percent, err := h.Progress.Calculate(r.Context(), courseID, email)
	if err != nil {
		h.degraded(r, "progress", err)
		percent = 0
	}
	respondWithJSON(w, http.StatusOK, models.Progress{Percent: percent})
}

// canViewLearner allows staff to read anyone's learning data and learners
// only their own.
func canViewLearner(r *http.Request, email string) bool {
	c := caller(r)
	return c.Role.Staff() || strings.EqualFold(c.Email, email)
}
