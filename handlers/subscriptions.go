package handlers

import (
	"net/http"

	"LearningHubBackend/models"
	"LearningHubBackend/storage"
)

// Subscribe - POST /api/activities/{id}/subscribe
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	activityID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}
	if err := h.Subscriptions.Subscribe(r.Context(), activityID, caller(r).User()); err != nil {
		h.serverError(w, r, "subscribe", err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.Subscription{IsSubscribed: true})
}

// IsSubscribed - GET /api/activities/{id}/is-subscribed
// Storage failures are answered with isSubscribed=false.
func (h *Handler) IsSubscribed(w http.ResponseWriter, r *http.Request) {
	activityID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}
	subscribed, err := h.Subscriptions.IsSubscribed(r.Context(), activityID, caller(r).UserID)
	if err != nil {
		h.degraded(r, "is_subscribed", err)
		subscribed = false
	}
	respondWithJSON(w, http.StatusOK, models.Subscription{IsSubscribed: subscribed})
}

// requireSubscription lets admins and instructors through and learners only
// once they subscribed to the activity. A failed check counts as not
// subscribed.
func (h *Handler) requireSubscription(w http.ResponseWriter, r *http.Request, activityID int64) bool {
	c := caller(r)
	if c.Role.Staff() {
		return true
	}
	subscribed, err := h.Subscriptions.IsSubscribed(r.Context(), activityID, c.UserID)
	if err != nil {
		h.degraded(r, "subscription_gate", err)
		subscribed = false
	}
	if !subscribed {
		respondWithError(w, http.StatusForbidden, "Subscribe to this activity to access its content")
		return false
	}
	return true
}

// GetRegistrations - GET /api/activities/{id}/registrations
func (h *Handler) GetRegistrations(w http.ResponseWriter, r *http.Request) {
	activityID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}
	if !h.requireManager(w, r, activityID) {
		return
	}
	regs, err := h.Store.ListRegistrations(r.Context(), activityID)
	if err != nil {
		h.serverError(w, r, "registrations", err)
		return
	}
	respondWithJSON(w, http.StatusOK, regs)
}

// SubmitTask - POST /api/activities/{id}/tasks (multipart "file")
func (h *Handler) SubmitTask(w http.ResponseWriter, r *http.Request) {
	activityID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}
	if !h.requireSubscription(w, r, activityID) {
		return
	}
	c := caller(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return
	}
	filePath, ok := h.saveUpload(w, r, "file", "tasks", storage.DocumentExts, true)
	if !ok {
		return
	}

	sub := &models.TaskSubmission{
		ActivityID: activityID, UserID: c.UserID, StudentName: c.Name, StudentEmail: c.Email, FilePath: filePath,
	}
	if err := h.Store.CreateTaskSubmission(r.Context(), sub); err != nil {
		h.serverError(w, r, "submit task", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, sub)
}

// GetTaskSubmissions - GET /api/activities/{id}/tasks
func (h *Handler) GetTaskSubmissions(w http.ResponseWriter, r *http.Request) {
	activityID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}
	if !h.requireManager(w, r, activityID) {
		return
	}
	subs, err := h.Store.TaskSubmissions(r.Context(), activityID)
	if err != nil {
		h.serverError(w, r, "task submissions", err)
		return
	}
	respondWithJSON(w, http.StatusOK, subs)
}
