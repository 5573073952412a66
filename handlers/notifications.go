package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

const notificationPageSize = 50

// GetNotifications - GET /api/notifications/{userId}
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID != caller(r).UserID {
		respondWithError(w, http.StatusForbidden, "You can only read your own notifications")
		return
	}
	notes, err := h.Store.ListNotifications(r.Context(), userID, notificationPageSize)
	if err != nil {
		h.serverError(w, r, "notifications", err)
		return
	}
	respondWithJSON(w, http.StatusOK, notes)
}

// MarkNotificationRead - PUT /api/notifications/{id}/read
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}
	if err := h.Store.MarkNotificationRead(r.Context(), id, caller(r).UserID); err != nil {
		notFoundOr(h, w, r, "mark notification", "Notification", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// MarkAllNotificationsRead - PUT /api/notifications/read-all
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.Store.MarkAllNotificationsRead(r.Context(), caller(r).UserID)
	if err != nil {
		h.serverError(w, r, "mark all notifications", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true, "updated": n})
}
