package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"LearningHubBackend/database"
	"LearningHubBackend/models"
	"LearningHubBackend/storage"
)

const maxUploadSize = 50 << 20

// canManage reports whether the caller created the activity or is an admin.
func (h *Handler) canManage(ctx context.Context, r *http.Request, activityID int64) (bool, error) {
	c := caller(r)
	if c.Role == models.RoleAdmin {
		return true, nil
	}
	a, err := h.Store.GetActivity(ctx, activityID)
	if err != nil {
		return false, err
	}
	return a.CreatedBy == c.UserID, nil
}

// requireManager writes the error response and returns false when the caller
// may not manage the activity.
func (h *Handler) requireManager(w http.ResponseWriter, r *http.Request, activityID int64) bool {
	ok, err := h.canManage(r.Context(), r, activityID)
	if err != nil {
		notFoundOr(h, w, r, "activity ownership", "Activity", err)
		return false
	}
	if !ok {
		respondWithError(w, http.StatusForbidden, "Only the activity creator or an admin can do this")
		return false
	}
	return true
}

// activityForm reads an activity from a multipart form or a JSON body.
func (h *Handler) activityForm(w http.ResponseWriter, r *http.Request) (models.ActivityInput, string, bool) {
	var in models.ActivityInput
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return in, "", h.decode(w, r, &in)
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return in, "", false
	}
	in = models.ActivityInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: r.FormValue("description"),
		Type:        models.ActivityType(r.FormValue("type")),
		Instructor:  r.FormValue("instructor"),
		CommitteeID: r.FormValue("committee_id"),
		VideoLink:   r.FormValue("video_link"),
	}
	if raw := r.FormValue("event_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid event_date")
			return in, "", false
		}
		in.EventDate = &t
	}
	if !h.check(w, &in) {
		return in, "", false
	}

	filePath, ok := h.saveUpload(w, r, "material", "materials", storage.DocumentExts, false)
	return in, filePath, ok
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// saveUpload stores the multipart file under field. A missing optional file
// yields an empty path.
func (h *Handler) saveUpload(w http.ResponseWriter, r *http.Request, field, folder string, exts []string, required bool) (string, bool) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) && !required {
		return "", true
	}
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "File '"+field+"' is required")
		return "", false
	}
	defer file.Close()

	if err := storage.CheckExt(header.Filename, exts); err != nil {
		respondWithError(w, http.StatusBadRequest, "File type not allowed")
		return "", false
	}
	url, err := h.Files.Save(r.Context(), folder, header.Filename, file)
	if err != nil {
		h.serverError(w, r, "upload", err)
		return "", false
	}
	return url, true
}

// AddActivity - POST /api/activities/add
func (h *Handler) AddActivity(w http.ResponseWriter, r *http.Request) {
	in, filePath, ok := h.activityForm(w, r)
	if !ok {
		return
	}
	id, err := h.Store.CreateActivity(r.Context(), in, filePath, caller(r).UserID)
	if err != nil {
		h.serverError(w, r, "add activity", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Activity added successfully",
		"id":      id,
	})
}

// GetAllActivities - GET /api/activities/all
func (h *Handler) GetAllActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.Store.ListActivities(r.Context())
	if err != nil {
		h.serverError(w, r, "list activities", err)
		return
	}
	respondWithJSON(w, http.StatusOK, activities)
}

// GetActivity - GET /api/activities/{id}
func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}
	a, err := h.Store.GetActivity(r.Context(), id)
	if err != nil {
		notFoundOr(h, w, r, "get activity", "Activity", err)
		return
	}
	respondWithJSON(w, http.StatusOK, a)
}

// UpdateActivity - PUT /api/activities/update/{id}
func (h *Handler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}
	if !h.requireManager(w, r, id) {
		return
	}
	in, filePath, ok := h.activityForm(w, r)
	if !ok {
		return
	}
	if err := h.Store.UpdateActivity(r.Context(), id, in, filePath); err != nil {
		notFoundOr(h, w, r, "update activity", "Activity", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Activity updated successfully"})
}

// DeleteActivity - DELETE /api/activities/delete/{id}
func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}
	if !h.requireManager(w, r, id) {
		return
	}
	err := h.Store.DeleteActivity(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "Activity not found")
		return
	}
	if err != nil {
		// the activity row is gone; only dependent cleanup failed
		h.degraded(r, "activity_cleanup", err)
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Activity deleted successfully"})
}
