package handlers

import (
	"net/http"
	"strings"

	"LearningHubBackend/storage"
)

// GetMaterials - GET /api/activities/{id}/materials
func (h *Handler) GetMaterials(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}
	if !h.requireSubscription(w, r, courseID) {
		return
	}
	materials, err := h.Store.CourseMaterials(r.Context(), courseID)
	if err != nil {
		h.serverError(w, r, "materials", err)
		return
	}
	respondWithJSON(w, http.StatusOK, materials)
}

// UploadMaterial - POST /api/activities/{id}/materials (multipart "file", "title")
func (h *Handler) UploadMaterial(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}
	if !h.requireManager(w, r, courseID) {
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return
	}
	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		respondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	filePath, ok := h.saveUpload(w, r, "file", "materials", storage.DocumentExts, true)
	if !ok {
		return
	}
	m, err := h.Store.CreateMaterial(r.Context(), courseID, title, filePath)
	if err != nil {
		h.serverError(w, r, "add material", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, m)
}

// DeleteMaterial - DELETE /api/materials/{id}
func (h *Handler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid material id")
		return
	}
	courseID, err := h.Store.MaterialCourse(r.Context(), id)
	if err != nil {
		notFoundOr(h, w, r, "material course", "Material", err)
		return
	}
	if !h.requireManager(w, r, courseID) {
		return
	}
	if err := h.Store.DeleteMaterial(r.Context(), id); err != nil {
		notFoundOr(h, w, r, "delete material", "Material", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Material deleted successfully"})
}
