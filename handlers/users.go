package handlers

import (
	"net/http"

	"LearningHubBackend/models"
	"LearningHubBackend/storage"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

// UpdateMe - PUT /api/users/me
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var in models.UserUpdate
	if !h.decode(w, r, &in) {
		return
	}
	c := caller(r)

	hash := ""
	if in.Password != "" {
		user, err := h.Store.GetUser(r.Context(), c.UserID)
		if err != nil {
			notFoundOr(h, w, r, "update me", "User", err)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.OldPassword)) != nil {
			respondWithError(w, http.StatusUnauthorized, "Current password is incorrect")
			return
		}
		b, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Error processing password")
			return
		}
		hash = string(b)
	}

	if err := h.Store.UpdateUserProfile(r.Context(), c.UserID, in.Name, hash); err != nil {
		notFoundOr(h, w, r, "update me", "User", err)
		return
	}
	h.GetMe(w, r)
}

// UploadProfilePicture - POST /api/users/me/picture (multipart "picture")
func (h *Handler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return
	}
	url, ok := h.saveUpload(w, r, "picture", "profiles", storage.ImageExts, true)
	if !ok {
		return
	}
	if err := h.Store.UpdateProfilePicture(r.Context(), caller(r).UserID, url); err != nil {
		notFoundOr(h, w, r, "profile picture", "User", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"profile_pic": url,
	})
}

// ListUsers - GET /api/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		h.serverError(w, r, "list users", err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// UpdateUserRole - PUT /api/users/{id}/role
func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	if userID == caller(r).UserID {
		respondWithError(w, http.StatusBadRequest, "You cannot change your own role")
		return
	}
	var in models.RoleUpdate
	if !h.decode(w, r, &in) {
		return
	}
	if err := h.Store.UpdateUserRole(r.Context(), userID, in.Role); err != nil {
		notFoundOr(h, w, r, "update role", "User", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Role updated", "role": string(in.Role)})
}

// DeleteUser - DELETE /api/users/{id}
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	if userID == caller(r).UserID {
		respondWithError(w, http.StatusBadRequest, "You cannot delete your own account here")
		return
	}
	if err := h.Store.DeleteUser(r.Context(), userID); err != nil {
		notFoundOr(h, w, r, "delete user", "User", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
