package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"LearningHubBackend/models"
	"LearningHubBackend/storage"
)

// GetPosts - GET /api/posts?page=1&limit=20
func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	posts, err := h.Store.ListPosts(r.Context(), limit, (page-1)*limit)
	if err != nil {
		h.serverError(w, r, "list posts", err)
		return
	}
	respondWithJSON(w, http.StatusOK, posts)
}

// CreatePost - POST /api/posts (JSON, or multipart with optional "image")
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in models.PostInput
	imagePath := ""
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			respondWithError(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
			return
		}
		in.Content = strings.TrimSpace(r.FormValue("content"))
		if !h.check(w, &in) {
			return
		}
		var ok bool
		if imagePath, ok = h.saveUpload(w, r, "image", "posts", storage.ImageExts, false); !ok {
			return
		}
	} else if !h.decode(w, r, &in) {
		return
	}

	post, err := h.Store.CreatePost(r.Context(), caller(r).UserID, in.Content, imagePath)
	if err != nil {
		h.serverError(w, r, "create post", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, post)
}

// DeletePost - DELETE /api/posts/{id}
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	owner, err := h.Store.PostOwner(r.Context(), postID)
	if err != nil {
		notFoundOr(h, w, r, "post owner", "Post", err)
		return
	}
	c := caller(r)
	if owner != c.UserID && c.Role != models.RoleAdmin {
		respondWithError(w, http.StatusForbidden, "You can only delete your own posts")
		return
	}
	if err := h.Store.DeletePost(r.Context(), postID); err != nil {
		notFoundOr(h, w, r, "delete post", "Post", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}

// GetComments - GET /api/posts/{id}/comments
func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	comments, err := h.Store.PostComments(r.Context(), postID)
	if err != nil {
		h.serverError(w, r, "list comments", err)
		return
	}
	respondWithJSON(w, http.StatusOK, comments)
}

// AddComment - POST /api/posts/{id}/comments
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	var in models.CommentInput
	if !h.decode(w, r, &in) {
		return
	}
	owner, err := h.Store.PostOwner(r.Context(), postID)
	if err != nil {
		notFoundOr(h, w, r, "post owner", "Post", err)
		return
	}

	c := caller(r)
	comment, err := h.Store.CreateComment(r.Context(), postID, c.UserID, in.Content)
	if err != nil {
		h.serverError(w, r, "add comment", err)
		return
	}
	comment.AuthorName, comment.AuthorPic = c.Name, c.ProfilePic

	h.Notifier.NotifyOwner(owner, c.User(), models.NotificationComment, c.Name+" commented on your post")
	respondWithJSON(w, http.StatusCreated, comment)
}

// ReactToPost - POST /api/posts/{id}/react
func (h *Handler) ReactToPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	var in models.ReactionInput
	if !h.decode(w, r, &in) {
		return
	}
	owner, err := h.Store.PostOwner(r.Context(), postID)
	if err != nil {
		notFoundOr(h, w, r, "post owner", "Post", err)
		return
	}

	c := caller(r)
	outcome, err := h.Store.ToggleReaction(r.Context(), postID, c.UserID, in.Type)
	if err != nil {
		h.serverError(w, r, "react", err)
		return
	}
	if outcome == models.ReactionAdded {
		h.Notifier.NotifyOwner(owner, c.User(), models.NotificationReaction, c.Name+" reacted to your post")
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"outcome": outcome,
		"type":    in.Type,
	})
}
