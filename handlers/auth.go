package handlers

import (
	"errors"
	"net/http"
	"strings"

	"LearningHubBackend/database"
	"LearningHubBackend/models"

	"golang.org/x/crypto/bcrypt"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register - POST /api/auth/register. New accounts are always students.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var signup models.UserSignup
	if !h.decode(w, r, &signup) {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signup.Password), bcrypt.DefaultCost)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error processing password")
		return
	}

	user, err := models.NewUser(strings.TrimSpace(signup.Name), strings.ToLower(strings.TrimSpace(signup.Email)),
		string(hashedPassword), models.RoleStudent)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, database.ErrEmailTaken) {
			respondWithError(w, http.StatusConflict, "Email already registered")
			return
		}
		h.serverError(w, r, "register", err)
		return
	}

	h.issueToken(w, http.StatusCreated, user)
}

// Login - POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var login models.UserLogin
	if !h.decode(w, r, &login) {
		return
	}

	user, err := h.Store.GetUserByEmail(r.Context(), login.Email)
	if errors.Is(err, database.ErrNotFound) {
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		h.serverError(w, r, "login", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	h.issueToken(w, http.StatusOK, user)
}

func (h *Handler) issueToken(w http.ResponseWriter, code int, user *models.User) {
	token, err := h.Auth.GenerateToken(*user)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	user.Password = ""
	respondWithJSON(w, code, AuthResponse{Token: token, User: user})
}

// GetMe - GET /api/me
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.GetUser(r.Context(), caller(r).UserID)
	if err != nil {
		notFoundOr(h, w, r, "get me", "User", err)
		return
	}
	user.Password = ""
	respondWithJSON(w, http.StatusOK, user)
}

// GetTeam - GET /api/team
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.Store.Team(r.Context())
	if err != nil {
		h.serverError(w, r, "team", err)
		return
	}
	respondWithJSON(w, http.StatusOK, team)
}

// Health - GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.DBPing != nil {
		if err := h.DBPing(r.Context()); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unreachable"})
			return
		}
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "Learning Hub Backend"})
}
