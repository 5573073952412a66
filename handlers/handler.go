package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"LearningHubBackend/database"
	"LearningHubBackend/learning"
	"LearningHubBackend/metrics"
	"LearningHubBackend/middleware"
	"LearningHubBackend/models"
	"LearningHubBackend/observability"
	"LearningHubBackend/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type LeaderboardSource interface {
	Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// VideoCatalog lists course videos; ProgressReader lists finished ones.
type VideoCatalog interface {
	CourseVideos(ctx context.Context, courseID int64) ([]models.Video, error)
	WatchedVideoIDs(ctx context.Context, courseID int64, email string) ([]int64, error)
}

type Deps struct {
	Store         *database.Store
	Videos        VideoCatalog
	Auth          *middleware.Auth
	Progress      *learning.ProgressTracker
	Quizzes       *learning.QuizTracker
	Leaderboard   LeaderboardSource
	Subscriptions *learning.SubscriptionGate
	Notifier      *learning.Notifier
	Files         storage.Storage
	Log           *zap.Logger
	DBPing        func(ctx context.Context) error
}

type Handler struct {
	Deps
	validate *validator.Validate
}

func New(d Deps) *Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Videos == nil && d.Store != nil {
		d.Videos = d.Store
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{Deps: d, validate: v}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// decode reads a JSON body into dst and validates it. It writes the error
// response itself and reports whether the handler should continue.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return h.check(w, dst)
}

func (h *Handler) check(w http.ResponseWriter, v interface{}) bool {
	err := h.validate.Struct(v)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	respondWithJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Fields: fields})
	return false
}

// pathID parses a positive id that fits the integer columns.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	return id, err == nil && id > 0
}

func caller(r *http.Request) *middleware.Claims {
	c, _ := middleware.ClaimsFromContext(r.Context())
	return c
}

// serverError logs and reports unexpected failures.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.Log.Error(op+" failed", zap.String("path", r.URL.Path), zap.Error(err))
	observability.CaptureErr(err)
	respondWithError(w, http.StatusInternalServerError, "Database error")
}

// degraded records a failure that is answered with a zero value.
func (h *Handler) degraded(r *http.Request, op string, err error) {
	metrics.DegradedResponses.WithLabelValues(op).Inc()
	h.Log.Warn("serving zero value after failure",
		zap.String("operation", op), zap.String("path", r.URL.Path), zap.Error(err))
	observability.CaptureErr(err)
}

func notFoundOr(h *Handler, w http.ResponseWriter, r *http.Request, op, what string, err error) {
	if errors.Is(err, database.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, what+" not found")
		return
	}
	h.serverError(w, r, op, err)
}
