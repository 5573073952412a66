package handlers

import (
	"net/http"

	"LearningHubBackend/middleware"

	"github.com/gorilla/mux"
)

// Routes mounts the public and authenticated API under /api.
func (h *Handler) Routes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/auth/register", h.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/team", h.GetTeam).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(h.Auth.Middleware)

	api.HandleFunc("/me", h.GetMe).Methods(http.MethodGet)
	api.HandleFunc("/users/me", h.UpdateMe).Methods(http.MethodPut)
	api.HandleFunc("/users/me/picture", h.UploadProfilePicture).Methods(http.MethodPost)

	// ==================== ACTIVITIES ====================
	api.HandleFunc("/activities/all", h.GetAllActivities).Methods(http.MethodGet)
	api.Handle("/activities/add", middleware.StaffOnly(http.HandlerFunc(h.AddActivity))).Methods(http.MethodPost)
	api.HandleFunc("/activities/update/{id:[0-9]+}", h.UpdateActivity).Methods(http.MethodPut)
	api.HandleFunc("/activities/delete/{id:[0-9]+}", h.DeleteActivity).Methods(http.MethodDelete)
	api.HandleFunc("/activities/{id:[0-9]+}", h.GetActivity).Methods(http.MethodGet)

	// ==================== VIDEOS & PROGRESS ====================
	api.HandleFunc("/activities/{id:[0-9]+}/videos", h.GetCourseVideos).Methods(http.MethodGet)
	api.HandleFunc("/activities/{id:[0-9]+}/videos", h.AddCourseVideo).Methods(http.MethodPost)
	api.HandleFunc("/videos/{id:[0-9]+}", h.DeleteCourseVideo).Methods(http.MethodDelete)
	api.HandleFunc("/progress/watch", h.MarkWatched).Methods(http.MethodPost)
	api.HandleFunc("/progress/watched/{courseId:[0-9]+}", h.GetWatchedVideos).Methods(http.MethodGet)
	api.HandleFunc("/progress/calculate/{courseId:[0-9]+}/{email}", h.CalculateProgress).Methods(http.MethodGet)

	// ==================== QUIZ ====================
	api.HandleFunc("/activities/{id:[0-9]+}/quiz", h.GetCourseQuiz).Methods(http.MethodGet)
	api.HandleFunc("/activities/{id:[0-9]+}/quiz", h.AddQuizQuestion).Methods(http.MethodPost)
	api.HandleFunc("/quiz/questions/{id:[0-9]+}", h.DeleteQuizQuestion).Methods(http.MethodDelete)
	api.HandleFunc("/quiz/submit/{courseId:[0-9]+}", h.SubmitQuiz).Methods(http.MethodPost)
	api.HandleFunc("/quiz/attempts", h.RecordAttempt).Methods(http.MethodPost)
	api.HandleFunc("/quiz/status/{courseId:[0-9]+}/{email}", h.GetQuizStatus).Methods(http.MethodGet)

	// ==================== MATERIALS, SUBSCRIPTIONS, TASKS ====================
	api.HandleFunc("/activities/{id:[0-9]+}/materials", h.GetMaterials).Methods(http.MethodGet)
	api.HandleFunc("/activities/{id:[0-9]+}/materials", h.UploadMaterial).Methods(http.MethodPost)
	api.HandleFunc("/materials/{id:[0-9]+}", h.DeleteMaterial).Methods(http.MethodDelete)
	api.HandleFunc("/activities/{id:[0-9]+}/subscribe", h.Subscribe).Methods(http.MethodPost)
	api.HandleFunc("/activities/{id:[0-9]+}/is-subscribed", h.IsSubscribed).Methods(http.MethodGet)
	api.HandleFunc("/activities/{id:[0-9]+}/registrations", h.GetRegistrations).Methods(http.MethodGet)
	api.HandleFunc("/activities/{id:[0-9]+}/tasks", h.SubmitTask).Methods(http.MethodPost)
	api.HandleFunc("/activities/{id:[0-9]+}/tasks", h.GetTaskSubmissions).Methods(http.MethodGet)

	// ==================== COMMUNITY ====================
	api.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}", h.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id:[0-9]+}/comments", h.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id:[0-9]+}/comments", h.AddComment).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}/react", h.ReactToPost).Methods(http.MethodPost)

	// ==================== NOTIFICATIONS ====================
	api.HandleFunc("/notifications/read-all", h.MarkAllNotificationsRead).Methods(http.MethodPut)
	api.HandleFunc("/notifications/{id:[0-9]+}/read", h.MarkNotificationRead).Methods(http.MethodPut)
	api.HandleFunc("/notifications/{userId}", h.GetNotifications).Methods(http.MethodGet)

	// ==================== LEADERBOARD ====================
	api.HandleFunc("/leaderboard", h.GetLeaderboard).Methods(http.MethodGet)
	api.Handle("/leaderboard/export", middleware.AdminOnly(http.HandlerFunc(h.ExportLeaderboard))).Methods(http.MethodGet)

	// Admin routes
	admin := api.NewRoute().Subrouter()
	admin.Use(middleware.AdminOnly)
	admin.HandleFunc("/stats", h.GetStats).Methods(http.MethodGet)
	admin.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/role", h.UpdateUserRole).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", h.DeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/sponsors", h.AddSponsor).Methods(http.MethodPost)
	admin.HandleFunc("/sponsors", h.GetSponsors).Methods(http.MethodGet)
	admin.HandleFunc("/sponsors/{id:[0-9]+}", h.DeleteSponsor).Methods(http.MethodDelete)
}
