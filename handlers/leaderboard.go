package handlers

import (
	"net/http"
	"strconv"
	"time"

	"LearningHubBackend/export"
	"LearningHubBackend/learning"
	"LearningHubBackend/models"
)

// GetLeaderboard - GET /api/leaderboard?limit=10
// Storage failures are answered with an empty list.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.Leaderboard.Top(r.Context(), learning.ClampLimit(limit))
	if err != nil {
		h.degraded(r, "leaderboard", err)
		entries = []models.LeaderboardEntry{}
	}
	respondWithJSON(w, http.StatusOK, entries)
}

// ExportLeaderboard - GET /api/leaderboard/export (xlsx)
func (h *Handler) ExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Leaderboard.Top(r.Context(), learning.MaxLeaderboardLimit)
	if err != nil {
		h.serverError(w, r, "export leaderboard", err)
		return
	}
	f, err := export.LeaderboardWorkbook(entries)
	if err != nil {
		h.serverError(w, r, "export leaderboard", err)
		return
	}
	defer f.Close()

	name := "leaderboard-" + time.Now().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	if err := f.Write(w); err != nil {
		h.Log.Sugar().Warnw("leaderboard export write failed", "err", err)
	}
}
