package handlers

import (
	"net/http"

	"LearningHubBackend/models"

	"golang.org/x/sync/errgroup"
)

// GetStats - GET /api/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	var stats models.Stats
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		stats.TotalStudents, err = h.Store.CountStudents(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalActivities, err = h.Store.CountActivities(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalWorkshops, err = h.Store.CountWorkshops(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, "stats", err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
