package handlers

import (
	"net/http"
	"strings"

	"LearningHubBackend/models"
	"LearningHubBackend/storage"
)

// GetSponsors - GET /api/sponsors
func (h *Handler) GetSponsors(w http.ResponseWriter, r *http.Request) {
	sponsors, err := h.Store.ListSponsors(r.Context())
	if err != nil {
		h.serverError(w, r, "list sponsors", err)
		return
	}
	respondWithJSON(w, http.StatusOK, sponsors)
}

// AddSponsor - POST /api/sponsors (multipart "name", "kind", "website", "logo")
func (h *Handler) AddSponsor(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return
	}
	sp := &models.Sponsor{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Kind:    models.SponsorKind(r.FormValue("kind")),
		Website: strings.TrimSpace(r.FormValue("website")),
	}
	if sp.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if sp.Kind != models.KindSponsor && sp.Kind != models.KindPartner {
		respondWithError(w, http.StatusBadRequest, "Kind must be sponsor or partner")
		return
	}
	logo, ok := h.saveUpload(w, r, "logo", "sponsors", storage.ImageExts, false)
	if !ok {
		return
	}
	sp.LogoPath = logo

	if err := h.Store.CreateSponsor(r.Context(), sp); err != nil {
		h.serverError(w, r, "add sponsor", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, sp)
}

// DeleteSponsor - DELETE /api/sponsors/{id}
func (h *Handler) DeleteSponsor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid sponsor id")
		return
	}
	if err := h.Store.DeleteSponsor(r.Context(), id); err != nil {
		notFoundOr(h, w, r, "delete sponsor", "Sponsor", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Sponsor deleted successfully"})
}
