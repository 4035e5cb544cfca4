package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
}

// ProfileHandler serves the statistics and achievements view.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}
