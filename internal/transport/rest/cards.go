package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/internal/service/reading"
)

type cardService interface {
	Catalog(ctx context.Context, pool domain.DeckPool) ([]reading.CardResult, error)
	CardBySlug(ctx context.Context, slug string) (*reading.CardResult, error)
	CardOfTheDay(ctx context.Context, tz string) (*reading.DailyCard, error)
}

// CardHandler serves the public card catalog endpoints.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "cards")}
}

// List handles GET /api/cards?pool=major.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	pool := domain.DeckPool(r.URL.Query().Get("pool"))

	cards, err := h.svc.Catalog(r.Context(), pool)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]cardResponse, len(cards))
	for i, c := range cards {
		resp[i] = toCardResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/cards/{slug}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	card, err := h.svc.CardBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*card))
}

// Daily handles GET /api/cards/daily?tz=Europe/Paris.
func (h *CardHandler) Daily(w http.ResponseWriter, r *http.Request) {
	daily, err := h.svc.CardOfTheDay(r.Context(), r.URL.Query().Get("tz"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dailyCardResponse{
		Date:     daily.Date.Format("2006-01-02"),
		Timezone: daily.Timezone,
		Card:     toCardResponse(daily.Card),
	})
}
