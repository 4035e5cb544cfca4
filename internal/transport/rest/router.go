package rest

import (
	"net/http"

	"github.com/heartmarshall/tarot-backend/internal/transport/middleware"
)

// Handlers groups every REST handler served by the API.
type Handlers struct {
	Health   *HealthHandler
	Cards    *CardHandler
	Readings *ReadingHandler
	Profile  *ProfileHandler
	Settings *SettingsHandler
}

// NewRouter registers all routes. createLimit, when not nil, throttles
// reading creation only.
func NewRouter(h Handlers, createLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/cards", h.Cards.List)
	mux.HandleFunc("GET /api/cards/daily", h.Cards.Daily)
	mux.HandleFunc("GET /api/cards/{slug}", h.Cards.Get)

	mux.HandleFunc("POST /api/draws", h.Readings.Draw)

	mux.Handle("POST /api/readings", middleware.Chain(createLimit)(http.HandlerFunc(h.Readings.Create)))
	mux.HandleFunc("GET /api/readings", h.Readings.List)
	mux.HandleFunc("GET /api/readings/{id}", h.Readings.Get)
	mux.HandleFunc("PATCH /api/readings/{id}/note", h.Readings.UpdateNote)
	mux.HandleFunc("DELETE /api/readings/{id}", h.Readings.Delete)

	mux.HandleFunc("GET /api/profile", h.Profile.Get)

	mux.HandleFunc("GET /api/settings", h.Settings.Get)
	mux.HandleFunc("PATCH /api/settings", h.Settings.Update)

	return mux
}
