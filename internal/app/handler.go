package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tarot-backend/internal/adapter/postgres"
	readingrepo "github.com/heartmarshall/tarot-backend/internal/adapter/postgres/reading"
	settingsrepo "github.com/heartmarshall/tarot-backend/internal/adapter/postgres/settings"
	"github.com/heartmarshall/tarot-backend/internal/auth"
	"github.com/heartmarshall/tarot-backend/internal/config"
	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/internal/service/profile"
	"github.com/heartmarshall/tarot-backend/internal/service/reading"
	"github.com/heartmarshall/tarot-backend/internal/service/reading/deck"
	"github.com/heartmarshall/tarot-backend/internal/service/user"
	"github.com/heartmarshall/tarot-backend/internal/transport/middleware"
	"github.com/heartmarshall/tarot-backend/internal/transport/rest"
)

type interpreter interface {
	Generate(ctx context.Context, req domain.InterpretationRequest) (string, error)
}

type artResolver interface {
	URL(ctx context.Context, imageRef string) (string, error)
}

// Deps are the external resources the HTTP stack is built on.
type Deps struct {
	Pool      *pgxpool.Pool
	Generator interpreter
	Art       artResolver
	// Limiter throttles reading creation. Nil disables throttling.
	Limiter *middleware.RateLimiter
}

// NewHandler wires repositories, services and REST handlers into a single
// http.Handler with the standard middleware chain applied.
func NewHandler(cfg *config.Config, logger *slog.Logger, deps Deps) http.Handler {
	// Repositories.
	txm := postgres.NewTxManager(deps.Pool)
	readings := readingrepo.New(deps.Pool)
	settings := settingsrepo.New(deps.Pool)

	// Engines.
	catalog := deck.NewCatalog()
	engine := deck.NewEngine(catalog, nil)

	// Services.
	userService := user.NewService(logger, settings, txm)
	readingService := reading.NewService(logger, engine, readings, userService, deps.Generator, deps.Art, cfg.Reading)
	profileService := profile.NewService(logger, readings, userService)

	// Transport.
	var createLimit middleware.Middleware
	if deps.Limiter != nil {
		createLimit = deps.Limiter.Limit(cfg.RateLimit.ReadingsPerMinute)
	}

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(deps.Pool, catalog, Version),
		Cards:    rest.NewCardHandler(readingService, logger),
		Readings: rest.NewReadingHandler(readingService, logger),
		Profile:  rest.NewProfileHandler(profileService, logger),
		Settings: rest.NewSettingsHandler(userService, logger),
	}, createLimit)

	validator := auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(validator),
		middleware.Timezone,
		middleware.Logger(logger),
	)(router)
}
