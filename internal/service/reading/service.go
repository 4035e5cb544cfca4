// Package reading implements the reading use-cases: draws, persisted
// readings with optional generated interpretation, notes, and the card of
// the day.
package reading

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/config"
	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/internal/service/reading/deck"
)

type readingRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.ReadingFilter) ([]domain.Reading, int, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Reading, error)
	Create(ctx context.Context, r *domain.Reading) (*domain.Reading, error)
	UpdateNote(ctx context.Context, userID, id uuid.UUID, note *string) (*domain.Reading, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type settingsProvider interface {
	SettingsFor(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}

type interpreter interface {
	Generate(ctx context.Context, req domain.InterpretationRequest) (string, error)
}

type artResolver interface {
	URL(ctx context.Context, imageRef string) (string, error)
}

// Service provides reading operations.
type Service struct {
	log      *slog.Logger
	engine   *deck.Engine
	readings readingRepo
	settings settingsProvider
	gen      interpreter
	art      artResolver
	cfg      config.ReadingConfig
	now      func() time.Time
}

// NewService creates a new reading service.
func NewService(
	log *slog.Logger,
	engine *deck.Engine,
	readings readingRepo,
	settings settingsProvider,
	gen interpreter,
	art artResolver,
	cfg config.ReadingConfig,
) *Service {
	return &Service{
		log:      log.With("service", "reading"),
		engine:   engine,
		readings: readings,
		settings: settings,
		gen:      gen,
		art:      art,
		cfg:      cfg,
		now:      time.Now,
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
