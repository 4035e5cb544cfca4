// Package profile assembles the profile page: the user's full reading
// history is fetched and statistics and achievements are recomputed from it
// on every request.
package profile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

type historyRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Reading, error)
}

type settingsProvider interface {
	SettingsFor(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}

// Service implements profile operations.
type Service struct {
	log      *slog.Logger
	history  historyRepo
	settings settingsProvider
	now      func() time.Time
}

// NewService creates a new profile service.
func NewService(
	log *slog.Logger,
	history historyRepo,
	settings settingsProvider,
) *Service {
	return &Service{
		log:      log.With("service", "profile"),
		history:  history,
		settings: settings,
		now:      time.Now,
	}
}
