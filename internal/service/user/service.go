// Package user owns per-user preferences: the timezone that defines
// calendar days for statistics and the default interpretation style.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

type settingsRepo interface {
	// GetByUserID returns domain.ErrNotFound when nothing was saved yet.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	Upsert(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	log      *slog.Logger
	settings settingsRepo
	tx       txManager
}

func NewService(logger *slog.Logger, settings settingsRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		settings: settings,
		tx:       tx,
	}
}
