package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/pkg/ctxutil"
)

// GetSettings returns the authenticated user's settings, or defaults when
// the user never saved any.
func (s *Service) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.SettingsFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetSettings: %w", err)
	}
	return settings, nil
}

// SettingsFor loads settings for userID without an auth check. Used by
// other services that already resolved the user.
func (s *Service) SettingsFor(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	settings, err := s.settings.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultUserSettings(userID)
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings applies a partial update to the authenticated user's
// settings. Read and write happen in one transaction.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.UserSettings, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.UserSettings

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.SettingsFor(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get current settings: %w", err)
		}

		next := applySettingsChanges(*current, input)
		next.UpdatedAt = time.Now().UTC()

		updated, err = s.settings.Upsert(txCtx, next)
		if err != nil {
			return fmt.Errorf("upsert settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateSettings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID.String()),
		slog.String("timezone", updated.Timezone),
		slog.String("default_style", updated.DefaultStyle.String()),
	)

	return updated, nil
}

func applySettingsChanges(current domain.UserSettings, input UpdateSettingsInput) domain.UserSettings {
	result := current

	if input.Timezone != nil {
		result.Timezone = *input.Timezone
	}
	if input.DefaultStyle != nil {
		result.DefaultStyle = *input.DefaultStyle
	}

	return result
}
