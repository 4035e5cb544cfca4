// Package settings implements the user settings store on PostgreSQL.
package settings

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tarot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tarot-backend/internal/domain"
)

const getSettingsSQL = `
SELECT user_id, timezone, default_style, updated_at
FROM user_settings
WHERE user_id = $1`

const upsertSettingsSQL = `
INSERT INTO user_settings (user_id, timezone, default_style, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE
SET timezone = EXCLUDED.timezone,
    default_style = EXCLUDED.default_style,
    updated_at = EXCLUDED.updated_at
RETURNING user_id, timezone, default_style, updated_at`

// Repo provides user settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByUserID returns the stored settings of a user.
// Returns domain.ErrNotFound if the user never saved any.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSettingsSQL, userID)

	s, err := scanSettings(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", userID)
	}
	return s, nil
}

// Upsert stores the full settings row of a user and returns what was saved.
func (r *Repo) Upsert(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error) {
	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertSettingsSQL,
		s.UserID, s.Timezone, string(s.DefaultStyle), updatedAt,
	)

	saved, err := scanSettings(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", s.UserID)
	}
	return saved, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSettings(row scanner) (*domain.UserSettings, error) {
	var (
		s     domain.UserSettings
		style string
	)
	if err := row.Scan(&s.UserID, &s.Timezone, &style, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.DefaultStyle = domain.InterpretationStyle(style)
	s.UpdatedAt = s.UpdatedAt.UTC()
	return &s, nil
}
