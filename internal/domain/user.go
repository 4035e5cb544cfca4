package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds per-user display preferences.
type UserSettings struct {
	UserID       uuid.UUID
	Timezone     string
	DefaultStyle InterpretationStyle
	UpdatedAt    time.Time
}

// DefaultUserSettings returns settings for users who never saved any.
func DefaultUserSettings(userID uuid.UUID) UserSettings {
	return UserSettings{
		UserID:       userID,
		Timezone:     "UTC",
		DefaultStyle: StyleClassic,
	}
}
