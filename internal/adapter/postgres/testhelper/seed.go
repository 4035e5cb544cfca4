package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

// SeedReading inserts a reading of the given type for userID, created at
// createdAt. Cards are synthetic but satisfy the per-type arity check.
func SeedReading(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, typ domain.ReadingType, createdAt time.Time) domain.Reading {
	t.Helper()

	cards := make([]domain.DrawnCard, typ.Arity())
	stored := make([]map[string]any, len(cards))
	for i := range cards {
		cards[i] = domain.DrawnCard{
			CardName:       "The Fool",
			Position:       i + 1,
			IsReversed:     i%2 == 1,
			DisplayMeaning: "seed meaning",
		}
		stored[i] = map[string]any{
			"name":     cards[i].CardName,
			"position": cards[i].Position,
			"reversed": cards[i].IsReversed,
			"meaning":  cards[i].DisplayMeaning,
		}
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("testhelper: SeedReading marshal cards: %v", err)
	}

	r := domain.Reading{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      typ,
		Cards:     cards,
		Style:     domain.StyleClassic,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO readings (id, user_id, type, cards, style, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.UserID, string(r.Type), string(raw), string(r.Style), r.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReading insert: %v", err)
	}

	return r
}

// SeedSettings stores settings for a fresh user id and returns them.
func SeedSettings(t *testing.T, pool *pgxpool.Pool, timezone string) domain.UserSettings {
	t.Helper()

	s := domain.DefaultUserSettings(uuid.New())
	s.Timezone = timezone
	s.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_settings (user_id, timezone, default_style, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		s.UserID, s.Timezone, string(s.DefaultStyle), s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSettings insert: %v", err)
	}

	return s
}
