package reading

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

// readingRow mirrors the readings table. cards stays raw so the same row
// type scans from pgx and from pgxmock.
type readingRow struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	Type           string    `db:"type"`
	Cards          []byte    `db:"cards"`
	Question       *string   `db:"question"`
	Style          string    `db:"style"`
	Interpretation *string   `db:"interpretation"`
	Note           *string   `db:"note"`
	CreatedAt      time.Time `db:"created_at"`
}

// storedCard is the JSONB shape of one drawn card.
type storedCard struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Reversed bool   `json:"reversed"`
	Meaning  string `json:"meaning"`
}

func (row readingRow) toDomain() (domain.Reading, error) {
	var stored []storedCard
	if err := json.Unmarshal(row.Cards, &stored); err != nil {
		return domain.Reading{}, fmt.Errorf("decode cards of reading %s: %w", row.ID, err)
	}

	cards := make([]domain.DrawnCard, len(stored))
	for i, c := range stored {
		cards[i] = domain.DrawnCard{
			CardName:       c.Name,
			Position:       c.Position,
			IsReversed:     c.Reversed,
			DisplayMeaning: c.Meaning,
		}
	}

	return domain.Reading{
		ID:             row.ID,
		UserID:         row.UserID,
		Type:           domain.ReadingType(row.Type),
		Cards:          cards,
		Question:       row.Question,
		Style:          domain.InterpretationStyle(row.Style),
		Interpretation: row.Interpretation,
		Note:           row.Note,
		CreatedAt:      row.CreatedAt.UTC(),
	}, nil
}

// encodeCards renders cards as a JSON text argument; pgx casts it to jsonb.
func encodeCards(cards []domain.DrawnCard) (string, error) {
	stored := make([]storedCard, len(cards))
	for i, c := range cards {
		stored[i] = storedCard{
			Name:     c.CardName,
			Position: c.Position,
			Reversed: c.IsReversed,
			Meaning:  c.DisplayMeaning,
		}
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("encode cards: %w", err)
	}
	return string(raw), nil
}
