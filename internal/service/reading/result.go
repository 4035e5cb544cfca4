package reading

import (
	"time"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

// CardResult is a catalog card with its resolved image URL.
type CardResult struct {
	domain.Card
	ImageURL string
}

// DailyCard is the card of the day for one calendar date in one timezone.
type DailyCard struct {
	Card     CardResult
	Date     time.Time // midnight of the calendar date in Timezone
	Timezone string
}

// DrawResult is an unsaved draw with position labels resolved when the
// draw followed a reading type.
type DrawResult struct {
	Type   *domain.ReadingType
	Cards  []domain.DrawnCard
	Labels []string
}
