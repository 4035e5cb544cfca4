package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileStatistics is derived from a user's full reading history on every
// request and is never stored.
type ProfileStatistics struct {
	TotalReadings          int
	LoveReadingCount       int
	UniqueDaysActive       int
	ReversedCount          int
	TotalCardsDrawn        int
	ReversedPercent        int
	CardFrequency          map[string]int
	UniqueCardNames        int
	CurrentStreak          int
	MaxStreak              int
	HasEarlyMorningReading bool
	HasLateNightReading    bool
}

// MostFrequentCard returns the most drawn card name and its count. Ties go
// to the alphabetically first name. Returns "", 0 when nothing was drawn.
func (s ProfileStatistics) MostFrequentCard() (string, int) {
	var (
		name  string
		count int
	)
	for n, c := range s.CardFrequency {
		if c > count || (c == count && n < name) {
			name, count = n, c
		}
	}
	return name, count
}

// Achievement is the evaluated state of one achievement definition.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Target      int
	Progress    int
	Unlocked    bool
}

// Profile is the statistics view returned for a user.
type Profile struct {
	UserID       uuid.UUID
	Timezone     string
	AsOf         time.Time
	Statistics   ProfileStatistics
	Achievements []Achievement
}
