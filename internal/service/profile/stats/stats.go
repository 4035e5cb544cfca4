// Package stats derives profile statistics and achievements from a user's
// reading history. Everything is recomputed from the full history on each
// call; nothing is cached or persisted.
package stats

import (
	"math"
	"time"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

// Hour windows, in the user's local time, for the time-of-day flags.
const (
	earlyMorningEndHour = 6
	lateNightEndHour    = 5
)

// Compute derives statistics for readings as of asOf. Calendar dates and
// hours are read in loc; a nil loc means UTC. Readings with no cards are
// counted as readings but contribute nothing to card aggregates.
func Compute(readings []domain.Reading, asOf time.Time, loc *time.Location) domain.ProfileStatistics {
	if loc == nil {
		loc = time.UTC
	}

	s := domain.ProfileStatistics{
		CardFrequency: make(map[string]int),
	}
	days := make(map[calendarDate]struct{})

	for i := range readings {
		r := &readings[i]

		s.TotalReadings++
		if r.Type.IsLove() {
			s.LoveReadingCount++
		}

		days[dateOf(r.CreatedAt, loc)] = struct{}{}

		for _, c := range r.Cards {
			s.CardFrequency[c.CardName]++
			s.TotalCardsDrawn++
			if c.IsReversed {
				s.ReversedCount++
			}
		}

		hour := r.CreatedAt.In(loc).Hour()
		if hour < earlyMorningEndHour {
			s.HasEarlyMorningReading = true
		}
		if hour < lateNightEndHour {
			s.HasLateNightReading = true
		}
	}

	s.UniqueDaysActive = len(days)
	s.UniqueCardNames = len(s.CardFrequency)
	s.ReversedPercent = reversedPercent(s.ReversedCount, s.TotalCardsDrawn)
	s.CurrentStreak = currentStreak(days, dateOf(asOf, loc))
	s.MaxStreak = maxStreak(days)

	return s
}

func reversedPercent(reversed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(reversed) / float64(total) * 100))
}
