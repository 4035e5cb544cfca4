package stats

import "github.com/heartmarshall/tarot-backend/internal/domain"

// AchievementDef is a fixed achievement: unlocked when Metric(stats) >= Target.
type AchievementDef struct {
	ID          string
	Title       string
	Description string
	Target      int
	Metric      func(domain.ProfileStatistics) int
}

func boolMetric(f func(domain.ProfileStatistics) bool) func(domain.ProfileStatistics) int {
	return func(s domain.ProfileStatistics) int {
		if f(s) {
			return 1
		}
		return 0
	}
}

func totalReadings(s domain.ProfileStatistics) int   { return s.TotalReadings }
func maxStreakMetric(s domain.ProfileStatistics) int { return s.MaxStreak }
func uniqueCards(s domain.ProfileStatistics) int     { return s.UniqueCardNames }

// Achievements returns the ordered achievement catalog.
func Achievements() []AchievementDef {
	return []AchievementDef{
		{ID: "first_reading", Title: "First Steps", Description: "Complete your first reading", Target: 1, Metric: totalReadings},
		{ID: "readings_10", Title: "Seeker", Description: "Complete 10 readings", Target: 10, Metric: totalReadings},
		{ID: "readings_50", Title: "Adept", Description: "Complete 50 readings", Target: 50, Metric: totalReadings},
		{ID: "readings_100", Title: "Oracle", Description: "Complete 100 readings", Target: 100, Metric: totalReadings},
		{ID: "streak_3", Title: "Getting Into Rhythm", Description: "Read the cards 3 days in a row", Target: 3, Metric: maxStreakMetric},
		{ID: "streak_7", Title: "Weekly Devotion", Description: "Read the cards 7 days in a row", Target: 7, Metric: maxStreakMetric},
		{ID: "streak_30", Title: "Lunar Cycle", Description: "Read the cards 30 days in a row", Target: 30, Metric: maxStreakMetric},
		{ID: "love_seeker", Title: "Matters of the Heart", Description: "Complete 5 love readings", Target: 5,
			Metric: func(s domain.ProfileStatistics) int { return s.LoveReadingCount }},
		{ID: "major_arcana", Title: "The Great Journey", Description: "Draw 22 different cards", Target: 22, Metric: uniqueCards},
		{ID: "full_deck", Title: "Full Deck", Description: "Draw all 78 cards at least once", Target: 78, Metric: uniqueCards},
		{ID: "active_days_30", Title: "Regular Visitor", Description: "Read on 30 different days", Target: 30,
			Metric: func(s domain.ProfileStatistics) int { return s.UniqueDaysActive }},
		{ID: "reversed_50", Title: "Upside Down", Description: "Draw 50 reversed cards", Target: 50,
			Metric: func(s domain.ProfileStatistics) int { return s.ReversedCount }},
		{ID: "early_bird", Title: "Early Bird", Description: "Do a reading before 6 AM", Target: 1,
			Metric: boolMetric(func(s domain.ProfileStatistics) bool { return s.HasEarlyMorningReading })},
		{ID: "night_owl", Title: "Night Owl", Description: "Do a reading between midnight and 5 AM", Target: 1,
			Metric: boolMetric(func(s domain.ProfileStatistics) bool { return s.HasLateNightReading })},
	}
}

// EvaluateAchievements evaluates every definition against s. Nothing is
// remembered between calls, so removing readings can lock an achievement
// again.
func EvaluateAchievements(s domain.ProfileStatistics) []domain.Achievement {
	defs := Achievements()
	out := make([]domain.Achievement, len(defs))
	for i, def := range defs {
		progress := def.Metric(s)
		out[i] = domain.Achievement{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Target:      def.Target,
			Progress:    min(progress, def.Target),
			Unlocked:    progress >= def.Target,
		}
	}
	return out
}
