package stats

import "slices"

// currentStreak walks back from today. A missing today does not break the
// streak: counting then starts at yesterday. The first absent day stops it.
func currentStreak(days map[calendarDate]struct{}, today calendarDate) int {
	if len(days) == 0 {
		return 0
	}

	day := today
	if _, ok := days[day]; !ok {
		day = day.prev()
	}

	streak := 0
	for {
		if _, ok := days[day]; !ok {
			return streak
		}
		streak++
		day = day.prev()
	}
}

// maxStreak is the longest run of consecutive calendar days in days.
func maxStreak(days map[calendarDate]struct{}) int {
	if len(days) == 0 {
		return 0
	}

	sorted := make([]calendarDate, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	slices.SortFunc(sorted, calendarDate.compare)

	best, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].prev() == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}
	return best
}
