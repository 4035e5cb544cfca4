package stats

import "time"

// calendarDate is a local calendar date, comparable and usable as a map key.
type calendarDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time, loc *time.Location) calendarDate {
	y, m, d := t.In(loc).Date()
	return calendarDate{year: y, month: m, day: d}
}

// prev steps back one calendar day. Arithmetic runs in UTC so DST
// transitions in the user's zone cannot skip or repeat a date.
func (d calendarDate) prev() calendarDate {
	y, m, dd := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).Date()
	return calendarDate{year: y, month: m, day: dd}
}

func (d calendarDate) compare(o calendarDate) int {
	switch {
	case d.year != o.year:
		return d.year - o.year
	case d.month != o.month:
		return int(d.month) - int(o.month)
	}
	return d.day - o.day
}

// ParseTimezone parses an IANA timezone name, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
