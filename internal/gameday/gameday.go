// Package gameday computes calendar-day and ISO-week boundaries in the
// fixed reference timezone. Every daily limit and leaderboard key is derived
// from these helpers so the day rolls over at the same wall-clock moment
// everywhere.
package gameday

import "time"

const layout = "2006-01-02"

// Day returns t's calendar day as "YYYY-MM-DD" in the given zone.
func Day(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(layout)
}

// Valid reports whether s is a well-formed "YYYY-MM-DD" day string.
func Valid(s string) bool {
	_, err := time.Parse(layout, s)
	return err == nil
}

// WeekBounds returns the Monday and Sunday day strings of the ISO-8601 week
// containing t, evaluated in the given zone.
func WeekBounds(t time.Time, loc *time.Location) (string, string) {
	t = t.In(loc)
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	monday := t.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(layout), sunday.Format(layout)
}
