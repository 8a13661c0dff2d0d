package engine

import "time"

// DateKey formats t as the calendar date used for all streak comparisons.
// Streaks are day-granular; hours and timezones beyond the caller's clock
// are deliberately ignored.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// NextStreak derives the streak value to apply for a completion happening
// "today". It is a pure function; the caller persists the result.
//
//   - no prior activity        → 1
//   - last activity today      → unchanged (a same-day repeat does not increment)
//   - last activity yesterday  → current + 1
//   - anything else (gap of 2+ days, or a future date) → reset to 1
func NextStreak(lastActivityDate *string, currentStreak int, today time.Time) int {
	if lastActivityDate == nil {
		return 1
	}
	switch *lastActivityDate {
	case DateKey(today):
		return currentStreak
	case DateKey(today.AddDate(0, 0, -1)):
		return currentStreak + 1
	}
	return 1
}
