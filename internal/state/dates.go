package state

import "time"

// DateKey formats t's local calendar date as a zero-padded YYYY-MM-DD key.
// All log lookups go through keys produced here.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKeys returns the seven consecutive local date keys ending on t's
// date, oldest first. The UI computes this once at startup and treats the
// result as the visible window.
func WeekKeys(t time.Time) []string {
	keys := make([]string, 7)
	for i := range keys {
		keys[i] = DateKey(t.AddDate(0, 0, i-6))
	}
	return keys
}

// Week reports h's completion for each of the given date keys, in order.
func Week(h Habit, keys []string) []bool {
	days := make([]bool, len(keys))
	for i, k := range keys {
		days[i] = h.Log[k]
	}
	return days
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
