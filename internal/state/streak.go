package state

import "time"

// Streak counts consecutive completed days walking back from at's local
// date. The current day itself must be completed: a gap on day zero means
// the streak is 0, not "yesterday's streak". The walk stops after
// MaxStreakDays no matter how long the log is.
func Streak(h Habit, at time.Time) int {
	if len(h.Log) == 0 {
		return 0
	}
	count := 0
	day := startOfDay(at)
	for count < MaxStreakDays {
		if !h.Log[DateKey(day)] {
			break
		}
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

// LongestStreak scans the whole log for the longest run of consecutive
// completed days, independent of today. Used by reports, not by the
// week view.
func LongestStreak(h Habit) int {
	longest := 0
	for key, done := range h.Log {
		if !done {
			continue
		}
		day, err := time.ParseInLocation("2006-01-02", key, time.Local)
		if err != nil {
			continue
		}
		// Only start counting at the beginning of a run.
		if h.Log[DateKey(day.AddDate(0, 0, -1))] {
			continue
		}
		run := 0
		for run < MaxStreakDays && h.Log[DateKey(day)] {
			run++
			day = day.AddDate(0, 0, 1)
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
