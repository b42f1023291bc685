// Package reports provides habit statistics reports for the habits app.
package reports

import (
	"time"

	"habits/internal/state"
)

// Generator creates reports from the state store.
type Generator struct {
	store *state.Store
}

// NewGenerator creates a new report generator.
func NewGenerator(store *state.Store) *Generator {
	return &Generator{store: store}
}

// Generate builds a report as of the store's current day.
func (g *Generator) Generate() *Report {
	now := g.store.Now()
	today := state.DateKey(now)
	weekKeys := state.WeekKeys(now)

	st := g.store.State()
	stats := make([]HabitStats, 0, len(st.Habits))
	completedToday := 0

	for _, h := range st.Habits {
		week := state.Week(h, weekKeys)
		weekCompleted := 0
		for _, done := range week {
			if done {
				weekCompleted++
			}
		}

		monthCompleted := 0
		for i := 0; i < 30; i++ {
			if h.Log[state.DateKey(now.AddDate(0, 0, -i))] {
				monthCompleted++
			}
		}

		totalDays := 0
		for _, done := range h.Log {
			if done {
				totalDays++
			}
		}

		doneToday := h.Log[today]
		if doneToday {
			completedToday++
		}

		stats = append(stats, HabitStats{
			ID:            h.ID,
			Name:          h.Name,
			DoneToday:     doneToday,
			Streak:        state.Streak(h, now),
			LongestStreak: state.LongestStreak(h),
			Week:          week,
			WeekCompleted: weekCompleted,
			WeekRate:      rate(weekCompleted, 7),
			MonthRate:     rate(monthCompleted, 30),
			TotalDays:     totalDays,
		})
	}

	return &Report{
		Date:   startOfDay(now),
		Habits: stats,
		Summary: Summary{
			TotalHabits:    len(stats),
			CompletedToday: completedToday,
			CompletionRate: rate(completedToday, len(stats)),
		},
		GeneratedAt: time.Now(),
	}
}

func rate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// startOfDay returns the start of the day (midnight).
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
