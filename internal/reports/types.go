// Package reports provides habit statistics reports for the habits app.
// Reports aggregate streaks and completion rates from the state store.
package reports

import "time"

// Report contains aggregated habit statistics as of a single day.
type Report struct {
	Date        time.Time    `json:"date"`
	Habits      []HabitStats `json:"habits"`
	Summary     Summary      `json:"summary"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// HabitStats represents one habit's statistics.
type HabitStats struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	DoneToday     bool    `json:"done_today"`
	Streak        int     `json:"streak"`
	LongestStreak int     `json:"longest_streak"`
	Week          []bool  `json:"week"` // 7 bools, oldest day first
	WeekCompleted int     `json:"week_completed"`
	WeekRate      float64 `json:"week_rate"`
	MonthRate     float64 `json:"month_rate"` // completion over the last 30 days
	TotalDays     int     `json:"total_days"` // all-time completed days
}

// Summary provides today's overview across all habits.
type Summary struct {
	TotalHabits    int     `json:"total_habits"`
	CompletedToday int     `json:"completed_today"`
	CompletionRate float64 `json:"completion_rate"`
}
