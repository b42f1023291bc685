// Package state holds the canonical habit-tracker state: the data model,
// the total normalization boundary for untrusted JSON, streak math, and the
// file-backed store that owns all mutations.
package state

import "time"

const (
	// StorageKey is the fixed name of the persisted state document. The
	// versioned suffix allows future format migrations without clobbering
	// old data.
	StorageKey = "habit-tracker-state-v1"

	// PlaceholderName replaces missing or blank habit names.
	PlaceholderName = "Untitled habit"

	// MaxStreakDays bounds the streak walk regardless of log size.
	MaxStreakDays = 365

	// MaxHabitNameLen bounds names accepted by AddHabit.
	MaxHabitNameLen = 60
)

// Habit is one tracked habit. Log maps local-calendar date keys
// (YYYY-MM-DD, zero-padded) to completion; an absent key means the day was
// not completed.
type Habit struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Log       map[string]bool `json:"log"`
	CreatedAt time.Time       `json:"created_at"`
}

// AppState is the entire persisted document. Habit order is insertion
// order and is preserved across save/load.
type AppState struct {
	Habits []Habit `json:"habits"`
}

// Clone returns a copy of the habit with its own log map.
func (h Habit) Clone() Habit {
	out := h
	out.Log = make(map[string]bool, len(h.Log))
	for k, v := range h.Log {
		out.Log[k] = v
	}
	return out
}

// Clone returns a deep copy of the state. Mutating the copy never affects
// the original.
func (s AppState) Clone() AppState {
	out := AppState{Habits: make([]Habit, 0, len(s.Habits))}
	for _, h := range s.Habits {
		out.Habits = append(out.Habits, h.Clone())
	}
	return out
}
