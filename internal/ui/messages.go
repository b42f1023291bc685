// Package ui provides terminal user interface components for the habits app.
// This file defines message types for async operations using the Bubble Tea
// command pattern. All store operations return these messages to keep the
// event loop non-blocking.
package ui

import (
	"habits/internal/state"
)

// =============================================================================
// Undo/Redo Messages
// =============================================================================

// undoResultMsg is sent when an undo operation completes.
type undoResultMsg struct {
	desc string
	err  error
}

// redoResultMsg is sent when a redo operation completes.
type redoResultMsg struct {
	desc string
	err  error
}

// =============================================================================
// Habit Messages
// =============================================================================

// stateRefreshedMsg is sent when the habit list is re-read from the store.
type stateRefreshedMsg struct {
	habits []state.Habit
}

// habitAddedMsg is sent when a new habit is created.
type habitAddedMsg struct {
	habit state.Habit
	err   error
}

// habitToggledMsg is sent when a habit's completion is toggled for a day.
type habitToggledMsg struct {
	id      string
	name    string // Habit name for undo description
	key     string // YYYY-MM-DD date toggled (for correct undo after midnight)
	nowDone bool
	wasDone bool // Previous state for undo
	err     error
}

// habitDeletedMsg is sent when a habit is removed.
// The habit and its list position are captured for restoration on undo.
type habitDeletedMsg struct {
	habit state.Habit
	index int
	err   error
}

// =============================================================================
// State Messages
// =============================================================================

// exportDoneMsg is sent when the state has been exported to a file.
type exportDoneMsg struct {
	path string
	err  error
}

// resetDoneMsg is sent when all tracked data has been cleared.
// The prior state is captured so the reset can be undone.
type resetDoneMsg struct {
	prior state.AppState
	err   error
}
