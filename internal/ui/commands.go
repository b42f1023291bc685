// Package ui provides terminal user interface components for the habits app.
// This file contains tea.Cmd factories that wrap store operations. These
// commands run mutations asynchronously to keep the Bubble Tea event loop
// responsive. Each command returns a corresponding message type defined in
// messages.go.
package ui

import (
	"habits/internal/state"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// Habit Commands
// =============================================================================

// refreshStateCmd returns a command that re-reads the habit list.
func refreshStateCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return stateRefreshedMsg{habits: store.State().Habits}
	}
}

// addHabitCmd returns a command that creates a new habit.
func addHabitCmd(store *state.Store, name string) tea.Cmd {
	return func() tea.Msg {
		habit, err := store.AddHabit(name)
		return habitAddedMsg{habit: habit, err: err}
	}
}

// toggleDayCmd returns a command that toggles a habit's completion for a day.
// Captures the habit name and previous state for undo.
func toggleDayCmd(store *state.Store, id, key string) tea.Cmd {
	return func() tea.Msg {
		var name string
		if h, ok := store.FindHabit(id); ok {
			name = h.Name
		}
		wasDone := store.IsDoneOn(id, key)

		nowDone, err := store.ToggleDay(id, key)
		return habitToggledMsg{id: id, name: name, key: key, nowDone: nowDone, wasDone: wasDone, err: err}
	}
}

// deleteHabitCmd returns a command that removes a habit.
// The store returns the deleted habit and its position for undo restoration.
func deleteHabitCmd(store *state.Store, id string) tea.Cmd {
	return func() tea.Msg {
		habit, index, err := store.DeleteHabit(id)
		return habitDeletedMsg{habit: habit, index: index, err: err}
	}
}

// =============================================================================
// State Commands
// =============================================================================

// exportStateCmd returns a command that writes the state snapshot to path.
func exportStateCmd(store *state.Store, path string) tea.Cmd {
	return func() tea.Msg {
		err := store.ExportToFile(path)
		return exportDoneMsg{path: path, err: err}
	}
}

// resetStateCmd returns a command that clears all habits and logs.
// The outgoing state is captured first so the reset can be undone.
func resetStateCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		prior := store.State()
		return resetDoneMsg{prior: prior, err: store.Reset()}
	}
}

// =============================================================================
// Undo/Redo Commands
// =============================================================================

func undoCmd(manager *UndoManager) tea.Cmd {
	return func() tea.Msg {
		desc, err := manager.Undo()
		return undoResultMsg{desc: desc, err: err}
	}
}

func redoCmd(manager *UndoManager) tea.Cmd {
	return func() tea.Msg {
		desc, err := manager.Redo()
		return redoResultMsg{desc: desc, err: err}
	}
}
