package ui

import (
	"testing"
	"time"

	"habits/internal/config"
	"habits/internal/state"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// uiNow is a frozen clock so streaks and day labels render deterministically.
var uiNow = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

// setupTest prepares the test environment for deterministic rendering.
// It disables colors to ensure consistent output across environments.
func setupTest(t *testing.T) {
	t.Helper()
	// Use ASCII profile to disable all color codes in output
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestStore creates a state store backed by a temporary directory.
func createTestStore(t *testing.T) *state.Store {
	t.Helper()
	store, err := state.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	store.SetNowFunc(func() time.Time { return uiNow })
	return store
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

// addTestHabit adds a habit and fails the test on error.
func addTestHabit(t *testing.T, store *state.Store, name string) state.Habit {
	t.Helper()
	h, err := store.AddHabit(name)
	if err != nil {
		t.Fatalf("AddHabit(%q) error: %v", name, err)
	}
	return h
}
