package ui

import (
	"strings"
	"testing"

	"habits/internal/state"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// keyPress builds a plain rune key message.
func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// drain executes a command chain until no more messages are produced,
// feeding every message back into the list.
func drain(l *HabitList, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				drain(l, c)
			}
			return
		}
		cmd = l.Update(msg)
	}
}

func newTestList(t *testing.T, store *state.Store) *HabitList {
	t.Helper()
	l := NewHabitList(store, createTestStyles())
	// Static cursor keeps drain synchronous: a blinking cursor emits an
	// endless BlinkMsg/BlinkCmd chain that drain would follow forever.
	l.input.Cursor.SetMode(cursor.CursorStatic)
	l.SetSize(70, 20)
	return l
}

func TestHabitList_EmptyView(t *testing.T) {
	setupTest(t)
	l := newTestList(t, createTestStore(t))

	view := l.View()
	if !strings.Contains(view, "No habits yet.") {
		t.Errorf("empty view missing placeholder:\n%s", view)
	}
	if !strings.Contains(view, "Press 'a' to add one.") {
		t.Errorf("empty view missing hint:\n%s", view)
	}
}

func TestHabitList_AddHabitFlow(t *testing.T) {
	setupTest(t)
	store := createTestStore(t)
	l := newTestList(t, store)

	// Enter add mode. The returned command is the cursor blink tick;
	// discard it to keep the test synchronous.
	_ = l.Update(keyPress('a'))
	if !l.IsAdding() {
		t.Fatal("IsAdding() = false after pressing 'a'")
	}

	// Type a name and confirm
	for _, r := range "Exercise" {
		drain(l, l.Update(keyPress(r)))
	}
	drain(l, l.Update(tea.KeyMsg{Type: tea.KeyEnter}))

	if l.IsAdding() {
		t.Error("IsAdding() = true after confirm")
	}
	habits := store.State().Habits
	if len(habits) != 1 || habits[0].Name != "Exercise" {
		t.Fatalf("habits after add = %+v, want one named Exercise", habits)
	}
	if !strings.Contains(l.View(), "Exercise") {
		t.Error("view missing added habit name")
	}
}

func TestHabitList_AddCancel(t *testing.T) {
	setupTest(t)
	store := createTestStore(t)
	l := newTestList(t, store)

	_ = l.Update(keyPress('a'))
	drain(l, l.Update(keyPress('X')))
	drain(l, l.Update(tea.KeyMsg{Type: tea.KeyEsc}))

	if l.IsAdding() {
		t.Error("IsAdding() = true after cancel")
	}
	if len(store.State().Habits) != 0 {
		t.Error("habit created despite cancel")
	}
}

func TestHabitList_ToggleToday(t *testing.T) {
	setupTest(t)
	store := createTestStore(t)
	habit := addTestHabit(t, store, "Reading")
	l := newTestList(t, store)

	today := state.DateKey(store.Now())
	drain(l, l.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))

	if !store.IsDoneOn(habit.ID, today) {
		t.Error("habit not done today after toggle")
	}

	// Toggle again clears it
	drain(l, l.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
	if store.IsDoneOn(habit.ID, today) {
		t.Error("habit still done today after second toggle")
	}
}

func TestHabitList_DayCursor(t *testing.T) {
	setupTest(t)
	store := createTestStore(t)
	habit := addTestHabit(t, store, "Stretching")
	l := newTestList(t, store)

	if l.SelectedDayKey() != state.DateKey(store.Now()) {
		t.Fatalf("initial day cursor = %q, want today", l.SelectedDayKey())
	}

	// Two days back
	drain(l, l.Update(keyPress('h')))
	drain(l, l.Update(keyPress('h')))

	want := state.DateKey(uiNow.AddDate(0, 0, -2))
	if l.SelectedDayKey() != want {
		t.Fatalf("day cursor after h,h = %q, want %q", l.SelectedDayKey(), want)
	}

	// Toggle applies to the selected day
	drain(l, l.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
	if !store.IsDoneOn(habit.ID, want) {
		t.Error("selected past day not toggled")
	}

	// Cursor clamps at both ends
	for i := 0; i < 10; i++ {
		drain(l, l.Update(keyPress('l')))
	}
	if l.SelectedDayKey() != state.DateKey(store.Now()) {
		t.Error("day cursor did not clamp at today")
	}
	for i := 0; i < 10; i++ {
		drain(l, l.Update(keyPress('h')))
	}
	if l.SelectedDayKey() != state.DateKey(uiNow.AddDate(0, 0, -6)) {
		t.Error("day cursor did not clamp at oldest day")
	}
}

func TestHabitList_Navigation(t *testing.T) {
	setupTest(t)
	store := createTestStore(t)
	addTestHabit(t, store, "One")
	addTestHabit(t, store, "Two")
	addTestHabit(t, store, "Three")
	l := newTestList(t, store)

	if l.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", l.cursor)
	}

	drain(l, l.Update(keyPress('j')))
	drain(l, l.Update(keyPress('j')))
	if l.cursor != 2 {
		t.Errorf("cursor after j,j = %d, want 2", l.cursor)
	}

	// Clamps at bottom
	drain(l, l.Update(keyPress('j')))
	if l.cursor != 2 {
		t.Errorf("cursor after extra j = %d, want 2", l.cursor)
	}

	drain(l, l.Update(keyPress('g')))
	if l.cursor != 0 {
		t.Errorf("cursor after g = %d, want 0", l.cursor)
	}

	drain(l, l.Update(keyPress('G')))
	if l.cursor != 2 {
		t.Errorf("cursor after G = %d, want 2", l.cursor)
	}
}

func TestHabitList_DeleteAdjustsCursor(t *testing.T) {
	setupTest(t)
	store := createTestStore(t)
	addTestHabit(t, store, "One")
	addTestHabit(t, store, "Two")
	l := newTestList(t, store)

	drain(l, l.Update(keyPress('G')))
	drain(l, l.Update(keyPress('x')))

	if len(store.State().Habits) != 1 {
		t.Fatalf("habits after delete = %d, want 1", len(store.State().Habits))
	}
	if l.cursor != 0 {
		t.Errorf("cursor after deleting last habit = %d, want 0", l.cursor)
	}
}

func TestHabitList_StreakShown(t *testing.T) {
	setupTest(t)
	store := createTestStore(t)
	habit := addTestHabit(t, store, "Exercise")
	for off := 0; off < 3; off++ {
		key := state.DateKey(uiNow.AddDate(0, 0, -off))
		if err := store.SetDone(habit.ID, key, true); err != nil {
			t.Fatalf("SetDone() error: %v", err)
		}
	}
	l := newTestList(t, store)

	view := l.View()
	if !strings.Contains(view, "🔥3") {
		t.Errorf("view missing streak marker:\n%s", view)
	}
	if !strings.Contains(view, "3/7") {
		t.Errorf("view missing week count:\n%s", view)
	}
	if !strings.Contains(view, "Best streak: 3 days") {
		t.Errorf("view missing best streak line:\n%s", view)
	}
}

func TestHabitList_MouseWheel(t *testing.T) {
	setupTest(t)
	store := createTestStore(t)
	addTestHabit(t, store, "One")
	addTestHabit(t, store, "Two")
	l := newTestList(t, store)

	drain(l, l.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown}))
	if l.cursor != 1 {
		t.Errorf("cursor after wheel down = %d, want 1", l.cursor)
	}
	drain(l, l.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp}))
	if l.cursor != 0 {
		t.Errorf("cursor after wheel up = %d, want 0", l.cursor)
	}
}
