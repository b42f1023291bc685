// Package ui provides terminal user interface components for the habits app.
package ui

import (
	"fmt"
	"strings"

	"habits/internal/config"
	"habits/internal/state"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// HabitList renders the habit grid and handles its interactions.
// Each habit shows the last seven days; the day cursor selects which
// day a toggle applies to (rightmost column is today).
type HabitList struct {
	habits    []state.Habit
	cursor    int
	dayCursor int // 0..6, index into the week columns, 6 = today
	width     int
	height    int
	adding    bool
	input     textinput.Model
	store     *state.Store
	styles    *Styles

	// Key bindings
	keys      HabitKeyMap
	inputKeys InputKeyMap
}

// NewHabitList creates a new habit list view.
func NewHabitList(store *state.Store, styles *Styles) *HabitList {
	return NewHabitListWithKeys(store, styles, &config.KeysConfig{})
}

// NewHabitListWithKeys creates a new habit list view with custom key bindings.
func NewHabitListWithKeys(store *state.Store, styles *Styles, keyCfg *config.KeysConfig) *HabitList {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "Habit name (e.g., Exercise)"
	ti.CharLimit = state.MaxHabitNameLen
	ti.Width = 30

	return &HabitList{
		habits:    store.State().Habits,
		cursor:    0,
		dayCursor: 6,
		input:     ti,
		store:     store,
		styles:    styles,
		keys:      NewHabitKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// RefreshCmd returns a command that re-reads habits from the store.
func (l *HabitList) RefreshCmd() tea.Cmd {
	return refreshStateCmd(l.store)
}

// setHabits replaces the habit snapshot and adjusts cursor bounds.
func (l *HabitList) setHabits(habits []state.Habit) {
	l.habits = habits
	if l.cursor >= len(l.habits) {
		l.cursor = max(0, len(l.habits)-1)
	}
}

// SetSize sets the view dimensions.
func (l *HabitList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.input.Width = max(10, width-6)
}

// IsAdding returns whether we're in add mode.
func (l *HabitList) IsAdding() bool {
	return l.adding
}

// Selected returns the habit under the cursor, if any.
func (l *HabitList) Selected() (state.Habit, bool) {
	if l.cursor < 0 || l.cursor >= len(l.habits) {
		return state.Habit{}, false
	}
	return l.habits[l.cursor], true
}

// SelectedDayKey returns the YYYY-MM-DD key under the day cursor.
func (l *HabitList) SelectedDayKey() string {
	keys := state.WeekKeys(l.store.Now())
	return keys[l.dayCursor]
}

// Update handles messages for the habit list.
func (l *HabitList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	// Handle async messages first
	switch msg := msg.(type) {
	case stateRefreshedMsg:
		l.setHabits(msg.habits)
		return nil

	case habitAddedMsg:
		if msg.err == nil {
			return l.RefreshCmd()
		}
		return nil

	case habitToggledMsg:
		return l.RefreshCmd()

	case habitDeletedMsg:
		return l.RefreshCmd()
	}

	// If we're adding a habit, handle input
	if l.adding {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, l.inputKeys.Confirm):
				name := strings.TrimSpace(l.input.Value())
				if name == "" {
					return nil
				}
				l.resetAddMode()
				return addHabitCmd(l.store, name)

			case key.Matches(msg, l.inputKeys.Cancel):
				l.resetAddMode()
				return nil
			}
		}

		l.input, cmd = l.input.Update(msg)
		return cmd
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return l.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, l.keys.Down):
			if len(l.habits) > 0 {
				l.cursor = min(l.cursor+1, len(l.habits)-1)
			}

		case key.Matches(msg, l.keys.Up):
			if len(l.habits) > 0 {
				l.cursor = max(l.cursor-1, 0)
			}

		case key.Matches(msg, l.keys.Left):
			l.dayCursor = max(l.dayCursor-1, 0)

		case key.Matches(msg, l.keys.Right):
			l.dayCursor = min(l.dayCursor+1, 6)

		case key.Matches(msg, l.keys.Top):
			l.cursor = 0

		case key.Matches(msg, l.keys.Bottom):
			if len(l.habits) > 0 {
				l.cursor = len(l.habits) - 1
			}

		case key.Matches(msg, l.keys.Add):
			l.adding = true
			l.input.Reset()
			l.input.Focus()
			return textinput.Blink

		case key.Matches(msg, l.keys.Toggle):
			if habit, ok := l.Selected(); ok {
				return toggleDayCmd(l.store, habit.ID, l.SelectedDayKey())
			}

		case key.Matches(msg, l.keys.Delete):
			if habit, ok := l.Selected(); ok {
				return deleteHabitCmd(l.store, habit.ID)
			}
		}
	}

	return nil
}

// resetAddMode resets the add habit state.
func (l *HabitList) resetAddMode() {
	l.adding = false
	l.input.Reset()
}

// handleMouse processes mouse events for the habit list.
func (l *HabitList) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if len(l.habits) == 0 {
		return nil
	}

	// Content starts after title (1) + separator (1) + day labels (1) + blank (1)
	const headerRows = 4

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		l.cursor = max(l.cursor-1, 0)
		return nil

	case tea.MouseButtonWheelDown:
		l.cursor = min(l.cursor+1, len(l.habits)-1)
		return nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}

		habitRow := msg.Y - headerRows
		if habitRow < 0 || habitRow >= len(l.habits) {
			return nil
		}

		l.cursor = habitRow

		// Click on the leading checkbox area toggles today
		if msg.X < 4 {
			habit := l.habits[l.cursor]
			return toggleDayCmd(l.store, habit.ID, state.DateKey(l.store.Now()))
		}
	}

	return nil
}

// View renders the habit list.
func (l *HabitList) View() string {
	var b strings.Builder

	title := l.styles.PaneTitleStyle.Render("🔥 HABITS")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := l.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(l.styleMutedText(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	// Day labels with the selected day highlighted
	b.WriteString(l.renderDayLabels())
	b.WriteString("\n\n")

	if len(l.habits) == 0 && !l.adding {
		b.WriteString(l.styleMutedText("  No habits yet."))
		b.WriteString("\n")
		b.WriteString(l.styleMutedText("  Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		now := l.store.Now()
		weekKeys := state.WeekKeys(now)

		maxStreak := 0
		for _, habit := range l.habits {
			if streak := state.Streak(habit, now); streak > maxStreak {
				maxStreak = streak
			}
		}

		nameWidth := l.nameColumnWidth()
		for i, habit := range l.habits {
			prefix := "  "
			if i == l.cursor && !l.adding {
				prefix = "▶ "
			}

			today := habit.Log[weekKeys[6]]
			check := l.styles.HabitUndoneIcon
			if today {
				check = l.styles.HabitDoneIcon
			}

			line := fmt.Sprintf("%s%s %-*s ", prefix, check, nameWidth, truncateText(habit.Name, nameWidth))

			week := state.Week(habit, weekKeys)
			line += l.renderWeekCells(week)

			weekCount := 0
			for _, done := range week {
				if done {
					weekCount++
				}
			}
			line += fmt.Sprintf("  %d/7", weekCount)

			if streak := state.Streak(habit, now); streak > 1 {
				line += " " + l.styles.HabitStreakStyle.Render(fmt.Sprintf("🔥%d", streak))
			}

			if i == l.cursor && !l.adding {
				line = l.styles.HabitSelectedStyle.Render(line)
			}

			b.WriteString(line)
			b.WriteString("\n")
		}

		if maxStreak > 0 {
			b.WriteString("\n")
			b.WriteString("  " + l.styles.StatLabelStyle.Render("Best streak: ") + l.styles.HabitStreakStyle.Render(fmt.Sprintf("%d days 🔥", maxStreak)))
			b.WriteString("\n")
		}
	}

	// Input field when adding
	if l.adding {
		b.WriteString("\n")
		prompt := l.styles.InputPromptStyle.Render("Name: ")
		b.WriteString("  " + prompt + l.input.View())
		b.WriteString("\n")
	}

	return l.styles.PaneStyle.Width(l.width).Height(l.height).Render(b.String())
}

// nameColumnWidth returns the width reserved for habit names.
func (l *HabitList) nameColumnWidth() int {
	w := l.width - 24 // checkbox, week cells, counts, streak
	if w < 12 {
		w = 12
	}
	if w > 30 {
		w = 30
	}
	return w
}

// renderWeekCells creates the visual week representation with the
// selected day column highlighted.
func (l *HabitList) renderWeekCells(week []bool) string {
	cells := make([]string, 0, len(week))
	for i, done := range week {
		icon := l.styles.HabitUndoneIcon
		if done {
			icon = l.styles.HabitDoneIcon
		}
		if i == l.dayCursor {
			raw := "○"
			if done {
				raw = "●"
			}
			icon = l.styles.DayCursorStyle.Render(raw)
		}
		cells = append(cells, icon)
	}
	return strings.Join(cells, " ")
}

// renderDayLabels returns the day-of-week header aligned with the week cells.
func (l *HabitList) renderDayLabels() string {
	today := l.store.Now()
	indent := strings.Repeat(" ", 5+l.nameColumnWidth())

	parts := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, -(6 - i))
		label := day.Format("Mon")[:1]
		if i == l.dayCursor {
			parts = append(parts, l.styles.DayCursorStyle.Render(label))
		} else {
			parts = append(parts, l.styleMutedText(label))
		}
	}
	return indent + strings.Join(parts, " ")
}

// styleMutedText applies muted style to text.
func (l *HabitList) styleMutedText(s string) string {
	return l.styles.StatLabelStyle.Render(s)
}

// TodayCompletion returns how many habits are completed today.
func (l *HabitList) TodayCompletion() (done, total int) {
	today := state.DateKey(l.store.Now())
	total = len(l.habits)

	for _, habit := range l.habits {
		if habit.Log[today] {
			done++
		}
	}

	return done, total
}
