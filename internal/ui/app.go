// Package ui provides terminal user interface components for the habits app.
// This file contains the main App model which owns the habit list and routes
// messages using the Bubble Tea architecture.
package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"habits/internal/config"
	"habits/internal/state"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Keys             *config.KeysConfig
	ConfirmDeletions bool
	ShowOnboarding   bool
}

// App is the main application model.
type App struct {
	store       *state.Store
	styles      *Styles
	config      *AppConfig
	list        *HabitList
	helpOverlay *HelpOverlay
	undoManager *UndoManager
	undoBusy    bool
	confirm     *confirmState
	showHelp    bool
	showWelcome bool
	width       int
	height      int
	status      string
	statusErr   bool
	statusUntil time.Time
	quitting    bool
	contentTop  int // Y coordinate where content starts

	// Key bindings
	keys     GlobalKeyMap
	helpKeys HelpKeyMap
}

// confirmState describes a pending destructive action awaiting confirmation.
type confirmState struct {
	title string
	body  string
	cmd   tea.Cmd
}

// NewApp creates a new application.
func NewApp(store *state.Store, styles *Styles, cfg *AppConfig) *App {
	// Use default config if nil
	if cfg == nil {
		cfg = &AppConfig{
			Keys:             &config.KeysConfig{},
			ConfirmDeletions: true,
			ShowOnboarding:   true,
		}
	}
	if cfg.Keys == nil {
		cfg.Keys = &config.KeysConfig{}
	}

	list := NewHabitListWithKeys(store, styles, cfg.Keys)
	helpOverlay := NewHelpOverlay(styles)

	showWelcome := cfg.ShowOnboarding && isFirstRun(store)

	return &App{
		store:       store,
		styles:      styles,
		config:      cfg,
		list:        list,
		helpOverlay: helpOverlay,
		undoManager: NewUndoManager(),
		showHelp:    false,
		showWelcome: showWelcome,
		contentTop:  1,
		keys:        NewGlobalKeyMap(cfg.Keys),
		helpKeys:    DefaultHelpKeyMap(),
	}
}

// isFirstRun checks if this appears to be the first time running the app.
func isFirstRun(store *state.Store) bool {
	return len(store.State().Habits) == 0
}

// tickMsg is sent periodically for time updates.
type tickMsg time.Time

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the app.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		a.list.RefreshCmd(),
	)
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Route async messages first (before key handling). This ensures store
	// operation results are processed regardless of overlay state.
	switch msg := msg.(type) {
	case stateRefreshedMsg:
		cmd := a.list.Update(msg)
		return a, cmd

	case habitAddedMsg:
		if msg.err != nil {
			a.SetStatus("Add habit: "+msg.err.Error(), true)
		} else {
			a.SetStatus("Added: "+truncateText(msg.habit.Name, 30), false)
			a.undoManager.Push(NewAddHabitAction(a.store, msg.habit))
		}
		cmd := a.list.Update(msg)
		return a, cmd

	case habitToggledMsg:
		if msg.err != nil {
			a.SetStatus("Toggle habit: "+msg.err.Error(), true)
		} else {
			// Push undo action on successful toggle
			a.undoManager.Push(NewToggleDayAction(a.store, msg.id, msg.name, msg.key, msg.wasDone))
		}
		cmd := a.list.Update(msg)
		return a, cmd

	case habitDeletedMsg:
		if msg.err != nil {
			a.SetStatus("Delete habit: "+msg.err.Error(), true)
		} else {
			a.SetStatus("Deleted: "+truncateText(msg.habit.Name, 30), false)
			// Push undo action on successful deletion
			a.undoManager.Push(NewDeleteHabitAction(a.store, msg.habit, msg.index))
		}
		cmd := a.list.Update(msg)
		return a, cmd

	case exportDoneMsg:
		if msg.err != nil {
			a.SetStatus("Export: "+msg.err.Error(), true)
		} else {
			a.SetStatus("Exported to "+msg.path, false)
		}
		return a, nil

	case resetDoneMsg:
		if msg.err != nil {
			a.SetStatus("Reset: "+msg.err.Error(), true)
		} else {
			a.SetStatus("All data cleared", false)
			a.undoManager.Push(NewResetAction(a.store, msg.prior))
		}
		return a, a.list.RefreshCmd()

	case undoResultMsg:
		a.undoBusy = false
		if msg.err != nil {
			a.SetStatus("Undo failed: "+msg.err.Error(), true)
		} else if msg.desc != "" {
			a.SetStatus("Undid: "+msg.desc, false)
		} else {
			a.SetStatus("Nothing to undo", false)
		}
		return a, a.list.RefreshCmd()

	case redoResultMsg:
		a.undoBusy = false
		if msg.err != nil {
			a.SetStatus("Redo failed: "+msg.err.Error(), true)
		} else if msg.desc != "" {
			a.SetStatus("Redid: "+msg.desc, false)
		} else {
			a.SetStatus("Nothing to redo", false)
		}
		return a, a.list.RefreshCmd()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.showWelcome {
			a.showWelcome = false
			return a, nil
		}

		if a.confirm != nil {
			switch msg.String() {
			case "y", "Y", "enter":
				cmd := a.confirm.cmd
				a.confirm = nil
				return a, cmd
			case "n", "N", "esc":
				a.confirm = nil
				a.SetStatus("Canceled", false)
				return a, nil
			default:
				return a, nil
			}
		}

		// Help overlay takes priority
		if a.showHelp {
			if key.Matches(msg, a.helpKeys.Close) {
				a.showHelp = false
				return a, nil
			}
			return a, nil
		}

		if !a.list.IsAdding() {
			// Deleting a habit asks for confirmation when enabled.
			if a.config.ConfirmDeletions && key.Matches(msg, a.list.keys.Delete) {
				habit, ok := a.list.Selected()
				if !ok {
					a.SetStatus("No habit selected", true)
					return a, nil
				}
				a.confirm = &confirmState{
					title: "Delete habit?",
					body:  truncateText(habit.Name, 60),
					cmd:   deleteHabitCmd(a.store, habit.ID),
				}
				return a, nil
			}

			// Global keys only when not in input mode
			switch {
			case key.Matches(msg, a.keys.Quit):
				a.quitting = true
				return a, tea.Quit

			case key.Matches(msg, a.keys.Help):
				a.showHelp = true
				return a, nil

			case key.Matches(msg, a.keys.Export):
				path := filepath.Join(a.store.DataDir(), state.ExportFileName)
				return a, exportStateCmd(a.store, path)

			case key.Matches(msg, a.keys.Reset):
				if a.config.ConfirmDeletions {
					a.confirm = &confirmState{
						title: "Reset all data?",
						body:  "This removes every habit and all logged days.",
						cmd:   resetStateCmd(a.store),
					}
					return a, nil
				}
				return a, resetStateCmd(a.store)

			case key.Matches(msg, a.keys.Undo):
				if a.undoBusy {
					a.SetStatus("Undo: busy", true)
					return a, nil
				}
				a.undoBusy = true
				return a, undoCmd(a.undoManager)

			case key.Matches(msg, a.keys.Redo):
				if a.undoBusy {
					a.SetStatus("Redo: busy", true)
					return a, nil
				}
				a.undoBusy = true
				return a, redoCmd(a.undoManager)
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.MouseMsg:
		if a.showWelcome {
			if msg.Action == tea.MouseActionPress {
				a.showWelcome = false
			}
			return a, nil
		}

		if a.confirm != nil {
			if msg.Action == tea.MouseActionPress {
				a.confirm = nil
				a.SetStatus("Canceled", false)
			}
			return a, nil
		}

		// Any click closes help
		if a.showHelp {
			if msg.Action == tea.MouseActionPress {
				a.showHelp = false
			}
			return a, nil
		}

		// Forward to the list with adjusted coordinates
		if msg.Y >= a.contentTop || msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			localMsg := msg
			localMsg.Y = msg.Y - a.contentTop
			cmd := a.list.Update(localMsg)
			return a, cmd
		}

		return a, nil

	case tickMsg:
		if a.status != "" && !a.statusUntil.IsZero() && time.Now().After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}
		return a, tickCmd()
	}

	// Forward to the list (only if help is not shown)
	if !a.showHelp {
		cmd := a.list.Update(msg)
		return a, cmd
	}

	return a, nil
}

// updateLayout recalculates the list size based on terminal dimensions.
func (a *App) updateLayout() {
	a.helpOverlay.SetSize(a.width, a.height)

	// Leave room for title bar (2) and help bar (1)
	contentHeight := a.height - 4
	if contentHeight < 8 {
		contentHeight = 8
	}

	contentWidth := a.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	a.list.SetSize(contentWidth, contentHeight)
}

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}

	if a.showWelcome {
		return a.renderWelcome()
	}

	if a.confirm != nil {
		return a.renderConfirm()
	}

	// Show help overlay if active
	if a.showHelp {
		return a.helpOverlay.View()
	}

	var b strings.Builder

	b.WriteString(a.renderTitleBar())
	b.WriteString("\n")

	b.WriteString(a.list.View())
	b.WriteString("\n")

	b.WriteString(a.renderHelpBar())

	return b.String()
}

func (a *App) renderWelcome() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorPrimary).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorPrimary).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	mutedStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to habits"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("Add your first habit with 'a'.\n"))
	b.WriteString(bodyStyle.Render("Space toggles today. ? opens help.\n"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press any key to continue"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) renderConfirm() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorDanger).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorDanger).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.confirm.title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.confirm.body))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[y/enter] confirm    [n/esc] cancel"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// renderGoodbye shows a nice exit message with today's progress.
func (a *App) renderGoodbye() string {
	done, total := a.list.TodayCompletion()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  See you tomorrow!\n")
	b.WriteString("\n")

	if total > 0 {
		pct := (done * 100) / total
		b.WriteString(fmt.Sprintf("  Today's habits: %d/%d (%d%%)\n", done, total, pct))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTitleBar creates the top title bar with stats and the current date.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" habits ")

	done, total := a.list.TodayCompletion()
	var stats string
	if total > 0 {
		stats = a.styles.StatLabelStyle.Render(fmt.Sprintf("Today: %d/%d", done, total))
	}

	dateStr := a.store.Now().Format("Mon Jan 2")
	date := a.styles.DateStyle.Render(dateStr)

	titleWidth := lipgloss.Width(title)
	statsWidth := lipgloss.Width(stats)
	dateWidth := lipgloss.Width(date)

	spacerWidth := a.width - titleWidth - statsWidth - dateWidth - 4
	if spacerWidth < 2 {
		spacerWidth = 2
	}

	var parts []string
	parts = append(parts, title)
	if stats != "" {
		parts = append(parts, "  "+stats)
	}
	parts = append(parts, strings.Repeat(" ", spacerWidth))
	parts = append(parts, date)

	return strings.Join(parts, "")
}

// renderHelpBar creates the bottom help bar with context-sensitive hints.
func (a *App) renderHelpBar() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	if a.list.IsAdding() {
		return a.styles.RenderHelp(
			"enter", "save",
			"esc", "cancel",
		)
	}

	return a.styles.RenderHelp(
		"a", "add",
		"space", "toggle",
		"x", "del",
		"j/k", "nav",
		"h/l", "day",
		"e", "export",
		"?", "help",
	)
}

// SetStatus sets a status message to display to the user.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = time.Now().Add(ttl)
}

// Run starts the Bubble Tea program with the given store, styles, and config.
func Run(store *state.Store, styles *Styles, cfg *AppConfig) error {
	app := NewApp(store, styles, cfg)
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Enable mouse support
	)
	_, err := p.Run()
	return err
}
