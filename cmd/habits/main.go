// Package main is the entry point for the habits application.
// It loads configuration, initializes the state store, and starts the TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	"habits/internal/config"
	"habits/internal/state"
	"habits/internal/ui"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `habits - A daily habit tracker for your terminal

USAGE:
    habits [OPTIONS]
    habits <command> [ARGS]

COMMANDS:
    export           Export habit data as JSON
    import           Import habits from a JSON export or another tracker
    backup           Create a backup of your data
    backup --list    List available backups
    restore NAME     Restore from a specific backup
    restore --latest Restore from the most recent backup
    report           Generate a habit report (Markdown or JSON)
    remind           Send a desktop reminder for unfinished habits

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information

DESCRIPTION:
    habits is a keyboard-driven terminal app for tracking daily habits.
    Each habit shows the last seven days and your current streak.

KEYBINDINGS:
    j/k, ↓/↑     Navigate habits
    h/l, ←/→     Select a day in the week row
    a            Add habit
    d/Space      Toggle the selected day
    x            Delete habit (asks for confirmation)
    e            Export to JSON
    R            Reset all data (asks for confirmation)
    Ctrl+Z       Undo last action
    Ctrl+Y       Redo
    ?            Show help overlay
    q            Quit

DATA STORAGE:
    All data is stored in ~/.habits/ as a single JSON document:
        habit-tracker-state-v1.json

CONFIGURATION:
    Optional config file: ~/.config/habits/config.yaml
    See documentation for configuration options.

EXAMPLES:
    # Start the app
    habits

    # Export your data
    habits export

    # Import a previous export
    habits import habits-export.json

    # Create a backup
    habits backup

    # Restore from a backup
    habits restore --latest

    # Today's report
    habits report

    # Show version
    habits --version
`

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "export":
			runExport(os.Args[2:])
			return
		case "import":
			runImport(os.Args[2:])
			return
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		case "report":
			runReport(os.Args[2:])
			return
		case "remind":
			runRemind(os.Args[2:])
			return
		}
	}

	// Define flags
	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	// Handle version flag
	if *showVersion {
		fmt.Printf("habits version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	// Handle help flag
	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	// Reject unknown arguments
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration (from ~/.config/habits/config.yaml or defaults)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Initialize the state store with the configured data directory
	store, err := state.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing state: %v\n", err)
		os.Exit(1)
	}

	// Create styles from theme config
	styles := ui.NewStylesFromTheme(&cfg.Theme)

	// Create app config with keys and UX settings
	appCfg := &ui.AppConfig{
		Keys:             &cfg.Keys,
		ConfirmDeletions: cfg.UX.ConfirmDeletions,
		ShowOnboarding:   cfg.UX.ShowOnboarding,
	}

	if err := ui.Run(store, styles, appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// loadStore loads config and opens the state store, exiting on failure.
// Shared by the subcommand handlers.
func loadStore() *state.Store {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := state.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing state: %v\n", err)
		os.Exit(1)
	}
	return store
}
