// Package main is the entry point for the habits application.
// This file contains the export subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"

	"habits/internal/state"
)

// exportHelpText is the help message for the export subcommand.
const exportHelpText = `habits export - Export habit data as JSON

USAGE:
    habits export [OPTIONS]

OPTIONS:
    -o, --output FILE  Write to FILE (default: habits-export.json)
    --stdout           Print to stdout instead of writing a file
    -h, --help         Show this help message

DESCRIPTION:
    Writes a pretty-printed JSON snapshot of all habits and their logs.
    The export can be re-imported later with 'habits import'.

EXAMPLES:
    # Export to habits-export.json in the current directory
    habits export

    # Export to a specific file
    habits export --output ~/backups/habits.json

    # Print the export to stdout
    habits export --stdout
`

// runExport handles the "habits export" subcommand.
func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	outputFlag := fs.String("output", state.ExportFileName, "write to file")
	fs.StringVar(outputFlag, "o", state.ExportFileName, "write to file (shorthand)")

	stdoutFlag := fs.Bool("stdout", false, "print to stdout")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, exportHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(exportHelpText)
		os.Exit(0)
	}

	store := loadStore()

	if *stdoutFlag {
		data, err := store.ExportJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	if err := store.ExportToFile(*outputFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		os.Exit(1)
	}

	habits := store.State().Habits
	fmt.Printf("✓ Exported %d habits to %s\n", len(habits), *outputFlag)
}
