// Package main is the entry point for the habits application.
// This file contains the import subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"habits/internal/importer"
	"habits/internal/state"
)

// importHelpText is the help message for the import subcommand.
const importHelpText = `habits import - Import habit data

USAGE:
    habits import [OPTIONS] <file>

OPTIONS:
    --format FMT   Input format: json (default), tracker, or csv
    --dry-run      Preview import without making changes
    -h, --help     Show this help message

FORMATS:
    json      A habits JSON export (the output of 'habits export').
              Replaces the current state. The file must contain a
              "habits" array; anything else is rejected and your
              data is left untouched.

    tracker   JSON from trackers that export {"name", "dates_tracked"}
              entries. Merged into existing habits by name.

    csv       Rows of "date,habit" pairs (a header row is allowed).
              Merged into existing habits by name.

EXAMPLES:
    # Restore a previous export
    habits import habits-export.json

    # Merge data from another tracker
    habits import --format tracker export.json

    # Preview a CSV import
    habits import --dry-run --format csv log.csv
`

// runImport handles the "habits import" subcommand.
func runImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	formatFlag := fs.String("format", "json", "input format: json, tracker, or csv")
	dryRunFlag := fs.Bool("dry-run", false, "preview import without making changes")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, importHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(importHelpText)
		os.Exit(0)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing file argument\n\n")
		fmt.Fprintf(os.Stderr, "Usage: habits import [--format json|%s] <file>\n", strings.Join(importer.SupportedFormats(), "|"))
		fmt.Fprintf(os.Stderr, "\nRun 'habits import --help' for more information.\n")
		os.Exit(1)
	}

	format := strings.ToLower(*formatFlag)
	filePath := fs.Arg(0)

	if format == "json" {
		runImportJSON(filePath, *dryRunFlag)
		return
	}

	imp := importer.GetImporter(format)
	if imp == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", format)
		fmt.Fprintf(os.Stderr, "Supported formats: json, %s\n", strings.Join(importer.SupportedFormats(), ", "))
		os.Exit(1)
	}

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if *dryRunFlag {
		runImportDryRun(imp, file)
	} else {
		runImportMerge(imp, file)
	}
}

// runImportJSON imports a native habits export, replacing the current state.
func runImportJSON(filePath string, dryRun bool) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if dryRun {
		// Import into a throwaway store to validate without touching data.
		tmp, err := os.MkdirTemp("", "habits-import-*")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer os.RemoveAll(tmp)

		scratch := loadScratchStore(tmp)
		count, err := scratch.ImportJSON(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid import file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Preview: %d habits would be imported (current data replaced).\n", count)
		fmt.Println("Run without --dry-run to import.")
		return
	}

	store := loadStore()
	count, err := store.ImportJSON(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid import file: %v\n", err)
		fmt.Fprintln(os.Stderr, "Your existing data was left untouched.")
		os.Exit(1)
	}

	fmt.Printf("✓ Imported %d habits from %s\n", count, filePath)
}

// loadScratchStore opens a state store in a scratch directory, exiting on failure.
func loadScratchStore(dir string) *state.Store {
	store, err := state.New(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return store
}

// runImportDryRun previews a merge import without making changes.
func runImportDryRun(imp importer.Importer, file *os.File) {
	previews, err := imp.Preview(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing file: %v\n", err)
		os.Exit(1)
	}

	if len(previews) == 0 {
		fmt.Println("No habits found to import.")
		os.Exit(0)
	}

	fmt.Printf("Preview: %d habits to import\n", len(previews))
	fmt.Println("────────────────────────────")

	showCount := len(previews)
	if showCount > 20 {
		showCount = 20
	}

	for i := 0; i < showCount; i++ {
		p := previews[i]
		fmt.Printf("  %s (%d days)\n", p.Name, len(p.Dates))
	}

	if len(previews) > 20 {
		fmt.Printf("  ... and %d more\n", len(previews)-20)
	}

	fmt.Println()
	fmt.Println("Run without --dry-run to import.")
}

// runImportMerge performs a merge import into the live store.
func runImportMerge(imp importer.Importer, file *os.File) {
	store := loadStore()

	result, err := imp.Import(file, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Import complete!\n")
	fmt.Printf("  Habits: %d, Days: %d\n", result.Imported, result.Days)
	if result.Skipped > 0 {
		fmt.Printf("  Skipped:  %d items\n", result.Skipped)
	}
	if len(result.Errors) > 0 {
		fmt.Printf("  Errors:   %d\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("    - %s\n", e)
		}
	}
}
