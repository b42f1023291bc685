// Package importer provides import functionality for migrating habit data
// from other trackers into the habits state store.
package importer

import (
	"io"

	"habits/internal/state"
)

// ImportResult contains statistics about an import operation.
type ImportResult struct {
	Imported int      // Number of habits created or merged
	Days     int      // Number of completion days recorded
	Skipped  int      // Number of skipped entries (blank names, bad dates)
	Errors   []string // Error messages for failed entries
}

// PreviewHabit represents a habit preview before import.
type PreviewHabit struct {
	Name  string
	Dates []string // Valid YYYY-MM-DD completion dates
}

// Importer defines the interface for import implementations.
type Importer interface {
	// Import reads habits from the reader and merges them into the store.
	Import(reader io.Reader, store *state.Store) (*ImportResult, error)

	// Preview reads habits from the reader without importing.
	Preview(reader io.Reader) ([]PreviewHabit, error)

	// Name returns the importer name (e.g., "tracker", "csv").
	Name() string
}

// GetImporter returns the appropriate importer for the given format.
func GetImporter(format string) Importer {
	switch format {
	case "tracker":
		return &TrackerImporter{}
	case "csv":
		return &CSVImporter{}
	default:
		return nil
	}
}

// SupportedFormats returns the list of supported import formats.
func SupportedFormats() []string {
	return []string{"tracker", "csv"}
}

// mergePreviews applies parsed previews to the store: habits are matched by
// name (case-sensitive) and created when missing, then each valid date is
// recorded as completed.
func mergePreviews(previews []PreviewHabit, store *state.Store) (*ImportResult, error) {
	result := &ImportResult{}

	for _, p := range previews {
		id := ""
		for _, h := range store.State().Habits {
			if h.Name == p.Name {
				id = h.ID
				break
			}
		}
		if id == "" {
			added, err := store.AddHabit(p.Name)
			if err != nil {
				result.Errors = append(result.Errors, p.Name+": "+err.Error())
				continue
			}
			id = added.ID
		}
		result.Imported++

		for _, date := range p.Dates {
			if err := store.SetDone(id, date, true); err != nil {
				result.Errors = append(result.Errors, p.Name+" "+date+": "+err.Error())
				continue
			}
			result.Days++
		}
	}

	return result, nil
}
