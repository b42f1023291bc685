// Package importer provides import functionality for the habits app.
// This file implements CSV import: one completion per row, date,habit.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"habits/internal/state"
)

// CSVImporter handles importing from date,habit CSV exports.
type CSVImporter struct{}

// Name returns the importer name.
func (c *CSVImporter) Name() string {
	return "csv"
}

// Import reads completions from CSV and merges them into the store.
func (c *CSVImporter) Import(reader io.Reader, store *state.Store) (*ImportResult, error) {
	previews, err := c.Preview(reader)
	if err != nil {
		return nil, err
	}
	return mergePreviews(previews, store)
}

// Preview returns the habits that would be imported, with one entry per
// distinct habit name and its valid dates collected.
func (c *CSVImporter) Preview(reader io.Reader) ([]PreviewHabit, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true
	csvReader.ReuseRecord = true

	var order []string
	byName := make(map[string]*PreviewHabit)
	row := 0

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		row++
		if len(record) < 2 {
			continue
		}

		date := strings.TrimSpace(strings.TrimPrefix(record[0], "\ufeff"))
		name := strings.TrimSpace(record[1])

		// A header row ("date,habit") has no parseable date.
		key, ok := normalizeTrackerDate(date)
		if !ok {
			if row == 1 {
				continue
			}
			return nil, fmt.Errorf("invalid date %q on row %d", date, row)
		}
		if name == "" {
			continue
		}

		p, seen := byName[name]
		if !seen {
			p = &PreviewHabit{Name: name}
			byName[name] = p
			order = append(order, name)
		}
		p.Dates = append(p.Dates, key)
	}

	previews := make([]PreviewHabit, 0, len(order))
	for _, name := range order {
		previews = append(previews, *byName[name])
	}
	return previews, nil
}
