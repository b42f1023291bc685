// Package importer provides import functionality for the habits app.
// This file implements import from simple JSON habit trackers that store
// per-habit arrays of completion dates.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"habits/internal/state"
)

// TrackerImporter handles importing from dates_tracked style JSON exports.
// Both a bare array of habits and a {"habits": [...]} wrapper are accepted.
type TrackerImporter struct{}

// trackerHabit represents a habit in the legacy tracker format.
type trackerHabit struct {
	Name         string   `json:"name"`
	ShortName    string   `json:"short_name"`
	DatesTracked []string `json:"dates_tracked"`
}

// Name returns the importer name.
func (t *TrackerImporter) Name() string {
	return "tracker"
}

// Import reads habits from tracker JSON and merges them into the store.
func (t *TrackerImporter) Import(reader io.Reader, store *state.Store) (*ImportResult, error) {
	previews, err := t.Preview(reader)
	if err != nil {
		return nil, err
	}
	return mergePreviews(previews, store)
}

// Preview returns the habits that would be imported.
func (t *TrackerImporter) Preview(reader io.Reader) ([]PreviewHabit, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var habits []trackerHabit
	if err := json.Unmarshal(data, &habits); err != nil {
		// Retry with the wrapped shape.
		var doc struct {
			Habits []trackerHabit `json:"habits"`
		}
		if err2 := json.Unmarshal(data, &doc); err2 != nil {
			return nil, fmt.Errorf("failed to parse tracker JSON: %w", err)
		}
		habits = doc.Habits
	}

	var previews []PreviewHabit
	for _, th := range habits {
		name := strings.TrimSpace(th.Name)
		if name == "" {
			name = strings.TrimSpace(th.ShortName)
		}
		if name == "" {
			continue
		}

		p := PreviewHabit{Name: name}
		for _, raw := range th.DatesTracked {
			if key, ok := normalizeTrackerDate(raw); ok {
				p.Dates = append(p.Dates, key)
			}
		}
		previews = append(previews, p)
	}

	return previews, nil
}

// normalizeTrackerDate accepts the date spellings seen in tracker exports
// and canonicalizes them to zero-padded YYYY-MM-DD keys.
func normalizeTrackerDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	formats := []string{
		"2006-01-02",
		"2006-1-2",
		"01/02/2006",
		"2006/01/02",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, raw, time.Local); err == nil {
			return state.DateKey(t), true
		}
	}
	return "", false
}
