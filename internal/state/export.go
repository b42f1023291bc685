package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ExportFileName is the default artifact written by export.
const ExportFileName = "habits-export.json"

// ErrInvalidImport marks import payloads whose habits field is missing or
// not an array.
var ErrInvalidImport = errors.New("habits field missing or not an array")

// ExportJSON renders the current state as indented JSON, the same shape
// the state file uses, suitable for re-import.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return append(data, '\n'), nil
}

// ExportToFile writes the export artifact to path.
func (s *Store) ExportToFile(path string) error {
	data, err := s.ExportJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write export %s: %w", path, err)
	}
	return nil
}

// ImportJSON replaces the whole state with the decoded payload. The
// payload must be a JSON object with an array-valued "habits" field;
// anything else fails with the current state left untouched. Returns the
// number of habits imported.
func (s *Store) ImportJSON(data []byte) (int, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("parse import: %w", err)
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return 0, ErrInvalidImport
	}
	if _, ok := doc["habits"].([]any); !ok {
		return 0, ErrInvalidImport
	}
	next := Normalize(raw)
	if err := s.Save(next); err != nil {
		return 0, err
	}
	return len(next.Habits), nil
}
