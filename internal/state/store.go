package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"habits/internal/fsutil"
)

// Store owns the canonical AppState and its single JSON file on disk.
// Every mutation funnels through Save, which normalizes the candidate and
// persists it atomically. The store is not safe for concurrent use; the
// app runs it from a single goroutine.
type Store struct {
	dataDir string
	path    string
	state   AppState
	now     func() time.Time
}

// New prepares the data directory and loads whatever state is present.
// A broken or missing state file never fails construction; only directory
// setup errors are returned.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}
	s := &Store{
		dataDir: dataDir,
		path:    filepath.Join(dataDir, StorageKey+".json"),
		now:     time.Now,
	}
	s.Load()
	return s, nil
}

// SetNowFunc overrides the clock. Tests use this to pin "today".
func (s *Store) SetNowFunc(now func() time.Time) {
	s.now = now
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// DataDir returns the directory holding the state file.
func (s *Store) DataDir() string {
	return s.dataDir
}

// Path returns the state file path.
func (s *Store) Path() string {
	return s.path
}

// State returns a deep copy of the canonical state. Callers mutate the
// copy and hand it back through Save.
func (s *Store) State() AppState {
	return s.state.Clone()
}

// Load reads the state file into memory. Missing file: empty state.
// Unreadable or unparseable file: the broken file is moved aside, a
// recovery from the .bak sibling is attempted, a warning goes to stderr,
// and no error escapes.
func (s *Store) Load() {
	s.state = AppState{Habits: []Habit{}}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "habits: cannot read %s: %v; starting empty\n", s.path, err)
		return
	}

	var raw any
	err = json.Unmarshal(data, &raw)
	if err == nil {
		s.state = Normalize(raw)
		return
	}

	aside := fsutil.MoveAside(s.path, s.now())

	if bak, bakErr := os.ReadFile(s.path + ".bak"); bakErr == nil {
		var rawBak any
		if json.Unmarshal(bak, &rawBak) == nil {
			fmt.Fprintf(os.Stderr, "habits: state file is corrupt (%v); recovered from backup\n", err)
			s.state = Normalize(rawBak)
			return
		}
	}

	if aside != "" {
		fmt.Fprintf(os.Stderr, "habits: state file is corrupt (%v); moved to %s, starting empty\n", err, aside)
	} else {
		fmt.Fprintf(os.Stderr, "habits: state file is corrupt (%v); starting empty\n", err)
	}
}

// Save normalizes candidate, makes it the canonical in-memory state, and
// persists it atomically with a best-effort .bak of the previous contents.
// The in-memory replacement happens even when the disk write fails; the
// write error is returned so the caller can tell the user the session is
// running unpersisted.
func (s *Store) Save(candidate AppState) error {
	s.state = normalizeState(candidate)
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	fsutil.BestEffortBackup(s.path, 0o600)
	if err := fsutil.WriteFileAtomic(s.path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// AddHabit appends a new habit with a fresh id and persists.
func (s *Store) AddHabit(name string) (Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Habit{}, errors.New("habit name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxHabitNameLen {
		return Habit{}, fmt.Errorf("habit name too long (max %d characters)", MaxHabitNameLen)
	}

	h := Habit{
		ID:        NewHabitID(),
		Name:      name,
		Log:       map[string]bool{},
		CreatedAt: s.now(),
	}
	next := s.State()
	next.Habits = append(next.Habits, h)
	if err := s.Save(next); err != nil {
		return Habit{}, err
	}
	return h, nil
}

// DeleteHabit removes the habit with the given id and persists. The
// removed habit and its former index are returned for undo.
func (s *Store) DeleteHabit(id string) (Habit, int, error) {
	next := s.State()
	for i, h := range next.Habits {
		if h.ID != id {
			continue
		}
		removed := h.Clone()
		next.Habits = append(next.Habits[:i], next.Habits[i+1:]...)
		if err := s.Save(next); err != nil {
			return Habit{}, 0, err
		}
		return removed, i, nil
	}
	return Habit{}, 0, fmt.Errorf("habit not found: %s", id)
}

// RestoreHabit re-inserts a previously deleted habit at index, clamped to
// the current list bounds.
func (s *Store) RestoreHabit(h Habit, index int) error {
	next := s.State()
	if index < 0 {
		index = 0
	}
	if index > len(next.Habits) {
		index = len(next.Habits)
	}
	next.Habits = append(next.Habits[:index], append([]Habit{h.Clone()}, next.Habits[index:]...)...)
	return s.Save(next)
}

// ToggleDay flips the completion marker for one habit and date key.
// Untoggling deletes the key rather than storing false. A habit id that no
// longer exists is silently ignored.
func (s *Store) ToggleDay(id, key string) (bool, error) {
	next := s.State()
	for i := range next.Habits {
		if next.Habits[i].ID != id {
			continue
		}
		done := !next.Habits[i].Log[key]
		if done {
			next.Habits[i].Log[key] = true
		} else {
			delete(next.Habits[i].Log, key)
		}
		if err := s.Save(next); err != nil {
			return false, err
		}
		return done, nil
	}
	return false, nil
}

// SetDone records an explicit completion value, used by importers merging
// external logs. Missing ids are ignored like ToggleDay.
func (s *Store) SetDone(id, key string, done bool) error {
	next := s.State()
	for i := range next.Habits {
		if next.Habits[i].ID != id {
			continue
		}
		if done {
			next.Habits[i].Log[key] = true
		} else {
			delete(next.Habits[i].Log, key)
		}
		return s.Save(next)
	}
	return nil
}

// FindHabit looks a habit up by id in the canonical state.
func (s *Store) FindHabit(id string) (Habit, bool) {
	for _, h := range s.state.Habits {
		if h.ID == id {
			return h.Clone(), true
		}
	}
	return Habit{}, false
}

// IsDoneOn reports whether habit id has a truthy log entry for key.
func (s *Store) IsDoneOn(id, key string) bool {
	for _, h := range s.state.Habits {
		if h.ID == id {
			return h.Log[key]
		}
	}
	return false
}

// Reset replaces everything with an empty state. Destructive; callers
// confirm first.
func (s *Store) Reset() error {
	return s.Save(AppState{})
}
