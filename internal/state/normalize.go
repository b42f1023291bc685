package state

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Normalize coerces arbitrary decoded JSON into a valid AppState. It is
// total: nil, wrong shapes, and partial habit objects all yield usable
// state rather than an error. Callers decode into any (not into AppState)
// before crossing this boundary so that malformed documents cannot fail
// mid-decode.
func Normalize(v any) AppState {
	out := AppState{Habits: []Habit{}}
	doc, ok := v.(map[string]any)
	if !ok {
		return out
	}
	raw, ok := doc["habits"].([]any)
	if !ok {
		return out
	}
	for _, item := range raw {
		out.Habits = append(out.Habits, normalizeHabit(item))
	}
	return out
}

func normalizeHabit(v any) Habit {
	h := Habit{Log: map[string]bool{}}
	m, ok := v.(map[string]any)
	if !ok {
		h.ID = NewHabitID()
		h.Name = PlaceholderName
		return h
	}

	if id := coerceID(m["id"]); id != "" {
		h.ID = id
	} else {
		h.ID = NewHabitID()
	}

	name, _ := m["name"].(string)
	h.Name = cleanName(name)

	// Only a plain object counts as a log; arrays and scalars are dropped.
	if log, ok := m["log"].(map[string]any); ok {
		for k, val := range log {
			h.Log[k] = truthy(val)
		}
	}

	if ts, ok := m["created_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			h.CreatedAt = t
		}
	}
	return h
}

// normalizeState applies the same per-habit rules to an already typed
// candidate: blank ids regenerated, names defaulted, logs copied so the
// stored state never aliases caller memory.
func normalizeState(s AppState) AppState {
	out := AppState{Habits: make([]Habit, 0, len(s.Habits))}
	for _, h := range s.Habits {
		if strings.TrimSpace(h.ID) == "" {
			h.ID = NewHabitID()
		}
		h.Name = cleanName(h.Name)
		log := make(map[string]bool, len(h.Log))
		for k, v := range h.Log {
			log[k] = v
		}
		h.Log = log
		out.Habits = append(out.Habits, h)
	}
	return out
}

func cleanName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return PlaceholderName
	}
	return name
}

// coerceID turns a present, truthy id of any JSON type into a string.
// Absent or falsy ids yield "" so the caller generates a fresh one.
func coerceID(v any) string {
	if !truthy(v) {
		return ""
	}
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(id)
	default:
		return fmt.Sprint(id)
	}
}

// truthy mirrors JSON-value truthiness: null, false, "", and 0 are falsy;
// everything else, including objects and arrays, is truthy.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	default:
		return true
	}
}
