package state

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decodeJSON(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("test input is not valid JSON: %v", err)
	}
	return v
}

func TestNormalize_Total(t *testing.T) {
	// Every input yields usable state, never a panic.
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"string", "hello"},
		{"number", 42.0},
		{"bool", true},
		{"array", []any{1.0, 2.0}},
		{"empty object", map[string]any{}},
		{"habits is string", map[string]any{"habits": "nope"}},
		{"habits is object", map[string]any{"habits": map[string]any{"a": 1.0}}},
		{"habits is number", map[string]any{"habits": 7.0}},
		{"habits is null", map[string]any{"habits": nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got.Habits == nil {
				t.Fatal("Habits is nil, want empty slice")
			}
			if len(got.Habits) != 0 {
				t.Errorf("len(Habits) = %d, want 0", len(got.Habits))
			}
		})
	}
}

func TestNormalize_HabitEntries(t *testing.T) {
	raw := decodeJSON(t, `{
		"habits": [
			{"id": "a1", "name": "  Read  ", "log": {"2026-08-24": true, "2026-08-23": 1, "2026-08-22": ""}},
			{"id": 42, "name": "", "log": ["2026-08-24"]},
			{"id": null, "name": "Run", "log": "oops"},
			"not an object",
			{"id": false, "name": 99}
		]
	}`)

	got := Normalize(raw)
	if len(got.Habits) != 5 {
		t.Fatalf("len(Habits) = %d, want 5", len(got.Habits))
	}

	h := got.Habits[0]
	if h.ID != "a1" {
		t.Errorf("habit 0 id = %q, want %q", h.ID, "a1")
	}
	if h.Name != "Read" {
		t.Errorf("habit 0 name = %q, want trimmed %q", h.Name, "Read")
	}
	want := map[string]bool{"2026-08-24": true, "2026-08-23": true, "2026-08-22": false}
	if !reflect.DeepEqual(h.Log, want) {
		t.Errorf("habit 0 log = %v, want %v", h.Log, want)
	}

	if got.Habits[1].ID != "42" {
		t.Errorf("numeric id coerced to %q, want %q", got.Habits[1].ID, "42")
	}
	if got.Habits[1].Name != PlaceholderName {
		t.Errorf("empty name = %q, want %q", got.Habits[1].Name, PlaceholderName)
	}
	if len(got.Habits[1].Log) != 0 {
		t.Errorf("array log kept: %v, want empty", got.Habits[1].Log)
	}

	if got.Habits[2].ID == "" {
		t.Error("null id should be replaced with a generated one")
	}
	if len(got.Habits[2].Log) != 0 {
		t.Errorf("string log kept: %v, want empty", got.Habits[2].Log)
	}

	if got.Habits[3].Name != PlaceholderName || got.Habits[3].ID == "" {
		t.Errorf("non-object habit = %+v, want placeholder with generated id", got.Habits[3])
	}

	// false is falsy, so the id must be regenerated, not "false".
	if got.Habits[4].ID == "false" || got.Habits[4].ID == "" {
		t.Errorf("falsy id coerced to %q, want generated", got.Habits[4].ID)
	}
	if got.Habits[4].Name != PlaceholderName {
		t.Errorf("numeric name = %q, want %q", got.Habits[4].Name, PlaceholderName)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := decodeJSON(t, `{
		"habits": [
			{"id": "a1", "name": " Read ", "log": {"2026-08-24": true, "2026-08-20": 0}},
			{"name": "Run", "log": {}}
		]
	}`)

	once := Normalize(raw)

	// Round the normalized state through JSON and normalize again; nothing
	// may change (generated ids survive the trip).
	data, err := json.Marshal(once)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	twice := Normalize(decodeJSON(t, string(data)))

	if len(once.Habits) != len(twice.Habits) {
		t.Fatalf("habit count changed: %d -> %d", len(once.Habits), len(twice.Habits))
	}
	for i := range once.Habits {
		a, b := once.Habits[i], twice.Habits[i]
		if a.ID != b.ID || a.Name != b.Name {
			t.Errorf("habit %d changed: %q/%q -> %q/%q", i, a.ID, a.Name, b.ID, b.Name)
		}
		if !reflect.DeepEqual(a.Log, b.Log) {
			t.Errorf("habit %d log changed: %v -> %v", i, a.Log, b.Log)
		}
	}
}

func TestNormalize_LogIsCopied(t *testing.T) {
	log := map[string]any{"2026-08-24": true}
	raw := map[string]any{"habits": []any{map[string]any{"id": "a", "name": "x", "log": log}}}

	got := Normalize(raw)
	log["2026-08-25"] = true

	if got.Habits[0].Log["2026-08-25"] {
		t.Error("normalized log aliases the input map")
	}
}

func TestCoerceID(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "abc", "abc"},
		{"empty string", "", ""},
		{"int-valued float", 42.0, "42"},
		{"fractional", 1.5, "1.5"},
		{"zero", 0.0, ""},
		{"true", true, "true"},
		{"false", false, ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coerceID(tt.in); got != tt.want {
				t.Errorf("coerceID(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
