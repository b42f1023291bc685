package state

import (
	"encoding/json"
	"testing"
)

// FuzzNormalize feeds arbitrary JSON documents through the untrusted-input
// boundary and checks the totality invariants: no panic, non-nil habit
// list, and every habit usable (non-empty id and name, non-nil log).
func FuzzNormalize(f *testing.F) {
	seeds := []string{
		`{}`,
		`null`,
		`[]`,
		`"habits"`,
		`{"habits":null}`,
		`{"habits":{}}`,
		`{"habits":[]}`,
		`{"habits":[null,1,"x",[],{}]}`,
		`{"habits":[{"id":0,"name":"","log":[]}]}`,
		`{"habits":[{"id":"a","name":" x ","log":{"2026-08-25":true,"bad-key":"yes"}}]}`,
		`{"habits":[{"id":1e308,"name":"n","log":{"k":{}}}]}`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, doc string) {
		var raw any
		if err := json.Unmarshal([]byte(doc), &raw); err != nil {
			t.Skip()
		}

		got := Normalize(raw)
		if got.Habits == nil {
			t.Fatal("Habits is nil")
		}
		for i, h := range got.Habits {
			if h.ID == "" {
				t.Errorf("habit %d has empty id", i)
			}
			if h.Name == "" {
				t.Errorf("habit %d has empty name", i)
			}
			if h.Log == nil {
				t.Errorf("habit %d has nil log", i)
			}
		}

		// Idempotence modulo JSON round trip.
		data, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("normalized state does not marshal: %v", err)
		}
		var again any
		if err := json.Unmarshal(data, &again); err != nil {
			t.Fatalf("normalized state does not re-parse: %v", err)
		}
		twice := Normalize(again)
		if len(twice.Habits) != len(got.Habits) {
			t.Errorf("habit count unstable: %d -> %d", len(got.Habits), len(twice.Habits))
		}
	})
}
