package ui

import (
	"strings"
	"testing"
)

func TestHelpOverlay_View(t *testing.T) {
	setupTest(t)
	h := NewHelpOverlay(createTestStyles())
	h.SetSize(80, 24)

	view := h.View()

	sections := []string{
		"Keyboard Shortcuts",
		"Habits",
		"Data",
		"Input Mode",
		"Global",
	}
	for _, want := range sections {
		if !strings.Contains(view, want) {
			t.Errorf("help overlay missing section %q", want)
		}
	}

	keys := []string{
		"Add habit",
		"Toggle selected day",
		"Delete habit",
		"Export to JSON",
		"Reset all data",
		"Undo",
	}
	for _, want := range keys {
		if !strings.Contains(view, want) {
			t.Errorf("help overlay missing entry %q", want)
		}
	}
}

func TestHelpOverlay_SmallTerminal(t *testing.T) {
	setupTest(t)
	h := NewHelpOverlay(createTestStyles())
	h.SetSize(30, 10)

	// Must not panic and must still render something useful
	view := h.View()
	if !strings.Contains(view, "Shortcuts") {
		t.Error("help overlay unreadable on small terminal")
	}
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name     string
		custom   string
		defaults []string
		want     []string
	}{
		{"empty uses defaults", "", []string{"q", "ctrl+c"}, []string{"q", "ctrl+c"}},
		{"single custom", "x", []string{"q"}, []string{"x"}},
		{"comma separated", "x, y ,z", []string{"q"}, []string{"x", "y", "z"}},
		{"skips empty entries", "x,,y", []string{"q"}, []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseKeys(tt.custom, tt.defaults...)
			if len(got) != len(tt.want) {
				t.Fatalf("parseKeys(%q) = %v, want %v", tt.custom, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseKeys(%q)[%d] = %q, want %q", tt.custom, i, got[i], tt.want[i])
				}
			}
		})
	}
}
