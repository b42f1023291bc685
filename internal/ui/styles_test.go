package ui

import (
	"strings"
	"testing"

	"habits/internal/config"

	"github.com/charmbracelet/lipgloss"
)

func TestNewStylesFromTheme_Defaults(t *testing.T) {
	s := NewStylesFromTheme(&config.ThemeConfig{})

	if s.ColorPrimary != lipgloss.Color("#7C3AED") {
		t.Errorf("ColorPrimary = %q, want default violet", s.ColorPrimary)
	}
	if s.ColorMuted != lipgloss.Color("#6B7280") {
		t.Errorf("ColorMuted = %q, want default gray", s.ColorMuted)
	}
}

func TestNewStylesFromTheme_Custom(t *testing.T) {
	s := NewStylesFromTheme(&config.ThemeConfig{
		Primary: "#FF0000",
		Accent:  "#00FF00",
		Muted:   "#0000FF",
	})

	if s.ColorPrimary != lipgloss.Color("#FF0000") {
		t.Errorf("ColorPrimary = %q, want custom value", s.ColorPrimary)
	}
	if s.ColorAccent != lipgloss.Color("#00FF00") {
		t.Errorf("ColorAccent = %q, want custom value", s.ColorAccent)
	}
	if s.ColorMuted != lipgloss.Color("#0000FF") {
		t.Errorf("ColorMuted = %q, want custom value", s.ColorMuted)
	}
}

func TestColorOrDefault(t *testing.T) {
	if got := colorOrDefault("", "#ABCDEF"); got != lipgloss.Color("#ABCDEF") {
		t.Errorf("colorOrDefault empty = %q, want default", got)
	}
	if got := colorOrDefault("#123456", "#ABCDEF"); got != lipgloss.Color("#123456") {
		t.Errorf("colorOrDefault set = %q, want override", got)
	}
}

func TestRenderHelp(t *testing.T) {
	setupTest(t)
	s := createTestStyles()

	out := s.RenderHelp("a", "add", "q", "quit")
	for _, want := range []string{"[a]", "add", "[q]", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderHelp output missing %q: %s", want, out)
		}
	}
}
