// Package notify provides desktop notification support.
// This file contains tests for the notification functionality.
package notify

import (
	"os"
	"runtime"
	"testing"
)

// TestNew tests that New() returns a valid notifier.
func TestNew(t *testing.T) {
	n := New()
	if n == nil {
		t.Error("New() returned nil")
	}
}

// TestIsSupported tests platform detection.
func TestIsSupported(t *testing.T) {
	n := New()

	switch runtime.GOOS {
	case "darwin":
		// osascript should be available on macOS
		if !n.IsSupported() {
			t.Log("Warning: osascript not available on macOS")
		}
	case "linux":
		// notify-send may or may not be available
		t.Logf("Linux notification support: %v", n.IsSupported())
	default:
		if n.IsSupported() {
			t.Errorf("IsSupported() should be false on %s", runtime.GOOS)
		}
	}
}

// TestSend tests sending a notification.
// This is a manual test - it will actually show a notification.
func TestSend(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping notification test in short mode")
	}
	if os.Getenv("RUN_NOTIFY_TESTS") != "1" {
		t.Skip("Skipping manual notification test (set RUN_NOTIFY_TESTS=1 to enable)")
	}

	n := New()
	if !n.IsSupported() {
		t.Skip("Notifications not supported on this platform")
	}

	err := n.Send("habits test", "This is a test notification")
	if err != nil {
		t.Errorf("Send() error: %v", err)
	}
}

// TestReminderMessage tests the reminder text builder.
func TestReminderMessage(t *testing.T) {
	tests := []struct {
		name        string
		pending     []string
		wantTitle   string
		wantMessage string
		wantOK      bool
	}{
		{"none", nil, "", "", false},
		{"one", []string{"Exercise"}, "1 habit left today", "Exercise", true},
		{"two", []string{"Exercise", "Reading"}, "2 habits left today", "Exercise, Reading", true},
		{
			"many",
			[]string{"A", "B", "C", "D", "E"},
			"5 habits left today",
			"A, B, C and 2 more",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, message, ok := ReminderMessage(tt.pending)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if message != tt.wantMessage {
				t.Errorf("message = %q, want %q", message, tt.wantMessage)
			}
		})
	}
}
