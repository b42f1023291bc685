// Package notify provides cross-platform desktop notification support.
// It uses native notification mechanisms on macOS (osascript) and Linux
// (notify-send) to deliver daily habit reminders.
package notify

import (
	"fmt"
	"strings"
)

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// Send sends a notification with the given title and message.
	Send(title, message string) error

	// SendWithSound sends a notification with sound.
	SendWithSound(title, message string) error

	// IsSupported returns true if notifications are supported on this platform.
	IsSupported() bool
}

type noopNotifier struct{}

func (n *noopNotifier) Send(title, message string) error {
	return nil
}

func (n *noopNotifier) SendWithSound(title, message string) error {
	return nil
}

func (n *noopNotifier) IsSupported() bool {
	return false
}

// New creates a platform-specific notifier.
// Returns a no-op notifier if the platform doesn't support notifications.
func New() Notifier {
	n := newPlatformNotifier()
	if n == nil || !n.IsSupported() {
		return &noopNotifier{}
	}
	return n
}

// ReminderMessage builds the daily reminder for habits not yet completed
// today. ok is false when there is nothing to remind about.
func ReminderMessage(pending []string) (title, message string, ok bool) {
	if len(pending) == 0 {
		return "", "", false
	}

	if len(pending) == 1 {
		title = "1 habit left today"
	} else {
		title = fmt.Sprintf("%d habits left today", len(pending))
	}

	// Keep the body short; notification daemons truncate aggressively.
	const maxListed = 3
	listed := pending
	if len(listed) > maxListed {
		listed = listed[:maxListed]
	}
	message = strings.Join(listed, ", ")
	if len(pending) > maxListed {
		message = fmt.Sprintf("%s and %d more", message, len(pending)-maxListed)
	}
	return title, message, true
}
