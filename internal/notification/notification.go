// Package notification provides cross-platform desktop notifications.
// It uses the beeep library, and serves as an alternative to rofi's error
// dialog when rofi-tmuxp runs outside of a rofi session.
package notification

import (
	"log/slog"

	"github.com/gen2brain/beeep"

	"github.com/rofi-tmuxp/rofi-tmuxp/internal/logger"
)

// Title is shown on every notification.
const Title = "rofi-tmuxp"

var notifier = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores beeep as the notification backend.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On Linux, it uses D-Bus or notify-send.
func Send(title, message string) error {
	// Use empty string for icon - beeep handles platform defaults
	return notifier(title, message, "")
}

// Reporter delivers error messages as desktop notifications.
type Reporter struct {
	log *slog.Logger
}

// NewReporter creates a Reporter that logs delivery failures to log.
func NewReporter(log *slog.Logger) *Reporter {
	return &Reporter{log: logger.WithComponent(log, "notification")}
}

// ReportError shows message as a notification.
func (r *Reporter) ReportError(message string) error {
	err := Send(Title, message)
	if err != nil {
		r.log.Error("Failed to send notification", "error", err)
	}
	return err
}
