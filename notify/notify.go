// Package notify shows desktop notifications.
package notify

import (
	"strings"

	"github.com/gen2brain/beeep"
)

const appName = "togglewin"

// Notifier sends desktop notifications when enabled.
type Notifier struct {
	enabled bool
	send    func(title, message string) error
}

func New(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Armed announces that the toggle loop is listening.
func (n *Notifier) Armed(window string, combos []string) {
	if r := []rune(window); len(r) > 60 {
		window = string(r[:60]) + "..."
	}
	n.notify("listening", strings.Join(combos, ", ")+" toggles "+window)
}

// Error reports a failure the operator may not see in the console.
func (n *Notifier) Error(msg string) {
	n.notify("error", msg)
}

func (n *Notifier) notify(title, message string) {
	if n == nil || !n.enabled {
		return
	}
	// Notification failures are not worth surfacing.
	_ = n.send(appName+": "+title, message)
}
