// Package hotkey owns global hotkey registrations and the event queue the
// toggle loop waits on.
package hotkey

import (
	"errors"

	"togglewin/keys"
)

type EventKind int

const (
	// Trigger means a registered combination was pressed.
	Trigger EventKind = iota
	// Terminate asks the consumer of the queue to stop.
	Terminate
)

// Event is one entry in the queue shared by hotkey triggers and the
// interrupt handler. ID is the binding that fired; it is zero for Terminate.
type Event struct {
	Kind EventKind
	ID   int
}

const queueSize = 16

// NewQueue returns the queue that backends deliver triggers to.
func NewQueue() chan Event {
	return make(chan Event, queueSize)
}

var ErrUnsupported = errors.New("global hotkeys are not supported on this platform")

// Backend registers global hotkeys with the OS. Presses of a registered id are
// delivered as Trigger events to the queue the backend was created with.
type Backend interface {
	Register(id int, c keys.Combination) error
	Unregister(id int) error
}
