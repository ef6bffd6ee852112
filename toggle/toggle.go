// Package toggle flips a window between hidden and shown each time a
// registered hotkey fires.
package toggle

import "togglewin/hotkey"

// Window is the target of the toggle.
type Window interface {
	Visible() bool
	Hide() error
	Show() error
	Foreground() error
}

type State int

const (
	Hidden State = iota
	Shown
)

func (s State) String() string {
	if s == Shown {
		return "shown"
	}
	return "hidden"
}

// Transition describes one toggle. ID is the binding that fired. To is the
// state the window was left in; on a failed hide or show it is the state
// observed before the attempt.
type Transition struct {
	ID  int
	To  State
	Err error
}

// Apply toggles w once. The hide/show decision and the action use the same
// visibility reading.
func Apply(w Window) Transition {
	if w.Visible() {
		if err := w.Hide(); err != nil {
			return Transition{To: Shown, Err: err}
		}
		return Transition{To: Hidden}
	}
	if err := w.Show(); err != nil {
		return Transition{To: Hidden, Err: err}
	}
	return Transition{To: Shown, Err: w.Foreground()}
}

// Loop consumes a hotkey queue and toggles Window on every trigger.
type Loop struct {
	Window   Window
	Events   <-chan hotkey.Event
	OnToggle func(Transition)
}

// Run blocks until a Terminate event arrives or Events is closed and
// returns the number of toggles performed. All trigger ids are equivalent.
func (l *Loop) Run() int {
	toggles := 0
	for ev := range l.Events {
		switch ev.Kind {
		case hotkey.Terminate:
			return toggles
		case hotkey.Trigger:
			tr := Apply(l.Window)
			tr.ID = ev.ID
			toggles++
			if l.OnToggle != nil {
				l.OnToggle(tr)
			}
		}
	}
	return toggles
}
