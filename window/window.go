// Package window finds top-level windows by title and shows or hides them.
package window

import (
	"errors"
	"strings"
)

// Handle is an OS window handle. It is a reference only; the window may be
// destroyed at any time.
type Handle uintptr

// Info is a visible top-level window with a non-empty, trimmed title.
type Info struct {
	Handle Handle
	Title  string
}

var (
	ErrUnsupported   = errors.New("window control is not supported on this platform")
	ErrInvalidHandle = errors.New("not a valid window handle")
	ErrNoMatch       = errors.New("no windows found matching that title")
)

// Desktop is the OS window manager as seen by this program.
type Desktop interface {
	// Windows lists visible top-level windows that have a title.
	Windows() ([]Info, error)
	IsWindow(h Handle) bool
	IsVisible(h Handle) bool
	Show(h Handle) error
	Hide(h Handle) error
	Foreground(h Handle) error
}

// Match returns the windows whose title contains term, ignoring case.
func Match(list []Info, term string) []Info {
	term = strings.ToLower(term)
	var out []Info
	for _, w := range list {
		if strings.Contains(strings.ToLower(w.Title), term) {
			out = append(out, w)
		}
	}
	return out
}

// Target binds a Desktop to one window.
type Target struct {
	Desktop Desktop
	Handle  Handle
}

func (t Target) Valid() bool { return t.Desktop.IsWindow(t.Handle) }
func (t Target) Visible() bool { return t.Desktop.IsVisible(t.Handle) }
func (t Target) Hide() error { return t.Desktop.Hide(t.Handle) }
func (t Target) Show() error { return t.Desktop.Show(t.Handle) }
func (t Target) Foreground() error { return t.Desktop.Foreground(t.Handle) }
