//go:build !windows

package hotkey

import "togglewin/keys"

type unsupportedBackend struct{}

// New returns a Backend that refuses every registration; key codes are
// Win32 virtual keys, which no other platform backend understands.
func New(chan<- Event) Backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) Register(int, keys.Combination) error { return ErrUnsupported }
func (unsupportedBackend) Unregister(int) error { return ErrUnsupported }

func Diagnose() (string, error) {
	return "", ErrUnsupported
}
