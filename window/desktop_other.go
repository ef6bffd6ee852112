//go:build !windows

package window

type unsupportedDesktop struct{}

// System returns the desktop of the running OS.
func System() Desktop {
	return unsupportedDesktop{}
}

func (unsupportedDesktop) Windows() ([]Info, error) { return nil, ErrUnsupported }
func (unsupportedDesktop) IsWindow(Handle) bool { return false }
func (unsupportedDesktop) IsVisible(Handle) bool { return false }
func (unsupportedDesktop) Show(Handle) error { return ErrUnsupported }
func (unsupportedDesktop) Hide(Handle) error { return ErrUnsupported }
func (unsupportedDesktop) Foreground(Handle) error { return ErrUnsupported }
