//go:build windows

package keys

import (
	"unicode"

	"golang.org/x/sys/windows"
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procVkKeyScanW = user32.NewProc("VkKeyScanW")
)

type systemLayout struct{}

// SystemLayout returns the keyboard layout of the calling thread.
func SystemLayout() Layout {
	return systemLayout{}
}

func (systemLayout) KeyForChar(ch rune) (KeyCode, bool) {
	ch = unicode.ToUpper(ch)
	if ch > 0xFFFF {
		return 0, false
	}
	if err := procVkKeyScanW.Find(); err != nil {
		return USLayout{}.KeyForChar(ch)
	}
	r, _, _ := procVkKeyScanW.Call(uintptr(ch))
	if int16(r) == -1 {
		return 0, false
	}
	return KeyCode(r & 0xFF), true
}
