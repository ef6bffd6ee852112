//go:build windows

package window

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procShowWindow           = user32.NewProc("ShowWindow")
	procSetForegroundWindow  = user32.NewProc("SetForegroundWindow")
)

const (
	swHide = 0
	swShow = 5
)

// EnumWindows callbacks are never freed, so a single one is shared.
var (
	enumMu       sync.Mutex
	enumFound    []Info
	enumCallback = windows.NewCallback(collectWindow)
)

func collectWindow(hwnd windows.HWND, _ uintptr) uintptr {
	if !windows.IsWindowVisible(hwnd) {
		return 1
	}
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(hwnd))
	if n == 0 {
		return 1
	}
	buf := make([]uint16, n+1)
	copied, _ := windows.GetWindowText(hwnd, &buf[0], int32(len(buf)))
	if copied <= 0 {
		return 1
	}
	title := strings.TrimSpace(windows.UTF16ToString(buf[:copied]))
	if title != "" {
		enumFound = append(enumFound, Info{Handle: Handle(hwnd), Title: title})
	}
	return 1
}

type systemDesktop struct{}

// System returns the desktop of the running OS.
func System() Desktop {
	return systemDesktop{}
}

func (systemDesktop) Windows() ([]Info, error) {
	enumMu.Lock()
	defer enumMu.Unlock()
	enumFound = nil
	if err := windows.EnumWindows(enumCallback, nil); err != nil {
		return nil, fmt.Errorf("enumerating windows: %w", err)
	}
	found := enumFound
	enumFound = nil
	return found, nil
}

func (systemDesktop) IsWindow(h Handle) bool {
	return windows.IsWindow(windows.HWND(h))
}

func (systemDesktop) IsVisible(h Handle) bool {
	return windows.IsWindowVisible(windows.HWND(h))
}

func (d systemDesktop) Show(h Handle) error {
	return d.showWindow(h, swShow)
}

func (d systemDesktop) Hide(h Handle) error {
	return d.showWindow(h, swHide)
}

func (d systemDesktop) showWindow(h Handle, cmd uintptr) error {
	if !d.IsWindow(h) {
		return ErrInvalidHandle
	}
	// The return value is the previous visibility, not a status.
	procShowWindow.Call(uintptr(h), cmd)
	return nil
}

func (d systemDesktop) Foreground(h Handle) error {
	if !d.IsWindow(h) {
		return ErrInvalidHandle
	}
	r, _, err := procSetForegroundWindow.Call(uintptr(h))
	if r != 0 {
		return nil
	}
	if errors.Is(err, windows.ERROR_SUCCESS) {
		return errors.New("SetForegroundWindow refused")
	}
	return fmt.Errorf("SetForegroundWindow: %w", err)
}
