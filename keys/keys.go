// Package keys turns key names and combination strings into Win32 modifier
// masks and virtual-key codes.
package keys

import (
	"fmt"
	"strconv"
	"strings"
)

// Modifier is a Win32 hotkey modifier bitmask (MOD_*). Zero means no modifier.
type Modifier uint32

// KeyCode is a Win32 virtual-key code. Zero means the name was not recognized.
type KeyCode uint32

const (
	ModAlt   Modifier = 0x0001
	ModCtrl  Modifier = 0x0002
	ModShift Modifier = 0x0004
	ModWin   Modifier = 0x0008
)

const (
	VKBack   KeyCode = 0x08
	VKTab    KeyCode = 0x09
	VKReturn KeyCode = 0x0D
	VKEscape KeyCode = 0x1B
	VKSpace  KeyCode = 0x20
	VKPrior  KeyCode = 0x21
	VKNext   KeyCode = 0x22
	VKEnd    KeyCode = 0x23
	VKHome   KeyCode = 0x24
	VKLeft   KeyCode = 0x25
	VKUp     KeyCode = 0x26
	VKRight  KeyCode = 0x27
	VKDown   KeyCode = 0x28
	VKInsert KeyCode = 0x2D
	VKDelete KeyCode = 0x2E
	VKF1     KeyCode = 0x70
	VKF24    KeyCode = 0x87
)

const maxFuncKey = 24

// modifierOrder is the order modifiers are rendered in.
var modifierOrder = []struct {
	name string
	bit  Modifier
}{
	{"Ctrl", ModCtrl},
	{"Alt", ModAlt},
	{"Shift", ModShift},
	{"Win", ModWin},
}

var modifierByName = map[string]Modifier{
	"Alt":   ModAlt,
	"Ctrl":  ModCtrl,
	"Shift": ModShift,
	"Win":   ModWin,
}

// NamedKeys is the fixed table of non-character keys accepted by name.
var NamedKeys = map[string]KeyCode{
	"Backspace": VKBack,
	"Tab":       VKTab,
	"Enter":     VKReturn,
	"Esc":       VKEscape,
	"Space":     VKSpace,
	"Left":      VKLeft,
	"Up":        VKUp,
	"Right":     VKRight,
	"Down":      VKDown,
	"Insert":    VKInsert,
	"Delete":    VKDelete,
	"Home":      VKHome,
	"End":       VKEnd,
	"PageUp":    VKPrior,
	"PageDown":  VKNext,
}

// ModifierBit returns the mask bit for a modifier name, or 0 if name is not
// a modifier. Names are case-sensitive.
func ModifierBit(name string) Modifier {
	return modifierByName[name]
}

// Layout maps a single character to the virtual key that produces it on the
// active keyboard layout.
type Layout interface {
	KeyForChar(ch rune) (KeyCode, bool)
}

// Resolver resolves key names. The zero value uses the system layout and
// the NamedKeys table.
type Resolver struct {
	Layout Layout
	Named  map[string]KeyCode
}

// Key resolves a non-modifier key name. Single characters go through the
// keyboard layout first, then the named table is consulted, then F1..F24.
func (r Resolver) Key(name string) KeyCode {
	if runes := []rune(name); len(runes) == 1 {
		layout := r.Layout
		if layout == nil {
			layout = SystemLayout()
		}
		if vk, ok := layout.KeyForChar(runes[0]); ok {
			return vk
		}
	}

	named := r.Named
	if named == nil {
		named = NamedKeys
	}
	if vk, ok := named[name]; ok {
		return vk
	}

	return functionKey(name)
}

func functionKey(name string) KeyCode {
	if len(name) < 2 || name[0] != 'F' {
		return 0
	}
	digits := name[1:]
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > maxFuncKey {
		return 0
	}
	return VKF1 + KeyCode(n-1)
}

// Name renders a virtual-key code the way a user would type it.
func Name(vk KeyCode) string {
	switch {
	case vk >= 'A' && vk <= 'Z', vk >= '0' && vk <= '9':
		return string(rune(vk))
	case vk >= VKF1 && vk <= VKF24:
		return "F" + strconv.Itoa(int(vk-VKF1)+1)
	}
	for name, code := range NamedKeys {
		if code == vk {
			return name
		}
	}
	return fmt.Sprintf("0x%02X", uint32(vk))
}

// String renders the mask as "Ctrl+Alt+Shift+Win" in that fixed order.
func (m Modifier) String() string {
	var parts []string
	for _, mod := range modifierOrder {
		if m&mod.bit != 0 {
			parts = append(parts, mod.name)
		}
	}
	return strings.Join(parts, "+")
}
