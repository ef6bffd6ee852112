package keys

import "unicode"

// USLayout maps characters to virtual keys as on a US QWERTY keyboard.
// Shifted characters resolve to the key that produces them.
type USLayout struct{}

var usOEM = map[rune]KeyCode{
	' ': VKSpace,
	';': 0xBA, ':': 0xBA,
	'=': 0xBB, '+': 0xBB,
	',': 0xBC, '<': 0xBC,
	'-': 0xBD, '_': 0xBD,
	'.': 0xBE, '>': 0xBE,
	'/': 0xBF, '?': 0xBF,
	'`': 0xC0, '~': 0xC0,
	'[': 0xDB, '{': 0xDB,
	'\\': 0xDC, '|': 0xDC,
	']': 0xDD, '}': 0xDD,
	'\'': 0xDE, '"': 0xDE,
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
}

func (USLayout) KeyForChar(ch rune) (KeyCode, bool) {
	ch = unicode.ToUpper(ch)
	switch {
	case ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return KeyCode(ch), true
	}
	vk, ok := usOEM[ch]
	return vk, ok
}
