//go:build !windows

package keys

// SystemLayout returns a US QWERTY mapping; only Windows reports the live layout.
func SystemLayout() Layout {
	return USLayout{}
}
