//go:build windows

package shutdown

import (
	"os"
	"os/signal"
)

// Ctrl+C and Ctrl+Break both arrive as os.Interrupt. While subscribed, the
// console control handler reports them as handled.
func notify(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt)
}
