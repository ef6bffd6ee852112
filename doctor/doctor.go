// Package doctor runs interactive checks of the pieces a toggle session
// depends on: window enumeration, key resolution and hotkey delivery.
package doctor

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"togglewin/hotkey"
	"togglewin/keys"
	"togglewin/shutdown"
	"togglewin/window"
)

const probeCombo = "Ctrl+Shift+Space"

// probeKeys must all resolve for the key check to pass.
var probeKeys = []string{"A", "Z", "0", "9", "F1", "F24", "Space", "Enter", "Esc", "PageDown"}

type checker struct {
	out      io.Writer
	desktop  window.Desktop
	resolver keys.Resolver
	backend  hotkey.Backend
	queue    <-chan hotkey.Event
	timeout  time.Duration
	diagnose func() (string, error)
}

// Run executes the checks and returns an exit code (0=all pass, 1=any fail).
func Run() int {
	queue := hotkey.NewQueue()
	fwd := shutdown.Forward(queue)
	defer fwd.Stop()

	c := &checker{
		out:      os.Stdout,
		desktop:  window.System(),
		resolver: keys.Resolver{Layout: keys.SystemLayout()},
		backend:  hotkey.New(queue),
		queue:    queue,
		timeout:  10 * time.Second,
		diagnose: hotkey.Diagnose,
	}
	return c.run()
}

func (c *checker) run() int {
	fmt.Fprintln(c.out, "togglewin doctor - interactive system diagnostics")
	fmt.Fprintln(c.out, "=================================================")

	allPass := c.checkWindows()
	if allPass && !c.checkKeys() {
		allPass = false
	}
	if allPass && !c.checkHotkey() {
		allPass = false
	}

	fmt.Fprintln(c.out)
	if allPass {
		fmt.Fprintln(c.out, "All checks passed!")
		return 0
	}
	fmt.Fprintln(c.out, "Some checks failed. See details above.")
	return 1
}

func (c *checker) checkWindows() bool {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "[1/3] Window enumeration")

	list, err := c.desktop.Windows()
	if err != nil {
		fmt.Fprintf(c.out, "  FAIL: cannot list windows: %v\n", err)
		return false
	}
	if len(list) == 0 {
		fmt.Fprintln(c.out, "  FAIL: no visible titled windows found")
		return false
	}
	fmt.Fprintf(c.out, "  PASS: %d visible windows\n", len(list))
	return true
}

func (c *checker) checkKeys() bool {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "[2/3] Key resolution")

	var missing []string
	for _, name := range probeKeys {
		if c.resolver.Key(name) == 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(c.out, "  FAIL: unresolved keys: %s\n", strings.Join(missing, ", "))
		return false
	}
	fmt.Fprintf(c.out, "  PASS: %d keys resolved\n", len(probeKeys))
	return true
}

func (c *checker) checkHotkey() bool {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "[3/3] Hotkey detection")

	if c.diagnose != nil {
		info, err := c.diagnose()
		if err != nil {
			fmt.Fprintf(c.out, "  FAIL: %v\n", err)
			return false
		}
		fmt.Fprintf(c.out, "  %s\n", info)
	}

	combo, err := c.resolver.Parse(probeCombo)
	if err != nil {
		fmt.Fprintf(c.out, "  FAIL: %s does not parse: %v\n", probeCombo, err)
		return false
	}

	reg := hotkey.NewRegistry(c.backend)
	defer reg.Close()
	id, err := reg.Register(combo)
	if err != nil {
		fmt.Fprintf(c.out, "  FAIL: could not register hotkey: %v\n", err)
		return false
	}
	fmt.Fprintf(c.out, "Press %s...\n", combo)

	timeout := time.After(c.timeout)
	for {
		select {
		case ev := <-c.queue:
			if ev.Kind == hotkey.Terminate {
				fmt.Fprintln(c.out, "  FAIL: interrupted")
				return false
			}
			if ev.ID == id {
				fmt.Fprintln(c.out, "  PASS: hotkey detected")
				return true
			}
		case <-timeout:
			fmt.Fprintln(c.out, "  FAIL: timeout waiting for hotkey")
			return false
		}
	}
}
