package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"togglewin/hotkey"
	"togglewin/keys"
	"togglewin/notify"
	"togglewin/shutdown"
	"togglewin/toggle"
	"togglewin/window"
)

// toggleBacklog is how many toggles may complete before a WAIT reads them.
const toggleBacklog = 64

var defaultTestTitles = []string{"Untitled - Notepad", "Windows Terminal", "Calculator"}

// runTestMode runs a full session against an in-memory desktop and hotkey
// backend. Stdin answers the prompts first; once listening, it carries
// driver commands (TRIGGER <id>, WAIT, SLEEP <ms>, STATE, DESTROY, QUIT).
func runTestMode(titles []string, title string, combos []string) int {
	if len(titles) == 0 {
		titles = defaultTestTitles
	}
	desk := window.NewFakeDesktop()
	for _, t := range titles {
		desk.Add(t, true)
	}

	queue := hotkey.NewQueue()
	fb := hotkey.NewFake(queue)
	fwd := shutdown.Forward(queue)
	defer fwd.Stop()

	toggled := make(chan toggle.Transition, toggleBacklog)
	lines := readLines(os.Stdin)
	s := &session{
		desktop:     desk,
		backend:     fb,
		queue:       queue,
		resolver:    keys.Resolver{Layout: keys.USLayout{}},
		notifier:    notify.New(false),
		lines:       lines,
		interrupted: fwd.Interrupted(),
		out:         os.Stdout,
		title:       strings.TrimSpace(title),
		combos:      combos,
	}
	s.onListening = func(target window.Target, _ *hotkey.Registry) {
		go driveTestMode(lines, testDriver{
			backend: fb,
			desktop: desk,
			target:  target,
			fwd:     fwd,
			toggled: toggled,
			out:     os.Stdout,
		})
	}
	s.onToggle = func(tr toggle.Transition) { recordToggle(toggled, tr) }
	return s.run()
}

// recordToggle queues tr for a later WAIT, dropping it once the backlog is
// full so the loop never blocks on the driver.
func recordToggle(toggled chan<- toggle.Transition, tr toggle.Transition) {
	select {
	case toggled <- tr:
	default:
	}
}

type testDriver struct {
	backend *hotkey.FakeBackend
	desktop *window.FakeDesktop
	target  window.Target
	fwd     *shutdown.Forwarder
	toggled chan toggle.Transition
	out     io.Writer
}

// driveTestMode feeds stdin commands to the running loop. End of input acts
// as an interrupt.
func driveTestMode(lines <-chan string, d testDriver) {
	defer d.fwd.Interrupt()
	for line := range lines {
		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		switch cmd {
		case "TRIGGER":
			id, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(d.out, "bad id %q\n", arg)
				continue
			}
			if !d.backend.SimTrigger(id) {
				fmt.Fprintf(d.out, "hotkey %d is not registered\n", id)
			}
		case "WAIT":
			select {
			case tr := <-d.toggled:
				fmt.Fprintf(d.out, "toggled %d -> %s\n", tr.ID, tr.To)
			case <-time.After(5 * time.Second):
				fmt.Fprintln(d.out, "timed out waiting for toggle")
			}
		case "SLEEP":
			if ms, err := strconv.Atoi(arg); err == nil {
				time.Sleep(time.Duration(ms) * time.Millisecond)
			}
		case "STATE":
			fmt.Fprintf(d.out, "state: %s\n", describeTarget(d.desktop, d.target))
		case "DESTROY":
			d.desktop.Destroy(d.target.Handle)
		case "QUIT":
			return
		}
	}
}

func describeTarget(desk *window.FakeDesktop, target window.Target) string {
	switch {
	case !target.Valid():
		return "destroyed"
	case !target.Visible():
		return "hidden"
	case desk.ForegroundWindow() == target.Handle:
		return "shown foreground"
	}
	return "shown"
}
