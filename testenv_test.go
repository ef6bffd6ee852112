package main

import (
	"bytes"
	"strings"
	"testing"

	"togglewin/hotkey"
	"togglewin/shutdown"
	"togglewin/toggle"
	"togglewin/window"
)

func TestWaitSeesEveryQueuedToggle(t *testing.T) {
	desk := window.NewFakeDesktop()
	h := desk.Add("Editor", true)
	queue := hotkey.NewQueue()
	fwd := shutdown.Forward(queue)
	defer fwd.Stop()

	toggled := make(chan toggle.Transition, toggleBacklog)
	recordToggle(toggled, toggle.Transition{ID: 1, To: toggle.Hidden})
	recordToggle(toggled, toggle.Transition{ID: 2, To: toggle.Shown})

	lines := make(chan string, 3)
	lines <- "WAIT"
	lines <- "WAIT"
	lines <- "STATE"
	close(lines)

	var out bytes.Buffer
	driveTestMode(lines, testDriver{
		backend: hotkey.NewFake(queue),
		desktop: desk,
		target:  window.Target{Desktop: desk, Handle: h},
		fwd:     fwd,
		toggled: toggled,
		out:     &out,
	})

	want := "toggled 1 -> hidden\ntoggled 2 -> shown\nstate: shown\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Contains(out.String(), "timed out") {
		t.Error("second WAIT missed a toggle")
	}
}
