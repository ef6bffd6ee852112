package doctor

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"togglewin/hotkey"
	"togglewin/keys"
	"togglewin/window"
)

// pressingBackend fires each binding as soon as it is registered.
type pressingBackend struct {
	*hotkey.FakeBackend
}

func (b pressingBackend) Register(id int, c keys.Combination) error {
	if err := b.FakeBackend.Register(id, c); err != nil {
		return err
	}
	b.SimTrigger(id)
	return nil
}

func newChecker(press bool) (*checker, *bytes.Buffer, *hotkey.FakeBackend) {
	queue := hotkey.NewQueue()
	fb := hotkey.NewFake(queue)
	desk := window.NewFakeDesktop()
	desk.Add("Editor", true)

	var backend hotkey.Backend = fb
	if press {
		backend = pressingBackend{fb}
	}
	out := &bytes.Buffer{}
	return &checker{
		out:      out,
		desktop:  desk,
		resolver: keys.Resolver{Layout: keys.USLayout{}},
		backend:  backend,
		queue:    queue,
		timeout:  50 * time.Millisecond,
	}, out, fb
}

func TestAllChecksPass(t *testing.T) {
	c, out, fb := newChecker(true)
	if code := c.run(); code != 0 {
		t.Fatalf("exit = %d, output:\n%s", code, out)
	}
	for _, want := range []string{"PASS: 1 visible windows", "keys resolved", "PASS: hotkey detected", "All checks passed!"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if fb.Live() != 0 {
		t.Errorf("probe hotkey still registered")
	}
}

func TestHotkeyTimeout(t *testing.T) {
	c, out, _ := newChecker(false)
	if code := c.run(); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "FAIL: timeout waiting for hotkey") {
		t.Errorf("output:\n%s", out)
	}
}

func TestHotkeyInterrupted(t *testing.T) {
	c, out, _ := newChecker(false)
	q := hotkey.NewQueue()
	q <- hotkey.Event{Kind: hotkey.Terminate}
	c.queue = q
	c.timeout = time.Second
	if code := c.run(); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "FAIL: interrupted") {
		t.Errorf("output:\n%s", out)
	}
}

func TestHotkeyConflict(t *testing.T) {
	c, out, fb := newChecker(true)
	fb.Claim(keys.Combination{Mods: keys.ModCtrl | keys.ModShift, Key: keys.VKSpace})
	if code := c.run(); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "FAIL: could not register hotkey") {
		t.Errorf("output:\n%s", out)
	}
}

func TestNoWindowsStopsEarly(t *testing.T) {
	c, out, fb := newChecker(true)
	c.desktop = window.NewFakeDesktop()
	if code := c.run(); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if strings.Contains(out.String(), "[2/3]") {
		t.Errorf("later checks ran after a failure:\n%s", out)
	}
	if len(fb.Unregistered()) != 0 {
		t.Error("hotkey backend was used")
	}
}

func TestHotkeyUnsupported(t *testing.T) {
	c, out, fb := newChecker(true)
	c.diagnose = func() (string, error) { return "", hotkey.ErrUnsupported }
	if code := c.run(); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "FAIL: "+hotkey.ErrUnsupported.Error()) {
		t.Errorf("output:\n%s", out)
	}
	if len(fb.Unregistered()) != 0 {
		t.Error("registered a probe on an unsupported platform")
	}
}
