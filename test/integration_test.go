//go:build integration

package test_test

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var testBinary string

func TestMain(m *testing.M) {
	testBinary = os.Getenv("TOGGLEWIN_TEST_BIN")
	if testBinary == "" {
		fmt.Fprintln(os.Stderr, "TOGGLEWIN_TEST_BIN not set; build the binary and point it there")
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func cmds(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

type result struct {
	out    string
	logDir string
	code   int
}

// runToggle runs the binary in test mode with windows titled by titles.
func runToggle(t *testing.T, stdin string, flags []string, titles ...string) result {
	t.Helper()
	logDir := t.TempDir()
	args := append([]string{"-logpath", logDir, "-test"}, flags...)
	args = append(args, titles...)

	cmd := exec.Command(testBinary, args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = os.Environ()

	out, err := cmd.CombinedOutput()
	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("togglewin did not run: %v", err)
	}
	return result{out: string(out), logDir: logDir, code: code}
}

func readLog(t *testing.T, logDir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("failed to read %s: %v", filename, err)
	}
	return string(data)
}

func requireOutput(t *testing.T, r result, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(r.out, w) {
			t.Errorf("output missing %q:\n%s", w, r.out)
		}
	}
}

func TestToggleRoundTrip(t *testing.T) {
	r := runToggle(t, cmds(
		"notepad", "1", "Ctrl+Shift+M", "done",
		"STATE",
		"TRIGGER 1", "WAIT", "STATE",
		"TRIGGER 1", "WAIT", "STATE",
		"QUIT",
	), nil, "Untitled - Notepad", "Terminal")

	if r.code != 0 {
		t.Fatalf("exit = %d\n%s", r.code, r.out)
	}
	requireOutput(t, r,
		"Selected window: Untitled - Notepad",
		"Hotkey Ctrl+Shift+M registered.",
		"state: shown\n",
		"toggled 1 -> hidden",
		"state: hidden",
		"toggled 1 -> shown",
		"state: shown foreground",
		"Exiting.",
	)

	diag := readLog(t, r.logDir, "diagnostics_log.txt")
	for _, want := range []string{"session_start", "hotkey_registered", "listening", "toggle", "session_end"} {
		if !strings.Contains(diag, want) {
			t.Errorf("diagnostics missing %q", want)
		}
	}
}

func TestEndOfInputInterrupts(t *testing.T) {
	r := runToggle(t, cmds("term", "1", "F9"), nil, "Terminal")
	if r.code != 0 {
		t.Fatalf("exit = %d\n%s", r.code, r.out)
	}
	requireOutput(t, r, "Listening for hotkeys (F9)", "Exiting.")
}

func TestNoHotkeysExitsWithFailure(t *testing.T) {
	r := runToggle(t, cmds("term", "1", "Ctrl", "done"), nil, "Terminal")
	if r.code != 1 {
		t.Fatalf("exit = %d, want 1\n%s", r.code, r.out)
	}
	requireOutput(t, r, "No key specified.", "No hotkeys registered, exiting.")
}

func TestNoMatchingWindow(t *testing.T) {
	r := runToggle(t, cmds("firefox"), nil, "Terminal")
	if r.code != 1 {
		t.Fatalf("exit = %d, want 1\n%s", r.code, r.out)
	}
	requireOutput(t, r, "No windows found matching that title.")
}

func TestPresetFlags(t *testing.T) {
	r := runToggle(t, cmds("1", "TRIGGER 2", "WAIT", "QUIT"),
		[]string{"-title", "term", "-hotkey", "Alt+F4", "-hotkey", "Win+T"}, "Terminal")
	if r.code != 0 {
		t.Fatalf("exit = %d\n%s", r.code, r.out)
	}
	requireOutput(t, r, "Hotkey Alt+F4 registered.", "Hotkey Win+T registered.", "toggled 2 -> hidden")
}

func TestDestroyedWindowKeepsRunning(t *testing.T) {
	r := runToggle(t, cmds("term", "1", "F9", "done", "DESTROY", "TRIGGER 1", "WAIT", "STATE", "QUIT"), nil, "Terminal")
	if r.code != 0 {
		t.Fatalf("exit = %d\n%s", r.code, r.out)
	}
	requireOutput(t, r, "Could not toggle window", "state: destroyed", "Exiting.")
}

func TestUnknownTrigger(t *testing.T) {
	r := runToggle(t, cmds("term", "1", "F9", "done", "TRIGGER 7", "QUIT"), nil, "Terminal")
	requireOutput(t, r, "hotkey 7 is not registered")
}
