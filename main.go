package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"togglewin/doctor"
	"togglewin/hotkey"
	"togglewin/keys"
	"togglewin/log"
	"togglewin/notify"
	"togglewin/shutdown"
	"togglewin/window"
)

var version = "dev"

func main() {
	os.Exit(run())
}

// run returns the process exit code. Deferred cleanup, including hotkey
// teardown, has finished by the time it returns.
func run() int {
	titleFlag := flag.String("title", "", "Window title search term (skips the search prompt)")
	var hotkeyFlags []string
	flag.Func("hotkey", "Key combination to register, e.g. Ctrl+Shift+M (repeatable; skips the combination prompts)", func(v string) error {
		hotkeyFlags = append(hotkeyFlags, v)
		return nil
	})
	listFlag := flag.Bool("list", false, "List visible windows and exit")
	notifyFlag := flag.Bool("notify", false, "Show a desktop notification once hotkeys are armed")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run system diagnostics and exit")
	testFlag := flag.Bool("test", false, "Test mode (headless, fake desktop, stdin-driven); args are window titles")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("togglewin %s\n", version)
		return exitOK
	}

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		return exitFatal
	}
	log.SetDir(logPath)
	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()

	if *doctorFlag {
		return doctor.Run()
	}

	if *testFlag {
		return runTestMode(flag.Args(), *titleFlag, hotkeyFlags)
	}

	desktop := window.System()
	if *listFlag {
		return listWindows(desktop, os.Stdout)
	}

	queue := hotkey.NewQueue()
	fwd := shutdown.Forward(queue)
	defer fwd.Stop()

	s := &session{
		desktop:     desktop,
		backend:     hotkey.New(queue),
		queue:       queue,
		resolver:    keys.Resolver{Layout: keys.SystemLayout()},
		notifier:    notify.New(*notifyFlag),
		lines:       readLines(os.Stdin),
		interrupted: fwd.Interrupted(),
		out:         os.Stdout,
		prompts:     term.IsTerminal(int(os.Stdin.Fd())),
		title:       strings.TrimSpace(*titleFlag),
		combos:      hotkeyFlags,
	}
	return s.run()
}

func listWindows(d window.Desktop, out io.Writer) int {
	list, err := d.Windows()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return exitFatal
	}
	for _, w := range list {
		fmt.Fprintf(out, "%#010x  %s\n", uintptr(w.Handle), w.Title)
	}
	return exitOK
}
