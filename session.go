package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"togglewin/hotkey"
	"togglewin/keys"
	"togglewin/log"
	"togglewin/notify"
	"togglewin/toggle"
	"togglewin/window"
)

const doneSentinel = "done"

const (
	exitOK    = 0
	exitFatal = 1
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	plainStyle  = lipgloss.NewStyle()
)

// session runs one pick-window, bind-hotkeys, toggle cycle.
type session struct {
	desktop  window.Desktop
	backend  hotkey.Backend
	queue    <-chan hotkey.Event
	resolver keys.Resolver
	notifier *notify.Notifier

	lines       <-chan string
	interrupted <-chan struct{}
	out         io.Writer
	prompts     bool

	// Presets from flags; empty means ask.
	title  string
	combos []string

	// onListening runs once the loop is about to start; onToggle after
	// every toggle.
	onListening func(target window.Target, reg *hotkey.Registry)
	onToggle    func(tr toggle.Transition)
}

// readLines feeds r line by line into an unbuffered channel, closed at end
// of input. Lines have no length limit; a read error is reported and then
// treated as end of input.
func readLines(r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" || err == nil {
				ch <- strings.TrimRight(line, "\r\n")
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: reading input: %v\n", err)
				log.Errorf("reading input: %v", err)
				return
			}
		}
	}()
	return ch
}

func (s *session) say(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(s.out, style.Render(fmt.Sprintf(format, args...)))
}

// ask prints prompt and waits for a line. ok is false at end of input or
// after an interrupt.
func (s *session) ask(prompt string) (line string, ok bool) {
	if s.prompts {
		fmt.Fprint(s.out, promptStyle.Render(prompt))
	}
	select {
	case line, ok = <-s.lines:
		return line, ok
	case <-s.interrupted:
		return "", false
	}
}

func (s *session) run() int {
	target, ok := s.selectWindow()
	if !ok {
		return exitFatal
	}
	if !target.Valid() {
		s.say(errStyle, "Invalid window handle.")
		log.Errorf("selected handle %#x is not a window", uintptr(target.Handle))
		return exitFatal
	}

	reg := hotkey.NewRegistry(s.backend)
	defer func() {
		if err := reg.Close(); err != nil {
			log.Errorf("hotkey teardown: %v", err)
		}
	}()

	s.bindHotkeys(reg)
	if reg.Len() == 0 {
		s.say(errStyle, "No hotkeys registered, exiting.")
		log.SessionEnd("no_hotkeys", 0, 0)
		return exitFatal
	}

	var combos []string
	for _, b := range reg.Bindings() {
		combos = append(combos, b.Combo.String())
	}
	s.say(okStyle, "Listening for hotkeys (%s)... Press Ctrl+C to exit.", strings.Join(combos, ", "))
	s.notifier.Armed(s.title, combos)
	log.Info("listening")
	if s.onListening != nil {
		s.onListening(target, reg)
	}

	loop := &toggle.Loop{
		Window: target,
		Events: s.queue,
		OnToggle: func(tr toggle.Transition) {
			log.Toggle(tr.ID, tr.To.String(), tr.Err)
			if tr.Err != nil {
				s.say(warnStyle, "Could not toggle window: %v", tr.Err)
				s.notifier.Error(fmt.Sprintf("could not toggle %s: %v", s.title, tr.Err))
			}
			if s.onToggle != nil {
				s.onToggle(tr)
			}
		},
	}
	toggles := loop.Run()

	s.say(dimStyle, "Exiting.")
	log.SessionEnd("interrupt", toggles, reg.Len())
	return exitOK
}

// selectWindow narrows the visible windows by title and lets the operator
// pick one of the matches.
func (s *session) selectWindow() (window.Target, bool) {
	list, err := s.desktop.Windows()
	if err != nil {
		s.say(errStyle, "Error: %v", err)
		log.Errorf("window enumeration: %v", err)
		return window.Target{}, false
	}

	term := s.title
	if term == "" {
		line, ok := s.ask("Enter part of the window title to search: ")
		if !ok {
			return window.Target{}, false
		}
		term = strings.TrimSpace(line)
	}

	matches := window.Match(list, term)
	if len(matches) == 0 {
		s.say(errStyle, "%s.", capitalize(window.ErrNoMatch.Error()))
		log.Warnf("no window matches %q", term)
		return window.Target{}, false
	}

	s.say(plainStyle, "Matching windows:")
	for i, w := range matches {
		s.say(plainStyle, "%d: %s", i+1, w.Title)
	}

	choice := 0
	for choice == 0 {
		line, ok := s.ask("Select the window number: ")
		if !ok {
			s.say(errStyle, "Selection cancelled.")
			return window.Target{}, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil:
			s.say(warnStyle, "Invalid input. Please enter a number.")
		case n < 1 || n > len(matches):
			s.say(warnStyle, "Invalid selection. Please enter a number between 1 and %d.", len(matches))
		default:
			choice = n
		}
	}

	picked := matches[choice-1]
	s.title = picked.Title
	s.say(plainStyle, "Selected window: %s", picked.Title)
	log.SessionStart(picked.Title, uintptr(picked.Handle))
	return window.Target{Desktop: s.desktop, Handle: picked.Handle}, true
}

// bindHotkeys registers the preset combinations, or asks for combinations
// until the operator types "done". Bad input and conflicts are reported and
// never end the input phase.
func (s *session) bindHotkeys(reg *hotkey.Registry) {
	if len(s.combos) > 0 {
		for _, raw := range s.combos {
			s.bind(reg, raw)
		}
		return
	}

	s.say(plainStyle, "Enter key combinations to toggle the window (e.g., Ctrl+Shift+M).")
	s.say(plainStyle, "Enter '%s' when finished.", doneSentinel)
	for {
		line, ok := s.ask("Enter key combination: ")
		if !ok || line == doneSentinel {
			return
		}
		s.bind(reg, line)
	}
}

func (s *session) bind(reg *hotkey.Registry, raw string) {
	combo, err := s.resolver.Parse(keys.StripSpace(raw))
	if err != nil {
		s.say(warnStyle, "%s", describeParseError(err))
		s.say(warnStyle, "Invalid key combination. Please try again.")
		return
	}

	id, err := reg.Register(combo)
	var conflict *hotkey.ConflictError
	if errors.As(err, &conflict) {
		log.HotkeyConflict(conflict.ID, combo.String(), conflict.Err)
		s.say(warnStyle, "Failed to register hotkey %s. It might be already in use.", combo)
		return
	}
	log.HotkeyRegistered(id, combo.String())
	s.say(okStyle, "Hotkey %s registered.", combo)
}

func describeParseError(err error) string {
	var unrec *keys.UnrecognizedTokenError
	switch {
	case errors.As(err, &unrec):
		return "Invalid key or modifier: " + strconv.Quote(unrec.Token)
	case errors.Is(err, keys.ErrMultipleKeys):
		return capitalize(err.Error())
	case errors.Is(err, keys.ErrNoKey):
		return "No key specified."
	}
	return err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
