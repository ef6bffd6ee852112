// Package log writes the diagnostic log. Every call is a no-op until Init
// succeeds, so logging problems never stop the program.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const (
	appName  = "togglewin"
	envPath  = "TOGGLEWIN_LOG_PATH"
	diagName = "diagnostics_log.txt"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	dir      string
)

// ResolveDir picks the log directory: the -logpath flag, then
// TOGGLEWIN_LOG_PATH, then the OS default. Relative paths are made absolute.
func ResolveDir(flagPath string) (string, error) {
	for _, p := range []string{flagPath, os.Getenv(envPath)} {
		if p == "" {
			continue
		}
		if filepath.IsAbs(p) {
			return p, nil
		}
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(wd, p), nil
	}
	return defaultDir()
}

func SetDir(d string) {
	dir = d
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, diagName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	diagFile = f

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", os.Getpid()).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

// event returns a log event at level, or nil when logging is off.
// zerolog treats methods on a nil *Event as no-ops.
func event(level zerolog.Level) *zerolog.Event {
	logMu.Lock()
	defer logMu.Unlock()
	if !logReady {
		return nil
	}
	return diagLog.WithLevel(level)
}

func Info(msg string) {
	event(zerolog.InfoLevel).Msg(msg)
}

func Warnf(format string, args ...any) {
	event(zerolog.WarnLevel).Msgf(format, args...)
}

func Errorf(format string, args ...any) {
	event(zerolog.ErrorLevel).Msgf(format, args...)
}

func SessionStart(title string, handle uintptr) {
	event(zerolog.InfoLevel).
		Str("title", title).
		Str("hwnd", fmt.Sprintf("%#x", handle)).
		Msg("session_start")
}

func HotkeyRegistered(id int, combo string) {
	event(zerolog.InfoLevel).
		Int("id", id).
		Str("combo", combo).
		Msg("hotkey_registered")
}

func HotkeyConflict(id int, combo string, err error) {
	event(zerolog.WarnLevel).
		Int("id", id).
		Str("combo", combo).
		Err(err).
		Msg("hotkey_conflict")
}

func Toggle(id int, state string, err error) {
	level := zerolog.InfoLevel
	if err != nil {
		level = zerolog.ErrorLevel
	}
	event(level).Int("id", id).Str("state", state).Err(err).Msg("toggle")
}

func SessionEnd(reason string, toggles, bindings int) {
	event(zerolog.InfoLevel).
		Str("reason", reason).
		Int("toggles", toggles).
		Int("bindings", bindings).
		Msg("session_end")
}
