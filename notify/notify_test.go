package notify

import (
	"strings"
	"testing"
)

type sent struct{ title, message string }

func recorder(n *Notifier) *[]sent {
	var got []sent
	n.send = func(title, message string) error {
		got = append(got, sent{title, message})
		return nil
	}
	return &got
}

func TestArmed(t *testing.T) {
	n := New(true)
	got := recorder(n)

	n.Armed("Notepad", []string{"Ctrl+Shift+M", "F9"})
	if len(*got) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(*got))
	}
	msg := (*got)[0]
	if msg.title != "togglewin: listening" {
		t.Errorf("title = %q", msg.title)
	}
	if msg.message != "Ctrl+Shift+M, F9 toggles Notepad" {
		t.Errorf("message = %q", msg.message)
	}
}

func TestArmedTruncatesLongTitles(t *testing.T) {
	n := New(true)
	got := recorder(n)
	n.Armed(strings.Repeat("x", 200), []string{"F9"})
	if m := (*got)[0].message; !strings.HasSuffix(m, "...") || len(m) > 100 {
		t.Errorf("message not truncated: %q", m)
	}
}

func TestDisabledSendsNothing(t *testing.T) {
	n := New(false)
	got := recorder(n)
	n.Armed("Notepad", []string{"F9"})
	n.Error("boom")
	if len(*got) != 0 {
		t.Errorf("sent %d notifications while disabled", len(*got))
	}
}
