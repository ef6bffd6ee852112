package shutdown

import (
	"os"
	"testing"
	"time"

	"togglewin/hotkey"
)

func TestInterruptBecomesTerminate(t *testing.T) {
	q := hotkey.NewQueue()
	sig := make(chan os.Signal, 2)
	f := newForwarder(sig)
	go f.run(q)
	defer f.Stop()

	sig <- os.Interrupt
	select {
	case <-f.Interrupted():
	case <-time.After(time.Second):
		t.Fatal("Interrupted not closed")
	}
	select {
	case ev := <-q:
		if ev.Kind != hotkey.Terminate {
			t.Errorf("event = %+v, want Terminate", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no Terminate event queued")
	}

	// A second interrupt must not queue another event.
	sig <- os.Interrupt
	select {
	case ev := <-q:
		t.Errorf("unexpected second event %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTerminateQueuedBehindTriggers(t *testing.T) {
	q := make(chan hotkey.Event, 4)
	q <- hotkey.Event{Kind: hotkey.Trigger, ID: 1}
	sig := make(chan os.Signal, 1)
	f := newForwarder(sig)
	go f.run(q)
	defer f.Stop()

	sig <- os.Interrupt
	<-f.Interrupted()

	first := <-q
	if first.Kind != hotkey.Trigger {
		t.Fatalf("first = %+v, want the pending trigger", first)
	}
	select {
	case ev := <-q:
		if ev.Kind != hotkey.Terminate {
			t.Errorf("second = %+v, want Terminate", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no Terminate event queued")
	}
}

func TestStopWithoutInterrupt(t *testing.T) {
	f := Forward(hotkey.NewQueue())
	f.Stop()
	f.Stop()
	select {
	case <-f.Interrupted():
		t.Error("Interrupted closed without a signal")
	default:
	}
}

func TestInterruptMethod(t *testing.T) {
	q := hotkey.NewQueue()
	f := newForwarder(make(chan os.Signal, 1))
	go f.run(q)
	defer f.Stop()

	f.Interrupt()
	f.Interrupt()
	select {
	case ev := <-q:
		if ev.Kind != hotkey.Terminate {
			t.Errorf("event = %+v, want Terminate", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no Terminate event queued")
	}
}
