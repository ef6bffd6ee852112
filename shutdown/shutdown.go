// Package shutdown converts process interrupts into a Terminate event on the
// hotkey queue so the waiting loop wakes up through its normal receive.
package shutdown

import (
	"os"
	"os/signal"
	"sync"

	"togglewin/hotkey"
)

// Forwarder owns the interrupt subscription for the lifetime of a session.
// While it is active, interrupts never terminate the process directly.
type Forwarder struct {
	sig         chan os.Signal
	interrupted chan struct{}
	stop        chan struct{}
	once        sync.Once
}

// Forward starts intercepting interrupts. The first one closes Interrupted
// and enqueues a single Terminate event; later ones are swallowed.
func Forward(queue chan<- hotkey.Event) *Forwarder {
	f := newForwarder(make(chan os.Signal, 1))
	notify(f.sig)
	go f.run(queue)
	return f
}

func newForwarder(sig chan os.Signal) *Forwarder {
	return &Forwarder{
		sig:         sig,
		interrupted: make(chan struct{}),
		stop:        make(chan struct{}),
	}
}

func (f *Forwarder) run(queue chan<- hotkey.Event) {
	select {
	case <-f.sig:
	case <-f.stop:
		return
	}
	close(f.interrupted)
	select {
	case queue <- hotkey.Event{Kind: hotkey.Terminate}:
	case <-f.stop:
	}
}

// Interrupted is closed once the first interrupt has been received.
func (f *Forwarder) Interrupted() <-chan struct{} {
	return f.interrupted
}

// Interrupt behaves as if the process had received an interrupt.
func (f *Forwarder) Interrupt() {
	select {
	case f.sig <- os.Interrupt:
	default:
	}
}

// Stop releases the subscription. Safe to call more than once.
func (f *Forwarder) Stop() {
	f.once.Do(func() {
		signal.Stop(f.sig)
		close(f.stop)
	})
}
