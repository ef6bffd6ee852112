//go:build windows

package hotkey

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"togglewin/keys"
)

type osBinding struct {
	hk   *hotkey.Hotkey
	stop chan struct{}
	done chan struct{}
}

type osBackend struct {
	queue chan<- Event
	mu    sync.Mutex
	live  map[int]*osBinding
}

// New returns a Backend backed by RegisterHotKey (golang.design/x/hotkey).
func New(queue chan<- Event) Backend {
	return &osBackend{queue: queue, live: make(map[int]*osBinding)}
}

func (b *osBackend) Register(id int, c keys.Combination) error {
	hk := hotkey.New([]hotkey.Modifier{hotkey.Modifier(c.Mods)}, hotkey.Key(c.Key))
	if err := hk.Register(); err != nil {
		return err
	}
	ob := &osBinding{hk: hk, stop: make(chan struct{}), done: make(chan struct{})}
	b.mu.Lock()
	b.live[id] = ob
	b.mu.Unlock()
	go b.forward(id, ob)
	return nil
}

// forward copies keydowns of one binding into the shared queue.
func (b *osBackend) forward(id int, ob *osBinding) {
	defer close(ob.done)
	for {
		select {
		case <-ob.stop:
			return
		case <-ob.hk.Keyup():
		case <-ob.hk.Keydown():
			select {
			case b.queue <- Event{Kind: Trigger, ID: id}:
			case <-ob.stop:
				return
			}
		}
	}
}

func (b *osBackend) Unregister(id int) error {
	b.mu.Lock()
	ob, ok := b.live[id]
	delete(b.live, id)
	b.mu.Unlock()
	if !ok {
		return fmt.Errorf("hotkey #%d is not registered", id)
	}
	close(ob.stop)
	<-ob.done
	return ob.hk.Unregister()
}

func Diagnose() (string, error) {
	return "hotkey support available (RegisterHotKey)", nil
}
