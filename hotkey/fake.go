package hotkey

import (
	"errors"
	"sync"

	"togglewin/keys"
)

var errAlreadyRegistered = errors.New("hotkey is already registered")

// FakeBackend is an in-memory Backend for tests and headless runs.
type FakeBackend struct {
	mu           sync.Mutex
	queue        chan<- Event
	live         map[int]keys.Combination
	claimed      map[keys.Combination]bool
	unregistered []int
}

func NewFake(queue chan<- Event) *FakeBackend {
	return &FakeBackend{
		queue:   queue,
		live:    make(map[int]keys.Combination),
		claimed: make(map[keys.Combination]bool),
	}
}

// Claim marks c as owned by another process; registering it will fail.
func (f *FakeBackend) Claim(c keys.Combination) {
	f.mu.Lock()
	f.claimed[c] = true
	f.mu.Unlock()
}

func (f *FakeBackend) Register(id int, c keys.Combination) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.claimed[c] {
		return errAlreadyRegistered
	}
	for liveID, lc := range f.live {
		if lc == c || liveID == id {
			return errAlreadyRegistered
		}
	}
	f.live[id] = c
	return nil
}

func (f *FakeBackend) Unregister(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unregistered = append(f.unregistered, id)
	if _, ok := f.live[id]; !ok {
		return errors.New("hotkey is not registered")
	}
	delete(f.live, id)
	return nil
}

// SimTrigger delivers a press of id, as the OS would. Presses of ids that
// are not registered are dropped.
func (f *FakeBackend) SimTrigger(id int) bool {
	f.mu.Lock()
	_, ok := f.live[id]
	f.mu.Unlock()
	if ok {
		f.queue <- Event{Kind: Trigger, ID: id}
	}
	return ok
}

// Live reports how many ids are currently registered.
func (f *FakeBackend) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}

// Unregistered returns every id passed to Unregister, in call order.
func (f *FakeBackend) Unregistered() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.unregistered...)
}
