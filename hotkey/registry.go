package hotkey

import (
	"errors"
	"fmt"

	"togglewin/keys"
)

// Binding is a combination currently registered with the OS under ID.
type Binding struct {
	ID    int
	Combo keys.Combination
}

// ConflictError reports a combination the OS refused to register.
type ConflictError struct {
	ID    int
	Combo keys.Combination
	Err   error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("hotkey #%d (%s) not registered: %v", e.ID, e.Combo, e.Err)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// Registry tracks every binding live with the OS so they can be released
// together. Ids start at 1 and are never reused, including ids of failed
// registrations. A Registry is not safe for concurrent use.
type Registry struct {
	backend Backend
	nextID  int
	live    []Binding
}

func NewRegistry(b Backend) *Registry {
	return &Registry{backend: b, nextID: 1}
}

// Register claims c with the OS and returns its id.
func (r *Registry) Register(c keys.Combination) (int, error) {
	id := r.nextID
	r.nextID++
	if err := r.backend.Register(id, c); err != nil {
		return 0, &ConflictError{ID: id, Combo: c, Err: err}
	}
	r.live = append(r.live, Binding{ID: id, Combo: c})
	return id, nil
}

// Len returns the number of live bindings.
func (r *Registry) Len() int {
	return len(r.live)
}

// Bindings returns a copy of the live bindings in registration order.
func (r *Registry) Bindings() []Binding {
	return append([]Binding(nil), r.live...)
}

// Close unregisters every live binding and empties the registry. Calling it
// again is a no-op. Every binding is attempted even if some fail.
func (r *Registry) Close() error {
	var errs []error
	for _, b := range r.live {
		if err := r.backend.Unregister(b.ID); err != nil {
			errs = append(errs, fmt.Errorf("unregister hotkey #%d: %w", b.ID, err))
		}
	}
	r.live = nil
	return errors.Join(errs...)
}
