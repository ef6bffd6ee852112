package window

import "sync"

type fakeWindow struct {
	title   string
	visible bool
}

// FakeDesktop is an in-memory Desktop for tests and headless runs.
type FakeDesktop struct {
	mu         sync.Mutex
	windows    map[Handle]*fakeWindow
	order      []Handle
	foreground Handle
}

func NewFakeDesktop() *FakeDesktop {
	return &FakeDesktop{windows: make(map[Handle]*fakeWindow)}
}

// Add creates a window and returns its handle.
func (d *FakeDesktop) Add(title string, visible bool) Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := Handle(0x1000 + len(d.order)*0x10)
	d.windows[h] = &fakeWindow{title: title, visible: visible}
	d.order = append(d.order, h)
	return h
}

// Destroy removes a window; its handle becomes invalid.
func (d *FakeDesktop) Destroy(h Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.windows, h)
}

// ForegroundWindow returns the handle last brought to the foreground.
func (d *FakeDesktop) ForegroundWindow() Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.foreground
}

func (d *FakeDesktop) Windows() ([]Info, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []Info
	for _, h := range d.order {
		w, ok := d.windows[h]
		if !ok || !w.visible || w.title == "" {
			continue
		}
		out = append(out, Info{Handle: h, Title: w.title})
	}
	return out, nil
}

func (d *FakeDesktop) IsWindow(h Handle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.windows[h]
	return ok
}

func (d *FakeDesktop) IsVisible(h Handle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.windows[h]
	return ok && w.visible
}

func (d *FakeDesktop) Show(h Handle) error { return d.setVisible(h, true) }
func (d *FakeDesktop) Hide(h Handle) error { return d.setVisible(h, false) }

func (d *FakeDesktop) setVisible(h Handle, v bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.windows[h]
	if !ok {
		return ErrInvalidHandle
	}
	w.visible = v
	return nil
}

func (d *FakeDesktop) Foreground(h Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.windows[h]; !ok {
		return ErrInvalidHandle
	}
	d.foreground = h
	return nil
}
