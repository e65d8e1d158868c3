package state

import (
	"sync"
)

// Subscriber observes the state after each dispatched action.
type Subscriber func(app App, action Action)

// Dispatcher owns the canonical App value and serializes all mutations:
// one action is reduced at a time, and subscribers run before the next
// action is admitted. This is the single-writer ordering the client relies
// on instead of finer-grained locking.
type Dispatcher struct {
	mu          sync.Mutex
	app         App
	subscribers []Subscriber
}

// NewDispatcher creates a Dispatcher starting from initial.
func NewDispatcher(initial App) *Dispatcher {
	return &Dispatcher{app: initial}
}

// Subscribe registers fn to run after every dispatch. Not safe to call
// concurrently with Dispatch; wire subscribers up before the UI starts.
func (d *Dispatcher) Subscribe(fn Subscriber) {
	d.subscribers = append(d.subscribers, fn)
}

// Dispatch reduces action into the state and notifies subscribers.
// It returns the resulting state.
func (d *Dispatcher) Dispatch(action Action) App {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.app = Reduce(d.app, action)
	for _, fn := range d.subscribers {
		fn(d.app, action)
	}
	return d.app
}

// App returns a copy of the current state.
func (d *Dispatcher) App() App {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.app
}

// Replace swaps the canonical state wholesale. Used once at startup after
// the persisted slices have been loaded.
func (d *Dispatcher) Replace(app App) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.app = app
}
