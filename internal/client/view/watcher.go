package view

import (
	"sync"

	"signet/internal/client/identity"
)

// Watcher subscribes once to the backend session stream and republishes it
// as State values. It is the single reader of the subscription for the
// application's lifetime; Close releases it, which is the only explicit
// resource release in the client.
type Watcher struct {
	states chan State
	quit   chan struct{}
	cancel func()
	once   sync.Once

	mu      sync.Mutex
	current State
}

// NewWatcher subscribes to the backend and starts tracking. Current() is
// Loading until the first event arrives; the backend emits its current
// value immediately on subscribe, so the Loading window is a single event
// delivery.
func NewWatcher(b identity.Backend) *Watcher {
	events, cancel := b.Subscribe()
	w := &Watcher{
		states:  make(chan State, 32),
		quit:    make(chan struct{}),
		cancel:  cancel,
		current: State{Phase: Loading},
	}
	go w.run(events)
	return w
}

func (w *Watcher) run(events <-chan *identity.Session) {
	defer close(w.states)
	for {
		select {
		case s, ok := <-events:
			if !ok {
				return
			}
			st := stateFor(s)
			w.mu.Lock()
			w.current = st
			w.mu.Unlock()
			select {
			case w.states <- st:
			case <-w.quit:
				return
			}
		case <-w.quit:
			return
		}
	}
}

// Current returns the latest observed state.
func (w *Watcher) Current() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// States is the lazy, infinite, non-restartable sequence of state
// transitions, in backend order. It is closed by Close or when the backend
// closes the subscription.
func (w *Watcher) States() <-chan State {
	return w.states
}

// Close unsubscribes from the backend session stream. Safe to call more
// than once.
func (w *Watcher) Close() {
	w.once.Do(func() {
		w.cancel()
		close(w.quit)
	})
}
