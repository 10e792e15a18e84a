package store

import (
	"github.com/sirupsen/logrus"

	"github.com/storykit/core/logging"
)

// Listener receives the new value of a property it is subscribed to.
type Listener func(value any)

// Store holds the current snapshot and the per-property subscriber lists.
// All operations are synchronous and complete before returning; listener
// invocation happens inline during Dispatch, so a listener that dispatches
// again nests rather than queues.
//
// A Store is confined to a single goroutine. It performs no locking; callers
// that need cross-goroutine access must wrap it themselves.
type Store struct {
	log       *logrus.Entry
	state     Snapshot
	listeners map[Property][]Listener
}

// New creates a store seeded with the given snapshot. A nil initial snapshot
// falls back to DefaultSnapshot. The store owns the snapshot from here on;
// callers must not retain and mutate it.
func New(initial Snapshot) *Store {
	if initial == nil {
		initial = DefaultSnapshot()
	}
	return &Store{
		log:       logging.NewLogger("store"),
		state:     initial,
		listeners: make(map[Property][]Listener),
	}
}

// Get returns the current value for a known property. Unknown properties
// log a diagnostic and return nil; Get never panics.
func (s *Store) Get(p Property) any {
	if !p.Known() {
		s.log.WithField("property", string(p)).Error("get of unknown state property")
		return nil
	}
	return s.state[p]
}

// Subscribe registers a listener for a property. Listeners fire in
// subscription order. If callToInitialize is true the listener is invoked
// once, immediately and synchronously, with the current value, so late
// subscribers can initialize without racing the next dispatch. Unknown
// properties log a diagnostic and register nothing.
func (s *Store) Subscribe(p Property, fn Listener, callToInitialize bool) {
	if !p.Known() {
		s.log.WithField("property", string(p)).Error("subscribe to unknown state property")
		return
	}
	s.listeners[p] = append(s.listeners[p], fn)
	if callToInitialize {
		fn(s.state[p])
	}
}

// Dispatch applies an action through the reducer and notifies subscribers of
// every property whose value changed. Notification is synchronous: each
// changed property's listeners run in subscription order before Dispatch
// returns. Unknown actions leave the state unchanged and fire nothing.
func (s *Store) Dispatch(a Action) {
	old := s.state
	s.state = reduce(old, a, s.log)

	// Properties are visited in declaration order so notification across
	// keys is deterministic even when a listener dispatches again.
	for _, p := range Properties {
		fns := s.listeners[p]
		if len(fns) == 0 {
			continue
		}
		// Compare against the live snapshot rather than the reduce result:
		// a listener dispatching again replaces s.state mid-loop, and the
		// nested dispatch already notified for its own changes.
		if old[p] == s.state[p] {
			continue
		}
		value := s.state[p]
		for _, fn := range fns {
			fn(value)
		}
	}
}
