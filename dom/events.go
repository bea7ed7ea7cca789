package dom

import (
	"sync"

	"github.com/npillmayer/onscreen/dom/w3cdom"
)

// listeners holds event listeners of an event target, in order of registration.
type listeners struct {
	mu      sync.Mutex
	entries []listenerEntry
	next    int
}

type listenerEntry struct {
	id        int
	eventType string
	l         w3cdom.Listener
}

// add registers l for eventType and returns a function to remove it again.
// Calling remove more than once is a no-op.
func (ls *listeners) add(eventType string, l w3cdom.Listener) func() {
	if l == nil {
		return func() {}
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.next++
	id := ls.next
	ls.entries = append(ls.entries, listenerEntry{id: id, eventType: eventType, l: l})
	return func() {
		ls.mu.Lock()
		defer ls.mu.Unlock()
		for i, e := range ls.entries {
			if e.id == id {
				ls.entries = append(ls.entries[:i:i], ls.entries[i+1:]...)
				return
			}
		}
	}
}

// count returns the number of listeners for eventType.
func (ls *listeners) count(eventType string) int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	n := 0
	for _, e := range ls.entries {
		if e.eventType == eventType {
			n++
		}
	}
	return n
}

// dispatch calls all listeners for the type of event. Listeners are called
// without holding any lock, thus they may add or remove listeners.
func (ls *listeners) dispatch(event w3cdom.Event) {
	ls.mu.Lock()
	var targets []w3cdom.Listener
	for _, e := range ls.entries {
		if e.eventType == event.Type {
			targets = append(targets, e.l)
		}
	}
	ls.mu.Unlock()
	tracer().Debugf("dispatching %s event to %d listener(s)", event.Type, len(targets))
	for _, l := range targets {
		l(event)
	}
}
