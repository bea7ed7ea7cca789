package schedule

import (
	"sync"
	"time"

	"github.com/npillmayer/onscreen/dom/w3cdom"
)

// Scheduler triggers a debounced function on scroll events of a container and
// resize events of a window. It is safe for concurrent use.
type Scheduler struct {
	mu           sync.Mutex
	debouncer    *Debouncer
	scrollTarget w3cdom.EventTarget
	window       w3cdom.EventTarget
	removeScroll func()
	removeResize func()
}

// New creates an unbound scheduler calling fn, debounced by interval.
func New(interval func() time.Duration, fn func(), opts ...Option) *Scheduler {
	return &Scheduler{debouncer: NewDebouncer(interval, fn, opts...)}
}

// Bind listens for scroll events on container and resize events on window.
// A nil container means the window. Binding again to the same targets is a
// no-op; binding to a different container removes the listener from the
// previous one.
func (s *Scheduler) Bind(container, window w3cdom.EventTarget) {
	if container == nil {
		container = window
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	listener := func(w3cdom.Event) { s.debouncer.Trigger() }
	if window != s.window || s.removeResize == nil {
		if s.removeResize != nil {
			s.removeResize()
			s.removeResize = nil
		}
		if window != nil {
			s.removeResize = window.AddEventListener(w3cdom.EventResize, listener)
		}
		s.window = window
	}
	if container != s.scrollTarget || s.removeScroll == nil {
		if s.removeScroll != nil {
			s.removeScroll()
			s.removeScroll = nil
			tracer().Infof("scroll container changed, re-binding")
		}
		if container != nil {
			s.removeScroll = container.AddEventListener(w3cdom.EventScroll, listener)
		}
		s.scrollTarget = container
	}
}

// Unbind removes all listeners and cancels a pending call.
func (s *Scheduler) Unbind() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removeScroll != nil {
		s.removeScroll()
	}
	if s.removeResize != nil {
		s.removeResize()
	}
	s.removeScroll, s.removeResize = nil, nil
	s.scrollTarget, s.window = nil, nil
	s.debouncer.Cancel()
}

// Bound is true if listeners are installed.
func (s *Scheduler) Bound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeScroll != nil || s.removeResize != nil
}

// ScrollTarget returns the event target scroll events are listened to on, or nil.
func (s *Scheduler) ScrollTarget() w3cdom.EventTarget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrollTarget
}

// Trigger triggers the debounced function, as a scroll or resize event would.
func (s *Scheduler) Trigger() {
	s.debouncer.Trigger()
}

// Cancel cancels a pending call, leaving listeners in place.
func (s *Scheduler) Cancel() {
	s.debouncer.Cancel()
}

// Pending is true if a call is scheduled.
func (s *Scheduler) Pending() bool {
	return s.debouncer.Pending()
}
