package schedule

import (
	"sync"
	"time"
)

// Timer is a timer created by an AfterFunc.
type Timer interface {
	Stop() bool
}

// AfterFunc waits for a duration to elapse and then calls f in its own
// goroutine, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

// SystemAfterFunc wraps time.AfterFunc.
func SystemAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Debouncer or a Scheduler.
type Option func(*settings)

type settings struct {
	afterFunc AfterFunc
}

// WithAfterFunc replaces time.AfterFunc for creating timers.
func WithAfterFunc(af AfterFunc) Option {
	return func(s *settings) {
		if af != nil {
			s.afterFunc = af
		}
	}
}

func applyOptions(opts []Option) settings {
	s := settings{afterFunc: SystemAfterFunc}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

const fallbackInterval = 100 * time.Millisecond

// Debouncer calls a function after a quiet period following the last trigger.
// It is safe for concurrent use.
type Debouncer struct {
	mu         sync.Mutex
	fn         func()
	interval   func() time.Duration
	afterFunc  AfterFunc
	timer      Timer
	generation uint64 // identifies the timer which is allowed to fire
}

// NewDebouncer creates a debouncer for fn. interval is called on every trigger;
// if it is nil or returns a non-positive duration, 100ms are used.
func NewDebouncer(interval func() time.Duration, fn func(), opts ...Option) *Debouncer {
	s := applyOptions(opts)
	return &Debouncer{
		fn:        fn,
		interval:  interval,
		afterFunc: s.afterFunc,
	}
}

// Trigger (re-)starts the quiet period. fn will be called once the period
// elapses without another trigger or a cancellation.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	gen := d.generation
	wait := fallbackInterval
	if d.interval != nil {
		if w := d.interval(); w > 0 {
			wait = w
		}
	}
	d.timer = d.afterFunc(wait, func() { d.fire(gen) })
}

// Cancel stops a pending call. Calling Cancel without a pending call is a no-op.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.generation++
}

// Pending is true if a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// fire is called by timers. A timer may fire after it has been stopped, thus
// only the timer of the current generation gets to call fn.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.generation {
		d.mu.Unlock()
		tracer().Debugf("ignoring stale timer")
		return
	}
	d.timer = nil
	d.mu.Unlock()
	if d.fn != nil {
		d.fn()
	}
}
