package schedule

import (
	"sync"
	"time"
)

// ManualTimers creates timers which fire only when told to. Its AfterFunc
// method may be used with WithAfterFunc, for tests and for hosts driving time
// themselves.
type ManualTimers struct {
	mu     sync.Mutex
	timers []*manualTimer
	last   time.Duration
}

type manualTimer struct {
	owner    *ManualTimers
	f        func()
	inactive bool // stopped or fired
}

// AfterFunc creates a timer which calls f when fired.
func (m *ManualTimers) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{owner: m, f: f}
	m.timers = append(m.timers, t)
	m.last = d
	return t
}

// Stop prevents the timer from firing. It returns false if the timer has
// already fired or been stopped.
func (t *manualTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.inactive {
		return false
	}
	t.inactive = true
	return true
}

// Pending returns the number of timers which have neither fired nor been stopped.
func (m *ManualTimers) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.inactive {
			n++
		}
	}
	return n
}

// LastDuration returns the duration of the most recently created timer, or 0.
func (m *ManualTimers) LastDuration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// FireAll fires all pending timers in order of creation, in the caller's
// goroutine. Timers created while firing stay pending. It returns the number
// of timers fired.
func (m *ManualTimers) FireAll() int {
	m.mu.Lock()
	var due []*manualTimer
	for _, t := range m.timers {
		if !t.inactive {
			t.inactive = true
			due = append(due, t)
		}
	}
	m.timers = m.timers[:0:0]
	m.mu.Unlock()
	for _, t := range due {
		t.f()
	}
	return len(due)
}
