package registry

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/npillmayer/onscreen/dom/w3cdom"
	"github.com/xlab/treeprint"
)

// Registry holds tracked selectors. It is safe for concurrent use.
// The zero value is not usable, use New.
type Registry struct {
	mu         sync.Mutex
	tracked    map[string]*trackedSelector
	order      []string // selectors in order of registration
	nextID     CallbackID
	epoch      uint64 // incremented by Destroy
	evaluating bool
}

// trackedSelector is the record for a selector.
type trackedSelector struct {
	selector  string
	callbacks [2][]entry // indexed by EventKind
	lastState map[w3cdom.Element]bool
	onScreen  []w3cdom.Element // elements on screen after the last pass, in document order
}

type entry struct {
	id CallbackID
	cb Callback
}

// firing is a callback due to be called during a pass.
type firing struct {
	selector string
	el       w3cdom.Element
	kind     EventKind
	entry    entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{tracked: make(map[string]*trackedSelector)}
}

// Register appends a callback for a selector and an event kind. Registering
// the same function twice results in two callbacks. Registration does not
// trigger a pass.
func (r *Registry) Register(selector string, kind EventKind, cb Callback) CallbackID {
	if !kind.IsValid() || cb == nil {
		tracer().P("selector", selector).Infof("ignoring registration for %s", kind)
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tracked[selector]
	if !ok {
		t = &trackedSelector{selector: selector, lastState: make(map[w3cdom.Element]bool)}
		r.tracked[selector] = t
		r.order = append(r.order, selector)
	}
	r.nextID++
	t.callbacks[kind] = append(t.callbacks[kind], entry{id: r.nextID, cb: cb})
	tracer().P("selector", selector).Debugf("registered %s callback #%d", kind, r.nextID)
	return r.nextID
}

// Unregister removes callbacks for a selector and an event kind. Without ids,
// all callbacks for kind are removed. A selector is no longer tracked as soon
// as it has neither enter nor leave callbacks. Unknown selectors and ids are
// ignored.
func (r *Registry) Unregister(selector string, kind EventKind, ids ...CallbackID) {
	if !kind.IsValid() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tracked[selector]
	if !ok {
		return
	}
	if len(ids) == 0 {
		t.callbacks[kind] = nil
	}
	for _, id := range ids {
		cbs := t.callbacks[kind]
		for i, e := range cbs {
			if e.id == id {
				t.callbacks[kind] = append(cbs[:i:i], cbs[i+1:]...)
				break
			}
		}
	}
	if len(t.callbacks[Enter]) == 0 && len(t.callbacks[Leave]) == 0 {
		delete(r.tracked, selector)
		for i, s := range r.order {
			if s == selector {
				r.order = append(r.order[:i:i], r.order[i+1:]...)
				break
			}
		}
		tracer().P("selector", selector).Debugf("selector no longer tracked")
	}
}

// ReevaluateAll runs a pass over all tracked selectors, in order of
// registration. For every selector, the elements matched by probe are
// checked in document order; callbacks fire for every element whose
// on-screen state differs from the previous pass. Elements no longer matched
// are forgotten without firing.
//
// If another pass is running, ReevaluateAll returns false without doing
// anything. Callbacks are called in the caller's goroutine; a panicking
// callback does not keep others from being called. A callback unregistered
// by an earlier callback of the same pass is not called.
func (r *Registry) ReevaluateAll(probe Probe) bool {
	r.mu.Lock()
	if r.evaluating {
		r.mu.Unlock()
		tracer().Debugf("pass already running, skipping")
		return false
	}
	r.evaluating = true
	epoch := r.epoch
	selectors := make([]string, len(r.order))
	copy(selectors, r.order)
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.evaluating = false
		r.mu.Unlock()
	}()
	tracer().Debugf("pass over %d selector(s)", len(selectors))
	for _, selector := range selectors {
		els := probe.Match(selector)
		visible := make([]bool, len(els))
		for i, el := range els {
			visible[i] = probe.OnScreen(el)
		}
		firings, ok := r.transitions(epoch, selector, els, visible)
		if !ok {
			return true
		}
		for _, f := range firings {
			if !r.alive(epoch) {
				return true
			}
			if !r.registered(f) {
				continue
			}
			call(f)
		}
	}
	return true
}

// transitions updates the state of a selector and returns the callbacks due.
// It returns false if the registry has been destroyed since epoch.
func (r *Registry) transitions(epoch uint64, selector string, els []w3cdom.Element,
	visible []bool) ([]firing, bool) {
	//
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch != epoch {
		return nil, false
	}
	t, ok := r.tracked[selector]
	if !ok { // unregistered during this pass
		return nil, true
	}
	var firings []firing
	state := make(map[w3cdom.Element]bool, len(els))
	var onScreen []w3cdom.Element
	for i, el := range els {
		if el == nil {
			continue
		}
		now, was := visible[i], t.lastState[el]
		state[el] = now
		if now {
			onScreen = append(onScreen, el)
		}
		if now == was {
			continue
		}
		kind := Leave
		if now {
			kind = Enter
		}
		for _, e := range t.callbacks[kind] {
			firings = append(firings, firing{selector: selector, el: el, kind: kind, entry: e})
		}
	}
	t.lastState = state
	t.onScreen = onScreen
	return firings, true
}

func (r *Registry) alive(epoch uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.epoch == epoch
}

// registered is true if the callback of a firing has not been unregistered
// since the firing was collected.
func (r *Registry) registered(f firing) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tracked[f.selector]
	if !ok {
		return false
	}
	for _, e := range t.callbacks[f.kind] {
		if e.id == f.entry.id {
			return true
		}
	}
	return false
}

// call calls a callback and recovers from panics.
func call(f firing) {
	defer func() {
		if p := recover(); p != nil {
			tracer().P("selector", f.selector).P("kind", f.kind.String()).
				Errorf("callback #%d panicked: %v\n%s", f.entry.id, p, debug.Stack())
		}
	}()
	f.entry.cb(f.el, f.kind)
}

// Destroy forgets all selectors, callbacks and state. Callbacks of a pass
// which is running will not be called any more. The registry may be used
// again afterwards.
func (r *Registry) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tracked = make(map[string]*trackedSelector)
	r.order = nil
	r.epoch++
	tracer().Infof("registry destroyed")
}

// Len returns the number of tracked selectors.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Selectors returns the tracked selectors, in order of registration.
func (r *Registry) Selectors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	selectors := make([]string, len(r.order))
	copy(selectors, r.order)
	return selectors
}

// Callbacks returns the number of callbacks registered for a selector and kind.
func (r *Registry) Callbacks(selector string, kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tracked[selector]; ok && kind.IsValid() {
		return len(t.callbacks[kind])
	}
	return 0
}

// OnScreen returns the elements matched by a selector which have been on
// screen after the last pass, in document order.
func (r *Registry) OnScreen(selector string) []w3cdom.Element {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tracked[selector]
	if !ok {
		return nil
	}
	els := make([]w3cdom.Element, len(t.onScreen))
	copy(els, t.onScreen)
	return els
}

// Known returns the number of elements a selector matched in the last pass.
func (r *Registry) Known(selector string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tracked[selector]; ok {
		return len(t.lastState)
	}
	return 0
}

// String returns a tree dump of the registry.
func (r *Registry) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	tree := treeprint.NewWithRoot(fmt.Sprintf("registry (%d selectors)", len(r.order)))
	for _, selector := range r.order {
		t := r.tracked[selector]
		branch := tree.AddMetaBranch(fmt.Sprintf("%d/%d on screen", len(t.onScreen), len(t.lastState)), selector)
		for _, kind := range []EventKind{Enter, Leave} {
			if n := len(t.callbacks[kind]); n > 0 {
				branch.AddMetaNode(n, kind.String())
			}
		}
	}
	return tree.String()
}
