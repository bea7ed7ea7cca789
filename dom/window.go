package dom

import (
	"github.com/npillmayer/onscreen/dom/w3cdom"
	"github.com/npillmayer/onscreen/geom"
)

// Window is the viewport of a Document.
type Window struct {
	doc              *Document
	width, height    float64
	scrollX, scrollY float64
	listeners        listeners
}

var _ w3cdom.Window = &Window{}

// AddEventListener registers a listener for "scroll" or "resize" events.
//
// Interface w3cdom.EventTarget
func (w *Window) AddEventListener(eventType string, l w3cdom.Listener) func() {
	return w.listeners.add(eventType, l)
}

// ListenerCount returns the number of listeners registered for an event type.
func (w *Window) ListenerCount(eventType string) int {
	return w.listeners.count(eventType)
}

// InnerSize returns the size of the viewport.
//
// Interface w3cdom.Window
func (w *Window) InnerSize() (float64, float64) {
	w.doc.mu.Lock()
	defer w.doc.mu.Unlock()
	return w.width, w.height
}

// Rect returns the viewport rectangle, with its origin at (0,0).
func (w *Window) Rect() geom.Rect {
	width, height := w.InnerSize()
	return geom.Viewport(width, height)
}

// Resize sets the inner size of the window and dispatches a "resize" event.
func (w *Window) Resize(width, height float64) {
	w.doc.mu.Lock()
	w.width, w.height = clampSize(width), clampSize(height)
	w.doc.mu.Unlock()
	w.listeners.dispatch(w3cdom.Event{Type: w3cdom.EventResize, Target: w})
}

// ScrollTo scrolls the document to a position and dispatches a "scroll" event.
// Negative positions are clamped to 0.
func (w *Window) ScrollTo(x, y float64) {
	w.doc.mu.Lock()
	w.scrollX, w.scrollY = clampSize(x), clampSize(y)
	w.doc.mu.Unlock()
	w.listeners.dispatch(w3cdom.Event{Type: w3cdom.EventScroll, Target: w})
}

// ScrollPosition returns the current scroll position of the document.
func (w *Window) ScrollPosition() (x, y float64) {
	w.doc.mu.Lock()
	defer w.doc.mu.Unlock()
	return w.scrollX, w.scrollY
}

// DispatchEvent dispatches an event of a given type to the window's listeners.
func (w *Window) DispatchEvent(eventType string) {
	w.listeners.dispatch(w3cdom.Event{Type: eventType, Target: w})
}
