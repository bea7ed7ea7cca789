package dom

import (
	"fmt"

	"github.com/npillmayer/onscreen/dom/style"
	"github.com/npillmayer/onscreen/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/onscreen/dom/w3cdom"
	"github.com/npillmayer/onscreen/geom"
	"golang.org/x/net/html"
)

// Element wraps an HTML element node of a Document. For every node there is
// exactly one Element, thus Elements may be compared with ==. This holds for
// detached nodes, too, as long as they are reached through an Element of
// their subtree.
type Element struct {
	doc                   *Document
	node                  *html.Node
	root                  *Element                // top of the detached subtree, or nil
	orphans               map[*html.Node]*Element // wrappers of a detached subtree
	scrollLeft, scrollTop float64
	listeners             listeners
}

var _ w3cdom.Element = &Element{}

// HTMLNode returns the underlying HTML node.
func (el *Element) HTMLNode() *html.Node {
	return el.node
}

// NodeName returns the tag name of the element.
//
// Interface w3cdom.Element
func (el *Element) NodeName() string {
	return el.node.Data
}

// GetAttribute returns the value of an attribute or "".
//
// Interface w3cdom.Element
func (el *Element) GetAttribute(key string) string {
	el.doc.mu.Lock()
	defer el.doc.mu.Unlock()
	return attr(el.node, key)
}

// ID returns the value of the `id` attribute.
func (el *Element) ID() string {
	return el.GetAttribute("id")
}

// AddEventListener registers a listener, usually for "scroll" events.
//
// Interface w3cdom.EventTarget
func (el *Element) AddEventListener(eventType string, l w3cdom.Listener) func() {
	return el.listeners.add(eventType, l)
}

// ListenerCount returns the number of listeners registered for an event type.
func (el *Element) ListenerCount(eventType string) int {
	return el.listeners.count(eventType)
}

// DispatchEvent dispatches an event of a given type to the element's listeners.
func (el *Element) DispatchEvent(eventType string) {
	el.listeners.dispatch(w3cdom.Event{Type: eventType, Target: el})
}

// ScrollTo sets the scroll position of the element's content and dispatches
// a "scroll" event. Negative positions are clamped to 0.
func (el *Element) ScrollTo(x, y float64) {
	el.doc.mu.Lock()
	el.scrollLeft, el.scrollTop = clampSize(x), clampSize(y)
	el.doc.mu.Unlock()
	el.DispatchEvent(w3cdom.EventScroll)
}

// ScrollPosition returns the scroll position of the element's content.
func (el *Element) ScrollPosition() (x, y float64) {
	el.doc.mu.Lock()
	defer el.doc.mu.Unlock()
	return el.scrollLeft, el.scrollTop
}

// BoundingClientRect returns the border box of the element in viewport
// coordinates. Elements which are not displayed or not connected to the
// document have an empty rectangle at (0,0).
//
// Interface w3cdom.Element
func (el *Element) BoundingClientRect() geom.Rect {
	el.doc.mu.Lock()
	defer el.doc.mu.Unlock()
	return el.doc.clientRect(el.node)
}

// ComputedStyles returns a copy of the styles used to place the element.
func (el *Element) ComputedStyles() *style.PropertyMap {
	el.doc.mu.Lock()
	defer el.doc.mu.Unlock()
	return style.NewPropertyMap().AddAll(el.doc.computedStyles(el.node))
}

// IsConnected is true if the element is part of the document tree.
func (el *Element) IsConnected() bool {
	el.doc.mu.Lock()
	defer el.doc.mu.Unlock()
	return el.doc.connected(el.node)
}

// Parent returns the parent element, or nil.
func (el *Element) Parent() *Element {
	el.doc.mu.Lock()
	defer el.doc.mu.Unlock()
	p := el.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return el.doc.elementNear(p, el)
}

// SetStyle sets an inline style property, e.g.
//
//     el.SetStyle("top", "20px")
//
// An empty value removes the property. Observers will see a change of
// attribute `style`.
func (el *Element) SetStyle(key string, value string) {
	el.doc.mu.Lock()
	text := douceuradapter.SetInlineStyle(attr(el.node, "style"), key, value)
	el.doc.mu.Unlock()
	el.SetAttribute("style", text)
}

func (el *Element) String() string {
	if id := el.GetAttribute("id"); id != "" {
		return fmt.Sprintf("<%s#%s>", el.node.Data, id)
	}
	return fmt.Sprintf("<%s>", el.node.Data)
}
