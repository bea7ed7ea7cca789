/*
Package w3cdom defines the interface types of the host document an observer works on.

They mirror the small part of the W3C DOM and CSSOM View APIs needed to track
elements entering and leaving a viewport: selector queries, bounding client
rectangles, the window's inner size, scroll and resize events, and mutation
observation.

See also https://www.w3schools.com/XML/dom_intro.asp and
https://drafts.csswg.org/cssom-view/

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"github.com/npillmayer/onscreen/geom"
)

// Event types dispatched to event targets.
const (
	EventScroll = "scroll"
	EventResize = "resize"
)

// Event is passed to event listeners.
type Event struct {
	Type   string      // "scroll", "resize", …
	Target EventTarget // where the event has been dispatched to
}

// Listener receives events from an EventTarget.
type Listener func(Event)

// EventTarget represents W3C-type EventTarget.
//
// Go functions are not comparable, therefore AddEventListener returns a function
// which removes the listener again (instead of a removeEventListener call).
type EventTarget interface {
	AddEventListener(eventType string, l Listener) (remove func())
}

// Element represents W3C-type Element, reduced to what viewport tracking needs.
// Element values have to be comparable; two Element values denote the same
// node iff they are equal.
type Element interface {
	EventTarget
	NodeName() string               // tag name, e.g. "div"
	BoundingClientRect() geom.Rect  // border box in viewport coordinates
	GetAttribute(key string) string // attribute value or ""
}

// Window represents W3C-type Window: the global viewport.
type Window interface {
	EventTarget
	InnerSize() (width, height float64) // size of the visible area
}

// MutationType tells what kind of change a MutationRecord reports.
type MutationType uint8

// Mutation types, as reported by MutationObserver
const (
	ChildList MutationType = iota
	Attributes
)

func (mt MutationType) String() string {
	switch mt {
	case ChildList:
		return "childList"
	case Attributes:
		return "attributes"
	}
	return "unknown"
}

// MutationRecord represents W3C-type MutationRecord.
type MutationRecord struct {
	Type          MutationType
	Target        Element   // node whose children or attributes changed
	AddedNodes    []Element // for ChildList
	RemovedNodes  []Element // for ChildList
	AttributeName string    // for Attributes
}

// MutationCallback receives a batch of mutation records.
type MutationCallback func([]MutationRecord)

// Document represents W3C-type Document together with its window.
type Document interface {
	Window() Window
	QuerySelector(selector string) Element      // first match in document order, or nil
	QuerySelectorAll(selector string) []Element // all matches in document order
	// ObserveMutations observes the whole document subtree for child list and
	// attribute changes. Calling disconnect stops the observation.
	ObserveMutations(cb MutationCallback) (disconnect func())
}
