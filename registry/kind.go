package registry

import (
	"fmt"
	"strings"

	"github.com/npillmayer/onscreen/dom/w3cdom"
)

// EventKind is the kind of visibility transition callbacks are registered for.
type EventKind uint8

// Event kinds
const (
	Enter EventKind = iota // element became visible
	Leave                  // element became invisible
)

func (k EventKind) String() string {
	switch k {
	case Enter:
		return "enter"
	case Leave:
		return "leave"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// IsValid is true for Enter and Leave.
func (k EventKind) IsValid() bool {
	return k == Enter || k == Leave
}

// ParseEventKind returns the event kind for "enter" or "leave" (case-insensitive).
func ParseEventKind(s string) (EventKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enter":
		return Enter, nil
	case "leave":
		return Leave, nil
	}
	return 0, fmt.Errorf("unknown event kind %q", s)
}

// Callback is called for an element and the transition it made.
type Callback func(el w3cdom.Element, kind EventKind)

// CallbackID identifies a registered callback. IDs are never re-used within
// a registry.
type CallbackID uint64

// Probe is what a registry needs to know about a document during a pass.
type Probe interface {
	Match(selector string) []w3cdom.Element // elements in document order
	OnScreen(el w3cdom.Element) bool
}
