package options

import (
	"reflect"
	"strings"

	"github.com/npillmayer/onscreen/dom/w3cdom"
	"github.com/npillmayer/onscreen/geom"
)

// Container is an option type for the scrolling container elements are
// tracked against. It is either the viewport or an element.
type Container struct {
	el w3cdom.Element
}

/*
type Container
	= Viewport
	| Element el
*/

// Viewport creates a container denoting the window's viewport.
func Viewport() Container {
	return Container{}
}

// ElementContainer creates a container for an element. A nil element denotes
// the viewport.
func ElementContainer(el w3cdom.Element) Container {
	if isNil(el) {
		return Container{}
	}
	return Container{el: el}
}

// IsViewport is true if c denotes the viewport.
func (c Container) IsViewport() bool {
	return c.el == nil
}

// Element returns the container element, or nil for the viewport.
func (c Container) Element() w3cdom.Element {
	return c.el
}

// Rect returns the client rectangle of a container element, or nil for the
// viewport.
func (c Container) Rect() *geom.Rect {
	var el w3cdom.Element
	switch m := c.Match(); m {
	case m.Element(&el):
		r := el.BoundingClientRect()
		return &r
	}
	return nil
}

// EventTarget returns the target scroll events are dispatched to: the container
// element, or the window for the viewport.
func (c Container) EventTarget(win w3cdom.Window) w3cdom.EventTarget {
	return ContainerPattern[w3cdom.EventTarget](c).OneOf(ContainerPatterns[w3cdom.EventTarget]{
		Viewport: win,
		Element:  c.el,
	})
}

func (c Container) String() string {
	var el w3cdom.Element
	switch m := c.Match(); m {
	case m.Element(&el):
		return "<" + el.NodeName() + ">"
	}
	return "viewport"
}

// --- Matching --------------------------------------------------------------

// Match starts a pattern match on c.
func (c Container) Match() *ContainerMatcher {
	return &ContainerMatcher{c: c}
}

// ContainerMatcher is part of pattern matching for Container.
type ContainerMatcher struct {
	c Container
}

// Viewport matches containers denoting the viewport.
func (m *ContainerMatcher) Viewport() *ContainerMatcher {
	if m.c.el == nil {
		return m
	}
	return nil
}

// Element matches container elements and extracts the element.
func (m *ContainerMatcher) Element(el *w3cdom.Element) *ContainerMatcher {
	if m.c.el != nil {
		if el != nil {
			*el = m.c.el
		}
		return m
	}
	return nil
}

// ContainerPatterns holds one result per kind of container.
type ContainerPatterns[T any] struct {
	Viewport T
	Element  T
}

// ContainerPattern starts an expression match on c.
func ContainerPattern[T any](c Container) *ContainerMatchExpr[T] {
	return &ContainerMatchExpr[T]{c: c}
}

// ContainerMatchExpr is part of pattern matching for Container types and
// intended to be instantiated using `ContainerPattern()` only.
type ContainerMatchExpr[T any] struct {
	c Container
}

// OneOf selects the pattern for the kind of container matched.
func (m *ContainerMatchExpr[T]) OneOf(patterns ContainerPatterns[T]) T {
	if m.c.el == nil {
		return patterns.Viewport
	}
	return patterns.Element
}

// --- Resolution ------------------------------------------------------------

// ResolveContainer resolves a raw container option.
//
// A string is taken as a CSS selector and matched against doc; an element is
// used directly; a Container is returned as is. Everything else, including
// selectors which do not match or are invalid, denotes the viewport.
func ResolveContainer(v any, doc w3cdom.Document) Container {
	switch x := v.(type) {
	case Container:
		return x
	case *Container:
		if x != nil {
			return *x
		}
	case string:
		sel := strings.TrimSpace(x)
		if sel == "" || isNil(doc) {
			return Viewport()
		}
		el := doc.QuerySelector(sel)
		if isNil(el) {
			tracer().P("selector", sel).Debugf("container selector does not match, using viewport")
			return Viewport()
		}
		return Container{el: el}
	case w3cdom.Element:
		return ElementContainer(x)
	case nil:
	default:
		tracer().Debugf("cannot use %T as container, using viewport", v)
	}
	return Viewport()
}

// isNil checks for nil interfaces and for interfaces holding nil pointers.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
