package registry

import (
	"strings"
	"testing"

	"github.com/npillmayer/onscreen/dom/w3cdom"
	"github.com/npillmayer/onscreen/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeElement struct {
	name string
}

func (e *fakeElement) AddEventListener(string, w3cdom.Listener) func() { return func() {} }
func (e *fakeElement) NodeName() string                                 { return e.name }
func (e *fakeElement) BoundingClientRect() geom.Rect                    { return geom.Rect{} }
func (e *fakeElement) GetAttribute(string) string                       { return "" }

type fakeProbe struct {
	matches map[string][]w3cdom.Element
	visible map[w3cdom.Element]bool
}

func newProbe() *fakeProbe {
	return &fakeProbe{
		matches: make(map[string][]w3cdom.Element),
		visible: make(map[w3cdom.Element]bool),
	}
}

func (p *fakeProbe) Match(selector string) []w3cdom.Element { return p.matches[selector] }
func (p *fakeProbe) OnScreen(el w3cdom.Element) bool        { return p.visible[el] }

type fired struct {
	el   w3cdom.Element
	kind EventKind
}

func recorder(calls *[]fired) Callback {
	return func(el w3cdom.Element, kind EventKind) {
		*calls = append(*calls, fired{el, kind})
	}
}

func TestFiresOnTransitionsOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen.registry")
	defer teardown()
	//
	a := &fakeElement{"div"}
	probe := newProbe()
	probe.matches[".a"] = []w3cdom.Element{a}
	var calls []fired
	r := New()
	r.Register(".a", Enter, recorder(&calls))
	r.Register(".a", Leave, recorder(&calls))
	// initially off screen: no leave for an element never seen
	require.True(t, r.ReevaluateAll(probe))
	assert.Empty(t, calls)
	probe.visible[a] = true
	r.ReevaluateAll(probe)
	r.ReevaluateAll(probe)
	assert.Equal(t, []fired{{a, Enter}}, calls)
	probe.visible[a] = false
	r.ReevaluateAll(probe)
	r.ReevaluateAll(probe)
	assert.Equal(t, []fired{{a, Enter}, {a, Leave}}, calls)
}

func TestInitiallyVisibleElementEnters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen.registry")
	defer teardown()
	//
	a, b := &fakeElement{"div"}, &fakeElement{"div"}
	probe := newProbe()
	probe.matches[".x"] = []w3cdom.Element{a, b}
	probe.visible[b] = true
	var calls []fired
	r := New()
	r.Register(".x", Enter, recorder(&calls))
	r.ReevaluateAll(probe)
	assert.Equal(t, []fired{{b, Enter}}, calls)
	assert.Equal(t, []w3cdom.Element{b}, r.OnScreen(".x"))
	assert.Equal(t, 2, r.Known(".x"))
}

func TestDuplicateRegistrationFiresTwice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen.registry")
	defer teardown()
	//
	a := &fakeElement{"p"}
	probe := newProbe()
	probe.matches["p"] = []w3cdom.Element{a}
	probe.visible[a] = true
	n := 0
	cb := func(w3cdom.Element, EventKind) { n++ }
	r := New()
	id1 := r.Register("p", Enter, cb)
	id2 := r.Register("p", Enter, cb)
	assert.NotEqual(t, id1, id2)
	r.ReevaluateAll(probe)
	assert.Equal(t, 2, n)
	// removing one of them leaves the other in place
	r.Unregister("p", Enter, id1)
	assert.Equal(t, 1, r.Callbacks("p", Enter))
	probe.visible[a] = false
	r.ReevaluateAll(probe)
	probe.visible[a] = true
	r.ReevaluateAll(probe)
	assert.Equal(t, 3, n)
}

func TestUnregisterClearsSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen.registry")
	defer teardown()
	//
	cb := func(w3cdom.Element, EventKind) {}
	r := New()
	r.Register(".a", Enter, cb)
	r.Register(".b", Enter, cb)
	r.Register(".a", Leave, cb)
	r.Register(".a", Leave, cb)
	assert.Equal(t, []string{".a", ".b"}, r.Selectors())
	r.Unregister(".a", Enter)
	assert.Equal(t, 2, r.Len())
	r.Unregister(".a", Leave)
	assert.Equal(t, []string{".b"}, r.Selectors())
	r.Unregister(".nope", Enter)
	r.Unregister(".b", Enter, 12345)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, CallbackID(0), r.Register(".c", Enter, nil))
	assert.Equal(t, CallbackID(0), r.Register(".c", EventKind(7), cb))
	assert.Equal(t, 1, r.Len())
}

func TestSelectorsEvaluatedInRegistrationOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen.registry")
	defer teardown()
	//
	a, b := &fakeElement{"a"}, &fakeElement{"b"}
	probe := newProbe()
	probe.matches[".z"] = []w3cdom.Element{a}
	probe.matches[".y"] = []w3cdom.Element{b}
	probe.visible[a], probe.visible[b] = true, true
	var order []string
	r := New()
	r.Register(".z", Enter, func(el w3cdom.Element, _ EventKind) { order = append(order, el.NodeName()) })
	r.Register(".y", Enter, func(el w3cdom.Element, _ EventKind) { order = append(order, el.NodeName()) })
	r.ReevaluateAll(probe)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestVanishedElementsArePruned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen.registry")
	defer teardown()
	//
	a := &fakeElement{"div"}
	probe := newProbe()
	probe.matches[".a"] = []w3cdom.Element{a}
	probe.visible[a] = true
	var calls []fired
	r := New()
	r.Register(".a", Enter, recorder(&calls))
	r.Register(".a", Leave, recorder(&calls))
	r.ReevaluateAll(probe)
	delete(probe.matches, ".a")
	r.ReevaluateAll(probe)
	assert.Equal(t, 0, r.Known(".a"))
	assert.Equal(t, []fired{{a, Enter}}, calls, "no leave for removed elements")
	// re-appearing counts as first observation
	probe.matches[".a"] = []w3cdom.Element{a}
	r.ReevaluateAll(probe)
	assert.Equal(t, []fired{{a, Enter}, {a, Enter}}, calls)
}

func TestPanickingCallbackIsIsolated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen.registry")
	defer teardown()
	//
	a := &fakeElement{"div"}
	probe := newProbe()
	probe.matches[".a"] = []w3cdom.Element{a}
	probe.visible[a] = true
	n := 0
	r := New()
	r.Register(".a", Enter, func(w3cdom.Element, EventKind) { panic("boom") })
	r.Register(".a", Enter, func(w3cdom.Element, EventKind) { n++ })
	assert.NotPanics(t, func() { r.ReevaluateAll(probe) })
	assert.Equal(t, 1, n)
	assert.Equal(t, []w3cdom.Element{a}, r.OnScreen(".a"), "state updated despite panic")
	r.ReevaluateAll(probe)
	assert.Equal(t, 1, n)
}

func TestReentrantPassIsSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen.registry")
	defer teardown()
	//
	a := &fakeElement{"div"}
	probe := newProbe()
	probe.matches[".a"] = []w3cdom.Element{a}
	probe.visible[a] = true
	r := New()
	var nested []bool
	r.Register(".a", Enter, func(w3cdom.Element, EventKind) {
		nested = append(nested, r.ReevaluateAll(probe))
		r.Register(".b", Enter, func(w3cdom.Element, EventKind) {})
	})
	assert.True(t, r.ReevaluateAll(probe))
	assert.Equal(t, []bool{false}, nested)
	assert.Equal(t, 2, r.Len(), "callbacks may register")
	assert.True(t, r.ReevaluateAll(probe), "guard is released after a pass")
}

func TestDestroyStopsDispatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen.registry")
	defer teardown()
	//
	a, b := &fakeElement{"a"}, &fakeElement{"b"}
	probe := newProbe()
	probe.matches[".x"] = []w3cdom.Element{a, b}
	probe.visible[a], probe.visible[b] = true, true
	n := 0
	r := New()
	r.Register(".x", Enter, func(w3cdom.Element, EventKind) {
		n++
		r.Destroy()
	})
	r.ReevaluateAll(probe)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, r.Len())
	r.ReevaluateAll(probe)
	assert.Equal(t, 1, n)
}

func TestUnregisterStopsPendingCallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen.registry")
	defer teardown()
	//
	a, b := &fakeElement{"a"}, &fakeElement{"b"}
	probe := newProbe()
	probe.matches[".x"] = []w3cdom.Element{a, b}
	probe.visible[a], probe.visible[b] = true, true
	var first, second int
	var id CallbackID
	r := New()
	r.Register(".x", Enter, func(w3cdom.Element, EventKind) {
		first++
		r.Unregister(".x", Enter, id)
	})
	id = r.Register(".x", Enter, func(w3cdom.Element, EventKind) { second++ })
	require.True(t, r.ReevaluateAll(probe))
	assert.Equal(t, 2, first, "first callback sees both elements")
	assert.Equal(t, 0, second, "second callback was unregistered before its turn")
	assert.Equal(t, 1, r.Callbacks(".x", Enter))
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen.registry")
	defer teardown()
	//
	r := New()
	r.Register(".item", Enter, func(w3cdom.Element, EventKind) {})
	s := r.String()
	t.Logf("\n%s", s)
	assert.True(t, strings.Contains(s, ".item"))
	assert.True(t, strings.Contains(s, "enter"))
}

func TestParseEventKind(t *testing.T) {
	k, err := ParseEventKind(" Enter ")
	assert.NoError(t, err)
	assert.Equal(t, Enter, k)
	k, err = ParseEventKind("leave")
	assert.NoError(t, err)
	assert.Equal(t, Leave, k)
	_, err = ParseEventKind("exit")
	assert.Error(t, err)
	assert.Equal(t, "leave", Leave.String())
}
