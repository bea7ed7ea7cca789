package onscreen_test

import (
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/onscreen"
	"github.com/npillmayer/onscreen/dom"
	"github.com/npillmayer/onscreen/dom/w3cdom"
	"github.com/npillmayer/onscreen/options"
	"github.com/npillmayer/onscreen/schedule"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><head><style>
.tracked { position: absolute; left: 0; width: 100px; height: 50px }
#scroller { position: absolute; top: 0; left: 500px; width: 200px; height: 200px; overflow: auto }
</style></head><body>
<div id="hero" class="tracked" style="top: 100px"></div>
<div id="below" class="tracked" style="top: 2000px"></div>
<div id="scroller"><div id="inner" class="tracked" style="top: 300px"></div></div>
</body></html>`

type event struct {
	id   string
	kind onscreen.EventKind
}

type recorder struct {
	events []event
}

func (r *recorder) callback(el w3cdom.Element, kind onscreen.EventKind) {
	r.events = append(r.events, event{el.GetAttribute("id"), kind})
}

func setup(t *testing.T, opts options.Options) (*dom.Document, *onscreen.OnScreen, *schedule.ManualTimers) {
	doc := dom.ParseString(page, 1000, 800)
	timers := &schedule.ManualTimers{}
	tracker := onscreen.New(doc, opts, onscreen.WithAfterFunc(timers.AfterFunc))
	return doc, tracker, timers
}

func TestAttachFiresForVisibleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	_, tracker, _ := setup(t, options.Defaults())
	rec := &recorder{}
	tracker.On(onscreen.Enter, ".tracked", rec.callback)
	assert.Empty(t, rec.events, "registration does not check")
	tracker.Attach()
	tracker.Attach()
	// #inner sits at 300px in a 200px container, but the window is the container
	assert.Equal(t, []event{{"hero", onscreen.Enter}, {"inner", onscreen.Enter}}, rec.events)
}

func TestDebouncedScroll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	doc, tracker, timers := setup(t, options.Options{Debounce: 250})
	rec := &recorder{}
	tracker.On(onscreen.Enter, "#hero, #below", rec.callback)
	tracker.On(onscreen.Leave, "#hero, #below", rec.callback)
	tracker.Attach()
	require.Equal(t, []event{{"hero", onscreen.Enter}}, rec.events)
	rec.events = nil
	for y := 100.0; y <= 1500; y += 100 {
		doc.Win().ScrollTo(0, y)
	}
	assert.Empty(t, rec.events, "nothing fires before the quiet period")
	assert.Equal(t, 1, timers.Pending())
	assert.Equal(t, 250*time.Millisecond, timers.LastDuration())
	timers.FireAll()
	assert.Equal(t, []event{{"hero", onscreen.Leave}, {"below", onscreen.Enter}}, rec.events)
	// resize is observed as well
	rec.events = nil
	doc.Win().Resize(1000, 400)
	timers.FireAll()
	assert.Equal(t, []event{{"below", onscreen.Leave}}, rec.events)
}

func TestMutationAddsVisibleElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	doc, tracker, timers := setup(t, options.Defaults())
	rec := &recorder{}
	tracker.On(onscreen.Enter, ".late", rec.callback)
	tracker.Attach()
	assert.Empty(t, rec.events)
	el := doc.CreateElement("div")
	el.SetAttribute("id", "new")
	el.SetAttribute("class", "late")
	el.SetAttribute("style", "position: absolute; top: 10px; width: 10px; height: 10px")
	require.NoError(t, doc.Body().AppendChild(el))
	assert.Equal(t, []event{{"new", onscreen.Enter}}, rec.events, "no scroll needed")
	assert.Equal(t, 0, timers.Pending())
	// moving it out by a style change is picked up, too
	el.SetStyle("top", "5000px")
	assert.Equal(t, []event{{"new", onscreen.Enter}}, rec.events, "no leave callbacks registered")
	el.SetStyle("top", "20px")
	assert.Equal(t, []event{{"new", onscreen.Enter}, {"new", onscreen.Enter}}, rec.events)
}

func TestOffWithoutIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	doc, tracker, timers := setup(t, options.Defaults())
	var order []int
	tracker.On(onscreen.Enter, "#below", func(w3cdom.Element, onscreen.EventKind) { order = append(order, 1) })
	tracker.On(onscreen.Enter, "#below", func(w3cdom.Element, onscreen.EventKind) { order = append(order, 2) })
	tracker.Attach()
	doc.Win().ScrollTo(0, 1500)
	timers.FireAll()
	assert.Equal(t, []int{1, 2}, order, "both callbacks, in order of registration")
	tracker.Off(onscreen.Enter, "#below")
	assert.Empty(t, tracker.Tracked())
	doc.Win().ScrollTo(0, 0)
	timers.FireAll()
	doc.Win().ScrollTo(0, 1500)
	timers.FireAll()
	assert.Equal(t, []int{1, 2}, order)
}

func TestOffDuringPass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	_, tracker, _ := setup(t, options.Defaults())
	var id onscreen.CallbackID
	n := 0
	tracker.On(onscreen.Enter, "#hero", func(w3cdom.Element, onscreen.EventKind) {
		tracker.Off(onscreen.Enter, "#hero", id)
	})
	id = tracker.On(onscreen.Enter, "#hero", func(w3cdom.Element, onscreen.EventKind) { n++ })
	tracker.Attach()
	assert.Equal(t, 0, n, "callback removed earlier in the same pass must not run")
}

func TestOffByID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	_, tracker, _ := setup(t, options.Defaults())
	n := 0
	cb := func(w3cdom.Element, onscreen.EventKind) { n++ }
	id := tracker.On(onscreen.Enter, "#hero", cb)
	tracker.On(onscreen.Enter, "#hero", cb)
	tracker.Off(onscreen.Enter, "#hero", id)
	tracker.Attach()
	assert.Equal(t, 1, n)
}

func TestDestroyCancelsPendingCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	doc, tracker, timers := setup(t, options.Defaults())
	rec := &recorder{}
	tracker.On(onscreen.Leave, "#hero", rec.callback)
	tracker.Attach()
	assert.Equal(t, 1, doc.Win().ListenerCount(w3cdom.EventScroll))
	assert.Equal(t, 1, doc.ObserverCount())
	doc.Win().ScrollTo(0, 1500)
	require.Equal(t, 1, timers.Pending())
	tracker.Destroy()
	tracker.Destroy()
	assert.Equal(t, 0, timers.Pending())
	assert.Equal(t, 0, timers.FireAll())
	assert.Empty(t, rec.events)
	assert.Equal(t, 0, doc.Win().ListenerCount(w3cdom.EventScroll))
	assert.Equal(t, 0, doc.Win().ListenerCount(w3cdom.EventResize))
	assert.Equal(t, 0, doc.ObserverCount())
	assert.Empty(t, tracker.Tracked())
	doc.GetElementByID("hero").Remove()
	assert.Empty(t, rec.events)
}

func TestDestroyWhileRebinding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	for i := 0; i < 50; i++ {
		doc, tracker, _ := setup(t, options.Defaults())
		tracker.On(onscreen.Enter, "#hero", func(w3cdom.Element, onscreen.EventKind) {})
		tracker.Attach()
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				tracker.SetContainer("#scroller")
				tracker.SetContainer(nil)
			}
		}()
		go func() {
			defer wg.Done()
			tracker.Destroy()
		}()
		wg.Wait()
		scroller := doc.GetElementByID("scroller")
		if n := doc.Win().ListenerCount(w3cdom.EventScroll) + scroller.ListenerCount(w3cdom.EventScroll) +
			doc.Win().ListenerCount(w3cdom.EventResize); n != 0 {
			t.Fatalf("expected no listeners after Destroy, have %d", n)
		}
	}
}

func TestContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	doc, tracker, timers := setup(t, options.Options{Container: "#scroller"})
	scroller := doc.GetElementByID("scroller")
	rec := &recorder{}
	tracker.On(onscreen.Enter, "#inner", rec.callback)
	tracker.Attach()
	assert.Empty(t, rec.events, "#inner is below the container's visible area")
	assert.Equal(t, 0, doc.Win().ListenerCount(w3cdom.EventScroll))
	assert.Equal(t, 1, scroller.ListenerCount(w3cdom.EventScroll))
	assert.Equal(t, 1, doc.Win().ListenerCount(w3cdom.EventResize))
	scroller.ScrollTo(0, 250)
	timers.FireAll()
	assert.Equal(t, []event{{"inner", onscreen.Enter}}, rec.events)
	// back to the window
	tracker.SetContainer(nil)
	assert.Equal(t, 1, doc.Win().ListenerCount(w3cdom.EventScroll))
	assert.Equal(t, 0, scroller.ListenerCount(w3cdom.EventScroll))
	assert.True(t, tracker.Config().Container.IsViewport())
}

func TestContainerAppearsLater(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	doc, tracker, _ := setup(t, options.Options{Container: "#late-scroller"})
	tracker.On(onscreen.Enter, "#hero", func(w3cdom.Element, onscreen.EventKind) {})
	tracker.Attach()
	assert.Equal(t, 1, doc.Win().ListenerCount(w3cdom.EventScroll))
	late := doc.CreateElement("div")
	late.SetAttribute("id", "late-scroller")
	require.NoError(t, doc.Body().AppendChild(late))
	assert.Equal(t, 0, doc.Win().ListenerCount(w3cdom.EventScroll))
	assert.Equal(t, 1, late.ListenerCount(w3cdom.EventScroll))
}

func TestSettersApplyOnNextCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	doc, tracker, timers := setup(t, options.Defaults())
	rec := &recorder{}
	tracker.On(onscreen.Enter, "#below", rec.callback)
	tracker.Attach()
	assert.Empty(t, rec.events)
	tracker.SetTolerance(options.Sides{Bottom: options.Px(1300)})
	tracker.SetDebounce("40ms")
	doc.Win().DispatchEvent(w3cdom.EventScroll)
	assert.Equal(t, 40*time.Millisecond, timers.LastDuration())
	timers.FireAll()
	assert.Equal(t, []event{{"below", onscreen.Enter}}, rec.events)
}

func TestCallbackMutatingDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	doc, tracker, timers := setup(t, options.Defaults())
	n := 0
	tracker.On(onscreen.Enter, ".tracked", func(el w3cdom.Element, _ onscreen.EventKind) {
		n++
		doc.GetElementByID(el.GetAttribute("id")).SetAttribute("data-seen", "true")
	})
	tracker.Attach()
	assert.Equal(t, 2, n)
	// the mutations have been noticed, but could not start a nested check
	assert.Equal(t, 1, timers.Pending())
	assert.Equal(t, 1, timers.FireAll())
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, timers.Pending())
}

func TestCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen")
	defer teardown()
	//
	doc := dom.ParseString(`<html><body>
<div id="in" style="position: absolute; top: 10px; left: 10px; width: 50px; height: 50px"></div>
<div id="out" style="position: absolute; top: 801px; left: 10px; width: 50px; height: 50px"></div>
<div id="edge" style="position: absolute; top: 800px; left: 10px; width: 50px; height: 50px"></div>
</body></html>`, 1000, 800)
	in, out, edge := doc.GetElementByID("in"), doc.GetElementByID("out"), doc.GetElementByID("edge")
	assert.True(t, onscreen.Check(doc, in, options.Options{Tolerance: geomZero}))
	assert.False(t, onscreen.Check(doc, out, options.Options{}))
	assert.True(t, onscreen.Check(doc, out, options.Options{Tolerance: options.Sides{Bottom: options.Px(800)}}))
	assert.False(t, onscreen.Check(doc, edge, options.Options{}), "touching is not overlapping")
	assert.True(t, onscreen.Check(doc, edge, options.Options{Tolerance: 1}))
	assert.False(t, onscreen.Check(doc, nil, options.Options{}))
}

var geomZero = map[string]int{"top": 0, "right": 0, "bottom": 0, "left": 0}

func TestParseEventKind(t *testing.T) {
	k, err := onscreen.ParseEventKind("leave")
	assert.NoError(t, err)
	assert.Equal(t, onscreen.Leave, k)
}
