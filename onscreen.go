package onscreen

import (
	"sync"
	"time"

	"github.com/npillmayer/onscreen/dom/w3cdom"
	"github.com/npillmayer/onscreen/geom"
	"github.com/npillmayer/onscreen/options"
	"github.com/npillmayer/onscreen/reconcile"
	"github.com/npillmayer/onscreen/registry"
	"github.com/npillmayer/onscreen/schedule"
)

// EventKind is either Enter or Leave.
type EventKind = registry.EventKind

// Event kinds
const (
	Enter = registry.Enter // element became visible
	Leave = registry.Leave // element became invisible
)

// ParseEventKind returns the event kind for "enter" or "leave".
func ParseEventKind(s string) (EventKind, error) {
	return registry.ParseEventKind(s)
}

// Callback is called with an element and the transition it made.
type Callback = registry.Callback

// CallbackID identifies a registered callback, see Off.
type CallbackID = registry.CallbackID

// Option configures an OnScreen instance.
type Option func(*settings)

type settings struct {
	schedule []schedule.Option
}

// WithAfterFunc replaces time.AfterFunc for debouncing.
func WithAfterFunc(af schedule.AfterFunc) Option {
	return func(s *settings) {
		s.schedule = append(s.schedule, schedule.WithAfterFunc(af))
	}
}

// OnScreen tracks selectors of a document. It is safe for concurrent use.
type OnScreen struct {
	mu         sync.Mutex
	doc        w3cdom.Document
	raw        options.Options
	attached   bool
	registry   *registry.Registry
	scheduler  *schedule.Scheduler
	reconciler *reconcile.Reconciler
}

// New creates a tracker for a document. It does not listen to anything until
// Attach is called.
func New(doc w3cdom.Document, opts options.Options, setup ...Option) *OnScreen {
	var s settings
	for _, opt := range setup {
		opt(&s)
	}
	o := &OnScreen{
		doc:      doc,
		raw:      opts,
		registry: registry.New(),
	}
	o.scheduler = schedule.New(o.debounce, o.reevaluate, s.schedule...)
	o.reconciler = reconcile.New(doc, o.reevaluate)
	return o
}

// On registers a callback for elements matching selector. Registering the
// same function twice will result in it being called twice. The returned ID
// may be used to unregister the callback.
//
// Registration does not check the selector's elements; the next pass will.
func (o *OnScreen) On(kind EventKind, selector string, cb Callback) CallbackID {
	id := o.registry.Register(selector, kind, cb)
	o.rebind(o.Config())
	return id
}

// Off unregisters callbacks. Without ids, all callbacks for selector and
// kind are removed.
func (o *OnScreen) Off(kind EventKind, selector string, ids ...CallbackID) {
	o.registry.Unregister(selector, kind, ids...)
}

// Attach starts listening for scroll, resize and mutation events, and checks
// all tracked selectors once, so that elements already on screen fire Enter.
// Calling Attach on an attached tracker is a no-op.
func (o *OnScreen) Attach() {
	o.mu.Lock()
	if o.attached {
		o.mu.Unlock()
		return
	}
	o.attached = true
	o.mu.Unlock()
	tracer().Infof("attaching, %s", o.Config())
	o.reconciler.Observe()
	o.reevaluate()
}

// Destroy removes all listeners, cancels a pending check and forgets all
// callbacks. No callback will be called after Destroy returns, except ones
// of a check running concurrently which had started before. Destroy may be
// called more than once; the tracker may be attached again afterwards.
func (o *OnScreen) Destroy() {
	o.mu.Lock()
	o.attached = false
	o.mu.Unlock()
	o.scheduler.Unbind()
	o.reconciler.Disconnect()
	o.registry.Destroy()
	tracer().Infof("destroyed")
}

// Attached is true between Attach and Destroy.
func (o *OnScreen) Attached() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.attached
}

// Config returns the current options in canonical form.
func (o *OnScreen) Config() options.Config {
	return options.Resolve(o.options(), o.doc)
}

// SetContainer sets the container option: a CSS selector, an element or nil
// for the viewport.
func (o *OnScreen) SetContainer(container any) {
	o.mu.Lock()
	o.raw.Container = container
	o.mu.Unlock()
	o.rebind(o.Config())
}

// SetDebounce sets the debounce option. It applies to the next scroll or
// resize event.
func (o *OnScreen) SetDebounce(debounce any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.raw.Debounce = debounce
}

// SetTolerance sets the tolerance option. It applies to the next check.
func (o *OnScreen) SetTolerance(tolerance any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.raw.Tolerance = tolerance
}

// Tracked returns the tracked selectors, in order of registration.
func (o *OnScreen) Tracked() []string {
	return o.registry.Selectors()
}

// String returns a dump of the tracked selectors.
func (o *OnScreen) String() string {
	return o.registry.String()
}

// --- Internals -------------------------------------------------------------

func (o *OnScreen) options() options.Options {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.raw
}

func (o *OnScreen) debounce() time.Duration {
	return options.ResolveDebounce(o.options().Debounce)
}

// rebind attaches the scroll listener to the current container. The container
// may change without a call to SetContainer, if it is given as a selector.
//
// o.mu is held while binding, so Destroy cannot unbind in between the check
// and the call to Bind.
func (o *OnScreen) rebind(conf options.Config) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.attached || o.doc == nil {
		return
	}
	win := o.doc.Window()
	o.scheduler.Bind(conf.Container.EventTarget(win), win)
}

// reevaluate runs a pass over all tracked selectors. If a pass is already
// running (e.g., a callback has changed the document), another pass is
// scheduled.
func (o *OnScreen) reevaluate() {
	if !o.Attached() {
		return
	}
	conf := o.Config()
	o.rebind(conf)
	if !o.registry.ReevaluateAll(newProbe(o.doc, conf)) {
		tracer().Debugf("check in progress, scheduling another one")
		o.scheduler.Trigger()
	}
}

// probe resolves selectors and classifies elements during a pass.
type probe struct {
	doc       w3cdom.Document
	visible   geom.Rect
	tolerance geom.Box
}

var _ registry.Probe = &probe{}

func newProbe(doc w3cdom.Document, conf options.Config) *probe {
	return &probe{
		doc:       doc,
		visible:   visibleRect(doc, conf.Container),
		tolerance: conf.Tolerance,
	}
}

func (p *probe) Match(selector string) []w3cdom.Element {
	if p.doc == nil {
		return nil
	}
	return p.doc.QuerySelectorAll(selector)
}

func (p *probe) OnScreen(el w3cdom.Element) bool {
	return geom.IsOnScreen(p.visible, p.tolerance, el.BoundingClientRect())
}

// visibleRect is the part of the viewport a container shows.
func visibleRect(doc w3cdom.Document, c options.Container) geom.Rect {
	var viewport geom.Rect
	if doc != nil {
		if win := doc.Window(); win != nil {
			viewport = geom.Viewport(win.InnerSize())
		}
	}
	return geom.VisibleRect(viewport, c.Rect())
}

// Check tells if an element is on screen, given a set of options. It does not
// need a tracker.
func Check(doc w3cdom.Document, el w3cdom.Element, opts options.Options) bool {
	if el == nil {
		return false
	}
	conf := options.Resolve(opts, doc)
	return geom.IsOnScreen(visibleRect(doc, conf.Container), conf.Tolerance, el.BoundingClientRect())
}
