package dom

import (
	"errors"
	"strings"

	"github.com/npillmayer/onscreen/dom/style"
	"github.com/npillmayer/onscreen/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrHierarchy is returned if a node cannot be inserted at a given place.
var ErrHierarchy = errors.New("hierarchy request error")

// ObserveMutations registers a callback for child list and attribute changes
// anywhere in the document.
//
// Interface w3cdom.Document
func (doc *Document) ObserveMutations(cb w3cdom.MutationCallback) func() {
	if cb == nil {
		return func() {}
	}
	doc.mu.Lock()
	defer doc.mu.Unlock()
	doc.nextObs++
	id := doc.nextObs
	doc.observers = append(doc.observers, observer{id: id, cb: cb})
	return func() {
		doc.mu.Lock()
		defer doc.mu.Unlock()
		for i, o := range doc.observers {
			if o.id == id {
				doc.observers = append(doc.observers[:i:i], doc.observers[i+1:]...)
				return
			}
		}
	}
}

// ObserverCount returns the number of registered mutation observers.
func (doc *Document) ObserverCount() int {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return len(doc.observers)
}

// Batch calls f and reports all mutations made by f to observers as a single
// list of records, after f returns. Batches may be nested.
func (doc *Document) Batch(f func()) {
	doc.mu.Lock()
	doc.batching++
	doc.mu.Unlock()
	defer func() {
		doc.mu.Lock()
		doc.batching--
		var records []w3cdom.MutationRecord
		if doc.batching == 0 {
			records, doc.pending = doc.pending, nil
		}
		doc.mu.Unlock()
		doc.notify(records)
	}()
	f()
}

// CreateElement creates a new element, which is not yet connected to the document.
func (doc *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(strings.TrimSpace(tag))
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return &Element{doc: doc, node: n}
}

// AppendChild appends child to the children of el. If child already has a
// parent, it is moved.
func (el *Element) AppendChild(child *Element) error {
	if child == nil || child.doc != el.doc {
		return ErrHierarchy
	}
	doc := el.doc
	doc.mu.Lock()
	for a := el.node; a != nil; a = a.Parent {
		if a == child.node {
			doc.mu.Unlock()
			return ErrHierarchy
		}
	}
	var records []w3cdom.MutationRecord
	if p := child.node.Parent; p != nil {
		records = append(records, doc.childListRecord(doc.parentOf(child), nil, child))
		wasConnected := doc.connected(child.node)
		p.RemoveChild(child.node)
		doc.detach(child, wasConnected)
	}
	el.node.AppendChild(child.node)
	doc.attach(child, el)
	records = append(records, doc.childListRecord(el, child, nil))
	records = doc.changed(records)
	doc.mu.Unlock()
	doc.notify(records)
	return nil
}

// Remove removes el from its parent. Removing an element without a parent is
// a no-op.
func (el *Element) Remove() {
	doc := el.doc
	doc.mu.Lock()
	p := el.node.Parent
	if p == nil {
		doc.mu.Unlock()
		return
	}
	record := doc.childListRecord(doc.parentOf(el), nil, el)
	wasConnected := doc.connected(el.node)
	p.RemoveChild(el.node)
	doc.detach(el, wasConnected)
	records := doc.changed([]w3cdom.MutationRecord{record})
	doc.mu.Unlock()
	doc.notify(records)
}

// SetAttribute sets an attribute value. Observers are notified even if the
// value does not change.
func (el *Element) SetAttribute(key string, value string) {
	doc := el.doc
	doc.mu.Lock()
	found := false
	for i := range el.node.Attr {
		if el.node.Attr[i].Namespace == "" && el.node.Attr[i].Key == key {
			el.node.Attr[i].Val = value
			found = true
			break
		}
	}
	if !found {
		el.node.Attr = append(el.node.Attr, html.Attribute{Key: key, Val: value})
	}
	records := doc.changed([]w3cdom.MutationRecord{{
		Type:          w3cdom.Attributes,
		Target:        el,
		AttributeName: key,
	}})
	doc.mu.Unlock()
	doc.notify(records)
}

// RemoveAttribute removes an attribute. Removing a missing attribute is a no-op.
func (el *Element) RemoveAttribute(key string) {
	doc := el.doc
	doc.mu.Lock()
	attrs := el.node.Attr[:0]
	removed := false
	for _, a := range el.node.Attr {
		if a.Namespace == "" && a.Key == key {
			removed = true
			continue
		}
		attrs = append(attrs, a)
	}
	el.node.Attr = attrs
	if !removed {
		doc.mu.Unlock()
		return
	}
	records := doc.changed([]w3cdom.MutationRecord{{
		Type:          w3cdom.Attributes,
		Target:        el,
		AttributeName: key,
	}})
	doc.mu.Unlock()
	doc.notify(records)
}

// parentOf returns the parent element of el, or nil if the parent is missing
// or not an element (e.g., the document node).
func (doc *Document) parentOf(el *Element) *Element {
	p := el.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return doc.elementNear(p, el)
}

// childListRecord creates a record for an added or removed child. The target
// is nil if the parent is not an element.
func (doc *Document) childListRecord(parent *Element, added, removed *Element) w3cdom.MutationRecord {
	rec := w3cdom.MutationRecord{Type: w3cdom.ChildList}
	if parent != nil {
		rec.Target = parent
	}
	if added != nil {
		rec.AddedNodes = []w3cdom.Element{added}
	}
	if removed != nil {
		rec.RemovedNodes = []w3cdom.Element{removed}
	}
	return rec
}

// changed drops cached styles and either queues records for a running batch or
// returns them for immediate delivery. Must be called with doc.mu held.
func (doc *Document) changed(records []w3cdom.MutationRecord) []w3cdom.MutationRecord {
	doc.styles = make(map[*html.Node]*style.PropertyMap)
	if doc.batching > 0 {
		doc.pending = append(doc.pending, records...)
		return nil
	}
	return records
}

// notify delivers records to all observers. Must be called without holding doc.mu.
func (doc *Document) notify(records []w3cdom.MutationRecord) {
	if len(records) == 0 {
		return
	}
	doc.mu.Lock()
	callbacks := make([]w3cdom.MutationCallback, len(doc.observers))
	for i, o := range doc.observers {
		callbacks[i] = o.cb
	}
	doc.mu.Unlock()
	tracer().Debugf("%d mutation record(s) for %d observer(s)", len(records), len(callbacks))
	for _, cb := range callbacks {
		cb(records)
	}
}
