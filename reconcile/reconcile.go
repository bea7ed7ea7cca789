/*
Package reconcile keeps tracked state in line with a changing document.

A Reconciler observes all child list and attribute mutations of a document.
It does not try to find out which tracked elements a mutation affects:
every delivered batch of mutation records results in exactly one call of a
re-evaluation function, which re-checks everything.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reconcile

import (
	"sync"

	"github.com/npillmayer/onscreen/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onscreen.reconcile'.
func tracer() tracing.Trace {
	return tracing.Select("onscreen.reconcile")
}

// Reconciler calls a function for every batch of document mutations.
// It is safe for concurrent use.
type Reconciler struct {
	mu         sync.Mutex
	doc        w3cdom.Document
	reevaluate func()
	disconnect func()
}

// New creates a reconciler for a document. It does not start observing.
func New(doc w3cdom.Document, reevaluate func()) *Reconciler {
	return &Reconciler{doc: doc, reevaluate: reevaluate}
}

// Observe starts observing the document. Calling Observe while observing is
// a no-op.
func (r *Reconciler) Observe() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disconnect != nil || r.doc == nil {
		return
	}
	r.disconnect = r.doc.ObserveMutations(r.mutated)
	tracer().Infof("observing document mutations")
}

// Disconnect stops observing. Records delivered afterwards are ignored.
func (r *Reconciler) Disconnect() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disconnect == nil {
		return
	}
	r.disconnect()
	r.disconnect = nil
	tracer().Infof("stopped observing document mutations")
}

// Observing is true between Observe and Disconnect.
func (r *Reconciler) Observing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disconnect != nil
}

func (r *Reconciler) mutated(records []w3cdom.MutationRecord) {
	if !r.Observing() || len(records) == 0 {
		return
	}
	tracer().Debugf("%d mutation record(s), first is %s", len(records), records[0].Type)
	if r.reevaluate != nil {
		r.reevaluate()
	}
}
