/*
Package onscreen detects elements of a document entering and leaving the viewport.

Clients register callbacks for CSS selectors and an event kind, Enter or Leave.
Whenever the page is scrolled or resized, and whenever the document changes,
all elements matched by tracked selectors are checked against the visible area,
either the window's viewport or a scrollable container element, extended by a
tolerance margin. Callbacks fire for elements which changed sides since the
previous check.

    tracker := onscreen.New(doc, options.Options{Tolerance: 50})
    tracker.On(onscreen.Enter, ".lazy", func(el w3cdom.Element, kind onscreen.EventKind) {
        load(el)
    })
    tracker.Attach()
    defer tracker.Destroy()

Scroll and resize events are debounced: a check happens once the events have
paused for the debounce interval (100 ms by default). Document mutations result
in an immediate check.

Options are loosely typed and normalized at every use, see package options.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package onscreen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onscreen'.
func tracer() tracing.Trace {
	return tracing.Select("onscreen")
}
