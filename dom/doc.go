/*
Package dom provides an in-memory host document for viewport tracking.

Status

Early draft—API may change frequently. Please stay patient.

Overview

A Document wraps an HTML parse tree (golang.org/x/net/html) and implements
the host interfaces of package w3cdom: selector queries (using
https://godoc.org/github.com/andybalholm/cascadia), bounding client rectangles,
a window with an inner size and a scroll position, scroll and resize events,
and mutation observation.

Placement

A Document does not do layout. Boxes are placed from a small set of CSS
properties, taken from embedded <style> elements and inline `style`
attributes:

    position            static | relative | absolute | fixed
    top right bottom left   offsets in px or pt
    width height        sizes in px or pt
    display             none hides an element and all its descendants

A box is placed relative to its containing block: the parent for static and
relative boxes, the nearest positioned ancestor for absolute boxes, and the
viewport for fixed boxes. Static boxes ignore offsets. An `auto` width of a
block-level box spans its containing block, every other `auto` size is 0.
Scroll offsets of containing blocks and of the window are subtracted, except for
fixed boxes, which do not move when the window scrolls.

Stylesheets are read once, when the document is parsed. Inline styles may be
changed at any time.

Mutations

Elements may be created, appended, removed and have their attributes changed.
Every change is reported to mutation observers synchronously, after the
document's lock has been released. Changes made within Batch are reported
as a single list of records.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onscreen.dom'.
func tracer() tracing.Trace {
	return tracing.Select("onscreen.dom")
}
