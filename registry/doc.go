/*
Package registry keeps track of selectors, their callbacks and the on-screen
state of the elements they match.

A Registry does not know about geometry or documents. A pass over all tracked
selectors (ReevaluateAll) is given a Probe, which resolves selectors to
elements and tells if an element is on screen. The registry compares the
result with the state of the previous pass and fires `enter` callbacks for
elements which have become visible, and `leave` callbacks for elements which
have become invisible. Elements seen for the first time count as having been
off screen before.

Callbacks are called without holding the registry's lock. They may register
and unregister callbacks and change the document. A pass requested while
another one is running is skipped, and ReevaluateAll reports this to the
caller, which may then schedule another pass.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package registry

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onscreen.registry'.
func tracer() tracing.Trace {
	return tracing.Select("onscreen.registry")
}
