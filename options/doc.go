/*
Package options normalizes loosely typed tracking options into their canonical form.

Options are given by clients in many shapes: a tolerance may be a number, a
numeric string, a CSS shorthand like "10px 20px", a box or a map of sides.
Resolve turns them into a Config, which is what the rest of the module works on.
Resolution never fails: unusable input falls back to defaults.

Resolution is meant to happen at every point of use, not once. A container
given as a selector string is matched against the document each time, thus it
may come and go as the document changes.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package options

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onscreen.options'.
func tracer() tracing.Trace {
	return tracing.Select("onscreen.options")
}
