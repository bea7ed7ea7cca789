/*
Package schedule coalesces bursts of scroll and resize events into single
re-evaluation passes.

A Debouncer runs a function once a quiet period has passed after the last
trigger (trailing edge). Every trigger restarts the period, reading the
interval anew, so changes to the debounce option apply to the next trigger.
A Scheduler binds a Debouncer to the scroll events of a container and to the
resize events of the window.

Timers are created through an AfterFunc, which defaults to time.AfterFunc.
Tests may replace it with ManualTimers, which fire only when told to.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package schedule

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onscreen.schedule'.
func tracer() tracing.Trace {
	return tracing.Select("onscreen.schedule")
}
