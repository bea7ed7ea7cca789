package options

import "time"

// ResolveDebounce resolves a raw debounce option to a positive interval of
// whole milliseconds. Numbers are taken as milliseconds, strings by their
// leading integer ("150ms" → 150 ms). Zero, negative or unusable input
// results in DefaultDebounce.
func ResolveDebounce(v any) time.Duration {
	ms, ok := parseInt(v)
	if !ok || ms <= 0 {
		if v != nil {
			tracer().Debugf("debounce %v not usable, using %s", v, DefaultDebounce)
		}
		return DefaultDebounce
	}
	return time.Duration(ms) * time.Millisecond
}
