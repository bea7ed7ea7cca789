package options

import (
	"fmt"
	"time"

	"github.com/npillmayer/onscreen/dom/w3cdom"
	"github.com/npillmayer/onscreen/geom"
	"github.com/npillmayer/schuko"
)

// DefaultDebounce is the debounce interval used for missing or unusable input.
const DefaultDebounce = 100 * time.Millisecond

// Options holds raw, loosely typed user options.
//
//   Container: a CSS selector string, a w3cdom.Element or nil (the viewport)
//   Debounce:  milliseconds as an integer, float, numeric string or time.Duration
//   Tolerance: pixels, either for all sides or per side (see ResolveTolerance)
//
type Options struct {
	Container any
	Debounce  any
	Tolerance any
}

// Defaults returns the options used if a client does not provide any:
// the viewport as container, 100 ms of debounce and no tolerance.
func Defaults() Options {
	return Options{Debounce: 100, Tolerance: 0}
}

// Config is the canonical form of Options.
type Config struct {
	Container Container
	Debounce  time.Duration
	Tolerance geom.Box
}

func (c Config) String() string {
	return fmt.Sprintf("config{container=%s debounce=%s tolerance=%s}",
		c.Container, c.Debounce, c.Tolerance)
}

// Resolve normalizes raw options. It never fails. doc is needed to resolve
// container selectors and may be nil, resulting in the viewport.
func Resolve(raw Options, doc w3cdom.Document) Config {
	return Config{
		Container: ResolveContainer(raw.Container, doc),
		Debounce:  ResolveDebounce(raw.Debounce),
		Tolerance: ResolveTolerance(raw.Tolerance),
	}
}

// FromConfiguration reads options from an application configuration. Keys are
//
//     <prefix>.container   CSS selector
//     <prefix>.debounce    milliseconds
//     <prefix>.tolerance   pixels, e.g. "20" or "10 0"
//
// Keys which are not set are taken from Defaults. With an empty prefix, keys
// are looked up without prefix and dot.
func FromConfiguration(conf schuko.Configuration, prefix string) Options {
	opts := Defaults()
	if conf == nil {
		return opts
	}
	key := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	if conf.IsSet(key("container")) {
		opts.Container = conf.GetString(key("container"))
	}
	if conf.IsSet(key("debounce")) {
		opts.Debounce = conf.GetString(key("debounce"))
	}
	if conf.IsSet(key("tolerance")) {
		opts.Tolerance = conf.GetString(key("tolerance"))
	}
	tracer().Debugf("options from configuration: %+v", opts)
	return opts
}
