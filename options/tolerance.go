package options

import (
	"strings"

	"github.com/npillmayer/onscreen/dom/style"
	"github.com/npillmayer/onscreen/geom"
)

// Sides is a partial tolerance box. Sides which are nil are taken as 0.
type Sides struct {
	Top, Right, Bottom, Left *int
}

// Px is a helper to fill Sides, e.g.
//
//     options.Sides{Top: options.Px(50)}
//
func Px(n int) *int {
	return &n
}

// ResolveTolerance resolves a raw tolerance option to a box of non-negative
// pixel values. Accepted are
//
//   - numbers and numeric strings, applying to all four sides
//   - CSS shorthand strings with 1 to 4 values, e.g. "10px 0"
//   - geom.Box and *geom.Box
//   - Sides, where missing sides are 0
//   - maps from "top", "right", "bottom" and "left" to values
//
// Negative and non-numeric values are taken as 0; nil and everything else
// result in a zero box.
func ResolveTolerance(v any) geom.Box {
	var box geom.Box
	switch x := v.(type) {
	case nil:
	case geom.Box:
		box = x
	case *geom.Box:
		if x != nil {
			box = *x
		}
	case Sides:
		box = fromSides(x)
	case *Sides:
		if x != nil {
			box = fromSides(*x)
		}
	case string:
		box = fromShorthand(x)
	case map[string]int:
		box = fromMap(func(k string) (any, bool) { n, ok := x[k]; return n, ok })
	case map[string]float64:
		box = fromMap(func(k string) (any, bool) { n, ok := x[k]; return n, ok })
	case map[string]string:
		box = fromMap(func(k string) (any, bool) { n, ok := x[k]; return n, ok })
	case map[string]any:
		box = fromMap(func(k string) (any, bool) { n, ok := x[k]; return n, ok })
	default:
		n, ok := parseInt(v)
		if !ok {
			tracer().Debugf("cannot use %T as tolerance", v)
		}
		box = geom.Uniform(n)
	}
	return box.Clamped()
}

func fromSides(s Sides) geom.Box {
	side := func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	}
	return geom.Box{Top: side(s.Top), Right: side(s.Right), Bottom: side(s.Bottom), Left: side(s.Left)}
}

func fromMap(get func(string) (any, bool)) geom.Box {
	side := func(k string) int {
		if v, ok := get(k); ok {
			n, _ := parseInt(v)
			return n
		}
		return 0
	}
	return geom.Box{Top: side("top"), Right: side("right"), Bottom: side("bottom"), Left: side("left")}
}

// fromShorthand resolves strings like "10", "10px 20px" or "1 2 3 4", using the
// CSS rules for `inset`.
func fromShorthand(s string) geom.Box {
	s = strings.TrimSpace(s)
	if s == "" {
		return geom.Box{}
	}
	kvs, err := style.SplitCompoundProperty("inset", style.Property(s))
	if err != nil {
		tracer().Debugf("tolerance %q: %v", s, err)
		return geom.Box{}
	}
	var box geom.Box
	for _, kv := range kvs {
		n, _ := parseInt(kv.Value.String())
		switch kv.Key {
		case "top":
			box.Top = n
		case "right":
			box.Right = n
		case "bottom":
			box.Bottom = n
		case "left":
			box.Left = n
		}
	}
	return box
}
