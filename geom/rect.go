package geom

import "fmt"

// Rect is an axis-aligned rectangle given by its four edges.
type Rect struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// XYWH creates a rectangle from an origin and a size.
// Negative sizes are normalized, so that Left ≤ Right and Top ≤ Bottom.
func XYWH(x, y, w, h float64) Rect {
	r := Rect{Top: y, Left: x, Right: x + w, Bottom: y + h}
	if w < 0 {
		r.Left, r.Right = r.Right, r.Left
	}
	if h < 0 {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Width of r, never negative.
func (r Rect) Width() float64 {
	if r.Right < r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height of r, never negative.
func (r Rect) Height() float64 {
	if r.Bottom < r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// Empty is true for rectangles without area.
func (r Rect) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy, Left: r.Left + dx}
}

// Intersect returns the overlap of r and other. If they do not overlap, the result
// is a collapsed rectangle (zero width and/or height) located at the closest edges.
func (r Rect) Intersect(other Rect) Rect {
	is := Rect{
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
		Left:   max(r.Left, other.Left),
	}
	if is.Right < is.Left {
		is.Right = is.Left
	}
	if is.Bottom < is.Top {
		is.Bottom = is.Top
	}
	return is
}

// Expand pushes every edge of r outwards by the corresponding side of b.
func (r Rect) Expand(b Box) Rect {
	return Rect{
		Top:    r.Top - float64(b.Top),
		Right:  r.Right + float64(b.Right),
		Bottom: r.Bottom + float64(b.Bottom),
		Left:   r.Left - float64(b.Left),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.Left, r.Top, r.Right, r.Bottom)
}

// Box holds four independent, non-negative margins.
type Box struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Uniform creates a box with all four sides set to n.
func Uniform(n int) Box {
	return Box{Top: n, Right: n, Bottom: n, Left: n}
}

// Clamped returns b with negative sides set to 0.
func (b Box) Clamped() Box {
	return Box{
		Top:    nonNegative(b.Top),
		Right:  nonNegative(b.Right),
		Bottom: nonNegative(b.Bottom),
		Left:   nonNegative(b.Left),
	}
}

func (b Box) String() string {
	return fmt.Sprintf("{top:%d right:%d bottom:%d left:%d}", b.Top, b.Right, b.Bottom, b.Left)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
