package geom

// Viewport returns the visible area of a window with the given inner size.
func Viewport(width, height float64) Rect {
	return XYWH(0, 0, width, height)
}

// VisibleRect returns the part of the container which is visible in the viewport.
// A nil container stands for the window itself. A container partially or fully
// scrolled out of the viewport is clipped; a fully hidden container yields a
// collapsed rectangle.
func VisibleRect(viewport Rect, container *Rect) Rect {
	if container == nil {
		return viewport
	}
	return container.Intersect(viewport)
}

// Boundary is the detection boundary: the visible rectangle expanded by the tolerance.
func Boundary(visible Rect, tolerance Box) Rect {
	return visible.Expand(tolerance.Clamped())
}

// IsOnScreen reports whether an element's bounding rectangle overlaps the visible
// rectangle of its container after expanding it by tolerance.
//
// Overlap is tested with strict inequalities on both axes: rectangles sharing
// just an edge do not overlap. Points (all sides equal) are never on screen;
// lines of zero width or height are, if they cross the boundary.
func IsOnScreen(visible Rect, tolerance Box, element Rect) bool {
	if element.Width() == 0 && element.Height() == 0 {
		return false
	}
	b := Boundary(visible, tolerance)
	return element.Bottom > b.Top && element.Top < b.Bottom &&
		element.Right > b.Left && element.Left < b.Right
}
