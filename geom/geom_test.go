package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const vw, vh = 1024.0, 768.0

func TestInsideViewport(t *testing.T) {
	vp := Viewport(vw, vh)
	el := XYWH(10, 10, 100, 50)
	if !IsOnScreen(vp, Box{}, el) {
		t.Errorf("expected element %v to be on screen, isn't", el)
	}
}

func TestBelowViewportWithTolerance(t *testing.T) {
	vp := Viewport(vw, vh)
	el := XYWH(10, vh+1, 100, 50)
	if IsOnScreen(vp, Box{}, el) {
		t.Errorf("expected element %v to be off screen, isn't", el)
	}
	tol := Box{Bottom: int(vh)}
	if !IsOnScreen(vp, tol, el) {
		t.Errorf("expected element %v to be on screen with tolerance %v, isn't", el, tol)
	}
}

func TestEdgeTouchingIsOutside(t *testing.T) {
	vp := Viewport(vw, vh)
	below := XYWH(0, vh, 100, 10)  // top edge == viewport bottom
	above := XYWH(0, -10, 100, 10) // bottom edge == viewport top
	right := XYWH(vw, 0, 10, 10)
	left := XYWH(-10, 0, 10, 10)
	for _, el := range []Rect{below, above, right, left} {
		assert.False(t, IsOnScreen(vp, Box{}, el), "element %v touches the edge only", el)
	}
	// one pixel of tolerance turns touching into overlapping
	assert.True(t, IsOnScreen(vp, Uniform(1), below))
	assert.True(t, IsOnScreen(vp, Uniform(1), left))
}

func TestPointsNeverOnScreen(t *testing.T) {
	vp := Viewport(vw, vh)
	assert.False(t, IsOnScreen(vp, Uniform(100), Rect{}))
	assert.False(t, IsOnScreen(vp, Box{}, XYWH(50, 50, 0, 0)))
}

func TestLinesOverlapLikeBoxes(t *testing.T) {
	vp := Viewport(vw, vh)
	assert.True(t, IsOnScreen(vp, Box{}, Rect{Top: 5, Right: 10, Bottom: 20, Left: 10}), "vertical line")
	assert.True(t, IsOnScreen(vp, Box{}, XYWH(50, 50, 30, 0)), "horizontal line")
	assert.False(t, IsOnScreen(vp, Box{}, XYWH(vw, 50, 0, 30)), "line on the right edge")
	assert.True(t, IsOnScreen(vp, Uniform(1), XYWH(vw, 50, 0, 30)))
}

func TestIdempotence(t *testing.T) {
	vp := Viewport(vw, vh)
	el := XYWH(vw-5, vh-5, 20, 20)
	tol := Box{Top: 3, Right: 1, Bottom: 4, Left: 1}
	first := IsOnScreen(vp, tol, el)
	second := IsOnScreen(vp, tol, el)
	if first != second {
		t.Errorf("expected identical results for unchanged input, have %v and %v", first, second)
	}
}

func TestContainerClippedToViewport(t *testing.T) {
	vp := Viewport(vw, vh)
	container := XYWH(100, 600, 300, 400) // lower part hangs out of the viewport
	visible := VisibleRect(vp, &container)
	assert.Equal(t, Rect{Top: 600, Right: 400, Bottom: vh, Left: 100}, visible)

	inContainerBelowViewport := XYWH(120, 800, 50, 50)
	assert.False(t, IsOnScreen(visible, Box{}, inContainerBelowViewport))
	assert.True(t, IsOnScreen(visible, Box{Bottom: 40}, inContainerBelowViewport))

	besideContainer := XYWH(500, 650, 50, 50)
	assert.False(t, IsOnScreen(visible, Box{}, besideContainer))
}

func TestContainerOutsideViewport(t *testing.T) {
	vp := Viewport(vw, vh)
	container := XYWH(0, vh+100, 300, 300)
	visible := VisibleRect(vp, &container)
	assert.True(t, visible.Empty())
	el := XYWH(10, vh+110, 50, 50)
	assert.False(t, IsOnScreen(visible, Box{}, el))
}

func TestNegativeToleranceIsClamped(t *testing.T) {
	vp := Viewport(vw, vh)
	el := XYWH(10, 10, 10, 10)
	assert.True(t, IsOnScreen(vp, Uniform(-500), el))
	assert.Equal(t, vp, Boundary(vp, Uniform(-3)))
}

func TestXYWHNormalizes(t *testing.T) {
	r := XYWH(10, 10, -5, -5)
	assert.Equal(t, Rect{Top: 5, Right: 10, Bottom: 10, Left: 5}, r)
	assert.Equal(t, 5.0, r.Width())
}
