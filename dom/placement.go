package dom

import (
	"strings"

	"github.com/npillmayer/onscreen/dom/style"
	"github.com/npillmayer/onscreen/dom/style/css"
	"github.com/npillmayer/onscreen/geom"
	"golang.org/x/net/html"
)

// All methods in this file must be called with doc.mu held.

// clientRect places an element node and translates it to viewport coordinates.
func (doc *Document) clientRect(n *html.Node) geom.Rect {
	if !doc.connected(n) || doc.hidden(n) {
		return geom.Rect{}
	}
	r, fixed := doc.place(n)
	if !fixed {
		r = r.Translate(-doc.window.scrollX, -doc.window.scrollY)
	}
	tracer().Debugf("client rect of <%s> = %s", n.Data, r)
	return r
}

// connected is true if n is part of the document's tree.
func (doc *Document) connected(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == doc.root {
			return true
		}
	}
	return false
}

// hidden is true if n or one of its ancestors has display: none.
func (doc *Document) hidden(n *html.Node) bool {
	for ; n != nil && n.Type == html.ElementNode; n = n.Parent {
		if display(doc.computedStyles(n)).IsNone() {
			return true
		}
	}
	return false
}

// initialContainingBlock is the box of the viewport in document coordinates.
func (doc *Document) initialContainingBlock() geom.Rect {
	return geom.Viewport(doc.window.width, doc.window.height)
}

// place returns the border box of an element node in document coordinates,
// and a flag telling if the box is anchored to the viewport (position: fixed).
func (doc *Document) place(n *html.Node) (geom.Rect, bool) {
	if n == nil || n.Type != html.ElementNode {
		return doc.initialContainingBlock(), false
	}
	pmap := doc.computedStyles(n)
	pos := css.PositionFromStyles(pmap)
	var cb geom.Rect
	var fixed bool
	switch m := pos.Match(); m {
	case m.Fixed(nil):
		cb, fixed = doc.initialContainingBlock(), true
	case m.Absolute(nil):
		anc := doc.positionedAncestor(n)
		cb, fixed = doc.place(anc)
		cb = doc.scrolled(anc, cb)
	default:
		cb, fixed = doc.place(n.Parent)
		cb = doc.scrolled(n.Parent, cb)
	}
	top, right := px(pos.Offset(css.Top)), px(pos.Offset(css.Right))
	bottom, left := px(pos.Offset(css.Bottom)), px(pos.Offset(css.Left))
	outOfFlow := css.PositionPattern[bool](pos).OneOf(css.PositionPatterns[bool]{
		Absolute: true,
		Fixed:    true,
	})
	w, wok := length(pmap, "width")
	if !wok {
		switch {
		case outOfFlow && left != nil && right != nil:
			w = cb.Width() - *left - *right
		case !outOfFlow && display(pmap).Contains(css.BlockMode):
			w = cb.Width()
		}
	}
	h, hok := length(pmap, "height")
	if !hok && outOfFlow && top != nil && bottom != nil {
		h = cb.Height() - *top - *bottom
	}
	x, y := cb.Left, cb.Top
	if !pos.IsStatic() {
		if left != nil {
			x = cb.Left + *left
		} else if right != nil {
			x = cb.Right - *right - w
		}
		if top != nil {
			y = cb.Top + *top
		} else if bottom != nil {
			y = cb.Bottom - *bottom - h
		}
	}
	return geom.XYWH(x, y, w, h), fixed
}

// positionedAncestor returns the nearest ancestor which is not statically
// positioned, or nil.
func (doc *Document) positionedAncestor(n *html.Node) *html.Node {
	for p := n.Parent; p != nil && p.Type == html.ElementNode; p = p.Parent {
		if !css.PositionFromStyles(doc.computedStyles(p)).IsStatic() {
			return p
		}
	}
	return nil
}

// scrolled shifts the content box of a containing block by its scroll offset.
func (doc *Document) scrolled(n *html.Node, cb geom.Rect) geom.Rect {
	if n == nil {
		return cb
	}
	if el, ok := doc.elements[n]; ok {
		return cb.Translate(-el.scrollLeft, -el.scrollTop)
	}
	return cb
}

func display(pmap *style.PropertyMap) css.DisplayMode {
	p := style.Property(strings.ToLower(strings.TrimSpace(pmap.GetPropertyValue("display").String())))
	disp, err := css.ParseDisplay(p)
	if err != nil {
		tracer().Debugf("placement: %v", err)
	}
	return disp
}

// length returns a fixed size property in px. Auto, missing or malformed
// values yield false.
func length(pmap *style.PropertyMap, key string) (float64, bool) {
	d, err := css.ParseDimen(pmap.GetPropertyValue(key))
	if err != nil {
		return 0, false
	}
	return d.Px()
}

// px returns a fixed offset in px, or nil.
func px(d css.DimenT) *float64 {
	if x, ok := d.Px(); ok {
		return &x
	}
	return nil
}
