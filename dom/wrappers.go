package dom

import "golang.org/x/net/html"

// Wrappers of connected nodes are kept in doc.elements. A detached subtree
// keeps the wrappers of its nodes with the wrapper of its top node (field
// orphans), so they are garbage collected together with the subtree. All
// functions in this file must be called with doc.mu held.

// element returns the wrapper for a node. Wrappers for connected nodes are
// stable; a detached node without a known wrapper gets a new one.
func (doc *Document) element(n *html.Node) *Element {
	if el, ok := doc.elements[n]; ok {
		return el
	}
	el := &Element{doc: doc, node: n}
	if doc.connected(n) {
		doc.elements[n] = el
	}
	return el
}

// elementNear returns the wrapper for a node in the same tree as near.
func (doc *Document) elementNear(n *html.Node, near *Element) *Element {
	if near == nil || doc.connected(n) {
		return doc.element(n)
	}
	top := near.top()
	if n == top.node {
		return top
	}
	if el, ok := top.orphans[n]; ok {
		return el
	}
	el := &Element{doc: doc, node: n}
	top.adopt(el)
	return el
}

// detach moves the wrappers of el's subtree from their previous owner to el,
// which becomes the top of a detached subtree. It is called after el's node
// has been unlinked from its parent.
func (doc *Document) detach(el *Element, wasConnected bool) {
	if wasConnected {
		delete(doc.elements, el.node)
		walk(el.node, func(n *html.Node) bool {
			if w, ok := doc.elements[n]; ok && n != el.node {
				delete(doc.elements, n)
				el.adopt(w)
			}
			return true
		})
		return
	}
	owner := el.root
	el.root = nil
	if owner == nil {
		return
	}
	delete(owner.orphans, el.node)
	walk(el.node, func(n *html.Node) bool {
		if w, ok := owner.orphans[n]; ok && n != el.node {
			delete(owner.orphans, n)
			el.adopt(w)
		}
		return true
	})
}

// attach hands the wrappers of child's subtree over to the tree of parent.
// It is called after child's node has been appended to parent's node.
func (doc *Document) attach(child, parent *Element) {
	orphans := child.orphans
	child.orphans = nil
	if doc.connected(parent.node) {
		child.root = nil
		doc.elements[child.node] = child
		for n, w := range orphans {
			w.root = nil
			doc.elements[n] = w
		}
		return
	}
	top := parent.top()
	top.adopt(child)
	for _, w := range orphans {
		top.adopt(w)
	}
}

// top returns the wrapper of the top node of a detached subtree el is part of.
func (el *Element) top() *Element {
	if el.root != nil {
		return el.root
	}
	return el
}

func (el *Element) adopt(w *Element) {
	if el.orphans == nil {
		el.orphans = make(map[*html.Node]*Element)
	}
	w.root = el
	el.orphans[w.node] = w
}
