package dom

import (
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/onscreen/dom/style"
	"github.com/npillmayer/onscreen/dom/style/cssom"
	"github.com/npillmayer/onscreen/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/onscreen/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is an in-memory host document. It is safe for concurrent use.
type Document struct {
	mu        sync.Mutex
	root      *html.Node
	elements  map[*html.Node]*Element
	styler    *cssom.Styler
	styles    map[*html.Node]*style.PropertyMap // computed styles, dropped on mutation
	selectors map[string]cascadia.Selector      // nil entry for invalid selectors
	window    *Window
	observers []observer
	nextObs   int
	batching  int
	pending   []w3cdom.MutationRecord
}

type observer struct {
	id int
	cb w3cdom.MutationCallback
}

// Parse reads an HTML document from r, with a window of a given inner size.
func Parse(r io.Reader, width, height float64) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return NewDocument(root, width, height), nil
}

// ParseString is a shortcut for Parse with a string argument. It panics if the
// document cannot be parsed, which for x/net/html only happens for I/O errors.
func ParseString(doc string, width, height float64) *Document {
	d, err := Parse(strings.NewReader(doc), width, height)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDocument wraps an HTML parse tree. The tree is now managed by the document
// and must not be changed from the outside.
func NewDocument(root *html.Node, width, height float64) *Document {
	doc := &Document{
		root:      root,
		elements:  make(map[*html.Node]*Element),
		styles:    make(map[*html.Node]*style.PropertyMap),
		selectors: make(map[string]cascadia.Selector),
	}
	var sheets []cssom.StyleSheet
	for _, s := range douceuradapter.ExtractStyleElements(root) {
		sheets = append(sheets, s)
	}
	doc.styler = cssom.NewStyler(sheets...)
	tracer().Debugf("document with %d style rules", doc.styler.RuleCount())
	doc.window = &Window{doc: doc}
	doc.window.width, doc.window.height = clampSize(width), clampSize(height)
	return doc
}

// Root returns the root node of the HTML parse tree.
func (doc *Document) Root() *html.Node {
	return doc.root
}

// Window returns the window of the document.
//
// Interface w3cdom.Document
func (doc *Document) Window() w3cdom.Window {
	return doc.window
}

// Win returns the window of the document with its concrete type.
func (doc *Document) Win() *Window {
	return doc.window
}

// QuerySelector returns the first element in document order matching a CSS
// selector, or nil. Invalid selectors match nothing.
//
// Interface w3cdom.Document
func (doc *Document) QuerySelector(selector string) w3cdom.Element {
	if el := doc.Find(selector); el != nil {
		return el
	}
	return nil
}

// QuerySelectorAll returns all elements matching a CSS selector, in document
// order. Invalid selectors match nothing.
//
// Interface w3cdom.Document
func (doc *Document) QuerySelectorAll(selector string) []w3cdom.Element {
	all := doc.FindAll(selector)
	els := make([]w3cdom.Element, len(all))
	for i, el := range all {
		els[i] = el
	}
	return els
}

// Find returns the first element in document order matching a CSS selector.
func (doc *Document) Find(selector string) *Element {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	sel := doc.compile(selector)
	if sel == nil {
		return nil
	}
	for _, n := range sel.MatchAll(doc.root) {
		if n.Type == html.ElementNode {
			return doc.element(n)
		}
	}
	return nil
}

// FindAll returns all elements matching a CSS selector, in document order.
func (doc *Document) FindAll(selector string) []*Element {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	sel := doc.compile(selector)
	if sel == nil {
		return nil
	}
	var els []*Element
	for _, n := range sel.MatchAll(doc.root) {
		if n.Type == html.ElementNode {
			els = append(els, doc.element(n))
		}
	}
	return els
}

// ElementFor returns the element for an HTML element node of the document's
// tree, or nil for other kinds of nodes. A detached node without a known
// element gets a new one on every call.
func (doc *Document) ElementFor(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return doc.element(n)
}

// GetElementByID returns the element with a given id, or nil.
func (doc *Document) GetElementByID(id string) *Element {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	var found *html.Node
	walk(doc.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return doc.element(found)
}

// Body returns the <body> element, or nil.
func (doc *Document) Body() *Element {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	var body *html.Node
	walk(doc.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return false
		}
		return true
	})
	if body == nil {
		return nil
	}
	return doc.element(body)
}

// compile returns a compiled selector or nil. Results are cached, including
// failures. Must be called with doc.mu held.
func (doc *Document) compile(selector string) cascadia.Selector {
	if sel, ok := doc.selectors[selector]; ok {
		return sel
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		tracer().Infof("invalid selector %q: %v", selector, err)
		sel = nil
	}
	doc.selectors[selector] = sel
	return sel
}

// computedStyles returns the styles of an element node. Must be called with
// doc.mu held.
func (doc *Document) computedStyles(n *html.Node) *style.PropertyMap {
	if pmap, ok := doc.styles[n]; ok {
		return pmap
	}
	pmap := doc.styler.StylesFor(n)
	pmap.AddAll(douceuradapter.InlineStyles(n))
	doc.styles[n] = pmap
	return pmap
}

// --- Helpers ---------------------------------------------------------------

// walk visits n and its descendants in document order, as long as f returns true.
func walk(n *html.Node, f func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if !f(n) {
		return false
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if !walk(ch, f) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func clampSize(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
