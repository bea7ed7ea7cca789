package style

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Values "auto" have the following semantics: the placement code decides
// what to do. For offsets this means "no offset", for sizes "no box" as we do
// not size boxes from their content.
var userAgentDefaults = []KeyValue{
	{"position", "static"},
	{"visibility", "visible"},
	{"top", "auto"},
	{"right", "auto"},
	{"bottom", "auto"},
	{"left", "auto"},
	{"width", "auto"},
	{"height", "auto"},
	{"overflow-x", "visible"},
	{"overflow-y", "visible"},
}

// UserAgentDefaults returns a fresh property map holding the default values of
// all placement properties for a given node.
func UserAgentDefaults(node *html.Node) *PropertyMap {
	pmap := NewPropertyMap()
	for _, kv := range userAgentDefaults {
		pmap.Add(kv.Key, kv.Value)
	}
	pmap.Add("display", DisplayPropertyForHTMLNode(node))
	return pmap
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		return "none"
	}
	switch node.DataAtom {
	case atom.Head, atom.Title, atom.Meta, atom.Link, atom.Script, atom.Style, atom.Template:
		return "none"
	case atom.P:
		return "block-inline"
	case atom.Html, atom.Aside, atom.Body, atom.Div, atom.H1, atom.H2, atom.H3,
		atom.H4, atom.H5, atom.H6, atom.Ol, atom.Section, atom.Ul, atom.Main,
		atom.Article, atom.Header, atom.Footer, atom.Nav, atom.Figure:
		return "block"
	case atom.Li:
		return "list-item"
	case atom.I, atom.B, atom.Span, atom.Strong, atom.A, atom.Em, atom.Img:
		return "inline"
	}
	tracer().Debugf("unknown HTML element %s will be set to display: block", node.Data)
	return "block"
}
