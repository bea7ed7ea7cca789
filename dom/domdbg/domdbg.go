/*
Package domdbg implements helpers to debug a host document.

A document may be printed as an indented tree, or be exported as a GraphViz
diagram. Both show the client rectangle of every element, which is what
viewport tracking works on.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/onscreen/dom"
	"github.com/npillmayer/onscreen/dom/style"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Tree returns a printable tree of the elements of a document. Every element
// is labelled with its tag, id and classes, and carries its client rectangle as
// meta data.
func Tree(doc *dom.Document) treeprint.Tree {
	tree := treeprint.NewWithRoot("document")
	var walk func(n *html.Node, branch treeprint.Tree)
	walk = func(n *html.Node, branch treeprint.Tree) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			el := doc.ElementFor(ch)
			if el == nil {
				continue
			}
			sub := branch.AddMetaBranch(el.BoundingClientRect().String(), label(el))
			walk(ch, sub)
		}
	}
	walk(doc.Root(), tree)
	return tree
}

// Dump returns the tree of a document as a string.
func Dump(doc *dom.Document) string {
	return Tree(doc).String()
}

func label(el *dom.Element) string {
	s := el.NodeName()
	if id := el.GetAttribute("id"); id != "" {
		s += "#" + id
	}
	for _, c := range strings.Fields(el.GetAttribute("class")) {
		s += "." + c
	}
	return s
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
}

var defaultGroups = []string{
	style.PGOffsets,
	style.PGDimension,
	style.PGDisplay,
}

// ToGraphViz outputs a diagram for the elements of a document. The diagram is in
// GraphViz (DOT) format. Clients have to provide the document, a Writer, and an
// optional list of style parameter groups. The diagram will include all styles
// belonging to one of the parameter groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Offsets
//     - Dimension
//     - Display
//
func ToGraphViz(doc *dom.Document, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*html.Node]string, 256)
	if err = nodes(doc, doc.Root(), w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	Name  string
	Label string
	Rect  string
	Fill  string
}

func nodes(doc *dom.Document, n *html.Node, w io.Writer, dict map[*html.Node]string,
	gparams *graphParamsType) error {
	//
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		el := doc.ElementFor(ch)
		if el == nil {
			continue
		}
		if err := domNode(el, w, dict, gparams); err != nil {
			return err
		}
		if parent := dict[n]; parent != "" {
			e := edge{N1: parent, N2: dict[ch]}
			if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
				return err
			}
		}
		if err := nodes(doc, ch, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func domNode(el *dom.Element, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[el.HTMLNode()] = name
	pmap := el.ComputedStyles()
	n := node{
		Name:  name,
		Label: label(el),
		Rect:  el.BoundingClientRect().String(),
		Fill:  style.ColorString(pmap.GetPropertyValue("background-color").Color()),
	}
	if err := gparams.NodeTmpl.Execute(w, n); err != nil {
		return err
	}
	for _, s := range gparams.StyleGroups {
		if pg := pmap.Group(s); pg != nil {
			if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
				return err
			}
			if err := gparams.PgedgeTmpl.Execute(w, pgedge{name, pg}); err != nil {
				return err
			}
		}
	}
	return nil
}

type edge struct {
	N1, N2 string
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} xlabel={{ printf "%q" .Rect }} shape=ellipse style=filled fillcolor={{ .Fill }} ] ;
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`
