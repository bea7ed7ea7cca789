/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It additionally parses inline `style` attributes of HTML elements into
property maps.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/onscreen/dom/style"
	"github.com/npillmayer/onscreen/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'onscreen.dom'.
func tracer() tracing.Trace {
	return tracing.Select("onscreen.dom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules of stylesheet type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the (qualified) rules of a stylesheet. At-rules are
// not supported and will be left out.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	if d := lastDeclaration(r.Declarations, key); d != nil {
		return style.Property(d.Value)
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := lastDeclaration(r.Declarations, key); d != nil {
		return d.Important
	}
	return false
}

var _ cssom.Rule = Rule{}

func lastDeclaration(decl []*css.Declaration, key string) *css.Declaration {
	for i := len(decl) - 1; i >= 0; i-- {
		if strings.EqualFold(decl[i].Property, key) {
			return decl[i]
		}
	}
	return nil
}

// ParseStyleSheet parses CSS text into a stylesheet.
func ParseStyleSheet(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// ExtractStyleElements visits an HTML parse tree and searches for embedded
// <style>s. It returns the content of style-elements as style sheets, in
// document order. Style elements which fail to parse are skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		if h.Type == html.ElementNode && h.DataAtom == atom.Style {
			if sheet := extractStyle(h); sheet != nil {
				sheets = append(sheets, sheet)
			}
			return
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if htmldoc != nil {
		walk(htmldoc)
	}
	return sheets
}

func extractStyle(h *html.Node) *CSSStyles {
	var b strings.Builder
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	sheet, err := ParseStyleSheet(b.String())
	if err != nil {
		tracer().Errorf("cannot parse <style> element: %v", err)
		return nil
	}
	return sheet
}

// InlineStyles parses the `style` attribute of an HTML element node.
// It returns nil if the node has no inline styles.
func InlineStyles(h *html.Node) *style.PropertyMap {
	if h == nil || h.Type != html.ElementNode {
		return nil
	}
	var text string
	found := false
	for _, a := range h.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, "style") {
			text, found = a.Val, true
		}
	}
	if !found || strings.TrimSpace(text) == "" {
		return nil
	}
	return ParseInlineStyles(text)
}

// ParseInlineStyles parses a list of CSS declarations, as found in a `style`
// attribute. Malformed input results in an empty property map.
func ParseInlineStyles(text string) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	decls, err := parseDeclarations(text)
	if err != nil {
		tracer().Debugf("cannot parse inline styles %q: %v", text, err)
		return pmap
	}
	for _, d := range decls {
		pmap.Add(d.Property, style.Property(d.Value))
	}
	return pmap
}

// SetInlineStyle sets a property in the text of a `style` attribute and returns
// the new attribute text. An empty value removes the property.
// If text cannot be parsed, it is replaced.
func SetInlineStyle(text string, key string, value string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	decls, err := parseDeclarations(text)
	if err != nil {
		tracer().Debugf("replacing malformed inline styles %q", text)
		decls = nil
	}
	var b strings.Builder
	for _, d := range decls {
		if strings.EqualFold(d.Property, key) {
			continue
		}
		b.WriteString(d.String())
		b.WriteString(" ")
	}
	if value = strings.TrimSpace(value); value != "" {
		d := css.Declaration{Property: key, Value: value}
		b.WriteString(d.String())
	}
	return strings.TrimSpace(b.String())
}

// parseDeclarations parses a declaration list. douceur drops the value of a
// final declaration which is not terminated by a semicolon.
func parseDeclarations(text string) ([]*css.Declaration, error) {
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") {
		text += ";"
	}
	return parser.ParseDeclarations(text)
}
