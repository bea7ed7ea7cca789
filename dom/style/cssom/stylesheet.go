package cssom

import (
	"sort"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/onscreen/dom/style"
	"golang.org/x/net/html"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// computation of node styles, we introduce an interface
// for CSS stylesheets. Clients will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Styler matches the rules of a set of stylesheets against HTML nodes.
// Selectors are compiled once, when the Styler is created. Rules with
// selectors cascadia cannot parse (e.g., at-rules) are skipped.
type Styler struct {
	rules []compiledRule
}

type compiledRule struct {
	rule     Rule
	selector cascadia.SelectorGroup
	order    int
}

// NewStyler creates a Styler for a list of stylesheets, in order of precedence
// (later sheets win over earlier ones for equal specificity).
func NewStyler(sheets ...StyleSheet) *Styler {
	st := &Styler{}
	for _, sheet := range sheets {
		if sheet == nil || sheet.Empty() {
			continue
		}
		for _, r := range sheet.Rules() {
			sel, err := cascadia.ParseGroup(r.Selector())
			if err != nil {
				tracer().Debugf("styling: skipping rule %q: %v", r.Selector(), err)
				continue
			}
			st.rules = append(st.rules, compiledRule{rule: r, selector: sel, order: len(st.rules)})
		}
	}
	return st
}

// RuleCount returns the number of usable rules.
func (st *Styler) RuleCount() int {
	if st == nil {
		return 0
	}
	return len(st.rules)
}

type match struct {
	rule        Rule
	specificity cascadia.Specificity
	order       int
}

// StylesFor computes the styles for an HTML element node: user-agent defaults,
// overridden by matching rules in order of specificity and source order,
// overridden by declarations marked as `!important`.
func (st *Styler) StylesFor(node *html.Node) *style.PropertyMap {
	pmap := style.UserAgentDefaults(node)
	if st == nil || node == nil || node.Type != html.ElementNode {
		return pmap
	}
	var matches []match
	for _, cr := range st.rules {
		matched := false
		var spec cascadia.Specificity
		for _, sel := range cr.selector {
			if sel.Match(node) {
				if !matched || spec.Less(sel.Specificity()) {
					spec = sel.Specificity()
				}
				matched = true
			}
		}
		if matched {
			matches = append(matches, match{rule: cr.rule, specificity: spec, order: cr.order})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].specificity == matches[j].specificity {
			return matches[i].order < matches[j].order
		}
		return matches[i].specificity.Less(matches[j].specificity)
	})
	for _, important := range []bool{false, true} {
		for _, m := range matches {
			for _, key := range m.rule.Properties() {
				if m.rule.IsImportant(key) == important {
					pmap.Add(key, m.rule.Value(key))
				}
			}
		}
	}
	return pmap
}
