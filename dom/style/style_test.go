package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestSplitInset(t *testing.T) {
	kvs, err := SplitCompoundProperty("inset", "3px 5px")
	if err != nil {
		t.Fatal(err)
	}
	expected := []KeyValue{{"top", "3px"}, {"right", "5px"}, {"bottom", "3px"}, {"left", "5px"}}
	for i, kv := range kvs {
		if kv != expected[i] {
			t.Errorf("expected %v at position %d, is %v", expected[i], i, kv)
		}
	}
}

func TestSplitThreeValues(t *testing.T) {
	kvs, err := SplitCompoundProperty("margin", "1 2 3")
	if err != nil {
		t.Fatal(err)
	}
	if kvs[3] != (KeyValue{"margin-left", "2"}) {
		t.Errorf("expected margin-left to mirror margin-right, is %v", kvs[3])
	}
}

func TestSplitIllegal(t *testing.T) {
	if _, err := SplitCompoundProperty("inset", "1 2 3 4 5"); err == nil {
		t.Errorf("expected error for 5 values, got none")
	}
	if _, err := SplitCompoundProperty("color", "red"); err == nil {
		t.Errorf("expected error for non-compound key, got none")
	}
}

func TestPropertyMapAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onscreen.dom")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Add("inset", "10px")
	pmap.Add("WIDTH", " 100PX ")
	pmap.Add("inset", "1 2 3 4 5") // dropped
	if p := pmap.GetPropertyValue("left"); p != "10px" {
		t.Errorf("expected left = 10px, is %q", p)
	}
	if p := pmap.GetPropertyValue("width"); p != "100px" {
		t.Errorf("expected width = 100px, is %q", p)
	}
	if pmap.Group(PGOffsets) == nil {
		t.Errorf("expected group %s to exist", PGOffsets)
	}
	t.Logf("%s", pmap)
}

func TestUserAgentDefaults(t *testing.T) {
	head := &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
	div := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	if d := UserAgentDefaults(head).GetPropertyValue("display"); d != "none" {
		t.Errorf("expected <head> to have display none, has %q", d)
	}
	pmap := UserAgentDefaults(div)
	if d := pmap.GetPropertyValue("display"); d != "block" {
		t.Errorf("expected <div> to have display block, has %q", d)
	}
	if pos := pmap.GetPropertyValue("position"); pos != "static" {
		t.Errorf("expected default position static, is %q", pos)
	}
}

func TestColors(t *testing.T) {
	for _, x := range []struct {
		p        Property
		expected string
	}{
		{"", "powderblue"},
		{"transparent", "powderblue"},
		{"red", "red"},
		{"#f00", "red"},
		{"#00ff00", "green"},
		{"blue", "blue"},
		{"#ffffff", "white"},
		{"yellow", "yellow"},
		{"grey", "gray"},
		{"not-a-color", "black"},
		{"#12", "black"},
	} {
		if c := ColorString(x.p.Color()); c != x.expected {
			t.Errorf("expected %q to be %s, is %s", x.p, x.expected, c)
		}
	}
}
