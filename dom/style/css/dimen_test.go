package css_test

import (
	"testing"

	"github.com/npillmayer/onscreen/dom/style"
	"github.com/npillmayer/onscreen/dom/style/css"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}
}

func TestDimenParse(t *testing.T) {
	for _, c := range []struct {
		in string
		px float64
	}{
		{"12px", 12}, {"12", 12}, {" 0 ", 0}, {"-4px", -4}, {"100PX", 100},
	} {
		d, err := css.ParseDimen(style.Property(c.in))
		if err != nil {
			t.Errorf("unexpected error for %q: %v", c.in, err)
			continue
		}
		if px, ok := d.Px(); !ok || px != c.px {
			t.Errorf("expected %q to be %gpx, is %v", c.in, c.px, d)
		}
	}
	if d, err := css.ParseDimen("auto"); err != nil || !d.IsAuto() {
		t.Errorf("expected auto, is %v (%v)", d, err)
	}
	if _, err := css.ParseDimen("12em"); err == nil {
		t.Errorf("expected error for unsupported unit")
	}
	if _, err := css.ParseDimen(""); err == nil {
		t.Errorf("expected error for empty dimension")
	}
}

func TestDisplay(t *testing.T) {
	d, err := css.ParseDisplay("none")
	if err != nil || !d.IsNone() {
		t.Errorf("expected display none, is %v", d)
	}
	d, err = css.ParseDisplay("table-row-group")
	if err == nil {
		t.Errorf("expected error for unsupported display, have %v", d)
	}
	if !d.Contains(css.BlockMode) {
		t.Errorf("expected fallback to block mode, is %v", d)
	}
}
