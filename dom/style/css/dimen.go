package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/onscreen/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f
)

// PX is the size of a CSS pixel: 1px = 0.75pt.
var PX = dimen.PT * 3 / 4

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
*/

// Auto creates a CSS dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Pixels creates a CSS dimension with a fixed value of n CSS pixels.
func Pixels(n float64) DimenT {
	return JustDimen(dimen.DU(n * float64(PX)))
}

// IsUnset is true for the zero value of DimenT.
func (d DimenT) IsUnset() bool {
	return d.flags == dimenNone
}

// IsAuto is true for dimensions of value `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// Px returns the value of a fixed dimension in CSS pixels. For all other kinds of
// dimensions it returns false.
func (d DimenT) Px() (float64, bool) {
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
		return float64(du) / float64(PX), true
	}
	return 0, false
}

func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		px, _ := d.Px()
		return strconv.FormatFloat(px, 'f', -1, 64) + "px"
	}
	return "unset"
}

// ParseDimen creates a dimension from a property string. Supported units are
// px and pt; a bare number is taken as px. It will never return an unset
// dimension together with a nil error.
func ParseDimen(p style.Property) (DimenT, error) {
	s := strings.ToLower(strings.TrimSpace(p.String()))
	switch s {
	case "":
		return DimenT{}, fmt.Errorf("empty dimension")
	case "auto", "none":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	}
	unit := PX
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "pt"):
		s = strings.TrimSuffix(s, "pt")
		unit = dimen.PT
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		tracer().Debugf("cannot parse dimension %q", p)
		return DimenT{}, fmt.Errorf("illegal dimension %q", p)
	}
	return JustDimen(dimen.DU(x * float64(unit))), nil
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on d.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is part of pattern matching for DimenT.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if d is of the same kind as the matched dimension.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	if (m.dimen.flags & kindMask) == (d.flags & kindMask) {
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts the value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}
