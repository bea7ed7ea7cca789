package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/onscreen/dom/style"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	FlexMode        DisplayMode = 0x0040 // CSS inner display = flex
	GridMode        DisplayMode = 0x0080 // CSS inner display = grid
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ListItemMode, FlexMode,
	GridMode, InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	DisplayNone:     "none",
	BlockMode:       "block",
	InlineMode:      "inline",
	ListItemMode:    "list-item",
	FlexMode:        "flex",
	GridMode:        "grid",
	InnerBlockMode:  "inner-block",
	InnerInlineMode: "inner-inline",
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// IsNone is true if boxes with this mode are not generated at all.
func (disp DisplayMode) IsNone() bool {
	return disp.Contains(DisplayNone)
}

// String returns all atomic modes set in a display mode.
func (disp DisplayMode) String() string {
	if disp == NoMode {
		return "no-mode"
	}
	var names []string
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			names = append(names, displayModeNames[m])
		}
	}
	return strings.Join(names, " ")
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp.IsNone() {
		return "∅"
	} else if disp.Contains(BlockMode) || disp.Contains(InnerBlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) || disp.Contains(InnerInlineMode) {
		return "►"
	} else if disp.Contains(FlexMode) {
		return "▤"
	} else if disp.Contains(GridMode) {
		return "◰"
	} else if disp.Contains(ListItemMode) {
		return "▣"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display property (outer and inner).
// Unknown values are mapped to BlockMode, together with an error.
func ParseDisplay(display style.Property) (DisplayMode, error) {
	switch display {
	case "":
		return NoMode, nil
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode | InnerBlockMode, nil
	case "inline":
		return InlineMode | InnerInlineMode, nil
	case "list-item":
		return ListItemMode | BlockMode, nil
	case "block-inline":
		return BlockMode | InnerInlineMode, nil
	case "inline-block":
		return InlineMode | InnerBlockMode, nil
	case "flex":
		return BlockMode | FlexMode, nil
	case "grid":
		return BlockMode | GridMode, nil
	}
	return BlockMode, fmt.Errorf("unknown display mode: %s", display)
}
