package style

import (
	"image/color"
	"strconv"
	"strings"
)

// Color interprets a property as a color. It knows a handful of color names
// and hex notation (#rgb and #rrggbb). Empty, initial and transparent values
// result in nil; unknown colors are black.
//
// TODO use standard palette
//
// https://pkg.go.dev/github.com/AntoineAugusti/colors#StringToHexColor
//
func (p Property) Color() color.Color {
	switch v := strings.TrimSpace(string(p)); v {
	case "", "default", "initial", "transparent":
		return nil
	case "red":
		return color.RGBA{0xff, 0, 0, 0xff}
	case "green":
		return color.RGBA{0, 0x80, 0, 0xff}
	case "lime":
		return color.RGBA{0, 0xff, 0, 0xff}
	case "blue":
		return color.RGBA{0, 0, 0xff, 0xff}
	case "yellow":
		return color.RGBA{0xff, 0xff, 0, 0xff}
	case "white":
		return color.White
	case "gray", "grey":
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	default:
		if c, ok := hexColor(v); ok {
			return c
		}
	}
	return color.Black
}

func hexColor(v string) (color.Color, bool) {
	if !strings.HasPrefix(v, "#") {
		return nil, false
	}
	v = v[1:]
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return nil, false
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, true
}

// ColorString returns an X11 color name (understood by GraphViz and CSS)
// roughly matching c. A nil color is rendered as "powderblue".
func ColorString(c color.Color) string {
	if c == nil {
		return "powderblue"
	}
	r, g, b, a := c.RGBA()
	if r == a && g == a && b == a {
		return "white"
	}
	if r == 0 && g == 0 && b == 0 {
		return "black"
	}
	if r == g && g == b {
		return "gray"
	}
	if r >= 0x9000 && g >= 0x9000 {
		return "yellow"
	} else if r >= 0x9000 {
		return "red"
	} else if g >= 0x6000 {
		return "green"
	} else if b >= 0x9000 {
		return "blue"
	}
	return "gray"
}
