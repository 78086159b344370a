package azusa

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// Color is a symbolic color from the fixed azusa palette.
// Every Color maps to exactly one RGBA8 quadruple; see [Color.RGBA].
//
// To extend the palette add a constant and a row in colorTable.
type Color uint8

// Palette. The values are the CSS basic color keywords.
const (
	Black Color = iota
	Silver
	Gray
	White
	Maroon
	Red
	Purple
	Fuchsia
	Green
	Lime
	Olive
	Yellow
	Navy
	Blue
	Teal
	Aqua
	Transparent

	numColors
)

type colorEntry struct {
	name       string
	r, g, b, a uint8
}

// colorTable is indexed by Color.
var colorTable = [numColors]colorEntry{
	Black:       {"black", 0x00, 0x00, 0x00, 0xff},
	Silver:      {"silver", 0xc0, 0xc0, 0xc0, 0xff},
	Gray:        {"gray", 0x80, 0x80, 0x80, 0xff},
	White:       {"white", 0xff, 0xff, 0xff, 0xff},
	Maroon:      {"maroon", 0x80, 0x00, 0x00, 0xff},
	Red:         {"red", 0xff, 0x00, 0x00, 0xff},
	Purple:      {"purple", 0x80, 0x00, 0x80, 0xff},
	Fuchsia:     {"fuchsia", 0xff, 0x00, 0xff, 0xff},
	Green:       {"green", 0x00, 0x80, 0x00, 0xff},
	Lime:        {"lime", 0x00, 0xff, 0x00, 0xff},
	Olive:       {"olive", 0x80, 0x80, 0x00, 0xff},
	Yellow:      {"yellow", 0xff, 0xff, 0x00, 0xff},
	Navy:        {"navy", 0x00, 0x00, 0x80, 0xff},
	Blue:        {"blue", 0x00, 0x00, 0xff, 0xff},
	Teal:        {"teal", 0x00, 0x80, 0x80, 0xff},
	Aqua:        {"aqua", 0x00, 0xff, 0xff, 0xff},
	Transparent: {"transparent", 0x00, 0x00, 0x00, 0x00},
}

// Colors returns every palette entry in declaration order.
func Colors() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// Valid reports whether c is a palette entry.
func (c Color) Valid() bool {
	return c < numColors
}

// RGBA returns the 8-bit channels of c.
// Values outside the palette map to opaque black so the mapping stays total.
func (c Color) RGBA() (r, g, b, a uint8) {
	if !c.Valid() {
		c = Black
	}
	e := colorTable[c]
	return e.r, e.g, e.b, e.a
}

// NRGBA converts c to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// CSS returns c formatted as a CSS rgba() string, the form expected by
// canvas fill styles.
func (c Color) CSS() string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", r, g, b, a)
}

// String returns the palette name of c.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorTable[c].name
}

// ParseColor resolves s to a palette color.
// It accepts palette names in any case, then any CSS color syntax
// ("#000080", "rgb(0 0 128)", "navy") whose RGBA8 value is exactly a
// palette entry.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, e := range colorTable {
		if e.name == name {
			return Color(i), nil
		}
	}

	parsed, err := csscolorparser.Parse(name)
	if err != nil {
		return Black, fmt.Errorf("azusa: parse color %q: %w", s, err)
	}
	r, g, b, a := parsed.RGBA255()
	for i, e := range colorTable {
		if e.r == r && e.g == g && e.b == b && e.a == a {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("azusa: color %q (#%02x%02x%02x%02x) is not in the palette", s, r, g, b, a)
}
