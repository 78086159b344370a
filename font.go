package azusa

import "fmt"

// DefaultFontSize is the pixel size used by the zero Font.
const DefaultFontSize = 14

// Font describes the face requested by a DrawText command.
// The core carries it opaquely; surfaces and text renderers interpret it.
type Font struct {
	// Family is a system font family name. Empty selects the renderer's default.
	Family string

	// Size is the nominal pixel height. Zero means DefaultFontSize.
	Size int

	Italic    bool
	Underline bool
}

// NewFont returns a Font of the default family.
func NewFont(size int, italic, underline bool) Font {
	return Font{Size: size, Italic: italic, Underline: underline}
}

// PixelSize returns Size, or DefaultFontSize when Size is not positive.
func (f Font) PixelSize() int {
	if f.Size <= 0 {
		return DefaultFontSize
	}
	return f.Size
}

func (f Font) String() string {
	family := f.Family
	if family == "" {
		family = "default"
	}
	s := fmt.Sprintf("%s %dpx", family, f.PixelSize())
	if f.Italic {
		s += " italic"
	}
	if f.Underline {
		s += " underline"
	}
	return s
}
