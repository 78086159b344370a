package text

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/adrg/sysfont"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/azusa"
)

// Renderer draws DrawText commands into RGBA images. It resolves font
// families to installed fonts, wraps text at break opportunities inside
// the command's box and lays out mixed-direction lines.
//
// Glyph coverage is thresholded so that every written pixel carries the
// exact command color. Pixels outside the box are never touched.
//
// Renderer is safe for concurrent use.
type Renderer struct {
	mu      sync.Mutex
	opts    options
	finder  *sysfont.Finder
	faces   map[faceKey]*face
	sources map[sourceKey]*source
	shaper  shaping.HarfbuzzShaper
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...Option) *Renderer {
	return &Renderer{
		opts:    buildOptions(opts),
		faces:   make(map[faceKey]*face),
		sources: make(map[sourceKey]*source),
	}
}

// DrawText renders cmd into dst. The box of the command is clipped to
// dst; a box with nothing left after clipping is an *azusa.GeometryError.
func (r *Renderer) DrawText(dst *image.RGBA, cmd azusa.DrawTextCommand) error {
	box, err := textBox(dst.Bounds(), cmd)
	if err != nil {
		return err
	}
	if cmd.Text == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	fc, err := r.face(cmd.Font)
	if err != nil {
		return err
	}

	metrics := fc.draw.Metrics()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = fc.size
	}
	ascent := metrics.Ascent.Ceil()
	bottom := cmd.Y + cmd.Height
	col := pixel(cmd.Color)

	lines := wrap(cmd.Text, cmd.Width, func(s string) int { return r.measure(fc, s) })
	for i, line := range lines {
		top := cmd.Y + i*lineHeight
		if top >= bottom {
			break
		}
		if line == "" {
			continue
		}

		rtl := baseRTL(line)
		width := r.measure(fc, line)
		x := cmd.X
		if rtl {
			x = cmd.X + cmd.Width - width
		}
		baseline := top + ascent

		drawLine(dst, box, fc.draw, visualRuns(line, rtl), x, baseline, col)
		if cmd.Font.Underline {
			fillRow(dst, box, x, x+width, baseline+1, col)
		}
	}
	return nil
}

// measure returns the shaped advance of s in whole pixels.
func (r *Renderer) measure(fc *face, s string) int {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	dir := di.DirectionLTR
	if baseRTL(s) {
		dir = di.DirectionRTL
	}
	out := r.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      fc.src.shape,
		Size:      fixed.I(fc.size),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	})
	return out.Advance.Ceil()
}

func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); s != language.Common && s != language.Inherited {
			return s
		}
	}
	return language.Latin
}

// textBox validates the command box and clips it to bounds.
func textBox(bounds image.Rectangle, cmd azusa.DrawTextCommand) (image.Rectangle, error) {
	if cmd.Width < 0 || cmd.Height < 0 {
		return image.Rectangle{}, &azusa.GeometryError{
			Reason: fmt.Sprintf("negative text box %dx%d", cmd.Width, cmd.Height),
		}
	}
	if cmd.X > math.MaxInt-cmd.Width || cmd.Y > math.MaxInt-cmd.Height {
		return image.Rectangle{}, &azusa.GeometryError{
			Reason: fmt.Sprintf("text box %dx%d at (%d,%d) overflows", cmd.Width, cmd.Height, cmd.X, cmd.Y),
		}
	}
	req := image.Rect(cmd.X, cmd.Y, cmd.X+cmd.Width, cmd.Y+cmd.Height)
	box := req.Intersect(bounds)
	if box.Empty() {
		return box, &azusa.GeometryError{
			Rect:   req,
			Reason: fmt.Sprintf("text box empty after clipping to %v", bounds.Size()),
		}
	}
	return box, nil
}

// drawLine draws runs left to right starting at x on the given baseline.
func drawLine(dst *image.RGBA, box image.Rectangle, f font.Face, runs []run, x, baseline int, col [4]uint8) {
	dot := fixed.P(x, baseline)
	prev := rune(-1)
	for _, rn := range runs {
		for _, c := range rn.visualRunes() {
			if prev >= 0 {
				dot.X += f.Kern(prev, c)
			}
			dr, mask, mp, advance, ok := f.Glyph(dot, c)
			if ok {
				drawMask(dst, box, dr, mask, mp, col)
			}
			dot.X += advance
			prev = c
		}
	}
}

// drawMask writes col wherever mask covers at least half of a pixel.
func drawMask(dst *image.RGBA, box, dr image.Rectangle, mask image.Image, mp image.Point, col [4]uint8) {
	clip := dr.Intersect(box)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
			if a < 0x8000 {
				continue
			}
			i := dst.PixOffset(x, y)
			copy(dst.Pix[i:i+4], col[:])
		}
	}
}

func fillRow(dst *image.RGBA, box image.Rectangle, x0, x1, y int, col [4]uint8) {
	row := image.Rect(x0, y, x1, y+1).Intersect(box)
	for x := row.Min.X; x < row.Max.X; x++ {
		i := dst.PixOffset(x, row.Min.Y)
		copy(dst.Pix[i:i+4], col[:])
	}
}

func pixel(c azusa.Color) [4]uint8 {
	r, g, b, a := c.RGBA()
	return [4]uint8{r, g, b, a}
}
