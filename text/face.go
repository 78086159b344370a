package text

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/sysfont"
	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/azusa"
)

// source is one parsed font file. The sfnt font draws glyphs; the
// go-text face shapes runs for measurement.
type source struct {
	name  string
	draw  *sfnt.Font
	shape *gotext.Face
}

func parseSource(name string, data []byte) (*source, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse %s: %w", name, err)
	}
	shape, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse %s for shaping: %w", name, err)
	}
	return &source{name: name, draw: f, shape: shape}, nil
}

// face is a source at one pixel size.
type face struct {
	src  *source
	size int
	draw font.Face
}

type faceKey struct {
	family string
	italic bool
	size   int
}

// face returns the cached face for f, loading it on first use.
func (r *Renderer) face(f azusa.Font) (*face, error) {
	key := faceKey{family: strings.ToLower(f.Family), italic: f.Italic, size: f.PixelSize()}
	if fc, ok := r.faces[key]; ok {
		return fc, nil
	}

	src, err := r.source(key.family, key.italic)
	if err != nil {
		return nil, err
	}
	drawFace, err := opentype.NewFace(src.draw, &opentype.FaceOptions{
		Size:    float64(key.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: face %s %dpx: %w", src.name, key.size, err)
	}

	fc := &face{src: src, size: key.size, draw: drawFace}
	r.faces[key] = fc
	return fc, nil
}

type sourceKey struct {
	family string
	italic bool
}

// source resolves a family through the system font finder, falling back
// to the embedded Go fonts.
func (r *Renderer) source(family string, italic bool) (*source, error) {
	key := sourceKey{family: family, italic: italic}
	if src, ok := r.sources[key]; ok {
		return src, nil
	}

	var src *source
	if family != "" && r.opts.systemFonts {
		src = r.systemSource(family, italic)
	}
	if src == nil {
		var err error
		src, err = r.fallbackSource(italic)
		if err != nil {
			return nil, err
		}
	}
	r.sources[key] = src
	return src, nil
}

func (r *Renderer) systemSource(family string, italic bool) *source {
	if r.finder == nil {
		r.finder = sysfont.NewFinder(nil)
	}
	query := family
	if italic {
		query += " italic"
	}
	match := r.finder.Match(query)
	if match == nil {
		r.opts.logger.Debug("text: no system font", "family", family)
		return nil
	}
	data, err := os.ReadFile(match.Filename)
	if err != nil {
		r.opts.logger.Warn("text: read system font", "file", match.Filename, "error", err)
		return nil
	}
	src, err := parseSource(match.Name, data)
	if err != nil {
		// Collections and bitmap fonts end up here.
		r.opts.logger.Warn("text: unusable system font", "file", match.Filename, "error", err)
		return nil
	}
	r.opts.logger.Debug("text: system font selected", "family", family, "file", match.Filename)
	return src
}

func (r *Renderer) fallbackSource(italic bool) (*source, error) {
	switch {
	case r.opts.fontData != nil:
		return parseSource("custom", r.opts.fontData)
	case italic:
		return parseSource("Go Italic", goitalic.TTF)
	default:
		return parseSource("Go Regular", goregular.TTF)
	}
}
