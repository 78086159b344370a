// Package text renders DrawText commands for the raster backend.
//
// A Renderer resolves the family of an azusa.Font through the installed
// system fonts (github.com/adrg/sysfont) and falls back to the embedded Go
// fonts. Lines are measured with the go-text HarfBuzz shaper, wrapped at
// UAX #14 style break opportunities and reordered with the Unicode
// bidirectional algorithm. Right-to-left lines are aligned to the right
// edge of the box.
//
// # Usage
//
//	s := raster.NewSurface(640, 480, "page", raster.FormatPNG,
//	    raster.WithTextRenderer(text.NewRenderer()),
//	)
//
// Glyphs are written without blending: a pixel is set to the command color
// when the glyph covers at least half of it. Lines whose top lies at or below
// the bottom of the box are dropped and partial lines are clipped.
package text
