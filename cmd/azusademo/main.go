// Command azusademo records a demo frame and renders it to an image file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/azusa"
	"github.com/gogpu/azusa/raster"
	"github.com/gogpu/azusa/text"
	"github.com/gogpu/azusa/web"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo", "output file name without extension")
		dir     = flag.String("dir", "", "output directory")
		format  = flag.String("format", "png", "image format: png, bmp, tiff or none")
		bg      = flag.String("color", "navy", "background color (CSS name or hex)")
		family  = flag.String("font", "", "font family for text; empty uses the embedded Go font")
		noText  = flag.Bool("notext", false, "skip text rendering")
		webCopy = flag.Bool("web", false, "also render through the canvas surface to <output>-web.png")
		verbose = flag.Bool("v", false, "log rendering details to stderr")
	)
	flag.Parse()

	if *verbose {
		azusa.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	f, err := raster.ParseFormat(*format)
	if err != nil {
		log.Fatalf("Invalid format: %v", err)
	}
	background, err := azusa.ParseColor(*bg)
	if err != nil {
		log.Fatalf("Invalid color: %v", err)
	}

	opts := []raster.Option{
		raster.WithOutputDir(*dir),
		raster.WithObserver(raster.ObserverFunc(func(cmd azusa.Command, err error) {
			log.Printf("Skipped %v: %v", cmd, err)
		})),
	}
	if !*noText {
		opts = append(opts, raster.WithTextRenderer(text.NewRenderer()))
	}

	dc := azusa.NewContext()
	drawDemo(dc, background, *family, *width, *height)

	s := raster.NewSurface(*width, *height, *output, f, opts...)
	if err := dc.Replay(s); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if p := s.Path(); p != "" {
		log.Printf("Demo saved to %s (%dx%d, %d commands)\n", p, *width, *height, dc.Len())
	}

	if *webCopy {
		o := web.NewOffscreen(*width, *height)
		if err := dc.Replay(web.NewSurface(o)); err != nil {
			log.Fatalf("Failed to render canvas copy: %v", err)
		}
		if err := o.SavePNG(*output + "-web.png"); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	}
}

func drawDemo(dc *azusa.Context, background azusa.Color, family string, w, h int) {
	dc.SetSourceColor(background)
	dc.Clear()

	// Palette swatches along the top.
	colors := azusa.Colors()
	swatch := w / (len(colors) + 1)
	for i, c := range colors {
		dc.SetSourceColor(c)
		dc.SetBorderColor(azusa.White)
		dc.MoveTo(swatch/2+i*swatch, 20)
		dc.FillRectangle(swatch-4, swatch-4)
	}

	// Nested outlines of growing thickness.
	dc.SetSourceColor(azusa.Yellow)
	for i := 1; i <= 4; i++ {
		inset := i * 16
		dc.MoveTo(inset, h/3+inset/2)
		dc.DrawRectangle(i, w/2-2*inset, h/2-inset)
	}

	// A rectangle hanging off the bottom right edge is clipped.
	dc.SetSourceColor(azusa.Teal)
	dc.SetBorderColor(azusa.Aqua)
	dc.MoveTo(w-80, h-60)
	dc.FillRectangle(160, 120)

	font := azusa.Font{Family: family, Size: 20}
	dc.SetSourceColor(azusa.White)
	dc.MoveTo(w/2+20, h/3)
	dc.DrawText(w/2-40, h/3, "azusa records commands and replays them on any surface. "+
		"This paragraph wraps inside its box.", font)

	font.Italic, font.Underline = true, true
	dc.SetSourceColor(azusa.Lime)
	dc.MoveTo(w/2+20, h/3+h/4)
	dc.DrawText(w/2-40, h/6, "שלום עולם", font)
}
