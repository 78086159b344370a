// Command azusawindow draws a recorded frame into an SDL window.
//
// Press s to save the current frame as a PNG through the raster surface,
// q or Escape to quit.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/azusa"
	"github.com/gogpu/azusa/raster"
	"github.com/gogpu/azusa/text"
	"github.com/gogpu/azusa/window"
	sdlwin "github.com/gogpu/azusa/window/sdl"
)

func main() {
	var (
		width   = flag.Int("width", 640, "initial window width")
		height  = flag.Int("height", 480, "initial window height")
		output  = flag.String("output", "snapshot", "snapshot file name without extension")
		verbose = flag.Bool("v", false, "log rendering details to stderr")
	)
	flag.Parse()

	if *verbose {
		azusa.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatalf("Could not init sdl: %v", err)
	}
	defer sdl.Quit()

	win, err := sdl.CreateWindow("azusa", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(*width), int32(*height), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		log.Fatalf("Could not create window: %v", err)
	}
	defer win.Destroy()

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		log.Fatalf("Could not create renderer: %v", err)
	}
	defer renderer.Destroy()

	s, err := window.NewSurface(sdlwin.Handle(renderer))
	if err != nil {
		log.Fatalf("Could not create surface: %v", err)
	}
	snapshot := raster.NewSurface(0, 0, *output, raster.FormatPNG,
		raster.WithTextRenderer(text.NewRenderer()))

	mainloop(s, snapshot)
}

func mainloop(s *window.Surface, snapshot *raster.Surface) {
	dc := azusa.NewContext()
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return
			case *sdl.KeyboardEvent:
				if e.State != sdl.PRESSED {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_q, sdl.K_ESCAPE:
					return
				case sdl.K_s:
					snapshot.Resize(s.ClientSize())
					if err := dc.Replay(snapshot); err != nil {
						log.Printf("Snapshot failed: %v", err)
					} else {
						log.Printf("Snapshot saved to %s", snapshot.Path())
					}
				}
			}
		}

		w, h := s.ClientSize()
		drawFrame(dc, w, h)
		if err := dc.Replay(s); err != nil {
			log.Printf("Draw failed: %v", err)
		}
		sdl.Delay(16)
	}
}

// drawFrame records a frame laid out for a w by h client area.
func drawFrame(dc *azusa.Context, w, h int) {
	dc.SetSourceColor(azusa.Navy)
	dc.Clear()

	dc.SetSourceColor(azusa.Silver)
	dc.SetBorderColor(azusa.White)
	dc.MoveTo(w/8, h/8)
	dc.FillRectangle(w*3/4, h*3/4)

	dc.SetSourceColor(azusa.Red)
	dc.MoveTo(w/4, h/4)
	dc.DrawRectangle(3, w/2, h/2)

	dc.SetSourceColor(azusa.Black)
	dc.MoveTo(w/4+8, h/4+8)
	dc.DrawText(w/2-16, h/2-16, "Press s to save a snapshot.", azusa.NewFont(18, false, false))
}
