// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/azusa"
)

func rgba(c azusa.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// checkRegion verifies every pixel inside r has want and every pixel
// outside has outside.
func checkRegion(t *testing.T, c *Canvas, r image.Rectangle, want, outside azusa.Color) {
	t.Helper()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			exp := outside
			if (image.Point{X: x, Y: y}).In(r) {
				exp = want
			}
			if got := c.RGBAAt(x, y); got != rgba(exp) {
				t.Fatalf("pixel (%d,%d) = %v, want %v (%v)", x, y, got, rgba(exp), exp)
			}
		}
	}
}

func TestNewCanvasBufferLength(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{0, 0, 0},
		{1, 1, 4},
		{100, 50, 100 * 50 * 4},
		{-5, 10, 0},
	}
	for _, tt := range tests {
		c := NewCanvas(tt.w, tt.h)
		if got := len(c.Bytes()); got != tt.want {
			t.Errorf("NewCanvas(%d, %d) buffer = %d bytes, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	for _, size := range []image.Point{{1, 1}, {3, 7}, {64, 64}, {101, 13}} {
		c := NewCanvas(size.X, size.Y)
		c.Clear(azusa.Red)
		r, g, b, a := azusa.Red.RGBA()
		data := c.Bytes()
		for i := 0; i < len(data); i += 4 {
			if data[i] != r || data[i+1] != g || data[i+2] != b || data[i+3] != a {
				t.Fatalf("%v: byte group %d = %v, want red", size, i/4, data[i:i+4])
			}
		}
	}
}

func TestCanvasClearEmpty(t *testing.T) {
	c := NewCanvas(0, 0)
	c.Clear(azusa.Blue) // must not panic
	if len(c.Bytes()) != 0 {
		t.Errorf("buffer length = %d, want 0", len(c.Bytes()))
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(40, 30)
	c.Clear(azusa.White)
	if err := c.FillRect(5, 6, 10, 4, azusa.Green); err != nil {
		t.Fatalf("FillRect: %v", err)
	}
	checkRegion(t, c, image.Rect(5, 6, 15, 10), azusa.Green, azusa.White)
}

func TestCanvasFillRectClipped(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		visible    image.Rectangle
	}{
		{"right edge", 15, 2, 20, 3, image.Rect(15, 2, 20, 5)},
		{"bottom edge", 2, 18, 3, 50, image.Rect(2, 18, 5, 20)},
		{"negative origin", -4, -4, 8, 8, image.Rect(0, 0, 4, 4)},
		{"covers canvas", -10, -10, 100, 100, image.Rect(0, 0, 20, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(20, 20)
			c.Clear(azusa.Black)
			if err := c.FillRect(tt.x, tt.y, tt.w, tt.h, azusa.Yellow); err != nil {
				t.Fatalf("FillRect: %v", err)
			}
			checkRegion(t, c, tt.visible, azusa.Yellow, azusa.Black)
			if len(c.Bytes()) != 20*20*4 {
				t.Errorf("buffer length changed to %d", len(c.Bytes()))
			}
		})
	}
}

func TestCanvasFillRectGeometryErrors(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
	}{
		{"zero width", 1, 1, 0, 5},
		{"zero height", 1, 1, 5, 0},
		{"negative width", 1, 1, -3, 5},
		{"outside right", 25, 1, 5, 5},
		{"outside below", 1, 25, 5, 5},
		{"outside left", -10, 1, 5, 5},
		{"overflow x", math.MaxInt - 2, 0, 10, 10},
		{"overflow y", 0, math.MaxInt, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(20, 20)
			c.Clear(azusa.Black)
			before := bytes.Clone(c.Bytes())

			err := c.FillRect(tt.x, tt.y, tt.w, tt.h, azusa.Red)
			if !errors.Is(err, azusa.ErrGeometry) {
				t.Fatalf("FillRect error = %v, want ErrGeometry", err)
			}
			var ge *azusa.GeometryError
			if !errors.As(err, &ge) {
				t.Fatalf("error %T is not *GeometryError", err)
			}
			if !bytes.Equal(before, c.Bytes()) {
				t.Error("canvas modified by a rejected rectangle")
			}
		})
	}
}

func TestCanvasStrokeRect(t *testing.T) {
	c := NewCanvas(30, 30)
	c.Clear(azusa.White)
	if err := c.StrokeRect(5, 5, 20, 10, 2, azusa.Navy); err != nil {
		t.Fatalf("StrokeRect: %v", err)
	}
	outer := image.Rect(5, 5, 25, 15)
	inner := image.Rect(7, 7, 23, 13)
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			p := image.Point{X: x, Y: y}
			want := azusa.White
			if p.In(outer) && !p.In(inner) {
				want = azusa.Navy
			}
			if got := c.RGBAAt(x, y); got != rgba(want) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCanvasStrokeRectThick(t *testing.T) {
	// A stroke reaching the middle fills the rectangle.
	c := NewCanvas(10, 10)
	c.Clear(azusa.White)
	if err := c.StrokeRect(2, 2, 6, 4, 2, azusa.Teal); err != nil {
		t.Fatalf("StrokeRect: %v", err)
	}
	checkRegion(t, c, image.Rect(2, 2, 8, 6), azusa.Teal, azusa.White)
}

func TestCanvasStrokeRectClipped(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(azusa.White)
	if err := c.StrokeRect(-5, -5, 12, 12, 1, azusa.Red); err != nil {
		t.Fatalf("StrokeRect: %v", err)
	}
	// Only the right and bottom edges (x=6, y=6) are inside the canvas.
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := azusa.White
			if (x == 6 && y <= 6) || (y == 6 && x <= 6) {
				want = azusa.Red
			}
			if got := c.RGBAAt(x, y); got != rgba(want) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCanvasStrokeRectBadThickness(t *testing.T) {
	c := NewCanvas(10, 10)
	for _, th := range []int{0, -1} {
		if err := c.StrokeRect(1, 1, 5, 5, th, azusa.Red); !errors.Is(err, azusa.ErrGeometry) {
			t.Errorf("thickness %d: error = %v, want ErrGeometry", th, err)
		}
	}
}

// TestFillRectangleBorderThenFill checks the composite draws the border
// first and the interior afterwards.
func TestFillRectangleBorderThenFill(t *testing.T) {
	c := NewCanvas(50, 50)
	c.Clear(azusa.White)
	err := c.Execute(azusa.FillRectangleCommand{
		Fill: azusa.Blue, Border: azusa.Red,
		X: 10, Y: 10, Width: 20, Height: 20,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for i := 10; i <= 29; i++ {
		for _, p := range []image.Point{{i, 10}, {i, 29}, {10, i}, {29, i}} {
			if got := c.RGBAAt(p.X, p.Y); got != rgba(azusa.Red) {
				t.Fatalf("border pixel %v = %v, want red", p, got)
			}
		}
	}
	for y := 11; y <= 28; y++ {
		for x := 11; x <= 28; x++ {
			if got := c.RGBAAt(x, y); got != rgba(azusa.Blue) {
				t.Fatalf("interior pixel (%d,%d) = %v, want blue", x, y, got)
			}
		}
	}
	if got := c.RGBAAt(9, 9); got != rgba(azusa.White) {
		t.Errorf("outside pixel = %v, want white", got)
	}
	if got := c.RGBAAt(30, 30); got != rgba(azusa.White) {
		t.Errorf("outside pixel = %v, want white", got)
	}
}

func TestFillRectangleSmall(t *testing.T) {
	// 2x2 has no interior: border only.
	c := NewCanvas(5, 5)
	c.Clear(azusa.White)
	err := c.Execute(azusa.FillRectangleCommand{
		Fill: azusa.Blue, Border: azusa.Red, X: 1, Y: 1, Width: 2, Height: 2,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	checkRegion(t, c, image.Rect(1, 1, 3, 3), azusa.Red, azusa.White)
}

func TestFillRectangleClippedRightEdge(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(azusa.White)
	err := c.Execute(azusa.FillRectangleCommand{
		Fill: azusa.Blue, Border: azusa.Red, X: 10, Y: 5, Width: 30, Height: 10,
	})
	if err != nil {
		t.Fatalf("clipped FillRectangle returned %v, want nil", err)
	}
	// Left border column and interior up to the canvas edge.
	if got := c.RGBAAt(10, 8); got != rgba(azusa.Red) {
		t.Errorf("left border = %v, want red", got)
	}
	if got := c.RGBAAt(19, 8); got != rgba(azusa.Blue) {
		t.Errorf("interior at canvas edge = %v, want blue", got)
	}
	if got := c.RGBAAt(19, 5); got != rgba(azusa.Red) {
		t.Errorf("top border at canvas edge = %v, want red", got)
	}
}

func TestExecuteAttachesCommand(t *testing.T) {
	c := NewCanvas(10, 10)
	cmd := azusa.DrawRectangleCommand{Color: azusa.Red, X: 50, Y: 50, Width: 5, Height: 5, Thickness: 1}
	err := c.Execute(cmd)
	var ge *azusa.GeometryError
	if !errors.As(err, &ge) {
		t.Fatalf("Execute error = %v, want *GeometryError", err)
	}
	if ge.Command != cmd {
		t.Errorf("GeometryError.Command = %v, want %v", ge.Command, cmd)
	}
}

func TestReplaySkipsInvalidCommands(t *testing.T) {
	var skipped []azusa.Command
	c := NewCanvas(10, 10, WithObserver(ObserverFunc(func(cmd azusa.Command, err error) {
		if !errors.Is(err, azusa.ErrGeometry) {
			t.Errorf("observer got %v, want geometry error", err)
		}
		skipped = append(skipped, cmd)
	})))

	bad := azusa.FillRectangleCommand{Fill: azusa.Red, Border: azusa.Red, X: 100, Y: 100, Width: 5, Height: 5}
	n := c.Replay([]azusa.Command{
		azusa.ClearCommand{Color: azusa.White},
		bad,
		azusa.FillRectangleCommand{Fill: azusa.Green, Border: azusa.Green, X: 0, Y: 0, Width: 10, Height: 10},
	})
	if n != 1 {
		t.Errorf("Replay skipped %d commands, want 1", n)
	}
	if len(skipped) != 1 || skipped[0] != bad {
		t.Errorf("observer saw %v, want [%v]", skipped, bad)
	}
	checkRegion(t, c, c.Bounds(), azusa.Green, azusa.Green)
}

// TestReplayPainterOrder checks later commands overwrite earlier ones.
func TestReplayPainterOrder(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Replay([]azusa.Command{
		azusa.ClearCommand{Color: azusa.White},
		azusa.FillRectangleCommand{Fill: azusa.Red, Border: azusa.Red, X: 0, Y: 0, Width: 6, Height: 6},
		azusa.FillRectangleCommand{Fill: azusa.Blue, Border: azusa.Blue, X: 3, Y: 3, Width: 6, Height: 6},
	})
	if got := c.RGBAAt(4, 4); got != rgba(azusa.Blue) {
		t.Errorf("overlap = %v, want blue", got)
	}
	if got := c.RGBAAt(1, 1); got != rgba(azusa.Red) {
		t.Errorf("first only = %v, want red", got)
	}
}

func TestReplayIdempotent(t *testing.T) {
	cmds := []azusa.Command{
		azusa.ClearCommand{Color: azusa.Silver},
		azusa.FillRectangleCommand{Fill: azusa.Olive, Border: azusa.Maroon, X: 3, Y: 4, Width: 30, Height: 12},
		azusa.DrawRectangleCommand{Color: azusa.Purple, X: 10, Y: 10, Width: 40, Height: 40, Thickness: 3},
		azusa.FillRectangleCommand{Fill: azusa.Lime, Border: azusa.Lime, X: 60, Y: 60, Width: 10, Height: 10},
	}
	a := NewCanvas(48, 48)
	b := NewCanvas(48, 48)
	a.Replay(cmds)
	b.Replay(cmds)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("replaying the same commands produced different buffers")
	}
}

type recordingText struct {
	calls []azusa.DrawTextCommand
	err   error
}

func (r *recordingText) DrawText(dst *image.RGBA, cmd azusa.DrawTextCommand) error {
	r.calls = append(r.calls, cmd)
	dst.SetRGBA(cmd.X, cmd.Y, rgba(cmd.Color))
	return r.err
}

func TestDrawTextWithoutRendererIsNoop(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(azusa.White)
	before := bytes.Clone(c.Bytes())
	if err := c.Execute(azusa.DrawTextCommand{Color: azusa.Black, X: 1, Y: 1, Width: 8, Height: 8, Text: "hi"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !bytes.Equal(before, c.Bytes()) {
		t.Error("DrawText without renderer modified the canvas")
	}
}

func TestDrawTextDelegates(t *testing.T) {
	tr := &recordingText{}
	c := NewCanvas(10, 10, WithTextRenderer(tr))
	c.Clear(azusa.White)
	cmd := azusa.DrawTextCommand{Color: azusa.Red, X: 2, Y: 3, Width: 5, Height: 5, Text: "x"}
	if err := c.Execute(cmd); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(tr.calls) != 1 || tr.calls[0] != cmd {
		t.Fatalf("renderer calls = %v, want [%v]", tr.calls, cmd)
	}
	// The renderer draws into the canvas memory.
	if got := c.RGBAAt(2, 3); got != rgba(azusa.Red) {
		t.Errorf("pixel written by renderer = %v, want red", got)
	}
}

func TestDrawTextRendererErrorSkipped(t *testing.T) {
	tr := &recordingText{err: errors.New("no glyphs")}
	var seen int
	c := NewCanvas(10, 10, WithTextRenderer(tr), WithObserver(ObserverFunc(func(azusa.Command, error) { seen++ })))
	n := c.Replay([]azusa.Command{
		azusa.ClearCommand{Color: azusa.White},
		azusa.DrawTextCommand{Text: "x", Width: 5, Height: 5},
	})
	if n != 1 || seen != 1 {
		t.Errorf("skipped = %d, observed = %d, want 1 and 1", n, seen)
	}
}

func TestCanvasImageSharesMemory(t *testing.T) {
	c := NewCanvas(4, 4)
	img := c.Image()
	c.Clear(azusa.Aqua)
	if got := img.RGBAAt(3, 3); got != rgba(azusa.Aqua) {
		t.Errorf("image view = %v, want aqua", got)
	}
	if img.Bounds() != c.Bounds() {
		t.Errorf("image bounds = %v, want %v", img.Bounds(), c.Bounds())
	}
}

func TestRGBAAtOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(azusa.White)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if got := c.RGBAAt(p.X, p.Y); got != (color.RGBA{}) {
			t.Errorf("RGBAAt(%v) = %v, want zero", p, got)
		}
	}
}
