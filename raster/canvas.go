// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/gogpu/azusa"
)

// Canvas is a row-major RGBA8 pixel buffer that executes azusa commands.
//
// The buffer always holds exactly Width()*Height()*4 bytes, top row
// first, channels in R, G, B, A order. Every write is clipped to the
// canvas bounds; nothing wraps around to another row.
type Canvas struct {
	width  int
	height int
	pix    []uint8

	opts options
}

// NewCanvas creates a canvas of the given size. Negative sizes are
// treated as zero. The initial contents are transparent black.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
		opts:   buildOptions(opts),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Bytes returns the pixel buffer in the layout image encoders expect.
// The slice aliases the canvas and must be treated as read-only.
func (c *Canvas) Bytes() []uint8 {
	return c.pix
}

// Image returns an *image.RGBA view sharing the canvas memory.
func (c *Canvas) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    c.pix,
		Stride: c.width * 4,
		Rect:   c.Bounds(),
	}
}

// RGBAAt returns the pixel at (x, y), or the zero color outside the canvas.
func (c *Canvas) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.RGBA{}
	}
	i := (y*c.width + x) * 4
	return color.RGBA{R: c.pix[i+0], G: c.pix[i+1], B: c.pix[i+2], A: c.pix[i+3]}
}

// Clear sets every pixel to col.
func (c *Canvas) Clear(col azusa.Color) {
	if len(c.pix) == 0 {
		return
	}
	r, g, b, a := col.RGBA()
	c.pix[0], c.pix[1], c.pix[2], c.pix[3] = r, g, b, a
	// Double the filled prefix until the buffer is covered.
	for n := 4; n < len(c.pix); n *= 2 {
		copy(c.pix[n:], c.pix[:n])
	}
}

// FillRect sets every pixel of [x, x+w) × [y, y+h) inside the canvas to col.
// It returns a *azusa.GeometryError and writes nothing when the size is
// negative, the extent overflows, or nothing is left after clipping.
func (c *Canvas) FillRect(x, y, w, h int, col azusa.Color) error {
	_, clipped, err := c.region(x, y, w, h)
	if err != nil {
		return err
	}
	c.fill(clipped, col)
	return nil
}

// StrokeRect draws the outline of [x, x+w) × [y, y+h) with the given
// stroke thickness, growing inwards from the edges. A thickness that
// reaches the middle of the rectangle fills it. Errors as for FillRect;
// a non-positive thickness is also an error.
func (c *Canvas) StrokeRect(x, y, w, h, thickness int, col azusa.Color) error {
	if thickness <= 0 {
		return &azusa.GeometryError{
			Rect:   rectOrEmpty(x, y, w, h),
			Reason: fmt.Sprintf("thickness %d is not positive", thickness),
		}
	}
	r, clipped, err := c.region(x, y, w, h)
	if err != nil {
		return err
	}
	if thickness > (w-1)/2 || thickness > (h-1)/2 {
		c.fill(clipped, col)
		return nil
	}

	t := thickness
	bounds := c.Bounds()
	// Top and bottom span the full width, left and right fit between them.
	bands := [4]image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t),
		image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+t, r.Min.X+t, r.Max.Y-t),
		image.Rect(r.Max.X-t, r.Min.Y+t, r.Max.X, r.Max.Y-t),
	}
	for _, band := range bands {
		c.fill(band.Intersect(bounds), col)
	}
	return nil
}

// Execute applies a single command.
// Geometry errors carry the offending command.
func (c *Canvas) Execute(cmd azusa.Command) error {
	var err error
	switch cmd := cmd.(type) {
	case azusa.ClearCommand:
		c.Clear(cmd.Color)
	case azusa.FillRectangleCommand:
		err = c.fillRectangle(cmd)
	case azusa.DrawRectangleCommand:
		err = c.StrokeRect(cmd.X, cmd.Y, cmd.Width, cmd.Height, cmd.Thickness, cmd.Color)
	case azusa.DrawTextCommand:
		err = c.drawText(cmd)
	default:
		return fmt.Errorf("raster: unsupported command %T", cmd)
	}
	if ge, ok := err.(*azusa.GeometryError); ok {
		ge.Command = cmd
	}
	return err
}

// Replay executes cmds in order. A command that fails is logged, passed
// to the observer and skipped; the remaining commands still run.
// Replay returns the number of skipped commands.
func (c *Canvas) Replay(cmds []azusa.Command) int {
	skipped := 0
	for _, cmd := range cmds {
		err := c.Execute(cmd)
		if err == nil {
			continue
		}
		skipped++
		c.opts.logger.Warn("raster: command skipped",
			slog.String("command", cmd.String()),
			slog.Any("error", err))
		if c.opts.observer != nil {
			c.opts.observer.CommandSkipped(cmd, err)
		}
	}
	return skipped
}

// fillRectangle draws the one pixel border at full extent, then fills
// the interior. The order keeps the fill off the border.
func (c *Canvas) fillRectangle(cmd azusa.FillRectangleCommand) error {
	if err := c.StrokeRect(cmd.X, cmd.Y, cmd.Width, cmd.Height, 1, cmd.Border); err != nil {
		return err
	}
	if cmd.Width <= 2 || cmd.Height <= 2 {
		return nil
	}
	interior := image.Rect(cmd.X+1, cmd.Y+1, cmd.X+cmd.Width-1, cmd.Y+cmd.Height-1)
	c.fill(interior.Intersect(c.Bounds()), cmd.Fill)
	return nil
}

func (c *Canvas) drawText(cmd azusa.DrawTextCommand) error {
	if c.opts.text == nil {
		c.opts.logger.Debug("raster: no text renderer, DrawText ignored",
			slog.String("text", cmd.Text))
		return nil
	}
	return c.opts.text.DrawText(c.Image(), cmd)
}

// region validates a rectangle and returns it unclipped and clipped.
func (c *Canvas) region(x, y, w, h int) (r, clipped image.Rectangle, err error) {
	if w < 0 || h < 0 {
		return r, r, &azusa.GeometryError{
			Reason: fmt.Sprintf("negative size %dx%d", w, h),
		}
	}
	if x > math.MaxInt-w || y > math.MaxInt-h {
		return r, r, &azusa.GeometryError{
			Reason: fmt.Sprintf("extent of %dx%d at (%d,%d) overflows", w, h, x, y),
		}
	}
	r = image.Rect(x, y, x+w, y+h)
	clipped = r.Intersect(c.Bounds())
	if clipped.Empty() {
		return r, clipped, &azusa.GeometryError{
			Rect:   r,
			Reason: fmt.Sprintf("empty after clipping to %dx%d", c.width, c.height),
		}
	}
	return r, clipped, nil
}

// fill writes col into r, which must already lie inside the canvas.
func (c *Canvas) fill(r image.Rectangle, col azusa.Color) {
	if r.Empty() {
		return
	}
	red, green, blue, alpha := col.RGBA()
	stride := c.width * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.pix[y*stride+r.Min.X*4 : y*stride+r.Max.X*4]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = red
			row[i+1] = green
			row[i+2] = blue
			row[i+3] = alpha
		}
	}
}

// rectOrEmpty builds the requested rectangle for error reports,
// or the empty rectangle when it cannot be represented.
func rectOrEmpty(x, y, w, h int) image.Rectangle {
	if w < 0 || h < 0 || x > math.MaxInt-w || y > math.MaxInt-h {
		return image.Rectangle{}
	}
	return image.Rect(x, y, x+w, y+h)
}
