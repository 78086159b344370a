// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package web

import (
	"log/slog"

	"github.com/gogpu/azusa"
)

// Context2D is the part of the HTML canvas 2D rendering context the
// surface uses. Fill styles are CSS color strings.
type Context2D interface {
	BeginPath()
	SetFillStyle(style string)
	Rect(x, y, width, height float64)
	Fill()

	// Size returns the canvas size in pixels.
	Size() (width, height int)
}

// Option configures a Surface.
type Option func(*Surface)

// WithLogger sets the logger used by the surface. By default the package
// logger from azusa.Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(s *Surface) {
		s.logger = l
	}
}

// Surface draws command buffers into a 2D canvas context.
//
// Every drawn command is its own path: BeginPath, one fill style, the
// command's rectangles, one Fill. Commands therefore never repaint the
// geometry of earlier ones. Text is not drawn.
type Surface struct {
	ctx    Context2D
	logger *slog.Logger
}

var _ azusa.Surface = (*Surface)(nil)

// NewSurface returns a surface drawing into ctx.
func NewSurface(ctx Context2D, opts ...Option) *Surface {
	s := &Surface{ctx: ctx}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = azusa.Logger()
	}
	return s
}

// ClientSize returns the canvas size.
func (s *Surface) ClientSize() (width, height int) {
	return s.ctx.Size()
}

// Draw replays commands into the canvas in order.
func (s *Surface) Draw(commands []azusa.Command) error {
	for _, cmd := range commands {
		switch cmd := cmd.(type) {
		case azusa.ClearCommand:
			w, h := s.ctx.Size()
			s.fill(cmd.Color, rect{0, 0, w, h})
		case azusa.FillRectangleCommand:
			if !s.valid(cmd, cmd.Width, cmd.Height, 1) {
				continue
			}
			s.fill(cmd.Fill, rect{cmd.X, cmd.Y, cmd.Width, cmd.Height})
		case azusa.DrawRectangleCommand:
			if !s.valid(cmd, cmd.Width, cmd.Height, cmd.Thickness) {
				continue
			}
			s.fill(cmd.Color, bands(cmd.X, cmd.Y, cmd.Width, cmd.Height, cmd.Thickness)...)
		case azusa.DrawTextCommand:
			s.logger.Debug("web: text not supported", slog.String("text", cmd.Text))
		}
	}
	return nil
}

func (s *Surface) valid(cmd azusa.Command, w, h, thickness int) bool {
	if w > 0 && h > 0 && thickness > 0 {
		return true
	}
	s.logger.Debug("web: command skipped", slog.String("command", cmd.String()))
	return false
}

func (s *Surface) fill(c azusa.Color, rects ...rect) {
	s.ctx.BeginPath()
	s.ctx.SetFillStyle(c.CSS())
	for _, r := range rects {
		s.ctx.Rect(float64(r.x), float64(r.y), float64(r.w), float64(r.h))
	}
	s.ctx.Fill()
}

type rect struct {
	x, y, w, h int
}

// bands returns the edges of an outline of thickness t as disjoint
// rectangles. An outline that reaches the centre is the whole rectangle.
func bands(x, y, w, h, t int) []rect {
	if t > (w-1)/2 || t > (h-1)/2 {
		return []rect{{x, y, w, h}}
	}
	return []rect{
		{x, y, w, t},
		{x, y + h - t, w, t},
		{x, y + t, t, h - 2*t},
		{x + w - t, y + t, t, h - 2*t},
	}
}
