// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sdl registers an SDL2 renderer backend for window.KindSDL.
//
// Import it for its side effect and wrap an *sdl.Renderer with Handle:
//
//	import sdlwin "github.com/gogpu/azusa/window/sdl"
//
//	s, err := window.NewSurface(sdlwin.Handle(renderer))
package sdl

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/azusa"
	"github.com/gogpu/azusa/window"
)

func init() {
	window.Register(window.KindSDL, newBackend)
}

// renderer is the subset of *sdl.Renderer the backend uses.
type renderer interface {
	SetDrawColor(r, g, b, a uint8) error
	SetDrawBlendMode(bm sdl.BlendMode) error
	Clear() error
	DrawRect(rect *sdl.Rect) error
	FillRect(rect *sdl.Rect) error
	GetOutputSize() (w, h int32, err error)
	Present()
}

// Handle returns a window handle for r.
func Handle(r *sdl.Renderer) window.RawHandle {
	return window.RawHandle{Kind: window.KindSDL, Value: r}
}

func newBackend(h window.RawHandle) (window.Backend, error) {
	r, ok := h.Value.(renderer)
	if !ok || r == nil {
		return nil, fmt.Errorf("sdl: handle value %T is not an SDL renderer", h.Value)
	}
	if p, isPtr := r.(*sdl.Renderer); isPtr && p == nil {
		return nil, errors.New("sdl: nil renderer")
	}
	return &backend{r: r}, nil
}

// backend maps commands onto SDL renderer calls. Primitive failures are
// kept and reported by End.
type backend struct {
	r      renderer
	width  int
	height int
	err    error
}

func (b *backend) Begin() error {
	b.err = nil
	w, h, err := b.r.GetOutputSize()
	if err != nil {
		return fmt.Errorf("sdl: output size: %w", err)
	}
	b.width, b.height = int(w), int(h)
	// Overwrite, never blend.
	if err := b.r.SetDrawBlendMode(sdl.BLENDMODE_NONE); err != nil {
		return fmt.Errorf("sdl: blend mode: %w", err)
	}
	return nil
}

func (b *backend) Clear(c azusa.Color) {
	b.setColor(c)
	b.check(b.r.Clear())
}

func (b *backend) FillRectangle(fill, border azusa.Color, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	b.setColor(border)
	b.check(b.r.DrawRect(rect(x, y, w, h)))
	if w > 2 && h > 2 {
		b.setColor(fill)
		b.check(b.r.FillRect(rect(x+1, y+1, w-2, h-2)))
	}
}

func (b *backend) DrawRectangle(c azusa.Color, thickness, x, y, w, h int) {
	if thickness <= 0 {
		return
	}
	b.setColor(c)
	for i := 0; i < thickness && w-2*i > 0 && h-2*i > 0; i++ {
		b.check(b.r.DrawRect(rect(x+i, y+i, w-2*i, h-2*i)))
	}
}

// DrawText is not supported by the SDL renderer API without SDL_ttf.
func (b *backend) DrawText(azusa.Color, string, azusa.Font, int, int, int, int) {}

func (b *backend) End() error {
	b.r.Present()
	if b.err != nil {
		return fmt.Errorf("sdl: draw: %w", b.err)
	}
	return nil
}

func (b *backend) ClientSize() (int, int) {
	w, h, err := b.r.GetOutputSize()
	if err != nil {
		return b.width, b.height
	}
	return int(w), int(h)
}

func (b *backend) setColor(c azusa.Color) {
	r, g, bl, a := c.RGBA()
	b.check(b.r.SetDrawColor(r, g, bl, a))
}

func (b *backend) check(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

func rect(x, y, w, h int) *sdl.Rect {
	return &sdl.Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)}
}
