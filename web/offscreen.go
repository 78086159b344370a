// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package web

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/mazznoer/csscolorparser"
)

// Offscreen is a Context2D backed by an in-memory fogleman/gg canvas. It
// lets browser surfaces run and be inspected outside a browser.
type Offscreen struct {
	dc    *gg.Context
	style color.Color
}

var _ Context2D = (*Offscreen)(nil)

// NewOffscreen creates a transparent offscreen canvas of the given size.
func NewOffscreen(width, height int) *Offscreen {
	return &Offscreen{dc: gg.NewContext(width, height), style: color.Black}
}

// BeginPath discards the current path.
func (o *Offscreen) BeginPath() {
	o.dc.ClearPath()
}

// SetFillStyle parses a CSS color. Invalid styles are ignored, as in a
// browser.
func (o *Offscreen) SetFillStyle(style string) {
	c, err := csscolorparser.Parse(style)
	if err != nil {
		return
	}
	r, g, b, a := c.RGBA255()
	o.style = color.NRGBA{R: r, G: g, B: b, A: a}
}

// Rect adds a rectangle to the current path.
func (o *Offscreen) Rect(x, y, width, height float64) {
	o.dc.DrawRectangle(x, y, width, height)
}

// Fill fills the current path with the fill style.
func (o *Offscreen) Fill() {
	o.dc.SetColor(o.style)
	o.dc.FillPreserve()
}

// Size returns the canvas size.
func (o *Offscreen) Size() (width, height int) {
	return o.dc.Width(), o.dc.Height()
}

// Image returns the canvas contents.
func (o *Offscreen) Image() image.Image {
	return o.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (o *Offscreen) SavePNG(path string) error {
	return o.dc.SavePNG(path)
}
