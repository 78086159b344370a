// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build js && wasm

package web

import (
	"errors"
	"syscall/js"
)

// Canvas is a Context2D over an HTML canvas element.
type Canvas struct {
	element js.Value
	ctx     js.Value
}

var _ Context2D = (*Canvas)(nil)

// NewCanvas returns the 2D context of a canvas element.
func NewCanvas(element js.Value) (*Canvas, error) {
	if element.IsUndefined() || element.IsNull() {
		return nil, errors.New("web: canvas element is undefined")
	}
	ctx := element.Call("getContext", "2d")
	if ctx.IsNull() {
		return nil, errors.New("web: canvas has no 2d context")
	}
	return &Canvas{element: element, ctx: ctx}, nil
}

// CanvasByID looks up a canvas element in the current document.
func CanvasByID(id string) (*Canvas, error) {
	return NewCanvas(js.Global().Get("document").Call("getElementById", id))
}

func (c *Canvas) BeginPath() {
	c.ctx.Call("beginPath")
}

func (c *Canvas) SetFillStyle(style string) {
	c.ctx.Set("fillStyle", style)
}

func (c *Canvas) Rect(x, y, width, height float64) {
	c.ctx.Call("rect", x, y, width, height)
}

func (c *Canvas) Fill() {
	c.ctx.Call("fill")
}

func (c *Canvas) Size() (width, height int) {
	return c.element.Get("width").Int(), c.element.Get("height").Int()
}
