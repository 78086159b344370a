// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides the software rasterizer for azusa commands and
// the file-backed surface built on it.
//
// # Canvas
//
// [Canvas] owns a packed RGBA8 buffer of exactly width*height*4 bytes,
// row-major, channels R, G, B, A. It executes commands by overwriting
// pixels; there is no blending and no antialiasing. Rectangles are
// clipped to the canvas bounds. A rectangle that is empty after
// clipping, has a negative size or overflows integer range is reported
// as a *azusa.GeometryError and skipped:
//
//	c := raster.NewCanvas(100, 100)
//	c.Clear(azusa.White)
//	err := c.FillRect(10, 10, 20, 20, azusa.Red) // nil
//	err = c.FillRect(200, 200, 5, 5, azusa.Red)  // *azusa.GeometryError
//
// A FillRectangleCommand draws its one pixel border first and then
// fills the interior, so the fill never erases the border.
//
// DrawText is delegated to a [TextRenderer] installed with
// [WithTextRenderer]; by default it does nothing.
//
// # Surface
//
// [Surface] adapts a Canvas to azusa.Surface and writes one image file
// per Draw:
//
//	s := raster.NewSurface(128, 128, "frame", raster.FormatPNG)
//	err := dc.Replay(s) // writes frame.png
//
// PNG uses image/png; BMP and TIFF use golang.org/x/image.
package raster
