// Package azusa provides a small 2D drawing abstraction built around a
// recorded command buffer.
//
// # Overview
//
// Drawing calls on a [Context] do not touch pixels. They append
// immutable commands ([ClearCommand], [FillRectangleCommand],
// [DrawRectangleCommand], [DrawTextCommand]) to a buffer, which is then
// replayed against a [Surface]:
//
//   - raster.Surface rasterizes into an RGBA8 buffer and writes an image file
//   - window.Surface dispatches each command to a native backend
//   - web.Surface issues fills against a browser canvas 2D context
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/azusa"
//	    "github.com/gogpu/azusa/raster"
//	)
//
//	surface := raster.NewSurface(100, 100, "sample", raster.FormatPNG)
//	dc := azusa.NewContext()
//
//	dc.SetSourceColor(azusa.Blue)
//	dc.Clear() // starts the frame with a blue fill
//
//	dc.SetSourceColor(azusa.Navy)
//	dc.MoveTo(5, 5)
//	dc.DrawRectangle(1, 90, 90)
//
//	if err := dc.Replay(surface); err != nil { // writes sample.png
//	    log.Fatal(err)
//	}
//
// # Frames
//
// [Context.Clear] resets the buffer to a single ClearCommand, so every
// frame starts by filling the target. Commands execute in recording
// order and later commands overwrite earlier ones; there is no blending.
//
// # Coordinate System
//
// Integer device pixels, origin at top-left, X right, Y down.
// Rectangles are clipped to the target bounds.
//
// # Colors
//
// [Color] is a closed palette of the CSS basic colors plus Transparent.
// [ParseColor] accepts palette names and CSS color strings.
package azusa
