// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import (
	"github.com/gogpu/azusa"
)

// Backend is the set of native drawing calls a platform provides.
//
// A Surface calls Begin exactly once before the first command of a frame
// and End exactly once after the last. Between them every recorded command
// maps to exactly one primitive call, in recorded order.
//
// Backends are not required to be safe for concurrent use.
type Backend interface {
	// Begin starts a frame.
	Begin() error

	// Clear fills the whole client area with c.
	Clear(c azusa.Color)

	// FillRectangle fills a rectangle with a 1-pixel border of border
	// and an interior of fill.
	FillRectangle(fill, border azusa.Color, x, y, width, height int)

	// DrawRectangle strokes a rectangle outline of the given thickness.
	DrawRectangle(c azusa.Color, thickness, x, y, width, height int)

	// DrawText draws text inside the given box.
	DrawText(c azusa.Color, text string, font azusa.Font, x, y, width, height int)

	// End finishes the frame and presents it.
	End() error

	// ClientSize returns the drawable size of the window in pixels.
	ClientSize() (width, height int)
}
