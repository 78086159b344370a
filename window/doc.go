// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window draws azusa command buffers into native platform windows.
//
// A Surface is created from a window handle. The handle kind selects a
// Backend from a registry that backend packages fill from init(), in the
// database/sql driver pattern:
//
//	import (
//	    "github.com/gogpu/azusa/window"
//	    sdlwin "github.com/gogpu/azusa/window/sdl"
//	)
//
//	s, err := window.NewSurface(sdlwin.Handle(renderer))
//	if err != nil {
//	    // no backend for this handle kind
//	}
//	_ = dc.Replay(s)
//
// The surface does not buffer pixels. Each command of a frame becomes one
// backend call, between a single Begin and a single End.
package window
