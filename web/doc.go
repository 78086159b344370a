// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package web draws azusa command buffers into an HTML canvas.
//
// Surface talks to a Context2D: on js/wasm, Canvas wraps a canvas element
// through syscall/js; everywhere, Offscreen renders into a fogleman/gg
// image so the same frames can be inspected in tests or saved to disk.
//
//	ctx, err := web.CanvasByID("frame") // js/wasm only
//	if err != nil {
//	    return err
//	}
//	err = dc.Replay(web.NewSurface(ctx))
package web
