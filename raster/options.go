// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"log/slog"

	"github.com/gogpu/azusa"
)

// Observer is notified about commands that were skipped during replay.
// It runs synchronously on the replaying goroutine.
type Observer interface {
	CommandSkipped(cmd azusa.Command, err error)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(cmd azusa.Command, err error)

// CommandSkipped implements Observer.
func (f ObserverFunc) CommandSkipped(cmd azusa.Command, err error) {
	f(cmd, err)
}

// TextRenderer draws DrawText commands into a canvas.
//
// dst shares memory with the canvas; implementations overwrite pixels
// and must stay inside dst.Bounds(). See package text for the bundled
// implementation.
type TextRenderer interface {
	DrawText(dst *image.RGBA, cmd azusa.DrawTextCommand) error
}

// Option configures a Canvas or Surface during creation.
//
// Example:
//
//	s := raster.NewSurface(800, 600, "frame", raster.FormatPNG,
//	    raster.WithLogger(logger),
//	    raster.WithTextRenderer(text.NewRenderer()),
//	)
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer Observer
	text     TextRenderer

	// Surface only.
	encoder Encoder
	dir     string
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = azusa.Logger()
	}
	return o
}

// WithLogger sets the logger used to report skipped commands.
// The default is azusa.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithObserver registers an observer for skipped commands.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithTextRenderer installs the collaborator that executes DrawText.
// Without one, DrawText commands are no-ops.
func WithTextRenderer(r TextRenderer) Option {
	return func(o *options) {
		o.text = r
	}
}

// WithEncoder replaces the encoder a Surface uses for its format.
func WithEncoder(e Encoder) Option {
	return func(o *options) {
		o.encoder = e
	}
}

// WithOutputDir makes a Surface write its file into dir instead of the
// working directory.
func WithOutputDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}
