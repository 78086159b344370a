// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/azusa"
)

// Surface is an azusa.Surface that rasterizes into a Canvas and writes
// the result to an image file.
//
// Each Draw replays the commands into the canvas and then encodes the
// canvas exactly once to Path(). With FormatNone nothing is written,
// which is useful to inspect Canvas() directly.
type Surface struct {
	name   string
	format Format

	canvas  *Canvas
	encoder Encoder

	opts options
	copt []Option
}

var _ azusa.Surface = (*Surface)(nil)

// NewSurface creates a surface of the given size that writes to
// name plus the format extension (for example "sample" → "sample.png").
func NewSurface(width, height int, name string, format Format, opts ...Option) *Surface {
	o := buildOptions(opts)
	enc := o.encoder
	if enc == nil {
		enc = NewEncoder(format)
	}
	return &Surface{
		name:    name,
		format:  format,
		canvas:  NewCanvas(width, height, opts...),
		encoder: enc,
		opts:    o,
		copt:    opts,
	}
}

// Resize replaces the canvas with one of the new size. The previous
// contents are discarded; pixels are undefined until the next Clear.
func (s *Surface) Resize(width, height int) {
	s.canvas = NewCanvas(width, height, s.copt...)
}

// ClientSize returns the canvas size.
func (s *Surface) ClientSize() (width, height int) {
	return s.canvas.Width(), s.canvas.Height()
}

// Canvas returns the canvas of the current frame.
func (s *Surface) Canvas() *Canvas {
	return s.canvas
}

// Format returns the output format.
func (s *Surface) Format() Format {
	return s.format
}

// Path returns the output file path, or "" for FormatNone.
func (s *Surface) Path() string {
	if s.format == FormatNone {
		return ""
	}
	return filepath.Join(s.opts.dir, s.name+s.format.Ext())
}

// Draw replays commands into the canvas and writes the image file.
// Commands with invalid geometry are skipped (see Canvas.Replay); only
// an encoding failure is returned, as a *azusa.EncodingError.
func (s *Surface) Draw(commands []azusa.Command) error {
	skipped := s.canvas.Replay(commands)
	s.opts.logger.Debug("raster: frame rasterized",
		slog.Int("width", s.canvas.Width()),
		slog.Int("height", s.canvas.Height()),
		slog.Int("commands", len(commands)),
		slog.Int("skipped", skipped))

	if s.format == FormatNone {
		return nil
	}
	path := s.Path()
	if err := s.writeFile(path); err != nil {
		return &azusa.EncodingError{Path: path, Format: s.format.String(), Err: err}
	}
	s.opts.logger.Info("raster: image written", slog.String("path", path))
	return nil
}

func (s *Surface) writeFile(path string) (err error) {
	if s.encoder == nil {
		return errNoEncoder
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := s.encoder.Encode(w, s.canvas.Width(), s.canvas.Height(), s.canvas.Bytes()); err != nil {
		return err
	}
	return w.Flush()
}
