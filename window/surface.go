// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/azusa"
)

// Option configures a Surface.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used by the surface. By default the package
// logger from azusa.Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Surface draws command buffers into a native window. It holds no pixel
// storage: every command is forwarded to the platform backend as it is
// replayed.
type Surface struct {
	kind    Kind
	backend Backend
	logger  *slog.Logger
}

var _ azusa.Surface = (*Surface)(nil)

// NewSurface creates a surface for the window behind h. The backend is
// chosen once, from the handle kind. A kind without a registered backend
// returns an *azusa.UnsupportedPlatformError.
func NewSurface(h Handle, opts ...Option) (*Surface, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = azusa.Logger()
	}

	raw := h.RawHandle()
	factory, ok := lookup(raw.Kind)
	if !ok {
		return nil, &azusa.UnsupportedPlatformError{Kind: raw.Kind.String()}
	}
	b, err := factory(raw)
	if err != nil {
		return nil, fmt.Errorf("window: create %s backend: %w", raw.Kind, err)
	}
	o.logger.Debug("window: surface created", slog.String("kind", raw.Kind.String()))
	return &Surface{kind: raw.Kind, backend: b, logger: o.logger}, nil
}

// Kind returns the handle kind the surface was created for.
func (s *Surface) Kind() Kind {
	return s.kind
}

// ClientSize returns the drawable size reported by the backend.
func (s *Surface) ClientSize() (width, height int) {
	return s.backend.ClientSize()
}

// Draw replays commands as one frame: Begin, one backend call per
// command, End.
func (s *Surface) Draw(commands []azusa.Command) error {
	if err := s.backend.Begin(); err != nil {
		return fmt.Errorf("window: begin frame: %w", err)
	}
	for _, cmd := range commands {
		s.dispatch(cmd)
	}
	if err := s.backend.End(); err != nil {
		return fmt.Errorf("window: end frame: %w", err)
	}
	s.logger.Debug("window: frame drawn", slog.Int("commands", len(commands)))
	return nil
}

func (s *Surface) dispatch(cmd azusa.Command) {
	b := s.backend
	switch cmd := cmd.(type) {
	case azusa.ClearCommand:
		b.Clear(cmd.Color)
	case azusa.FillRectangleCommand:
		b.FillRectangle(cmd.Fill, cmd.Border, cmd.X, cmd.Y, cmd.Width, cmd.Height)
	case azusa.DrawRectangleCommand:
		b.DrawRectangle(cmd.Color, cmd.Thickness, cmd.X, cmd.Y, cmd.Width, cmd.Height)
	case azusa.DrawTextCommand:
		b.DrawText(cmd.Color, cmd.Text, cmd.Font, cmd.X, cmd.Y, cmd.Width, cmd.Height)
	default:
		s.logger.Warn("window: unsupported command", slog.String("command", fmt.Sprint(cmd)))
	}
}
