package text

import (
	"log/slog"

	"github.com/gogpu/azusa"
)

// Option configures a Renderer.
type Option func(*options)

// options holds configuration for Renderer.
type options struct {
	logger      *slog.Logger
	systemFonts bool
	fontData    []byte
}

// defaultOptions returns the default renderer configuration.
func defaultOptions() options {
	return options{
		systemFonts: true,
	}
}

// WithLogger sets the logger for font resolution messages.
// By default the package logger from azusa.Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSystemFonts enables or disables lookup of installed fonts by family
// name. When disabled, every family resolves to the fallback font.
func WithSystemFonts(enabled bool) Option {
	return func(o *options) {
		o.systemFonts = enabled
	}
}

// WithFontData replaces the embedded Go fonts with a TrueType or OpenType
// font used whenever a family cannot be found.
func WithFontData(data []byte) Option {
	return func(o *options) {
		o.fontData = data
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = azusa.Logger()
	}
	return o
}
