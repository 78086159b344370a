package azusa

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors. The typed errors below match them with errors.Is.
var (
	// ErrGeometry is matched by every *GeometryError.
	ErrGeometry = errors.New("azusa: invalid geometry")

	// ErrEncoding is matched by every *EncodingError.
	ErrEncoding = errors.New("azusa: encoding failed")

	// ErrUnsupportedPlatform is matched by every *UnsupportedPlatformError.
	ErrUnsupportedPlatform = errors.New("azusa: unsupported platform")
)

// GeometryError reports a rectangle command that denotes an empty or
// invalid region after clipping. The command is skipped; the rest of the
// frame still executes.
type GeometryError struct {
	// Command is the offending command, or nil for a direct canvas call.
	Command Command

	// Rect is the requested region before clipping.
	// It is empty when the region could not be represented.
	Rect image.Rectangle

	Reason string
}

func (e *GeometryError) Error() string {
	if e.Command != nil {
		return fmt.Sprintf("azusa: %s: %s", e.Command, e.Reason)
	}
	return fmt.Sprintf("azusa: rectangle %v: %s", e.Rect, e.Reason)
}

// Is reports whether target is ErrGeometry.
func (e *GeometryError) Is(target error) bool {
	return target == ErrGeometry
}

// EncodingError reports that a frame could not be written to its output file.
type EncodingError struct {
	Path   string
	Format string
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("azusa: encode %s to %s: %v", e.Format, e.Path, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrEncoding.
func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

// UnsupportedPlatformError is returned when a native surface is requested
// for a window handle kind that has no registered backend.
type UnsupportedPlatformError struct {
	Kind string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("azusa: no window backend for handle kind %q (forgotten import?)", e.Kind)
}

// Is reports whether target is ErrUnsupportedPlatform.
func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}
