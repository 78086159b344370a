// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format selects the image file format a Surface writes.
type Format uint8

const (
	// FormatNone rasterizes without writing a file.
	FormatNone Format = iota
	FormatPNG
	FormatBMP
	FormatTIFF
)

var formatNames = [...]string{
	FormatNone: "none",
	FormatPNG:  "png",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
}

// String returns the lower-case format name.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// Ext returns the file name extension including the dot, or "" for FormatNone.
func (f Format) Ext() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatBMP:
		return ".bmp"
	case FormatTIFF:
		return ".tiff"
	default:
		return ""
	}
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	if name == "tif" {
		return FormatTIFF, nil
	}
	return FormatNone, fmt.Errorf("raster: unknown format %q", name)
}

// Encoder writes a row-major RGBA8 buffer of width*height*4 bytes as an
// image file.
type Encoder interface {
	Encode(w io.Writer, width, height int, pix []uint8) error
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(w io.Writer, width, height int, pix []uint8) error

// Encode implements Encoder.
func (f EncoderFunc) Encode(w io.Writer, width, height int, pix []uint8) error {
	return f(w, width, height, pix)
}

// ErrBufferSize is returned by the bundled encoders when the buffer
// length does not match the dimensions.
var ErrBufferSize = errors.New("raster: buffer length does not match dimensions")

var errNoEncoder = errors.New("raster: no encoder for format")

// NewEncoder returns the bundled encoder for f.
// FormatNone has no encoder and yields nil.
func NewEncoder(f Format) Encoder {
	switch f {
	case FormatPNG:
		enc := &png.Encoder{CompressionLevel: png.DefaultCompression}
		return imageEncoder(func(w io.Writer, img image.Image) error {
			return enc.Encode(w, img)
		})
	case FormatBMP:
		return imageEncoder(bmp.Encode)
	case FormatTIFF:
		return imageEncoder(func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		})
	default:
		return nil
	}
}

// imageEncoder wraps the raw buffer in an *image.RGBA without copying.
type imageEncoder func(w io.Writer, img image.Image) error

func (f imageEncoder) Encode(w io.Writer, width, height int, pix []uint8) error {
	if width < 0 || height < 0 || len(pix) != width*height*4 {
		return fmt.Errorf("%w: %dx%d with %d bytes", ErrBufferSize, width, height, len(pix))
	}
	return f(w, &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	})
}
