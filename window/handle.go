// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import "fmt"

// Kind identifies the windowing system a handle belongs to.
type Kind uint8

// Handle kinds.
const (
	KindUnknown Kind = iota
	KindWin32
	KindWinRT
	KindXlib
	KindXcb
	KindWayland
	KindAppKit
	KindUIKit
	KindWeb
	KindAndroidNDK
	KindHaiku
	KindOrbital
	KindDrm
	KindGbm
	KindSDL
)

var kindNames = [...]string{
	KindUnknown:    "unknown",
	KindWin32:      "win32",
	KindWinRT:      "winrt",
	KindXlib:       "xlib",
	KindXcb:        "xcb",
	KindWayland:    "wayland",
	KindAppKit:     "appkit",
	KindUIKit:      "uikit",
	KindWeb:        "web",
	KindAndroidNDK: "android-ndk",
	KindHaiku:      "haiku",
	KindOrbital:    "orbital",
	KindDrm:        "drm",
	KindGbm:        "gbm",
	KindSDL:        "sdl",
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// RawHandle describes a native window.
//
// Window and Display carry platform identifiers (HWND, X11 Window and
// Display, NSView, ...). Value carries a Go object for backends that
// wrap a library type, such as *sdl.Renderer.
type RawHandle struct {
	Kind    Kind
	Window  uintptr
	Display uintptr
	Value   any
}

// Handle is implemented by anything that can expose a native window.
type Handle interface {
	RawHandle() RawHandle
}

// RawHandle implements Handle, so a RawHandle can be passed directly.
func (h RawHandle) RawHandle() RawHandle {
	return h
}
