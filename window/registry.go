// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import (
	"slices"
	"sync"
)

// BackendFactory creates a backend for a native window handle.
type BackendFactory func(h RawHandle) (Backend, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[Kind]BackendFactory)
)

// Register makes a backend available for handles of the given kind.
// It is typically called from init() in a backend package, following the
// database/sql driver pattern:
//
//	import _ "github.com/gogpu/azusa/window/sdl"
//
// Register panics if factory is nil or if kind already has a backend.
func Register(kind Kind, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("window: Register factory is nil")
	}
	if _, dup := factories[kind]; dup {
		panic("window: Register called twice for " + kind.String())
	}
	factories[kind] = factory
}

// Unregister removes the backend for kind. It is a no-op when none is
// registered. Mainly useful in tests.
func Unregister(kind Kind) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, kind)
}

// Kinds returns the handle kinds that have a registered backend, in
// ascending order.
func Kinds() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]Kind, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

func lookup(kind Kind) (BackendFactory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := factories[kind]
	return f, ok
}
