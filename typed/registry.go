// Copyright 2026 The TensorTypes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package typed

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// Registry stores the expected dimensions of global-mode wrapper types.
// Each wrapper type gets one write-once slot, keyed by the Spec's type
// identity: the slot is created unset, transitions to set by the first
// successful Set call, and can never be altered afterwards. It models a
// configuration value resolved once at process startup and trusted for the
// remainder of the run.
//
// A Registry is safe for concurrent use. The unset-to-set transition is
// single-winner: when several goroutines race on Set, exactly one succeeds
// and all others observe AlreadyInitializedError.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]*entry
}

// entry is one wrapper type's slot. done flips to true inside the Once,
// after dims is written; readers must observe done before reading dims.
type entry struct {
	once sync.Once
	done atomic.Bool
	dims Dims
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]*entry)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used when New or Set is given a
// nil registry. Programs that want explicit lifecycles should create their
// own with NewRegistry and pass it where needed.
func Default() *Registry {
	return defaultRegistry
}

// slot returns the entry for key, creating it if needed.
func (r *Registry) slot(key reflect.Type) *entry {
	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()
	if ok {
		return e
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[key]; ok {
		return e
	}
	e = &entry{}
	r.entries[key] = e
	return e
}

// lookup returns the entry for key without creating one.
func (r *Registry) lookup(key reflect.Type) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e, ok
}

// Set registers the expected dimensions of wrapper type S, one value per
// declared dimension. It succeeds at most once per type per registry: the
// first caller wins, every later or concurrently racing caller gets
// AlreadyInitializedError and the stored dimensions are unchanged. A value
// count that differs from the type's declared rank is an ArityError.
//
// A nil registry means Default().
func Set[S Spec](r *Registry, dims ...int64) error {
	var s S
	if r == nil {
		r = Default()
	}
	if len(dims) != s.Rank() {
		return &ArityError{TypeName: s.TypeName(), Declared: s.Rank(), Given: len(dims)}
	}

	e := r.slot(reflect.TypeFor[S]())
	won := false
	e.once.Do(func() {
		e.dims = append(Dims(nil), dims...)
		e.done.Store(true)
		won = true
	})
	if !won {
		return &AlreadyInitializedError{TypeName: s.TypeName()}
	}
	return nil
}

// GetDims returns the registered dimensions of wrapper type S, or ok=false
// if Set has not succeeded yet. It never fails.
func GetDims[S Spec](r *Registry) (Dims, bool) {
	if r == nil {
		r = Default()
	}
	e, ok := r.lookup(reflect.TypeFor[S]())
	if !ok || !e.done.Load() {
		return nil, false
	}
	return e.dims.Clone(), true
}

// IsInitialized reports whether wrapper type S has registered dimensions.
func IsInitialized[S Spec](r *Registry) bool {
	_, ok := GetDims[S](r)
	return ok
}
