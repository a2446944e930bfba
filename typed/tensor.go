// Copyright 2026 The TensorTypes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package typed

import (
	"fmt"

	"github.com/tensor-types/tensortypes/tensor"
)

// Transform produces a new raw tensor from an existing one. It is the shape
// of every operation the external tensor library runs under Apply.
type Transform func(*tensor.RawTensor) (*tensor.RawTensor, error)

// Tensor is a global-mode wrapper instance: one owned raw tensor plus the
// wrapper type identity S that pins its expected shape and kind. At the
// instant of every successful construction the tensor's shape and kind
// equal the registered expectations; Apply re-establishes the invariant on
// each transform result.
//
// The wrapper owns its tensor until IntoInner transfers ownership out or
// Clone creates an aliasing sibling. The core synchronizes registry
// metadata only; concurrent mutation of aliased tensor data is the
// caller's to coordinate.
type Tensor[S Spec] struct {
	raw *tensor.RawTensor
	reg *Registry
}

// New validates raw against the registered dimensions and declared kind of
// wrapper type S and wraps it on success. Fails with UninitializedError if
// Set has not succeeded for S, and with ShapeMismatchError or
// KindMismatchError when the tensor does not meet the expectations. The
// wrapper takes ownership of raw only on success.
//
// A nil registry means Default().
func New[S Spec](r *Registry, raw *tensor.RawTensor) (*Tensor[S], error) {
	var s S
	if r == nil {
		r = Default()
	}

	dims, ok := GetDims[S](r)
	if !ok {
		return nil, &UninitializedError{TypeName: s.TypeName()}
	}
	if err := Validate(s.TypeName(), raw, dims, s.Kind()); err != nil {
		return nil, err
	}
	return &Tensor[S]{raw: raw, reg: r}, nil
}

// Raw returns the owned raw tensor without transferring ownership.
// Mutations through the returned tensor are visible to the wrapper.
// Panics if the wrapper was consumed by IntoInner.
func (t *Tensor[S]) Raw() *tensor.RawTensor {
	t.mustOwn()
	return t.raw
}

// Shape returns the owned tensor's shape.
func (t *Tensor[S]) Shape() tensor.Shape {
	t.mustOwn()
	return t.raw.Shape()
}

// DType returns the owned tensor's element kind.
func (t *Tensor[S]) DType() tensor.DataType {
	t.mustOwn()
	return t.raw.DType()
}

// NumElements returns the owned tensor's total element count.
func (t *Tensor[S]) NumElements() int {
	t.mustOwn()
	return t.raw.NumElements()
}

// Apply runs fn on the owned tensor and wraps the result as a new instance
// of the same wrapper type, re-running the full validation path against the
// original type's expected shape and kind. A transform that changes either
// is caught here, immediately, rather than downstream.
func (t *Tensor[S]) Apply(fn Transform) (*Tensor[S], error) {
	var s S
	if t.raw == nil {
		return nil, &ConsumedError{TypeName: s.TypeName()}
	}

	out, err := fn(t.raw)
	if err != nil {
		return nil, fmt.Errorf("transform on tensor type %s: %w", s.TypeName(), err)
	}
	return New[S](t.reg, out)
}

// Clone produces a second wrapper handle aliasing the same underlying
// buffer (a shallow clone of the tensor, not a deep copy). Mutation through
// one handle is visible through the other. The clone is re-validated; in
// global mode the registered dimensions cannot have changed, so this
// succeeds whenever the receiver is not consumed.
func (t *Tensor[S]) Clone() (*Tensor[S], error) {
	var s S
	if t.raw == nil {
		return nil, &ConsumedError{TypeName: s.TypeName()}
	}

	alias := t.raw.ShallowClone()
	clone, err := New[S](t.reg, alias)
	if err != nil {
		alias.Release()
		return nil, err
	}
	return clone, nil
}

// IntoInner consumes the wrapper and transfers ownership of the raw tensor
// to the caller. Any later fallible operation on the wrapper returns
// ConsumedError; accessors panic.
func (t *Tensor[S]) IntoInner() (*tensor.RawTensor, error) {
	var s S
	if t.raw == nil {
		return nil, &ConsumedError{TypeName: s.TypeName()}
	}
	raw := t.raw
	t.raw = nil
	return raw, nil
}

// String returns the wrapper type's name with the tensor it holds.
func (t *Tensor[S]) String() string {
	var s S
	if t.raw == nil {
		return fmt.Sprintf("%s(consumed)", s.TypeName())
	}
	return fmt.Sprintf("%s(%s)", s.TypeName(), t.raw)
}

func (t *Tensor[S]) mustOwn() {
	if t.raw == nil {
		var s S
		panic(fmt.Sprintf("typed: use of consumed tensor type %s", s.TypeName()))
	}
}
