// Copyright 2026 The TensorTypes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package typed

import (
	"fmt"

	"github.com/tensor-types/tensortypes/tensor"
)

// ParamTensor is an explicit-mode wrapper instance. Unlike Tensor, no
// registry is involved: the expected shape is recomputed from a
// caller-supplied parameter record on every fallible operation, so the
// wrapper carries no persisted state beyond the tensor it owns.
type ParamTensor[S ParamSpec[P], P any] struct {
	raw *tensor.RawTensor
}

// NewWithParams computes the expected shape of wrapper type S from params,
// validates raw against it and the declared kind, and wraps the tensor on
// success. Fails with ShapeMismatchError or KindMismatchError otherwise.
func NewWithParams[S ParamSpec[P], P any](raw *tensor.RawTensor, params P) (*ParamTensor[S, P], error) {
	var s S
	if err := Validate(s.TypeName(), raw, s.Dims(params), s.Kind()); err != nil {
		return nil, err
	}
	return &ParamTensor[S, P]{raw: raw}, nil
}

// Raw returns the owned raw tensor without transferring ownership.
// Panics if the wrapper was consumed by IntoInner.
func (t *ParamTensor[S, P]) Raw() *tensor.RawTensor {
	t.mustOwn()
	return t.raw
}

// Shape returns the owned tensor's shape.
func (t *ParamTensor[S, P]) Shape() tensor.Shape {
	t.mustOwn()
	return t.raw.Shape()
}

// DType returns the owned tensor's element kind.
func (t *ParamTensor[S, P]) DType() tensor.DataType {
	t.mustOwn()
	return t.raw.DType()
}

// NumElements returns the owned tensor's total element count.
func (t *ParamTensor[S, P]) NumElements() int {
	t.mustOwn()
	return t.raw.NumElements()
}

// Apply runs fn on the owned tensor and wraps the result as a new instance
// of the same wrapper type, re-validating against the shape recomputed from
// params and the declared kind.
func (t *ParamTensor[S, P]) Apply(fn Transform, params P) (*ParamTensor[S, P], error) {
	var s S
	if t.raw == nil {
		return nil, &ConsumedError{TypeName: s.TypeName()}
	}

	out, err := fn(t.raw)
	if err != nil {
		return nil, fmt.Errorf("transform on tensor type %s: %w", s.TypeName(), err)
	}
	return NewWithParams[S](out, params)
}

// Clone produces a second wrapper handle aliasing the same underlying
// buffer. The clone is re-validated against params, which may in principle
// differ from the ones the receiver was constructed with; on failure the
// aliasing handle is released and the error returned.
func (t *ParamTensor[S, P]) Clone(params P) (*ParamTensor[S, P], error) {
	var s S
	if t.raw == nil {
		return nil, &ConsumedError{TypeName: s.TypeName()}
	}

	alias := t.raw.ShallowClone()
	clone, err := NewWithParams[S](alias, params)
	if err != nil {
		alias.Release()
		return nil, err
	}
	return clone, nil
}

// IntoInner consumes the wrapper and transfers ownership of the raw tensor
// to the caller.
func (t *ParamTensor[S, P]) IntoInner() (*tensor.RawTensor, error) {
	var s S
	if t.raw == nil {
		return nil, &ConsumedError{TypeName: s.TypeName()}
	}
	raw := t.raw
	t.raw = nil
	return raw, nil
}

// String returns the wrapper type's name with the tensor it holds.
func (t *ParamTensor[S, P]) String() string {
	var s S
	if t.raw == nil {
		return fmt.Sprintf("%s(consumed)", s.TypeName())
	}
	return fmt.Sprintf("%s(%s)", s.TypeName(), t.raw)
}

func (t *ParamTensor[S, P]) mustOwn() {
	if t.raw == nil {
		var s S
		panic(fmt.Sprintf("typed: use of consumed tensor type %s", s.TypeName()))
	}
}
