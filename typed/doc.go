// Copyright 2026 The TensorTypes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package typed implements named, shape- and kind-checked wrapper types for
// raw tensors.
//
// A wrapper type binds one logical tensor role (say, "encoder input") to an
// expected shape and element kind. Every construction, transform, and clone
// re-validates that binding, so a tensor of the wrong shape or kind is
// rejected at the call site instead of surfacing later as a dimension
// mismatch deep inside a numeric kernel.
//
// A wrapper type is declared as an empty struct implementing Spec (global
// registry mode) or ParamSpec (explicit parameters mode):
//
//	type EncoderInput struct{}
//
//	func (EncoderInput) TypeName() string      { return "EncoderInput" }
//	func (EncoderInput) Rank() int             { return 3 }
//	func (EncoderInput) Kind() tensor.DataType { return tensor.Float32 }
//
// In global mode the expected dimensions are registered once, typically at
// process startup, and reused by every subsequent call:
//
//	reg := typed.NewRegistry()
//	if err := typed.Set[EncoderInput](reg, 20, 20, 40); err != nil {
//		// handle error
//	}
//	x, err := typed.New[EncoderInput](reg, raw)     // validates [20 20 40], float32
//	y, err := x.Apply(scale)                        // transform + re-validate
//	inner, err := y.IntoInner()                     // unwrap; y is consumed
//
// In explicit mode nothing is persisted; the expected shape is recomputed
// from a caller-supplied parameter record on every call:
//
//	type ModelParams struct {
//		Batch BatchSize
//		Seq   SequenceLength
//	}
//
//	type TokenBatch struct{}
//
//	func (TokenBatch) TypeName() string      { return "TokenBatch" }
//	func (TokenBatch) Kind() tensor.DataType { return tensor.Int64 }
//	func (TokenBatch) Dims(p ModelParams) typed.Dims {
//		return typed.Dims{param.Int64(p.Batch), param.Int64(p.Seq)}
//	}
//
//	tb, err := typed.NewWithParams[TokenBatch](raw, params)
//
// All validation failures are returned as plain error values from the four
// kind taxonomy (UninitializedError, AlreadyInitializedError,
// ShapeMismatchError, KindMismatchError); no operation panics on a failed
// validation.
package typed
