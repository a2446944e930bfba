// Copyright 2026 The TensorTypes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package typed

import "github.com/tensor-types/tensortypes/tensor"

// Spec declares a wrapper type for global registry mode. Implementations
// are empty marker structs with value receivers; the struct's type identity
// is what distinguishes one wrapper type from another.
//
// TypeName must be unique per wrapper type and is used in error rendering.
// Rank is the number of dimensions, fixed at declaration time. Kind is the
// required element kind.
type Spec interface {
	TypeName() string
	Rank() int
	Kind() tensor.DataType
}

// ParamSpec declares a wrapper type for explicit parameters mode. No state
// is persisted anywhere: Dims recomputes the expected shape from the
// caller's parameter record P on every call, reading the record's fields in
// declared order. A field may appear at more than one position (a square
// dimension used twice is legal).
type ParamSpec[P any] interface {
	TypeName() string
	Kind() tensor.DataType
	Dims(P) Dims
}
