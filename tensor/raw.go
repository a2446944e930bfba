// Copyright 2026 The TensorTypes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/tensor-types/tensortypes/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and kind information via Shape(), DType()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Aliasing handles via ShallowClone() (shared, reference-counted buffer)
//   - Independent copies via DeepClone()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := raw.AsFloat32()     // Type-safe access
//	alias := raw.ShallowClone() // Shares the buffer via reference counting
type RawTensor = tensor.RawTensor
