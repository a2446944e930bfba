// Copyright 2026 The TensorTypes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package typed

import "github.com/tensor-types/tensortypes/tensor"

// Validate compares a tensor's actual shape and element kind against the
// expectations of the wrapper type named typeName. The shape is compared
// first (length and positional equality), then the kind; when both
// mismatch, the caller sees ShapeMismatchError. Returns nil on success.
//
// Both registry modes and the CLI's dynamic checks funnel through this one
// comparison.
func Validate(typeName string, raw *tensor.RawTensor, expected Dims, kind tensor.DataType) error {
	found := shapeDims(raw.Shape())
	if !found.Equal(expected) {
		return &ShapeMismatchError{
			TypeName: typeName,
			Expected: expected.Clone(),
			Found:    found,
		}
	}

	if raw.DType() != kind {
		return &KindMismatchError{
			TypeName: typeName,
			Expected: kind,
			Found:    raw.DType(),
		}
	}
	return nil
}
