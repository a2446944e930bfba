// Copyright 2026 The TensorTypes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package typed

import "github.com/tensor-types/tensortypes/tensor"

// Dims is an expected tensor shape: an ordered sequence of dimension sizes.
// Its length is fixed per wrapper type at declaration time.
type Dims []int64

// Equal checks if two dimension sequences are equal in length and position.
func (d Dims) Equal(other Dims) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the dimension sequence.
func (d Dims) Clone() Dims {
	clone := make(Dims, len(d))
	copy(clone, d)
	return clone
}

// shapeDims converts an actual tensor shape to the numeric dimension type
// used for comparison.
func shapeDims(s tensor.Shape) Dims {
	dims := make(Dims, len(s))
	for i, v := range s {
		dims[i] = int64(v)
	}
	return dims
}
