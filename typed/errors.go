// Copyright 2026 The TensorTypes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package typed

import (
	"fmt"

	"github.com/tensor-types/tensortypes/tensor"
)

// The four validation error kinds. Each carries the declaring wrapper
// type's name; callers match with errors.As to decide remediation.

// UninitializedError reports construction attempted before the wrapper
// type's dimensions were registered with Set.
type UninitializedError struct {
	TypeName string
}

func (e *UninitializedError) Error() string {
	return fmt.Sprintf("new called on uninitialized tensor type %s", e.TypeName)
}

// AlreadyInitializedError reports a second Set call on a wrapper type whose
// dimensions are already registered. The stored dimensions are unchanged.
type AlreadyInitializedError struct {
	TypeName string
}

func (e *AlreadyInitializedError) Error() string {
	return fmt.Sprintf("set called on already initialized tensor type %s", e.TypeName)
}

// ShapeMismatchError reports a tensor whose shape differs from the wrapper
// type's expected dimensions.
type ShapeMismatchError struct {
	TypeName string
	Expected Dims
	Found    Dims
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch on tensor type %s: expected dimensions %v, found %v",
		e.TypeName, e.Expected, e.Found)
}

// KindMismatchError reports a tensor whose element kind differs from the
// wrapper type's expected kind.
type KindMismatchError struct {
	TypeName string
	Expected tensor.DataType
	Found    tensor.DataType
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("kind mismatch on tensor type %s: expected kind %s, found %s",
		e.TypeName, e.Expected, e.Found)
}

// The following two conditions are not validation failures and sit outside
// the four-kind taxonomy.

// ConsumedError reports use of a wrapper whose tensor was already moved out
// by IntoInner. This is a programmer error, surfaced as a distinct value so
// it is never mistaken for a validation failure.
type ConsumedError struct {
	TypeName string
}

func (e *ConsumedError) Error() string {
	return fmt.Sprintf("use of consumed tensor type %s: IntoInner already transferred ownership", e.TypeName)
}

// ArityError reports a Set call whose value count does not match the
// wrapper type's declared rank. This is a declaration-time defect; Go
// variadics cannot reject it at compile time.
type ArityError struct {
	TypeName string
	Declared int
	Given    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("tensor type %s declares %d dimensions, set received %d", e.TypeName, e.Declared, e.Given)
}
