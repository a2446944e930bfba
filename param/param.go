// Copyright 2026 The TensorTypes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package param provides branded scalar types for tensor dimensions.
//
// Two dimension values of the same magnitude — a batch size of 512 and a
// sequence length of 512 — are interchangeable as plain integers and can be
// transposed by position without any compiler complaint. Declaring one
// distinct type per dimension role closes that hole:
//
//	type BatchSize param.Dim
//	type SequenceLength param.Dim
//
//	func attend(b BatchSize, s SequenceLength) { ... }
//
// attend(seq, batch) is now a compile error. Conversion to the numeric
// dimension type is total and lossless in both directions: param.Int64 for
// the shape-comparison direction, an ordinary Go conversion for the other.
package param

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Dim is the numeric dimension type all shape comparison uses. Branded
// dimension types are declared as defined types over Dim.
type Dim int64

// Value constrains branded dimension types. Any type declared over Dim (or
// int64) satisfies it; a dimension source that cannot convert to the
// numeric dimension type fails to compile.
type Value interface {
	~int64
}

// Int64 converts a branded dimension value to the numeric dimension type.
func Int64[V Value](v V) int64 {
	return int64(v)
}

var printer = message.NewPrinter(language.English)

// Format renders a dimension value with locale-aware digit grouping,
// e.g. 12288 as "12,288".
func Format[V Value](v V) string {
	return printer.Sprintf("%d", int64(v))
}

// String renders the dimension with digit grouping.
func (d Dim) String() string {
	return Format(d)
}
