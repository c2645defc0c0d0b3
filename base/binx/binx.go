// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package binx provides fixed-layout binary encoding of scalar values,
// fixed-size structs, and length-prefixed vectors of them.
//
// Every value is encoded field by field in [Order] with no padding, so
// writer and reader must agree on the Go type being transferred. Vectors
// are a uint64 element count followed by that many elements.
package binx

import (
	"encoding/binary"

	"cogentcore.org/mini/base/errors"
)

// Order is the byte order of all encoded values. It matches the memory
// layout of every host the scene tools run on.
var Order = binary.LittleEndian

// ErrTruncated is returned when a stream ends before a value is complete,
// or when a vector claims more elements than the stream has bytes left.
var ErrTruncated = errors.New("binx: truncated stream")

// Size returns the encoded size in bytes of one value of type T,
// or -1 if T does not have a fixed size.
func Size[T any]() int {
	var zv T
	return binary.Size(zv)
}
