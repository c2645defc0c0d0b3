// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binx

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"cogentcore.org/mini/base/errors"
)

// vectorChunk is the number of elements allocated at a time
// when the stream size is unknown.
const vectorChunk = 64 * 1024

// Reader is a buffered binary reader that tracks the number of
// bytes consumed, so that vector counts can be checked against
// the bytes remaining in the stream before allocating.
type Reader struct {
	r    *bufio.Reader
	n    int64
	size int64
}

// NewReader returns a new [Reader] reading from r. If size is
// non-negative it is the total number of bytes in the stream,
// which enables early detection of corrupt vector counts.
func NewReader(r io.Reader, size int64) *Reader {
	return &Reader{r: bufio.NewReader(r), size: size}
}

// Len returns the number of bytes consumed so far.
func (r *Reader) Len() int64 {
	return r.n
}

// Remaining returns the number of bytes left in the stream,
// or -1 if the stream size is unknown.
func (r *Reader) Remaining() int64 {
	if r.size < 0 {
		return -1
	}
	return r.size - r.n
}

func (r *Reader) read(data any) error {
	err := binary.Read(r.r, Order, data)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w at byte %d: %w", ErrTruncated, r.n, err)
		}
		return err
	}
	r.n += int64(binary.Size(data))
	return nil
}

// ReadInto reads a single fixed-size value into v.
func ReadInto[T any](r *Reader, v *T) error {
	return r.read(v)
}

// ReadElement reads and returns a single fixed-size value.
func ReadElement[T any](r *Reader) (T, error) {
	var v T
	err := r.read(&v)
	return v, err
}

// ReadVector reads a uint64 element count followed by that many
// elements. An empty vector is returned as nil. It fails with [ErrTruncated] if the count exceeds what
// is left in the stream.
func ReadVector[T any](r *Reader) ([]T, error) {
	count, err := ReadElement[uint64](r)
	if err != nil {
		return nil, err
	}
	esz := Size[T]()
	if esz <= 0 {
		return nil, fmt.Errorf("binx.ReadVector: element type %T does not have a fixed size", *new(T))
	}
	if count > math.MaxInt/uint64(esz) {
		return nil, fmt.Errorf("%w: vector of %d elements at byte %d", ErrTruncated, count, r.n)
	}
	if rem := r.Remaining(); rem >= 0 && int64(count)*int64(esz) > rem {
		return nil, fmt.Errorf("%w: vector of %d elements needs %d bytes but only %d remain", ErrTruncated, count, int64(count)*int64(esz), rem)
	}
	n := int(count)
	if n == 0 {
		return nil, nil
	}
	if r.size >= 0 || n <= vectorChunk {
		v := make([]T, n)
		if err := r.read(v); err != nil {
			return nil, err
		}
		return v, nil
	}
	// unknown stream size: grow in chunks so a corrupt count
	// cannot force one huge allocation
	v := make([]T, 0, vectorChunk)
	for len(v) < n {
		c := min(vectorChunk, n-len(v))
		chunk := make([]T, c)
		if err := r.read(chunk); err != nil {
			return nil, err
		}
		v = append(v, chunk...)
	}
	return v, nil
}

// ReadFields reads into each of the given pointers to fixed-size
// values in order, stopping at the first error.
func (r *Reader) ReadFields(ptrs ...any) error {
	for _, p := range ptrs {
		if err := r.read(p); err != nil {
			return err
		}
	}
	return nil
}
