// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binx

import (
	"bytes"
	"io"
	"testing"

	"cogentcore.org/mini/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y, Z float32
}

func TestElements(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	WriteElement(w, uint64(4321000012))
	WriteElement(w, int32(-1))
	WriteElement(w, point{1, 2, 3})
	require.NoError(t, w.Flush())
	assert.Equal(t, int64(8+4+12), w.Len())
	assert.Equal(t, []byte{0x4c, 0x3a, 0x8d, 0x01, 0x01, 0x00, 0x00, 0x00}, buf.Bytes()[:8])

	r := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	assert.Equal(t, uint64(4321000012), must(ReadElement[uint64](r)))
	assert.Equal(t, int32(-1), must(ReadElement[int32](r)))
	var p point
	require.NoError(t, ReadInto(r, &p))
	assert.Equal(t, point{1, 2, 3}, p)
	assert.Equal(t, int64(0), r.Remaining())

	_, err := ReadElement[int32](r)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestVectors(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	WriteVector(w, []point{{1, 2, 3}, {4, 5, 6}})
	WriteVector(w, []byte{})
	WriteVector(w, []byte{9, 8, 7})
	require.NoError(t, w.Flush())
	assert.Equal(t, 8+2*12+8+8+3, buf.Len())

	// unknown size takes the same path for small vectors
	for _, size := range []int64{int64(buf.Len()), -1} {
		r := NewReader(bytes.NewReader(buf.Bytes()), size)
		assert.Equal(t, []point{{1, 2, 3}, {4, 5, 6}}, must(ReadVector[point](r)))
		assert.Empty(t, must(ReadVector[byte](r)))
		assert.Equal(t, []byte{9, 8, 7}, must(ReadVector[byte](r)))
	}
}

func TestVectorTruncated(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	WriteVector(w, make([]point, 10))
	require.NoError(t, w.Flush())
	data := buf.Bytes()[:buf.Len()-5]

	r := NewReader(bytes.NewReader(data), int64(len(data)))
	_, err := ReadVector[point](r)
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, int64(8), r.Len(), "count is consumed, but the elements are rejected up front")

	r = NewReader(bytes.NewReader(data), -1)
	_, err = ReadVector[point](r)
	assert.ErrorIs(t, err, ErrTruncated)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestVectorHugeCount(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	WriteElement(w, uint64(1)<<62)
	require.NoError(t, w.Flush())

	_, err := ReadVector[point](NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len())))
	assert.ErrorIs(t, err, ErrTruncated)
	_, err = ReadVector[point](NewReader(bytes.NewReader(buf.Bytes()), -1))
	assert.ErrorIs(t, err, ErrTruncated)
}

type failWriter struct {
	n int
}

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n+len(p) > 16 {
		return 0, errors.New("disk full")
	}
	f.n += len(p)
	return len(p), nil
}

func TestWriterStickyError(t *testing.T) {
	w := NewWriter(&failWriter{})
	for range 10000 {
		WriteElement(w, uint64(1))
	}
	err := w.Flush()
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, err, w.Err())
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteFields(point{1, 2, 3}, float32(1.5), point{4, 5, 6}, int32(7))
	require.NoError(t, w.Flush())
	assert.Equal(t, 12+4+12+4, buf.Len())

	var a, b point
	var f float32
	var i int32
	r := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, r.ReadFields(&a, &f, &b, &i))
	assert.Equal(t, point{1, 2, 3}, a)
	assert.Equal(t, float32(1.5), f)
	assert.Equal(t, point{4, 5, 6}, b)
	assert.Equal(t, int32(7), i)
	assert.ErrorIs(t, r.ReadFields(&f), ErrTruncated)
}
