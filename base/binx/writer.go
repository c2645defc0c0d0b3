// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binx

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Writer is a buffered binary writer with a sticky error: after the first
// failed write all further writes are no-ops, and the failure is reported
// once by [Writer.Err] or [Writer.Flush].
type Writer struct {
	w   *bufio.Writer
	n   int64
	err error
}

// NewWriter returns a new [Writer] writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Err returns the first error that happened while writing, if any.
func (w *Writer) Err() error {
	return w.err
}

// Len returns the number of bytes successfully written so far.
func (w *Writer) Len() int64 {
	return w.n
}

// Flush writes any buffered data to the underlying writer and
// returns the first error that happened on this stream.
func (w *Writer) Flush() error {
	if w.err == nil {
		w.err = w.w.Flush()
	}
	return w.err
}

func (w *Writer) write(data any) {
	if w.err != nil {
		return
	}
	if w.err = binary.Write(w.w, Order, data); w.err == nil {
		w.n += int64(binary.Size(data))
	}
}

// WriteElement writes a single fixed-size value.
func WriteElement[T any](w *Writer, v T) {
	w.write(&v)
}

// WriteVector writes the length of the slice as a uint64
// followed by its elements.
func WriteVector[T any](w *Writer, v []T) {
	w.write(uint64(len(v)))
	if len(v) > 0 {
		w.write(v)
	}
}

// WriteFields writes each of the given fixed-size values in order.
func (w *Writer) WriteFields(vals ...any) {
	for _, v := range vals {
		w.write(v)
	}
}
