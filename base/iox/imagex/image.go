// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"

	"golang.org/x/image/draw"
)

// CloneAsRGBA returns an RGBA copy of the supplied image,
// with its bounds moved to the origin.
func CloneAsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	bounds := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)
	return img
}

// AsRGBA returns the image as an RGBA: if it already is one, then
// it returns that image directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	return CloneAsRGBA(src)
}

// PackedRGBA returns the pixels of the image as a tightly packed,
// row-major RGBA8 buffer (4 bytes per pixel, no row padding),
// along with the width and height.
func PackedRGBA(src image.Image) (width, height int, pix []byte) {
	rgba := AsRGBA(src)
	if rgba == nil {
		return 0, 0, nil
	}
	b := rgba.Bounds()
	width, height = b.Dx(), b.Dy()
	pix = make([]byte, 0, width*height*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := rgba.PixOffset(b.Min.X, y)
		pix = append(pix, rgba.Pix[off:off+width*4]...)
	}
	return
}

// FromPackedRGBA returns an image wrapping a copy of the given tightly packed
// RGBA8 buffer. It returns nil if the buffer is too small.
func FromPackedRGBA(width, height int, pix []byte) *image.RGBA {
	if width < 0 || height < 0 || len(pix) < width*height*4 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pix[:width*height*4])
	return img
}
