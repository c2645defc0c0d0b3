// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image"

	"cogentcore.org/mini/base/iox/imagex"
	"cogentcore.org/mini/math32"
)

// TextureFormat is the pixel format of a [Texture].
type TextureFormat int32

const (
	TextureUndefined TextureFormat = iota
	TextureFloat4
	TextureFloat1
	TextureRGBAUint8
	TextureUint8
	TextureUint16
	// TextureEmbeddedPtex holds the raw bytes of a ptex file.
	TextureEmbeddedPtex
)

var textureFormatNames = [...]string{"Undefined", "Float4", "Float1", "RGBAUint8", "Uint8", "Uint16", "EmbeddedPtex"}

func (f TextureFormat) String() string {
	if f < 0 || int(f) >= len(textureFormatNames) {
		return fmt.Sprintf("TextureFormat(%d)", int32(f))
	}
	return textureFormatNames[f]
}

// TexelSize returns the number of bytes per texel for the format,
// or 0 if the format has no fixed texel size.
func (f TextureFormat) TexelSize() int {
	switch f {
	case TextureFloat4:
		return 16
	case TextureFloat1, TextureRGBAUint8:
		return 4
	case TextureUint8:
		return 1
	case TextureUint16:
		return 2
	}
	return 0
}

// TextureFilterMode is the sampling filter used for a [Texture].
type TextureFilterMode int32

const (
	FilterBilinear TextureFilterMode = iota
	FilterNearest
)

func (f TextureFilterMode) String() string {
	switch f {
	case FilterBilinear:
		return "Bilinear"
	case FilterNearest:
		return "Nearest"
	}
	return fmt.Sprintf("TextureFilterMode(%d)", int32(f))
}

// Texture is an image referenced by materials and the environment light.
// Textures are shared by pointer; a nil *Texture means no texture.
type Texture struct {
	// Size is the width and height in texels.
	Size math32.Vector2i

	// Format is the pixel format of Data.
	Format TextureFormat

	// FilterMode is how the texture is sampled.
	FilterMode TextureFilterMode

	// Data is the raw pixel buffer, row major.
	Data []byte
}

// NewTexture returns a new texture of the given size and format, with
// a zeroed pixel buffer if the format has a fixed texel size.
func NewTexture(width, height int, format TextureFormat) *Texture {
	tx := &Texture{Size: math32.Vec2i(int32(width), int32(height)), Format: format}
	if ts := format.TexelSize(); ts > 0 {
		tx.Data = make([]byte, width*height*ts)
	}
	return tx
}

// NewTextureFromImage returns a new [TextureRGBAUint8] texture holding
// the pixels of the given image.
func NewTextureFromImage(img image.Image) *Texture {
	w, h, pix := imagex.PackedRGBA(img)
	return &Texture{Size: math32.Vec2i(int32(w), int32(h)), Format: TextureRGBAUint8, Data: pix}
}

// OpenTexture opens the given image file as a [TextureRGBAUint8] texture.
func OpenTexture(filename string) (*Texture, error) {
	img, _, err := imagex.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("scene.OpenTexture: %w", err)
	}
	return NewTextureFromImage(img), nil
}

// Image returns the texture as an image if it is a [TextureRGBAUint8]
// texture with enough data, and nil otherwise.
func (tx *Texture) Image() *image.RGBA {
	if tx == nil || tx.Format != TextureRGBAUint8 {
		return nil
	}
	return imagex.FromPackedRGBA(int(tx.Size.X), int(tx.Size.Y), tx.Data)
}

func (tx *Texture) String() string {
	if tx == nil {
		return "Texture{nil}"
	}
	return fmt.Sprintf("Texture{size=%v, format=%v, filter=%v, bytes=%d}", tx.Size, tx.Format, tx.FilterMode, len(tx.Data))
}
