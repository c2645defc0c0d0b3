// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Vector3i is a 3D vector/point with X, Y and Z int32 components.
// Meshes use it for triangle vertex index triples.
type Vector3i struct {
	X int32
	Y int32
	Z int32
}

// Vec3i returns a new [Vector3i] with the given x, y and y components.
func Vec3i(x, y, z int32) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

func (v Vector3i) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// Dim returns this vector component by dimension index.
func (v Vector3i) Dim(dim int) int32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("dim is out of range")
	}
}

// SetDim sets this vector component value by dimension index.
func (v *Vector3i) SetDim(dim int, value int32) {
	switch dim {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic("dim is out of range")
	}
}

// Min returns the smallest of the three components.
func (v Vector3i) Min() int32 {
	return min(v.X, v.Y, v.Z)
}

// Max returns the largest of the three components.
func (v Vector3i) Max() int32 {
	return max(v.X, v.Y, v.Z)
}
