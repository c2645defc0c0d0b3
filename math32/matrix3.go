// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Matrix3 is a 3x3 linear transform stored in column-major order,
// so elements 0..2 are the image of the X axis, 3..5 of Y and 6..8 of Z.
type Matrix3 [9]float32

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3FromColumns returns the matrix with the given column vectors.
func Matrix3FromColumns(vx, vy, vz Vector3) Matrix3 {
	return Matrix3{vx.X, vx.Y, vx.Z, vy.X, vy.Y, vy.Z, vz.X, vz.Y, vz.Z}
}

// Column returns column i (0..2) as a vector.
func (m Matrix3) Column(i int) Vector3 {
	return Vec3(m[i*3], m[i*3+1], m[i*3+2])
}

// Scale3 returns a scaling matrix along each axis.
func Scale3(s Vector3) Matrix3 {
	return Matrix3{
		s.X, 0, 0,
		0, s.Y, 0,
		0, 0, s.Z,
	}
}

// Rotate3 returns the matrix rotating by angle radians (counter-clockwise)
// around the given axis, which need not be normalized.
func Rotate3(axis Vector3, angle float32) Matrix3 {
	u := axis.Normal()
	s := Sin(angle)
	c := Cos(angle)
	t := 1 - c
	return Matrix3FromColumns(
		Vec3(u.X*u.X+(1-u.X*u.X)*c, u.X*u.Y*t+u.Z*s, u.X*u.Z*t-u.Y*s),
		Vec3(u.X*u.Y*t-u.Z*s, u.Y*u.Y+(1-u.Y*u.Y)*c, u.Y*u.Z*t+u.X*s),
		Vec3(u.X*u.Z*t+u.Y*s, u.Y*u.Z*t-u.X*s, u.Z*u.Z+(1-u.Z*u.Z)*c),
	)
}

// MulVector3 returns the product m * v.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vec3(
		m[0]*v.X+m[3]*v.Y+m[6]*v.Z,
		m[1]*v.X+m[4]*v.Y+m[7]*v.Z,
		m[2]*v.X+m[5]*v.Y+m[8]*v.Z,
	)
}

// Mul returns the matrix product m * other, which applies other first.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	return Matrix3FromColumns(
		m.MulVector3(other.Column(0)),
		m.MulVector3(other.Column(1)),
		m.MulVector3(other.Column(2)),
	)
}

// Determinant returns the determinant of this matrix.
func (m Matrix3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted the zero matrix is returned.
func (m Matrix3) Inverse() Matrix3 {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}
	}
	id := 1 / det
	return Matrix3{
		(m[4]*m[8] - m[7]*m[5]) * id,
		(m[7]*m[2] - m[1]*m[8]) * id,
		(m[1]*m[5] - m[4]*m[2]) * id,
		(m[6]*m[5] - m[3]*m[8]) * id,
		(m[0]*m[8] - m[6]*m[2]) * id,
		(m[3]*m[2] - m[0]*m[5]) * id,
		(m[3]*m[7] - m[6]*m[4]) * id,
		(m[6]*m[1] - m[0]*m[7]) * id,
		(m[0]*m[4] - m[3]*m[1]) * id,
	}
}
