// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Affine3 is a 3D affine transform: a linear part followed by a translation.
// Its binary layout is 12 float32 values: the three columns of Linear
// followed by P, which is the layout instance transforms use on disk.
type Affine3 struct {
	Linear Matrix3
	P      Vector3
}

// IdentityAffine3 returns the identity transform.
func IdentityAffine3() Affine3 {
	return Affine3{Linear: Identity3()}
}

// TranslateAffine3 returns a pure translation by t.
func TranslateAffine3(t Vector3) Affine3 {
	return Affine3{Linear: Identity3(), P: t}
}

// ScaleAffine3 returns a pure scaling by s along each axis.
func ScaleAffine3(s Vector3) Affine3 {
	return Affine3{Linear: Scale3(s)}
}

// RotateAffine3 returns a rotation by angle radians around the given axis
// through the origin.
func RotateAffine3(axis Vector3, angle float32) Affine3 {
	return Affine3{Linear: Rotate3(axis, angle)}
}

// Mul returns the composition a * b, which applies b first and then a.
func (a Affine3) Mul(b Affine3) Affine3 {
	return Affine3{
		Linear: a.Linear.Mul(b.Linear),
		P:      a.Linear.MulVector3(b.P).Add(a.P),
	}
}

// MulPoint transforms point p, including the translation.
func (a Affine3) MulPoint(p Vector3) Vector3 {
	return a.Linear.MulVector3(p).Add(a.P)
}

// MulVector transforms direction v, ignoring the translation.
func (a Affine3) MulVector(v Vector3) Vector3 {
	return a.Linear.MulVector3(v)
}

// Inverse returns the inverse transform.
func (a Affine3) Inverse() Affine3 {
	li := a.Linear.Inverse()
	return Affine3{Linear: li, P: li.MulVector3(a.P).Negate()}
}

// IsIdentity returns whether this is exactly the identity transform.
func (a Affine3) IsIdentity() bool {
	return a == IdentityAffine3()
}
