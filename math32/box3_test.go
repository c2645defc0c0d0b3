// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3Expand(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoints([]Vector3{Vec3(1, 2, 3), Vec3(-1, 5, 0)})
	assert.Equal(t, B3(-1, 2, 0, 1, 5, 3), b)
	assert.False(t, b.IsEmpty())

	// an empty box never grows a box
	b.ExpandByBox(B3Empty())
	assert.Equal(t, B3(-1, 2, 0, 1, 5, 3), b)

	e := B3Empty()
	e.ExpandByBox(b)
	assert.Equal(t, b, e)

	assert.Equal(t, Vec3(0, 3.5, 1.5), b.Center())
	assert.Equal(t, Vec3(2, 3, 3), b.Size())
	assert.True(t, b.ContainsPoint(Vec3(0, 3, 1)))
	assert.False(t, b.ContainsPoint(Vec3(0, 6, 1)))
	assert.True(t, b.ContainsBox(B3(0, 3, 1, 1, 4, 2)))
}

func TestBox3Corners(t *testing.T) {
	b := B3(0, 0, 0, 1, 2, 3)
	assert.Equal(t, Vec3(1, 2, 3), b.Corner(0))
	assert.Equal(t, Vec3(0, 0, 0), b.Corner(7))
	seen := map[Vector3]bool{}
	for i := range 8 {
		seen[b.Corner(i)] = true
	}
	assert.Len(t, seen, 8)
}

func TestBox3MulAffine3(t *testing.T) {
	cube := B3(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5)
	assert.Equal(t, cube, cube.MulAffine3(IdentityAffine3()))
	assert.Equal(t, B3(9.5, -0.5, 1.5, 10.5, 0.5, 2.5), cube.MulAffine3(TranslateAffine3(Vec3(10, 0, 2))))

	rot := cube.MulAffine3(RotateAffine3(Vec3(0, 1, 0), DegToRad(90)))
	AssertEqualVector3(t, cube.Min, rot.Min)
	AssertEqualVector3(t, cube.Max, rot.Max)

	// 45 degrees grows the box by sqrt(2) in the rotated plane
	rot45 := cube.MulAffine3(RotateAffine3(Vec3(0, 0, 1), DegToRad(45)))
	assert.InDelta(t, Sqrt(2)/2, rot45.Max.X, StandardTol)
	assert.InDelta(t, 0.5, rot45.Max.Z, StandardTol)

	assert.True(t, B3Empty().MulAffine3(TranslateAffine3(Vec3(1, 1, 1))).IsEmpty())
}
