// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replicate

import (
	"path/filepath"
	"testing"

	"cogentcore.org/mini/base/iox/tomlx"
	"cogentcore.org/mini/base/randx"
	"cogentcore.org/mini/math32"
	"cogentcore.org/mini/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inputScene() *scene.Scene {
	mat := scene.NewDisney()
	tri := scene.NewMesh(mat)
	tri.Vertices = []math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 0, Y: 2, Z: 0}}
	tri.Indices = []math32.Vector3i{{X: 0, Y: 1, Z: 2}}
	quad := scene.NewMesh(mat)
	quad.Vertices = []math32.Vector3{{X: 0, Y: 0, Z: 1}, {X: 2, Y: 0, Z: 1}, {X: 2, Y: 2, Z: 1}, {X: 0, Y: 2, Z: 1}}
	quad.Indices = []math32.Vector3i{{X: 0, Y: 1, Z: 2}, {X: 0, Y: 2, Z: 3}}
	obj := scene.NewObject(tri, nil, quad)
	sc := scene.New(scene.NewInstance(obj), nil, scene.NewInstance(obj, math32.TranslateAffine3(math32.Vec3(0, 0, -1))))
	sc.DirLights = []scene.DirLight{{Direction: math32.Vec3(0, -1, 0)}}
	return sc
}

func TestShared(t *testing.T) {
	in := inputScene()
	opts := DefaultOptions()
	opts.N = 3
	opts.Flat = false
	out, err := Replicate(in, opts, nil)
	require.NoError(t, err)
	require.Len(t, out.Instances, 6)
	for _, inst := range out.Instances {
		assert.Same(t, in.Instances[0].Object, inst.Object)
	}
	assert.Equal(t, in.DirLights, out.DirLights)
	assert.Equal(t, 1, out.Stats().Objects)

	// each pair of copies shares one placement
	rel := out.Instances[1].Transform.Mul(in.Instances[2].Transform.Inverse())
	assertAffine(t, out.Instances[0].Transform, rel)
}

func TestFlat(t *testing.T) {
	in := inputScene()
	opts := DefaultOptions()
	opts.N = 2
	out, err := Replicate(in, opts, nil)
	require.NoError(t, err)
	// copies * instances * meshes
	require.Len(t, out.Instances, 2*2*2)
	src := in.Instances[0].Object.Meshes[0]
	for i, inst := range out.Instances {
		require.Len(t, inst.Object.Meshes, 1)
		ms := inst.Object.Meshes[0]
		assert.Same(t, src.Material, ms.Material)
		if i%2 == 0 {
			assert.NotSame(t, src, ms)
			assert.Equal(t, src.Vertices, ms.Vertices)
			assert.Equal(t, src.Indices, ms.Indices)
			ms.Vertices[0].X = 42
			assert.Equal(t, float32(0), src.Vertices[0].X, "vertex data is copied")
		}
	}
	st := out.Stats()
	assert.Equal(t, 8, st.Objects)
	assert.Equal(t, 1, len(st.Materials))
}

func TestPlacement(t *testing.T) {
	in := inputScene()
	center := in.Bounds().Center()
	opts := DefaultOptions()
	opts.N = 50
	opts.Flat = false
	opts.Scale = 0.5
	out, err := Replicate(in, opts, randx.NewSysRand(3))
	require.NoError(t, err)
	for i := 0; i < len(out.Instances); i += 2 {
		xfm := out.Instances[i].Transform
		p := xfm.MulPoint(center).Sub(center)
		// VX is along X and VY along Z, and the rotation is about Y
		assert.InDelta(t, 0, p.Y, 1e-4)
		assert.True(t, p.X >= 0 && p.X <= 100, "x %g", p.X)
		assert.True(t, p.Z >= 0 && p.Z <= 100, "z %g", p.Z)
		assert.InDelta(t, 0.125, xfm.Linear.Determinant(), 1e-5)
		up := xfm.MulVector(math32.Vec3(0, 1, 0))
		assert.InDelta(t, 0.5, up.Y, 1e-5)
	}
}

func TestSeed(t *testing.T) {
	in := inputScene()
	opts := DefaultOptions()
	opts.Flat = false
	a, err := Replicate(in, opts, nil)
	require.NoError(t, err)
	b, err := Replicate(in, opts, randx.NewSysRand(opts.Seed))
	require.NoError(t, err)
	for i := range a.Instances {
		assert.Equal(t, a.Instances[i].Transform, b.Instances[i].Transform)
	}
	opts.Seed = 129
	c, err := Replicate(in, opts, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.Instances[0].Transform, c.Instances[0].Transform)
}

func TestValidate(t *testing.T) {
	opts := DefaultOptions()
	assert.NoError(t, opts.Validate())
	opts.VY = opts.VX.MulScalar(2)
	_, err := Replicate(inputScene(), opts, nil)
	assert.Error(t, err)
	opts = DefaultOptions()
	opts.Scale = 0
	assert.Error(t, opts.Validate())
	opts = DefaultOptions()
	opts.N = -1
	assert.Error(t, opts.Validate())

	out, err := Replicate(scene.New(), DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Empty(t, out.Instances)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 20, opts.N)
	assert.Equal(t, float32(1), opts.Scale)
	assert.Equal(t, math32.Vec3(100, 0, 0), opts.VX)
	assert.Equal(t, math32.Vec3(0, 0, 100), opts.VY)
	assert.True(t, opts.Flat)
	assert.Equal(t, int64(128), opts.Seed)
	assert.NoError(t, opts.Validate())
}

func TestOptionsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "replicate.toml")
	opts := DefaultOptions()
	opts.N = 7
	opts.VY = math32.Vec3(0, 50, 0)
	require.NoError(t, tomlx.Save(&opts, fn))

	got := DefaultOptions()
	require.NoError(t, tomlx.Open(&got, fn))
	assert.Equal(t, opts, got)
}

func assertAffine(t *testing.T, want, got math32.Affine3) {
	t.Helper()
	for i := range want.Linear {
		assert.InDelta(t, want.Linear[i], got.Linear[i], 1e-4)
	}
	assert.InDelta(t, want.P.X, got.P.X, 1e-3)
	assert.InDelta(t, want.P.Y, got.P.Y, 1e-3)
	assert.InDelta(t, want.P.Z, got.P.Z, 1e-3)
}
