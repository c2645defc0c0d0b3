// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/mini/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitCube returns a mesh of the axis-aligned unit cube centered at the origin.
func unitCube(mat Material) *Mesh {
	ms := NewMesh(mat)
	for i := range 8 {
		ms.Vertices = append(ms.Vertices, math32.B3(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5).Corner(i))
	}
	ms.Indices = []math32.Vector3i{
		{X: 0, Y: 1, Z: 3}, {X: 0, Y: 3, Z: 2}, {X: 4, Y: 6, Z: 7}, {X: 4, Y: 7, Z: 5},
		{X: 0, Y: 4, Z: 5}, {X: 0, Y: 5, Z: 1}, {X: 2, Y: 3, Z: 7}, {X: 2, Y: 7, Z: 6},
		{X: 0, Y: 2, Z: 6}, {X: 0, Y: 6, Z: 4}, {X: 1, Y: 5, Z: 7}, {X: 1, Y: 7, Z: 3},
	}
	return ms
}

// quad returns a two triangle mesh with normals and texcoords.
func quad(mat Material, z float32) *Mesh {
	ms := NewMesh(mat)
	ms.Vertices = []math32.Vector3{{X: 0, Y: 0, Z: z}, {X: 1, Y: 0, Z: z}, {X: 1, Y: 1, Z: z}, {X: 0, Y: 1, Z: z}}
	ms.Normals = []math32.Vector3{{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}}
	ms.Texcoords = []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	ms.Indices = []math32.Vector3i{{X: 0, Y: 1, Z: 2}, {X: 0, Y: 2, Z: 3}}
	return ms
}

// testScene returns a scene with shared objects, meshes, materials
// and textures, one of every material variant, and all light kinds.
func testScene() *Scene {
	color := NewTexture(2, 2, TextureRGBAUint8)
	copy(color.Data, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	alpha := NewTexture(1, 3, TextureFloat1)
	alpha.FilterMode = FilterNearest

	disney := NewDisney()
	disney.BaseColor = math32.Vec3(0.9, 0.1, 0.2)
	disney.ColorTexture = color
	disney.AlphaTexture = alpha
	disney2 := NewDisney()
	disney2.ColorTexture = color
	metal := NewMetal()
	metal.Roughness = 0.3

	materials := []Material{disney, NewMatte(), NewPlastic(), metal, NewVelvet(), NewMetallicPaint(), NewThinGlass(), NewDielectric(), disney2}
	var meshes []*Mesh
	for i, mat := range materials {
		meshes = append(meshes, quad(mat, float32(i)))
	}
	shared := unitCube(disney)
	a := NewObject(append(meshes[:5:5], shared)...)
	b := NewObject(append(meshes[5:], shared)...)

	sc := New(
		NewInstance(a),
		NewInstance(b, math32.TranslateAffine3(math32.Vec3(5, 0, 0))),
		NewInstance(a, math32.RotateAffine3(math32.Vec3(0, 1, 0), 0.5)),
	)
	sc.QuadLights = []QuadLight{{Corner: math32.Vec3(0, 10, 0), Edge0: math32.Vec3(1, 0, 0), Edge1: math32.Vec3(0, 0, 1), Emission: math32.Vector3Scalar(10)}}
	sc.DirLights = []DirLight{{Direction: math32.Vec3(0, -1, 0), Radiance: math32.Vector3Scalar(2)}, {Direction: math32.Vec3(1, -1, 0), Radiance: math32.Vector3Scalar(0.5)}}
	env := NewTexture(4, 2, TextureFloat4)
	env.Data[5] = 42
	sc.EnvMapLight = NewEnvMapLight(env)
	sc.EnvMapLight.Transform = math32.RotateAffine3(math32.Vec3(0, 0, 1), 1)
	return sc
}

func TestMeshValidate(t *testing.T) {
	ms := unitCube(NewMatte())
	assert.NoError(t, ms.Validate())
	assert.Equal(t, 12, ms.NumTriangles())

	ms.Normals = make([]math32.Vector3, 3)
	assert.Error(t, ms.Validate())
	ms.Normals = nil

	ms.Indices = append(ms.Indices, math32.Vec3i(0, 1, 8))
	assert.ErrorIs(t, ms.Validate(), ErrInvalidReference)

	assert.ErrorIs(t, (&Mesh{}).Validate(), ErrInvalidReference)
	assert.Equal(t, MaterialDisney, NewMesh(nil).Material.Tag())
}

func TestMaterialTags(t *testing.T) {
	for tag := MaterialDisney; tag < MaterialTagN; tag++ {
		mat, err := NewMaterial(tag)
		require.NoError(t, err)
		assert.Equal(t, tag, mat.Tag())
		assert.NotEqual(t, "Invalid", tag.String())
	}
	_, err := NewMaterial(MaterialInvalid)
	assert.ErrorIs(t, err, ErrUnsupportedMaterial)
	_, err = NewMaterial(MaterialTagN)
	assert.ErrorIs(t, err, ErrUnsupportedMaterial)
	assert.Equal(t, "MaterialTag(42)", MaterialTag(42).String())
	assert.Equal(t, "Invalid", MaterialInvalid.String())
}

func TestStats(t *testing.T) {
	sc := testScene()
	sc.Instances = append(sc.Instances, nil)
	st := sc.Stats()
	assert.Equal(t, 3, st.Instances)
	assert.Equal(t, 1, st.NullInstances)
	assert.Equal(t, 2, st.Objects)
	assert.Equal(t, 10, st.Meshes)
	assert.Equal(t, 2, st.Textures)
	assert.Equal(t, map[string]int{"Disney": 2, "Matte": 1, "Plastic": 1, "Metal": 1, "Velvet": 1, "MetallicPaint": 1, "ThinGlass": 1, "Dielectric": 1}, st.Materials)
	assert.Equal(t, 9*2+12, st.Triangles)
	assert.Equal(t, 9*4+8, st.Vertices)
	assert.Equal(t, 2*(5*2+12)+(4*2+12), st.InstancedTriangles)
	assert.Equal(t, 1, st.QuadLights)
	assert.Equal(t, 2, st.DirLights)
	assert.True(t, st.EnvMapLight)
}
