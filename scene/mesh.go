// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/mini/math32"
)

// Mesh is an indexed triangle mesh with one [Material].
// Normals and Texcoords are optional: if present, they are index-aligned
// with Vertices and have the same length.
type Mesh struct {
	// Indices has one vertex index triple per triangle.
	Indices   []math32.Vector3i
	Vertices  []math32.Vector3
	Normals   []math32.Vector3
	Texcoords []math32.Vector2

	// Material is shared with other meshes; it must be non-nil to save.
	Material Material
}

// NewMesh returns a new empty mesh using the given material,
// or a default [Disney] material if it is nil.
func NewMesh(mat Material) *Mesh {
	if IsNilMaterial(mat) {
		mat = NewDisney()
	}
	return &Mesh{Material: mat}
}

// NumTriangles returns the number of triangles in the mesh.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Indices)
}

// Validate returns an error if the mesh has no material, an index out of
// range of the vertices, or per-vertex arrays that are not index-aligned.
func (ms *Mesh) Validate() error {
	if IsNilMaterial(ms.Material) {
		return fmt.Errorf("%w: mesh has no material", ErrInvalidReference)
	}
	nv := len(ms.Vertices)
	if len(ms.Normals) != 0 && len(ms.Normals) != nv {
		return fmt.Errorf("scene.Mesh: %d normals for %d vertices", len(ms.Normals), nv)
	}
	if len(ms.Texcoords) != 0 && len(ms.Texcoords) != nv {
		return fmt.Errorf("scene.Mesh: %d texcoords for %d vertices", len(ms.Texcoords), nv)
	}
	for i, tri := range ms.Indices {
		if tri.Min() < 0 || int(tri.Max()) >= nv {
			return fmt.Errorf("%w: triangle %d %v indexes outside of %d vertices", ErrInvalidReference, i, tri, nv)
		}
	}
	return nil
}

// Object is an ordered set of meshes placed into the scene by one or
// more [Instance]s. Objects are shared by pointer identity.
type Object struct {
	// Meshes may contain nil entries, which are dropped on save.
	Meshes []*Mesh
}

// NewObject returns a new object with the given meshes.
func NewObject(meshes ...*Mesh) *Object {
	return &Object{Meshes: meshes}
}

// Instance places an [Object] into world space.
type Instance struct {
	Object *Object

	// Transform maps object space to world space.
	Transform math32.Affine3
}

// NewInstance returns a new instance of the given object with the given
// transform, or the identity transform if none is given.
func NewInstance(obj *Object, xfm ...math32.Affine3) *Instance {
	in := &Instance{Object: obj, Transform: math32.IdentityAffine3()}
	if len(xfm) > 0 {
		in.Transform = xfm[0]
	}
	return in
}
