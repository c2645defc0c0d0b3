// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Serialized is a flattened view of a [Scene] that assigns every distinct
// texture, material, object, and mesh a dense ID, so that cross-references
// can be stored as integers. Distinct is by identity: two separate objects
// with equal contents get two IDs.
//
// IDs are assigned in a single depth-first traversal of the instance list
// (instance, object, meshes, material, textures), first seen wins, so
// each kind of ID is in [0, N) with no gaps. The environment light texture
// is not registered, as it is stored inline with the light.
type Serialized struct {
	Textures  *Registry[*Texture]
	Materials *Registry[Material]
	Objects   *Registry[*Object]
	Meshes    *Registry[*Mesh]
}

// NewSerialized returns the [Serialized] view of the given scene.
func NewSerialized(sc *Scene) *Serialized {
	sr := &Serialized{
		Textures:  NewRegistry[*Texture](),
		Materials: NewRegistry[Material](),
		Objects:   NewRegistry[*Object](),
		Meshes:    NewRegistry[*Mesh](),
	}
	for _, in := range sc.Instances {
		if in == nil || in.Object == nil {
			continue
		}
		if _, added := sr.Objects.Add(in.Object); !added {
			continue
		}
		for _, ms := range in.Object.Meshes {
			if ms == nil {
				continue
			}
			if _, added := sr.Meshes.Add(ms); !added || IsNilMaterial(ms.Material) {
				continue
			}
			if _, added := sr.Materials.Add(ms.Material); !added {
				continue
			}
			for _, tx := range ms.Material.Textures() {
				if tx != nil {
					sr.Textures.Add(tx)
				}
			}
		}
	}
	return sr
}

// TextureID returns the ID of the given texture, or -1 if it is nil or
// not part of the scene.
func (sr *Serialized) TextureID(tx *Texture) int {
	if tx == nil {
		return -1
	}
	return sr.Textures.ID(tx)
}

// MaterialID returns the ID of the given material, or -1 if it is nil or
// not part of the scene.
func (sr *Serialized) MaterialID(mat Material) int {
	if IsNilMaterial(mat) {
		return -1
	}
	return sr.Materials.ID(mat)
}

// ObjectID returns the ID of the given object, or -1 if it is nil or
// not part of the scene.
func (sr *Serialized) ObjectID(obj *Object) int {
	if obj == nil {
		return -1
	}
	return sr.Objects.ID(obj)
}

// MeshID returns the ID of the given mesh, or -1 if it is nil or
// not part of the scene.
func (sr *Serialized) MeshID(ms *Mesh) int {
	if ms == nil {
		return -1
	}
	return sr.Meshes.ID(ms)
}

// ID returns the ID of any node kind: *Texture, [Material], *Object
// or *Mesh. It returns -1 for nil, unknown nodes, and other types.
func (sr *Serialized) ID(node any) int {
	switch n := node.(type) {
	case *Texture:
		return sr.TextureID(n)
	case *Object:
		return sr.ObjectID(n)
	case *Mesh:
		return sr.MeshID(n)
	case Material:
		return sr.MaterialID(n)
	}
	return -1
}
