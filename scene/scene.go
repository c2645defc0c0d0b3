// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the mini scene container: an in-memory graph of
// instances, objects, meshes, materials, textures and lights, its binary
// file format, and bounding box computation over the graph.
//
// Objects, meshes, materials, and textures are shared by pointer, so one
// object can be placed by many instances and one material used by many
// meshes. [Scene.Save] and [Load] preserve that sharing.
package scene

// Scene is the root of a mini scene: the list of instances and the lights.
// A Scene is not safe for concurrent mutation.
type Scene struct {
	// Instances is the scene population, in order. Entries may be nil
	// (deleted slots), and the same instance may appear more than once.
	Instances []*Instance

	QuadLights []QuadLight
	DirLights  []DirLight

	// EnvMapLight is the optional environment light.
	EnvMapLight *EnvMapLight
}

// New returns a new scene with the given instances.
func New(instances ...*Instance) *Scene {
	return &Scene{Instances: instances}
}

// Stats are summary counts for a scene, as reported by the mini tools.
type Stats struct {
	Instances     int            `yaml:"instances"`
	NullInstances int            `yaml:"nullInstances"`
	Objects       int            `yaml:"objects"`
	Meshes        int            `yaml:"meshes"`
	Materials     map[string]int `yaml:"materials"`
	Textures      int            `yaml:"textures"`

	// Triangles and Vertices count each distinct mesh once.
	Triangles int `yaml:"triangles"`
	Vertices  int `yaml:"vertices"`

	// InstancedTriangles counts the triangles of every instance.
	InstancedTriangles int `yaml:"instancedTriangles"`

	QuadLights  int  `yaml:"quadLights"`
	DirLights   int  `yaml:"dirLights"`
	EnvMapLight bool `yaml:"envMapLight"`
}

// Stats returns the summary counts for the scene.
func (sc *Scene) Stats() Stats {
	sr := NewSerialized(sc)
	st := Stats{
		Objects:     sr.Objects.Len(),
		Meshes:      sr.Meshes.Len(),
		Materials:   map[string]int{},
		Textures:    sr.Textures.Len(),
		QuadLights:  len(sc.QuadLights),
		DirLights:   len(sc.DirLights),
		EnvMapLight: sc.EnvMapLight != nil,
	}
	for _, mat := range sr.Materials.Order {
		st.Materials[mat.Tag().String()]++
	}
	for _, ms := range sr.Meshes.Order {
		st.Triangles += ms.NumTriangles()
		st.Vertices += len(ms.Vertices)
	}
	objTris := make([]int, sr.Objects.Len())
	for i, obj := range sr.Objects.Order {
		for _, ms := range obj.Meshes {
			if ms != nil {
				objTris[i] += ms.NumTriangles()
			}
		}
	}
	for _, in := range sc.Instances {
		if in == nil {
			st.NullInstances++
			continue
		}
		st.Instances++
		if id := sr.ObjectID(in.Object); id >= 0 {
			st.InstancedTriangles += objTris[id]
		}
	}
	return st
}
