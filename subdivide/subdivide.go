// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package subdivide splits every triangle of a scene into four by
// inserting the midpoints of its edges, keeping the sharing of
// instances, objects and meshes of the source scene.
package subdivide

import (
	"fmt"
	"log/slog"

	"cogentcore.org/mini/base/parallel"
	"cogentcore.org/mini/math32"
	"cogentcore.org/mini/scene"
)

// Scene returns a new scene in which every mesh of sc is subdivided once.
// Each distinct instance, object, and mesh of sc maps to exactly one new
// one, so shared nodes stay shared. Instance transforms, materials and
// lights are kept. The source scene is not modified.
func Scene(sc *scene.Scene) (*scene.Scene, error) {
	// distinct meshes, in first seen order
	meshIndex := map[*scene.Mesh]int{}
	var meshes []*scene.Mesh
	for _, in := range sc.Instances {
		if in == nil || in.Object == nil {
			continue
		}
		for _, ms := range in.Object.Meshes {
			if ms == nil {
				continue
			}
			if _, has := meshIndex[ms]; !has {
				if err := ms.Validate(); err != nil {
					return nil, fmt.Errorf("subdivide: mesh %d: %w", len(meshes), err)
				}
				meshIndex[ms] = len(meshes)
				meshes = append(meshes, ms)
			}
		}
	}

	divided := make([]*scene.Mesh, len(meshes))
	parallel.For(len(meshes), func(i int) {
		divided[i] = Mesh(meshes[i])
	})

	instances := map[*scene.Instance]*scene.Instance{}
	objects := map[*scene.Object]*scene.Object{}
	out := &scene.Scene{
		Instances:   make([]*scene.Instance, len(sc.Instances)),
		QuadLights:  sc.QuadLights,
		DirLights:   sc.DirLights,
		EnvMapLight: sc.EnvMapLight,
	}
	for i, in := range sc.Instances {
		if in == nil {
			continue
		}
		if nin, has := instances[in]; has {
			out.Instances[i] = nin
			continue
		}
		nin := &scene.Instance{Transform: in.Transform}
		if in.Object != nil {
			nobj, has := objects[in.Object]
			if !has {
				nobj = &scene.Object{Meshes: make([]*scene.Mesh, 0, len(in.Object.Meshes))}
				for _, ms := range in.Object.Meshes {
					if ms != nil {
						nobj.Meshes = append(nobj.Meshes, divided[meshIndex[ms]])
					}
				}
				objects[in.Object] = nobj
			}
			nin.Object = nobj
		}
		instances[in] = nin
		out.Instances[i] = nin
	}
	slog.Debug("subdivided scene", "instances", len(instances), "objects", len(objects), "meshes", len(meshes))
	return out, nil
}

// edge is an undirected mesh edge, with the lower vertex index first.
type edge [2]int32

func makeEdge(a, b int32) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}

// Mesh returns a new mesh in which every triangle of ms is replaced by four:
// one at each corner and one connecting the three edge midpoints.
// A midpoint shared by two triangles is one vertex. Normals and texture
// coordinates are interpolated if present. Vertices that no triangle
// uses are dropped. The new mesh uses the same material as ms.
// The indices of ms must be valid; see [scene.Mesh.Validate].
func Mesh(ms *scene.Mesh) *scene.Mesh {
	nv := len(ms.Indices) * 3
	d := &divider{
		src:     ms,
		dst:     &scene.Mesh{Material: ms.Material, Indices: make([]math32.Vector3i, 0, 4*len(ms.Indices))},
		corners: make(map[int32]int32, nv/2),
		edges:   make(map[edge]int32, nv),
	}
	for _, tri := range ms.Indices {
		var i, j [3]int32
		for k := range 3 {
			a, b := tri.Dim(k), tri.Dim((k+1)%3)
			j[k] = d.midpoint(a, b)
		}
		for k := range 3 {
			i[k] = d.corner(tri.Dim(k))
		}
		for k := range 3 {
			d.dst.Indices = append(d.dst.Indices, math32.Vec3i(i[k], j[k], j[(k+2)%3]))
		}
		d.dst.Indices = append(d.dst.Indices, math32.Vec3i(j[0], j[1], j[2]))
	}
	slog.Debug("subdivided mesh", "vertices", len(ms.Vertices), "triangles", len(ms.Indices),
		"newVertices", len(d.dst.Vertices), "newTriangles", len(d.dst.Indices))
	return d.dst
}

// divider holds the vertex maps for subdividing one mesh.
type divider struct {
	src, dst *scene.Mesh

	// corners maps source vertex indexes to new ones.
	corners map[int32]int32

	// edges maps source edges to the new index of their midpoint.
	edges map[edge]int32
}

func (d *divider) hasNormals() bool   { return len(d.src.Normals) > 0 }
func (d *divider) hasTexcoords() bool { return len(d.src.Texcoords) > 0 }

// corner returns the new index of source vertex a, adding it if needed.
func (d *divider) corner(a int32) int32 {
	if id, has := d.corners[a]; has {
		return id
	}
	id := int32(len(d.dst.Vertices))
	d.corners[a] = id
	d.dst.Vertices = append(d.dst.Vertices, d.src.Vertices[a])
	if d.hasNormals() {
		d.dst.Normals = append(d.dst.Normals, d.src.Normals[a])
	}
	if d.hasTexcoords() {
		d.dst.Texcoords = append(d.dst.Texcoords, d.src.Texcoords[a])
	}
	return id
}

// midpoint returns the new index of the midpoint of the source edge
// from a to b, adding it if needed.
func (d *divider) midpoint(a, b int32) int32 {
	e := makeEdge(a, b)
	if id, has := d.edges[e]; has {
		return id
	}
	id := int32(len(d.dst.Vertices))
	d.edges[e] = id
	src := d.src
	d.dst.Vertices = append(d.dst.Vertices, src.Vertices[e[0]].Lerp(src.Vertices[e[1]], 0.5))
	if d.hasNormals() {
		n := src.Normals[e[0]].Add(src.Normals[e[1]])
		if n.LengthSquared() > 0 {
			n = n.Normal()
		}
		d.dst.Normals = append(d.dst.Normals, n)
	}
	if d.hasTexcoords() {
		d.dst.Texcoords = append(d.dst.Texcoords, src.Texcoords[e[0]].Lerp(src.Texcoords[e[1]], 0.5))
	}
	return id
}
