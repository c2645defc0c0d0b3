// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"sync"

	"cogentcore.org/mini/base/parallel"
	"cogentcore.org/mini/math32"
)

// ParallelThreshold is the number of vertices in a mesh, or meshes in an
// object, above which bounds are computed in parallel blocks of this size.
var ParallelThreshold = 16 * 1024

// instanceBlockSize is the number of instances per parallel block
// in [Scene.Bounds].
const instanceBlockSize = 1024

// blockReduce computes the union of box(i) for i in [0, n). Above
// [ParallelThreshold] it runs in parallel blocks, each accumulating a
// local box that is merged into the result under a mutex.
func blockReduce(n int, box func(begin, end int) math32.Box3) math32.Box3 {
	if n <= ParallelThreshold {
		return box(0, n)
	}
	bounds := math32.B3Empty()
	var mu sync.Mutex
	parallel.ForBlocked(0, n, ParallelThreshold, func(begin, end int) {
		bb := box(begin, end)
		mu.Lock()
		bounds.ExpandByBox(bb)
		mu.Unlock()
	})
	return bounds
}

// Bounds returns the bounding box of the mesh vertices.
func (ms *Mesh) Bounds() math32.Box3 {
	return blockReduce(len(ms.Vertices), func(begin, end int) math32.Box3 {
		bb := math32.B3Empty()
		bb.ExpandByPoints(ms.Vertices[begin:end])
		return bb
	})
}

// Bounds returns the union of the bounding boxes of the object meshes,
// in object space.
func (ob *Object) Bounds() math32.Box3 {
	return blockReduce(len(ob.Meshes), func(begin, end int) math32.Box3 {
		bb := math32.B3Empty()
		for _, ms := range ob.Meshes[begin:end] {
			if ms != nil {
				bb.ExpandByBox(ms.Bounds())
			}
		}
		return bb
	})
}

// Bounds returns a world space bounding box of the instance: the box
// enclosing the 8 transformed corners of the object bounds. It is not
// necessarily tight under rotation.
func (in *Instance) Bounds() math32.Box3 {
	if in.Object == nil {
		return math32.B3Empty()
	}
	return in.Object.Bounds().MulAffine3(in.Transform)
}

// Bounds returns the world space bounding box of all instances.
// The bounds of each distinct object are computed only once, however
// many instances place it.
func (sc *Scene) Bounds() math32.Box3 {
	// first, collect the distinct objects
	index := map[*Object]int{}
	var objects []*Object
	var mu sync.Mutex
	parallel.ForBlocked(0, len(sc.Instances), instanceBlockSize, func(begin, end int) {
		seen := map[*Object]struct{}{}
		for _, in := range sc.Instances[begin:end] {
			if in != nil && in.Object != nil {
				seen[in.Object] = struct{}{}
			}
		}
		mu.Lock()
		defer mu.Unlock()
		for obj := range seen {
			if _, has := index[obj]; !has {
				index[obj] = len(objects)
				objects = append(objects, obj)
			}
		}
	})

	// then compute each object's bounds once; every goroutine writes
	// only its own entry, and index is no longer modified
	objBounds := make([]math32.Box3, len(objects))
	parallel.For(len(objects), func(i int) {
		objBounds[i] = objects[i].Bounds()
	})

	// finally transform and reduce the instances
	bounds := math32.B3Empty()
	parallel.ForBlocked(0, len(sc.Instances), instanceBlockSize, func(begin, end int) {
		bb := math32.B3Empty()
		for _, in := range sc.Instances[begin:end] {
			if in == nil || in.Object == nil {
				continue
			}
			bb.ExpandByBox(objBounds[index[in.Object]].MulAffine3(in.Transform))
		}
		mu.Lock()
		bounds.ExpandByBox(bb)
		mu.Unlock()
	})
	return bounds
}

// SequentialBounds returns the same box as [Scene.Bounds], computed on
// the calling goroutine without sharing object bounds between instances.
func SequentialBounds(sc *Scene) math32.Box3 {
	bounds := math32.B3Empty()
	for _, in := range sc.Instances {
		if in == nil || in.Object == nil {
			continue
		}
		obb := math32.B3Empty()
		for _, ms := range in.Object.Meshes {
			if ms != nil {
				mbb := math32.B3Empty()
				mbb.ExpandByPoints(ms.Vertices)
				obb.ExpandByBox(mbb)
			}
		}
		bounds.ExpandByBox(obb.MulAffine3(in.Transform))
	}
	return bounds
}
