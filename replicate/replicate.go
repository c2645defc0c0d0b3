// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replicate builds a larger scene from copies of an input scene,
// each placed under a random rotation and translation within a
// parallelogram.
package replicate

import (
	"fmt"
	"log/slog"

	"cogentcore.org/mini/base/errors"
	"cogentcore.org/mini/base/randx"
	"cogentcore.org/mini/base/reflectx"
	"cogentcore.org/mini/math32"
	"cogentcore.org/mini/scene"
	"github.com/jinzhu/copier"
)

// Options are the settings for [Replicate].
type Options struct {

	// N is the number of copies of the input scene.
	N int `default:"20"`

	// Scale is the uniform scale applied to every copy, about the
	// center of the input scene.
	Scale float32 `default:"1"`

	// VX and VY span the parallelogram, starting at the center of the
	// input scene, in which the copies are placed. Copies are rotated
	// about the normal of the parallelogram.
	VX math32.Vector3 `default:"100 0 0"`
	VY math32.Vector3 `default:"0 0 100"`

	// Flat gives every mesh of every copy its own copy of the geometry,
	// in its own single mesh object, instead of sharing the input objects.
	Flat bool `default:"true"`

	// Seed is the seed of the random number generator, used
	// when no generator is passed to [Replicate].
	Seed int64 `default:"128"`
}

// DefaultOptions returns the replication options set from
// their `default:` field tags.
func DefaultOptions() Options {
	var o Options
	errors.Must(reflectx.SetFromDefaultTags(&o))
	return o
}

// Validate returns an error if the options cannot be used.
func (o *Options) Validate() error {
	if o.N < 0 {
		return fmt.Errorf("replicate: negative number of copies %d", o.N)
	}
	if o.Scale <= 0 {
		return fmt.Errorf("replicate: scale %g must be positive", o.Scale)
	}
	if o.VX.Cross(o.VY).LengthSquared() == 0 {
		return errors.New("replicate: VX and VY do not span a parallelogram")
	}
	return nil
}

// Transform returns the transform of one copy for random values u, v,
// and r in [0, 1): a rotation by r full turns about the parallelogram
// normal and a scale, both about center, then a translation by
// u*VX + v*VY.
func (o *Options) Transform(center math32.Vector3, u, v, r float32) math32.Affine3 {
	normal := o.VX.Cross(o.VY).Normal()
	pos := center.Add(o.VX.MulScalar(u)).Add(o.VY.MulScalar(v))
	return math32.TranslateAffine3(pos).
		Mul(math32.RotateAffine3(normal, r*2*math32.Pi)).
		Mul(math32.ScaleAffine3(math32.Vector3Scalar(o.Scale))).
		Mul(math32.TranslateAffine3(center.Negate()))
}

// Replicate returns a new scene with opts.N copies of the instances of in,
// drawing the placement of each copy from rnd, or from a new generator
// seeded with opts.Seed if rnd is nil. The lights of in are kept once.
// Deleted instance slots are not copied. The input scene is not modified.
func Replicate(in *scene.Scene, opts Options, rnd randx.Rand) (*scene.Scene, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = randx.NewSysRand(opts.Seed)
	}
	var center math32.Vector3
	if bb := in.Bounds(); !bb.IsEmpty() {
		center = bb.Center()
	}
	out := &scene.Scene{
		QuadLights:  in.QuadLights,
		DirLights:   in.DirLights,
		EnvMapLight: in.EnvMapLight,
	}
	for range opts.N {
		u := rnd.Float32()
		v := rnd.Float32()
		r := rnd.Float32()
		xfm := opts.Transform(center, u, v, r)
		for _, org := range in.Instances {
			if org == nil || org.Object == nil {
				continue
			}
			ixfm := xfm.Mul(org.Transform)
			if !opts.Flat {
				out.Instances = append(out.Instances, scene.NewInstance(org.Object, ixfm))
				continue
			}
			for _, ms := range org.Object.Meshes {
				if ms == nil {
					continue
				}
				nms, err := copyMesh(ms)
				if err != nil {
					return nil, err
				}
				out.Instances = append(out.Instances, scene.NewInstance(scene.NewObject(nms), ixfm))
			}
		}
	}
	slog.Debug("replicated scene", "copies", opts.N, "flat", opts.Flat, "instances", len(out.Instances))
	return out, nil
}

// geometry is the vertex data of a [scene.Mesh].
type geometry struct {
	Indices   []math32.Vector3i
	Vertices  []math32.Vector3
	Normals   []math32.Vector3
	Texcoords []math32.Vector2
}

// copyMesh returns a copy of the mesh with its own vertex data,
// sharing the material.
func copyMesh(ms *scene.Mesh) (*scene.Mesh, error) {
	var g geometry
	if err := copier.CopyWithOption(&g, ms, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("replicate: copying mesh: %w", err)
	}
	return &scene.Mesh{Indices: g.Indices, Vertices: g.Vertices, Normals: g.Normals, Texcoords: g.Texcoords, Material: ms.Material}, nil
}
