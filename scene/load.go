// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/mini/base/binx"
	"cogentcore.org/mini/base/errors"
	"cogentcore.org/mini/math32"
)

// Load reads a scene file written in the current or the previous
// format version. Shared objects, meshes, materials and textures
// in the file are shared in the returned scene.
func Load(filename string) (*Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("scene.Load: %w %q: %w", ErrOpen, filename, err)
	}
	defer f.Close()
	size := int64(-1)
	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
		size = fi.Size()
	}
	sc, err := Read(f, size)
	if err != nil {
		return nil, fmt.Errorf("scene.Load %q: %w", filename, err)
	}
	slog.Debug("loaded scene", "file", filename, "instances", len(sc.Instances))
	return sc, nil
}

// Read reads a scene from the given reader. If size is non-negative it is
// the length of the stream in bytes, which is used to reject corrupt
// element counts before allocating.
func Read(r io.Reader, size int64) (*Scene, error) {
	br := binx.NewReader(r, size)
	magic, err := binx.ReadElement[uint64](br)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIncompatible, err)
	}
	version, err := checkMagic(magic, "leading")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIncompatible, err)
	}
	ld := &loader{br: br, version: version, scene: &Scene{}}
	for _, section := range []struct {
		name string
		read func() error
	}{
		{"textures", ld.readTextures},
		{"lights", ld.readLights},
		{"materials", ld.readMaterials},
		{"objects", ld.readObjects},
		{"instances", ld.readInstances},
		{"end marker", ld.readEnd},
	} {
		if err := section.read(); err != nil {
			if errors.Is(err, ErrUnsupportedMaterial) {
				return nil, fmt.Errorf("reading %s: %w", section.name, err)
			}
			return nil, fmt.Errorf("%w: reading %s: %w", ErrCorrupt, section.name, err)
		}
	}
	slog.Debug("read scene", "version", version, "bytes", br.Len(), "textures", len(ld.textures),
		"materials", len(ld.materials), "objects", len(ld.objects), "instances", len(ld.scene.Instances))
	return ld.scene, nil
}

// loader holds the ID tables built while reading a scene.
type loader struct {
	br      *binx.Reader
	version int
	scene   *Scene

	textures  []*Texture
	materials []Material
	objects   []*Object
}

// readCount reads an element count and rejects it if the stream
// cannot hold that many elements of at least minSize bytes.
func (ld *loader) readCount(minSize int64) (int, error) {
	n, err := binx.ReadElement[uint64](ld.br)
	if err != nil {
		return 0, err
	}
	rem := ld.br.Remaining()
	if n > uint64(1)<<40 || (rem >= 0 && int64(n)*minSize > rem) {
		return 0, fmt.Errorf("%w: count %d exceeds the remaining %d bytes", binx.ErrTruncated, n, rem)
	}
	return int(n), nil
}

func (ld *loader) readTextures() error {
	n, err := ld.readCount(4)
	if err != nil {
		return err
	}
	ld.textures = make([]*Texture, 0, n)
	for range n {
		valid, err := binx.ReadElement[int32](ld.br)
		if err != nil {
			return err
		}
		if valid == 0 {
			ld.textures = append(ld.textures, nil)
			continue
		}
		tx, err := readTexture(ld.br)
		if err != nil {
			return err
		}
		ld.textures = append(ld.textures, tx)
	}
	return nil
}

func readTexture(br *binx.Reader) (*Texture, error) {
	tx := &Texture{}
	if err := br.ReadFields(&tx.Size, &tx.Format, &tx.FilterMode); err != nil {
		return nil, err
	}
	data, err := binx.ReadVector[byte](br)
	tx.Data = data
	return tx, err
}

func (ld *loader) readLights() error {
	var err error
	sc := ld.scene
	if sc.QuadLights, err = binx.ReadVector[QuadLight](ld.br); err != nil {
		return err
	}
	if sc.DirLights, err = binx.ReadVector[DirLight](ld.br); err != nil {
		return err
	}
	hasEnv, err := binx.ReadElement[int32](ld.br)
	if err != nil || hasEnv == 0 {
		return err
	}
	env := &EnvMapLight{}
	if err := binx.ReadInto(ld.br, &env.Transform); err != nil {
		return err
	}
	if env.Texture, err = readTexture(ld.br); err != nil {
		return err
	}
	sc.EnvMapLight = env
	return nil
}

func (ld *loader) readMaterials() error {
	n, err := ld.readCount(4)
	if err != nil {
		return err
	}
	ld.materials = make([]Material, 0, n)
	for i := range n {
		// version 11 materials are all the equivalent of Disney, without a tag
		tag := MaterialDisney
		if ld.version > LegacyFormatVersion {
			if tag, err = binx.ReadElement[MaterialTag](ld.br); err != nil {
				return err
			}
		}
		mat, err := NewMaterial(tag)
		if err != nil {
			return fmt.Errorf("material %d: %w", i, err)
		}
		if err := mat.readFields(ld.br, ld.textures); err != nil {
			return fmt.Errorf("material %d: %w", i, err)
		}
		ld.materials = append(ld.materials, mat)
	}
	return nil
}

func (ld *loader) readObjects() error {
	n, err := ld.readCount(8)
	if err != nil {
		return err
	}
	ld.objects = make([]*Object, 0, n)
	for oi := range n {
		nm, err := ld.readCount(4)
		if err != nil {
			return err
		}
		obj := &Object{Meshes: make([]*Mesh, 0, nm)}
		for mi := range nm {
			valid, err := binx.ReadElement[int32](ld.br)
			if err != nil {
				return err
			}
			if valid == 0 {
				continue
			}
			ms, err := ld.readMesh()
			if err != nil {
				return fmt.Errorf("object %d mesh %d: %w", oi, mi, err)
			}
			obj.Meshes = append(obj.Meshes, ms)
		}
		ld.objects = append(ld.objects, obj)
	}
	return nil
}

func (ld *loader) readMesh() (*Mesh, error) {
	ms := &Mesh{}
	var err error
	if ms.Indices, err = binx.ReadVector[math32.Vector3i](ld.br); err != nil {
		return nil, err
	}
	if ms.Vertices, err = binx.ReadVector[math32.Vector3](ld.br); err != nil {
		return nil, err
	}
	if ms.Normals, err = binx.ReadVector[math32.Vector3](ld.br); err != nil {
		return nil, err
	}
	if ms.Texcoords, err = binx.ReadVector[math32.Vector2](ld.br); err != nil {
		return nil, err
	}
	id, err := binx.ReadElement[int32](ld.br)
	if err != nil {
		return nil, err
	}
	if id < 0 || int(id) >= len(ld.materials) {
		return nil, fmt.Errorf("%w: material ID %d out of range [0, %d)", ErrInvalidReference, id, len(ld.materials))
	}
	ms.Material = ld.materials[id]
	return ms, nil
}

func (ld *loader) readInstances() error {
	n, err := ld.readCount(4)
	if err != nil {
		return err
	}
	sc := ld.scene
	sc.Instances = make([]*Instance, 0, n)
	for i := range n {
		valid, err := binx.ReadElement[int32](ld.br)
		if err != nil {
			return err
		}
		if valid == 0 {
			sc.Instances = append(sc.Instances, nil)
			continue
		}
		in := &Instance{}
		if err := binx.ReadInto(ld.br, &in.Transform); err != nil {
			return err
		}
		id, err := binx.ReadElement[int32](ld.br)
		if err != nil {
			return err
		}
		if id < 0 || int(id) >= len(ld.objects) {
			return fmt.Errorf("%w: instance %d object ID %d out of range [0, %d)", ErrInvalidReference, i, id, len(ld.objects))
		}
		in.Object = ld.objects[id]
		sc.Instances = append(sc.Instances, in)
	}
	return nil
}

func (ld *loader) readEnd() error {
	magic, err := binx.ReadElement[uint64](ld.br)
	if err != nil {
		return err
	}
	_, err = checkMagic(magic, "trailing")
	return err
}
