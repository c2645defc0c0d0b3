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
)

// Save writes the scene to the given file in the current format version.
// A scene that cannot be stored is reported before the file is touched,
// but the file is not replaced atomically: a failed write can leave
// a partial file.
func (sc *Scene) Save(filename string) error {
	sr, err := sc.validate(FormatVersion)
	if err != nil {
		return fmt.Errorf("scene.Save %q: %w", filename, err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("scene.Save: %w %q: %w", ErrOpen, filename, err)
	}
	err = sc.writeSerialized(f, sr, FormatVersion)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: %w", ErrWrite, cerr)
	}
	if err != nil {
		return fmt.Errorf("scene.Save %q: %w", filename, err)
	}
	slog.Debug("saved scene", "file", filename, "version", FormatVersion)
	return nil
}

// Write writes the scene to the given writer in the current format version.
func (sc *Scene) Write(w io.Writer) error {
	return sc.write(w, FormatVersion)
}

// WriteLegacy writes the scene in the previous format version, which can
// only store [Disney] materials; any other material variant results in
// an [ErrUnsupportedMaterial] error.
func (sc *Scene) WriteLegacy(w io.Writer) error {
	return sc.write(w, LegacyFormatVersion)
}

// validate returns the [Serialized] view of the scene, or an error for
// references that cannot be stored in the given format version.
func (sc *Scene) validate(version int) (*Serialized, error) {
	sr := NewSerialized(sc)
	if err := sc.checkWritable(sr, version); err != nil {
		return nil, err
	}
	return sr, nil
}

func (sc *Scene) checkWritable(sr *Serialized, version int) error {
	for i, in := range sc.Instances {
		if in != nil && in.Object == nil {
			return fmt.Errorf("%w: instance %d has no object", ErrInvalidReference, i)
		}
	}
	for i, ms := range sr.Meshes.Order {
		if IsNilMaterial(ms.Material) {
			return fmt.Errorf("%w: mesh %d has no material", ErrInvalidReference, i)
		}
	}
	for i, mat := range sr.Materials.Order {
		tag := mat.Tag()
		if !tag.IsValid() {
			return fmt.Errorf("%w: material %d has tag %v", ErrUnsupportedMaterial, i, tag)
		}
		if version == LegacyFormatVersion && tag != MaterialDisney {
			return fmt.Errorf("%w: material %d is %v, but version %d only stores %v materials", ErrUnsupportedMaterial, i, tag, version, MaterialDisney)
		}
	}
	return nil
}

func (sc *Scene) write(w io.Writer, version int) error {
	sr, err := sc.validate(version)
	if err != nil {
		return err
	}
	return sc.writeSerialized(w, sr, version)
}

// writeSerialized writes the scene using the IDs of sr, which must have
// been returned by validate for the same version.
func (sc *Scene) writeSerialized(w io.Writer, sr *Serialized, version int) error {
	bw := binx.NewWriter(w)
	magic := magicOfVersion(version)
	binx.WriteElement(bw, magic)

	binx.WriteElement(bw, uint64(sr.Textures.Len()))
	for _, tx := range sr.Textures.Order {
		binx.WriteElement(bw, int32(1))
		writeTexture(bw, tx)
	}

	binx.WriteVector(bw, sc.QuadLights)
	binx.WriteVector(bw, sc.DirLights)
	if env := sc.EnvMapLight; env != nil {
		binx.WriteElement(bw, int32(1))
		binx.WriteElement(bw, env.Transform)
		writeTexture(bw, env.Texture)
	} else {
		binx.WriteElement(bw, int32(0))
	}

	texID := func(tx *Texture) int32 {
		return int32(sr.TextureID(tx))
	}
	binx.WriteElement(bw, uint64(sr.Materials.Len()))
	for _, mat := range sr.Materials.Order {
		if version > LegacyFormatVersion {
			binx.WriteElement(bw, mat.Tag())
		}
		mat.writeFields(bw, texID)
	}

	binx.WriteElement(bw, uint64(sr.Objects.Len()))
	for _, obj := range sr.Objects.Order {
		binx.WriteElement(bw, uint64(len(obj.Meshes)))
		for _, ms := range obj.Meshes {
			if ms == nil {
				binx.WriteElement(bw, int32(0))
				continue
			}
			binx.WriteElement(bw, int32(1))
			binx.WriteVector(bw, ms.Indices)
			binx.WriteVector(bw, ms.Vertices)
			binx.WriteVector(bw, ms.Normals)
			binx.WriteVector(bw, ms.Texcoords)
			binx.WriteElement(bw, int32(sr.MaterialID(ms.Material)))
		}
	}

	binx.WriteElement(bw, uint64(len(sc.Instances)))
	for _, in := range sc.Instances {
		if in == nil {
			binx.WriteElement(bw, int32(0))
			continue
		}
		binx.WriteElement(bw, int32(1))
		binx.WriteElement(bw, in.Transform)
		binx.WriteElement(bw, int32(sr.ObjectID(in.Object)))
	}

	binx.WriteElement(bw, magic)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	slog.Debug("wrote scene", "version", version, "bytes", bw.Len(), "textures", sr.Textures.Len(),
		"materials", sr.Materials.Len(), "objects", sr.Objects.Len(), "instances", len(sc.Instances))
	return nil
}

// writeTexture writes the fields of a texture; nil is written as an
// empty texture.
func writeTexture(bw *binx.Writer, tx *Texture) {
	if tx == nil {
		tx = &Texture{}
	}
	bw.WriteFields(tx.Size, tx.Format, tx.FilterMode)
	binx.WriteVector(bw, tx.Data)
}
