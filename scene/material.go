// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"reflect"

	"cogentcore.org/mini/base/binx"
	"cogentcore.org/mini/math32"
)

// MaterialTag identifies a material variant. The numeric values are
// stored in scene files and must not change.
type MaterialTag int32

const (
	MaterialInvalid MaterialTag = iota
	MaterialDisney
	MaterialMatte
	MaterialPlastic
	MaterialMetal
	MaterialVelvet
	MaterialMetallicPaint
	MaterialThinGlass
	MaterialDielectric

	// MaterialTagN is the number of material tags, including MaterialInvalid.
	MaterialTagN
)

var materialTagNames = [MaterialTagN]string{"Invalid", "Disney", "Matte", "Plastic", "Metal", "Velvet", "MetallicPaint", "ThinGlass", "Dielectric"}

func (tg MaterialTag) String() string {
	if !tg.IsValid() && tg != MaterialInvalid {
		return fmt.Sprintf("MaterialTag(%d)", int32(tg))
	}
	return materialTagNames[tg]
}

// IsValid returns whether the tag names one of the material variants.
func (tg MaterialTag) IsValid() bool {
	return tg > MaterialInvalid && tg < MaterialTagN
}

// Material is a surface shading model referenced by meshes. It is a
// closed set of variants: [Disney], [Matte], [Plastic], [Metal],
// [Velvet], [MetallicPaint], [ThinGlass] and [Dielectric].
// Materials are shared by pointer identity, never by value.
type Material interface {
	// Tag returns the variant tag stored in scene files.
	Tag() MaterialTag

	// Textures returns the texture references the material holds,
	// in file order. Entries may be nil.
	Textures() []*Texture

	// writeFields writes the variant's own fields, excluding the tag.
	writeFields(w *binx.Writer, texID func(*Texture) int32)

	// readFields reads the variant's own fields, excluding the tag,
	// resolving texture IDs against the given texture table.
	readFields(r *binx.Reader, textures []*Texture) error
}

// NewMaterial returns a new material of the variant with the given tag,
// with default parameters.
func NewMaterial(tag MaterialTag) (Material, error) {
	if !tag.IsValid() {
		return nil, fmt.Errorf("%w: tag %d", ErrUnsupportedMaterial, int32(tag))
	}
	return materialFactory[tag](), nil
}

// IsNilMaterial returns whether mat is nil or a nil pointer to one
// of the material variants. Both count as no material.
func IsNilMaterial(mat Material) bool {
	if mat == nil {
		return true
	}
	v := reflect.ValueOf(mat)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// materialFactory allocates the variant for each tag.
var materialFactory = [MaterialTagN]func() Material{
	MaterialDisney:        func() Material { return NewDisney() },
	MaterialMatte:         func() Material { return NewMatte() },
	MaterialPlastic:       func() Material { return NewPlastic() },
	MaterialMetal:         func() Material { return NewMetal() },
	MaterialVelvet:        func() Material { return NewVelvet() },
	MaterialMetallicPaint: func() Material { return NewMetallicPaint() },
	MaterialThinGlass:     func() Material { return NewThinGlass() },
	MaterialDielectric:    func() Material { return NewDielectric() },
}

// Disney is the principled "Disney" BSDF. It is also the variant that
// every material of a format version 11 file is loaded as.
type Disney struct {
	Emission     math32.Vector3
	BaseColor    math32.Vector3
	Metallic     float32
	Roughness    float32
	Transmission float32
	IOR          float32

	// ColorTexture optionally modulates BaseColor.
	ColorTexture *Texture

	// AlphaTexture optionally provides cutout alpha.
	AlphaTexture *Texture
}

// NewDisney returns a new [Disney] material with default parameters.
func NewDisney() *Disney {
	return &Disney{BaseColor: math32.Vector3Scalar(0.5), IOR: 1.45}
}

func (m *Disney) Tag() MaterialTag     { return MaterialDisney }
func (m *Disney) Textures() []*Texture { return []*Texture{m.ColorTexture, m.AlphaTexture} }

func (m *Disney) writeFields(w *binx.Writer, texID func(*Texture) int32) {
	w.WriteFields(m.Emission, m.BaseColor, m.Metallic, m.Roughness, m.Transmission, m.IOR)
	w.WriteFields(texID(m.ColorTexture), texID(m.AlphaTexture))
}

func (m *Disney) readFields(r *binx.Reader, textures []*Texture) error {
	err := r.ReadFields(&m.Emission, &m.BaseColor, &m.Metallic, &m.Roughness, &m.Transmission, &m.IOR)
	if err != nil {
		return err
	}
	if m.ColorTexture, err = readTextureRef(r, textures); err != nil {
		return err
	}
	m.AlphaTexture, err = readTextureRef(r, textures)
	return err
}

// Matte is a purely diffuse material.
type Matte struct {
	Reflectance math32.Vector3
}

// NewMatte returns a new [Matte] material with default parameters.
func NewMatte() *Matte {
	return &Matte{Reflectance: math32.Vector3Scalar(0.5)}
}

func (m *Matte) Tag() MaterialTag     { return MaterialMatte }
func (m *Matte) Textures() []*Texture { return nil }

func (m *Matte) writeFields(w *binx.Writer, texID func(*Texture) int32) {
	w.WriteFields(m.Reflectance)
}

func (m *Matte) readFields(r *binx.Reader, textures []*Texture) error {
	return r.ReadFields(&m.Reflectance)
}

// Plastic is a pigmented diffuse base under a dielectric coating.
type Plastic struct {
	// Ks is the specular color of the coating.
	Ks math32.Vector3

	// Eta is the refractive index of the coating.
	Eta          float32
	PigmentColor math32.Vector3
	Roughness    float32
}

// NewPlastic returns a new [Plastic] material with default parameters.
func NewPlastic() *Plastic {
	return &Plastic{Ks: math32.Vector3Scalar(1), Eta: 1.4, PigmentColor: math32.Vector3Scalar(1), Roughness: 0.01}
}

func (m *Plastic) Tag() MaterialTag     { return MaterialPlastic }
func (m *Plastic) Textures() []*Texture { return nil }

func (m *Plastic) writeFields(w *binx.Writer, texID func(*Texture) int32) {
	w.WriteFields(m.Ks, m.Eta, m.PigmentColor, m.Roughness)
}

func (m *Plastic) readFields(r *binx.Reader, textures []*Texture) error {
	return r.ReadFields(&m.Ks, &m.Eta, &m.PigmentColor, &m.Roughness)
}

// Metal is a conductor with a complex refractive index Eta + i*K.
type Metal struct {
	Eta math32.Vector3

	// K is the absorption coefficient.
	K         math32.Vector3
	Roughness float32
}

// NewMetal returns a new [Metal] material with default parameters
// (approximately aluminium).
func NewMetal() *Metal {
	return &Metal{Eta: math32.Vec3(1.5, 0.98, 0.6), K: math32.Vec3(7.6, 6.6, 5.4), Roughness: 0.1}
}

func (m *Metal) Tag() MaterialTag     { return MaterialMetal }
func (m *Metal) Textures() []*Texture { return nil }

func (m *Metal) writeFields(w *binx.Writer, texID func(*Texture) int32) {
	w.WriteFields(m.Eta, m.K, m.Roughness)
}

func (m *Metal) readFields(r *binx.Reader, textures []*Texture) error {
	return r.ReadFields(&m.Eta, &m.K, &m.Roughness)
}

// Velvet is a cloth material with horizon and back scattering.
type Velvet struct {
	Reflectance              math32.Vector3
	HorizonScatteringColor   math32.Vector3
	HorizonScatteringFallOff float32
	BackScattering           float32
}

// NewVelvet returns a new [Velvet] material with default parameters.
func NewVelvet() *Velvet {
	return &Velvet{Reflectance: math32.Vector3Scalar(0.4), HorizonScatteringColor: math32.Vector3Scalar(0.75), HorizonScatteringFallOff: 10, BackScattering: 0.5}
}

func (m *Velvet) Tag() MaterialTag     { return MaterialVelvet }
func (m *Velvet) Textures() []*Texture { return nil }

func (m *Velvet) writeFields(w *binx.Writer, texID func(*Texture) int32) {
	w.WriteFields(m.Reflectance, m.HorizonScatteringColor, m.HorizonScatteringFallOff, m.BackScattering)
}

func (m *Velvet) readFields(r *binx.Reader, textures []*Texture) error {
	return r.ReadFields(&m.Reflectance, &m.HorizonScatteringColor, &m.HorizonScatteringFallOff, &m.BackScattering)
}

// MetallicPaint is a car paint with metallic glitter flakes.
type MetallicPaint struct {
	GlitterColor  math32.Vector3
	GlitterSpread float32
	ShadeColor    math32.Vector3
	Eta           float32
}

// NewMetallicPaint returns a new [MetallicPaint] material with default parameters.
func NewMetallicPaint() *MetallicPaint {
	return &MetallicPaint{GlitterColor: math32.Vector3Scalar(0.5), GlitterSpread: 0.5, ShadeColor: math32.Vector3Scalar(0.5), Eta: 1.45}
}

func (m *MetallicPaint) Tag() MaterialTag     { return MaterialMetallicPaint }
func (m *MetallicPaint) Textures() []*Texture { return nil }

func (m *MetallicPaint) writeFields(w *binx.Writer, texID func(*Texture) int32) {
	w.WriteFields(m.GlitterColor, m.GlitterSpread, m.ShadeColor, m.Eta)
}

func (m *MetallicPaint) readFields(r *binx.Reader, textures []*Texture) error {
	return r.ReadFields(&m.GlitterColor, &m.GlitterSpread, &m.ShadeColor, &m.Eta)
}

// ThinGlass is an infinitely thin glass sheet.
type ThinGlass struct {
	Eta          float32
	Thickness    float32
	Transmission math32.Vector3
}

// NewThinGlass returns a new [ThinGlass] material with default parameters.
func NewThinGlass() *ThinGlass {
	return &ThinGlass{Eta: 1.5, Thickness: 0.1, Transmission: math32.Vector3Scalar(1)}
}

func (m *ThinGlass) Tag() MaterialTag     { return MaterialThinGlass }
func (m *ThinGlass) Textures() []*Texture { return nil }

func (m *ThinGlass) writeFields(w *binx.Writer, texID func(*Texture) int32) {
	w.WriteFields(m.Eta, m.Thickness, m.Transmission)
}

func (m *ThinGlass) readFields(r *binx.Reader, textures []*Texture) error {
	return r.ReadFields(&m.Eta, &m.Thickness, &m.Transmission)
}

// Dielectric is a solid refractive interface such as glass or water.
type Dielectric struct {
	EtaInside    float32
	EtaOutside   float32
	Transmission math32.Vector3
}

// NewDielectric returns a new [Dielectric] material with default parameters.
func NewDielectric() *Dielectric {
	return &Dielectric{EtaInside: 1.5, EtaOutside: 1, Transmission: math32.Vector3Scalar(1)}
}

func (m *Dielectric) Tag() MaterialTag     { return MaterialDielectric }
func (m *Dielectric) Textures() []*Texture { return nil }

func (m *Dielectric) writeFields(w *binx.Writer, texID func(*Texture) int32) {
	w.WriteFields(m.EtaInside, m.EtaOutside, m.Transmission)
}

func (m *Dielectric) readFields(r *binx.Reader, textures []*Texture) error {
	return r.ReadFields(&m.EtaInside, &m.EtaOutside, &m.Transmission)
}

// readTextureRef reads a texture ID and resolves it, with -1 meaning nil.
func readTextureRef(r *binx.Reader, textures []*Texture) (*Texture, error) {
	id, err := binx.ReadElement[int32](r)
	if err != nil {
		return nil, err
	}
	if id == -1 {
		return nil, nil
	}
	if id < 0 || int(id) >= len(textures) {
		return nil, fmt.Errorf("%w: texture ID %d out of range [0, %d)", ErrInvalidReference, id, len(textures))
	}
	return textures[id], nil
}
