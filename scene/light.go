// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/mini/math32"
)

// QuadLight is a parallelogram-shaped area light, spanned by
// Edge0 and Edge1 from Corner. It is stored by value.
type QuadLight struct {
	Corner   math32.Vector3
	Edge0    math32.Vector3
	Edge1    math32.Vector3
	Emission math32.Vector3
}

// DirLight is a directional light, like the sun. It is stored by value.
type DirLight struct {
	Direction math32.Vector3
	Radiance  math32.Vector3
}

func (dl DirLight) String() string {
	return fmt.Sprintf("DirLight{dir=%v, rad=%v}", dl.Direction, dl.Radiance)
}

// EnvMapLight is an environment map light: a texture mapped onto the
// sphere at infinity, oriented by Transform.
type EnvMapLight struct {
	Transform math32.Affine3

	// Texture is owned by the light and written inline with it.
	Texture *Texture
}

// NewEnvMapLight returns a new environment light with an identity
// transform and the given texture.
func NewEnvMapLight(tex *Texture) *EnvMapLight {
	return &EnvMapLight{Transform: math32.IdentityAffine3(), Texture: tex}
}
