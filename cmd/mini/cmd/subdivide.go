// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/mini/base/logx"
	"cogentcore.org/mini/cmd/mini/config"
	"cogentcore.org/mini/subdivide"
)

// Subdivide writes the input scene with every triangle split
// into four to the output file.
func Subdivide(c *config.Config) error {
	if err := c.CheckOutput(); err != nil {
		return err
	}
	in, err := load(c)
	if err != nil {
		return err
	}
	out, err := subdivide.Scene(in)
	if err != nil {
		return err
	}
	before, after := in.Stats(), out.Stats()
	logx.PrintlnInfo(fmt.Sprintf("subdivided %d meshes: %d to %d triangles", after.Meshes, before.Triangles, after.Triangles))
	return save(c, out)
}
