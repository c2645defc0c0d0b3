// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the actual command definitions
// for the commands of the mini tool.
package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"cogentcore.org/mini/base/logx"
	"cogentcore.org/mini/cmd/mini/config"
	"cogentcore.org/mini/scene"
	"gopkg.in/yaml.v3"
)

// load loads the input scene, printing status lines.
func load(c *config.Config) (*scene.Scene, error) {
	logx.PrintlnInfo("loading mini file from ", c.Input)
	sc, err := scene.Load(c.Input)
	if err != nil {
		return nil, err
	}
	logx.PrintlnSuccess("scene loaded")
	return sc, nil
}

// save saves the scene to the output file, printing status lines.
func save(c *config.Config, sc *scene.Scene) error {
	logx.PrintlnInfo("saving to ", c.Output)
	if err := sc.Save(c.Output); err != nil {
		return err
	}
	logx.PrintlnSuccess("scene saved to ", c.Output)
	return nil
}

// Info prints the summary counts of the input scene to w.
func Info(c *config.Config, w io.Writer) error {
	sc, err := load(c)
	if err != nil {
		return err
	}
	st := sc.Stats()
	if c.YAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(st); err != nil {
			return err
		}
		return enc.Close()
	}
	fmt.Fprintf(w, "instances:           %d (%d deleted)\n", st.Instances, st.NullInstances)
	fmt.Fprintf(w, "objects:             %d\n", st.Objects)
	fmt.Fprintf(w, "meshes:              %d\n", st.Meshes)
	fmt.Fprintf(w, "textures:            %d\n", st.Textures)
	fmt.Fprintf(w, "triangles:           %d\n", st.Triangles)
	fmt.Fprintf(w, "vertices:            %d\n", st.Vertices)
	fmt.Fprintf(w, "instanced triangles: %d\n", st.InstancedTriangles)
	fmt.Fprintf(w, "lights:              %d quad, %d directional, env map %v\n", st.QuadLights, st.DirLights, st.EnvMapLight)
	for _, name := range slices.Sorted(maps.Keys(st.Materials)) {
		fmt.Fprintf(w, "material %-10s  %d\n", name+":", st.Materials[name])
	}
	return nil
}

// Bounds prints the world space bounding box of the input scene to w.
func Bounds(c *config.Config, w io.Writer) error {
	sc, err := load(c)
	if err != nil {
		return err
	}
	bb := sc.Bounds()
	if bb.IsEmpty() {
		fmt.Fprintln(w, "bounds: empty")
		return nil
	}
	fmt.Fprintf(w, "bounds: %v\n", bb)
	fmt.Fprintf(w, "center: %v\n", bb.Center())
	fmt.Fprintf(w, "size:   %v\n", bb.Size())
	return nil
}
