// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/mini/base/logx"
	"cogentcore.org/mini/cmd/mini/config"
	"cogentcore.org/mini/math32"
	"github.com/spf13/cobra"
)

// Root returns the root command of the mini tool, with all of its
// subcommands, operating on the given config.
func Root(c *config.Config) *cobra.Command {
	var vv, v, q bool
	root := &cobra.Command{
		Use:           "mini",
		Short:         "mini inspects and transforms mini scene files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cm *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&v, "verbose", "v", false, "print info messages")
	pf.BoolVar(&vv, "vv", false, "print debug messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only print errors")

	info := &cobra.Command{
		Use:   "info FILE",
		Short: "print the summary counts of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cm *cobra.Command, args []string) error {
			c.Input = args[0]
			return Info(c, cm.OutOrStdout())
		},
	}
	info.Flags().BoolVar(&c.YAML, "yaml", false, "print as YAML")

	bounds := &cobra.Command{
		Use:   "bounds FILE",
		Short: "print the world space bounding box of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cm *cobra.Command, args []string) error {
			c.Input = args[0]
			return Bounds(c, cm.OutOrStdout())
		},
	}

	subdivide := &cobra.Command{
		Use:   "subdivide FILE -o OUT",
		Short: "split every triangle of a scene into four",
		Args:  cobra.ExactArgs(1),
		RunE: func(cm *cobra.Command, args []string) error {
			c.Input = args[0]
			return Subdivide(c)
		},
	}
	subdivide.Flags().StringVarP(&c.Output, "output", "o", "", "output scene file")

	root.AddCommand(info, bounds, subdivide, replicateCommand(c))
	return root
}

// replicateCommand returns the replicate command. Options are taken from
// the defaults, then the config files, then the flags that are set.
func replicateCommand(c *config.Config) *cobra.Command {
	var (
		n             int
		scale         float32
		vx, vy        []float32
		seed          int64
		flat, notFlat bool
	)
	cm := &cobra.Command{
		Use:   "replicate FILE -o OUT",
		Short: "place random copies of a scene within a parallelogram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cm *cobra.Command, args []string) error {
			c.Input = args[0]
			if err := c.OpenReplicateConfigs(); err != nil {
				return err
			}
			fs := cm.Flags()
			o := &c.Replicate
			if fs.Changed("count") {
				o.N = n
			}
			if fs.Changed("scale") {
				o.Scale = scale
			}
			if fs.Changed("seed") {
				o.Seed = seed
			}
			if fs.Changed("flat") {
				o.Flat = flat
			}
			if fs.Changed("not-flat") {
				o.Flat = !notFlat
			}
			var err error
			if fs.Changed("vx") {
				if o.VX, err = vector3Flag("vx", vx); err != nil {
					return err
				}
			}
			if fs.Changed("vy") {
				if o.VY, err = vector3Flag("vy", vy); err != nil {
					return err
				}
			}
			return Replicate(c)
		},
	}
	f := cm.Flags()
	f.StringVarP(&c.Output, "output", "o", "", "output scene file")
	f.IntVarP(&n, "count", "n", 0, "number of copies (default 20)")
	f.Float32VarP(&scale, "scale", "s", 0, "scale of each copy (default 1)")
	f.Float32SliceVar(&vx, "vx", nil, "first edge X,Y,Z of the placement parallelogram (default 100,0,0)")
	f.Float32SliceVar(&vy, "vy", nil, "second edge X,Y,Z of the placement parallelogram (default 0,0,100)")
	f.Int64Var(&seed, "seed", 0, "random seed (default 128)")
	f.BoolVar(&flat, "flat", false, "copy every mesh into its own object (default)")
	f.BoolVar(&notFlat, "not-flat", false, "share the input objects between copies")
	f.StringSliceVar(&c.ReplicateConfigs, "config", nil, "TOML files with replicate options")
	f.StringVar(&c.SaveReplicateConfig, "save-config", "", "save the final replicate options to this TOML file")
	cm.MarkFlagsMutuallyExclusive("flat", "not-flat")
	return cm
}

func vector3Flag(name string, v []float32) (math32.Vector3, error) {
	if len(v) != 3 {
		return math32.Vector3{}, fmt.Errorf("--%s needs 3 values, got %d", name, len(v))
	}
	return math32.Vec3(v[0], v[1], v[2]), nil
}
