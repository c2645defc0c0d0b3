// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/mini/base/iox/tomlx"
	"cogentcore.org/mini/base/logx"
	"cogentcore.org/mini/cmd/mini/config"
	"cogentcore.org/mini/replicate"
)

// Replicate writes a scene with copies of the input scene placed
// at random within a parallelogram to the output file. The final
// replicate options are saved to [config.Config.SaveReplicateConfig]
// if it is set, once they have been used successfully.
func Replicate(c *config.Config) error {
	if err := c.CheckOutput(); err != nil {
		return err
	}
	in, err := load(c)
	if err != nil {
		return err
	}
	out, err := replicate.Replicate(in, c.Replicate, nil)
	if err != nil {
		return err
	}
	logx.PrintlnInfo(fmt.Sprintf("created replicated scene with %d instances total", len(out.Instances)))
	if c.SaveReplicateConfig != "" {
		if err := tomlx.Save(&c.Replicate, c.SaveReplicateConfig); err != nil {
			return fmt.Errorf("saving replicate options: %w", err)
		}
	}
	return save(c, out)
}
