// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration information for the mini tool.
package config

import (
	"fmt"
	"path/filepath"

	"cogentcore.org/mini/base/errors"
	"cogentcore.org/mini/base/fsx"
	"cogentcore.org/mini/base/iox/tomlx"
	"cogentcore.org/mini/base/reflectx"
	"cogentcore.org/mini/replicate"
)

// Config is the configuration information for the mini tool.
type Config struct {

	// Input is the scene file to read.
	Input string

	// Output is the scene file to write.
	Output string

	// YAML prints information as YAML instead of text.
	YAML bool

	// Replicate are the options of the replicate command.
	Replicate replicate.Options

	// ReplicateConfigs are TOML files with replicate options,
	// applied in order before any command line flags.
	ReplicateConfigs []string

	// SaveReplicateConfig is a TOML file to save the final
	// replicate options to, if set.
	SaveReplicateConfig string
}

// New returns a new config with values set from the `default:`
// field tags. Errors are logged.
func New() *Config {
	c := &Config{}
	errors.Log(reflectx.SetFromDefaultTags(c))
	return c
}

// UserDir is the directory of user level config files.
const UserDir = "~/.mini"

// IncludePaths returns the paths on which config files are looked up:
// the current directory, the directory of the input file, then [UserDir].
func (c *Config) IncludePaths() []string {
	paths := []string{"."}
	if c.Input != "" {
		paths = append(paths, filepath.Dir(c.Input))
	}
	return append(paths, UserDir)
}

// OpenReplicateConfigs reads [Config.ReplicateConfigs] into [Config.Replicate],
// looking for each file on [Config.IncludePaths].
func (c *Config) OpenReplicateConfigs() error {
	if len(c.ReplicateConfigs) == 0 {
		return nil
	}
	paths := c.IncludePaths()
	var files []string
	for _, fn := range c.ReplicateConfigs {
		found := fsx.FindFilesOnPaths(paths, fn)
		if len(found) == 0 {
			return fmt.Errorf("replicate config: no file %q found on %v", fn, paths)
		}
		files = append(files, found...)
	}
	if err := tomlx.OpenFiles(&c.Replicate, files...); err != nil {
		return fmt.Errorf("replicate config: %w", err)
	}
	return nil
}

// CheckOutput returns an error if no output file is set.
func (c *Config) CheckOutput() error {
	if c.Output == "" {
		return fmt.Errorf("no output file name specified (use -o)")
	}
	return nil
}
