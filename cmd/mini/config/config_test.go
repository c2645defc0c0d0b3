// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/mini/replicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenReplicateConfigs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.toml"), []byte("N = 3\nSeed = 9\n"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "over.toml"), []byte("N = 4\n[VX]\nX = 1.0\nY = 2.0\nZ = 3.0\n"), 0666))

	c := New()
	require.NoError(t, c.OpenReplicateConfigs())
	assert.Equal(t, replicate.DefaultOptions(), c.Replicate)

	// found next to the input file
	c.Input = filepath.Join(dir, "in.mini")
	c.ReplicateConfigs = []string{"base.toml", "over.toml"}
	require.NoError(t, c.OpenReplicateConfigs())
	assert.Equal(t, 4, c.Replicate.N)
	assert.Equal(t, int64(9), c.Replicate.Seed)
	assert.Equal(t, float32(2), c.Replicate.VX.Y)
	assert.Equal(t, float32(1), c.Replicate.Scale)

	c.ReplicateConfigs = []string{"missing.toml"}
	assert.Error(t, c.OpenReplicateConfigs())
}

func TestCheckOutput(t *testing.T) {
	c := New()
	assert.Error(t, c.CheckOutput())
	c.Output = "out.mini"
	assert.NoError(t, c.CheckOutput())
}
