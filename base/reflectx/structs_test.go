// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y, Z float32
}

type inner struct {
	Name string `default:"inner"`
}

type settings struct {
	Count   int     `default:"20"`
	Size    float32 `default:"1.5"`
	Enabled bool    `default:"true"`
	Seed    int64   `default:"128"`
	Pos     point   `default:"100 0 -2"`
	Inner   inner
	Plain   string
	hidden  int `default:"3"`
}

func TestSetFromDefaultTags(t *testing.T) {
	s := &settings{Plain: "kept"}
	require.NoError(t, SetFromDefaultTags(s))
	assert.Equal(t, 20, s.Count)
	assert.Equal(t, float32(1.5), s.Size)
	assert.True(t, s.Enabled)
	assert.Equal(t, int64(128), s.Seed)
	assert.Equal(t, point{100, 0, -2}, s.Pos)
	assert.Equal(t, "inner", s.Inner.Name)
	assert.Equal(t, "kept", s.Plain)
	assert.Equal(t, 0, s.hidden)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	var bad struct {
		N   int   `default:"many"`
		Pos point `default:"1 2"`
		OK  bool  `default:"true"`
	}
	err := SetFromDefaultTags(&bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field N")
	assert.Contains(t, err.Error(), "field Pos")
	assert.True(t, bad.OK)

	assert.Error(t, SetFromDefaultTags(3))
	assert.Error(t, SetFromDefaultTags(settings{}))
}
