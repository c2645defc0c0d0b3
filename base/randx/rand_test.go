// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func draw(rnd Rand) []float64 {
	vals := make([]float64, 8)
	for i := range vals {
		vals[i] = rnd.Float64()
	}
	return vals
}

func TestSeeded(t *testing.T) {
	a, b := NewSysRand(128), NewSysRand(128)
	assert.Equal(t, draw(a), draw(b))
	assert.NotEqual(t, draw(a), draw(NewSysRand(129)))

	a.Seed(5)
	first := draw(a)
	a.Seed(5)
	assert.Equal(t, first, draw(a))
}

func TestGlobal(t *testing.T) {
	g := NewGlobalRand()
	assert.Nil(t, g.Rand)
	for range 100 {
		f := g.Float32()
		assert.GreaterOrEqual(t, f, float32(0))
		assert.Less(t, f, float32(1))
		assert.Less(t, g.Intn(3), 3)
	}
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, g.Perm(4))

	g.Seed(7)
	assert.NotNil(t, g.Rand)
	assert.Equal(t, draw(NewSysRand(7)), draw(g))
}
