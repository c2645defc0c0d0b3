// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	hits := make([]int32, 1000)
	For(len(hits), func(i int) {
		atomic.AddInt32(&hits[i], 1)
	})
	for i, h := range hits {
		assert.Equal(t, int32(1), h, "index %d", i)
	}
	For(0, func(i int) { t.Fatal("called for empty range") })
}

func TestForBlocked(t *testing.T) {
	var mu sync.Mutex
	var blocks [][2]int
	total := 0
	ForBlocked(10, 1035, 100, func(begin, end int) {
		mu.Lock()
		defer mu.Unlock()
		blocks = append(blocks, [2]int{begin, end})
		total += end - begin
	})
	assert.Equal(t, 1025, total)
	assert.Len(t, blocks, 11)
	for _, b := range blocks {
		assert.LessOrEqual(t, b[1]-b[0], 100)
		assert.Equal(t, 0, (b[0]-10)%100)
	}
}

func TestForBlockedSingle(t *testing.T) {
	calls := 0
	ForBlocked(0, 5, 16, func(begin, end int) {
		calls++
		assert.Equal(t, 0, begin)
		assert.Equal(t, 5, end)
	})
	assert.Equal(t, 1, calls)
}

func TestWorkers(t *testing.T) {
	defer func(w int) { Workers = w }(Workers)
	Workers = 2
	var running, peak int32
	ForBlocked(0, 64, 1, func(begin, end int) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&running, -1)
	})
	assert.LessOrEqual(t, peak, int32(2))
}
