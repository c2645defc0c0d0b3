// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallel provides fork-join parallel loops over index ranges.
// Each call runs its body on a bounded set of goroutines and returns
// once every iteration has completed.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers is the maximum number of goroutines used by one loop.
// If it is <= 0, GOMAXPROCS is used.
var Workers = 0

func workers() int {
	if Workers > 0 {
		return Workers
	}
	return runtime.GOMAXPROCS(0)
}

// For calls fn(i) for every i in [0, n), in parallel.
func For(n int, fn func(i int)) {
	ForBlocked(0, n, 1, func(begin, end int) {
		for i := begin; i < end; i++ {
			fn(i)
		}
	})
}

// ForBlocked splits [begin, end) into consecutive blocks of at most
// blockSize items and calls fn(blockBegin, blockEnd) for each block,
// in parallel. A single block is run directly on the calling goroutine.
func ForBlocked(begin, end, blockSize int, fn func(begin, end int)) {
	if end <= begin {
		return
	}
	if blockSize <= 0 {
		blockSize = 1
	}
	if end-begin <= blockSize {
		fn(begin, end)
		return
	}
	var g errgroup.Group
	g.SetLimit(workers())
	for b := begin; b < end; b += blockSize {
		e := min(b+blockSize, end)
		g.Go(func() error {
			fn(b, e)
			return nil
		})
	}
	g.Wait()
}
