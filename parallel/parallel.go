// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallel implements the work-stealing scheduling model of
// spec §5: embarrassingly-parallel chunked maps, and the neighbour-graph
// map-reduce (§4.7's "parallel variant of compute_neighbours"), both
// built on golang.org/x/sync/errgroup the way
// junjiewwang-perf-analysis fans out independent chunks across
// an errgroup.Group. Operations run to completion or panic; there is no
// cancellation surface, matching spec §5's "operations never suspend."
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MinChunk is the default minimum chunk size below which Each falls
// back to sequential execution, avoiding tiny-task scheduling overhead.
const MinChunk = 64

// Each splits [0,n) into contiguous chunks of at least minChunk items
// (at most one per GOMAXPROCS worker) and runs fn(lo,hi) on each chunk
// concurrently via an errgroup.Group, used by C5's parallel element
// iteration. A panic in fn is not recovered: when more than one chunk
// runs, it happens on that chunk's goroutine and ends the program.
func Each(n, minChunk int, fn func(lo, hi int)) {
	if minChunk <= 0 {
		minChunk = MinChunk
	}
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}
	if chunk >= n {
		fn(0, n)
		return
	}

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // fn never returns an error; panics propagate on their own goroutine
}

// MapReduce runs fn once per chunk of [0,n), collecting one partial
// result per chunk, then folds them sequentially with reduce in chunk
// order — the shape topo.ComputeNeighboursParallel uses for its
// per-chunk SortedVecKey maps before the deterministic sequential merge
// spec §4.7 requires.
func MapReduce[T any](n, minChunk int, fn func(lo, hi int) T, reduce func(acc T, part T) T, zero T) T {
	if minChunk <= 0 {
		minChunk = MinChunk
	}
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}
	if chunk >= n {
		if n == 0 {
			return zero
		}
		return fn(0, n)
	}

	var bounds [][2]int
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		bounds = append(bounds, [2]int{lo, hi})
	}
	parts := make([]T, len(bounds))

	var g errgroup.Group
	for i, b := range bounds {
		i, b := i, b
		g.Go(func() error {
			parts[i] = fn(b[0], b[1])
			return nil
		})
	}
	_ = g.Wait()

	acc := zero
	for _, p := range parts {
		acc = reduce(acc, p)
	}
	return acc
}
