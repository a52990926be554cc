// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_parallel01(tst *testing.T) {

	chk.PrintTitle("Test parallel01: Each visits every index exactly once")

	n := 1000
	var mu sync.Mutex
	seen := make(map[int]bool, n)
	Each(n, 8, func(lo, hi int) {
		mu.Lock()
		for i := lo; i < hi; i++ {
			seen[i] = true
		}
		mu.Unlock()
	})
	chk.IntAssert(len(seen), n)
}

func Test_parallel02(tst *testing.T) {

	chk.PrintTitle("Test parallel02: MapReduce sums partial chunk sums")

	n := 997
	total := MapReduce(n, 16, func(lo, hi int) int {
		s := 0
		for i := lo; i < hi; i++ {
			s += i
		}
		return s
	}, func(acc, part int) int { return acc + part }, 0)

	want := n * (n - 1) / 2
	chk.IntAssert(total, want)
}
