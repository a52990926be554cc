// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mefi

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/sel"
	"github.com/cpmech/mefi/umesh"
)

func Test_measure01(tst *testing.T) {

	chk.PrintTitle("Test measure01: 2x1 quad grid measures to {Quad4: [1.0, 1.0]}")

	m := umesh.New([][]float64{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	})
	m.AddRegularBlock(etype.Quad4, []int{0, 1, 4, 3, 1, 2, 5, 4}, 4, nil)

	f, err := Measure(m, nil)
	if err != nil {
		tst.Fatalf("measure failed: %v", err)
	}
	arr, ok := f.Arrays[etype.Quad4]
	if !ok {
		tst.Fatalf("expected a Quad4 entry in the measure field")
	}
	chk.IntAssert(arr.Len(), 2)
	chk.Scalar(tst, "quad0 area", 1e-12, arr.Rows[0][0], 1.0)
	chk.Scalar(tst, "quad1 area", 1e-12, arr.Rows[1][0], 1.0)
}

func Test_measure02(tst *testing.T) {

	chk.PrintTitle("Test measure02: select+types DSL extracts 25 of 100 quads on a 10x10 grid")

	coords := make([][]float64, 0, 121)
	for j := 0; j <= 10; j++ {
		for i := 0; i <= 10; i++ {
			coords = append(coords, []float64{float64(i) / 10, float64(j) / 10})
		}
	}
	m := umesh.New(coords)
	var conn []int
	for j := 0; j < 10; j++ {
		for i := 0; i < 10; i++ {
			n0 := j*11 + i
			n1 := n0 + 1
			n2 := n0 + 12
			n3 := n0 + 11
			conn = append(conn, n0, n1, n2, n3)
		}
	}
	m.AddRegularBlock(etype.Quad4, conn, 4, nil)

	expr := sel.CentroidsInRect([2]float64{0, 0}, [2]float64{0.5, 0.5}).And(sel.Types(etype.Quad4))
	ids, sub, err := Select(m, expr)
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	chk.IntAssert(sub.NumElements(), 25)
	chk.IntAssert(len(ids.Indices(etype.Quad4)), 25)
}
