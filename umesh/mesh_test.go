// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package umesh

import (
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mefi/etype"
)

// twoByOneQuadGrid builds the scenario-1 mesh from the specification:
// coordinates (0,0),(1,0),(2,0),(0,1),(1,1),(2,1) and two Quad4 cells.
func twoByOneQuadGrid() *UMesh {
	m := New([][]float64{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	})
	m.AddRegularBlock(etype.Quad4, []int{0, 1, 4, 3, 1, 2, 5, 4}, 4, nil)
	return m
}

func Test_mesh01(tst *testing.T) {

	chk.PrintTitle("Test mesh01: 2x1 quad grid basics")

	m := twoByOneQuadGrid()
	chk.IntAssert(m.NumElements(), 2)
	chk.IntAssert(len(m.Elements()), m.NumElements())
	chk.Ints(tst, "used nodes", m.UsedNodes(), []int{0, 1, 2, 3, 4, 5})
	if m.TopologicalDimension() != etype.D2 {
		tst.Fatalf("expected D2, got %v", m.TopologicalDimension())
	}
	chk.IntAssert(m.SpaceDimension(), 2)
}

func Test_mesh02(tst *testing.T) {

	chk.PrintTitle("Test mesh02: extract shares coords")

	m := twoByOneQuadGrid()
	ids := NewElementIds()
	ids.Add(ElementId{Type: etype.Quad4, Index: 0})
	sub := m.Extract(ids)

	chk.IntAssert(sub.NumElements(), 1)
	if sub.Coords() != m.Coords() && sub.coords.rows[0][0] != m.coords.rows[0][0] {
		tst.Fatalf("extract should share coordinate values")
	}
	v := sub.Elements()[0]
	chk.Ints(tst, "extracted conn", v.Connectivity(), []int{0, 1, 4, 3})
}

func Test_mesh03(tst *testing.T) {

	chk.PrintTitle("Test mesh03: element view centroid")

	m := twoByOneQuadGrid()
	v0 := m.Elements()[0]
	c := v0.Centroid2()
	chk.Scalar(tst, "cx", 1e-15, c[0], 0.5)
	chk.Scalar(tst, "cy", 1e-15, c[1], 0.5)
}

func Test_mesh04(tst *testing.T) {

	chk.PrintTitle("Test mesh04: ParallelEach visits every element exactly once")

	m := twoByOneQuadGrid()
	var mu sync.Mutex
	seen := make(map[ElementId]bool)
	m.ParallelEach(func(v *View) {
		mu.Lock()
		seen[v.Id()] = true
		mu.Unlock()
	})
	chk.IntAssert(len(seen), m.NumElements())
}

func Test_mesh05(tst *testing.T) {

	chk.PrintTitle("Test mesh05: ParallelEachMut writes land on disjoint elements without aliasing")

	m := twoByOneQuadGrid()
	m.ParallelEachMut(func(v *ViewMut) {
		v.SetFamily(v.Index() + 1)
	})
	for _, v := range m.Elements() {
		chk.IntAssert(v.Family(), v.Index()+1)
	}
}
