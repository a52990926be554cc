// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/umesh"
)

// twoByOneQuadGrid builds the scenario-1 mesh from the specification:
// two Quad4 cells sharing one edge.
func twoByOneQuadGrid() *umesh.UMesh {
	m := umesh.New([][]float64{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	})
	m.AddRegularBlock(etype.Quad4, []int{0, 1, 4, 3, 1, 2, 5, 4}, 4, nil)
	return m
}

// twoDisjointTris builds two triangles sharing no nodes, for connected
// components coverage.
func twoDisjointTris() *umesh.UMesh {
	m := umesh.New([][]float64{
		{0, 0}, {1, 0}, {0, 1},
		{5, 5}, {6, 5}, {5, 6},
	})
	m.AddRegularBlock(etype.Tri3, []int{0, 1, 2, 3, 4, 5}, 3, nil)
	return m
}

func Test_topo01(tst *testing.T) {

	chk.PrintTitle("Test topo01: compute_submesh has 7 edges")

	m := twoByOneQuadGrid()
	sub, err := ComputeSubmesh(m, nil, nil)
	if err != nil {
		tst.Fatalf("compute_submesh failed: %v", err)
	}
	chk.IntAssert(sub.NumElements(), 7)
}

func Test_topo02(tst *testing.T) {

	chk.PrintTitle("Test topo02: submesh idempotence - recomputing yields the same count")

	m := twoByOneQuadGrid()
	first, err := ComputeSubmesh(m, nil, nil)
	if err != nil {
		tst.Fatalf("compute_submesh failed: %v", err)
	}
	second, err := ComputeSubmesh(m, nil, nil)
	if err != nil {
		tst.Fatalf("second compute_submesh failed: %v", err)
	}
	chk.IntAssert(second.NumElements(), first.NumElements())
}

func Test_topo03(tst *testing.T) {

	chk.PrintTitle("Test topo03: neighbours - shared quads connected by one edge")

	m := twoByOneQuadGrid()
	_, graph, err := ComputeNeighbours(m, nil, nil)
	if err != nil {
		tst.Fatalf("compute_neighbours failed: %v", err)
	}
	chk.IntAssert(len(graph.Nodes), 2)
	chk.IntAssert(len(graph.Edges), 1)
	a := umesh.ElementId{Type: etype.Quad4, Index: 0}
	edges := graph.NeighboursOf(a)
	chk.IntAssert(len(edges), 1)
}

func Test_topo04(tst *testing.T) {

	chk.PrintTitle("Test topo04: boundary of 2x1 quad grid has 6 edges")

	m := twoByOneQuadGrid()
	bnd, err := ComputeBoundaries(m, nil, nil)
	if err != nil {
		tst.Fatalf("compute_boundaries failed: %v", err)
	}
	chk.IntAssert(bnd.NumElements(), 6)
}

func Test_topo05(tst *testing.T) {

	chk.PrintTitle("Test topo05: sub_to_elem has one shared edge and six single-parent edges")

	m := twoByOneQuadGrid()
	_, subToParents, err := ComputeSubToElem(m, nil, nil)
	if err != nil {
		tst.Fatalf("compute_sub_to_elem failed: %v", err)
	}
	shared, solo := 0, 0
	for _, parents := range subToParents {
		switch len(parents) {
		case 1:
			solo++
		case 2:
			shared++
		}
	}
	chk.IntAssert(shared, 1)
	chk.IntAssert(solo, 6)
}

func Test_topo06(tst *testing.T) {

	chk.PrintTitle("Test topo06: connected components of two disjoint triangles")

	m := twoDisjointTris()
	d2 := etype.D2
	comps, err := ComputeConnectedComponents(m, &d2, nil)
	if err != nil {
		tst.Fatalf("compute_connected_components failed: %v", err)
	}
	chk.IntAssert(len(comps), 2)
	for _, c := range comps {
		chk.IntAssert(c.NumElements(), 1)
	}
}

func Test_topo07(tst *testing.T) {

	chk.PrintTitle("Test topo07: parallel neighbours agrees with the sequential edge/submesh counts")

	m := twoByOneQuadGrid()
	sub, err := ComputeSubmesh(m, nil, nil)
	if err != nil {
		tst.Fatalf("compute_submesh failed: %v", err)
	}
	_, seqGraph, err := ComputeNeighbours(m, nil, nil)
	if err != nil {
		tst.Fatalf("compute_neighbours failed: %v", err)
	}
	parSub, parGraph, err := ComputeNeighboursParallel(m, nil, nil)
	if err != nil {
		tst.Fatalf("compute_neighbours_parallel failed: %v", err)
	}
	chk.IntAssert(parSub.NumElements(), sub.NumElements())
	chk.IntAssert(len(parGraph.Nodes), len(seqGraph.Nodes))
	chk.IntAssert(len(parGraph.Edges), len(seqGraph.Edges))
}
