// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mutate

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/geom"
	"github.com/cpmech/mefi/umesh"
)

// totalArea sums geom.Measure2 over every Quad4 in the mesh.
func totalArea(m *umesh.UMesh) float64 {
	sum := 0.0
	for _, v := range m.ElementsOfDim(etype.Quad4.Dimension()) {
		a, err := geom.Measure2(v)
		if err != nil {
			panic(err)
		}
		sum += a
	}
	return sum
}

// twoByOneQuadGrid builds two Quad4 cells sharing one edge.
func twoByOneQuadGrid() *umesh.UMesh {
	m := umesh.New([][]float64{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	})
	m.AddRegularBlock(etype.Quad4, []int{0, 1, 4, 3, 1, 2, 5, 4}, 4, nil)
	return m
}

func Test_mutate01(tst *testing.T) {

	chk.PrintTitle("Test mutate01: snap pulls a near-duplicate node onto the reference mesh")

	subject := umesh.New([][]float64{
		{0, 0}, {1.0001, 0}, {1, 1},
	})
	subject.AddRegularBlock(etype.Tri3, []int{0, 1, 2}, 3, nil)

	reference := umesh.New([][]float64{
		{0, 0}, {1, 0}, {1, 1},
	})
	reference.AddRegularBlock(etype.Tri3, []int{0, 1, 2}, 3, nil)

	out := Snap(subject, reference, 0.01)
	got := out.Coords().At(1)
	chk.Vector(tst, "snapped node 1", 1e-15, got, []float64{1, 0})
}

func Test_mutate02(tst *testing.T) {

	chk.PrintTitle("Test mutate02: snap leaves nodes beyond eps untouched")

	subject := umesh.New([][]float64{
		{0, 0}, {5, 5}, {1, 1},
	})
	subject.AddRegularBlock(etype.Tri3, []int{0, 1, 2}, 3, nil)

	reference := umesh.New([][]float64{
		{0, 0}, {1, 0}, {1, 1},
	})
	reference.AddRegularBlock(etype.Tri3, []int{0, 1, 2}, 3, nil)

	out := Snap(subject, reference, 0.01)
	got := out.Coords().At(1)
	chk.Vector(tst, "unsnapped node 1", 1e-15, got, []float64{5, 5})
}

func Test_mutate03(tst *testing.T) {

	chk.PrintTitle("Test mutate03: merge_nodes collapses two near-duplicate coincident corners")

	m := umesh.New([][]float64{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{1.0000001, 0}, {2, 0}, {2, 1}, {1, 1},
	})
	m.AddRegularBlock(etype.Quad4, []int{0, 1, 2, 3, 4, 5, 6, 7}, 4, nil)

	out := MergeNodes(m, 1e-4)
	conn := out.Block(etype.Quad4).Connectivity.Row(1)
	if conn[0] != 1 {
		tst.Fatalf("expected second quad's leading node to merge onto node 1, got %d", conn[0])
	}
}

func Test_mutate04(tst *testing.T) {

	chk.PrintTitle("Test mutate04: crack splits the shared edge between two quads")

	mesh := twoByOneQuadGrid()

	// cut shares mesh's node numbering: nodes 1 and 4 are the shared edge
	// between the two quads ((1,0)-(1,1)).
	cut := umesh.New([][]float64{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	})
	cut.AddRegularBlock(etype.Seg2, []int{1, 4}, 2, nil)

	out, err := Crack(mesh, cut)
	if err != nil {
		tst.Fatalf("crack failed: %v", err)
	}

	b := out.Block(etype.Quad4)
	if b.Len() != 2 {
		tst.Fatalf("expected 2 quads after crack, got %d", b.Len())
	}
	left := b.Connectivity.Row(0)
	right := b.Connectivity.Row(1)
	shared := 0
	for _, a := range left {
		for _, c := range right {
			if a == c {
				shared++
			}
		}
	}
	if shared != 0 {
		tst.Fatalf("expected no shared nodes after crack, found %d", shared)
	}
}

func Test_mutate05(tst *testing.T) {

	chk.PrintTitle("Test mutate05: crack reports CutElementNotFound for a cut outside the mesh")

	mesh := twoByOneQuadGrid()

	// nodes 0 and 5 are opposite corners of the grid: both exist, but no
	// element edge connects them.
	cut := umesh.New([][]float64{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	})
	cut.AddRegularBlock(etype.Seg2, []int{0, 5}, 2, nil)

	_, err := Crack(mesh, cut)
	if err == nil {
		tst.Fatalf("expected CutElementNotFound, got nil")
	}
}

func Test_mutate06(tst *testing.T) {

	chk.PrintTitle("Test mutate06: crack preserves total area (splitting nodes moves no geometry)")

	mesh := twoByOneQuadGrid()
	before := totalArea(mesh)

	cut := umesh.New([][]float64{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	})
	cut.AddRegularBlock(etype.Seg2, []int{1, 4}, 2, nil)

	out, err := Crack(mesh, cut)
	if err != nil {
		tst.Fatalf("crack failed: %v", err)
	}
	after := totalArea(out)
	chk.Scalar(tst, "total area", 1e-12, after, before)
}

func Test_mutate07(tst *testing.T) {

	chk.PrintTitle("Test mutate07: merge_nodes is idempotent at a fixed eps")

	m := umesh.New([][]float64{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{1.0000001, 0}, {2, 0}, {2, 1}, {1, 1},
	})
	m.AddRegularBlock(etype.Quad4, []int{0, 1, 2, 3, 4, 5, 6, 7}, 4, nil)

	once := MergeNodes(m, 1e-4)
	row0 := append([]int(nil), once.Block(etype.Quad4).Connectivity.Row(0)...)
	row1 := append([]int(nil), once.Block(etype.Quad4).Connectivity.Row(1)...)

	twice := MergeNodes(once, 1e-4)
	chk.IntAssert(len(twice.Block(etype.Quad4).Connectivity.Row(0)), len(row0))
	for k, n := range row0 {
		chk.IntAssert(twice.Block(etype.Quad4).Connectivity.Row(0)[k], n)
	}
	for k, n := range row1 {
		chk.IntAssert(twice.Block(etype.Quad4).Connectivity.Row(1)[k], n)
	}
}
