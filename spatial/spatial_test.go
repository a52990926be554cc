// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mefi/umesh"
)

func Test_spatial01(tst *testing.T) {

	chk.PrintTitle("Test spatial01: BVH2 in-bounds query finds the overlapping box, not the disjoint one")

	items := []Leaf2Item{
		Leaf2(umesh.ElementId{Type: 1, Index: 0}, [2]float64{0, 0}, [2]float64{1, 1}),
		Leaf2(umesh.ElementId{Type: 1, Index: 1}, [2]float64{10, 10}, [2]float64{11, 11}),
	}
	bvh := NewBVH2(items)
	got := bvh.InBounds2([2]float64{-1, -1}, [2]float64{2, 2})
	if len(got) != 1 || got[0].Index != 0 {
		tst.Fatalf("expected only element 0, got %v", got)
	}
}

func Test_spatial02(tst *testing.T) {

	chk.PrintTitle("Test spatial02: parallel BVH2 build above threshold agrees with the sequential build")

	n := parallelBuildThreshold + 50
	items := make([]Leaf2Item, n)
	itemsSeq := make([]Leaf2Item, n)
	for i := 0; i < n; i++ {
		x := float64(i)
		items[i] = Leaf2(umesh.ElementId{Type: 1, Index: i}, [2]float64{x, 0}, [2]float64{x + 1, 1})
		itemsSeq[i] = items[i]
	}
	seq := NewBVH2(itemsSeq)
	par := NewBVH2Parallel(items)

	got := par.InBounds2([2]float64{4.5, 0.5}, [2]float64{4.5, 0.5})
	want := seq.InBounds2([2]float64{4.5, 0.5}, [2]float64{4.5, 0.5})
	chk.IntAssert(len(got), len(want))
}

func Test_spatial03(tst *testing.T) {

	chk.PrintTitle("Test spatial03: BVH3 in-bounds query")

	items := []Leaf3Item{
		Leaf3(umesh.ElementId{Type: 1, Index: 0}, [3]float64{0, 0, 0}, [3]float64{1, 1, 1}),
		Leaf3(umesh.ElementId{Type: 1, Index: 1}, [3]float64{10, 10, 10}, [3]float64{11, 11, 11}),
	}
	bvh := NewBVH3(items)
	got := bvh.InBounds3([3]float64{-1, -1, -1}, [3]float64{2, 2, 2})
	if len(got) != 1 || got[0].Index != 0 {
		tst.Fatalf("expected only element 0, got %v", got)
	}
}

func Test_spatial04(tst *testing.T) {

	chk.PrintTitle("Test spatial04: 2D PointIndex nearest and drain-within")

	idx := NewPointIndex([][]float64{{0, 0}, {1, 0}, {5, 5}})
	i, ok := idx.Nearest([]float64{0.1, 0}, 0.5)
	if !ok || i != 0 {
		tst.Fatalf("expected nearest to be point 0, got %d ok=%v", i, ok)
	}

	drained := idx.DrainWithin([]float64{0, 0}, 1.5)
	if len(drained) != 2 {
		tst.Fatalf("expected 2 points drained, got %d", len(drained))
	}
	if _, ok := idx.Nearest([]float64{0, 0}, 1.5); ok {
		tst.Fatalf("expected drained points to no longer be queryable")
	}
}

func Test_spatial05(tst *testing.T) {

	chk.PrintTitle("Test spatial05: 3D PointIndex nearest and drain-within")

	idx := NewPointIndex([][]float64{{0, 0, 0}, {1, 0, 0}, {5, 5, 5}})
	i, ok := idx.Nearest([]float64{0.1, 0, 0}, 0.5)
	if !ok || i != 0 {
		tst.Fatalf("expected nearest to be point 0, got %d ok=%v", i, ok)
	}

	drained := idx.DrainWithin([]float64{0, 0, 0}, 1.5)
	if len(drained) != 2 {
		tst.Fatalf("expected 2 points drained, got %d", len(drained))
	}
}
