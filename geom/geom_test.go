// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/umesh"
)

func Test_geom01(tst *testing.T) {

	chk.PrintTitle("Test geom01: 2x1 quad grid area (scenario 1)")

	m := umesh.New([][]float64{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	})
	m.AddRegularBlock(etype.Quad4, []int{0, 1, 4, 3, 1, 2, 5, 4}, 4, nil)

	for _, v := range m.Elements() {
		area, err := Measure2(v)
		if err != nil {
			tst.Fatal(err)
		}
		chk.Scalar(tst, "area", 1e-15, area, 1.0)
	}
}

func Test_geom02(tst *testing.T) {

	chk.PrintTitle("Test geom02: segment intersection crossing (scenario 4)")

	res := IntersectSegSeg([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{0, 1}, [2]float64{1, 0})
	if res.Kind != OneNew {
		tst.Fatalf("expected OneNew, got %v", res.Kind)
	}
	chk.Scalar(tst, "x", 1e-9, res.Point[0], 0.5)
	chk.Scalar(tst, "y", 1e-9, res.Point[1], 0.5)
}

func Test_geom03(tst *testing.T) {

	chk.PrintTitle("Test geom03: collinear overlap (scenario 5)")

	res := IntersectSegSeg([2]float64{0, 0}, [2]float64{2, 0}, [2]float64{1, 0}, [2]float64{3, 0})
	if res.Kind != Overlap {
		tst.Fatalf("expected Overlap, got %v", res.Kind)
	}
	if res.SegA != P3 || res.SegB != P2 {
		tst.Fatalf("expected overlap delimited by P3,P2, got %v,%v", res.SegA, res.SegB)
	}
}

func Test_geom04(tst *testing.T) {

	chk.PrintTitle("Test geom04: symmetry law for intersect_seg_seg")

	p1, p2, p3, p4 := [2]float64{0, 0}, [2]float64{1, 1}, [2]float64{0, 1}, [2]float64{1, 0}
	a := IntersectSegSeg(p1, p2, p3, p4)
	b := IntersectSegSeg(p3, p4, p1, p2)
	if a.Kind != b.Kind {
		tst.Fatalf("symmetry broken: %v != %v", a.Kind, b.Kind)
	}
	chk.Scalar(tst, "x", 1e-9, a.Point[0], b.Point[0])
	chk.Scalar(tst, "y", 1e-9, a.Point[1], b.Point[1])
}

func Test_geom05(tst *testing.T) {

	chk.PrintTitle("Test geom05: shared endpoint never returns None")

	res := IntersectSegSeg([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 0}, [2]float64{2, 1})
	if res.Kind == NoIntersection {
		tst.Fatalf("segments sharing an endpoint must not return NoIntersection")
	}
}

func Test_geom06(tst *testing.T) {

	chk.PrintTitle("Test geom06: in_polygon strict ray cast")

	square := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if !InPolygon([2]float64{0.5, 0.5}, square) {
		tst.Fatal("expected point inside unit square")
	}
	if InPolygon([2]float64{1.5, 0.5}, square) {
		tst.Fatal("expected point outside unit square")
	}
}
