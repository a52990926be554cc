// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sel

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mefi/errs"
	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/field"
	"github.com/cpmech/mefi/umesh"
)

// constField builds a scalar field array whose value at row i is fn(i).
func constField(n int, fn func(int) float64) *field.Array {
	arr := field.NewArray(n, nil)
	for i := range arr.Rows {
		arr.Rows[i][0] = fn(i)
	}
	return arr
}

// unitQuadGrid builds an n×n grid of unit Quad4 cells over [0,n]^2.
func unitQuadGrid(n int) *umesh.UMesh {
	var rows [][]float64
	idx := func(i, j int) int { return j*(n+1) + i }
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			rows = append(rows, []float64{float64(i), float64(j)})
		}
	}
	m := umesh.New(rows)
	var flat []int
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			flat = append(flat, idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1))
		}
	}
	m.AddRegularBlock(etype.Quad4, flat, 4, nil)
	return m
}

func Test_sel01(tst *testing.T) {

	chk.PrintTitle("Test sel01: DSL - rect & types extracts a quadrant")

	m := unitQuadGrid(10)
	expr := CentroidsInRect([2]float64{0, 0}, [2]float64{5, 5}).And(Types(etype.Quad4))
	ids, _, err := Select(m, expr)
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	chk.IntAssert(ids.Len(), 25)
}

func Test_sel02(tst *testing.T) {

	chk.PrintTitle("Test sel02: algebra laws - a&a==a, a|a==a, a-a==empty")

	m := unitQuadGrid(4)
	a := CentroidsInRect([2]float64{0, 0}, [2]float64{2, 2})

	aa, _, err := Select(m, a.And(a))
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	base, _, err := Select(m, a)
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	chk.IntAssert(aa.Len(), base.Len())

	ao, _, err := Select(m, a.Or(a))
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	chk.IntAssert(ao.Len(), base.Len())

	adiff, _, err := Select(m, a.Diff(a))
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	chk.IntAssert(adiff.Len(), 0)
}

func Test_sel03(tst *testing.T) {

	chk.PrintTitle("Test sel03: double negation is identity")

	m := unitQuadGrid(4)
	a := CentroidsInRect([2]float64{0, 0}, [2]float64{2, 2})

	base, _, err := Select(m, a)
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	nn, _, err := Select(m, a.Not().Not())
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	chk.IntAssert(nn.Len(), base.Len())
}

func Test_sel04(tst *testing.T) {

	chk.PrintTitle("Test sel04: 3D predicate against a 2D mesh fails with DimensionMismatch")

	m := unitQuadGrid(2)
	_, _, err := Select(m, CentroidsInSphere([3]float64{0, 0, 0}, 1))
	if err == nil {
		tst.Fatalf("expected DimensionMismatch, got nil")
	}
	if !errs.Is(err, errs.DimensionMismatch) {
		tst.Fatalf("expected DimensionMismatch, got %v", err)
	}
}

func Test_sel05(tst *testing.T) {

	chk.PrintTitle("Test sel05: field expression threshold selects the right count")

	m := unitQuadGrid(4)
	b := m.Block(etype.Quad4)
	b.AddField("rank", constField(b.Len(), func(i int) float64 { return float64(i) }))

	expr := FieldGeq(FieldByName("rank"), 8)
	ids, _, err := Select(m, expr)
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	chk.IntAssert(ids.Len(), 8) // ranks 8..15 out of 16 cells
}

func Test_sel06(tst *testing.T) {

	chk.PrintTitle("Test sel06: De Morgan - not(a|b) == not(a)&not(b)")

	m := unitQuadGrid(4)
	a := CentroidsInRect([2]float64{0, 0}, [2]float64{2, 4})
	b := CentroidsInRect([2]float64{0, 0}, [2]float64{4, 2})

	lhs, _, err := Select(m, a.Or(b).Not())
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	rhs, _, err := Select(m, a.Not().And(b.Not()))
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	chk.IntAssert(lhs.Len(), rhs.Len())
}

func Test_sel07(tst *testing.T) {

	chk.PrintTitle("Test sel07: a^b == (a|b)-(a&b)")

	m := unitQuadGrid(4)
	a := CentroidsInRect([2]float64{0, 0}, [2]float64{2, 4})
	b := CentroidsInRect([2]float64{0, 0}, [2]float64{4, 2})

	xor, _, err := Select(m, a.Xor(b))
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	orMinusAnd, _, err := Select(m, a.Or(b).Diff(a.And(b)))
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	chk.IntAssert(xor.Len(), orMinusAnd.Len())
}
