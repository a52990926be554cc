// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package etype holds the closed element-type enumeration and the
// topological-dimension arithmetic used throughout mefi, grounded on
// the geometry-type table that github.com/cpmech/gofem/shp builds its
// factory from ("lin2", "tri3", "qua4", "hex8", ...).
package etype

import "github.com/cpmech/gosl/chk"

// Dimension is a topological dimension in [0,3].
type Dimension int

// dimensions
const (
	D0 Dimension = iota
	D1
	D2
	D3
)

// Add returns a+b saturated into [D0,D3]. Out-of-range is a programmer error.
func (a Dimension) Add(b Dimension) Dimension {
	d := int(a) + int(b)
	if d < 0 || d > 3 {
		chk.Panic("dimension arithmetic out of range: %d+%d", a, b)
	}
	return Dimension(d)
}

// Sub returns a-b saturated into [D0,D3].
func (a Dimension) Sub(b Dimension) Dimension {
	d := int(a) - int(b)
	if d < 0 {
		d = 0
	}
	if d > 3 {
		chk.Panic("dimension arithmetic out of range: %d-%d", a, b)
	}
	return Dimension(d)
}

// Regularity distinguishes fixed-width (Regular) from variable-width (Poly) connectivity.
type Regularity int

// regularities
const (
	Regular Regularity = iota
	Poly
)

// Type is the closed element-type enumeration. Numeric order is part of
// the external contract (spec §6): it is the persisted/serialised order.
type Type int

// element types, in persisted order
const (
	Vertex Type = iota
	Seg2
	Seg3
	Seg4
	Spline
	Tri3
	Tri6
	Tri7
	Quad4
	Quad8
	Quad9
	Pgon
	Tet4
	Tet10
	Hex8
	Hex21
	Phed
)

// Sentinel is the per-face separator used inside a Phed's flat node buffer.
// It is the maximum value a node index can ever validly take.
const Sentinel = int(^uint(0) >> 1) // max int

// names mirrors shp's geoType strings ("lin2", "tri3", "qua4", ...) but
// keeps mefi's own vocabulary rather than the teacher's abbreviations.
var names = [...]string{
	Vertex: "Vertex", Seg2: "Seg2", Seg3: "Seg3", Seg4: "Seg4", Spline: "Spline",
	Tri3: "Tri3", Tri6: "Tri6", Tri7: "Tri7",
	Quad4: "Quad4", Quad8: "Quad8", Quad9: "Quad9", Pgon: "Pgon",
	Tet4: "Tet4", Tet10: "Tet10", Hex8: "Hex8", Hex21: "Hex21", Phed: "Phed",
}

// String implements fmt.Stringer
func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(names) {
		return "Invalid"
	}
	return names[t]
}

type info struct {
	dim        Dimension
	regularity Regularity
	numNodes   int // -1 for Poly (variable)
}

var table = map[Type]info{
	Vertex: {D0, Regular, 1},
	Seg2:   {D1, Regular, 2},
	Seg3:   {D1, Regular, 3},
	Seg4:   {D1, Regular, 4},
	Spline: {D1, Poly, -1},
	Tri3:   {D2, Regular, 3},
	Tri6:   {D2, Regular, 6},
	Tri7:   {D2, Regular, 7},
	Quad4:  {D2, Regular, 4},
	Quad8:  {D2, Regular, 8},
	Quad9:  {D2, Regular, 9},
	Pgon:   {D2, Poly, -1},
	Tet4:   {D3, Regular, 4},
	Tet10:  {D3, Regular, 10},
	Hex8:   {D3, Regular, 8},
	Hex21:  {D3, Regular, 21},
	Phed:   {D3, Poly, -1},
}

// Dimension returns the element type's topological dimension.
func (t Type) Dimension() Dimension { return table[t].dim }

// Regularity returns whether t is Regular (fixed node count) or Poly (variable).
func (t Type) Regularity() Regularity { return table[t].regularity }

// IsPoly is a convenience for Regularity() == Poly.
func (t Type) IsPoly() bool { return table[t].regularity == Poly }

// NumNodes returns the fixed node count, or -1 for Poly types.
func (t Type) NumNodes() int { return table[t].numNodes }

// All returns every element type in persisted (numeric) order.
func All() []Type {
	return []Type{Vertex, Seg2, Seg3, Seg4, Spline, Tri3, Tri6, Tri7,
		Quad4, Quad8, Quad9, Pgon, Tet4, Tet10, Hex8, Hex21, Phed}
}
