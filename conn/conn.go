// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conn implements Connectivity (spec C2): a tagged union of
// Regular (fixed-width E×K row-major matrix, the shape of
// gofem/shp.Shape's natural-coordinate tables) and Poly (jagged,
// built on mefi/index) node-index storage, plus the Phed per-face
// sentinel-delimited decoding.
package conn

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/index"
)

// Connectivity holds node-index rows for every element of one block.
// Exactly one of (regular) or (poly) is populated.
type Connectivity struct {
	width  int // K, for Regular; 0 for Poly
	flat   []int
	jagged *index.Indirect // non-nil iff Poly
}

// NewRegular builds a Regular connectivity from an E×K flat row-major buffer.
func NewRegular(flat []int, width int) *Connectivity {
	if width <= 0 {
		chk.Panic("conn: regular width must be positive, got %d", width)
	}
	if len(flat)%width != 0 {
		chk.Panic("conn: flat buffer length %d is not a multiple of width %d", len(flat), width)
	}
	return &Connectivity{width: width, flat: flat}
}

// NewPoly builds a Poly connectivity from a flat node buffer and an offset table.
func NewPoly(data, offsets []int) *Connectivity {
	return &Connectivity{jagged: index.NewFrom(data, offsets)}
}

// IsPoly reports whether this connectivity is the Poly variant.
func (c *Connectivity) IsPoly() bool { return c.jagged != nil }

// Width returns K for Regular connectivity, 0 for Poly.
func (c *Connectivity) Width() int { return c.width }

// Len returns the element count, E.
func (c *Connectivity) Len() int {
	if c.jagged != nil {
		return c.jagged.Len()
	}
	if c.width == 0 {
		return 0
	}
	return len(c.flat) / c.width
}

// Row returns the node indices of element i, regardless of variant.
func (c *Connectivity) Row(i int) []int {
	if c.jagged != nil {
		return c.jagged.Row(i)
	}
	if i < 0 || i >= c.Len() {
		chk.Panic("conn: row %d out of range [0,%d)", i, c.Len())
	}
	return c.flat[i*c.width : (i+1)*c.width]
}

// RowMut returns a mutable slice of element i's node indices. For Regular
// connectivity the slice length must stay == Width(); for Poly it is free.
func (c *Connectivity) RowMut(i int) []int {
	if c.jagged != nil {
		return c.jagged.RowMut(i)
	}
	if i < 0 || i >= c.Len() {
		chk.Panic("conn: row %d out of range [0,%d)", i, c.Len())
	}
	return c.flat[i*c.width : (i+1)*c.width]
}

// Push appends one element's node-index row.
func (c *Connectivity) Push(row []int) {
	if c.jagged != nil {
		c.jagged.Push(row)
		return
	}
	if len(row) != c.width {
		chk.Panic("conn: regular push expects %d nodes, got %d", c.width, len(row))
	}
	c.flat = append(c.flat, row...)
}

// Rows returns every row in element order.
func (c *Connectivity) Rows() [][]int {
	out := make([][]int, c.Len())
	for i := range out {
		out[i] = c.Row(i)
	}
	return out
}

// DecodePhedFaces splits a Phed row (node indices of every bounding face,
// separated by etype.Sentinel between loops) into per-face node slices.
func DecodePhedFaces(row []int) [][]int {
	var faces [][]int
	var cur []int
	for _, n := range row {
		if n == etype.Sentinel {
			if len(cur) > 0 {
				faces = append(faces, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, n)
	}
	if len(cur) > 0 {
		faces = append(faces, cur)
	}
	return faces
}

// EncodePhedFaces packs per-face node slices back into one sentinel-delimited row.
func EncodePhedFaces(faces [][]int) []int {
	var row []int
	for i, f := range faces {
		if i > 0 {
			row = append(row, etype.Sentinel)
		}
		row = append(row, f...)
	}
	return row
}
