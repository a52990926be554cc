// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package index implements the jagged "indirect-index" container: rows
// of variable length packed into one flat buffer plus a cumulative
// offset table, the same layout gofem/shp uses for its per-face local
// vertex tables (Shape.FaceLocalVerts [][]int) but made mutable and
// append-friendly for Poly connectivity (spec C1).
package index

import "github.com/cpmech/gosl/chk"

// Indirect is a jagged array: row i maps to data[offsets[i-1]:offsets[i]],
// with offsets[-1] treated as 0.
type Indirect struct {
	data    []int
	offsets []int // len == number of rows; offsets[i] == end of row i
}

// New returns an empty Indirect container.
func New() *Indirect {
	return &Indirect{}
}

// NewFrom builds an Indirect from a pre-built flat buffer and offset table,
// as used when decoding Poly connectivity read from storage.
func NewFrom(data, offsets []int) *Indirect {
	return &Indirect{data: data, offsets: offsets}
}

// Len returns the number of rows, E.
func (o *Indirect) Len() int { return len(o.offsets) }

// NumItems returns the total number of packed items across all rows.
func (o *Indirect) NumItems() int { return len(o.data) }

func (o *Indirect) bounds(i int) (start, end int) {
	if i < 0 || i >= len(o.offsets) {
		chk.Panic("index: row %d out of range [0,%d)", i, len(o.offsets))
	}
	end = o.offsets[i]
	if i > 0 {
		start = o.offsets[i-1]
	}
	return
}

// Row returns an immutable slice view of row i.
func (o *Indirect) Row(i int) []int {
	start, end := o.bounds(i)
	return o.data[start:end]
}

// RowMut returns a mutable slice view of row i.
func (o *Indirect) RowMut(i int) []int {
	start, end := o.bounds(i)
	return o.data[start:end]
}

// Push appends row as a new last row.
func (o *Indirect) Push(row []int) {
	o.data = append(o.data, row...)
	base := 0
	if len(o.offsets) > 0 {
		base = o.offsets[len(o.offsets)-1]
	}
	o.offsets = append(o.offsets, base+len(row))
}

// ExtendFrom bulk-appends another container's raw buffers, rewriting the
// incoming offsets by the current base offset (data.len()).
func (o *Indirect) ExtendFrom(data, offsets []int) {
	base := len(o.data)
	o.data = append(o.data, data...)
	for _, off := range offsets {
		o.offsets = append(o.offsets, base+off)
	}
}

// Rows returns successive rows as immutable slices, in row order.
func (o *Indirect) Rows() [][]int {
	out := make([][]int, o.Len())
	for i := range out {
		out[i] = o.Row(i)
	}
	return out
}
