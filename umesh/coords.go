// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package umesh

import (
	"sync/atomic"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Coords is the shared N×d coordinate table. Multiple UMesh values may
// point at the same Coords (a cheap clone, per spec §3); refs tracks how
// many owners currently share it so a mutation path can copy-on-write
// instead of clobbering a sibling mesh's view.
type Coords struct {
	rows [][]float64 // N x d, row-major via la.MatAlloc
	dim  int
	refs *int32
}

// NewCoords builds a fresh, uniquely-owned coordinate table from N rows of d coordinates.
func NewCoords(rows [][]float64) *Coords {
	dim := 0
	if len(rows) > 0 {
		dim = len(rows[0])
	}
	r := int32(1)
	cp := la.MatAlloc(len(rows), dim)
	for i := range rows {
		copy(cp[i], rows[i])
	}
	return &Coords{rows: cp, dim: dim, refs: &r}
}

// Share returns a new handle to the same underlying storage, incrementing
// the shared reference count. This is the "cheap clone" spec §3 describes.
func (c *Coords) Share() *Coords {
	atomic.AddInt32(c.refs, 1)
	return &Coords{rows: c.rows, dim: c.dim, refs: c.refs}
}

// Rows returns the number of coordinate rows N.
func (c *Coords) Rows() int { return len(c.rows) }

// Dim returns the space dimension d.
func (c *Coords) Dim() int { return c.dim }

// At returns coordinate row i (read-only by convention; use SetRow to write).
func (c *Coords) At(i int) []float64 { return c.rows[i] }

// ensureUnique copies the backing storage if it is shared by more than one
// owner, so the caller can mutate safely. It is the copy-on-demand step
// spec §3 requires for any mutation path.
func (c *Coords) ensureUnique() {
	if atomic.LoadInt32(c.refs) <= 1 {
		return
	}
	atomic.AddInt32(c.refs, -1)
	cp := la.MatAlloc(len(c.rows), c.dim)
	for i := range c.rows {
		copy(cp[i], c.rows[i])
	}
	c.rows = cp
	r := int32(1)
	c.refs = &r
}

// SetRow overwrites coordinate row i, copy-on-write if shared. Used by
// snap to rewrite subject coordinates onto reference coordinates.
func (c *Coords) SetRow(i int, v []float64) {
	if len(v) != c.dim {
		chk.Panic("coords: SetRow dimension mismatch: got %d, want %d", len(v), c.dim)
	}
	c.ensureUnique()
	copy(c.rows[i], v)
}

// Append appends new coordinate rows, copy-on-write if shared, and returns
// the index of the first appended row. Used by mutate.crack and
// UMesh.AppendCoords.
func (c *Coords) Append(rows [][]float64) int {
	c.ensureUnique()
	base := len(c.rows)
	for _, r := range rows {
		cp := make([]float64, c.dim)
		copy(cp, r)
		c.rows = append(c.rows, cp)
	}
	return base
}

// Prepend prepends new coordinate rows and returns the shift amount every
// existing node index must be rewritten by (spec §4.4 prepend_coords).
func (c *Coords) Prepend(rows [][]float64) int {
	c.ensureUnique()
	shift := len(rows)
	merged := la.MatAlloc(shift+len(c.rows), c.dim)
	for i, r := range rows {
		copy(merged[i], r)
	}
	for i, r := range c.rows {
		copy(merged[shift+i], r)
	}
	c.rows = merged
	return shift
}
