// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package umesh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mefi/block"
	"github.com/cpmech/mefi/etype"
)

// View is the read-only cursor onto one element inside a block (spec C5).
// It borrows the mesh's coordinates and one connectivity row.
type View struct {
	coords     *Coords
	blk        *block.Block
	index      int
	groupsOnce bool
	groupsCache []string
}

// NewView builds a view for element `index` inside `blk`, borrowing `coords`.
func NewView(coords *Coords, blk *block.Block, index int) *View {
	return &View{coords: coords, blk: blk, index: index}
}

// ElementType returns the element's type.
func (v *View) ElementType() etype.Type { return v.blk.Type }

// Index returns the block-local index.
func (v *View) Index() int { return v.index }

// Id returns the globally-unique (within this mesh) element id.
func (v *View) Id() ElementId { return ElementId{Type: v.blk.Type, Index: v.index} }

// Connectivity returns the node indices of this element.
func (v *View) Connectivity() []int { return v.blk.Connectivity.Row(v.index) }

// NumNodes returns len(Connectivity()).
func (v *View) NumNodes() int { return len(v.Connectivity()) }

// Dimension returns the element type's topological dimension.
func (v *View) Dimension() etype.Dimension { return v.blk.Type.Dimension() }

// Regularity returns the element type's regularity.
func (v *View) Regularity() etype.Regularity { return v.blk.Type.Regularity() }

// Family returns the element's family tag.
func (v *View) Family() int { return v.blk.Family(v.index) }

// Coord returns node i's full coordinate row (dimension-agnostic).
func (v *View) Coord(i int) []float64 { return v.coords.At(i) }

// Coord2 returns node i's (x,y), asserting the mesh is at least 2D.
func (v *View) Coord2(i int) [2]float64 {
	c := v.coords.At(i)
	if len(c) < 2 {
		chk.Panic("view: Coord2 requires dim>=2, got %d", len(c))
	}
	return [2]float64{c[0], c[1]}
}

// Coord3 returns node i's (x,y,z), asserting the mesh is at least 3D.
func (v *View) Coord3(i int) [3]float64 {
	c := v.coords.At(i)
	if len(c) < 3 {
		chk.Panic("view: Coord3 requires dim>=3, got %d", len(c))
	}
	return [3]float64{c[0], c[1], c[2]}
}

// Coords returns every node's coordinate row, in connectivity order.
func (v *View) Coords() [][]float64 {
	conn := v.Connectivity()
	out := make([][]float64, len(conn))
	for i, n := range conn {
		out[i] = v.coords.At(n)
	}
	return out
}

// Bounds2 returns the element's 2D axis-aligned bounding box as (min, max).
func (v *View) Bounds2() (min, max [2]float64) {
	conn := v.Connectivity()
	min = v.Coord2(conn[0])
	max = min
	for _, n := range conn[1:] {
		c := v.Coord2(n)
		for k := 0; k < 2; k++ {
			if c[k] < min[k] {
				min[k] = c[k]
			}
			if c[k] > max[k] {
				max[k] = c[k]
			}
		}
	}
	return
}

// Bounds3 returns the element's 3D axis-aligned bounding box as (min, max).
func (v *View) Bounds3() (min, max [3]float64) {
	conn := v.Connectivity()
	min = v.Coord3(conn[0])
	max = min
	for _, n := range conn[1:] {
		c := v.Coord3(n)
		for k := 0; k < 3; k++ {
			if c[k] < min[k] {
				min[k] = c[k]
			}
			if c[k] > max[k] {
				max[k] = c[k]
			}
		}
	}
	return
}

// Centroid2 returns the arithmetic mean of the element's node coordinates in 2D.
func (v *View) Centroid2() [2]float64 {
	conn := v.Connectivity()
	var c [2]float64
	for _, n := range conn {
		p := v.Coord2(n)
		c[0] += p[0]
		c[1] += p[1]
	}
	n := float64(len(conn))
	return [2]float64{c[0] / n, c[1] / n}
}

// Centroid3 returns the arithmetic mean of the element's node coordinates in 3D.
func (v *View) Centroid3() [3]float64 {
	conn := v.Connectivity()
	var c [3]float64
	for _, n := range conn {
		p := v.Coord3(n)
		c[0] += p[0]
		c[1] += p[1]
		c[2] += p[2]
	}
	n := float64(len(conn))
	return [3]float64{c[0] / n, c[1] / n, c[2] / n}
}

// InGroup reports whether this element belongs to the named group.
func (v *View) InGroup(name string) bool { return v.blk.InGroup(v.index, name) }

// Groups returns, lazily computed and cached, every group name this element belongs to.
func (v *View) Groups() []string {
	if !v.groupsOnce {
		v.groupsCache = v.blk.GroupsOf(v.index)
		v.groupsOnce = true
	}
	return v.groupsCache
}

// Equal reports connectivity equality: same node-index sequence, order-sensitive.
func (v *View) Equal(other *View) bool {
	a, b := v.Connectivity(), other.Connectivity()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ViewMut is the mutable cursor onto one element: exclusive write access
// to its family tag and connectivity row. It may never change element
// type or node count.
type ViewMut struct {
	View
}

// NewViewMut builds a mutable view for element `index` inside `blk`.
func NewViewMut(coords *Coords, blk *block.Block, index int) *ViewMut {
	return &ViewMut{View: View{coords: coords, blk: blk, index: index}}
}

// SetFamily overwrites the element's family tag.
func (v *ViewMut) SetFamily(f int) { *v.blk.FamilyMut(v.index) = f }

// ConnectivityMut returns a mutable slice of the element's node indices.
// Its length must not change.
func (v *ViewMut) ConnectivityMut() []int { return v.blk.Connectivity.RowMut(v.index) }
