// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package umesh implements UMesh (spec C4): the shared coordinate table
// plus an ordered-by-type map of ElementBlocks, and the read/write
// element cursors (spec C5) that borrow into it. Grounded on
// gofem/inp.Mesh's Verts+Cells container and its derived Ctype2cells map.
package umesh

import (
	"sort"

	"github.com/cpmech/mefi/block"
	"github.com/cpmech/mefi/errs"
	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/parallel"
)

// UMesh is the mesh container: a shared coordinate table plus an ordered
// map of ElementBlock keyed by element type, iterated in stable
// type-sorted order.
type UMesh struct {
	coords *Coords
	blocks map[etype.Type]*block.Block
}

// New builds a mesh from an explicit N×d coordinate table.
func New(coordRows [][]float64) *UMesh {
	return &UMesh{coords: NewCoords(coordRows), blocks: make(map[etype.Type]*block.Block)}
}

// newFromShared builds a mesh sharing an existing Coords handle (used by
// Extract/submesh construction so they never copy the coordinate table).
func newFromShared(coords *Coords) *UMesh {
	return &UMesh{coords: coords, blocks: make(map[etype.Type]*block.Block)}
}

// NewWithSharedCoords builds an empty mesh over an already-shared Coords
// handle (typically obtained from another mesh's Coords().Share()), for
// topology derivations (compute_submesh and friends) that must share
// coordinates with their source mesh without owning any of its blocks.
func NewWithSharedCoords(c *Coords) *UMesh { return newFromShared(c) }

// Coords returns the shared coordinate table.
func (m *UMesh) Coords() *Coords { return m.coords }

// View returns a read-only handle to this mesh (coordinates shared,
// same block map reference) for passing into topology/selection/geometry
// operations that only ever read.
func (m *UMesh) View() *UMesh { return m }

// AddRegularBlock inserts a block of fixed-width elements. If a block of
// this type already exists, the mesh is left unchanged (first-writer-wins).
func (m *UMesh) AddRegularBlock(typ etype.Type, flat []int, width int, families []int) error {
	if _, exists := m.blocks[typ]; exists {
		return nil
	}
	b, err := block.NewRegular(typ, flat, width, families)
	if err != nil {
		return err
	}
	m.blocks[typ] = b
	return nil
}

// AddPolyBlock inserts a block of variable-width elements. First-writer-wins.
func (m *UMesh) AddPolyBlock(typ etype.Type, data, offsets []int, families []int) error {
	if _, exists := m.blocks[typ]; exists {
		return nil
	}
	b, err := block.NewPoly(typ, data, offsets, families)
	if err != nil {
		return err
	}
	m.blocks[typ] = b
	return nil
}

// PutBlock installs a pre-built Block (used internally by Extract/replace);
// first-writer-wins as with the other constructors.
func (m *UMesh) PutBlock(b *block.Block) {
	if _, exists := m.blocks[b.Type]; exists {
		return
	}
	m.blocks[b.Type] = b
}

// Block returns the raw block for a type, or nil if absent.
func (m *UMesh) Block(typ etype.Type) *block.Block { return m.blocks[typ] }

// HasType reports whether a block of this type is present.
func (m *UMesh) HasType(typ etype.Type) bool { _, ok := m.blocks[typ]; return ok }

// sortedTypes returns the element types present, in persisted numeric order.
func (m *UMesh) sortedTypes() []etype.Type {
	var out []etype.Type
	for _, t := range etype.All() {
		if _, ok := m.blocks[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// RegularConnectivity returns the raw E×K connectivity rows for a Regular
// block, or a WrongConnectivityVariant/NotFound error.
func (m *UMesh) RegularConnectivity(typ etype.Type) ([][]int, error) {
	b, ok := m.blocks[typ]
	if !ok {
		return nil, errs.New(errs.NotFound, "umesh: no block of type %v", typ)
	}
	if b.Connectivity.IsPoly() {
		return nil, errs.New(errs.WrongConnectivityVariant, "umesh: %v is Poly, not Regular", typ)
	}
	return b.Connectivity.Rows(), nil
}

// PolyConnectivity returns the per-element connectivity rows of a Poly
// block, or a WrongConnectivityVariant/NotFound error.
func (m *UMesh) PolyConnectivity(typ etype.Type) (rows [][]int, err error) {
	b, ok := m.blocks[typ]
	if !ok {
		return nil, errs.New(errs.NotFound, "umesh: no block of type %v", typ)
	}
	if !b.Connectivity.IsPoly() {
		return nil, errs.New(errs.WrongConnectivityVariant, "umesh: %v is Regular, not Poly", typ)
	}
	return b.Connectivity.Rows(), nil
}

// Elements returns a view over every element, in type-sorted, then
// insertion order.
func (m *UMesh) Elements() []*View {
	var out []*View
	for _, t := range m.sortedTypes() {
		b := m.blocks[t]
		for i := 0; i < b.Len(); i++ {
			out = append(out, NewView(m.coords, b, i))
		}
	}
	return out
}

// ElementsOfDim returns every element view whose type has the given dimension.
func (m *UMesh) ElementsOfDim(d etype.Dimension) []*View {
	var out []*View
	for _, t := range m.sortedTypes() {
		if t.Dimension() != d {
			continue
		}
		b := m.blocks[t]
		for i := 0; i < b.Len(); i++ {
			out = append(out, NewView(m.coords, b, i))
		}
	}
	return out
}

// NumElements returns the total element count across every block.
func (m *UMesh) NumElements() int {
	n := 0
	for _, b := range m.blocks {
		n += b.Len()
	}
	return n
}

// Element returns a read-only view of one element, or NotFound.
func (m *UMesh) Element(id ElementId) (*View, error) {
	b, ok := m.blocks[id.Type]
	if !ok || id.Index < 0 || id.Index >= b.Len() {
		return nil, errs.New(errs.NotFound, "umesh: element %v not found", id)
	}
	return NewView(m.coords, b, id.Index), nil
}

// ElementMut returns a mutable view of one element, or NotFound.
func (m *UMesh) ElementMut(id ElementId) (*ViewMut, error) {
	b, ok := m.blocks[id.Type]
	if !ok || id.Index < 0 || id.Index >= b.Len() {
		return nil, errs.New(errs.NotFound, "umesh: element %v not found", id)
	}
	return NewViewMut(m.coords, b, id.Index), nil
}

// UsedNodes returns the sorted set of node indices referenced by any connectivity.
func (m *UMesh) UsedNodes() []int {
	seen := make(map[int]bool)
	for _, t := range m.sortedTypes() {
		b := m.blocks[t]
		for i := 0; i < b.Len(); i++ {
			for _, n := range b.Connectivity.Row(i) {
				seen[n] = true
			}
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// TopologicalDimension returns the maximum dimension among present element types.
func (m *UMesh) TopologicalDimension() etype.Dimension {
	d := etype.D0
	for t := range m.blocks {
		if t.Dimension() > d {
			d = t.Dimension()
		}
	}
	return d
}

// SpaceDimension returns the coordinate table's dimension (1, 2 or 3).
func (m *UMesh) SpaceDimension() int { return m.coords.Dim() }

// Extract builds a new mesh sharing Coords, containing exactly the
// elements named by ids, in the order given, one new Block per type present.
func (m *UMesh) Extract(ids *ElementIds) *UMesh {
	out := newFromShared(m.coords.Share())
	for _, t := range ids.Types() {
		b, ok := m.blocks[t]
		if !ok {
			continue
		}
		out.PutBlock(b.Extract(ids.Indices(t)))
	}
	return out
}

// AppendCoords appends rows to the shared coordinate table (zero-copy if
// not currently shared) and returns the index of the first new row.
func (m *UMesh) AppendCoords(rows [][]float64) int { return m.coords.Append(rows) }

// PrependCoords prepends rows, always reallocating, and rewrites every
// node index referenced by any block's connectivity by +len(rows).
func (m *UMesh) PrependCoords(rows [][]float64) {
	shift := m.coords.Prepend(rows)
	if shift == 0 {
		return
	}
	for _, b := range m.blocks {
		for i := 0; i < b.Len(); i++ {
			row := b.Connectivity.RowMut(i)
			for k := range row {
				row[k] += shift
			}
		}
	}
}

// Replace deletes the identified elements and appends the elements from
// other, reconciling coordinate tables as needed, returning a new mesh.
func (m *UMesh) Replace(ids *ElementIds, other *UMesh) *UMesh {
	toRemove := ids.ToSet()

	out := newFromShared(m.coords.Share())

	for _, t := range m.sortedTypes() {
		b := m.blocks[t]
		removed := toRemove
		var keep []int
		for i := 0; i < b.Len(); i++ {
			if !removed.Contains(ElementId{Type: t, Index: i}) {
				keep = append(keep, i)
			}
		}
		if len(keep) > 0 {
			out.PutBlock(b.Extract(keep))
		}
	}

	// reconcile coordinate tables: if `other` uses a disjoint coordinate
	// table, prepend it, shift the kept elements' node indices past it,
	// and merge other's blocks with their node indices unchanged.
	if other.coords != m.coords {
		shift := out.coords.Prepend(otherRows(other.coords))
		for t, b := range out.blocks {
			out.blocks[t] = shiftBlock(b, shift)
		}
		for _, t := range other.sortedTypes() {
			mergeBlock(out, t, other.blocks[t])
		}
	} else {
		for _, t := range other.sortedTypes() {
			mergeBlock(out, t, other.blocks[t])
		}
	}
	return out
}

func otherRows(c *Coords) [][]float64 {
	out := make([][]float64, c.Rows())
	for i := range out {
		out[i] = c.At(i)
	}
	return out
}

// shiftBlock returns a copy of b with every node index increased by shift.
func shiftBlock(b *block.Block, shift int) *block.Block {
	if shift == 0 {
		return b
	}
	all := make([]int, b.Len())
	for i := range all {
		all[i] = i
	}
	copyB := b.Extract(all)
	for i := 0; i < copyB.Len(); i++ {
		row := copyB.Connectivity.RowMut(i)
		for k := range row {
			row[k] += shift
		}
	}
	return copyB
}

// ParallelEach visits every element of m concurrently via
// parallel.Each's chunked work-stealing, per spec §5's "parallel
// variant is a simple data-parallel map with a minimum chunk size."
// Chunk boundaries fall on m.Elements()'s stable type-then-index order,
// so results are reproducible regardless of worker count.
func (m *UMesh) ParallelEach(fn func(v *View)) {
	all := m.Elements()
	parallel.Each(len(all), 0, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(all[i])
		}
	})
}

// ParallelEachMut visits every element of m concurrently through a
// mutable cursor. Each goroutine only ever touches indices disjoint
// from every other goroutine's chunk, so concurrent ConnectivityMut/
// SetFamily writes never alias (the non-aliasing guarantee spec §5
// requires of the parallel-mutable iterator).
func (m *UMesh) ParallelEachMut(fn func(v *ViewMut)) {
	var all []*ViewMut
	for _, t := range m.sortedTypes() {
		b := m.blocks[t]
		for i := 0; i < b.Len(); i++ {
			all = append(all, NewViewMut(m.coords, b, i))
		}
	}
	parallel.Each(len(all), 0, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(all[i])
		}
	})
}

// mergeBlock appends every element of src into out's block of type t,
// creating the block if needed.
func mergeBlock(out *UMesh, t etype.Type, src *block.Block) {
	existing := out.blocks[t]
	if existing == nil {
		out.blocks[t] = src
		return
	}
	for i := 0; i < src.Len(); i++ {
		existing.AddElement(src.Connectivity.Row(i), src.Family(i))
	}
}
