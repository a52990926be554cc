// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package block implements ElementBlock (spec C3): one block per
// element type, bundling its Connectivity with per-element families,
// named groups of families, and per-element fields — grounded on
// gofem/inp.Mesh's Ctype2cells / CellTag2cells maps (cell-type and
// tag-keyed grouping over a flat cell list).
package block

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mefi/conn"
	"github.com/cpmech/mefi/errs"
	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/field"
)

// groupEntry is one named group's family set. Block keeps group names in
// insertion order (groupNames) for deterministic iteration, the way
// inp.Mesh keeps Ctype2cells keyed but relies on insertion-ordered
// slices per key.
type groupEntry struct {
	name     string
	families map[int]bool
}

// Block holds every element of one ElementType inside a UMesh.
type Block struct {
	Type         etype.Type
	Connectivity *conn.Connectivity
	families     []int
	fieldNames   []string // insertion order
	fields       map[string]*field.Array
	groupNames   []string // insertion order
	groups       map[string]*groupEntry
}

// NewRegular builds a block of fixed-width elements. conn must have
// width == typ.NumNodes(); a mismatch is a ShapeMismatch error.
func NewRegular(typ etype.Type, flat []int, width int, families []int) (*Block, error) {
	if typ.IsPoly() {
		chk.Panic("block: NewRegular used for poly type %v", typ)
	}
	if width != typ.NumNodes() {
		return nil, errs.New(errs.ShapeMismatch, "block: %v expects %d nodes per element, got width %d", typ, typ.NumNodes(), width)
	}
	c := conn.NewRegular(flat, width)
	return newBlock(typ, c, families)
}

// NewPoly builds a block of variable-width elements (Spline, Pgon, Phed).
func NewPoly(typ etype.Type, data, offsets []int, families []int) (*Block, error) {
	if !typ.IsPoly() {
		chk.Panic("block: NewPoly used for regular type %v", typ)
	}
	c := conn.NewPoly(data, offsets)
	return newBlock(typ, c, families)
}

// NewEmptyRegular builds an empty Regular block ready for incremental
// AddElement calls, as used by topology derivation to grow a submesh
// element-by-element as subentities are first discovered.
func NewEmptyRegular(typ etype.Type, width int) *Block {
	b, err := newBlock(typ, conn.NewRegular(nil, width), nil)
	if err != nil {
		chk.Panic("block: NewEmptyRegular: %v", err)
	}
	return b
}

// NewEmptyPoly builds an empty Poly block ready for incremental AddElement calls.
func NewEmptyPoly(typ etype.Type) *Block {
	b, err := newBlock(typ, conn.NewPoly(nil, nil), nil)
	if err != nil {
		chk.Panic("block: NewEmptyPoly: %v", err)
	}
	return b
}

func newBlock(typ etype.Type, c *conn.Connectivity, families []int) (*Block, error) {
	n := c.Len()
	if families == nil {
		families = make([]int, n)
	}
	if len(families) != n {
		return nil, errs.New(errs.ShapeMismatch, "block: %v families length %d != element count %d", typ, len(families), n)
	}
	return &Block{
		Type:         typ,
		Connectivity: c,
		families:     families,
		fields:       make(map[string]*field.Array),
		groups:       make(map[string]*groupEntry),
	}, nil
}

// Len returns the element count, E.
func (b *Block) Len() int { return b.Connectivity.Len() }

// Family returns element i's family tag.
func (b *Block) Family(i int) int { return b.families[i] }

// FamilyMut returns a pointer to element i's family tag for in-place edits.
func (b *Block) FamilyMut(i int) *int { return &b.families[i] }

// AddField registers a new per-element field; its leading axis must equal Len().
func (b *Block) AddField(name string, arr *field.Array) error {
	if arr.Len() != b.Len() {
		return errs.New(errs.ShapeMismatch, "block: field %q leading axis %d != element count %d", name, arr.Len(), b.Len())
	}
	if _, ok := b.fields[name]; !ok {
		b.fieldNames = append(b.fieldNames, name)
	}
	b.fields[name] = arr
	return nil
}

// Field looks up a field by name.
func (b *Block) Field(name string) (*field.Array, error) {
	arr, ok := b.fields[name]
	if !ok {
		return nil, errs.New(errs.NotFound, "block: field %q not found", name)
	}
	return arr, nil
}

// FieldNames returns field names in insertion order.
func (b *Block) FieldNames() []string { return append([]string(nil), b.fieldNames...) }

// AddGroup declares a named group and the set of families belonging to it.
// Calling it again with the same name replaces the family set but keeps
// the group's position in iteration order.
func (b *Block) AddGroup(name string, families []int) {
	fams := make(map[int]bool, len(families))
	for _, f := range families {
		fams[f] = true
	}
	if _, ok := b.groups[name]; !ok {
		b.groupNames = append(b.groupNames, name)
	}
	b.groups[name] = &groupEntry{name: name, families: fams}
}

// GroupNames returns group names in insertion order.
func (b *Block) GroupNames() []string { return append([]string(nil), b.groupNames...) }

// InGroup reports whether element i's family is a member of the named group.
func (b *Block) InGroup(i int, name string) bool {
	g, ok := b.groups[name]
	if !ok {
		return false
	}
	return g.families[b.families[i]]
}

// GroupsOf returns every group name element i belongs to, in group
// insertion order. Short-circuits on groups whose family set cannot
// contain this element's family (an O(1) map lookup).
func (b *Block) GroupsOf(i int) []string {
	fam := b.families[i]
	var out []string
	for _, name := range b.groupNames {
		if b.groups[name].families[fam] {
			out = append(out, name)
		}
	}
	return out
}

// AddElement appends one element's connectivity row and family; per-element
// fields are not extended. For Regular blocks len(connectivity) must equal
// typ.NumNodes().
func (b *Block) AddElement(connectivity []int, family int) error {
	if !b.Type.IsPoly() && len(connectivity) != b.Type.NumNodes() {
		return errs.New(errs.ShapeMismatch, "block: %v AddElement expects %d nodes, got %d", b.Type, b.Type.NumNodes(), len(connectivity))
	}
	b.Connectivity.Push(connectivity)
	b.families = append(b.families, family)
	// NOTE: appending to per-element fields on AddElement is not yet
	// implemented; callers that maintain fields must extend them
	// separately (documented gap, spec §4.3).
	return nil
}

// Extract returns a new Block containing only the given local indices, in
// the order given. Families and fields are copied; groups are copied
// verbatim (family-set membership is unaffected by which elements exist).
func (b *Block) Extract(indices []int) *Block {
	out := &Block{
		Type:       b.Type,
		fields:     make(map[string]*field.Array),
		groups:     make(map[string]*groupEntry),
		groupNames: append([]string(nil), b.groupNames...),
	}
	for name, g := range b.groups {
		fams := make(map[int]bool, len(g.families))
		for f := range g.families {
			fams[f] = true
		}
		out.groups[name] = &groupEntry{name: name, families: fams}
	}
	if b.Type.IsPoly() {
		var data, offsets []int
		base := 0
		for _, i := range indices {
			row := b.Connectivity.Row(i)
			data = append(data, row...)
			base += len(row)
			offsets = append(offsets, base)
		}
		out.Connectivity = conn.NewPoly(data, offsets)
	} else {
		width := b.Connectivity.Width()
		flat := make([]int, 0, len(indices)*width)
		for _, i := range indices {
			flat = append(flat, b.Connectivity.Row(i)...)
		}
		out.Connectivity = conn.NewRegular(flat, width)
	}
	out.families = make([]int, len(indices))
	for k, i := range indices {
		out.families[k] = b.families[i]
	}
	for _, name := range b.fieldNames {
		arr := b.fields[name]
		newArr := field.NewArray(len(indices), arr.Shape)
		for k, i := range indices {
			copy(newArr.Rows[k], arr.Rows[i])
		}
		out.fields[name] = newArr
		out.fieldNames = append(out.fieldNames, name)
	}
	return out
}
