// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"github.com/cpmech/mefi/block"
	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/umesh"
)

// growingBlocks accumulates newly-discovered subentities into per-type
// blocks, in first-discovery order, the way inp.Mesh.Ctype2cells groups a
// flat cell list by type while preserving discovery order.
type growingBlocks struct {
	order []etype.Type
	byTyp map[etype.Type]*block.Block
	keys  map[SortedVecKey]umesh.ElementId // SortedVecKey -> id assigned in this submesh
}

func newGrowingBlocks() *growingBlocks {
	return &growingBlocks{byTyp: make(map[etype.Type]*block.Block), keys: make(map[SortedVecKey]umesh.ElementId)}
}

// addIfNew inserts sub's nodes as a new element if its SortedVecKey has
// not been seen before, and returns (id, true) if it was first-discovered
// here, or the existing id and false otherwise.
func (g *growingBlocks) addIfNew(sub Subentity) (umesh.ElementId, bool) {
	key := Key(sub.Nodes)
	if id, ok := g.keys[key]; ok {
		return id, false
	}
	b, ok := g.byTyp[sub.Type]
	if !ok {
		if sub.Type.IsPoly() {
			b = block.NewEmptyPoly(sub.Type)
		} else {
			b = block.NewEmptyRegular(sub.Type, len(sub.Nodes))
		}
		g.byTyp[sub.Type] = b
		g.order = append(g.order, sub.Type)
	}
	idx := b.Len()
	b.AddElement(sub.Nodes, 0)
	id := umesh.ElementId{Type: sub.Type, Index: idx}
	g.keys[key] = id
	return id, true
}

func (g *growingBlocks) buildMesh(coords *umesh.Coords) *umesh.UMesh {
	out := umesh.NewWithSharedCoords(coords)
	for _, t := range g.order {
		out.PutBlock(g.byTyp[t])
	}
	return out
}

// codimOf returns the integer codimension between src and target dimensions.
func codimOf(src, target etype.Dimension) etype.Dimension {
	return etype.Dimension(int(src) - int(target))
}

// defaultDims resolves the (src_dim, target_dim) pair from zero or more
// explicit overrides, defaulting src_dim to the mesh's own topological
// dimension and target_dim to src_dim-1, per spec §4.7.
func defaultDims(mesh *umesh.UMesh, srcDim, targetDim *etype.Dimension) (etype.Dimension, etype.Dimension) {
	src := mesh.TopologicalDimension()
	if srcDim != nil {
		src = *srcDim
	}
	target := src.Sub(etype.D1)
	if targetDim != nil {
		target = *targetDim
	}
	return src, target
}

// ComputeSubmesh returns a mesh whose elements are the distinct
// subentities of all src_dim elements, discovered in the deterministic
// order of a single pass over elements_of_dim(src_dim) (spec §4.7 point 1).
func ComputeSubmesh(mesh *umesh.UMesh, srcDim, targetDim *etype.Dimension) (*umesh.UMesh, error) {
	src, target := defaultDims(mesh, srcDim, targetDim)
	codim := codimOf(src, target)
	g := newGrowingBlocks()
	for _, v := range mesh.ElementsOfDim(src) {
		subs, err := Subentities(v.ElementType(), v.Connectivity(), codim)
		if err != nil {
			return nil, err
		}
		for _, s := range subs {
			g.addIfNew(s)
		}
	}
	return g.buildMesh(mesh.Coords().Share()), nil
}
