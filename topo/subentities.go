// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topo implements the topology kernel (spec C7): subentity
// enumeration, the canonical SortedVecKey, submesh/neighbour/boundary
// derivation and connected components. Grounded on gofem/shp's
// FaceLocalVerts/SeamLocalVerts tables (fixed per-type local-vertex
// orderings) and on out/topology.go's cell/face/seam traversal pattern.
package topo

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cpmech/mefi/conn"
	"github.com/cpmech/mefi/errs"
	"github.com/cpmech/mefi/etype"
)

// Subentity is one (subtype, local node-index list) pair describing a
// face/edge/vertex of a parent element, in parent-local node numbering.
type Subentity struct {
	Type  etype.Type
	Nodes []int // local indices into the parent's connectivity row
}

// localTables maps parent type -> codim -> list of local-node-index subentities.
var localTables = map[etype.Type]map[etype.Dimension][]Subentity{
	etype.Seg2: {etype.D1: vtxSub(0, 1)},
	etype.Seg3: {etype.D1: vtxSub(0, 1)},
	etype.Seg4: {etype.D1: vtxSub(0, 1)},
	etype.Tri3: {
		etype.D1: {{etype.Seg2, []int{0, 1}}, {etype.Seg2, []int{1, 2}}, {etype.Seg2, []int{2, 0}}},
		etype.D2: vtxSub(0, 1, 2),
	},
	etype.Tri6: {
		etype.D1: {{etype.Seg3, []int{0, 1, 3}}, {etype.Seg3, []int{1, 2, 4}}, {etype.Seg3, []int{2, 0, 5}}},
		etype.D2: vtxSub(0, 1, 2),
	},
	etype.Tri7: {
		etype.D1: {{etype.Seg3, []int{0, 1, 3}}, {etype.Seg3, []int{1, 2, 4}}, {etype.Seg3, []int{2, 0, 5}}},
		etype.D2: vtxSub(0, 1, 2),
	},
	etype.Quad4: {
		etype.D1: {{etype.Seg2, []int{0, 1}}, {etype.Seg2, []int{1, 2}}, {etype.Seg2, []int{2, 3}}, {etype.Seg2, []int{3, 0}}},
		etype.D2: vtxSub(0, 1, 2, 3),
	},
	etype.Tet4: {
		etype.D1: {
			{etype.Tri3, []int{0, 1, 2}}, {etype.Tri3, []int{0, 1, 3}},
			{etype.Tri3, []int{1, 2, 3}}, {etype.Tri3, []int{0, 2, 3}},
		},
		etype.D2: {
			{etype.Seg2, []int{0, 1}}, {etype.Seg2, []int{1, 2}}, {etype.Seg2, []int{2, 0}},
			{etype.Seg2, []int{0, 3}}, {etype.Seg2, []int{1, 3}}, {etype.Seg2, []int{2, 3}},
		},
		etype.D3: vtxSub(0, 1, 2, 3),
	},
	etype.Hex8: {
		etype.D1: {
			{etype.Quad4, []int{0, 1, 2, 3}}, {etype.Quad4, []int{4, 5, 6, 7}},
			{etype.Quad4, []int{0, 1, 5, 4}}, {etype.Quad4, []int{1, 2, 6, 5}},
			{etype.Quad4, []int{2, 3, 7, 6}}, {etype.Quad4, []int{3, 0, 4, 7}},
		},
		etype.D2: {
			{etype.Seg2, []int{0, 1}}, {etype.Seg2, []int{1, 2}}, {etype.Seg2, []int{2, 3}}, {etype.Seg2, []int{3, 0}},
			{etype.Seg2, []int{4, 5}}, {etype.Seg2, []int{5, 6}}, {etype.Seg2, []int{6, 7}}, {etype.Seg2, []int{7, 4}},
			{etype.Seg2, []int{0, 4}}, {etype.Seg2, []int{1, 5}}, {etype.Seg2, []int{2, 6}}, {etype.Seg2, []int{3, 7}},
		},
		etype.D3: vtxSub(0, 1, 2, 3, 4, 5, 6, 7),
	},
}

func vtxSub(idx ...int) []Subentity {
	out := make([]Subentity, len(idx))
	for i, n := range idx {
		out[i] = Subentity{etype.Vertex, []int{n}}
	}
	return out
}

// Subentities returns the (subtype, local-node-list) pairs describing the
// faces (codim 1), edges (codim 2) or vertices (codim 3) of parentType,
// per the fixed table in spec §4.7. Pgon and Phed are variable-width and
// handled specially since their arity depends on the actual row.
func Subentities(parentType etype.Type, parentNodes []int, codim etype.Dimension) ([]Subentity, error) {
	switch parentType {
	case etype.Pgon:
		return pgonSubentities(parentNodes, codim)
	case etype.Phed:
		return phedSubentities(parentNodes, codim)
	}
	table, ok := localTables[parentType]
	if !ok {
		return nil, errs.New(errs.NotFound, "topo: no subentity table for element type %v", parentType)
	}
	local, ok := table[codim]
	if !ok {
		return nil, errs.New(errs.NotFound, "topo: element type %v has no codim-%d subentities", parentType, codim)
	}
	out := make([]Subentity, len(local))
	for i, s := range local {
		nodes := make([]int, len(s.Nodes))
		for j, li := range s.Nodes {
			nodes[j] = parentNodes[li]
		}
		out[i] = Subentity{Type: s.Type, Nodes: nodes}
	}
	return out, nil
}

func pgonSubentities(parentNodes []int, codim etype.Dimension) ([]Subentity, error) {
	n := len(parentNodes)
	switch codim {
	case etype.D1:
		out := make([]Subentity, n)
		for i := 0; i < n; i++ {
			out[i] = Subentity{etype.Seg2, []int{parentNodes[i], parentNodes[(i+1)%n]}}
		}
		return out, nil
	case etype.D2:
		out := make([]Subentity, n)
		for i := 0; i < n; i++ {
			out[i] = Subentity{etype.Vertex, []int{parentNodes[i]}}
		}
		return out, nil
	}
	return nil, errs.New(errs.NotFound, "topo: Pgon has no codim-%d subentities", codim)
}

// phedSubentities decodes a Phed row (sentinel-delimited face loops) into
// its bounding Pgon faces (codim 1). Edge/vertex codims decompose each face further.
func phedSubentities(row []int, codim etype.Dimension) ([]Subentity, error) {
	faces := conn.DecodePhedFaces(row)
	switch codim {
	case etype.D1:
		out := make([]Subentity, len(faces))
		for i, f := range faces {
			out[i] = Subentity{etype.Pgon, f}
		}
		return out, nil
	case etype.D2:
		var out []Subentity
		for _, f := range faces {
			edges, _ := pgonSubentities(f, etype.D1)
			out = append(out, edges...)
		}
		return out, nil
	case etype.D3:
		var out []Subentity
		for _, f := range faces {
			verts, _ := pgonSubentities(f, etype.D2)
			out = append(out, verts...)
		}
		return out, nil
	}
	return nil, errs.New(errs.NotFound, "topo: Phed has no codim-%d subentities", codim)
}

// SortedVecKey is the canonical, orientation-insensitive identifier of a
// subentity: the sorted tuple of its node indices, stored as a string key
// so it can index a Go map directly (spec §4.7).
type SortedVecKey string

// Key builds the canonical key for a node-index slice.
func Key(nodes []int) SortedVecKey {
	cp := append([]int(nil), nodes...)
	sort.Ints(cp)
	parts := make([]string, len(cp))
	for i, n := range cp {
		parts[i] = strconv.Itoa(n)
	}
	return SortedVecKey(strings.Join(parts, ","))
}
