// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"sort"
	"sync"

	"github.com/cpmech/mefi/block"
	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/parallel"
	"github.com/cpmech/mefi/umesh"
)

// partialNeighbours is one per-chunk (or merged) accumulation: for every
// subentity key discovered so far, its canonical node list, its element
// type, and the ordered list of parent ids that touch it.
type partialNeighbours struct {
	nodes   map[SortedVecKey][]int
	typ     map[SortedVecKey]etype.Type
	parents map[SortedVecKey][]umesh.ElementId
}

func newPartialNeighbours() *partialNeighbours {
	return &partialNeighbours{
		nodes:   make(map[SortedVecKey][]int),
		typ:     make(map[SortedVecKey]etype.Type),
		parents: make(map[SortedVecKey][]umesh.ElementId),
	}
}

// ComputeNeighboursParallel is the "parallel variant" of ComputeNeighbours
// described in spec §4.7: per-chunk hash maps from SortedVecKey to
// (parent-ids, canonical-conn, subtype) built concurrently via
// parallel.MapReduce, folded by a sequential merge, then finalised in
// sorted-key order for a result that is deterministic run-to-run but,
// as the spec allows, not required to match the sequential element
// ordering of ComputeNeighbours.
func ComputeNeighboursParallel(mesh *umesh.UMesh, srcDim, targetDim *etype.Dimension) (*umesh.UMesh, *Graph, error) {
	src, target := defaultDims(mesh, srcDim, targetDim)
	codim := codimOf(src, target)
	elems := mesh.ElementsOfDim(src)

	var errMu sync.Mutex
	var firstErr error
	merged := parallel.MapReduce(len(elems), 0, func(lo, hi int) *partialNeighbours {
		part := newPartialNeighbours()
		for i := lo; i < hi; i++ {
			v := elems[i]
			subs, err := Subentities(v.ElementType(), v.Connectivity(), codim)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				continue
			}
			for _, s := range subs {
				key := Key(s.Nodes)
				if _, ok := part.nodes[key]; !ok {
					part.nodes[key] = s.Nodes
					part.typ[key] = s.Type
				}
				part.parents[key] = append(part.parents[key], v.Id())
			}
		}
		return part
	}, mergeNeighbourParts, newPartialNeighbours())
	if firstErr != nil {
		return nil, nil, firstErr
	}

	keys := make([]SortedVecKey, 0, len(merged.nodes))
	for k := range merged.nodes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	byTyp := make(map[etype.Type]*block.Block)
	var order []etype.Type
	ids := make(map[SortedVecKey]umesh.ElementId, len(keys))
	for _, k := range keys {
		t := merged.typ[k]
		b, ok := byTyp[t]
		if !ok {
			if t.IsPoly() {
				b = block.NewEmptyPoly(t)
			} else {
				b = block.NewEmptyRegular(t, len(merged.nodes[k]))
			}
			byTyp[t] = b
			order = append(order, t)
		}
		idx := b.Len()
		b.AddElement(merged.nodes[k], 0)
		ids[k] = umesh.ElementId{Type: t, Index: idx}
	}

	sub := umesh.NewWithSharedCoords(mesh.Coords().Share())
	for _, t := range order {
		sub.PutBlock(byTyp[t])
	}

	g := &Graph{adj: make(map[umesh.ElementId][]int)}
	for _, v := range elems {
		id := v.Id()
		if _, ok := g.adj[id]; !ok {
			g.adj[id] = nil
			g.Nodes = append(g.Nodes, id)
		}
	}
	for _, k := range keys {
		subID := ids[k]
		parents := merged.parents[k]
		for i := 0; i < len(parents); i++ {
			for j := i + 1; j < len(parents); j++ {
				g.addEdge(parents[i], parents[j], subID)
			}
		}
	}

	return sub, g, nil
}

func mergeNeighbourParts(acc, part *partialNeighbours) *partialNeighbours {
	if acc == nil {
		return part
	}
	for k, nodes := range part.nodes {
		if _, ok := acc.nodes[k]; !ok {
			acc.nodes[k] = nodes
			acc.typ[k] = part.typ[k]
		}
		acc.parents[k] = append(acc.parents[k], part.parents[k]...)
	}
	return acc
}
