// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/umesh"
)

// Edge is one undirected adjacency edge between two src-dim elements,
// labelled with the id of the subentity (inside the accompanying submesh)
// they share.
type Edge struct {
	A, B umesh.ElementId
	Sub  umesh.ElementId
}

// Graph is the undirected, multi-edge-capable adjacency graph produced by
// ComputeNeighbours (spec §4.7 point 2). Nodes are src-dim element ids;
// isolated elements get a lone node with no edges.
type Graph struct {
	Nodes []umesh.ElementId
	Edges []Edge
	adj   map[umesh.ElementId][]int // node -> indices into Edges
}

// NeighboursOf returns every (neighbour, shared-subentity) pair for node.
func (g *Graph) NeighboursOf(node umesh.ElementId) []Edge {
	idxs := g.adj[node]
	out := make([]Edge, len(idxs))
	for i, ei := range idxs {
		out[i] = g.Edges[ei]
	}
	return out
}

func (g *Graph) addEdge(a, b, sub umesh.ElementId) {
	ei := len(g.Edges)
	g.Edges = append(g.Edges, Edge{A: a, B: b, Sub: sub})
	g.adj[a] = append(g.adj[a], ei)
	g.adj[b] = append(g.adj[b], ei)
}

// deriveSubToParents performs the shared discovery pass: walk
// elements_of_dim(src_dim) in deterministic order, enumerate each
// element's subentities, and fold them into the growing submesh while
// recording, per discovered subentity id, the ordered list of parent ids
// (spec §4.7 points 1-3 share this single pass).
func deriveSubToParents(mesh *umesh.UMesh, srcDim, targetDim *etype.Dimension) (*umesh.UMesh, map[umesh.ElementId][]umesh.ElementId, []umesh.ElementId, error) {
	src, target := defaultDims(mesh, srcDim, targetDim)
	codim := codimOf(src, target)
	g := newGrowingBlocks()
	subToParents := make(map[umesh.ElementId][]umesh.ElementId)
	var srcNodes []umesh.ElementId

	for _, v := range mesh.ElementsOfDim(src) {
		parent := v.Id()
		srcNodes = append(srcNodes, parent)
		subs, err := Subentities(v.ElementType(), v.Connectivity(), codim)
		if err != nil {
			return nil, nil, nil, err
		}
		for _, s := range subs {
			id, _ := g.addIfNew(s)
			subToParents[id] = append(subToParents[id], parent)
		}
	}
	return g.buildMesh(mesh.Coords().Share()), subToParents, srcNodes, nil
}

// ComputeSubToElem returns the submesh plus the map subentity_id -> parent
// ids, in discovery order (spec §4.7 point 3).
func ComputeSubToElem(mesh *umesh.UMesh, srcDim, targetDim *etype.Dimension) (*umesh.UMesh, map[umesh.ElementId][]umesh.ElementId, error) {
	sub, subToParents, _, err := deriveSubToParents(mesh, srcDim, targetDim)
	if err != nil {
		return nil, nil, err
	}
	return sub, subToParents, nil
}

// ComputeNeighbours returns (submesh, graph): nodes are src-dim element
// ids, edges connect elements that share a subentity, labelled with that
// subentity's id. Elements sharing more than one subentity get one edge
// per shared subentity (parallel edges allowed), spec §4.7 point 2.
func ComputeNeighbours(mesh *umesh.UMesh, srcDim, targetDim *etype.Dimension) (*umesh.UMesh, *Graph, error) {
	sub, subToParents, srcNodes, err := deriveSubToParents(mesh, srcDim, targetDim)
	if err != nil {
		return nil, nil, err
	}
	g := &Graph{Nodes: srcNodes, adj: make(map[umesh.ElementId][]int)}
	for _, n := range srcNodes {
		if _, ok := g.adj[n]; !ok {
			g.adj[n] = nil
		}
	}
	for subID, parents := range subToParents {
		for i := 0; i < len(parents); i++ {
			for j := i + 1; j < len(parents); j++ {
				g.addEdge(parents[i], parents[j], subID)
			}
		}
	}
	return sub, g, nil
}

// ComputeBoundaries returns the subset of the submesh whose sub→parent
// list has exactly one parent (spec §4.7 point 4).
func ComputeBoundaries(mesh *umesh.UMesh, srcDim, targetDim *etype.Dimension) (*umesh.UMesh, error) {
	sub, subToParents, _, err := deriveSubToParents(mesh, srcDim, targetDim)
	if err != nil {
		return nil, err
	}
	ids := umesh.NewElementIds()
	for _, t := range etype.All() {
		b := sub.Block(t)
		if b == nil {
			continue
		}
		for i := 0; i < b.Len(); i++ {
			id := umesh.ElementId{Type: t, Index: i}
			if len(subToParents[id]) == 1 {
				ids.Add(id)
			}
		}
	}
	return sub.Extract(ids), nil
}
