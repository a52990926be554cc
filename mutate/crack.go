// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mutate

import (
	"github.com/cpmech/mefi/errs"
	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/sel"
	"github.com/cpmech/mefi/topo"
	"github.com/cpmech/mefi/umesh"
)

// Crack duplicates nodes along the cut submesh so the two sides no
// longer share topology, per spec §4.9's six-step algorithm. The
// resulting mesh has the same elements as mesh, but element-to-element
// adjacency through the cut subentities is broken; geometry is
// unchanged since every duplicate starts out coincident.
//
// cut elements that are boundary (exactly one parent) are silently
// ignored. A cut element whose node set has no counterpart inside the
// vicinity's subentity mesh is a caller error, reported as
// CutElementNotFound.
func Crack(mesh *umesh.UMesh, cut *umesh.UMesh) (*umesh.UMesh, error) {
	cutNodes := cut.UsedNodes()

	// 1. vicinity extraction: every element touching a cut node.
	vicinityIds, vicinity, err := sel.Select(mesh, sel.NodesInIds(cutNodes, false))
	if err != nil {
		return nil, err
	}

	// 2. sub-to-parent map on the vicinity, at the cut's own dimension.
	srcDim := vicinity.TopologicalDimension()
	cutDim := cut.TopologicalDimension()
	subMesh, subToParents, err := topo.ComputeSubToElem(vicinity, &srcDim, &cutDim)
	if err != nil {
		return nil, err
	}
	keyToID := make(map[topo.SortedVecKey]umesh.ElementId, subMesh.NumElements())
	for _, v := range subMesh.Elements() {
		keyToID[topo.Key(v.Connectivity())] = v.Id()
	}

	// 3. cut identification: keep only the interior (2-parent) cut elements.
	removed := make(map[pairKey]bool)
	for _, v := range cut.Elements() {
		id, ok := keyToID[topo.Key(v.Connectivity())]
		if !ok {
			return nil, errs.New(errs.CutElementNotFound, "mutate: crack: cut element %v has no counterpart in the vicinity", v.Id())
		}
		parents := subToParents[id]
		if len(parents) != 2 {
			continue
		}
		removed[pairKeyOf(parents[0], parents[1])] = true
	}

	// 4. local adjacency cut: vicinity's neighbour graph minus the cut edges.
	_, graph, err := topo.ComputeNeighbours(vicinity, &srcDim, &cutDim)
	if err != nil {
		return nil, err
	}
	adj := buildAdjacency(graph, removed)

	// 5. node splitting.
	for _, n := range cutNodes {
		incident := incidentElements(vicinity, srcDim, n)
		if len(incident) == 0 {
			continue
		}
		comps := connectedComponents(incident, adj)
		if len(comps) < 2 {
			continue
		}
		for _, comp := range comps[1:] {
			newIdx := vicinity.AppendCoords([][]float64{append([]float64(nil), vicinity.Coords().At(n)...)})
			for _, id := range comp {
				ev, _ := vicinity.ElementMut(id)
				row := ev.ConnectivityMut()
				for k, nd := range row {
					if nd == n {
						row[k] = newIdx
						break
					}
				}
			}
		}
	}

	// 6. coordinate append happened inline above; stitch the modified
	// vicinity back into mesh.
	return mesh.Replace(vicinityIds, vicinity), nil
}

type pairKey struct{ a, b umesh.ElementId }

func lessID(a, b umesh.ElementId) bool {
	if a.Type != b.Type {
		return a.Type < b.Type
	}
	return a.Index < b.Index
}

func pairKeyOf(a, b umesh.ElementId) pairKey {
	if lessID(a, b) {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

// buildAdjacency rebuilds graph's edges as a plain adjacency map, with
// every edge in removed dropped, forming G* (spec §4.9 step 4).
func buildAdjacency(graph *topo.Graph, removed map[pairKey]bool) map[umesh.ElementId][]umesh.ElementId {
	adj := make(map[umesh.ElementId][]umesh.ElementId)
	for _, n := range graph.Nodes {
		if _, ok := adj[n]; !ok {
			adj[n] = nil
		}
	}
	for _, e := range graph.Edges {
		if removed[pairKeyOf(e.A, e.B)] {
			continue
		}
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	return adj
}

// incidentElements returns every dim-dimensional element of mesh whose
// connectivity references node n, in mesh.ElementsOfDim's deterministic order.
func incidentElements(mesh *umesh.UMesh, dim etype.Dimension, n int) []umesh.ElementId {
	var out []umesh.ElementId
	for _, v := range mesh.ElementsOfDim(dim) {
		for _, nd := range v.Connectivity() {
			if nd == n {
				out = append(out, v.Id())
				break
			}
		}
	}
	return out
}

// connectedComponents partitions nodes by connectivity in adj, restricted
// to members of nodes, via union-find (equivalent to Tarjan SCC on this
// undirected subgraph, see topo.ComputeConnectedComponents). Component
// order follows nodes' first-appearance order, for determinism.
func connectedComponents(nodes []umesh.ElementId, adj map[umesh.ElementId][]umesh.ElementId) [][]umesh.ElementId {
	member := make(map[umesh.ElementId]bool, len(nodes))
	for _, id := range nodes {
		member[id] = true
	}
	parent := make(map[umesh.ElementId]umesh.ElementId, len(nodes))
	for _, id := range nodes {
		parent[id] = id
	}
	var find func(x umesh.ElementId) umesh.ElementId
	find = func(x umesh.ElementId) umesh.ElementId {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b umesh.ElementId) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for _, id := range nodes {
		for _, nb := range adj[id] {
			if member[nb] {
				union(id, nb)
			}
		}
	}

	groups := make(map[umesh.ElementId][]umesh.ElementId)
	var order []umesh.ElementId
	seen := make(map[umesh.ElementId]bool)
	for _, id := range nodes {
		r := find(id)
		groups[r] = append(groups[r], id)
		if !seen[r] {
			seen[r] = true
			order = append(order, r)
		}
	}
	out := make([][]umesh.ElementId, len(order))
	for i, r := range order {
		out[i] = groups[r]
	}
	return out
}
