// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/umesh"
)

// ComputeConnectedComponents partitions mesh's src_dim elements into
// maximal connected groups under ComputeNeighbours' adjacency (spec §4.7
// point 5), each materialized as its own mesh via umesh.UMesh.Extract, in
// first-discovery order of mesh.ElementsOfDim(src_dim).
//
// The neighbour graph is undirected, so components reduce to ordinary
// connectivity: this walks it with the same low-link bookkeeping as
// Tarjan's algorithm, which on an undirected graph degenerates to a
// depth-first component label spread (every back-edge closes its whole
// stack into one component).
func ComputeConnectedComponents(mesh *umesh.UMesh, srcDim, targetDim *etype.Dimension) ([]*umesh.UMesh, error) {
	_, graph, err := ComputeNeighbours(mesh, srcDim, targetDim)
	if err != nil {
		return nil, err
	}

	index := make(map[umesh.ElementId]int)
	lowlink := make(map[umesh.ElementId]int)
	onStack := make(map[umesh.ElementId]bool)
	var stack []umesh.ElementId
	counter := 0
	var comps [][]umesh.ElementId

	var strongconnect func(v umesh.ElementId)
	strongconnect = func(v umesh.ElementId) {
		index[v] = counter
		lowlink[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, e := range graph.NeighboursOf(v) {
			w := e.B
			if w == v {
				w = e.A
			}
			if _, seen := index[w]; !seen {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] {
				if index[w] < lowlink[v] {
					lowlink[v] = index[w]
				}
			}
		}

		if lowlink[v] == index[v] {
			var comp []umesh.ElementId
			for {
				n := len(stack) - 1
				w := stack[n]
				stack = stack[:n]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			comps = append(comps, comp)
		}
	}

	for _, v := range graph.Nodes {
		if _, seen := index[v]; !seen {
			strongconnect(v)
		}
	}

	out := make([]*umesh.UMesh, len(comps))
	for i, comp := range comps {
		ids := umesh.NewElementIds()
		for j := len(comp) - 1; j >= 0; j-- {
			ids.Add(comp[j])
		}
		out[i] = mesh.Extract(ids)
	}
	return out, nil
}
