// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mutate

import (
	"sort"

	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/spatial"
	"github.com/cpmech/mefi/umesh"
)

// MergeNodes groups subject nodes within eps of each other (point-in-ball
// query with drain semantics, so each node is grouped once) and rewrites
// every connectivity occurrence of a grouped node to the group's
// representative (the smallest index in the group), per spec §4.9. No
// coordinates are removed; orphaned coordinates become unused.
func MergeNodes(mesh *umesh.UMesh, eps float64) *umesh.UMesh {
	used := mesh.UsedNodes()
	rows := make([][]float64, len(used))
	for i, n := range used {
		rows[i] = mesh.Coords().At(n)
	}
	idx := spatial.NewPointIndex(rows)

	rep := make(map[int]int) // node -> representative
	for _, n := range used {
		p := mesh.Coords().At(n)
		group := idx.DrainWithin(p, eps)
		if len(group) == 0 {
			continue
		}
		members := make([]int, len(group))
		for i, gi := range group {
			members[i] = used[gi]
		}
		sort.Ints(members)
		lead := members[0]
		for _, m := range members {
			rep[m] = lead
		}
	}

	for _, t := range etype.All() {
		if !mesh.HasType(t) {
			continue
		}
		b := mesh.Block(t)
		for i := 0; i < b.Len(); i++ {
			v, _ := mesh.ElementMut(umesh.ElementId{Type: t, Index: i})
			row := v.ConnectivityMut()
			for k, n := range row {
				if r, ok := rep[n]; ok {
					row[k] = r
				}
			}
		}
	}
	return mesh
}
