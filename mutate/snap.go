// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mutate implements the mutation ops of spec C9: snap,
// merge_nodes and crack. Grounded on gofem/inp's coordinate-rewrite
// helpers (NewMsh's node renumbering) and backed by mefi/spatial's
// point index.
package mutate

import (
	"github.com/cpmech/mefi/spatial"
	"github.com/cpmech/mefi/umesh"
)

// Snap rewrites, for every node referenced by subject, the closest
// reference coordinate within eps (exact copy), per spec §4.9. eps
// larger than half the smallest intra-element edge length can collapse
// an element and break manifoldness — callers must pick eps below that
// floor (documented caveat, not checked here).
func Snap(subject *umesh.UMesh, reference *umesh.UMesh, eps float64) *umesh.UMesh {
	refNodes := reference.UsedNodes()
	refRows := make([][]float64, len(refNodes))
	for i, n := range refNodes {
		refRows[i] = reference.Coords().At(n)
	}
	idx := spatial.NewPointIndex(refRows)

	for _, n := range subject.UsedNodes() {
		p := subject.Coords().At(n)
		if i, ok := idx.Nearest(p, eps); ok {
			subject.Coords().SetRow(n, refRows[i])
		}
	}
	return subject
}
