// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mefi is the top-level free-function surface of spec §6: value
// constructors live in their own packages (umesh.UMesh, conn.Connectivity,
// sel.Selection, ...), and this package only re-groups the handful of
// free functions that don't belong to any one of them (measure,
// intersect_seg_seg) or that are thin fan-outs over other packages'
// operations (select). compute_submesh/compute_neighbours/
// compute_sub_to_elem/compute_boundaries/compute_connected_components
// live in topo; snap/merge_nodes/crack live in mutate — both package
// names already match their spec verbs closely enough that a forwarding
// wrapper here would only add indirection.
package mefi

import (
	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/field"
	"github.com/cpmech/mefi/geom"
	"github.com/cpmech/mefi/sel"
	"github.com/cpmech/mefi/umesh"
)

// Measure computes the per-element measure field of every element whose
// type has the given dimension (spec's `measure(mesh_view, dim?) →
// Field`, scenario 1: a 2x1 Quad4 grid measures to {Quad4: [1.0, 1.0]}).
// dim defaults to mesh's own topological dimension when nil, the same
// default scheme topo.defaultDims uses for src_dim. The measure formula
// (length/area/volume) is picked by the mesh's space dimension: 2D
// space uses geom.Measure2, 3D space uses geom.Measure3.
func Measure(mesh *umesh.UMesh, dim *etype.Dimension) (*field.Field, error) {
	d := mesh.TopologicalDimension()
	if dim != nil {
		d = *dim
	}
	use3D := mesh.SpaceDimension() >= 3

	out := field.NewField()
	byType := make(map[etype.Type][]float64)
	for _, v := range mesh.ElementsOfDim(d) {
		var m float64
		var err error
		if use3D {
			m, err = geom.Measure3(v)
		} else {
			m, err = geom.Measure2(v)
		}
		if err != nil {
			return nil, err
		}
		byType[v.ElementType()] = append(byType[v.ElementType()], m)
	}
	for t, vals := range byType {
		arr := field.NewArray(len(vals), nil)
		for i, m := range vals {
			arr.Rows[i][0] = m
		}
		out.Arrays[t] = arr
	}
	return out, nil
}

// Select is the free-function form of the selection algebra's entry
// point (spec's `select(mesh, expr)`), forwarding to sel.Select.
func Select(mesh *umesh.UMesh, expr *sel.Selection) (*umesh.ElementIds, *umesh.UMesh, error) {
	return sel.Select(mesh, expr)
}

// IntersectSegSeg is the free-function form of spec's
// `intersect_seg_seg`, forwarding to geom.IntersectSegSeg.
func IntersectSegSeg(p1, p2, p3, p4 [2]float64) geom.IntersectResult {
	return geom.IntersectSegSeg(p1, p2, p3, p4)
}
