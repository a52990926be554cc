// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sel

import (
	"github.com/cpmech/mefi/errs"
	"github.com/cpmech/mefi/geom"
)

type geomKind int

const (
	gBBox geomKind = iota
	gRect
	gSphere
	gCircle
	gNodeIds
)

// geomPred is the shared geometric-predicate payload for Nodes(...) and
// Centroids(...) selections. Box/sphere predicates require a 3D point,
// rect/circle at least a 2D one (a 3D point is tested on its x,y); a point
// with too few coordinates fails with DimensionMismatch per spec §4.8
// ("passing a 3D predicate against a 2D mesh fails").
type geomPred struct {
	kind    geomKind
	min3    [3]float64
	max3    [3]float64
	min2    [2]float64
	max2    [2]float64
	c3      [3]float64
	c2      [2]float64
	radius  float64
	nodeSet map[int]bool
}

func (g *geomPred) test(p []float64) (bool, error) {
	switch g.kind {
	case gBBox:
		if len(p) < 3 {
			return false, errs.New(errs.DimensionMismatch, "sel: bbox predicate needs a 3D point, got dim %d", len(p))
		}
		return geom.InAABBox([3]float64{p[0], p[1], p[2]}, g.min3, g.max3), nil
	case gRect:
		if len(p) < 2 {
			return false, errs.New(errs.DimensionMismatch, "sel: rect predicate needs a 2D point, got dim %d", len(p))
		}
		return geom.InAARectangle([2]float64{p[0], p[1]}, g.min2, g.max2), nil
	case gSphere:
		if len(p) < 3 {
			return false, errs.New(errs.DimensionMismatch, "sel: sphere predicate needs a 3D point, got dim %d", len(p))
		}
		return geom.InSphere([3]float64{p[0], p[1], p[2]}, g.c3, g.radius), nil
	case gCircle:
		if len(p) < 2 {
			return false, errs.New(errs.DimensionMismatch, "sel: circle predicate needs a 2D point, got dim %d", len(p))
		}
		return geom.InCircle([2]float64{p[0], p[1]}, g.c2, g.radius), nil
	}
	return false, nil
}

// testNode is used by NodesInIds, which tests node identity rather than
// a coordinate, bypassing the dimension check entirely.
func (g *geomPred) testNode(nodeIdx int) bool {
	if g.kind != gNodeIds {
		return false
	}
	return g.nodeSet[nodeIdx]
}
