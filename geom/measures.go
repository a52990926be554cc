// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the geometry kernel (spec C6): closed-form
// measures, centroids/bounds already live on umesh.View, point-in-shape
// predicates, and segment/segment intersection. Grounded on
// gofem/shp.Shape's per-type dispatch (a single `switch o.Type` rather
// than a vtable) and on out/topology.go's use of github.com/cpmech/gosl/gm
// for plane/bin geometry.
package geom

import (
	"math"

	"github.com/cpmech/mefi/errs"
	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/umesh"
)

// Dist2 returns the Euclidean distance between two 2D points.
func Dist2(p, q [2]float64) float64 {
	dx, dy := p[0]-q[0], p[1]-q[1]
	return math.Sqrt(dx*dx + dy*dy)
}

// Dist3 returns the Euclidean distance between two 3D points.
func Dist3(p, q [3]float64) float64 {
	dx, dy, dz := p[0]-q[0], p[1]-q[1], p[2]-q[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// SurfTri2Signed returns the signed area of a planar triangle; positive
// for counter-clockwise vertex order.
func SurfTri2Signed(a, b, c [2]float64) float64 {
	return 0.5 * ((b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1]))
}

// SurfTri2 returns the unsigned area of a planar triangle.
func SurfTri2(a, b, c [2]float64) float64 {
	return math.Abs(SurfTri2Signed(a, b, c))
}

func cross3(u, v [3]float64) [3]float64 {
	return [3]float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func norm3(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// SurfTri3 returns the area of a triangle in 3-space via the cross-product formula.
func SurfTri3(a, b, c [3]float64) float64 {
	n := cross3(sub3(b, a), sub3(c, a))
	return 0.5 * norm3(n)
}

// SurfQuad2Signed returns the signed area of a planar quad (shoelace formula
// over its four vertices in order), positive for counter-clockwise order.
func SurfQuad2Signed(a, b, c, d [2]float64) float64 {
	return SurfTri2Signed(a, b, c) + SurfTri2Signed(a, c, d)
}

// SurfQuad2 returns the unsigned area of a planar quad.
func SurfQuad2(a, b, c, d [2]float64) float64 {
	return math.Abs(SurfQuad2Signed(a, b, c, d))
}

// SurfQuad3 returns the area of a quad in 3-space by fan triangulation.
func SurfQuad3(a, b, c, d [3]float64) float64 {
	return SurfTri3(a, b, c) + SurfTri3(a, c, d)
}

// VolTet returns the volume of a tetrahedron from its four vertices.
func VolTet(a, b, c, d [3]float64) float64 {
	u, v, w := sub3(b, a), sub3(c, a), sub3(d, a)
	cr := cross3(u, v)
	dot := cr[0]*w[0] + cr[1]*w[1] + cr[2]*w[2]
	return math.Abs(dot) / 6.0
}

// VolHex returns the volume of a hexahedron (vertices in gofem/shp's hex8
// natural-coordinate order) by decomposition into 5 tetrahedra: four corner
// tets plus the central tet {1,3,4,6}.
func VolHex(v [8][3]float64) float64 {
	// standard 5-tet decomposition of a hexahedron with vertices 0..7
	// ordered the way gofem/shp's hex8 natural coordinates are laid out.
	five := [5][4]int{
		{0, 1, 3, 4},
		{1, 2, 3, 6},
		{1, 4, 5, 6},
		{3, 4, 6, 7},
		{1, 3, 4, 6},
	}
	vol := 0.0
	for _, t := range five {
		vol += VolTet(v[t[0]], v[t[1]], v[t[2]], v[t[3]])
	}
	return vol
}

// Measure2 computes the 2D measure of one element view: 0 for Vertex,
// length for Seg2, area for Tri3/Quad4 (planar) and for Pgon (triangle
// fan from its first vertex). Every other type returns a NotFound error.
func Measure2(v *umesh.View) (float64, error) {
	switch v.ElementType() {
	case etype.Vertex:
		return 0, nil
	case etype.Seg2:
		conn := v.Connectivity()
		return Dist2(v.Coord2(conn[0]), v.Coord2(conn[1])), nil
	case etype.Tri3:
		conn := v.Connectivity()
		return SurfTri2(v.Coord2(conn[0]), v.Coord2(conn[1]), v.Coord2(conn[2])), nil
	case etype.Quad4:
		conn := v.Connectivity()
		return SurfQuad2(v.Coord2(conn[0]), v.Coord2(conn[1]), v.Coord2(conn[2]), v.Coord2(conn[3])), nil
	case etype.Pgon:
		return fanPolygonArea2(v), nil
	}
	return 0, errs.New(errs.NotFound, "geom: Measure2 unsupported for element type %v", v.ElementType())
}

// Measure3 computes the 3D measure of one element view: area for 2D
// element types in 3-space, volume for Tet4/Hex8.
func Measure3(v *umesh.View) (float64, error) {
	switch v.ElementType() {
	case etype.Vertex:
		return 0, nil
	case etype.Seg2:
		conn := v.Connectivity()
		return Dist3(v.Coord3(conn[0]), v.Coord3(conn[1])), nil
	case etype.Tri3:
		conn := v.Connectivity()
		return SurfTri3(v.Coord3(conn[0]), v.Coord3(conn[1]), v.Coord3(conn[2])), nil
	case etype.Quad4:
		conn := v.Connectivity()
		return SurfQuad3(v.Coord3(conn[0]), v.Coord3(conn[1]), v.Coord3(conn[2]), v.Coord3(conn[3])), nil
	case etype.Tet4:
		conn := v.Connectivity()
		return VolTet(v.Coord3(conn[0]), v.Coord3(conn[1]), v.Coord3(conn[2]), v.Coord3(conn[3])), nil
	case etype.Hex8:
		conn := v.Connectivity()
		var verts [8][3]float64
		for i := 0; i < 8; i++ {
			verts[i] = v.Coord3(conn[i])
		}
		return VolHex(verts), nil
	case etype.Pgon:
		return fanPolygonArea3(v), nil
	}
	return 0, errs.New(errs.NotFound, "geom: Measure3 unsupported for element type %v", v.ElementType())
}

// fanPolygonArea2 decomposes an n-gon into a triangle fan from its first
// vertex and sums their unsigned areas.
func fanPolygonArea2(v *umesh.View) float64 {
	conn := v.Connectivity()
	if len(conn) < 3 {
		return 0
	}
	a := v.Coord2(conn[0])
	area := 0.0
	for i := 1; i+1 < len(conn); i++ {
		area += SurfTri2(a, v.Coord2(conn[i]), v.Coord2(conn[i+1]))
	}
	return area
}

func fanPolygonArea3(v *umesh.View) float64 {
	conn := v.Connectivity()
	if len(conn) < 3 {
		return 0
	}
	a := v.Coord3(conn[0])
	area := 0.0
	for i := 1; i+1 < len(conn); i++ {
		area += SurfTri3(a, v.Coord3(conn[i]), v.Coord3(conn[i+1]))
	}
	return area
}
