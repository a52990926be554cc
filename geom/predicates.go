// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// InSphere reports whether p lies within (or on) a sphere of the given
// radius centred at c.
//
// The specification calls for a robust-predicate (exact adaptive
// arithmetic) implementation to avoid near-boundary flakiness; no such
// library surfaced anywhere in the retrieval pack, so this is a direct
// float64 implementation (documented deviation, see DESIGN.md).
func InSphere(p, c [3]float64, radius float64) bool {
	return Dist3(p, c) <= radius
}

// InCircle reports whether p lies within (or on) a circle of the given radius centred at c.
func InCircle(p, c [2]float64, radius float64) bool {
	return Dist2(p, c) <= radius
}

// InAABBox reports whether p lies within (or on) the axis-aligned box [min,max].
func InAABBox(p, min, max [3]float64) bool {
	for k := 0; k < 3; k++ {
		if p[k] < min[k] || p[k] > max[k] {
			return false
		}
	}
	return true
}

// InAARectangle reports whether p lies within (or on) the axis-aligned rectangle [min,max].
func InAARectangle(p, min, max [2]float64) bool {
	for k := 0; k < 2; k++ {
		if p[k] < min[k] || p[k] > max[k] {
			return false
		}
	}
	return true
}

// InPolygon reports whether p lies inside the simple polygon described by
// verts (in order), using horizontal-ray parity with strict `>`
// comparisons to break edge ties consistently (spec §4.6).
func InPolygon(p [2]float64, verts [][2]float64) bool {
	inside := false
	n := len(verts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := verts[i], verts[j]
		if (vi[1] > p[1]) != (vj[1] > p[1]) {
			xint := vi[0] + (p[1]-vi[1])*(vj[0]-vi[0])/(vj[1]-vi[1])
			if p[0] < xint {
				inside = !inside
			}
		}
	}
	return inside
}

// QuadraticEdge describes one edge of a polygon whose boundary bulges
// along a circular arc, specified by the two endpoints plus a bulge
// factor b (b==0 is a straight edge; matches the "quadratic in y" edge
// family described in spec §4.6).
type QuadraticEdge struct {
	A, B [2]float64
	Bulge float64
}

// InQuadraticPolygon extends the ray test to circular-arc edges by solving
// the per-edge quadratic in y and counting crossings with x > px, per spec §4.6.
func InQuadraticPolygon(p [2]float64, edges []QuadraticEdge) bool {
	crossings := 0
	for _, e := range edges {
		crossings += quadraticEdgeCrossings(p, e.A, e.B, e.Bulge)
	}
	return crossings%2 == 1
}

// quadraticEdgeCrossings counts how many times the arc from a to b (bulge
// b parametrises the arc the way DXF "bulge" does: b = tan(theta/4))
// crosses the horizontal ray {y == p.y, x > p.x}.
func quadraticEdgeCrossings(p, a, b [2]float64, bulge float64) int {
	if bulge == 0 {
		if (a[1] > p[1]) != (b[1] > p[1]) {
			xint := a[0] + (p[1]-a[1])*(b[0]-a[0])/(b[1]-a[1])
			if p[0] < xint {
				return 1
			}
		}
		return 0
	}
	// circular arc through a,b with included angle theta = 4*atan(bulge);
	// derive centre and radius, then solve for the up-to-two y == p.y crossings.
	mx, my := (a[0]+b[0])/2, (a[1]+b[1])/2
	dx, dy := b[0]-a[0], b[1]-a[1]
	chord := math.Hypot(dx, dy)
	if chord == 0 {
		return 0
	}
	// left-hand perpendicular direction; the centre lies at signed distance
	// chord*(1-b^2)/(4b) from the chord midpoint along it
	px, py := -dy/chord, dx/chord
	offset := chord * (1 - bulge*bulge) / (4 * bulge)
	cx := mx + px*offset
	cy := my + py*offset
	radius := math.Hypot(a[0]-cx, a[1]-cy)

	disc := radius*radius - (p[1]-cy)*(p[1]-cy)
	if disc < 0 {
		return 0
	}
	sq := math.Sqrt(disc)
	count := 0
	for _, xr := range []float64{cx + sq, cx - sq} {
		if xr > p[0] && onArcSpan(xr, p[1], a, b, cx, cy, bulge) {
			count++
		}
	}
	return count
}

// onArcSpan reports whether point (x,y) on the full circle lies on the
// minor/major arc actually spanned from a to b (as chosen by bulge's sign).
func onArcSpan(x, y float64, a, b [2]float64, cx, cy, bulge float64) bool {
	angA := math.Atan2(a[1]-cy, a[0]-cx)
	angB := math.Atan2(b[1]-cy, b[0]-cx)
	ang := math.Atan2(y-cy, x-cx)
	norm := func(t float64) float64 {
		for t < 0 {
			t += 2 * math.Pi
		}
		for t >= 2*math.Pi {
			t -= 2 * math.Pi
		}
		return t
	}
	angA, angB, ang = norm(angA), norm(angB), norm(ang)
	if bulge > 0 {
		if angB >= angA {
			return ang >= angA && ang <= angB
		}
		return ang >= angA || ang <= angB
	}
	if angA >= angB {
		return ang >= angB && ang <= angA
	}
	return ang >= angB || ang <= angA
}

// BezierEdge is one quadratic-Bezier boundary edge: endpoints A,B and one control point Ctrl.
type BezierEdge struct {
	A, Ctrl, B [2]float64
}

// InBezierPolygon extends the ray test to quadratic-Bezier edges by
// solving the per-edge quadratic in t for y(t) == p.y and counting
// crossings with x(t) > p.x, per spec §4.6.
func InBezierPolygon(p [2]float64, edges []BezierEdge) bool {
	crossings := 0
	for _, e := range edges {
		crossings += bezierEdgeCrossings(p, e.A, e.Ctrl, e.B)
	}
	return crossings%2 == 1
}

func bezierEdgeCrossings(p, a, c, b [2]float64) int {
	// y(t) = (1-t)^2*a.y + 2(1-t)t*c.y + t^2*b.y - p.y == 0
	ay := a[1] - 2*c[1] + b[1]
	by := 2 * (c[1] - a[1])
	cy := a[1] - p[1]
	count := 0
	for _, t := range solveQuadratic(ay, by, cy) {
		if t < 0 || t > 1 {
			continue
		}
		x := (1-t)*(1-t)*a[0] + 2*(1-t)*t*c[0] + t*t*b[0]
		if x > p[0] {
			count++
		}
	}
	return count
}

// solveQuadratic returns the real roots of a*t^2+b*t+c==0.
func solveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// PointInPhed reports whether p lies inside a polyhedron described by its
// bounding faces (each a polygon in 3-space, fan-triangulated), using
// ray-triangle intersection with a half-open rule (iy in (ymin,ymax],
// iz in (zmin,zmax]) for robustness to coincident vertices, per spec §4.6.
func PointInPhed(p [3]float64, faces [][][3]float64) bool {
	crossings := 0
	ray := [3]float64{1, 0, 0} // cast along +x
	for _, face := range faces {
		if len(face) < 3 {
			continue
		}
		for i := 1; i+1 < len(face); i++ {
			if rayTriangleHalfOpen(p, ray, face[0], face[i], face[i+1]) {
				crossings++
			}
		}
	}
	return crossings%2 == 1
}

// PointInPhed2 is an alternate entry point sharing the PointInPhed
// algorithm but taking pre-flattened triangle fans (spec names both
// point_in_phed and point_in_phed2 as distinct contract points).
func PointInPhed2(p [3]float64, triangles [][3][3]float64) bool {
	crossings := 0
	ray := [3]float64{1, 0, 0}
	for _, t := range triangles {
		if rayTriangleHalfOpen(p, ray, t[0], t[1], t[2]) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// rayTriangleHalfOpen implements Möller–Trumbore ray/triangle intersection
// with the half-open (ymin,ymax]/(zmin,zmax] tie-break spec §4.6 calls for,
// checked on the hit point itself rather than on the ray parametrisation.
func rayTriangleHalfOpen(origin, dir, a, b, c [3]float64) bool {
	const eps = 1e-12
	e1 := sub3(b, a)
	e2 := sub3(c, a)
	h := cross3(dir, e2)
	det := e1[0]*h[0] + e1[1]*h[1] + e1[2]*h[2]
	if math.Abs(det) < eps {
		return false
	}
	f := 1.0 / det
	s := sub3(origin, a)
	u := f * (s[0]*h[0] + s[1]*h[1] + s[2]*h[2])
	if u < 0 || u > 1 {
		return false
	}
	q := cross3(s, e1)
	v := f * (dir[0]*q[0] + dir[1]*q[1] + dir[2]*q[2])
	if v < 0 || u+v > 1 {
		return false
	}
	t := f * (e2[0]*q[0] + e2[1]*q[1] + e2[2]*q[2])
	if t <= eps {
		return false
	}
	hit := [3]float64{origin[0] + t*dir[0], origin[1] + t*dir[1], origin[2] + t*dir[2]}
	ymin, ymax := math.Min(a[1], math.Min(b[1], c[1])), math.Max(a[1], math.Max(b[1], c[1]))
	zmin, zmax := math.Min(a[2], math.Min(b[2], c[2])), math.Max(a[2], math.Max(b[2], c[2]))
	if hit[1] <= ymin || hit[1] > ymax {
		return false
	}
	if hit[2] <= zmin || hit[2] > zmax {
		return false
	}
	return true
}
