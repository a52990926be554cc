// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Endpoint names one of the four input segment endpoints, used by
// IntersectResult when the single intersection point coincides with an
// existing endpoint rather than landing at a newly computed location.
type Endpoint int

// endpoints
const (
	P1 Endpoint = iota
	P2
	P3
	P4
)

// IntersectKind discriminates the sum type returned by IntersectSegSeg.
type IntersectKind int

// kinds
const (
	NoIntersection IntersectKind = iota
	OneExisting                  // single point, coincides with an input endpoint
	OneNew                       // single point, newly computed
	Overlap                      // collinear overlap delimited by two endpoints
)

// IntersectResult is the sum type spec §4.6 describes for intersect_seg_seg.
type IntersectResult struct {
	Kind     IntersectKind
	Existing Endpoint    // valid when Kind == OneExisting
	Point    [2]float64  // valid when Kind == OneNew
	SegA     Endpoint    // valid when Kind == Overlap (first delimiter)
	SegB     Endpoint    // valid when Kind == Overlap (second delimiter)
}

func pointsClose(a, b [2]float64, tol float64) bool {
	return Dist2(a, b) <= tol
}

// segScaleTol returns the scale-adjusted tolerance 64*eps*max(|v1|,|v2|,1)
// spec §4.6 calls for.
func segScaleTol(v1, v2 [2]float64) float64 {
	const machEps = 2.220446049250313e-16
	n1 := math.Hypot(v1[0], v1[1])
	n2 := math.Hypot(v2[0], v2[1])
	m := math.Max(math.Max(n1, n2), 1.0)
	return 64 * machEps * m
}

func at(p, d [2]float64, t float64) [2]float64 {
	return [2]float64{p[0] + t*d[0], p[1] + t*d[1]}
}

// IntersectSegSeg computes the intersection of segments p1p2 and p3p4,
// following the four-law contract of spec §4.6: symmetric under
// endpoint-pair swap, any returned point lies on both segments within a
// scale-adjusted tolerance, collinear overlaps return Overlap, and
// segments sharing exactly one endpoint never return NoIntersection.
func IntersectSegSeg(p1, p2, p3, p4 [2]float64) IntersectResult {
	d1 := [2]float64{p2[0] - p1[0], p2[1] - p1[1]}
	d2 := [2]float64{p4[0] - p3[0], p4[1] - p3[1]}
	tol := segScaleTol(d1, d2)

	denom := d1[0]*d2[1] - d1[1]*d2[0]

	if math.Abs(denom) > tol*tol {
		// non-parallel: solve p1 + t*d1 == p3 + u*d2
		diff := [2]float64{p3[0] - p1[0], p3[1] - p1[1]}
		t := (diff[0]*d2[1] - diff[1]*d2[0]) / denom
		u := (diff[0]*d1[1] - diff[1]*d1[0]) / denom
		const edgeTol = 1e-9
		if t < -edgeTol || t > 1+edgeTol || u < -edgeTol || u > 1+edgeTol {
			return IntersectResult{Kind: NoIntersection}
		}
		pt := at(p1, d1, t)
		for ep, cand := range map[Endpoint][2]float64{P1: p1, P2: p2, P3: p3, P4: p4} {
			if pointsClose(pt, cand, tol) {
				return IntersectResult{Kind: OneExisting, Existing: ep}
			}
		}
		return IntersectResult{Kind: OneNew, Point: pt}
	}

	// parallel: test collinearity via cross of (p3-p1) against d1
	diff := [2]float64{p3[0] - p1[0], p3[1] - p1[1]}
	crossColl := diff[0]*d1[1] - diff[1]*d1[0]
	if math.Abs(crossColl) > tol*math.Max(math.Hypot(d1[0], d1[1]), 1.0) {
		return IntersectResult{Kind: NoIntersection} // parallel, not collinear
	}

	// collinear: project every point onto d1 and find the overlap interval
	len1 := math.Hypot(d1[0], d1[1])
	if len1 == 0 {
		return IntersectResult{Kind: NoIntersection}
	}
	ux, uy := d1[0]/len1, d1[1]/len1
	proj := func(p [2]float64) float64 { return (p[0]-p1[0])*ux + (p[1]-p1[1])*uy }
	s1, s2 := 0.0, proj(p2)
	s3, s4 := proj(p3), proj(p4)
	loA, hiA := math.Min(s1, s2), math.Max(s1, s2)
	loB, hiB := math.Min(s3, s4), math.Max(s3, s4)
	lo, hi := math.Max(loA, loB), math.Min(hiA, hiB)
	if hi < lo-tol {
		return IntersectResult{Kind: NoIntersection}
	}
	if hi-lo <= tol {
		// touching at a single point: identify which named endpoint it is
		mid := (lo + hi) / 2
		pt := [2]float64{p1[0] + mid*ux, p1[1] + mid*uy}
		for ep, cand := range map[Endpoint][2]float64{P1: p1, P2: p2, P3: p3, P4: p4} {
			if pointsClose(pt, cand, tol) {
				return IntersectResult{Kind: OneExisting, Existing: ep}
			}
		}
		return IntersectResult{Kind: OneNew, Point: pt}
	}
	// genuine overlap: name the two endpoints delimiting [lo,hi]
	endpoints := []struct {
		ep  Endpoint
		val float64
	}{{P1, s1}, {P2, s2}, {P3, s3}, {P4, s4}}
	var a, b Endpoint
	for _, e := range endpoints {
		if math.Abs(e.val-lo) <= tol {
			a = e.ep
		}
		if math.Abs(e.val-hi) <= tol {
			b = e.ep
		}
	}
	return IntersectResult{Kind: Overlap, SegA: a, SegB: b}
}
