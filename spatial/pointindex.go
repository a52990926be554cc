// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
)

// indexedPoint is the orb.Pointer wrapper snap/merge_nodes index: a node
// index plus its full (possibly 3D) coordinate row, keyed for querying
// by its planar (x,y) projection in the orb/quadtree backend.
type indexedPoint struct {
	node  int
	coord []float64
}

func (p *indexedPoint) Point() orb.Point { return orb.Point{p.coord[0], p.coord[1]} }

// PointIndex is the R-tree-over-points of spec §4.10: bulk-loaded once,
// queried by within-radius (read-only or draining). The 2D backend is
// github.com/paulmach/orb/quadtree; orb has no 3D point index, so the 3D
// backend is mefi's own uniform grid (documented deviation, see
// DESIGN.md) offering the same query surface.
type PointIndex struct {
	dim  int
	qt   *quadtree.Quadtree // 2D backend
	grid *grid3             // 3D backend
}

// NewPointIndex bulk-loads rows (each of length 2 or 3) into a fresh index.
func NewPointIndex(rows [][]float64) *PointIndex {
	dim := 2
	if len(rows) > 0 {
		dim = len(rows[0])
	}
	idx := &PointIndex{dim: dim}
	if dim >= 3 {
		idx.grid = newGrid3(rows)
		return idx
	}
	bound := orb.Bound{Min: orb.Point{math.Inf(1), math.Inf(1)}, Max: orb.Point{math.Inf(-1), math.Inf(-1)}}
	for _, r := range rows {
		bound = bound.Extend(orb.Point{r[0], r[1]})
	}
	if bound.IsEmpty() {
		bound = orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}
	}
	qt := quadtree.New(bound)
	for i, r := range rows {
		qt.Add(&indexedPoint{node: i, coord: r})
	}
	idx.qt = qt
	return idx
}

// Nearest returns the indexed point closest to p within radius, or
// (-1, false) if none qualifies — used by snap.
func (idx *PointIndex) Nearest(p []float64, radius float64) (int, bool) {
	if idx.dim >= 3 {
		return idx.grid.nearest(p, radius)
	}
	candidates := idx.qt.InBound(nil, orb.Bound{
		Min: orb.Point{p[0] - radius, p[1] - radius},
		Max: orb.Point{p[0] + radius, p[1] + radius},
	})
	best, bestD := -1, radius*radius
	for _, c := range candidates {
		ip := c.(*indexedPoint)
		d := sqDist(p, ip.coord)
		if d <= bestD {
			best, bestD = ip.node, d
		}
	}
	return best, best >= 0
}

// DrainWithin removes and returns every point within radius of p — used
// by merge_nodes' point-in-ball grouping, so each node is grouped once.
func (idx *PointIndex) DrainWithin(p []float64, radius float64) []int {
	if idx.dim >= 3 {
		return idx.grid.drainWithin(p, radius)
	}
	candidates := idx.qt.InBound(nil, orb.Bound{
		Min: orb.Point{p[0] - radius, p[1] - radius},
		Max: orb.Point{p[0] + radius, p[1] + radius},
	})
	var out []int
	for _, c := range candidates {
		ip := c.(*indexedPoint)
		if sqDist(p, ip.coord) > radius*radius {
			continue
		}
		idx.qt.Remove(ip, func(a, b orb.Pointer) bool { return a.(*indexedPoint).node == b.(*indexedPoint).node })
		out = append(out, ip.node)
	}
	return out
}

func sqDist(a, b []float64) float64 {
	s := 0.0
	for k := range a {
		d := a[k] - b[k]
		s += d * d
	}
	return s
}

// grid3 is a minimal uniform-grid point index for 3D coordinates,
// grounded on the same bucket-by-cell idea as gofem/out's gm.Bins usage
// (Init with bounds+divisions, Append per point) but reimplemented here
// since no library in the retrieval pack exposes a 3D within-radius
// drain query.
type grid3 struct {
	cell    float64
	min     [3]float64
	buckets map[[3]int][]int
	coords  [][]float64
	alive   map[int]bool
}

func newGrid3(rows [][]float64) *grid3 {
	g := &grid3{buckets: make(map[[3]int][]int), coords: rows, alive: make(map[int]bool, len(rows))}
	if len(rows) == 0 {
		g.cell = 1
		return g
	}
	min := [3]float64{rows[0][0], rows[0][1], rows[0][2]}
	max := min
	for _, r := range rows {
		for k := 0; k < 3; k++ {
			if r[k] < min[k] {
				min[k] = r[k]
			}
			if r[k] > max[k] {
				max[k] = r[k]
			}
		}
	}
	span := math.Max(max[0]-min[0], math.Max(max[1]-min[1], max[2]-min[2]))
	if span <= 0 {
		span = 1
	}
	g.cell = span / math.Cbrt(float64(len(rows))+1)
	if g.cell <= 0 {
		g.cell = span
	}
	g.min = min
	for i, r := range rows {
		g.buckets[g.key(r)] = append(g.buckets[g.key(r)], i)
		g.alive[i] = true
	}
	return g
}

func (g *grid3) key(p []float64) [3]int {
	return [3]int{
		int(math.Floor((p[0] - g.min[0]) / g.cell)),
		int(math.Floor((p[1] - g.min[1]) / g.cell)),
		int(math.Floor((p[2] - g.min[2]) / g.cell)),
	}
}

func (g *grid3) neighbourCells(p []float64, radius float64) [][3]int {
	reach := int(math.Ceil(radius/g.cell)) + 1
	centre := g.key(p)
	var out [][3]int
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			for dz := -reach; dz <= reach; dz++ {
				out = append(out, [3]int{centre[0] + dx, centre[1] + dy, centre[2] + dz})
			}
		}
	}
	return out
}

func (g *grid3) nearest(p []float64, radius float64) (int, bool) {
	best, bestD := -1, radius*radius
	for _, c := range g.neighbourCells(p, radius) {
		for _, i := range g.buckets[c] {
			if !g.alive[i] {
				continue
			}
			d := sqDist(p, g.coords[i])
			if d <= bestD {
				best, bestD = i, d
			}
		}
	}
	return best, best >= 0
}

func (g *grid3) drainWithin(p []float64, radius float64) []int {
	var out []int
	for _, c := range g.neighbourCells(p, radius) {
		for _, i := range g.buckets[c] {
			if !g.alive[i] {
				continue
			}
			if sqDist(p, g.coords[i]) <= radius*radius {
				out = append(out, i)
				g.alive[i] = false
			}
		}
	}
	return out
}
