// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spatial implements the two indices of spec C10: a BVH over
// element bounding boxes and an R-tree-over-points used by snap/
// merge_nodes. Grounded on out/topology.go's use of github.com/cpmech/gosl/gm
// for bin/plane geometry, generalised with github.com/paulmach/orb's
// planar Bound/quadtree for the 2D case (the pack carries no 3D
// bounding-volume or point-index library, so the 3D paths are mefi's own
// minimal AABB/grid code — documented deviation, see DESIGN.md).
package spatial

import (
	"sort"

	"github.com/paulmach/orb"
	"golang.org/x/sync/errgroup"

	"github.com/cpmech/mefi/umesh"
)

// parallelBuildThreshold is the leaf count above which NewBVH2Parallel/
// NewBVH3Parallel fork their two child subtrees onto the work-stealing
// pool instead of building sequentially, per spec §4.10's "construction
// parallel when available."
const parallelBuildThreshold = 256

// Box3 is a 3D axis-aligned bounding box (orb.Bound has no 3D
// counterpart, so the 3D BVH path uses this minimal type instead).
type Box3 struct {
	Min, Max [3]float64
}

func (b Box3) union(o Box3) Box3 {
	out := b
	for k := 0; k < 3; k++ {
		if o.Min[k] < out.Min[k] {
			out.Min[k] = o.Min[k]
		}
		if o.Max[k] > out.Max[k] {
			out.Max[k] = o.Max[k]
		}
	}
	return out
}

func (b Box3) intersects(min, max [3]float64) bool {
	for k := 0; k < 3; k++ {
		if b.Max[k] < min[k] || b.Min[k] > max[k] {
			return false
		}
	}
	return true
}

func (b Box3) centre(k int) float64 { return (b.Min[k] + b.Max[k]) / 2 }

// BVH2 is a bounding-volume hierarchy over 2D element boxes, leaves
// carrying an umesh.ElementId, built by recursive median-split on the
// longest axis (the "construction parallel when available" note in
// spec §4.10 is realised by NewBVH2Parallel, not this constructor).
type BVH2 struct {
	root *node2
}

type node2 struct {
	bound       orb.Bound
	left, right *node2
	leaf        *Leaf2Item
}

type Leaf2Item struct {
	id    umesh.ElementId
	bound orb.Bound
}

// NewBVH2 builds a BVH from a flat list of (id, bound) pairs.
func NewBVH2(items []Leaf2Item) *BVH2 {
	if len(items) == 0 {
		return &BVH2{}
	}
	return &BVH2{root: build2(items)}
}

// Leaf2 is the exported constructor for one (id, bound) input pair.
func Leaf2(id umesh.ElementId, min, max [2]float64) Leaf2Item {
	return Leaf2Item{id: id, bound: orb.Bound{Min: orb.Point{min[0], min[1]}, Max: orb.Point{max[0], max[1]}}}
}

func build2(items []Leaf2Item) *node2 {
	if len(items) == 1 {
		return &node2{bound: items[0].bound, leaf: &items[0]}
	}
	b := items[0].bound
	for _, it := range items[1:] {
		b = b.Union(it.bound)
	}
	axis := 0
	if (b.Max[1] - b.Min[1]) > (b.Max[0] - b.Min[0]) {
		axis = 1
	}
	sort.Slice(items, func(i, j int) bool {
		ci := (items[i].bound.Min[axis] + items[i].bound.Max[axis]) / 2
		cj := (items[j].bound.Min[axis] + items[j].bound.Max[axis]) / 2
		return ci < cj
	})
	mid := len(items) / 2
	left := build2(items[:mid])
	right := build2(items[mid:])
	return &node2{bound: left.bound.Union(right.bound), left: left, right: right}
}

// NewBVH2Parallel builds a BVH the way NewBVH2 does, but forks the two
// child subtrees concurrently via golang.org/x/sync/errgroup once a
// subtree's leaf count exceeds parallelBuildThreshold.
func NewBVH2Parallel(items []Leaf2Item) *BVH2 {
	if len(items) == 0 {
		return &BVH2{}
	}
	return &BVH2{root: build2Parallel(items)}
}

func build2Parallel(items []Leaf2Item) *node2 {
	if len(items) <= parallelBuildThreshold {
		return build2(items)
	}
	b := items[0].bound
	for _, it := range items[1:] {
		b = b.Union(it.bound)
	}
	axis := 0
	if (b.Max[1] - b.Min[1]) > (b.Max[0] - b.Min[0]) {
		axis = 1
	}
	sort.Slice(items, func(i, j int) bool {
		ci := (items[i].bound.Min[axis] + items[i].bound.Max[axis]) / 2
		cj := (items[j].bound.Min[axis] + items[j].bound.Max[axis]) / 2
		return ci < cj
	})
	mid := len(items) / 2
	var left, right *node2
	var g errgroup.Group
	g.Go(func() error { left = build2Parallel(items[:mid]); return nil })
	g.Go(func() error { right = build2Parallel(items[mid:]); return nil })
	_ = g.Wait()
	return &node2{bound: left.bound.Union(right.bound), left: left, right: right}
}

// InBounds2 returns every leaf id whose box overlaps [min,max] (may
// contain false positives at the bounding-box level, per spec §4.10).
func (t *BVH2) InBounds2(min, max [2]float64) []umesh.ElementId {
	if t.root == nil {
		return nil
	}
	q := orb.Bound{Min: orb.Point{min[0], min[1]}, Max: orb.Point{max[0], max[1]}}
	var out []umesh.ElementId
	var walk func(n *node2)
	walk = func(n *node2) {
		if n == nil || !boundsOverlap(n.bound, q) {
			return
		}
		if n.leaf != nil {
			out = append(out, n.leaf.id)
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out
}

func boundsOverlap(a, b orb.Bound) bool {
	return a.Max[0] >= b.Min[0] && a.Min[0] <= b.Max[0] &&
		a.Max[1] >= b.Min[1] && a.Min[1] <= b.Max[1]
}

// BVH3 is the 3D analogue of BVH2, using the package's own Box3 since
// orb has no 3D bound type.
type BVH3 struct {
	root *node3
}

type node3 struct {
	bound       Box3
	left, right *node3
	leaf        *Leaf3Item
}

type Leaf3Item struct {
	id    umesh.ElementId
	bound Box3
}

// Leaf3 is the exported constructor for one 3D (id, bound) input pair.
func Leaf3(id umesh.ElementId, min, max [3]float64) Leaf3Item {
	return Leaf3Item{id: id, bound: Box3{Min: min, Max: max}}
}

// NewBVH3 builds a 3D BVH the same way NewBVH2 does.
func NewBVH3(items []Leaf3Item) *BVH3 {
	if len(items) == 0 {
		return &BVH3{}
	}
	return &BVH3{root: build3(items)}
}

func build3(items []Leaf3Item) *node3 {
	if len(items) == 1 {
		return &node3{bound: items[0].bound, leaf: &items[0]}
	}
	b := items[0].bound
	for _, it := range items[1:] {
		b = b.union(it.bound)
	}
	axis, longest := 0, b.Max[0]-b.Min[0]
	for k := 1; k < 3; k++ {
		if span := b.Max[k] - b.Min[k]; span > longest {
			axis, longest = k, span
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].bound.centre(axis) < items[j].bound.centre(axis)
	})
	mid := len(items) / 2
	left := build3(items[:mid])
	right := build3(items[mid:])
	return &node3{bound: left.bound.union(right.bound), left: left, right: right}
}

// NewBVH3Parallel is NewBVH2Parallel's 3D analogue.
func NewBVH3Parallel(items []Leaf3Item) *BVH3 {
	if len(items) == 0 {
		return &BVH3{}
	}
	return &BVH3{root: build3Parallel(items)}
}

func build3Parallel(items []Leaf3Item) *node3 {
	if len(items) <= parallelBuildThreshold {
		return build3(items)
	}
	b := items[0].bound
	for _, it := range items[1:] {
		b = b.union(it.bound)
	}
	axis, longest := 0, b.Max[0]-b.Min[0]
	for k := 1; k < 3; k++ {
		if span := b.Max[k] - b.Min[k]; span > longest {
			axis, longest = k, span
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].bound.centre(axis) < items[j].bound.centre(axis)
	})
	mid := len(items) / 2
	var left, right *node3
	var g errgroup.Group
	g.Go(func() error { left = build3Parallel(items[:mid]); return nil })
	g.Go(func() error { right = build3Parallel(items[mid:]); return nil })
	_ = g.Wait()
	return &node3{bound: left.bound.union(right.bound), left: left, right: right}
}

// InBounds3 returns every leaf id whose box overlaps [min,max].
func (t *BVH3) InBounds3(min, max [3]float64) []umesh.ElementId {
	if t.root == nil {
		return nil
	}
	var out []umesh.ElementId
	var walk func(n *node3)
	walk = func(n *node3) {
		if n == nil || !n.bound.intersects(min, max) {
			return
		}
		if n.leaf != nil {
			out = append(out, n.leaf.id)
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out
}
