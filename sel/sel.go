// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sel implements the selection algebra (spec C8): a recursive
// boolean expression tree evaluated against a UMesh with cost-ordered
// And, union/xor/diff combinators for Or/Xor/Diff, and the geometric,
// group and field leaf predicates. Grounded on gofem/inp's tag-based
// cell/face selection idiom (Tags/ETags filters combined by set
// membership) generalised into a full recursive expression language.
package sel

import (
	"github.com/cpmech/mefi/errs"
	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/umesh"
)

// Op is a binary combinator.
type Op int

// combinators
const (
	And Op = iota
	Or
	Xor
	Diff
)

// kind tags which variant of the Selection sum type a value holds.
type kind int

const (
	kElements kind = iota
	kNodes
	kCentroids
	kGroups
	kFields
	kBinary
	kNot
)

// Selection is the recursive expression tree from spec §4.8. Exactly the
// fields relevant to Kind are populated, the same discriminated-union
// shape as conn.Connectivity.
type Selection struct {
	kind kind

	// Elements(Types|Dims|InIds)
	elemTypes []etype.Type
	elemDims  []etype.Dimension
	elemIds   *umesh.ElementIdsSet

	// Nodes(..., all) / Centroids(...)
	geom geomPred
	all  bool // Nodes only: true = every node must satisfy, false = any

	// Groups(Include|Exclude, Group|Family)
	groupInclude bool
	groupName    string
	groupFamily  int
	groupIsFam   bool

	// Fields(cmp eps over expr)
	fieldExpr *FieldExpr
	fieldCmp  cmp
	fieldVal  float64
	fieldEps  float64

	// Binary / Not
	op          Op
	left, right *Selection
	inner       *Selection
}

// cost returns the leaf-evaluation weight from spec §4.8: element/group
// predicates are index-only (0), geometry/field predicates touch rows (1),
// binary/not combinators cost 2 regardless of their children.
func (s *Selection) cost() int {
	switch s.kind {
	case kElements, kGroups:
		return 0
	case kNodes, kCentroids, kFields:
		return 1
	default:
		return 2
	}
}

// Types selects elements whose type is in ts.
func Types(ts ...etype.Type) *Selection { return &Selection{kind: kElements, elemTypes: ts} }

// Dims selects elements whose type has one of the given dimensions.
func Dims(ds ...etype.Dimension) *Selection { return &Selection{kind: kElements, elemDims: ds} }

// Ids selects exactly the named element ids.
func Ids(ids *umesh.ElementIdsSet) *Selection { return &Selection{kind: kElements, elemIds: ids} }

// NodesInBBox selects elements whose nodes satisfy the 3D box predicate.
// all=true requires every node to be inside; all=false requires at least one.
func NodesInBBox(min, max [3]float64, all bool) *Selection {
	return &Selection{kind: kNodes, geom: geomPred{kind: gBBox, min3: min, max3: max}, all: all}
}

// NodesInRect selects elements whose nodes satisfy the 2D rectangle predicate.
func NodesInRect(min, max [2]float64, all bool) *Selection {
	return &Selection{kind: kNodes, geom: geomPred{kind: gRect, min2: min, max2: max}, all: all}
}

// NodesInSphere selects elements whose nodes satisfy the 3D sphere predicate.
func NodesInSphere(c [3]float64, radius float64, all bool) *Selection {
	return &Selection{kind: kNodes, geom: geomPred{kind: gSphere, c3: c, radius: radius}, all: all}
}

// NodesInCircle selects elements whose nodes satisfy the 2D circle predicate.
func NodesInCircle(c [2]float64, radius float64, all bool) *Selection {
	return &Selection{kind: kNodes, geom: geomPred{kind: gCircle, c2: c, radius: radius}, all: all}
}

// NodesInIds selects elements whose node set intersects (all=false) or is a
// subset of (all=true) the given node indices.
func NodesInIds(nodeIds []int, all bool) *Selection {
	set := make(map[int]bool, len(nodeIds))
	for _, n := range nodeIds {
		set[n] = true
	}
	return &Selection{kind: kNodes, geom: geomPred{kind: gNodeIds, nodeSet: set}, all: all}
}

// CentroidsInBBox selects elements whose centroid satisfies the 3D box predicate.
func CentroidsInBBox(min, max [3]float64) *Selection {
	return &Selection{kind: kCentroids, geom: geomPred{kind: gBBox, min3: min, max3: max}}
}

// CentroidsInRect selects elements whose centroid satisfies the 2D rectangle predicate.
func CentroidsInRect(min, max [2]float64) *Selection {
	return &Selection{kind: kCentroids, geom: geomPred{kind: gRect, min2: min, max2: max}}
}

// CentroidsInSphere selects elements whose centroid satisfies the 3D sphere predicate.
func CentroidsInSphere(c [3]float64, radius float64) *Selection {
	return &Selection{kind: kCentroids, geom: geomPred{kind: gSphere, c3: c, radius: radius}}
}

// CentroidsInCircle selects elements whose centroid satisfies the 2D circle predicate.
func CentroidsInCircle(c [2]float64, radius float64) *Selection {
	return &Selection{kind: kCentroids, geom: geomPred{kind: gCircle, c2: c, radius: radius}}
}

// GroupInclude selects elements belonging to the named group.
func GroupInclude(name string) *Selection {
	return &Selection{kind: kGroups, groupInclude: true, groupName: name}
}

// GroupExclude selects elements not belonging to the named group.
func GroupExclude(name string) *Selection {
	return &Selection{kind: kGroups, groupInclude: false, groupName: name}
}

// FamilyInclude selects elements whose family tag equals fam.
func FamilyInclude(fam int) *Selection {
	return &Selection{kind: kGroups, groupInclude: true, groupFamily: fam, groupIsFam: true}
}

// FamilyExclude selects elements whose family tag does not equal fam.
func FamilyExclude(fam int) *Selection {
	return &Selection{kind: kGroups, groupInclude: false, groupFamily: fam, groupIsFam: true}
}

type cmp int

const (
	cmpGt cmp = iota
	cmpGeq
	cmpEq
	cmpLt
	cmpLeq
)

// FieldGt/Geq/Eq/Lt/Leq select elements whose evaluated field expression
// compares to val. Eq takes an eps tolerance; the others ignore it.
func FieldGt(expr *FieldExpr, val float64) *Selection {
	return &Selection{kind: kFields, fieldExpr: expr, fieldCmp: cmpGt, fieldVal: val}
}
func FieldGeq(expr *FieldExpr, val float64) *Selection {
	return &Selection{kind: kFields, fieldExpr: expr, fieldCmp: cmpGeq, fieldVal: val}
}
func FieldEq(expr *FieldExpr, val, eps float64) *Selection {
	return &Selection{kind: kFields, fieldExpr: expr, fieldCmp: cmpEq, fieldVal: val, fieldEps: eps}
}
func FieldLt(expr *FieldExpr, val float64) *Selection {
	return &Selection{kind: kFields, fieldExpr: expr, fieldCmp: cmpLt, fieldVal: val}
}
func FieldLeq(expr *FieldExpr, val float64) *Selection {
	return &Selection{kind: kFields, fieldExpr: expr, fieldCmp: cmpLeq, fieldVal: val}
}

// And, Or, Xor, Diff, Not build the binary/unary combinators.
func (a *Selection) And(b *Selection) *Selection  { return &Selection{kind: kBinary, op: And, left: a, right: b} }
func (a *Selection) Or(b *Selection) *Selection   { return &Selection{kind: kBinary, op: Or, left: a, right: b} }
func (a *Selection) Xor(b *Selection) *Selection  { return &Selection{kind: kBinary, op: Xor, left: a, right: b} }
func (a *Selection) Diff(b *Selection) *Selection { return &Selection{kind: kBinary, op: Diff, left: a, right: b} }
func (a *Selection) Not() *Selection              { return &Selection{kind: kNot, inner: a} }

// infix operator spellings matching spec §4.8's `& | ^ - !`.
func (a *Selection) AND(b *Selection) *Selection { return a.And(b) }
func (a *Selection) OR(b *Selection) *Selection  { return a.Or(b) }
func (a *Selection) XOR(b *Selection) *Selection { return a.Xor(b) }
func (a *Selection) SUB(b *Selection) *Selection { return a.Diff(b) }
func (a *Selection) NOT() *Selection             { return a.Not() }

// Eval evaluates s against mesh, restricting incoming (nil means "start
// from every element"), per spec §4.8's evaluation semantics.
func Eval(mesh *umesh.UMesh, s *Selection, incoming *umesh.ElementIdsSet) (*umesh.ElementIdsSet, error) {
	if incoming == nil {
		incoming = allElements(mesh)
	}
	return s.eval(mesh, incoming)
}

// Select evaluates expr over every element of mesh and extracts the
// matching submesh, per spec §6's `select(mesh, expr)` / `UMesh.select`.
func Select(mesh *umesh.UMesh, expr *Selection) (*umesh.ElementIds, *umesh.UMesh, error) {
	set, err := Eval(mesh, expr, nil)
	if err != nil {
		return nil, nil, err
	}
	ids := set.ToList()
	return ids, mesh.Extract(ids), nil
}

func allElements(mesh *umesh.UMesh) *umesh.ElementIdsSet {
	s := umesh.NewElementIdsSet()
	for _, v := range mesh.Elements() {
		s.Add(v.Id())
	}
	return s
}

func (s *Selection) eval(mesh *umesh.UMesh, incoming *umesh.ElementIdsSet) (*umesh.ElementIdsSet, error) {
	switch s.kind {
	case kElements:
		return s.evalElements(mesh, incoming), nil
	case kGroups:
		return s.evalGroups(mesh, incoming), nil
	case kNodes:
		return s.evalNodes(mesh, incoming)
	case kCentroids:
		return s.evalCentroids(mesh, incoming)
	case kFields:
		return s.evalFields(mesh, incoming)
	case kNot:
		return s.evalNot(mesh, incoming)
	case kBinary:
		return s.evalBinary(mesh, incoming)
	}
	return nil, errs.New(errs.NotFound, "sel: unknown selection kind %d", s.kind)
}

func (s *Selection) evalElements(mesh *umesh.UMesh, incoming *umesh.ElementIdsSet) *umesh.ElementIdsSet {
	out := umesh.NewElementIdsSet()
	for _, v := range mesh.Elements() {
		id := v.Id()
		if !incoming.Contains(id) {
			continue
		}
		if s.matchesElement(v) {
			out.Add(id)
		}
	}
	return out
}

func (s *Selection) matchesElement(v *umesh.View) bool {
	if s.elemTypes != nil {
		for _, t := range s.elemTypes {
			if v.ElementType() == t {
				return true
			}
		}
		return false
	}
	if s.elemDims != nil {
		for _, d := range s.elemDims {
			if v.Dimension() == d {
				return true
			}
		}
		return false
	}
	if s.elemIds != nil {
		return s.elemIds.Contains(v.Id())
	}
	return false
}

func (s *Selection) evalGroups(mesh *umesh.UMesh, incoming *umesh.ElementIdsSet) *umesh.ElementIdsSet {
	out := umesh.NewElementIdsSet()
	for _, v := range mesh.Elements() {
		id := v.Id()
		if !incoming.Contains(id) {
			continue
		}
		member := s.groupIsFam && v.Family() == s.groupFamily || !s.groupIsFam && v.InGroup(s.groupName)
		if member == s.groupInclude {
			out.Add(id)
		}
	}
	return out
}

func point(v *umesh.View, n int) []float64 { return v.Coord(n) }

func (s *Selection) evalNodes(mesh *umesh.UMesh, incoming *umesh.ElementIdsSet) (*umesh.ElementIdsSet, error) {
	out := umesh.NewElementIdsSet()
	for _, v := range mesh.Elements() {
		id := v.Id()
		if !incoming.Contains(id) {
			continue
		}
		conn := v.Connectivity()
		matched := 0
		for _, n := range conn {
			var ok bool
			var err error
			if s.geom.kind == gNodeIds {
				ok = s.geom.testNode(n)
			} else {
				ok, err = s.geom.test(point(v, n))
			}
			if err != nil {
				return nil, err
			}
			if ok {
				matched++
			}
		}
		want := matched == len(conn)
		if !s.all {
			want = matched > 0
		}
		if want {
			out.Add(id)
		}
	}
	return out, nil
}

func (s *Selection) evalCentroids(mesh *umesh.UMesh, incoming *umesh.ElementIdsSet) (*umesh.ElementIdsSet, error) {
	out := umesh.NewElementIdsSet()
	dim := mesh.SpaceDimension()
	for _, v := range mesh.Elements() {
		id := v.Id()
		if !incoming.Contains(id) {
			continue
		}
		var p []float64
		if dim >= 3 {
			c := v.Centroid3()
			p = c[:]
		} else {
			c := v.Centroid2()
			p = c[:]
		}
		ok, err := s.geom.test(p)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Add(id)
		}
	}
	return out, nil
}

func (s *Selection) evalFields(mesh *umesh.UMesh, incoming *umesh.ElementIdsSet) (*umesh.ElementIdsSet, error) {
	val, err := s.fieldExpr.Eval(mesh)
	if err != nil {
		return nil, err
	}
	out := umesh.NewElementIdsSet()
	for t, arr := range val.Arrays {
		for i := 0; i < arr.Len(); i++ {
			id := umesh.ElementId{Type: t, Index: i}
			if !incoming.Contains(id) {
				continue
			}
			if scalarMatches(s.fieldCmp, arr.Rows[i][0], s.fieldVal, s.fieldEps) {
				out.Add(id)
			}
		}
	}
	return out, nil
}

func scalarMatches(c cmp, x, v, eps float64) bool {
	switch c {
	case cmpGt:
		return x > v
	case cmpGeq:
		return x >= v
	case cmpEq:
		d := x - v
		if d < 0 {
			d = -d
		}
		return d <= eps
	case cmpLt:
		return x < v
	case cmpLeq:
		return x <= v
	}
	return false
}

func (s *Selection) evalNot(mesh *umesh.UMesh, incoming *umesh.ElementIdsSet) (*umesh.ElementIdsSet, error) {
	all := allElements(mesh)
	matched, err := s.inner.eval(mesh, all)
	if err != nil {
		return nil, err
	}
	return umesh.Intersection(incoming, umesh.Difference(all, matched)), nil
}

// evalBinary applies cost-ordered evaluation for And (cheaper side first,
// its result feeds the pricier side) and set algebra over the incoming
// restriction for Or/Xor/Diff, per spec §4.8.
func (s *Selection) evalBinary(mesh *umesh.UMesh, incoming *umesh.ElementIdsSet) (*umesh.ElementIdsSet, error) {
	if s.op == And {
		first, second := s.left, s.right
		if second.cost() < first.cost() {
			first, second = second, first
		}
		mid, err := first.eval(mesh, incoming)
		if err != nil {
			return nil, err
		}
		return second.eval(mesh, mid)
	}

	left, err := s.left.eval(mesh, incoming)
	if err != nil {
		return nil, err
	}
	right, err := s.right.eval(mesh, incoming)
	if err != nil {
		return nil, err
	}
	switch s.op {
	case Or:
		return umesh.Intersection(incoming, umesh.Union(left, right)), nil
	case Xor:
		return umesh.Intersection(incoming, umesh.SymmetricDifference(left, right)), nil
	case Diff:
		return umesh.Difference(left, right), nil
	}
	return nil, errs.New(errs.NotFound, "sel: unknown binary op %d", s.op)
}
