// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sel

import (
	"math"

	"github.com/cpmech/mefi/errs"
	"github.com/cpmech/mefi/etype"
	"github.com/cpmech/mefi/field"
	"github.com/cpmech/mefi/umesh"
)

// FieldExpr is a small recursive expression tree over per-type Fields,
// letting the `Fields(...)` selection leaves compare an arbitrary
// combination of named fields and constants rather than one bare field.
// Supplements the distilled specification: grounded on
// meficore/src/mesh/fieldexpr.rs's FieldExpr enum (Field/Array/BinaryExpr/
// UnaryExpr/Centroids/X/Y/Z), adapted to mefi's eager Field arrays rather
// than ndarray copy-on-write views.
type FieldExpr struct {
	kind fieldExprKind

	name  string  // Field(name)
	value float64 // Const(value) — mefi's analogue of the original's broadcast Array leaf

	binOp       binOp
	left, right *FieldExpr

	unOp unOp
	expr *FieldExpr

	coord int // X=0, Y=1, Z=2
}

type fieldExprKind int

const (
	exprField fieldExprKind = iota
	exprConst
	exprBinary
	exprUnary
	exprCentroids
	exprCoord
)

type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opPow
)

type unOp int

const (
	opSin unOp = iota
	opCos
	opTan
	opSqrt
	opSquare
	opExp
	opLn
	opLog10
	opAbs
)

// FieldByName references a field stored on the mesh's blocks by name.
func FieldByName(name string) *FieldExpr { return &FieldExpr{kind: exprField, name: name} }

// Const is a broadcastable scalar constant.
func Const(v float64) *FieldExpr { return &FieldExpr{kind: exprConst, value: v} }

// CentroidNorm is the per-element centroid-distance-from-origin field,
// the mefi analogue of the original's bare FieldExpr::Centroids leaf
// (which yields a vector field there; mefi's Field is scalar-per-type so
// this collapses it to the Euclidean norm, a common downstream use).
func CentroidNorm() *FieldExpr { return &FieldExpr{kind: exprCentroids} }

// X, Y, Z are the per-element centroid coordinate fields.
func X() *FieldExpr { return &FieldExpr{kind: exprCoord, coord: 0} }
func Y() *FieldExpr { return &FieldExpr{kind: exprCoord, coord: 1} }
func Z() *FieldExpr { return &FieldExpr{kind: exprCoord, coord: 2} }

func (a *FieldExpr) Add(b *FieldExpr) *FieldExpr { return &FieldExpr{kind: exprBinary, binOp: opAdd, left: a, right: b} }
func (a *FieldExpr) Sub(b *FieldExpr) *FieldExpr { return &FieldExpr{kind: exprBinary, binOp: opSub, left: a, right: b} }
func (a *FieldExpr) Mul(b *FieldExpr) *FieldExpr { return &FieldExpr{kind: exprBinary, binOp: opMul, left: a, right: b} }
func (a *FieldExpr) Div(b *FieldExpr) *FieldExpr { return &FieldExpr{kind: exprBinary, binOp: opDiv, left: a, right: b} }
func (a *FieldExpr) Pow(b *FieldExpr) *FieldExpr { return &FieldExpr{kind: exprBinary, binOp: opPow, left: a, right: b} }

func (a *FieldExpr) Sin() *FieldExpr    { return &FieldExpr{kind: exprUnary, unOp: opSin, expr: a} }
func (a *FieldExpr) Cos() *FieldExpr    { return &FieldExpr{kind: exprUnary, unOp: opCos, expr: a} }
func (a *FieldExpr) Tan() *FieldExpr    { return &FieldExpr{kind: exprUnary, unOp: opTan, expr: a} }
func (a *FieldExpr) Sqrt() *FieldExpr   { return &FieldExpr{kind: exprUnary, unOp: opSqrt, expr: a} }
func (a *FieldExpr) Square() *FieldExpr { return &FieldExpr{kind: exprUnary, unOp: opSquare, expr: a} }
func (a *FieldExpr) Exp() *FieldExpr    { return &FieldExpr{kind: exprUnary, unOp: opExp, expr: a} }
func (a *FieldExpr) Ln() *FieldExpr     { return &FieldExpr{kind: exprUnary, unOp: opLn, expr: a} }
func (a *FieldExpr) Log10() *FieldExpr  { return &FieldExpr{kind: exprUnary, unOp: opLog10, expr: a} }
func (a *FieldExpr) Abs() *FieldExpr    { return &FieldExpr{kind: exprUnary, unOp: opAbs, expr: a} }

// Eval evaluates the expression into a Field over every element type
// present in mesh, broadcasting Const leaves to match.
func (e *FieldExpr) Eval(mesh *umesh.UMesh) (*field.Field, error) {
	switch e.kind {
	case exprField:
		return e.evalNamed(mesh)
	case exprConst:
		return e.evalConst(mesh), nil
	case exprBinary:
		return e.evalBinary(mesh)
	case exprUnary:
		return e.evalUnary(mesh)
	case exprCoord:
		return e.evalCoord(mesh), nil
	case exprCentroids:
		return e.evalCentroidNorm(mesh), nil
	}
	return nil, errs.New(errs.NotFound, "sel: unknown field expression kind %d", e.kind)
}

func (e *FieldExpr) evalNamed(mesh *umesh.UMesh) (*field.Field, error) {
	out := field.NewField()
	for _, t := range allTypesOf(mesh) {
		b := mesh.Block(t)
		arr, err := b.Field(e.name)
		if err != nil {
			return nil, err
		}
		out.Arrays[t] = arr
	}
	return out, nil
}

func (e *FieldExpr) evalConst(mesh *umesh.UMesh) *field.Field {
	out := field.NewField()
	for _, t := range allTypesOf(mesh) {
		b := mesh.Block(t)
		arr := field.NewArray(b.Len(), nil)
		for i := range arr.Rows {
			arr.Rows[i][0] = e.value
		}
		out.Arrays[t] = arr
	}
	return out
}

func (e *FieldExpr) evalCoord(mesh *umesh.UMesh) *field.Field {
	out := field.NewField()
	dim := mesh.SpaceDimension()
	for _, v := range mesh.Elements() {
		t := v.ElementType()
		arr, ok := out.Arrays[t]
		if !ok {
			arr = field.NewArray(mesh.Block(t).Len(), nil)
			out.Arrays[t] = arr
		}
		var val float64
		if dim >= 3 {
			c := v.Centroid3()
			if e.coord < 3 {
				val = c[e.coord]
			}
		} else {
			c := v.Centroid2()
			if e.coord < 2 {
				val = c[e.coord]
			}
		}
		arr.Rows[v.Index()][0] = val
	}
	return out
}

func (e *FieldExpr) evalCentroidNorm(mesh *umesh.UMesh) *field.Field {
	out := field.NewField()
	dim := mesh.SpaceDimension()
	for _, v := range mesh.Elements() {
		t := v.ElementType()
		arr, ok := out.Arrays[t]
		if !ok {
			arr = field.NewArray(mesh.Block(t).Len(), nil)
			out.Arrays[t] = arr
		}
		var norm float64
		if dim >= 3 {
			c := v.Centroid3()
			norm = c[0]*c[0] + c[1]*c[1] + c[2]*c[2]
		} else {
			c := v.Centroid2()
			norm = c[0]*c[0] + c[1]*c[1]
		}
		arr.Rows[v.Index()][0] = math.Sqrt(norm)
	}
	return out
}

func (e *FieldExpr) evalBinary(mesh *umesh.UMesh) (*field.Field, error) {
	l, err := e.left.Eval(mesh)
	if err != nil {
		return nil, err
	}
	r, err := e.right.Eval(mesh)
	if err != nil {
		return nil, err
	}
	switch e.binOp {
	case opAdd:
		return field.Add(l, r), nil
	case opSub:
		return field.Sub(l, r), nil
	case opMul:
		return field.Mul(l, r), nil
	case opDiv:
		return field.Div(l, r), nil
	case opPow:
		return field.Pow(l, r), nil
	}
	return nil, errs.New(errs.NotFound, "sel: unknown field binary op %d", e.binOp)
}

func (e *FieldExpr) evalUnary(mesh *umesh.UMesh) (*field.Field, error) {
	v, err := e.expr.Eval(mesh)
	if err != nil {
		return nil, err
	}
	switch e.unOp {
	case opSin:
		return field.Sin(v), nil
	case opCos:
		return field.Cos(v), nil
	case opTan:
		return field.Tan(v), nil
	case opSqrt:
		return field.Sqrt(v), nil
	case opSquare:
		return field.Sq(v), nil
	case opExp:
		return field.Exp(v), nil
	case opLn:
		return field.Ln(v), nil
	case opLog10:
		return field.Log10(v), nil
	case opAbs:
		return field.Abs(v), nil
	}
	return nil, errs.New(errs.NotFound, "sel: unknown field unary op %d", e.unOp)
}

// allTypesOf returns every element type present in mesh, in persisted order.
func allTypesOf(mesh *umesh.UMesh) []etype.Type {
	var out []etype.Type
	for _, t := range etype.All() {
		if mesh.HasType(t) {
			out = append(out, t)
		}
	}
	return out
}
