// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements the per-element-type dense array algebra of
// spec C11: element-wise arithmetic and scalar mapping over [E, ...]
// shaped arrays, one per etype.Type. Binary operations need both fields to
// have the same element types, counts and trailing shapes; there is no
// broadcasting. Written in the style of gofem/shp.Shape's
// flat scratchpad buffers (S, G, DSdR, ...) allocated with
// github.com/cpmech/gosl/la.
package field

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/mefi/etype"
)

// Array is a dense [E, shape...] array for one element type. Data is
// stored row-major (element-major), one row of len(Shape-product) per
// element, the same flattening gofem/shp.Shape uses for its [nverts][gndim]
// scratch buffers.
type Array struct {
	Shape []int // trailing shape, e.g. [] for scalar, [3] for vector, [3,3] for tensor
	Rows  [][]float64
}

// NewArray allocates a zero-filled array for n elements with the given trailing shape.
func NewArray(n int, shape []int) *Array {
	width := 1
	for _, s := range shape {
		width *= s
	}
	rows := la.MatAlloc(n, width)
	return &Array{Shape: append([]int(nil), shape...), Rows: rows}
}

// Len returns the element count, E.
func (a *Array) Len() int { return len(a.Rows) }

func sameShape(s1, s2 []int) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			return false
		}
	}
	return true
}

// Field is a map ElementType -> Array, the unit of currency for measure()
// and for the selection algebra's Fields(...) leaves.
type Field struct {
	Arrays map[etype.Type]*Array
}

// NewField builds an empty field.
func NewField() *Field { return &Field{Arrays: make(map[etype.Type]*Array)} }

// compatible reports whether two fields share element types (ignoring shape).
func compatible(a, b *Field) bool {
	if len(a.Arrays) != len(b.Arrays) {
		return false
	}
	for t := range a.Arrays {
		if _, ok := b.Arrays[t]; !ok {
			return false
		}
	}
	return true
}

// strictlyCompatible additionally requires identical per-type shape.
func strictlyCompatible(a, b *Field) bool {
	if !compatible(a, b) {
		return false
	}
	for t, arr := range a.Arrays {
		other := b.Arrays[t]
		if !sameShape(arr.Shape, other.Shape) || arr.Len() != other.Len() {
			return false
		}
	}
	return true
}

// binaryOp applies op element-wise across every matching row of a strictly
// compatible pair of fields. Incompatible fields are a programmer error
// (spec §4.11: "operating on incompatible fields ... aborts the operation").
func binaryOp(a, b *Field, op func(x, y float64) float64) *Field {
	if !strictlyCompatible(a, b) {
		chk.Panic("field: binary op requires strictly compatible fields")
	}
	out := NewField()
	for t, arr := range a.Arrays {
		other := b.Arrays[t]
		res := NewArray(arr.Len(), arr.Shape)
		for i := range arr.Rows {
			for j := range arr.Rows[i] {
				res.Rows[i][j] = op(arr.Rows[i][j], other.Rows[i][j])
			}
		}
		out.Arrays[t] = res
	}
	return out
}

// Add returns a+b element-wise.
func Add(a, b *Field) *Field { return binaryOp(a, b, func(x, y float64) float64 { return x + y }) }

// Sub returns a-b element-wise.
func Sub(a, b *Field) *Field { return binaryOp(a, b, func(x, y float64) float64 { return x - y }) }

// Mul returns a·b element-wise.
func Mul(a, b *Field) *Field { return binaryOp(a, b, func(x, y float64) float64 { return x * y }) }

// Div returns a/b element-wise.
func Div(a, b *Field) *Field { return binaryOp(a, b, func(x, y float64) float64 { return x / y }) }

// Pow returns a^b element-wise.
func Pow(a, b *Field) *Field { return binaryOp(a, b, math.Pow) }

// mapOp applies a scalar function to every element of every array.
func mapOp(a *Field, fn func(float64) float64) *Field {
	out := NewField()
	for t, arr := range a.Arrays {
		res := NewArray(arr.Len(), arr.Shape)
		for i := range arr.Rows {
			for j := range arr.Rows[i] {
				res.Rows[i][j] = fn(arr.Rows[i][j])
			}
		}
		out.Arrays[t] = res
	}
	return out
}

// Sin, Cos, Sqrt, Sq, Exp, Ln, Log10, Abs, Tan are the unary scalar maps
// named in spec §4.11.
func Sin(a *Field) *Field   { return mapOp(a, math.Sin) }
func Cos(a *Field) *Field   { return mapOp(a, math.Cos) }
func Sqrt(a *Field) *Field  { return mapOp(a, math.Sqrt) }
func Sq(a *Field) *Field    { return mapOp(a, func(x float64) float64 { return x * x }) }
func Exp(a *Field) *Field   { return mapOp(a, math.Exp) }
func Ln(a *Field) *Field    { return mapOp(a, math.Log) }
func Log10(a *Field) *Field { return mapOp(a, math.Log10) }
func Abs(a *Field) *Field   { return mapOp(a, math.Abs) }
func Tan(a *Field) *Field   { return mapOp(a, math.Tan) }
