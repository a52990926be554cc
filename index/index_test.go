// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_index01(tst *testing.T) {

	chk.PrintTitle("Test index01: push and row")

	o := New()
	o.Push([]int{0, 1})
	o.Push([]int{2, 3, 4})
	o.Push([]int{})
	o.Push([]int{5})

	chk.IntAssert(o.Len(), 4)
	chk.IntAssert(o.NumItems(), 6)
	chk.Ints(tst, "row0", o.Row(0), []int{0, 1})
	chk.Ints(tst, "row1", o.Row(1), []int{2, 3, 4})
	chk.Ints(tst, "row2", o.Row(2), []int{})
	chk.Ints(tst, "row3", o.Row(3), []int{5})
}

func Test_index02(tst *testing.T) {

	chk.PrintTitle("Test index02: extend_from rewrites offsets")

	a := New()
	a.Push([]int{0, 1})

	b := New()
	b.Push([]int{9})
	b.Push([]int{8, 7})

	a.ExtendFrom(b.data, b.offsets)

	chk.IntAssert(a.Len(), 3)
	chk.Ints(tst, "row1", a.Row(1), []int{9})
	chk.Ints(tst, "row2", a.Row(2), []int{8, 7})
}

func Test_index03(tst *testing.T) {

	chk.PrintTitle("Test index03: mutate row in place")

	o := New()
	o.Push([]int{1, 2, 3})
	row := o.RowMut(0)
	row[1] = 99
	chk.Ints(tst, "row0", o.Row(0), []int{1, 99, 3})
}
