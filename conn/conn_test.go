// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conn

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_conn01(tst *testing.T) {

	chk.PrintTitle("Test conn01: regular connectivity")

	c := NewRegular([]int{0, 1, 4, 3, 1, 2, 5, 4}, 4)
	chk.IntAssert(c.Len(), 2)
	chk.Ints(tst, "row0", c.Row(0), []int{0, 1, 4, 3})
	chk.Ints(tst, "row1", c.Row(1), []int{1, 2, 5, 4})

	c.Push([]int{2, 3, 6, 5})
	chk.IntAssert(c.Len(), 3)
	chk.Ints(tst, "row2", c.Row(2), []int{2, 3, 6, 5})
}

func Test_conn02(tst *testing.T) {

	chk.PrintTitle("Test conn02: poly connectivity")

	c := NewPoly([]int{0, 1, 2, 3, 4, 5, 6}, []int{3, 7})
	chk.IntAssert(c.Len(), 2)
	chk.Ints(tst, "row0", c.Row(0), []int{0, 1, 2})
	chk.Ints(tst, "row1", c.Row(1), []int{3, 4, 5, 6})

	c.Push([]int{9, 9})
	chk.IntAssert(c.Len(), 3)
	chk.Ints(tst, "row2", c.Row(2), []int{9, 9})
}

func Test_conn03(tst *testing.T) {

	chk.PrintTitle("Test conn03: phed face decode/encode round trip")

	faces := [][]int{{0, 1, 2, 3}, {0, 1, 5, 4}, {4, 5, 6, 7}}
	row := EncodePhedFaces(faces)
	decoded := DecodePhedFaces(row)
	if len(decoded) != 3 {
		tst.Fatalf("expected 3 faces, got %d", len(decoded))
	}
	for i := range faces {
		chk.Ints(tst, "face", decoded[i], faces[i])
	}
}
