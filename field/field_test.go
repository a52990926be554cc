// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mefi/etype"
)

func Test_field01(tst *testing.T) {

	chk.PrintTitle("Test field01: scalar arithmetic")

	a := NewField()
	arr := NewArray(2, nil)
	arr.Rows[0][0] = 1.0
	arr.Rows[1][0] = 2.0
	a.Arrays[etype.Quad4] = arr

	b := NewField()
	barr := NewArray(2, nil)
	barr.Rows[0][0] = 1.0
	barr.Rows[1][0] = 1.0
	b.Arrays[etype.Quad4] = barr

	sum := Add(a, b)
	chk.Scalar(tst, "sum0", 1e-15, sum.Arrays[etype.Quad4].Rows[0][0], 2.0)
	chk.Scalar(tst, "sum1", 1e-15, sum.Arrays[etype.Quad4].Rows[1][0], 3.0)

	sq := Sq(a)
	chk.Scalar(tst, "sq1", 1e-15, sq.Arrays[etype.Quad4].Rows[1][0], 4.0)
}

func Test_field02(tst *testing.T) {

	chk.PrintTitle("Test field02: incompatible fields panic")

	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("expected panic on incompatible fields")
		}
	}()

	a := NewField()
	a.Arrays[etype.Quad4] = NewArray(2, nil)

	b := NewField()
	b.Arrays[etype.Tri3] = NewArray(2, nil)

	Add(a, b)
}
