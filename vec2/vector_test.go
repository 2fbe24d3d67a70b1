// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vec2

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vector01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vector01: arithmetic")

	a := New(1, 2)
	b := New(3, -1)

	chk.Scalar(tst, "a+b.x", 1e-15, a.Add(b).X, 4)
	chk.Scalar(tst, "a+b.y", 1e-15, a.Add(b).Y, 1)
	chk.Scalar(tst, "a-b.x", 1e-15, a.Sub(b).X, -2)
	chk.Scalar(tst, "a-b.y", 1e-15, a.Sub(b).Y, 3)
	chk.Scalar(tst, "a*2.x", 1e-15, a.Scale(2).X, 2)
	chk.Scalar(tst, "a/2.y", 1e-15, a.Div(2).Y, 1)

	c := a
	c.AddAssign(b)
	chk.Scalar(tst, "c.x after += ", 1e-15, c.X, 4)

	d := a
	d.SubAssign(b)
	chk.Scalar(tst, "d.x after -= ", 1e-15, d.X, -2)
}

func Test_vector02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vector02: length and normalize")

	v := New(3, 4)
	chk.Scalar(tst, "length_sqr", 1e-15, v.LengthSqr(), 25)
	chk.Scalar(tst, "length", 1e-15, v.Length(), 5)

	u := Normalize(v)
	chk.Scalar(tst, "unit.x", 1e-15, u.X, 0.6)
	chk.Scalar(tst, "unit.y", 1e-15, u.Y, 0.8)
	chk.Scalar(tst, "unit length", 1e-15, u.Length(), 1)

	z := Normalize(Zero())
	chk.Scalar(tst, "normalize(zero).x", 1e-15, z.X, 0)
	chk.Scalar(tst, "normalize(zero).y", 1e-15, z.Y, 0)
}
