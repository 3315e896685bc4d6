// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_mesh01(tst *testing.T) {

	chk.PrintTitle("mesh01: uniform axis, symm extension")

	m := NewMeshBuilder(1).SetPadWidth(2).SetAxisUniform(0, 0, 1, 5, Symm).Build()

	chk.Scalar(tst, "x[0]", 1e-15, m.X(0, 0), 0.0)
	chk.Scalar(tst, "x[4]", 1e-15, m.X(0, 4), 1.0)
	chk.Scalar(tst, "dx", 1e-15, m.Dx(0, 0), 0.25)

	// symmetric extension: dx mirrors across the boundary
	chk.Scalar(tst, "dx[-1]", 1e-15, m.Dx(0, -1), m.Dx(0, 0))
	chk.Scalar(tst, "dx[4]", 1e-15, m.Dx(0, 4), m.Dx(0, 3))
}

func Test_mesh02(tst *testing.T) {

	chk.PrintTitle("mesh02: refine ratio=1 is identity; two refinements compose")

	base := NewMeshBuilder(2).SetPadWidth(2).
		SetAxisUniform(0, 0, 1, 5, Symm).
		SetAxisUniform(1, 0, 2, 3, Periodic).
		Build()

	same := base.Refine(1)
	if !base.Equal(same) {
		tst.Fatalf("refining by ratio=1 must yield an equal mesh")
	}

	r1 := base.Refine(2)
	r2 := r1.Refine(3)
	direct := base.Refine(6)

	lr := direct.LogicalRange()
	for i := lr.Start[0]; i < lr.End[0]; i++ {
		chk.Scalar(tst, "x(2·3)", 1e-12, r2.X(0, i), direct.X(0, i))
	}
}

func Test_mesh03(tst *testing.T) {

	chk.PrintTitle("mesh03: logical and extended ranges")

	m := NewMeshBuilder(1).SetPadWidth(3).SetAxisUniform(0, 0, 1, 5, Uniform).Build()
	lr := m.LogicalRange()
	er := m.ExtendedRange()
	chk.Ints(tst, "logical", []int{lr.Start[0], lr.End[0]}, []int{0, 5})
	chk.Ints(tst, "extended", []int{er.Start[0], er.End[0]}, []int{-3, 8})
}
