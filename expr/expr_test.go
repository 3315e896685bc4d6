// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math"
	"testing"

	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/mesh"
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

func buildUniform1D(n int) (*mesh.CartesianMesh, *field.Field) {
	return buildUniform1DWidth(n, 3)
}

func buildUniform1DWidth(n, bcWidth int) (*mesh.CartesianMesh, *field.Field) {
	m := mesh.NewMeshBuilder(1).SetPadWidth(bcWidth).SetAxisUniform(0, 0, 1, n, mesh.Symm).Build()
	assignable := rng.NewAxisBox([]int{0}, []int{n})
	f := field.NewField("u", m, []field.Location{field.Center},
		[]field.BC{field.NewBareBC(field.Symm)}, []field.BC{field.NewBareBC(field.Symm)}, assignable, bcWidth)
	return m, f
}

func Test_expr01(tst *testing.T) {

	chk.PrintTitle("expr01: D2SecondOrderCentered recovers u''=2 for u=x^2 at an interior cell")

	m, f := buildUniform1D(11)
	for i := 0; i < 11; i++ {
		f.SetValue(idx.MDIndex{i}, m.X(0, i)*m.X(0, i))
	}

	d2 := NewD2SecondOrderCentered(f, 0)
	d2.Prepare()

	// for u=x^2 on a uniform mesh, d2 exactly recovers 2 (the 2nd derivative), up to fp error
	v := d2.EvalAt(idx.MDIndex{5})
	if math.Abs(v-2) > 1e-9 {
		tst.Fatalf("expected ~2, got %g", v)
	}
}

func Test_expr02(tst *testing.T) {

	chk.PrintTitle("expr02: prepare() is idempotent")

	_, f := buildUniform1D(9)
	op := NewD1FirstOrderBiasedUpwind(f, 0)
	op.Prepare()
	acc1 := op.AccessibleRange()
	op.Prepare()
	acc2 := op.AccessibleRange()
	if !rng.EqualInts(acc1.Start, acc2.Start) || !rng.EqualInts(acc1.End, acc2.End) {
		tst.Fatalf("second prepare() changed the accessible range: %v -> %v", acc1, acc2)
	}
}

func Test_expr03(tst *testing.T) {

	chk.PrintTitle("expr03: Decayable falls back outside the high-order footprint")

	_, f := buildUniform1DWidth(9, 0)
	high := NewD1WENO53Upwind(f, 0)
	low := NewD1FirstOrderBiasedUpwind(f, 0)
	dec := NewDecayable(high, low)
	dec.Prepare()

	// deep interior: high-order path should be selected
	if !high.CouldSafeEval(idx.MDIndex{4}) {
		tst.Fatalf("expected high-order footprint to cover the interior cell")
	}
	// near the boundary the high-order footprint does not fit, but the low-order one does
	if high.CouldSafeEval(idx.MDIndex{0}) {
		tst.Fatalf("did not expect the WENO footprint to fit right at the boundary")
	}
	if !dec.CouldSafeEval(idx.MDIndex{0}) {
		tst.Fatalf("expected the decay chain to still cover the boundary cell via the fallback")
	}
}

func Test_expr04(tst *testing.T) {

	chk.PrintTitle("expr04: Convolution box-averages a constant field to itself")

	_, f := buildUniform1D(9)
	m2, f2 := buildUniform1D(9)
	_ = m2
	for i := 0; i < 9; i++ {
		f2.SetValue(idx.MDIndex{i}, 3.0)
	}
	_ = f

	conv := NewConvolution(f2, []int{3}, []float64{1. / 3., 1. / 3., 1. / 3.})
	conv.Prepare()
	v := conv.EvalAt(idx.MDIndex{4})
	if math.Abs(v-3.0) > 1e-12 {
		tst.Fatalf("expected 3.0, got %g", v)
	}
}
