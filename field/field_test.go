// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/mesh"
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

func buildTestMesh() *mesh.CartesianMesh {
	return mesh.NewMeshBuilder(1).SetPadWidth(2).SetAxisUniform(0, 0, 1, 9, mesh.Symm).Build()
}

func Test_field01(tst *testing.T) {

	chk.PrintTitle("field01: Symm BC mirrors the interior value")

	m := buildTestMesh()
	assignable := rng.NewAxisBox([]int{0}, []int{9})
	f := NewField("u", m, []Location{Center}, []BC{NewBareBC(Symm)}, []BC{NewBareBC(Symm)}, assignable, 0)

	for i := 0; i < 9; i++ {
		f.SetValue(idx.MDIndex{i}, float64(i))
	}

	v, ok := f.ghostValue(idx.MDIndex{-1})
	if !ok {
		tst.Fatalf("expected ghost value to be defined at -1")
	}
	if v != 0 {
		tst.Fatalf("Symm mirror of index -1 should equal value at index 0 (=0), got %g", v)
	}
}

func Test_field02(tst *testing.T) {

	chk.PrintTitle("field02: Dirichlet ghost reconstructs the prescribed face value")

	m := buildTestMesh()
	assignable := rng.NewAxisBox([]int{0}, []int{9})
	f := NewField("u", m, []Location{Center}, []BC{NewConstBC(Dirichlet, 5.0)}, []BC{NewBareBC(Symm)}, assignable, 0)

	f.SetValue(idx.MDIndex{0}, 3.0)
	v, ok := f.ghostValue(idx.MDIndex{-1})
	if !ok {
		tst.Fatalf("expected ghost value to be defined at -1")
	}
	want := 2*5.0 - 3.0
	if v != want {
		tst.Fatalf("Dirichlet ghost: want %g, got %g", want, v)
	}
}

func Test_field03(tst *testing.T) {

	chk.PrintTitle("field03: Stencil.Flatten sums duplicate (color,index) terms")

	s := Stencil{Terms: []Term{
		{Color: 0, Index: idx.MDIndex{1}, Coeff: 2},
		{Color: 0, Index: idx.MDIndex{1}, Coeff: 3},
		{Color: 0, Index: idx.MDIndex{2}, Coeff: 1},
	}, Const: 7}

	flat := s.Flatten()
	if len(flat.Terms) != 2 {
		tst.Fatalf("expected 2 distinct terms after flatten, got %d", len(flat.Terms))
	}
	var sumAtOne float64
	for _, t := range flat.Terms {
		if idx.Equal(t.Index, idx.MDIndex{1}) {
			sumAtOne = t.Coeff
		}
	}
	if sumAtOne != 5 {
		tst.Fatalf("expected coefficient 5 at index {1}, got %g", sumAtOne)
	}
}
