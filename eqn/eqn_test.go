// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import (
	"math"
	"testing"

	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/mesh"
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

// denseSolve solves the small CSR system by Gauss-Jordan elimination on a dense copy — good
// enough to check assembly correctness for the handful of unknowns these tests use, without
// depending on a real solver backend.
func denseSolve(c *CSR) []float64 {
	n := c.N
	A := make([][]float64, n)
	for r := range A {
		A[r] = make([]float64, n+1)
		for k := c.RowPtr[r]; k < c.RowPtr[r+1]; k++ {
			A[r][c.ColIdx[k]] += c.Val[k]
		}
		A[r][n] = c.Rhs[r]
	}
	for p := 0; p < n; p++ {
		piv := A[p][p]
		for col := p; col <= n; col++ {
			A[p][col] /= piv
		}
		for r := 0; r < n; r++ {
			if r == p {
				continue
			}
			f := A[r][p]
			for col := p; col <= n; col++ {
				A[r][col] -= f * A[p][col]
			}
		}
	}
	x := make([]float64, n)
	for r := range x {
		x[r] = A[r][n]
	}
	return x
}

func Test_eqn01(tst *testing.T) {

	chk.PrintTitle("eqn01: manufactured 1D Dirichlet Poisson, u=x^2 => u''=2")

	n := 9
	m := mesh.NewMeshBuilder(1).SetPadWidth(2).SetAxisUniform(0, 0, 1, n, mesh.Symm).Build()
	assignable := rng.NewAxisBox([]int{0}, []int{n})

	left := m.X(0, 0)
	right := m.X(0, n-1)
	u := field.NewField("u", m, []field.Location{field.Center},
		[]field.BC{field.NewConstBC(field.Dirichlet, left*left)},
		[]field.BC{field.NewConstBC(field.Dirichlet, right*right)}, assignable, 0)

	set := &EqnSet{
		Eqns: []Equation{{
			Lhs: func(views []*field.StencilField, i idx.MDIndex) field.Stencil {
				return LaplacianSym(views[0], i)
			},
			Rhs: func(views []*field.StencilField, i idx.MDIndex) field.Stencil {
				return field.ConstStencil(2)
			},
		}},
		Targets: TargetSet{u},
	}

	sys := set.Compile(0)
	x := denseSolve(sys.Rows)
	sys.Scatter(set.Targets, x)

	for k := 1; k < n-1; k++ {
		xc := m.X(0, k)
		want := xc * xc
		got := u.Get(idx.MDIndex{k})
		if math.Abs(got-want) > 1e-8 {
			tst.Fatalf("cell %d: want %g got %g", k, want, got)
		}
	}
}

func Test_eqn03(tst *testing.T) {

	chk.PrintTitle("eqn03: Pinned equation at a non-zero target index pins its own first row")

	n := 4
	m := mesh.NewMeshBuilder(1).SetPadWidth(1).SetAxisUniform(0, 0, 1, n, mesh.Symm).Build()
	assignable := rng.NewAxisBox([]int{0}, []int{n})
	bare := field.NewBareBC(field.Symm)
	a := field.NewField("a", m, []field.Location{field.Center}, []field.BC{bare}, []field.BC{bare}, assignable, 1)
	b := field.NewField("b", m, []field.Location{field.Center}, []field.BC{bare}, []field.BC{bare}, assignable, 0)

	// b's equation is pure-Neumann-like (every row sums its neighbors to zero net flux, leaving
	// the system singular up to a constant) and is pinned to remove that nullspace; a's equation
	// is an ordinary, unpinned identity a_i = 1.
	set := &EqnSet{
		Eqns: []Equation{
			{
				Lhs: func(views []*field.StencilField, i idx.MDIndex) field.Stencil {
					return views[0].EvalAtSym(i)
				},
				Rhs: func(views []*field.StencilField, i idx.MDIndex) field.Stencil {
					return field.ConstStencil(1)
				},
			},
			{
				Lhs: func(views []*field.StencilField, i idx.MDIndex) field.Stencil {
					return D2CenteredSym(views[1], 0, i)
				},
				Rhs: func(views []*field.StencilField, i idx.MDIndex) field.Stencil {
					return field.ConstStencil(0)
				},
				Pinned: true,
			},
		},
		Targets: TargetSet{a, b},
	}

	sys := set.Compile(0)
	mp := sys.Mapper

	// b's pin row is b's own first assignable row, sitting after all of a's n rows.
	pinRow := mp.Row(1, b.AssignableRange().Start)
	if pinRow != n {
		tst.Fatalf("expected b's pin row at global row %d, got %d", n, pinRow)
	}

	found := false
	for k := sys.Rows.RowPtr[pinRow]; k < sys.Rows.RowPtr[pinRow+1]; k++ {
		if sys.Rows.ColIdx[k] != pinRow || sys.Rows.Val[k] != 1 {
			tst.Fatalf("pinned row %d should hold only a unit diagonal entry, found col %d val %g",
				pinRow, sys.Rows.ColIdx[k], sys.Rows.Val[k])
		}
		found = true
	}
	if !found {
		tst.Fatalf("pinned row %d has no entries", pinRow)
	}
	if sys.Rhs[pinRow] != 0 {
		tst.Fatalf("pinned row %d should have rhs 0, got %g", pinRow, sys.Rhs[pinRow])
	}

	// global row 0 belongs to a's unpinned identity equation (a_i = 1) and must be untouched by
	// b's pin.
	if sys.Rhs[0] != 1 {
		tst.Fatalf("row 0 (a's equation) should be unaffected by b's pin, rhs = %g", sys.Rhs[0])
	}
}

func Test_eqn02(tst *testing.T) {

	chk.PrintTitle("eqn02: ColoredBlockedMDRangeMapper gives a dense gap-free row space")

	n := 5
	m := mesh.NewMeshBuilder(1).SetPadWidth(1).SetAxisUniform(0, 0, 1, n, mesh.Symm).Build()
	assignable := rng.NewAxisBox([]int{0}, []int{n})
	bare := field.NewBareBC(field.Symm)
	a := field.NewField("a", m, []field.Location{field.Center}, []field.BC{bare}, []field.BC{bare}, assignable, 1)
	b := field.NewField("b", m, []field.Location{field.Center}, []field.BC{bare}, []field.BC{bare}, assignable, 1)

	mp := NewColoredBlockedMDRangeMapper(TargetSet{a, b})
	seen := map[int]bool{}
	for color, f := range []*field.Field{a, b} {
		ri := idx.NewRangedIndex(f.AssignableRange())
		for ri.Valid() {
			row := mp.Row(color, ri.MDIndex.Clone())
			if seen[row] {
				tst.Fatalf("row %d assigned twice", row)
			}
			seen[row] = true
			ri.Inc()
		}
	}
	if len(seen) != 2*n {
		tst.Fatalf("expected %d distinct rows, got %d", 2*n, len(seen))
	}
	for r := 0; r < 2*n; r++ {
		if !seen[r] {
			tst.Fatalf("row space has a gap at %d", r)
		}
	}
}
