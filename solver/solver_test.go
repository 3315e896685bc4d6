// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"
	"testing"

	"github.com/cpmech/gofdm/eqn"
	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/mesh"
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gosl/chk"
)

func manufacturedPoisson(n int) *eqn.System {
	m := mesh.NewMeshBuilder(1).SetPadWidth(1).SetAxisUniform(0, 0, 1, n, mesh.Symm).Build()
	assignable := rng.NewAxisBox([]int{0}, []int{n})
	left := m.X(0, 0)
	right := m.X(0, n-1)
	u := field.NewField("u", m, []field.Location{field.Center},
		[]field.BC{field.NewConstBC(field.Dirichlet, left*left)},
		[]field.BC{field.NewConstBC(field.Dirichlet, right*right)}, assignable, 0)

	set := &eqn.EqnSet{
		Eqns: []eqn.Equation{{
			Lhs: func(views []*field.StencilField, i idx.MDIndex) field.Stencil {
				return eqn.LaplacianSym(views[0], i)
			},
			Rhs: func(views []*field.StencilField, i idx.MDIndex) field.Stencil {
				return field.ConstStencil(2)
			},
		}},
		Targets: eqn.TargetSet{u},
	}
	return set.Compile(0)
}

func Test_solver01(tst *testing.T) {

	chk.PrintTitle("solver01: Jacobi converges on the manufactured Poisson system")

	sys := manufacturedPoisson(9)
	x := make([]float64, sys.Rows.N)

	j := NewJacobi()
	j.Init(Params{MaxIter: 5000, Tol: 1e-10})
	j.Setup(sys)
	if err := j.Solve(sys, x); err != nil {
		tst.Fatalf("jacobi solve failed: %v", err)
	}
	if j.GetFinalRes() > 1e-6 {
		tst.Fatalf("jacobi did not converge: final residual %g", j.GetFinalRes())
	}
}

func Test_solver02(tst *testing.T) {

	chk.PrintTitle("solver02: BiCGStab with a Jacobi preconditioner converges")

	sys := manufacturedPoisson(9)
	x := make([]float64, sys.Rows.N)

	pre := NewJacobi()
	pre.Init(Params{})
	pre.Setup(sys)

	bc := NewBiCGStab()
	bc.Init(Params{MaxIter: 200, Tol: 1e-10})
	bc.SetPrecond(pre)
	if err := bc.Solve(sys, x); err != nil {
		tst.Fatalf("bicgstab solve failed: %v", err)
	}
	res := sys.Rows.MatVec(x)
	maxErr := 0.0
	for r := range res {
		if d := math.Abs(res[r] - sys.Rhs[r]); d > maxErr {
			maxErr = d
		}
	}
	if maxErr > 1e-6 {
		tst.Fatalf("bicgstab residual too large: %g", maxErr)
	}
}

func Test_solver03(tst *testing.T) {

	chk.PrintTitle("solver03: GMRES converges on the manufactured Poisson system")

	sys := manufacturedPoisson(9)
	x := make([]float64, sys.Rows.N)

	g := NewGMRES()
	g.Init(Params{KDim: 10, MaxIter: 20, Tol: 1e-10})
	if err := g.Setup(sys); err != nil {
		tst.Fatalf("gmres setup failed: %v", err)
	}
	if err := g.Solve(sys, x); err != nil {
		tst.Fatalf("gmres solve failed: %v", err)
	}
	if g.GetFinalRes() > 1e-6 {
		tst.Fatalf("gmres did not converge: final residual %g", g.GetFinalRes())
	}
}

func Test_solver04(tst *testing.T) {

	chk.PrintTitle("solver04: Multigrid converges on the manufactured Poisson system")

	sys := manufacturedPoisson(33)
	x := make([]float64, sys.Rows.N)

	mg := NewMultigrid()
	mg.Init(Params{MaxIter: 30, Tol: 1e-10})
	if err := mg.Setup(sys); err != nil {
		tst.Fatalf("multigrid setup failed: %v", err)
	}
	if err := mg.Solve(sys, x); err != nil {
		tst.Fatalf("multigrid solve failed: %v", err)
	}
	if mg.GetFinalRes() > 1e-6 {
		tst.Fatalf("multigrid did not converge: final residual %g", mg.GetFinalRes())
	}
}

func Test_solver05(tst *testing.T) {

	chk.PrintTitle("solver05: None preconditioner is a pass-through identity")

	n := &None{}
	r := []float64{1, 2, 3}
	out := n.Apply(r)
	for i := range r {
		if out[i] != r[i] {
			tst.Fatalf("None.Apply must be the identity, got %v for input %v", out, r)
		}
	}
}
