// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gofdm runs a manufactured Poisson demo on a uniform Cartesian grid: assembles the
// discrete Laplacian via the eqn package, solves it with a preconditioned BiCGStab backend, and
// writes the converged field out through iofield. Flag-driven grid size stands in for the input-
// file-driven simulation the original CLI skeleton parsed (flag.Parse/chk.Panic/mpi.Start/Stop).
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gofdm/eqn"
	"github.com/cpmech/gofdm/field"
	"github.com/cpmech/gofdm/idx"
	"github.com/cpmech/gofdm/iofield"
	"github.com/cpmech/gofdm/mesh"
	"github.com/cpmech/gofdm/rng"
	"github.com/cpmech/gofdm/solver"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

func main() {

	// options
	n := flag.Int("n", 33, "number of cells along the single axis")
	dirout := flag.String("dirout", "/tmp/gofdm", "output directory")
	fnkey := flag.String("fnkey", "poisson1d", "output filename key")
	verbose := flag.Bool("verbose", true, "print progress messages")

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\nGoFDM -- Go Finite Difference Method\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
	}

	flag.Parse()

	if err := run(*n, *dirout, *fnkey, *verbose); err != nil {
		chk.Panic("run failed:\n%v", err)
	}
}

// run builds u'' = 2 on [0,1] with Dirichlet boundary values matching the exact solution
// u(x) = x^2, solves it, and saves the result under dirout/fnkey.
func run(n int, dirout, fnkey string, verbose bool) error {

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
	sys := set.Compile(0)
	x := make([]float64, sys.Rows.N)

	pre := solver.NewJacobi()
	pre.Init(solver.Params{})
	pre.Setup(sys)

	bc := solver.NewBiCGStab()
	bc.Init(solver.Params{MaxIter: 500, Tol: 1e-12})
	bc.SetPrecond(pre)
	if err := bc.Setup(sys); err != nil {
		return err
	}
	if err := bc.Solve(sys, x); err != nil {
		return err
	}
	sys.Scatter(set.Targets, x)

	if verbose {
		io.Pf("converged in %d iterations, residual %.3e\n", bc.GetIterNum(), bc.GetFinalRes())
	}

	if err := os.MkdirAll(dirout, 0777); err != nil {
		return err
	}
	return iofield.Save(dirout, fnkey, u, 0, "gob")
}
