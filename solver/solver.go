// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the uniform linear-solver backend contract (§4.6): every backend
// wrapper exposes init/setup/solve/setPrecond/getIterNum/getFinalRes/dump over the CSR systems
// package eqn assembles. Native iterative backends (Jacobi, GMRES, BiCGStab) operate on
// eqn.CSR directly; GoslDirect routes through gosl's la.LinSol registry (la.GetSolver), the same
// pattern the reference domain-assembly code uses for its Newton-step linear solves.
package solver

import "github.com/cpmech/gofdm/eqn"

// Params carries the universal and backend-specific knobs (§4.6): tol/maxIter always apply;
// KDim is GMRES's Krylov subspace size; NumPreRelax/NumPostRelax are multigrid smoothing sweep
// counts; DumpPath is the file each backend's Dump writes the system to. PinValue and StaticMat
// are not read by any backend here (pinning and matrix reuse are set on eqn.Equation/eqn.EqnSet).
type Params struct {
	Tol           float64
	MaxIter       int
	KDim          int // GMRES restart dimension
	NumPreRelax   int // multigrid pre-smoothing sweeps
	NumPostRelax  int // multigrid post-smoothing sweeps
	RelaxType     string
	PinValue      float64
	StaticMat     bool
	DumpPath      string
}

// Solver is the uniform backend contract (§4.6): every native and wrapped backend implements
// this, so PrecondSolver can compose any solver as another's preconditioner.
type Solver interface {
	Init(p Params)
	Setup(sys *eqn.System) error
	Solve(sys *eqn.System, x []float64) error
	SetPrecond(p Preconditioner)
	GetIterNum() int
	GetFinalRes() float64
	Dump(sys *eqn.System) error
}

// None is the sentinel preconditioner meaning "no preconditioner": init/setup/solve are no-ops,
// and applying it to a vector is the identity.
type None struct{}

func (o *None) Init(Params)                            {}
func (o *None) Setup(*eqn.System) error                { return nil }
func (o *None) Solve(_ *eqn.System, x []float64) error  { return nil }
func (o *None) SetPrecond(Preconditioner)              {}
func (o *None) GetIterNum() int                         { return 0 }
func (o *None) GetFinalRes() float64                    { return 0 }
func (o *None) Dump(*eqn.System) error                  { return nil }

// Apply runs the preconditioner's action y = M^-1 r in place of a real solve, used by the
// native iterative backends' preconditioned-residual step. None leaves r unchanged.
func (o *None) Apply(r []float64) []float64 { return r }

// Preconditioner is any Solver that can also apply an approximate inverse directly to a
// residual vector, the shape PrecondSolver's outer iteration needs on every step.
type Preconditioner interface {
	Solver
	Apply(r []float64) []float64
}
