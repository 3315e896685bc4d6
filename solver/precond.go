// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/cpmech/gofdm/eqn"

// PrecondSolver composes an outer solver with a preconditioner (§4.6 "PrecondSolver<T,P>"):
// NewPrecondSolver wires the preconditioner into the outer solver via SetPrecond, and Setup sets
// up the preconditioner before the outer solver.
type PrecondSolver struct {
	Outer Solver
	Pre   Preconditioner
}

func NewPrecondSolver(outer Solver, pre Preconditioner) *PrecondSolver {
	outer.SetPrecond(pre)
	return &PrecondSolver{Outer: outer, Pre: pre}
}

func (o *PrecondSolver) Init(p Params) {
	o.Outer.Init(p)
	o.Pre.Init(p)
}

func (o *PrecondSolver) Setup(sys *eqn.System) error {
	if err := o.Pre.Setup(sys); err != nil {
		return err
	}
	return o.Outer.Setup(sys)
}

func (o *PrecondSolver) Solve(sys *eqn.System, x []float64) error { return o.Outer.Solve(sys, x) }
func (o *PrecondSolver) SetPrecond(p Preconditioner)              { o.Pre = p; o.Outer.SetPrecond(p) }
func (o *PrecondSolver) GetIterNum() int                          { return o.Outer.GetIterNum() }
func (o *PrecondSolver) GetFinalRes() float64                     { return o.Outer.GetFinalRes() }
func (o *PrecondSolver) Dump(sys *eqn.System) error               { return o.Outer.Dump(sys) }
