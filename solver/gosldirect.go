// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gofdm/eqn"
	"github.com/cpmech/gosl/la"
)

// GoslDirect wraps gosl's la.LinSol registry (la.GetSolver(name)) as a Solver backend, the same
// direct-factorization path the reference domain assembly uses for its Newton-step linear solves
// (fem/domain.go: `doms[i].LinSol = la.GetSolver(sim.LinSol.Name)`, `o.LinSol.Free()`). Use this
// backend when an external sparse direct factorization (umfpack/mumps, as registered by gosl) is
// preferable to the native iterative backends above.
type GoslDirect struct {
	name     string
	lin      la.LinSol
	p        Params
	finalRes float64
}

// NewGoslDirect names the registered gosl solver to use (e.g. "umfpack", "mumps").
func NewGoslDirect(name string) *GoslDirect {
	return &GoslDirect{name: name}
}

func (o *GoslDirect) Init(p Params) { o.p = p }

func (o *GoslDirect) Setup(sys *eqn.System) error {
	if o.lin != nil {
		o.lin.Free()
	}
	o.lin = la.GetSolver(o.name)
	return o.lin.Init(sys.A, false, false, false)
}

func (o *GoslDirect) Solve(sys *eqn.System, x []float64) error {
	if err := o.lin.Fact(); err != nil {
		return err
	}
	if err := o.lin.Solve(x, sys.Rhs, false); err != nil {
		return err
	}
	o.finalRes = residualNorm(sys, x)
	return nil
}

func (o *GoslDirect) SetPrecond(Preconditioner)  {}
func (o *GoslDirect) GetIterNum() int            { return 1 }
func (o *GoslDirect) GetFinalRes() float64       { return o.finalRes }
func (o *GoslDirect) Dump(sys *eqn.System) error { return dumpSystem(o.p.DumpPath, sys) }

// Free releases the underlying gosl solver handle.
func (o *GoslDirect) Free() {
	if o.lin != nil {
		o.lin.Free()
	}
}
