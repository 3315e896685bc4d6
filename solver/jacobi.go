// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gofdm/eqn"
)

// Jacobi is the weighted Jacobi iterative backend: x_{n+1} = x_n + omega*D^-1*(b-A*x_n). Doubles
// as a cheap Preconditioner (one damped sweep from zero approximating A^-1) for the Krylov backends.
type Jacobi struct {
	p        Params
	omega    float64
	diag     []float64
	iterNum  int
	finalRes float64
}

// NewJacobi builds a Jacobi backend with the default relaxation weight 2/3 (the standard
// smoothing choice for a second-order centered Laplacian).
func NewJacobi() *Jacobi { return &Jacobi{omega: 2.0 / 3.0} }

func (o *Jacobi) Init(p Params) {
	o.p = p
	if p.MaxIter == 0 {
		o.p.MaxIter = 200
	}
	if p.Tol == 0 {
		o.p.Tol = 1e-10
	}
}

func (o *Jacobi) extractDiag(sys *eqn.System) []float64 {
	d := make([]float64, sys.Rows.N)
	for r := 0; r < sys.Rows.N; r++ {
		for k := sys.Rows.RowPtr[r]; k < sys.Rows.RowPtr[r+1]; k++ {
			if sys.Rows.ColIdx[k] == r {
				d[r] = sys.Rows.Val[k]
			}
		}
	}
	return d
}

func (o *Jacobi) Setup(sys *eqn.System) error {
	o.diag = o.extractDiag(sys)
	return nil
}

func (o *Jacobi) sweep(sys *eqn.System, x []float64) []float64 {
	n := sys.Rows.N
	xNew := make([]float64, n)
	copy(xNew, x)
	res := sys.Rows.MatVec(x)
	for r := 0; r < n; r++ {
		if o.diag[r] == 0 {
			continue
		}
		xNew[r] = x[r] + o.omega*(sys.Rhs[r]-res[r])/o.diag[r]
	}
	return xNew
}

func (o *Jacobi) Solve(sys *eqn.System, x []float64) error {
	if o.diag == nil {
		o.Setup(sys)
	}
	for it := 0; it < o.p.MaxIter; it++ {
		x2 := o.sweep(sys, x)
		copy(x, x2)
		o.iterNum = it + 1
		o.finalRes = residualNorm(sys, x)
		if o.finalRes < o.p.Tol {
			break
		}
	}
	return nil
}

func (o *Jacobi) SetPrecond(Preconditioner) {}
func (o *Jacobi) GetIterNum() int           { return o.iterNum }
func (o *Jacobi) GetFinalRes() float64      { return o.finalRes }
func (o *Jacobi) Dump(sys *eqn.System) error { return dumpSystem(o.p.DumpPath, sys) }

// Apply runs a single damped Jacobi sweep on A*y=r starting from y=0, i.e. y = omega*D^-1*r,
// approximating A^-1*r — used when Jacobi is installed as another backend's preconditioner.
func (o *Jacobi) Apply(r []float64) []float64 {
	y := make([]float64, len(r))
	for i, d := range o.diag {
		if d != 0 {
			y[i] = o.omega * r[i] / d
		}
	}
	return y
}

func residualNorm(sys *eqn.System, x []float64) float64 {
	return vecNorm(vecSub(sys.Rhs, sys.Rows.MatVec(x)))
}
