// Copyright 2016 The GoFDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/gofdm/eqn"
)

// GMRES is the restarted GMRES(k) backend (§4.6, Params.KDim is the restart dimension), built
// via Arnoldi iteration with modified Gram-Schmidt and Givens-rotation least-squares reduction —
// the standard textbook formulation.
type GMRES struct {
	p        Params
	precond  Preconditioner
	iterNum  int
	finalRes float64
}

func NewGMRES() *GMRES { return &GMRES{precond: &None{}} }

func (o *GMRES) Init(p Params) {
	o.p = p
	if o.p.KDim == 0 {
		o.p.KDim = 30
	}
	if o.p.MaxIter == 0 {
		o.p.MaxIter = 10
	}
	if o.p.Tol == 0 {
		o.p.Tol = 1e-10
	}
}

func (o *GMRES) Setup(sys *eqn.System) error { return o.precond.Setup(sys) }
func (o *GMRES) SetPrecond(p Preconditioner) { o.precond = p }
func (o *GMRES) GetIterNum() int             { return o.iterNum }
func (o *GMRES) GetFinalRes() float64        { return o.finalRes }
func (o *GMRES) Dump(sys *eqn.System) error  { return dumpSystem(o.p.DumpPath, sys) }

func (o *GMRES) Solve(sys *eqn.System, x []float64) error {
	cur := append([]float64{}, x...)
	res0 := vecNorm(sys.Rhs)
	if res0 == 0 {
		res0 = 1
	}
	for cycle := 0; cycle < o.p.MaxIter; cycle++ {
		r := vecSub(sys.Rhs, sys.Rows.MatVec(cur))
		beta := vecNorm(r)
		o.finalRes = beta
		if beta < o.p.Tol*res0 {
			break
		}
		k := o.p.KDim

		vBasis := make([][]float64, k+1)
		h := make([][]float64, k+1)
		for i := range h {
			h[i] = make([]float64, k)
		}
		cs, sn := make([]float64, k), make([]float64, k)
		g := make([]float64, k+1)

		vBasis[0] = vecScale(1/beta, r)
		g[0] = beta

		m := 0
		for j := 0; j < k; j++ {
			m = j + 1
			w := sys.Rows.MatVec(o.precond.Apply(vBasis[j]))
			for i := 0; i <= j; i++ {
				h[i][j] = vecDot(w, vBasis[i])
				w = vecSub(w, vecScale(h[i][j], vBasis[i]))
			}
			h[j+1][j] = vecNorm(w)
			if h[j+1][j] < 1e-14 {
				vBasis[j+1] = w
				m = j + 1
				break
			}
			vBasis[j+1] = vecScale(1/h[j+1][j], w)

			for i := 0; i < j; i++ {
				applyGivens(h, cs, sn, i, j)
			}
			cs[j], sn[j] = givensCoeffs(h[j][j], h[j+1][j])
			h[j][j] = cs[j]*h[j][j] + sn[j]*h[j+1][j]
			h[j+1][j] = 0
			g[j+1] = -sn[j] * g[j]
			g[j] = cs[j] * g[j]

			o.iterNum++
			if math.Abs(g[j+1]) < o.p.Tol*res0 {
				m = j + 1
				break
			}
		}

		y := backSolve(h, g, m)
		corr := make([]float64, sys.Rows.N)
		for j := 0; j < m; j++ {
			corr = vecAdd(corr, vecScale(y[j], vBasis[j]))
		}
		cur = vecAdd(cur, o.precond.Apply(corr))
	}
	copy(x, cur)
	return nil
}

func applyGivens(h [][]float64, cs, sn []float64, i, j int) {
	temp := cs[i]*h[i][j] + sn[i]*h[i+1][j]
	h[i+1][j] = -sn[i]*h[i][j] + cs[i]*h[i+1][j]
	h[i][j] = temp
}

func givensCoeffs(a, b float64) (c, s float64) {
	if b == 0 {
		return 1, 0
	}
	denom := math.Hypot(a, b)
	return a / denom, b / denom
}

// backSolve solves the m x m upper-triangular system H*y = g by back substitution.
func backSolve(h [][]float64, g []float64, m int) []float64 {
	y := make([]float64, m)
	for i := m - 1; i >= 0; i-- {
		sum := g[i]
		for j := i + 1; j < m; j++ {
			sum -= h[i][j] * y[j]
		}
		if h[i][i] == 0 {
			y[i] = 0
			continue
		}
		y[i] = sum / h[i][i]
	}
	return y
}
